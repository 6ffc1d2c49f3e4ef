package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles for the text report.
type Styles struct {
	Label lipgloss.Style
	Value lipgloss.Style
	Path  lipgloss.Style
	Rate  lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(10),
		Value: lipgloss.NewStyle(),
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Rate:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

// NoStyles returns styles with no coloring. Labels keep their padding.
func NoStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Width(10),
		Value: lipgloss.NewStyle(),
		Path:  lipgloss.NewStyle(),
		Rate:  lipgloss.NewStyle(),
	}
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd)
}
