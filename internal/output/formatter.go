package output

import (
	"fmt"
	"strings"
)

// Formatter formats a Report into bytes for output.
// buf is a reusable buffer; implementations append to it and return the result.
type Formatter interface {
	Format(buf []byte, r Report) []byte
}

// Report formats accepted by NewFormatter.
const (
	FormatNone = "none"
	FormatText = "text"
	FormatJSON = "json"
)

// NewFormatter returns the formatter for format, or nil for FormatNone.
// Text reports are styled only when useColor is set.
func NewFormatter(format string, useColor bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatNone, "":
		return nil, nil
	case FormatText:
		styles := NoStyles()
		if useColor {
			styles = NewStyles()
		}
		return NewTextFormatter(styles), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
