package output

import (
	"strconv"
)

// TextFormatter formats a report as aligned label/value lines.
type TextFormatter struct {
	styles Styles
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

func (f *TextFormatter) Format(buf []byte, r Report) []byte {
	s := f.styles
	buf = f.line(buf, "run", s.Value.Render(r.RunID))
	buf = f.line(buf, "path", s.Path.Render(r.Path))
	buf = f.line(buf, "backend", s.Value.Render(r.Backend))
	buf = f.line(buf, "cycles", s.Value.Render(strconv.Itoa(r.Cycles)))
	buf = f.line(buf, "bytes", s.Value.Render(strconv.FormatInt(r.Bytes, 10)+" ("+strconv.FormatInt(r.BytesPerCycle(), 10)+"/cycle)"))
	buf = f.line(buf, "elapsed", s.Value.Render(r.Elapsed.String()))
	buf = f.line(buf, "per cycle", s.Rate.Render(r.PerCycle().String()))
	return buf
}

func (f *TextFormatter) line(buf []byte, label, value string) []byte {
	buf = append(buf, f.styles.Label.Render(label)...)
	buf = append(buf, ' ')
	buf = append(buf, value...)
	buf = append(buf, '\n')
	return buf
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
