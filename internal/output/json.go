package output

import (
	"encoding/json"
)

// JSONFormatter formats a report as a single JSON line.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonReport is the JSON serialization format for a Report.
type jsonReport struct {
	Type       string `json:"type"`
	RunID      string `json:"run_id"`
	Path       string `json:"path"`
	Backend    string `json:"backend"`
	Cycles     int    `json:"cycles"`
	Bytes      int64  `json:"bytes"`
	ElapsedNs  int64  `json:"elapsed_ns"`
	PerCycleNs int64  `json:"per_cycle_ns"`
}

func (f *JSONFormatter) Format(buf []byte, r Report) []byte {
	jr := jsonReport{
		Type:       "report",
		RunID:      r.RunID,
		Path:       r.Path,
		Backend:    r.Backend,
		Cycles:     r.Cycles,
		Bytes:      r.Bytes,
		ElapsedNs:  r.Elapsed.Nanoseconds(),
		PerCycleNs: r.PerCycle().Nanoseconds(),
	}
	// Marshal cannot fail on a struct of strings and integers.
	data, _ := json.Marshal(jr)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
