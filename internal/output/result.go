package output

import "time"

// Report summarizes one benchmark run.
type Report struct {
	RunID   string
	Path    string
	Backend string
	Cycles  int
	Bytes   int64
	Elapsed time.Duration
}

// PerCycle returns the mean wall time of one open+read+close cycle.
func (r *Report) PerCycle() time.Duration {
	if r.Cycles == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Cycles)
}

// BytesPerCycle returns the mean content length read per cycle.
func (r *Report) BytesPerCycle() int64 {
	if r.Cycles == 0 {
		return 0
	}
	return r.Bytes / int64(r.Cycles)
}
