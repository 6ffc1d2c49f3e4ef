// Package sampler times repeated open/read/close cycles against a single
// pseudo-file. The loop is strictly sequential and stops at the first error.
package sampler

import (
	"time"

	"github.com/dl/procbench/internal/input"
)

const (
	// DefaultPath is the kernel statistics pseudo-file.
	DefaultPath = "/proc/stat"
	// DefaultCount is the number of cycles in one run.
	DefaultCount = 100000
	// DefaultBufferSize is the initial capacity of each iteration's buffer.
	DefaultBufferSize = 4096
)

// Sink receives each iteration's buffer before it is discarded. The buffer
// must not be retained. A non-nil error fails the iteration.
type Sink func(iteration int, buf []byte) error

// Stats summarizes a run.
type Stats struct {
	// Cycles is the number of completed open+read+close cycles. On failure it
	// counts those that finished before the failing one.
	Cycles int
	// Bytes is the total content length read by completed cycles.
	Bytes   int64
	Elapsed time.Duration
}

// Sampler performs count open+read+close cycles against path.
type Sampler struct {
	path    string
	count   int
	opener  input.Opener
	bufSize int
	sink    Sink
}

// New creates a Sampler. A count of zero or less performs no cycles.
func New(path string, count int, opener input.Opener) *Sampler {
	return &Sampler{
		path:    path,
		count:   count,
		opener:  opener,
		bufSize: DefaultBufferSize,
	}
}

// WithBufferSize sets the initial capacity of each iteration's buffer.
// Values below one leave the buffer unallocated until the first read.
func (s *Sampler) WithBufferSize(n int) *Sampler {
	if n < 0 {
		n = 0
	}
	s.bufSize = n
	return s
}

// WithSink installs a diagnostic sink. Nil disables it.
func (s *Sampler) WithSink(fn Sink) *Sampler {
	s.sink = fn
	return s
}

// Run performs the cycles in order. The first error aborts the run and is
// returned unchanged, together with the stats of the cycles that completed.
func (s *Sampler) Run() (Stats, error) {
	var stats Stats
	start := time.Now()
	for i := 0; i < s.count; i++ {
		n, err := s.cycle(i)
		if err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		stats.Cycles++
		stats.Bytes += int64(n)
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}

// cycle opens, reads fully and closes the resource once. The handle is closed
// on every return path; a close error fails an otherwise successful cycle.
func (s *Sampler) cycle(i int) (n int, err error) {
	h, err := s.opener.Open(s.path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			n, err = 0, cerr
		}
	}()

	buf := make([]byte, 0, s.bufSize)
	buf, err = input.ReadAll(h, buf)
	if err != nil {
		return 0, err
	}

	if s.sink != nil {
		if err := s.sink(i, buf); err != nil {
			return 0, err
		}
	}
	return len(buf), nil
}
