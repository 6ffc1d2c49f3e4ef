package sampler

import (
	"io"
	"os"
	"testing"

	"github.com/dl/procbench/internal/input"
)

func benchmarkBackend(b *testing.B, backend string) {
	if _, err := os.Stat(DefaultPath); err != nil {
		b.Skipf("%s unavailable: %v", DefaultPath, err)
	}
	o, err := input.NewOpener(backend)
	if err != nil {
		b.Skipf("backend %s: %v", backend, err)
	}
	if c, ok := o.(io.Closer); ok {
		defer c.Close()
	}

	s := New(DefaultPath, b.N, o)
	b.ReportAllocs()
	b.ResetTimer()
	stats, err := s.Run()
	b.StopTimer()
	if err != nil {
		b.Fatalf("Run() error: %v", err)
	}
	if stats.Cycles > 0 {
		b.SetBytes(stats.Bytes / int64(stats.Cycles))
	}
}

func BenchmarkCycle_Read(b *testing.B) {
	benchmarkBackend(b, input.BackendRead)
}

func BenchmarkCycle_Pread(b *testing.B) {
	benchmarkBackend(b, input.BackendPread)
}

func BenchmarkCycle_OS(b *testing.B) {
	benchmarkBackend(b, input.BackendOS)
}

func BenchmarkCycle_Uring(b *testing.B) {
	benchmarkBackend(b, input.BackendUring)
}

func BenchmarkCycle_Stub(b *testing.B) {
	o := &stubOpener{content: "cpu  1 2 3 4 5 6 7 8 9 10\n"}
	b.ReportAllocs()
	b.ResetTimer()
	if _, err := New(DefaultPath, b.N, o).Run(); err != nil {
		b.Fatal(err)
	}
}
