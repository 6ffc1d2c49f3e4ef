package uring

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func newTestRing(t *testing.T) *Ring {
	t.Helper()
	r, err := NewRing(4)
	if err != nil {
		t.Skipf("io_uring unavailable: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRing_OpenReadClose(t *testing.T) {
	r := newTestRing(t)

	path := filepath.Join(t.TempDir(), "stat")
	content := []byte("cpu  1 2 3 4\nctxt 42\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	p, err := unix.BytePtrFromString(path)
	if err != nil {
		t.Fatal(err)
	}
	fd, err := r.Openat(p, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("Openat() error: %v", err)
	}

	buf := make([]byte, 64)
	n, err := r.Read(fd, buf, 0)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if string(buf[:n]) != string(content) {
		t.Errorf("data = %q, want %q", buf[:n], content)
	}

	n, err = r.Read(fd, buf, uint64(len(content)))
	if err != nil {
		t.Fatalf("Read() at EOF error: %v", err)
	}
	if n != 0 {
		t.Errorf("Read() at EOF = %d, want 0", n)
	}

	if err := r.CloseFile(fd); err != nil {
		t.Fatalf("CloseFile() error: %v", err)
	}
}

func TestRing_OpenatMissing(t *testing.T) {
	r := newTestRing(t)

	p, err := unix.BytePtrFromString(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Openat(p, unix.O_RDONLY, 0)
	if !errors.Is(err, syscall.ENOENT) {
		t.Errorf("Openat() error = %v, want ENOENT", err)
	}
}

func TestRing_ReadEmptyBuffer(t *testing.T) {
	r := newTestRing(t)

	n, err := r.Read(0, nil, 0)
	if err != nil || n != 0 {
		t.Errorf("Read(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestRing_CloseTwice(t *testing.T) {
	r, err := NewRing(4)
	if err != nil {
		t.Skipf("io_uring unavailable: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

// signalFlood delivers SIGUSR1 to the process every few microseconds until
// the returned stop function is called.
func signalFlood(t *testing.T) (stop func()) {
	t.Helper()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGUSR1)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		pid := os.Getpid()
		for {
			select {
			case <-done:
				return
			case <-sigs:
			default:
			}
			syscall.Kill(pid, syscall.SIGUSR1)
			time.Sleep(20 * time.Microsecond)
		}
	}()
	return func() {
		close(done)
		<-stopped
		signal.Stop(sigs)
	}
}

func TestRing_CompletionsSurviveSignals(t *testing.T) {
	r := newTestRing(t)

	path := filepath.Join(t.TempDir(), "stat")
	content := []byte("cpu  10 20 30 40 50 60 70 80\nintr 1234\nctxt 5678\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		t.Fatal(err)
	}

	stop := signalFlood(t)
	defer stop()

	buf := make([]byte, 256)
	for i := 0; i < 20000; i++ {
		fd, err := r.Openat(p, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != nil {
			t.Fatalf("cycle %d: Openat() error: %v", i, err)
		}
		if fd <= 2 {
			t.Fatalf("cycle %d: Openat() = fd %d, want a fresh descriptor", i, fd)
		}
		n, err := r.Read(fd, buf, 0)
		if err != nil {
			t.Fatalf("cycle %d: Read() error: %v", i, err)
		}
		if n != len(content) {
			t.Fatalf("cycle %d: Read() = %d bytes, want %d", i, n, len(content))
		}
		if err := r.CloseFile(fd); err != nil {
			t.Fatalf("cycle %d: CloseFile() error: %v", i, err)
		}
	}
}
