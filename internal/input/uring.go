package input

import (
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/dl/procbench/internal/uring"
)

// uringEntries is the ring size. Only one SQE is ever in flight.
const uringEntries = 4

// UringOpener performs open, read and close as io_uring operations on a
// single ring, waiting for each completion before returning.
// It must be closed to release the ring.
type UringOpener struct {
	ring *uring.Ring
}

// NewUringOpener sets up the ring. It fails on kernels without io_uring or
// where io_uring is disabled.
func NewUringOpener() (*UringOpener, error) {
	ring, err := uring.NewRing(uringEntries)
	if err != nil {
		return nil, fmt.Errorf("uring backend: %w", err)
	}
	return &UringOpener{ring: ring}, nil
}

func (o *UringOpener) Open(path string) (io.ReadCloser, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	fd, err := o.ring.Openat(p, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return &uringHandle{ring: o.ring, fd: fd, path: path}, nil
}

// Close releases the ring. Handles still open are not closed.
func (o *UringOpener) Close() error {
	return o.ring.Close()
}

type uringHandle struct {
	ring *uring.Ring
	fd   int
	path string
	off  uint64
}

func (h *uringHandle) Read(p []byte) (int, error) {
	if h.fd < 0 {
		return 0, &fs.PathError{Op: "read", Path: h.path, Err: fs.ErrClosed}
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := h.ring.Read(h.fd, p, h.off)
	if err != nil {
		return 0, &fs.PathError{Op: "read", Path: h.path, Err: err}
	}
	if n == 0 {
		return 0, io.EOF
	}
	h.off += uint64(n)
	return n, nil
}

func (h *uringHandle) Close() error {
	if h.fd < 0 {
		return &fs.PathError{Op: "close", Path: h.path, Err: fs.ErrClosed}
	}
	err := h.ring.CloseFile(h.fd)
	h.fd = -1
	if err != nil {
		return &fs.PathError{Op: "close", Path: h.path, Err: err}
	}
	return nil
}
