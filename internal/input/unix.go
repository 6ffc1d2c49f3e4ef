package input

import (
	"errors"
	"io"
	"io/fs"

	"golang.org/x/sys/unix"
)

// UnixOpener opens files with unix.Open and reads them with raw read(2) or
// pread(2) calls. Interrupted calls are not retried.
type UnixOpener struct {
	positional bool
	// noatime is cleared after the kernel first refuses O_NOATIME, so files
	// we don't own (procfs entries as non-root) cost one open per cycle.
	noatime bool
}

// NewReadOpener returns an opener whose handles use read(2) and the kernel's
// file position.
func NewReadOpener() *UnixOpener {
	return &UnixOpener{noatime: true}
}

// NewPreadOpener returns an opener whose handles use pread(2) at an offset
// tracked by the handle (no seek state in the kernel).
func NewPreadOpener() *UnixOpener {
	return &UnixOpener{positional: true, noatime: true}
}

func (o *UnixOpener) Open(path string) (io.ReadCloser, error) {
	fd, err := o.openFile(path)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return &fdHandle{fd: fd, path: path, positional: o.positional}, nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func (o *UnixOpener) openFile(path string) (int, error) {
	const flags = unix.O_RDONLY | unix.O_CLOEXEC
	if o.noatime {
		fd, err := unix.Open(path, flags|unix.O_NOATIME, 0)
		if !errors.Is(err, unix.EPERM) {
			return fd, err
		}
		o.noatime = false
	}
	return unix.Open(path, flags, 0)
}

// fdHandle is a single-use handle over a raw file descriptor.
type fdHandle struct {
	fd         int
	path       string
	positional bool
	off        int64
}

func (h *fdHandle) Read(p []byte) (int, error) {
	if h.fd < 0 {
		return 0, &fs.PathError{Op: "read", Path: h.path, Err: fs.ErrClosed}
	}
	if len(p) == 0 {
		return 0, nil
	}

	var n int
	var err error
	if h.positional {
		n, err = unix.Pread(h.fd, p, h.off)
	} else {
		n, err = unix.Read(h.fd, p)
	}
	if err != nil {
		return 0, &fs.PathError{Op: "read", Path: h.path, Err: err}
	}
	if n == 0 {
		return 0, io.EOF
	}
	h.off += int64(n)
	return n, nil
}

func (h *fdHandle) Close() error {
	if h.fd < 0 {
		return &fs.PathError{Op: "close", Path: h.path, Err: fs.ErrClosed}
	}
	err := unix.Close(h.fd)
	h.fd = -1
	if err != nil {
		return &fs.PathError{Op: "close", Path: h.path, Err: err}
	}
	return nil
}
