package uring

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"
)

// io_uring opcodes from linux/io_uring.h.
const (
	OpOpenat = 18
	OpClose  = 19
	OpRead   = 22
)

// atFdCwd is AT_FDCWD: relative paths in openat resolve against the cwd.
const atFdCwd = -100

// PrepOpenat sets up an SQE for IORING_OP_OPENAT.
// pathPtr must point to a NUL-terminated string that stays alive until the
// CQE is reaped.
func (sqe *SQE) PrepOpenat(dirfd int32, pathPtr *byte, flags uint32, mode uint32) {
	*sqe = SQE{}
	sqe.Opcode = OpOpenat
	sqe.Fd = dirfd
	sqe.Addr = uint64(uintptr(unsafe.Pointer(pathPtr)))
	sqe.Len = mode
	sqe.OpcodeFlags = flags
}

// PrepRead sets up an SQE for IORING_OP_READ.
func (sqe *SQE) PrepRead(fd int32, buf *byte, nbytes uint32, offset uint64) {
	*sqe = SQE{}
	sqe.Opcode = OpRead
	sqe.Fd = fd
	sqe.Addr = uint64(uintptr(unsafe.Pointer(buf)))
	sqe.Len = nbytes
	sqe.Off = offset
}

// PrepClose sets up an SQE for IORING_OP_CLOSE.
func (sqe *SQE) PrepClose(fd int32) {
	*sqe = SQE{}
	sqe.Opcode = OpClose
	sqe.Fd = fd
}

// Openat opens pathPtr relative to the current directory and waits for the
// result. It returns the new file descriptor.
func (r *Ring) Openat(pathPtr *byte, flags uint32, mode uint32) (int, error) {
	r.GetSQE(0).PrepOpenat(atFdCwd, pathPtr, flags, mode)
	res, err := r.do()
	runtime.KeepAlive(pathPtr)
	if err != nil {
		return -1, err
	}
	return int(res), nil
}

// Read reads into buf from fd at offset and waits for the result.
// A zero-length buf is a no-op.
func (r *Ring) Read(fd int, buf []byte, offset uint64) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	r.GetSQE(0).PrepRead(int32(fd), &buf[0], uint32(len(buf)), offset)
	res, err := r.do()
	runtime.KeepAlive(buf)
	if err != nil {
		return 0, err
	}
	return int(res), nil
}

// CloseFile closes fd through the ring and waits for the result.
func (r *Ring) CloseFile(fd int) error {
	r.GetSQE(0).PrepClose(int32(fd))
	_, err := r.do()
	return err
}

// do submits the SQE at index 0 and waits for its completion, matched by
// UserData. A negative CQE result is returned as the matching errno.
func (r *Ring) do() (int32, error) {
	r.lastID++
	id := r.lastID
	r.GetSQE(0).UserData = id

	var res int32
	reaped := false
	err := r.SubmitAndWait(1, func(cqe *CQE) {
		if cqe.UserData == id {
			res = cqe.Res
			reaped = true
		}
	})
	if err != nil {
		return 0, err
	}
	if !reaped {
		return 0, fmt.Errorf("io_uring: no completion for request %d", id)
	}
	if res < 0 {
		return res, syscall.Errno(-res)
	}
	return res, nil
}
