package output

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// replacementChar stands in for invalid UTF-8 in echoed content.
var replacementChar = []byte("�")

// Writer writes to a file descriptor using writev.
type Writer struct {
	fd  int
	buf []byte // scratch for lossy decoding, reused across Echo calls
}

// NewWriter creates a Writer for fd. It does not take ownership of fd.
func NewWriter(fd uintptr) *Writer {
	return &Writer{fd: int(fd)}
}

// Write writes all of data, looping on short writes.
func (w *Writer) Write(data []byte) (int, error) {
	total := 0
	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err != nil {
			return total, err
		}
		total += n
		data = data[n:]
	}
	return total, nil
}

// Echo writes buf as text, replacing invalid UTF-8 sequences. Its signature
// matches sampler.Sink so it can be installed as the verbose diagnostic.
func (w *Writer) Echo(_ int, buf []byte) error {
	if !utf8.Valid(buf) {
		w.buf = append(w.buf[:0], bytes.ToValidUTF8(buf, replacementChar)...)
		buf = w.buf
	}
	_, err := w.Write(buf)
	return err
}
