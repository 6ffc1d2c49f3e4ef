package input

import (
	"io"
)

// MinRead is the smallest free space ReadAll offers to a single Read call.
const MinRead = 512

// Opener opens a named resource for reading.
// The caller owns the returned handle and must close it exactly once.
// Openers that hold process-wide resources also implement io.Closer.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// ReadAll reads from r until end-of-stream, appending to buf and growing it as
// needed. Pseudo-files report a size of zero, so the length is never known
// up front. On error the bytes read so far are returned alongside it.
func ReadAll(r io.Reader, buf []byte) ([]byte, error) {
	for {
		if cap(buf)-len(buf) < MinRead {
			grown := make([]byte, len(buf), 2*cap(buf)+MinRead)
			copy(grown, buf)
			buf = grown
		}
		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return buf, err
		}
	}
}
