package input

import (
	"io"
	"os"
)

// OSOpener opens files through the os package. It is the baseline the raw
// backends are compared against: the runtime retries EINTR and routes reads
// through its poller.
type OSOpener struct{}

// NewOSOpener creates an OSOpener.
func NewOSOpener() *OSOpener {
	return &OSOpener{}
}

func (o *OSOpener) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
