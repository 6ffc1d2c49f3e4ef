package input

import (
	"fmt"
	"strings"
)

// Backend names accepted by NewOpener.
const (
	BackendRead  = "read"
	BackendPread = "pread"
	BackendOS    = "os"
	BackendUring = "uring"
)

// Backends lists the available backends, default first.
func Backends() []string {
	return []string{BackendRead, BackendPread, BackendOS, BackendUring}
}

// NewOpener creates the Opener for the named backend. Selection:
//   - read  -> UnixOpener, read(2) from the kernel file position
//   - pread -> UnixOpener, pread(2) at a tracked offset
//   - os    -> OSOpener
//   - uring -> UringOpener (caller must Close it)
func NewOpener(backend string) (Opener, error) {
	switch strings.ToLower(backend) {
	case BackendRead, "":
		return NewReadOpener(), nil
	case BackendPread:
		return NewPreadOpener(), nil
	case BackendOS:
		return NewOSOpener(), nil
	case BackendUring:
		o, err := NewUringOpener()
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want one of %s)", backend, strings.Join(Backends(), ", "))
	}
}
