//go:build windows

package termio

import (
	"errors"
	"os"
)

// newPlatformReader is a stub on Windows: the console input API delivers
// records, not a byte stream, and is not wired up at this tier.
func newPlatformReader(in *os.File) (EventReader, error) {
	return nil, errors.New("termio: event reader not supported on windows")
}
