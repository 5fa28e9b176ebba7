//go:build unix

package termio

import (
	"errors"
	"syscall"

	"golang.org/x/term"
)

// rawState stores the original terminal attributes for restoration.
type rawState struct {
	fd   int
	prev *term.State
}

// enableRawMode puts the terminal into raw mode (no echo, no canonical
// buffering, no signal keys) and returns the previous state.
func enableRawMode(fd int) (*rawState, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawState{fd: fd, prev: prev}, nil
}

// disableRawMode restores the terminal to its pre-raw state.
func disableRawMode(s *rawState) error {
	if s == nil || s.prev == nil {
		return nil
	}
	return term.Restore(s.fd, s.prev)
}

// rawOutcome classifies the result of a raw-mode attempt.
type rawOutcome int

const (
	// rawOK means raw mode is active.
	rawOK rawOutcome = iota
	// rawClaimed means another session holds the terminal.
	rawClaimed
	// rawUnsupported means the primitive does not apply here (no tty).
	rawUnsupported
	// rawOther is any failure outside the known partitions.
	rawOther
)

// classifyRawError partitions termios errnos. ENOTTY/ENXIO/ENODEV mean the
// fd cannot be a controlling terminal; EBUSY/EPERM/EACCES/EIO mean a
// foreground session already owns it.
func classifyRawError(err error) rawOutcome {
	if err == nil {
		return rawOK
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOTTY, syscall.ENXIO, syscall.ENODEV:
			return rawUnsupported
		case syscall.EBUSY, syscall.EPERM, syscall.EACCES, syscall.EIO:
			return rawClaimed
		}
	}
	return rawOther
}
