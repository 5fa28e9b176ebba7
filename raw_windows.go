//go:build windows

package termio

import "golang.org/x/term"

// rawState stores the original console state for restoration.
type rawState struct {
	fd   int
	prev *term.State
}

// enableRawMode enables raw console input. On builds older than the
// recorded minimum (see windowsMinBuild) the call fails and selection
// degrades to TTY mode.
func enableRawMode(fd int) (*rawState, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawState{fd: fd, prev: prev}, nil
}

// disableRawMode restores the console to its pre-raw state.
func disableRawMode(s *rawState) error {
	if s == nil || s.prev == nil {
		return nil
	}
	return term.Restore(s.fd, s.prev)
}

type rawOutcome int

const (
	rawOK rawOutcome = iota
	rawClaimed
	rawUnsupported
	rawOther
)

// classifyRawError on Windows has no errno partition worth trusting; any
// failure of the console primitive is treated as unsupported, which lands
// in the same TTY fallback.
func classifyRawError(err error) rawOutcome {
	if err == nil {
		return rawOK
	}
	return rawUnsupported
}
