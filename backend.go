package termio

import (
	"os"
	"sync"

	"github.com/grindlemire/go-termio/pkg/debug"
	"github.com/mattn/go-isatty"
)

// Selection is the result of backend selection: Raw when the process owns
// exclusive raw terminal control, Tty when it degraded to cooperative mode,
// or Explicit when the caller bypassed detection.
type Selection interface {
	// isSelection is a marker method to close the sum.
	isSelection()
}

// RawSelection records that exclusive raw mode is active. The terminal
// stays in raw mode until Teardown.
type RawSelection struct {
	fd    int
	state *rawState

	mu     sync.Mutex
	active bool
}

func (*RawSelection) isSelection() {}

// Active reports whether raw mode is still held.
func (s *RawSelection) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Fd returns the file descriptor raw mode was enabled on.
func (s *RawSelection) Fd() int {
	return s.fd
}

// Teardown restores the terminal and releases the process-wide selection
// slot so SelectBackend may run again. Idempotent: repeated calls after the
// first are no-ops.
func (s *RawSelection) Teardown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil
	}
	s.active = false

	err := disableRawMode(s.state)

	selectMu.Lock()
	if activeRaw == s {
		activeRaw = nil
	}
	selectMu.Unlock()

	debug.Log("backend: raw mode released (err=%v)", err)
	return err
}

// TtySelection is the degraded cooperative mode, carrying a freshly
// detected capability snapshot. Caps.Reason records why raw mode was not
// taken; it is diagnostic only.
type TtySelection struct {
	Caps Capabilities
}

func (TtySelection) isSelection() {}

// ExplicitSelection bypasses detection entirely and is returned verbatim
// from SelectBackendExplicit.
type ExplicitSelection struct {
	Backend string
	Options map[string]string
}

func (ExplicitSelection) isSelection() {}

// Selection is a process-wide side effect: raw mode mutates real terminal
// state, so callers are serialized and at most one RawSelection exists
// until it is torn down.
var (
	selectMu  sync.Mutex
	activeRaw *RawSelection
)

// SelectBackend decides whether this process can own exclusive raw
// terminal control. It never guesses from the environment: it attempts the
// raw-mode primitive and branches on the real outcome. Every failure path
// degrades to TtySelection; selection itself cannot fail.
//
// While a RawSelection is active, further calls return it unchanged.
func SelectBackend() Selection {
	selectMu.Lock()
	defer selectMu.Unlock()

	if activeRaw != nil {
		return activeRaw
	}

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ttyFallback("stdin is not a terminal")
	}

	state, err := enableRawMode(int(fd))
	switch classifyRawError(err) {
	case rawOK:
		activeRaw = &RawSelection{fd: int(fd), state: state, active: true}
		debug.Log("backend: raw mode acquired on fd %d", fd)
		return activeRaw
	case rawClaimed:
		return ttyFallback("terminal already claimed: " + err.Error())
	case rawUnsupported:
		return ttyFallback("raw mode unsupported: " + err.Error())
	default:
		// Unknown failure: same fallback, reason kept for diagnostics.
		return ttyFallback(err.Error())
	}
}

// SelectBackendExplicit bypasses detection and returns the given backend
// reference and options verbatim.
func SelectBackendExplicit(backend string, options map[string]string) Selection {
	return ExplicitSelection{Backend: backend, Options: options}
}

func ttyFallback(reason string) Selection {
	caps := DetectCapabilities()
	caps.Reason = reason
	debug.Log("backend: tty fallback: %s", reason)
	return TtySelection{Caps: caps}
}
