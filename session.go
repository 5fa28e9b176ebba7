package termio

import (
	"fmt"
	"io"
	"sync"

	"github.com/grindlemire/go-termio/pkg/debug"
)

// Session ties a negotiated capability snapshot to an output stream and
// keeps a ledger of every mode toggle it emitted. Close reverses the
// ledger in strict LIFO order, so teardown undoes exactly what setup did,
// in the opposite order, no matter how far setup got.
type Session struct {
	mu      sync.Mutex
	out     io.Writer
	caps    Capabilities
	sel     *RawSelection
	applied []appliedMode
	closed  bool
}

// appliedMode records one emitted toggle and its direction.
type appliedMode struct {
	mode    Mode
	enabled bool
}

// NewSession creates a session writing to out, honoring the given
// capability snapshot for everything it emits.
func NewSession(out io.Writer, caps Capabilities) *Session {
	return &Session{out: out, caps: caps}
}

// AttachRaw hands the session a raw selection to release as the final
// teardown step.
func (s *Session) AttachRaw(sel *RawSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = sel
}

// Caps returns the session's capability snapshot.
func (s *Session) Caps() Capabilities {
	return s.caps
}

// EnableMode emits the enable sequence for a mode and records it for
// teardown. Modes the terminal does not support are skipped silently;
// capability shortfalls degrade, they do not fail.
func (s *Session) EnableMode(m Mode) error {
	return s.toggle(m, true)
}

// DisableMode emits the disable sequence for a mode and records it.
func (s *Session) DisableMode(m Mode) error {
	return s.toggle(m, false)
}

func (s *Session) toggle(m Mode, enable bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("termio: session is closed")
	}
	if !s.supports(m) {
		debug.Log("session: skipping unsupported mode %s", m)
		return nil
	}

	seq := SetMode(m)
	if !enable {
		seq = ResetMode(m)
	}
	if _, err := s.out.Write(seq); err != nil {
		return fmt.Errorf("termio: toggling %s: %w", m, err)
	}
	s.applied = append(s.applied, appliedMode{mode: m, enabled: enable})
	return nil
}

// supports reports whether the snapshot allows the mode.
func (s *Session) supports(m Mode) bool {
	switch m {
	case ModeAltScreen:
		return s.caps.AltScreen
	case ModeBracketedPaste:
		return s.caps.BracketedPaste
	case ModeFocusEvents:
		return s.caps.FocusEvents
	case ModeMouseX10, ModeMouseNormal, ModeMouseButton, ModeMouseAny, ModeMouseSGR:
		return s.caps.Mouse
	}
	return true
}

// Style emits one merged SGR sequence for the style, constrained to the
// session's negotiated color mode.
func (s *Session) Style(st Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("termio: session is closed")
	}
	_, err := s.out.Write(SGR(st, s.caps.ColorMode))
	return err
}

// Close reverses every recorded toggle in opposite order, then releases
// raw mode if one was attached. Idempotent: calls after the first are
// no-ops. Partial teardown is not acceptable, so write errors are noted
// but do not stop the remaining reversals.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	for i := len(s.applied) - 1; i >= 0; i-- {
		a := s.applied[i]
		seq := ResetMode(a.mode)
		if !a.enabled {
			seq = SetMode(a.mode)
		}
		if _, err := s.out.Write(seq); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("termio: reversing %s: %w", a.mode, err)
		}
	}
	s.applied = nil

	if s.sel != nil {
		if err := s.sel.Teardown(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.sel = nil
	}

	debug.Log("session: closed (err=%v)", firstErr)
	return firstErr
}
