//go:build unix

package termio

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/creack/pty"
)

// withStdin swaps os.Stdin for the duration of a selection test.
// Backend selection reads the process's real stdin, so these tests are
// serialized by the testing package's default single-process execution.
func withStdin(t *testing.T, f *os.File, fn func()) {
	t.Helper()
	orig := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = orig }()
	fn()
}

func TestSelectBackend_RealPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot allocate a pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	withStdin(t, tty, func() {
		sel := SelectBackend()
		raw, ok := sel.(*RawSelection)
		if !ok {
			t.Fatalf("SelectBackend() on a pty = %T, want *RawSelection", sel)
		}
		if !raw.Active() {
			t.Error("fresh RawSelection is not active")
		}
		if raw.Fd() != int(tty.Fd()) {
			t.Errorf("Fd() = %d, want %d", raw.Fd(), int(tty.Fd()))
		}

		// While raw mode is held, selection returns the same value.
		if again := SelectBackend(); again != sel {
			t.Errorf("second SelectBackend() = %v, want the active selection", again)
		}

		if err := raw.Teardown(); err != nil {
			t.Errorf("Teardown() = %v", err)
		}
		if raw.Active() {
			t.Error("RawSelection still active after Teardown")
		}
		// Idempotent.
		if err := raw.Teardown(); err != nil {
			t.Errorf("second Teardown() = %v", err)
		}
	})
}

func TestSelectBackend_TeardownAllowsReselection(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot allocate a pty: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	withStdin(t, tty, func() {
		first, ok := SelectBackend().(*RawSelection)
		if !ok {
			t.Fatal("first selection did not take raw mode")
		}
		first.Teardown()

		second, ok := SelectBackend().(*RawSelection)
		if !ok {
			t.Fatal("selection after teardown did not take raw mode")
		}
		if second == first {
			t.Error("selection after teardown returned the torn-down value")
		}
		second.Teardown()
	})
}

func TestSelectBackend_NotATerminal(t *testing.T) {
	devnull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("opening %s: %v", os.DevNull, err)
	}
	defer devnull.Close()

	withStdin(t, devnull, func() {
		sel := SelectBackend()
		tty, ok := sel.(TtySelection)
		if !ok {
			t.Fatalf("SelectBackend() on %s = %T, want TtySelection", os.DevNull, sel)
		}
		if tty.Caps.Reason == "" {
			t.Error("degraded selection carries no reason")
		}
	})
}

func TestSelectBackendExplicit(t *testing.T) {
	opts := map[string]string{"rows": "24", "cols": "80"}
	sel := SelectBackendExplicit("test-harness", opts)

	exp, ok := sel.(ExplicitSelection)
	if !ok {
		t.Fatalf("SelectBackendExplicit() = %T, want ExplicitSelection", sel)
	}
	if exp.Backend != "test-harness" {
		t.Errorf("Backend = %q, want %q", exp.Backend, "test-harness")
	}
	if exp.Options["rows"] != "24" || exp.Options["cols"] != "80" {
		t.Errorf("Options = %v, not passed through verbatim", exp.Options)
	}
}

func TestClassifyRawError(t *testing.T) {
	type tc struct {
		err      error
		expected rawOutcome
	}

	tests := map[string]tc{
		"no error":        {err: nil, expected: rawOK},
		"not a tty":       {err: syscall.ENOTTY, expected: rawUnsupported},
		"no such device":  {err: syscall.ENXIO, expected: rawUnsupported},
		"missing device":  {err: syscall.ENODEV, expected: rawUnsupported},
		"busy":            {err: syscall.EBUSY, expected: rawClaimed},
		"permission":      {err: syscall.EPERM, expected: rawClaimed},
		"access":          {err: syscall.EACCES, expected: rawClaimed},
		"io error":        {err: syscall.EIO, expected: rawClaimed},
		"unknown errno":   {err: syscall.EINVAL, expected: rawOther},
		"non-errno error": {err: errors.New("something else"), expected: rawOther},
		"wrapped errno": {
			err:      &os.SyscallError{Syscall: "ioctl", Err: syscall.ENOTTY},
			expected: rawUnsupported,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := classifyRawError(tt.err); got != tt.expected {
				t.Errorf("classifyRawError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
