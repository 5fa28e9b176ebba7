package termio

import "os"

// PlatformInfo reports OS-level facts the capability detector and backend
// selector rely on. All OS-conditional logic lives behind this type; the
// rest of the package consults it instead of branching on GOOS.
type PlatformInfo struct {
	// OS is the runtime.GOOS value the info was built for.
	OS string
	// Signals reports whether POSIX-style signal delivery is available.
	Signals bool
	// ResizeSignal, InterruptSignal and TerminateSignal are the signals to
	// subscribe for window resize, interrupt and termination. Nil entries
	// mean the signal does not exist on this platform.
	ResizeSignal    os.Signal
	InterruptSignal os.Signal
	TerminateSignal os.Signal
	// PTY reports whether pseudo-terminal allocation is supported.
	PTY bool
	// Terminfo reports whether a terminal-info database is available.
	Terminfo bool
	// TerminfoDirs lists the database search paths, most specific first.
	TerminfoDirs []string
	// MinBuild is the minimum OS build for virtual-terminal sequences.
	// Zero on platforms without a build requirement.
	MinBuild int
	// VirtualTerminal reports whether VT processing was observed, not
	// assumed. Always true on unix.
	VirtualTerminal bool
}

// SupportedSignals returns the non-nil signals the platform delivers.
func (p PlatformInfo) SupportedSignals() []os.Signal {
	var sigs []os.Signal
	for _, s := range []os.Signal{p.ResizeSignal, p.InterruptSignal, p.TerminateSignal} {
		if s != nil {
			sigs = append(sigs, s)
		}
	}
	return sigs
}

// Platform returns the facts for the current OS.
func Platform() PlatformInfo {
	return platformInfo()
}
