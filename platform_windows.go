//go:build windows

package termio

import (
	"os"
	"runtime"
)

// windowsMinBuild is the first Windows 10 build whose console host accepts
// virtual-terminal sequences (TH2, build 10586).
const windowsMinBuild = 10586

// platformInfo reports the Windows stub tier: no POSIX signals beyond
// interrupt, no pty allocation, no terminfo database. Virtual-terminal
// support is inferred from the Windows Terminal session marker rather than
// assumed.
func platformInfo() PlatformInfo {
	return PlatformInfo{
		OS:              runtime.GOOS,
		Signals:         false,
		InterruptSignal: os.Interrupt,
		PTY:             false,
		Terminfo:        false,
		MinBuild:        windowsMinBuild,
		VirtualTerminal: os.Getenv("WT_SESSION") != "",
	}
}
