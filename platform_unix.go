//go:build unix

package termio

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
)

// terminfoSearchDirs are the conventional terminfo database locations, in
// lookup order. The TERMINFO variable, when set, takes precedence.
var terminfoSearchDirs = []string{
	"/usr/share/terminfo",
	"/lib/terminfo",
	"/etc/terminfo",
	"/usr/lib/terminfo",
}

func platformInfo() PlatformInfo {
	dirs := terminfoDirs()
	return PlatformInfo{
		OS:              runtime.GOOS,
		Signals:         true,
		ResizeSignal:    syscall.SIGWINCH,
		InterruptSignal: syscall.SIGINT,
		TerminateSignal: syscall.SIGTERM,
		PTY:             true,
		Terminfo:        terminfoPresent(dirs),
		TerminfoDirs:    dirs,
		VirtualTerminal: true,
	}
}

// terminfoDirs returns the search paths, honoring TERMINFO and
// TERMINFO_DIRS overrides ahead of the conventional locations.
func terminfoDirs() []string {
	var dirs []string
	if v := os.Getenv("TERMINFO"); v != "" {
		dirs = append(dirs, v)
	}
	if v := os.Getenv("TERMINFO_DIRS"); v != "" {
		dirs = append(dirs, filepath.SplitList(v)...)
	}
	dirs = append(dirs, terminfoSearchDirs...)

	home, err := os.UserHomeDir()
	if err == nil {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}
	return dirs
}

// terminfoPresent reports whether the database is usable: either tput is on
// PATH or one of the search directories exists.
func terminfoPresent(dirs []string) bool {
	if _, err := exec.LookPath(tputCommand); err == nil {
		return true
	}
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
