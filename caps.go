package termio

import (
	"os"
	"strings"

	"github.com/grindlemire/go-termio/pkg/debug"
	"github.com/mattn/go-isatty"
)

// ColorMode describes the level of color support in a terminal.
// Modes are ordered: detection may move a terminal up this scale but
// never back down within one pass.
type ColorMode int

const (
	// ColorMono indicates a monochrome terminal with no color support.
	ColorMono ColorMode = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// String returns a human-readable name for the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorMono:
		return "monochrome"
	case Color16:
		return "16-color"
	case Color256:
		return "256-color"
	case ColorTrue:
		return "true-color"
	}
	return "unknown"
}

// maxColors returns the palette size implied by the mode.
func (m ColorMode) maxColors() int {
	switch m {
	case Color16:
		return 16
	case Color256:
		return 256
	case ColorTrue:
		return 1 << 24
	}
	return 1
}

// Capabilities is an immutable snapshot of what the terminal supports.
// It is computed once per process by DetectCapabilities and cached; see
// Caps and InvalidateCaps.
type Capabilities struct {
	// ColorMode is the negotiated color tier.
	ColorMode ColorMode
	// MaxColors is the palette size. Always consistent with ColorMode
	// (at least 16 for Color16, and so on); a terminfo answer of 8-15
	// colors can put it between 1 and 16 without changing the tier.
	MaxColors int
	// Unicode reports whether the locale indicates UTF-8 text handling.
	Unicode bool
	// Mouse reports SGR mouse tracking support.
	Mouse bool
	// BracketedPaste reports bracketed paste support.
	BracketedPaste bool
	// FocusEvents reports focus-in/focus-out reporting support.
	FocusEvents bool
	// AltScreen reports alternate screen buffer support.
	AltScreen bool
	// Terminal reports whether a terminal is actually attached.
	Terminal bool
	// Term is the raw TERM value, empty when unset.
	Term string
	// TermProgram is the raw TERM_PROGRAM value, empty when unset.
	TermProgram string
	// Reason carries a diagnostic attached by the backend selector when it
	// degraded to TTY mode. It never influences detection.
	Reason string
}

// raise upgrades the color mode if mode outranks the current one.
// Detection sources may only move the rank up, never down, so conflicting
// signals resolve to the most capable answer regardless of order.
func (c *Capabilities) raise(mode ColorMode) {
	if mode > c.ColorMode {
		c.ColorMode = mode
	}
	if mc := c.ColorMode.maxColors(); mc > c.MaxColors {
		c.MaxColors = mc
	}
}

// trueColorPrograms are TERM_PROGRAM values known to support true color.
// Recognition also implies mouse, bracketed paste, and focus reporting.
var trueColorPrograms = map[string]bool{
	"iTerm.app": true,
	"WezTerm":   true,
	"ghostty":   true,
	"kitty":     true,
	"vscode":    true,
	"Hyper":     true,
	"rio":       true,
}

// palettePrograms are TERM_PROGRAM values known to support the 256-color
// palette plus mouse and bracketed paste, but not reliably true color.
var palettePrograms = map[string]bool{
	"Apple_Terminal": true,
	"mintty":         true,
	"tmux":           true,
}

// DetectCapabilities determines terminal capabilities from environment
// variables and an optional terminfo query. It always succeeds: absence of
// every signal yields a conservative 16-color, non-Unicode default.
//
// The result is not cached; use Caps for the cached variant.
func DetectCapabilities() Capabilities {
	return detectCapabilities(defaultTerminfoQuery)
}

// detectCapabilities runs the detection pipeline with an injectable
// terminfo query. Each source may only raise the color rank.
func detectCapabilities(query terminfoQuery) Capabilities {
	caps := Capabilities{
		ColorMode:   ColorMono,
		MaxColors:   1,
		AltScreen:   true,
		Term:        os.Getenv("TERM"),
		TermProgram: os.Getenv("TERM_PROGRAM"),
	}
	caps.Terminal = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	term := strings.ToLower(caps.Term)

	// Exact TERM matches short-circuit the pattern checks below.
	dumb := false
	switch term {
	case "dumb":
		dumb = true
		caps.AltScreen = false
	case "linux":
		caps.raise(Color16)
	default:
		switch {
		case strings.Contains(term, "truecolor"), strings.Contains(term, "24bit"):
			caps.raise(ColorTrue)
		case strings.Contains(term, "256color"):
			caps.raise(Color256)
		}
		// Common emulator families get a 256-color floor even without an
		// explicit -256color suffix.
		for _, prefix := range []string{"xterm", "screen", "tmux"} {
			if strings.HasPrefix(term, prefix) {
				caps.raise(Color256)
				break
			}
		}
	}

	// COLORTERM is authoritative for true color regardless of TERM.
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.raise(ColorTrue)
	}

	// Known emulators identified by TERM_PROGRAM or, for Windows Terminal,
	// its session marker.
	if trueColorPrograms[caps.TermProgram] || os.Getenv("WT_SESSION") != "" {
		caps.raise(ColorTrue)
		caps.Mouse = true
		caps.BracketedPaste = true
		caps.FocusEvents = true
	} else if palettePrograms[caps.TermProgram] {
		caps.raise(Color256)
		caps.Mouse = true
		caps.BracketedPaste = true
	}

	caps.Unicode = localeIsUTF8()

	// Terminfo may know more than the environment does. Any failure of the
	// query counts as no information.
	if caps.Term != "" && query != nil {
		if colors, ok := query(caps.Term); ok && colors >= 8 {
			switch {
			case colors >= 1<<24:
				caps.raise(ColorTrue)
			case colors >= 256:
				caps.raise(Color256)
			case colors >= 16:
				caps.raise(Color16)
			default:
				// 8-15 colors raises the palette size but not the tier.
				if colors > caps.MaxColors {
					caps.MaxColors = colors
				}
			}
		}
	}

	// Conservative floor: anything that is not explicitly dumb gets 16
	// colors.
	if !dumb {
		caps.raise(Color16)
	}

	// Finalization: a 256-color terminal is assumed to handle mouse
	// tracking and bracketed paste; focus reporting is only assumed at the
	// true-color tier.
	if caps.MaxColors >= 256 {
		caps.Mouse = true
		caps.BracketedPaste = true
	}
	if caps.ColorMode == ColorTrue {
		caps.FocusEvents = true
	}

	debug.Log("capabilities: %s colors=%d unicode=%v mouse=%v paste=%v focus=%v term=%q program=%q",
		caps.ColorMode, caps.MaxColors, caps.Unicode, caps.Mouse, caps.BracketedPaste, caps.FocusEvents,
		caps.Term, caps.TermProgram)

	return caps
}

// localeIsUTF8 reports whether the first non-empty of LC_ALL, LC_CTYPE and
// LANG names a UTF-8 locale. Later variables are not consulted once an
// earlier one is set, matching POSIX locale precedence.
func localeIsUTF8() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToUpper(v)
		return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
	}
	return false
}
