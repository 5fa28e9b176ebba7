package termio

// Mode identifies a DEC private mode the encoder can toggle. Each mode is a
// fixed sequence pair: CSI ? <code> h to enable, CSI ? <code> l to disable.
type Mode int

const (
	// ModeCursorVisible controls cursor visibility (DECTCEM).
	ModeCursorVisible Mode = iota
	// ModeAltScreen switches to the alternate screen buffer.
	ModeAltScreen
	// ModeBracketedPaste wraps pasted text in start/end markers.
	ModeBracketedPaste
	// ModeFocusEvents enables focus-in/focus-out reporting.
	ModeFocusEvents
	// ModeMouseX10 enables the original press-only X10 mouse reports.
	ModeMouseX10
	// ModeMouseNormal enables press and release reports (VT200 tracking).
	ModeMouseNormal
	// ModeMouseButton adds motion-while-pressed (drag) reports.
	ModeMouseButton
	// ModeMouseAny reports all motion, with or without a button held.
	ModeMouseAny
	// ModeMouseSGR switches mouse reports to the SGR extended encoding.
	ModeMouseSGR
)

// modeCodes maps each mode to its DEC private mode number.
var modeCodes = map[Mode]string{
	ModeCursorVisible:  "25",
	ModeAltScreen:      "1049",
	ModeBracketedPaste: "2004",
	ModeFocusEvents:    "1004",
	ModeMouseX10:       "9",
	ModeMouseNormal:    "1000",
	ModeMouseButton:    "1002",
	ModeMouseAny:       "1003",
	ModeMouseSGR:       "1006",
}

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case ModeCursorVisible:
		return "cursor-visible"
	case ModeAltScreen:
		return "alt-screen"
	case ModeBracketedPaste:
		return "bracketed-paste"
	case ModeFocusEvents:
		return "focus-events"
	case ModeMouseX10:
		return "mouse-x10"
	case ModeMouseNormal:
		return "mouse-normal"
	case ModeMouseButton:
		return "mouse-button"
	case ModeMouseAny:
		return "mouse-any"
	case ModeMouseSGR:
		return "mouse-sgr"
	}
	return "unknown"
}

// SetMode returns the sequence enabling the given mode.
func SetMode(m Mode) []byte {
	return modeSequence(m, 'h')
}

// ResetMode returns the sequence disabling the given mode.
func ResetMode(m Mode) []byte {
	return modeSequence(m, 'l')
}

func modeSequence(m Mode, final byte) []byte {
	code, ok := modeCodes[m]
	if !ok {
		return nil
	}
	b := newSeqBuilder(8)
	b.writeCSI()
	b.writeByte('?')
	b.buf = append(b.buf, code...)
	b.writeByte(final)
	return b.bytes()
}

// ShowCursor returns the sequence making the cursor visible.
func ShowCursor() []byte { return SetMode(ModeCursorVisible) }

// HideCursor returns the sequence making the cursor invisible.
func HideCursor() []byte { return ResetMode(ModeCursorVisible) }

// EnterAltScreen returns the sequence switching to the alternate screen.
func EnterAltScreen() []byte { return SetMode(ModeAltScreen) }

// ExitAltScreen returns the sequence switching back to the main screen.
func ExitAltScreen() []byte { return ResetMode(ModeAltScreen) }
