package termio

import (
	"bytes"
	"unicode/utf8"
)

// decodeState says what the decoder is in the middle of parsing when a
// chunk ends inside a sequence.
type decodeState int

const (
	// stateGround means no sequence is pending.
	stateGround decodeState = iota
	// stateEscape means a lone ESC was seen; the sequence type is unknown.
	stateEscape
	// stateCSI means the decoder is inside an ESC [ sequence.
	stateCSI
	// stateSS3 means ESC O was seen and the final byte is outstanding.
	stateSS3
	// stateMouseX10 means ESC [ M was seen; payload bytes are outstanding.
	stateMouseX10
	// statePaste means the decoder is inside a bracketed paste.
	statePaste
	// stateUTF8 means a multibyte rune is split across chunks.
	stateUTF8
)

// Decoder is a resumable escape-sequence parser. Feed it chunks of raw
// terminal input with Decode; bytes that do not yet form a complete event
// are carried to the next call. A Decoder is owned by exactly one session
// and must not be used from two call sites concurrently.
type Decoder struct {
	state decodeState
	carry []byte
}

// NewDecoder returns a decoder in the ground state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Buffered returns a copy of the bytes retained from previous chunks.
func (d *Decoder) Buffered() []byte {
	if len(d.carry) == 0 {
		return nil
	}
	out := make([]byte, len(d.carry))
	copy(out, d.carry)
	return out
}

// Decode consumes a chunk of input and returns the events it completes.
// An incomplete trailing sequence is retained for the next call; it is
// never guessed at. Call Flush at end-of-stream to resolve leftovers.
func (d *Decoder) Decode(p []byte) []Event {
	data := p
	if len(d.carry) > 0 {
		data = append(d.carry, p...)
		d.carry = nil
	}
	d.state = stateGround

	var events []Event
	i := 0
	for i < len(data) {
		ev, consumed, pending := d.step(data[i:])
		if pending != stateGround {
			// Sequence continues in the next chunk.
			d.carry = append(d.carry, data[i:]...)
			d.state = pending
			return events
		}
		if ev != nil {
			events = append(events, ev)
		}
		if consumed == 0 {
			// Defensive: never loop on a byte the step refuses to eat.
			consumed = 1
		}
		i += consumed
	}
	return events
}

// Flush resolves whatever the decoder is still holding at end-of-stream.
// Policy (deterministic, see the package tests): a pending sequence that
// starts with ESC yields a single literal Escape key and the unfinished
// body is dropped; a partial rune is dropped. The decoder returns to the
// ground state.
func (d *Decoder) Flush() []Event {
	carry := d.carry
	d.carry = nil
	d.state = stateGround

	if len(carry) == 0 {
		return nil
	}
	if carry[0] == 0x1b {
		return []Event{KeyEvent{Key: KeyEscape}}
	}
	return nil
}

// step decodes the first event in data. It returns the event (nil when the
// bytes are consumed silently), the byte count consumed, and the state to
// park in when data ends mid-sequence (stateGround when it does not).
func (d *Decoder) step(data []byte) (Event, int, decodeState) {
	b := data[0]

	if b == 0x1b {
		return d.stepEscape(data)
	}

	// Control bytes decode to key chords directly.
	if b < 0x20 {
		return controlKeyEvent(b), 1, stateGround
	}
	// Both DEL and BS are accepted as backspace encodings.
	if b == 0x7f {
		return KeyEvent{Key: KeyBackspace}, 1, stateGround
	}

	// Printable, possibly multibyte.
	if b >= 0x80 && !utf8.FullRune(data) {
		return nil, 0, stateUTF8
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		// Invalid byte; drop it.
		return nil, 1, stateGround
	}
	return KeyEvent{Key: KeyRune, Rune: r}, size, stateGround
}

// stepEscape handles data beginning with ESC.
func (d *Decoder) stepEscape(data []byte) (Event, int, decodeState) {
	if len(data) < 2 {
		return nil, 0, stateEscape
	}

	switch data[1] {
	case '[':
		return d.stepCSI(data)
	case 'O':
		if len(data) < 3 {
			return nil, 0, stateSS3
		}
		if key := ss3Key(data[2]); key != KeyNone {
			return KeyEvent{Key: key}, 3, stateGround
		}
		// Unrecognized SS3: surface the escape, reparse the rest.
		return KeyEvent{Key: KeyEscape}, 1, stateGround
	case 0x1b:
		return KeyEvent{Key: KeyEscape}, 1, stateGround
	default:
		// Alt+key: ESC immediately followed by a printable byte.
		if data[1] >= 0x20 && data[1] < 0x7f {
			return KeyEvent{Key: KeyRune, Rune: rune(data[1]), Mod: ModAlt}, 2, stateGround
		}
		return KeyEvent{Key: KeyEscape}, 1, stateGround
	}
}

// stepCSI handles data beginning with ESC [.
func (d *Decoder) stepCSI(data []byte) (Event, int, decodeState) {
	if len(data) < 3 {
		return nil, 0, stateCSI
	}

	switch data[2] {
	case '<':
		return decodeMouseSGR(data)
	case 'M':
		return decodeMouseX10(data)
	case '?', '>', '=':
		// Private-parameter sequence (mode toggles, cursor reports). These
		// are commands, not input: consume silently so encoder output fed
		// back through the decoder never fabricates key events.
		return skipToFinal(data, 3)
	}

	// Accumulate numeric parameters.
	var params []int
	current, hasCurrent := 0, false
	i := 2
	for i < len(data) {
		c := data[i]

		if c >= '0' && c <= '9' {
			current = current*10 + int(c-'0')
			hasCurrent = true
			i++
			continue
		}
		if c == ';' {
			params = append(params, current)
			current, hasCurrent = 0, false
			i++
			continue
		}
		if c >= 0x20 && c <= 0x2f {
			// Intermediate bytes: not an input sequence we know.
			return skipToFinal(data, i)
		}
		if c >= 0x40 && c <= 0x7e {
			if hasCurrent {
				params = append(params, current)
			}
			return d.finishCSI(data, params, c, i+1)
		}
		// A byte that can never continue a CSI sequence. Surface the
		// escape and let the rest reparse.
		return KeyEvent{Key: KeyEscape}, 1, stateGround
	}
	return nil, 0, stateCSI
}

// skipToFinal consumes a CSI sequence without producing an event.
func skipToFinal(data []byte, start int) (Event, int, decodeState) {
	for i := start; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			return nil, i + 1, stateGround
		}
	}
	return nil, 0, stateCSI
}

// finishCSI dispatches a complete CSI sequence. length is the total byte
// count of the sequence including "ESC [".
func (d *Decoder) finishCSI(data []byte, params []int, final byte, length int) (Event, int, decodeState) {
	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		if key, mod, ok := navKey(params, final); ok {
			return KeyEvent{Key: key, Mod: mod}, length, stateGround
		}
		// Param shapes that are cursor commands rather than key reports
		// (e.g. ESC[5;3H) are consumed without an event.
		return nil, length, stateGround
	case 'Z':
		return KeyEvent{Key: KeyTab, Mod: ModShift}, length, stateGround
	case 'I':
		if len(params) == 0 {
			return FocusEvent{Gained: true}, length, stateGround
		}
		return nil, length, stateGround
	case 'O':
		if len(params) == 0 {
			return FocusEvent{Gained: false}, length, stateGround
		}
		return nil, length, stateGround
	case '~':
		if len(params) == 0 {
			return nil, length, stateGround
		}
		if params[0] == 200 {
			return d.stepPaste(data, length)
		}
		if params[0] == 201 {
			// Stray paste terminator.
			return nil, length, stateGround
		}
		mod := ModNone
		if len(params) >= 2 {
			mod = decodeModifier(params[1])
		}
		if key, ok := tildeKeys[params[0]]; ok {
			return KeyEvent{Key: key, Mod: mod}, length, stateGround
		}
		return nil, length, stateGround
	}
	// Style/clear/report finals and anything else we do not map: consumed,
	// no event.
	return nil, length, stateGround
}

// pasteEnd is the bracketed paste terminator, ESC [ 201 ~.
var pasteEnd = []byte("\x1b[201~")

// stepPaste handles a bracketed paste. start is the length of the opening
// marker; everything up to the terminator becomes one Paste event,
// regardless of content.
func (d *Decoder) stepPaste(data []byte, start int) (Event, int, decodeState) {
	idx := bytes.Index(data[start:], pasteEnd)
	if idx < 0 {
		return nil, 0, statePaste
	}
	content := data[start : start+idx]
	return PasteEvent{Content: string(content)}, start + idx + len(pasteEnd), stateGround
}

// navKey maps arrow/Home/End finals to keys. Accepted parameter shapes are
// the ones terminals send for key presses: no parameters, a bare 1, or the
// xterm modifier form "1;m". Anything else is a cursor command.
func navKey(params []int, final byte) (Key, Modifier, bool) {
	mod := ModNone
	switch len(params) {
	case 0:
	case 1:
		if params[0] != 1 {
			return KeyNone, ModNone, false
		}
	case 2:
		if params[0] != 1 {
			return KeyNone, ModNone, false
		}
		mod = decodeModifier(params[1])
	default:
		return KeyNone, ModNone, false
	}

	switch final {
	case 'A':
		return KeyUp, mod, true
	case 'B':
		return KeyDown, mod, true
	case 'C':
		return KeyRight, mod, true
	case 'D':
		return KeyLeft, mod, true
	case 'H':
		return KeyHome, mod, true
	case 'F':
		return KeyEnd, mod, true
	}
	return KeyNone, ModNone, false
}

// tildeKeys is the fixed numeric-code table for ESC [ n ~ sequences.
var tildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// ss3Key maps SS3 final bytes to keys. P-S are F1-F4; application cursor
// mode sends arrows and Home/End through SS3 as well.
func ss3Key(b byte) Key {
	switch b {
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// controlKeyEvent converts a C0 control byte to a key event. Letters come
// back as KeyRune with ModCtrl (byte 3 is Ctrl+C); the bytes with dedicated
// keys map to those instead.
func controlKeyEvent(b byte) KeyEvent {
	switch b {
	case 0x00:
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl} // Ctrl+Space
	case 0x08:
		return KeyEvent{Key: KeyBackspace}
	case 0x09:
		return KeyEvent{Key: KeyTab}
	case 0x0d:
		return KeyEvent{Key: KeyEnter}
	case 0x1b:
		return KeyEvent{Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	// 0x1c-0x1f: Ctrl+punctuation, rarely seen.
	return KeyEvent{Key: KeyRune, Rune: rune('\\' + b - 0x1c), Mod: ModCtrl}
}

// decodeModifier decodes the xterm modifier parameter: 1 + (shift ? 1 : 0)
// + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
