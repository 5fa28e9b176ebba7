package termio

import (
	"errors"
	"strconv"
)

// Encoder argument errors. Invalid arguments are programming errors and are
// rejected loudly; silently clamping would corrupt the wire contract.
var (
	// ErrInvalidCursor is returned for cursor coordinates below 1.
	ErrInvalidCursor = errors.New("termio: cursor coordinates are 1-indexed and must be >= 1")
	// ErrInvalidCount is returned for relative moves of less than one cell.
	ErrInvalidCount = errors.New("termio: move count must be >= 1")
	// ErrColorOutOfRange is returned for palette indices outside the valid range.
	ErrColorOutOfRange = errors.New("termio: color index out of range")
)

// seqBuilder builds ANSI escape sequences into a pre-allocated buffer.
type seqBuilder struct {
	buf []byte
}

func newSeqBuilder(capacity int) *seqBuilder {
	return &seqBuilder{buf: make([]byte, 0, capacity)}
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (b *seqBuilder) writeCSI() {
	b.buf = append(b.buf, '\x1b', '[')
}

func (b *seqBuilder) writeInt(n int) {
	b.buf = strconv.AppendInt(b.buf, int64(n), 10)
}

func (b *seqBuilder) writeByte(c byte) {
	b.buf = append(b.buf, c)
}

func (b *seqBuilder) bytes() []byte {
	return b.buf
}

// CursorTo returns the sequence moving the cursor to the given absolute
// position. Coordinates are 1-indexed; (1,1) is the top-left cell. Zero or
// negative coordinates are rejected, never clamped.
func CursorTo(row, col int) ([]byte, error) {
	if row < 1 || col < 1 {
		return nil, ErrInvalidCursor
	}
	b := newSeqBuilder(12)
	b.writeCSI()
	b.writeInt(row)
	b.writeByte(';')
	b.writeInt(col)
	b.writeByte('H')
	return b.bytes(), nil
}

// cursorMove emits a relative cursor move with the given final byte.
func cursorMove(n int, final byte) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}
	b := newSeqBuilder(8)
	b.writeCSI()
	b.writeInt(n)
	b.writeByte(final)
	return b.bytes(), nil
}

// CursorUp returns the sequence moving the cursor up n rows (n >= 1).
func CursorUp(n int) ([]byte, error) { return cursorMove(n, 'A') }

// CursorDown returns the sequence moving the cursor down n rows (n >= 1).
func CursorDown(n int) ([]byte, error) { return cursorMove(n, 'B') }

// CursorForward returns the sequence moving the cursor right n columns (n >= 1).
func CursorForward(n int) ([]byte, error) { return cursorMove(n, 'C') }

// CursorBack returns the sequence moving the cursor left n columns (n >= 1).
func CursorBack(n int) ([]byte, error) { return cursorMove(n, 'D') }

// ClearScreen returns the sequence clearing the visible screen.
func ClearScreen() []byte { return []byte("\x1b[2J") }

// ClearScrollback returns the sequence clearing the scrollback buffer.
func ClearScrollback() []byte { return []byte("\x1b[3J") }

// ClearLine returns the sequence clearing the entire current line.
func ClearLine() []byte { return []byte("\x1b[2K") }

// Reset returns the SGR sequence resetting all attributes and colors.
func Reset() []byte { return []byte("\x1b[0m") }

// Foreground16 returns the basic-palette foreground sequence for index
// 0-15: codes 30-37 for the normal colors and 90-97 for the bright ones.
func Foreground16(n int) ([]byte, error) {
	code, err := basicColorCode(n, 30, 90)
	if err != nil {
		return nil, err
	}
	return sgrSingle(code), nil
}

// Background16 returns the basic-palette background sequence for index
// 0-15: codes 40-47 for the normal colors and 100-107 for the bright ones.
func Background16(n int) ([]byte, error) {
	code, err := basicColorCode(n, 40, 100)
	if err != nil {
		return nil, err
	}
	return sgrSingle(code), nil
}

func basicColorCode(n, normalBase, brightBase int) (int, error) {
	switch {
	case n >= 0 && n < 8:
		return normalBase + n, nil
	case n >= 8 && n < 16:
		return brightBase + n - 8, nil
	}
	return 0, ErrColorOutOfRange
}

func sgrSingle(code int) []byte {
	b := newSeqBuilder(8)
	b.writeCSI()
	b.writeInt(code)
	b.writeByte('m')
	return b.bytes()
}

// Foreground256 returns the 256-palette foreground sequence for n in 0-255.
func Foreground256(n int) ([]byte, error) { return palette256(38, n) }

// Background256 returns the 256-palette background sequence for n in 0-255.
func Background256(n int) ([]byte, error) { return palette256(48, n) }

func palette256(base, n int) ([]byte, error) {
	if n < 0 || n > 255 {
		return nil, ErrColorOutOfRange
	}
	b := newSeqBuilder(12)
	b.writeCSI()
	b.writeInt(base)
	b.buf = append(b.buf, ';', '5', ';')
	b.writeInt(n)
	b.writeByte('m')
	return b.bytes(), nil
}

// ForegroundRGB returns the true-color foreground sequence.
func ForegroundRGB(r, g, b uint8) []byte { return rgbColor(38, r, g, b) }

// BackgroundRGB returns the true-color background sequence.
func BackgroundRGB(r, g, b uint8) []byte { return rgbColor(48, r, g, b) }

func rgbColor(base int, r, g, b uint8) []byte {
	sb := newSeqBuilder(20)
	sb.writeCSI()
	sb.writeInt(base)
	sb.buf = append(sb.buf, ';', '2', ';')
	sb.writeInt(int(r))
	sb.writeByte(';')
	sb.writeInt(int(g))
	sb.writeByte(';')
	sb.writeInt(int(b))
	sb.writeByte('m')
	return sb.bytes()
}

// attrCodes maps attribute bits to their fixed SGR codes.
var attrCodes = []struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
	{AttrStrikethrough, '9'},
}

// SGR returns one merged SGR sequence for the whole style: a leading reset,
// every set attribute, then foreground and background colors. Color
// emission follows the negotiated mode strictly — colors beyond the tier
// are downsampled, never emitted optimistically.
func SGR(s Style, mode ColorMode) []byte {
	b := newSeqBuilder(32)
	b.writeCSI()
	b.writeByte('0')

	for _, ac := range attrCodes {
		if s.HasAttr(ac.attr) {
			b.buf = append(b.buf, ';', ac.code)
		}
	}

	appendStyleColor(b, s.Fg, 38, mode)
	appendStyleColor(b, s.Bg, 48, mode)

	b.writeByte('m')
	return b.bytes()
}

// appendStyleColor appends the color parameters for one side of a style.
// base is 38 for foreground, 48 for background.
func appendStyleColor(b *seqBuilder, c Color, base int, mode ColorMode) {
	if c.IsDefault() || mode < Color16 {
		return
	}

	// Reduce the color to something the negotiated tier can express.
	switch c.Type() {
	case ColorRGB:
		switch {
		case mode >= ColorTrue:
			r, g, bl := c.RGB()
			b.buf = append(b.buf, ';')
			b.writeInt(base)
			b.buf = append(b.buf, ';', '2', ';')
			b.writeInt(int(r))
			b.writeByte(';')
			b.writeInt(int(g))
			b.writeByte(';')
			b.writeInt(int(bl))
			return
		case mode >= Color256:
			c = c.To256()
		default:
			c = c.To16()
		}
	case ColorANSI:
		if c.ANSI() >= 16 && mode < Color256 {
			c = c.To16()
		}
	}

	idx := int(c.ANSI())
	if idx < 16 {
		// Basic palette uses the short 30-37/90-97 (or 40-47/100-107) form.
		normal, bright := 30, 90
		if base == 48 {
			normal, bright = 40, 100
		}
		code, _ := basicColorCode(idx, normal, bright)
		b.writeByte(';')
		b.writeInt(code)
		return
	}
	b.writeByte(';')
	b.writeInt(base)
	b.buf = append(b.buf, ';', '5', ';')
	b.writeInt(idx)
}
