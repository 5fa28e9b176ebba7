package termio

// Attr is a bitfield of text attributes. Each bit maps to one of the fixed
// SGR codes in the encoder's attribute table.
type Attr uint8

const (
	// AttrNone is the empty attribute set.
	AttrNone Attr = 0

	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// Style is the encoder's styling vocabulary: a foreground, a background,
// and an attribute set, rendered by SGR as one merged escape sequence.
// The zero value renders as a plain reset. Styles are values; the builder
// methods return modified copies and never touch the receiver.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the zero style: default colors, no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

func (s Style) withAttr(a Attr) Style {
	s.Attrs |= a
	return s
}

// The attribute builders, one per SGR code the encoder can emit.

func (s Style) Bold() Style          { return s.withAttr(AttrBold) }
func (s Style) Dim() Style           { return s.withAttr(AttrDim) }
func (s Style) Italic() Style        { return s.withAttr(AttrItalic) }
func (s Style) Underline() Style     { return s.withAttr(AttrUnderline) }
func (s Style) Blink() Style         { return s.withAttr(AttrBlink) }
func (s Style) Reverse() Style       { return s.withAttr(AttrReverse) }
func (s Style) Strikethrough() Style { return s.withAttr(AttrStrikethrough) }

// HasAttr reports whether every bit of a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// Equal reports whether the two styles render to the same sequence.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}
