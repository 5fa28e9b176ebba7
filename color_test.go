package termio

import "testing"

func TestHexColor(t *testing.T) {
	type tc struct {
		input   string
		r, g, b uint8
		wantErr bool
	}

	tests := map[string]tc{
		"full form":      {input: "#ff0000", r: 255, g: 0, b: 0},
		"short form":     {input: "#f00", r: 255, g: 0, b: 0},
		"no hash prefix": {input: "00ff00", r: 0, g: 255, b: 0},
		"mixed case":     {input: "#AbCdEf", r: 0xab, g: 0xcd, b: 0xef},
		"white":          {input: "#fff", r: 255, g: 255, b: 255},
		"invalid chars":  {input: "#zzzzzz", wantErr: true},
		"too short":      {input: "#ff", wantErr: true},
		"empty":          {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("HexColor(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexColor(%q) = %v", tt.input, err)
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HexColor(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.input, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColor_To256(t *testing.T) {
	type tc struct {
		input    Color
		expected Color
	}

	tests := map[string]tc{
		"pure red hits the cube":   {input: RGBColor(255, 0, 0), expected: ANSIColor(196)},
		"pure green hits the cube": {input: RGBColor(0, 255, 0), expected: ANSIColor(46)},
		"pure blue hits the cube":  {input: RGBColor(0, 0, 255), expected: ANSIColor(21)},
		"near-black gray":          {input: RGBColor(4, 4, 4), expected: ANSIColor(16)},
		"near-white gray":          {input: RGBColor(250, 250, 250), expected: ANSIColor(231)},
		"gray ramp boundary 248":   {input: RGBColor(248, 248, 248), expected: ANSIColor(231)},
		"gray 247 stays on ramp":   {input: RGBColor(247, 247, 247), expected: ANSIColor(255)},
		"mid gray uses the ramp":   {input: RGBColor(128, 128, 128), expected: ANSIColor(244)},
		"ansi passes through":      {input: ANSIColor(42), expected: ANSIColor(42)},
		"default passes through":   {input: DefaultColor(), expected: DefaultColor()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.input.To256()
			if !got.Equal(tt.expected) {
				t.Errorf("To256() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestColor_To16(t *testing.T) {
	type tc struct {
		input    Color
		expected Color
	}

	tests := map[string]tc{
		"black is exact":         {input: RGBColor(0, 0, 0), expected: Black},
		"bright white is exact":  {input: RGBColor(255, 255, 255), expected: BrightWhite},
		"basic passes through":   {input: Red, expected: Red},
		"bright passes through":  {input: BrightCyan, expected: BrightCyan},
		"default passes through": {input: DefaultColor(), expected: DefaultColor()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.input.To16()
			if !got.Equal(tt.expected) {
				t.Errorf("To16() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestColor_To16_AlwaysBasic(t *testing.T) {
	samples := []Color{
		RGBColor(123, 45, 67),
		RGBColor(0, 200, 50),
		RGBColor(255, 128, 0),
		ANSIColor(200),
		ANSIColor(16),
		ANSIColor(255),
	}
	for _, c := range samples {
		got := c.To16()
		if got.Type() != ColorANSI || got.ANSI() >= 16 {
			t.Errorf("To16(%+v) = %+v, not in the basic palette", c, got)
		}
	}
}

func TestColor_ToRGBValues(t *testing.T) {
	type tc struct {
		input   Color
		r, g, b uint8
	}

	tests := map[string]tc{
		"default is black":  {input: DefaultColor(), r: 0, g: 0, b: 0},
		"rgb verbatim":      {input: RGBColor(12, 34, 56), r: 12, g: 34, b: 56},
		"basic red":         {input: Red, r: 205, g: 49, b: 49},
		"cube red 196":      {input: ANSIColor(196), r: 255, g: 0, b: 0},
		"cube entry 16":     {input: ANSIColor(16), r: 0, g: 0, b: 0},
		"cube entry 231":    {input: ANSIColor(231), r: 255, g: 255, b: 255},
		"grayscale start":   {input: ANSIColor(232), r: 8, g: 8, b: 8},
		"grayscale mid":     {input: ANSIColor(244), r: 128, g: 128, b: 128},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, g, b := tt.input.ToRGBValues()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ToRGBValues() = (%d, %d, %d), want (%d, %d, %d)",
					r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColor_Equal(t *testing.T) {
	if !DefaultColor().Equal(DefaultColor()) {
		t.Error("default colors are not equal")
	}
	if !ANSIColor(5).Equal(ANSIColor(5)) {
		t.Error("identical ANSI colors are not equal")
	}
	if ANSIColor(5).Equal(ANSIColor(6)) {
		t.Error("different ANSI colors are equal")
	}
	if !RGBColor(1, 2, 3).Equal(RGBColor(1, 2, 3)) {
		t.Error("identical RGB colors are not equal")
	}
	if RGBColor(1, 2, 3).Equal(RGBColor(1, 2, 4)) {
		t.Error("different RGB colors are equal")
	}
	if ANSIColor(1).Equal(RGBColor(1, 0, 0)) {
		t.Error("colors of different types are equal")
	}
}
