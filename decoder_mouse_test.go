package termio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecoder_MouseSGR(t *testing.T) {
	type tc struct {
		input    string
		expected MouseEvent
	}

	tests := map[string]tc{
		"left press": {
			input:    "\x1b[<0;5;10M",
			expected: MouseEvent{Button: MouseLeft, Action: MousePress, X: 5, Y: 10},
		},
		"left release": {
			input:    "\x1b[<0;5;10m",
			expected: MouseEvent{Button: MouseLeft, Action: MouseRelease, X: 5, Y: 10},
		},
		"middle press": {
			input:    "\x1b[<1;1;1M",
			expected: MouseEvent{Button: MouseMiddle, Action: MousePress, X: 1, Y: 1},
		},
		"right press": {
			input:    "\x1b[<2;80;24M",
			expected: MouseEvent{Button: MouseRight, Action: MousePress, X: 80, Y: 24},
		},
		"wheel up": {
			input:    "\x1b[<64;10;10M",
			expected: MouseEvent{Button: MouseWheelUp, Action: MousePress, X: 10, Y: 10},
		},
		"wheel down": {
			input:    "\x1b[<65;10;10M",
			expected: MouseEvent{Button: MouseWheelDown, Action: MousePress, X: 10, Y: 10},
		},
		"left drag": {
			input:    "\x1b[<32;3;4M",
			expected: MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 3, Y: 4},
		},
		"motion no button": {
			input:    "\x1b[<35;7;8M",
			expected: MouseEvent{Button: MouseNone, Action: MouseMove, X: 7, Y: 8},
		},
		"ctrl+left press": {
			input:    "\x1b[<16;2;2M",
			expected: MouseEvent{Button: MouseLeft, Action: MousePress, X: 2, Y: 2, Mod: ModCtrl},
		},
		"shift+right press": {
			input:    "\x1b[<6;2;2M",
			expected: MouseEvent{Button: MouseRight, Action: MousePress, X: 2, Y: 2, Mod: ModShift},
		},
		"alt+wheel up": {
			input:    "\x1b[<72;2;2M",
			expected: MouseEvent{Button: MouseWheelUp, Action: MousePress, X: 2, Y: 2, Mod: ModAlt},
		},
		"large coordinates": {
			input:    "\x1b[<0;223;512M",
			expected: MouseEvent{Button: MouseLeft, Action: MousePress, X: 223, Y: 512},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			events := NewDecoder().Decode([]byte(tt.input))
			if len(events) != 1 {
				t.Fatalf("Decode(%q) returned %d events, want 1", tt.input, len(events))
			}
			me, ok := events[0].(MouseEvent)
			if !ok {
				t.Fatalf("Decode(%q) = %T, want MouseEvent", tt.input, events[0])
			}
			if me != tt.expected {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.input, me, tt.expected)
			}
		})
	}
}

func TestDecoder_MouseX10(t *testing.T) {
	type tc struct {
		button   byte
		x, y     byte
		expected MouseEvent
	}

	tests := map[string]tc{
		"left press": {
			button: 0, x: 5, y: 10,
			expected: MouseEvent{Button: MouseLeft, Action: MousePress, X: 5, Y: 10},
		},
		"middle press": {
			button: 1, x: 1, y: 1,
			expected: MouseEvent{Button: MouseMiddle, Action: MousePress, X: 1, Y: 1},
		},
		"release": {
			button: 3, x: 5, y: 10,
			expected: MouseEvent{Button: MouseNone, Action: MouseRelease, X: 5, Y: 10},
		},
		"wheel up": {
			button: 64, x: 2, y: 2,
			expected: MouseEvent{Button: MouseWheelUp, Action: MousePress, X: 2, Y: 2},
		},
		"wheel down": {
			button: 65, x: 2, y: 2,
			expected: MouseEvent{Button: MouseWheelDown, Action: MousePress, X: 2, Y: 2},
		},
		"ctrl+left": {
			button: 16, x: 3, y: 3,
			expected: MouseEvent{Button: MouseLeft, Action: MousePress, X: 3, Y: 3, Mod: ModCtrl},
		},
		"drag": {
			button: 32, x: 4, y: 4,
			expected: MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 4, Y: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input := append([]byte("\x1b[M"), tt.button+32, tt.x+32, tt.y+32)
			events := NewDecoder().Decode(input)
			if len(events) != 1 {
				t.Fatalf("Decode(% x) returned %d events, want 1", input, len(events))
			}
			me, ok := events[0].(MouseEvent)
			if !ok {
				t.Fatalf("Decode(% x) = %T, want MouseEvent", input, events[0])
			}
			if me != tt.expected {
				t.Errorf("Decode(% x) = %+v, want %+v", input, me, tt.expected)
			}
		})
	}
}

// A mouse report split across reads must decode identically once the rest
// arrives.
func TestDecoder_MouseSplitAcrossChunks(t *testing.T) {
	d := NewDecoder()

	if events := d.Decode([]byte("\x1b[<0;1")); len(events) != 0 {
		t.Fatalf("partial SGR report produced events: %+v", events)
	}
	events := d.Decode([]byte("2;40M"))
	expected := []Event{MouseEvent{Button: MouseLeft, Action: MousePress, X: 12, Y: 40}}
	if diff := cmp.Diff(expected, events); diff != "" {
		t.Errorf("completed SGR report mismatch (-want +got):\n%s", diff)
	}

	if events := d.Decode(append([]byte("\x1b[M"), 32, 37)); len(events) != 0 {
		t.Fatalf("partial X10 report produced events: %+v", events)
	}
	events = d.Decode([]byte{42})
	expected = []Event{MouseEvent{Button: MouseLeft, Action: MousePress, X: 5, Y: 10}}
	if diff := cmp.Diff(expected, events); diff != "" {
		t.Errorf("completed X10 report mismatch (-want +got):\n%s", diff)
	}
}
