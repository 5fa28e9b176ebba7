package termio

// Mouse button-byte flags shared by the X10 and SGR protocols.
const (
	mouseButtonMask = 0x03
	mouseShiftBit   = 0x04
	mouseAltBit     = 0x08
	mouseCtrlBit    = 0x10
	mouseMotionBit  = 0x20
	mouseWheelBit   = 0x40
)

// decodeMouseX10 decodes the 3-byte X10 report: ESC [ M followed by the
// button byte and the x and y coordinate bytes, each offset by +32.
// Coordinates are 1-indexed on the wire and stay 1-indexed in the event.
func decodeMouseX10(data []byte) (Event, int, decodeState) {
	if len(data) < 6 {
		return nil, 0, stateMouseX10
	}

	button := int(data[3]) - 32
	x := int(data[4]) - 32
	y := int(data[5]) - 32

	ev := mouseEventFromButton(button)
	ev.X = x
	ev.Y = y

	// X10 reports releases as button value 3 with no button identity.
	if button&mouseWheelBit == 0 && button&mouseButtonMask == 3 && button&mouseMotionBit == 0 {
		ev.Action = MouseRelease
		ev.Button = MouseNone
	}

	return ev, 6, stateGround
}

// decodeMouseSGR decodes the SGR extended report:
// ESC [ < button ; x ; y M for press, trailing m for release.
func decodeMouseSGR(data []byte) (Event, int, decodeState) {
	// Parse: button ; x ; y then the final byte.
	var fields [3]int
	stage := 0
	i := 3
	for i < len(data) {
		c := data[i]

		if c >= '0' && c <= '9' {
			fields[stage] = fields[stage]*10 + int(c-'0')
			i++
			continue
		}
		if c == ';' {
			stage++
			if stage > 2 {
				// Too many fields; not a mouse report after all.
				return skipToFinal(data, i)
			}
			i++
			continue
		}
		if c == 'M' || c == 'm' {
			if stage != 2 {
				return nil, i + 1, stateGround
			}
			ev := mouseEventFromButton(fields[0])
			ev.X = fields[1]
			ev.Y = fields[2]
			if c == 'm' {
				ev.Action = MouseRelease
			}
			return ev, i + 1, stateGround
		}
		// Unexpected byte inside the report.
		return KeyEvent{Key: KeyEscape}, 1, stateGround
	}
	return nil, 0, stateCSI
}

// mouseEventFromButton decodes the shared button-byte flags into a mouse
// event with button identity, modifiers and a press/drag/move action. The
// caller adjusts the action for releases.
func mouseEventFromButton(button int) MouseEvent {
	ev := MouseEvent{Action: MousePress}

	if button&mouseShiftBit != 0 {
		ev.Mod |= ModShift
	}
	if button&mouseAltBit != 0 {
		ev.Mod |= ModAlt
	}
	if button&mouseCtrlBit != 0 {
		ev.Mod |= ModCtrl
	}

	if button&mouseWheelBit != 0 {
		if button&1 != 0 {
			ev.Button = MouseWheelDown
		} else {
			ev.Button = MouseWheelUp
		}
		// Wheel events are instantaneous presses.
		return ev
	}

	switch button & mouseButtonMask {
	case 0:
		ev.Button = MouseLeft
	case 1:
		ev.Button = MouseMiddle
	case 2:
		ev.Button = MouseRight
	case 3:
		ev.Button = MouseNone
	}

	if button&mouseMotionBit != 0 {
		if ev.Button == MouseNone {
			ev.Action = MouseMove
		} else {
			ev.Action = MouseDrag
		}
	}
	return ev
}
