package control

import (
	"golang.org/x/mobile/event/key"
)

// ============================================================================
// Input Events
// ============================================================================

// TouchType identifies a pointer or touch event.
type TouchType uint8

const (
	TouchPress TouchType = iota + 1
	TouchRelease
	TouchMove
)

// TouchEvent is a pointer event in the control's parent coordinates.
type TouchEvent struct {
	Type    TouchType
	X, Y    int
	Contact uint
}

// KeyType identifies a keyboard event.
type KeyType uint8

const (
	KeyPress KeyType = iota + 1
	KeyRelease
	// KeyChar carries a Unicode scalar rather than a key code.
	KeyChar
)

// KeyEvent is a keyboard event. Code is set for KeyPress and KeyRelease,
// Char for KeyChar.
type KeyEvent struct {
	Type KeyType
	Code key.Code
	Char rune
}

// pressSource records what started the press in flight.
type pressSource uint8

const (
	pressNone pressSource = iota
	pressTouch
	pressKey
)

type pressTracker struct {
	source  pressSource
	contact uint
	code    key.Code
}

func (p *pressTracker) reset() { *p = pressTracker{} }

func (p *pressTracker) active() bool { return p.source != pressNone }

// isActivationKey reports whether code presses a focused control.
func isActivationKey(code key.Code) bool {
	return code == key.CodeReturnEnter || code == key.CodeSpacebar || code == key.CodeKeypadEnter
}

// HandleTouch runs the state machine for one pointer event and reports
// whether the event was consumed. Disabled controls ignore all input.
func (c *Control) HandleTouch(e TouchEvent) bool {
	if c.state == Disabled {
		return false
	}
	inside := c.bounds.Contains(float32(e.X), float32(e.Y))

	switch e.Type {
	case TouchPress:
		if !inside || c.press.active() {
			return false
		}
		c.press = pressTracker{source: pressTouch, contact: e.Contact}
		c.setState(Active)
		c.NotifyListeners(EventPress)
		return c.consumeTouchEvents

	case TouchRelease:
		if c.press.source != pressTouch || c.press.contact != e.Contact || c.state != Active {
			return false
		}
		c.finishPress(inside)
		return c.consumeTouchEvents

	case TouchMove:
		if c.press.active() {
			return c.press.source == pressTouch && c.press.contact == e.Contact && c.consumeTouchEvents
		}
		// Hover: an unheld pointer entering arms Focus, leaving drops it.
		switch {
		case inside && c.state == Normal:
			c.setState(Focus)
		case !inside && c.state == Focus:
			c.setState(Normal)
		}
		return false
	}
	return false
}

// HandleKey runs the state machine for one key event and reports whether it
// was consumed. A focused control treats Enter and Space like a press and
// release inside its bounds.
func (c *Control) HandleKey(e KeyEvent) bool {
	if c.state == Disabled {
		return false
	}

	switch e.Type {
	case KeyPress:
		if !isActivationKey(e.Code) || c.state != Focus || c.press.active() {
			return false
		}
		c.press = pressTracker{source: pressKey, code: e.Code}
		c.setState(Active)
		c.NotifyListeners(EventPress)
		return true

	case KeyRelease:
		if c.press.source != pressKey || c.press.code != e.Code || c.state != Active {
			return false
		}
		c.finishPress(true)
		return true
	}
	return false
}

// finishPress ends the press in flight: RELEASE always, then CLICK when the
// release landed inside and no listener disabled the control meanwhile.
func (c *Control) finishPress(inside bool) {
	c.press.reset()
	if inside {
		c.setState(Focus)
	} else {
		c.setState(Normal)
	}
	c.NotifyListeners(EventRelease)
	if inside && c.state != Disabled {
		c.NotifyListeners(EventClick)
	}
}
