package form

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/agiangrant/skinned/control"
	"github.com/agiangrant/skinned/geom"
)

// ============================================================================
// Posting
// ============================================================================

// Post queues a platform event for the next frame. touch.Event, key.Event
// and size.Event are understood; anything else is dropped. Post may be
// called from any goroutine.
func (f *Form) Post(e any) {
	f.mu.Lock()
	f.queue = append(f.queue, e)
	f.mu.Unlock()
}

func (f *Form) drainInput() {
	f.mu.Lock()
	queue := f.queue
	f.queue = nil
	f.mu.Unlock()

	for _, e := range queue {
		switch e := e.(type) {
		case touch.Event:
			f.DispatchTouch(e)
		case key.Event:
			f.DispatchKey(e)
		case size.Event:
			f.SetBounds(geom.R(f.bounds.X, f.bounds.Y, float32(e.WidthPx), float32(e.HeightPx)))
		default:
			log.WithField("event", e).Debug("unhandled event")
		}
	}
}

// ============================================================================
// Touch
// ============================================================================

// DispatchTouch routes a screen-space touch event and reports whether a
// control consumed it.
//
// A begin goes to the topmost enabled control containing the point, then
// to the ones below while they do not consume it. Every control that went
// Active captures the contact: moves and the end of that contact go only
// to them, topmost first, and the topmost one takes key focus. Moves of an
// uncaptured pointer go to every control so hover can both enter and leave.
func (f *Form) DispatchTouch(e touch.Event) bool {
	local := control.TouchEvent{
		X:       int(e.X - f.bounds.X),
		Y:       int(e.Y - f.bounds.Y),
		Contact: uint(e.Sequence),
	}

	switch e.Type {
	case touch.TypeBegin:
		local.Type = control.TouchPress
		return f.dispatchPress(local)

	case touch.TypeMove:
		local.Type = control.TouchMove
		if captured, ok := f.captured[local.Contact]; ok {
			return deliver(captured, local)
		}
		for _, c := range f.controls {
			c.HandleTouch(local)
		}
		return false

	case touch.TypeEnd:
		local.Type = control.TouchRelease
		captured, ok := f.captured[local.Contact]
		if !ok {
			return false
		}
		delete(f.captured, local.Contact)
		consumed := deliver(captured, local)
		// Only the focused control keeps showing Focus after a click.
		for _, c := range captured {
			if c != f.focused && c.State() == control.Focus {
				c.SetState(control.Normal)
			}
		}
		return consumed
	}
	return false
}

// deliver sends e to every control in cs and reports whether any consumed it.
func deliver(cs []*control.Control, e control.TouchEvent) bool {
	consumed := false
	for _, c := range cs {
		if c.HandleTouch(e) {
			consumed = true
		}
	}
	return consumed
}

func (f *Form) dispatchPress(e control.TouchEvent) bool {
	x, y := float32(e.X), float32(e.Y)
	delete(f.captured, e.Contact)
	for i := len(f.controls) - 1; i >= 0; i-- {
		c := f.controls[i]
		if !c.IsEnabled() || !c.Bounds().Contains(x, y) {
			continue
		}
		consumed := c.HandleTouch(e)
		if c.State() == control.Active {
			if len(f.captured[e.Contact]) == 0 {
				f.setFocus(c)
			}
			f.captured[e.Contact] = append(f.captured[e.Contact], c)
			log.WithFields(logrus.Fields{"control": c.ID(), "contact": e.Contact}).Trace("captured")
		}
		if consumed {
			return true
		}
	}
	return false
}

// ============================================================================
// Keys
// ============================================================================

// DispatchKey routes a key event to the focused control. Tab moves focus
// to the next enabled control, Shift-Tab to the previous one.
func (f *Form) DispatchKey(e key.Event) bool {
	if e.Code == key.CodeTab && e.Direction == key.DirPress {
		f.cycleFocus(e.Modifiers&key.ModShift == 0)
		return true
	}
	if f.focused == nil {
		return false
	}

	var ke control.KeyEvent
	switch e.Direction {
	case key.DirPress:
		ke = control.KeyEvent{Type: control.KeyPress, Code: e.Code}
	case key.DirRelease:
		ke = control.KeyEvent{Type: control.KeyRelease, Code: e.Code}
	default:
		if e.Rune < 0 {
			return false
		}
		ke = control.KeyEvent{Type: control.KeyChar, Char: e.Rune}
	}
	return f.focused.HandleKey(ke)
}

// Focused returns the control receiving key events, if any.
func (f *Form) Focused() *control.Control { return f.focused }

// Focus gives key focus to the control with the given id.
func (f *Form) Focus(id string) error {
	c, ok := f.byID[id]
	if !ok {
		return ErrNotFound
	}
	f.setFocus(c)
	return nil
}

// setFocus moves key focus. A Normal control entering focus shows Focus;
// the control losing focus drops back to Normal unless it is busy.
func (f *Form) setFocus(c *control.Control) {
	if f.focused == c {
		return
	}
	if prev := f.focused; prev != nil && prev.State() == control.Focus {
		prev.SetState(control.Normal)
	}
	f.focused = c
	if c != nil && c.State() == control.Normal {
		c.SetState(control.Focus)
	}
}

func (f *Form) cycleFocus(forward bool) {
	n := len(f.controls)
	if n == 0 {
		return
	}
	start := -1
	for i, c := range f.controls {
		if c == f.focused {
			start = i
			break
		}
	}
	step := 1
	if !forward {
		step = -1
		if start < 0 {
			start = n
		}
	}
	for k := 1; k <= n; k++ {
		i := ((start+step*k)%n + n) % n
		if c := f.controls[i]; c.IsEnabled() {
			f.setFocus(c)
			return
		}
	}
}
