// Package control provides the themed, stateful base of every UI control:
// a rectangle placed in its parent, drawn from a shared theme style with
// one overlay per state, driven by a small state machine that turns
// pointer and key input into semantic events for subscribed listeners.
//
// All operations run on the UI thread. A frame applies them in the order
// input, animation, update, draw.
package control

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

var log = logrus.WithField("component", "control")

// Control is the base of all themed controls. Concrete controls embed or
// wrap it and extend the draw phases through a Drawer.
type Control struct {
	id    string
	state State

	bounds     geom.Rect // Parent-local position and desired size, border and padding included.
	clipBounds geom.Rect // bounds after clipping by the parent, parent-local.
	textBounds geom.Rect // bounds minus border and padding, before clipping.
	clip       geom.Rect // Content clipping window, screen coordinates.

	origin         mgl32.Vec2 // Screen position of the parent's coordinate origin.
	lastParentClip geom.Rect
	updated        bool

	dirty              bool
	consumeTouchEvents bool

	style     styleRef
	listeners listenerBus

	text   string
	drawer Drawer

	press pressTracker
}

// Option configures a control at construction.
type Option func(*Control)

// WithBounds sets the initial bounds.
func WithBounds(r geom.Rect) Option {
	return func(c *Control) { c.bounds = r }
}

// WithText sets the initial text.
func WithText(text string) Option {
	return func(c *Control) { c.text = text }
}

// WithDrawer installs the draw extension of a concrete control.
func WithDrawer(d Drawer) Option {
	return func(c *Control) { c.drawer = d }
}

// WithConsumeTouchEvents sets whether handled touch events are consumed.
func WithConsumeTouchEvents(consume bool) Option {
	return func(c *Control) { c.consumeTouchEvents = consume }
}

// New creates a control that shares style. The control acquires its own
// reference; call Release when the control is removed.
func New(id string, style *theme.Style, opts ...Option) (*Control, error) {
	if style == nil {
		log.WithField("control", id).Debug("constructed without a style")
		return nil, ErrNullStyle
	}
	c := &Control{
		id:                 id,
		state:              Normal,
		dirty:              true,
		consumeTouchEvents: true,
	}
	c.style.set(style)
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Release drops the control's style reference. The control must not be
// used afterwards.
func (c *Control) Release() {
	c.style.release()
}

// ID returns the identifier given at construction.
func (c *Control) ID() string { return c.id }

// ============================================================================
// Style
// ============================================================================

// Style returns the style currently in use, shared or owned.
func (c *Control) Style() *theme.Style { return c.style.read() }

// SetStyle replaces the style with a shared reference to s. Any private
// copy made by an earlier override is released.
func (c *Control) SetStyle(s *theme.Style) error {
	if s == nil {
		return ErrNullStyle
	}
	c.style.set(s)
	c.dirty = true
	return nil
}

// StyleOverridden reports whether the control holds a private copy of its style.
func (c *Control) StyleOverridden() bool { return c.style.owned }

// writableStyle returns the control's style, splitting it off from the
// shared style on the first write.
func (c *Control) writableStyle(op string) (*theme.Style, error) {
	s, split := c.style.write()
	if s == nil {
		log.WithFields(logrus.Fields{"control": c.id, "op": op}).Debug("no style")
		return nil, ErrNullStyle
	}
	if split {
		log.WithFields(logrus.Fields{"control": c.id, "style": s.Name(), "op": op}).Debug("style overridden")
	}
	return s, nil
}

// defaultOverlay answers getters on a control without a style.
var defaultOverlay = theme.NewOverlay(nil)

func (c *Control) overlay(state State) *theme.Overlay {
	if s := c.style.read(); s != nil {
		return s.Overlay(state)
	}
	return defaultOverlay
}

// ============================================================================
// Geometry
// ============================================================================

func (c *Control) X() float32        { return c.bounds.X }
func (c *Control) Y() float32        { return c.bounds.Y }
func (c *Control) Width() float32    { return c.bounds.Width }
func (c *Control) Height() float32   { return c.bounds.Height }
func (c *Control) Bounds() geom.Rect { return c.bounds }

// SetPosition moves the control within its parent.
func (c *Control) SetPosition(x, y float32) {
	c.bounds.X, c.bounds.Y = x, y
	c.dirty = true
}

// SetSize sets the desired size, border and padding included.
func (c *Control) SetSize(width, height float32) {
	c.bounds.Width, c.bounds.Height = width, height
	c.dirty = true
}

// SetBounds sets position and size together.
func (c *Control) SetBounds(r geom.Rect) {
	c.bounds = r
	c.dirty = true
}

// ClipBounds returns the bounds after clipping by the parent, in parent
// coordinates, as of the last Update.
func (c *Control) ClipBounds() geom.Rect { return c.clipBounds }

// Clip returns the content clipping window in screen coordinates.
func (c *Control) Clip() geom.Rect { return c.clip }

// TextBounds returns the text area, bounds minus border and padding,
// in parent coordinates.
func (c *Control) TextBounds() geom.Rect { return c.textBounds }

// Origin returns the screen position of the parent's coordinate origin.
func (c *Control) Origin() (x, y float32) { return c.origin.X(), c.origin.Y() }

// SetOrigin is called by containers and layouts when the parent moves.
func (c *Control) SetOrigin(x, y float32) {
	if c.origin.X() == x && c.origin.Y() == y {
		return
	}
	c.origin = mgl32.Vec2{x, y}
	c.dirty = true
}

// IsDirty reports whether anything changed since the last update.
func (c *Control) IsDirty() bool { return c.dirty }

// MarkDirty forces the next draw to update first.
func (c *Control) MarkDirty() { c.dirty = true }

// ============================================================================
// State
// ============================================================================

// State returns the current state.
func (c *Control) State() State { return c.state }

// SetState forces a state. Any press in flight is dropped without events.
func (c *Control) SetState(s State) {
	c.press.reset()
	c.setState(s)
}

func (c *Control) setState(s State) {
	if c.state != s {
		c.state = s
		c.dirty = true
	}
}

// Disable moves the control to Disabled. A press in flight is abandoned
// without a RELEASE.
func (c *Control) Disable() {
	c.SetState(Disabled)
}

// Enable returns a disabled control to Normal. It has no effect on an
// enabled control.
func (c *Control) Enable() {
	if c.state == Disabled {
		c.SetState(Normal)
	}
}

// IsEnabled reports whether the control is not Disabled.
func (c *Control) IsEnabled() bool { return c.state != Disabled }

// ConsumeTouchEvents reports whether handled touch events are consumed.
func (c *Control) ConsumeTouchEvents() bool { return c.consumeTouchEvents }

// SetConsumeTouchEvents sets whether handled touch events are consumed.
func (c *Control) SetConsumeTouchEvents(consume bool) { c.consumeTouchEvents = consume }

// ============================================================================
// Text
// ============================================================================

// Text returns the text drawn in the text phase.
func (c *Control) Text() string { return c.text }

// SetText replaces the text drawn in the text phase.
func (c *Control) SetText(text string) {
	if c.text != text {
		c.text = text
		c.dirty = true
	}
}
