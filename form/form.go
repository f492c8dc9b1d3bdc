// Package form hosts top-level controls: it routes platform input to them,
// runs their layout, and drives each frame in the order input, animation,
// update, draw.
package form

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/animation"
	"github.com/agiangrant/skinned/control"
	"github.com/agiangrant/skinned/geom"
)

var log = logrus.WithField("component", "form")

var (
	ErrDuplicateID = errors.New("duplicate control id")
	ErrNotFound    = errors.New("control not found")
)

// Form owns a flat list of controls drawn in insertion order, so later
// controls are on top.
type Form struct {
	bounds geom.Rect // Screen coordinates.
	layout Layout

	controls []*control.Control
	byID     map[string]*control.Control

	animations *animation.Registry

	// Input posted from the platform, drained at the start of a frame.
	mu    sync.Mutex
	queue []any

	captured map[uint][]*control.Control // Contact to the controls it pressed, topmost first.
	focused  *control.Control

	needsLayout bool
	frame       uint64
}

// Option configures a form.
type Option func(*Form)

// WithLayout sets the layout. The default is AbsoluteLayout.
func WithLayout(l Layout) Option {
	return func(f *Form) { f.layout = l }
}

// WithAnimations shares an animation registry with the form.
func WithAnimations(r *animation.Registry) Option {
	return func(f *Form) { f.animations = r }
}

// New creates an empty form covering bounds on screen.
func New(bounds geom.Rect, opts ...Option) *Form {
	f := &Form{
		bounds:      bounds,
		layout:      AbsoluteLayout{},
		byID:        make(map[string]*control.Control),
		captured:    make(map[uint][]*control.Control),
		needsLayout: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.animations == nil {
		f.animations = animation.NewRegistry()
	}
	return f
}

func (f *Form) Bounds() geom.Rect               { return f.bounds }
func (f *Form) Animations() *animation.Registry { return f.animations }
func (f *Form) FrameCount() uint64              { return f.frame }

// SetBounds moves or resizes the form on screen.
func (f *Form) SetBounds(r geom.Rect) {
	if f.bounds != r {
		f.bounds = r
		f.needsLayout = true
	}
}

// SetLayout replaces the layout and re-arranges on the next frame.
func (f *Form) SetLayout(l Layout) {
	f.layout = l
	f.needsLayout = true
}

// Add appends c on top of the existing controls. The form takes over the
// caller's reference: Remove and Release release the control.
func (f *Form) Add(c *control.Control) error {
	if _, ok := f.byID[c.ID()]; ok {
		return fmt.Errorf("failed to add control %q: %w", c.ID(), ErrDuplicateID)
	}
	f.controls = append(f.controls, c)
	f.byID[c.ID()] = c
	f.needsLayout = true
	return nil
}

// Remove detaches and releases the control with the given id.
func (f *Form) Remove(id string) error {
	c, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("failed to remove control %q: %w", id, ErrNotFound)
	}
	delete(f.byID, id)
	for i, x := range f.controls {
		if x == c {
			f.controls = append(f.controls[:i], f.controls[i+1:]...)
			break
		}
	}
	for contact, cs := range f.captured {
		cs = slices.DeleteFunc(cs, func(x *control.Control) bool { return x == c })
		if len(cs) == 0 {
			delete(f.captured, contact)
		} else {
			f.captured[contact] = cs
		}
	}
	if f.focused == c {
		f.focused = nil
	}
	c.Release()
	f.needsLayout = true
	return nil
}

// Control returns the control with the given id.
func (f *Form) Control(id string) (*control.Control, bool) {
	c, ok := f.byID[id]
	return c, ok
}

// Controls returns the controls in draw order. The slice must not be modified.
func (f *Form) Controls() []*control.Control { return f.controls }

// Release releases every control.
func (f *Form) Release() {
	for _, c := range f.controls {
		c.Release()
	}
	f.controls = nil
	clear(f.byID)
	clear(f.captured)
	f.focused = nil
}

// ============================================================================
// Frame
// ============================================================================

// Frame runs one frame: drains posted input, ticks animations, lays out
// and updates dirty controls, then draws every control into b. It reports
// whether animations are still running.
func (f *Form) Frame(now time.Time, b control.SpriteBatch) bool {
	f.frame++

	f.drainInput()
	animating := f.animations.Tick(now)
	f.Layout()

	clip := geom.R(0, 0, f.bounds.Width, f.bounds.Height)
	for _, c := range f.controls {
		if c.NeedsUpdate(clip) {
			c.Update(clip)
		}
	}
	for _, c := range f.controls {
		c.Draw(b, clip)
	}
	return animating
}

// Layout arranges the controls if anything changed since the last
// arrangement.
func (f *Form) Layout() {
	if !f.needsLayout && !f.anyDirty() {
		return
	}
	children := make([]Geometry, len(f.controls))
	for i, c := range f.controls {
		children[i] = c
	}
	f.layout.Arrange(f.bounds, children)
	f.needsLayout = false
	log.WithFields(logrus.Fields{"frame": f.frame, "controls": len(children)}).Trace("layout")
}

func (f *Form) anyDirty() bool {
	for _, c := range f.controls {
		if c.IsDirty() {
			return true
		}
	}
	return false
}
