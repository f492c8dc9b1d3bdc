// Package theme holds the passive, shareable description of how controls
// look: styles, their four per-state overlays, skins, images and the
// texture they sample from.
//
// A Style is reference counted. The theme that created it holds one
// reference and every control using it acquires another; the last Release
// drops the style's hold on its texture.
package theme

import (
	"sync/atomic"
)

// Style bundles the four per-state overlays with a state-independent
// margin and padding.
type Style struct {
	name     string
	texture  *Texture
	overlays [stateCount]*Overlay
	margin   Margin
	padding  Padding

	refs atomic.Int32
}

// NewStyle creates a style with four default overlays. The returned style
// holds one reference, owned by the caller.
func NewStyle(name string, tex *Texture) *Style {
	s := &Style{name: name, texture: tex.Acquire()}
	for i := range s.overlays {
		s.overlays[i] = NewOverlay(tex)
	}
	s.refs.Store(1)
	return s
}

// Default returns an untextured style with default overlays.
func Default() *Style {
	return NewStyle("default", nil)
}

// Name returns the style's name in its theme.
func (s *Style) Name() string { return s.name }

// Texture returns the atlas shared by the style's overlays.
func (s *Style) Texture() *Texture { return s.texture }

// Overlay returns the overlay used for state. It is never nil for a valid state.
func (s *Style) Overlay(state State) *Overlay {
	if int(state) >= stateCount {
		state = Normal
	}
	return s.overlays[state]
}

// SetOverlay replaces the overlay of one state. A nil overlay is ignored.
func (s *Style) SetOverlay(state State, o *Overlay) {
	if o == nil || int(state) >= stateCount {
		return
	}
	s.overlays[state] = o
}

// Margin returns the space kept around the control by layouts.
func (s *Style) Margin() Margin { return s.margin }

// SetMargin sets the margin.
func (s *Style) SetMargin(m Margin) { s.margin = m }

// Padding returns the space between the border and the content.
func (s *Style) Padding() Padding { return s.padding }

// SetPadding sets the padding.
func (s *Style) SetPadding(p Padding) { s.padding = p }

// Acquire adds a reference and returns s for chaining.
func (s *Style) Acquire() *Style {
	s.refs.Add(1)
	return s
}

// Release drops a reference. The last release also releases the texture.
func (s *Style) Release() {
	if s.refs.Add(-1) == 0 {
		s.texture.Release()
	}
}

// Refs returns the current reference count.
func (s *Style) Refs() int {
	return int(s.refs.Load())
}

// Clone returns a deep copy holding one reference. Overlays, skins, images
// and cursors are copied; the texture and fonts are shared.
func (s *Style) Clone() *Style {
	c := &Style{
		name:    s.name,
		texture: s.texture.Acquire(),
		margin:  s.margin,
		padding: s.padding,
	}
	for i, o := range s.overlays {
		c.overlays[i] = o.clone()
	}
	c.refs.Store(1)
	return c
}
