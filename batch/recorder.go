// Package batch provides a headless sprite batch that records draw calls
// instead of submitting them to a GPU.
package batch

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/agiangrant/skinned/control"
	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// Quad is one recorded textured quad.
type Quad struct {
	Dst   geom.Rect
	UVs   theme.UVs
	Color mgl32.Vec4
	Clip  geom.Rect
}

// Visible returns the part of the quad inside its clip.
func (q Quad) Visible() geom.Rect {
	return q.Dst.Intersect(q.Clip)
}

// Recorder implements control.SpriteBatch by appending every call.
type Recorder struct {
	Quads []Quad
	Texts []control.TextRun
}

var _ control.SpriteBatch = (*Recorder)(nil)

// Draw records a quad.
func (r *Recorder) Draw(dst geom.Rect, uvs theme.UVs, color mgl32.Vec4, clip geom.Rect) {
	r.Quads = append(r.Quads, Quad{Dst: dst, UVs: uvs, Color: color, Clip: clip})
}

// DrawText records a text run.
func (r *Recorder) DrawText(run control.TextRun) {
	r.Texts = append(r.Texts, run)
}

// Reset clears the recording, keeping capacity for the next frame.
func (r *Recorder) Reset() {
	r.Quads = r.Quads[:0]
	r.Texts = r.Texts[:0]
}

// Len returns the number of recorded draw calls.
func (r *Recorder) Len() int {
	return len(r.Quads) + len(r.Texts)
}
