package control

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// SpriteBatch accumulates the textured quads and text runs of a frame.
// It is provided by the renderer.
type SpriteBatch interface {
	// Draw queues a quad sampling uvs, tinted by color, clipped to clip.
	// All rectangles are in screen coordinates.
	Draw(dst geom.Rect, uvs theme.UVs, color mgl32.Vec4, clip geom.Rect)

	// DrawText queues a run of text.
	DrawText(run TextRun)
}

// TextRun is one text draw call.
type TextRun struct {
	Text        string
	Font        theme.Font
	Size        uint
	Color       mgl32.Vec4
	Area        geom.Rect // Text bounds in screen coordinates.
	Clip        geom.Rect
	X, Y        float32 // Aligned top-left of the measured text.
	Alignment   theme.Justify
	RightToLeft bool
}

// Drawer extends the image and text phases of a concrete control. The
// border phase always runs first and cannot be replaced.
type Drawer interface {
	DrawImages(c *Control, b SpriteBatch, clip geom.Rect)
	DrawText(c *Control, b SpriteBatch, clip geom.Rect)
}

// NeedsUpdate reports whether Update must run before drawing with parentClip.
func (c *Control) NeedsUpdate(parentClip geom.Rect) bool {
	return c.dirty || !c.updated || parentClip != c.lastParentClip
}

// Update re-derives the clip rectangles from the bounds, the current
// state's border, the style padding and parentClip, which is given in the
// same parent coordinates as the bounds. The screen clip is the clipped
// bounds moved to the screen origin and then inset, so a control cut by
// its parent loses its border on the cut side too. It clears the dirty flag.
func (c *Control) Update(parentClip geom.Rect) {
	inset := c.overlay(c.state).Border().Add(c.Padding())

	c.clipBounds = c.bounds.Intersect(parentClip)
	c.textBounds = c.bounds.Inset(inset.Top, inset.Bottom, inset.Left, inset.Right)
	c.clip = c.clipBounds.Inset(inset.Top, inset.Bottom, inset.Left, inset.Right).Translate(c.origin.X(), c.origin.Y())

	c.lastParentClip = parentClip
	c.updated = true
	c.dirty = false
}

// Draw emits the control into b: border, then images, then text. It
// updates first when the control is dirty or parentClip changed.
func (c *Control) Draw(b SpriteBatch, parentClip geom.Rect) {
	if c.NeedsUpdate(parentClip) {
		c.Update(parentClip)
	}
	clip := c.clipBounds.Translate(c.origin.X(), c.origin.Y())

	c.drawBorder(b, clip)
	if c.drawer != nil {
		c.drawer.DrawImages(c, b, clip)
		c.drawer.DrawText(c, b, c.clip)
		return
	}
	c.DrawImages(b, clip)
	c.DrawText(b, c.clip)
}

// modulate multiplies the state's opacity into a blend color's alpha.
func modulate(color mgl32.Vec4, opacity float32) mgl32.Vec4 {
	color[3] *= opacity
	return color
}

func (c *Control) screen(r geom.Rect) geom.Rect {
	return r.Translate(c.origin.X(), c.origin.Y())
}

func (c *Control) drawBorder(b SpriteBatch, clip geom.Rect) {
	o := c.overlay(c.state)
	skin := o.Skin()
	if !skin.HasRegion() {
		return
	}
	color := modulate(skin.Color, o.Opacity())
	for i, dst := range theme.NineSlice(c.screen(c.bounds), skin.Border) {
		if dst.Empty() {
			continue
		}
		b.Draw(dst, skin.UVs(theme.SkinArea(i)), color, clip)
	}
}

// DrawImages is the base image phase: every image of the current overlay
// in id order, each at the top-left of the text area at its region size.
func (c *Control) DrawImages(b SpriteBatch, clip geom.Rect) {
	o := c.overlay(c.state)
	origin := c.screen(c.textBounds)
	for _, id := range o.ImageIDs() {
		img, err := o.Image(id)
		if err != nil {
			continue
		}
		dst := geom.R(origin.X, origin.Y, img.Region.Width, img.Region.Height)
		b.Draw(dst, img.UVs(), modulate(img.Color, o.Opacity()), clip)
	}
}

// DrawText is the base text phase: the control's text aligned in the text
// area with the current overlay's font, size and color.
func (c *Control) DrawText(b SpriteBatch, clip geom.Rect) {
	o := c.overlay(c.state)
	font := o.Font()
	if c.text == "" || font == nil {
		return
	}
	area := c.screen(c.textBounds)
	w, h := font.Measure(c.text, o.FontSize())
	x, y := o.TextAlignment().Place(area, w, h)

	b.DrawText(TextRun{
		Text:        c.text,
		Font:        font,
		Size:        o.FontSize(),
		Color:       modulate(o.TextColor(), o.Opacity()),
		Area:        area,
		Clip:        clip,
		X:           x,
		Y:           y,
		Alignment:   o.TextAlignment(),
		RightToLeft: o.TextRightToLeft(),
	})
}
