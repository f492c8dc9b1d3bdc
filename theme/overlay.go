package theme

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/agiangrant/skinned/geom"
)

// Font is the external font collaborator. The theme only needs its name
// and a way to measure a run of text for alignment.
type Font interface {
	Name() string
	Measure(text string, size uint) (width, height float32)
}

// Overlay holds the visual attributes of one control state.
type Overlay struct {
	texture *Texture

	skin            Skin
	cursor          *Image
	font            Font
	fontSize        uint
	textColor       mgl32.Vec4
	textAlignment   Justify
	textRightToLeft bool
	opacity         float32
	images          map[string]Image
}

// NewOverlay returns an overlay with opaque white colors, top-left text
// and full opacity.
func NewOverlay(tex *Texture) *Overlay {
	return &Overlay{
		texture:       tex,
		skin:          Skin{Color: mgl32.Vec4{1, 1, 1, 1}},
		textColor:     mgl32.Vec4{1, 1, 1, 1},
		textAlignment: AlignTopLeft,
		opacity:       1,
		images:        make(map[string]Image),
	}
}

// clone deep-copies the overlay. The texture and font are shared.
func (o *Overlay) clone() *Overlay {
	c := *o
	if o.cursor != nil {
		cur := *o.cursor
		c.cursor = &cur
	}
	c.images = maps.Clone(o.images)
	if c.images == nil {
		c.images = make(map[string]Image)
	}
	return &c
}

// Border returns the frame thickness.
func (o *Overlay) Border() Sides { return o.skin.Border }

// SetBorder sets the frame thickness and recomputes the skin UVs.
func (o *Overlay) SetBorder(b Sides) {
	o.skin.Border = b
	o.skin.computeUVs(o.texture)
}

// Skin returns a copy of the skin record.
func (o *Overlay) Skin() Skin { return o.skin }

// SkinRegion returns the texture region of the skin.
func (o *Overlay) SkinRegion() geom.Rect { return o.skin.Region }

// SetSkinRegion sets the skin texture region and recomputes its UVs.
func (o *Overlay) SetSkinRegion(r geom.Rect) {
	o.skin.Region = r
	o.skin.computeUVs(o.texture)
}

// SkinColor returns the skin blend color.
func (o *Overlay) SkinColor() mgl32.Vec4 { return o.skin.Color }

// SetSkinColor sets the skin blend color.
func (o *Overlay) SetSkinColor(c mgl32.Vec4) { o.skin.Color = c }

// SkinUVs returns the texture coordinates of one skin area.
func (o *Overlay) SkinUVs(area SkinArea) UVs { return o.skin.UVs(area) }

// Cursor returns the cursor image, if the overlay has one.
func (o *Overlay) Cursor() (Image, bool) {
	if o.cursor == nil {
		return Image{}, false
	}
	return *o.cursor, true
}

func (o *Overlay) ensureCursor() *Image {
	if o.cursor == nil {
		o.cursor = &Image{Color: mgl32.Vec4{1, 1, 1, 1}}
	}
	return o.cursor
}

// SetCursorRegion sets the cursor texture region, creating the cursor if needed.
func (o *Overlay) SetCursorRegion(r geom.Rect) {
	cur := o.ensureCursor()
	cur.Region = r
	cur.uvs = o.texture.UVs(r)
}

// SetCursorColor sets the cursor blend color, creating the cursor if needed.
func (o *Overlay) SetCursorColor(c mgl32.Vec4) {
	o.ensureCursor().Color = c
}

// Image returns the image registered under id.
func (o *Overlay) Image(id string) (Image, error) {
	img, ok := o.images[id]
	if !ok {
		return Image{}, fmt.Errorf("%w: %q", ErrUnknownImage, id)
	}
	return img, nil
}

// ImageIDs returns the ids of the image set in sorted order.
func (o *Overlay) ImageIDs() []string {
	return slices.Sorted(maps.Keys(o.images))
}

// AddImage registers an image. It is used while a theme is being built;
// the set of ids is fixed afterwards.
func (o *Overlay) AddImage(id string, region geom.Rect, color mgl32.Vec4) {
	o.images[id] = Image{Region: region, Color: color, uvs: o.texture.UVs(region)}
}

// SetImageRegion updates the region of an existing image.
func (o *Overlay) SetImageRegion(id string, r geom.Rect) error {
	img, err := o.Image(id)
	if err != nil {
		return err
	}
	img.Region = r
	img.uvs = o.texture.UVs(r)
	o.images[id] = img
	return nil
}

// SetImageColor updates the blend color of an existing image.
func (o *Overlay) SetImageColor(id string, c mgl32.Vec4) error {
	img, err := o.Image(id)
	if err != nil {
		return err
	}
	img.Color = c
	o.images[id] = img
	return nil
}

func (o *Overlay) Font() Font         { return o.font }
func (o *Overlay) SetFont(f Font)     { o.font = f }
func (o *Overlay) FontSize() uint     { return o.fontSize }
func (o *Overlay) SetFontSize(n uint) { o.fontSize = n }

func (o *Overlay) TextColor() mgl32.Vec4     { return o.textColor }
func (o *Overlay) SetTextColor(c mgl32.Vec4) { o.textColor = c }

func (o *Overlay) TextAlignment() Justify     { return o.textAlignment }
func (o *Overlay) SetTextAlignment(j Justify) { o.textAlignment = j }

func (o *Overlay) TextRightToLeft() bool     { return o.textRightToLeft }
func (o *Overlay) SetTextRightToLeft(v bool) { o.textRightToLeft = v }

// Opacity returns the authored opacity of the state.
func (o *Overlay) Opacity() float32 { return o.opacity }

// SetOpacity stores an opacity clamped to [0, 1].
func (o *Overlay) SetOpacity(v float32) {
	o.opacity = mgl32.Clamp(v, 0, 1)
}
