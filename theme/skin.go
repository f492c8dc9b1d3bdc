package theme

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/agiangrant/skinned/geom"
)

// Sides holds four edge thicknesses.
type Sides struct {
	Top    float32 `toml:"top"`
	Bottom float32 `toml:"bottom"`
	Left   float32 `toml:"left"`
	Right  float32 `toml:"right"`
}

// Border, Margin and Padding share the same four-edge layout.
type (
	Border  = Sides
	Margin  = Sides
	Padding = Sides
)

// Add returns the edge-wise sum of s and o.
func (s Sides) Add(o Sides) Sides {
	return Sides{Top: s.Top + o.Top, Bottom: s.Bottom + o.Bottom, Left: s.Left + o.Left, Right: s.Right + o.Right}
}

// UVs are normalized texture coordinates of a region, top-left origin.
type UVs struct {
	U1, V1, U2, V2 float32
}

// Texture is the shared atlas every skin, image and cursor of a theme
// samples from. It is reference counted by the styles that use it.
type Texture struct {
	Path          string
	Width, Height float32

	refs atomic.Int32
}

// NewTexture creates a texture record holding one reference.
func NewTexture(path string, width, height float32) *Texture {
	t := &Texture{Path: path, Width: width, Height: height}
	t.refs.Store(1)
	return t
}

// Acquire adds a reference and returns t for chaining.
func (t *Texture) Acquire() *Texture {
	if t != nil {
		t.refs.Add(1)
	}
	return t
}

// Release drops a reference.
func (t *Texture) Release() {
	if t != nil {
		t.refs.Add(-1)
	}
}

// Refs returns the current reference count.
func (t *Texture) Refs() int {
	if t == nil {
		return 0
	}
	return int(t.refs.Load())
}

// UVs maps a pixel region of the texture to normalized coordinates.
// A missing or zero-sized texture yields zero UVs.
func (t *Texture) UVs(region geom.Rect) UVs {
	if t == nil || t.Width <= 0 || t.Height <= 0 {
		return UVs{}
	}
	return UVs{
		U1: region.X / t.Width,
		V1: region.Y / t.Height,
		U2: region.Right() / t.Width,
		V2: region.Bottom() / t.Height,
	}
}

// SkinArea identifies one of the nine regions of a skin.
type SkinArea uint8

const (
	SkinTopLeft SkinArea = iota
	SkinTop
	SkinTopRight
	SkinLeft
	SkinCenter
	SkinRight
	SkinBottomLeft
	SkinBottom
	SkinBottomRight

	skinAreaCount = 9
)

// NineSlice splits r into nine rectangles using the border thicknesses,
// indexed by SkinArea. Edge and corner rectangles may be empty.
func NineSlice(r geom.Rect, b Sides) [skinAreaCount]geom.Rect {
	xs := [4]float32{r.X, r.X + b.Left, r.Right() - b.Right, r.Right()}
	ys := [4]float32{r.Y, r.Y + b.Top, r.Bottom() - b.Bottom, r.Bottom()}

	var out [skinAreaCount]geom.Rect
	for row := range 3 {
		for col := range 3 {
			w := xs[col+1] - xs[col]
			h := ys[row+1] - ys[row]
			out[row*3+col] = geom.Rect{X: xs[col], Y: ys[row], Width: max(w, 0), Height: max(h, 0)}
		}
	}
	return out
}

// Skin is the nine-slice textured frame of an overlay.
type Skin struct {
	Region geom.Rect
	Border Sides
	Color  mgl32.Vec4

	uvs [skinAreaCount]UVs
}

// UVs returns the texture coordinates of one area.
func (s *Skin) UVs(area SkinArea) UVs {
	if area >= skinAreaCount {
		return UVs{}
	}
	return s.uvs[area]
}

// HasRegion reports whether the skin samples any texels.
func (s *Skin) HasRegion() bool {
	return !s.Region.Empty()
}

func (s *Skin) computeUVs(tex *Texture) {
	slices := NineSlice(s.Region, s.Border)
	for i, r := range slices {
		s.uvs[i] = tex.UVs(r)
	}
}

// Image is a textured rectangle in an overlay's image set, also used for
// the text cursor.
type Image struct {
	Region geom.Rect
	Color  mgl32.Vec4

	uvs UVs
}

// UVs returns the texture coordinates of the image region.
func (i Image) UVs() UVs {
	return i.uvs
}
