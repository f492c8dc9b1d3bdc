package form

import (
	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// Geometry is what a layout may see and change of a child. It is the
// capability containers hold instead of reaching into control internals.
type Geometry interface {
	Bounds() geom.Rect
	SetBounds(r geom.Rect)
	Margin() theme.Margin
	SetOrigin(x, y float32)
	MarkDirty()
}

// Layout positions the children of a container. area is the container's
// content rectangle in screen coordinates; children are placed in
// container-local coordinates and told where the container's origin lies
// on screen.
type Layout interface {
	Arrange(area geom.Rect, children []Geometry)
}

// LayoutByName returns the layout registered under name: "absolute" or
// "vertical". Unknown names return nil.
func LayoutByName(name string, spacing float32, fillWidth bool) Layout {
	switch name {
	case "", "absolute":
		return AbsoluteLayout{}
	case "vertical":
		return VerticalLayout{Spacing: spacing, FillWidth: fillWidth}
	default:
		return nil
	}
}

// AbsoluteLayout keeps every child where it was placed.
type AbsoluteLayout struct{}

func (AbsoluteLayout) Arrange(area geom.Rect, children []Geometry) {
	for _, c := range children {
		c.SetOrigin(area.X, area.Y)
	}
}

// VerticalLayout stacks children top to bottom in insertion order,
// honoring each child's margin and leaving Spacing between neighbors.
type VerticalLayout struct {
	Spacing float32

	// FillWidth stretches each child to the container width minus its
	// horizontal margin.
	FillWidth bool
}

func (l VerticalLayout) Arrange(area geom.Rect, children []Geometry) {
	y := float32(0)
	for i, c := range children {
		m := c.Margin()
		b := c.Bounds()
		if i > 0 {
			y += l.Spacing
		}
		b.X = m.Left
		b.Y = y + m.Top
		if l.FillWidth {
			b.Width = max(area.Width-m.Left-m.Right, 0)
		}
		y = b.Bottom() + m.Bottom

		if b != c.Bounds() {
			c.SetBounds(b)
		}
		c.SetOrigin(area.X, area.Y)
	}
}
