package control

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// setThemed applies fn to the overlay of every state in mask, after making
// sure the control owns its style.
func (c *Control) setThemed(op string, mask StateMask, fn func(o *theme.Overlay) error) error {
	if !mask.Valid() {
		log.WithFields(logrus.Fields{"control": c.id, "op": op, "mask": uint8(mask)}).Debug("invalid mask")
		return fmt.Errorf("%s: %w: %#x", op, ErrInvalidMask, uint8(mask))
	}
	s, err := c.writableStyle(op)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, st := range mask.States() {
		if err := fn(s.Overlay(st)); err != nil {
			return fmt.Errorf("%s %s: %w", op, st, err)
		}
	}
	c.dirty = true
	return nil
}

// checkImage fails with ErrUnknownImage if any state in mask lacks id,
// before anything is written.
func (c *Control) checkImage(op, id string, mask StateMask) error {
	s := c.style.read()
	if s == nil {
		return fmt.Errorf("%s: %w", op, ErrNullStyle)
	}
	for _, st := range mask.States() {
		if _, err := s.Overlay(st).Image(id); err != nil {
			log.WithFields(logrus.Fields{"control": c.id, "op": op, "image": id}).Debug("unknown image")
			return fmt.Errorf("%s %s: %w", op, st, err)
		}
	}
	return nil
}

// ============================================================================
// Skin and border
// ============================================================================

// SetBorder sets the frame thickness of the selected states.
func (c *Control) SetBorder(b theme.Border, mask StateMask) error {
	return c.setThemed("SetBorder", mask, func(o *theme.Overlay) error {
		o.SetBorder(b)
		return nil
	})
}

// Border returns the frame thickness of state.
func (c *Control) Border(state State) theme.Border {
	return c.overlay(state).Border()
}

// SetSkinRegion sets the skin texture region of the selected states.
func (c *Control) SetSkinRegion(r geom.Rect, mask StateMask) error {
	return c.setThemed("SetSkinRegion", mask, func(o *theme.Overlay) error {
		o.SetSkinRegion(r)
		return nil
	})
}

// SkinRegion returns the skin texture region of state.
func (c *Control) SkinRegion(state State) geom.Rect {
	return c.overlay(state).SkinRegion()
}

// SkinUVs returns the texture coordinates of one skin area of state.
func (c *Control) SkinUVs(area theme.SkinArea, state State) theme.UVs {
	return c.overlay(state).SkinUVs(area)
}

// SetSkinColor sets the skin blend color of the selected states.
func (c *Control) SetSkinColor(color mgl32.Vec4, mask StateMask) error {
	return c.setThemed("SetSkinColor", mask, func(o *theme.Overlay) error {
		o.SetSkinColor(color)
		return nil
	})
}

// SkinColor returns the skin blend color of state.
func (c *Control) SkinColor(state State) mgl32.Vec4 {
	return c.overlay(state).SkinColor()
}

// ============================================================================
// Margin and padding
// ============================================================================

// SetMargin sets the space layouts keep around the control.
func (c *Control) SetMargin(m theme.Margin) error {
	s, err := c.writableStyle("SetMargin")
	if err != nil {
		return err
	}
	s.SetMargin(m)
	c.dirty = true
	return nil
}

// Margin returns the margin.
func (c *Control) Margin() theme.Margin {
	if s := c.style.read(); s != nil {
		return s.Margin()
	}
	return theme.Margin{}
}

// SetPadding sets the space between the border and the content.
func (c *Control) SetPadding(p theme.Padding) error {
	s, err := c.writableStyle("SetPadding")
	if err != nil {
		return err
	}
	s.SetPadding(p)
	c.dirty = true
	return nil
}

// Padding returns the padding.
func (c *Control) Padding() theme.Padding {
	if s := c.style.read(); s != nil {
		return s.Padding()
	}
	return theme.Padding{}
}

// ============================================================================
// Images
// ============================================================================

// SetImageRegion sets the texture region of image id in the selected states.
// Every selected state must already have the image.
func (c *Control) SetImageRegion(id string, r geom.Rect, mask StateMask) error {
	if mask.Valid() {
		if err := c.checkImage("SetImageRegion", id, mask); err != nil {
			return err
		}
	}
	return c.setThemed("SetImageRegion", mask, func(o *theme.Overlay) error {
		return o.SetImageRegion(id, r)
	})
}

// ImageRegion returns the texture region of image id in state.
func (c *Control) ImageRegion(id string, state State) (geom.Rect, error) {
	img, err := c.overlay(state).Image(id)
	return img.Region, err
}

// SetImageColor sets the blend color of image id in the selected states.
func (c *Control) SetImageColor(id string, color mgl32.Vec4, mask StateMask) error {
	if mask.Valid() {
		if err := c.checkImage("SetImageColor", id, mask); err != nil {
			return err
		}
	}
	return c.setThemed("SetImageColor", mask, func(o *theme.Overlay) error {
		return o.SetImageColor(id, color)
	})
}

// ImageColor returns the blend color of image id in state.
func (c *Control) ImageColor(id string, state State) (mgl32.Vec4, error) {
	img, err := c.overlay(state).Image(id)
	return img.Color, err
}

// ImageUVs returns the texture coordinates of image id in state.
func (c *Control) ImageUVs(id string, state State) (theme.UVs, error) {
	img, err := c.overlay(state).Image(id)
	return img.UVs(), err
}

// ============================================================================
// Cursor
// ============================================================================

// SetCursorRegion sets the cursor texture region of the selected states.
func (c *Control) SetCursorRegion(r geom.Rect, mask StateMask) error {
	return c.setThemed("SetCursorRegion", mask, func(o *theme.Overlay) error {
		o.SetCursorRegion(r)
		return nil
	})
}

// CursorRegion returns the cursor texture region of state, or an empty
// rectangle when the state has no cursor.
func (c *Control) CursorRegion(state State) geom.Rect {
	cur, _ := c.overlay(state).Cursor()
	return cur.Region
}

// SetCursorColor sets the cursor blend color of the selected states.
func (c *Control) SetCursorColor(color mgl32.Vec4, mask StateMask) error {
	return c.setThemed("SetCursorColor", mask, func(o *theme.Overlay) error {
		o.SetCursorColor(color)
		return nil
	})
}

// CursorColor returns the cursor blend color of state.
func (c *Control) CursorColor(state State) mgl32.Vec4 {
	cur, _ := c.overlay(state).Cursor()
	return cur.Color
}

// CursorUVs returns the cursor texture coordinates of state.
func (c *Control) CursorUVs(state State) theme.UVs {
	cur, _ := c.overlay(state).Cursor()
	return cur.UVs()
}

// ============================================================================
// Text styling
// ============================================================================

func (c *Control) SetFont(f theme.Font, mask StateMask) error {
	return c.setThemed("SetFont", mask, func(o *theme.Overlay) error {
		o.SetFont(f)
		return nil
	})
}

func (c *Control) Font(state State) theme.Font {
	return c.overlay(state).Font()
}

func (c *Control) SetFontSize(size uint, mask StateMask) error {
	return c.setThemed("SetFontSize", mask, func(o *theme.Overlay) error {
		o.SetFontSize(size)
		return nil
	})
}

func (c *Control) FontSize(state State) uint {
	return c.overlay(state).FontSize()
}

func (c *Control) SetTextColor(color mgl32.Vec4, mask StateMask) error {
	return c.setThemed("SetTextColor", mask, func(o *theme.Overlay) error {
		o.SetTextColor(color)
		return nil
	})
}

func (c *Control) TextColor(state State) mgl32.Vec4 {
	return c.overlay(state).TextColor()
}

func (c *Control) SetTextAlignment(j theme.Justify, mask StateMask) error {
	return c.setThemed("SetTextAlignment", mask, func(o *theme.Overlay) error {
		o.SetTextAlignment(j)
		return nil
	})
}

func (c *Control) TextAlignment(state State) theme.Justify {
	return c.overlay(state).TextAlignment()
}

func (c *Control) SetTextRightToLeft(rtl bool, mask StateMask) error {
	return c.setThemed("SetTextRightToLeft", mask, func(o *theme.Overlay) error {
		o.SetTextRightToLeft(rtl)
		return nil
	})
}

func (c *Control) TextRightToLeft(state State) bool {
	return c.overlay(state).TextRightToLeft()
}

// ============================================================================
// Opacity
// ============================================================================

// SetOpacity sets the authored opacity of the selected states. It is
// multiplied into every blend color at draw time.
func (c *Control) SetOpacity(opacity float32, mask StateMask) error {
	return c.setThemed("SetOpacity", mask, func(o *theme.Overlay) error {
		o.SetOpacity(opacity)
		return nil
	})
}

// Opacity returns the authored opacity of state.
func (c *Control) Opacity(state State) float32 {
	return c.overlay(state).Opacity()
}
