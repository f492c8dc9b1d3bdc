package theme

import (
	"fmt"
	"strings"

	"github.com/agiangrant/skinned/geom"
)

// Justify is one of the nine text justifications, a combination of one
// horizontal and one vertical alignment bit.
type Justify uint8

const (
	AlignLeft    Justify = 0x01
	AlignHCenter Justify = 0x02
	AlignRight   Justify = 0x04
	AlignTop     Justify = 0x10
	AlignVCenter Justify = 0x20
	AlignBottom  Justify = 0x40

	AlignTopLeft        = AlignTop | AlignLeft
	AlignVCenterLeft    = AlignVCenter | AlignLeft
	AlignBottomLeft     = AlignBottom | AlignLeft
	AlignTopHCenter     = AlignTop | AlignHCenter
	AlignVCenterHCenter = AlignVCenter | AlignHCenter
	AlignBottomHCenter  = AlignBottom | AlignHCenter
	AlignTopRight       = AlignTop | AlignRight
	AlignVCenterRight   = AlignVCenter | AlignRight
	AlignBottomRight    = AlignBottom | AlignRight
)

const (
	horizontalBits = AlignLeft | AlignHCenter | AlignRight
	verticalBits   = AlignTop | AlignVCenter | AlignBottom
)

var justifyNames = map[string]Justify{
	"ALIGN_LEFT":            AlignLeft,
	"ALIGN_HCENTER":         AlignHCenter,
	"ALIGN_RIGHT":           AlignRight,
	"ALIGN_TOP":             AlignTop,
	"ALIGN_VCENTER":         AlignVCenter,
	"ALIGN_BOTTOM":          AlignBottom,
	"ALIGN_TOP_LEFT":        AlignTopLeft,
	"ALIGN_VCENTER_LEFT":    AlignVCenterLeft,
	"ALIGN_BOTTOM_LEFT":     AlignBottomLeft,
	"ALIGN_TOP_HCENTER":     AlignTopHCenter,
	"ALIGN_VCENTER_HCENTER": AlignVCenterHCenter,
	"ALIGN_BOTTOM_HCENTER":  AlignBottomHCenter,
	"ALIGN_TOP_RIGHT":       AlignTopRight,
	"ALIGN_VCENTER_RIGHT":   AlignVCenterRight,
	"ALIGN_BOTTOM_RIGHT":    AlignBottomRight,
}

// ParseJustify parses a theme alignment name such as "ALIGN_VCENTER_HCENTER".
// The "ALIGN_" prefix is optional and matching ignores case.
func ParseJustify(s string) (Justify, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(key, "ALIGN_") {
		key = "ALIGN_" + key
	}
	if j, ok := justifyNames[key]; ok {
		return j, nil
	}
	return AlignTopLeft, fmt.Errorf("%w: %q", ErrBadJustify, s)
}

// Horizontal returns the horizontal bit, defaulting to AlignLeft.
func (j Justify) Horizontal() Justify {
	if h := j & horizontalBits; h != 0 {
		return h
	}
	return AlignLeft
}

// Vertical returns the vertical bit, defaulting to AlignTop.
func (j Justify) Vertical() Justify {
	if v := j & verticalBits; v != 0 {
		return v
	}
	return AlignTop
}

// Place returns the top-left corner of a width x height box aligned in area.
func (j Justify) Place(area geom.Rect, width, height float32) (x, y float32) {
	switch j.Horizontal() {
	case AlignHCenter:
		x = area.X + (area.Width-width)/2
	case AlignRight:
		x = area.Right() - width
	default:
		x = area.X
	}
	switch j.Vertical() {
	case AlignVCenter:
		y = area.Y + (area.Height-height)/2
	case AlignBottom:
		y = area.Bottom() - height
	default:
		y = area.Y
	}
	return x, y
}

func (j Justify) String() string {
	for name, v := range justifyNames {
		if v == j {
			return name
		}
	}
	return fmt.Sprintf("Justify(%#x)", uint8(j))
}
