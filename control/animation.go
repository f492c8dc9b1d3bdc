package control

import "fmt"

// AnimationProperty identifies a control attribute an animation channel
// can drive.
type AnimationProperty uint8

const (
	AnimatePosition AnimationProperty = iota + 1
	AnimatePositionX
	AnimatePositionY
	AnimateSize
	AnimateSizeWidth
	AnimateSizeHeight
	AnimateOpacity
)

// scalar is one float attribute of a control.
type scalar uint8

const (
	scalarX scalar = iota
	scalarY
	scalarWidth
	scalarHeight
	scalarOpacity
)

// animationScalars lists the scalars behind each property; the component
// count of a property is the length of its list.
var animationScalars = [...][]scalar{
	AnimatePosition:   {scalarX, scalarY},
	AnimatePositionX:  {scalarX},
	AnimatePositionY:  {scalarY},
	AnimateSize:       {scalarWidth, scalarHeight},
	AnimateSizeWidth:  {scalarWidth},
	AnimateSizeHeight: {scalarHeight},
	AnimateOpacity:    {scalarOpacity},
}

var animationNames = [...]string{
	AnimatePosition:   "POSITION",
	AnimatePositionX:  "POSITION_X",
	AnimatePositionY:  "POSITION_Y",
	AnimateSize:       "SIZE",
	AnimateSizeWidth:  "SIZE_WIDTH",
	AnimateSizeHeight: "SIZE_HEIGHT",
	AnimateOpacity:    "OPACITY",
}

func (p AnimationProperty) String() string {
	if int(p) < len(animationNames) && animationNames[p] != "" {
		return animationNames[p]
	}
	return fmt.Sprintf("AnimationProperty(%d)", uint8(p))
}

// ParseAnimationProperty returns the property String prints as s.
func ParseAnimationProperty(s string) (AnimationProperty, error) {
	for p, name := range animationNames {
		if name != "" && name == s {
			return AnimationProperty(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, s)
}

func (p AnimationProperty) scalars() ([]scalar, error) {
	if int(p) >= len(animationScalars) || animationScalars[p] == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProperty, uint8(p))
	}
	return animationScalars[p], nil
}

// AnimationPropertyComponentCount returns the number of float components
// of p.
func (c *Control) AnimationPropertyComponentCount(p AnimationProperty) (int, error) {
	s, err := p.scalars()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// AnimationPropertyValue writes the current value of p into value, which
// must hold at least the property's component count. Opacity is read from
// the current state's overlay.
func (c *Control) AnimationPropertyValue(p AnimationProperty, value []float32) error {
	scalars, err := p.scalars()
	if err != nil {
		return err
	}
	if len(value) < len(scalars) {
		return fmt.Errorf("%s: %w: need %d, got %d", p, ErrValueSize, len(scalars), len(value))
	}
	for i, s := range scalars {
		value[i] = c.scalar(s)
	}
	return nil
}

// SetAnimationPropertyValue blends value into p with the given weight:
// current*(1-w) + value*w, w clamped to [0,1]. Opacity is written to every
// state overlay. The adapter keeps no memory between calls.
func (c *Control) SetAnimationPropertyValue(p AnimationProperty, value []float32, blendWeight float32) error {
	scalars, err := p.scalars()
	if err != nil {
		return err
	}
	if len(value) < len(scalars) {
		return fmt.Errorf("%s: %w: need %d, got %d", p, ErrValueSize, len(scalars), len(value))
	}
	blendWeight = min(max(blendWeight, 0), 1)
	if blendWeight == 0 {
		return nil
	}
	for i, s := range scalars {
		blended := value[i]
		if blendWeight != 1 {
			blended = c.scalar(s)*(1-blendWeight) + value[i]*blendWeight
		}
		if err := c.setScalar(s, blended); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (c *Control) scalar(s scalar) float32 {
	switch s {
	case scalarX:
		return c.bounds.X
	case scalarY:
		return c.bounds.Y
	case scalarWidth:
		return c.bounds.Width
	case scalarHeight:
		return c.bounds.Height
	default:
		return c.Opacity(c.state)
	}
}

func (c *Control) setScalar(s scalar, v float32) error {
	switch s {
	case scalarX:
		c.SetPosition(v, c.bounds.Y)
	case scalarY:
		c.SetPosition(c.bounds.X, v)
	case scalarWidth:
		c.SetSize(v, c.bounds.Height)
	case scalarHeight:
		c.SetSize(c.bounds.Width, v)
	default:
		return c.SetOpacity(v, StateAll)
	}
	return nil
}
