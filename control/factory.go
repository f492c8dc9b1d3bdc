package control

import (
	"fmt"

	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// Properties is the declarative description of a control, as read from a
// form file.
type Properties struct {
	ID                 string    `toml:"id"`
	Style              string    `toml:"style"`
	Position           []float32 `toml:"position"`
	Size               []float32 `toml:"size"`
	State              string    `toml:"state"`
	ConsumeTouchEvents *bool     `toml:"consume_touch_events"`
	Text               string    `toml:"text"`
}

// FromProperties creates a control sharing style and configured by p.
// Options are applied after p.
func FromProperties(p Properties, style *theme.Style, opts ...Option) (*Control, error) {
	state := Normal
	if p.State != "" {
		s, err := ParseState(p.State)
		if err != nil {
			return nil, fmt.Errorf("control %q: %w", p.ID, err)
		}
		state = s
	}

	var bounds geom.Rect
	if len(p.Position) >= 2 {
		bounds.X, bounds.Y = p.Position[0], p.Position[1]
	}
	if len(p.Size) >= 2 {
		bounds.Width, bounds.Height = p.Size[0], p.Size[1]
	}

	base := []Option{WithBounds(bounds), WithText(p.Text)}
	if p.ConsumeTouchEvents != nil {
		base = append(base, WithConsumeTouchEvents(*p.ConsumeTouchEvents))
	}
	c, err := New(p.ID, style, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("control %q: %w", p.ID, err)
	}
	c.SetState(state)
	return c, nil
}
