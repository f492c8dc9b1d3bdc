package form

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/animation"
	"github.com/agiangrant/skinned/control"
	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// formFile is the TOML description of a form.
type formFile struct {
	Bounds    []float32            `toml:"bounds"`
	Layout    string               `toml:"layout"`
	Spacing   float32              `toml:"spacing"`
	FillWidth bool                 `toml:"fill_width"`
	Controls  []control.Properties `toml:"control"`
	Anims     []animationDef       `toml:"animation"`
}

// animationDef starts a channel on one control when the form loads.
type animationDef struct {
	Control  string    `toml:"control"`
	Property string    `toml:"property"`
	From     []float32 `toml:"from"`
	To       []float32 `toml:"to"`
	Duration string    `toml:"duration"`
	Easing   string    `toml:"easing"`
	Weight   *float32  `toml:"weight"`
	Loop     bool      `toml:"loop"`
}

// LoadFile reads and parses a TOML form file. Controls take their styles
// from th.
func LoadFile(path string, th *theme.Theme) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Load(data, th)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return f, nil
}

// Load parses a TOML form:
//
//	bounds = [0, 0, 320, 240]
//	layout = "vertical"
//	spacing = 4
//
//	[[control]]
//	id = "ok"
//	style = "button"
//	size = [120, 32]
//	text = "OK"
//
//	[[animation]]
//	control = "ok"
//	property = "OPACITY"
//	from = [0]
//	to = [1]
//	duration = "250ms"
//	easing = "ease-out"
//
// Animations start when the form is loaded.
func Load(data []byte, th *theme.Theme) (*Form, error) {
	var ff formFile
	if err := toml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	var bounds geom.Rect
	if len(ff.Bounds) == 4 {
		bounds = geom.R(ff.Bounds[0], ff.Bounds[1], ff.Bounds[2], ff.Bounds[3])
	} else if len(ff.Bounds) != 0 {
		return nil, fmt.Errorf("failed to parse form: bounds needs 4 values, got %d", len(ff.Bounds))
	}
	layout := LayoutByName(ff.Layout, ff.Spacing, ff.FillWidth)
	if layout == nil {
		return nil, fmt.Errorf("failed to parse form: unknown layout %q", ff.Layout)
	}

	f := New(bounds, WithLayout(layout))
	for _, p := range ff.Controls {
		style, ok := th.Style(p.Style)
		if !ok {
			f.Release()
			return nil, fmt.Errorf("control %q: %w: %q", p.ID, theme.ErrUnknownStyle, p.Style)
		}
		c, err := control.FromProperties(p, style)
		if err != nil {
			f.Release()
			return nil, err
		}
		if err := f.Add(c); err != nil {
			c.Release()
			f.Release()
			return nil, err
		}
	}
	for i, def := range ff.Anims {
		if err := f.startAnimation(def); err != nil {
			f.Release()
			return nil, fmt.Errorf("failed to start animation %d: %w", i, err)
		}
	}
	log.WithFields(logrus.Fields{
		"controls":   len(f.controls),
		"animations": len(ff.Anims),
	}).Debug("loaded form")
	return f, nil
}

func (f *Form) startAnimation(def animationDef) error {
	c, ok := f.byID[def.Control]
	if !ok {
		return fmt.Errorf("control %q: %w", def.Control, ErrNotFound)
	}
	p, err := control.ParseAnimationProperty(def.Property)
	if err != nil {
		return err
	}
	easing, err := animation.EasingByName(def.Easing)
	if err != nil {
		return err
	}

	b := animation.Animate(c, f.animations).Easing(easing)
	if def.Duration != "" {
		d, err := time.ParseDuration(def.Duration)
		if err != nil {
			return fmt.Errorf("failed to parse duration: %w", err)
		}
		b.Duration(d)
	}
	if def.Weight != nil {
		b.Weight(*def.Weight)
	}
	if def.Loop {
		b.Loop()
	}
	if def.From != nil {
		_, err = b.FromTo(p, def.From, def.To)
	} else {
		_, err = b.To(p, def.To...)
	}
	return err
}
