package theme

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/geom"
)

var log = logrus.WithField("component", "theme")

// FontResolver maps the font names used in a theme file to fonts.
type FontResolver interface {
	Font(name string) (Font, error)
}

// Theme is a loaded theme file: one texture and a set of named styles.
type Theme struct {
	texture *Texture
	styles  map[string]*Style
}

// Style returns the named style. The theme keeps its own reference;
// callers that store the style acquire their own.
func (t *Theme) Style(name string) (*Style, bool) {
	s, ok := t.styles[name]
	return s, ok
}

// StyleNames returns the style names in sorted order.
func (t *Theme) StyleNames() []string {
	return slices.Sorted(maps.Keys(t.styles))
}

// Texture returns the theme's atlas.
func (t *Theme) Texture() *Texture { return t.texture }

// Release drops the theme's reference on every style and on the texture.
func (t *Theme) Release() {
	for _, s := range t.styles {
		s.Release()
	}
	t.texture.Release()
}

// ============================================================================
// File format
// ============================================================================

type themeFile struct {
	Texture       string              `toml:"texture"`
	TextureWidth  float32             `toml:"texture_width"`
	TextureHeight float32             `toml:"texture_height"`
	Skins         map[string]skinDef  `toml:"skins"`
	Images        map[string]imageDef `toml:"images"`
	Styles        map[string]styleDef `toml:"styles"`
}

type skinDef struct {
	Region []float32 `toml:"region"`
	Border Sides     `toml:"border"`
	Color  []float32 `toml:"color"`
}

type imageDef struct {
	Region []float32 `toml:"region"`
	Color  []float32 `toml:"color"`
}

type styleDef struct {
	Margin   *Sides      `toml:"margin"`
	Padding  *Sides      `toml:"padding"`
	Normal   overlayDef  `toml:"normal"`
	Focus    *overlayDef `toml:"focus"`
	Active   *overlayDef `toml:"active"`
	Disabled *overlayDef `toml:"disabled"`
}

// overlayDef is a partial overlay: nil fields inherit. FOCUS, ACTIVE and
// DISABLED inherit from the resolved NORMAL overlay.
type overlayDef struct {
	Skin            *string   `toml:"skin"`
	Border          *Sides    `toml:"border"`
	Cursor          *string   `toml:"cursor"`
	Images          []string  `toml:"images"`
	Font            *string   `toml:"font"`
	FontSize        *uint     `toml:"font_size"`
	TextColor       []float32 `toml:"text_color"`
	TextAlignment   *string   `toml:"text_alignment"`
	TextRightToLeft *bool     `toml:"text_right_to_left"`
	Opacity         *float32  `toml:"opacity"`
}

// LoadFile reads and parses a TOML theme file.
func LoadFile(path string, fonts FontResolver) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Load(data, fonts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return t, nil
}

// Load parses a TOML theme. fonts may be nil when the theme names no fonts.
func Load(data []byte, fonts FontResolver) (*Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	var tex *Texture
	if f.Texture != "" {
		tex = NewTexture(f.Texture, f.TextureWidth, f.TextureHeight)
	}

	b := &builder{file: &f, texture: tex, fonts: fonts}
	t := &Theme{texture: tex, styles: make(map[string]*Style, len(f.Styles))}
	for _, name := range slices.Sorted(maps.Keys(f.Styles)) {
		s, err := b.style(name, f.Styles[name])
		if err != nil {
			t.Release()
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		t.styles[name] = s
		log.WithField("style", name).Debug("loaded style")
	}
	return t, nil
}

type builder struct {
	file    *themeFile
	texture *Texture
	fonts   FontResolver
}

func (b *builder) style(name string, def styleDef) (*Style, error) {
	s := NewStyle(name, b.texture)
	if def.Margin != nil {
		s.SetMargin(*def.Margin)
	}
	if def.Padding != nil {
		s.SetPadding(*def.Padding)
	}

	normal := s.Overlay(Normal)
	if err := b.apply(normal, def.Normal); err != nil {
		s.Release()
		return nil, fmt.Errorf("%s: %w", Normal, err)
	}

	partials := [...]*overlayDef{Focus: def.Focus, Active: def.Active, Disabled: def.Disabled}
	for st := Focus; st <= Disabled; st++ {
		o := normal.clone()
		if p := partials[st]; p != nil {
			if err := b.apply(o, *p); err != nil {
				s.Release()
				return nil, fmt.Errorf("%s: %w", st, err)
			}
		}
		s.SetOverlay(st, o)
	}
	return s, nil
}

func (b *builder) apply(o *Overlay, def overlayDef) error {
	if def.Skin != nil {
		sk, ok := b.file.Skins[*def.Skin]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSkin, *def.Skin)
		}
		region, err := rectOf(sk.Region)
		if err != nil {
			return fmt.Errorf("skin %q: %w", *def.Skin, err)
		}
		o.skin.Region = region
		o.skin.Border = sk.Border
		o.skin.Color = colorOr(sk.Color, mgl32.Vec4{1, 1, 1, 1})
	}
	if def.Border != nil {
		o.skin.Border = *def.Border
	}
	o.skin.computeUVs(b.texture)

	if def.Cursor != nil {
		img, ok := b.file.Images[*def.Cursor]
		if !ok {
			return fmt.Errorf("cursor: %w: %q", ErrUnknownImage, *def.Cursor)
		}
		region, err := rectOf(img.Region)
		if err != nil {
			return fmt.Errorf("cursor %q: %w", *def.Cursor, err)
		}
		o.SetCursorRegion(region)
		o.SetCursorColor(colorOr(img.Color, mgl32.Vec4{1, 1, 1, 1}))
	}

	if def.Images != nil {
		o.images = make(map[string]Image, len(def.Images))
		for _, id := range def.Images {
			img, ok := b.file.Images[id]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownImage, id)
			}
			region, err := rectOf(img.Region)
			if err != nil {
				return fmt.Errorf("image %q: %w", id, err)
			}
			o.AddImage(id, region, colorOr(img.Color, mgl32.Vec4{1, 1, 1, 1}))
		}
	}

	if def.Font != nil {
		if b.fonts == nil {
			return fmt.Errorf("%w: %q (no font resolver)", ErrUnknownFont, *def.Font)
		}
		f, err := b.fonts.Font(*def.Font)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrUnknownFont, *def.Font, err)
		}
		o.font = f
	}
	if def.FontSize != nil {
		o.fontSize = *def.FontSize
	}
	if def.TextColor != nil {
		o.textColor = colorOr(def.TextColor, o.textColor)
	}
	if def.TextAlignment != nil {
		j, err := ParseJustify(*def.TextAlignment)
		if err != nil {
			return err
		}
		o.textAlignment = j
	}
	if def.TextRightToLeft != nil {
		o.textRightToLeft = *def.TextRightToLeft
	}
	if def.Opacity != nil {
		o.SetOpacity(*def.Opacity)
	}
	return nil
}

func rectOf(v []float32) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, fmt.Errorf("region needs 4 values, got %d", len(v))
	}
	return geom.R(v[0], v[1], v[2], v[3]), nil
}

// colorOr converts an [r, g, b] or [r, g, b, a] list, falling back to def
// for any other length.
func colorOr(v []float32, def mgl32.Vec4) mgl32.Vec4 {
	switch len(v) {
	case 3:
		return mgl32.Vec4{v[0], v[1], v[2], 1}
	case 4:
		return mgl32.Vec4{v[0], v[1], v[2], v[3]}
	default:
		if v != nil {
			log.WithField("values", v).Warn("ignoring malformed color")
		}
		return def
	}
}
