package theme

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/skinned/geom"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		input   string
		want    State
		wantErr bool
	}{
		{"NORMAL", Normal, false},
		{"FOCUS", Focus, false},
		{"ACTIVE", Active, false},
		{"DISABLED", Disabled, false},
		{"focus", Normal, true},
		{"", Normal, true},
		{"HOVER", Normal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseState(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateMask(t *testing.T) {
	m := Mask(Focus, Disabled)
	assert.True(t, m.Has(Focus))
	assert.True(t, m.Has(Disabled))
	assert.False(t, m.Has(Normal))
	assert.Equal(t, []State{Focus, Disabled}, m.States())
	assert.True(t, m.Valid())
	assert.False(t, StateMask(0).Valid())
	assert.False(t, StateMask(0x80).Valid())
	assert.Equal(t, "ALL", StateAll.String())
	assert.Equal(t, "FOCUS|DISABLED", m.String())
}

func TestParseJustify(t *testing.T) {
	j, err := ParseJustify("ALIGN_VCENTER_HCENTER")
	require.NoError(t, err)
	assert.Equal(t, AlignVCenterHCenter, j)

	j, err = ParseJustify("bottom_right")
	require.NoError(t, err)
	assert.Equal(t, AlignBottomRight, j)

	_, err = ParseJustify("ALIGN_MIDDLE")
	assert.ErrorIs(t, err, ErrBadJustify)
}

func TestJustifyPlace(t *testing.T) {
	area := geom.R(0, 0, 100, 40)
	tests := []struct {
		j      Justify
		wx, wy float32
	}{
		{AlignTopLeft, 0, 0},
		{AlignVCenterHCenter, 40, 15},
		{AlignBottomRight, 80, 30},
		{AlignRight, 80, 0},
		{AlignVCenter, 0, 15},
	}
	for _, tt := range tests {
		t.Run(tt.j.String(), func(t *testing.T) {
			x, y := tt.j.Place(area, 20, 10)
			assert.Equal(t, tt.wx, x)
			assert.Equal(t, tt.wy, y)
		})
	}
}

func TestNineSlice(t *testing.T) {
	parts := NineSlice(geom.R(0, 0, 100, 50), Sides{Top: 5, Bottom: 10, Left: 4, Right: 6})
	assert.Equal(t, geom.R(0, 0, 4, 5), parts[SkinTopLeft])
	assert.Equal(t, geom.R(4, 5, 90, 35), parts[SkinCenter])
	assert.Equal(t, geom.R(94, 40, 6, 10), parts[SkinBottomRight])
}

func TestSkinUVsFollowRegion(t *testing.T) {
	tex := NewTexture("atlas.png", 200, 100)
	o := NewOverlay(tex)
	o.SetSkinRegion(geom.R(0, 0, 100, 50))
	o.SetBorder(Sides{Top: 10, Bottom: 10, Left: 20, Right: 20})

	assert.Equal(t, UVs{U1: 0, V1: 0, U2: 0.1, V2: 0.1}, o.SkinUVs(SkinTopLeft))
	assert.Equal(t, UVs{U1: 0.1, V1: 0.1, U2: 0.4, V2: 0.4}, o.SkinUVs(SkinCenter))
}

func TestOverlayImages(t *testing.T) {
	o := NewOverlay(NewTexture("atlas.png", 100, 100))
	o.AddImage("track", geom.R(0, 0, 50, 10), mgl32.Vec4{1, 1, 1, 1})
	o.AddImage("marker", geom.R(50, 0, 10, 10), mgl32.Vec4{1, 1, 1, 1})

	assert.Equal(t, []string{"marker", "track"}, o.ImageIDs())

	require.NoError(t, o.SetImageColor("track", mgl32.Vec4{1, 0, 0, 1}))
	img, err := o.Image("track")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, img.Color)
	assert.Equal(t, UVs{U1: 0, V1: 0, U2: 0.5, V2: 0.1}, img.UVs())

	err = o.SetImageRegion("thumb", geom.R(0, 0, 1, 1))
	assert.ErrorIs(t, err, ErrUnknownImage)
	_, err = o.Image("thumb")
	assert.ErrorIs(t, err, ErrUnknownImage)
}

func TestCloneIsDeep(t *testing.T) {
	tex := NewTexture("atlas.png", 64, 64)
	s := NewStyle("button", tex)
	s.Overlay(Normal).AddImage("icon", geom.R(0, 0, 8, 8), mgl32.Vec4{1, 1, 1, 1})
	s.Overlay(Focus).SetCursorColor(mgl32.Vec4{0, 0, 1, 1})
	s.SetPadding(Sides{Top: 2})

	c := s.Clone()
	assert.Equal(t, 1, c.Refs())
	assert.Equal(t, 3, tex.Refs(), "creator, original style and clone")

	c.Overlay(Focus).SetTextColor(mgl32.Vec4{1, 0, 0, 1})
	require.NoError(t, c.Overlay(Normal).SetImageColor("icon", mgl32.Vec4{0, 1, 0, 1}))
	c.Overlay(Focus).SetCursorColor(mgl32.Vec4{1, 1, 0, 1})
	c.SetPadding(Sides{Top: 9})

	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, s.Overlay(Focus).TextColor())
	img, _ := s.Overlay(Normal).Image("icon")
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, img.Color)
	cur, ok := s.Overlay(Focus).Cursor()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, cur.Color)
	assert.Equal(t, float32(2), s.Padding().Top)
}

func TestStyleReleaseDropsTexture(t *testing.T) {
	tex := NewTexture("atlas.png", 64, 64)
	s := NewStyle("label", tex)
	s.Acquire()
	assert.Equal(t, 2, s.Refs())

	s.Release()
	assert.Equal(t, 2, tex.Refs())
	s.Release()
	assert.Equal(t, 0, s.Refs())
	assert.Equal(t, 1, tex.Refs())
}

func TestOpacityClamped(t *testing.T) {
	o := NewOverlay(nil)
	o.SetOpacity(1.5)
	assert.Equal(t, float32(1), o.Opacity())
	o.SetOpacity(-1)
	assert.Equal(t, float32(0), o.Opacity())
}

type stubFont string

func (f stubFont) Name() string { return string(f) }
func (f stubFont) Measure(text string, size uint) (float32, float32) {
	return float32(len(text) * int(size) / 2), float32(size)
}

type stubFonts map[string]Font

func (s stubFonts) Font(name string) (Font, error) {
	if f, ok := s[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("no font %q", name)
}

const sampleTheme = `
texture = "ui/default.png"
texture_width = 256
texture_height = 256

[skins.button]
region = [0, 0, 64, 32]
border = { top = 4, bottom = 4, left = 8, right = 8 }
color = [1, 1, 1, 1]

[skins.buttonActive]
region = [64, 0, 64, 32]
border = { top = 4, bottom = 4, left = 8, right = 8 }

[images.caret]
region = [128, 0, 2, 16]

[images.check]
region = [0, 64, 16, 16]
color = [0, 1, 0]

[styles.button]
padding = { top = 2, bottom = 2, left = 6, right = 6 }

[styles.button.normal]
skin = "button"
images = ["check"]
cursor = "caret"
font = "sans"
font_size = 18
text_color = [1, 1, 1, 1]
text_alignment = "ALIGN_VCENTER_HCENTER"

[styles.button.active]
skin = "buttonActive"
text_color = [1, 0, 0, 1]

[styles.button.disabled]
opacity = 0.5

[styles.label.normal]
font = "sans"
font_size = 12
`

func TestLoad(t *testing.T) {
	th, err := Load([]byte(sampleTheme), stubFonts{"sans": stubFont("sans")})
	require.NoError(t, err)
	assert.Equal(t, []string{"button", "label"}, th.StyleNames())

	button, ok := th.Style("button")
	require.True(t, ok)
	assert.Equal(t, float32(6), button.Padding().Left)

	normal := button.Overlay(Normal)
	assert.Equal(t, geom.R(0, 0, 64, 32), normal.SkinRegion())
	assert.Equal(t, Sides{Top: 4, Bottom: 4, Left: 8, Right: 8}, normal.Border())
	assert.Equal(t, uint(18), normal.FontSize())
	assert.Equal(t, "sans", normal.Font().Name())
	assert.Equal(t, AlignVCenterHCenter, normal.TextAlignment())
	_, ok = normal.Cursor()
	assert.True(t, ok)
	check, err := normal.Image("check")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, check.Color)

	focus := button.Overlay(Focus)
	assert.Equal(t, normal.SkinRegion(), focus.SkinRegion(), "focus inherits from normal")
	assert.Equal(t, uint(18), focus.FontSize())

	active := button.Overlay(Active)
	assert.Equal(t, geom.R(64, 0, 64, 32), active.SkinRegion())
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, active.TextColor())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, normal.TextColor())

	assert.Equal(t, float32(0.5), button.Overlay(Disabled).Opacity())
	assert.Equal(t, float32(1), focus.Opacity())

	// Inherited overlays are copies, not aliases.
	focus.SetTextColor(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, normal.TextColor())

	tex := th.Texture()
	assert.Equal(t, 3, tex.Refs())
	th.Release()
	assert.Equal(t, 0, tex.Refs())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "unknown skin",
			input: "[styles.a.normal]\nskin = \"missing\"\n",
			want:  ErrUnknownSkin,
		},
		{
			name:  "unknown image",
			input: "[styles.a.focus]\nimages = [\"missing\"]\n",
			want:  ErrUnknownImage,
		},
		{
			name:  "unknown font",
			input: "[styles.a.normal]\nfont = \"serif\"\n",
			want:  ErrUnknownFont,
		},
		{
			name:  "bad alignment",
			input: "[styles.a.normal]\ntext_alignment = \"ALIGN_MIDDLE\"\n",
			want:  ErrBadJustify,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.input), stubFonts{"sans": stubFont("sans")})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load([]byte("styles = [[["), nil)
	assert.Error(t, err)
}
