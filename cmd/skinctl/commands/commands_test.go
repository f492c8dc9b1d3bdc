package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/skinned/theme"
)

const testTheme = `
texture = "atlas.png"
texture_width = 64
texture_height = 64

[skins.frame]
region = [0, 0, 16, 16]
border = { top = 2, bottom = 2, left = 2, right = 2 }

[images.check]
region = [16, 0, 8, 8]

[styles.button.normal]
skin = "frame"
font = "basic"
font_size = 13

[styles.button.disabled]
opacity = 0.5

[styles.label.normal]
font = "basic"
font_size = 13
images = ["check"]
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SKINCTL_THEME", "")
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ConfigFile, `
[theme]
path = "ui/theme.toml"
fonts = "basic"

[preview]
width = 200
styles = ["button"]
`)

	t.Setenv("SKINCTL_THEME", "")
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ui/theme.toml", config.Theme.Path)
	assert.Equal(t, "basic", config.Theme.Fonts)
	assert.Equal(t, float32(200), config.Preview.Width)
	assert.Equal(t, float32(480), config.Preview.Height, "unset keys keep defaults")
	assert.Equal(t, []string{"button"}, config.Preview.Styles)

	t.Setenv("SKINCTL_THEME", "other.toml")
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "other.toml", config.Theme.Path)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), ConfigFile, "[theme\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestSetupLoggingLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	t.Setenv("SKINCTL_LOG_LEVEL", "debug")
	t.Setenv("SKINCTL_LOG_FORMAT", "json")
	SetupLogging()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	t.Setenv("SKINCTL_LOG_LEVEL", "loud")
	t.Setenv("SKINCTL_LOG_FORMAT", "")
	SetupLogging()
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	themePath := writeFile(t, dir, "theme.toml", testTheme)
	configPath := writeFile(t, dir, ConfigFile, "[theme]\nfonts = \"basic\"\n")
	t.Setenv("SKINCTL_THEME", "")

	var out bytes.Buffer
	require.NoError(t, Check([]string{"-config", configPath, "-theme", themePath}, &out))

	s := out.String()
	assert.Contains(t, s, "texture atlas.png (64x64), 2 styles")
	assert.Contains(t, s, "  button\n")
	assert.Contains(t, s, "skin 16x16 border 2/2/2/2")
	assert.Contains(t, s, "opacity 0.5")
	assert.Contains(t, s, "images check")
	assert.Contains(t, s, "font basic 13")
}

func TestCheckErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SKINCTL_THEME", "")
	configPath := writeFile(t, dir, ConfigFile, "[theme]\nfonts = \"basic\"\n")

	var out bytes.Buffer
	err := Check([]string{"-config", configPath, "-theme", filepath.Join(dir, "nope.toml")}, &out)
	assert.ErrorContains(t, err, "failed to read")

	bad := writeFile(t, dir, "bad.toml", "[styles.x.normal]\nskin = \"missing\"\n")
	err = Check([]string{"-config", configPath, "-theme", bad}, &out)
	assert.ErrorIs(t, err, theme.ErrUnknownSkin)

	fontsConfig := writeFile(t, dir, "fonts.toml", "[theme]\nfonts = \"comic\"\n")
	err = Check([]string{"-config", fontsConfig, "-theme", bad}, &out)
	assert.ErrorContains(t, err, "unknown font set")
}

func TestPreviewStyles(t *testing.T) {
	dir := t.TempDir()
	themePath := writeFile(t, dir, "theme.toml", testTheme)
	configPath := writeFile(t, dir, ConfigFile, `
[theme]
fonts = "basic"

[preview]
width = 100
styles = ["button"]
`)
	t.Setenv("SKINCTL_THEME", "")

	var out bytes.Buffer
	require.NoError(t, Preview([]string{"-config", configPath, "-theme", themePath, "-state", "DISABLED"}, &out))

	s := out.String()
	assert.Contains(t, s, "button [DISABLED] at 0,0 100x")
	assert.Contains(t, s, "text \"button\"")
	assert.Contains(t, s, "9 quads, 1 text runs")
	assert.NotContains(t, s, "label")
}

func TestPreviewForm(t *testing.T) {
	dir := t.TempDir()
	themePath := writeFile(t, dir, "theme.toml", testTheme)
	formPath := writeFile(t, dir, "form.toml", `
bounds = [0, 0, 100, 100]

[[control]]
id = "go"
style = "button"
position = [10, 10]
size = [50, 20]
text = "Go"
`)
	configPath := writeFile(t, dir, ConfigFile, "[theme]\nfonts = \"basic\"\n")
	t.Setenv("SKINCTL_THEME", "")

	var out bytes.Buffer
	require.NoError(t, Preview([]string{"-config", configPath, "-theme", themePath, "-form", formPath}, &out))
	assert.Contains(t, out.String(), "go [NORMAL] at 10,10 50x20")

	err := Preview([]string{"-config", configPath, "-theme", themePath, "-state", "PRESSED"}, &out)
	assert.ErrorIs(t, err, theme.ErrBadState)
}
