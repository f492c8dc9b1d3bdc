package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// ConfigFile is the name of the configuration file looked up in the
// current directory.
const ConfigFile = "skinctl.toml"

// Config represents the skinctl.toml configuration file
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Preview PreviewConfig `toml:"preview"`
}

type ThemeConfig struct {
	// Path of the TOML theme file.
	Path string `toml:"path"`
	// Fonts selects the font set themes resolve against: "go" or "basic".
	Fonts string `toml:"fonts"`
}

type PreviewConfig struct {
	Width   float32 `toml:"width"`
	Height  float32 `toml:"height"`
	Spacing float32 `toml:"spacing"`
	// Styles to preview. Empty means every style of the theme.
	Styles []string `toml:"styles"`
	// Form file to preview instead of one control per style.
	Form string `toml:"form"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Path:  "theme.toml",
			Fonts: "go",
		},
		Preview: PreviewConfig{
			Width:   320,
			Height:  480,
			Spacing: 4,
		},
	}
}

// LoadConfig loads path over the defaults. A missing file is not an
// error. SKINCTL_THEME overrides the theme path.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if theme := os.Getenv("SKINCTL_THEME"); theme != "" {
		config.Theme.Path = theme
	}
	return config, nil
}

// SetupLogging loads .env and configures the standard logger from
// SKINCTL_LOG_LEVEL and SKINCTL_LOG_FORMAT.
func SetupLogging() {
	envErr := godotenv.Load()

	logrus.SetOutput(os.Stderr)
	if os.Getenv("SKINCTL_LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level := logrus.WarnLevel
	if s := os.Getenv("SKINCTL_LOG_LEVEL"); s != "" {
		l, err := logrus.ParseLevel(s)
		if err != nil {
			logrus.WithError(err).Warn("Invalid SKINCTL_LOG_LEVEL, using warn")
		} else {
			level = l
		}
	}
	logrus.SetLevel(level)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logrus.WithError(envErr).Warn("Error loading .env file")
	}
}
