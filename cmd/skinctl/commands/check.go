package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agiangrant/skinned/fonts"
	"github.com/agiangrant/skinned/theme"
)

// Check implements the 'skinctl check' command
func Check(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	configPath := fs.String("config", ConfigFile, "Path to skinctl.toml")
	themePath := fs.String("theme", "", "Path to the theme file (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *themePath != "" {
		config.Theme.Path = *themePath
	}

	th, err := loadTheme(config.Theme)
	if err != nil {
		return err
	}
	defer th.Release()

	names := th.StyleNames()
	if tex := th.Texture(); tex != nil {
		fmt.Fprintf(out, "%s: texture %s (%gx%g), %d styles\n", config.Theme.Path, tex.Path, tex.Width, tex.Height, len(names))
	} else {
		fmt.Fprintf(out, "%s: untextured, %d styles\n", config.Theme.Path, len(names))
	}
	for _, name := range names {
		s, _ := th.Style(name)
		fmt.Fprintf(out, "  %s\n", name)
		for _, st := range theme.StateAll.States() {
			fmt.Fprintf(out, "    %-8s %s\n", st, describe(s.Overlay(st)))
		}
	}
	return nil
}

// loadTheme resolves the configured font set and loads the theme file.
func loadTheme(cfg ThemeConfig) (*theme.Theme, error) {
	var reg *fonts.Registry
	switch cfg.Fonts {
	case "", "go":
		r, err := fonts.GoFonts()
		if err != nil {
			return nil, fmt.Errorf("failed to load fonts: %w", err)
		}
		reg = r
	case "basic":
		reg = fonts.NewRegistry()
	default:
		return nil, fmt.Errorf("unknown font set %q", cfg.Fonts)
	}
	return theme.LoadFile(cfg.Path, reg)
}

func describe(o *theme.Overlay) string {
	var parts []string
	if r := o.SkinRegion(); !r.Empty() {
		b := o.Border()
		parts = append(parts, fmt.Sprintf("skin %gx%g border %g/%g/%g/%g", r.Width, r.Height, b.Top, b.Bottom, b.Left, b.Right))
	}
	if ids := o.ImageIDs(); len(ids) > 0 {
		parts = append(parts, "images "+strings.Join(ids, ","))
	}
	if _, ok := o.Cursor(); ok {
		parts = append(parts, "cursor")
	}
	if f := o.Font(); f != nil {
		parts = append(parts, fmt.Sprintf("font %s %d", f.Name(), o.FontSize()))
	}
	parts = append(parts, "align "+o.TextAlignment().String())
	if o.Opacity() != 1 {
		parts = append(parts, fmt.Sprintf("opacity %g", o.Opacity()))
	}
	return strings.Join(parts, ", ")
}
