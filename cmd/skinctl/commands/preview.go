package commands

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agiangrant/skinned/batch"
	"github.com/agiangrant/skinned/control"
	"github.com/agiangrant/skinned/form"
	"github.com/agiangrant/skinned/geom"
	"github.com/agiangrant/skinned/theme"
)

// Preview implements the 'skinctl preview' command. It lays out one
// control per style, or the controls of a form file, runs a single frame
// into a recording batch and prints what each control drew.
func Preview(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	configPath := fs.String("config", ConfigFile, "Path to skinctl.toml")
	themePath := fs.String("theme", "", "Path to the theme file (overrides config)")
	formPath := fs.String("form", "", "Form file to preview (overrides config)")
	stateName := fs.String("state", "NORMAL", "State to show: NORMAL, FOCUS, ACTIVE or DISABLED")
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
	if *formPath != "" {
		config.Preview.Form = *formPath
	}
	state, err := control.ParseState(*stateName)
	if err != nil {
		return err
	}

	th, err := loadTheme(config.Theme)
	if err != nil {
		return err
	}
	defer th.Release()

	f, err := buildPreview(th, config.Preview)
	if err != nil {
		return err
	}
	defer f.Release()
	for _, c := range f.Controls() {
		if c.IsEnabled() {
			c.SetState(state)
		}
	}

	var rec batch.Recorder
	f.Frame(time.Now(), &rec)
	logrus.WithFields(logrus.Fields{"quads": len(rec.Quads), "texts": len(rec.Texts)}).Debug("preview frame")

	return report(out, f, &rec)
}

func buildPreview(th *theme.Theme, cfg PreviewConfig) (*form.Form, error) {
	if cfg.Form != "" {
		return form.LoadFile(cfg.Form, th)
	}

	names := cfg.Styles
	if len(names) == 0 {
		names = th.StyleNames()
	}
	f := form.New(geom.R(0, 0, cfg.Width, cfg.Height),
		form.WithLayout(form.VerticalLayout{Spacing: cfg.Spacing, FillWidth: true}))
	for _, name := range names {
		s, ok := th.Style(name)
		if !ok {
			f.Release()
			return nil, fmt.Errorf("failed to preview style %q: %w", name, theme.ErrUnknownStyle)
		}
		c, err := control.New(name, s, control.WithBounds(geom.R(0, 0, cfg.Width, previewHeight(s))), control.WithText(name))
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
	return f, nil
}

// previewHeight fits the style's normal text line inside its border and
// padding, with a floor for textless styles.
func previewHeight(s *theme.Style) float32 {
	o := s.Overlay(theme.Normal)
	inset := o.Border().Add(s.Padding())
	h := inset.Top + inset.Bottom
	if f := o.Font(); f != nil {
		_, th := f.Measure("Ag", o.FontSize())
		h += th
	}
	return max(h, 24)
}

// report redraws each control on its own and prints what it emitted.
func report(out io.Writer, f *form.Form, total *batch.Recorder) error {
	fb := f.Bounds()
	clip := geom.R(0, 0, fb.Width, fb.Height)

	var rec batch.Recorder
	for _, c := range f.Controls() {
		rec.Reset()
		c.Draw(&rec, clip)

		b := c.Bounds()
		fmt.Fprintf(out, "%s [%s] at %g,%g %gx%g\n", c.ID(), c.State(), b.X, b.Y, b.Width, b.Height)
		for _, q := range rec.Quads {
			if q.Visible().Empty() {
				continue
			}
			fmt.Fprintf(out, "  quad %g,%g %gx%g uv %.3f,%.3f-%.3f,%.3f\n",
				q.Dst.X, q.Dst.Y, q.Dst.Width, q.Dst.Height, q.UVs.U1, q.UVs.V1, q.UVs.U2, q.UVs.V2)
		}
		for _, t := range rec.Texts {
			fmt.Fprintf(out, "  text %q at %g,%g size %d\n", t.Text, t.X, t.Y, t.Size)
		}
	}
	_, err := fmt.Fprintf(out, "%d quads, %d text runs\n", len(total.Quads), len(total.Texts))
	return err
}
