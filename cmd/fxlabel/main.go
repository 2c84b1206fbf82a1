// Command fxlabel renders decorated text to a PNG file.
//
// Usage:
//
//	fxlabel -text "Game Over" -size 48 -effects "stroke 6 #000; gradient #ff0 #f00" -o label.png
//	fxlabel -text "Stage 1" -style arcade.yaml -max-width 200 -max-height 40 -min-scale 0.5
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/fxlabel"
	"github.com/gogpu/fxlabel/style"
	"github.com/gogpu/fxlabel/text"
)

func main() {
	var (
		label     = flag.String("text", "fxlabel", "text to render")
		fontFile  = flag.String("font", "", "TTF/OTF font file (default Go Regular)")
		size      = flag.Float64("size", text.DefaultFontSize, "font size in pixels")
		color     = flag.String("color", "#000", "text color")
		align     = flag.String("align", "natural", "alignment: natural, left, center, right, justified")
		maxWidth  = flag.Float64("max-width", 0, "wrap width, 0 for none")
		maxHeight = flag.Float64("max-height", 0, "maximum height, 0 for none")
		minScale  = flag.Float64("min-scale", 0, "minimum scale factor in (0, 1], 0 to never shrink")
		styleFile = flag.String("style", "", "YAML style preset")
		effects   = flag.String("effects", "", "effects, e.g. \"stroke 4 #000; inner-shadow 0,2 blur 3\"")
		output    = flag.String("o", "label.png", "output PNG file")
		verbose   = flag.Bool("v", false, "log pipeline details to stderr")
	)
	flag.Parse()

	if *verbose {
		fxlabel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config{
		text:      *label,
		fontFile:  *fontFile,
		size:      *size,
		color:     *color,
		align:     *align,
		maxWidth:  *maxWidth,
		maxHeight: *maxHeight,
		minScale:  *minScale,
		styleFile: *styleFile,
		effects:   *effects,
	}
	img, l, err := render(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fxlabel:", err)
		os.Exit(1)
	}
	if err := img.SavePNG(*output); err != nil {
		fmt.Fprintln(os.Stderr, "fxlabel:", err)
		os.Exit(1)
	}

	slog.Info("label saved", "path", *output,
		"width", img.Width(), "height", img.Height(), "scale", l.Scale(), "fits", l.Fits())
}

type config struct {
	text      string
	fontFile  string
	size      float64
	color     string
	align     string
	maxWidth  float64
	maxHeight float64
	minScale  float64
	styleFile string
	effects   string
}

// render builds a label from cfg. Style file effects come first, then the
// -effects statements; flags override the style's fit parameters.
func render(cfg config) (*fxlabel.Image, *fxlabel.Label, error) {
	src := text.DefaultFontSource()
	if cfg.fontFile != "" {
		var err error
		if src, err = text.NewFontSourceFromFile(cfg.fontFile); err != nil {
			return nil, nil, err
		}
	}
	c, err := fxlabel.ParseHex(cfg.color)
	if err != nil {
		return nil, nil, err
	}
	a, ok := text.ParseAlignment(cfg.align)
	if !ok {
		return nil, nil, fmt.Errorf("unknown alignment %q", cfg.align)
	}

	st := &style.Style{}
	if cfg.styleFile != "" {
		if st, err = style.LoadFile(cfg.styleFile); err != nil {
			return nil, nil, err
		}
	}
	if cfg.effects != "" {
		extra, err := style.ParseEffects(cfg.effects)
		if err != nil {
			return nil, nil, err
		}
		st.Merge(extra)
	}
	if cfg.minScale != 0 {
		st.Fit.MinimumScaleFactor = cfg.minScale
	}
	if cfg.maxWidth != 0 || cfg.maxHeight != 0 {
		st.Fit.MaxSize = fxlabel.Size{Width: cfg.maxWidth, Height: cfg.maxHeight}
	}

	l := fxlabel.NewLabel(fxlabel.WithLogger(fxlabel.Logger()))
	if err := st.Apply(l); err != nil {
		return nil, nil, err
	}
	s := text.AttributedWithFontColorAlignment(cfg.text, src.Font(cfg.size), c.Color(), a)
	if err := l.SetAttributedText(s); err != nil {
		return nil, nil, err
	}
	return l.Image(), l, nil
}
