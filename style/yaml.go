package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/fxlabel"
)

// document is the YAML form of a Style.
type document struct {
	Name         string           `yaml:"name,omitempty"`
	Fit          fitDoc           `yaml:"fit,omitempty"`
	Strokes      []strokeDoc      `yaml:"strokes,omitempty"`
	Gradient     *gradientDoc     `yaml:"gradient,omitempty"`
	InnerShadows []innerShadowDoc `yaml:"inner-shadows,omitempty"`

	// Effects holds extra statements in the effect language, applied after
	// the structured fields.
	Effects string `yaml:"effects,omitempty"`
}

type fitDoc struct {
	MinimumScaleFactor float64 `yaml:"minimum-scale-factor,omitempty"`
	MaxSize            *vec2   `yaml:"max-size,omitempty"`
}

type strokeDoc struct {
	Width float64  `yaml:"width"`
	Color hexColor `yaml:"color"`
}

type gradientDoc struct {
	Colors []hexColor `yaml:"colors"`
	Start  *vec2      `yaml:"start,omitempty"`
	End    *vec2      `yaml:"end,omitempty"`
}

type innerShadowDoc struct {
	Offset vec2      `yaml:"offset"`
	Blur   float64   `yaml:"blur,omitempty"`
	Color  *hexColor `yaml:"color,omitempty"`
	Blend  blendMode `yaml:"blend,omitempty"`
}

// hexColor is a color written as a hex string.
type hexColor fxlabel.RGBA

func (c *hexColor) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	rgba, err := fxlabel.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = hexColor(rgba)
	return nil
}

func (c hexColor) MarshalYAML() (any, error) {
	return fxlabel.RGBA(c).Hex(), nil
}

// blendMode is a blend mode written by name.
type blendMode fxlabel.BlendMode

func (m *blendMode) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	mode, err := fxlabel.ParseBlendMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*m = blendMode(mode)
	return nil
}

func (m blendMode) MarshalYAML() (any, error) {
	return fxlabel.BlendMode(m).String(), nil
}

// vec2 is a pair of numbers written as a two-element sequence.
type vec2 [2]float64

func (v *vec2) UnmarshalYAML(n *yaml.Node) error {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 2 {
		return fmt.Errorf("line %d: want 2 numbers, got %d", n.Line, len(xs))
	}
	*v = vec2{xs[0], xs[1]}
	return nil
}

func (v vec2) MarshalYAML() (any, error) {
	return []float64{v[0], v[1]}, nil
}

func (v *vec2) point() fxlabel.Point {
	return fxlabel.Pt(v[0], v[1])
}

// Decode parses a YAML style document. Unknown keys are rejected.
func Decode(data []byte) (*Style, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("style: failed to parse YAML: %w", err)
	}
	return doc.style()
}

// LoadFile reads and decodes a YAML style file.
func LoadFile(path string) (*Style, error) {
	// #nosec G304 -- Style file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: failed to read %s: %w", path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes s as a YAML document that Decode reads back to the same
// style.
func Encode(w io.Writer, s *Style) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(s)); err != nil {
		return fmt.Errorf("style: failed to write YAML: %w", err)
	}
	return enc.Close()
}

func (d *document) style() (*Style, error) {
	s := &Style{Name: d.Name}
	e := &s.Effects

	s.Fit.MinimumScaleFactor = d.Fit.MinimumScaleFactor
	if d.Fit.MaxSize != nil {
		s.Fit.MaxSize = fxlabel.Size{Width: d.Fit.MaxSize[0], Height: d.Fit.MaxSize[1]}
	}

	for _, st := range d.Strokes {
		e.StrokeWidths = append(e.StrokeWidths, st.Width)
		e.StrokeColors = append(e.StrokeColors, fxlabel.RGBA(st.Color))
	}

	if g := d.Gradient; g != nil {
		for _, c := range g.Colors {
			e.GradientColors = append(e.GradientColors, fxlabel.RGBA(c))
		}
		e.GradientStart, e.GradientEnd = fxlabel.DefaultGradientStart, fxlabel.DefaultGradientEnd
		if g.Start != nil {
			e.GradientStart = g.Start.point()
		}
		if g.End != nil {
			e.GradientEnd = g.End.point()
		}
	}

	for _, sh := range d.InnerShadows {
		shadow := fxlabel.Shadow{
			Offset:     sh.Offset.point(),
			BlurRadius: sh.Blur,
			Color:      fxlabel.DefaultShadowColor,
		}
		if sh.Color != nil {
			shadow.Color = fxlabel.RGBA(*sh.Color)
		}
		e.InnerShadows = append(e.InnerShadows, shadow)
		e.InnerShadowBlendModes = append(e.InnerShadowBlendModes, fxlabel.BlendMode(sh.Blend))
	}

	if d.Effects != "" {
		extra, err := ParseEffects(d.Effects)
		if err != nil {
			return nil, err
		}
		s.Merge(extra)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newDocument(s *Style) *document {
	e := &s.Effects
	d := &document{
		Name: s.Name,
		Fit:  fitDoc{MinimumScaleFactor: s.Fit.MinimumScaleFactor},
	}
	if s.Fit.MaxSize != (fxlabel.Size{}) {
		d.Fit.MaxSize = &vec2{s.Fit.MaxSize.Width, s.Fit.MaxSize.Height}
	}
	for _, st := range e.Strokes() {
		d.Strokes = append(d.Strokes, strokeDoc{Width: st.Width, Color: hexColor(st.Color)})
	}
	if g, ok := e.Gradient(); ok {
		gd := &gradientDoc{
			Start: &vec2{g.Start.X, g.Start.Y},
			End:   &vec2{g.End.X, g.End.Y},
		}
		for _, c := range g.Colors {
			gd.Colors = append(gd.Colors, hexColor(c))
		}
		d.Gradient = gd
	}
	for _, l := range e.ShadowLayers() {
		c := hexColor(l.Shadow.Color)
		d.InnerShadows = append(d.InnerShadows, innerShadowDoc{
			Offset: vec2{l.Shadow.Offset.X, l.Shadow.Offset.Y},
			Blur:   l.Shadow.BlurRadius,
			Color:  &c,
			Blend:  blendMode(l.BlendMode),
		})
	}
	return d
}
