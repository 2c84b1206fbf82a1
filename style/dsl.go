package style

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/fxlabel"
)

// ErrSyntax is returned for effect strings that do not parse.
var ErrSyntax = errors.New("style: syntax error")

var (
	effectLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Sep", Pattern: `[;\n]`},
		{Name: "Color", Pattern: `#[0-9A-Za-z]+`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)`},
		{Name: "Keyword", Pattern: `\b(?:stroke|gradient|inner-shadow|fit|from|to|blur|min|size)\b`},
		{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `,`},
	})

	effectParser = participle.MustBuild[effectList](
		participle.Lexer(effectLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

type effectList struct {
	Statements []*statement `parser:"Sep* ( @@ Sep* )*"`
}

type statement struct {
	Stroke   *strokeStmt   `parser:"  @@"`
	Gradient *gradientStmt `parser:"| @@"`
	Shadow   *shadowStmt   `parser:"| @@"`
	Fit      *fitStmt      `parser:"| @@"`
}

type strokeStmt struct {
	Pos   lexer.Position
	Width float64 `parser:"'stroke' @Number"`
	Color string  `parser:"@Color"`
}

type gradientStmt struct {
	Pos    lexer.Position
	Colors []string `parser:"'gradient' @Color @Color+"`
	From   *pair    `parser:"( 'from' @@ )?"`
	To     *pair    `parser:"( 'to' @@ )?"`
}

type shadowStmt struct {
	Pos    lexer.Position
	Offset pair     `parser:"'inner-shadow' @@"`
	Blur   *float64 `parser:"( 'blur' @Number )?"`
	Color  *string  `parser:"@Color?"`
	Mode   *string  `parser:"@Ident?"`
}

type fitStmt struct {
	Pos  lexer.Position
	Min  *float64 `parser:"'fit' ( 'min' @Number )?"`
	Size *pair    `parser:"( 'size' @@ )?"`
}

type pair struct {
	X float64 `parser:"@Number ','"`
	Y float64 `parser:"@Number"`
}

func (p *pair) point() fxlabel.Point {
	return fxlabel.Pt(p.X, p.Y)
}

// ParseEffects parses a string in the effect language and returns the
// resulting style. Statements are separated by ';' or newlines:
//
//	stroke WIDTH COLOR
//	gradient COLOR COLOR... [from X,Y] [to X,Y]
//	inner-shadow DX,DY [blur RADIUS] [COLOR] [BLEND-MODE]
//	fit [min SCALE] [size WIDTH,HEIGHT]
//
// Strokes and inner shadows accumulate in order; a later gradient replaces
// an earlier one. Colors are hex (#rgb, #rgba, #rrggbb, #rrggbbaa).
func ParseEffects(src string) (*Style, error) {
	ast, err := effectParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	s := &Style{}
	for _, st := range ast.Statements {
		if err := st.apply(s); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustParseEffects is like ParseEffects but panics on error.
func MustParseEffects(src string) *Style {
	s, err := ParseEffects(src)
	if err != nil {
		panic(err)
	}
	return s
}

func (st *statement) apply(s *Style) error {
	e := &s.Effects
	switch {
	case st.Stroke != nil:
		c, err := parseColor(st.Stroke.Pos, st.Stroke.Color)
		if err != nil {
			return err
		}
		e.StrokeWidths = append(e.StrokeWidths, st.Stroke.Width)
		e.StrokeColors = append(e.StrokeColors, c)

	case st.Gradient != nil:
		g := st.Gradient
		colors := make([]fxlabel.RGBA, len(g.Colors))
		for i, hex := range g.Colors {
			c, err := parseColor(g.Pos, hex)
			if err != nil {
				return err
			}
			colors[i] = c
		}
		e.GradientColors = colors
		e.GradientStart, e.GradientEnd = fxlabel.DefaultGradientStart, fxlabel.DefaultGradientEnd
		if g.From != nil {
			e.GradientStart = g.From.point()
		}
		if g.To != nil {
			e.GradientEnd = g.To.point()
		}

	case st.Shadow != nil:
		sh := st.Shadow
		shadow := fxlabel.Shadow{Offset: sh.Offset.point(), Color: fxlabel.DefaultShadowColor}
		if sh.Blur != nil {
			shadow.BlurRadius = *sh.Blur
		}
		if sh.Color != nil {
			c, err := parseColor(sh.Pos, *sh.Color)
			if err != nil {
				return err
			}
			shadow.Color = c
		}
		mode := fxlabel.BlendNormal
		if sh.Mode != nil {
			m, err := fxlabel.ParseBlendMode(*sh.Mode)
			if err != nil {
				return fmt.Errorf("style: %s: %w", sh.Pos, err)
			}
			mode = m
		}
		e.InnerShadows = append(e.InnerShadows, shadow)
		e.InnerShadowBlendModes = append(e.InnerShadowBlendModes, mode)

	case st.Fit != nil:
		if st.Fit.Min != nil {
			s.Fit.MinimumScaleFactor = *st.Fit.Min
		}
		if st.Fit.Size != nil {
			s.Fit.MaxSize = fxlabel.Size{Width: st.Fit.Size.X, Height: st.Fit.Size.Y}
		}
	}
	return nil
}

func parseColor(pos lexer.Position, hex string) (fxlabel.RGBA, error) {
	c, err := fxlabel.ParseHex(hex)
	if err != nil {
		return fxlabel.RGBA{}, fmt.Errorf("style: %s: %w", pos, err)
	}
	return c, nil
}
