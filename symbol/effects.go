package symbol

import (
	"fmt"

	"github.com/jbcolle/kicad-library-manager/lexer"
	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// FontSize is a width/height pair in millimetres.
type FontSize struct {
	width, height float64
}

func (s FontSize) Width() float64 {
	return s.width
}

func (s FontSize) Height() float64 {
	return s.height
}

// parseFontSize reads a "(size WIDTH HEIGHT)" form. The form carries exactly
// two values.
func parseFontSize(e sexpr.Expression) (FontSize, error) {
	if err := sexpr.Expect(e, "size"); err != nil {
		return FontSize{}, err
	}
	if len(e) != 5 {
		return FontSize{}, fmt.Errorf("size: %w: expected exactly two values", sexpr.ErrStructural)
	}

	width, err := floatAt(e, 2, "size: width")
	if err != nil {
		return FontSize{}, err
	}
	height, err := floatAt(e, 3, "size: height")
	if err != nil {
		return FontSize{}, err
	}

	return FontSize{width: width, height: height}, nil
}

// Font holds an optional size and six independent style switches. The mere
// presence of a switch child sets it.
type Font struct {
	size *FontSize

	bold        bool
	italic      bool
	subscript   bool
	superscript bool
	overbar     bool
	underline   bool
}

// Size returns the font size and whether one was present.
func (f Font) Size() (FontSize, bool) {
	if f.size == nil {
		return FontSize{}, false
	}
	return *f.size, true
}

func (f Font) Bold() bool        { return f.bold }
func (f Font) Italic() bool      { return f.italic }
func (f Font) Subscript() bool   { return f.subscript }
func (f Font) Superscript() bool { return f.superscript }
func (f Font) Overbar() bool     { return f.overbar }
func (f Font) Underline() bool   { return f.underline }

func parseFont(e sexpr.Expression) (Font, error) {
	if err := sexpr.Expect(e, "font"); err != nil {
		return Font{}, err
	}

	var font Font

	setFlag := func(flag *bool) childParser {
		return func(sexpr.Expression) error {
			*flag = true
			return nil
		}
	}

	err := parseChildren("font", e[2:], rejectUnknown, map[string]childParser{
		"size": func(child sexpr.Expression) error {
			size, err := parseFontSize(child)
			if err != nil {
				return err
			}
			font.size = &size
			return nil
		},
		"bold":        setFlag(&font.bold),
		"italic":      setFlag(&font.italic),
		"subscript":   setFlag(&font.subscript),
		"superscript": setFlag(&font.superscript),
		"overbar":     setFlag(&font.overbar),
		"underline":   setFlag(&font.underline),
	})
	if err != nil {
		return Font{}, err
	}

	return font, nil
}

// Justify is a text justification direction.
type Justify int

// Justification directions
const (
	JustifyBottom Justify = iota
	JustifyTop
	JustifyLeft
	JustifyRight
)

var justifyNames = map[Justify]string{
	JustifyBottom: "bottom",
	JustifyTop:    "top",
	JustifyLeft:   "left",
	JustifyRight:  "right",
}

func (j Justify) String() string {
	return justifyNames[j]
}

// parseJustify maps a justification word case-sensitively.
func parseJustify(w string) (Justify, error) {
	for j, name := range justifyNames {
		if name == w {
			return j, nil
		}
	}
	return 0, fmt.Errorf("justify: %w: %q", ErrValue, w)
}

// Effects holds the text-rendering attributes of a text-bearing field.
type Effects struct {
	font    *Font
	hide    bool
	justify []Justify
}

// Font returns the font settings, or nil when none were present.
func (e Effects) Font() *Font {
	return e.font
}

func (e Effects) Hidden() bool {
	return e.hide
}

// Justify returns the ordered justification directions.
func (e Effects) Justify() []Justify {
	return e.justify
}

func parseEffects(e sexpr.Expression) (Effects, error) {
	if err := sexpr.Expect(e, "effects"); err != nil {
		return Effects{}, err
	}

	var effects Effects

	err := parseChildren("effects", e[2:], rejectUnknown, map[string]childParser{
		"font": func(child sexpr.Expression) error {
			font, err := parseFont(child)
			if err != nil {
				return err
			}
			effects.font = &font
			return nil
		},
		"justify": func(child sexpr.Expression) error {
			if len(child) < 3 {
				return fmt.Errorf("justify: %w: no values", sexpr.ErrStructural)
			}
			// justification words sit between the keyword and the
			// closing marker
			for i := 2; i < len(child)-1; i++ {
				if !child[i].Is(lexer.TokenWord) {
					return fmt.Errorf("justify: %w: value is not a word", sexpr.ErrStructural)
				}
				j, err := parseJustify(child[i].Text())
				if err != nil {
					return err
				}
				effects.justify = append(effects.justify, j)
			}
			return nil
		},
		"hide": func(sexpr.Expression) error {
			effects.hide = true
			return nil
		},
	})
	if err != nil {
		return Effects{}, err
	}

	return effects, nil
}
