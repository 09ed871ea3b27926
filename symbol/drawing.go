package symbol

import (
	"fmt"
	"strings"

	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// StrokeType is the line style of a drawn primitive.
type StrokeType int

// Stroke types
const (
	StrokeDefault StrokeType = iota
)

// parseStrokeType maps a stroke-type word case-insensitively.
func parseStrokeType(w string) (StrokeType, error) {
	switch strings.ToLower(w) {
	case "default":
		return StrokeDefault, nil
	}
	return 0, fmt.Errorf("stroke: %w: type %q", ErrValue, w)
}

// Stroke is the line styling of a drawn primitive.
type Stroke struct {
	width      *float64
	strokeType *StrokeType
}

// Width returns the stroke width and whether one was present.
func (s Stroke) Width() (float64, bool) {
	if s.width == nil {
		return 0, false
	}
	return *s.width, true
}

// Type returns the stroke type and whether one was present.
func (s Stroke) Type() (StrokeType, bool) {
	if s.strokeType == nil {
		return 0, false
	}
	return *s.strokeType, true
}

func parseStroke(e sexpr.Expression) (Stroke, error) {
	if err := sexpr.Expect(e, "stroke"); err != nil {
		return Stroke{}, err
	}

	var stroke Stroke

	err := parseChildren("stroke", e[2:], rejectUnknown, map[string]childParser{
		"width": func(child sexpr.Expression) error {
			width, err := floatAt(child, 2, "stroke: width")
			if err != nil {
				return err
			}
			stroke.width = &width
			return nil
		},
		"type": func(child sexpr.Expression) error {
			w, err := wordAt(child, 2, "stroke: type")
			if err != nil {
				return err
			}
			strokeType, err := parseStrokeType(w)
			if err != nil {
				return err
			}
			stroke.strokeType = &strokeType
			return nil
		},
	})
	if err != nil {
		return Stroke{}, err
	}

	return stroke, nil
}

// FillType is the area style of a drawn primitive.
type FillType int

// Fill types
const (
	FillBackground FillType = iota
	FillOutline
	FillNone
)

// parseFillType maps a fill-type word case-insensitively.
func parseFillType(w string) (FillType, error) {
	switch strings.ToLower(w) {
	case "background":
		return FillBackground, nil
	case "outline":
		return FillOutline, nil
	case "none":
		return FillNone, nil
	}
	return 0, fmt.Errorf("fill: %w: type %q", ErrValue, w)
}

// Fill is the area styling of a drawn primitive.
type Fill struct {
	fillType *FillType
}

// Type returns the fill type and whether one was present.
func (f Fill) Type() (FillType, bool) {
	if f.fillType == nil {
		return 0, false
	}
	return *f.fillType, true
}

func parseFill(e sexpr.Expression) (Fill, error) {
	if err := sexpr.Expect(e, "fill"); err != nil {
		return Fill{}, err
	}

	var fill Fill

	err := parseChildren("fill", e[2:], rejectUnknown, map[string]childParser{
		"type": func(child sexpr.Expression) error {
			w, err := wordAt(child, 2, "fill: type")
			if err != nil {
				return err
			}
			fillType, err := parseFillType(w)
			if err != nil {
				return err
			}
			fill.fillType = &fillType
			return nil
		},
	})
	if err != nil {
		return Fill{}, err
	}

	return fill, nil
}

// Point is a 2-D coordinate.
type Point struct {
	x, y float64
}

func (p Point) X() float64 {
	return p.x
}

func (p Point) Y() float64 {
	return p.y
}

// parsePoints reads a "(pts (xy X Y)*)" form.
func parsePoints(e sexpr.Expression) ([]Point, error) {
	if err := sexpr.Expect(e, "pts"); err != nil {
		return nil, err
	}

	points := []Point{}

	err := parseChildren("pts", e[2:], rejectUnknown, map[string]childParser{
		"xy": func(child sexpr.Expression) error {
			x, err := floatAt(child, 2, "xy: x")
			if err != nil {
				return err
			}
			y, err := floatAt(child, 3, "xy: y")
			if err != nil {
				return err
			}
			points = append(points, Point{x: x, y: y})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

// Polyline is an open or closed sequence of straight segments.
type Polyline struct {
	points []Point
	stroke *Stroke
	fill   *Fill
}

// Points returns the ordered points of the polyline.
func (p Polyline) Points() []Point {
	return p.points
}

// Stroke returns the line styling, or nil when none was present.
func (p Polyline) Stroke() *Stroke {
	return p.stroke
}

// Fill returns the area styling, or nil when none was present.
func (p Polyline) Fill() *Fill {
	return p.fill
}

func parsePolyline(e sexpr.Expression) (Polyline, error) {
	if err := sexpr.Expect(e, "polyline"); err != nil {
		return Polyline{}, err
	}

	var polyline Polyline

	err := parseChildren("polyline", e[2:], rejectUnknown, map[string]childParser{
		"pts": func(child sexpr.Expression) error {
			points, err := parsePoints(child)
			if err != nil {
				return err
			}
			polyline.points = points
			return nil
		},
		"stroke": func(child sexpr.Expression) error {
			stroke, err := parseStroke(child)
			if err != nil {
				return err
			}
			polyline.stroke = &stroke
			return nil
		},
		"fill": func(child sexpr.Expression) error {
			fill, err := parseFill(child)
			if err != nil {
				return err
			}
			polyline.fill = &fill
			return nil
		},
	})
	if err != nil {
		return Polyline{}, err
	}

	return polyline, nil
}

// Text is a free-standing text item inside a symbol body.
type Text struct {
	text     string
	location Location
	effects  *Effects
}

// Text returns the text content.
func (t Text) Text() string {
	return t.text
}

// Location returns the required placement of the text.
func (t Text) Location() Location {
	return t.location
}

// Effects returns the text-rendering attributes, or nil when none were
// present.
func (t Text) Effects() *Effects {
	return t.effects
}

func parseText(e sexpr.Expression) (Text, error) {
	if err := sexpr.Expect(e, "text"); err != nil {
		return Text{}, err
	}

	content, err := wordAt(e, 2, "text")
	if err != nil {
		return Text{}, err
	}

	var location *Location
	var effects *Effects

	err = parseChildren("text", e[3:], rejectUnknown, map[string]childParser{
		"at": func(child sexpr.Expression) error {
			loc, err := parseLocation(child)
			if err != nil {
				return err
			}
			location = &loc
			return nil
		},
		"effects": func(child sexpr.Expression) error {
			eff, err := parseEffects(child)
			if err != nil {
				return err
			}
			effects = &eff
			return nil
		},
	})
	if err != nil {
		return Text{}, err
	}

	if location == nil {
		return Text{}, fmt.Errorf("text: %w: missing placement", sexpr.ErrStructural)
	}

	return Text{text: content, location: *location, effects: effects}, nil
}
