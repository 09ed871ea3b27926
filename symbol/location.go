package symbol

import (
	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// Location is a placement triple: x, y and rotation.
type Location struct {
	x, y, rotation float64
}

func (l Location) X() float64 {
	return l.x
}

func (l Location) Y() float64 {
	return l.y
}

func (l Location) Rotation() float64 {
	return l.rotation
}

// parseLocation reads an "(at X Y ROTATION)" form.
func parseLocation(e sexpr.Expression) (Location, error) {
	if err := sexpr.Expect(e, "at"); err != nil {
		return Location{}, err
	}

	x, err := floatAt(e, 2, "at: x")
	if err != nil {
		return Location{}, err
	}
	y, err := floatAt(e, 3, "at: y")
	if err != nil {
		return Location{}, err
	}
	rotation, err := floatAt(e, 4, "at: rotation")
	if err != nil {
		return Location{}, err
	}

	return Location{x: x, y: y, rotation: rotation}, nil
}
