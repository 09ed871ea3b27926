package symbol

import (
	"fmt"

	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// PinType is the electrical type of a pin.
type PinType int

// Pin types
const (
	PinPassive PinType = iota
	PinPowerIn
	PinPowerOut
	PinInput
	PinUnspecified
)

var pinTypeNames = map[PinType]string{
	PinPassive:     "passive",
	PinPowerIn:     "power_in",
	PinPowerOut:    "power_out",
	PinInput:       "input",
	PinUnspecified: "unspecified",
}

func (t PinType) String() string {
	return pinTypeNames[t]
}

func parsePinType(w string) (PinType, error) {
	for t, name := range pinTypeNames {
		if name == w {
			return t, nil
		}
	}
	return 0, fmt.Errorf("pin: %w: type %q", ErrValue, w)
}

// PinPolarity is the graphical style of a pin.
type PinPolarity int

// Pin polarities
const (
	PolarityLine PinPolarity = iota
	PolarityInverted
)

var pinPolarityNames = map[PinPolarity]string{
	PolarityLine:     "line",
	PolarityInverted: "inverted",
}

func (p PinPolarity) String() string {
	return pinPolarityNames[p]
}

func parsePinPolarity(w string) (PinPolarity, error) {
	for p, name := range pinPolarityNames {
		if name == w {
			return p, nil
		}
	}
	return 0, fmt.Errorf("pin: %w: polarity %q", ErrValue, w)
}

// PinName is a pin's display name with optional text effects.
type PinName struct {
	name    string
	effects *Effects
}

func (n PinName) Name() string {
	return n.name
}

// Effects returns the text-rendering attributes, or nil when none were
// present.
func (n PinName) Effects() *Effects {
	return n.effects
}

func parsePinName(e sexpr.Expression) (PinName, error) {
	if err := sexpr.Expect(e, "name"); err != nil {
		return PinName{}, err
	}

	name, err := wordAt(e, 2, "name")
	if err != nil {
		return PinName{}, err
	}

	var effects *Effects

	err = parseChildren("name", e[3:], rejectUnknown, map[string]childParser{
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
		return PinName{}, err
	}

	return PinName{name: name, effects: effects}, nil
}

// PinNumber is a pin's designator with optional text effects. Designators
// are strings, not numbers: "A1" is a valid pin number.
type PinNumber struct {
	number  string
	effects *Effects
}

func (n PinNumber) Number() string {
	return n.number
}

// Effects returns the text-rendering attributes, or nil when none were
// present.
func (n PinNumber) Effects() *Effects {
	return n.effects
}

func parsePinNumber(e sexpr.Expression) (PinNumber, error) {
	if err := sexpr.Expect(e, "number"); err != nil {
		return PinNumber{}, err
	}

	number, err := wordAt(e, 2, "number")
	if err != nil {
		return PinNumber{}, err
	}

	var effects *Effects

	err = parseChildren("number", e[3:], rejectUnknown, map[string]childParser{
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
		return PinNumber{}, err
	}

	return PinNumber{number: number, effects: effects}, nil
}

// parsePinLength reads a "(length L)" form.
func parsePinLength(e sexpr.Expression) (float64, error) {
	if err := sexpr.Expect(e, "length"); err != nil {
		return 0, err
	}
	return floatAt(e, 2, "length")
}

// Pin is an electrical connection point of a symbol body.
type Pin struct {
	pinType  PinType
	polarity PinPolarity
	location *Location
	length   *float64
	name     *PinName
	number   *PinNumber
}

func (p Pin) Type() PinType {
	return p.pinType
}

func (p Pin) Polarity() PinPolarity {
	return p.polarity
}

// Location returns the placement and whether one was present.
func (p Pin) Location() (Location, bool) {
	if p.location == nil {
		return Location{}, false
	}
	return *p.location, true
}

// Length returns the pin length and whether one was present.
func (p Pin) Length() (float64, bool) {
	if p.length == nil {
		return 0, false
	}
	return *p.length, true
}

// Name returns the pin name, or nil when none was present.
func (p Pin) Name() *PinName {
	return p.name
}

// Number returns the pin number, or nil when none was present.
func (p Pin) Number() *PinNumber {
	return p.number
}

func parsePin(e sexpr.Expression) (Pin, error) {
	if err := sexpr.Expect(e, "pin"); err != nil {
		return Pin{}, err
	}

	typeWord, err := wordAt(e, 2, "pin: type")
	if err != nil {
		return Pin{}, err
	}
	polarityWord, err := wordAt(e, 3, "pin: polarity")
	if err != nil {
		return Pin{}, err
	}

	pinType, err := parsePinType(typeWord)
	if err != nil {
		return Pin{}, err
	}
	polarity, err := parsePinPolarity(polarityWord)
	if err != nil {
		return Pin{}, err
	}

	pin := Pin{pinType: pinType, polarity: polarity}

	err = parseChildren("pin", e[4:], ignoreUnknown, map[string]childParser{
		"at": func(child sexpr.Expression) error {
			location, err := parseLocation(child)
			if err != nil {
				return err
			}
			pin.location = &location
			return nil
		},
		"length": func(child sexpr.Expression) error {
			length, err := parsePinLength(child)
			if err != nil {
				return err
			}
			pin.length = &length
			return nil
		},
		"name": func(child sexpr.Expression) error {
			name, err := parsePinName(child)
			if err != nil {
				return err
			}
			pin.name = &name
			return nil
		},
		"number": func(child sexpr.Expression) error {
			number, err := parsePinNumber(child)
			if err != nil {
				return err
			}
			pin.number = &number
			return nil
		},
	})
	if err != nil {
		return Pin{}, err
	}

	return pin, nil
}
