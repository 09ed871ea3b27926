package symbol

import (
	"fmt"

	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// parseOffset reads an "(offset F)" form.
func parseOffset(e sexpr.Expression) (float64, error) {
	if err := sexpr.Expect(e, "offset"); err != nil {
		return 0, err
	}
	return floatAt(e, 2, "offset")
}

// parseBoolFlag reads a single-value boolean form such as "(in_bom yes)".
// Only the literal strings "yes" and "no" are accepted.
func parseBoolFlag(e sexpr.Expression, keyword string) (bool, error) {
	if err := sexpr.Expect(e, keyword); err != nil {
		return false, err
	}
	w, err := wordAt(e, 2, keyword)
	if err != nil {
		return false, err
	}
	return parseYesNo(w, keyword)
}

// PinNames is a symbol's pin-name display block.
type PinNames struct {
	offset float64
}

func (n PinNames) Offset() float64 {
	return n.offset
}

// parsePinNames reads a "(pin_names (offset F))" form. The block carries
// exactly one child.
func parsePinNames(e sexpr.Expression) (PinNames, error) {
	if err := sexpr.Expect(e, "pin_names"); err != nil {
		return PinNames{}, err
	}

	children := sexpr.Segment(e[2:])
	if len(children) != 1 {
		return PinNames{}, fmt.Errorf("pin_names: %w: exactly one child expected, got %d", sexpr.ErrStructural, len(children))
	}

	offset, err := parseOffset(children[0])
	if err != nil {
		return PinNames{}, err
	}

	return PinNames{offset: offset}, nil
}

// SubSymbol is one alternate graphical body ("unit") of a symbol.
type SubSymbol struct {
	name      string
	polylines []Polyline
	texts     []Text
	pins      []Pin
}

func (s SubSymbol) Name() string {
	return s.name
}

// Polylines returns the unit's ordered polylines.
func (s SubSymbol) Polylines() []Polyline {
	return s.polylines
}

// Texts returns the unit's ordered text items.
func (s SubSymbol) Texts() []Text {
	return s.texts
}

// Pins returns the unit's ordered pins.
func (s SubSymbol) Pins() []Pin {
	return s.pins
}

func parseSubSymbol(e sexpr.Expression) (SubSymbol, error) {
	if err := sexpr.Expect(e, "symbol"); err != nil {
		return SubSymbol{}, err
	}

	// the unit name must be read before segmenting, or it would bleed
	// into the first child expression
	name, err := wordAt(e, 2, "symbol: name")
	if err != nil {
		return SubSymbol{}, err
	}

	sub := SubSymbol{name: name}

	err = parseChildren("symbol", e[3:], rejectUnknown, map[string]childParser{
		"polyline": func(child sexpr.Expression) error {
			polyline, err := parsePolyline(child)
			if err != nil {
				return err
			}
			sub.polylines = append(sub.polylines, polyline)
			return nil
		},
		"text": func(child sexpr.Expression) error {
			text, err := parseText(child)
			if err != nil {
				return err
			}
			sub.texts = append(sub.texts, text)
			return nil
		},
		"pin": func(child sexpr.Expression) error {
			pin, err := parsePin(child)
			if err != nil {
				return err
			}
			sub.pins = append(sub.pins, pin)
			return nil
		},
	})
	if err != nil {
		return SubSymbol{}, err
	}

	return sub, nil
}

// Symbol is one component definition: metadata plus one or more drawable
// bodies.
type Symbol struct {
	name           string
	pinNames       *PinNames
	excludeFromSim *bool
	inBOM          *bool
	onBoard        *bool
	properties     []Property
	subSymbols     []SubSymbol
}

func (s Symbol) Name() string {
	return s.name
}

// PinNames returns the pin-name display block, or nil when none was present.
func (s Symbol) PinNames() *PinNames {
	return s.pinNames
}

// ExcludeFromSim returns the exclude_from_sim flag and whether one was
// present.
func (s Symbol) ExcludeFromSim() (bool, bool) {
	if s.excludeFromSim == nil {
		return false, false
	}
	return *s.excludeFromSim, true
}

// InBOM returns the in_bom flag and whether one was present.
func (s Symbol) InBOM() (bool, bool) {
	if s.inBOM == nil {
		return false, false
	}
	return *s.inBOM, true
}

// OnBoard returns the on_board flag and whether one was present.
func (s Symbol) OnBoard() (bool, bool) {
	if s.onBoard == nil {
		return false, false
	}
	return *s.onBoard, true
}

// Properties returns the symbol's ordered properties. Duplicate keys are
// kept in document order.
func (s Symbol) Properties() []Property {
	return s.properties
}

// SubSymbols returns the symbol's ordered alternate bodies.
func (s Symbol) SubSymbols() []SubSymbol {
	return s.subSymbols
}

type symbolBuilder struct {
	symbol Symbol
}

func newSymbolBuilder(name string) *symbolBuilder {
	return &symbolBuilder{symbol: Symbol{name: name}}
}

func (b *symbolBuilder) pinNames(pinNames PinNames) *symbolBuilder {
	b.symbol.pinNames = &pinNames
	return b
}

func (b *symbolBuilder) excludeFromSim(v bool) *symbolBuilder {
	b.symbol.excludeFromSim = &v
	return b
}

func (b *symbolBuilder) inBOM(v bool) *symbolBuilder {
	b.symbol.inBOM = &v
	return b
}

func (b *symbolBuilder) onBoard(v bool) *symbolBuilder {
	b.symbol.onBoard = &v
	return b
}

func (b *symbolBuilder) addProperty(property Property) *symbolBuilder {
	b.symbol.properties = append(b.symbol.properties, property)
	return b
}

func (b *symbolBuilder) addSubSymbol(sub SubSymbol) *symbolBuilder {
	b.symbol.subSymbols = append(b.symbol.subSymbols, sub)
	return b
}

func (b *symbolBuilder) build() Symbol {
	return b.symbol
}

func parseSymbol(e sexpr.Expression) (Symbol, error) {
	if err := sexpr.Expect(e, "symbol"); err != nil {
		return Symbol{}, err
	}

	name, err := wordAt(e, 2, "symbol: name")
	if err != nil {
		return Symbol{}, err
	}

	builder := newSymbolBuilder(name)

	boolFlag := func(keyword string, set func(bool) *symbolBuilder) childParser {
		return func(child sexpr.Expression) error {
			v, err := parseBoolFlag(child, keyword)
			if err != nil {
				return err
			}
			set(v)
			return nil
		}
	}

	err = parseChildren("symbol", e[3:], rejectUnknown, map[string]childParser{
		"pin_names": func(child sexpr.Expression) error {
			pinNames, err := parsePinNames(child)
			if err != nil {
				return err
			}
			builder.pinNames(pinNames)
			return nil
		},
		"exclude_from_sim": boolFlag("exclude_from_sim", builder.excludeFromSim),
		"in_bom":           boolFlag("in_bom", builder.inBOM),
		"on_board":         boolFlag("on_board", builder.onBoard),
		"property": func(child sexpr.Expression) error {
			property, err := parseProperty(child)
			if err != nil {
				return err
			}
			builder.addProperty(property)
			return nil
		},
		// a nested symbol form is an alternate body, not a new symbol
		"symbol": func(child sexpr.Expression) error {
			sub, err := parseSubSymbol(child)
			if err != nil {
				return err
			}
			builder.addSubSymbol(sub)
			return nil
		},
	})
	if err != nil {
		return Symbol{}, err
	}

	return builder.build(), nil
}
