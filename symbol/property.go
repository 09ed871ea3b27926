package symbol

import (
	"fmt"

	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// PropertyKey is the closed set of recognized property keys. External
// spellings are exact and case-sensitive.
type PropertyKey int

// Property keys
const (
	KeyReference PropertyKey = iota
	KeyValue
	KeyFootprint
	KeyDatasheet
	KeyDescription
	KeyLocked
	KeyKeywords
	KeyFootprintFilters
	KeyPartRev
	KeyStandard
	KeyMaximumPackageHeight
	KeyManufacturer
)

var propertyKeyNames = map[PropertyKey]string{
	KeyReference:            "Reference",
	KeyValue:                "Value",
	KeyFootprint:            "Footprint",
	KeyDatasheet:            "Datasheet",
	KeyDescription:          "Description",
	KeyLocked:               "ki_locked",
	KeyKeywords:             "ki_keywords",
	KeyFootprintFilters:     "ki_fp_filters",
	KeyPartRev:              "PARTREV",
	KeyStandard:             "STANDARD",
	KeyMaximumPackageHeight: "MAXIMUM_PACKAGE_HEIGHT",
	KeyManufacturer:         "MANUFACTURER",
}

// String returns the key's external spelling.
func (k PropertyKey) String() string {
	return propertyKeyNames[k]
}

func parsePropertyKey(w string) (PropertyKey, error) {
	for k, name := range propertyKeyNames {
		if name == w {
			return k, nil
		}
	}
	return 0, fmt.Errorf("property: %w: key %q", ErrValue, w)
}

// parsePropertyID reads an "(id N)" form.
func parsePropertyID(e sexpr.Expression) (uint64, error) {
	if err := sexpr.Expect(e, "id"); err != nil {
		return 0, err
	}
	if len(e) < 4 {
		return 0, fmt.Errorf("id: %w: expression shorter than four tokens", sexpr.ErrStructural)
	}
	return uintAt(e, 2, "id")
}

// Property is one key-value metadata entry attached to a symbol.
type Property struct {
	key      PropertyKey
	value    string
	id       *uint64
	location *Location
	effects  *Effects
}

func (p Property) Key() PropertyKey {
	return p.key
}

func (p Property) Value() string {
	return p.value
}

// ID returns the numeric property id and whether one was present.
func (p Property) ID() (uint64, bool) {
	if p.id == nil {
		return 0, false
	}
	return *p.id, true
}

// Location returns the placement and whether one was present.
func (p Property) Location() (Location, bool) {
	if p.location == nil {
		return Location{}, false
	}
	return *p.location, true
}

// Effects returns the text-rendering attributes, or nil when none were
// present.
func (p Property) Effects() *Effects {
	return p.effects
}

type propertyBuilder struct {
	property Property
}

func newPropertyBuilder(key PropertyKey, value string) *propertyBuilder {
	return &propertyBuilder{property: Property{key: key, value: value}}
}

func (b *propertyBuilder) id(id uint64) *propertyBuilder {
	b.property.id = &id
	return b
}

func (b *propertyBuilder) location(location Location) *propertyBuilder {
	b.property.location = &location
	return b
}

func (b *propertyBuilder) effects(effects Effects) *propertyBuilder {
	b.property.effects = &effects
	return b
}

func (b *propertyBuilder) build() Property {
	return b.property
}

func parseProperty(e sexpr.Expression) (Property, error) {
	if err := sexpr.Expect(e, "property"); err != nil {
		return Property{}, err
	}

	keyWord, err := wordAt(e, 2, "property: key")
	if err != nil {
		return Property{}, err
	}
	value, err := wordAt(e, 3, "property: value")
	if err != nil {
		return Property{}, err
	}

	key, err := parsePropertyKey(keyWord)
	if err != nil {
		return Property{}, err
	}

	builder := newPropertyBuilder(key, value)

	err = parseChildren("property", e[4:], rejectUnknown, map[string]childParser{
		"id": func(child sexpr.Expression) error {
			id, err := parsePropertyID(child)
			if err != nil {
				return err
			}
			builder.id(id)
			return nil
		},
		"at": func(child sexpr.Expression) error {
			location, err := parseLocation(child)
			if err != nil {
				return err
			}
			builder.location(location)
			return nil
		},
		"effects": func(child sexpr.Expression) error {
			effects, err := parseEffects(child)
			if err != nil {
				return err
			}
			builder.effects(effects)
			return nil
		},
	})
	if err != nil {
		return Property{}, err
	}

	return builder.build(), nil
}
