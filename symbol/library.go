// Package symbol parses the KiCad symbol-library text format into a typed,
// validated in-memory model. Parsing is a pure function of the input: the
// first error anywhere in the recursive descent aborts the parse with a
// descriptive chain, and every produced value is immutable.
package symbol

import (
	"fmt"

	"github.com/jbcolle/kicad-library-manager/lexer"
	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// MaxNestingDepth bounds how deeply forms may nest. The grammar itself has
// no limit and the descent is recursive, so pathological input could
// otherwise exhaust the stack.
const MaxNestingDepth = 64

// Library is a parsed symbol library.
type Library struct {
	version          *uint64
	generator        *string
	generatorVersion *float64
	symbols          []Symbol
}

// Version returns the format version and whether one was present.
func (l *Library) Version() (uint64, bool) {
	if l.version == nil {
		return 0, false
	}
	return *l.version, true
}

// Generator returns the generator name and whether one was present.
func (l *Library) Generator() (string, bool) {
	if l.generator == nil {
		return "", false
	}
	return *l.generator, true
}

// GeneratorVersion returns the generator version and whether one was
// present.
func (l *Library) GeneratorVersion() (float64, bool) {
	if l.generatorVersion == nil {
		return 0, false
	}
	return *l.generatorVersion, true
}

// Symbols returns the library's ordered symbols.
func (l *Library) Symbols() []Symbol {
	return l.symbols
}

// AppendSymbols adds already-parsed symbols to the library, preserving
// order. This is the only post-construction mutation the model allows and it
// is not synchronized; callers merging libraries across goroutines must
// serialize access themselves.
func (l *Library) AppendSymbols(symbols ...Symbol) {
	l.symbols = append(l.symbols, symbols...)
}

// ParseLibrary parses a complete symbol-library document.
func ParseLibrary(data []byte) (*Library, error) {
	tokens, err := lexer.Tokenize(data)
	if err != nil {
		return nil, err
	}

	e := sexpr.Expression(tokens)

	if !e.Balanced() {
		return nil, fmt.Errorf("library: %w: unbalanced markers", sexpr.ErrStructural)
	}
	if depth := sexpr.Depth(e); depth > MaxNestingDepth {
		return nil, fmt.Errorf("library: %w: forms nested deeper than %d", sexpr.ErrStructural, MaxNestingDepth)
	}

	if err := sexpr.Expect(e, "kicad_symbol_lib"); err != nil {
		return nil, err
	}

	lib := &Library{}

	err = parseChildren("library", e[2:], rejectUnknown, map[string]childParser{
		"version": func(child sexpr.Expression) error {
			version, err := uintAt(child, 2, "version")
			if err != nil {
				return err
			}
			lib.version = &version
			return nil
		},
		"generator": func(child sexpr.Expression) error {
			generator, err := wordAt(child, 2, "generator")
			if err != nil {
				return err
			}
			lib.generator = &generator
			return nil
		},
		"generator_version": func(child sexpr.Expression) error {
			generatorVersion, err := floatAt(child, 2, "generator_version")
			if err != nil {
				return err
			}
			lib.generatorVersion = &generatorVersion
			return nil
		},
		"symbol": func(child sexpr.Expression) error {
			symbol, err := parseSymbol(child)
			if err != nil {
				return err
			}
			lib.symbols = append(lib.symbols, symbol)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return lib, nil
}
