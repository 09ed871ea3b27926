// Package kicadlib parses KiCad symbol-library (.kicad_sym) documents into
// typed, immutable values. The heavy lifting lives in the lexer, sexpr and
// symbol packages; this package only offers convenience entry points.
package kicadlib

import (
	"io"

	"github.com/jbcolle/kicad-library-manager/symbol"
)

// Parse parses a complete symbol-library document held in memory.
func Parse(in []byte) (*symbol.Library, error) {
	return symbol.ParseLibrary(in)
}

// ParseSymbolLibrary reads the whole document from r and parses it. The
// format is not parsed incrementally; the full contents are read first.
func ParseSymbolLibrary(r io.Reader) (*symbol.Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return symbol.ParseLibrary(data)
}
