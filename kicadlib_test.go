package kicadlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbcolle/kicad-library-manager/symbol"
)

const resistorLib = `(kicad_symbol_lib
	(version 20211014)
	(generator "kicad_symbol_editor")
	(generator_version 7.0)
	(symbol "Device:R"
		(pin_names (offset 0))
		(exclude_from_sim no)
		(in_bom yes)
		(on_board yes)
		(property "Reference" "R" (id 0) (at 2.032 0 90)
			(effects (font (size 1.27 1.27)))
		)
		(property "Value" "R" (id 1) (at 0 0 90)
			(effects (font (size 1.27 1.27)))
		)
		(property "Footprint" "" (id 2) (at -1.778 0 90)
			(effects (font (size 1.27 1.27)) (hide))
		)
		(property "Datasheet" "~" (id 3) (at 0 0 0)
			(effects (font (size 1.27 1.27)) (hide))
		)
		(property "ki_keywords" "R res resistor"
			(effects (font (size 1.27 1.27)) (hide))
		)
		(symbol "R_0_1"
			(polyline
				(pts (xy 0 -2.286) (xy 0 2.286))
				(stroke (width 0.254) (type default))
				(fill (type none))
			)
		)
		(symbol "R_1_1"
			(pin passive line (at 0 3.81 270) (length 1.27)
				(name "~" (effects (font (size 1.27 1.27))))
				(number "1" (effects (font (size 1.27 1.27))))
			)
			(pin passive line (at 0 -3.81 90) (length 1.27)
				(name "~" (effects (font (size 1.27 1.27))))
				(number "2" (effects (font (size 1.27 1.27))))
			)
		)
	)
)`

func TestParseSymbolLibrary(t *testing.T) {
	lib, err := ParseSymbolLibrary(strings.NewReader(resistorLib))
	require.NoError(t, err)

	version, ok := lib.Version()
	assert.True(t, ok)
	assert.Equal(t, uint64(20211014), version)

	generator, ok := lib.Generator()
	assert.True(t, ok)
	assert.Equal(t, "kicad_symbol_editor", generator)

	require.Len(t, lib.Symbols(), 1)
	sym := lib.Symbols()[0]
	assert.Equal(t, "Device:R", sym.Name())
	assert.Len(t, sym.Properties(), 5)

	require.Len(t, sym.SubSymbols(), 2)
	assert.Len(t, sym.SubSymbols()[0].Polylines(), 1)

	pins := sym.SubSymbols()[1].Pins()
	require.Len(t, pins, 2)
	assert.Equal(t, symbol.PinPassive, pins[0].Type())
	require.NotNil(t, pins[1].Number())
	assert.Equal(t, "2", pins[1].Number().Number())
}

func TestParse(t *testing.T) {
	lib, err := Parse([]byte(resistorLib))
	require.NoError(t, err)
	assert.Len(t, lib.Symbols(), 1)
}

func TestParseError(t *testing.T) {
	lib, err := Parse([]byte(`(kicad_symbol_lib (symbol "X" (unknown_key 1)))`))
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, symbol.ErrSchema)
}
