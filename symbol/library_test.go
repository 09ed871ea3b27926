package symbol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbcolle/kicad-library-manager/lexer"
	"github.com/jbcolle/kicad-library-manager/sexpr"
)

func expr(t *testing.T, in string) sexpr.Expression {
	t.Helper()

	tokens, err := lexer.Tokenize([]byte(in))
	require.NoError(t, err)
	return sexpr.Expression(tokens)
}

func TestParseLibrary(t *testing.T) {
	lib, err := ParseLibrary([]byte(
		`(kicad_symbol_lib (version 20211014) (generator "test") (generator_version 7.0)
			(symbol "R" (property "Reference" "R" (at 0 0 0))))`,
	))
	require.NoError(t, err)

	version, ok := lib.Version()
	assert.True(t, ok)
	assert.Equal(t, uint64(20211014), version)

	generator, ok := lib.Generator()
	assert.True(t, ok)
	assert.Equal(t, "test", generator)

	generatorVersion, ok := lib.GeneratorVersion()
	assert.True(t, ok)
	assert.Equal(t, 7.0, generatorVersion)

	require.Len(t, lib.Symbols(), 1)
	sym := lib.Symbols()[0]
	assert.Equal(t, "R", sym.Name())

	require.Len(t, sym.Properties(), 1)
	prop := sym.Properties()[0]
	assert.Equal(t, KeyReference, prop.Key())
	assert.Equal(t, "R", prop.Value())

	location, ok := prop.Location()
	assert.True(t, ok)
	assert.Equal(t, 0.0, location.X())
	assert.Equal(t, 0.0, location.Y())
	assert.Equal(t, 0.0, location.Rotation())
}

func TestParseLibraryOptionalMetadata(t *testing.T) {
	lib, err := ParseLibrary([]byte(`(kicad_symbol_lib)`))
	require.NoError(t, err)

	_, ok := lib.Version()
	assert.False(t, ok)
	_, ok = lib.Generator()
	assert.False(t, ok)
	_, ok = lib.GeneratorVersion()
	assert.False(t, ok)
	assert.Len(t, lib.Symbols(), 0)
}

func TestParseLibraryIsPure(t *testing.T) {
	in := []byte(
		`(kicad_symbol_lib (version 20211014) (generator "test")
			(symbol "R"
				(pin_names (offset 0.254))
				(in_bom yes)
				(property "Reference" "R" (at 2.032 0 90) (effects (font (size 1.27 1.27))))
				(symbol "R_0_1"
					(polyline (pts (xy 0 -2.286) (xy 0 2.286)) (stroke (width 0.254)))
					(pin passive line (at 0 3.81 270) (length 1.27) (number "1"))
				)
			))`,
	)

	first, err := ParseLibrary(in)
	require.NoError(t, err)
	second, err := ParseLibrary(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseLibraryErrors(t *testing.T) {
	testCases := []struct {
		Name string
		In   string
		Err  error
	}{
		{
			"bad version",
			`(kicad_symbol_lib (version abc))`,
			ErrValue,
		},
		{
			"unknown top-level keyword",
			`(kicad_symbol_lib (vendor "x"))`,
			ErrSchema,
		},
		{
			"wrong outer keyword",
			`(kicad_footprint_lib (version 1))`,
			sexpr.ErrStructural,
		},
		{
			"unbalanced markers",
			`(kicad_symbol_lib (version 1)`,
			sexpr.ErrStructural,
		},
		{
			"bad generator_version",
			`(kicad_symbol_lib (generator_version x.y))`,
			ErrValue,
		},
	}

	for i := range testCases {
		t.Run(testCases[i].Name, func(t *testing.T) {
			lib, err := ParseLibrary([]byte(testCases[i].In))
			assert.Nil(t, lib)
			assert.ErrorIs(t, err, testCases[i].Err)
		})
	}
}

func TestParseLibraryBadVersionNamesField(t *testing.T) {
	_, err := ParseLibrary([]byte(`(kicad_symbol_lib (version abc))`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestParseLibraryDepthLimit(t *testing.T) {
	depth := MaxNestingDepth + 1
	in := strings.Repeat("(a ", depth) + strings.Repeat(")", depth)

	lib, err := ParseLibrary([]byte(in))
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, sexpr.ErrStructural)
	assert.Contains(t, err.Error(), "nested")
}

func TestAppendSymbols(t *testing.T) {
	dst, err := ParseLibrary([]byte(`(kicad_symbol_lib (symbol "R"))`))
	require.NoError(t, err)
	src, err := ParseLibrary([]byte(`(kicad_symbol_lib (symbol "C") (symbol "L"))`))
	require.NoError(t, err)

	dst.AppendSymbols(src.Symbols()...)

	require.Len(t, dst.Symbols(), 3)
	assert.Equal(t, "R", dst.Symbols()[0].Name())
	assert.Equal(t, "C", dst.Symbols()[1].Name())
	assert.Equal(t, "L", dst.Symbols()[2].Name())
}
