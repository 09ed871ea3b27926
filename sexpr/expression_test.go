package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbcolle/kicad-library-manager/lexer"
)

func tokenize(t *testing.T, in string) Expression {
	t.Helper()

	tokens, err := lexer.Tokenize([]byte(in))
	require.NoError(t, err)
	return Expression(tokens)
}

func TestSegment(t *testing.T) {
	testCases := []struct {
		In string
		N  int
	}{
		{``, 0},
		{`()`, 1},
		{`() ()`, 2},
		{`(a) (b (c)) (d)`, 3},
		{`(at 0 0 0) (length 2.54)`, 2},
		{`(symbol "R_0_1" (polyline (pts (xy 0 0) (xy 1 1))))`, 1},
		{
			`(pin_names (offset 1.016)) (in_bom yes) (on_board yes)
			 (property "Reference" "R" (at 2.032 0 90))`,
			4,
		},
	}

	for i := range testCases {
		expressions := Segment(tokenize(t, testCases[i].In))
		require.Len(t, expressions, testCases[i].N, "case %d: %q", i, testCases[i].In)

		for _, e := range expressions {
			assert.True(t, e.Balanced())
			assert.True(t, e[0].Is(lexer.TokenOpenExpr))
		}
	}
}

func TestSegmentSiblingContents(t *testing.T) {
	expressions := Segment(tokenize(t, `(a 1) (b (c 2) 3)`))
	require.Len(t, expressions, 2)

	kw, ok := expressions[0].Keyword()
	assert.True(t, ok)
	assert.Equal(t, "a", kw)

	kw, ok = expressions[1].Keyword()
	assert.True(t, ok)
	assert.Equal(t, "b", kw)
	assert.Len(t, expressions[1], 8)
}

func TestSegmentDropsStrayTokens(t *testing.T) {
	// a trailing close marker never completes a form at depth one
	expressions := Segment(tokenize(t, `(a) )`))
	assert.Len(t, expressions, 1)
}

func TestExpect(t *testing.T) {
	testCases := []struct {
		In      string
		Keyword string
		OK      bool
	}{
		{`(symbol "R")`, "symbol", true},
		{`(at 0 0 0)`, "at", true},
		{`(at 0 0 0)`, "symbol", false},
		{`()`, "symbol", false},
		{`(`, "symbol", false},
	}

	for i := range testCases {
		err := Expect(tokenize(t, testCases[i].In), testCases[i].Keyword)
		if testCases[i].OK {
			assert.NoError(t, err, "case %d", i)
		} else {
			assert.ErrorIs(t, err, ErrStructural, "case %d", i)
		}
	}
}

func TestExpectNotOpenMarker(t *testing.T) {
	e := Expression{
		lexer.NewToken(lexer.TokenWord, "symbol", 1, 1),
		lexer.NewToken(lexer.TokenWord, "R", 1, 8),
	}
	assert.ErrorIs(t, Expect(e, "symbol"), ErrStructural)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(tokenize(t, `a b c`)))
	assert.Equal(t, 1, Depth(tokenize(t, `(a) (b)`)))
	assert.Equal(t, 3, Depth(tokenize(t, `(a (b (c)))`)))
}

func TestBalanced(t *testing.T) {
	assert.True(t, tokenize(t, `(a (b))`).Balanced())
	assert.False(t, tokenize(t, `(a (b)`).Balanced())
}
