// Package sexpr models balanced parenthesized forms on top of the token
// stream produced by the lexer package. An Expression is one complete form
// including its own markers; Segment splits a run of sibling forms into
// individual expressions and Expect validates a form's leading keyword.
package sexpr

import (
	"github.com/jbcolle/kicad-library-manager/lexer"
)

// Expression is an ordered sequence of tokens representing one complete,
// balanced parenthesized form, markers included.
type Expression []lexer.Token

// Keyword returns the word naming the construct, i.e. the word token
// immediately following the opening marker.
func (e Expression) Keyword() (string, bool) {
	if len(e) < 2 || !e[0].Is(lexer.TokenOpenExpr) || !e[1].Is(lexer.TokenWord) {
		return "", false
	}
	return e[1].Text(), true
}

// Word returns the text of the word token at index i.
func (e Expression) Word(i int) (string, bool) {
	if i < 0 || i >= len(e) || !e[i].Is(lexer.TokenWord) {
		return "", false
	}
	return e[i].Text(), true
}

// Balanced reports whether the expression holds as many open markers as
// close markers.
func (e Expression) Balanced() bool {
	open, closed := 0, 0
	for _, tok := range e {
		switch {
		case tok.Is(lexer.TokenOpenExpr):
			open++
		case tok.Is(lexer.TokenCloseExpr):
			closed++
		}
	}
	return open == closed
}

// Depth returns the maximum marker nesting depth of the token sequence.
func Depth(e Expression) int {
	depth, max := 0, 0
	for _, tok := range e {
		switch {
		case tok.Is(lexer.TokenOpenExpr):
			depth++
			if depth > max {
				max = depth
			}
		case tok.Is(lexer.TokenCloseExpr):
			depth--
		}
	}
	return max
}

// Segment splits a flat token sequence holding zero or more consecutive
// sibling forms into one expression per top-level form. Tokens that never
// complete a form at depth one, such as a stray trailing close marker, are
// dropped.
func Segment(tokens Expression) []Expression {
	expressions := []Expression{}
	current := Expression{}
	openCount := 0

	for _, tok := range tokens {
		switch {
		case tok.Is(lexer.TokenOpenExpr):
			current = append(current, tok)
			openCount++
		case tok.Is(lexer.TokenCloseExpr):
			current = append(current, tok)
			if openCount == 1 {
				expressions = append(expressions, current)
				current = Expression{}
			}
			openCount--
		default:
			current = append(current, tok)
		}
	}

	return expressions
}
