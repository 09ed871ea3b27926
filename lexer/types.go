package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenExpr            // Open parenthesis: "("
	TokenCloseExpr           // Close parenthesis: ")"
	TokenWord                // Bare or quoted run of characters
	TokenEOF                 // End of file
)

// Character classes that never reach the token stream: whitespace is
// discarded and double quotes only delimit words.
const (
	tokenWhitespace TokenType = iota + 100
	tokenQuote
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpr:   {'('},
	TokenCloseExpr:  {')'},
	tokenWhitespace: []rune(" \f\t\n\r"),
	tokenQuote:      {'"'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenExpr:  "open_expr",
	TokenCloseExpr: "close_expr",
	TokenWord:      "word",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}
