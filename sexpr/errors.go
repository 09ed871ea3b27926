package sexpr

import (
	"errors"
	"fmt"

	"github.com/jbcolle/kicad-library-manager/lexer"
)

// ErrStructural reports a malformed expression: marker imbalance, a form
// shorter than required, or a wrong or missing leading keyword.
var ErrStructural = errors.New("invalid expression structure")

// Expect validates that the expression opens with a marker immediately
// followed by the given keyword. It is the mandatory first step of every
// construct parser; on success the construct's fields start at index 2.
func Expect(e Expression, keyword string) error {
	if len(e) < 2 {
		return fmt.Errorf("%w: expression shorter than two tokens", ErrStructural)
	}
	if !e[0].Is(lexer.TokenOpenExpr) {
		return fmt.Errorf("%w: expression does not start with an open marker", ErrStructural)
	}
	if !e[1].Is(lexer.TokenWord) || e[1].Text() != keyword {
		return fmt.Errorf("%w: expected keyword %q, got %q", ErrStructural, keyword, e[1].Text())
	}
	return nil
}
