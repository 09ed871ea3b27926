package symbol

import (
	"fmt"

	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// childParser consumes one child expression of a composite.
type childParser func(e sexpr.Expression) error

// unknownPolicy decides what a composite does with a child whose keyword has
// no registered parser.
type unknownPolicy int

const (
	// rejectUnknown fails the parse on an unrecognized child keyword.
	rejectUnknown unknownPolicy = iota

	// ignoreUnknown skips unrecognized children. Only the pin construct
	// uses this policy, so unsupported pin attributes such as alternate
	// definitions do not fail the whole library.
	ignoreUnknown
)

// parseChildren segments body into sibling forms and dispatches each one by
// its keyword. The first failing child aborts the loop.
func parseChildren(construct string, body sexpr.Expression, policy unknownPolicy, parsers map[string]childParser) error {
	for _, child := range sexpr.Segment(body) {
		keyword, ok := child.Keyword()
		if !ok {
			return fmt.Errorf("%s: %w: child form has no keyword", construct, sexpr.ErrStructural)
		}

		parse, ok := parsers[keyword]
		if !ok {
			if policy == ignoreUnknown {
				continue
			}
			return fmt.Errorf("%s: %w: %q", construct, ErrSchema, keyword)
		}

		if err := parse(child); err != nil {
			return fmt.Errorf("%s: %w", construct, err)
		}
	}
	return nil
}
