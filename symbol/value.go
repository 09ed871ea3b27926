package symbol

import (
	"fmt"
	"strconv"

	"github.com/jbcolle/kicad-library-manager/sexpr"
)

// wordAt returns the text of the word token at index i, or a structural
// error naming the field when the token is missing or not a word.
func wordAt(e sexpr.Expression, i int, field string) (string, error) {
	w, ok := e.Word(i)
	if !ok {
		return "", fmt.Errorf("%s: %w: missing value", field, sexpr.ErrStructural)
	}
	return w, nil
}

func floatAt(e sexpr.Expression, i int, field string) (float64, error) {
	w, err := wordAt(e, i, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q is not a number", field, ErrValue, w)
	}
	return v, nil
}

func uintAt(e sexpr.Expression, i int, field string) (uint64, error) {
	w, err := wordAt(e, i, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(w, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q is not an unsigned integer", field, ErrValue, w)
	}
	return v, nil
}

// parseYesNo accepts only the literal strings "yes" and "no".
func parseYesNo(w string, field string) (bool, error) {
	switch w {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("%s: %w: boolean value %q is not yes or no", field, ErrValue, w)
}
