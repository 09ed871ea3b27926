package symbol

import (
	"errors"
)

var (
	// ErrSchema reports an unrecognized child keyword inside a construct
	// that enforces a closed child set.
	ErrSchema = errors.New("unrecognized construct")

	// ErrValue reports a token that fails to convert to its target scalar
	// or enumeration.
	ErrValue = errors.New("invalid value")
)
