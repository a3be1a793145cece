package circuit

import "errors"

// Domain errors for electrical derivations.
var (
	// ErrDomain indicates parameters outside the model's valid numeric range
	// (non-positive resistance, vanishing denominator).
	ErrDomain = errors.New("circuit: parameter outside model domain")
)
