package money

import "errors"

var (
	// ErrMalformed is returned when the text is not a plain non-negative decimal amount.
	ErrMalformed = errors.New("amount must be a non-negative decimal such as $10.00")
	// ErrNotExact is returned when the amount does not resolve to a whole number of cents.
	ErrNotExact = errors.New("amount cannot include a fraction smaller than $0.01")
)
