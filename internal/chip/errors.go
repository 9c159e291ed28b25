package chip

import "errors"

// ErrInvalidArgument is returned when a chip roll would violate its invariants.
var ErrInvalidArgument = errors.New("invalid chip roll")
