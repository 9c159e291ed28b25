package dealer

import "errors"

// ErrInvalidArgument is returned when Distribute is called with negative
// people, a negative buy-in, or a chip roll that violates its invariants.
var ErrInvalidArgument = errors.New("invalid distribution request")
