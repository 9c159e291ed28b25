// Package chip defines the chip roll: a denomination paired with the number
// of chips available at that denomination.
package chip

import (
	"cmp"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eugenenazirov/chip-dealer/internal/money"
)

// Roll is an immutable chip roll. Rolls are comparable, so == and map keys
// work over (denomination, quantity).
type Roll struct {
	denomination money.Cents
	quantity     int
}

// New creates a roll of quantity chips worth denomination each.
func New(quantity int, denomination money.Cents) (Roll, error) {
	if denomination < 1 {
		return Roll{}, fmt.Errorf("%w: denomination must be >= $0.01, got %s", ErrInvalidArgument, denomination)
	}
	if quantity < 0 {
		return Roll{}, fmt.Errorf("%w: quantity must be >= 0, got %d", ErrInvalidArgument, quantity)
	}
	return Roll{denomination: denomination, quantity: quantity}, nil
}

// FromDecimal creates a roll from a denomination in major units, rejecting
// values that do not resolve to a whole number of cents.
func FromDecimal(quantity int, denomination decimal.Decimal) (Roll, error) {
	amount, err := money.FromDecimal(denomination)
	if err != nil {
		return Roll{}, fmt.Errorf("%w: denomination %s: %w", ErrInvalidArgument, denomination, err)
	}
	return New(quantity, amount.Cents)
}

// MustNew is like New but panics on invalid input. Intended for tests and
// static tables.
func MustNew(quantity int, denomination money.Cents) Roll {
	r, err := New(quantity, denomination)
	if err != nil {
		panic(err)
	}
	return r
}

// Denomination returns the value of a single chip.
func (r Roll) Denomination() money.Cents { return r.denomination }

// Quantity returns the number of chips in the roll.
func (r Roll) Quantity() int { return r.quantity }

// Total returns denomination * quantity.
func (r Roll) Total() money.Cents { return r.denomination * money.Cents(r.quantity) }

// Valid reports whether r satisfies the roll invariants. The zero Roll is not valid.
func (r Roll) Valid() bool {
	return r.denomination >= 1 && r.quantity >= 0
}

func (r Roll) String() string {
	return fmt.Sprintf("%d/%s", r.quantity, r.denomination)
}

// Compare orders rolls by denomination, ascending. Quantity is ignored, so a
// roll of ten $5.00 chips compares equal to a roll of nine.
func Compare(a, b Roll) int {
	return cmp.Compare(a.denomination, b.denomination)
}

// CompareDescending orders rolls by denomination, largest first.
func CompareDescending(a, b Roll) int {
	return Compare(b, a)
}
