package money

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// CentsPerUnit is the number of minor units in one major currency unit.
	CentsPerUnit = 100
	// MaxScale is the largest number of fraction digits a cent amount can carry.
	MaxScale = 2
)

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	// digits with an optional fraction; the dollar sign is stripped first
	amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// Cents is an amount of money in minor currency units.
type Cents int64

// Decimal returns the amount in major units as an exact decimal.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -MaxScale)
}

// String renders the amount as dollars with two fraction digits, e.g. 150 → "$1.50".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/CentsPerUnit, v%CentsPerUnit)
}

// Amount is a parsed amount together with the number of fraction digits it
// was written with. Scale only affects display.
type Amount struct {
	Cents Cents
	Scale int32
}

// Parse converts currency text such as "$10.00", "17.15" or "$4" into an
// Amount. A leading dollar sign is optional. The integer part is required and
// the fraction, when present, carries one or two digits. A fraction that
// resolves to sub-cent precision fails with ErrNotExact.
func Parse(raw string) (Amount, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "$")
	if !amountPattern.MatchString(text) {
		return Amount{}, fmt.Errorf("%w: got %q", ErrMalformed, raw)
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: got %q", ErrMalformed, raw)
	}

	amount, err := FromDecimal(value)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: got %q", err, raw)
	}
	if _, fraction, ok := strings.Cut(text, "."); ok && len(fraction) > MaxScale {
		return Amount{}, fmt.Errorf("%w: at most %d fraction digits, got %q", ErrMalformed, MaxScale, raw)
	}
	return amount, nil
}

// FromDecimal converts a decimal amount in major units into cents, failing
// when the value is negative, too large, or carries a sub-cent fraction.
func FromDecimal(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, ErrMalformed
	}

	cents := value.Shift(MaxScale)
	if !cents.IsInteger() {
		return Amount{}, ErrNotExact
	}
	if cents.GreaterThan(maxCents) {
		return Amount{}, ErrMalformed
	}

	scale := -value.Exponent()
	if scale < 0 {
		scale = 0
	}
	if scale > MaxScale {
		scale = MaxScale
	}

	return Amount{Cents: Cents(cents.IntPart()), Scale: scale}, nil
}
