package inventory

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

var (
	// ErrInvalidSpec indicates a chip spec that is not of the form quantity/$denomination.
	ErrInvalidSpec = errors.New("chip spec must look like quantity/$denomination, e.g. 100/$0.25")
	// ErrEmpty indicates that no chip specs were provided.
	ErrEmpty = errors.New("at least one chip spec is required")
)

var defaultSpecs = []string{"100/$0.05", "100/$0.10", "100/$0.25", "100/$0.50", "50/$1.00", "50/$2.00"}

// DefaultSpecs returns a copy of the standard chip case.
func DefaultSpecs() []string {
	return slices.Clone(defaultSpecs)
}

// Case is a parsed chip inventory: the rolls in input order plus the number
// of fraction digits each denomination was written with.
type Case struct {
	rolls  []chip.Roll
	scales map[money.Cents]int32
}

// SplitList splits a comma-separated list of chip specs, dropping blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	specs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		specs = append(specs, part)
	}
	return specs
}

// ParseList parses a comma-separated list such as "100/$0.05,50/$1.00".
func ParseList(raw string) (*Case, error) {
	return Parse(SplitList(raw))
}

// Parse validates every spec and builds a Case. Duplicate denominations are
// kept as separate rolls.
func Parse(specs []string) (*Case, error) {
	if len(specs) == 0 {
		return nil, ErrEmpty
	}

	c := &Case{
		rolls:  make([]chip.Roll, 0, len(specs)),
		scales: make(map[money.Cents]int32, len(specs)),
	}
	for _, spec := range specs {
		roll, amount, err := parseSpec(spec)
		if err != nil {
			return nil, err
		}
		c.rolls = append(c.rolls, roll)
		if _, seen := c.scales[amount.Cents]; !seen {
			c.scales[amount.Cents] = amount.Scale
		}
	}
	return c, nil
}

func parseSpec(spec string) (chip.Roll, money.Amount, error) {
	parts := strings.Split(strings.TrimSpace(spec), "/")
	if len(parts) != 2 {
		return chip.Roll{}, money.Amount{}, fmt.Errorf("%w: got %q", ErrInvalidSpec, spec)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || quantity < 0 {
		return chip.Roll{}, money.Amount{}, fmt.Errorf("%w: invalid quantity in %q", ErrInvalidSpec, spec)
	}

	amount, err := money.Parse(parts[1])
	if err != nil {
		return chip.Roll{}, money.Amount{}, fmt.Errorf("%w: invalid denomination in %q: %w", ErrInvalidSpec, spec, err)
	}

	// FromDecimal re-checks that the denomination lands on whole cents
	roll, err := chip.FromDecimal(quantity, amount.Cents.Decimal())
	if err != nil {
		return chip.Roll{}, money.Amount{}, fmt.Errorf("%w: %q: %w", ErrInvalidSpec, spec, err)
	}
	return roll, amount, nil
}

// Rolls returns a copy of the rolls in input order.
func (c *Case) Rolls() []chip.Roll {
	return slices.Clone(c.rolls)
}

// Scales returns a copy of the written scale of every denomination.
func (c *Case) Scales() map[money.Cents]int32 {
	out := make(map[money.Cents]int32, len(c.scales))
	for d, s := range c.scales {
		out[d] = s
	}
	return out
}

// Denominations returns the distinct denominations, ascending.
func (c *Case) Denominations() []money.Cents {
	out := make([]money.Cents, 0, len(c.scales))
	for d := range c.scales {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Chips returns the total number of chips in the case.
func (c *Case) Chips() int {
	total := 0
	for _, r := range c.rolls {
		total += r.Quantity()
	}
	return total
}
