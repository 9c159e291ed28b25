package dealer

import (
	"context"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

// Status explains how a Result came about. It is diagnostic only: every
// non-solved status carries an empty Counts map.
type Status int

const (
	// StatusNothingToDeal means there were no people or a zero buy-in.
	StatusNothingToDeal Status = iota
	// StatusNoSolution means no exact combination of the per-person chips exists.
	StatusNoSolution
	// StatusSolved means Counts sums exactly to the buy-in.
	StatusSolved
)

func (s Status) String() string {
	switch s {
	case StatusNothingToDeal:
		return "nothing_to_deal"
	case StatusNoSolution:
		return "no_solution"
	case StatusSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Result is the per-person share computed by a Distributor.
// Counts holds one entry per distinct input denomination when solved, and is
// empty otherwise. Chips and Calls are derived values for callers that want
// aggregated or diagnostic information.
type Result struct {
	Counts map[money.Cents]int
	Status Status
	Chips  int
	Calls  int
}

// Total returns sum(denomination * count) over Counts.
func (r Result) Total() money.Cents {
	var total money.Cents
	for denomination, count := range r.Counts {
		total += denomination * money.Cents(count)
	}
	return total
}

// Distributor describes the behaviour required from a chip dealer.
type Distributor interface {
	Distribute(ctx context.Context, rolls []chip.Roll, people int, buyIn money.Cents) (Result, error)
}
