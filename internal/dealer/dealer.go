package dealer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

// cancelCheckInterval is how many search steps run between context checks.
const cancelCheckInterval = 1 << 12

type backtrackingDealer struct {
	logger *zap.Logger
}

// Option configures the dealer returned by New.
type Option func(*backtrackingDealer)

// WithLogger routes search diagnostics to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(d *backtrackingDealer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Distributor that searches for each person's share with a
// depth-first, take-before-skip backtracking search over ascending chips.
// The first exact combination found wins; it is not guaranteed to use the
// globally largest number of chips. The returned value holds no per-call
// state and may be reused.
func New(opts ...Option) Distributor {
	d := &backtrackingDealer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *backtrackingDealer) Distribute(ctx context.Context, rolls []chip.Roll, people int, buyIn money.Cents) (Result, error) {
	if people < 0 {
		return Result{}, fmt.Errorf("%w: people must be >= 0, got %d", ErrInvalidArgument, people)
	}
	if buyIn < 0 {
		return Result{}, fmt.Errorf("%w: buy-in must be >= $0.00, got %s", ErrInvalidArgument, buyIn)
	}
	for i, r := range rolls {
		if !r.Valid() {
			return Result{}, fmt.Errorf("%w: chip roll %d is not a valid roll", ErrInvalidArgument, i)
		}
	}

	if people == 0 || buyIn == 0 {
		return emptyResult(StatusNothingToDeal), nil
	}
	// there are people and a positive buy-in, so no chips means no solution
	if len(rolls) == 0 {
		return emptyResult(StatusNoSolution), nil
	}

	start := time.Now()
	reduced := reducePerPerson(rolls, people)
	chips := linearize(reduced)

	counts := make(map[money.Cents]int, len(reduced))
	for _, r := range reduced {
		counts[r.Denomination()] = 0
	}

	s := newSearch(chips)
	taken, err := s.run(ctx, buyIn)
	if err != nil {
		return Result{}, fmt.Errorf("search chips: %w", err)
	}
	for _, denomination := range taken {
		counts[denomination]++
	}

	result := Result{
		Counts: counts,
		Status: StatusSolved,
		Chips:  len(taken),
		Calls:  s.calls,
	}
	if !verify(counts, buyIn) {
		result = emptyResult(StatusNoSolution)
		result.Calls = s.calls
	}

	d.logger.Debug("distribution computed",
		zap.Int("people", people),
		zap.Stringer("buy_in", buyIn),
		zap.Int("unit_chips", len(chips)),
		zap.Int("chips_per_person", result.Chips),
		zap.Int("calls", result.Calls),
		zap.Stringer("status", result.Status),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func emptyResult(status Status) Result {
	return Result{Counts: map[money.Cents]int{}, Status: status}
}

// reducePerPerson divides every roll evenly between people so the search
// only has to solve for one person. Chips left over by the division are
// dropped from the pool.
func reducePerPerson(rolls []chip.Roll, people int) []chip.Roll {
	reduced := make([]chip.Roll, len(rolls))
	for i, r := range rolls {
		reduced[i] = chip.MustNew(r.Quantity()/people, r.Denomination())
	}
	return reduced
}

// linearize sorts rolls ascending by denomination and expands each into
// quantity-1 rolls, e.g. 3/$1.00 becomes 1/$1.00, 1/$1.00, 1/$1.00.
func linearize(rolls []chip.Roll) []chip.Roll {
	sorted := slices.Clone(rolls)
	slices.SortStableFunc(sorted, chip.Compare)

	size := 0
	for _, r := range sorted {
		size += r.Quantity()
	}

	chips := make([]chip.Roll, 0, size)
	for _, r := range sorted {
		unit := chip.MustNew(1, r.Denomination())
		for i := 0; i < r.Quantity(); i++ {
			chips = append(chips, unit)
		}
	}
	return chips
}

func verify(counts map[money.Cents]int, buyIn money.Cents) bool {
	return Result{Counts: counts}.Total() == buyIn
}
