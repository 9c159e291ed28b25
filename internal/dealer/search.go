package dealer

import (
	"context"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

// frame is one decision on the current search path: the chip at index was
// either taken (took) or, after the take branch failed, skipped.
type frame struct {
	index     int
	remaining money.Cents
	took      bool
}

// search walks the unit chips depth first. At each position it tries to take
// the chip before skipping it, and stops at the first exact match. The path
// lives on an explicit stack, so depth is bounded by memory rather than by
// the goroutine stack.
type search struct {
	chips []chip.Roll
	// next[i] is the first index after i holding a larger denomination.
	next  []int
	calls int
}

func newSearch(chips []chip.Roll) *search {
	next := make([]int, len(chips))
	for i := len(chips) - 1; i >= 0; i-- {
		if i+1 < len(chips) && chips[i+1].Denomination() == chips[i].Denomination() {
			next[i] = next[i+1]
		} else {
			next[i] = i + 1
		}
	}
	return &search{chips: chips, next: next}
}

// run returns the denominations taken on the first path whose values sum
// exactly to target, or nil when there is none.
//
// When a take fails and the chip is skipped, the search resumes at the next
// larger denomination instead of the next chip: taking an equal chip from the
// same remainder would reach a state the failed take already covered. This
// returns the same path as stepping one chip at a time.
func (s *search) run(ctx context.Context, target money.Cents) ([]money.Cents, error) {
	var stack []frame
	index, remaining := 0, target

	for steps := 0; ; steps++ {
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if remaining == 0 {
			return takenDenominations(s.chips, stack), nil
		}

		if index < len(s.chips) {
			s.calls++
			denomination := s.chips[index].Denomination()
			// chips ascend, so a chip larger than the remainder ends this path
			if remaining >= denomination {
				stack = append(stack, frame{index: index, remaining: remaining, took: true})
				index, remaining = index+1, remaining-denomination
				continue
			}
		}

		// dead end: switch the innermost take to its skip branch
		for {
			if len(stack) == 0 {
				return nil, nil
			}
			top := &stack[len(stack)-1]
			if top.took {
				top.took = false
				index, remaining = s.next[top.index], top.remaining
				break
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func takenDenominations(chips []chip.Roll, path []frame) []money.Cents {
	taken := make([]money.Cents, 0, len(path))
	for _, f := range path {
		if f.took {
			taken = append(taken, chips[f.index].Denomination())
		}
	}
	return taken
}
