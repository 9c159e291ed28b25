// Package presenter renders a per-person chip distribution as text.
package presenter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

// Formatter turns a denomination into its display form, e.g. "$2.00".
type Formatter interface {
	Format(money.Cents) string
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(money.Cents) string

// Format calls f(c).
func (f FormatterFunc) Format(c money.Cents) string { return f(c) }

// Lines returns one "<denomination> - <count>" line per entry in counts,
// largest denomination first. Each entry is a per-person roll, so counts must
// satisfy the chip.Roll invariants; Lines panics otherwise.
func Lines(counts map[money.Cents]int, f Formatter) []string {
	shares := make([]chip.Roll, 0, len(counts))
	for d, n := range counts {
		shares = append(shares, chip.MustNew(n, d))
	}
	slices.SortFunc(shares, chip.CompareDescending)

	lines := make([]string, 0, len(shares))
	for _, r := range shares {
		lines = append(lines, fmt.Sprintf("%s - %d", f.Format(r.Denomination()), r.Quantity()))
	}
	return lines
}

// Render joins Lines with newlines. There is no trailing newline, and an
// empty distribution renders as the empty string.
func Render(counts map[money.Cents]int, f Formatter) string {
	return strings.Join(Lines(counts, f), "\n")
}
