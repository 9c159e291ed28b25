package presenter

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

func TestRenderSortsDescending(t *testing.T) {
	t.Parallel()

	counts := map[money.Cents]int{5: 10, 200: 0, 25: 10, 100: 1, 10: 10, 50: 10}

	got := Render(counts, money.NewFormatter(language.English))

	want := "$2.00 - 0\n" +
		"$1.00 - 1\n" +
		"$0.50 - 10\n" +
		"$0.25 - 10\n" +
		"$0.10 - 10\n" +
		"$0.05 - 10"
	require.Equal(t, want, got)
}

func TestRenderKeepsWrittenScale(t *testing.T) {
	t.Parallel()

	counts := map[money.Cents]int{400: 0, 9900: 0, 10000: 0, 10600: 1}
	f := money.NewFormatter(language.English, money.WithScales(map[money.Cents]int32{
		400: 0, 9900: 0, 10000: 0, 10600: 0,
	}))

	require.Equal(t, "$106 - 1\n$100 - 0\n$99 - 0\n$4 - 0", Render(counts, f))
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	f := FormatterFunc(func(c money.Cents) string { return c.String() })

	require.Empty(t, Render(map[money.Cents]int{}, f))
	require.Empty(t, Render(nil, f))
	require.Empty(t, Lines(nil, f))
}

func TestLinesUseFormatter(t *testing.T) {
	t.Parallel()

	f := FormatterFunc(func(c money.Cents) string { return c.String() })

	require.Equal(t, []string{"$0.41 - 5", "$0.07 - 2"}, Lines(map[money.Cents]int{7: 2, 41: 5}, f))
}

func TestLinesMatchChipOrdering(t *testing.T) {
	t.Parallel()

	counts := map[money.Cents]int{1: 3, 10600: 1, 9900: 0, 400: 7, 10000: 2}
	f := FormatterFunc(func(c money.Cents) string { return c.String() })

	rolls := make([]chip.Roll, 0, len(counts))
	for d, n := range counts {
		rolls = append(rolls, chip.MustNew(n, d))
	}
	slices.SortFunc(rolls, chip.CompareDescending)

	want := make([]string, 0, len(rolls))
	for _, r := range rolls {
		want = append(want, fmt.Sprintf("%s - %d", r.Denomination(), r.Quantity()))
	}
	require.Equal(t, want, Lines(counts, f))
	require.Equal(t, "$106.00 - 1", Lines(counts, f)[0])
	require.Equal(t, "$0.01 - 3", Lines(counts, f)[len(counts)-1])
}

func TestLinesRejectInvalidShares(t *testing.T) {
	t.Parallel()

	f := FormatterFunc(func(c money.Cents) string { return c.String() })

	require.Panics(t, func() { Lines(map[money.Cents]int{0: 1}, f) })
	require.Panics(t, func() { Lines(map[money.Cents]int{25: -1}, f) })
}
