package chip

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/chip-dealer/internal/money"
)

func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New(50, 200)
	require.NoError(t, err)
	require.Equal(t, money.Cents(200), r.Denomination())
	require.Equal(t, 50, r.Quantity())
	require.Equal(t, money.Cents(10000), r.Total())
	require.True(t, r.Valid())
	require.Equal(t, "50/$2.00", r.String())

	empty, err := New(0, 5)
	require.NoError(t, err)
	require.Equal(t, money.Cents(0), empty.Total())
}

func TestNewRejectsInvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		quantity     int
		denomination money.Cents
	}{
		{name: "zero denomination", quantity: 1, denomination: 0},
		{name: "negative denomination", quantity: 1, denomination: -5},
		{name: "negative quantity", quantity: -1, denomination: 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tc.quantity, tc.denomination)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	require.False(t, Roll{}.Valid())
	require.Panics(t, func() { MustNew(-1, 5) })
}

func TestFromDecimal(t *testing.T) {
	t.Parallel()

	r, err := FromDecimal(10, decimal.RequireFromString("0.25"))
	require.NoError(t, err)
	require.Equal(t, MustNew(10, 25), r)

	_, err = FromDecimal(10, decimal.RequireFromString("0.125"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, err, money.ErrNotExact)

	_, err = FromDecimal(10, decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRollEqualityAndHashing(t *testing.T) {
	t.Parallel()

	seen := map[Roll]int{}
	for _, r := range []Roll{MustNew(10, 100), MustNew(10, 100), MustNew(9, 100), MustNew(10, 200)} {
		seen[r]++
	}

	require.Len(t, seen, 3)
	require.Equal(t, 2, seen[MustNew(10, 100)])
	require.NotEqual(t, MustNew(9, 100), MustNew(10, 100))
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	rolls := []Roll{MustNew(50, 200), MustNew(100, 5), MustNew(50, 100), MustNew(100, 25)}

	ascending := slices.Clone(rolls)
	slices.SortStableFunc(ascending, Compare)
	require.Equal(t, []Roll{MustNew(100, 5), MustNew(100, 25), MustNew(50, 100), MustNew(50, 200)}, ascending)

	descending := slices.Clone(rolls)
	slices.SortStableFunc(descending, CompareDescending)
	require.Equal(t, []Roll{MustNew(50, 200), MustNew(50, 100), MustNew(100, 25), MustNew(100, 5)}, descending)

	require.Zero(t, Compare(MustNew(10, 500), MustNew(9, 500)))
}
