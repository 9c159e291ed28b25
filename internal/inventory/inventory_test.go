package inventory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/chip-dealer/internal/chip"
	"github.com/eugenenazirov/chip-dealer/internal/money"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	c, err := ParseList("20/$4, 10/$99,10/$100 ,10/$106.00")
	require.NoError(t, err)

	require.Equal(t, []chip.Roll{
		chip.MustNew(20, 400),
		chip.MustNew(10, 9900),
		chip.MustNew(10, 10000),
		chip.MustNew(10, 10600),
	}, c.Rolls())
	require.Equal(t, map[money.Cents]int32{400: 0, 9900: 0, 10000: 0, 10600: 2}, c.Scales())
	require.Equal(t, []money.Cents{400, 9900, 10000, 10600}, c.Denominations())
	require.Equal(t, 50, c.Chips())
}

func TestParseKeepsDuplicateDenominations(t *testing.T) {
	t.Parallel()

	c, err := Parse([]string{"15/$1.00", "15/1"})
	require.NoError(t, err)

	require.Equal(t, []chip.Roll{chip.MustNew(15, 100), chip.MustNew(15, 100)}, c.Rolls())
	// the first spelling wins
	require.Equal(t, map[money.Cents]int32{100: 2}, c.Scales())
	require.Equal(t, []money.Cents{100}, c.Denominations())
}

func TestParseRejectsInvalidSpecs(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"100",
		"100/$0.05/1",
		"x/$0.05",
		"-1/$0.05",
		"10/$0.005",
		"10/$0.00",
		"10/abc",
		"10/$.25",
		"10/5.",
		"10/$0.050",
		"10/$92233720368547758.08",
	}

	for idx, spec := range invalid {
		spec := spec
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]string{spec})
			require.ErrorIs(t, err, ErrInvalidSpec)
		})
	}

	_, err := Parse([]string{"10/$0.005"})
	require.ErrorIs(t, err, money.ErrNotExact)

	_, err = Parse([]string{"10/$0.00"})
	require.ErrorIs(t, err, chip.ErrInvalidArgument)

	_, err = ParseList(" , ")
	require.ErrorIs(t, err, ErrEmpty)
}

func TestParseKeepsLargeDenominationsExact(t *testing.T) {
	t.Parallel()

	c, err := Parse([]string{"1/$92233720368547758.07", "2/$90071992547409.93"})
	require.NoError(t, err)

	require.Equal(t, []chip.Roll{
		chip.MustNew(1, 9223372036854775807),
		chip.MustNew(2, 9007199254740993),
	}, c.Rolls())
	require.Equal(t, []money.Cents{9007199254740993, 9223372036854775807}, c.Denominations())
}

func TestCaseReturnsCopies(t *testing.T) {
	t.Parallel()

	c, err := Parse(DefaultSpecs())
	require.NoError(t, err)

	rolls := c.Rolls()
	rolls[0] = chip.MustNew(1, 1)
	require.NotEqual(t, rolls, c.Rolls())

	scales := c.Scales()
	scales[5] = 0
	require.Equal(t, int32(2), c.Scales()[5])

	specs := DefaultSpecs()
	specs[0] = "changed"
	require.Equal(t, "100/$0.05", DefaultSpecs()[0])
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"1/$1", "2/$2"}, SplitList(" 1/$1 ,, 2/$2 ,"))
	require.Empty(t, SplitList(""))
}
