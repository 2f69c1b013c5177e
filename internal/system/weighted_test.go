package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/bestiary/internal/core/rng"
)

func TestWeightedTablePicksByCumulativeWeight(t *testing.T) {
	var w WeightedTable[string]
	w.Add("a", 10)
	w.Add("b", 20)
	w.Add("c", 70)
	w.Add("never", 0)
	require.Equal(t, 3, w.Len())
	require.Equal(t, 100, w.Total())

	cases := []struct {
		roll int
		want string
	}{
		{0, "a"}, {9, "a"}, {10, "b"}, {29, "b"}, {30, "c"}, {99, "c"},
	}
	for _, c := range cases {
		got, ok := w.Pick(rng.NewSequence(c.roll))
		require.True(t, ok)
		assert.Equal(t, c.want, got, "roll %d", c.roll)
	}
}

func TestWeightedTableConverges(t *testing.T) {
	var w WeightedTable[int]
	w.Add(0, 10)
	w.Add(1, 20)
	w.Add(2, 70)

	r := rng.New(7)
	const n = 100_000
	var counts [3]int
	for i := 0; i < n; i++ {
		got, ok := w.Pick(r)
		require.True(t, ok)
		counts[got]++
	}
	assert.InDelta(t, 0.10, float64(counts[0])/n, 0.02)
	assert.InDelta(t, 0.20, float64(counts[1])/n, 0.02)
	assert.InDelta(t, 0.70, float64(counts[2])/n, 0.02)
}

func TestWeightedTableEmpty(t *testing.T) {
	var w WeightedTable[int]
	_, ok := w.Pick(rng.New(1))
	assert.False(t, ok)
}
