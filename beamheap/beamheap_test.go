package beamheap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/beamheap"
)

func TestPushEvictsWorstWhenFull(t *testing.T) {
	h := beamheap.New(2)
	require.True(t, h.Push(5, "five"))
	require.True(t, h.Push(3, "three"))
	require.False(t, h.Push(9, "nine")) // worse than both, rejected
	require.True(t, h.Push(1, "one"))   // better than worst (5), evicts it

	_, score, ok := h.PeekMin()
	require.True(t, ok)
	require.Equal(t, 1.0, score)
	require.Equal(t, 2, h.Len())
}

func TestPopMinMaxOrdering(t *testing.T) {
	h := beamheap.New(4)
	for _, s := range []float64{4, 1, 3, 2} {
		require.True(t, h.Push(s, s))
	}
	_, min, _ := h.PopMin()
	require.Equal(t, 1.0, min)
	_, max, _ := h.PopMax()
	require.Equal(t, 4.0, max)
	require.Equal(t, 2, h.Len())
}
