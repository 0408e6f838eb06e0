package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

func TestEdgeIndex(t *testing.T) {
	require.Equal(t, 0, topology.EdgeIndex(robot.SideA, topology.XPlus))
	require.Equal(t, 2, topology.EdgeIndex(robot.SideA, topology.ZMinus))
	require.Equal(t, 3, topology.EdgeIndex(robot.SideB, topology.XPlus))
	require.Equal(t, 5, topology.EdgeIndex(robot.SideB, topology.ZMinus))
}

func TestReverseIsInvolution(t *testing.T) {
	e := topology.Edge{ID1: 0, Side1: robot.SideA, Dock1: topology.XPlus, Ori: topology.North, Dock2: topology.ZMinus, Side2: robot.SideB, ID2: 1}
	require.Equal(t, e, e.Reverse().Reverse())

	r := e.Reverse()
	require.Equal(t, e.ID2, r.ID1)
	require.Equal(t, e.ID1, r.ID2)
	require.Equal(t, e.Ori, r.Ori)
}

// TestNextEdgeEnumeratesAllOnce verifies Testable Property 3: iterating
// NextEdge from the initial tuple visits exactly 144 distinct edges before
// returning to the start.
func TestNextEdgeEnumeratesAllOnce(t *testing.T) {
	start := topology.Edge{ID1: 0, ID2: 1}
	seen := make(map[topology.Edge]bool)
	e := start
	for i := 0; i < topology.TotalEdgeVariants; i++ {
		require.False(t, seen[e], "edge %+v repeated before the full cycle", e)
		seen[e] = true
		e = topology.NextEdge(e)
	}
	require.Equal(t, start, e, "must return to the start after exactly 144 steps")
	require.Len(t, seen, topology.TotalEdgeVariants)
}

func TestEnumerateEdgesMatchesNextEdge(t *testing.T) {
	all := topology.EnumerateEdges(2, 3)
	require.Len(t, all, topology.TotalEdgeVariants)
	for i := 1; i < len(all); i++ {
		require.Equal(t, all[i], topology.NextEdge(all[i-1]))
	}
}
