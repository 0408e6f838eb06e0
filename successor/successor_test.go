package successor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/successor"
	"github.com/rofi-go/rofi/topology"
)

func TestGenerateRotationsSingleModule(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	rots := successor.GenerateRotations(c, 90)
	// 3 joints * 2 directions, all legal (gamma always wraps, alpha/beta at
	// +-90 are exactly at the boundary and still legal).
	require.Len(t, rots, 6)
}

func TestGenerateDisconnectsReportsEachEdgeOnce(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	c.AddModule(0, 0, 0, 1)
	require.True(t, c.AddEdge(topology.Edge{
		ID1: 0, Side1: robot.SideA, Dock1: topology.XPlus,
		Ori:   topology.North,
		Dock2: topology.XMinus, Side2: robot.SideA, ID2: 1,
	}))
	require.Len(t, successor.GenerateDisconnects(c), 1)
}

func TestGenerateConnectsFindsKnownEdge(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	c.AddModule(0, 0, 0, 1)
	// Join the two B shoes so the configuration is connected, leaving the
	// A-side X+/X- docks free for the edge looked for below.
	require.True(t, c.AddEdge(topology.Edge{
		ID1: 0, Side1: robot.SideB, Dock1: topology.XMinus,
		Ori:   topology.North,
		Dock2: topology.XPlus, Side2: robot.SideB, ID2: 1,
	}))
	require.True(t, c.IsValid())

	found := false
	for _, e := range successor.GenerateConnects(c) {
		if e.ID1 == 0 && e.ID2 == 1 && e.Dock1 == topology.XPlus && e.Dock2 == topology.XMinus &&
			e.Side1 == robot.SideA && e.Side2 == robot.SideA && e.Ori == topology.North {
			found = true
		}
	}
	require.True(t, found)
}

func TestGenerateActionsSingleModuleCount(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	require.True(t, c.IsValid())
	actions := successor.GenerateActions(c, 90, 1)
	// 6 rotations, 0 disconnects, 0 connects (only one module present).
	require.Len(t, actions, 6)
}
