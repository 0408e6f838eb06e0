package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

// twoModuleLine builds two modules joined X+/X- face to face, North
// orientation, all joints zero — the simplest non-trivial Configuration.
func twoModuleLine(t *testing.T) *configuration.Configuration {
	t.Helper()
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	c.AddModule(0, 0, 0, 1)
	ok := c.AddEdge(topology.Edge{
		ID1: 0, Side1: robot.SideA, Dock1: topology.XPlus,
		Ori:   topology.North,
		Dock2: topology.XMinus, Side2: robot.SideA, ID2: 1,
	})
	require.True(t, ok)
	return c
}

func TestAddModuleIsIdempotent(t *testing.T) {
	c := configuration.New()
	m1 := c.AddModule(10, 0, 0, 5)
	m2 := c.AddModule(99, 99, 99, 5)
	require.Same(t, m1, m2)
	require.InDelta(t, 10.0, m1.Joint(robot.Alpha), 1e-9)
}

func TestAddEdgeRejectsOccupiedSlot(t *testing.T) {
	c := twoModuleLine(t)
	ok := c.AddEdge(topology.Edge{
		ID1: 0, Side1: robot.SideA, Dock1: topology.XPlus,
		Ori:   topology.North,
		Dock2: topology.ZMinus, Side2: robot.SideB, ID2: 1,
	})
	require.False(t, ok)
}

func TestConnectedSingleModule(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	require.True(t, c.Connected())
}

func TestConnectedDetectsDisjointModules(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	c.AddModule(0, 0, 0, 1)
	require.False(t, c.Connected())
}

func TestIsValidTwoModuleLine(t *testing.T) {
	c := twoModuleLine(t)
	require.True(t, c.IsValid())
}

func TestRemoveEdgeOnTreeEdgeInvalidatesConnectivity(t *testing.T) {
	c := twoModuleLine(t)
	require.True(t, c.Connected())
	ok := c.RemoveEdge(topology.Edge{
		ID1: 0, Side1: robot.SideA, Dock1: topology.XPlus,
		Ori:   topology.North,
		Dock2: topology.XMinus, Side2: robot.SideA, ID2: 1,
	})
	require.True(t, ok)
	require.False(t, c.Connected())
}

func TestCloneIsIndependent(t *testing.T) {
	c := twoModuleLine(t)
	require.True(t, c.IsValid())
	clone := c.Clone()
	require.True(t, c.Equal(clone))

	m, _ := clone.Module(0)
	m.SetJoint(robot.Alpha, 45)
	require.False(t, c.Equal(clone))

	orig, _ := c.Module(0)
	require.InDelta(t, 0.0, orig.Joint(robot.Alpha), 1e-9)
}

func TestDiffRoundTripsThroughExecute(t *testing.T) {
	c := twoModuleLine(t)
	target := c.Clone()
	m, _ := target.Module(0)
	m.SetJoint(robot.Alpha, 30)

	diff := c.Diff(target)
	require.True(t, c.Execute(diff))
	require.True(t, c.Equal(target))
}

func TestExecuteIfValidRejectsOutOfRangeRotation(t *testing.T) {
	c := twoModuleLine(t)
	a := action.Action{Rotations: []action.Rotate{{ID: 0, Joint: robot.Alpha, Delta: 1000}}}
	require.False(t, c.ExecuteIfValid(a))
}

func TestExecuteIfValidAppliesHarmlessRotation(t *testing.T) {
	c := twoModuleLine(t)
	a := action.Action{Rotations: []action.Rotate{{ID: 1, Joint: robot.Gamma, Delta: 10}}}
	require.True(t, c.ExecuteIfValid(a))
	m, _ := c.Module(1)
	require.InDelta(t, 10.0, m.Joint(robot.Gamma), 1e-6)
}
