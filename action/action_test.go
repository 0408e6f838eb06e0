package action_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

func TestDivideScalesRotationsOnly(t *testing.T) {
	a := action.Action{
		Rotations: []action.Rotate{{ID: 0, Joint: robot.Alpha, Delta: 90}},
		Reconnections: []action.Reconnect{
			{Add: true, Edge: topology.Edge{ID1: 0, ID2: 1}},
		},
	}
	d := a.Divide(0.1)
	require.InDelta(t, 9.0, d.Rotations[0].Delta, 1e-9)
	require.Equal(t, a.Reconnections, d.Reconnections)
}

func TestIsUniqueRotationSet(t *testing.T) {
	unique := action.Action{Rotations: []action.Rotate{
		{ID: 0, Joint: robot.Alpha, Delta: 10},
		{ID: 0, Joint: robot.Beta, Delta: 10},
		{ID: 1, Joint: robot.Alpha, Delta: 10},
	}}
	require.True(t, unique.IsUniqueRotationSet())

	dup := action.Action{Rotations: []action.Rotate{
		{ID: 0, Joint: robot.Alpha, Delta: 10},
		{ID: 0, Joint: robot.Alpha, Delta: -10},
	}}
	require.False(t, dup.IsUniqueRotationSet())
}

func TestDisconnectsAndConnects(t *testing.T) {
	a := action.Action{Reconnections: []action.Reconnect{
		{Add: true, Edge: topology.Edge{ID1: 0, ID2: 1}},
		{Add: false, Edge: topology.Edge{ID1: 1, ID2: 2}},
	}}
	require.Len(t, a.Connects(), 1)
	require.Len(t, a.Disconnects(), 1)
}
