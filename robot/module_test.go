package robot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/robot"
)

func TestSetJointClampsAlphaBeta(t *testing.T) {
	m := robot.NewModule(0, robot.ShapeGeneric)
	require.True(t, m.SetJoint(robot.Alpha, 90))
	require.True(t, m.SetJoint(robot.Alpha, -90))
	require.False(t, m.SetJoint(robot.Alpha, 90.0001))
	require.Equal(t, -90.0, m.Joint(robot.Alpha), "rejected assignment must not change stored value")

	require.True(t, m.SetJoint(robot.Beta, 45))
	require.False(t, m.SetJoint(robot.Beta, 200))
}

func TestSetJointWrapsGamma(t *testing.T) {
	m := robot.NewModule(0, robot.ShapeGeneric)
	require.True(t, m.SetJoint(robot.Gamma, 180))
	require.Equal(t, 180.0, m.Joint(robot.Gamma))

	require.True(t, m.SetJoint(robot.Gamma, 181))
	require.Equal(t, -179.0, m.Joint(robot.Gamma))

	require.True(t, m.SetJoint(robot.Gamma, -180))
	require.Equal(t, 180.0, m.Joint(robot.Gamma))

	require.True(t, m.SetJoint(robot.Gamma, -540))
	require.Equal(t, 180.0, m.Joint(robot.Gamma))
}

func TestRotateJointInheritsClamp(t *testing.T) {
	m := robot.NewModule(1, robot.ShapeGeneric)
	require.True(t, m.SetJoint(robot.Alpha, 80))
	require.False(t, m.RotateJoint(robot.Alpha, 20))
	require.Equal(t, 80.0, m.Joint(robot.Alpha))
}

func TestEqualWithinTolerance(t *testing.T) {
	a := robot.NewModule(5, robot.ShapeGeneric)
	b := robot.NewModule(5, robot.ShapeGeneric)
	a.SetJoint(robot.Alpha, 10)
	b.SetJoint(robot.Alpha, 10.00001)
	require.True(t, a.Equal(b))

	b.SetJoint(robot.Alpha, 10.01)
	require.False(t, a.Equal(b))
}

func TestGammaDiffWraps(t *testing.T) {
	require.Equal(t, 10.0, robot.GammaDiff(170, 180))
	require.InDelta(t, 20.0, robot.GammaDiff(170, -170), 1e-9)
}
