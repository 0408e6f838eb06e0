package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/search"
)

func TestBFSSelfPathIsSingleElement(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	path, ok := search.BFS(c, c.Clone())
	require.True(t, ok)
	require.Len(t, path, 1)
}

func TestAStarSelfPathIsSingleElement(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	path, ok := search.AStar(c, c.Clone(), 90, 1, search.TrivialHeuristic)
	require.True(t, ok)
	require.Len(t, path, 1)
}

func TestBFSFindsSingleRotationGoal(t *testing.T) {
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	goal := c.Clone()
	gm, _ := goal.Module(0)
	gm.SetJoint(robot.Alpha, 90)

	path, ok := search.BFS(c, goal)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(path), 1)
}

func TestConfigurationHashIsDeterministic(t *testing.T) {
	c := configuration.New()
	c.AddModule(10, -20, 30, 0)
	c.AddModule(0, 0, 0, 1)
	require.Equal(t, search.ConfigurationHash(c), search.ConfigurationHash(c.Clone()))
}
