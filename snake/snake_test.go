package snake_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/snake"
	"github.com/rofi-go/rofi/topology"
)

// chainOfThree builds three modules already docked in a straight
// Z-/North/Z- chain: 0-1-2, all joints zero.
func chainOfThree(t *testing.T) *configuration.Configuration {
	t.Helper()
	c := configuration.New()
	c.AddModule(0, 0, 0, 0)
	c.AddModule(0, 0, 0, 1)
	c.AddModule(0, 0, 0, 2)
	require.True(t, c.AddEdge(topology.Edge{
		ID1: 0, Side1: robot.SideA, Dock1: topology.ZMinus,
		Ori:   topology.North,
		Dock2: topology.ZMinus, Side2: robot.SideA, ID2: 1,
	}))
	require.True(t, c.AddEdge(topology.Edge{
		ID1: 1, Side1: robot.SideB, Dock1: topology.ZMinus,
		Ori:   topology.North,
		Dock2: topology.ZMinus, Side2: robot.SideA, ID2: 2,
	}))
	return c
}

// chainOfFour extends chainOfThree with module 3 docked to module 2's
// side B, giving a straight, unbranched chain 0-1-2-3 with no
// pseudo-snake violation.
func chainOfFour(t *testing.T) *configuration.Configuration {
	t.Helper()
	c := chainOfThree(t)
	require.True(t, c.AddEdge(topology.Edge{
		ID1: 2, Side1: robot.SideB, Dock1: topology.ZMinus,
		Ori:   topology.North,
		Dock2: topology.ZMinus, Side2: robot.SideA, ID2: 3,
	}))
	return c
}

func TestIsPseudoSnakeOnStraightChain(t *testing.T) {
	c := chainOfThree(t)
	require.True(t, snake.IsPseudoSnake(c))
}

func TestIsParitySnakeOnStraightChain(t *testing.T) {
	c := chainOfThree(t)
	require.True(t, snake.IsParitySnake(c))
}

func TestGetInvalidEdgeOnCanonicalChainFindsNone(t *testing.T) {
	c := chainOfThree(t)
	_, bad := snake.GetInvalidEdge(c)
	require.False(t, bad)
}

func TestIsPseudoSnakeHoldsOnFourModuleChain(t *testing.T) {
	c := chainOfFour(t)
	require.True(t, snake.IsPseudoSnake(c))
}

func TestClosestMassPicksAModuleInTheConfiguration(t *testing.T) {
	c := chainOfThree(t)
	root := snake.ClosestMass(c)
	_, ok := c.Module(root)
	require.True(t, ok)
}

func TestTreefyPreservesModuleCount(t *testing.T) {
	c := chainOfFour(t)
	treed := snake.Treefy(c)
	require.Equal(t, c.Len(), treed.Len())
	require.True(t, treed.Connected())
}

func TestTreefyOfAlreadySnakeStaysPseudoSnake(t *testing.T) {
	c := chainOfThree(t)
	treed := snake.Treefy(c)
	require.True(t, snake.IsPseudoSnake(treed))
}

func TestReconfigToSnakeOfAlreadyCanonicalChainFinishesImmediately(t *testing.T) {
	c := chainOfThree(t)
	result := snake.ReconfigToSnake(c, snake.DefaultOptions())
	require.True(t, result.Finished)
	require.NotEmpty(t, result.Path)
	final := result.Path[len(result.Path)-1]
	require.True(t, snake.IsPseudoSnake(final))
	require.True(t, snake.IsParitySnake(final))
}

func TestReconfigToSnakeReportsEverySage(t *testing.T) {
	c := chainOfThree(t)
	result := snake.ReconfigToSnake(c, snake.DefaultOptions())
	names := make([]string, 0, len(result.StageReports))
	for _, s := range result.StageReports {
		names = append(names, s.Name)
	}
	require.Contains(t, names, "aerate")
	require.Contains(t, names, "treefy")
	require.Contains(t, names, "tree-to-snake")
	require.Contains(t, names, "fix-parity")
	require.Contains(t, names, "fix-docks")
	require.Contains(t, names, "flatten-circle")
}

func TestReconfigToSnakeIsIdempotentOnItsOwnOutput(t *testing.T) {
	c := chainOfThree(t)
	first := snake.ReconfigToSnake(c, snake.DefaultOptions())
	require.True(t, first.Finished)
	final := first.Path[len(first.Path)-1]

	second := snake.ReconfigToSnake(final, snake.DefaultOptions())
	require.True(t, second.Finished)
	require.True(t, snake.IsPseudoSnake(second.Path[len(second.Path)-1]))
}
