package search

import (
	"math"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spatial"
)

// Heuristic estimates the remaining cost from current to goal. None of
// the heuristics below are guaranteed admissible; AStar documents that it
// only guarantees reachability, never optimality, when used with them.
type Heuristic func(current, goal *configuration.Configuration) float64

// TrivialHeuristic always returns 1, degenerating A* into a
// uniform-cost/BFS-like expansion order.
func TrivialHeuristic(current, goal *configuration.Configuration) float64 {
	return 1
}

// JointAngleL2Heuristic sums squared joint differences (Gamma compared
// via its wrap-aware difference) across every module present in both
// configurations, and returns the square root.
func JointAngleL2Heuristic(current, goal *configuration.Configuration) float64 {
	var sum float64
	for _, m := range current.Modules() {
		gm, ok := goal.Module(m.ID())
		if !ok {
			continue
		}
		da := m.Joint(robot.Alpha) - gm.Joint(robot.Alpha)
		db := m.Joint(robot.Beta) - gm.Joint(robot.Beta)
		dg := robot.GammaDiff(m.Joint(robot.Gamma), gm.Joint(robot.Gamma))
		sum += da*da + db*db + dg*dg
	}
	return math.Sqrt(sum)
}

// ShoeCenterHeuristic sums, over every module's two shoes, the Euclidean
// distance between its world center in current and in goal. It calls
// ComputeMatrices on both configurations and returns +Inf if either
// fails.
func ShoeCenterHeuristic(current, goal *configuration.Configuration) float64 {
	if !current.ComputeMatrices() || !goal.ComputeMatrices() {
		return math.Inf(1)
	}
	var sum float64
	for _, m := range current.Modules() {
		for _, side := range [2]robot.Side{robot.SideA, robot.SideB} {
			cm, ok1 := current.ShoeMatrix(m.ID(), side)
			gm, ok2 := goal.ShoeMatrix(m.ID(), side)
			if !ok1 || !ok2 {
				continue
			}
			sum += spatial.DistanceVec(spatial.Center(cm), spatial.Center(gm))
		}
	}
	return sum
}

// ShoeTransformHeuristic is ShoeCenterHeuristic's stricter sibling: it
// sums the full matrix distance (spatial.Distance), which also penalizes
// orientation mismatch, not just position.
func ShoeTransformHeuristic(current, goal *configuration.Configuration) float64 {
	if !current.ComputeMatrices() || !goal.ComputeMatrices() {
		return math.Inf(1)
	}
	var sum float64
	for _, m := range current.Modules() {
		for _, side := range [2]robot.Side{robot.SideA, robot.SideB} {
			cm, ok1 := current.ShoeMatrix(m.ID(), side)
			gm, ok2 := goal.ShoeMatrix(m.ID(), side)
			if !ok1 || !ok2 {
				continue
			}
			sum += spatial.Distance(cm, gm)
		}
	}
	return sum
}
