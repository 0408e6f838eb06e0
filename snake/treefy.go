package snake

import (
	"math"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spatial"
	"github.com/rofi-go/rofi/topology"
)

// ClosestMass returns the id of the module with the shoe center nearest
// the configuration's overall mass center, the default root-choice
// oracle for Treefy.
func ClosestMass(c *configuration.Configuration) int {
	ids := c.SortedIDs()
	if len(ids) == 0 {
		return 0
	}
	if !c.ComputeMatrices() {
		return ids[0]
	}
	mass := c.MassCenter()
	best := ids[0]
	bestDist := math.Inf(1)
	for _, id := range ids {
		for _, side := range [2]robot.Side{robot.SideA, robot.SideB} {
			mat, ok := c.ShoeMatrix(id, side)
			if !ok {
				continue
			}
			d := spatial.SqDistVec(spatial.Center(mat), mass)
			if d < bestDist {
				bestDist = d
				best = id
			}
		}
	}
	return best
}

// Treefy discards every edge and rebuilds an acyclic edge set over the
// same modules: pick a root (by default ClosestMass), anchor it at
// identity, then DFS the original edge graph, keeping exactly one edge
// per newly discovered neighbor. When two modules share several edges
// (on different docks), the first in the current module's dock-slot
// order is kept and the others are dropped; no "MakeStar"-style
// preference among such parallel edges is applied.
func Treefy(c *configuration.Configuration) *configuration.Configuration {
	root := ClosestMass(c)

	treed := configuration.New()
	for _, m := range c.Modules() {
		treed.AddModuleWithShape(m.Joint(robot.Alpha), m.Joint(robot.Beta), m.Joint(robot.Gamma), m.ID(), m.Shape())
	}
	treed.SetFixed(root, robot.SideA, spatial.Identity())

	seen := map[int]bool{}
	stack := []int{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true

		for _, e := range starEdgesFrom(c, id, seen) {
			if treed.AddEdge(e) {
				stack = append(stack, e.ID2)
			}
		}
	}
	treed.ComputeMatrices()
	return treed
}

// starEdgesFrom returns, for every as-yet-unseen neighbor of id in the
// original edge graph, one edge connecting them: the first in id's
// dock-slot order.
func starEdgesFrom(c *configuration.Configuration, id int, seen map[int]bool) []topology.Edge {
	// EdgesOf(id) always reports half-edges with ID1 == id, since each
	// dock slot stores the edge oriented with its own module first.
	byNeighbor := map[int]topology.Edge{}
	for _, e := range c.EdgesOf(id) {
		if seen[e.ID2] {
			continue
		}
		if _, ok := byNeighbor[e.ID2]; !ok {
			byNeighbor[e.ID2] = e
		}
	}
	out := make([]topology.Edge, 0, len(byNeighbor))
	for _, e := range byNeighbor {
		out = append(out, e)
	}
	return out
}
