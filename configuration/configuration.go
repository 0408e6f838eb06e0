package configuration

import (
	"sort"

	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spatial"
	"github.com/rofi-go/rofi/topology"
)

// AddModule inserts a module with the given joint angles and id, with an
// empty set of edge slots. If id is already present, AddModule is a no-op
// and returns the existing module. The fixed anchor is moved to the
// lowest-numbered module present, unless SetFixed has been called
// explicitly. Complexity: O(1) amortized.
func (c *Configuration) AddModule(alpha, beta, gamma float64, id int) *robot.Module {
	if m, ok := c.modules[id]; ok {
		return m
	}

	m := robot.NewModule(id, robot.ShapeGeneric)
	m.SetJoint(robot.Alpha, alpha)
	m.SetJoint(robot.Beta, beta)
	m.SetJoint(robot.Gamma, gamma)
	c.modules[id] = m
	c.order = append(c.order, id)
	c.edgeSlots[id] = [topology.NumDockSlots]*topology.Edge{}

	if c.fixedIsAuto {
		if !c.hasAnyModule || id < c.fixedID {
			c.fixedID = id
		}
	}
	c.hasAnyModule = true

	if len(c.modules) > 1 {
		c.connected = False
	}
	c.invalidateMatrices()
	c.tree = nil

	return m
}

// AddModuleWithShape is AddModule followed by an explicit ShapeKind
// assignment, for callers modeling the universal-module variant. It has
// no effect on a module id that already existed before the call.
func (c *Configuration) AddModuleWithShape(alpha, beta, gamma float64, id int, shape robot.ShapeKind) *robot.Module {
	_, existed := c.modules[id]
	m := c.AddModule(alpha, beta, gamma, id)
	if !existed {
		*m = *robot.NewModule(id, shape)
		m.SetJoint(robot.Alpha, alpha)
		m.SetJoint(robot.Beta, beta)
		m.SetJoint(robot.Gamma, gamma)
	}
	return m
}

// Module returns the module with the given id, and whether it exists.
func (c *Configuration) Module(id int) (*robot.Module, bool) {
	m, ok := c.modules[id]
	return m, ok
}

// HasModule reports whether id is present.
func (c *Configuration) HasModule(id int) bool {
	_, ok := c.modules[id]
	return ok
}

// Modules returns every module, in insertion order.
func (c *Configuration) Modules() []*robot.Module {
	out := make([]*robot.Module, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.modules[id])
	}
	return out
}

// IDs returns every module id, in insertion order.
func (c *Configuration) IDs() []int {
	return append([]int(nil), c.order...)
}

// SortedIDs returns every module id in ascending order.
func (c *Configuration) SortedIDs() []int {
	ids := c.IDs()
	sort.Ints(ids)
	return ids
}

// Len returns the number of modules.
func (c *Configuration) Len() int { return len(c.modules) }

// Empty reports whether the Configuration holds no modules.
func (c *Configuration) Empty() bool { return len(c.modules) == 0 }

// FixedAnchor returns the id, side and world matrix of the fixed anchor
// module.
func (c *Configuration) FixedAnchor() (id int, side robot.Side, matrix spatial.Mat4) {
	return c.fixedID, c.fixedSide, c.fixedMatrix
}

// SetFixed re-points the anchor at (id, side) with the given world
// transform, and stops any further automatic re-pointing by AddModule.
// Per the mutator table, this sets the matrices cache to False (the
// previously cached poses are now known to be wrong, not merely unknown)
// and discards the spanning tree.
func (c *Configuration) SetFixed(id int, side robot.Side, m spatial.Mat4) {
	c.fixedID = id
	c.fixedSide = side
	c.fixedMatrix = m
	c.fixedIsAuto = false
	c.matricesValid = False
	c.tree = nil
}

// edgeSlotIndex validates and returns the array slot for (side, dock).
func edgeSlotIndex(side robot.Side, dock topology.Dock) int {
	return topology.EdgeIndex(side, dock)
}

// EdgeAt returns the edge stored at module id's (side, dock) slot, if any.
func (c *Configuration) EdgeAt(id int, side robot.Side, dock topology.Dock) (topology.Edge, bool) {
	slots, ok := c.edgeSlots[id]
	if !ok {
		return topology.Edge{}, false
	}
	e := slots[edgeSlotIndex(side, dock)]
	if e == nil {
		return topology.Edge{}, false
	}
	return *e, true
}

// EdgesOf returns every edge currently occupying one of id's six dock
// slots, in slot order.
func (c *Configuration) EdgesOf(id int) []topology.Edge {
	slots, ok := c.edgeSlots[id]
	if !ok {
		return nil
	}
	var out []topology.Edge
	for _, e := range slots {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// AddEdge writes both half-edges of e if, and only if, both dock slots
// are currently free. It reports whether the edge was added.
func (c *Configuration) AddEdge(e topology.Edge) bool {
	slots1, ok1 := c.edgeSlots[e.ID1]
	slots2, ok2 := c.edgeSlots[e.ID2]
	if !ok1 || !ok2 {
		return false
	}
	i1 := edgeSlotIndex(e.Side1, e.Dock1)
	i2 := edgeSlotIndex(e.Side2, e.Dock2)
	if slots1[i1] != nil || slots2[i2] != nil {
		return false
	}

	fwd := e
	rev := e.Reverse()
	slots1[i1] = &fwd
	slots2[i2] = &rev
	c.edgeSlots[e.ID1] = slots1
	c.edgeSlots[e.ID2] = slots2

	if c.connected == False {
		c.connected = Unknown
	}
	c.invalidateMatrices()
	c.tree = nil

	return true
}

// RemoveEdge clears both half-edges of e. It reports whether e was
// actually present (both slots held matching half-edges); if either slot
// is absent or holds a different edge, RemoveEdge is a no-op returning
// false.
func (c *Configuration) RemoveEdge(e topology.Edge) bool {
	slots1, ok1 := c.edgeSlots[e.ID1]
	slots2, ok2 := c.edgeSlots[e.ID2]
	if !ok1 || !ok2 {
		return false
	}
	i1 := edgeSlotIndex(e.Side1, e.Dock1)
	i2 := edgeSlotIndex(e.Side2, e.Dock2)
	if slots1[i1] == nil || *slots1[i1] != e {
		return false
	}
	if slots2[i2] == nil || *slots2[i2] != e.Reverse() {
		return false
	}

	wasTreeEdge := c.isTreeSuccessorEdge(e)

	slots1[i1] = nil
	slots2[i2] = nil
	c.edgeSlots[e.ID1] = slots1
	c.edgeSlots[e.ID2] = slots2

	if wasTreeEdge || c.tree == nil {
		c.connected = Unknown
		c.invalidateMatrices()
		c.tree = nil
	}
	// else: e was a cross edge; topology's reachability and the spanning
	// tree itself are unaffected, so connected/matrices stay as they were.

	return true
}

func (c *Configuration) isTreeSuccessorEdge(e topology.Edge) bool {
	if c.tree == nil {
		return true // unknown; be conservative
	}
	for _, te := range c.tree.successors[e.ID1] {
		if te == e {
			return true
		}
	}
	// e may name a tree edge from its child endpoint.
	rev := e.Reverse()
	for _, te := range c.tree.successors[e.ID2] {
		if te == rev {
			return true
		}
	}
	return false
}

func (c *Configuration) invalidateMatrices() {
	if c.matricesValid != False {
		c.matricesValid = Unknown
	}
}
