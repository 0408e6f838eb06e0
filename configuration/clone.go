package configuration

import (
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

// Clone returns a deep, independent copy. Modules, edge slots and the
// fixed anchor are copied by value; cache tags and the derived matrices
// map are copied as-is rather than invalidated, since they remain
// accurate descriptions of the copy until something mutates it. The
// spanning tree pointer is shared rather than copied: a spanningTree is
// always replaced wholesale, never mutated in place, so aliasing it is
// safe until one of the two Configurations invalidates its own tree.
func (c *Configuration) Clone() *Configuration {
	out := &Configuration{
		modules:       make(map[int]*robot.Module, len(c.modules)),
		order:         append([]int(nil), c.order...),
		edgeSlots:     make(map[int][topology.NumDockSlots]*topology.Edge, len(c.edgeSlots)),
		fixedID:       c.fixedID,
		fixedSide:     c.fixedSide,
		fixedMatrix:   c.fixedMatrix,
		fixedIsAuto:   c.fixedIsAuto,
		hasAnyModule:  c.hasAnyModule,
		connected:     c.connected,
		matricesValid: c.matricesValid,
		matrices:      make(map[int]shoeMatrices, len(c.matrices)),
		tree:          c.tree,
	}
	for id, m := range c.modules {
		out.modules[id] = m.Clone()
	}
	for id, slots := range c.edgeSlots {
		var cp [topology.NumDockSlots]*topology.Edge
		for i, e := range slots {
			if e != nil {
				edge := *e
				cp[i] = &edge
			}
		}
		out.edgeSlots[id] = cp
	}
	for id, sm := range c.matrices {
		out.matrices[id] = sm
	}
	return out
}

// Equal reports whether c and other hold the same modules (by id and
// joint values, within robot.Module's tolerance), the same edges, and
// the same fixed anchor module and side; the anchor's world matrix is
// not compared. Cache state is not compared: it is an
// implementation detail of how each Configuration arrived at its
// current topology, not part of that topology.
func (c *Configuration) Equal(other *Configuration) bool {
	if other == nil {
		return false
	}
	if len(c.modules) != len(other.modules) {
		return false
	}
	if c.fixedID != other.fixedID || c.fixedSide != other.fixedSide {
		return false
	}
	for id, m := range c.modules {
		om, ok := other.modules[id]
		if !ok || !m.Equal(om) {
			return false
		}
	}
	for id, slots := range c.edgeSlots {
		oslots, ok := other.edgeSlots[id]
		if !ok {
			return false
		}
		for i, e := range slots {
			oe := oslots[i]
			switch {
			case e == nil && oe == nil:
				continue
			case e == nil || oe == nil:
				return false
			case *e != *oe:
				return false
			}
		}
	}
	return true
}
