package configuration

import (
	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

// Diff computes the Action that would turn c into target: one Rotate per
// module per joint whose value differs (Gamma compared via its wrap-aware
// difference), plus a Disconnect/Connect pair for every dock slot whose
// occupying edge differs between the two Configurations. Modules present
// in only one of the two are ignored; Diff describes a reconfiguration of
// a fixed module set, not an insertion/removal.
func (c *Configuration) Diff(target *Configuration) action.Action {
	var out action.Action

	for _, id := range c.order {
		m, ok := c.modules[id]
		if !ok {
			continue
		}
		tm, ok := target.modules[id]
		if !ok {
			continue
		}
		if d := tm.Joint(robot.Alpha) - m.Joint(robot.Alpha); d != 0 {
			out.Rotations = append(out.Rotations, action.Rotate{ID: id, Joint: robot.Alpha, Delta: d})
		}
		if d := tm.Joint(robot.Beta) - m.Joint(robot.Beta); d != 0 {
			out.Rotations = append(out.Rotations, action.Rotate{ID: id, Joint: robot.Beta, Delta: d})
		}
		if d := robot.GammaDiff(m.Joint(robot.Gamma), tm.Joint(robot.Gamma)); d != 0 {
			out.Rotations = append(out.Rotations, action.Rotate{ID: id, Joint: robot.Gamma, Delta: d})
		}
	}

	seen := make(map[topology.Edge]bool)
	for _, id := range c.order {
		slots, ok := c.edgeSlots[id]
		if !ok {
			continue
		}
		tslots, ok := target.edgeSlots[id]
		if !ok {
			continue
		}
		for i := 0; i < topology.NumDockSlots; i++ {
			from := slots[i]
			to := tslots[i]
			if edgePtrEqual(from, to) {
				continue
			}
			if from != nil && !seen[canonical(*from)] {
				seen[canonical(*from)] = true
				out.Reconnections = append(out.Reconnections, action.Reconnect{Add: false, Edge: *from})
			}
			if to != nil && !seen[canonical(*to)] {
				seen[canonical(*to)] = true
				out.Reconnections = append(out.Reconnections, action.Reconnect{Add: true, Edge: *to})
			}
		}
	}

	return out
}

func edgePtrEqual(a, b *topology.Edge) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// canonical returns e oriented with the lower module id first, so that
// each physical edge is keyed the same way regardless of which endpoint
// it was read from.
func canonical(e topology.Edge) topology.Edge {
	if e.ID1 <= e.ID2 {
		return e
	}
	return e.Reverse()
}
