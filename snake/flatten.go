package snake

import (
	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
)

var allJoints = [3]robot.Joint{robot.Alpha, robot.Beta, robot.Gamma}

// FlattenCircle is the final stage: if the configuration is a closed
// docking ring, it cuts the fixed anchor's first spanning-tree successor
// edge to turn the ring into an open chain (an edge whose removal would
// disconnect the configuration is left in place, so an already open chain
// is not cut), aerates the result, and then zeros every joint in a single
// validated action so the chain lies straight.
func FlattenCircle(init *configuration.Configuration, beamWidth int) (path []*configuration.Configuration, finished bool) {
	cur := init.Clone()
	root := cur.FixedID()
	if succs := cur.SpanSuccessors(root); len(succs) > 0 {
		cut := cur.Clone()
		if cut.RemoveEdge(succs[0]) && cut.Connected() {
			cur = cut
		}
	}
	path = []*configuration.Configuration{cur}

	aerated, _ := AerateConfig(cur, beamWidth)
	if len(aerated) > 0 {
		cur = aerated[len(aerated)-1]
		path = append(path, aerated[1:]...)
	}

	var rots []action.Rotate
	for _, m := range cur.Modules() {
		for _, j := range allJoints {
			if v := m.Joint(j); v != 0 {
				rots = append(rots, action.Rotate{ID: m.ID(), Joint: j, Delta: -v})
			}
		}
	}
	if len(rots) == 0 {
		return path, true
	}

	zeroed := cur.Clone()
	if !zeroed.ExecuteIfValid(action.Action{Rotations: rots}) {
		return path, false
	}
	path = append(path, zeroed)
	return path, true
}
