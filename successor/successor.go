package successor

import (
	"math"

	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spatial"
	"github.com/rofi-go/rofi/topology"
)

var allJoints = [3]robot.Joint{robot.Alpha, robot.Beta, robot.Gamma}

// GenerateRotations returns one Rotate candidate for +delta and one for
// -delta, for every (module, joint) pair, skipping any that would leave
// the joint's legal range (checked on a scratch clone so c itself is
// never mutated).
func GenerateRotations(c *configuration.Configuration, delta float64) []action.Rotate {
	var out []action.Rotate
	for _, id := range c.IDs() {
		m, _ := c.Module(id)
		for _, j := range allJoints {
			for _, d := range [2]float64{delta, -delta} {
				if rotationIsLegal(m, j, d) {
					out = append(out, action.Rotate{ID: id, Joint: j, Delta: d})
				}
			}
		}
	}
	return out
}

func rotationIsLegal(m *robot.Module, j robot.Joint, delta float64) bool {
	probe := m.Clone()
	return probe.RotateJoint(j, delta)
}

// GenerateDisconnects returns every currently present edge, each reported
// exactly once from its lower-id endpoint.
func GenerateDisconnects(c *configuration.Configuration) []topology.Edge {
	var out []topology.Edge
	for _, id := range c.SortedIDs() {
		for _, e := range c.EdgesOf(id) {
			if e.ID1 == id && e.ID1 < e.ID2 {
				out = append(out, e)
			}
		}
	}
	return out
}

// GenerateConnects returns every edge that could legally be added to c:
// both dock slots free, the shoe centers exactly one unit apart, and the
// far endpoint's world pose agreeing with the transform predicted from
// the near endpoint through topology.ConnTransform. c must already have
// valid matrices (c.ComputeMatrices() == true); GenerateConnects does not
// call it itself, since callers typically already hold a validated
// configuration.
func GenerateConnects(c *configuration.Configuration) []topology.Edge {
	var out []topology.Edge
	ids := c.SortedIDs()
	for i, id1 := range ids {
		for _, id2 := range ids[i+1:] {
			out = append(out, connectsBetween(c, id1, id2)...)
		}
	}
	return out
}

func connectsBetween(c *configuration.Configuration, id1, id2 int) []topology.Edge {
	var out []topology.Edge
	for _, side1 := range [2]robot.Side{robot.SideA, robot.SideB} {
		m1, ok1 := c.ShoeMatrix(id1, side1)
		if !ok1 {
			continue
		}
		for _, dock1 := range [3]topology.Dock{topology.XPlus, topology.XMinus, topology.ZMinus} {
			if _, occupied := c.EdgeAt(id1, side1, dock1); occupied {
				continue
			}
			for _, side2 := range [2]robot.Side{robot.SideA, robot.SideB} {
				m2, ok2 := c.ShoeMatrix(id2, side2)
				if !ok2 {
					continue
				}
				for _, dock2 := range [3]topology.Dock{topology.XPlus, topology.XMinus, topology.ZMinus} {
					if _, occupied := c.EdgeAt(id2, side2, dock2); occupied {
						continue
					}
					for ori := topology.North; ori <= topology.West; ori++ {
						e := topology.Edge{
							ID1: id1, Side1: side1, Dock1: dock1,
							Ori:   ori,
							Dock2: dock2, Side2: side2, ID2: id2,
						}
						if geometricallyCompatible(m1, m2, e) {
							out = append(out, e)
						}
					}
				}
			}
		}
	}
	return out
}

func geometricallyCompatible(m1, m2 spatial.Mat4, e topology.Edge) bool {
	c1 := spatial.Center(m1)
	c2 := spatial.Center(m2)
	if math.Abs(spatial.DistanceVec(c1, c2)-1.0) > 1e-9 {
		return false
	}
	predicted := spatial.Mul(m1, topology.ConnTransform(e.Dock1, e.Ori, e.Dock2))
	return spatial.ApproxEqual(predicted, m2)
}

// GenerateActions packages every rotation and reconnect candidate into
// single-step Actions, enforcing rotation uniqueness per (id, joint). For
// k=1 (the common search step) this is simply one Action per candidate
// primitive; for any k >= 2 it adds every pair of primitives (see
// combineUpToK), and never combines more than two.
func GenerateActions(c *configuration.Configuration, delta float64, k int) []action.Action {
	var out []action.Action
	for _, r := range GenerateRotations(c, delta) {
		out = append(out, action.Action{Rotations: []action.Rotate{r}})
	}
	for _, e := range GenerateDisconnects(c) {
		out = append(out, action.Action{Reconnections: []action.Reconnect{{Add: false, Edge: e}}})
	}
	for _, e := range GenerateConnects(c) {
		out = append(out, action.Action{Reconnections: []action.Reconnect{{Add: true, Edge: e}}})
	}
	if k <= 1 {
		return out
	}
	return combineUpToK(out, k)
}

// combineUpToK returns every single-primitive action from singles
// followed, when k >= 2, by every pairwise union of two of them, dropping
// any pair that fails action-level rotation uniqueness. Unions of three
// or more primitives are not generated for any k.
func combineUpToK(singles []action.Action, k int) []action.Action {
	out := append([]action.Action(nil), singles...)
	if k < 2 {
		return out
	}
	for i := 0; i < len(singles); i++ {
		for j := i + 1; j < len(singles); j++ {
			merged := action.Merge(singles[i], singles[j])
			if merged.IsUniqueRotationSet() {
				out = append(out, merged)
			}
		}
	}
	return out
}
