package snake

import (
	"github.com/rofi-go/rofi/action"
	"github.com/rofi-go/rofi/beamheap"
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spacegrid"
	"github.com/rofi-go/rofi/spatial"
	"github.com/rofi-go/rofi/successor"
)

type searchNode struct {
	config *configuration.Configuration
	parent int
	score  float64
}

// limitedBeamSearch runs at most rounds expansion rounds from init,
// scoring every candidate with score and keeping at most width
// survivors per round via a beamheap, following the design notes'
// bounded-beam-A* shape. It returns the path from init to the
// best-scored node discovered across the whole run (which is init
// itself if no successor ever improved on it) and the number of rounds
// actually run.
func limitedBeamSearch(
	init *configuration.Configuration,
	width, rounds int,
	genNext func(*configuration.Configuration) []action.Action,
	score func(*configuration.Configuration) float64,
) (path []*configuration.Configuration, iterations int) {
	nodes := []searchNode{{config: init, parent: -1, score: score(init)}}
	frontier := []int{0}
	best := 0

	for r := 0; r < rounds && len(frontier) > 0; r++ {
		h := beamheap.New(width)
		for _, idx := range frontier {
			cfg := nodes[idx].config
			for _, act := range genNext(cfg) {
				next := cfg.Clone()
				if !next.ExecuteIfValid(act) {
					continue
				}
				s := score(next)
				nodes = append(nodes, searchNode{config: next, parent: idx, score: s})
				nid := len(nodes) - 1
				if s > nodes[best].score {
					best = nid
				}
				h.Push(-s, nid)
			}
		}

		var next []int
		for {
			payload, _, ok := h.PopMin()
			if !ok {
				break
			}
			next = append(next, payload.(int))
		}
		if len(next) == 0 {
			break
		}
		frontier = next
		iterations = r + 1
	}

	var rev []*configuration.Configuration
	for cur := best; cur != -1; cur = nodes[cur].parent {
		rev = append(rev, nodes[cur].config)
	}
	path = make([]*configuration.Configuration, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path, iterations
}

// rotationOnlyNext returns a successor generator that yields one Action
// per legal single-joint rotation of delta degrees, matching the
// design notes' rotation-only aeration successors.
func rotationOnlyNext(delta float64) func(*configuration.Configuration) []action.Action {
	return func(c *configuration.Configuration) []action.Action {
		rots := successor.GenerateRotations(c, delta)
		out := make([]action.Action, 0, len(rots))
		for _, r := range rots {
			out = append(out, action.Action{Rotations: []action.Rotate{r}})
		}
		return out
	}
}

// freenessScore scores a configuration by the number of free or
// out-of-grid face-neighbors of its occupied lattice cells, per
// spacegrid.Freeness.
func freenessScore(c *configuration.Configuration) float64 {
	if !c.ComputeMatrices() {
		return -1e9
	}
	occ := shoeOccupants(c)
	return float64(spacegrid.Freeness(occ, c.Len()))
}

func centerOf(m spatial.Mat4) [3]float64 {
	ctr := spatial.Center(m)
	return [3]float64{ctr[0], ctr[1], ctr[2]}
}

func shoeOccupants(c *configuration.Configuration) []spacegrid.Occupant {
	var occ []spacegrid.Occupant
	for _, m := range c.Modules() {
		for _, side := range [2]robot.Side{robot.SideA, robot.SideB} {
			mat, ok := c.ShoeMatrix(m.ID(), side)
			if !ok {
				continue
			}
			ctr := spatial.Center(mat)
			occ = append(occ, spacegrid.Occupant{
				X:  spacegrid.RoundCoord(ctr[0]),
				Y:  spacegrid.RoundCoord(ctr[1]),
				Z:  spacegrid.RoundCoord(ctr[2]),
				ID: m.ID(),
			})
		}
	}
	return occ
}
