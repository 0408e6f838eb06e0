package snake

import "github.com/rofi-go/rofi/configuration"

// AerateConfig spreads a configuration out to maximize free neighboring
// lattice cells, using rotation-only successors, the caller's beam width
// (DefaultOptions uses 2n²) and at most 2n² rounds. It always
// "succeeds" in the sense of returning a usable path (possibly just init
// itself, if no rotation improved on it within the
// iteration bound); aeration is a best-effort heuristic pass, not a
// pass/fail stage.
func AerateConfig(init *configuration.Configuration, width int) (path []*configuration.Configuration, iterations int) {
	n := init.Len()
	limit := 2 * n * n
	path, iterations = limitedBeamSearch(init, width, limit, rotationOnlyNext(90), freenessScore)
	if len(path) == 0 {
		path = []*configuration.Configuration{init}
	}
	return path, iterations
}

// AerateFromRoot is aerateConfig's tighter sibling used inside
// tree-to-snake: a shorter beam run (3n rounds) scored by distance to the
// fixed anchor rather than grid freeness. The score is the negated sum of
// 1/d² over shoe cells (d = distance to the anchor's side-A center), so
// the search favours poses that move shoes away from the anchor.
func AerateFromRoot(init *configuration.Configuration, width int) (path []*configuration.Configuration, iterations int) {
	limit := 3 * init.Len()
	path, iterations = limitedBeamSearch(init, width, limit, rotationOnlyNext(90), awayFromRootScore)
	if len(path) == 0 {
		path = []*configuration.Configuration{init}
	}
	return path, iterations
}

func awayFromRootScore(c *configuration.Configuration) float64 {
	if !c.ComputeMatrices() {
		return -1e9
	}
	root := c.FixedID()
	rootMat, ok := c.ShoeMatrix(root, 0)
	if !ok {
		return 0
	}
	rootCenter := centerOf(rootMat)
	var sum float64
	for _, occ := range shoeOccupants(c) {
		dx := float64(occ.X) - rootCenter[0]
		dy := float64(occ.Y) - rootCenter[1]
		dz := float64(occ.Z) - rootCenter[2]
		d := dx*dx + dy*dy + dz*dz
		if d > 0 {
			sum += 1 / d
		}
	}
	return -sum
}
