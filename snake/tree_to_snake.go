package snake

import (
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/successor"
)

// pseudoSnakeBadness sums, over every module, how far its spanning-tree
// successor count exceeds the budget a chain allows it (1, or 2 for the
// fixed anchor). It is zero exactly when IsPseudoSnake holds.
func pseudoSnakeBadness(c *configuration.Configuration) int {
	fixed := c.FixedID()
	bad := 0
	for _, id := range c.IDs() {
		limit := 1
		if id == fixed {
			limit = 2
		}
		if sc := c.SpanSuccCount(id); sc > limit {
			bad += sc - limit
		}
	}
	return bad
}

// leafIDs returns the ids of modules with no spanning-tree successor.
func leafIDs(c *configuration.Configuration) []int {
	var out []int
	for _, id := range c.IDs() {
		if c.SpanSuccCount(id) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// tryImprovePseudoSnake is the design notes' simplified stand-in for the
// original connectArm/disjoinArm pass: rather than carving a geometric
// path through free lattice space between two branch tips, it scans the
// edges successor.GenerateConnects already certifies as geometrically
// legal and keeps the first one joining two current leaves that lowers
// pseudoSnakeBadness (closing a leaf into the chain implicitly demotes
// whichever tree edge the next spanning-tree recomputation stops relying
// on, since ensureSpanningTree always re-derives successors from the
// live edge set).
func tryImprovePseudoSnake(c *configuration.Configuration) (*configuration.Configuration, bool) {
	leaves := leafIDs(c)
	if len(leaves) < 2 {
		return c, false
	}
	leafSet := make(map[int]bool, len(leaves))
	for _, id := range leaves {
		leafSet[id] = true
	}
	baseline := pseudoSnakeBadness(c)

	for _, e := range successor.GenerateConnects(c) {
		if !leafSet[e.ID1] || !leafSet[e.ID2] {
			continue
		}
		cand := c.Clone()
		if !cand.AddEdge(e) {
			continue
		}
		if !cand.IsValid() {
			continue
		}
		if pseudoSnakeBadness(cand) < baseline {
			return cand, true
		}
	}
	return c, false
}

// TreeToSnake repeatedly aerates away from the fixed anchor and closes leaf
// pairs until the spanning tree is a topological snake (IsPseudoSnake)
// or opts.MaxTreeToSnakeRounds is exhausted.
func TreeToSnake(init *configuration.Configuration, opts Options) (path []*configuration.Configuration, finished bool, iterations int) {
	path = []*configuration.Configuration{init}
	cur := init

	for round := 0; round < opts.MaxTreeToSnakeRounds; round++ {
		if IsPseudoSnake(cur) {
			return path, true, round
		}

		aerated, _ := AerateFromRoot(cur, opts.TreeToSnakeBeamWidth(cur.Len()))
		if len(aerated) > 1 {
			cur = aerated[len(aerated)-1]
			path = append(path, aerated[1:]...)
		}

		next, improved := tryImprovePseudoSnake(cur)
		if !improved {
			return path, IsPseudoSnake(cur), round
		}
		cur = next
		path = append(path, cur)
		iterations = round + 1
	}
	return path, IsPseudoSnake(cur), iterations
}
