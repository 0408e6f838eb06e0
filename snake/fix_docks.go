package snake

import (
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/successor"
	"github.com/rofi-go/rofi/topology"
)

// tryCanonicalize replaces e with a geometrically legal edge between the
// same two modules docked at the canonical (Z-, N, Z-) triple, if one
// exists.
func tryCanonicalize(c *configuration.Configuration, e topology.Edge) (*configuration.Configuration, bool) {
	withoutE := c.Clone()
	if !withoutE.RemoveEdge(e) {
		return c, false
	}
	for _, alt := range successor.GenerateConnects(withoutE) {
		if alt.Dock1 != topology.ZMinus || alt.Dock2 != topology.ZMinus || alt.Ori != topology.North {
			continue
		}
		if !((alt.ID1 == e.ID1 && alt.ID2 == e.ID2) || (alt.ID1 == e.ID2 && alt.ID2 == e.ID1)) {
			continue
		}
		cand := withoutE.Clone()
		if !cand.AddEdge(alt) {
			continue
		}
		if !cand.IsValid() {
			continue
		}
		return cand, true
	}
	return c, false
}

// FixDocks repeatedly canonicalizes whichever edge GetInvalidEdge flags
// until none remains or maxIterations is exhausted.
func FixDocks(init *configuration.Configuration, maxIterations int) (path []*configuration.Configuration, finished bool) {
	path = []*configuration.Configuration{init}
	cur := init

	for i := 0; i < maxIterations; i++ {
		e, bad := GetInvalidEdge(cur)
		if !bad {
			return path, true
		}
		next, ok := tryCanonicalize(cur, e)
		if !ok {
			return path, false
		}
		cur = next
		path = append(path, cur)
	}
	_, bad := GetInvalidEdge(cur)
	return path, !bad
}
