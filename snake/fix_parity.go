package snake

import (
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/successor"
)

// tryFixOneParityViolation mirrors tryImprovePseudoSnake's simplification
// for side alternation: for each current spanning-tree edge, try removing
// it and reattaching the same two modules with a different geometrically
// legal dock/side combination, keeping the first swap that lowers
// parityBadness.
func tryFixOneParityViolation(c *configuration.Configuration) (*configuration.Configuration, bool) {
	baseline := parityBadness(c)
	for _, id := range c.IDs() {
		for _, e := range c.SpanSuccessors(id) {
			withoutE := c.Clone()
			if !withoutE.RemoveEdge(e) {
				continue
			}
			for _, alt := range successor.GenerateConnects(withoutE) {
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
				if parityBadness(cand) < baseline {
					return cand, true
				}
			}
		}
	}
	return c, false
}

// FixParity loops tryFixOneParityViolation until the configuration is a
// parity snake or maxRounds is exhausted.
func FixParity(init *configuration.Configuration, maxRounds int) (path []*configuration.Configuration, finished bool) {
	path = []*configuration.Configuration{init}
	cur := init

	for round := 0; round < maxRounds; round++ {
		if IsParitySnake(cur) {
			return path, true
		}
		next, improved := tryFixOneParityViolation(cur)
		if !improved {
			return path, false
		}
		cur = next
		path = append(path, cur)
	}
	return path, IsParitySnake(cur)
}
