package snake

import (
	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/topology"
)

// IsPseudoSnake reports whether every module's spanning-successor count
// is at most 1, except the fixed anchor which may have up to 2 (it has
// no predecessor edge to use up one of its two "ends").
func IsPseudoSnake(c *configuration.Configuration) bool {
	fixed := c.FixedID()
	for _, id := range c.IDs() {
		sc := c.SpanSuccCount(id)
		if sc < 2 {
			continue
		}
		if sc == 2 && id == fixed {
			continue
		}
		return false
	}
	return true
}

// IsParitySnake reports whether, walking the spanning tree from the
// fixed anchor, no module's spanning-successor edge departs from the
// same side its own discovery edge arrived on — the alternating-side
// pattern a physically straight chain exhibits.
func IsParitySnake(c *configuration.Configuration) bool {
	fixed := c.FixedID()
	type queued struct {
		id   int
		side int
	}
	var bag []queued
	for _, e := range c.SpanSuccessors(fixed) {
		bag = append(bag, queued{id: e.ID2, side: int(e.Side2)})
	}
	for len(bag) > 0 {
		q := bag[0]
		bag = bag[1:]
		for _, e := range c.SpanSuccessors(q.id) {
			if int(e.Side1) == q.side {
				return false
			}
			bag = append(bag, queued{id: e.ID2, side: int(e.Side2)})
		}
	}
	return true
}

// parityBadness counts, rather than short-circuiting on the first,
// every spanning-tree edge whose departing side repeats the side its own
// discovery edge arrived on.
func parityBadness(c *configuration.Configuration) int {
	fixed := c.FixedID()
	type queued struct {
		id   int
		side int
	}
	var bag []queued
	for _, e := range c.SpanSuccessors(fixed) {
		bag = append(bag, queued{id: e.ID2, side: int(e.Side2)})
	}
	bad := 0
	for len(bag) > 0 {
		q := bag[0]
		bag = bag[1:]
		for _, e := range c.SpanSuccessors(q.id) {
			if int(e.Side1) == q.side {
				bad++
			}
			bag = append(bag, queued{id: e.ID2, side: int(e.Side2)})
		}
	}
	return bad
}

// GetInvalidEdge returns the first spanning-tree-reachable edge whose
// dock triple is not the canonical (Z-, N, Z-), if any.
func GetInvalidEdge(c *configuration.Configuration) (topology.Edge, bool) {
	for _, id := range c.IDs() {
		for _, e := range c.EdgesOf(id) {
			if e.ID1 != id {
				continue
			}
			if e.Dock1 != topology.ZMinus || e.Dock2 != topology.ZMinus || e.Ori != topology.North {
				return e, true
			}
		}
	}
	return topology.Edge{}, false
}
