package search

import (
	"github.com/google/uuid"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/successor"
)

// defaultStepDelta and defaultStepBound are BFS's fixed step size and
// action-combination bound, per the design notes' generateActions(90°,1).
const (
	defaultStepDelta = 90.0
	defaultStepBound = 1
)

// BFS explores configuration space breadth-first with a fixed 90-degree,
// single-primitive action step, stopping at the first configuration equal
// to goal. It terminates whenever the reachable component is finite,
// which holds for any configuration built over a bounded joint-angle
// grid and a finite module set. It reports false if the pool is
// exhausted without finding goal.
func BFS(start, goal *configuration.Configuration) ([]*configuration.Configuration, bool) {
	pool := NewPool()
	startID, _ := pool.Intern(start, uuid.UUID{}, false)
	if start.Equal(goal) {
		return pool.Path(startID), true
	}

	queue := []uuid.UUID{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		cfg, ok := pool.Configuration(id)
		if !ok {
			continue
		}
		for _, act := range successor.GenerateActions(cfg, defaultStepDelta, defaultStepBound) {
			next := cfg.Clone()
			if !next.ExecuteIfValid(act) {
				continue
			}
			nid, inserted := pool.Intern(next, id, true)
			if !inserted {
				continue
			}
			if next.Equal(goal) {
				return pool.Path(nid), true
			}
			queue = append(queue, nid)
		}
	}
	return nil, false
}
