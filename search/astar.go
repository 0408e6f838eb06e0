package search

import (
	"container/heap"

	"github.com/google/uuid"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/successor"
)

type frontierItem struct {
	id  uuid.UUID
	f   float64
	idx int
}

type frontier []*frontierItem

func (q frontier) Len() int            { return len(q) }
func (q frontier) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q frontier) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].idx = i; q[j].idx = j }
func (q *frontier) Push(x interface{}) { it := x.(*frontierItem); it.idx = len(*q); *q = append(*q, it) }
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// AStar explores configuration space with a min-heap frontier ordered by
// f = g + h(next, goal), expanding with a fixed step size and
// per-step action-combination bound. It terminates whenever the
// reachable component is finite; with a consistent heuristic it would
// also be optimal, but the heuristics in this package are not
// guaranteed consistent, so AStar only guarantees reachability here, not
// a shortest path.
//
// Once a configuration is pooled, its predecessor link is fixed at first
// discovery; a later, cheaper path to the same pooled entry updates its
// g-score for frontier ordering but does not reparent it. This trades
// strict optimality (already not guaranteed by the non-admissible
// heuristics) for a search pool with stable, single-assignment
// predecessor links.
func AStar(start, goal *configuration.Configuration, delta float64, bound int, h Heuristic) ([]*configuration.Configuration, bool) {
	pool := NewPool()
	startID, _ := pool.Intern(start, uuid.UUID{}, false)

	gScore := map[uuid.UUID]float64{startID: 0}
	visited := map[uuid.UUID]bool{}

	pq := &frontier{}
	heap.Init(pq)
	heap.Push(pq, &frontierItem{id: startID, f: h(start, goal)})

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*frontierItem)
		if visited[it.id] {
			continue
		}
		visited[it.id] = true

		cfg, ok := pool.Configuration(it.id)
		if !ok {
			continue
		}
		if cfg.Equal(goal) {
			return pool.Path(it.id), true
		}

		for _, act := range successor.GenerateActions(cfg, delta, bound) {
			next := cfg.Clone()
			if !next.ExecuteIfValid(act) {
				continue
			}
			nid, _ := pool.Intern(next, it.id, true)
			if visited[nid] {
				continue
			}
			ng := gScore[it.id] + 1
			if existing, ok := gScore[nid]; !ok || ng < existing {
				gScore[nid] = ng
				heap.Push(pq, &frontierItem{id: nid, f: ng + h(next, goal)})
			}
		}
	}
	return nil, false
}
