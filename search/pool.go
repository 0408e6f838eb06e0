package search

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/robot"
)

// ConfigurationHash computes a deliberately weak structural hash:
// sum over modules of id*(13*(alpha+90) + 17*(beta+90) + 19*gamma).
// Collisions are expected and resolved by Pool falling back to full
// Configuration.Equal.
func ConfigurationHash(c *configuration.Configuration) int64 {
	var h float64
	for _, m := range c.Modules() {
		h += float64(m.ID()) * (13*(m.Joint(robot.Alpha)+90) + 17*(m.Joint(robot.Beta)+90) + 19*m.Joint(robot.Gamma))
	}
	return int64(h)
}

// entry is one pooled configuration plus the bookkeeping a search walks
// backward through to recover a path.
type entry struct {
	id     uuid.UUID
	config *configuration.Configuration
	parent uuid.UUID
	hasPar bool
}

// Pool owns a set of unique Configurations, keyed by structural hash with
// full-equality tie-breaking, and a predecessor link per pooled entry.
// Handles are stable uuid.UUID values valid for the life of the Pool.
type Pool struct {
	mu      sync.RWMutex
	byHash  map[int64][]uuid.UUID
	entries map[uuid.UUID]entry
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		byHash:  make(map[int64][]uuid.UUID),
		entries: make(map[uuid.UUID]entry),
	}
}

// Intern returns the handle for c, inserting it (with the given parent,
// if any) if no equal Configuration is already pooled. inserted reports
// whether a new entry was created.
func (p *Pool) Intern(c *configuration.Configuration, parent uuid.UUID, hasParent bool) (id uuid.UUID, inserted bool) {
	h := ConfigurationHash(c)

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, candidate := range p.byHash[h] {
		if p.entries[candidate].config.Equal(c) {
			return candidate, false
		}
	}

	id = uuid.New()
	p.byHash[h] = append(p.byHash[h], id)
	p.entries[id] = entry{id: id, config: c, parent: parent, hasPar: hasParent}
	return id, true
}

// Lookup returns the hash bucket's already-pooled handle for c, if any.
func (p *Pool) Lookup(c *configuration.Configuration) (uuid.UUID, bool) {
	h := ConfigurationHash(c)

	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, candidate := range p.byHash[h] {
		if p.entries[candidate].config.Equal(c) {
			return candidate, true
		}
	}
	return uuid.UUID{}, false
}

// Configuration returns the pooled Configuration for id.
func (p *Pool) Configuration(id uuid.UUID) (*configuration.Configuration, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[id]
	if !ok {
		return nil, false
	}
	return e.config, true
}

// Path walks predecessor links from id back to its root and returns the
// Configurations in root-to-id order.
func (p *Pool) Path(id uuid.UUID) []*configuration.Configuration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var rev []*configuration.Configuration
	cur := id
	for {
		e, ok := p.entries[cur]
		if !ok {
			break
		}
		rev = append(rev, e.config)
		if !e.hasPar {
			break
		}
		cur = e.parent
	}
	out := make([]*configuration.Configuration, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
