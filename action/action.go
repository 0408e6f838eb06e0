package action

import (
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

// Rotate is an additive joint change on one module.
type Rotate struct {
	ID    int
	Joint robot.Joint
	Delta float64
}

// Reconnect adds (Add=true) or removes (Add=false) a specific edge.
type Reconnect struct {
	Add  bool
	Edge topology.Edge
}

// Action is a bundle of rotations and reconnections applied together as
// one atomic mechanical step.
type Action struct {
	Rotations     []Rotate
	Reconnections []Reconnect
}

// Empty reports whether a carries no rotations and no reconnections.
func (a Action) Empty() bool {
	return len(a.Rotations) == 0 && len(a.Reconnections) == 0
}

// Divide returns a copy of a with every rotation's Delta scaled by k. It is
// used to split one step into S equal-sized sub-steps via Divide(1/S).
// Reconnections are copied unchanged.
func (a Action) Divide(k float64) Action {
	out := Action{
		Rotations:     make([]Rotate, len(a.Rotations)),
		Reconnections: append([]Reconnect(nil), a.Reconnections...),
	}
	for i, r := range a.Rotations {
		out.Rotations[i] = Rotate{ID: r.ID, Joint: r.Joint, Delta: r.Delta * k}
	}
	return out
}

// IsUniqueRotationSet reports whether no (ID, Joint) pair appears twice
// among a.Rotations — the "unique" rotation-set property required before
// an Action is considered a legal successor-generation candidate.
func (a Action) IsUniqueRotationSet() bool {
	seen := make(map[rotationKey]bool, len(a.Rotations))
	for _, r := range a.Rotations {
		k := rotationKey{r.ID, r.Joint}
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

type rotationKey struct {
	id    int
	joint robot.Joint
}

// RotationsOnly returns an Action holding only a's rotations.
func (a Action) RotationsOnly() Action {
	return Action{Rotations: append([]Rotate(nil), a.Rotations...)}
}

// ReconnectionsOnly returns an Action holding only a's reconnections.
func (a Action) ReconnectionsOnly() Action {
	return Action{Reconnections: append([]Reconnect(nil), a.Reconnections...)}
}

// Disconnects returns the subset of a.Reconnections with Add == false.
func (a Action) Disconnects() []Reconnect {
	return filterReconnect(a.Reconnections, false)
}

// Connects returns the subset of a.Reconnections with Add == true.
func (a Action) Connects() []Reconnect {
	return filterReconnect(a.Reconnections, true)
}

func filterReconnect(in []Reconnect, add bool) []Reconnect {
	var out []Reconnect
	for _, r := range in {
		if r.Add == add {
			out = append(out, r)
		}
	}
	return out
}

// Merge concatenates a and b into a single Action, rotations then
// reconnections.
func Merge(a, b Action) Action {
	out := Action{
		Rotations:     make([]Rotate, 0, len(a.Rotations)+len(b.Rotations)),
		Reconnections: make([]Reconnect, 0, len(a.Reconnections)+len(b.Reconnections)),
	}
	out.Rotations = append(out.Rotations, a.Rotations...)
	out.Rotations = append(out.Rotations, b.Rotations...)
	out.Reconnections = append(out.Reconnections, a.Reconnections...)
	out.Reconnections = append(out.Reconnections, b.Reconnections...)
	return out
}
