package configuration

import (
	"github.com/rofi-go/rofi/action"
)

// validationSubsteps is how many equal slices a rotation batch is divided
// into before ExecuteIfValid checks IsValid again. Spec requires checking
// after every substep rather than only once at the end, since a module
// can swing through a colliding pose partway along a move that ends up
// collision-free.
const validationSubsteps = 10

// Execute applies every rotation and reconnection in a unconditionally,
// without checking validity at any point. It reports whether every
// individual rotation and reconnection succeeded (joints within range,
// dock slots free/occupied as expected). A failed step does not stop the
// others: the remaining steps are still applied, and steps that
// succeeded are not undone.
func (c *Configuration) Execute(a action.Action) bool {
	ok := true
	for _, d := range a.Disconnects() {
		if !c.RemoveEdge(d.Edge) {
			ok = false
		}
	}
	for _, r := range a.Rotations {
		m, exists := c.modules[r.ID]
		if !exists || !m.RotateJoint(r.Joint, r.Delta) {
			ok = false
			continue
		}
		c.invalidateMatrices()
	}
	for _, cn := range a.Connects() {
		if !c.AddEdge(cn.Edge) {
			ok = false
		}
	}
	return ok
}

// ExecuteIfValid applies a the same way Execute does, but in the fixed
// order disconnects, then connects, then rotations — never the other
// way around, since a merged multi-module Action can pair a connect
// with a rotation and the order determines which poses are checked for
// feasibility. IsValid (connectivity, consistent matrices and no
// collision) is required right after the disconnects and again right
// after the connects; the rotation batch is then sliced
// into validationSubsteps equal increments with an IsValid check after
// each increment. If the Configuration would ever become invalid,
// remaining rotation substeps are skipped (the caller is left with
// whatever fraction of the motion completed validly) and
// ExecuteIfValid returns false; reconnections already applied are not
// rolled back.
func (c *Configuration) ExecuteIfValid(a action.Action) bool {
	for _, d := range a.Disconnects() {
		if !c.RemoveEdge(d.Edge) {
			return false
		}
	}
	if !c.IsValid() {
		return false
	}

	for _, cn := range a.Connects() {
		if !c.AddEdge(cn.Edge) {
			return false
		}
	}
	if !c.IsValid() {
		return false
	}

	rot := a.RotationsOnly()
	step := rot.Divide(1.0 / validationSubsteps)
	for i := 0; i < validationSubsteps; i++ {
		for _, r := range step.Rotations {
			m, exists := c.modules[r.ID]
			if !exists || !m.RotateJoint(r.Joint, r.Delta) {
				return false
			}
		}
		c.invalidateMatrices()
		if !c.IsValid() {
			return false
		}
	}

	return true
}
