package configuration

import (
	"math"

	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/spatial"
	"github.com/rofi-go/rofi/topology"
)

// collisionThreshold is the minimum center-to-center distance between
// any two shoes (one module unit length), compared on the same 1/1000
// grid spatial.DistanceVec quantizes to — required because shoe centers
// reached through products of π/2 rotations land at 1±ε rather than
// exactly 1, the same reasoning successor.geometricallyCompatible
// applies via spatial.DistanceVec.
const collisionThreshold = 1.0

// Connected reports whether the undirected graph induced by the edges is
// connected (every module reachable from the fixed anchor). The result is
// cached; building the spanning tree is a side effect.
func (c *Configuration) Connected() bool {
	if c.connected == True {
		return true
	}
	if c.connected == False && c.tree != nil {
		return false
	}
	tree := c.ensureSpanningTree()
	return tree.complete
}

// degToRad converts a joint angle in degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// otherSideMatrix derives the world transform of the opposite shoe of
// module id, whose side `side` world transform is already known, using
// T_joint. As in the grounding source, side B's derivation swaps the
// roles of Alpha and Beta, since T_joint is defined to map side A onto
// side B.
func otherSideMatrix(m *robot.Module, side robot.Side, known spatial.Mat4) spatial.Mat4 {
	alpha := degToRad(m.Joint(robot.Alpha))
	beta := degToRad(m.Joint(robot.Beta))
	gamma := degToRad(m.Joint(robot.Gamma))

	if side == robot.SideB {
		alpha, beta = beta, alpha
	}
	return spatial.Mul(known, topology.JointTransform(alpha, beta, gamma))
}

// ComputeMatrices derives world poses for every shoe, BFS-walking the
// spanning tree from the fixed anchor, then checks every cross edge for
// agreement between the two independently derived poses of its endpoints.
// The result is cached; False means the configuration's closed loops
// cannot be satisfied geometrically, or it is disconnected.
func (c *Configuration) ComputeMatrices() bool {
	if c.matricesValid == True {
		return true
	}

	tree := c.ensureSpanningTree()
	if !tree.complete {
		c.matricesValid = False
		return false
	}

	matrices := make(map[int]shoeMatrices, len(c.modules))
	set := func(id int, side robot.Side, m spatial.Mat4) {
		sm := matrices[id]
		sm[side] = m
		matrices[id] = sm
	}

	set(c.fixedID, c.fixedSide, c.fixedMatrix)

	queue := []int{c.fixedID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		mod := c.modules[id]
		sm := matrices[id]
		// whichever side was set is the "known" one; derive the other.
		var knownSide robot.Side
		if _, ok := c.sideKnown(sm, robot.SideA); ok {
			knownSide = robot.SideA
		} else {
			knownSide = robot.SideB
		}
		other := knownSide.Other()
		set(id, other, otherSideMatrix(mod, knownSide, sm[knownSide]))

		for _, e := range tree.successors[id] {
			cur := matrices[id]
			far := spatial.Mul(cur[e.Side1], topology.ConnTransform(e.Dock1, e.Ori, e.Dock2))
			set(e.ID2, e.Side2, far)
			queue = append(queue, e.ID2)
		}
	}

	// Cross-edge consistency check.
	for id, edges := range tree.crossEdges {
		for _, e := range edges {
			if e.ID1 > e.ID2 {
				continue // check each physical edge once, from its lower id
			}
			_ = id
			got := matrices[e.ID2][e.Side2]
			want := spatial.Mul(matrices[e.ID1][e.Side1], topology.ConnTransform(e.Dock1, e.Ori, e.Dock2))
			if !spatial.ApproxEqual(got, want) {
				c.matricesValid = False
				return false
			}
		}
	}

	c.matrices = matrices
	c.matricesValid = True
	return true
}

// sideKnown reports whether sm[side] has been assigned (i.e. is not the
// shoeMatrices zero value) for the side currently being probed. Since the
// identity matrix is a legitimate pose, a tiny per-node "which side did we
// seed" flag would be more precise; in practice the BFS always seeds
// exactly one side before calling this, so comparing against the zero
// Mat4 (which is never a valid homogeneous transform: its [3][3] entry is
// 0, not 1) is an exact and cheap test.
func (c *Configuration) sideKnown(sm shoeMatrices, side robot.Side) (spatial.Mat4, bool) {
	if sm[side][3][3] == 0 {
		return sm[side], false
	}
	return sm[side], true
}

// CollisionFree reports whether every pair of shoe centers is at least one
// module unit apart in world coordinates. It requires ComputeMatrices to
// have already succeeded; if matrices are not known valid, CollisionFree
// returns false without attempting a recompute (the const form described
// in the design notes).
func (c *Configuration) CollisionFree() bool {
	if c.matricesValid != True {
		return false
	}
	centers := make([]spatial.Vec4, 0, 2*len(c.modules))
	for _, id := range c.order {
		sm := c.matrices[id]
		centers = append(centers, spatial.Center(sm[robot.SideA]), spatial.Center(sm[robot.SideB]))
	}
	for i := 0; i < len(centers); i++ {
		for j := i + 1; j < len(centers); j++ {
			if spatial.DistanceVec(centers[i], centers[j]) < collisionThreshold {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether the Configuration is connected, its matrices
// are geometrically consistent, and it is free of self-collision.
func (c *Configuration) IsValid() bool {
	return c.Connected() && c.ComputeMatrices() && c.CollisionFree()
}

// ShoeMatrix returns the cached world transform of module id's given
// side. Callers should call ComputeMatrices (directly, or via IsValid)
// first; ShoeMatrix does not trigger computation itself.
func (c *Configuration) ShoeMatrix(id int, side robot.Side) (spatial.Mat4, bool) {
	sm, ok := c.matrices[id]
	if !ok {
		return spatial.Mat4{}, false
	}
	return sm[side], true
}

// MassCenter returns the average of every shoe center in world
// coordinates. Requires matrices to already be valid.
func (c *Configuration) MassCenter() spatial.Vec4 {
	var sum spatial.Vec4
	n := 0.0
	for _, id := range c.order {
		sm := c.matrices[id]
		for _, side := range [2]robot.Side{robot.SideA, robot.SideB} {
			ctr := spatial.Center(sm[side])
			sum[0] += ctr[0]
			sum[1] += ctr[1]
			sum[2] += ctr[2]
			n++
		}
	}
	if n > 0 {
		sum[0] /= n
		sum[1] /= n
		sum[2] /= n
	}
	sum[3] = 1
	return sum
}
