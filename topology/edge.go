package topology

import "github.com/rofi-go/rofi/robot"

// Dock names one of a shoe's three connector faces.
type Dock int

const (
	XPlus Dock = iota
	XMinus
	ZMinus
)

// String implements fmt.Stringer.
func (d Dock) String() string {
	switch d {
	case XPlus:
		return "X+"
	case XMinus:
		return "X-"
	case ZMinus:
		return "Z-"
	default:
		return "Dock(?)"
	}
}

// Orientation names one of the four quarter-turn rotations a connector can
// be mated at.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "Orientation(?)"
	}
}

// EdgeIndex returns the 0..5 dock-slot index for (side, dock) on a module:
// side*3 + dock.
func EdgeIndex(side robot.Side, dock Dock) int {
	return int(side)*3 + int(dock)
}

// NumDockSlots is the number of dock slots per module (two sides, three
// docks each).
const NumDockSlots = 6

// Edge is an unordered connection between two connector endpoints, with an
// orientation. Two edges are Equal only when all seven fields agree.
type Edge struct {
	ID1   int
	Side1 robot.Side
	Dock1 Dock
	Ori   Orientation
	Dock2 Dock
	Side2 robot.Side
	ID2   int
}

// Equal reports whether e and other name the same connection in the same
// direction with the same orientation.
func (e Edge) Equal(other Edge) bool {
	return e == other
}

// Reverse returns the same physical connection described from the other
// endpoint: endpoints swap, orientation is preserved.
func (e Edge) Reverse() Edge {
	return Edge{
		ID1:   e.ID2,
		Side1: e.Side2,
		Dock1: e.Dock2,
		Ori:   e.Ori,
		Dock2: e.Dock1,
		Side2: e.Side1,
		ID2:   e.ID1,
	}
}

// edgeTupleBases are the bases of the five digits NextEdge enumerates over:
// (side1, dock1, ori, dock2, side2), in that lexicographic order, with the
// lowest-order digit (side2) incrementing first.
var edgeTupleBases = [5]int{2, 3, 4, 3, 2}

// edgeTuple is the five-digit positional encoding NextEdge walks.
type edgeTuple [5]int

func tupleFromEdge(e Edge) edgeTuple {
	return edgeTuple{int(e.Side1), int(e.Dock1), int(e.Ori), int(e.Dock2), int(e.Side2)}
}

func edgeFromTuple(id1 int, id2 int, t edgeTuple) Edge {
	return Edge{
		ID1:   id1,
		Side1: robot.Side(t[0]),
		Dock1: Dock(t[1]),
		Ori:   Orientation(t[2]),
		Dock2: Dock(t[3]),
		Side2: robot.Side(t[4]),
		ID2:   id2,
	}
}

// increment advances t by one in the mixed-radix system of edgeTupleBases,
// incrementing the lowest-order digit (index 4, side2) first and carrying
// into higher-order digits. It reports whether the increment wrapped all
// the way around back to the zero tuple.
func (t edgeTuple) increment() (next edgeTuple, wrapped bool) {
	next = t
	for i := len(next) - 1; i >= 0; i-- {
		next[i]++
		if next[i] < edgeTupleBases[i] {
			return next, false
		}
		next[i] = 0
	}
	return next, true
}

// NextEdge returns the edge that follows e in the fixed lexicographic
// enumeration order over (side1, dock1, ori, dock2, side2), wrapping after
// the last of the 144 distinct tuples back to the all-zero tuple. id1 and
// id2 are carried through unchanged; only the five topological digits
// advance.
func NextEdge(e Edge) Edge {
	t, _ := tupleFromEdge(e).increment()
	return edgeFromTuple(e.ID1, e.ID2, t)
}

// TotalEdgeVariants is the size of the full edge-topology space:
// 2*3*4*3*2 = 144.
const TotalEdgeVariants = 2 * 3 * 4 * 3 * 2

// EnumerateEdges returns all 144 edge topologies between id1 and id2, in
// the fixed lexicographic order starting from the all-zero tuple
// (Side A, X+, N, X+, Side A).
func EnumerateEdges(id1, id2 int) []Edge {
	out := make([]Edge, 0, TotalEdgeVariants)
	e := edgeFromTuple(id1, id2, edgeTuple{})
	for i := 0; i < TotalEdgeVariants; i++ {
		out = append(out, e)
		e = NextEdge(e)
	}
	return out
}
