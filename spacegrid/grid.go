package spacegrid

import "math"

// CellState names the two reserved, non-module cell contents. Any other
// stored value is a module id.
type CellState int

const (
	// Empty marks a cell with no module and not currently being counted.
	Empty CellState = -1
	// Counted marks a cell already credited to the current Freeness pass,
	// so a shared empty neighbor of two occupied cells is not double
	// counted.
	Counted CellState = -2
)

// Grid is a dense cube of side 4n+1 centered on the world origin at unit
// resolution.
type Grid struct {
	side  int
	half  int
	cells []int
}

// New returns an empty Grid sized for moduleCount modules.
func New(moduleCount int) *Grid {
	side := 4*moduleCount + 1
	if side < 1 {
		side = 1
	}
	g := &Grid{side: side, half: side / 2}
	g.cells = make([]int, side*side*side)
	for i := range g.cells {
		g.cells[i] = int(Empty)
	}
	return g
}

// Side returns the grid's edge length in cells.
func (g *Grid) Side() int { return g.side }

func (g *Grid) index(x, y, z int) (int, bool) {
	cx, cy, cz := x+g.half, y+g.half, z+g.half
	if cx < 0 || cy < 0 || cz < 0 || cx >= g.side || cy >= g.side || cz >= g.side {
		return 0, false
	}
	return (cx*g.side+cy)*g.side + cz, true
}

// RoundCoord snaps a world coordinate to its nearest integer lattice
// index. Aeration only compares configurations at 90-degree joint
// increments, so shoe centers land on (or extremely near) integers.
func RoundCoord(v float64) int { return int(math.Round(v)) }

// Set stores val at (x,y,z), reporting whether the cell was in bounds.
func (g *Grid) Set(x, y, z, val int) bool {
	idx, ok := g.index(x, y, z)
	if !ok {
		return false
	}
	g.cells[idx] = val
	return true
}

// Get returns the value at (x,y,z) and whether it is in bounds.
func (g *Grid) Get(x, y, z int) (int, bool) {
	idx, ok := g.index(x, y, z)
	if !ok {
		return 0, false
	}
	return g.cells[idx], true
}

// Occupant places a module's shoe at an integer lattice cell.
type Occupant struct {
	X, Y, Z int
	ID      int
}

var faceNeighbors = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Freeness scores how spread out occupants are: every occupied cell's six
// face-neighbors are visited, and a point is awarded for each neighbor
// that is either out of grid bounds or empty. An empty neighbor shared by
// two occupied cells is only ever credited once, since it is marked
// Counted as soon as it is first visited and restored to Empty once the
// pass finishes.
func Freeness(occupants []Occupant, moduleCount int) int {
	g := New(moduleCount)
	for _, o := range occupants {
		g.Set(o.X, o.Y, o.Z, o.ID)
	}

	score := 0
	var toClear [][3]int
	for _, o := range occupants {
		for _, off := range faceNeighbors {
			nx, ny, nz := o.X+off[0], o.Y+off[1], o.Z+off[2]
			val, inBounds := g.Get(nx, ny, nz)
			if !inBounds {
				score++
				continue
			}
			if val == int(Empty) {
				score++
				g.Set(nx, ny, nz, int(Counted))
				toClear = append(toClear, [3]int{nx, ny, nz})
			}
		}
	}
	for _, c := range toClear {
		g.Set(c[0], c[1], c[2], int(Empty))
	}
	return score
}
