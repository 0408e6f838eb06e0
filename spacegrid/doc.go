// Package spacegrid provides a dense 3-D occupancy lattice used by the
// snake planner's aeration stages to score how "spread out" a
// configuration is. The grid has side 4n+1 (n = module count), unit
// resolution, centered on the world origin, so every shoe center at
// integer world coordinates maps onto exactly one cell.
package spacegrid
