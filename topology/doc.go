// Package topology defines the connector-level vocabulary shared by the
// rest of the reconfiguration core: docks, orientations, and edges between
// them.
//
// Each module side carries three docks, XPlus, XMinus and ZMinus; a dock
// is addressed on a module by its Side and Dock, combined into a single
// slot index 0..5 via EdgeIndex. An Edge is an unordered connection
// between two such slots, tagged with one of four quarter-turn
// Orientations (N, E, S, W); Reverse swaps its endpoints while preserving
// orientation, and two edges compare equal only when every one of the
// seven fields (id1, side1, dock1, ori, dock2, side2, id2) agrees.
//
// NextEdge enumerates the full edge space in the fixed lexicographic order
// the design notes require: bases (2, 3, 4, 3, 2) over
// (side1, dock1, ori, dock2, side2), incrementing the lowest-order digit
// first and wrapping after exactly 2*3*4*3*2 = 144 distinct tuples.
// Successor generation depends on this exact order being stable and
// deterministic.
package topology
