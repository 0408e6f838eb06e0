// Package successor enumerates the legal single atomic-step neighbors of a
// configuration.Configuration: joint rotations at a fixed step size,
// disconnect candidates drawn from the current edge set, and connect
// candidates drawn from every geometrically compatible, currently-free
// dock pair. GenerateActions combines all three into the bounded-size
// action sets a search frontier expands with.
//
// Complexity: rotation candidates are O(modules); disconnect candidates
// are O(edges); connect candidates are O(modules² · 144) in the worst
// case, dominated by the per-pair orientation sweep.
package successor
