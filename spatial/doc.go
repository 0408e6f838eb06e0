// Package spatial implements the homogeneous-transform algebra shared by
// every other package in this module: 4x4 matrices, the fixed rotation and
// translation primitives used to build joint and connector transforms, and
// the tolerance-aware comparisons (Section 9 of the design notes: "Angle
// comparisons at 1e-4, transform comparisons at 1e-3 absdiff, distances
// quantized to 1/1000") that the rest of the reconfiguration core treats as
// part of its behavioral contract.
//
// All angles accepted by this package are in radians; callers that store
// angles in degrees (robot.Module) convert at the boundary.
//
// Complexity: every operation here is O(1) — matrices are fixed 4x4 arrays,
// never heap-allocated slices.
package spatial
