// Package robot defines the Module type: a two-shoe, three-joint atomic
// unit with per-joint range clamping.
//
// A Module carries three joint angles in degrees:
//
//	– Alpha, Beta ∈ [-90, +90]     hard clamp; out-of-range SetJoint fails.
//	– Gamma       ∈ (-180, +180]   wrap-around on assignment.
//
// Side A carries Alpha, side B carries Beta; Gamma is the shared twist
// between the two shoes. Two modules are Equal when their IDs match and
// every joint angle agrees within 1e-4 degrees.
//
// Modules are also tagged with a ShapeKind (generic or universal). The
// abstract dock layout used by package topology does not vary by shape —
// every module has six docks regardless — but a Module's Shape is exposed
// so that callers modeling the physical module catalogue (face geometry,
// manipulator attachment points) can branch on it; the reconfiguration
// core itself is shape-agnostic.
package robot
