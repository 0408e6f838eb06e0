// Package action defines the atomic step vocabulary the rest of the
// reconfiguration core operates on: a Rotate changes one module's joint by
// a delta, a Reconnect adds or removes a specific edge, and an Action is a
// bundle of both applied together as one mechanical step.
//
// Action.Divide scales every rotation's delta by a fraction, used by
// configuration's sub-stepped ExecuteIfValid to walk a rotation through
// intermediate, individually-validated poses. IsUniqueRotationSet enforces
// the "no (id, joint) appears twice" rule the design notes settle on for
// the otherwise-ambiguous uniqueness requirement.
package action
