// Package snake implements the staged geometric planner that routes any
// valid configuration.Configuration to a canonical parity snake: a chain
// where every non-root module has exactly one spanning successor and
// every active edge uses the (Z-, N, Z-) dock triple.
//
// The pipeline mirrors the original aerate/treefy/tree-to-snake/
// fix-parity/fix-docks/flatten-circle staging: each stage consumes the
// previous stage's output configuration and returns its own path
// fragment plus a finished flag, short-circuiting the whole run on the
// first stage that cannot make progress within its iteration bound.
package snake
