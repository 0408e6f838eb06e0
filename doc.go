// Package rofi is the root of a reconfigurable modular-robot planning
// library: spatial algebra and a dock/joint module model, a
// Configuration type that owns topology, pose derivation, and
// mechanical validity, generic BFS/A* search over the reconfiguration
// state space, and a staged planner that reduces any valid
// Configuration to a canonical snake shape.
//
// Subpackages:
//
//	spatial/       — homogeneous transforms, tolerance-based equality
//	robot/         — Module, joints (Alpha/Beta/Gamma), shoe geometry
//	topology/      — Dock, Orientation, Edge, connector transforms
//	action/        — Rotate/Reconnect bundles applied atomically
//	configuration/ — Configuration: topology, spanning tree, pose cache
//	successor/     — legal-move generation over a Configuration
//	search/        — BFS and A* over the reconfiguration graph
//	beamheap/      — bounded min-max priority queue for beam search
//	spacegrid/     — dense occupancy lattice and freeness scoring
//	snake/         — aerate/treefy/tree-to-snake/fix-parity/fix-docks/
//	                 flatten-circle planner
//	textfmt/       — textual configuration and action record formats
//	rofilog/       — structured logging setup
//	cmd/reconfig/  — CLI: A* between two configurations
//	cmd/snake/     — CLI: reduce a configuration to a canonical snake
package rofi
