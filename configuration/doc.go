// Package configuration implements Configuration, the pivot data
// structure of the reconfiguration core: a set of modules joined by
// edges, together with a world anchor and a family of incrementally
// maintained, tri-state-cached derived views (connectivity, spanning
// tree, world transforms, validity).
//
// Complexity:
//
//	– AddModule/AddEdge/RemoveEdge/SetFixed: O(1) plus whatever cache
//	  invalidation they trigger (never a recompute — only a downgrade of
//	  a cache tag).
//	– Connected/ComputeMatrices: O(V+E) the first time after invalidation,
//	  memoized afterward.
//	– CollisionFree: O(V^2) over shoe centers, using cached matrices.
//	– Clone: O(V+E).
//
// Cache tags never jump from Unknown straight to True without a fresh
// validation pass. A mutation that could invalidate a cache downgrades it
// to Unknown, except where the mutation itself shows the cache is wrong:
// AddModule sets connectivity to False once there is more than one
// module (the new module has no edges yet), and SetFixed sets the
// matrices tag to False.
package configuration
