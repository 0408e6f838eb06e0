// Package search implements generic configuration-space search: a Pool
// that deduplicates visited configuration.Configuration values by a
// deliberately weak structural hash plus full tolerance-aware equality,
// and two search engines driven by the successor package — BFS for
// unweighted shortest-path reachability, and A* with pluggable
// heuristics.
//
// Pool guards its tables with a sync.RWMutex, following the locking
// granularity core.Graph uses for its own vertex/edge tables, since
// concurrent read-heavy access (many heuristics probing the same pool)
// is a realistic caller pattern even though the core search loop itself
// is single-threaded.
package search
