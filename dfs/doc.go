// Package dfs implements a generic depth‑first search with three‑color cycle
// detection, and a topological sort built on top of it.
//
// What:
//
//   - DepthFirst: drives a post‑order DFS over a finite, ordered node set.
//     Successors come from a caller‑supplied edge function returning a lazy
//     iter.Seq. The driver always restarts from the smallest unvisited node,
//     so output is reproducible whenever several valid orders exist.
//   - TopologicalSort: reverse post‑order of DepthFirst. For every edge n→s
//     with both ends in the node set, n precedes s in the result.
//   - HasCycle: reports whether the edge relation restricted to the node set
//     contains a directed cycle.
//
// Edges that lead outside the node set are ignored, not reported. This lets a
// caller hand over a global rule relation together with a small working set
// and get an ordering of just that working set.
//
// Why:
//   - Resolve "must come before" constraints (print queues, build steps)
//   - Reject contradictory constraint sets with a recoverable error
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation states (unvisited, in progress, done)
//   - Option / Options: functional options (currently cancellation only)
//
// Complexity:
//
//   - DepthFirst:      Time O(V log V + E), Memory O(V)
//   - TopologicalSort: Time O(V log V + E), Memory O(V)
//
// The V log V term is the initial ordering of the node set.
//
// Errors:
//
//   - ErrNilEdges        edge function is nil
//   - ErrCycleDetected   an in‑progress node was reached again
//   - context.Canceled   traversal canceled via WithContext
package dfs
