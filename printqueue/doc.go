// Package printqueue validates and repairs page updates against a set of
// pairwise "X must be printed before Y" rules.
//
// What:
//
//   - Rules: page → set of pages that must come after it.
//   - Valid: single left‑to‑right scan; an update is invalid as soon as a
//     page's "must come after" set intersects the pages already placed.
//   - Reorder: topological sort of the update's own pages, using only rules
//     whose both ends occur in the update (see package dfs).
//   - Middle, SumValidMiddles, SumReorderedMiddles: the scoring glue around
//     the two operations above.
//
// Reorder assumes the rules restricted to any single update are acyclic.
// A contradictory subset is reported as an error wrapping
// dfs.ErrCycleDetected rather than a panic.
//
// Complexity (U = pages in an update, R = rules touching them):
//
//   - Valid:   O(U + R)
//   - Reorder: O(U log U + R log R)
package printqueue
