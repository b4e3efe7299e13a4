// Package bfs provides a generic breadth-first search over an implicit state
// space: states are any comparable value, successors come from a function.
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from a start state.
//   - Stop at the first state accepted by the goal predicate and report it
//     together with its depth and the parent links needed to rebuild the path.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unweighted shortest paths where the graph is too large or too
//     structured to materialize (puzzle states, robot chains, lock dials).
//   - Brute-force oracles that cross-check smarter algorithms on small inputs.
//
// Determinism
//
//	Successors are enqueued in the order the successor function yields them,
//	and a state is marked visited when first enqueued, so the search and the
//	reported path are fully reproducible.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, visited set, parent links)
//
// Usage
//
//	res, err := bfs.Search(start, next, isGoal,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(40),
//	)
//
// Errors
//
//   - ErrNilFunc             if next or goal is nil.
//   - ErrOptionViolation     if an invalid Option was supplied (negative MaxDepth).
//   - ErrGoalUnreachable     if the frontier empties without reaching a goal.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package bfs
