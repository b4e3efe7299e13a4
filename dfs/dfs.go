// Package dfs implements depth‑first search over an implicit graph given as a
// node set plus an edge function.
//
// Key features:
//   - DepthFirst(nodes, edges, visit, opts...): full forest traversal in post‑order
//   - Deterministic restarts: smallest unvisited node first
//   - Three‑color marking; a Gray→Gray edge aborts with ErrCycleDetected
//   - Edges to nodes outside the set are skipped
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V log V + E), plus the cost of the edge function and visit callback.
//   - Memory: O(V) for the recursion stack and the state map.
package dfs

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// walker encapsulates state during a single DepthFirst call.
type walker[N constraints.Ordered] struct {
	opts  Options             // traversal options
	edges func(N) iter.Seq[N] // successor lookup
	visit func(N)             // post-order callback, may be nil
	state map[N]int           // White/Gray/Black; only members of the node set have an entry
}

// DepthFirst visits every node of nodes exactly once, in post‑order: each
// node is passed to visit only after all of its successors inside the node
// set have been passed to visit. Successors not in nodes are ignored.
//
// Whenever the current DFS tree is exhausted the traversal restarts from the
// smallest node that is still White. Duplicate entries in nodes are visited
// once.
//
// If a successor is reached while it is still Gray, DepthFirst stops and
// returns an error wrapping ErrCycleDetected. Calls to visit made before the
// cycle was found are not rolled back; callers must not rely on them.
func DepthFirst[N constraints.Ordered](nodes []N, edges func(N) iter.Seq[N], visit func(N), opts ...Option) error {
	// 1. Validate edge function
	if edges == nil {
		return ErrNilEdges
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Order the node set; every member starts White
	order := slices.Clone(nodes)
	slices.Sort(order)
	order = slices.Compact(order)

	w := &walker[N]{
		opts:  dopts,
		edges: edges,
		visit: visit,
		state: make(map[N]int, len(order)),
	}
	for _, n := range order {
		w.state[n] = White
	}

	// 4. Drive DFS from the smallest unvisited node until none remain
	for _, n := range order {
		if w.state[n] != White {
			continue
		}
		if err := w.traverse(n); err != nil {
			return err
		}
	}

	return nil
}

// traverse explores id and everything reachable from it inside the node set,
// then marks id Black and hands it to the visit callback.
func (w *walker[N]) traverse(id N) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark as in-progress
	w.state[id] = Gray

	// 3. Explore successors
	if succ := w.edges(id); succ != nil {
		for next := range succ {
			st, member := w.state[next]
			if !member {
				continue // outside the node set
			}
			switch st {
			case Gray:
				return fmt.Errorf("%w: %v reached again from %v", ErrCycleDetected, next, id)
			case White:
				if err := w.traverse(next); err != nil {
					return err
				}
			}
		}
	}

	// 4. Finished: record post-order
	w.state[id] = Black
	if w.visit != nil {
		w.visit(id)
	}

	return nil
}
