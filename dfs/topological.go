// Package dfs provides topological sort on top of DepthFirst.
//
// TopologicalSort computes a linear ordering of a node set such that for
// every edge u→v with both ends in the set, u appears before v.
// If the relation contains a cycle inside the set, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V log V + E)
//   - Memory: O(V)
package dfs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// TopologicalSort returns the nodes ordered so that every edge n→s inside the
// node set has n before s. Among several valid orders, the one produced by
// restarting from the smallest unvisited node is returned.
// On error the returned order is nil.
func TopologicalSort[N constraints.Ordered](nodes []N, edges func(N) iter.Seq[N], opts ...Option) ([]N, error) {
	// 1. Collect post-order
	order := make([]N, 0, len(nodes))
	err := DepthFirst(nodes, edges, func(n N) {
		order = append(order, n)
	}, opts...)
	if err != nil {
		return nil, err
	}

	// 2. Reverse post-order to produce topological order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
