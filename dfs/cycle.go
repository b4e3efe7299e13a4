package dfs

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// HasCycle reports whether the edge relation restricted to nodes contains a
// directed cycle. Errors other than ErrCycleDetected (nil edges, cancellation)
// are returned as is.
func HasCycle[N constraints.Ordered](nodes []N, edges func(N) iter.Seq[N], opts ...Option) (bool, error) {
	err := DepthFirst(nodes, edges, nil, opts...)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
