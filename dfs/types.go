// Package dfs defines visitation states, sentinel errors and options for
// depth-first traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrNilEdges is returned when DepthFirst, TopologicalSort or HasCycle
	// receives a nil edge function.
	ErrNilEdges = errors.New("dfs: edge function is nil")

	// ErrCycleDetected indicates that a node was reached while it was still
	// in progress, i.e. it is its own ancestor on the current DFS stack.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Cancelling the context aborts the traversal at the next node.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}
