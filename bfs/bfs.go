// Package bfs provides breadth-first search over an implicit state space,
// returning the nearest goal state, its depth and the path to it.
package bfs

import (
	"context"
	"iter"
)

// compactAfter is the consumed-prefix length from which dequeue may compact.
const compactAfter = 1024

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next    func(S) iter.Seq[S]
	goal    func(S) bool
	opts    Options
	ctx     context.Context
	queue   []queueItem[S]
	head    int // index of the next item to dequeue
	visited map[S]bool
	res     *Result[S]
}

// Search runs breadth-first search from start, expanding states with next,
// until goal accepts a dequeued state. The start state itself may be a goal
// (depth 0).
// Returns ErrNilFunc, ErrOptionViolation, ErrGoalUnreachable, or the
// context's error on cancellation.
func Search[S comparable](start S, next func(S) iter.Seq[S], goal func(S) bool, opts ...Option) (*Result[S], error) {
	if next == nil || goal == nil {
		return nil, ErrNilFunc
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:    next,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[S], 0, 64),
		visited: make(map[S]bool, 64),
		res: &Result[S]{
			start:  start,
			parent: make(map[S]S, 64),
		},
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, 0)

	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrGoalUnreachable
	}

	return w.res, nil
}

// enqueue marks s visited and appends it at depth d.
func (w *walker[S]) enqueue(s S, d int) {
	w.visited[s] = true
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// dequeue pops the front item. The backing array is reused once the queue
// drains and compacted when the consumed prefix outgrows the live part.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[w.head]
	w.head++
	switch {
	case w.head == len(w.queue):
		w.queue, w.head = w.queue[:0], 0
	case w.head >= compactAfter && 2*w.head >= len(w.queue):
		n := copy(w.queue, w.queue[w.head:])
		w.queue, w.head = w.queue[:n], 0
	}

	return item
}

// loop processes the queue until a goal is found, it runs empty, or the
// context is canceled.
func (w *walker[S]) loop() (bool, error) {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.res.Visited++
		w.opts.OnVisit(item.depth)

		if w.goal(item.state) {
			w.res.Goal = item.state
			w.res.Depth = item.depth
			return true, nil
		}
		w.enqueueNeighbors(item)
	}

	return false, nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen successor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	succ := w.next(item.state)
	if succ == nil {
		return
	}
	for nbr := range succ {
		// first time seen?
		if !w.visited[nbr] {
			w.res.parent[nbr] = item.state
			w.enqueue(nbr, nextDepth)
		}
	}
}
