package printqueue

import (
	"errors"
)

var (
	// ErrEmptyUpdate is returned when a middle page is requested from an
	// update with no pages.
	ErrEmptyUpdate = errors.New("printqueue: update has no pages")

	// ErrDuplicatePage is returned by Reorder when the same page occurs twice
	// in an update; such an update has no total order.
	ErrDuplicatePage = errors.New("printqueue: duplicate page in update")
)

// Rule states that page Before must be printed before page After whenever
// both are part of the same update.
type Rule[N comparable] struct {
	Before N
	After  N
}
