package printqueue

import (
	"golang.org/x/exp/constraints"
)

// Middle returns the page at index len(update)/2.
func Middle[N any](update []N) (N, error) {
	if len(update) == 0 {
		var zero N
		return zero, ErrEmptyUpdate
	}

	return update[len(update)/2], nil
}

// SumValidMiddles adds up the middle page of every update that already
// satisfies r. Invalid updates contribute nothing.
func SumValidMiddles[N constraints.Integer](r *Rules[N], updates [][]N) (N, error) {
	var sum N
	for _, update := range updates {
		if !r.Valid(update) {
			continue
		}
		mid, err := Middle(update)
		if err != nil {
			return 0, err
		}
		sum += mid
	}

	return sum, nil
}

// SumReorderedMiddles reorders every update that violates r and adds up the
// middle page of each corrected order. Valid updates contribute nothing.
func SumReorderedMiddles[N constraints.Integer](r *Rules[N], updates [][]N) (N, error) {
	var sum N
	for _, update := range updates {
		if r.Valid(update) {
			continue
		}
		fixed, err := r.Reorder(update)
		if err != nil {
			return 0, err
		}
		mid, err := Middle(fixed)
		if err != nil {
			return 0, err
		}
		sum += mid
	}

	return sum, nil
}
