package printqueue

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/puzzlegraph/dfs"
)

// Rules is a set of ordering rules indexed by the earlier page.
// The zero value is not usable; create one with NewRules.
type Rules[N constraints.Ordered] struct {
	after map[N]map[N]struct{} // page → pages that must come after it
	count int                  // number of distinct rules
}

// NewRules builds a rule set from rules. Repeated rules are stored once.
func NewRules[N constraints.Ordered](rules ...Rule[N]) *Rules[N] {
	r := &Rules[N]{after: make(map[N]map[N]struct{})}
	for _, rule := range rules {
		r.Add(rule.Before, rule.After)
	}

	return r
}

// Add records that before must be printed before after.
func (r *Rules[N]) Add(before, after N) {
	set, ok := r.after[before]
	if !ok {
		set = make(map[N]struct{})
		r.after[before] = set
	}
	if _, dup := set[after]; !dup {
		set[after] = struct{}{}
		r.count++
	}
}

// Len returns the number of distinct rules.
func (r *Rules[N]) Len() int {
	return r.count
}

// After yields, in ascending order, every page that must come after page.
// Pages without rules yield nothing.
func (r *Rules[N]) After(page N) iter.Seq[N] {
	return slices.Values(slices.Sorted(maps.Keys(r.after[page])))
}

// Valid reports whether update already satisfies every rule whose pages both
// occur in it. Scanning left to right, the update is invalid at page v when
// some page that must come after v has already been placed.
func (r *Rules[N]) Valid(update []N) bool {
	placed := make(map[N]struct{}, len(update))
	for _, page := range update {
		for later := range r.after[page] {
			if _, ok := placed[later]; ok {
				return false
			}
		}
		placed[page] = struct{}{}
	}

	return true
}

// Reorder returns the pages of update arranged so that every applicable rule
// holds. The input slice is not modified. When several orders are valid the
// one produced by dfs.TopologicalSort is returned.
//
// Errors: ErrDuplicatePage, or an error wrapping dfs.ErrCycleDetected when
// the rules restricted to update are contradictory.
func (r *Rules[N]) Reorder(update []N) ([]N, error) {
	// 1. Reject repeated pages
	seen := make(map[N]struct{}, len(update))
	for _, page := range update {
		if _, dup := seen[page]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicatePage, page)
		}
		seen[page] = struct{}{}
	}

	// 2. Sort; rules leading outside the update are skipped by dfs
	order, err := dfs.TopologicalSort(update, r.After)
	if err != nil {
		return nil, fmt.Errorf("printqueue: reorder %v: %w", update, err)
	}

	return order, nil
}
