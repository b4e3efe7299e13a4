package printqueue_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegraph/dfs"
	"github.com/katalvlaran/puzzlegraph/printqueue"
)

// sampleRules is the ordering rule set from the print queue example.
func sampleRules() *printqueue.Rules[int] {
	pairs := [][2]int{
		{47, 53}, {97, 13}, {97, 61}, {97, 47}, {75, 29}, {61, 13}, {75, 53},
		{29, 13}, {97, 29}, {53, 29}, {61, 53}, {97, 53}, {61, 29}, {47, 13},
		{75, 47}, {97, 75}, {47, 61}, {75, 61}, {47, 29}, {75, 13}, {53, 13},
	}
	rules := make([]printqueue.Rule[int], 0, len(pairs))
	for _, p := range pairs {
		rules = append(rules, printqueue.Rule[int]{Before: p[0], After: p[1]})
	}

	return printqueue.NewRules(rules...)
}

// sampleUpdates are the page updates from the print queue example.
var sampleUpdates = [][]int{
	{75, 47, 61, 53, 29},
	{97, 61, 53, 29, 13},
	{75, 29, 13},
	{75, 97, 47, 61, 53},
	{61, 13, 29},
	{97, 13, 75, 29, 47},
}

func TestRules_AddAndLen(t *testing.T) {
	r := printqueue.NewRules[int]()
	assert.Equal(t, 0, r.Len())
	r.Add(1, 2)
	r.Add(1, 2) // repeated rule stored once
	r.Add(1, 3)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []int{2, 3}, slices.Collect(r.After(1)))
	assert.Empty(t, slices.Collect(r.After(42)))
}

func TestRules_AfterSorted(t *testing.T) {
	r := sampleRules()
	assert.Equal(t, []int{13, 29, 47, 53, 61, 75}, slices.Collect(r.After(97)))
	assert.Equal(t, 21, r.Len())
}

func TestRules_Valid(t *testing.T) {
	r := sampleRules()
	want := []bool{true, true, true, false, false, false}
	for i, update := range sampleUpdates {
		assert.Equal(t, want[i], r.Valid(update), "update %v", update)
	}
}

func TestRules_ValidTrivial(t *testing.T) {
	r := sampleRules()
	assert.True(t, r.Valid(nil))
	assert.True(t, r.Valid([]int{13}))
	assert.True(t, r.Valid([]int{1, 2, 3}), "pages without rules are unconstrained")
}

func TestRules_Reorder(t *testing.T) {
	r := sampleRules()
	cases := []struct {
		update []int
		want   []int
		middle int
	}{
		{[]int{75, 97, 47, 61, 53}, []int{97, 75, 47, 61, 53}, 47},
		{[]int{61, 13, 29}, []int{61, 29, 13}, 29},
		{[]int{97, 13, 75, 29, 47}, []int{97, 75, 47, 29, 13}, 47},
	}
	for _, tc := range cases {
		input := slices.Clone(tc.update)
		got, err := r.Reorder(tc.update)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, input, tc.update, "input must not be modified")

		mid, err := printqueue.Middle(got)
		require.NoError(t, err)
		assert.Equal(t, tc.middle, mid)
	}
}

func TestRules_ReorderFixedPoint(t *testing.T) {
	r := sampleRules()
	for _, update := range sampleUpdates {
		fixed, err := r.Reorder(update)
		require.NoError(t, err)
		assert.ElementsMatch(t, update, fixed)
		assert.True(t, r.Valid(fixed), "reordered %v must be valid", fixed)
	}
}

func TestRules_ReorderKeepsValidUpdate(t *testing.T) {
	r := sampleRules()
	got, err := r.Reorder([]int{75, 47, 61, 53, 29})
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61, 53, 29}, got)
}

func TestRules_ReorderCycle(t *testing.T) {
	r := printqueue.NewRules(
		printqueue.Rule[string]{Before: "A", After: "B"},
		printqueue.Rule[string]{Before: "B", After: "A"},
	)
	assert.False(t, r.Valid([]string{"A", "B"}))

	got, err := r.Reorder([]string{"A", "B"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestRules_ReorderCycleOutsideUpdate(t *testing.T) {
	r := printqueue.NewRules(
		printqueue.Rule[string]{Before: "A", After: "B"},
		printqueue.Rule[string]{Before: "B", After: "C"},
		printqueue.Rule[string]{Before: "C", After: "A"},
	)
	got, err := r.Reorder([]string{"C", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, got)
}

func TestRules_ReorderDuplicatePage(t *testing.T) {
	r := sampleRules()
	_, err := r.Reorder([]int{75, 47, 75})
	assert.ErrorIs(t, err, printqueue.ErrDuplicatePage)
}
