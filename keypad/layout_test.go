package keypad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegraph/keypad"
)

// keys converts a label string into keys.
func keys(s string) []keypad.Key {
	out := make([]keypad.Key, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = keypad.Key(s[i])
	}

	return out
}

func TestNewLayout_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, keypad.ErrEmptyLayout},
		{"EmptyRow", []string{""}, keypad.ErrEmptyLayout},
		{"NonRectangular", []string{"12", "3"}, keypad.ErrNonRectangular},
		{"DuplicateKey", []string{"1A", "A2"}, keypad.ErrDuplicateKey},
		{"TwoGaps", []string{" 1", "2 "}, keypad.ErrMultipleGaps},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := keypad.NewLayout(tc.name, tc.rows...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestStandardLayouts(t *testing.T) {
	num := keypad.Numeric()
	assert.Equal(t, "numeric", num.Name())
	assert.Equal(t, keys("789456123"+"0A"), num.Keys())
	gap, ok := num.Gap()
	assert.True(t, ok)
	assert.Equal(t, keypad.Point{X: 0, Y: 3}, gap)
	p, ok := num.Position(keypad.KeyA)
	assert.True(t, ok)
	assert.Equal(t, keypad.Point{X: 2, Y: 3}, p)

	dir := keypad.Directional()
	assert.Equal(t, keys("^A<v>"), dir.Keys())
	gap, ok = dir.Gap()
	assert.True(t, ok)
	assert.Equal(t, keypad.Point{X: 0, Y: 0}, gap)
	assert.True(t, dir.Has(keypad.Left))
	assert.False(t, dir.Has('5'))
}

func TestLayout_KeyAt(t *testing.T) {
	num := keypad.Numeric()
	k, ok := num.KeyAt(keypad.Point{X: 1, Y: 3})
	assert.True(t, ok)
	assert.Equal(t, keypad.Key('0'), k)

	_, ok = num.KeyAt(keypad.Point{X: 0, Y: 3})
	assert.False(t, ok, "gap is not a key")
	_, ok = num.KeyAt(keypad.Point{X: 3, Y: 0})
	assert.False(t, ok, "outside the grid")
}

func TestLayout_RouteNumeric(t *testing.T) {
	cases := []struct {
		from, to keypad.Key
		want     string
	}{
		{'A', '0', "<A"},
		{'A', '2', "<^A"},
		{'0', '1', "^<A"}, // left first would aim at the gap
		{'1', '0', ">vA"}, // down first would aim at the gap
		{'A', '7', "^^^<<A"},
		{'7', 'A', ">>vvvA"},
		{'9', 'A', "vvvA"},
		{'2', '9', "^^>A"},
		{'A', 'A', "A"},
	}
	for _, tc := range cases {
		got, err := keypad.Numeric().Route(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, keys(tc.want), got, "%c→%c", tc.from, tc.to)
	}
}

func TestLayout_RouteDirectional(t *testing.T) {
	cases := []struct {
		from, to keypad.Key
		want     string
	}{
		{'A', '<', "v<<A"},
		{'<', 'A', ">>^A"},
		{'^', '>', "v>A"},
		{'A', 'v', "<vA"},
		{'^', '<', "v<A"},
		{'v', 'A', "^>A"},
		{'>', '^', "<^A"},
	}
	for _, tc := range cases {
		got, err := keypad.Directional().Route(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, keys(tc.want), got, "%c→%c", tc.from, tc.to)
	}
}

// TestLayout_RouteNeverAimsAtGap replays every route on both keypads.
func TestLayout_RouteNeverAimsAtGap(t *testing.T) {
	for _, pad := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		for _, from := range pad.Keys() {
			for _, to := range pad.Keys() {
				moves, err := pad.Route(from, to)
				require.NoError(t, err)
				require.Equal(t, keypad.KeyA, moves[len(moves)-1])

				p, _ := pad.Position(from)
				for _, m := range moves[:len(moves)-1] {
					p = step(p, m)
					_, ok := pad.KeyAt(p)
					require.True(t, ok, "%s %c→%c aims at %v", pad.Name(), from, to, p)
				}
				want, _ := pad.Position(to)
				assert.Equal(t, want, p)
			}
		}
	}
}

func step(p keypad.Point, m keypad.Key) keypad.Point {
	switch m {
	case keypad.Up:
		p.Y--
	case keypad.Down:
		p.Y++
	case keypad.Left:
		p.X--
	case keypad.Right:
		p.X++
	}

	return p
}

func TestLayout_RouteUnknownKey(t *testing.T) {
	_, err := keypad.Numeric().Route('A', '^')
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)
	_, err = keypad.Directional().Route('7', 'A')
	assert.ErrorIs(t, err, keypad.ErrUnknownKey)
}

// TestLayout_RouteAcrossGap uses a ring-shaped keypad with the gap in the
// middle, where a straight route must cross it.
func TestLayout_RouteAcrossGap(t *testing.T) {
	ring, err := keypad.NewLayout("ring", "123", "4 5", "678")
	require.NoError(t, err)

	var moves []keypad.Key
	assert.NotPanics(t, func() {
		moves, err = ring.Route('4', '5')
	})
	assert.ErrorIs(t, err, keypad.ErrGapCrossing)
	assert.Nil(t, moves)

	moves, err = ring.Route('1', '8')
	require.NoError(t, err)
	assert.Equal(t, keys("vv>>A"), moves)
}
