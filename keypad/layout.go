package keypad

import (
	"fmt"
	"slices"
)

// gapLabel marks the missing button in a layout row.
const gapLabel = ' '

var (
	numeric     = mustLayout("numeric", "789", "456", "123", " 0A")
	directional = mustLayout("directional", " ^A", "<v>")
)

// Numeric returns the door keypad: digits 0-9 and A, gap in the bottom-left corner.
func Numeric() *Layout { return numeric }

// Directional returns the robot control keypad: ^ v < > and A, gap in the
// top-left corner.
func Directional() *Layout { return directional }

// Layout is an immutable keypad: a rectangular grid of labelled buttons with
// at most one gap.
type Layout struct {
	name          string
	width, height int
	pos           map[Key]Point
	cells         [][]Key // cells[y][x]; gapLabel at the gap
	gap           Point
	hasGap        bool
}

// NewLayout builds a keypad from its rows, top to bottom. A space marks the
// gap. Returns ErrEmptyLayout, ErrNonRectangular, ErrDuplicateKey or
// ErrMultipleGaps for malformed rows.
func NewLayout(name string, rows ...string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	l := &Layout{
		name:   name,
		width:  w,
		height: h,
		pos:    make(map[Key]Point, w*h),
		cells:  make([][]Key, h),
	}
	for y, row := range rows {
		l.cells[y] = make([]Key, w)
		for x := 0; x < w; x++ {
			k := Key(row[x])
			l.cells[y][x] = k
			if k == gapLabel {
				if l.hasGap {
					return nil, fmt.Errorf("%w: %s", ErrMultipleGaps, name)
				}
				l.gap, l.hasGap = Point{x, y}, true
				continue
			}
			if _, dup := l.pos[k]; dup {
				return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateKey, k, name)
			}
			l.pos[k] = Point{x, y}
		}
	}

	return l, nil
}

func mustLayout(name string, rows ...string) *Layout {
	l, err := NewLayout(name, rows...)
	if err != nil {
		panic(err)
	}

	return l
}

// Name returns the label given at construction.
func (l *Layout) Name() string { return l.name }

// Has reports whether k is a button on this keypad.
func (l *Layout) Has(k Key) bool {
	_, ok := l.pos[k]

	return ok
}

// Position returns the grid coordinate of k.
func (l *Layout) Position(k Key) (Point, bool) {
	p, ok := l.pos[k]

	return p, ok
}

// KeyAt returns the button at p. It reports false outside the grid and at the gap.
func (l *Layout) KeyAt(p Point) (Key, bool) {
	if !l.inBounds(p) || l.isGap(p) {
		return 0, false
	}

	return l.cells[p.Y][p.X], true
}

// Gap returns the gap coordinate, if the layout has one.
func (l *Layout) Gap() (Point, bool) {
	return l.gap, l.hasGap
}

// Keys returns all buttons in row-major order.
func (l *Layout) Keys() []Key {
	keys := make([]Key, 0, len(l.pos))
	for _, row := range l.cells {
		for _, k := range row {
			if k != gapLabel {
				keys = append(keys, k)
			}
		}
	}

	return keys
}

func (l *Layout) inBounds(p Point) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

func (l *Layout) isGap(p Point) bool {
	return l.hasGap && p == l.gap
}

// Route returns the directional presses that move an arm from `from` to `to`
// on this keypad and press it: all moves along one axis, then all moves
// along the other, then A.
//
// The axis order is fixed:
//   - if going horizontally first would pass over the gap, go vertically first;
//   - if going vertically first would pass over the gap, go horizontally first;
//   - otherwise go Left first when any Left move is needed, else go Up/Down
//     before Right.
func (l *Layout) Route(from, to Key) ([]Key, error) {
	a, ok := l.pos[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, from, l.name)
	}
	b, ok := l.pos[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, to, l.name)
	}

	return l.plan(a, b)
}

// route is Route on coordinates for the two standard keypads, where the
// axis order never aims at the gap. It panics if that ever fails.
func (l *Layout) route(a, b Point) []Key {
	moves, err := l.plan(a, b)
	if err != nil {
		panic(err)
	}

	return moves
}

// plan builds the moves from a to b and replays them, returning
// ErrGapCrossing if a step leaves the keypad or aims at the gap. That can
// only happen on a layout the axis order was not written for.
func (l *Layout) plan(a, b Point) ([]Key, error) {
	dx, dy := b.X-a.X, b.Y-a.Y

	horizontal := repeat(Right, dx)
	if dx < 0 {
		horizontal = repeat(Left, -dx)
	}
	vertical := repeat(Down, dy)
	if dy < 0 {
		vertical = repeat(Up, -dy)
	}

	var horizontalFirst bool
	switch {
	case l.isGap(Point{b.X, a.Y}):
		horizontalFirst = false
	case l.isGap(Point{a.X, b.Y}):
		horizontalFirst = true
	default:
		horizontalFirst = dx < 0
	}

	moves := make([]Key, 0, len(horizontal)+len(vertical)+1)
	if horizontalFirst {
		moves = append(append(moves, horizontal...), vertical...)
	} else {
		moves = append(append(moves, vertical...), horizontal...)
	}

	p := a
	for _, m := range moves {
		d, _ := m.delta()
		p = p.Add(d)
		if _, ok := l.KeyAt(p); !ok {
			return nil, fmt.Errorf("%w: %s keypad from %v aims at %v via %q",
				ErrGapCrossing, l.name, a, p, string(keysToBytes(moves)))
		}
	}

	return append(moves, KeyA), nil
}

func repeat(k Key, n int) []Key {
	if n <= 0 {
		return nil
	}

	return slices.Repeat([]Key{k}, n)
}

func keysToBytes(keys []Key) []byte {
	b := make([]byte, len(keys))
	for i, k := range keys {
		b[i] = byte(k)
	}

	return b
}
