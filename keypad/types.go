package keypad

import (
	"errors"
)

// Key is a single keypad button, identified by its label.
type Key byte

// Labels shared by both keypads, and the four directional buttons.
const (
	KeyA  Key = 'A'
	Up    Key = '^'
	Down  Key = 'v'
	Left  Key = '<'
	Right Key = '>'
)

// String returns the button label.
func (k Key) String() string {
	return string(rune(k))
}

// delta returns the arm movement caused by pressing k on a directional
// keypad. It reports false for A and for non-directional keys.
func (k Key) delta() (Point, bool) {
	switch k {
	case Up:
		return Point{0, -1}, true
	case Down:
		return Point{0, 1}, true
	case Left:
		return Point{-1, 0}, true
	case Right:
		return Point{1, 0}, true
	default:
		return Point{}, false
	}
}

// Point is a keypad grid coordinate: X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Sentinel errors for keypad operations.
var (
	// ErrEmptyLayout indicates a layout with no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all layout rows must have the same length")
	// ErrDuplicateKey indicates the same label appears twice in a layout.
	ErrDuplicateKey = errors.New("keypad: duplicate key in layout")
	// ErrMultipleGaps indicates a layout with more than one gap.
	ErrMultipleGaps = errors.New("keypad: layout has more than one gap")
	// ErrUnknownKey indicates a key that does not exist on the keypad in use.
	ErrUnknownKey = errors.New("keypad: unknown key")
	// ErrGapCrossing indicates a route that would aim an arm at the gap.
	ErrGapCrossing = errors.New("keypad: route crosses the gap")
	// ErrOverflow indicates a press count that does not fit in uint64.
	ErrOverflow = errors.New("keypad: press count overflows uint64")
	// ErrNegativeRobots indicates a negative robot count.
	ErrNegativeRobots = errors.New("keypad: robot count cannot be negative")
	// ErrInvalidCode indicates a malformed door code.
	ErrInvalidCode = errors.New("keypad: invalid door code")
)
