package keypad

import (
	"context"
	"iter"
	"strings"

	"github.com/katalvlaran/puzzlegraph/bfs"
)

// chainState is an explicit snapshot of the whole robot chain: the numeric
// arm plus one directional arm per robot, arms[len-1] being the one the
// human drives.
type chainState struct {
	numeric Key
	arms    string
}

// humanMoves is the order in which the human's direction buttons are tried.
var humanMoves = [...]Key{Left, Right, Up, Down}

// SearchPresses returns the same quantity as Planner.Presses by breadth-first
// search over explicit robot-chain states. The state space grows as
// 11·5^robots, so it is only practical for a few robots; it exists to
// cross-check the planner.
func SearchPresses(ctx context.Context, from, to Key, robots int) (uint64, error) {
	if err := validate(numeric, robots, from, to); err != nil {
		return 0, err
	}

	start := chainState{numeric: from, arms: strings.Repeat(KeyA.String(), robots)}
	ready := func(s chainState) bool {
		return s.numeric == to && s.arms == start.arms
	}
	res, err := bfs.Search(start, next, ready, bfs.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	// the final A travels down the resting chain and presses `to`
	return uint64(res.Depth) + 1, nil
}

// next yields every state reachable with one human press.
func next(s chainState) iter.Seq[chainState] {
	return func(yield func(chainState) bool) {
		top := len(s.arms) - 1

		// a direction button nudges the topmost arm
		for _, d := range humanMoves {
			if ns, ok := nudge(s, top, d); ok && !yield(ns) {
				return
			}
		}

		// A passes through every arm resting on A; the first arm aimed at a
		// direction nudges the arm below it. All arms on A means a numeric
		// press, which ready accounts for.
		for i := top; i >= 0; i-- {
			if Key(s.arms[i]) != KeyA {
				if ns, ok := nudge(s, i-1, Key(s.arms[i])); ok {
					yield(ns)
				}
				return
			}
		}
	}
}

// nudge moves arm level (−1 for the numeric arm) one step in direction d.
// It reports false when the arm would leave its keypad or aim at the gap.
func nudge(s chainState, level int, d Key) (chainState, bool) {
	delta, _ := d.delta()
	if level < 0 {
		p, _ := numeric.Position(s.numeric)
		k, ok := numeric.KeyAt(p.Add(delta))
		if !ok {
			return s, false
		}
		s.numeric = k

		return s, true
	}

	p, _ := directional.Position(Key(s.arms[level]))
	k, ok := directional.KeyAt(p.Add(delta))
	if !ok {
		return s, false
	}
	arms := []byte(s.arms)
	arms[level] = byte(k)
	s.arms = string(arms)

	return s, true
}
