package keypad

import (
	"context"
	"fmt"
	"math/bits"
	"sync"

	"golang.org/x/sync/errgroup"
)

// memoKey identifies one transition: the arm on pad moves from → to and
// presses, with robots levels of directional indirection above that pad.
type memoKey struct {
	pad      *Layout
	from, to Key
	robots   int
}

// Planner computes minimum press counts with a shared memo table.
// The memo only ever grows and every entry is a pure function of its key,
// so one Planner may serve any number of queries, also concurrently.
type Planner struct {
	mu   sync.RWMutex
	memo map[memoKey]uint64
}

// NewPlanner returns a Planner with an empty memo table.
func NewPlanner() *Planner {
	return &Planner{memo: make(map[memoKey]uint64)}
}

// Presses returns the fewest human presses that make the numeric-keypad robot
// move its arm from `from` to `to` and press it, with robots robots on
// directional keypads in between. Counts beyond uint64 yield ErrOverflow.
func (p *Planner) Presses(from, to Key, robots int) (uint64, error) {
	if err := validate(numeric, robots, from, to); err != nil {
		return 0, err
	}
	n, err := p.cost(numeric, from, to, robots)
	if err != nil {
		return 0, fmt.Errorf("keypad: %q→%q with %d robots: %w", from, to, robots, err)
	}

	return n, nil
}

// DirectionalPresses is Presses for an arm on a directional keypad. With
// robots == 0 the human presses the button directly, which always costs 1.
func (p *Planner) DirectionalPresses(from, to Key, robots int) (uint64, error) {
	if err := validate(directional, robots, from, to); err != nil {
		return 0, err
	}
	n, err := p.cost(directional, from, to, robots)
	if err != nil {
		return 0, fmt.Errorf("keypad: %q→%q with %d robots: %w", from, to, robots, err)
	}

	return n, nil
}

// SequencePresses returns the fewest human presses to type keys on the
// numeric keypad, starting with every arm on A. The total is the sum of the
// independent transitions A→keys[0], keys[0]→keys[1], …
func (p *Planner) SequencePresses(keys []Key, robots int) (uint64, error) {
	if err := validate(numeric, robots, keys...); err != nil {
		return 0, err
	}

	var total uint64
	prev := KeyA
	for _, k := range keys {
		n, err := p.cost(numeric, prev, k, robots)
		if err == nil {
			total, err = add(total, n)
		}
		if err != nil {
			return 0, fmt.Errorf("keypad: sequence with %d robots: %w", robots, err)
		}
		prev = k
	}

	return total, nil
}

// Complexity returns SequencePresses(code) multiplied by the code's numeric value.
func (p *Planner) Complexity(code Code, robots int) (uint64, error) {
	n, err := p.SequencePresses(code.Keys, robots)
	if err != nil {
		return 0, fmt.Errorf("keypad: code %s: %w", code, err)
	}
	c, err := mul(n, code.Value)
	if err != nil {
		return 0, fmt.Errorf("keypad: code %s: %w", code, err)
	}

	return c, nil
}

// ComplexitySum adds up the complexity of every code. Codes are costed
// concurrently against the shared memo table; the first error cancels the
// remaining work. A nil ctx means context.Background().
func (p *Planner) ComplexitySum(ctx context.Context, codes []Code, robots int) (uint64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	each := make([]uint64, len(codes))
	for i, code := range codes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := p.Complexity(code, robots)
			if err != nil {
				return err
			}
			each[i] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range each {
		var err error
		if total, err = add(total, c); err != nil {
			return 0, fmt.Errorf("keypad: complexity sum: %w", err)
		}
	}

	return total, nil
}

// MemoSize returns the number of memoized transitions.
func (p *Planner) MemoSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.memo)
}

// cost is the memoized recursion. The arm on pad is driven by a directional
// keypad one level up; a directional pad with no robots left is pressed by
// the human directly. Overflowing totals are not memoized.
func (p *Planner) cost(pad *Layout, from, to Key, robots int) (uint64, error) {
	if pad == directional && robots == 0 {
		return 1, nil
	}
	key := memoKey{pad: pad, from: from, to: to, robots: robots}
	p.mu.RLock()
	v, ok := p.memo[key]
	p.mu.RUnlock()
	if ok {
		return v, nil
	}

	above := robots
	if pad == directional {
		above--
	}
	var total uint64
	prev := KeyA
	for _, k := range pad.route(pad.pos[from], pad.pos[to]) {
		n, err := p.cost(directional, prev, k, above)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, n); err != nil {
			return 0, err
		}
		prev = k
	}

	p.mu.Lock()
	p.memo[key] = total
	p.mu.Unlock()

	return total, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}

	return lo, nil
}

func validate(pad *Layout, robots int, keys ...Key) error {
	if robots < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRobots, robots)
	}
	for _, k := range keys {
		if !pad.Has(k) {
			return fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, k, pad.name)
		}
	}

	return nil
}
