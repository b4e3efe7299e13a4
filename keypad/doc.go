// Package keypad computes how many button presses a human needs to type a
// door code through a chain of robots.
//
// The chain always looks like this:
//
//	human ─▶ directional pad ─▶ robot ─▶ directional pad ─▶ … ─▶ robot ─▶ numeric pad
//
// The human types on a directional keypad. Each robot aims its arm at the
// keypad below it and presses whatever it aims at when its controller
// presses A. The robots argument used throughout the package counts the
// robots aiming at directional keypads; the robot at the numeric keypad is
// always present. Every arm starts on A, and no arm may ever aim at a gap.
//
//	numeric              directional
//	+---+---+---+            +---+---+
//	| 7 | 8 | 9 |            | ^ | A |
//	+---+---+---+        +---+---+---+
//	| 4 | 5 | 6 |        | < | v | > |
//	+---+---+---+        +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Planner never enumerates the robot chain. Between two presses on the
// numeric keypad every arm above it has just pressed A, so the cost of a code
// is the sum of independent key-to-key transitions. Each transition is
// expanded into one fixed move sequence (Layout.Route) and costed one level
// up, memoized on (keypad, from, to, robots). Deep chains of 25 robots stay
// cheap.
//
// SearchPresses is the slow oracle: a breadth-first search over explicit
// robot-chain states, usable for a handful of robots.
package keypad
