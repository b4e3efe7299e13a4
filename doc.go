// Package puzzlegraph collects small, dependable graph and search building
// blocks for ordering and planning puzzles.
//
// 🚀 What is puzzlegraph?
//
//	A pure-Go library that brings together:
//		• dfs:        generic depth-first search, topological sort, cycle detection
//		• bfs:        generic breadth-first search over implicit state spaces
//		• printqueue: "X before Y" rule sets, update validation and repair
//		• keypad:     memoized press counting through chains of keypad robots
//
// ✨ Why choose puzzlegraph?
//
//   - Generic – nodes and states are your own types, edges are iter.Seq functions
//   - Deterministic – ties are broken the same way on every run
//   - Recoverable errors – cycles and bad input come back as sentinel errors
//
// Quick ASCII example (rules 97|75, 75|47, 47|61):
//
//	97 ──▶ 75 ──▶ 47 ──▶ 61
//
// sorts the update [75 97 61 47] into [97 75 47 61].
//
//	go get github.com/katalvlaran/puzzlegraph
package puzzlegraph
