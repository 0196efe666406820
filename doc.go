// Package ntago analyzes networks of timed automata — parsing clock and
// data constraints, deciding whether concrete paths through an automaton
// are realizable, and computing which locations are reachable within a
// bounded number of steps.
//
// 🚀 What is ntago?
//
//	A modular analysis toolkit that brings together:
//		• TA model: locations, invariants, guarded transitions, clock & data updates
//		• Constraint language: comparisons over clocks, clock differences and integers
//		• LP feasibility: delay-variable encodings solved via gonum's simplex
//		• Path realizability: exact, epsilon-strict and relaxed-initial-valuation checks
//		• Bounded search: a dynamic-programming table of semi-realizable paths
//		• Reachability: forward exploration plus nearest-reachable-ancestor queries
//
// ✨ Why choose ntago?
//
//   - Small, explicit API – plain structs in, plain results out
//   - Honest verdicts – solver failures surface as Unknown, never as Infeasible
//   - Deterministic – insertion-ordered graphs, sorted accessors, stable tables
//   - Concurrent where it pays – opt-in parallel table construction
//
// Under the hood, everything is organized under five subpackages:
//
//	ta/      — declarations, expressions, locations, transitions, graphs, templates
//	lp/      — inequality systems and the three-valued feasibility solver
//	paths/   — path values, validation, splicing and concatenation
//	realize/ — the constraint compiler turning a path into an lp.System
//	reach/   — the semi-realizable-path table and reachability queries
//
// Quick ASCII example:
//
//	    off ──(x>=2, x=0)──▶ on ──(x<=5)──▶ done
//
//	a three-location chain: wait at least 2 time units, reset the clock,
//	then reach "done" before 5 more elapse.
//
//	go get github.com/ntago/ntago
package ntago
