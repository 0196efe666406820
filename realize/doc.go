// Package realize decides path realizability for timed-automaton paths:
// whether non-negative delay times can be assigned to each step of a path
// so that every location invariant and transition guard along it is
// simultaneously satisfiable, accounting for clock resets.
//
// A path is translated into a linear feasibility system (lp.System) over
// one delay variable per path segment, optionally preceded by one initial
// clock valuation variable per clock. Each clock constraint encountered
// while walking the path contributes one ≤-row (two for equalities); a
// clock's accumulated value is the sum of the delay variables since its
// last reset. Strict inequalities can be tightened by an epsilon to reject
// witnesses that only satisfy the non-strict relaxation.
//
// The verdict is three-valued (lp.Outcome): a backend failure is reported
// as Unknown, never conflated with proven infeasibility.
package realize
