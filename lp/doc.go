// Package lp represents linear feasibility systems of the form
//
//	A·x ≤ B,  x ≥ 0
//
// and decides them with a simplex backend. There is no objective
// function; any feasible point is an acceptable witness.
//
// The verdict is a three-valued Outcome: Feasible (with witness),
// Infeasible (proven), or Unknown when the backend fails or does not
// converge. Unknown is never coerced to Infeasible.
//
// Solvers are stateless and safe for concurrent use; every Feasible call
// builds fresh backend state.
package lp
