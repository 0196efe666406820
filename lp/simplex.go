package lp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex decides feasibility with gonum's two-phase simplex over the
// slack-variable standard form [A | I]·x' = B, x' ≥ 0, zero objective.
//
// The zero value is ready for use. Tol is forwarded to the backend;
// 0 selects gonum's default tolerance.
type Simplex struct {
	Tol float64
}

// Feasible decides s.
//
// A presolve pass keeps the backend inputs well formed:
//   - rows with no nonzero coefficient are decided statically (0 ≤ rhs);
//   - variables absent from every row are unconstrained, pruned from the
//     solve, and reported as 0 in the witness.
//
// Backend failures other than a proven-infeasible verdict yield Unknown.
func (sx *Simplex) Feasible(s *System) Result {
	// Presolve: find live variables.
	live := make([]bool, s.vars)
	for _, row := range s.rows {
		for j, v := range row {
			if v != 0 {
				live[j] = true
			}
		}
	}
	col := make([]int, s.vars) // original index → compact index, -1 if pruned
	n := 0
	for j := range live {
		if live[j] {
			col[j] = n
			n++
		} else {
			col[j] = -1
		}
	}

	// Presolve: split constant rows from solver rows.
	var rows [][]float64
	var rhs []float64
	for i, row := range s.rows {
		zero := true
		for _, v := range row {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero {
			if s.rhs[i] < 0 {
				return Result{Outcome: Infeasible}
			}
			continue
		}
		rows = append(rows, row)
		rhs = append(rhs, s.rhs[i])
	}

	if len(rows) == 0 {
		// Nothing constrains any variable; the origin is a witness.
		return Result{Outcome: Feasible, X: make([]float64, s.vars)}
	}

	// Standard form: one slack per row.
	m := len(rows)
	cols := n + m
	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				a.Set(i, col[j], v)
			}
		}
		a.Set(i, n+i, 1)
		b[i] = rhs[i]
	}

	c := make([]float64, cols) // zero objective: pure feasibility
	_, x, err := gonumlp.Simplex(c, a, b, sx.Tol, nil)
	switch {
	case err == nil:
		witness := make([]float64, s.vars)
		for j, cj := range col {
			if cj < 0 {
				continue
			}
			if v := x[cj]; v > 0 {
				witness[j] = v
			}
		}
		return Result{Outcome: Feasible, X: witness}
	case errors.Is(err, gonumlp.ErrInfeasible):
		return Result{Outcome: Infeasible}
	default:
		return Result{Outcome: Unknown, Err: err}
	}
}
