package lp

import (
	"errors"
	"fmt"
)

// Sentinel errors for system construction.
var (
	// ErrBadVarCount indicates a negative variable count.
	ErrBadVarCount = errors.New("lp: variable count must be >= 0")

	// ErrRowSize indicates a coefficient row of the wrong length.
	ErrRowSize = errors.New("lp: coefficient row length mismatch")
)

// System is a dense feasibility system: rows constrain row·x ≤ rhs over
// variables bounded below by 0 and unbounded above.
type System struct {
	vars int
	rows [][]float64
	rhs  []float64
}

// NewSystem creates a system over the given number of variables.
func NewSystem(vars int) (*System, error) {
	if vars < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVarCount, vars)
	}
	return &System{vars: vars}, nil
}

// Vars returns the number of variables.
func (s *System) Vars() int { return s.vars }

// Rows returns the number of constraint rows.
func (s *System) Rows() int { return len(s.rows) }

// AddRow appends the constraint coeffs·x ≤ rhs. The coefficient slice is
// copied; callers may reuse their buffer.
func (s *System) AddRow(coeffs []float64, rhs float64) error {
	if len(coeffs) != s.vars {
		return fmt.Errorf("%w: got %d, want %d", ErrRowSize, len(coeffs), s.vars)
	}
	row := make([]float64, len(coeffs))
	copy(row, coeffs)
	s.rows = append(s.rows, row)
	s.rhs = append(s.rhs, rhs)
	return nil
}

// Row returns the i-th coefficient row and its right-hand side.
// The returned slice must not be mutated.
func (s *System) Row(i int) ([]float64, float64) {
	return s.rows[i], s.rhs[i]
}

// Outcome is the three-valued verdict of a feasibility solve.
type Outcome uint8

const (
	// Unknown means the backend failed or did not converge; the system is
	// neither proven feasible nor proven infeasible.
	Unknown Outcome = iota

	// Feasible means a witness assignment was found.
	Feasible

	// Infeasible means the system is proven to have no solution.
	Infeasible
)

var outcomeNames = [...]string{"unknown", "feasible", "infeasible"}

// String returns a lower-case outcome name.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "invalid"
}

// Result reports a feasibility verdict. X holds a witness of length
// System.Vars when the outcome is Feasible, nil otherwise. Err carries the
// backend failure when the outcome is Unknown.
type Result struct {
	Outcome Outcome
	X       []float64
	Err     error
}

// Solver decides feasibility systems.
type Solver interface {
	Feasible(s *System) Result
}
