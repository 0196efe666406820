package realize

import (
	"errors"
	"fmt"

	"github.com/ntago/ntago/lp"
)

// Sentinel errors for realizability queries.
var (
	// ErrNilContext is returned when no declaration context is supplied.
	ErrNilContext = errors.New("realize: context is nil")

	// ErrNilPath is returned when no path is supplied.
	ErrNilPath = errors.New("realize: path is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("realize: invalid option supplied")

	// ErrUnknownClock is returned when a path constraint references a
	// clock outside the analysis clock set.
	ErrUnknownClock = errors.New("realize: clock not in analysis set")
)

// Eps is the strict-inequality tightening constant (2^-10). With
// WithEpsilon, a strict constraint "x < t" becomes "x ≤ t - Eps", which
// invalidates witnesses meeting the bound exactly.
const Eps = 1.0 / 1024

// Option configures a realizability query via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// Realizable is invoked.
type Option func(*options)

type options struct {
	validatePath     bool
	addEpsilon       bool
	staticThresholds bool

	// icv switches on initial-clock-valuation variables; pinned maps a
	// clock name to the constant its valuation variable is forced to.
	icv    bool
	pinned map[string]int64

	clocks []string
	solver lp.Solver

	err error
}

func defaultOptions() options {
	return options{solver: &lp.Simplex{}}
}

// WithPathValidation checks transition adjacency before building the
// system; a broken path is reported as an Infeasible result, not an error.
func WithPathValidation() Option {
	return func(o *options) { o.validatePath = true }
}

// WithEpsilon tightens strict inequalities by Eps.
func WithEpsilon() Option {
	return func(o *options) { o.addEpsilon = true }
}

// WithStaticThresholds skips clock constraints whose threshold is a
// runtime variable. Their satisfiability depends on state not modeled in
// the system; the bounded-length search uses this for its
// necessary-condition filter.
func WithStaticThresholds() Option {
	return func(o *options) { o.staticThresholds = true }
}

// WithInitialValuations adds one non-negative initial-valuation variable
// per clock ahead of the delay variables. Clocks present in pinned are
// forced to their given constant; clocks absent from it stay free (≥ 0).
// A nil map behaves like WithFreeInitialValuations.
func WithInitialValuations(pinned map[string]int64) Option {
	return func(o *options) {
		o.icv = true
		o.pinned = pinned
	}
}

// WithFreeInitialValuations leaves every clock's initial valuation as a
// free (≥ 0) variable: the semi-realizability relaxation.
func WithFreeInitialValuations() Option {
	return func(o *options) {
		o.icv = true
		o.pinned = nil
	}
}

// WithClocks fixes the analysis clock set instead of collecting the
// clocks referenced along the path. Names must be non-empty and distinct.
func WithClocks(clocks []string) Option {
	return func(o *options) {
		seen := make(map[string]struct{}, len(clocks))
		for _, c := range clocks {
			if c == "" {
				o.err = fmt.Errorf("%w: empty clock name", ErrOptionViolation)
				return
			}
			if _, dup := seen[c]; dup {
				o.err = fmt.Errorf("%w: duplicate clock %q", ErrOptionViolation, c)
				return
			}
			seen[c] = struct{}{}
		}
		o.clocks = clocks
	}
}

// WithSolver decides feasibility with a custom backend.
func WithSolver(s lp.Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// Result reports the verdict of one realizability query.
//
// Witness holds a feasible assignment when the outcome is lp.Feasible:
// first one initial-valuation value per clock in Clocks (if initial
// valuations were requested), then one delay per path segment.
type Result struct {
	Outcome lp.Outcome
	Witness []float64

	// Clocks is the analysis clock set, sorted.
	Clocks []string

	// DelayOffset is the index of the first per-segment delay in Witness.
	DelayOffset int

	// Err carries the backend failure when Outcome is lp.Unknown.
	Err error
}

// Realizable reports whether a witness was found.
func (r *Result) Realizable() bool { return r.Outcome == lp.Feasible }

// Delays returns the per-segment delay part of the witness, nil when
// there is no witness.
func (r *Result) Delays() []float64 {
	if r.Witness == nil {
		return nil
	}
	return r.Witness[r.DelayOffset:]
}
