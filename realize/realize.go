package realize

import (
	"fmt"
	"sort"

	"github.com/ntago/ntago/lp"
	"github.com/ntago/ntago/paths"
	"github.com/ntago/ntago/ta"
)

// UsedClocks returns the clocks referenced by any clock constraint on the
// path's invariants and guards, deduplicated and sorted.
func UsedClocks(p *paths.Path) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(cs []*ta.Constraint) {
		for _, c := range cs {
			if c.Kind != ta.ClockConstraint {
				continue
			}
			for _, clock := range c.Clocks {
				if _, dup := seen[clock]; !dup {
					seen[clock] = struct{}{}
					out = append(out, clock)
				}
			}
		}
	}
	for i := 0; i < p.Segments(); i++ {
		add(p.Location(i).Constraints())
		add(p.Transition(i).Constraints())
	}
	add(p.Last().Constraints())
	sort.Strings(out)
	return out
}

// builder accumulates the feasibility system while walking a path.
type builder struct {
	opts *options

	// ctx resolves thresholds; data updates along the path mutate it.
	ctx *ta.MutableContext

	clocks      []string
	vars        int
	delayOffset int

	// delay[c] lists the variable indices whose sum is clock c's
	// accumulated value at the current point of the walk. A reset clears
	// the list; time then restarts from zero, not from the initial
	// valuation variable.
	delay map[string][]int

	sys *lp.System
}

// Realizable decides whether the path admits non-negative delays (and,
// with WithInitialValuations, initial clock valuations) satisfying every
// invariant and guard along it. ctx is the declaration context of the
// path's template.
//
// Structural failures under WithPathValidation yield an Infeasible result;
// malformed inputs (nil arguments, undefined identifiers, clocks outside
// the analysis set) yield errors.
func Realizable(ctx *ta.Context, p *paths.Path, opts ...Option) (*Result, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if p == nil {
		return nil, ErrNilPath
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if o.validatePath && !paths.Exists(p) {
		return &Result{Outcome: lp.Infeasible}, nil
	}

	clocks := o.clocks
	if clocks == nil {
		clocks = UsedClocks(p)
	}

	b, err := newBuilder(&o, ctx, clocks, p.Segments())
	if err != nil {
		return nil, err
	}
	if err = b.walk(p); err != nil {
		return nil, err
	}

	res := o.solver.Feasible(b.sys)
	return &Result{
		Outcome:     res.Outcome,
		Witness:     res.X,
		Clocks:      clocks,
		DelayOffset: b.delayOffset,
		Err:         res.Err,
	}, nil
}

func newBuilder(o *options, ctx *ta.Context, clocks []string, segments int) (*builder, error) {
	b := &builder{
		opts:   o,
		ctx:    ctx.Mutable(),
		clocks: clocks,
		vars:   segments,
		delay:  make(map[string][]int, len(clocks)),
	}

	if o.icv {
		// Variable layout: one initial valuation per clock, then the
		// per-segment delays.
		b.delayOffset = len(clocks)
		b.vars += len(clocks)
	}

	sys, err := lp.NewSystem(b.vars)
	if err != nil {
		return nil, err
	}
	b.sys = sys

	for i, c := range clocks {
		if !o.icv {
			if segments > 0 {
				b.delay[c] = []int{0}
			} else {
				b.delay[c] = nil
			}
			continue
		}
		// Accumulation starts at the valuation variable; the first delay
		// joins it only when the path has segments.
		if segments > 0 {
			b.delay[c] = []int{i, b.delayOffset}
		} else {
			b.delay[c] = []int{i}
		}
		if v, pinned := o.pinned[c]; pinned {
			// Pin with a two-row equality; free clocks need no row, their
			// non-negativity bound suffices.
			row := make([]float64, b.vars)
			row[i] = -1
			if err = b.sys.AddRow(row, -float64(v)); err != nil {
				return nil, err
			}
			row[i] = 1
			if err = b.sys.AddRow(row, float64(v)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// walk emits constraint rows segment by segment: source invariant, guard,
// resets and data updates, target invariant, then the next delay variable
// joins every clock's accumulation.
func (b *builder) walk(p *paths.Path) error {
	segments := p.Segments()
	if segments == 0 {
		// Degenerate path: only the lone location's invariant applies,
		// over zero delay variables.
		return b.addConstraints(p.First().Constraints())
	}
	for i := 0; i < segments; i++ {
		if err := b.addConstraints(p.Location(i).Constraints()); err != nil {
			return err
		}

		t := p.Transition(i)
		if err := b.addConstraints(t.Constraints()); err != nil {
			return err
		}
		for _, c := range t.Resets() {
			b.delay[c] = nil
		}
		for _, u := range t.DataUpdates() {
			if err := u.Apply(b.ctx); err != nil {
				return err
			}
		}

		if err := b.addConstraints(p.Location(i + 1).Constraints()); err != nil {
			return err
		}

		// The next segment's delay joins every accumulation. Skipped after
		// the final segment: no constraint can reference it.
		if i+1 < segments {
			next := i + 1 + b.delayOffset
			for _, c := range b.clocks {
				b.delay[c] = append(b.delay[c], next)
			}
		}
	}
	return nil
}

func (b *builder) addConstraints(cs []*ta.Constraint) error {
	for _, c := range cs {
		if c.Kind != ta.ClockConstraint {
			// Data constraints are not LP unknowns; they are evaluated
			// statically by callers that care.
			continue
		}
		if b.opts.staticThresholds && b.ctx.IsVariable(c.Threshold()) {
			continue
		}
		if err := b.addRow(c); err != nil {
			return err
		}
	}
	return nil
}

// addRow translates one clock constraint into ≤-form row(s):
//
//	+1 on every accumulation variable of Clocks[0], −1 on Clocks[1] for a
//	difference; '>'/'>=' negate row and threshold; '==' adds the mirrored
//	row; strict operators subtract Eps under WithEpsilon.
func (b *builder) addRow(c *ta.Constraint) error {
	threshold, err := b.ctx.Value(c.Threshold())
	if err != nil {
		return err
	}

	row := make([]float64, b.vars)
	vars, ok := b.delay[c.Clocks[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClock, c.Clocks[0])
	}
	for _, v := range vars {
		row[v] += 1
	}
	if len(c.Clocks) == 2 {
		vars, ok = b.delay[c.Clocks[1]]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownClock, c.Clocks[1])
		}
		for _, v := range vars {
			row[v] -= 1
		}
	}

	rhs := float64(threshold)
	if c.Op == ta.Gt || c.Op == ta.Ge {
		negate(row)
		rhs = -rhs
	}
	if b.opts.addEpsilon && c.Strict() {
		rhs -= Eps
	}
	if err = b.sys.AddRow(row, rhs); err != nil {
		return err
	}

	if c.Op == ta.Eq {
		negate(row)
		return b.sys.AddRow(row, -rhs)
	}
	return nil
}

func negate(row []float64) {
	for i := range row {
		row[i] = -row[i]
	}
}
