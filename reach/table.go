package reach

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ntago/ntago/paths"
	"github.com/ntago/ntago/realize"
	"github.com/ntago/ntago/ta"
)

// SemiRealizablePaths builds the DP table of all semi-realizable paths of
// length ≤ maxLength through the template.
//
// Length 1 comes straight from the transitions; length l ≥ 2 concatenates
// sub-paths of lengths p and l−p at every shared middle location and
// keeps a candidate only if it is new for its cell and realizable with
// free initial clock valuations. Only proven-feasible paths are recorded:
// an Unknown solver verdict drops the candidate.
//
// Complexity: O(maxLength² · |L|³ · paths-per-cell²) realizability checks;
// intended for small templates and small bounds.
func SemiRealizablePaths(tpl *ta.Template, maxLength int, opts ...Option) (*Table, error) {
	if tpl == nil {
		return nil, ErrNilTemplate
	}
	if maxLength < 1 {
		return nil, ErrMaxLength
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	locs := tpl.Graph.Locations()
	t := &Table{
		maxLen: maxLength,
		ids:    make([]string, len(locs)),
		cells:  make(map[string]map[string]*cell, len(locs)),
	}
	for i, l := range locs {
		t.ids[i] = l.ID
		t.cells[l.ID] = make(map[string]*cell, len(locs))
		for _, m := range locs {
			t.cells[l.ID][m.ID] = newCell(maxLength)
		}
		// Degenerate zero-length path, present unconditionally.
		p := paths.Single(l)
		t.cells[l.ID][l.ID].add(0, p.Key(), p)
	}

	b := &tableBuilder{tpl: tpl, table: t, opts: &o}
	if err := b.seedLengthOne(); err != nil {
		return nil, err
	}
	for l := 2; l <= maxLength; l++ {
		if err := b.buildLength(l); err != nil {
			return nil, err
		}
	}
	return t, nil
}

type tableBuilder struct {
	tpl   *ta.Template
	table *Table
	opts  *options
}

// semiRealizable runs the free-initial-valuation relaxation on one path.
func (b *tableBuilder) semiRealizable(p *paths.Path) (bool, error) {
	res, err := realize.Realizable(b.tpl.Context, p,
		realize.WithFreeInitialValuations(),
		realize.WithSolver(b.opts.solver),
	)
	if err != nil {
		return false, err
	}
	return res.Realizable(), nil
}

// seedLengthOne records every single-transition path that passes the
// relaxation.
func (b *tableBuilder) seedLengthOne() error {
	for _, tr := range b.tpl.Graph.Transitions() {
		if err := checkDone(b.opts.ctx); err != nil {
			return err
		}
		src, err := b.tpl.Graph.Location(tr.Source)
		if err != nil {
			return err
		}
		dst, err := b.tpl.Graph.Location(tr.Target)
		if err != nil {
			return err
		}
		p, err := paths.New([]*ta.Location{src, dst}, []*ta.Transition{tr})
		if err != nil {
			return err
		}
		ok, err := b.semiRealizable(p)
		if err != nil {
			return err
		}
		if ok {
			b.table.cells[src.ID][dst.ID].add(1, p.Key(), p)
		}
	}
	return nil
}

// buildLength fills every cell at one exact length. Cells of shorter
// lengths are frozen by now, so within a length the work partitions
// cleanly by start location: the goroutine for start i is the only writer
// of row i.
func (b *tableBuilder) buildLength(l int) error {
	if b.opts.workers <= 1 {
		for _, i := range b.table.ids {
			if err := b.buildRow(b.opts.ctx, i, l); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(b.opts.ctx)
	g.SetLimit(b.opts.workers)
	for _, i := range b.table.ids {
		i := i
		g.Go(func() error { return b.buildRow(ctx, i, l) })
	}
	return g.Wait()
}

// buildRow finds all new paths of length l starting at location i by
// splitting at every point p: prefix i…j of length p, suffix j…k of
// length l−p.
func (b *tableBuilder) buildRow(ctx context.Context, i string, l int) error {
	row := b.table.cells[i]
	for p := 1; p < l; p++ {
		s := l - p
		for _, j := range b.table.ids {
			if err := checkDone(ctx); err != nil {
				return err
			}
			prefixes := row[j].byLen[p]
			if len(prefixes) == 0 {
				continue
			}
			for _, k := range b.table.ids {
				suffixes := b.table.cells[j][k].byLen[s]
				if len(suffixes) == 0 {
					continue
				}
				for _, p1 := range prefixes {
					for _, p2 := range suffixes {
						cand, err := paths.Splice(p1, p2)
						if err != nil {
							return err
						}
						key := cand.Key()
						if row[k].seen(l, key) {
							continue
						}
						ok, err := b.semiRealizable(cand)
						if err != nil {
							return err
						}
						if ok {
							row[k].add(l, key, cand)
						}
					}
				}
			}
		}
	}
	return nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
