package reach

import (
	"fmt"
	"sort"

	"github.com/ntago/ntago/realize"
	"github.com/ntago/ntago/ta"
)

// Reachable walks the template from its initial location and reports, for
// every location, whether some path stored in the table proves it
// reachable. The table was built under the free-initial-valuation
// relaxation; the verdict here re-validates each candidate with the
// stricter default semantics (zero initial clocks, validated adjacency,
// variable-valued thresholds excluded), so the relaxation only ever
// over-approximates the frontier, never the answer.
//
// Exploration continues only past locations proven reachable.
func Reachable(tpl *ta.Template, table *Table, opts ...Option) (map[string]bool, error) {
	if tpl == nil {
		return nil, ErrNilTemplate
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	init := tpl.Graph.Initial()
	if init == "" {
		return nil, ErrNoInitial
	}

	tags := make(map[string]bool, len(table.ids))
	for _, id := range table.ids {
		tags[id] = false
	}

	queue := []string{init}
	enqueued := map[string]struct{}{init: {}}
	for len(queue) > 0 {
		if err := checkDone(o.ctx); err != nil {
			return nil, err
		}
		n := queue[0]
		queue = queue[1:]

		ok, err := provenReachable(tpl, table, init, n, &o)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		tags[n] = true
		for _, succ := range tpl.Graph.Successors(n) {
			if _, dup := enqueued[succ]; !dup {
				enqueued[succ] = struct{}{}
				queue = append(queue, succ)
			}
		}
	}
	return tags, nil
}

// provenReachable re-validates every stored init→n path until one passes
// the strict check.
func provenReachable(tpl *ta.Template, table *Table, init, n string, o *options) (bool, error) {
	for length := 0; length <= table.maxLen; length++ {
		for _, p := range table.Paths(init, n, length) {
			res, err := realize.Realizable(tpl.Context, p,
				realize.WithPathValidation(),
				realize.WithStaticThresholds(),
				realize.WithSolver(o.solver),
			)
			if err != nil {
				return false, err
			}
			if res.Realizable() {
				return true, nil
			}
		}
	}
	return false, nil
}

// FurthestReachable walks backward from the target set over reversed
// edges and returns the frontier of nearest reachable ancestors: the
// first reachable-tagged locations met on any backward branch. Expansion
// stops as soon as the current wave contains a reachable location.
//
// Used as a "nearest reachable dominator" query to prune searches toward
// targets that are not themselves reachable within the table's bound.
func FurthestReachable(tpl *ta.Template, targets []string, table *Table, opts ...Option) ([]string, error) {
	if tpl == nil {
		return nil, ErrNilTemplate
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tags, err := Reachable(tpl, table, opts...)
	if err != nil {
		return nil, err
	}

	wave := make([]string, 0, len(targets))
	enqueued := make(map[string]struct{}, len(targets))
	for _, id := range targets {
		if _, ok := tags[id]; !ok {
			return nil, fmt.Errorf("%w: target %q", ta.ErrLocationNotFound, id)
		}
		if _, dup := enqueued[id]; !dup {
			enqueued[id] = struct{}{}
			wave = append(wave, id)
		}
	}

	found := false
	frontier := make(map[string]struct{})
	for len(wave) > 0 && !found {
		var next []string
		for _, n := range wave {
			if err = checkDone(o.ctx); err != nil {
				return nil, err
			}
			if tags[n] {
				found = true
				frontier[n] = struct{}{}
			}
			// Once any reachable location is found, the remaining wave is
			// still scanned for peers but no branch expands further.
			if found {
				continue
			}
			for _, pred := range tpl.Graph.Predecessors(n) {
				if _, dup := enqueued[pred]; !dup {
					enqueued[pred] = struct{}{}
					next = append(next, pred)
				}
			}
		}
		wave = next
	}

	out := make([]string, 0, len(frontier))
	for id := range frontier {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
