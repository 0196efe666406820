package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/ntago/ntago/lp"
	"github.com/ntago/ntago/paths"
)

// Sentinel errors for table construction and queries.
var (
	// ErrNilTemplate is returned when no template is supplied.
	ErrNilTemplate = errors.New("reach: template is nil")

	// ErrMaxLength is returned when the path length bound is < 1.
	ErrMaxLength = errors.New("reach: max length must be >= 1")

	// ErrNoInitial is returned when the template has no initial location.
	ErrNoInitial = errors.New("reach: template has no initial location")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures table construction and reachability queries.
// Invalid options are recorded and surfaced as ErrOptionViolation on
// invocation.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
	solver  lp.Solver
	err     error
}

func defaultOptions() options {
	return options{ctx: context.Background(), workers: 1, solver: &lp.Simplex{}}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers bounds the number of goroutines building one path length.
//
//	n > 0: up to n concurrent start locations
//	n == 0: explicit sequential build
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.workers = 1
		default:
			o.workers = n
		}
	}
}

// WithSolver decides the per-path feasibility checks with a custom backend.
func WithSolver(s lp.Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// cell stores the paths of one (from, to) pair, bucketed by exact length,
// with a key set for structural dedupe.
type cell struct {
	byLen [][]*paths.Path
	keys  []map[string]struct{}
}

func newCell(maxLen int) *cell {
	return &cell{
		byLen: make([][]*paths.Path, maxLen+1),
		keys:  make([]map[string]struct{}, maxLen+1),
	}
}

// seen reports whether an identical path (by location/transition sequence)
// is already recorded at the given length.
func (c *cell) seen(length int, key string) bool {
	_, ok := c.keys[length][key]
	return ok
}

func (c *cell) add(length int, key string, p *paths.Path) {
	if c.keys[length] == nil {
		c.keys[length] = make(map[string]struct{})
	}
	c.keys[length][key] = struct{}{}
	c.byLen[length] = append(c.byLen[length], p)
}

// Table is the DP table of semi-realizable paths: Paths(i, j, k) lists
// every recorded path of length exactly k (in transitions) from location
// i to location j. DP[i][i][0] always holds the degenerate
// single-location path.
type Table struct {
	maxLen int
	ids    []string
	cells  map[string]map[string]*cell
}

// MaxLength returns the table's path length bound.
func (t *Table) MaxLength() int { return t.maxLen }

// LocationIDs returns the location IDs covered by the table, in the
// template's insertion order.
func (t *Table) LocationIDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Paths returns the recorded paths from location from to location to of
// exactly the given length. The result is a copy; unknown locations or
// out-of-range lengths yield nil.
func (t *Table) Paths(from, to string, length int) []*paths.Path {
	if length < 0 || length > t.maxLen {
		return nil
	}
	c, ok := t.cells[from][to]
	if !ok {
		return nil
	}
	out := make([]*paths.Path, len(c.byLen[length]))
	copy(out, c.byLen[length])
	return out
}
