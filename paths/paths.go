package paths

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ntago/ntago/ta"
)

// Sentinel errors for path construction.
var (
	// ErrShape indicates a sequence that is not a valid alternation of
	// locations and transitions.
	ErrShape = errors.New("paths: malformed path shape")

	// ErrUnknownLocation indicates a compact-form location name with no
	// named location in the template.
	ErrUnknownLocation = errors.New("paths: unknown location name")

	// ErrTransitionIndex indicates a compact-form transition index out of
	// range for the template.
	ErrTransitionIndex = errors.New("paths: transition index out of range")

	// ErrEndpointMismatch indicates a splice whose join locations differ.
	ErrEndpointMismatch = errors.New("paths: splice endpoints do not match")
)

// Path is an alternating [location, transition, …, location] sequence,
// stored as parallel slices with len(locations) == len(transitions)+1.
type Path struct {
	locs  []*ta.Location
	trans []*ta.Transition
}

// New builds a path from its locations and the transitions between them.
// Both slices are copied. Returns ErrShape unless
// len(locs) == len(trans)+1 ≥ 1 with no nil entries.
func New(locs []*ta.Location, trans []*ta.Transition) (*Path, error) {
	if len(locs) != len(trans)+1 {
		return nil, fmt.Errorf("%w: %d locations, %d transitions", ErrShape, len(locs), len(trans))
	}
	for _, l := range locs {
		if l == nil {
			return nil, fmt.Errorf("%w: nil location", ErrShape)
		}
	}
	for _, t := range trans {
		if t == nil {
			return nil, fmt.Errorf("%w: nil transition", ErrShape)
		}
	}
	p := &Path{
		locs:  make([]*ta.Location, len(locs)),
		trans: make([]*ta.Transition, len(trans)),
	}
	copy(p.locs, locs)
	copy(p.trans, trans)
	return p, nil
}

// Single builds the degenerate one-location path.
func Single(l *ta.Location) *Path {
	return &Path{locs: []*ta.Location{l}}
}

// Len returns the alternating-sequence element count, always odd and ≥ 1.
func (p *Path) Len() int { return len(p.locs) + len(p.trans) }

// Segments returns the number of transitions, (Len()-1)/2.
func (p *Path) Segments() int { return len(p.trans) }

// Location returns the i-th location (0-based over locations only).
func (p *Path) Location(i int) *ta.Location { return p.locs[i] }

// Transition returns the i-th transition (0-based over transitions only).
func (p *Path) Transition(i int) *ta.Transition { return p.trans[i] }

// First returns the starting location.
func (p *Path) First() *ta.Location { return p.locs[0] }

// Last returns the final location.
func (p *Path) Last() *ta.Location { return p.locs[len(p.locs)-1] }

// Key returns a canonical encoding of the (location-id, transition-id)
// sequence, suitable for structural-equality dedupe in path sets.
func (p *Path) Key() string {
	var b strings.Builder
	for i, l := range p.locs {
		if i > 0 {
			b.WriteByte('#')
			b.WriteString(strconv.Itoa(p.trans[i-1].ID))
			b.WriteByte('#')
		}
		b.WriteString(l.ID)
	}
	return b.String()
}

// String renders the path with location names where available.
func (p *Path) String() string {
	var b strings.Builder
	for i, l := range p.locs {
		if i > 0 {
			b.WriteString(" -")
			b.WriteString(strconv.Itoa(p.trans[i-1].ID))
			b.WriteString("-> ")
		}
		if l.Name != "" {
			b.WriteString(l.Name)
		} else {
			b.WriteString(l.ID)
		}
	}
	return b.String()
}

// Subpath returns the sub-path spanning location indices [from, to]
// inclusive, with the transitions between them.
func (p *Path) Subpath(from, to int) (*Path, error) {
	if from < 0 || to >= len(p.locs) || from > to {
		return nil, fmt.Errorf("%w: subpath [%d, %d] of %d locations", ErrShape, from, to, len(p.locs))
	}
	return New(p.locs[from:to+1], p.trans[from:to])
}

// Exists reports whether every transition actually runs from its
// preceding location to its following location. This is a pure adjacency
// check on IDs; it does not consult the graph, so paths must be built
// from a single template's transitions.
func Exists(p *Path) bool {
	for i, t := range p.trans {
		if p.locs[i].ID != t.Source || p.locs[i+1].ID != t.Target {
			return false
		}
	}
	return true
}

// Convert builds a path from the compact alternating form
// ["locName", transitionIndex, "locName2", …]: location names at even
// positions, zero-based file-order transition indices at odd positions.
func Convert(tpl *ta.Template, reps []any) (*Path, error) {
	if len(reps)%2 == 0 {
		return nil, fmt.Errorf("%w: even-length compact form", ErrShape)
	}
	locs := make([]*ta.Location, 0, len(reps)/2+1)
	trans := make([]*ta.Transition, 0, len(reps)/2)
	for i, rep := range reps {
		if i%2 == 0 {
			name, ok := rep.(string)
			if !ok {
				return nil, fmt.Errorf("%w: want location name at position %d", ErrShape, i)
			}
			l, err := tpl.Graph.LocationByName(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
			}
			locs = append(locs, l)
			continue
		}
		idx, ok := rep.(int)
		if !ok {
			return nil, fmt.Errorf("%w: want transition index at position %d", ErrShape, i)
		}
		t, err := tpl.Graph.Transition(idx)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrTransitionIndex, idx)
		}
		trans = append(trans, t)
	}
	return New(locs, trans)
}

// Splice joins p1 and p2 at their shared location: p1 must end where p2
// starts, and the duplicate join location is dropped from p1.
func Splice(p1, p2 *Path) (*Path, error) {
	if p1.Last().ID != p2.First().ID {
		return nil, fmt.Errorf("%w: %q vs %q", ErrEndpointMismatch, p1.Last().ID, p2.First().ID)
	}
	locs := make([]*ta.Location, 0, len(p1.locs)-1+len(p2.locs))
	locs = append(locs, p1.locs[:len(p1.locs)-1]...)
	locs = append(locs, p2.locs...)
	trans := make([]*ta.Transition, 0, len(p1.trans)+len(p2.trans))
	trans = append(trans, p1.trans...)
	trans = append(trans, p2.trans...)
	return New(locs, trans)
}

// Concatenate joins p1 and p2 through every transition from p1's last
// location to p2's first location, one combined path per parallel
// transition. Returns an empty slice, not an error, when no such
// transition exists.
func Concatenate(g *ta.Graph, p1, p2 *Path) []*Path {
	between := g.TransitionsBetween(p1.Last().ID, p2.First().ID)
	out := make([]*Path, 0, len(between))
	for _, t := range between {
		locs := make([]*ta.Location, 0, len(p1.locs)+len(p2.locs))
		locs = append(locs, p1.locs...)
		locs = append(locs, p2.locs...)
		trans := make([]*ta.Transition, 0, len(p1.trans)+1+len(p2.trans))
		trans = append(trans, p1.trans...)
		trans = append(trans, t)
		trans = append(trans, p2.trans...)
		joined, err := New(locs, trans)
		if err != nil {
			continue // unreachable: shapes are consistent by construction
		}
		out = append(out, joined)
	}
	return out
}
