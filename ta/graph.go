package ta

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrEmptyLocationID indicates a location with an empty ID.
	ErrEmptyLocationID = errors.New("ta: location ID is empty")

	// ErrDuplicateLocation indicates a location whose ID or name is taken.
	ErrDuplicateLocation = errors.New("ta: duplicate location")

	// ErrLocationNotFound indicates an operation referenced an unknown location.
	ErrLocationNotFound = errors.New("ta: location not found")

	// ErrTransitionNotFound indicates an out-of-range transition index.
	ErrTransitionNotFound = errors.New("ta: transition not found")
)

// Graph is the directed multigraph of one template: locations and branch
// points as nodes, transitions as edges.
//
// Insertion order is preserved for both nodes and edges and all accessors
// are deterministic. Mutation and querying are guarded by an RWMutex so a
// fully built graph can be read from concurrent analyses.
type Graph struct {
	mu sync.RWMutex

	initial string

	locs  map[string]*Location
	order []string
	named map[string]*Location

	// trans is insertion-ordered; Transition.ID == index.
	trans []*Transition

	// adjacency: out[src][dst] and in[dst][src] list transition indices.
	out map[string]map[string][]int
	in  map[string]map[string][]int
}

// NewGraph creates an empty template graph.
func NewGraph() *Graph {
	return &Graph{
		locs:  make(map[string]*Location),
		named: make(map[string]*Location),
		out:   make(map[string]map[string][]int),
		in:    make(map[string]map[string][]int),
	}
}

// AddLocation inserts a location or branch point. Named locations are also
// registered for name-based lookup; names must be unique within a template.
func (g *Graph) AddLocation(l *Location) error {
	if l == nil || l.ID == "" {
		return ErrEmptyLocationID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.locs[l.ID]; dup {
		return fmt.Errorf("%w: id %q", ErrDuplicateLocation, l.ID)
	}
	if l.Name != "" {
		if _, dup := g.named[l.Name]; dup {
			return fmt.Errorf("%w: name %q", ErrDuplicateLocation, l.Name)
		}
		g.named[l.Name] = l
	}
	g.locs[l.ID] = l
	g.order = append(g.order, l.ID)
	return nil
}

// AddTransition inserts a transition, assigns its ID, and indexes it in
// the adjacency maps. Both endpoints must already exist.
func (g *Graph) AddTransition(t *Transition) error {
	if t == nil {
		return ErrTransitionNotFound
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.locs[t.Source]; !ok {
		return fmt.Errorf("%w: source %q", ErrLocationNotFound, t.Source)
	}
	if _, ok := g.locs[t.Target]; !ok {
		return fmt.Errorf("%w: target %q", ErrLocationNotFound, t.Target)
	}

	t.ID = len(g.trans)
	g.trans = append(g.trans, t)

	if g.out[t.Source] == nil {
		g.out[t.Source] = make(map[string][]int)
	}
	g.out[t.Source][t.Target] = append(g.out[t.Source][t.Target], t.ID)
	if g.in[t.Target] == nil {
		g.in[t.Target] = make(map[string][]int)
	}
	g.in[t.Target][t.Source] = append(g.in[t.Target][t.Source], t.ID)
	return nil
}

// SetInitial designates the initial location by ID.
func (g *Graph) SetInitial(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.locs[id]; !ok {
		return fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}
	g.initial = id
	return nil
}

// Initial returns the initial location ID, empty if never set.
func (g *Graph) Initial() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.initial
}

// Location returns the node with the given ID.
func (g *Graph) Location(id string) (*Location, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l, ok := g.locs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}
	return l, nil
}

// LocationByName returns the named location registered under name.
func (g *Graph) LocationByName(name string) (*Location, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	l, ok := g.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: name %q", ErrLocationNotFound, name)
	}
	return l, nil
}

// Locations returns all nodes in insertion order.
func (g *Graph) Locations() []*Location {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Location, len(g.order))
	for i, id := range g.order {
		out[i] = g.locs[id]
	}
	return out
}

// Transition returns the transition at the given insertion index.
func (g *Graph) Transition(i int) (*Transition, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.trans) {
		return nil, fmt.Errorf("%w: index %d", ErrTransitionNotFound, i)
	}
	return g.trans[i], nil
}

// Transitions returns all transitions in insertion (file) order.
func (g *Graph) Transitions() []*Transition {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Transition, len(g.trans))
	copy(out, g.trans)
	return out
}

// TransitionsBetween returns every transition src→dst in insertion order.
// The result is empty, not an error, when none exist.
func (g *Graph) TransitionsBetween(src, dst string) []*Transition {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := g.out[src][dst]
	out := make([]*Transition, len(ids))
	for i, id := range ids {
		out[i] = g.trans[id]
	}
	return out
}

// Successors returns the distinct targets of transitions out of id,
// in ascending ID order.
func (g *Graph) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedKeys(g.out[id])
}

// Predecessors returns the distinct sources of transitions into id,
// in ascending ID order.
func (g *Graph) Predecessors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sortedKeys(g.in[id])
}

func sortedKeys(m map[string][]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
