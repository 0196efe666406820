package ta

// Template is one timed-automaton recipe: a name, the declaration context
// its labels are parsed against, and the location-transition graph.
//
// Owners are passed explicitly where needed; nodes and edges carry no
// back-reference to their template.
type Template struct {
	Name    string
	Context *Context
	Graph   *Graph
}

// NewTemplate creates an empty template over the given context.
func NewTemplate(name string, ctx *Context) *Template {
	if ctx == nil {
		ctx = EmptyContext()
	}
	return &Template{Name: name, Context: ctx, Graph: NewGraph()}
}

// AddLocation parses the invariant label text (empty for none) against the
// template context and inserts the location. The first location added
// becomes the initial location until SetInitial overrides it.
func (t *Template) AddLocation(id, name, invariant string) (*Location, error) {
	var inv []*Constraint
	if invariant != "" {
		var err error
		if inv, err = ParseConstraints(invariant, t.Context); err != nil {
			return nil, err
		}
	}
	l := NewLocation(id, name, inv)
	if err := t.Graph.AddLocation(l); err != nil {
		return nil, err
	}
	if t.Graph.Initial() == "" {
		if err := t.Graph.SetInitial(id); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// AddBranchPoint inserts a branch point node.
func (t *Template) AddBranchPoint(id string) (*Location, error) {
	bp := NewBranchPoint(id)
	if err := t.Graph.AddLocation(bp); err != nil {
		return nil, err
	}
	return bp, nil
}

// AddTransition parses the guard and assignment label texts (empty for
// none) against the template context and inserts the transition.
func (t *Template) AddTransition(source, target, guard, assignment string) (*Transition, error) {
	var gcs []*Constraint
	var ups []*Update
	var err error
	if guard != "" {
		if gcs, err = ParseConstraints(guard, t.Context); err != nil {
			return nil, err
		}
	}
	if assignment != "" {
		if ups, err = ParseUpdates(assignment, t.Context); err != nil {
			return nil, err
		}
	}
	tr := NewTransition(source, target, gcs, ups)
	if err = t.Graph.AddTransition(tr); err != nil {
		return nil, err
	}
	return tr, nil
}
