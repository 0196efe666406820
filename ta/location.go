package ta

// Location is a node of the template graph: a named (or anonymous)
// location with an optional invariant, or a branch point.
type Location struct {
	// ID uniquely identifies the node within its template, e.g. "id3".
	ID string

	// Name is the display name used for path construction by name.
	// Branch points and anonymous locations have none.
	Name string

	// Invariant is the conjunction of simple constraints that must hold
	// while control resides here. Nil when absent.
	Invariant []*Constraint

	// Branch marks branch points, which carry no name and no invariant.
	Branch bool
}

// NewLocation builds a plain location. inv may be nil.
func NewLocation(id, name string, inv []*Constraint) *Location {
	return &Location{ID: id, Name: name, Invariant: inv}
}

// NewBranchPoint builds a branch point node.
func NewBranchPoint(id string) *Location {
	return &Location{ID: id, Branch: true}
}

// Constraints returns the invariant constraints, empty when absent.
func (l *Location) Constraints() []*Constraint {
	return l.Invariant
}
