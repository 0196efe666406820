package ta

// Transition is a directed edge of the template graph. Parallel
// transitions between the same pair of locations are allowed; Graph
// assigns each transition a unique ID equal to its insertion position,
// matching the file order of the source model.
type Transition struct {
	// ID is the insertion index assigned by Graph.AddTransition.
	ID int

	// Source and Target reference location IDs.
	Source, Target string

	// Guard is the conjunction of simple constraints that must hold at
	// the instant the transition is taken. Nil when absent.
	Guard []*Constraint

	// Updates are the assignments executed when the transition is taken,
	// left to right. Clock resets are Updates with Reset set.
	Updates []*Update
}

// NewTransition builds a transition between two location IDs.
// guard and updates may be nil. The ID is assigned on insertion.
func NewTransition(source, target string, guard []*Constraint, updates []*Update) *Transition {
	return &Transition{ID: -1, Source: source, Target: target, Guard: guard, Updates: updates}
}

// Constraints returns the guard constraints, empty when absent.
func (t *Transition) Constraints() []*Constraint {
	return t.Guard
}

// Resets returns the clocks reset by this transition, deduplicated,
// in label order.
func (t *Transition) Resets() []string {
	var out []string
	seen := make(map[string]struct{}, len(t.Updates))
	for _, u := range t.Updates {
		if !u.Reset {
			continue
		}
		if _, dup := seen[u.Target]; dup {
			continue
		}
		seen[u.Target] = struct{}{}
		out = append(out, u.Target)
	}
	return out
}

// DataUpdates returns the non-reset updates, in label order.
func (t *Transition) DataUpdates() []*Update {
	var out []*Update
	for _, u := range t.Updates {
		if !u.Reset {
			out = append(out, u)
		}
	}
	return out
}
