package realize_test

import (
	"fmt"

	"github.com/ntago/ntago/paths"
	"github.com/ntago/ntago/realize"
	"github.com/ntago/ntago/ta"
)

// ExampleRealizable walks a two-step schedule: wait at least 2 time units,
// reset the clock, then arrive while x is still at most 5.
func ExampleRealizable() {
	ctx, _ := ta.ParseDeclarations("clock x;")
	tpl := ta.NewTemplate("sched", ctx)
	tpl.AddLocation("id0", "off", "")
	tpl.AddLocation("id1", "on", "")
	tpl.AddLocation("id2", "done", "x <= 5")
	tpl.AddTransition("id0", "id1", "x >= 2", "x = 0")
	tpl.AddTransition("id1", "id2", "", "")

	p, _ := paths.Convert(tpl, []any{"off", 0, "on", 1, "done"})
	res, _ := realize.Realizable(ctx, p)
	fmt.Println(res.Outcome)

	// Tightening the arrival guard beyond the invariant breaks it.
	tpl.AddLocation("id3", "late", "x <= 5")
	tpl.AddTransition("id1", "id3", "x >= 6", "")
	p, _ = paths.Convert(tpl, []any{"off", 0, "on", 2, "late"})
	res, _ = realize.Realizable(ctx, p)
	fmt.Println(res.Outcome)

	// Output:
	// feasible
	// infeasible
}

// ExampleRealizable_initialValuations contrasts the default zero-start
// semantics with the free-initial-valuation relaxation.
func ExampleRealizable_initialValuations() {
	ctx, _ := ta.ParseDeclarations("clock x, y;")
	tpl := ta.NewTemplate("relax", ctx)
	tpl.AddLocation("id0", "a", "")
	tpl.AddLocation("id1", "b", "y <= 2")
	tpl.AddTransition("id0", "id1", "x >= 5", "")

	p, _ := paths.Convert(tpl, []any{"a", 0, "b"})

	res, _ := realize.Realizable(ctx, p)
	fmt.Println("zero start:", res.Outcome)

	res, _ = realize.Realizable(ctx, p, realize.WithFreeInitialValuations())
	fmt.Println("free start:", res.Outcome)

	// Output:
	// zero start: infeasible
	// free start: feasible
}
