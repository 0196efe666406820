package reach_test

import (
	"fmt"

	"github.com/ntago/ntago/reach"
	"github.com/ntago/ntago/ta"
)

// ExampleReachable builds a three-location chain whose last hop demands
// more time than the middle invariant allows, and prints which locations
// survive the bounded reachability analysis.
func ExampleReachable() {
	ctx, _ := ta.ParseDeclarations("clock x;")
	tpl := ta.NewTemplate("chain", ctx)
	tpl.AddLocation("id0", "start", "")
	tpl.AddLocation("id1", "mid", "x <= 3")
	tpl.AddLocation("id2", "end", "")
	tpl.AddTransition("id0", "id1", "", "")
	tpl.AddTransition("id1", "id2", "x >= 5", "")

	table, _ := reach.SemiRealizablePaths(tpl, 2)
	tags, _ := reach.Reachable(tpl, table)
	for _, id := range table.LocationIDs() {
		fmt.Println(id, tags[id])
	}

	// Output:
	// id0 true
	// id1 true
	// id2 false
}

// ExampleFurthestReachable asks where a search toward the blocked "end"
// location should stop.
func ExampleFurthestReachable() {
	ctx, _ := ta.ParseDeclarations("clock x;")
	tpl := ta.NewTemplate("chain", ctx)
	tpl.AddLocation("id0", "start", "")
	tpl.AddLocation("id1", "mid", "x <= 3")
	tpl.AddLocation("id2", "end", "")
	tpl.AddTransition("id0", "id1", "", "")
	tpl.AddTransition("id1", "id2", "x >= 5", "")

	table, _ := reach.SemiRealizablePaths(tpl, 2)
	frontier, _ := reach.FurthestReachable(tpl, []string{"id2"}, table)
	fmt.Println(frontier)

	// Output:
	// [id1]
}
