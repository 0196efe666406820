// Package ta models a single UPPAAL-style timed-automaton template:
// a declaration context (clocks, constants, integer variables), the
// expression forms attached to the model (clock constraints, data
// constraints, updates and clock resets), and a directed multigraph of
// locations joined by transitions.
//
// The package is the data layer consumed by realize (path realizability)
// and reach (bounded-length reachability). It performs no file or XML I/O;
// model builders feed it parsed declaration and label text.
//
// Identifier categories are disjoint: a name is exactly one of clock,
// constant, or variable. ParseDeclarations enforces this with ErrRedeclared.
package ta
