// Package paths represents finite paths through a timed-automaton
// template: alternating sequences [location, transition, location, …]
// of odd element count.
//
// It provides structural validation (Exists), construction from the
// compact name/index form (Convert), slicing (Subpath), and the
// concatenation utilities used by the bounded-length reachability search
// (Splice, Concatenate).
//
// Paths are transient values built per analysis query; they hold pointers
// into their template's graph and are never persisted.
package paths
