// Package reach enumerates semi-realizable paths of bounded length
// through a timed-automaton template and answers reachability queries
// over the resulting table.
//
// A path is semi-realizable when it is realizable under free (≥ 0)
// initial clock valuations. SemiRealizablePaths builds a dynamic-
// programming table DP[i][j][k] of all semi-realizable paths of length
// exactly k from location i to location j, bottom-up by concatenating
// sub-paths and re-checking realizability. The table is a
// necessary-condition filter: Reachable re-validates stored paths with
// the stricter default (zero initial clocks, validated adjacency) before
// declaring a location reachable.
//
// Lengths are a genuine dependency and are processed in increasing
// order; within one length the build is embarrassingly parallel and
// WithWorkers partitions it by start location, one writer per table row.
package reach
