// Package succgen implements the successor generator (component C3): a
// match tree built over a variable order, answering two kinds of queries --
// "every operator applicable in this total state" (used by the search
// drivers to expand a node) and "every operator whose precondition is a
// subset of this partial state".
//
// Grounded on the classic match-tree successor generator (as used by Fast
// Downward, referenced in original_source/src/problem_fd.c) and, for the
// explicit queue/stack traversal style, graph/algorithms/bfs.go.
package succgen
