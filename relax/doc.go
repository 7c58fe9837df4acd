// Package relax implements the shared delete-relaxation evaluation core
// (component C6): h^max and h^add share one forward-propagation loop that
// differs only in how a virtual operator combines its precondition facts'
// values (max vs sum); h^FF reuses the h^max-mode propagation to pick
// supporters, then extracts a relaxed plan by a backward DFS over them. The
// supplementary GoalCount heuristic (no relaxation at all) lives alongside
// it for cheap early-search guidance.
//
// Grounded on original_source/src/heur_relax.c (the shared propagation loop
// and the max/add combine split) and original_source/src/heur_goalcount.c.
package relax
