// Package planner is the orchestration facade (component C14): it wires a
// raw problem value object through the fact/operator cross-reference, a
// chosen heuristic, the successor generator, and a search driver, and
// exposes the flat Driver API a caller embeds an event loop around (New,
// Run, Abort, StateHeuristic, LoadState, LoadNode).
//
// Grounded on original_source/plan/search.h's top-level run-the-search API
// shape: one constructor taking a problem and a heuristic selection, one
// blocking Run, one cross-thread Abort.
package planner
