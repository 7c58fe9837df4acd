// Package problem defines the immutable SAS⁺ problem value object consumed
// by the rest of the planning engine: finite-domain variables, partial
// states, grounded operators with optional conditional effects, and the
// total problem (variables, initial state, goal, operators).
//
// What & Why: every other component (successor generation, the fact/op
// cross-reference, the relaxation heuristics, the search drivers) borrows a
// *Problem immutably. Centralizing construction-time validation here means
// every consumer can assume a problem is well-formed and never needs to
// re-check precondition/effect shapes at use time.
package problem
