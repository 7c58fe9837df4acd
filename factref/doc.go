// Package factref builds the fact identifier and cross-reference table
// (component C5): the layer between an immutable problem.Problem and the
// relaxation-heuristic engines, assigning every reachable (var, val) pair a
// dense FactID, expanding conditional effects into virtual operators, and
// indexing op_pre/op_eff/fact_pre/fact_eff for O(1) adjacency walks.
//
// Grounded on original_source/src/lms/lm_fact_cross_ref.c's prefix-sum
// pairing-fact table and the conditional-effect expansion described by
// original_source/src/heur_relax.c; the functional-options construction
// style follows the teacher's builder package.
package factref
