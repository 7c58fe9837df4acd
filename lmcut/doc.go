// Package lmcut implements LM-Cut (component C7): an admissible heuristic
// that repeatedly extracts a disjunctive-action landmark from the
// hmax-justification graph and deducts its cost, summing deducted costs
// until the relaxed goal is free (hmax == 0). Local and Cached wrap the base
// Engine with incremental reuse of a search node's parent landmarks; Local
// recomputes them per expansion, Cached keeps them in package landmark's
// per-state cache.
//
// Grounded on original_source/src/heur_lm_cut.c: hMaxFull's forward
// propagation with an argmax-precondition "critical supporter" per operator,
// markGoalZone's backward zero-cost-edge traversal, and findCut/applyCutCost
// cost deduction loop.
package lmcut
