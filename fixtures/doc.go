// Package fixtures builds small synthetic SAS⁺ problems for use in tests
// and benchmarks across the engine: linear variable chains, independent
// goal sets, and random reachability graphs, configured through functional
// options with an explicit, seedable RNG.
//
// Grounded on builder/options.go's functional-option shape (validate-and-
// panic constructors, WithSeed/WithRand determinism) and
// builder/impl_random_sparse.go's Erdős–Rényi edge-sampling style, adapted
// from graph edges to operator preconditions/effects.
package fixtures
