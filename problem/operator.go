package problem

import "fmt"

// ConditionalEffect is a (precondition, effect) pair nested inside an
// Operator. Its precondition is evaluated against the *pre-application*
// state; its effect is applied to the *post-application* state alongside the
// operator's unconditional effect.
type ConditionalEffect struct {
	Pre PartialState
	Eff PartialState
}

// OpID is the global, construction-order operator id assigned by
// Problem.New (op order defines OpID, per the external problem-input
// contract).
type OpID int

// Operator is an immutable grounded action: name, non-negative cost, a
// precondition partial state, an unconditional effect partial state, and
// zero or more conditional effects, each with its own precondition/effect.
type Operator struct {
	ID      OpID
	Name    string
	Cost    int64
	Pre     PartialState
	Eff     PartialState
	CondEff []ConditionalEffect
}

// IsApplicable reports whether op.Pre is a subset of s.
func (op Operator) IsApplicable(s State) bool {
	return op.Pre.IsSubsetOf(s)
}

// Apply applies op to s, returning the successor state. Semantics (data
// model §3): the unconditional effect is applied first; then, for each
// conditional effect whose own precondition was satisfied by the
// *pre-application* state s, its effect is applied to the result.
// Construction-time validation (validateOperator) guarantees the
// unconditional effect and every conditional effect touch pairwise-disjoint
// variable sets, so effect application order among conditional effects never
// matters.
//
// Apply does not check applicability; callers must call IsApplicable first
// (the successor generator only ever calls Apply on operators it already
// knows are applicable). Apply on an inapplicable operator still produces a
// state -- it is the caller's contract to have checked IsApplicable.
func (op Operator) Apply(s State) State {
	out := withAssignments(s, op.Eff)
	for _, ce := range op.CondEff {
		if ce.Pre.IsSubsetOf(s) {
			for _, a := range ce.Eff.assigns {
				out.vals[a.Var] = a.Val
			}
		}
	}
	return out
}

// ApplyChecked is Apply preceded by an IsApplicable check, returning
// ErrNotApplicable if op.Pre is not a subset of s.
func (op Operator) ApplyChecked(s State) (State, error) {
	if !op.IsApplicable(s) {
		return State{}, fmt.Errorf("problem: op=%q: %w", op.Name, ErrNotApplicable)
	}
	return op.Apply(s), nil
}
