package problem

import (
	"fmt"
	"sort"
)

// Assignment pairs a variable id with a value.
type Assignment struct {
	Var VarID
	Val Val
}

// PartialState is an immutable mapping from variable id to value, defined on
// at most one value per variable. Its canonical form is a sequence of
// Assignments sorted ascending by Var. An empty PartialState matches every
// total state (it is the identity for IsSubsetOf).
type PartialState struct {
	assigns []Assignment
}

// NewPartialState builds a canonical PartialState from the given pairs,
// rejecting duplicate variables.
//
// Complexity: O(n log n) time, O(n) space for n pairs.
func NewPartialState(pairs ...Assignment) (PartialState, error) {
	cp := append([]Assignment(nil), pairs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Var < cp[j].Var })
	for i := 1; i < len(cp); i++ {
		if cp[i].Var == cp[i-1].Var {
			return PartialState{}, fmt.Errorf("problem: var=%d: %w", cp[i].Var, ErrDuplicateVar)
		}
	}
	return PartialState{assigns: cp}, nil
}

// Len returns the number of variables fixed by this partial state.
func (p PartialState) Len() int { return len(p.assigns) }

// Pairs returns a defensive copy of the canonical (var, val) pairs.
func (p PartialState) Pairs() []Assignment {
	return append([]Assignment(nil), p.assigns...)
}

// Get returns the value assigned to v, if any.
func (p PartialState) Get(v VarID) (Val, bool) {
	i := sort.Search(len(p.assigns), func(i int) bool { return p.assigns[i].Var >= v })
	if i < len(p.assigns) && p.assigns[i].Var == v {
		return p.assigns[i].Val, true
	}
	return 0, false
}

// IsSubsetOf reports whether every (var, val) pair in p also holds in s.
// An empty PartialState is trivially a subset of any state.
//
// Complexity: O(len(p)) given O(1) State.Get.
func (p PartialState) IsSubsetOf(s State) bool {
	for _, a := range p.assigns {
		if got, ok := s.Get(a.Var); !ok || got != a.Val {
			return false
		}
	}
	return true
}

// IsSubsetOfPartial reports whether every pair in p also holds in other.
func (p PartialState) IsSubsetOfPartial(other PartialState) bool {
	for _, a := range p.assigns {
		v, ok := other.Get(a.Var)
		if !ok || v != a.Val {
			return false
		}
	}
	return true
}
