package problem

// State is a total assignment of every variable in a Problem. Index i holds
// the value of VarID(i). States are produced and owned by package statepool;
// Problem only defines their shape and the Apply semantics.
type State struct {
	vals []Val
}

// NewState wraps vals as a State without copying (callers must not mutate
// vals afterwards; use Clone if you need to keep writing to the slice).
func NewState(vals []Val) State { return State{vals: vals} }

// Get returns the value of variable v and whether v is in range.
func (s State) Get(v VarID) (Val, bool) {
	if int(v) < 0 || int(v) >= len(s.vals) {
		return 0, false
	}
	return s.vals[v], true
}

// Len returns the number of variables assigned by this state.
func (s State) Len() int { return len(s.vals) }

// Vals exposes the underlying slice read-only; callers must not mutate it.
func (s State) Vals() []Val { return s.vals }

// Clone returns a deep copy, safe to mutate.
func (s State) Clone() State {
	return State{vals: append([]Val(nil), s.vals...)}
}

// withAssignments returns a clone of s with each (var, val) pair in eff applied.
func withAssignments(s State, eff PartialState) State {
	out := s.Clone()
	for _, a := range eff.assigns {
		out.vals[a.Var] = a.Val
	}
	return out
}
