package problem

import "fmt"

// VarID identifies a finite-domain variable by its position in Problem.Vars.
type VarID int

// Val is a value of a finite-domain variable, in [0, Var.Range).
type Val int

// Var is a finite-domain variable: a name, a range r >= 1 (values 0..r-1),
// and an optional per-value privacy flag. Private values are excluded from
// the fact-id space built by package factref.
type Var struct {
	Name    string
	Range   int
	private []bool // len == Range when non-nil; private[val] == true hides it
}

// NewVar constructs a Var, validating that Range >= 1 and that, when
// supplied, private has exactly Range entries.
//
// Complexity: O(1) time and space (aside from copying private).
func NewVar(name string, rng int, private []bool) (Var, error) {
	if rng < 1 {
		return Var{}, fmt.Errorf("problem: NewVar(%q): range=%d: %w", name, rng, ErrInvalidRange)
	}
	if private != nil && len(private) != rng {
		return Var{}, fmt.Errorf("problem: NewVar(%q): private flags len=%d != range=%d: %w",
			name, len(private), rng, ErrInvalidValue)
	}
	v := Var{Name: name, Range: rng}
	if private != nil {
		v.private = append([]bool(nil), private...)
	}
	return v, nil
}

// IsPrivate reports whether val is flagged private for this variable.
// Complexity: O(1).
func (v Var) IsPrivate(val Val) bool {
	if v.private == nil {
		return false
	}
	if int(val) < 0 || int(val) >= len(v.private) {
		return false
	}
	return v.private[val]
}

// InRange reports whether val lies within [0, Range).
func (v Var) InRange(val Val) bool {
	return val >= 0 && int(val) < v.Range
}
