package problem

import "fmt"

// Problem is the immutable SAS⁺ instance borrowed (read-only) by every
// downstream component: variables, the initial total state, the goal
// partial state, and the grounded operators (their slice order defines
// OpID, per the external-interfaces contract). VarOrder, if non-empty, is
// the variable order the successor generator should build its match tree
// over; if empty, succgen derives its own order.
type Problem struct {
	Vars     []Var
	Initial  State
	Goal     PartialState
	Ops      []Operator
	VarOrder []VarID
}

// New validates and constructs a Problem. It is the single point where
// InvalidProblem (spec §7) construction failures surface; every other
// component may then assume Problem is well-formed.
//
// Validates: variable ranges, initial-state shape and ranges, goal variable
// ids and ranges, operator costs, operator precondition/effect variable ids
// and ranges, and that no two effects (unconditional or conditional) can
// write the same variable.
func New(vars []Var, initial State, goal PartialState, ops []Operator, varOrder []VarID) (*Problem, error) {
	if initial.Len() != len(vars) {
		return nil, fmt.Errorf("problem: initial has %d vars, want %d: %w",
			initial.Len(), len(vars), ErrWrongStateSize)
	}
	for i, v := range vars {
		val, _ := initial.Get(VarID(i))
		if !v.InRange(val) {
			return nil, fmt.Errorf("problem: initial[%d]=%d out of range(%d): %w",
				i, val, v.Range, ErrInvalidValue)
		}
	}
	if err := validatePartialState(vars, goal); err != nil {
		return nil, fmt.Errorf("problem: goal: %w", err)
	}
	for i := range ops {
		ops[i].ID = OpID(i)
		if err := validateOperator(vars, ops[i]); err != nil {
			return nil, fmt.Errorf("problem: op[%d]=%q: %w", i, ops[i].Name, err)
		}
	}
	for _, v := range varOrder {
		if int(v) < 0 || int(v) >= len(vars) {
			return nil, fmt.Errorf("problem: var_order entry=%d: %w", v, ErrUnknownVar)
		}
	}
	return &Problem{
		Vars:     vars,
		Initial:  initial,
		Goal:     goal,
		Ops:      ops,
		VarOrder: append([]VarID(nil), varOrder...),
	}, nil
}

// IsGoal reports whether s satisfies the problem's goal.
func (p *Problem) IsGoal(s State) bool { return p.Goal.IsSubsetOf(s) }

func validatePartialState(vars []Var, ps PartialState) error {
	for _, a := range ps.assigns {
		if int(a.Var) < 0 || int(a.Var) >= len(vars) {
			return fmt.Errorf("var=%d: %w", a.Var, ErrUnknownVar)
		}
		if !vars[a.Var].InRange(a.Val) {
			return fmt.Errorf("var=%d val=%d: %w", a.Var, a.Val, ErrInvalidValue)
		}
	}
	return nil
}

func validateOperator(vars []Var, op Operator) error {
	if op.Cost < 0 {
		return fmt.Errorf("cost=%d: %w", op.Cost, ErrNegativeCost)
	}
	if err := validatePartialState(vars, op.Pre); err != nil {
		return fmt.Errorf("pre: %w", err)
	}
	if err := validatePartialState(vars, op.Eff); err != nil {
		return fmt.Errorf("eff: %w", err)
	}
	written := make(map[VarID]bool, op.Eff.Len())
	for _, a := range op.Eff.assigns {
		written[a.Var] = true
	}
	for ci, ce := range op.CondEff {
		if err := validatePartialState(vars, ce.Pre); err != nil {
			return fmt.Errorf("cond_eff[%d].pre: %w", ci, err)
		}
		if err := validatePartialState(vars, ce.Eff); err != nil {
			return fmt.Errorf("cond_eff[%d].eff: %w", ci, err)
		}
		for _, a := range ce.Eff.assigns {
			if written[a.Var] {
				return fmt.Errorf("cond_eff[%d] var=%d: %w", ci, a.Var, ErrConflictingEffects)
			}
			written[a.Var] = true
		}
	}
	return nil
}
