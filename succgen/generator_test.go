package succgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnesville/fdplan/problem"
)

func mkVars(ranges ...int) []problem.Var {
	vs := make([]problem.Var, len(ranges))
	for i, r := range ranges {
		v, err := problem.NewVar("v", r, nil)
		if err != nil {
			panic(err)
		}
		vs[i] = v
	}
	return vs
}

func asn(v problem.VarID, val problem.Val) problem.Assignment {
	return problem.Assignment{Var: v, Val: val}
}

func mkProblem(t *testing.T, vars []problem.Var, ops []problem.Operator) *problem.Problem {
	t.Helper()
	initial := problem.NewState(make([]problem.Val, len(vars)))
	goal, err := problem.NewPartialState()
	require.NoError(t, err)
	p, err := problem.New(vars, initial, goal, ops, nil)
	require.NoError(t, err)
	return p
}

func TestGenerator_AppliesOnlyMatchingOps(t *testing.T) {
	vars := mkVars(2, 2, 2)
	pre0, _ := problem.NewPartialState(asn(0, 1))
	pre1, _ := problem.NewPartialState(asn(1, 1))
	eff, _ := problem.NewPartialState(asn(2, 1))
	ops := []problem.Operator{
		{Name: "a", Cost: 1, Pre: pre0, Eff: eff},
		{Name: "b", Cost: 1, Pre: pre1, Eff: eff},
	}
	p := mkProblem(t, vars, ops)
	gen, err := New(p, nil)
	require.NoError(t, err)

	s := problem.NewState([]problem.Val{1, 0, 0})
	applicable := gen.Applicable(s)
	require.Len(t, applicable, 1)
	require.Equal(t, problem.OpID(0), applicable[0])
}

func TestGenerator_NoPreconditionOpAlwaysApplicable(t *testing.T) {
	vars := mkVars(2, 2)
	eff, _ := problem.NewPartialState(asn(1, 1))
	empty, _ := problem.NewPartialState()
	ops := []problem.Operator{{Name: "noop", Cost: 1, Pre: empty, Eff: eff}}
	p := mkProblem(t, vars, ops)
	gen, err := New(p, nil)
	require.NoError(t, err)

	s0 := problem.NewState([]problem.Val{0, 0})
	s1 := problem.NewState([]problem.Val{1, 0})
	require.Len(t, gen.Applicable(s0), 1)
	require.Len(t, gen.Applicable(s1), 1)
}

func TestGenerator_ApplicableInPartial_SubsetOnly(t *testing.T) {
	vars := mkVars(2, 2)
	pre, _ := problem.NewPartialState(asn(0, 1))
	eff, _ := problem.NewPartialState(asn(1, 1))
	ops := []problem.Operator{{Name: "a", Cost: 1, Pre: pre, Eff: eff}}
	p := mkProblem(t, vars, ops)
	gen, err := New(p, nil)
	require.NoError(t, err)

	full, _ := problem.NewPartialState(asn(0, 1), asn(1, 0))
	require.Len(t, gen.ApplicableInPartial(full), 1)

	unrelated, _ := problem.NewPartialState(asn(1, 0))
	require.Empty(t, gen.ApplicableInPartial(unrelated))
}

func TestDefaultOrder_MostReferencedFirst(t *testing.T) {
	vars := mkVars(2, 2, 2)
	pre0, _ := problem.NewPartialState(asn(1, 1))
	pre1, _ := problem.NewPartialState(asn(1, 0))
	eff, _ := problem.NewPartialState(asn(0, 1))
	ops := []problem.Operator{
		{Name: "a", Cost: 1, Pre: pre0, Eff: eff},
		{Name: "b", Cost: 1, Pre: pre1, Eff: eff},
	}
	p := mkProblem(t, vars, ops)
	order := DefaultOrder(p)
	require.Equal(t, problem.VarID(1), order[0])
	require.Len(t, order, 3)
}
