package relax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/problem"
)

func asn(v problem.VarID, val problem.Val) problem.Assignment {
	return problem.Assignment{Var: v, Val: val}
}

func parallelProblem(t *testing.T) *problem.Problem {
	t.Helper()
	v0, _ := problem.NewVar("v0", 2, nil)
	v1, _ := problem.NewVar("v1", 2, nil)
	v2, _ := problem.NewVar("v2", 2, nil)
	empty, _ := problem.NewPartialState()
	effA, _ := problem.NewPartialState(asn(0, 1))
	effB, _ := problem.NewPartialState(asn(1, 1))
	preC, _ := problem.NewPartialState(asn(0, 1), asn(1, 1))
	effC, _ := problem.NewPartialState(asn(2, 1))
	goal, _ := problem.NewPartialState(asn(2, 1))
	ops := []problem.Operator{
		{Name: "A", Cost: 3, Pre: empty, Eff: effA},
		{Name: "B", Cost: 5, Pre: empty, Eff: effB},
		{Name: "C", Cost: 1, Pre: preC, Eff: effC},
	}
	p, err := problem.New([]problem.Var{v0, v1, v2}, problem.NewState([]problem.Val{0, 0, 0}), goal, ops, nil)
	require.NoError(t, err)
	return p
}

func TestEngine_MaxIsNoMoreThanAdd(t *testing.T) {
	p := parallelProblem(t)
	cr, err := factref.Build(p)
	require.NoError(t, err)

	hmax, err := New(cr, Max)
	require.NoError(t, err)
	hadd, err := New(cr, Add)
	require.NoError(t, err)

	rmax, err := hmax.Evaluate(p.Initial)
	require.NoError(t, err)
	radd, err := hadd.Evaluate(p.Initial)
	require.NoError(t, err)

	require.Equal(t, int64(6), rmax.Value) // max(3,5)+1
	require.Equal(t, int64(9), radd.Value) // 3+5+1
	require.LessOrEqual(t, rmax.Value, radd.Value)
}

func TestEngine_FFReturnsPreferredOpsApplicableSubset(t *testing.T) {
	p := parallelProblem(t)
	cr, err := factref.Build(p)
	require.NoError(t, err)

	hff, err := New(cr, FF)
	require.NoError(t, err)
	r, err := hff.Evaluate(p.Initial)
	require.NoError(t, err)

	require.Equal(t, int64(9), r.Value)
	require.True(t, hff.MayReturnPreferredOps())
	require.NotEmpty(t, r.PreferredOps)
	for _, o := range r.PreferredOps {
		require.True(t, p.Ops[o].IsApplicable(p.Initial))
	}
}

func TestEngine_DeadEndWhenGoalUnreachable(t *testing.T) {
	v0, _ := problem.NewVar("v0", 2, nil)
	empty, _ := problem.NewPartialState()
	goal, _ := problem.NewPartialState(asn(0, 1))
	p, err := problem.New([]problem.Var{v0}, problem.NewState([]problem.Val{0}), goal, nil, nil)
	require.NoError(t, err)
	_ = empty

	cr, err := factref.Build(p)
	require.NoError(t, err)
	h, err := New(cr, Max)
	require.NoError(t, err)
	r, err := h.Evaluate(p.Initial)
	require.NoError(t, err)
	require.Equal(t, heuristic.DeadEnd, r.Value)
}

func TestEngine_RejectsUnknownMode(t *testing.T) {
	p := parallelProblem(t)
	cr, err := factref.Build(p)
	require.NoError(t, err)
	_, err = New(cr, Mode(99))
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestGoalCount_CountsUnsatisfiedPairs(t *testing.T) {
	p := parallelProblem(t)
	gc := NewGoalCount(p.Goal)
	r, err := gc.Evaluate(p.Initial)
	require.NoError(t, err)
	require.Equal(t, int64(1), r.Value)

	r2, err := gc.Evaluate(problem.NewState([]problem.Val{1, 1, 1}))
	require.NoError(t, err)
	require.Equal(t, int64(0), r2.Value)
}
