package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_GoalUnreachableWithoutAllSteps(t *testing.T) {
	p := Chain(4, WithUnitCost())
	require.Len(t, p.Vars, 4)
	require.Len(t, p.Ops, 4)
	require.False(t, p.IsGoal(p.Initial))
}

func TestChain_PanicsOnTooFewVars(t *testing.T) {
	require.Panics(t, func() { Chain(0) })
}

func TestIndependent_OneOpPerVarWithConfiguredCost(t *testing.T) {
	p := Independent(3, WithOpCost(2))
	require.Len(t, p.Ops, 3)
	for _, op := range p.Ops {
		require.EqualValues(t, 2, op.Cost)
	}
}

func TestRandomReachable_IsDeterministicForFixedSeed(t *testing.T) {
	p1 := RandomReachable(6, WithSeed(42), WithDensity(0.5))
	p2 := RandomReachable(6, WithSeed(42), WithDensity(0.5))
	require.Equal(t, len(p1.Ops), len(p2.Ops))
	for i := range p1.Ops {
		require.Equal(t, p1.Ops[i].Pre, p2.Ops[i].Pre)
		require.Equal(t, p1.Ops[i].Eff, p2.Ops[i].Eff)
	}
}

func TestRandomReachable_InitialIsNotGoal(t *testing.T) {
	p := RandomReachable(5, WithSeed(7), WithDensity(0.4))
	require.NotNil(t, p)
	require.False(t, p.IsGoal(p.Initial))
}
