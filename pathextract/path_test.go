package pathextract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnesville/fdplan/statespace"
)

func TestExtract_WalksParentChainToInitial(t *testing.T) {
	reg := statespace.New()
	reg.RelaxRoot(0, 3)
	reg.Relax(1, 0, 10, 1, 2)
	reg.Relax(2, 1, 11, 2, 0)

	p := Extract(reg, 2)
	require.EqualValues(t, 0, p.InitialID)
	require.Len(t, p.Steps, 2)
	require.EqualValues(t, 10, p.Steps[0].Op)
	require.EqualValues(t, 0, p.Steps[0].From)
	require.EqualValues(t, 1, p.Steps[0].To)
	require.EqualValues(t, 11, p.Steps[1].Op)
	require.EqualValues(t, 1, p.Steps[1].From)
	require.EqualValues(t, 2, p.Steps[1].To)
}

func TestExtract_GoalIsInitialGivesEmptyPath(t *testing.T) {
	reg := statespace.New()
	reg.RelaxRoot(0, 0)

	p := Extract(reg, 0)
	require.EqualValues(t, 0, p.InitialID)
	require.Empty(t, p.Steps)
}
