package statespace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_RelaxAcceptsCheaperPath(t *testing.T) {
	r := New()
	r.RelaxRoot(0, 10)
	require.True(t, r.Relax(1, 0, 5, 3, 9))
	require.Equal(t, Open, r.Get(1).Status)

	// a costlier path to the same state is rejected
	require.False(t, r.Relax(1, 0, 6, 10, 9))
	require.Equal(t, int64(3), r.Get(1).G)
}

func TestRegistry_ReopensClosedNodeOnCheaperPath(t *testing.T) {
	r := New()
	r.RelaxRoot(0, 10)
	require.True(t, r.Relax(1, 0, 5, 8, 9))
	r.MarkClosed(1)
	require.Equal(t, Closed, r.Get(1).Status)

	require.True(t, r.Relax(1, 0, 5, 4, 9))
	require.Equal(t, Open, r.Get(1).Status)
	require.Equal(t, int64(4), r.Get(1).G)
}

func TestRegistry_UnseenIsNew(t *testing.T) {
	r := New()
	require.Equal(t, New, r.Get(42).Status)
}
