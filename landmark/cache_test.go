package landmark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/statepool"
)

func TestCache_StoreGetRoundTrip(t *testing.T) {
	c := New()
	lms := []heuristic.Landmark{{Cost: 3}}
	c.Store(1, 10, lms)

	v, got, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, int64(10), v)
	require.Equal(t, lms, got)
}

func TestCache_PrunesOnLastChildProcessed(t *testing.T) {
	c := New()
	c.Store(1, 5, nil)
	c.RegisterChild(1)
	c.RegisterChild(1)
	require.Equal(t, 1, c.Len())

	c.MarkExpanded(1) // expanded, but 2 children still pending
	_, _, ok := c.Get(1)
	require.True(t, ok)

	c.ChildProcessed(1)
	_, _, ok = c.Get(1)
	require.True(t, ok) // one child still pending

	c.ChildProcessed(1)
	_, _, ok = c.Get(1)
	require.False(t, ok) // last child processed and already expanded -> pruned
}

func TestCache_PrunesImmediatelyWithNoChildren(t *testing.T) {
	c := New()
	c.Store(1, 5, nil)
	c.MarkExpanded(1)
	_, _, ok := c.Get(1)
	require.False(t, ok)
}

func TestCache_MissingEntryIsNoop(t *testing.T) {
	c := New()
	c.RegisterChild(99)
	c.ChildProcessed(99)
	c.MarkExpanded(99)
	require.Equal(t, 0, c.Len())
}
