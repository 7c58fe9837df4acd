package statepool

import (
	"testing"

	"github.com/arnesville/fdplan/problem"
	"github.com/stretchr/testify/require"
)

func vars(ranges ...int) []problem.Var {
	out := make([]problem.Var, len(ranges))
	for i, r := range ranges {
		v, err := problem.NewVar("v", r, nil)
		if err != nil {
			panic(err)
		}
		out[i] = v
	}
	return out
}

func TestPool_ContentIdentity(t *testing.T) {
	p := New(vars(2, 3, 5))

	s1 := problem.NewState([]problem.Val{1, 2, 3})
	s2 := problem.NewState([]problem.Val{1, 2, 3})
	s3 := problem.NewState([]problem.Val{0, 2, 3})

	id1, err := p.Insert(s1)
	require.NoError(t, err)
	id2, err := p.Insert(s2)
	require.NoError(t, err)
	id3, err := p.Insert(s3)
	require.NoError(t, err)

	require.Equal(t, id1, id2)
	require.NotEqual(t, id1, id3)
	require.Equal(t, 2, p.NumStates())
}

func TestPool_GetRoundTrip(t *testing.T) {
	p := New(vars(4, 4))
	s := problem.NewState([]problem.Val{3, 1})
	id, err := p.Insert(s)
	require.NoError(t, err)

	got, ok := p.Get(id)
	require.True(t, ok)
	require.Equal(t, s.Vals(), got.Vals())
}

func TestPool_WrongArity(t *testing.T) {
	p := New(vars(2))
	_, err := p.Insert(problem.NewState([]problem.Val{0, 0}))
	require.ErrorIs(t, err, ErrWrongArity)
}

func TestPool_IdsDenseAndStable(t *testing.T) {
	p := New(vars(10, 10, 10))
	seen := map[StateID]bool{}
	for i := 0; i < 5; i++ {
		id, err := p.Insert(problem.NewState([]problem.Val{problem.Val(i), 0, 0}))
		require.NoError(t, err)
		require.False(t, seen[id])
		seen[id] = true
		require.True(t, int(id) < p.NumStates())
	}
}
