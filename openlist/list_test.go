package openlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList_OrdersByFThenH(t *testing.T) {
	l := New()
	l.Push(5, 1, 100)
	l.Push(3, 2, 200)
	l.Push(3, 1, 300)

	f, h, id, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, int64(3), f)
	require.Equal(t, int64(1), h)
	require.EqualValues(t, 300, id)

	f, h, id, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, int64(3), f)
	require.Equal(t, int64(2), h)
	require.EqualValues(t, 200, id)

	f, _, id, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, int64(5), f)
	require.EqualValues(t, 100, id)

	_, _, _, ok = l.Pop()
	require.False(t, ok)
}

func TestList_SameKeyIsFIFO(t *testing.T) {
	l := New()
	l.Push(1, 1, 10)
	l.Push(1, 1, 20)
	l.Push(1, 1, 30)

	_, _, id, _ := l.Pop()
	require.EqualValues(t, 10, id)
	_, _, id, _ = l.Pop()
	require.EqualValues(t, 20, id)
	_, _, id, _ = l.Pop()
	require.EqualValues(t, 30, id)
}

func TestList_EmptyReportsCorrectly(t *testing.T) {
	l := New()
	require.True(t, l.Empty())
	l.Push(1, 1, 1)
	require.False(t, l.Empty())
	l.Pop()
	require.True(t, l.Empty())
}
