package openlist

import (
	"container/heap"
	"container/list"

	"github.com/arnesville/fdplan/statepool"
)

// key is the (f, h) tie-breaking pair A* orders the open list by: lowest f
// first, ties broken by lowest h (prefer states that look closer to the
// goal).
type key struct {
	f, h int64
}

func (a key) less(b key) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.h < b.h
}

type keyHeap []key

func (h keyHeap) Len() int            { return len(h) }
func (h keyHeap) Less(i, j int) bool  { return h[i].less(h[j]) }
func (h keyHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *keyHeap) Push(x interface{}) { *h = append(*h, x.(key)) }
func (h *keyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// List is the (f, h) -> FIFO open list.
type List struct {
	keys    keyHeap
	buckets map[key]*list.List
}

// New creates an empty List.
func New() *List {
	return &List{buckets: make(map[key]*list.List)}
}

// Push inserts id under the (f, h) pair, appended to that pair's FIFO.
func (l *List) Push(f, h int64, id statepool.StateID) {
	k := key{f, h}
	b, ok := l.buckets[k]
	if !ok {
		b = list.New()
		l.buckets[k] = b
		heap.Push(&l.keys, k)
	}
	b.PushBack(id)
}

// Pop removes and returns the state id with the minimum (f, h) pair,
// breaking ties in insertion (FIFO) order. ok is false if the list is
// empty.
func (l *List) Pop() (f, h int64, id statepool.StateID, ok bool) {
	for len(l.keys) > 0 {
		k := l.keys[0]
		b := l.buckets[k]
		if b.Len() == 0 {
			heap.Pop(&l.keys)
			delete(l.buckets, k)
			continue
		}
		e := b.Front()
		b.Remove(e)
		sid := e.Value.(statepool.StateID)
		if b.Len() == 0 {
			heap.Pop(&l.keys)
			delete(l.buckets, k)
		}
		return k.f, k.h, sid, true
	}
	return 0, 0, 0, false
}

// Empty reports whether the list holds no entries.
func (l *List) Empty() bool { return len(l.keys) == 0 }
