package lazylist

import (
	"github.com/arnesville/fdplan/pqueue"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
)

// Entry is a deferred successor: the parent it was generated from and the
// operator to apply to produce it.
type Entry struct {
	Parent statepool.StateID
	Op     problem.OpID
}

// FIFO is a plain first-in-first-out deferred-expansion list, used by the
// EHC driver.
type FIFO struct {
	items []Entry
	head  int
}

// NewFIFO creates an empty FIFO.
func NewFIFO() *FIFO { return &FIFO{} }

// Push appends e.
func (f *FIFO) Push(e Entry) { f.items = append(f.items, e) }

// Pop removes and returns the oldest entry. ok is false if empty.
func (f *FIFO) Pop() (Entry, bool) {
	if f.head >= len(f.items) {
		return Entry{}, false
	}
	e := f.items[f.head]
	f.items[f.head] = Entry{}
	f.head++
	if f.head == len(f.items) {
		f.items = f.items[:0]
		f.head = 0
	}
	return e, true
}

// Empty reports whether no entries remain.
func (f *FIFO) Empty() bool { return f.head >= len(f.items) }

// Priority is a priority-ordered deferred-expansion list (the Lazy driver
// keys entries by the parent's h-value, so a child's own heuristic is
// computed only when it is popped), reusing the adaptive priority queue (C4).
type Priority struct {
	pq *pqueue.Queue[Entry]
}

// NewPriority creates an empty Priority list with the given bucket size (0
// uses pqueue.DefaultBucketSize).
func NewPriority(bucketSize int) *Priority {
	return &Priority{pq: pqueue.New[Entry](bucketSize)}
}

// Push inserts e under the given priority key (must be >= 0).
func (p *Priority) Push(priority int64, e Entry) error {
	_, err := p.pq.Push(int(priority), e)
	return err
}

// Pop removes and returns the minimum-priority entry. ok is false if empty.
func (p *Priority) Pop() (Entry, bool) {
	_, e, ok := p.pq.Pop()
	return e, ok
}

// Empty reports whether no entries remain.
func (p *Priority) Empty() bool { return p.pq.Empty() }

// Reset clears the list for reuse without reallocating its buffers.
func (p *Priority) Reset() { p.pq.Reset() }
