package landmark

import (
	"sync"

	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/statepool"
)

type entry struct {
	value     int64
	landmarks []heuristic.Landmark
	expanded  bool
	pending   int
}

// Cache stores the landmark set computed for a state, keyed by StateID, so
// an incremental LM-Cut variant (package lmcut's Cached) can reuse a
// parent's landmarks instead of recomputing from scratch. An entry is
// pruned once its owning node has been expanded (MarkExpanded) and every
// child registered against it (RegisterChild) has been accounted for
// (ChildProcessed) -- prune-on-last-child-processed, so a still-pending
// sibling can't see a parent entry vanish out from under it.
type Cache struct {
	mu      sync.RWMutex
	entries map[statepool.StateID]*entry
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[statepool.StateID]*entry)}
}

// Store records the landmark set computed for id, overwriting any prior
// entry.
func (c *Cache) Store(id statepool.StateID, value int64, landmarks []heuristic.Landmark) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = &entry{value: value, landmarks: landmarks}
}

// Get returns the cached value and landmark set for id, if present.
func (c *Cache) Get(id statepool.StateID) (value int64, landmarks []heuristic.Landmark, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	if !ok {
		return 0, nil, false
	}
	return e.value, e.landmarks, true
}

// RegisterChild records that a child of parent is about to be evaluated
// against parent's cached entry, deferring its eligibility for pruning.
// A no-op if parent has no cached entry.
func (c *Cache) RegisterChild(parent statepool.StateID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[parent]; ok {
		e.pending++
	}
}

// ChildProcessed records that a previously registered child of parent has
// finished consuming parent's cached entry, pruning it if parent has
// already been marked expanded and no other child is still pending.
func (c *Cache) ChildProcessed(parent statepool.StateID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[parent]
	if !ok {
		return
	}
	if e.pending > 0 {
		e.pending--
	}
	c.pruneLocked(parent, e)
}

// MarkExpanded records that parent has generated every one of its
// children, pruning its cached entry immediately if none are still
// pending (including the case of zero children).
func (c *Cache) MarkExpanded(parent statepool.StateID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[parent]
	if !ok {
		return
	}
	e.expanded = true
	c.pruneLocked(parent, e)
}

func (c *Cache) pruneLocked(id statepool.StateID, e *entry) {
	if e.expanded && e.pending == 0 {
		delete(c.entries, id)
	}
}

// Len reports the number of live cache entries (for tests/metrics).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
