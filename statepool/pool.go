package statepool

import (
	"fmt"
	"sync"

	"github.com/arnesville/fdplan/problem"
)

// StateID is a dense, 0-based, monotone identifier assigned to a distinct
// packed state. Ids are stable for the pool's lifetime; states are never
// evicted (resource policy, spec §5).
type StateID int

// Pool is a content-addressed store of total states, guarded by a
// sync.RWMutex so a read-only monitor goroutine may inspect NumStates while
// a driver mutates the pool on its own goroutine (ambient concurrency
// contract), matching graph/core.Graph's own RWMutex discipline.
type Pool struct {
	mu      sync.RWMutex
	widths  []uint
	byKey   map[string]StateID
	states  []problem.State
	numVars int
}

// New creates an empty Pool sized for the given variables' bit widths.
func New(vars []problem.Var) *Pool {
	return &Pool{
		widths:  bitWidths(vars),
		byKey:   make(map[string]StateID),
		numVars: len(vars),
	}
}

// Insert returns the StateID for s, assigning a new one if s has not been
// seen before. Identical packed content always yields identical ids.
//
// Complexity: O(sum of bit widths) for packing, O(1) amortized for the map
// lookup/insert.
func (p *Pool) Insert(s problem.State) (StateID, error) {
	if s.Len() != p.numVars {
		return 0, fmt.Errorf("statepool: got %d vars, want %d: %w", s.Len(), p.numVars, ErrWrongArity)
	}
	key := packKey(p.widths, s)

	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.byKey[key]; ok {
		return id, nil
	}
	id := StateID(len(p.states))
	p.states = append(p.states, s.Clone())
	p.byKey[key] = id
	return id, nil
}

// Get returns the state stored under id. The second return is false if id
// is out of range.
func (p *Pool) Get(id StateID) (problem.State, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(p.states) {
		return problem.State{}, false
	}
	return p.states[id], true
}

// NumStates returns the number of distinct states inserted so far.
func (p *Pool) NumStates() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.states)
}

// IsGoalSubset reports whether the given partial state is satisfied by the
// state stored under id.
func (p *Pool) IsGoalSubset(goal problem.PartialState, id StateID) bool {
	s, ok := p.Get(id)
	if !ok {
		return false
	}
	return goal.IsSubsetOf(s)
}
