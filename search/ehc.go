package search

import (
	"time"

	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/lazylist"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
	"github.com/arnesville/fdplan/statespace"
	"github.com/arnesville/fdplan/succgen"
)

// EnforcedHillClimbing is the satisficing EHC driver: a lazy FIFO list of
// (parent, op) pairs, restarting the breadth-first search from any child
// that strictly improves on the best h seen so far.
//
// Grounded on original_source/src/search_ehc.c's clear-the-list-on-
// improvement restart.
type EnforcedHillClimbing struct {
	base
	list *lazylist.FIFO
}

func newEHC(prob *problem.Problem, gen *succgen.Generator, pool *statepool.Pool, ev heuristic.Evaluator, opts Options) *EnforcedHillClimbing {
	return &EnforcedHillClimbing{
		base: newBase(prob, gen, pool, ev, opts),
		list: lazylist.NewFIFO(),
	}
}

// Run executes Enforced Hill Climbing to completion or abort.
func (e *EnforcedHillClimbing) Run() (Result, error) {
	e.start = time.Now()

	initID, err := e.pool.Insert(e.prob.Initial)
	if err != nil {
		return Result{}, err
	}
	initRes, err := e.evaluate(heuristic.NodeContext{State: e.prob.Initial, StateID: initID})
	if err != nil {
		return Result{}, err
	}
	e.reg.RelaxRoot(initID, initRes.Value)
	if e.prob.IsGoal(e.prob.Initial) {
		return Result{Status: Found, GoalID: initID}, nil
	}
	bestH := initRes.Value
	e.enqueueChildren(initID)

	for {
		if e.step() {
			return Result{Status: Abort}, nil
		}
		entry, ok := e.list.Pop()
		if !ok {
			return Result{Status: NotFound}, nil
		}

		parentState, _ := e.pool.Get(entry.Parent)
		parentNode := e.reg.Get(entry.Parent)
		op := e.prob.Ops[entry.Op]
		child := op.Apply(parentState)
		childID, err := e.pool.Insert(child)
		if err != nil {
			return Result{}, err
		}
		e.stats.Generated++
		e.onChildGenerated(entry.Parent)

		// EHC never reopens: a state already touched by this run is
		// skipped, whatever g the new path has.
		if e.reg.Get(childID).Status != statespace.Unseen {
			e.onChildProcessed(entry.Parent)
			continue
		}

		res, err := e.evaluate(heuristic.NodeContext{
			State:       child,
			StateID:     childID,
			HasParent:   true,
			ParentState: parentState,
			ParentID:    entry.Parent,
			ParentValue: parentNode.H,
			AppliedOp:   entry.Op,
		})
		if err != nil {
			return Result{}, err
		}
		e.onChildProcessed(entry.Parent)
		hChild := res.Value
		gPrime := parentNode.G + op.Cost
		e.reg.Relax(childID, entry.Parent, entry.Op, gPrime, hChild)

		if hChild >= heuristic.DeadEnd {
			continue
		}
		e.stats.Expanded++
		if e.prob.IsGoal(child) {
			return Result{Status: Found, GoalID: childID}, nil
		}
		if hChild < bestH {
			bestH = hChild
			e.list = lazylist.NewFIFO()
		}
		e.enqueueChildren(childID)
	}
}

func (e *EnforcedHillClimbing) enqueueChildren(id statepool.StateID) {
	state, _ := e.pool.Get(id)
	for _, opID := range e.gen.Applicable(state) {
		e.list.Push(lazylist.Entry{Parent: id, Op: opID})
	}
	e.onExpanded(id)
}
