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

// LazyBFS is the Lazy Best-First Search driver: a deferred-expansion list
// ordered by the generating parent's h-value, so a child's heuristic is
// only computed once it is actually popped. When UsePreferredOps is set and
// the heuristic reports preferred operators, those are pushed under a
// strictly lower priority so they are preferred at pop time.
type LazyBFS struct {
	base
	list *lazylist.Priority
}

func newLazy(prob *problem.Problem, gen *succgen.Generator, pool *statepool.Pool, ev heuristic.Evaluator, opts Options) *LazyBFS {
	return &LazyBFS{
		base: newBase(prob, gen, pool, ev, opts),
		list: lazylist.NewPriority(0),
	}
}

// Run executes Lazy Best-First Search to completion or abort.
func (l *LazyBFS) Run() (Result, error) {
	l.start = time.Now()

	initID, err := l.pool.Insert(l.prob.Initial)
	if err != nil {
		return Result{}, err
	}
	initRes, err := l.evaluate(heuristic.NodeContext{State: l.prob.Initial, StateID: initID})
	if err != nil {
		return Result{}, err
	}
	l.reg.RelaxRoot(initID, initRes.Value)
	if l.prob.IsGoal(l.prob.Initial) {
		return Result{Status: Found, GoalID: initID}, nil
	}
	if err := l.enqueueChildren(initID, initRes); err != nil {
		return Result{}, err
	}

	for {
		if l.step() {
			return Result{Status: Abort}, nil
		}
		entry, ok := l.list.Pop()
		if !ok {
			return Result{Status: NotFound}, nil
		}

		parentState, _ := l.pool.Get(entry.Parent)
		parentNode := l.reg.Get(entry.Parent)
		op := l.prob.Ops[entry.Op]
		child := op.Apply(parentState)
		childID, err := l.pool.Insert(child)
		if err != nil {
			return Result{}, err
		}
		l.stats.Generated++
		l.onChildGenerated(entry.Parent)
		gPrime := parentNode.G + op.Cost

		if l.reg.Get(childID).Status == statespace.Closed {
			l.onChildProcessed(entry.Parent)
			continue
		}

		res, err := l.evaluate(heuristic.NodeContext{
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
		l.onChildProcessed(entry.Parent)
		hChild := res.Value
		if !l.reg.Relax(childID, entry.Parent, entry.Op, gPrime, hChild) {
			continue
		}
		if hChild >= heuristic.DeadEnd {
			continue
		}
		l.reg.MarkClosed(childID)
		l.stats.Expanded++
		if l.prob.IsGoal(child) {
			return Result{Status: Found, GoalID: childID}, nil
		}
		if err := l.enqueueChildren(childID, res); err != nil {
			return Result{}, err
		}
	}
}

func (l *LazyBFS) enqueueChildren(id statepool.StateID, res heuristic.Result) error {
	state, _ := l.pool.Get(id)
	preferred := make(map[problem.OpID]bool)
	if l.opts.UsePreferredOps {
		for _, op := range res.PreferredOps {
			preferred[op] = true
		}
	}
	node := l.reg.Get(id)
	base := node.H
	if base < 0 {
		base = 0
	}
	for _, opID := range l.gen.Applicable(state) {
		// Scale by 2 and reserve the even slot for preferred operators so
		// they sort strictly ahead of non-preferred siblings at the same h,
		// without ever pushing a negative (and thus rejected) priority.
		priority := base * 2
		if !preferred[opID] {
			priority++
		}
		if err := l.list.Push(priority, lazylist.Entry{Parent: id, Op: opID}); err != nil {
			return err
		}
	}
	l.onExpanded(id)
	return nil
}
