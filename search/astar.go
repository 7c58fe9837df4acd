package search

import (
	"time"

	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/openlist"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
	"github.com/arnesville/fdplan/statespace"
	"github.com/arnesville/fdplan/succgen"
)

// AStar is the optimal driver: expands the state of lowest f = g + max(h, 0)
// first, ties broken by lower h then by FIFO insertion order (openlist,
// component C10).
type AStar struct {
	base
	open *openlist.List
}

func newAstar(prob *problem.Problem, gen *succgen.Generator, pool *statepool.Pool, ev heuristic.Evaluator, opts Options) *AStar {
	return &AStar{
		base: newBase(prob, gen, pool, ev, opts),
		open: openlist.New(),
	}
}

// Run executes A* to completion or abort.
func (a *AStar) Run() (Result, error) {
	a.start = time.Now()

	initID, err := a.pool.Insert(a.prob.Initial)
	if err != nil {
		return Result{}, err
	}
	initRes, err := a.evaluate(heuristic.NodeContext{State: a.prob.Initial, StateID: initID})
	if err != nil {
		return Result{}, err
	}
	a.reg.RelaxRoot(initID, initRes.Value)
	a.open.Push(fOf(0, initRes.Value), initRes.Value, initID)

	for {
		if a.step() {
			return Result{Status: Abort}, nil
		}
		f, h, id, ok := a.open.Pop()
		_ = f
		_ = h
		if !ok {
			return Result{Status: NotFound}, nil
		}
		node := a.reg.Get(id)
		if node.Status != statespace.Open {
			continue // stale reopen entry
		}
		state, _ := a.pool.Get(id)
		if a.prob.IsGoal(state) {
			a.reg.MarkClosed(id)
			return Result{Status: Found, GoalID: id}, nil
		}
		a.reg.MarkClosed(id)
		a.stats.Expanded++

		for _, opID := range a.gen.Applicable(state) {
			op := a.prob.Ops[opID]
			child := op.Apply(state)
			childID, err := a.pool.Insert(child)
			if err != nil {
				return Result{}, err
			}
			a.stats.Generated++
			a.onChildGenerated(id)
			gPrime := node.G + op.Cost

			childNode := a.reg.Get(childID)
			var hChild int64
			if childNode.Status == statespace.Unseen {
				res, err := a.evaluate(heuristic.NodeContext{
					State:       child,
					StateID:     childID,
					HasParent:   true,
					ParentState: state,
					ParentID:    id,
					ParentValue: node.H,
					AppliedOp:   opID,
				})
				if err != nil {
					return Result{}, err
				}
				hChild = res.Value
			} else {
				hChild = childNode.H
			}
			a.onChildProcessed(id)
			if a.opts.Pathmax {
				if pm := node.H - op.Cost; pm > hChild {
					hChild = pm
				}
			}
			if hChild >= heuristic.DeadEnd {
				continue
			}
			if a.reg.Relax(childID, id, opID, gPrime, hChild) {
				a.open.Push(fOf(gPrime, hChild), hChild, childID)
			}
		}
		a.onExpanded(id)
	}
}

func fOf(g, h int64) int64 {
	if h < 0 {
		return g
	}
	return g + h
}
