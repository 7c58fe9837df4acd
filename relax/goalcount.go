package relax

import (
	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/problem"
)

// GoalCount is the supplementary, non-relaxation heuristic: the number of
// goal (var, val) pairs not yet satisfied in the evaluated state. Cheap,
// inadmissible, historically useful for greedy search before the relaxation
// engines were affordable.
type GoalCount struct {
	goal problem.PartialState
}

// NewGoalCount builds a GoalCount heuristic for the given goal condition.
func NewGoalCount(goal problem.PartialState) *GoalCount {
	return &GoalCount{goal: goal}
}

// Evaluate counts unsatisfied goal pairs in s.
func (g *GoalCount) Evaluate(s problem.State) (heuristic.Result, error) {
	var n int64
	for _, a := range g.goal.Pairs() {
		if v, ok := s.Get(a.Var); !ok || v != a.Val {
			n++
		}
	}
	return heuristic.Result{Value: n}, nil
}

// MayReturnLandmarks always reports false.
func (g *GoalCount) MayReturnLandmarks() bool { return false }

// MayReturnPreferredOps always reports false.
func (g *GoalCount) MayReturnPreferredOps() bool { return false }
