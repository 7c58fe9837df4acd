package pathextract

import (
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
	"github.com/arnesville/fdplan/statespace"
)

// Step is one (op, from, to) triple in a plan, per the path output contract.
type Step struct {
	Op   problem.OpID
	From statepool.StateID
	To   statepool.StateID
}

// Path is the ordered plan: the recovered initial state id and the
// forward-order steps to reach the goal. Len(Steps) == 0 means the goal
// state was itself the initial state.
type Path struct {
	InitialID statepool.StateID
	Steps     []Step
}

// Extract walks goalID's parent chain in the given registry back to the
// node with no generating operator, then reverses the walk into forward
// order.
func Extract(reg *statespace.Registry, goalID statepool.StateID) Path {
	var reversed []Step
	cur := goalID
	for {
		n := reg.Get(cur)
		if !n.HasParent {
			break
		}
		reversed = append(reversed, Step{Op: n.Op, From: n.Parent, To: cur})
		cur = n.Parent
	}

	steps := make([]Step, len(reversed))
	for i, s := range reversed {
		steps[len(reversed)-1-i] = s
	}
	return Path{InitialID: cur, Steps: steps}
}

// TotalCost sums op.Cost over the path's steps against the given operator
// table; it should equal g at the goal node.
func TotalCost(prob *problem.Problem, p Path) int64 {
	var total int64
	for _, s := range p.Steps {
		total += prob.Ops[s.Op].Cost
	}
	return total
}
