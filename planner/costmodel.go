package planner

import "github.com/arnesville/fdplan/problem"

// applyCostModel rewrites prob's operator costs per flags (UnitCost,
// CostPlusOne), returning prob unchanged if neither is set. The rewritten
// problem is re-validated via problem.New so a cost rewrite can never smuggle
// in an invalid operator.
func applyCostModel(prob *problem.Problem, flags Flags) (*problem.Problem, error) {
	if !flags.UnitCost && !flags.CostPlusOne {
		return prob, nil
	}
	ops := make([]problem.Operator, len(prob.Ops))
	for i, op := range prob.Ops {
		op.Cost = flags.costOf(op.Cost)
		ops[i] = op
	}
	return problem.New(prob.Vars, prob.Initial, prob.Goal, ops, prob.VarOrder)
}
