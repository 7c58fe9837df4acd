package succgen

import (
	"sort"

	"github.com/arnesville/fdplan/problem"
)

// Generator answers applicable-operator queries over a Problem's grounded
// operators via a match tree built over a variable order.
type Generator struct {
	order []problem.VarID
	root  *treeNode
}

// New builds a Generator for ops using order. A nil or empty order makes New
// derive one (DefaultOrder(prob)). Every variable referenced by an
// operator's precondition must appear in order.
//
// Complexity: O(sum of len(op.Pre)) time and space to build.
func New(prob *problem.Problem, order []problem.VarID) (*Generator, error) {
	if len(order) == 0 {
		order = DefaultOrder(prob)
	}
	inOrder := make(map[problem.VarID]bool, len(order))
	for _, v := range order {
		inOrder[v] = true
	}
	pre := make(map[problem.OpID]problem.PartialState, len(prob.Ops))
	ids := make([]problem.OpID, len(prob.Ops))
	for i, op := range prob.Ops {
		ids[i] = op.ID
		pre[op.ID] = op.Pre
		for _, a := range op.Pre.Pairs() {
			if !inOrder[a.Var] {
				return nil, ErrEmptyOrder
			}
		}
	}
	return &Generator{
		order: append([]problem.VarID(nil), order...),
		root:  buildNode(ids, pre, order),
	}, nil
}

// DefaultOrder returns every variable of prob, most-referenced-in-a-
// precondition first (ties broken by ascending VarID), the deterministic
// fallback used when Problem.VarOrder is empty.
func DefaultOrder(prob *problem.Problem) []problem.VarID {
	refs := make([]int, len(prob.Vars))
	for _, op := range prob.Ops {
		for _, a := range op.Pre.Pairs() {
			refs[a.Var]++
		}
	}
	order := make([]problem.VarID, len(prob.Vars))
	for i := range order {
		order[i] = problem.VarID(i)
	}
	sort.Slice(order, func(i, j int) bool {
		vi, vj := order[i], order[j]
		if refs[vi] != refs[vj] {
			return refs[vi] > refs[vj]
		}
		return vi < vj
	})
	return order
}

// Applicable returns every operator id applicable in s.
func (g *Generator) Applicable(s problem.State) []problem.OpID {
	return queryState(g.root, s, nil)
}

// ApplicableInPartial returns every operator id whose precondition is a
// subset of ps.
func (g *Generator) ApplicableInPartial(ps problem.PartialState) []problem.OpID {
	return queryPartial(g.root, ps, nil)
}
