package fixtures

import "github.com/arnesville/fdplan/problem"

// Independent builds a problem with k binary variables, each flipped to 1
// by its own precondition-free operator, and a goal requiring all k to be
// 1. Since the goals share no dependency, h^add, h^FF and LM-Cut all equal
// the sum of the k operator costs here, while h^max is the largest single
// operator cost. Panics if k < 1.
func Independent(k int, opts ...Option) *problem.Problem {
	if k < 1 {
		panic("fixtures: Independent(k<1)")
	}
	c := newConfig()
	for _, o := range opts {
		o(c)
	}

	vars := make([]problem.Var, k)
	ops := make([]problem.Operator, k)
	goalPairs := make([]problem.Assignment, k)
	for i := 0; i < k; i++ {
		v, err := problem.NewVar("v", 2, nil)
		if err != nil {
			panic(err)
		}
		vars[i] = v

		pre, _ := problem.NewPartialState()
		eff, _ := problem.NewPartialState(problem.Assignment{Var: problem.VarID(i), Val: 1})
		ops[i] = problem.Operator{Name: "set", Cost: c.cost(), Pre: pre, Eff: eff}
		goalPairs[i] = problem.Assignment{Var: problem.VarID(i), Val: 1}
	}

	initVals := make([]problem.Val, k)
	goal, _ := problem.NewPartialState(goalPairs...)

	p, err := problem.New(vars, problem.NewState(initVals), goal, ops, nil)
	if err != nil {
		panic(err)
	}
	return p
}
