package fixtures

import "github.com/arnesville/fdplan/problem"

// Chain builds a linear-dependency problem: n binary variables v0..v(n-1),
// operator i sets v_i := 1, gated on v_(i-1) = 1 for i > 0 (op 0 has no
// precondition). The goal is v_(n-1) = 1, so the unique optimal plan applies
// every operator in order. Panics if n < 1.
func Chain(n int, opts ...Option) *problem.Problem {
	if n < 1 {
		panic("fixtures: Chain(n<1)")
	}
	c := newConfig()
	for _, o := range opts {
		o(c)
	}

	vars := make([]problem.Var, n)
	for i := range vars {
		v, err := problem.NewVar("v", 2, nil)
		if err != nil {
			panic(err)
		}
		vars[i] = v
	}

	ops := make([]problem.Operator, n)
	for i := 0; i < n; i++ {
		var pre problem.PartialState
		if i == 0 {
			pre, _ = problem.NewPartialState()
		} else {
			pre, _ = problem.NewPartialState(problem.Assignment{Var: problem.VarID(i - 1), Val: 1})
		}
		eff, _ := problem.NewPartialState(problem.Assignment{Var: problem.VarID(i), Val: 1})
		ops[i] = problem.Operator{Name: "step", Cost: c.cost(), Pre: pre, Eff: eff}
	}

	initVals := make([]problem.Val, n)
	goal, _ := problem.NewPartialState(problem.Assignment{Var: problem.VarID(n - 1), Val: 1})

	p, err := problem.New(vars, problem.NewState(initVals), goal, ops, nil)
	if err != nil {
		panic(err)
	}
	return p
}
