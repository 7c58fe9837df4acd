package fixtures

import "github.com/arnesville/fdplan/problem"

// RandomReachable builds an n-variable problem that is guaranteed solvable:
// a deterministic spine of operators (as in Chain) reaches the goal, then
// extra "noise" operators are sampled with the configured density, each
// gated on a random already-spined fact and writing a random value to a
// random variable, to give the successor generator and relaxation engines
// branching to chew on without ever blocking the spine. Panics if n < 1.
func RandomReachable(n int, opts ...Option) *problem.Problem {
	if n < 1 {
		panic("fixtures: RandomReachable(n<1)")
	}
	c := newConfig()
	for _, o := range opts {
		o(c)
	}

	vars := make([]problem.Var, n)
	for i := range vars {
		v, err := problem.NewVar("v", c.varRange, nil)
		if err != nil {
			panic(err)
		}
		vars[i] = v
	}

	var ops []problem.Operator
	for i := 0; i < n; i++ {
		var pre problem.PartialState
		if i == 0 {
			pre, _ = problem.NewPartialState()
		} else {
			pre, _ = problem.NewPartialState(problem.Assignment{Var: problem.VarID(i - 1), Val: 1})
		}
		eff, _ := problem.NewPartialState(problem.Assignment{Var: problem.VarID(i), Val: 1})
		ops = append(ops, problem.Operator{Name: "spine", Cost: c.cost(), Pre: pre, Eff: eff})
	}

	noiseTrials := n * 2
	for t := 0; t < noiseTrials; t++ {
		if c.rng.Float64() >= c.density {
			continue
		}
		gateVar := problem.VarID(c.rng.Intn(n))
		writeVar := problem.VarID(c.rng.Intn(n))
		writeVal := problem.Val(1 + c.rng.Intn(vars[writeVar].Range-1))
		pre, err := problem.NewPartialState(problem.Assignment{Var: gateVar, Val: 1})
		if err != nil {
			continue
		}
		eff, err := problem.NewPartialState(problem.Assignment{Var: writeVar, Val: writeVal})
		if err != nil {
			continue
		}
		ops = append(ops, problem.Operator{Name: "noise", Cost: c.cost(), Pre: pre, Eff: eff})
	}

	initVals := make([]problem.Val, n)
	goal, _ := problem.NewPartialState(problem.Assignment{Var: problem.VarID(n - 1), Val: 1})

	p, err := problem.New(vars, problem.NewState(initVals), goal, ops, nil)
	if err != nil {
		panic(err)
	}
	return p
}
