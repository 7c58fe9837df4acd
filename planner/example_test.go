package planner_test

import (
	"fmt"

	"github.com/arnesville/fdplan/planner"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/search"
)

// ExamplePlanner solves spec.md's Scenario C (a two-step precondition
// chain) with LM-Cut-guided A* and prints the optimal plan.
func ExamplePlanner() {
	v, err := problem.NewVar("v", 3, nil)
	if err != nil {
		panic(err)
	}
	pre1, _ := problem.NewPartialState(problem.Assignment{Var: 0, Val: 0})
	eff1, _ := problem.NewPartialState(problem.Assignment{Var: 0, Val: 1})
	pre2, _ := problem.NewPartialState(problem.Assignment{Var: 0, Val: 1})
	eff2, _ := problem.NewPartialState(problem.Assignment{Var: 0, Val: 2})
	goal, _ := problem.NewPartialState(problem.Assignment{Var: 0, Val: 2})

	ops := []problem.Operator{
		{Name: "a", Cost: 1, Pre: pre1, Eff: eff1},
		{Name: "b", Cost: 4, Pre: pre2, Eff: eff2},
	}
	prob, err := problem.New([]problem.Var{v}, problem.NewState([]problem.Val{0}), goal, ops, nil)
	if err != nil {
		panic(err)
	}

	pl, err := planner.New(search.Astar, prob, planner.LMCut, planner.Flags{}, search.Options{})
	if err != nil {
		panic(err)
	}
	res, err := pl.Run()
	if err != nil {
		panic(err)
	}
	path := pl.ExtractPath(res.GoalID)
	for _, step := range path.Steps {
		fmt.Println(prob.Ops[step.Op].Name)
	}
	fmt.Println("cost:", pl.TotalCost(path))
	// Output:
	// a
	// b
	// cost: 5
}
