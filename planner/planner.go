package planner

import (
	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/pathextract"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/search"
	"github.com/arnesville/fdplan/statepool"
	"github.com/arnesville/fdplan/statespace"
	"github.com/arnesville/fdplan/succgen"
)

// Planner is the driver-API facade of spec §6: it owns the wiring from a raw
// Problem through the cross-reference, the chosen heuristic and the
// successor generator, down to a search.Driver, and exposes that driver's
// flat API plus path extraction.
type Planner struct {
	prob   *problem.Problem
	cr     *factref.CrossRef
	driver search.Driver
}

// New builds a Planner: it applies the cost-model flags (UnitCost,
// CostPlusOne), builds the cross-reference (with H2 if requested),
// instantiates the requested heuristic kind over it, builds the successor
// generator, and constructs the requested search driver.
func New(kind search.Kind, prob *problem.Problem, hkind HeuristicKind, flags Flags, opts search.Options) (*Planner, error) {
	costed, err := applyCostModel(prob, flags)
	if err != nil {
		return nil, err
	}

	ev, cr, err := newHeuristic(costed, hkind, flags)
	if err != nil {
		return nil, err
	}

	gen, err := succgen.New(costed, costed.VarOrder)
	if err != nil {
		return nil, err
	}
	pool := statepool.New(costed.Vars)

	driver, err := search.New(kind, costed, gen, pool, ev, opts)
	if err != nil {
		return nil, err
	}

	return &Planner{prob: costed, cr: cr, driver: driver}, nil
}

// Run blocks until the driver finds a plan, exhausts its list, or is
// aborted.
func (p *Planner) Run() (search.Result, error) { return p.driver.Run() }

// Abort requests cancellation; safe to call from another goroutine.
func (p *Planner) Abort() { p.driver.Abort() }

// StateHeuristic exposes the stored h-value of a previously-visited state,
// per the Driver API.
func (p *Planner) StateHeuristic(id statepool.StateID) (int64, bool) {
	return p.driver.StateHeuristic(id)
}

// LoadState borrows the packed state for id.
func (p *Planner) LoadState(id statepool.StateID) (problem.State, bool) {
	return p.driver.LoadState(id)
}

// LoadNode borrows the state-space node for id.
func (p *Planner) LoadNode(id statepool.StateID) statespace.Node {
	return p.driver.LoadNode(id)
}

// Stats returns the driver's running counters.
func (p *Planner) Stats() search.Stats { return p.driver.Stats() }

// CrossRef exposes the built fact/operator cross-reference, e.g. for a
// caller that wants fact ids for diagnostics.
func (p *Planner) CrossRef() *factref.CrossRef { return p.cr }

// Problem returns the (possibly cost-rewritten) problem the planner was
// built from.
func (p *Planner) Problem() *problem.Problem { return p.prob }

// ExtractPath walks the driver's state-space back from a FOUND result's
// GoalID to the initial state (component C13), returning the operator
// sequence and the recovered initial state id.
func (p *Planner) ExtractPath(goalID statepool.StateID) pathextract.Path {
	return pathextract.Extract(p.driver.Registry(), goalID)
}

// TotalCost sums op.Cost over path against the planner's problem.
func (p *Planner) TotalCost(path pathextract.Path) int64 {
	return pathextract.TotalCost(p.prob, path)
}
