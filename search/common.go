package search

import (
	"sync/atomic"
	"time"

	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
	"github.com/arnesville/fdplan/statespace"
	"github.com/arnesville/fdplan/succgen"
)

// Status is the outcome of a Run call.
type Status int

const (
	// NotFound means the open/deferred list emptied without reaching the goal.
	NotFound Status = iota
	// Found means a goal state was reached; Result.GoalID identifies it.
	Found
	// Abort means the progress callback or an external Abort() call
	// requested early termination.
	Abort
)

func (s Status) String() string {
	switch s {
	case Found:
		return "FOUND"
	case Abort:
		return "ABORT"
	default:
		return "NOT_FOUND"
	}
}

// Kind selects which driver New constructs.
type Kind int

const (
	Astar Kind = iota
	EHC
	Lazy
)

// Stats are the driver's running counters, per spec §4.7.
type Stats struct {
	Evaluated int64
	Generated int64
	Expanded  int64
	Steps     int64
	Elapsed   time.Duration
}

// Progress is invoked every Options.ProgressFreq steps with the current
// stats. Returning true requests the driver abort.
type Progress func(Stats) (abortRequested bool)

// Options configures a driver. ProgressFreq <= 0 disables the callback.
type Options struct {
	Pathmax         bool
	UsePreferredOps bool
	ProgressFreq    int
	ProgressFn      Progress
}

// Result is what Run returns.
type Result struct {
	Status Status
	GoalID statepool.StateID
}

// Driver is the uniform API every search algorithm implements (spec §6
// Driver API).
type Driver interface {
	Run() (Result, error)
	Abort()
	StateHeuristic(id statepool.StateID) (int64, bool)
	LoadState(id statepool.StateID) (problem.State, bool)
	LoadNode(id statepool.StateID) statespace.Node
	Stats() Stats
	// Registry exposes the driver's state-space node registry so a caller
	// (planner's path extractor, component C13) can walk parent chains
	// without the driver re-implementing that traversal itself.
	Registry() *statespace.Registry
}

// base holds the fields and helpers common to every driver.
type base struct {
	prob *problem.Problem
	gen  *succgen.Generator
	pool *statepool.Pool
	reg  *statespace.Registry
	ev   heuristic.Evaluator
	opts Options

	stats   Stats
	start   time.Time
	aborted atomic.Bool
}

func newBase(prob *problem.Problem, gen *succgen.Generator, pool *statepool.Pool, ev heuristic.Evaluator, opts Options) base {
	return base{
		prob:  prob,
		gen:   gen,
		pool:  pool,
		reg:   statespace.New(),
		ev:    ev,
		opts:  opts,
		start: time.Time{},
	}
}

// Abort requests cancellation; safe to call from another goroutine (the
// engine's one thread-safe cross-thread entry point, per spec §5).
func (b *base) Abort() { b.aborted.Store(true) }

func (b *base) StateHeuristic(id statepool.StateID) (int64, bool) {
	n := b.reg.Get(id)
	if n.Status == statespace.Unseen {
		return 0, false
	}
	return n.H, true
}

func (b *base) LoadState(id statepool.StateID) (problem.State, bool) {
	return b.pool.Get(id)
}

func (b *base) LoadNode(id statepool.StateID) statespace.Node {
	return b.reg.Get(id)
}

func (b *base) Registry() *statespace.Registry { return b.reg }

func (b *base) Stats() Stats {
	s := b.stats
	if !b.start.IsZero() {
		s.Elapsed = time.Since(b.start)
	}
	return s
}

// step increments the step counter and invokes the progress callback every
// ProgressFreq steps, returning true if the caller should abort now (either
// because Abort() was called or the callback requested it).
func (b *base) step() bool {
	if b.aborted.Load() {
		return true
	}
	b.stats.Steps++
	if b.opts.ProgressFreq > 0 && b.opts.ProgressFn != nil && b.stats.Steps%int64(b.opts.ProgressFreq) == 0 {
		if b.opts.ProgressFn(b.Stats()) {
			b.aborted.Store(true)
			return true
		}
	}
	return false
}

// evaluate runs the configured heuristic, preferring NodeEvaluator's
// incremental EvaluateNode when the engine implements it.
func (b *base) evaluate(ctx heuristic.NodeContext) (heuristic.Result, error) {
	b.stats.Evaluated++
	if ne, ok := b.ev.(heuristic.NodeEvaluator); ok {
		return ne.EvaluateNode(ctx)
	}
	return b.ev.Evaluate(ctx.State)
}

// insertState inserts s into the pool, returning its id.
func (b *base) insertState(s problem.State) (statepool.StateID, error) {
	return b.pool.Insert(s)
}

// onChildGenerated, onChildProcessed and onExpanded forward node lifecycle
// events to the heuristic engine when it implements heuristic.Lifecycle
// (lmcut's pruning Cached variant); otherwise they are no-ops.
func (b *base) onChildGenerated(parent statepool.StateID) {
	if lc, ok := b.ev.(heuristic.Lifecycle); ok {
		lc.OnChildGenerated(parent)
	}
}

func (b *base) onChildProcessed(parent statepool.StateID) {
	if lc, ok := b.ev.(heuristic.Lifecycle); ok {
		lc.OnChildProcessed(parent)
	}
}

func (b *base) onExpanded(id statepool.StateID) {
	if lc, ok := b.ev.(heuristic.Lifecycle); ok {
		lc.OnExpanded(id)
	}
}

// New constructs a driver of the given kind.
func New(kind Kind, prob *problem.Problem, gen *succgen.Generator, pool *statepool.Pool, ev heuristic.Evaluator, opts Options) (Driver, error) {
	switch kind {
	case Astar:
		return newAstar(prob, gen, pool, ev, opts), nil
	case EHC:
		return newEHC(prob, gen, pool, ev, opts), nil
	case Lazy:
		return newLazy(prob, gen, pool, ev, opts), nil
	default:
		return nil, ErrUnknownKind
	}
}
