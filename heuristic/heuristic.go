package heuristic

import (
	"math"

	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
)

// DeadEnd is the sentinel heuristic value meaning "no relaxed plan exists",
// i.e. the state is a recognized dead end. It is kept well below MaxInt64 so
// that f = g + h never overflows when g is added to it.
const DeadEnd int64 = math.MaxInt32 / 2

// Result is what Evaluate/EvaluateNode returns: a heuristic value, plus
// whatever optional byproducts the concrete engine computed this call.
// PreferredOps and Landmarks are nil unless MayReturnPreferredOps/
// MayReturnLandmarks report true for the engine that produced this Result.
type Result struct {
	Value        int64
	PreferredOps []problem.OpID
	Landmarks    []Landmark
}

// Landmark is a disjunctive-action landmark: a set of (real) operators of
// which at least one must be used by every plan reaching the current goal
// from the evaluated state, together with its LM-Cut cost contribution.
type Landmark struct {
	Ops  []problem.OpID
	Cost int64
}

// Evaluator is the capability set every heuristic engine implements.
type Evaluator interface {
	// Evaluate computes the heuristic value of s from scratch.
	Evaluate(s problem.State) (Result, error)

	// MayReturnLandmarks reports whether Result.Landmarks can be non-nil.
	MayReturnLandmarks() bool

	// MayReturnPreferredOps reports whether Result.PreferredOps can be
	// non-nil.
	MayReturnPreferredOps() bool
}

// NodeContext carries the search-node information an incremental engine
// (lmcut's local/cached variants) can exploit to avoid recomputing from
// scratch. HasParent is false for the initial state, in which case
// ParentState/ParentValue/AppliedOp are meaningless.
type NodeContext struct {
	State       problem.State
	StateID     statepool.StateID
	HasParent   bool
	ParentState problem.State
	ParentID    statepool.StateID
	ParentValue int64
	AppliedOp   problem.OpID
}

// NodeEvaluator is the optional incremental-evaluation extension: a search
// driver type-asserts for it and, when present, prefers EvaluateNode over
// Evaluate so the engine can reuse work cached from the parent node.
type NodeEvaluator interface {
	Evaluator
	EvaluateNode(ctx NodeContext) (Result, error)
}

// Lifecycle is the optional reference-counting extension a cache-backed
// incremental engine (lmcut's Cached variant) implements so a driver can
// report node lifecycle events without knowing the engine's concrete type.
// A driver that doesn't type-assert for this simply never prunes; the
// engine's cache then lives for the driver's lifetime, per the default
// resource policy.
type Lifecycle interface {
	// OnChildGenerated reports that a new child of parent was just inserted
	// into the state pool (before or regardless of evaluation).
	OnChildGenerated(parent statepool.StateID)
	// OnChildProcessed reports that a child of parent has been fully
	// evaluated (cache entry looked up or populated).
	OnChildProcessed(parent statepool.StateID)
	// OnExpanded reports that id itself has been expanded (no further
	// children will ever be generated from it).
	OnExpanded(id statepool.StateID)
}
