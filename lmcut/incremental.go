package lmcut

import (
	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/landmark"
	"github.com/arnesville/fdplan/statepool"
)

// Local wraps Engine with the heuristic.NodeEvaluator extension. It carries
// no cross-node state: the right choice when a driver wants the discharge
// shortcut within a single expansion step but not a cache's memory
// footprint or the pruning protocol Cached needs.
type Local struct {
	*Engine
}

// NewLocal builds a Local evaluator for the given cross-reference.
func NewLocal(e *Engine) *Local { return &Local{Engine: e} }

// EvaluateNode recomputes the parent's landmark set fresh (no cache), then
// discharges it against the applied operator and runs the remaining cut
// rounds from the child's own seed facts -- heurValIncLocal's algorithm.
func (l *Local) EvaluateNode(ctx heuristic.NodeContext) (heuristic.Result, error) {
	if !ctx.HasParent {
		return l.Evaluate(ctx.State)
	}
	parent, err := l.Evaluate(ctx.ParentState)
	if err != nil {
		return heuristic.Result{}, err
	}
	total := l.dischargeLandmarks(parent.Landmarks, ctx.AppliedOp)
	return l.evaluateFromSeed(l.cr.StateFacts(ctx.State), total)
}

// Cached wraps Engine with landmark-set reuse across a search node and its
// parent, backed by a landmark.Cache keyed by StateID: a parent's landmark
// set is looked up (or computed once and stored) and then discharged against
// every child, instead of every child recomputing the parent's landmarks
// from scratch the way Local does.
type Cached struct {
	*Engine
	store *landmark.Cache
	prune bool
}

// NewCached builds a Cached evaluator for the given cross-reference and
// landmark store.
func NewCached(e *Engine, store *landmark.Cache) *Cached {
	return &Cached{Engine: e, store: store}
}

// NewCachedPruning builds a Cached evaluator that also implements
// heuristic.Lifecycle, so a driver reporting node lifecycle events lets the
// store prune an entry once every child that registered against it has been
// processed (the CachePrune flag, spec §6 closed flag set).
func NewCachedPruning(e *Engine, store *landmark.Cache) *Cached {
	return &Cached{Engine: e, store: store, prune: true}
}

// OnChildGenerated registers a pending child against parent's cache entry.
func (c *Cached) OnChildGenerated(parent statepool.StateID) {
	if c.prune {
		c.store.RegisterChild(parent)
	}
}

// OnChildProcessed marks one of parent's registered children as resolved.
func (c *Cached) OnChildProcessed(parent statepool.StateID) {
	if c.prune {
		c.store.ChildProcessed(parent)
	}
}

// OnExpanded marks id as fully expanded; combined with every child being
// processed, this lets the store prune id's entry.
func (c *Cached) OnExpanded(id statepool.StateID) {
	if c.prune {
		c.store.MarkExpanded(id)
	}
}

// EvaluateNode fetches (or computes and stores) the parent's landmark set,
// discharges it against the applied operator, and always runs a fresh
// hmax+cut-extraction pass from the child's own seed facts -- a state
// transition drops old unary facts from the relaxation seed as well as
// adding new ones, so the child's value is never a safe copy of the
// parent's, discharged or not. heurValIncCache's algorithm.
func (c *Cached) EvaluateNode(ctx heuristic.NodeContext) (heuristic.Result, error) {
	if !ctx.HasParent {
		r, err := c.Evaluate(ctx.State)
		if err != nil {
			return heuristic.Result{}, err
		}
		c.store.Store(ctx.StateID, r.Value, r.Landmarks)
		return r, nil
	}

	var parentLandmarks []heuristic.Landmark
	if _, lms, ok := c.store.Get(ctx.ParentID); ok {
		parentLandmarks = lms
	} else {
		pr, err := c.Evaluate(ctx.ParentState)
		if err != nil {
			return heuristic.Result{}, err
		}
		c.store.Store(ctx.ParentID, pr.Value, pr.Landmarks)
		parentLandmarks = pr.Landmarks
	}

	total := c.dischargeLandmarks(parentLandmarks, ctx.AppliedOp)
	r, err := c.evaluateFromSeed(c.cr.StateFacts(ctx.State), total)
	if err != nil {
		return heuristic.Result{}, err
	}
	c.store.Store(ctx.StateID, r.Value, r.Landmarks)
	return r, nil
}
