package lmcut

import (
	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/pqueue"
	"github.com/arnesville/fdplan/problem"
)

const unreached = heuristic.DeadEnd * 2

// Engine is the base (non-incremental) LM-Cut evaluator. Not safe for
// concurrent use; its scratch buffers are cleared and reused across
// Evaluate calls, not reallocated (same buffer-reuse discipline as
// package relax's Engine).
type Engine struct {
	cr *factref.CrossRef
	pq *pqueue.Queue[factref.FactID]

	cost        []int64 // per VOpID, mutated across landmark-extraction rounds
	value       []int64 // per FactID, this round's hmax value
	opMaxVal    []int64 // per VOpID, running max among finalized preconditions
	critPre     []factref.FactID
	hasCritPre  []bool
	numUnsatPre []int
	inGoalZone  []bool
}

// New builds an Engine for the given cross-reference.
func New(cr *factref.CrossRef) *Engine {
	return &Engine{cr: cr, pq: pqueue.New[factref.FactID](0)}
}

// MayReturnLandmarks always reports true.
func (e *Engine) MayReturnLandmarks() bool { return true }

// MayReturnPreferredOps always reports false: LM-Cut, as implemented here,
// does not derive helpful actions from the cut sequence.
func (e *Engine) MayReturnPreferredOps() bool { return false }

// Evaluate computes the LM-Cut value of s from scratch, returning every
// landmark extracted along the way.
func (e *Engine) Evaluate(s problem.State) (heuristic.Result, error) {
	e.resetCost()
	return e.evaluateFromSeed(e.cr.StateFacts(s), 0)
}

// evaluateFromSeed runs hmax+cut-extraction rounds to convergence from seed,
// against whatever e.cost currently holds (full operator cost for a
// from-scratch call, or a parent-discharged cost table for an incremental
// one), accumulating onto the given starting total.
func (e *Engine) evaluateFromSeed(seed []factref.FactID, total int64) (heuristic.Result, error) {
	var landmarks []heuristic.Landmark
	for {
		ok := e.hmax(seed)
		if !ok {
			return heuristic.Result{Value: heuristic.DeadEnd}, nil
		}
		goalVal := e.value[e.cr.GoalFact()]
		if goalVal == 0 {
			break
		}
		cut, cost := e.findCut()
		if len(cut) == 0 {
			return heuristic.Result{}, ErrEmptyCut
		}
		if cost <= 0 {
			return heuristic.Result{}, ErrNonPositiveCutCost
		}
		total += cost
		landmarks = append(landmarks, e.landmarkFor(cut, cost))
		for o := range cut {
			e.cost[o] -= cost
		}
	}
	return heuristic.Result{Value: total, Landmarks: landmarks}, nil
}

func (e *Engine) resetCost() {
	nv := e.cr.NumVOps()
	if cap(e.cost) < nv {
		e.cost = make([]int64, nv)
	}
	e.cost = e.cost[:nv]
	for o := 0; o < nv; o++ {
		e.cost[o] = e.cr.OpCost(factref.VOpID(o))
	}
}

// dischargeLandmarks resets e.cost to full operator cost, then applies
// parent's surviving landmark set to it: a landmark whose Ops contains
// applied is discharged (taking applied already satisfies it, so it drops
// out and contributes nothing further); every other landmark survives, its
// cost is folded into the returned total, and every virtual operator
// expanded from one of its real operators has that cost subtracted so a
// later cut round doesn't charge for it twice.
func (e *Engine) dischargeLandmarks(lms []heuristic.Landmark, applied problem.OpID) int64 {
	e.resetCost()
	var total int64
	for _, lm := range lms {
		if containsOp(lm.Ops, applied) {
			continue
		}
		total += lm.Cost
		for _, op := range lm.Ops {
			for _, vo := range e.cr.VOpsForOp(op) {
				e.cost[vo] -= lm.Cost
			}
		}
	}
	return total
}

func containsOp(ops []problem.OpID, op problem.OpID) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

// hmax runs one round of forward propagation under the current e.cost,
// recording each fact's value and, per operator, the precondition fact
// achieving its maximum ("critical supporter"). Facts are finalized in
// non-decreasing value order via a priority queue, the same Dijkstra-style
// argument package relax's Engine.propagate relies on -- required here too,
// since an operator's critical supporter is only correct once every one of
// its preconditions has its final (not merely current-best) value. Returns
// false if the goal fact is unreachable.
func (e *Engine) hmax(seed []factref.FactID) bool {
	nf := e.cr.NumFacts()
	nv := e.cr.NumVOps()
	if cap(e.value) < nf {
		e.value = make([]int64, nf)
	}
	e.value = e.value[:nf]
	for i := range e.value {
		e.value[i] = unreached
	}
	if cap(e.critPre) < nv {
		e.critPre = make([]factref.FactID, nv)
		e.hasCritPre = make([]bool, nv)
		e.numUnsatPre = make([]int, nv)
		e.opMaxVal = make([]int64, nv)
	}
	e.critPre = e.critPre[:nv]
	e.hasCritPre = e.hasCritPre[:nv]
	e.numUnsatPre = e.numUnsatPre[:nv]
	e.opMaxVal = e.opMaxVal[:nv]
	for o := 0; o < nv; o++ {
		e.hasCritPre[o] = false
		e.opMaxVal[o] = 0
		e.numUnsatPre[o] = len(e.cr.OpPre(factref.VOpID(o)))
	}

	e.pq.Reset()
	setVal := func(f factref.FactID, v int64) {
		if v < e.value[f] {
			e.value[f] = v
			_, _ = e.pq.Push(int(v), f)
		}
	}
	setVal(e.cr.NoPreFact(), 0)
	for _, f := range seed {
		setVal(f, 0)
	}

	for {
		key, f, ok := e.pq.Pop()
		if !ok {
			break
		}
		if int64(key) != e.value[f] {
			continue
		}
		for _, o := range e.cr.FactPre(f) {
			if !e.hasCritPre[o] || e.value[f] > e.opMaxVal[o] {
				e.opMaxVal[o] = e.value[f]
				e.critPre[o] = f
				e.hasCritPre[o] = true
			}
			e.numUnsatPre[o]--
			if e.numUnsatPre[o] == 0 {
				total := e.opMaxVal[o] + e.cost[o]
				for _, g := range e.cr.OpEff(o) {
					setVal(g, total)
				}
			}
		}
	}
	return e.value[e.cr.GoalFact()] < unreached
}

// findCut marks the goal zone by a backward traversal over zero-cost
// critical edges of operators reached by h^max from the goal fact, then
// scans every reached operator and collects those whose critical-supporter
// fact lies outside the goal zone but some effect lies inside it. The scan
// does not restrict the cut to operators reachable from the state facts
// without passing through the goal zone.
func (e *Engine) findCut() (cut map[factref.VOpID]bool, cost int64) {
	nf := e.cr.NumFacts()
	if cap(e.inGoalZone) < nf {
		e.inGoalZone = make([]bool, nf)
	}
	e.inGoalZone = e.inGoalZone[:nf]
	for i := range e.inGoalZone {
		e.inGoalZone[i] = false
	}

	goal := e.cr.GoalFact()
	queue := []factref.FactID{goal}
	e.inGoalZone[goal] = true
	for head := 0; head < len(queue); head++ {
		f := queue[head]
		for _, o := range e.cr.FactEff(f) {
			if e.cost[o] != 0 || !e.hasCritPre[o] || e.numUnsatPre[o] != 0 {
				continue
			}
			supp := e.critPre[o]
			if !e.inGoalZone[supp] {
				e.inGoalZone[supp] = true
				queue = append(queue, supp)
			}
		}
	}

	cut = make(map[factref.VOpID]bool)
	cost = -1
	for o := 0; o < e.cr.NumVOps(); o++ {
		vo := factref.VOpID(o)
		if !e.hasCritPre[vo] || e.numUnsatPre[vo] != 0 || e.inGoalZone[e.critPre[vo]] {
			continue
		}
		crosses := false
		for _, g := range e.cr.OpEff(vo) {
			if e.inGoalZone[g] {
				crosses = true
				break
			}
		}
		if !crosses {
			continue
		}
		cut[vo] = true
		if cost == -1 || e.cost[vo] < cost {
			cost = e.cost[vo]
		}
	}
	if cost == -1 {
		cost = 0
	}
	return cut, cost
}

func (e *Engine) landmarkFor(cut map[factref.VOpID]bool, cost int64) heuristic.Landmark {
	seen := make(map[problem.OpID]bool)
	var ops []problem.OpID
	for vo := range cut {
		orig := e.cr.OrigOp(vo)
		if orig == factref.GoalOrigOp || seen[orig] {
			continue
		}
		seen[orig] = true
		ops = append(ops, orig)
	}
	return heuristic.Landmark{Ops: ops, Cost: cost}
}
