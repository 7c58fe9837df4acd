package relax

import (
	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/pqueue"
	"github.com/arnesville/fdplan/problem"
)

// Mode selects which delete-relaxation heuristic Engine.Evaluate computes.
type Mode int

const (
	// Max is h^max: a virtual operator's achieving cost is the maximum of
	// its precondition facts' values.
	Max Mode = iota
	// Add is h^add: a virtual operator's achieving cost is the sum of its
	// precondition facts' values.
	Add
	// FF is h^FF: forward propagation runs in Max mode to pick supporters,
	// then a backward DFS over them extracts a relaxed plan; the result is
	// the summed real-operator cost of that (deduplicated) plan.
	FF
)

const unreached = heuristic.DeadEnd * 2 // sentinel "no value assigned yet", strictly above any finite combine result

// Engine is the shared h^max/h^add/h^FF evaluator. Not safe for concurrent
// use; callers own one Engine per search driver and reuse it across
// Evaluate calls (its internal queue and scratch buffers are cleared and
// reused, not reallocated, per the evaluation-object buffer-reuse policy).
type Engine struct {
	cr   *factref.CrossRef
	mode Mode
	pq   *pqueue.Queue[factref.FactID]

	value       []int64
	opAccum     []int64
	numUnsatPre []int
	supporter   []factref.VOpID
	hasSupport  []bool
}

// New builds an Engine for the given cross-reference and mode.
func New(cr *factref.CrossRef, mode Mode) (*Engine, error) {
	if mode != Max && mode != Add && mode != FF {
		return nil, ErrUnknownMode
	}
	return &Engine{
		cr:   cr,
		mode: mode,
		pq:   pqueue.New[factref.FactID](0),
	}, nil
}

// MayReturnLandmarks always reports false: relax never produces landmarks.
func (e *Engine) MayReturnLandmarks() bool { return false }

// MayReturnPreferredOps reports true only in FF mode.
func (e *Engine) MayReturnPreferredOps() bool { return e.mode == FF }

// Evaluate computes the heuristic value of s (and, in FF mode, preferred
// operators) from scratch.
func (e *Engine) Evaluate(s problem.State) (heuristic.Result, error) {
	e.reset()
	e.seed(s)
	e.propagate()

	goalVal := e.value[e.cr.GoalFact()]
	if goalVal >= unreached {
		return heuristic.Result{Value: heuristic.DeadEnd}, nil
	}
	if e.mode != FF {
		return heuristic.Result{Value: goalVal}, nil
	}

	usedReal, usedVOps := e.extractRelaxedPlan()
	var total int64
	for _, c := range usedReal {
		total += c
	}
	pref := e.preferredOps(s, usedVOps)
	return heuristic.Result{Value: total, PreferredOps: pref}, nil
}

func (e *Engine) reset() {
	nf := e.cr.NumFacts()
	nv := e.cr.NumVOps()
	if cap(e.value) < nf {
		e.value = make([]int64, nf)
		e.hasSupport = make([]bool, nf)
		e.supporter = make([]factref.VOpID, nf)
	}
	e.value = e.value[:nf]
	e.hasSupport = e.hasSupport[:nf]
	e.supporter = e.supporter[:nf]
	for i := range e.value {
		e.value[i] = unreached
		e.hasSupport[i] = false
	}
	if cap(e.opAccum) < nv {
		e.opAccum = make([]int64, nv)
		e.numUnsatPre = make([]int, nv)
	}
	e.opAccum = e.opAccum[:nv]
	e.numUnsatPre = e.numUnsatPre[:nv]
	for o := 0; o < nv; o++ {
		e.opAccum[o] = 0
		e.numUnsatPre[o] = len(e.cr.OpPre(factref.VOpID(o)))
	}
	e.pq.Reset()
}

func (e *Engine) seed(s problem.State) {
	for _, f := range e.cr.StateFacts(s) {
		e.setValue(f, 0)
	}
	e.setValue(e.cr.NoPreFact(), 0)
}

func (e *Engine) setValue(f factref.FactID, v int64) {
	if v < e.value[f] {
		e.value[f] = v
		_, _ = e.pq.Push(int(v), f)
	}
}

func (e *Engine) propagate() {
	for {
		key, f, ok := e.pq.Pop()
		if !ok {
			return
		}
		if int64(key) != e.value[f] {
			continue // stale duplicate
		}
		for _, o := range e.cr.FactPre(f) {
			if e.mode == Add {
				e.opAccum[o] += e.value[f]
			} else if e.value[f] > e.opAccum[o] {
				e.opAccum[o] = e.value[f]
			}
			e.numUnsatPre[o]--
			if e.numUnsatPre[o] == 0 {
				total := e.opAccum[o] + e.cr.OpCost(o)
				for _, g := range e.cr.OpEff(o) {
					if total < e.value[g] {
						e.value[g] = total
						e.hasSupport[g] = true
						e.supporter[g] = o
						_, _ = e.pq.Push(int(total), g)
					}
				}
			}
		}
	}
}

// extractRelaxedPlan walks supporter pointers backward from the goal fact,
// collecting each distinct real operator's cost once (a real operator may
// contribute several virtual operators to the plan -- e.g. one per
// conditional effect -- but its cost is paid only once).
func (e *Engine) extractRelaxedPlan() (realCosts []int64, usedVOps map[factref.VOpID]bool) {
	seenFact := make(map[factref.FactID]bool)
	seenReal := make(map[problem.OpID]bool)
	usedVOps = make(map[factref.VOpID]bool)

	var walk func(f factref.FactID)
	walk = func(f factref.FactID) {
		if seenFact[f] || f == e.cr.NoPreFact() {
			return
		}
		seenFact[f] = true
		if !e.hasSupport[f] {
			return // a seed fact (true in s already), no operator needed
		}
		o := e.supporter[f]
		if usedVOps[o] {
			return
		}
		usedVOps[o] = true
		orig := e.cr.OrigOp(o)
		if orig != factref.GoalOrigOp && !seenReal[orig] {
			seenReal[orig] = true
			realCosts = append(realCosts, e.cr.OpCost(o))
		}
		for _, pre := range e.cr.OpPre(o) {
			walk(pre)
		}
	}
	walk(e.cr.GoalFact())
	return realCosts, usedVOps
}

// preferredOps approximates FF's helpful actions: operators applicable in s
// whose virtual operator is part of the extracted relaxed plan.
func (e *Engine) preferredOps(s problem.State, usedVOps map[factref.VOpID]bool) []problem.OpID {
	seen := make(map[problem.OpID]bool)
	var out []problem.OpID
	for o := range usedVOps {
		orig := e.cr.OrigOp(o)
		if orig == factref.GoalOrigOp || seen[orig] {
			continue
		}
		applicable := true
		for _, f := range e.cr.OpPre(o) {
			if f == e.cr.NoPreFact() {
				continue
			}
			v, val := e.cr.FactVarVal(f)
			got, ok := s.Get(v)
			if !ok || got != val {
				applicable = false
				break
			}
		}
		if applicable {
			seen[orig] = true
			out = append(out, orig)
		}
	}
	return out
}
