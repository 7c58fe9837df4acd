package factref

import (
	"sort"

	"github.com/arnesville/fdplan/problem"
)

// VOpID is a virtual-operator id: every real operator contributes one
// virtual op per unconditional effect (if any) plus one per conditional
// effect (§3 / SPEC_FULL §4.4); the artificial goal operator is appended
// last. VOpID indexes CrossRef.opPre/opEff/Cost/OrigOp.
type VOpID int

// Option configures Build.
type Option func(*config)

type config struct {
	h2       bool
	simplify bool
}

// WithH2 enables construction of the h² pair-fact table (PairFact becomes
// usable). Off by default: most heuristics only need unary facts.
func WithH2(enabled bool) Option { return func(c *config) { c.h2 = enabled } }

// WithSimplify enables the optional operator-simplification pass: when two
// virtual operators can produce the same effect fact and one's precondition
// is always satisfied whenever the other's is, the fact is kept only on the
// cheaper (ties: lower VOpID) operator.
func WithSimplify(enabled bool) Option { return func(c *config) { c.simplify = enabled } }

// CrossRef is the built fact identifier and cross-reference table (C5).
type CrossRef struct {
	facts *facts
	pairs *pairTable

	numUnary  int
	numFacts  int
	goalFact  FactID
	noPreFact FactID

	opPre  [][]FactID
	opEff  [][]FactID
	origOp []problem.OpID // per VOpID; -1 for the goal operator
	cost   []int64

	factPre [][]VOpID // per FactID: virtual ops whose precondition contains it
	factEff [][]VOpID // per FactID: virtual ops whose effect contains it
	opVOps  [][]VOpID // per real problem.OpID: virtual ops it expanded into

	goalOp VOpID
}

// GoalOrigOp is the sentinel origOp value for the artificial goal operator.
const GoalOrigOp = problem.OpID(-1)

// Build constructs the cross-reference table for prob.
func Build(prob *problem.Problem, opts ...Option) (*CrossRef, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}

	ft := buildFacts(prob.Vars)
	pt := buildPairTable(ft.numUnary(), cfg.h2)
	base := pt.total()
	cr := &CrossRef{
		facts:     ft,
		pairs:     pt,
		numUnary:  ft.numUnary(),
		goalFact:  FactID(base),
		noPreFact: FactID(base + 1),
		numFacts:  base + 2,
	}

	for _, op := range prob.Ops {
		preBase, err := ft.toFactIDs(op.Pre)
		if err != nil {
			return nil, err
		}
		if op.Eff.Len() > 0 {
			eff, err := ft.toFactIDs(op.Eff)
			if err != nil {
				return nil, err
			}
			cr.addVOp(withFakePre(preBase, cr.noPreFact), eff, op.ID, op.Cost)
		}
		for _, ce := range op.CondEff {
			cePre, err := ft.toFactIDs(ce.Pre)
			if err != nil {
				return nil, err
			}
			ceEff, err := ft.toFactIDs(ce.Eff)
			if err != nil {
				return nil, err
			}
			merged := withFakePre(unionSorted(preBase, cePre), cr.noPreFact)
			cr.addVOp(merged, ceEff, op.ID, op.Cost)
		}
	}

	goalPre, err := ft.toFactIDs(prob.Goal)
	if err != nil {
		return nil, err
	}
	cr.goalOp = VOpID(len(cr.opPre))
	cr.addVOp(withFakePre(goalPre, cr.noPreFact), []FactID{cr.goalFact}, GoalOrigOp, 0)

	if cfg.simplify {
		cr.simplify()
	}
	cr.buildReverseIndex()
	return cr, nil
}

func (cr *CrossRef) addVOp(pre, eff []FactID, orig problem.OpID, cost int64) {
	cr.opPre = append(cr.opPre, pre)
	cr.opEff = append(cr.opEff, eff)
	cr.origOp = append(cr.origOp, orig)
	cr.cost = append(cr.cost, cost)
}

func withFakePre(ids []FactID, noPre FactID) []FactID {
	if len(ids) == 0 {
		return []FactID{noPre}
	}
	return ids
}

// unionSorted merges two ascending, already-deduplicated FactID slices,
// dropping duplicates that appear in both.
func unionSorted(a, b []FactID) []FactID {
	out := make([]FactID, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// isFactSubset reports whether every id in small also occurs in big; both
// must be ascending-sorted.
func isFactSubset(small, big []FactID) bool {
	j := 0
	for _, f := range small {
		for j < len(big) && big[j] < f {
			j++
		}
		if j >= len(big) || big[j] != f {
			return false
		}
	}
	return true
}

// simplify drops a fact from a virtual operator's effect list when a
// cheaper (or equal-cost, lower-VOpID) operator also produces it and is
// applicable whenever this one is.
func (cr *CrossRef) simplify() {
	producers := make(map[FactID][]VOpID)
	for o := VOpID(0); int(o) < len(cr.opEff); o++ {
		if o == cr.goalOp {
			continue
		}
		for _, f := range cr.opEff[o] {
			producers[f] = append(producers[f], o)
		}
	}
	drop := make(map[VOpID]map[FactID]bool)
	for f, ops := range producers {
		for _, o1 := range ops {
			for _, o2 := range ops {
				if o1 == o2 {
					continue
				}
				noPre := len(cr.opPre[o1]) == 1 && cr.opPre[o1][0] == cr.noPreFact
				if !noPre && !isFactSubset(cr.opPre[o1], cr.opPre[o2]) {
					continue
				}
				better := cr.cost[o1] < cr.cost[o2] || (cr.cost[o1] == cr.cost[o2] && o1 < o2)
				if !better {
					continue
				}
				if drop[o2] == nil {
					drop[o2] = make(map[FactID]bool)
				}
				drop[o2][f] = true
			}
		}
	}
	for o, facts := range drop {
		kept := cr.opEff[o][:0]
		for _, f := range cr.opEff[o] {
			if !facts[f] {
				kept = append(kept, f)
			}
		}
		cr.opEff[o] = kept
	}
}

func (cr *CrossRef) buildReverseIndex() {
	cr.factPre = make([][]VOpID, cr.numFacts)
	cr.factEff = make([][]VOpID, cr.numFacts)

	numOps := 0
	for _, orig := range cr.origOp {
		if orig != GoalOrigOp && int(orig)+1 > numOps {
			numOps = int(orig) + 1
		}
	}
	cr.opVOps = make([][]VOpID, numOps)

	for o := VOpID(0); int(o) < len(cr.opPre); o++ {
		for _, f := range cr.opPre[o] {
			cr.factPre[f] = append(cr.factPre[f], o)
		}
		for _, f := range cr.opEff[o] {
			cr.factEff[f] = append(cr.factEff[f], o)
		}
		if orig := cr.origOp[o]; orig != GoalOrigOp {
			cr.opVOps[orig] = append(cr.opVOps[orig], o)
		}
	}
}

// NumUnary returns the number of unary facts (excludes pairs, goal, no-pre).
func (cr *CrossRef) NumUnary() int { return cr.numUnary }

// NumFacts returns the total fact count, including artificial facts.
func (cr *CrossRef) NumFacts() int { return cr.numFacts }

// NumVOps returns the number of virtual operators, including the goal op.
func (cr *CrossRef) NumVOps() int { return len(cr.opPre) }

// GoalFact returns the artificial goal fact id.
func (cr *CrossRef) GoalFact() FactID { return cr.goalFact }

// GoalOp returns the artificial goal operator id.
func (cr *CrossRef) GoalOp() VOpID { return cr.goalOp }

// NoPreFact returns the artificial no-precondition fact id.
func (cr *CrossRef) NoPreFact() FactID { return cr.noPreFact }

// Fact looks up the unary fact id for (v, val); ok is false if val is
// private or out of range.
func (cr *CrossRef) Fact(v problem.VarID, val problem.Val) (FactID, bool) {
	return cr.facts.id(v, val)
}

// FactVarVal returns the (var, val) pair a unary FactID names. Only valid
// for f < NumUnary().
func (cr *CrossRef) FactVarVal(f FactID) (problem.VarID, problem.Val) {
	return cr.facts.varOf[f], cr.facts.valOf[f]
}

// PairFact returns the h² pair-fact id for unary facts a and b. Returns
// ErrPairFactsDisabled if WithH2 was not set.
func (cr *CrossRef) PairFact(a, b FactID) (FactID, error) {
	if !cr.pairs.enabled {
		return 0, ErrPairFactsDisabled
	}
	va, _ := cr.FactVarVal(a)
	vb, _ := cr.FactVarVal(b)
	return cr.pairs.pairID(a, b, va, vb), nil
}

// OpPre returns the precondition fact ids of virtual operator o, ascending.
func (cr *CrossRef) OpPre(o VOpID) []FactID { return cr.opPre[o] }

// OpEff returns the effect fact ids of virtual operator o, ascending.
func (cr *CrossRef) OpEff(o VOpID) []FactID { return cr.opEff[o] }

// OpCost returns the cost of virtual operator o (its originating real
// operator's cost).
func (cr *CrossRef) OpCost(o VOpID) int64 { return cr.cost[o] }

// OrigOp returns the real operator o was expanded from, or GoalOrigOp for
// the artificial goal operator.
func (cr *CrossRef) OrigOp(o VOpID) problem.OpID { return cr.origOp[o] }

// FactPre returns the virtual operators whose precondition contains f.
func (cr *CrossRef) FactPre(f FactID) []VOpID { return cr.factPre[f] }

// FactEff returns the virtual operators whose effect contains f.
func (cr *CrossRef) FactEff(f FactID) []VOpID { return cr.factEff[f] }

// VOpsForOp returns the virtual operators op expanded into (one per
// unconditional effect plus one per conditional effect). Used by incremental
// heuristics to map a landmark's real operators back onto the VOpID-indexed
// cost table.
func (cr *CrossRef) VOpsForOp(op problem.OpID) []VOpID { return cr.opVOps[op] }

// StateFacts returns the sorted unary fact ids true in s.
func (cr *CrossRef) StateFacts(s problem.State) []FactID {
	out := make([]FactID, 0, s.Len())
	for v, val := range s.Vals() {
		if f, ok := cr.facts.id(problem.VarID(v), val); ok {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
