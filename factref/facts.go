package factref

import "github.com/arnesville/fdplan/problem"

// FactID is a dense unary fact id in [0, numUnary), or, once a CrossRef is
// built, one of numUnary..numUnary+numPairs-1 (h² pair facts, if enabled),
// or the two trailing artificial ids (goal fact, no-precondition fact).
type FactID int

type factKey struct {
	v   problem.VarID
	val problem.Val
}

// facts is the unary fact table: every non-private (var, val) pair gets a
// dense id in construction order (variable order, then value order).
type facts struct {
	byVarVal map[factKey]FactID
	varOf    []problem.VarID
	valOf    []problem.Val
}

func buildFacts(vars []problem.Var) *facts {
	f := &facts{byVarVal: make(map[factKey]FactID)}
	for vi, v := range vars {
		for val := 0; val < v.Range; val++ {
			pv := problem.Val(val)
			if v.IsPrivate(pv) {
				continue
			}
			id := FactID(len(f.varOf))
			f.varOf = append(f.varOf, problem.VarID(vi))
			f.valOf = append(f.valOf, pv)
			f.byVarVal[factKey{problem.VarID(vi), pv}] = id
		}
	}
	return f
}

func (f *facts) numUnary() int { return len(f.varOf) }

func (f *facts) id(v problem.VarID, val problem.Val) (FactID, bool) {
	id, ok := f.byVarVal[factKey{v, val}]
	return id, ok
}

// toFactIDs converts a partial state to a sorted slice of unary FactIDs,
// failing if any (var, val) pair it names is private.
func (f *facts) toFactIDs(ps problem.PartialState) ([]FactID, error) {
	pairs := ps.Pairs()
	out := make([]FactID, 0, len(pairs))
	for _, a := range pairs {
		id, ok := f.id(a.Var, a.Val)
		if !ok {
			return nil, ErrPrivateValue
		}
		out = append(out, id)
	}
	return out, nil
}
