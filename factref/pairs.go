package factref

import "github.com/arnesville/fdplan/problem"

// pairTable assigns h² pair-fact ids to every pair of unary facts (f1, f2),
// f1 < f2, that belong to distinct variables, via a prefix-sum table:
// pairID(f1, f2) = f2 + offset[f1]. Same-variable pairs (including f1==f2)
// are never meaningful -- two different values of one variable can never
// hold at once -- and fall back to returning the smaller unary id itself, so
// the table need not special-case them at allocation time: they occupy
// unused ids in the dense upper-triangular numbering and are simply never
// produced by PairFact.
type pairTable struct {
	enabled  bool
	numUnary int
	rowStart []int // rowStart[f1], f1 in [0, numUnary]; rowStart[numUnary] == total id count
}

func buildPairTable(numUnary int, enabled bool) *pairTable {
	pt := &pairTable{enabled: enabled, numUnary: numUnary}
	if !enabled {
		return pt
	}
	rowStart := make([]int, numUnary+1)
	next := numUnary
	for f1 := 0; f1 < numUnary; f1++ {
		rowStart[f1] = next
		next += numUnary - f1 - 1 // valid f2 in (f1, numUnary)
	}
	rowStart[numUnary] = next
	pt.rowStart = rowStart
	return pt
}

// total returns the number of ids consumed (unary, plus pairs if enabled).
func (pt *pairTable) total() int {
	if !pt.enabled {
		return pt.numUnary
	}
	return pt.rowStart[pt.numUnary]
}

// pairID returns the fact id for the unordered pair (a, b), given the
// variables they belong to. Same-variable pairs fall back to the smaller id.
func (pt *pairTable) pairID(a, b FactID, va, vb problem.VarID) FactID {
	if a > b {
		a, b = b, a
	}
	if !pt.enabled || va == vb {
		return a
	}
	offset := pt.rowStart[a] - int(a) - 1
	return FactID(offset + int(b))
}

// inverse returns (f1, f2) for a pair id p via binary search over rowStart.
// p must satisfy numUnary <= p < total().
func (pt *pairTable) inverse(p FactID) (FactID, FactID) {
	lo, hi := 0, pt.numUnary-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if pt.rowStart[mid] <= int(p) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	offset := pt.rowStart[lo] - lo - 1
	return FactID(lo), FactID(int(p) - offset)
}
