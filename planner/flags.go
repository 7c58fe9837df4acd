package planner

// HeuristicKind selects the heuristic engine a Planner evaluates states
// with.
type HeuristicKind int

const (
	GoalCount HeuristicKind = iota
	HMax
	HAdd
	HFF
	LMCut
	LMCutIncLocal
	LMCutIncCache
)

// Flags is the closed set of construction-time knobs the heuristic factory
// API (spec §6) draws from, mapped onto Go fields instead of a bitmask:
// UnitCost/CostPlusOne rewrite operator costs before the cross-reference is
// built; H2 enables pair-fact ids in the cross-reference (unused by any
// heuristic in this package today, but threaded through so a future
// h^max2/LM-Cut2 variant can consume it); CachePrune enables landmark-cache
// pruning for LMCutIncCache (LMCutIncLocal keeps no cache and ignores it).
type Flags struct {
	UnitCost    bool
	CostPlusOne bool
	H2          bool
	CachePrune  bool
}

func (f Flags) costOf(cost int64) int64 {
	switch {
	case f.UnitCost:
		return 1
	case f.CostPlusOne:
		return cost + 1
	default:
		return cost
	}
}
