package planner

import (
	"errors"

	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/heuristic"
	"github.com/arnesville/fdplan/landmark"
	"github.com/arnesville/fdplan/lmcut"
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/relax"
)

// ErrUnknownHeuristicKind is returned by newHeuristic for an out-of-range Kind.
var ErrUnknownHeuristicKind = errors.New("planner: unknown heuristic kind")

// newHeuristic is the heuristic factory API of spec §6: it builds the
// cross-reference once and instantiates the requested engine over it.
func newHeuristic(prob *problem.Problem, kind HeuristicKind, flags Flags) (heuristic.Evaluator, *factref.CrossRef, error) {
	cr, err := factref.Build(prob, factref.WithH2(flags.H2))
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case GoalCount:
		return relax.NewGoalCount(prob.Goal), cr, nil
	case HMax:
		e, err := relax.New(cr, relax.Max)
		if err != nil {
			return nil, nil, err
		}
		return e, cr, nil
	case HAdd:
		e, err := relax.New(cr, relax.Add)
		if err != nil {
			return nil, nil, err
		}
		return e, cr, nil
	case HFF:
		e, err := relax.New(cr, relax.FF)
		if err != nil {
			return nil, nil, err
		}
		return e, cr, nil
	case LMCut:
		return lmcut.New(cr), cr, nil
	case LMCutIncLocal:
		return lmcut.NewLocal(lmcut.New(cr)), cr, nil
	case LMCutIncCache:
		if flags.CachePrune {
			return lmcut.NewCachedPruning(lmcut.New(cr), landmark.New()), cr, nil
		}
		return lmcut.NewCached(lmcut.New(cr), landmark.New()), cr, nil
	default:
		return nil, nil, ErrUnknownHeuristicKind
	}
}
