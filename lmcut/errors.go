package lmcut

import "errors"

// Sentinel errors for LM-Cut's invariant checks. Both conditions indicate a
// corrupted cross-reference table or a negative-cost operator slipping past
// problem.New's validation; callers MUST treat these as fatal program errors,
// never as "goal unreachable" (that case is DEAD_END, returned in-band).
var (
	// ErrEmptyCut is returned when hmax reports the goal reachable but the
	// goal-zone backward marking finds no operator crossing into it. A
	// correctly built cross-reference table with non-negative costs can
	// never produce this.
	ErrEmptyCut = errors.New("lmcut: empty cut with goal reachable")

	// ErrNonPositiveCutCost is returned when a discovered cut's minimum
	// reduced cost is <= 0, which would make the landmark-extraction loop
	// non-terminating.
	ErrNonPositiveCutCost = errors.New("lmcut: cut cost must be > 0")
)
