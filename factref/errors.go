package factref

import "errors"

var (
	// ErrPrivateValue is returned by Build when an operator or the goal
	// references a (var, val) pair flagged private, which has no FactID.
	ErrPrivateValue = errors.New("factref: references a private value")

	// ErrPairFactsDisabled is returned by PairFact when h² pair facts were
	// not requested via WithH2(true).
	ErrPairFactsDisabled = errors.New("factref: pair facts not built")
)
