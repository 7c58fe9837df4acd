package problem

import "errors"

// Sentinel errors for problem construction and application. Callers MUST
// branch on these via errors.Is; messages are for humans only.
var (
	// ErrInvalidRange is returned when a variable's range is less than 1.
	ErrInvalidRange = errors.New("problem: variable range must be >= 1")

	// ErrInvalidValue is returned when a value falls outside a variable's range.
	ErrInvalidValue = errors.New("problem: value out of variable range")

	// ErrDuplicateVar is returned when a partial state assigns the same
	// variable twice.
	ErrDuplicateVar = errors.New("problem: duplicate variable in partial state")

	// ErrUnknownVar is returned when a variable id does not exist in the problem.
	ErrUnknownVar = errors.New("problem: unknown variable id")

	// ErrNegativeCost is returned when an operator cost is negative.
	ErrNegativeCost = errors.New("problem: operator cost must be >= 0")

	// ErrConflictingEffects is returned when two effects (the base effect and
	// a conditional effect, or two conditional effects) can write the same
	// variable -- forbidden by construction per the data model.
	ErrConflictingEffects = errors.New("problem: conflicting effects on same variable")

	// ErrWrongStateSize is returned when a State does not assign exactly
	// len(Problem.Vars) values.
	ErrWrongStateSize = errors.New("problem: state size does not match variable count")

	// ErrNotApplicable is returned by Apply when the operator's precondition
	// is not a subset of the given state.
	ErrNotApplicable = errors.New("problem: operator not applicable in state")
)
