package statepool

import "errors"

// ErrWrongArity is returned when a state passed to Insert does not assign
// exactly the number of variables the pool was built for.
var ErrWrongArity = errors.New("statepool: state does not match variable count")
