package succgen

import "errors"

// ErrEmptyOrder is returned by New when the supplied variable order omits a
// variable referenced by some operator's precondition.
var ErrEmptyOrder = errors.New("succgen: variable order omits a referenced variable")
