package search

import "errors"

// ErrUnknownKind is returned by New when kind is not one of Astar, EHC, Lazy.
var ErrUnknownKind = errors.New("search: unknown driver kind")
