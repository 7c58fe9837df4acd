package relax

import "errors"

// ErrUnknownMode is returned by New for a Mode outside Max/Add/FF.
var ErrUnknownMode = errors.New("relax: unknown mode")
