package pqueue

import "errors"

var (
	// ErrNegativeKey is returned by Push when key < 0.
	ErrNegativeKey = errors.New("pqueue: negative key")

	// ErrBucketMode is returned by DecreaseKey when the queue has not yet
	// migrated to the pairing heap; bucket-mode callers should Push a
	// duplicate entry instead and rely on stale-on-pop skipping.
	ErrBucketMode = errors.New("pqueue: decrease-key unavailable in bucket mode")

	// ErrKeyIncreased is returned by DecreaseKey when newKey is not <= the
	// handle's current key.
	ErrKeyIncreased = errors.New("pqueue: decrease-key given a larger key")
)
