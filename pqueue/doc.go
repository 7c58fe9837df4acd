// Package pqueue implements the adaptive priority queue (component C4): an
// array of buckets indexed by integer key while every inserted key stays
// below B, migrating once and for all to a pairing heap the first time a
// key >= B arrives. This is the one priority queue used throughout the
// engine -- by the relaxation engine's fact frontier (package relax) and by
// the lazy list's heap variant (package lazylist).
//
// Grounded on original_source/src/prioqueue.c (the bucket-queue-then-error
// shape) and plan/pq.h (the hybrid bucket/pairing-heap design this package
// generalizes the hard error into a migration for); the pairing-heap merge
// shape is the standard lazy two-pass pairing heap.
//
// Complexity: Push/Pop amortized O(1) in bucket mode; O(log n) amortized in
// heap mode (O(1) for DecreaseKey). Migration is O(n) and happens at most
// once per Queue.
package pqueue
