// Package lazylist implements the deferred-expansion lists (component C11)
// the lazy search drivers use: a (parent state id, operator) pair is queued
// the moment it is generated, and only turned into a successor state (and
// evaluated) when it is popped back off -- "lazy" in the sense that
// duplicate-detection and heuristic evaluation are both deferred to pop
// time, avoiding the work entirely for pairs that are never popped.
//
// Grounded on original_source/src/search_lazy_base.c/list.c.
package lazylist
