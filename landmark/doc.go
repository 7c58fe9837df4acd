// Package landmark implements the landmark-set cache (component C8): a
// per-state-id store of the landmark set LM-Cut's incremental variants
// computed for that state, with reference counting so an entry can be
// pruned once every child that registered against it has been processed.
//
// Grounded on original_source/plan/search.h's landmark-cache description
// and graph/core/types.go's RWMutex-guarded map-of-id store pattern.
package landmark
