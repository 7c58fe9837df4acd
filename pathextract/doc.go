// Package pathextract implements the path extractor (component C13): given
// a goal state-space node, it walks the node's parent chain back to the
// initial state (the node with no generating operator) and emits the
// operators applied along the way in forward order, together with the
// state id each step transitions from and to.
//
// Grounded on original_source/plan/search.h's path-extraction description
// and graph/algorithms/dijkstra.go's parent-map walk-back for path
// reconstruction, generalized from a map to the statespace arena.
package pathextract
