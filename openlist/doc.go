// Package openlist implements the tie-breaking open list (component C10)
// A* pulls nodes from: an ordered map from (f, h) cost pair to a FIFO queue
// of state ids sharing that pair, so states discovered at equal f, tied by
// lower h, are expanded in insertion order rather than an arbitrary one.
//
// Grounded on original_source/src/list_tiebreaking.c and graph/algorithms/
// dijkstra.go's container/heap-wrapped priority queue for the distinct-key
// ordering layer.
package openlist
