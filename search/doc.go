// Package search implements the search drivers (component C12): A* (optimal
// under an admissible heuristic), Enforced Hill Climbing (satisficing), and
// Lazy Best-First Search, sharing stats counters, a progress callback, and a
// thread-safe abort flag.
//
// Grounded on original_source/src/search_astar.c, search_ehc.c,
// search_lazy.c and search_lazy_base.c for the per-algorithm step/insert/
// reopen semantics, and on flow/dinic.go's check-cancellation-once-per-
// iteration idiom for the abort flag.
package search
