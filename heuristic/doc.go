// Package heuristic defines the capability-set interface shared by every
// heuristic engine (relax's h^add/h^max/h^FF/GoalCount and lmcut's LM-Cut
// variants) and consumed by package search's drivers.
//
// Grounded on original_source/plan/heur.h's vtable-of-function-pointers
// shape, translated to a Go interface with optional-capability type
// assertions in place of null function pointers.
package heuristic
