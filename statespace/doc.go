// Package statespace implements the state-space node registry (component
// C9): a dense, StateID-indexed arena of search nodes (parent, generating
// operator, g-cost, h-value, NEW/OPEN/CLOSED status), with the
// reopen-keeps-lower-g policy a search driver needs when a cheaper path to
// an already-closed state is later discovered.
//
// Grounded on original_source/plan/search.h's node field layout and
// graph/core/types.go's dense-id-indexed slice-of-structs arena style.
package statespace
