// Package statepool implements the content-addressed state pool (component
// C2): total states are packed into a bit-width-per-variable byte key and
// assigned dense, monotone, 0-based StateIDs. Two inserts of bit-for-bit
// equal content always return the same id.
//
// What & Why: the rest of the engine (successor generation, state-space
// nodes, landmark caches) indexes everything by the small integer StateID
// rather than by the state's contents, so the pool is the one place that
// owns identity and packed storage -- an arena, per the design notes' "arena
// + integer indices" ownership strategy.
package statepool
