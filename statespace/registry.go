package statespace

import (
	"github.com/arnesville/fdplan/problem"
	"github.com/arnesville/fdplan/statepool"
)

// Status is a node's place in the search lifecycle.
type Status int

const (
	// Unseen means the registry has never seen this StateID.
	Unseen Status = iota
	// Open means the node is on the frontier, not yet expanded.
	Open
	// Closed means the node has been expanded.
	Closed
)

// Node is one search node: how it was reached (Parent/Op, meaningless if
// HasParent is false), its cost-so-far, its heuristic value, and status.
type Node struct {
	HasParent bool
	Parent    statepool.StateID
	Op        problem.OpID
	G         int64
	H         int64
	Status    Status
}

// Registry is a dense StateID-indexed arena of Nodes, owned by a single
// search driver (the cooperative, single-threaded concurrency model of
// SPEC_FULL §5 means no internal synchronization is needed here).
type Registry struct {
	nodes []Node
}

// New creates an empty Registry.
func New() *Registry { return &Registry{} }

func (r *Registry) ensure(id statepool.StateID) {
	if int(id) < len(r.nodes) {
		return
	}
	grown := make([]Node, int(id)+1)
	copy(grown, r.nodes)
	r.nodes = grown
}

// Get returns the node for id (Unseen status, zero fields, if never touched).
func (r *Registry) Get(id statepool.StateID) Node {
	if int(id) >= len(r.nodes) {
		return Node{}
	}
	return r.nodes[id]
}

// Relax offers a path to id with cost g via (parent, op). It accepts and
// records the path -- setting status to Open -- when id is Unseen or g
// strictly improves on the node's current G (reopen-keeps-lower-g: even a
// Closed node is reopened if a cheaper path surfaces). Returns whether the
// path was accepted.
func (r *Registry) Relax(id, parent statepool.StateID, op problem.OpID, g, h int64) bool {
	r.ensure(id)
	n := &r.nodes[id]
	if n.Status != Unseen && g >= n.G {
		return false
	}
	n.HasParent = true
	n.Parent = parent
	n.Op = op
	n.G = g
	n.H = h
	n.Status = Open
	return true
}

// RelaxRoot registers id as the initial state, with no parent, cost 0.
func (r *Registry) RelaxRoot(id statepool.StateID, h int64) {
	r.ensure(id)
	r.nodes[id] = Node{G: 0, H: h, Status: Open}
}

// MarkClosed transitions id to Closed.
func (r *Registry) MarkClosed(id statepool.StateID) {
	r.ensure(id)
	r.nodes[id].Status = Closed
}
