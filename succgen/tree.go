package succgen

import "github.com/arnesville/fdplan/problem"

// treeNode is one level of the match tree. immediate is set only at a leaf
// and holds every operator that reached it. children routes operators that
// constrain varAt to the subtree matching their required value; next holds
// the subtree, over the remaining variables, of operators that say nothing
// about varAt, and is searched whatever value varAt takes.
type treeNode struct {
	immediate []problem.OpID
	hasVar    bool
	varAt     problem.VarID
	children  map[problem.Val]*treeNode
	next      *treeNode
}

func buildNode(ops []problem.OpID, pre map[problem.OpID]problem.PartialState, order []problem.VarID) *treeNode {
	if len(order) == 0 {
		return &treeNode{immediate: ops}
	}
	v := order[0]
	rest := order[1:]
	n := &treeNode{hasVar: true, varAt: v}
	byVal := map[problem.Val][]problem.OpID{}
	var others []problem.OpID
	for _, id := range ops {
		if val, ok := pre[id].Get(v); ok {
			byVal[val] = append(byVal[val], id)
		} else {
			others = append(others, id)
		}
	}
	if len(others) > 0 {
		n.next = buildNode(others, pre, rest)
	}
	if len(byVal) > 0 {
		n.children = make(map[problem.Val]*treeNode, len(byVal))
		for val, ids := range byVal {
			n.children[val] = buildNode(ids, pre, rest)
		}
	}
	return n
}

// queryState appends every operator applicable in s to dst, in the order the
// tree happens to visit them (callers treat the result as a set).
func queryState(n *treeNode, s problem.State, dst []problem.OpID) []problem.OpID {
	for {
		dst = append(dst, n.immediate...)
		if !n.hasVar {
			return dst
		}
		if n.next != nil {
			dst = queryState(n.next, s, dst)
		}
		val, ok := s.Get(n.varAt)
		if !ok {
			return dst
		}
		child, ok := n.children[val]
		if !ok {
			return dst
		}
		n = child
	}
}

// queryPartial appends every operator whose precondition is a subset of ps to
// dst. Unlike queryState, a node whose variable is unconstrained in ps stops
// the descent on that branch (an operator requiring a value for varAt cannot
// have its precondition contained in a ps that leaves varAt unassigned).
func queryPartial(n *treeNode, ps problem.PartialState, dst []problem.OpID) []problem.OpID {
	dst = append(dst, n.immediate...)
	if !n.hasVar {
		return dst
	}
	if n.next != nil {
		dst = queryPartial(n.next, ps, dst)
	}
	val, ok := ps.Get(n.varAt)
	if !ok {
		return dst
	}
	if child, ok := n.children[val]; ok {
		dst = queryPartial(child, ps, dst)
	}
	return dst
}
