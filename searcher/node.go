package searcher

import "mct/game"

// Node ties a domain state into the search tree: it carries the back
// reference to the edge that produced it (nil for the root) and the ordered
// list of outgoing edges. A node owns its children edges and, through them,
// the whole subtree below it.
type Node struct {
	state      game.State
	parentEdge *Edge
	children   []*Edge
}

func NewNode(state game.State) *Node {
	if state == nil {
		panic("searcher: nil state")
	}
	return &Node{state: state}
}

func (n *Node) State() game.State { return n.state }

// ParentEdge returns the edge that produced this node, or nil for the root.
// The reference is non-owning and exists only for upward statistic walks.
func (n *Node) ParentEdge() *Edge { return n.parentEdge }

func (n *Node) Children() []*Edge { return n.children }

// IsLeaf reports whether the node currently has no children in the tree. A
// leaf may still have legal actions it simply has not expanded yet; use
// Finished to tell the two apart.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Finished reports whether the underlying state has no legal actions left.
func (n *Node) Finished() bool { return n.state.Finished() }

// Expand populates the node's children from the state's candidates, one
// edge per legal action with that action's prior. Expanding a node twice is
// a contract violation.
func (n *Node) Expand() {
	if len(n.children) > 0 {
		panic("searcher: node expanded twice")
	}

	for _, c := range n.state.Candidates() {
		child := NewNode(c.State)
		e := newEdge(c.Prior, n, child)
		child.parentEdge = e
		n.children = append(n.children, e)
	}
}

// clone deep-copies the node and its whole subtree, statistics included.
// The copy shares nothing with the original, so simulating on it cannot
// touch persisted statistics.
func (n *Node) clone() *Node {
	c := &Node{state: n.state.Clone()}
	for _, e := range n.children {
		child := e.child.clone()
		edge := &Edge{
			prior:  e.prior,
			value:  e.value,
			visits: e.visits,
			parent: c,
			child:  child,
		}
		child.parentEdge = edge
		c.children = append(c.children, edge)
	}
	return c
}
