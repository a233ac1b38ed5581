package searcher

import "fmt"

// Edge is a single action transition and its accumulated search statistics.
// The prior is fixed at creation; value and visits only ever grow. The edge
// exclusively owns its child node, while the parent pointer is non-owning.
type Edge struct {
	prior  float64
	value  float64
	visits int
	parent *Node
	child  *Node
}

func newEdge(prior float64, parent, child *Node) *Edge {
	return &Edge{prior: prior, parent: parent, child: child}
}

func (e *Edge) Prior() float64 { return e.prior }
func (e *Edge) Value() float64 { return e.value }
func (e *Edge) Visits() int    { return e.visits }
func (e *Edge) Parent() *Node  { return e.parent }
func (e *Edge) Child() *Node   { return e.child }

// Avg is the visit-damped mean value, value/(1+visits). Both selection and
// commit rank edges by it.
func (e *Edge) Avg() float64 { return e.value / float64(1+e.visits) }

// Update adds reward to the edge's statistics and applies the same update
// to every edge on the path up to the root. The reward is propagated
// unmodified at every level: opponent moves are folded into the tree as
// forced transitions, not competed branches, so there is no sign flip on
// the way up.
func (e *Edge) Update(reward float64) {
	e.value += reward
	e.visits++
	if e.parent.parentEdge != nil {
		e.parent.parentEdge.Update(reward)
	}
}

func (e *Edge) String() string {
	return fmt.Sprintf("Edge{prior: %v, value: %v, visits: %d}", e.prior, e.value, e.visits)
}
