// Package searcher implements a Monte Carlo tree search over abstract
// two-agent decision states. The searching agent's candidate moves branch
// the tree; the opponent's replies are folded in as forced transitions, so
// the tree alternates in two-ply layers from the searcher's perspective.
package searcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"mct/game"
)

type Option func(t *Tree)

// Tree holds exactly one live root node at a time and runs the four search
// phases (selection, expansion, roll-out, backpropagation) against it. It
// is single-threaded: every phase runs to completion before the next
// episode begins, and nothing else mutates the tree.
type Tree struct {
	root    *Node
	c       float64
	rng     *rand.Rand
	metrics Collector
}

func WithExploration(c float64) Option {
	return func(t *Tree) {
		if c > 0 {
			t.c = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(t *Tree) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		if rng != nil {
			t.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(t *Tree) {
		t.metrics = NewCollector()
	}
}

func NewTree(root *Node, options ...Option) *Tree {
	if root == nil {
		panic("searcher: nil root")
	}
	t := &Tree{ // Default values
		root:    root,
		c:       DefaultExploration,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: NewNoCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Tree) Root() *Node { return t.root }

// SetRoot installs node as the tree's root for the next decision point and
// severs its link to the discarded tree above it, so statistic walks and
// selection scores never reach past the live root.
func (t *Tree) SetRoot(node *Node) {
	if node == nil {
		panic("searcher: nil root")
	}
	node.parentEdge = nil
	t.root = node
}

// Train runs the selection, expansion, roll-out and backpropagation
// sequence a fixed number of iterations, unconditionally, mutating edge
// statistics in place. There is no early stopping or convergence check.
func (t *Tree) Train(opponent game.Opponent, iterations int) SearchMetric {
	if opponent == nil {
		panic("searcher: nil opponent")
	}

	t.metrics.Start()
	for i := 0; i < iterations; i++ {
		t.episode(opponent)
		t.metrics.AddEpisode()
	}
	return t.metrics.Complete()
}

// episode performs one full selection, expansion, roll-out and
// backpropagation pass.
func (t *Tree) episode(opponent game.Opponent) {
	// Selection: softmax-weighted stochastic descent, stopping at the
	// first node without children.
	cur := t.root
	for !cur.IsLeaf() {
		cur = sampleEdge(cur.children, t.c, t.rng).child
	}

	// A finished state is scored directly; nothing to expand.
	if cur.Finished() {
		t.metrics.AddTerminalHit()
		if cur.parentEdge != nil {
			cur.parentEdge.Update(cur.state.Reward(cur.state.Player()))
		}
		return
	}

	// Expansion, folding the opponent's reply into every non-terminal
	// child as a single forced transition. The opponent contributes no
	// branching of its own.
	sel := cur
	sel.Expand()
	for _, e := range sel.children {
		if e.child.Finished() {
			continue
		}
		reply := NewNode(opponent.Reply(e.child.state))
		syn := newEdge(1, e.child, reply)
		reply.parentEdge = syn
		e.child.children = []*Edge{syn}
	}

	// Roll-out on a detached copy so the simulation cannot corrupt the
	// persisted statistics. Plies strictly alternate, starting with the
	// opponent ply already resolved during expansion.
	action := sel.children[t.rng.Intn(len(sel.children))]
	cur = action.child.clone()
	plies := 0
	first, opponentPly := true, true
	for !cur.Finished() {
		if opponentPly {
			if first {
				first = false
				cur = cur.children[0].child
			} else {
				cur = NewNode(opponent.Reply(cur.state))
			}
		} else {
			cur.Expand()
			cur = cur.children[t.rng.Intn(len(cur.children))].child
		}
		opponentPly = !opponentPly
		plies++
	}
	t.metrics.AddRollout(plies)

	// Backpropagation: the outcome, seen from the expanded node's turn
	// owner, lands on the rolled-out action and climbs the real tree.
	action.Update(cur.state.Reward(sel.state.Player()))
}

// Commit converts the accumulated statistics into an actual move: the root
// child edge with the best visit-damped mean value, ties broken by
// enumeration order. The committed child's own subtree is forgotten so the
// next round of training explores it fresh. The caller must equal the
// current root and is responsible for installing the returned node as the
// next root (see SetRoot); Commit does not re-root the tree itself.
func (t *Tree) Commit(node *Node) *Node {
	if !t.root.state.Equal(node.state) {
		panic("searcher: commit target is not the current root")
	}
	if len(t.root.children) == 0 {
		panic("searcher: root has no children")
	}

	best := t.root.children[0]
	for _, e := range t.root.children[1:] {
		if e.Avg() > best.Avg() {
			best = e
		}
	}

	log.Debug().
		Float64("avg", best.Avg()).
		Int("visits", best.visits).
		Msg("committing move")

	best.child.children = nil
	return best.child
}

// Dump renders the root, its immediate children and each child's average
// value. For human inspection only, not part of the algorithmic contract.
func (t *Tree) Dump() string {
	var b strings.Builder
	b.WriteString("Current state:\n")
	b.WriteString(t.root.state.Render())
	b.WriteString("\nNext states:\n")
	for _, e := range t.root.children {
		b.WriteString(e.child.state.Render())
		fmt.Fprintf(&b, "\nValue: %v\n\n", e.Avg())
	}
	return b.String()
}
