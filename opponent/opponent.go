// Package opponent provides ready-made game.Opponent policies for driving
// searches, experiments and tests. The searcher treats all of them as
// opaque.
package opponent

import (
	"time"

	"golang.org/x/exp/rand"

	"mct/game"
)

// Func adapts a plain function into a game.Opponent, for scripted replies.
type Func func(game.State) game.State

func (f Func) Reply(s game.State) game.State { return f(s) }

// Random replies uniformly at random among the legal candidates.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random opponent. A zero seed picks a time-based one.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Reply(s game.State) game.State {
	cands := s.Candidates()
	if len(cands) == 0 {
		panic("opponent: reply requested on a finished state")
	}
	return cands[r.rng.Intn(len(cands))].State
}

// Greedy replies with the highest-prior candidate, first one winning ties.
type Greedy struct{}

func (Greedy) Reply(s game.State) game.State {
	cands := s.Candidates()
	if len(cands) == 0 {
		panic("opponent: reply requested on a finished state")
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Prior > best.Prior {
			best = c
		}
	}
	return best.State
}
