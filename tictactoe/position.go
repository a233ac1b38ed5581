// Package tictactoe is a complete game.State implementation, small enough
// to exercise the searcher end to end.
package tictactoe

import "mct/game"

const (
	CrossPlayer  = "X"
	NoughtPlayer = "O"
)

const fullBoard = 0b111111111

const (
	crossIdx  = 0
	noughtIdx = 1
)

// horizontal, vertical and diagonal winning lines as bitboards
var winPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// static placement priors: center strongest, then corners, then edges
var cellPriors = [9]float64{
	1.5, 1.0, 1.5,
	1.0, 2.0, 1.0,
	1.5, 1.0, 1.5,
}

// Position is one tic-tac-toe board state with cross and nought occupancy
// bitboards and the side to move. The zero value is not usable; construct
// with NewPosition.
type Position struct {
	boards     [2]uint16
	noughtTurn bool
}

// NewPosition returns the empty board with cross to move.
func NewPosition() *Position {
	return &Position{}
}

func (p *Position) Player() string {
	if p.noughtTurn {
		return NoughtPlayer
	}
	return CrossPlayer
}

func (p *Position) occupied() uint16 {
	return p.boards[crossIdx] | p.boards[noughtIdx]
}

func (p *Position) winner() (string, bool) {
	for _, pattern := range winPatterns {
		if p.boards[crossIdx]&pattern == pattern {
			return CrossPlayer, true
		}
		if p.boards[noughtIdx]&pattern == pattern {
			return NoughtPlayer, true
		}
	}
	return "", false
}

func (p *Position) Finished() bool {
	if _, won := p.winner(); won {
		return true
	}
	return p.occupied() == fullBoard
}

func (p *Position) Candidates() []game.Candidate {
	if p.Finished() {
		return nil
	}

	taken := p.occupied()
	cands := make([]game.Candidate, 0, 9)
	for cell := 0; cell < 9; cell++ {
		if taken&(1<<cell) != 0 {
			continue
		}
		cands = append(cands, game.Candidate{
			State: p.play(cell),
			Prior: cellPriors[cell],
		})
	}
	return cands
}

// play returns the position after the side to move marks cell.
func (p *Position) play(cell int) *Position {
	next := *p
	idx := crossIdx
	if p.noughtTurn {
		idx = noughtIdx
	}
	next.boards[idx] |= 1 << cell
	next.noughtTurn = !p.noughtTurn
	return &next
}

func (p *Position) Reward(player string) float64 {
	if !p.Finished() {
		panic("tictactoe: reward queried on an unfinished position")
	}

	winner, won := p.winner()
	switch {
	case !won:
		return game.Draw
	case winner == player:
		return game.Win
	default:
		return game.Loss
	}
}

func (p *Position) Equal(other game.State) bool {
	o, ok := other.(*Position)
	return ok && o.boards == p.boards && o.noughtTurn == p.noughtTurn
}

func (p *Position) Clone() game.State {
	c := *p
	return &c
}
