package tictactoe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mct/game"
)

// at plays the given cells in order, alternating X then O.
func at(cells ...int) *Position {
	p := NewPosition()
	for _, cell := range cells {
		p = p.play(cell)
	}
	return p
}

func TestPlayer(t *testing.T) {
	t.Run("cross moves first and turns alternate", func(t *testing.T) {
		p := NewPosition()
		require.Equal(t, CrossPlayer, p.Player(), "Cross should move first")

		p = p.play(4)
		require.Equal(t, NoughtPlayer, p.Player(), "Nought should move second")

		p = p.play(0)
		require.Equal(t, CrossPlayer, p.Player(), "Turn should alternate back to cross")
	})
}

func TestCandidates(t *testing.T) {
	t.Run("enumerates every empty cell", func(t *testing.T) {
		require.Len(t, NewPosition().Candidates(), 9, "Empty board should offer 9 actions")
		require.Len(t, at(4).Candidates(), 8, "One occupied cell should leave 8 actions")
	})

	t.Run("successors do not mutate the parent", func(t *testing.T) {
		p := NewPosition()
		cands := p.Candidates()

		require.Equal(t, uint16(0), p.occupied(), "Enumeration should leave the parent untouched")
		for _, c := range cands {
			require.Equal(t, NoughtPlayer, c.State.Player(), "Each successor should flip the turn")
		}
	})

	t.Run("weights center over corners over edges", func(t *testing.T) {
		cands := NewPosition().Candidates()

		require.Equal(t, 2.0, cands[4].Prior, "Center should carry the strongest prior")
		require.Equal(t, 1.5, cands[0].Prior, "Corners should beat edges")
		require.Equal(t, 1.0, cands[1].Prior, "Edges should carry the weakest prior")
	})

	t.Run("is empty on a finished position", func(t *testing.T) {
		won := at(0, 3, 1, 4, 2) // X takes the top row
		require.Empty(t, won.Candidates(), "Finished position should enumerate no actions")
	})
}

func TestFinished(t *testing.T) {
	t.Run("detects a completed line", func(t *testing.T) {
		require.True(t, at(0, 3, 1, 4, 2).Finished(), "Top row for X should finish the game")
		require.True(t, at(0, 2, 3, 5, 1, 8).Finished(), "Right column for O should finish the game")
		require.True(t, at(0, 1, 4, 2, 8).Finished(), "Diagonal for X should finish the game")
	})

	t.Run("detects a full-board draw", func(t *testing.T) {
		drawn := at(0, 4, 8, 1, 7, 6, 2, 5, 3)
		require.True(t, drawn.Finished(), "Full board should be finished")
		require.Equal(t, game.Draw, drawn.Reward(CrossPlayer), "Full board without a line should draw")
	})

	t.Run("an ongoing game is not finished", func(t *testing.T) {
		require.False(t, NewPosition().Finished(), "Empty board should not be finished")
		require.False(t, at(0, 4, 8).Finished(), "Three scattered marks should not finish the game")
	})
}

func TestReward(t *testing.T) {
	t.Run("scores from the asked player's perspective", func(t *testing.T) {
		won := at(0, 3, 1, 4, 2) // X wins
		require.Equal(t, game.Win, won.Reward(CrossPlayer), "Winner should see a win")
		require.Equal(t, game.Loss, won.Reward(NoughtPlayer), "Loser should see a loss")
	})

	t.Run("panics on an unfinished position", func(t *testing.T) {
		require.Panics(t, func() {
			NewPosition().Reward(CrossPlayer)
		}, "Reward is defined only on finished positions")
	})
}

func TestEqual(t *testing.T) {
	t.Run("compares board and turn", func(t *testing.T) {
		require.True(t, at(0, 4).Equal(at(0, 4)), "Same moves should produce equal positions")
		require.False(t, at(0, 4).Equal(at(4, 0)), "Different mark owners should differ")
		require.False(t, at(0).Equal(NewPosition()), "Different boards should differ")
	})
}

func TestClone(t *testing.T) {
	t.Run("returns an independent copy", func(t *testing.T) {
		p := at(0, 4)
		c := p.Clone().(*Position)

		c.boards[crossIdx] |= 1 << 8
		require.False(t, p.Equal(c), "Mutating the clone should not affect the original")
	})
}

func TestRender(t *testing.T) {
	t.Run("draws a 3x3 grid with marks", func(t *testing.T) {
		out := at(0, 4).Render()

		require.Equal(t, 3, strings.Count(out, "\n"), "Render should emit three rows")
		require.Contains(t, out, "X", "Cross marks should be drawn")
		require.Contains(t, out, "O", "Nought marks should be drawn")
		require.Contains(t, out, ".", "Empty cells should be drawn")
	})
}
