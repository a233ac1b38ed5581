// Package experiments runs recorded self-play games of the searcher against
// a configured opponent and stores the results as CSV files.
package experiments

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mct/experiments/metrics"
	"mct/game"
	"mct/opponent"
	"mct/searcher"
	"mct/tictactoe"
)

// DrawResult marks games without a winner in the game records.
const DrawResult = "draw"

// Run plays cfg.Games games of tic-tac-toe, the searcher as cross against
// the configured opponent as nought, and stores per-game and per-move
// records under results/<name>/<timestamp>.
func Run(name string, cfg Config) error {
	opp, err := newOpponent(cfg)
	if err != nil {
		return err
	}

	log.Info().Msgf("starting %s experiment...", name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i := 0; i < cfg.Games; i++ {
		winner, gameRecord, gameMoves := playGame(cfg, opp, i+1)
		gameRecords = append(gameRecords, gameRecord)
		moveRecords = append(moveRecords, gameMoves...)

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, cfg.Games, winner)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}

	err = writer.WriteAgentConfigs([]metrics.AgentConfig{{
		ID:          1,
		Episodes:    cfg.Episodes,
		Exploration: cfg.Exploration,
		Seed:        cfg.Seed,
		Opponent:    cfg.Opponent,
	}})
	if err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return err
	}
	log.Info().Msg("stored move records")

	return nil
}

// playGame runs a single recorded game and returns the winner.
func playGame(cfg Config, opp game.Opponent, id int) (string, metrics.GameRecord, []metrics.MoveRecord) {
	start := time.Now()

	options := []searcher.Option{
		searcher.WithExploration(cfg.Exploration),
		searcher.WithMetrics(),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed+uint64(id)))
	}
	tree := searcher.NewTree(searcher.NewNode(tictactoe.NewPosition()), options...)

	moveRecords := []metrics.MoveRecord{}
	step := 0
	var final game.State
	for {
		metric := tree.Train(opp, cfg.Episodes)
		next := tree.Commit(tree.Root())
		tree.SetRoot(next)
		step++
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:         id,
			Step:         step,
			Player:       tictactoe.CrossPlayer,
			SearchMetric: metric,
		})
		if next.Finished() {
			final = next.State()
			break
		}

		reply := opp.Reply(next.State())
		tree.SetRoot(searcher.NewNode(reply))
		step++
		if tree.Root().Finished() {
			final = tree.Root().State()
			break
		}
	}

	winner := winnerOf(final)
	record := metrics.GameRecord{
		ID:        id,
		Agent:     1,
		Winner:    winner,
		StartTime: start,
		Duration:  time.Since(start),
		Moves:     step,
	}
	return winner, record, moveRecords
}

func newOpponent(cfg Config) (game.Opponent, error) {
	switch cfg.Opponent {
	case "", "random":
		return opponent.NewRandom(cfg.Seed), nil
	case "greedy":
		return opponent.Greedy{}, nil
	default:
		return nil, errors.Errorf("unknown opponent policy %q", cfg.Opponent)
	}
}

func winnerOf(final game.State) string {
	switch {
	case final.Reward(tictactoe.CrossPlayer) == game.Win:
		return tictactoe.CrossPlayer
	case final.Reward(tictactoe.NoughtPlayer) == game.Win:
		return tictactoe.NoughtPlayer
	}
	return DrawResult
}
