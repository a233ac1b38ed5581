package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mct/experiments"
	"mct/opponent"
	"mct/searcher"
	"mct/tictactoe"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := experiments.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	runDemoGame(cfg)

	if err := experiments.Run("selfplay", cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

// runDemoGame plays one verbose game against a random opponent, dumping the
// tree before each commit.
func runDemoGame(cfg experiments.Config) {
	opp := opponent.NewRandom(cfg.Seed)
	tree := searcher.NewTree(searcher.NewNode(tictactoe.NewPosition()),
		searcher.WithExploration(cfg.Exploration))

	for {
		tree.Train(opp, cfg.Episodes)
		fmt.Println(tree.Dump())

		next := tree.Commit(tree.Root())
		tree.SetRoot(next)
		if next.Finished() {
			break
		}

		tree.SetRoot(searcher.NewNode(opp.Reply(next.State())))
		if tree.Root().Finished() {
			break
		}
	}

	fmt.Println("Final state:")
	fmt.Println(tree.Root().State().Render())
}
