package metrics

import (
	"time"

	"mct/searcher"
)

// AgentConfig identifies one search configuration under experiment.
type AgentConfig struct {
	ID          int
	Episodes    int
	Exploration float64
	Seed        uint64
	Opponent    string
}

// MoveRecord ties one Train call's metrics to a move of a recorded game.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Player string
	searcher.SearchMetric
}

// GameRecord summarizes one recorded game.
type GameRecord struct {
	ID        int
	Agent     int // AgentConfig.ID
	Winner    string
	StartTime time.Time
	Duration  time.Duration
	Moves     int
}
