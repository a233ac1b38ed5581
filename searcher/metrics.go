package searcher

import "time"

// SearchMetric summarizes one Train call.
type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int
	TerminalHits int // selections that ended directly on a finished state
	FullRollouts int // episodes that ran a detached simulation
	RolloutPlies int // total plies played inside detached simulations
}

type Collector interface {
	Start()
	AddEpisode()
	AddTerminalHit()
	AddRollout(plies int)
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	episodes     int
	terminalHits int
	fullRollouts int
	rolloutPlies int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.terminalHits = 0
	m.fullRollouts = 0
	m.rolloutPlies = 0
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddTerminalHit() {
	m.terminalHits++
}

func (m *collector) AddRollout(plies int) {
	m.fullRollouts++
	m.rolloutPlies += plies
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		TerminalHits: m.terminalHits,
		FullRollouts: m.fullRollouts,
		RolloutPlies: m.rolloutPlies,
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (m *noCollector) Start()                 {}
func (m *noCollector) AddEpisode()            {}
func (m *noCollector) AddTerminalHit()        {}
func (m *noCollector) AddRollout(plies int)   {}
func (m *noCollector) Complete() SearchMetric { return SearchMetric{} }
