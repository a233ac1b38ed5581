package searcher

import "mct/game"

type mockState struct {
	id       string
	player   string
	cands    []game.Candidate
	finished bool
	rewards  map[string]float64
}

func (m *mockState) Player() string { return m.player }

func (m *mockState) Candidates() []game.Candidate { return m.cands }

func (m *mockState) Finished() bool { return m.finished }

func (m *mockState) Reward(player string) float64 {
	if !m.finished {
		panic("mockState: reward queried on an unfinished state")
	}
	return m.rewards[player]
}

func (m *mockState) Equal(other game.State) bool {
	o, ok := other.(*mockState)
	return ok && o.id == m.id
}

func (m *mockState) Clone() game.State {
	c := *m
	return &c
}

func (m *mockState) Render() string { return m.id }

// terminalState builds a finished state rewarding each player per rewards.
func terminalState(id string, player string, rewards map[string]float64) *mockState {
	return &mockState{id: id, player: player, finished: true, rewards: rewards}
}

// passOpponent replies with the state it was given, unchanged.
type passOpponent struct{}

func (passOpponent) Reply(s game.State) game.State { return s }

// recordingOpponent replies with a fixed state and counts its calls.
type recordingOpponent struct {
	reply game.State
	calls int
}

func (o *recordingOpponent) Reply(s game.State) game.State {
	o.calls++
	return o.reply
}
