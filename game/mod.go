package game

// Reward scale shared by the bundled game implementations. Concrete states
// are free to define their own scalar meaning; the engine never interprets
// reward values beyond summing them.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// Candidate is one legal action from a state: the freshly built successor
// state paired with a non-negative prior weight. Priors are relative
// strengths and need not sum to 1.
type Candidate struct {
	State State
	Prior float64
}

// State is the capability a concrete decision process must implement to be
// searchable. Implementations supply the legality, terminal and reward
// logic; the searcher is otherwise agnostic to the domain.
type State interface {
	// Player returns the identifier of the agent whose turn this state
	// represents. Rewards are interpreted from a player's perspective.
	Player() string

	// Candidates lists every legal action from this state. It returns an
	// empty slice on a finished state.
	Candidates() []Candidate

	// Finished reports whether no legal actions remain (absorbing state).
	// Side-effect-free and safe to call repeatedly.
	Finished() bool

	// Reward returns the outcome from player's perspective. It is defined
	// only on finished states; implementations must reject anything else.
	Reward(player string) float64

	// Equal reports structural equality with another state.
	Equal(State) bool

	// Clone returns a deep, independent copy of the state.
	Clone() State

	// Render returns a human-readable dump for diagnostics only.
	Render() string
}

// Opponent is the non-searching agent. Reply returns the opponent's chosen
// response to a state; it may be random, scripted or a trained policy,
// opaque to the searcher.
type Opponent interface {
	Reply(State) State
}
