package component

// Phase is the session-level state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEntering
	PhaseDying
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseDying:
		return "dying"
	case PhaseTerminal:
		return "terminal"
	default:
		return "playing"
	}
}

// GameState is a singleton holding the aggregate outcome flags.
type GameState struct {
	Phase    Phase
	GameOver bool
	Victory  bool
	// EnteredAt is the tick the current phase began.
	EnteredAt uint64
}

// Active reports whether the avatar still responds to input and damage.
func (g *GameState) Active() bool {
	return g != nil && g.Phase == PhasePlaying
}

var GameStateComponent = NewComponent[GameState]("game_state")
