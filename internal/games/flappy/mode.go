package flappy

// Mode is the discrete phase of a session.
type Mode int

const (
	ModeAwaitingStart Mode = iota
	ModePlaying
	ModeGameOver
	ModeRestarting
	// ModePaused is part of the mode set but no transition leads to it.
	ModePaused
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAwaitingStart:
		return "AwaitingStart"
	case ModePlaying:
		return "Playing"
	case ModeGameOver:
		return "GameOver"
	case ModeRestarting:
		return "Restarting"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// State is the single source of truth for the session phase and score.
// Only the input, collision and restart systems write to it.
type State struct {
	Mode  Mode
	Score int
}
