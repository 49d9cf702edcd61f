package state

// GameState is the phase of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateCleared // every enemy in the room is dead
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// Event is something that happened during play
type Event int

const (
	EventPause Event = iota // pause key toggles
	EventPlayerDied
	EventRoomCleared
	EventRestart
)

// Next returns the state after ev. Events that do not apply to s leave it
// unchanged.
func (s GameState) Next(ev Event) GameState {
	switch {
	case ev == EventRestart:
		return StatePlaying
	case ev == EventPause && s == StatePlaying:
		return StatePaused
	case ev == EventPause && s == StatePaused:
		return StatePlaying
	case ev == EventPlayerDied && s == StatePlaying:
		return StateGameOver
	case ev == EventRoomCleared && s == StatePlaying:
		return StateCleared
	}
	return s
}

// Simulating reports whether the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateCleared
}
