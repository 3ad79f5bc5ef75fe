package state

import "github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"

// GameState is the screen mode shown for a world
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
	StateLevelClear
	StateGameOver
	StateWon
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelClear:
		return "LevelClear"
	case StateGameOver:
		return "GameOver"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Of derives the screen mode from a snapshot. Pausing is a presentation
// concern and only applies to a running game.
func Of(s world.Snapshot, paused bool) GameState {
	switch {
	case s.Status == world.StatusGameOver:
		return StateGameOver
	case s.Status == world.StatusWon:
		return StateWon
	case !s.Started:
		return StateTitle
	case s.Transitioning:
		return StateLevelClear
	case paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// AcceptsStart reports whether the start key begins a run in this mode
func (s GameState) AcceptsStart() bool {
	return s == StateTitle || s == StateGameOver || s == StateWon
}
