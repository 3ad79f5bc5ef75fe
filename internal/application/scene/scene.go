// Package scene defines the screens the windowed game switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by the game loop.
//
// Update returns the next scene to switch to, or nil to stay. A non-nil
// error terminates the game; ebiten.Termination ends it cleanly.
type Scene interface {
	Update() (next Scene, err error)
	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current
	OnEnter()
	OnExit()
}
