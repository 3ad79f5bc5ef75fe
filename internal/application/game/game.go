// Package game provides the ebiten game loop manager that handles scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/scene"
)

// Game implements ebiten.Game and manages scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	quitKey ebiten.Key
	quit    func(ebiten.Key) bool
}

// New creates a Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		quitKey: ebiten.KeyQ,
		quit:    func(ebiten.Key) bool { return false },
	}
	g.current.OnEnter()
	return g
}

// QuitOn makes Update end the game while pressed(key) reports true.
// The live binding is QuitOn(ebiten.KeyQ, ebiten.IsKeyPressed).
func (g *Game) QuitOn(key ebiten.Key, pressed func(ebiten.Key) bool) {
	g.quitKey = key
	g.quit = pressed
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.quit(g.quitKey) {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update()
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
