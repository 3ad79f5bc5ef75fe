// Package keyboard maps ebiten key state to the simulation's action set.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
)

// Binding maps physical keys to actions. Several keys may share an action.
type Binding map[ebiten.Key]input.Action

// DefaultBinding covers arrows, WASD and the classic Z/X layout
func DefaultBinding() Binding {
	return Binding{
		ebiten.KeyArrowLeft:  input.MoveLeft,
		ebiten.KeyA:          input.MoveLeft,
		ebiten.KeyArrowRight: input.MoveRight,
		ebiten.KeyD:          input.MoveRight,
		ebiten.KeySpace:      input.Jump,
		ebiten.KeyArrowUp:    input.Jump,
		ebiten.KeyW:          input.Jump,
		ebiten.KeyZ:          input.Jump,
		ebiten.KeyX:          input.ShootFire,
		ebiten.KeyShiftLeft:  input.ShootFire,
	}
}

// Source samples held keys once per Poll
type Source struct {
	binding Binding
	pressed func(ebiten.Key) bool
}

// New creates a source reading the live keyboard. A nil binding uses DefaultBinding.
func New(b Binding) *Source {
	return newSource(b, ebiten.IsKeyPressed)
}

func newSource(b Binding, pressed func(ebiten.Key) bool) *Source {
	if b == nil {
		b = DefaultBinding()
	}
	return &Source{binding: b, pressed: pressed}
}

// Poll returns every action whose key is held
func (s *Source) Poll() input.Set {
	var set input.Set
	for key, action := range s.binding {
		if s.pressed(key) {
			set = set.With(action)
		}
	}
	return set
}
