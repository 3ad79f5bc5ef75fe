package world

import "github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"

// Level is a validated, immutable level template.
// Worlds copy its prototypes on load and never mutate them.
type Level struct {
	ID        int
	Name      string
	Width     float64
	TimeLimit int

	Player   *entity.Entity
	Entities []*entity.Entity
}
