package world

import "github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"

// EntityView is the render-facing copy of one active entity
type EntityView struct {
	ID   entity.EntityID
	Kind entity.Kind
	Box  entity.Rect

	Big        bool
	Fire       bool
	Invincible bool
	Facing     float64
	Shell      entity.ShellMode
	Empty      bool
}

// Snapshot is an immutable view of the world handed to renderers.
// It holds no pointers into the world.
type Snapshot struct {
	Tick      uint64
	Level     int
	LevelName string
	CameraX   float64

	Score    int
	Lives    int
	Coins    int
	TimeLeft int

	Status        Status
	Started       bool
	Transitioning bool

	// Player first, then live entities in simulation order
	Entities []EntityView
}

// Snapshot builds the render view of the current state
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          w.Tick,
		Level:         w.Level,
		LevelName:     w.LevelName,
		CameraX:       w.CameraX,
		Score:         w.Progress.Score,
		Lives:         w.Progress.Lives,
		Coins:         w.Progress.Coins,
		TimeLeft:      w.TimeLeft,
		Status:        w.Status,
		Started:       w.Started,
		Transitioning: w.Transition != nil,
		Entities:      make([]EntityView, 0, len(w.Entities)+1),
	}
	if w.Player != nil {
		s.Entities = append(s.Entities, view(w.Player))
	}
	for _, e := range w.Entities {
		if e.Active {
			s.Entities = append(s.Entities, view(e))
		}
	}
	return s
}

// PlayerView returns the player's view, if present
func (s Snapshot) PlayerView() (EntityView, bool) {
	if len(s.Entities) == 0 || s.Entities[0].Kind != entity.KindPlayer {
		return EntityView{}, false
	}
	return s.Entities[0], true
}

func view(e *entity.Entity) EntityView {
	v := EntityView{ID: e.ID, Kind: e.Kind, Box: e.Rect}
	switch d := e.Data.(type) {
	case *entity.PlayerState:
		v.Big = d.Tier.IsBig()
		v.Fire = d.Tier == entity.TierFire
		v.Invincible = d.Invincible()
		v.Facing = -1
		if d.FacingRight {
			v.Facing = 1
		}
	case *entity.Shell:
		v.Shell = d.Mode
		v.Facing = d.Direction
	case *entity.Patrol:
		v.Facing = d.Direction
	case *entity.Block:
		v.Empty = d.Empty
	}
	return v
}
