// Package world holds the complete simulation state advanced by one step per tick.
package world

import (
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
)

// Status is the tri-state run status
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusGameOver
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Progress is the run-wide economy
type Progress struct {
	Score int
	Lives int
	Coins int
}

// PendingTransition is a scheduled level change counted down by the step
type PendingTransition struct {
	TargetLevel int
	TicksLeft   int
}

// World is the whole simulation state. It is owned by one goroutine and
// replaced, never shared, between ticks.
type World struct {
	Level     int
	LevelName string
	Width     float64
	TimeLimit int
	// SpawnBox is the small player's box at the level start
	SpawnBox entity.Rect

	Player   *entity.Entity
	Entities []*entity.Entity
	NextID   entity.EntityID

	Progress      Progress
	Status        Status
	Started       bool
	LevelComplete bool
	Transition    *PendingTransition

	CameraX    float64
	TimeLeft   int
	TimerTicks int

	// Tick doubles as the animation phase
	Tick uint64
	Seed int64

	// Input applied on the previous tick, for edge detection
	Input input.Set
}

// New returns an empty, unstarted world
func New(lives int, seed int64) *World {
	return &World{
		Progress: Progress{Lives: lives},
		Status:   StatusRunning,
		Seed:     seed,
		NextID:   1,
	}
}

// Clone returns a deep copy that shares no entity or payload memory
func (w *World) Clone() *World {
	c := *w
	c.Player = w.Player.Clone()
	c.Entities = make([]*entity.Entity, len(w.Entities))
	for i, e := range w.Entities {
		c.Entities[i] = e.Clone()
	}
	if w.Transition != nil {
		t := *w.Transition
		c.Transition = &t
	}
	return &c
}

// Spawn assigns an ID and appends the entity to the live collection
func (w *World) Spawn(e *entity.Entity) *entity.Entity {
	if w.NextID == 0 {
		w.NextID = 1
	}
	e.ID = w.NextID
	w.NextID++
	w.Entities = append(w.Entities, e)
	return e
}

// Prune drops inactive entities. Call only between passes.
func (w *World) Prune() {
	kept := w.Entities[:0]
	for _, e := range w.Entities {
		if e.Active {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.Entities); i++ {
		w.Entities[i] = nil
	}
	w.Entities = kept
}

// Find returns the entity with the given ID, or nil
func (w *World) Find(id entity.EntityID) *entity.Entity {
	if w.Player != nil && w.Player.ID == id {
		return w.Player
	}
	for _, e := range w.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Count returns the number of active entities of a kind
func (w *World) Count(kind entity.Kind) int {
	n := 0
	for _, e := range w.Entities {
		if e.Active && e.Kind == kind {
			n++
		}
	}
	return n
}

// Load replaces the level content with fresh copies of l's prototypes.
// An existing player keeps its tier and size and is placed bottom-aligned
// on the spawn point.
func (w *World) Load(l *Level) {
	w.Level = l.ID
	w.LevelName = l.Name
	w.Width = l.Width
	w.TimeLimit = l.TimeLimit
	w.SpawnBox = l.Player.Rect

	w.Entities = make([]*entity.Entity, 0, len(l.Entities)+8)
	w.NextID = 1
	if w.Player == nil {
		w.Player = l.Player.Clone()
	} else {
		w.Player.X = w.SpawnBox.X
		w.Player.Y = w.SpawnBox.Bottom() - w.Player.H
		w.Player.VX, w.Player.VY = 0, 0
		if ps := w.Player.Player(); ps != nil {
			ps.PrevX, ps.PrevY = w.Player.X, w.Player.Y
			ps.Grounded = false
			ps.FacingRight = true
		}
	}
	w.Player.ID = w.NextID
	w.NextID++
	for _, proto := range l.Entities {
		w.Spawn(proto.Clone())
	}

	w.LevelComplete = false
	w.Transition = nil
	w.CameraX = 0
	w.TimeLeft = l.TimeLimit
	w.TimerTicks = 0
}
