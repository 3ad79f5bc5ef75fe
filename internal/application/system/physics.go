package system

import (
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// maxResolvePasses bounds re-resolution when one push lands the player in another solid
const maxResolvePasses = 4

// PhysicsSystem integrates the player and resolves it against solid terrain.
// It also moves free bodies (items, fireballs) with the simplified resolver.
type PhysicsSystem struct {
	config *config.PhysicsConfig

	// OnBlockHit is called when the player bumps a block from below
	OnBlockHit func(w *world.World, block *entity.Entity)
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
	}
}

// Update applies gravity and velocity to the player and resolves collisions
func (s *PhysicsSystem) Update(w *world.World) {
	p := w.Player
	if p == nil {
		return
	}
	ps := p.Player()
	if ps == nil {
		return
	}

	ps.PrevX, ps.PrevY = p.X, p.Y
	ps.Grounded = false

	s.applyGravity(p, s.config.World.Gravity)
	p.X += p.VX
	p.Y += p.VY

	for pass := 0; pass < maxResolvePasses; pass++ {
		if !s.resolveTerrain(w, p, ps, pass == 0) {
			break
		}
	}

	s.clampFloor(p, ps)
	s.clampLevel(w, p)
}

// applyGravity accelerates downward up to terminal velocity
func (s *PhysicsSystem) applyGravity(e *entity.Entity, gravity float64) {
	e.VY += gravity
	if e.VY > s.config.World.TerminalVelocity {
		e.VY = s.config.World.TerminalVelocity
	}
}

// resolveTerrain pushes the player out of every overlapping solid.
// Returns true if any overlap was found.
func (s *PhysicsSystem) resolveTerrain(w *world.World, p *entity.Entity, ps *entity.PlayerState, allowBump bool) bool {
	found := false
	for _, e := range w.Entities {
		if !e.Active || !e.Solid || !entity.Overlaps(p.Rect, e.Rect) {
			continue
		}
		found = true

		if allowBump && s.isHitFromBelow(p, ps, e) {
			p.Y = e.Bottom()
			p.VY = s.config.Player.HeadBumpSpeed
			if s.OnBlockHit != nil {
				s.OnBlockHit(w, e)
			}
			continue
		}

		s.resolveOverlap(p, ps, e)
	}
	return found
}

// isHitFromBelow classifies an upward contact with the underside of a block
func (s *PhysicsSystem) isHitFromBelow(p *entity.Entity, ps *entity.PlayerState, block *entity.Entity) bool {
	if !block.Kind.IsBlock() || p.VY >= 0 {
		return false
	}
	return ps.PrevY >= block.Bottom()-s.config.Player.HitTolerance
}

// resolveOverlap applies the minimum translation on the shallower axis
func (s *PhysicsSystem) resolveOverlap(p *entity.Entity, ps *entity.PlayerState, solid *entity.Entity) {
	switch entity.MinimumAxis(p.Rect, solid.Rect) {
	case entity.AxisX:
		if p.CenterX() < solid.CenterX() {
			p.X = solid.X - p.W
		} else {
			p.X = solid.Right()
		}
		p.VX = 0
	case entity.AxisY:
		if p.CenterY() < solid.CenterY() {
			p.Y = solid.Y - p.H
			ps.Grounded = true
		} else {
			p.Y = solid.Bottom()
		}
		p.VY = 0
	}
}

// clampFloor is the world-floor fallback independent of terrain entities
func (s *PhysicsSystem) clampFloor(p *entity.Entity, ps *entity.PlayerState) {
	floor := s.config.World.FloorY
	if p.Bottom() >= floor {
		p.Y = floor - p.H
		if p.VY > 0 {
			p.VY = 0
		}
		ps.Grounded = true
	}
}

func (s *PhysicsSystem) clampLevel(w *world.World, p *entity.Entity) {
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if w.Width > 0 && p.Right() > w.Width {
		p.X = w.Width - p.W
		p.VX = 0
	}
}

// Contact reports what a free body touched during MoveBody
type Contact struct {
	Side    bool
	Landed  bool
	Ceiling bool
	// Vertical speed just before a landing or ceiling stop
	ImpactVY float64
}

// MoveBody moves a free body one tick with axis-separated checks.
// A side contact undoes the horizontal step instead of snapping to the edge;
// callers decide whether to reverse or stop.
func (s *PhysicsSystem) MoveBody(w *world.World, e *entity.Entity, gravity float64) Contact {
	var c Contact

	s.applyGravity(e, gravity)

	e.X += e.VX
	if s.solidAt(w, e) != nil || e.X < 0 || (w.Width > 0 && e.Right() > w.Width) {
		e.X -= e.VX
		c.Side = true
	}

	e.Y += e.VY
	if solid := s.solidAt(w, e); solid != nil {
		c.ImpactVY = e.VY
		if e.VY > 0 {
			e.Y = solid.Y - e.H
			c.Landed = true
		} else {
			e.Y = solid.Bottom()
			c.Ceiling = true
		}
		e.VY = 0
	}

	floor := s.config.World.FloorY
	if e.Bottom() >= floor {
		if !c.Landed {
			c.ImpactVY = e.VY
		}
		e.Y = floor - e.H
		e.VY = 0
		c.Landed = true
	}

	return c
}

// solidAt returns the first active solid overlapping e, excluding e itself
func (s *PhysicsSystem) solidAt(w *world.World, e *entity.Entity) *entity.Entity {
	return firstSolid(w, e.Rect, e)
}

func firstSolid(w *world.World, box entity.Rect, self *entity.Entity) *entity.Entity {
	for _, o := range w.Entities {
		if o == self || !o.Active || !o.Solid {
			continue
		}
		if entity.Overlaps(box, o.Rect) {
			return o
		}
	}
	return nil
}
