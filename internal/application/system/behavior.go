package system

import (
	"math"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// ridingTolerance is how far the player's feet may float above a platform and still ride it
const ridingTolerance = 1.0

// BehaviorSystem runs the per-kind update rules for every non-player entity
type BehaviorSystem struct {
	config  *config.PhysicsConfig
	physics *PhysicsSystem
	sink    audio.Sink
}

// NewBehaviorSystem creates a new behavior system.
// Free bodies are moved with the physics system's simplified resolver.
func NewBehaviorSystem(cfg *config.PhysicsConfig, physics *PhysicsSystem, sink audio.Sink) *BehaviorSystem {
	if sink == nil {
		sink = audio.Discard
	}
	return &BehaviorSystem{
		config:  cfg,
		physics: physics,
		sink:    sink,
	}
}

// Update advances every active entity once. Entities spawned during the
// pass are first updated on the next pass.
func (s *BehaviorSystem) Update(w *world.World) {
	n := len(w.Entities)
	for i := 0; i < n; i++ {
		e := w.Entities[i]
		if !e.Active {
			continue
		}

		switch e.Kind {
		case entity.KindGoomba:
			s.updateGoomba(w, e)
		case entity.KindKoopa:
			s.updateKoopa(w, e)
		case entity.KindPiranha:
			s.oscillate(e)
		case entity.KindElevator:
			s.updateElevator(w, e)
		case entity.KindMushroom, entity.KindOneUp:
			s.updateDrifter(w, e)
		case entity.KindStarman:
			s.updateStar(w, e)
		case entity.KindFireFlower:
			s.updateFlower(e)
		case entity.KindFireball:
			s.updateFireball(w, e)
		case entity.KindCoin:
			s.updateCoin(w, e)
		}
	}
}

func (s *BehaviorSystem) updateGoomba(w *world.World, e *entity.Entity) {
	p := e.Patrol()
	if p == nil {
		return
	}
	s.walk(w, e, &p.Direction, s.config.Enemies.GoombaSpeed, s.config.Enemies.LookAhead)
}

func (s *BehaviorSystem) updateKoopa(w *world.World, e *entity.Entity) {
	sh := e.Shell()
	if sh == nil {
		return
	}
	if sh.KickGrace > 0 {
		sh.KickGrace--
	}

	switch sh.Mode {
	case entity.ShellNone:
		s.walk(w, e, &sh.Direction, s.config.Enemies.KoopaSpeed, s.config.Enemies.LookAhead)
	case entity.ShellIdle:
		e.VX = 0
		s.restOnFloor(e)
	case entity.ShellSliding:
		s.walk(w, e, &sh.Direction, s.config.Enemies.ShellSpeed, 1)
		s.shellKills(w, e)
	}
}

// walk moves a ground walker at constant speed, turning when the probe
// lookAhead steps ahead hits a solid or leaves the level.
func (s *BehaviorSystem) walk(w *world.World, e *entity.Entity, dir *float64, speed, lookAhead float64) {
	if *dir == 0 {
		*dir = -1
	}
	e.VX = *dir * speed

	probe := e.Rect.Translate(e.VX*lookAhead, 0)
	if firstSolid(w, probe, e) != nil || probe.X < 0 || (w.Width > 0 && probe.Right() > w.Width) {
		*dir = -*dir
		e.VX = -e.VX
	}

	e.X += e.VX
	if e.X < 0 {
		e.X = 0
	}
	if w.Width > 0 && e.Right() > w.Width {
		e.X = w.Width - e.W
	}
	s.restOnFloor(e)
}

func (s *BehaviorSystem) restOnFloor(e *entity.Entity) {
	e.Y = s.config.World.FloorY - e.H
	e.VY = 0
}

// shellKills removes every enemy a sliding shell touches
func (s *BehaviorSystem) shellKills(w *world.World, shell *entity.Entity) {
	for _, o := range w.Entities {
		if o == shell || !o.Active || !o.Kind.IsEnemy() {
			continue
		}
		if !entity.Overlaps(shell.Rect, o.Rect) {
			continue
		}
		o.Deactivate()
		addScore(w, s.config.Scoring.ShellKill)
		s.sink.Play(audio.CueStomp)
	}
}

// oscillate bounces e between its bounds and returns the vertical delta
func (s *BehaviorSystem) oscillate(e *entity.Entity) float64 {
	o := e.Oscillator()
	if o == nil {
		return 0
	}
	speed := math.Abs(o.Speed)
	if e.VY == 0 {
		e.VY = -speed
	}

	prevY := e.Y
	e.Y += e.VY
	if e.Y <= o.MinY {
		e.Y = o.MinY
		e.VY = speed
	} else if e.Y >= o.MaxY {
		e.Y = o.MaxY
		e.VY = -speed
	}
	return e.Y - prevY
}

// updateElevator moves the platform and carries a player standing on it.
// A move that would leave the player inside a solid is undone and the
// platform turns away.
func (s *BehaviorSystem) updateElevator(w *world.World, e *entity.Entity) {
	p := w.Player
	riding := standingOn(p, e)
	prevY := e.Y
	dy := s.oscillate(e)
	if dy == 0 || p == nil {
		return
	}

	var blocked bool
	if riding {
		p.Y += dy
		blocked = firstSolid(w, p.Rect, nil) != nil || p.Bottom() > s.config.World.FloorY
	} else {
		blocked = entity.Overlaps(p.Rect, e.Rect)
	}
	if !blocked {
		return
	}

	if riding {
		p.Y -= dy
	}
	e.Y = prevY
	speed := math.Abs(e.Oscillator().Speed)
	if dy > 0 {
		e.VY = -speed
	} else {
		e.VY = speed
	}
}

// standingOn reports whether the grounded player rests on top of the platform
func standingOn(p, platform *entity.Entity) bool {
	if p == nil {
		return false
	}
	ps := p.Player()
	if ps == nil || !ps.Grounded {
		return false
	}
	if p.Right() <= platform.X || p.X >= platform.Right() {
		return false
	}
	return math.Abs(p.Bottom()-platform.Y) <= ridingTolerance
}

// updateDrifter moves mushrooms and 1-ups, reversing on walls
func (s *BehaviorSystem) updateDrifter(w *world.World, e *entity.Entity) {
	c := s.physics.MoveBody(w, e, s.config.World.Gravity)
	if c.Side {
		e.VX = -e.VX
	}
}

// updateStar drifts like a mushroom and hops on every landing
func (s *BehaviorSystem) updateStar(w *world.World, e *entity.Entity) {
	c := s.physics.MoveBody(w, e, s.config.World.Gravity)
	if c.Side {
		e.VX = -e.VX
	}
	if c.Landed {
		e.VY = s.config.Items.StarHopVelocity
	}
}

// updateFlower rises out of its block then stays put
func (s *BehaviorSystem) updateFlower(e *entity.Entity) {
	sp := e.Sprout()
	if sp == nil {
		return
	}
	e.VX = 0
	if e.Y > sp.TargetY {
		e.Y -= s.config.Items.FlowerRiseSpeed
		if e.Y < sp.TargetY {
			e.Y = sp.TargetY
		}
	}
}

func (s *BehaviorSystem) updateFireball(w *world.World, e *entity.Entity) {
	pr := e.Projectile()
	if pr == nil {
		e.Deactivate()
		return
	}

	c := s.physics.MoveBody(w, e, s.config.Fireball.Gravity)
	if c.Side {
		e.Deactivate()
		return
	}
	if c.Landed {
		pr.Bounces++
		if pr.Bounces > s.config.Fireball.MaxBounces {
			e.Deactivate()
			return
		}
		e.VY = -math.Abs(c.ImpactVY) * s.config.Fireball.Restitution
	}
	if s.offScreen(w, e) {
		e.Deactivate()
		return
	}

	for _, o := range w.Entities {
		if !o.Active || !o.Kind.IsEnemy() || !entity.Overlaps(e.Rect, o.Rect) {
			continue
		}
		o.Deactivate()
		e.Deactivate()
		addScore(w, s.config.Scoring.FireballKill)
		s.sink.Play(audio.CueStomp)
		return
	}
}

// updateCoin animates coins popped out of blocks. Static coins have no payload.
func (s *BehaviorSystem) updateCoin(w *world.World, e *entity.Entity) {
	f := e.Falling()
	if f == nil {
		return
	}
	f.Age++
	e.VY += s.config.World.Gravity
	e.Y += e.VY
	if floor := s.config.World.FloorY; e.Bottom() >= floor {
		e.Y = floor - e.H
		e.VY = 0
		e.Deactivate()
		return
	}
	if e.VY > s.config.Items.CoinExpireVelocity || f.Age > s.config.Items.CoinMaxAge || s.offScreen(w, e) {
		e.Deactivate()
	}
}

func (s *BehaviorSystem) offScreen(w *world.World, e *entity.Entity) bool {
	screenW := float64(s.config.Display.ScreenWidth)
	screenH := float64(s.config.Display.ScreenHeight)
	if screenW <= 0 || screenH <= 0 {
		return false
	}
	return e.Right() < w.CameraX || e.X > w.CameraX+screenW || e.Y > screenH
}
