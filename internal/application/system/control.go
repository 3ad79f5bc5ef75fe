package system

import (
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// ControlSystem turns the sampled action set into player intent
type ControlSystem struct {
	config *config.PhysicsConfig
	sink   audio.Sink
}

// NewControlSystem creates a new control system
func NewControlSystem(cfg *config.PhysicsConfig, sink audio.Sink) *ControlSystem {
	if sink == nil {
		sink = audio.Discard
	}
	return &ControlSystem{
		config: cfg,
		sink:   sink,
	}
}

// Update applies walking, jumping and shooting. prev is the set applied on
// the previous tick, used to fire only on a fresh press.
func (s *ControlSystem) Update(w *world.World, in, prev input.Set) {
	p := w.Player
	if p == nil {
		return
	}
	ps := p.Player()
	if ps == nil {
		return
	}

	left, right := in.Has(input.MoveLeft), in.Has(input.MoveRight)
	switch {
	case left && !right:
		p.VX = -s.config.Player.WalkSpeed
		ps.FacingRight = false
	case right && !left:
		p.VX = s.config.Player.WalkSpeed
		ps.FacingRight = true
	default:
		p.VX = 0
	}

	if in.Has(input.Jump) && ps.Grounded {
		p.VY = s.config.Player.JumpVelocity
		ps.Grounded = false
		s.sink.Play(audio.CueJump)
	}

	if ps.FireCooldown > 0 {
		ps.FireCooldown--
	}
	if in.Pressed(prev).Has(input.ShootFire) {
		s.shoot(w, p, ps)
	}
}

// shoot spawns a fireball in front of a fire-tier player
func (s *ControlSystem) shoot(w *world.World, p *entity.Entity, ps *entity.PlayerState) {
	if ps.Tier != entity.TierFire || ps.FireCooldown > 0 {
		return
	}
	if w.Count(entity.KindFireball) >= s.config.Fireball.MaxAlive {
		return
	}

	fw, fh := kindSize(s.config, entity.KindFireball)
	dir := -1.0
	x := p.X - fw
	if ps.FacingRight {
		dir = 1
		x = p.Right()
	}
	fb := entity.New(entity.KindFireball, entity.Rect{X: x, Y: p.CenterY() - fh/2, W: fw, H: fh}, &entity.Projectile{})
	fb.VX = dir * s.config.Fireball.Speed
	fb.VY = s.config.Fireball.DropSpeed
	w.Spawn(fb)

	ps.FireCooldown = s.config.Fireball.Cooldown
	s.sink.Play(audio.CueFireball)
}
