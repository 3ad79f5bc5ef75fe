package system

import (
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// InteractionSystem resolves player-vs-entity contacts
type InteractionSystem struct {
	config *config.PhysicsConfig
	sink   audio.Sink

	// NextLevel returns the level that follows id, if any
	NextLevel func(id int) (int, bool)
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(cfg *config.PhysicsConfig, sink audio.Sink) *InteractionSystem {
	if sink == nil {
		sink = audio.Discard
	}
	return &InteractionSystem{
		config: cfg,
		sink:   sink,
	}
}

// Update checks the player against every active entity it overlaps.
// Entities spawned here, such as a stomped koopa's shell, are checked next tick.
func (s *InteractionSystem) Update(w *world.World) {
	p := w.Player
	if p == nil {
		return
	}
	ps := p.Player()
	if ps == nil {
		return
	}

	n := len(w.Entities)
	for i := 0; i < n; i++ {
		if w.Status != world.StatusRunning {
			return
		}
		e := w.Entities[i]
		if !e.Active || !entity.Overlaps(p.Rect, e.Rect) {
			continue
		}

		switch e.Kind {
		case entity.KindGoomba:
			s.touchEnemy(w, p, ps, e, true)
		case entity.KindPiranha:
			s.touchEnemy(w, p, ps, e, false)
		case entity.KindKoopa:
			s.touchKoopa(w, p, ps, e)
		case entity.KindCoin:
			if e.Falling() == nil {
				e.Deactivate()
				addCoin(w, s.config)
				addScore(w, s.config.Scoring.Coin)
				s.sink.Play(audio.CueCoin)
			}
		case entity.KindMushroom, entity.KindFireFlower, entity.KindOneUp, entity.KindStarman:
			s.pickup(w, p, ps, e)
		case entity.KindFlag:
			s.reachFlag(w)
		}
	}
}

// isStomp reports a downward contact that started above the enemy's top edge
func (s *InteractionSystem) isStomp(p *entity.Entity, ps *entity.PlayerState, e *entity.Entity) bool {
	return p.VY > 0 && e.Y-ps.PrevY > s.config.Player.StompMargin
}

func (s *InteractionSystem) touchEnemy(w *world.World, p *entity.Entity, ps *entity.PlayerState, e *entity.Entity, stompable bool) {
	if ps.Invincible() {
		s.kill(w, e, s.config.Scoring.InvincibleKill)
		return
	}
	if stompable && s.isStomp(p, ps, e) {
		s.kill(w, e, s.config.Scoring.Stomp)
		p.VY = s.config.Player.StompBounce
		return
	}
	s.Damage(w)
}

func (s *InteractionSystem) touchKoopa(w *world.World, p *entity.Entity, ps *entity.PlayerState, e *entity.Entity) {
	sh := e.Shell()
	if sh == nil {
		s.touchEnemy(w, p, ps, e, true)
		return
	}

	switch sh.Mode {
	case entity.ShellNone:
		if ps.Invincible() {
			s.kill(w, e, s.config.Scoring.InvincibleKill)
			return
		}
		if s.isStomp(p, ps, e) {
			e.Deactivate()
			s.spawnShell(w, e, sh.Direction)
			addScore(w, s.config.Scoring.Stomp)
			s.sink.Play(audio.CueStomp)
			p.VY = s.config.Player.StompBounce
			return
		}
		s.Damage(w)

	case entity.ShellIdle:
		dir := 1.0
		if p.CenterX() > e.CenterX() {
			dir = -1
		}
		if s.isStomp(p, ps, e) {
			p.VY = s.config.Player.StompBounce
		}
		sh.Mode = entity.ShellSliding
		sh.Direction = dir
		sh.KickGrace = s.config.Enemies.KickGrace
		e.VX = dir * s.config.Enemies.ShellSpeed
		addScore(w, s.config.Scoring.ShellKick)
		s.sink.Play(audio.CueStomp)

	case entity.ShellSliding:
		if sh.KickGrace > 0 {
			return
		}
		if ps.Invincible() {
			s.kill(w, e, s.config.Scoring.InvincibleKill)
			return
		}
		if s.isStomp(p, ps, e) {
			sh.Mode = entity.ShellIdle
			e.VX = 0
			p.VY = s.config.Player.StompBounce
			addScore(w, s.config.Scoring.Stomp)
			s.sink.Play(audio.CueStomp)
			return
		}
		s.Damage(w)
	}
}

// spawnShell leaves an idle shell where a walking koopa was stomped
func (s *InteractionSystem) spawnShell(w *world.World, koopa *entity.Entity, dir float64) {
	h := s.config.Enemies.ShellHeight
	if h <= 0 {
		h = koopa.H
	}
	box := entity.Rect{X: koopa.X, Y: s.config.World.FloorY - h, W: koopa.W, H: h}
	w.Spawn(entity.New(entity.KindKoopa, box, &entity.Shell{Direction: dir, Mode: entity.ShellIdle}))
}

func (s *InteractionSystem) kill(w *world.World, e *entity.Entity, points int) {
	e.Deactivate()
	addScore(w, points)
	s.sink.Play(audio.CueStomp)
}

func (s *InteractionSystem) pickup(w *world.World, p *entity.Entity, ps *entity.PlayerState, e *entity.Entity) {
	e.Deactivate()

	switch e.Kind {
	case entity.KindMushroom:
		if ps.Tier == entity.TierSmall {
			s.grow(p, ps)
		}
		addScore(w, s.config.Scoring.Mushroom)
	case entity.KindFireFlower:
		// a small player only grows; fire needs a second flower
		switch ps.Tier {
		case entity.TierSmall:
			s.grow(p, ps)
		case entity.TierBig:
			ps.Tier = entity.TierFire
		}
		addScore(w, s.config.Scoring.FireFlower)
	case entity.KindOneUp:
		w.Progress.Lives++
		addScore(w, s.config.Scoring.OneUp)
	case entity.KindStarman:
		ps.InvincibleTicks = max(ps.InvincibleTicks, s.config.Timers.StarInvincibility)
		addScore(w, s.config.Scoring.Starman)
	}
	s.sink.Play(audio.CuePowerUp)
}

// grow promotes Small to Big keeping the feet in place
func (s *InteractionSystem) grow(p *entity.Entity, ps *entity.PlayerState) {
	resize(p, s.config.Player.BigHeight)
	ps.Tier = entity.TierBig
}

func resize(p *entity.Entity, h float64) {
	if h <= 0 {
		return
	}
	p.Y = p.Bottom() - h
	p.H = h
}

func (s *InteractionSystem) reachFlag(w *world.World) {
	if w.LevelComplete {
		return
	}
	w.LevelComplete = true

	if s.NextLevel != nil {
		if next, ok := s.NextLevel(w.Level); ok {
			w.Transition = &world.PendingTransition{
				TargetLevel: next,
				TicksLeft:   s.config.Timers.TransitionDelay,
			}
			addScore(w, s.config.Scoring.LevelBonus)
			return
		}
	}
	w.Status = world.StatusWon
	addScore(w, s.config.Scoring.FinalBonus)
}

// Damage moves the player one step down the power ladder, or costs a life
// when already small. No effect while invincible.
func (s *InteractionSystem) Damage(w *world.World) {
	p := w.Player
	ps := p.Player()
	if ps == nil || ps.Invincible() {
		return
	}

	next, ok := ps.Tier.Demote()
	if !ok {
		s.LoseLife(w)
		return
	}
	if ps.Tier.IsBig() && !next.IsBig() {
		resize(p, s.config.Player.SmallHeight)
	}
	ps.Tier = next
	ps.InvincibleTicks = s.config.Timers.DamageInvincibility
	s.sink.Play(audio.CueShrink)
}

// LoseLife takes a life and either ends the run or respawns the player
// small at the level start.
func (s *InteractionSystem) LoseLife(w *world.World) {
	w.Progress.Lives--
	s.sink.Play(audio.CueDeath)
	if w.Progress.Lives <= 0 {
		w.Progress.Lives = 0
		w.Status = world.StatusGameOver
		return
	}

	p := w.Player
	ps := p.Player()
	p.H = s.config.Player.SmallHeight
	if p.H <= 0 {
		p.H = w.SpawnBox.H
	}
	p.X = w.SpawnBox.X
	p.Y = w.SpawnBox.Bottom() - p.H
	p.VX, p.VY = 0, 0
	if ps != nil {
		ps.Tier = entity.TierSmall
		ps.InvincibleTicks = s.config.Timers.RespawnInvincibility
		ps.Grounded = false
		ps.FireCooldown = 0
		ps.PrevX, ps.PrevY = p.X, p.Y
	}

	w.CameraX = 0
	w.TimeLeft = w.TimeLimit
	w.TimerTicks = 0
}
