package system

import (
	"errors"
	"fmt"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// Level validation errors
var (
	ErrNoPlayer        = errors.New("level has no player")
	ErrMultiplePlayers = errors.New("level has more than one player")
	ErrInvalidSize     = errors.New("entity size must be positive")
	ErrInvalidLevel    = errors.New("invalid level")
)

// LoadLevel validates a level file and builds its immutable template
func LoadLevel(cfg *config.LevelConfig, physics *config.PhysicsConfig) (*world.Level, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("level %d: width %v: %w", cfg.ID, cfg.Width, ErrInvalidLevel)
	}

	level := &world.Level{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Width:     cfg.Width,
		TimeLimit: cfg.TimeLimit,
		Entities:  make([]*entity.Entity, 0, len(cfg.Entities)),
	}
	if level.Name == "" {
		level.Name = fmt.Sprintf("Level %d", cfg.ID)
	}

	for i, spawn := range cfg.Entities {
		e, err := buildEntity(spawn, physics)
		if err != nil {
			return nil, fmt.Errorf("level %d entity %d (%s): %w", cfg.ID, i, spawn.Kind, err)
		}
		if e.Kind == entity.KindPlayer {
			if level.Player != nil {
				return nil, fmt.Errorf("level %d entity %d: %w", cfg.ID, i, ErrMultiplePlayers)
			}
			level.Player = e
			continue
		}
		level.Entities = append(level.Entities, e)
	}

	if level.Player == nil {
		return nil, fmt.Errorf("level %d: %w", cfg.ID, ErrNoPlayer)
	}
	return level, nil
}

// LoadLevels builds every level in order and fails on the first invalid one
func LoadLevels(cfgs []*config.LevelConfig, physics *config.PhysicsConfig) ([]*world.Level, error) {
	levels := make([]*world.Level, 0, len(cfgs))
	for _, cfg := range cfgs {
		level, err := LoadLevel(cfg, physics)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func buildEntity(spawn config.SpawnConfig, physics *config.PhysicsConfig) (*entity.Entity, error) {
	kind, err := entity.ParseKind(spawn.Kind)
	if err != nil {
		return nil, err
	}

	w, h, err := spawnSize(kind, spawn, physics)
	if err != nil {
		return nil, err
	}

	box := entity.Rect{X: spawn.X, Y: spawn.Y, W: w, H: h}
	dir := spawn.Direction
	if dir == 0 {
		dir = -1
	}

	var data entity.Payload
	vx, vy := spawn.VX, spawn.VY

	switch kind {
	case entity.KindPlayer:
		data = &entity.PlayerState{
			Tier:        entity.TierSmall,
			FacingRight: true,
			PrevX:       box.X,
			PrevY:       box.Y,
		}
	case entity.KindGoomba:
		data = &entity.Patrol{Direction: sign(dir)}
	case entity.KindKoopa:
		sh := &entity.Shell{Direction: sign(dir)}
		if spawn.Shell {
			sh.Mode = entity.ShellIdle
			if hs := physics.Enemies.ShellHeight; hs > 0 && spawn.H == nil {
				box.Y = box.Bottom() - hs
				box.H = hs
			}
		}
		data = sh
	case entity.KindPiranha, entity.KindElevator:
		speed := physics.Enemies.PiranhaSpeed
		if kind == entity.KindElevator {
			speed = physics.Enemies.ElevatorSpeed
		}
		osc := &entity.Oscillator{MinY: box.Y - box.H, MaxY: box.Y, Speed: speed}
		if spawn.MinY != nil {
			osc.MinY = *spawn.MinY
		}
		if spawn.MaxY != nil {
			osc.MaxY = *spawn.MaxY
		}
		if osc.MinY > osc.MaxY {
			return nil, fmt.Errorf("minY %v above maxY %v: %w", osc.MinY, osc.MaxY, ErrInvalidLevel)
		}
		if vy == 0 {
			vy = -speed
		}
		data = osc
	case entity.KindQuestion, entity.KindBrick:
		contents := entity.Contents(spawn.Contents)
		if !contents.Valid() {
			return nil, fmt.Errorf("contents %q: %w", spawn.Contents, ErrInvalidLevel)
		}
		data = &entity.Block{Contents: contents}
	case entity.KindFireFlower:
		data = &entity.Sprout{TargetY: box.Y}
	case entity.KindFireball:
		data = &entity.Projectile{}
	}

	e := entity.New(kind, box, data)
	e.VX, e.VY = vx, vy
	return e, nil
}

// spawnSize resolves w and h. A nil field falls back to the kind's default;
// an explicit non-positive value is an error.
func spawnSize(kind entity.Kind, spawn config.SpawnConfig, physics *config.PhysicsConfig) (float64, float64, error) {
	var def config.SizeConfig
	if kind == entity.KindPlayer {
		def = config.SizeConfig{W: physics.Player.Width, H: physics.Player.SmallHeight}
	} else if s, ok := physics.Size(kind.String()); ok {
		def = s
	}

	w, h := def.W, def.H
	if spawn.W != nil {
		w = *spawn.W
	}
	if spawn.H != nil {
		h = *spawn.H
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%vx%v: %w", w, h, ErrInvalidSize)
	}
	return w, h, nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
