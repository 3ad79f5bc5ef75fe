package system

import (
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// addCoin counts one coin; every CoinsPerLife coins becomes a life
func addCoin(w *world.World, cfg *config.PhysicsConfig) {
	w.Progress.Coins++
	if cfg.World.CoinsPerLife > 0 && w.Progress.Coins >= cfg.World.CoinsPerLife {
		w.Progress.Lives++
		w.Progress.Coins = 0
	}
}

func addScore(w *world.World, points int) {
	w.Progress.Score += points
}

// kindSize returns the configured default box size for a kind
func kindSize(cfg *config.PhysicsConfig, kind entity.Kind) (float64, float64) {
	if s, ok := cfg.Size(kind.String()); ok && s.W > 0 && s.H > 0 {
		return s.W, s.H
	}
	return 16, 16
}
