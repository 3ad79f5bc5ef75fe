package system

import (
	"math/rand"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// BlockSystem reacts to blocks bumped from below
type BlockSystem struct {
	config *config.PhysicsConfig
	sink   audio.Sink
}

// NewBlockSystem creates a new block system
func NewBlockSystem(cfg *config.PhysicsConfig, sink audio.Sink) *BlockSystem {
	if sink == nil {
		sink = audio.Discard
	}
	return &BlockSystem{
		config: cfg,
		sink:   sink,
	}
}

// Hit applies a bump from below. A question block empties into a brick and
// releases exactly one spawn; a brick breaks only under a big player.
func (s *BlockSystem) Hit(w *world.World, block *entity.Entity) {
	b := block.Block()
	if b == nil || !block.Active {
		return
	}
	ps := w.Player.Player()
	if ps == nil {
		return
	}

	switch block.Kind {
	case entity.KindQuestion:
		block.Kind = entity.KindBrick
		b.Empty = true
		s.release(w, block, b.Contents, ps.Tier)
	case entity.KindBrick:
		if b.Empty || b.Broken || !ps.Tier.IsBig() {
			return
		}
		b.Broken = true
		block.Deactivate()
		addScore(w, s.config.Scoring.Brick)
		s.sink.Play(audio.CueBreak)
	}
}

func (s *BlockSystem) release(w *world.World, block *entity.Entity, contents entity.Contents, tier entity.Tier) {
	if contents == entity.ContentsRandom {
		contents = s.roll(w, block)
	}

	switch contents {
	case entity.ContentsCoin:
		addCoin(w, s.config)
		addScore(w, s.config.Scoring.Coin)
		s.sink.Play(audio.CueCoin)
		coin := s.spawnAbove(w, block, entity.KindCoin, &entity.Falling{})
		coin.VY = s.config.Items.CoinPopVelocity
	case entity.ContentsMushroom:
		s.spawnAbove(w, block, entity.KindMushroom, nil).VX = s.config.Items.MushroomSpeed
	case entity.ContentsPowerUp:
		if tier == entity.TierBig {
			s.spawnFlower(w, block)
		} else {
			s.spawnAbove(w, block, entity.KindMushroom, nil).VX = s.config.Items.MushroomSpeed
		}
	case entity.ContentsOneUp:
		s.spawnAbove(w, block, entity.KindOneUp, nil).VX = s.config.Items.MushroomSpeed
	case entity.ContentsStar:
		star := s.spawnAbove(w, block, entity.KindStarman, nil)
		star.VX = s.config.Items.StarSpeed
		star.VY = s.config.Items.StarHopVelocity
	}
}

// roll picks the fallback contents. The draw is seeded from the world so a
// replayed step yields the same item.
func (s *BlockSystem) roll(w *world.World, block *entity.Entity) entity.Contents {
	weights := s.config.Items.RandomWeights
	total := weights.Coin + weights.Mushroom + weights.OneUp
	if total <= 0 {
		return entity.ContentsCoin
	}

	rng := rand.New(rand.NewSource(w.Seed + int64(w.Tick)*1_000_003 + int64(block.ID)))
	n := rng.Intn(total)
	switch {
	case n < weights.Coin:
		return entity.ContentsCoin
	case n < weights.Coin+weights.Mushroom:
		return entity.ContentsMushroom
	default:
		return entity.ContentsOneUp
	}
}

// spawnAbove places a new entity centered on top of the block
func (s *BlockSystem) spawnAbove(w *world.World, block *entity.Entity, kind entity.Kind, data entity.Payload) *entity.Entity {
	iw, ih := kindSize(s.config, kind)
	box := entity.Rect{X: block.CenterX() - iw/2, Y: block.Y - ih, W: iw, H: ih}
	return w.Spawn(entity.New(kind, box, data))
}

// spawnFlower starts the flower inside the block; it rises to rest on top
func (s *BlockSystem) spawnFlower(w *world.World, block *entity.Entity) *entity.Entity {
	iw, ih := kindSize(s.config, entity.KindFireFlower)
	box := entity.Rect{X: block.CenterX() - iw/2, Y: block.Y, W: iw, H: ih}
	return w.Spawn(entity.New(entity.KindFireFlower, box, &entity.Sprout{TargetY: block.Y - ih}))
}
