package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio/mocks"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

func addQuestion(w *world.World, contents entity.Contents) *entity.Entity {
	return addEntity(w, entity.KindQuestion, 100, 300, 32, 32, &entity.Block{Contents: contents})
}

func TestBlockSystem_QuestionCoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().Play(audio.CueCoin).Times(1)

	sys := NewBlockSystem(createTestPhysicsConfig(), sink)
	w := createTestWorld()
	block := addQuestion(w, entity.ContentsCoin)

	sys.Hit(w, block)

	assert.Equal(t, entity.KindBrick, block.Kind)
	assert.True(t, block.Block().Empty)
	assert.True(t, block.Active)
	assert.Equal(t, 1, w.Progress.Coins)
	assert.Equal(t, 200, w.Progress.Score)

	require.Len(t, w.Entities, 2)
	coin := w.Entities[1]
	assert.Equal(t, entity.KindCoin, coin.Kind)
	require.NotNil(t, coin.Falling())
	assert.Equal(t, -9.0, coin.VY)
	assert.Equal(t, block.Y, coin.Bottom())
	assert.Equal(t, block.CenterX(), coin.CenterX())
}

func TestBlockSystem_QuestionReleasesOnce(t *testing.T) {
	sys := NewBlockSystem(createTestPhysicsConfig(), nil)
	w := createTestWorld()
	block := addQuestion(w, entity.ContentsMushroom)

	sys.Hit(w, block)
	sys.Hit(w, block)
	sys.Hit(w, block)

	assert.Equal(t, 1, w.Count(entity.KindMushroom))
	assert.Equal(t, entity.KindBrick, block.Kind)
	assert.True(t, block.Active)
}

func TestBlockSystem_Contents(t *testing.T) {
	tests := []struct {
		name     string
		contents entity.Contents
		tier     entity.Tier
		wantKind entity.Kind
		wantVX   float64
		wantVY   float64
	}{
		{name: "mushroom", contents: entity.ContentsMushroom, tier: entity.TierSmall, wantKind: entity.KindMushroom, wantVX: 2},
		{name: "powerup small", contents: entity.ContentsPowerUp, tier: entity.TierSmall, wantKind: entity.KindMushroom, wantVX: 2},
		{name: "powerup big", contents: entity.ContentsPowerUp, tier: entity.TierBig, wantKind: entity.KindFireFlower},
		{name: "powerup fire", contents: entity.ContentsPowerUp, tier: entity.TierFire, wantKind: entity.KindMushroom, wantVX: 2},
		{name: "oneup", contents: entity.ContentsOneUp, tier: entity.TierSmall, wantKind: entity.KindOneUp, wantVX: 2},
		{name: "star", contents: entity.ContentsStar, tier: entity.TierBig, wantKind: entity.KindStarman, wantVX: 2.5, wantVY: -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewBlockSystem(createTestPhysicsConfig(), nil)
			w := createTestWorld()
			w.Player.Player().Tier = tt.tier
			block := addQuestion(w, tt.contents)

			sys.Hit(w, block)

			require.Len(t, w.Entities, 2)
			item := w.Entities[1]
			assert.Equal(t, tt.wantKind, item.Kind)
			assert.Equal(t, tt.wantVX, item.VX)
			assert.Equal(t, tt.wantVY, item.VY)
			assert.Equal(t, 0, w.Progress.Coins)
		})
	}
}

func TestBlockSystem_FlowerStartsInsideBlock(t *testing.T) {
	sys := NewBlockSystem(createTestPhysicsConfig(), nil)
	w := createTestWorld()
	w.Player.Player().Tier = entity.TierBig
	block := addQuestion(w, entity.ContentsPowerUp)

	sys.Hit(w, block)

	flower := w.Entities[1]
	require.NotNil(t, flower.Sprout())
	assert.Equal(t, block.Y, flower.Y)
	assert.Equal(t, block.Y-flower.H, flower.Sprout().TargetY)
}

func TestBlockSystem_Brick(t *testing.T) {
	tests := []struct {
		name       string
		tier       entity.Tier
		empty      bool
		wantBroken bool
	}{
		{name: "small bumps", tier: entity.TierSmall},
		{name: "big breaks", tier: entity.TierBig, wantBroken: true},
		{name: "fire breaks", tier: entity.TierFire, wantBroken: true},
		{name: "emptied question holds", tier: entity.TierBig, empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sink := mocks.NewMockSink(ctrl)
			if tt.wantBroken {
				sink.EXPECT().Play(audio.CueBreak)
			}

			sys := NewBlockSystem(createTestPhysicsConfig(), sink)
			w := createTestWorld()
			w.Player.Player().Tier = tt.tier
			brick := addEntity(w, entity.KindBrick, 100, 300, 32, 32, &entity.Block{Empty: tt.empty})

			sys.Hit(w, brick)

			assert.Equal(t, tt.wantBroken, brick.Block().Broken)
			assert.Equal(t, !tt.wantBroken, brick.Active)
			if tt.wantBroken {
				assert.Equal(t, 50, w.Progress.Score)
			} else {
				assert.Equal(t, 0, w.Progress.Score)
			}
		})
	}
}

func TestBlockSystem_RandomIsDeterministic(t *testing.T) {
	sys := NewBlockSystem(createTestPhysicsConfig(), nil)

	base := createTestWorld()
	base.Tick = 77
	addQuestion(base, entity.ContentsRandom)

	a, b := base.Clone(), base.Clone()
	sys.Hit(a, a.Entities[0])
	sys.Hit(b, b.Entities[0])

	require.Len(t, a.Entities, 2)
	require.Len(t, b.Entities, 2)
	assert.Equal(t, a.Entities[1].Kind, b.Entities[1].Kind)
	assert.Contains(t, []entity.Kind{entity.KindCoin, entity.KindMushroom, entity.KindOneUp}, a.Entities[1].Kind)
}

func TestBlockSystem_RandomFollowsWeights(t *testing.T) {
	cfg := createTestPhysicsConfig()
	cfg.Items.RandomWeights.Coin = 0
	cfg.Items.RandomWeights.Mushroom = 0
	sys := NewBlockSystem(cfg, nil)

	for tick := uint64(0); tick < 20; tick++ {
		w := createTestWorld()
		w.Tick = tick
		block := addQuestion(w, entity.ContentsRandom)

		sys.Hit(w, block)

		assert.Equal(t, entity.KindOneUp, w.Entities[1].Kind)
	}
}

func TestBlockSystem_CoinGrantsLife(t *testing.T) {
	sys := NewBlockSystem(createTestPhysicsConfig(), nil)
	w := createTestWorld()
	w.Progress.Coins = 99
	block := addQuestion(w, entity.ContentsCoin)

	sys.Hit(w, block)

	assert.Equal(t, 0, w.Progress.Coins)
	assert.Equal(t, 4, w.Progress.Lives)
}
