package system

import (
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Display: config.DisplayConfig{
			ScreenWidth:  512,
			ScreenHeight: 448,
			Framerate:    60,
		},
		World: config.WorldConfig{
			Gravity:          0.5,
			TerminalVelocity: 10,
			FloorY:           416,
			StartLives:       3,
			CoinsPerLife:     100,
		},
		Player: config.PlayerConfig{
			Width:         24,
			SmallHeight:   24,
			BigHeight:     44,
			WalkSpeed:     3,
			JumpVelocity:  -11,
			HeadBumpSpeed: 2,
			HitTolerance:  6,
			StompMargin:   5,
			StompBounce:   -7,
		},
		Enemies: config.EnemyConfig{
			GoombaSpeed:   1,
			KoopaSpeed:    1,
			ShellSpeed:    6,
			ShellHeight:   28,
			PiranhaSpeed:  1,
			ElevatorSpeed: 1,
			KickGrace:     12,
			LookAhead:     2,
		},
		Items: config.ItemConfig{
			MushroomSpeed:      2,
			StarSpeed:          2.5,
			StarHopVelocity:    -8,
			FlowerRiseSpeed:    1,
			CoinPopVelocity:    -9,
			CoinExpireVelocity: 4,
			CoinMaxAge:         45,
			RandomWeights:      config.RandomWeights{Coin: 70, Mushroom: 20, OneUp: 10},
		},
		Fireball: config.FireballConfig{
			Speed:       6,
			Gravity:     0.35,
			DropSpeed:   3,
			Restitution: 0.7,
			MaxBounces:  4,
			MaxAlive:    2,
			Cooldown:    12,
		},
		Scoring: config.ScoringConfig{
			Stomp:          100,
			ShellKick:      400,
			ShellKill:      200,
			FireballKill:   200,
			InvincibleKill: 200,
			Coin:           200,
			Mushroom:       1000,
			FireFlower:     1000,
			OneUp:          1000,
			Starman:        1000,
			Brick:          50,
			LevelBonus:     5000,
			FinalBonus:     10000,
		},
		Timers: config.TimerConfig{
			DamageInvincibility:  90,
			RespawnInvincibility: 150,
			StarInvincibility:    600,
			TransitionDelay:      120,
		},
		Sizes: map[string]config.SizeConfig{
			"goomba":     {W: 28, H: 28},
			"koopa":      {W: 28, H: 40},
			"piranha":    {W: 28, H: 40},
			"mushroom":   {W: 28, H: 28},
			"fireflower": {W: 28, H: 28},
			"oneup":      {W: 28, H: 28},
			"starman":    {W: 28, H: 28},
			"coin":       {W: 20, H: 28},
			"fireball":   {W: 12, H: 12},
			"elevator":   {W: 96, H: 16},
			"question":   {W: 32, H: 32},
			"brick":      {W: 32, H: 32},
			"pipe":       {W: 64, H: 64},
			"flag":       {W: 8, H: 224},
		},
	}
}

// createTestWorld returns a started world with a small player standing at x=64
func createTestWorld() *world.World {
	w := world.New(3, 42)
	w.Level = 1
	w.LevelName = "Test"
	w.Width = 3200
	w.TimeLimit = 300
	w.TimeLeft = 300
	w.Started = true
	w.SpawnBox = entity.Rect{X: 64, Y: 392, W: 24, H: 24}

	p := entity.New(entity.KindPlayer, w.SpawnBox, &entity.PlayerState{
		FacingRight: true,
		PrevX:       w.SpawnBox.X,
		PrevY:       w.SpawnBox.Y,
	})
	p.ID = 1
	w.NextID = 2
	w.Player = p
	return w
}

// placePlayer moves the player and makes the move its previous position too
func placePlayer(w *world.World, x, y float64) *entity.PlayerState {
	w.Player.X, w.Player.Y = x, y
	ps := w.Player.Player()
	ps.PrevX, ps.PrevY = x, y
	return ps
}

func addEntity(w *world.World, kind entity.Kind, x, y, width, height float64, data entity.Payload) *entity.Entity {
	return w.Spawn(entity.New(kind, entity.Rect{X: x, Y: y, W: width, H: height}, data))
}

func addGoomba(w *world.World, x, y float64) *entity.Entity {
	return addEntity(w, entity.KindGoomba, x, y, 28, 28, &entity.Patrol{Direction: -1})
}
