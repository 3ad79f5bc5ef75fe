package system

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
)

func TestProperty_PlayerStaysAboveFloor(t *testing.T) {
	cfg := createTestPhysicsConfig()
	sys := NewPhysicsSystem(cfg)

	rapid.Check(t, func(t *rapid.T) {
		w := createTestWorld()
		placePlayer(w,
			rapid.Float64Range(0, 3000).Draw(t, "x"),
			rapid.Float64Range(-200, 500).Draw(t, "y"),
		)
		w.Player.VX = rapid.Float64Range(-3, 3).Draw(t, "vx")
		w.Player.VY = rapid.Float64Range(-11, 10).Draw(t, "vy")

		ticks := rapid.IntRange(1, 30).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			sys.Update(w)
			if w.Player.Bottom() > cfg.World.FloorY {
				t.Fatalf("tick %d: bottom %v below floor %v", i, w.Player.Bottom(), cfg.World.FloorY)
			}
			if w.Player.X < 0 || w.Player.Right() > w.Width {
				t.Fatalf("tick %d: x %v outside level", i, w.Player.X)
			}
		}
	})
}

func TestProperty_NoInterpenetration(t *testing.T) {
	cfg := createTestPhysicsConfig()
	sys := NewPhysicsSystem(cfg)

	rapid.Check(t, func(t *rapid.T) {
		w := createTestWorld()
		// whole-unit terrain keeps edge snapping exact
		bx := float64(rapid.IntRange(100, 2000).Draw(t, "blockX"))
		by := float64(rapid.IntRange(150, 300).Draw(t, "blockY"))
		block := addEntity(w, entity.KindBrick, bx, by, 32, 32, &entity.Block{})

		placePlayer(w,
			bx+rapid.Float64Range(-40, 40).Draw(t, "dx"),
			by+rapid.Float64Range(-40, 40).Draw(t, "dy"),
		)
		w.Player.VX = rapid.Float64Range(-3, 3).Draw(t, "vx")
		w.Player.VY = rapid.Float64Range(-11, 10).Draw(t, "vy")

		sys.Update(w)

		if block.Active && entity.Overlaps(w.Player.Rect, block.Rect) {
			t.Fatalf("player %+v overlaps block %+v", w.Player.Rect, block.Rect)
		}
	})
}

func TestProperty_NoInterpenetrationWithMovingTerrain(t *testing.T) {
	cfg := createTestPhysicsConfig()
	physics := NewPhysicsSystem(cfg)
	behavior := NewBehaviorSystem(cfg, physics, nil)

	rapid.Check(t, func(t *rapid.T) {
		w := createTestWorld()

		// a seamless brick row, a pipe and an elevator, with gaps wider than the player
		rowX := float64(rapid.IntRange(100, 600).Draw(t, "rowX"))
		rowY := float64(rapid.IntRange(150, 300).Draw(t, "rowY"))
		bricks := rapid.IntRange(2, 8).Draw(t, "bricks")
		for i := 0; i < bricks; i++ {
			kind := rapid.SampledFrom([]entity.Kind{entity.KindBrick, entity.KindQuestion}).Draw(t, "kind")
			addEntity(w, kind, rowX+float64(32*i), rowY, 32, 32, &entity.Block{Contents: entity.ContentsCoin})
		}
		pipeX := rowX + float64(32*bricks) + float64(rapid.IntRange(48, 200).Draw(t, "pipeGap"))
		addEntity(w, entity.KindPipe, pipeX, 352, 64, 64, nil)
		elX := pipeX + 64 + float64(rapid.IntRange(48, 200).Draw(t, "elevatorGap"))
		el := addEntity(w, entity.KindElevator, elX, float64(rapid.IntRange(240, 360).Draw(t, "elevatorY")), 96, 16,
			&entity.Oscillator{MinY: 240, MaxY: 360, Speed: 1})
		el.VY = rapid.SampledFrom([]float64{-1, 1}).Draw(t, "elevatorVY")

		ps := placePlayer(w, rapid.Float64Range(rowX-100, elX+150).Draw(t, "x"), 0)
		if rapid.Bool().Draw(t, "big") {
			ps.Tier = entity.TierBig
			w.Player.H = cfg.Player.BigHeight
		}

		ticks := rapid.IntRange(10, 200).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			w.Player.VX = rapid.Float64Range(-3, 3).Draw(t, "vx")
			if ps.Grounded && rapid.Bool().Draw(t, "jump") {
				w.Player.VY = cfg.Player.JumpVelocity
			}

			physics.Update(w)
			behavior.Update(w)

			if w.Player.Bottom() > cfg.World.FloorY {
				t.Fatalf("tick %d: bottom %v below floor", i, w.Player.Bottom())
			}
			for _, e := range w.Entities {
				if e.Active && e.Solid && entity.Overlaps(w.Player.Rect, e.Rect) {
					t.Fatalf("tick %d: player %+v inside %v %+v", i, w.Player.Rect, e.Kind, e.Rect)
				}
			}
		}
	})
}

func TestProperty_PowerLadder(t *testing.T) {
	cfg := createTestPhysicsConfig()

	rapid.Check(t, func(t *rapid.T) {
		sys := NewInteractionSystem(cfg, nil)
		w := createTestWorld()
		w.Progress.Lives = 100
		ps := w.Player.Player()

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			before := ps.Tier
			ps.InvincibleTicks = 0
			op := rapid.SampledFrom([]string{"mushroom", "flower", "damage"}).Draw(t, "op")

			switch op {
			case "damage":
				sys.Damage(w)
				if before != entity.TierSmall && ps.Tier != before-1 {
					t.Fatalf("damage moved %v to %v", before, ps.Tier)
				}
				if before == entity.TierSmall && ps.Tier != entity.TierSmall {
					t.Fatalf("small damage left tier %v", ps.Tier)
				}
			default:
				kind := entity.KindMushroom
				if op == "flower" {
					kind = entity.KindFireFlower
				}
				addEntity(w, kind, w.Player.X, w.Player.Y, 28, 28, nil)
				sys.Update(w)
				if ps.Tier < before || ps.Tier > before+1 {
					t.Fatalf("%s moved %v to %v", op, before, ps.Tier)
				}
			}

			wantH := cfg.Player.SmallHeight
			if ps.Tier.IsBig() {
				wantH = cfg.Player.BigHeight
			}
			if w.Player.H != wantH {
				t.Fatalf("tier %v with height %v", ps.Tier, w.Player.H)
			}
			w.Prune()
		}
	})
}

func TestProperty_QuestionReleasesOnce(t *testing.T) {
	cfg := createTestPhysicsConfig()
	sys := NewBlockSystem(cfg, nil)

	rapid.Check(t, func(t *rapid.T) {
		w := createTestWorld()
		w.Seed = rapid.Int64().Draw(t, "seed")
		w.Player.Player().Tier = entity.Tier(rapid.IntRange(0, 2).Draw(t, "tier"))
		contents := rapid.SampledFrom([]entity.Contents{
			entity.ContentsRandom, entity.ContentsCoin, entity.ContentsMushroom,
			entity.ContentsPowerUp, entity.ContentsOneUp, entity.ContentsStar,
		}).Draw(t, "contents")
		block := addQuestion(w, contents)

		hits := rapid.IntRange(1, 10).Draw(t, "hits")
		for i := 0; i < hits; i++ {
			w.Tick++
			sys.Hit(w, block)
		}

		if len(w.Entities) != 2 {
			t.Fatalf("%d hits released %d spawns", hits, len(w.Entities)-1)
		}
		if w.Progress.Coins > 1 {
			t.Fatalf("coins %d after one release", w.Progress.Coins)
		}
		if block.Kind != entity.KindBrick || !block.Block().Empty {
			t.Fatalf("block not emptied: %v", block.Kind)
		}
	})
}

func TestProperty_CoinEconomy(t *testing.T) {
	cfg := createTestPhysicsConfig()

	rapid.Check(t, func(t *rapid.T) {
		w := createTestWorld()
		start := rapid.IntRange(0, 99).Draw(t, "coins")
		lives := rapid.IntRange(1, 9).Draw(t, "lives")
		n := rapid.IntRange(0, 500).Draw(t, "collected")
		w.Progress.Coins = start
		w.Progress.Lives = lives

		for i := 0; i < n; i++ {
			addCoin(w, cfg)
			if w.Progress.Coins < 0 || w.Progress.Coins >= cfg.World.CoinsPerLife {
				t.Fatalf("coin counter %d out of range", w.Progress.Coins)
			}
		}

		total := start + n
		if w.Progress.Coins != total%cfg.World.CoinsPerLife {
			t.Fatalf("coins %d, want %d", w.Progress.Coins, total%cfg.World.CoinsPerLife)
		}
		if w.Progress.Lives != lives+total/cfg.World.CoinsPerLife {
			t.Fatalf("lives %d, want %d", w.Progress.Lives, lives+total/cfg.World.CoinsPerLife)
		}
	})
}
