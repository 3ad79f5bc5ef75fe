package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/replay"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/sim"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/state"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

func createTestEngine(t *testing.T) *sim.Engine {
	t.Helper()
	cfg, err := config.Default().LoadAll()
	require.NoError(t, err)
	e, err := sim.FromConfig(cfg)
	require.NoError(t, err)
	return e
}

// createFlagEngine returns a one-level engine whose flag touches the spawn
func createFlagEngine(t *testing.T) *sim.Engine {
	t.Helper()
	cfg, err := config.Default().LoadPhysics()
	require.NoError(t, err)

	box := entity.Rect{X: 64, Y: 392, W: 24, H: 24}
	level := &world.Level{
		ID:        1,
		Name:      "Flag",
		Width:     1000,
		TimeLimit: 100,
		Player:    entity.New(entity.KindPlayer, box, &entity.PlayerState{FacingRight: true, PrevX: box.X, PrevY: box.Y}),
		Entities: []*entity.Entity{
			entity.New(entity.KindFlag, entity.Rect{X: 70, Y: 192, W: 8, H: 224}, nil),
		},
	}
	e, err := sim.New(cfg, []*world.Level{level})
	require.NoError(t, err)
	return e
}

func TestPlaying_StartsOnTitle(t *testing.T) {
	p := New(createTestEngine(t), sim.Held(input.Of(input.MoveRight)), Options{})

	assert.Equal(t, state.StateTitle, p.Mode())

	p.Advance()
	assert.Equal(t, uint64(0), p.World().Tick)
}

func TestPlaying_Commands(t *testing.T) {
	p := New(createTestEngine(t), sim.Held(input.Of(input.MoveRight)), Options{})

	// pause is ignored before the run starts
	p.Apply(CommandPause)
	assert.Equal(t, state.StateTitle, p.Mode())

	p.Apply(CommandStart)
	assert.Equal(t, state.StatePlaying, p.Mode())
	p.Advance()
	p.Advance()
	assert.Equal(t, uint64(2), p.World().Tick)

	p.Apply(CommandPause)
	assert.Equal(t, state.StatePaused, p.Mode())
	p.Advance()
	assert.Equal(t, uint64(2), p.World().Tick)

	// start does nothing mid-run
	p.Apply(CommandStart)
	assert.Equal(t, state.StatePaused, p.Mode())

	p.Apply(CommandPause)
	p.Advance()
	assert.Equal(t, uint64(3), p.World().Tick)

	p.Apply(CommandReset)
	assert.Equal(t, state.StateTitle, p.Mode())
	assert.Equal(t, uint64(0), p.World().Tick)
}

func TestPlaying_RunEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	var ended []world.Snapshot
	var ids []string
	var presented int
	p := New(createFlagEngine(t), sim.Held(input.None), Options{
		Record:     true,
		RecordPath: path,
		Presenter:  sim.PresenterFunc(func(world.Snapshot) { presented++ }),
		OnRunEnd: func(id string, s world.Snapshot) {
			ids = append(ids, id)
			ended = append(ended, s)
		},
	})

	p.Apply(CommandStart)
	p.Advance()
	p.Advance()

	assert.Equal(t, state.StateWon, p.Mode())
	assert.Equal(t, 1, presented)
	require.Len(t, ended, 1)
	assert.Equal(t, world.StatusWon, ended[0].Status)
	assert.NotEmpty(t, ids[0])

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 1)
	assert.Equal(t, "won", data.FinalStatus)
	assert.Equal(t, ids[0], data.ID.String())

	// a finished run restarts on start
	p.Apply(CommandStart)
	assert.Equal(t, state.StatePlaying, p.Mode())
	assert.Equal(t, 0, p.World().Progress.Score)
}

func TestPlaying_RunEndWithoutRecording(t *testing.T) {
	var ids []string
	p := New(createFlagEngine(t), sim.Held(input.None), Options{
		OnRunEnd: func(id string, _ world.Snapshot) { ids = append(ids, id) },
	})

	p.Apply(CommandStart)
	p.Advance()

	assert.Equal(t, []string{""}, ids)
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		name string
		view world.EntityView
		want any
	}{
		{name: "small player", view: world.EntityView{Kind: entity.KindPlayer}, want: colorPlayer},
		{name: "fire player", view: world.EntityView{Kind: entity.KindPlayer, Big: true, Fire: true}, want: colorFire},
		{name: "invincible player", view: world.EntityView{Kind: entity.KindPlayer, Fire: true, Invincible: true}, want: colorStarred},
		{name: "brick", view: world.EntityView{Kind: entity.KindBrick}, want: colorBrick},
		{name: "emptied block", view: world.EntityView{Kind: entity.KindBrick, Empty: true}, want: colorEmpty},
		{name: "walking koopa", view: world.EntityView{Kind: entity.KindKoopa}, want: colorKoopa},
		{name: "shell", view: world.EntityView{Kind: entity.KindKoopa, Shell: entity.ShellSliding}, want: colorShell},
		{name: "starman", view: world.EntityView{Kind: entity.KindStarman}, want: colorStar},
		{name: "mushroom", view: world.EntityView{Kind: entity.KindMushroom}, want: colorItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(tt.view))
		})
	}
}

func TestHUDText(t *testing.T) {
	s := world.Snapshot{Score: 1200, Coins: 7, Level: 2, TimeLeft: 95, Lives: 3}
	assert.Equal(t, "SCORE 001200   COINS x07   WORLD 2   TIME 095   LIVES 3", HUDText(s))
}
