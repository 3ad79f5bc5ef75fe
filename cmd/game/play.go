package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/game"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/scene/playing"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/sim"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/keyboard"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/sound"
)

var (
	flagRecord     bool
	flagRecordPath string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play.

Controls:
  Left/Right, A/D   - Walk
  Space, Up, W, Z   - Jump
  X, Left Shift     - Throw fireball (fire form)
  Enter             - Start / retry
  Esc               - Pause
  R                 - Reset to the title screen
  F5                - Save the recording so far
  Q                 - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record input for replay")
	playCmd.Flags().StringVar(&flagRecordPath, "record-path", "", "Recording file (default: replay_<time>.json)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	seed := resolveSeed(flagSeed)

	sinks := []audio.Sink{sound.NewLogSink(logger)}
	if !flagMute {
		sinks = append(sinks, sound.NewToneSink(ebitenaudio.NewContext(sound.SampleRate)))
	}

	engine, err := newEngine(logger, seed, sim.WithAudio(audio.Tee(sinks...)))
	if err != nil {
		return err
	}

	scene := playing.New(engine, keyboard.New(nil), playing.Options{
		Record:     flagRecord || flagRecordPath != "",
		RecordPath: flagRecordPath,
		Logger:     logger,
		OnRunEnd: func(id string, s world.Snapshot) {
			saveRun(logger, runFromSnapshot(id, seed, s))
		},
	})

	display := engine.Config().Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.QuitOn(ebiten.KeyQ, ebiten.IsKeyPressed)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	logger.Info("window opened", "seed", seed, "levels", len(engine.Levels()))
	return ebiten.RunGame(g)
}
