// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/replay"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/scene"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/sim"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/state"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/entity"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{92, 148, 252, 255}
	colorGround   = color.RGBA{200, 76, 12, 255}
	colorBrick    = color.RGBA{160, 60, 20, 255}
	colorQuestion = color.RGBA{252, 188, 60, 255}
	colorEmpty    = color.RGBA{136, 112, 0, 255}
	colorPipe     = color.RGBA{0, 168, 0, 255}
	colorPlayer   = color.RGBA{228, 0, 88, 255}
	colorFire     = color.RGBA{252, 252, 252, 255}
	colorStarred  = color.RGBA{255, 255, 120, 255}
	colorGoomba   = color.RGBA{140, 70, 20, 255}
	colorKoopa    = color.RGBA{60, 180, 60, 255}
	colorShell    = color.RGBA{30, 120, 30, 255}
	colorPiranha  = color.RGBA{220, 40, 40, 255}
	colorItem     = color.RGBA{252, 120, 40, 255}
	colorStar     = color.RGBA{255, 230, 0, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorFireball = color.RGBA{255, 140, 0, 255}
	colorFlag     = color.RGBA{240, 240, 240, 255}
	colorElevator = color.RGBA{180, 180, 200, 255}
)

// Command is a meta key handled outside the simulation
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandReset
	CommandPause
	CommandSaveRecording
)

// Options configures the scene
type Options struct {
	// RecordPath enables recording; an empty path with Record set generates one
	Record     bool
	RecordPath string

	// Presenter receives every snapshot, e.g. metrics
	Presenter sim.Presenter
	// OnRunEnd is called once per finished run
	OnRunEnd func(runID string, s world.Snapshot)

	Logger *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	engine  *sim.Engine
	world   *world.World
	source  sim.InputSource
	opts    Options
	logger  *log.Logger
	screenW int
	screenH int

	paused   bool
	recorder *replay.Recorder
	ended    bool
}

// New creates a Playing scene showing the title screen of a fresh world
func New(engine *sim.Engine, source sim.InputSource, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	display := engine.Config().Display
	return &Playing{
		engine:  engine,
		world:   engine.NewWorld(),
		source:  source,
		opts:    opts,
		logger:  logger,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
	}
}

// World returns the current world
func (p *Playing) World() *world.World {
	return p.world
}

// Mode returns the screen mode
func (p *Playing) Mode() state.GameState {
	return state.Of(p.world.Snapshot(), p.paused)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	p.Apply(readCommand())
	p.Advance()
	return nil, nil // nil = stay on this scene
}

func readCommand() Command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return CommandStart
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return CommandReset
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return CommandPause
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		return CommandSaveRecording
	default:
		return CommandNone
	}
}

// Apply handles one meta command
func (p *Playing) Apply(cmd Command) {
	mode := p.Mode()
	switch cmd {
	case CommandStart:
		if !mode.AcceptsStart() {
			return
		}
		p.world = p.engine.Start(p.world)
		p.paused = false
		p.ended = false
		if p.opts.Record {
			p.recorder = replay.NewRecorder(p.world.Seed, p.world.Level)
		}
	case CommandReset:
		p.saveRecording()
		p.world = p.engine.Reset()
		p.paused = false
		p.ended = false
		p.recorder = nil
	case CommandPause:
		if mode == state.StatePlaying || mode == state.StatePaused {
			p.paused = !p.paused
		}
	case CommandSaveRecording:
		p.saveRecording()
	}
}

// Advance runs one tick when the game is live
func (p *Playing) Advance() {
	mode := p.Mode()
	if mode != state.StatePlaying && mode != state.StateLevelClear {
		return
	}

	in := p.source.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.world = p.engine.Step(p.world, in)

	snap := p.world.Snapshot()
	if p.opts.Presenter != nil {
		p.opts.Presenter.Present(snap)
	}
	if snap.Status != world.StatusRunning && !p.ended {
		p.ended = true
		p.finishRun(snap)
	}
}

func (p *Playing) finishRun(s world.Snapshot) {
	runID := ""
	if p.recorder != nil {
		p.recorder.Finish(s.Score, s.Status.String())
		runID = p.recorder.ID().String()
		p.saveRecording()
	}
	if p.opts.OnRunEnd != nil {
		p.opts.OnRunEnd(runID, s)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the world (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.world.Snapshot()
	// player last so it stays on top
	for _, v := range snap.Entities[min(1, len(snap.Entities)):] {
		p.drawEntity(screen, v, snap.CameraX)
	}
	if len(snap.Entities) > 0 {
		p.drawEntity(screen, snap.Entities[0], snap.CameraX)
	}

	p.drawHUD(screen, snap)

	switch state.Of(snap, p.paused) {
	case state.StateTitle:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 96}, fmt.Sprintf("%s\n\nPRESS ENTER", snap.LevelName))
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nESC to resume")
	case state.StateLevelClear:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 64}, "COURSE CLEAR!")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, fmt.Sprintf("GAME OVER\n\nSCORE %d\n\nENTER to retry", snap.Score))
	case state.StateWon:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 160}, fmt.Sprintf("THANK YOU!\n\nSCORE %d\n\nENTER to play again", snap.Score))
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, v world.EntityView, camX float64) {
	x := v.Box.X - camX
	if x+v.Box.W < 0 || x > float64(p.screenW) {
		return
	}
	ebitenutil.DrawRect(screen, x, v.Box.Y, v.Box.W, v.Box.H, ColorFor(v))
}

func (p *Playing) drawHUD(screen *ebiten.Image, s world.Snapshot) {
	ebitenutil.DebugPrintAt(screen, HUDText(s), 8, 4)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// HUDText formats the status line
func HUDText(s world.Snapshot) string {
	return fmt.Sprintf("SCORE %06d   COINS x%02d   WORLD %d   TIME %03d   LIVES %d",
		s.Score, s.Coins, s.Level, s.TimeLeft, s.Lives)
}

// ColorFor picks the fill color of an entity view
func ColorFor(v world.EntityView) color.Color {
	switch v.Kind {
	case entity.KindPlayer:
		switch {
		case v.Invincible:
			return colorStarred
		case v.Fire:
			return colorFire
		default:
			return colorPlayer
		}
	case entity.KindGround:
		return colorGround
	case entity.KindBrick:
		if v.Empty {
			return colorEmpty
		}
		return colorBrick
	case entity.KindQuestion:
		return colorQuestion
	case entity.KindPipe:
		return colorPipe
	case entity.KindGoomba:
		return colorGoomba
	case entity.KindKoopa:
		if v.Shell != entity.ShellNone {
			return colorShell
		}
		return colorKoopa
	case entity.KindPiranha:
		return colorPiranha
	case entity.KindMushroom, entity.KindOneUp, entity.KindFireFlower:
		return colorItem
	case entity.KindStarman:
		return colorStar
	case entity.KindCoin:
		return colorCoin
	case entity.KindFireball:
		return colorFireball
	case entity.KindFlag:
		return colorFlag
	case entity.KindElevator:
		return colorElevator
	default:
		return color.White
	}
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	p.logger.Debug("playing scene entered", "level", p.world.Level)
}

// OnExit keeps an unfinished recording
func (p *Playing) OnExit() {
	p.saveRecording()
}
