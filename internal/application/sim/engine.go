// Package sim drives the world one fixed step at a time.
//
// Step is a pure function of the previous world and the tick's action set:
// it clones the world, runs the systems in a fixed order and returns the
// result. Sound cues leave through the configured audio sink.
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/system"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
)

// Engine construction errors
var (
	ErrNoLevels       = errors.New("no levels")
	ErrDuplicateLevel = errors.New("duplicate level id")
)

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger for level and run events
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAudio sets the sink that receives sound cues
func WithAudio(s audio.Sink) Option {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithSeed sets the seed stored in new worlds
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// Engine owns the systems and the preloaded level templates
type Engine struct {
	config *config.PhysicsConfig
	levels []*world.Level
	byID   map[int]*world.Level
	logger *log.Logger
	sink   audio.Sink
	seed   int64

	control     *system.ControlSystem
	physics     *system.PhysicsSystem
	blocks      *system.BlockSystem
	behavior    *system.BehaviorSystem
	interaction *system.InteractionSystem
}

// New creates an engine over already built level templates
func New(cfg *config.PhysicsConfig, levels []*world.Level, opts ...Option) (*Engine, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	e := &Engine{
		config: cfg,
		levels: levels,
		byID:   make(map[int]*world.Level, len(levels)),
		logger: log.New(io.Discard),
		sink:   audio.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}

	for i, l := range levels {
		if l == nil || l.Player == nil {
			return nil, fmt.Errorf("level #%d: %w", i, system.ErrNoPlayer)
		}
		if _, dup := e.byID[l.ID]; dup {
			return nil, fmt.Errorf("level %d: %w", l.ID, ErrDuplicateLevel)
		}
		e.byID[l.ID] = l
	}

	e.control = system.NewControlSystem(cfg, e.sink)
	e.physics = system.NewPhysicsSystem(cfg)
	e.blocks = system.NewBlockSystem(cfg, e.sink)
	e.behavior = system.NewBehaviorSystem(cfg, e.physics, e.sink)
	e.interaction = system.NewInteractionSystem(cfg, e.sink)

	e.physics.OnBlockHit = e.blocks.Hit
	e.interaction.NextLevel = e.nextLevel

	return e, nil
}

// FromConfig validates every level in gc and creates the engine
func FromConfig(gc *config.GameConfig, opts ...Option) (*Engine, error) {
	levels, err := system.LoadLevels(gc.Levels, gc.Physics)
	if err != nil {
		return nil, err
	}
	return New(gc.Physics, levels, opts...)
}

// Config returns the physics configuration
func (e *Engine) Config() *config.PhysicsConfig {
	return e.config
}

// Levels returns the level templates in play order
func (e *Engine) Levels() []*world.Level {
	return e.levels
}

// NewWorld returns an unstarted world showing the first level
func (e *Engine) NewWorld() *world.World {
	w := world.New(e.config.World.StartLives, e.seed)
	w.Load(e.levels[0])
	return w
}

// Reset discards all progress and returns a fresh unstarted world
func (e *Engine) Reset() *world.World {
	e.logger.Debug("world reset")
	return e.NewWorld()
}

// Start begins play. A finished world starts over from the first level
// with fresh progress; a running one is returned unchanged.
func (e *Engine) Start(w *world.World) *world.World {
	if w == nil || w.Status != world.StatusRunning {
		w = e.NewWorld()
	} else {
		w = w.Clone()
	}
	if !w.Started {
		w.Started = true
		e.logger.Info("run started", "level", w.Level, "lives", w.Progress.Lives, "seed", w.Seed)
	}
	return w
}

// Step advances a started, running world by one tick
func (e *Engine) Step(prev *world.World, in input.Set) *world.World {
	if prev == nil {
		return nil
	}
	w := prev.Clone()
	if !w.Started || w.Status != world.StatusRunning || w.Player == nil {
		return w
	}

	w.Tick++

	if w.Transition != nil {
		w.Transition.TicksLeft--
		if w.Transition.TicksLeft <= 0 {
			e.enterLevel(w, w.Transition.TargetLevel)
		}
		w.Input = in
		return w
	}

	if ps := w.Player.Player(); ps != nil && ps.InvincibleTicks > 0 {
		ps.InvincibleTicks--
	}

	e.control.Update(w, in, w.Input)
	e.physics.Update(w)
	e.behavior.Update(w)
	e.interaction.Update(w)
	e.updateCamera(w)
	e.updateTimer(w)
	w.Prune()
	w.Input = in

	e.logOutcome(prev, w)
	return w
}

func (e *Engine) nextLevel(id int) (int, bool) {
	for i, l := range e.levels {
		if l.ID == id && i+1 < len(e.levels) {
			return e.levels[i+1].ID, true
		}
	}
	return 0, false
}

func (e *Engine) enterLevel(w *world.World, id int) {
	l, ok := e.byID[id]
	if !ok {
		// the flag only schedules known ids
		e.logger.Warn("transition to unknown level", "level", id)
		w.Transition = nil
		w.Status = world.StatusWon
		return
	}
	w.Load(l)
	e.logger.Info("level loaded", "level", l.ID, "name", l.Name, "score", w.Progress.Score)
}

// updateCamera centers the player, clamped to the level
func (e *Engine) updateCamera(w *world.World) {
	screenW := float64(e.config.Display.ScreenWidth)
	x := w.Player.CenterX() - screenW/2
	maxX := w.Width - screenW
	if x > maxX {
		x = maxX
	}
	if x < 0 {
		x = 0
	}
	w.CameraX = x
}

// updateTimer counts level seconds; running out costs a life
func (e *Engine) updateTimer(w *world.World) {
	if w.Status != world.StatusRunning || w.LevelComplete || w.TimeLimit <= 0 {
		return
	}
	fps := e.config.Display.Framerate
	if fps <= 0 {
		fps = 60
	}

	w.TimerTicks++
	if w.TimerTicks < fps {
		return
	}
	w.TimerTicks = 0
	if w.TimeLeft > 0 {
		w.TimeLeft--
	}
	if w.TimeLeft == 0 {
		e.logger.Info("time up", "level", w.Level)
		e.interaction.LoseLife(w)
	}
}

func (e *Engine) logOutcome(prev, w *world.World) {
	if prev.Transition == nil && w.Transition != nil {
		e.logger.Info("level complete", "level", w.Level, "next", w.Transition.TargetLevel, "score", w.Progress.Score)
	}
	if prev.Progress.Lives > w.Progress.Lives && w.Status == world.StatusRunning {
		e.logger.Info("life lost", "lives", w.Progress.Lives, "level", w.Level)
	}
	if w.Status != world.StatusRunning {
		e.logger.Info("run ended", "status", w.Status, "score", w.Progress.Score, "ticks", w.Tick)
	}
}
