package sim

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

// InputSource is sampled exactly once per tick
type InputSource interface {
	Poll() input.Set
}

// InputFunc adapts a function to InputSource
type InputFunc func() input.Set

// Poll calls f
func (f InputFunc) Poll() input.Set { return f() }

// Held is an InputSource that always returns the same set
type Held input.Set

// Poll returns the held set
func (h Held) Poll() input.Set { return input.Set(h) }

// Presenter receives the snapshot produced by every tick
type Presenter interface {
	Present(world.Snapshot)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(world.Snapshot)

// Present calls f
func (f PresenterFunc) Present(s world.Snapshot) { f(s) }

// Runner drives an engine at a fixed tick rate
type Runner struct {
	engine   *Engine
	source   InputSource
	out      Presenter
	logger   *log.Logger
	interval time.Duration

	mu      sync.Mutex
	world   *world.World
	stopped atomic.Bool
}

// NewRunner creates a runner starting from w. A nil presenter drops snapshots.
func NewRunner(engine *Engine, w *world.World, source InputSource, out Presenter, logger *log.Logger) *Runner {
	if out == nil {
		out = PresenterFunc(func(world.Snapshot) {})
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fps := engine.Config().Display.Framerate
	if fps <= 0 {
		fps = 60
	}
	return &Runner{
		engine:   engine,
		source:   source,
		out:      out,
		logger:   logger,
		interval: time.Second / time.Duration(fps),
		world:    w,
	}
}

// SetInterval overrides the tick period derived from the framerate
func (r *Runner) SetInterval(d time.Duration) {
	if d > 0 {
		r.interval = d
	}
}

// World returns the latest world
func (r *Runner) World() *world.World {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world
}

// Stop ends Run after the tick in progress, if any
func (r *Runner) Stop() {
	r.stopped.Store(true)
}

// Run steps the world every interval until ctx is cancelled, Stop is
// called or the run ends. Ticks are never partially applied.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("runner started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner cancelled", "tick", r.World().Tick)
			return ctx.Err()
		case <-ticker.C:
			if r.stopped.Load() {
				return nil
			}
			if w := r.tick(); w.Status != world.StatusRunning {
				return nil
			}
		}
	}
}

// RunTicks steps the world n times without waiting and returns the result.
// It stops early when the run ends.
func (r *Runner) RunTicks(n int) *world.World {
	for i := 0; i < n; i++ {
		if w := r.tick(); w.Status != world.StatusRunning {
			break
		}
	}
	return r.World()
}

func (r *Runner) tick() *world.World {
	in := r.source.Poll()

	r.mu.Lock()
	next := r.engine.Step(r.world, in)
	r.world = next
	r.mu.Unlock()

	r.out.Present(next.Snapshot())
	return next
}
