package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/sim"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/config"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/storage"
)

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "goomba",
		Level:           level,
	}), nil
}

func loadConfig(dir string) (*config.GameConfig, error) {
	loader := config.Default()
	if dir != "" {
		loader = config.NewLoader(dir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// newEngine loads the configured levels and builds an engine around them
func newEngine(logger *log.Logger, seed int64, opts ...sim.Option) (*sim.Engine, error) {
	cfg, err := loadConfig(flagConfigDir)
	if err != nil {
		return nil, err
	}
	opts = append([]sim.Option{sim.WithLogger(logger), sim.WithSeed(seed)}, opts...)
	engine, err := sim.FromConfig(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid levels: %w", err)
	}
	return engine, nil
}

// runFromSnapshot builds the history row for a run
func runFromSnapshot(id string, seed int64, s world.Snapshot) storage.Run {
	r := storage.Run{
		Score:  s.Score,
		Level:  s.Level,
		Status: s.Status.String(),
		Ticks:  s.Tick,
		Seed:   seed,
	}
	if parsed, err := uuid.Parse(id); err == nil {
		r.ID = parsed
	}
	return r
}

// saveRun stores a run, logging rather than failing when the database is unavailable
func saveRun(logger *log.Logger, r storage.Run) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run not saved", "err", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(r)
	if err != nil {
		logger.Warn("run not saved", "err", err)
		return
	}
	logger.Info("run saved", "id", id, "score", r.Score, "status", r.Status)
}
