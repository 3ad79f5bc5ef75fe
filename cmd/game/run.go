package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/replay"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/sim"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/audio"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/input"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/metrics"
	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/sound"
)

var (
	flagHold        string
	flagTicks       int
	flagRealtime    bool
	flagMetricsAddr string
	flagRunRecord   string
	flagSave        bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a window, holding the same actions every
tick, and print the final state.

Examples:
  game run --hold right --ticks 600
  game run --hold right,jump --realtime --metrics-addr :2112
  game run --hold right --ticks 1200 --record run.json`,
	Args: cobra.NoArgs,
	RunE: runHeadlessCmd,
}

func init() {
	runCmd.Flags().StringVar(&flagHold, "hold", "", "Actions held every tick, e.g. right,jump")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Ticks to run (0 = until the run ends)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Step at the configured framerate")
	runCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	runCmd.Flags().StringVar(&flagRunRecord, "record", "", "Write a replay file")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Store the result in the run history")
}

type headlessOptions struct {
	Hold        input.Set
	Ticks       int
	Realtime    bool
	MetricsAddr string
	Collector   *metrics.Collector
	Recorder    *replay.Recorder
	Logger      *log.Logger
}

func runHeadlessCmd(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	hold, err := input.ParseSet(flagHold)
	if err != nil {
		return fmt.Errorf("invalid --hold: %w", err)
	}
	seed := resolveSeed(flagSeed)

	collector := metrics.New()
	cues := sound.NewChannelSink(64)
	engine, err := newEngine(logger, seed, sim.WithAudio(audio.Tee(collector, cues)))
	if err != nil {
		return err
	}

	var rec *replay.Recorder
	if flagRunRecord != "" {
		rec = replay.NewRecorder(seed, engine.Levels()[0].ID)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cueLog := sound.NewLogSink(logger)
	go func() { _ = cues.Forward(ctx, cueLog) }()

	w, err := runHeadless(ctx, engine, headlessOptions{
		Hold:        hold,
		Ticks:       flagTicks,
		Realtime:    flagRealtime,
		MetricsAddr: flagMetricsAddr,
		Collector:   collector,
		Recorder:    rec,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	snap := w.Snapshot()
	printSummary(cmd.OutOrStdout(), snap)
	if dropped := cues.Dropped(); dropped > 0 {
		logger.Debug("cues dropped", "count", dropped)
	}

	runID := ""
	if rec != nil {
		rec.Finish(snap.Score, snap.Status.String())
		if err := rec.Save(flagRunRecord); err != nil {
			return err
		}
		runID = rec.ID().String()
		logger.Info("recording saved", "file", flagRunRecord, "frames", rec.FrameCount())
	}
	if flagSave {
		saveRun(logger, runFromSnapshot(runID, seed, snap))
	}
	return nil
}

// runHeadless steps a started world until the tick budget is spent, the run
// ends or ctx is cancelled. A metrics server, if any, lives as long as the run.
func runHeadless(ctx context.Context, engine *sim.Engine, opts headlessOptions) (*world.World, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var source sim.InputSource = sim.Held(opts.Hold)
	if opts.Recorder != nil {
		source = opts.Recorder.Wrap(source)
	}

	var runner *sim.Runner
	present := sim.PresenterFunc(func(s world.Snapshot) {
		if opts.Collector != nil {
			opts.Collector.Present(s)
		}
		if opts.Realtime && opts.Ticks > 0 && s.Tick >= uint64(opts.Ticks) {
			runner.Stop()
		}
	})
	runner = sim.NewRunner(engine, engine.Start(engine.NewWorld()), source, present, logger)

	eg, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg.Go(func() error {
		defer cancel()
		if opts.Realtime {
			err := runner.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		for i := 0; opts.Ticks <= 0 || i < opts.Ticks; i++ {
			if ctx.Err() != nil {
				return nil
			}
			if w := runner.RunTicks(1); w.Status != world.StatusRunning {
				return nil
			}
		}
		return nil
	})

	if opts.MetricsAddr != "" && opts.Collector != nil {
		srv := &http.Server{Addr: opts.MetricsAddr, Handler: opts.Collector.Handler()}
		eg.Go(func() error {
			logger.Info("metrics listening", "addr", opts.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return runner.World(), nil
}

func printSummary(out io.Writer, s world.Snapshot) {
	fmt.Fprintf(out, "status: %s\n", s.Status)
	fmt.Fprintf(out, "level:  %d (%s)\n", s.Level, s.LevelName)
	fmt.Fprintf(out, "score:  %d\n", s.Score)
	fmt.Fprintf(out, "lives:  %d\n", s.Lives)
	fmt.Fprintf(out, "coins:  %d\n", s.Coins)
	fmt.Fprintf(out, "ticks:  %d\n", s.Tick)
}
