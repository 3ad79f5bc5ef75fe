package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holynakamoto/goomba-mushroom-world/internal/application/replay"
	"github.com/holynakamoto/goomba-mushroom-world/internal/application/sim"
	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

// ErrReplayMismatch means re-running a recording did not reproduce its outcome
var ErrReplayMismatch = errors.New("replay does not reproduce the recorded run")

var flagVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording headless",
	Long: `Step a fresh world through every recorded tick and print the result.
With --verify the command fails unless the recorded score and status are
reproduced.

Examples:
  game replay replay_20260101_120000.json
  game replay run.json --verify`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Fail if the outcome differs from the recording")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	engine, err := newEngine(logger, data.Seed)
	if err != nil {
		return err
	}

	w, err := replayRun(engine, *data)
	if err != nil {
		return err
	}
	snap := w.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "replay: %s (%d frames)\n", data.ID, len(data.Frames))
	printSummary(cmd.OutOrStdout(), snap)

	if flagVerify {
		return verifyReplay(*data, snap)
	}
	return nil
}

// replayRun steps a world seeded from the recording through every frame
func replayRun(engine *sim.Engine, data replay.ReplayData) (*world.World, error) {
	replayer, err := replay.NewReplayer(data)
	if err != nil {
		return nil, err
	}
	start := engine.NewWorld()
	start.Seed = replayer.Seed()
	start = engine.Start(start)

	runner := sim.NewRunner(engine, start, replayer, nil, nil)
	return runner.RunTicks(replayer.TotalFrames()), nil
}

// verifyReplay compares a replayed outcome with the recorded one. Recordings
// without an outcome always pass.
func verifyReplay(data replay.ReplayData, s world.Snapshot) error {
	if data.FinalStatus == "" {
		return nil
	}
	if s.Score != data.FinalScore || s.Status.String() != data.FinalStatus {
		return fmt.Errorf("%w: got %s/%d, recorded %s/%d",
			ErrReplayMismatch, s.Status, s.Score, data.FinalStatus, data.FinalScore)
	}
	return nil
}
