// game runs Goomba & Mushroom World.
//
// Usage:
//
//	game play                 - Open the game window
//	game run                  - Run headless with scripted input
//	game replay <file>        - Re-run a recording and print the result
//	game scores               - Show the best finished runs
//	game levels               - List the configured levels
//
// Global flags:
//
//	--config <dir>      - Directory with game.yaml and levels/ (default: embedded)
//	--seed <value>      - RNG seed for question blocks (0 = time based)
//	--log-level <lvl>   - debug, info, warn or error
//	--db <path>         - Run history database (default: ~/.goomba/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfigDir string
	flagSeed      int64
	flagLogLevel  string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Goomba & Mushroom World - a tile-free platformer",
	Long: `Goomba & Mushroom World is a side-scrolling platformer built on a
deterministic fixed-step simulation.

Examples:
  game play
  game play --record run.json
  game run --hold right --ticks 600
  game replay run.json --verify
  game scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (empty = embedded defaults)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goomba/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
