package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/holynakamoto/goomba-mushroom-world/internal/domain/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the configured levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		engine, err := newEngine(logger, 1)
		if err != nil {
			return err
		}
		printLevels(cmd.OutOrStdout(), engine.Levels())
		return nil
	},
}

func printLevels(out io.Writer, levels []*world.Level) {
	fmt.Fprintf(out, "  %-3s  %-20s  %-6s  %-5s  %s\n", "ID", "Name", "Width", "Time", "Entities")
	for _, l := range levels {
		fmt.Fprintf(out, "  %-3d  %-20s  %-6.0f  %-5d  %d\n", l.ID, l.Name, l.Width, l.TimeLimit, len(l.Entities))
	}
}
