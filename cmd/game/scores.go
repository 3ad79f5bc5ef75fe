package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/holynakamoto/goomba-mushroom-world/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Args:  cobra.NoArgs,
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}
	printRuns(cmd.OutOrStdout(), runs)
	return nil
}

func printRuns(out io.Writer, runs []storage.Run) {
	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-5s  %s\n", "Rank", "Score", "Status", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-5s  %s\n", "----", "-----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8s  %-5d  %s\n",
			i+1, r.Score, r.Status, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
