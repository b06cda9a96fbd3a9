package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ecoring/journal"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.Open(cfg.Journal.Path, logger)
		if err != nil {
			return err
		}
		defer j.Close()

		sessions, err := j.List(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions yet.")
			return nil
		}
		fmt.Fprintf(out, "%-8s  %-13s  %-8s  %-8s  %-6s  %-9s  %s\n",
			"ID", "GAME", "VARIANT", "PROGRESS", "SCORE", "IMPACT", "PLAYED")
		for _, s := range sessions {
			fmt.Fprintln(out, formatSession(s))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum sessions to show")
}

func formatSession(s journal.Session) string {
	id := s.ID
	if len(id) > 8 {
		id = id[:8]
	}
	progress := fmt.Sprintf("%d/%d", s.Progress, s.Goal)
	if s.Completed {
		progress += "*"
	}
	return fmt.Sprintf("%-8s  %-13s  %-8s  %-8s  %-6d  %-9s  %s",
		id, s.Game, s.Variant, progress, s.Score,
		humanize.FtoaWithDigits(s.ImpactKg, 2)+" kg",
		humanize.Time(s.FinishedAt))
}
