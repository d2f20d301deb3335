package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sortd/internal/session"
)

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Show recent analysis sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := session.Open(cfg)
			if err != nil {
				return fmt.Errorf("open session history: %w", err)
			}
			defer store.Close()

			sessions, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, map[string]any{"sessions": sessions})
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, sess := range sessions {
				degraded := ""
				if sess.Degraded {
					degraded = "degraded"
				}
				rows = append(rows, []string{
					sess.JobID,
					humanize.Time(sess.CreatedAt),
					sess.Mode,
					countPrinter.Sprintf("%d", sess.FilesProcessed),
					fmt.Sprintf("%d", sess.WorkersUsed),
					fmt.Sprintf("%.2fx", sess.Speedup),
					fmt.Sprintf("%d", sess.DuplicateGroups),
					degraded,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Job", "When", "Mode", "Files", "Workers", "Speedup", "Dup groups", ""},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.AddCommand(newSessionShowCommand(ctx))
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Maximum sessions to list (default 20)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit sessions as JSON")
	return cmd
}

func newSessionShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show the full report for one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := session.Open(cfg)
			if err != nil {
				return fmt.Errorf("open session history: %w", err)
			}
			defer store.Close()

			sess, err := store.GetByJobID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			report, err := sess.Report()
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the report as JSON")
	return cmd
}
