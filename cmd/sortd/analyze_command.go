package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/analysis"
	"sortd/internal/logging"
	"sortd/internal/organize"
	"sortd/internal/scan"
	"sortd/internal/session"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var organizeFlag bool
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "analyze <directory>",
		Short: "Analyze a directory of files",
		Long:  "Scan a directory, classify every file, detect duplicate content, and report performance metrics. The run is recorded in the session history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			files, err := scan.Directory(args[0])
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}

			var organizer analysis.Organizer
			if organizeFlag {
				organizer = organize.New(cfg.Paths.OrganizedDir, logger)
			}
			coordinator := analysis.NewCoordinatorFromConfig(cfg, logger, organizer)

			report, err := coordinator.Run(cmd.Context(), files, organizeFlag)
			if err != nil {
				return err
			}

			store, err := session.Open(cfg)
			if err != nil {
				logger.Warn("session history unavailable", logging.Error(err))
			} else {
				defer store.Close()
				if _, err := store.Record(cmd.Context(), report); err != nil {
					logger.Warn("failed to record session", logging.Error(err))
				}
			}

			if jsonFlag {
				return writeJSON(cmd, report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&organizeFlag, "organize", false, "Copy files into per-category directories after analysis")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the full report as JSON")
	return cmd
}
