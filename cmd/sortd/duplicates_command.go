package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortd/internal/analysis"
	"sortd/internal/scan"
)

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "duplicates <directory>",
		Short: "List files with identical content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			files, err := scan.Directory(args[0])
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}

			coordinator := analysis.NewCoordinatorFromConfig(cfg, ctx.ensureLogger(), nil)
			report, err := coordinator.Run(cmd.Context(), files, false)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, map[string]any{"duplicate_groups": report.DuplicateGroups})
			}
			out := cmd.OutOrStdout()
			if len(report.DuplicateGroups) == 0 {
				fmt.Fprintln(out, "No duplicate content found")
				return nil
			}
			printDuplicates(out, report, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit duplicate groups as JSON")
	return cmd
}
