package main

import (
	"github.com/spf13/cobra"

	"jellysync/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dryRunFlag bool
	var verboseFlag bool
	var logFormatFlag string

	ctx := newCommandContext(&configFlag, &dryRunFlag, &verboseFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "jellysync",
		Short:         "Apply declarative configuration to a Jellyfin server",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation runs apply, matching the single-purpose usage.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, ctx, false)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath, "Path to the desired-state document")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Log intended writes without sending them")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "console", "Log output format (console or json)")

	rootCmd.AddCommand(newApplyCommand(ctx))
	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
