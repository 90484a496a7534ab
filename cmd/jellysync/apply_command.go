package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jellysync/internal/jellyfin"
	"jellysync/internal/reconcile"
	"jellysync/internal/runlock"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Reconcile the server with the desired-state document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, ctx, false)
		},
	}
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would change without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, ctx, true)
		},
	}
}

func runApply(cmd *cobra.Command, cmdCtx *commandContext, forceDryRun bool) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}

	dryRun := forceDryRun || cmdCtx.dryRun()
	if dryRun {
		logger.Info("dry-run mode: no changes will be made")
	} else {
		lock, err := runlock.Acquire(cfg.Server.URL)
		if err != nil {
			return err
		}
		defer func() { _ = lock.Release() }()
	}

	client := jellyfin.New(cfg.Server.URL, cfg.Server.APIKey,
		jellyfin.WithDryRun(dryRun),
		jellyfin.WithLogger(logger))

	info, err := client.SystemInfo(signalCtx)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Server.URL, err)
	}
	logger.Info("connected", "server", info.ServerName, "version", info.Version)

	report, err := reconcile.New(cfg, client, logger).Run(signalCtx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderReport(report))
	if !report.OK() {
		return fmt.Errorf("%d of %d items failed", report.Failed(), len(report.Outcomes))
	}
	logger.Info("configuration applied", "items", len(report.Outcomes), "dry_run", dryRun)
	return nil
}
