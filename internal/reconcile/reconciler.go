package reconcile

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"jellysync/internal/config"
	"jellysync/internal/jellyfin"
	"jellysync/internal/schedule"
)

// Reconciler applies a desired-state document to one server.
type Reconciler struct {
	cfg    *config.Config
	client *jellyfin.Client
	logger *slog.Logger
	runID  string
}

// New builds a reconciler. A nil logger falls back to discard. Every log line
// and the final report carry the same generated run identifier.
func New(cfg *config.Config, client *jellyfin.Client, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	runID := uuid.NewString()
	return &Reconciler{
		cfg:    cfg,
		client: client,
		logger: logger.With("run_id", runID),
		runID:  runID,
	}
}

// RunID returns the identifier stamped on this reconciler's logs and report.
func (r *Reconciler) RunID() string { return r.runID }

// Run reconciles libraries, global options, and scheduled tasks, in that
// order. Individual failures are recorded and do not stop the run; only
// context cancellation returns early, with the partial report.
func (r *Reconciler) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: r.runID}

	for _, lib := range r.cfg.Libraries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.add(r.reconcileLibrary(ctx, lib))
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	report.add(r.reconcileGlobal(ctx))

	if err := ctx.Err(); err != nil {
		return report, err
	}
	r.reconcileTasks(ctx, report)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (r *Reconciler) reconcileTasks(ctx context.Context, report *Report) {
	if len(r.cfg.ScheduledTasks) == 0 {
		return
	}

	for key := range r.cfg.ScheduledTasks {
		if !schedule.Known(key) {
			r.logger.Warn("ignoring unknown scheduled task key", "key", key)
		}
	}

	tasks, err := r.client.ScheduledTasks(ctx)
	if err != nil {
		r.logger.Error("failed to list scheduled tasks", "error", err)
		report.add(Outcome{
			Kind:   KindTask,
			Name:   "scheduled tasks",
			Action: ActionNone,
			Detail: err.Error(),
		})
		return
	}

	for _, kind := range schedule.Kinds() {
		task, declared := r.cfg.ScheduledTasks[string(kind)]
		if !declared {
			continue
		}
		report.add(r.reconcileTask(ctx, tasks, kind, task))
	}
}
