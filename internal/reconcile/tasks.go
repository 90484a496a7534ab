package reconcile

import (
	"context"
	"fmt"

	"jellysync/internal/config"
	"jellysync/internal/jellyfin"
	"jellysync/internal/schedule"
)

// reconcileTask locates the server task matching kind and replaces its
// triggers with the declared schedule.
func (r *Reconciler) reconcileTask(ctx context.Context, tasks []jellyfin.TaskInfo, kind schedule.TaskKind, declared config.Task) Outcome {
	displayName := kind.DisplayName()
	log := r.logger.With("task", displayName)

	task, found := schedule.MatchTask(tasks, displayName)
	if !found {
		detail := "task not found on server"
		log.Error(detail)
		return Outcome{Kind: KindTask, Name: displayName, Action: ActionNone, Detail: detail}
	}

	triggers, err := schedule.Translate(declared)
	if err != nil {
		log.Error("invalid schedule", "error", err)
		return Outcome{Kind: KindTask, Name: displayName, Action: ActionNone, Detail: err.Error()}
	}

	action := ActionUpdate
	detail := ""
	switch {
	case !declared.IsEnabled():
		action = ActionClear
		detail = "disabled, clearing triggers"
	case len(triggers) == 0:
		// No recognized schedule key still writes an empty list, clearing
		// whatever schedule the task had.
		action = ActionClear
		detail = "no schedule declared, clearing triggers"
	case declared.IntervalMinutes != nil:
		detail = fmt.Sprintf("every %d minutes", *declared.IntervalMinutes)
	default:
		clock := declared.Time
		if clock == "" {
			clock = "03:00"
		}
		detail = "daily at " + clock
	}

	log.Info("writing task triggers", "task_id", task.Identifier(), "detail", detail)
	if err := r.client.UpdateTaskTriggers(ctx, task.Identifier(), triggers); err != nil {
		log.Error("failed to write triggers", "error", err)
		return Outcome{Kind: KindTask, Name: displayName, Action: action, Detail: err.Error()}
	}

	return Outcome{Kind: KindTask, Name: displayName, Action: action, OK: true, Detail: detail}
}
