package reconcile

import (
	"context"
	"reflect"
)

// Server configuration keys touched by global reconciliation.
const (
	quickConnectKey = "QuickConnectAvailable"
	trickplayKey    = "TrickplayOptions"
)

// reconcileGlobal converges the global server options with a read-modify-write.
// Quick Connect is always forced off. Declared trickplay overrides are
// shallow-merged over the server's current values: override keys replace,
// everything else is retained. The write only happens when the merged document
// structurally differs from what the server already has.
func (r *Reconciler) reconcileGlobal(ctx context.Context) Outcome {
	current, err := r.client.SystemConfiguration(ctx)
	if err != nil {
		r.logger.Error("failed to read server configuration", "error", err)
		return Outcome{Kind: KindGlobal, Name: "server options", Action: ActionNone, Detail: err.Error()}
	}

	desired := make(map[string]any, len(current)+1)
	for key, value := range current {
		desired[key] = value
	}
	desired[quickConnectKey] = false

	if len(r.cfg.TrickplayOptions) > 0 {
		existing, _ := current[trickplayKey].(map[string]any)
		merged := make(map[string]any, len(existing)+len(r.cfg.TrickplayOptions))
		for key, value := range existing {
			merged[key] = value
		}
		for key, value := range r.cfg.TrickplayOptions {
			merged[key] = value
		}
		desired[trickplayKey] = merged
	}

	if reflect.DeepEqual(desired, current) {
		r.logger.Info("server options already match, skipping write")
		return Outcome{Kind: KindGlobal, Name: "server options", Action: ActionSkip, OK: true}
	}

	if err := r.client.UpdateSystemConfiguration(ctx, desired); err != nil {
		r.logger.Error("failed to update server configuration", "error", err)
		return Outcome{Kind: KindGlobal, Name: "server options", Action: ActionUpdate, Detail: err.Error()}
	}

	r.logger.Info("server options updated")
	return Outcome{Kind: KindGlobal, Name: "server options", Action: ActionUpdate, OK: true}
}
