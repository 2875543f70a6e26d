package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/runstore"
)

// CleanupStartupOrphans fails runs that this pod left running before a
// restart. Called once at startup, before the pool begins claiming, so a
// resurrected pod never sees its own ghosts as live competitors. Other
// pods' stale runs are left to the reaper and claim-time preemption.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, store *runstore.Store, completer TurnCompleter, podID string) (int, error) {
	orphans, err := client.ConversationRun.Query().
		Where(
			conversationrun.StatusEQ(conversationrun.StatusRunning),
			conversationrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	cleaned := 0
	for _, run := range orphans {
		runErr := &models.RunError{
			Code:    models.ErrCodePodRestart,
			Message: "run abandoned by pod restart",
		}
		finalized, err := store.Finalize(ctx, run.ID, conversationrun.StatusFailed, runErr)
		if err != nil {
			if errors.Is(err, runstore.ErrAlreadyFinal) {
				continue
			}
			slog.Error("Failed to clean up orphaned run", "run_id", run.ID, "error", err)
			continue
		}

		slog.Warn("Cleaned up orphaned run from previous pod life",
			"run_id", run.ID,
			"conversation_id", run.ConversationID)

		if completer != nil {
			completer.OnTurnComplete(ctx, finalized)
		}
		cleaned++
	}

	if cleaned > 0 {
		slog.Info("Startup orphan cleanup complete", "pod_id", podID, "cleaned", cleaned)
	}
	return cleaned, nil
}
