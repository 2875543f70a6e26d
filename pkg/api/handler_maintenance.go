package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/rounds"
)

// conversationHealthHandler handles GET /api/v1/conversations/:id/health.
// Pure inspection; the maintenance endpoint acts on the findings.
func (s *Server) conversationHealthHandler(c *gin.Context) {
	report, err := s.health.Check(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// maintenanceHandler handles POST /api/v1/conversations/:id/maintenance.
func (s *Server) maintenanceHandler(c *gin.Context) {
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()
	conversationID := c.Param("id")

	switch req.Action {
	case "reap_stale":
		reaped, err := s.reaper.Sweep(ctx)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, MaintenanceResponse{
			Action:  req.Action,
			Details: map[string]any{"reaped": reaped},
		})

	case "retry_failed_run":
		runID, err := s.retryFailedRun(c, conversationID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, MaintenanceResponse{
			Action:  req.Action,
			Details: map[string]any{"run_id": runID},
		})

	case "cancel_stuck_run":
		running, err := s.store.GetRunningRun(ctx, conversationID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		if running == nil {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no running run"})
			return
		}
		if err := s.store.RequestCancel(ctx, running.ID, time.Now(), models.ErrCodeUserCancel); err != nil {
			abortWithServiceError(c, err)
			return
		}
		local := s.pool.CancelRun(running.ID)
		c.JSON(http.StatusOK, MaintenanceResponse{
			Action:  req.Action,
			Details: map[string]any{"run_id": running.ID, "local_cancel": local},
		})

	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown maintenance action"})
	}
}

// retryFailedRun re-enqueues the conversation's most recent failed run. A
// failed round is resumed first so the retried turn lands back on its slot.
func (s *Server) retryFailedRun(c *gin.Context, conversationID string) (string, error) {
	ctx := c.Request.Context()

	failed, err := s.db.ConversationRun.Query().
		Where(
			conversationrun.ConversationIDEQ(conversationID),
			conversationrun.StatusEQ(conversationrun.StatusFailed),
		).
		Order(ent.Desc(conversationrun.FieldFinishedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("no failed run to retry: %w", err)
		}
		return "", fmt.Errorf("failed to query failed run: %w", err)
	}

	round, err := s.ledger.GetActive(ctx, conversationID)
	if err != nil && !errors.Is(err, rounds.ErrNoActiveRound) {
		return "", err
	}
	if round != nil && round.SchedulingState == conversationround.SchedulingStateFailed {
		tx, err := s.db.Tx(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to start transaction: %w", err)
		}
		defer tx.Rollback()
		if err := s.ledger.Resume(ctx, tx, round.ID, conversationID); err != nil {
			return "", err
		}
		if err := tx.Commit(); err != nil {
			return "", fmt.Errorf("failed to commit round resume: %w", err)
		}
	}

	req := models.CreateQueuedRequest{
		ConversationID:      conversationID,
		Kind:                string(failed.Kind),
		Reason:              models.TriggerRetry,
		SpeakerMembershipID: failed.SpeakerMembershipID,
		Debug: &models.RunDebug{
			Trigger:      models.TriggerRetry,
			RetryOfRunID: failed.ID,
		},
	}
	if round != nil {
		req.RoundID = round.ID
	}
	run, err := s.store.UpsertQueued(ctx, req)
	if err != nil {
		return "", err
	}
	s.pool.Kick()
	return run.ID, nil
}
