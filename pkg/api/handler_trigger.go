package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/models"
)

// postUserMessageHandler handles POST /api/v1/conversations/:id/messages.
// Commits the user message, fans it out on the timeline channel, then asks
// the planner for the AI reply. Under the reject input policy a message
// arriving mid-generation is refused outright.
func (s *Server) postUserMessageHandler(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()

	conv, err := s.conversations.GetConversation(ctx, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	sp, err := s.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if sp.InputPolicy == space.InputPolicyReject {
		running, err := s.store.GetRunningRun(ctx, conv.ID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		if running != nil {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "generation in progress, input rejected"})
			return
		}
	}

	msg, err := s.messages.CommitMessage(ctx, models.CreateMessageRequest{
		ConversationID:      conv.ID,
		Role:                string(message.RoleUser),
		Content:             req.Content,
		SpeakerMembershipID: req.MembershipID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	s.publishUserMessage(c, conv.ID, msg)

	run, err := s.planner.OnUserMessageCommitted(ctx, conv, msg)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := PostMessageResponse{MessageID: msg.ID, Seq: msg.Seq}
	if run != nil {
		resp.RunID = run.ID
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) publishUserMessage(c *gin.Context, conversationID string, msg *ent.Message) {
	membershipID := ""
	if msg.SpeakerMembershipID != nil {
		membershipID = *msg.SpeakerMembershipID
	}
	payload := events.MessageCreatedPayload{
		BasePayload:  events.NewBasePayload(events.EventTypeMessageCreated, conversationID),
		MessageID:    msg.ID,
		DOMID:        events.MessageDOMID(msg.ID),
		Seq:          msg.Seq,
		Role:         string(msg.Role),
		Content:      msg.Content,
		MembershipID: membershipID,
	}
	events.LogPublishError("message_created", conversationID,
		s.publisher.PublishTimeline(c.Request.Context(), conversationID, payload))
}

// forceTalkHandler handles POST /api/v1/conversations/:id/force-talk.
func (s *Server) forceTalkHandler(c *gin.Context) {
	var req ForceTalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()

	conv, err := s.conversations.GetConversation(ctx, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	run, err := s.planner.ForceTalk(ctx, conv, req.SpeakerMembershipID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, scheduledRun(run))
}

// regenerateHandler handles POST /api/v1/conversations/:id/regenerate.
func (s *Server) regenerateHandler(c *gin.Context) {
	var req RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()

	conv, err := s.conversations.GetConversation(ctx, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	target, err := s.db.Message.Get(ctx, req.TargetMessageID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "target message not found"})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	if target.ConversationID != conv.ID || target.Role != message.RoleAssistant {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "target is not an assistant message of this conversation"})
		return
	}

	run, err := s.planner.Regenerate(ctx, conv, target)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, scheduledRun(run))
}

// copilotStepHandler handles POST /api/v1/conversations/:id/copilot-step.
func (s *Server) copilotStepHandler(c *gin.Context) {
	var req CopilotStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()

	conv, err := s.conversations.GetConversation(ctx, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	triggerID := req.TriggerMessageID
	if triggerID == "" {
		tail, err := s.messages.PromptVisibleTail(ctx, conv.ID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		if tail != nil {
			triggerID = tail.ID
		}
	}

	run, err := s.planner.CopilotStep(ctx, conv, req.MembershipID,
		conversationrun.Kind(req.Kind), triggerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, scheduledRun(run))
}

// autoModeHandler handles POST /api/v1/conversations/:id/auto-mode.
// Enabling arms the round budget and opens the first round; disabling
// cancels the active round and any pending run.
func (s *Server) autoModeHandler(c *gin.Context) {
	var req AutoModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	ctx := c.Request.Context()

	conv, err := s.conversations.GetConversation(ctx, c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if !req.Enabled {
		if err := s.disableAutoMode(c, conv); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, AutoModeResponse{Enabled: false})
		return
	}

	disabled, err := s.spaces.EnableAutoMode(ctx, conv.SpaceID, conv.ID, req.Rounds)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if err := s.scheduler.OpenRound(ctx, conv.SpaceID, conv.ID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AutoModeResponse{
		Enabled:          true,
		Rounds:           req.Rounds,
		DisabledCopilots: disabled,
	})
}

func (s *Server) disableAutoMode(c *gin.Context, conv *ent.Conversation) error {
	ctx := c.Request.Context()
	if err := s.spaces.DisableAutoMode(ctx, conv.SpaceID, conv.ID); err != nil {
		return err
	}

	if queued, err := s.store.GetQueuedRun(ctx, conv.ID); err != nil {
		return err
	} else if queued != nil {
		runErr := &models.RunError{Code: models.ErrCodeUserCancel, Message: "auto mode disabled"}
		if _, err := s.store.Finalize(ctx, queued.ID, conversationrun.StatusCanceled, runErr); err != nil {
			return err
		}
	}
	if running, err := s.store.GetRunningRun(ctx, conv.ID); err != nil {
		return err
	} else if running != nil {
		if err := s.store.RequestCancel(ctx, running.ID, time.Now(), models.ErrCodeUserCancel); err != nil {
			return err
		}
		s.pool.CancelRun(running.ID)
	}

	if _, err := s.ledger.Cancel(ctx, conv.ID); err != nil {
		return err
	}
	return nil
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	run, err := s.store.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. A queued run is
// finalized immediately; a running run is canceled cooperatively via the
// sticky flag, plus a local context cancel when this pod owns it.
func (s *Server) cancelRunHandler(c *gin.Context) {
	ctx := c.Request.Context()
	runID := c.Param("id")

	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if run.Status == conversationrun.StatusQueued {
		runErr := &models.RunError{Code: models.ErrCodeUserCancel, Message: "canceled by user"}
		finalized, err := s.store.Finalize(ctx, runID, conversationrun.StatusCanceled, runErr)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		s.scheduler.OnTurnComplete(ctx, finalized)
		c.JSON(http.StatusOK, CancelRunResponse{RunID: runID, CancelPending: false})
		return
	}

	if err := s.store.RequestCancel(ctx, runID, time.Now(), models.ErrCodeUserCancel); err != nil {
		abortWithServiceError(c, err)
		return
	}
	local := s.pool.CancelRun(runID)
	c.JSON(http.StatusOK, CancelRunResponse{RunID: runID, CancelPending: true, LocalCancel: local})
}

func scheduledRun(run *ent.ConversationRun) ScheduledRunResponse {
	return ScheduledRunResponse{
		RunID:               run.ID,
		Status:              string(run.Status),
		Kind:                string(run.Kind),
		SpeakerMembershipID: run.SpeakerMembershipID,
	}
}
