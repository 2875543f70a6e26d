// Package executor drives a claimed run through generation to commit.
// Streaming output is previewed over the ephemeral channel only; the
// timeline never sees a partial message.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/llm"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/prompt"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/services"
)

// heartbeatInterval throttles running-row heartbeat updates during
// streaming to at most one per second.
const heartbeatInterval = time.Second

// TurnCompleteFunc is the scheduler's hand-off callback, invoked with the
// terminal run after every execution.
type TurnCompleteFunc func(ctx context.Context, run *ent.ConversationRun)

// Executor runs claimed generations.
type Executor struct {
	client    *ent.Client
	store     *runstore.Store
	spaces    *services.SpaceService
	messages  *services.MessageService
	publisher events.Publisher
	llm       llm.Client
	cfg       config.SchedulerConfig
	podID     string

	onTurnComplete TurnCompleteFunc
}

// New creates an executor.
func New(
	client *ent.Client,
	store *runstore.Store,
	spaces *services.SpaceService,
	messages *services.MessageService,
	publisher events.Publisher,
	llmClient llm.Client,
	cfg config.SchedulerConfig,
	podID string,
) *Executor {
	return &Executor{
		client:    client,
		store:     store,
		spaces:    spaces,
		messages:  messages,
		publisher: publisher,
		llm:       llmClient,
		cfg:       cfg,
		podID:     podID,
	}
}

// SetTurnCompleteCallback wires the scheduler hand-off. Set once during
// startup, before workers start.
func (e *Executor) SetTurnCompleteCallback(fn TurnCompleteFunc) {
	e.onTurnComplete = fn
}

// Execute claims and runs a queued run to a terminal state. A failed claim
// exits silently: another worker won the race or the run is not yet due.
func (e *Executor) Execute(ctx context.Context, runID string) error {
	run, err := e.store.ClaimAtomic(ctx, runID, e.podID, time.Now())
	if err != nil {
		if errors.Is(err, runstore.ErrNotClaimable) || errors.Is(err, runstore.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("claim failed: %w", err)
	}

	slog.Info("Run claimed",
		"run_id", run.ID,
		"conversation_id", run.ConversationID,
		"kind", run.Kind,
		"pod_id", e.podID)

	conv, err := e.client.Conversation.Get(ctx, run.ConversationID)
	if err != nil {
		e.finalizeInternal(ctx, run, fmt.Errorf("load conversation: %w", err))
		return nil
	}
	sp, err := e.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		e.finalizeInternal(ctx, run, fmt.Errorf("load space: %w", err))
		return nil
	}
	speaker, err := e.spaces.GetMembership(ctx, run.SpeakerMembershipID)
	if err != nil {
		e.finalizeInternal(ctx, run, fmt.Errorf("load speaker: %w", err))
		return nil
	}

	debug := models.RunDebugFromMap(run.Debug)

	// Expected-last-message guard: the timeline moved since this run was
	// scheduled, so its prompt would be stale.
	if debug.ExpectedLastMessageID != "" {
		tail, err := e.messages.PromptVisibleTail(ctx, conv.ID)
		if err != nil {
			e.finalizeInternal(ctx, run, err)
			return nil
		}
		tailID := ""
		if tail != nil {
			tailID = tail.ID
		}
		if tailID != debug.ExpectedLastMessageID {
			e.finalizeWithNotice(ctx, run, conversationrun.StatusSkipped, &models.RunError{
				Code:    models.ErrCodeExpectedLastMessage,
				Message: models.ReasonMessageMismatch,
				Details: map[string]any{
					"expected": debug.ExpectedLastMessageID,
					"actual":   tailID,
				},
			}, events.EventTypeRunSkipped)
			return nil
		}
	}

	// Token budget guard. Checked before any provider call.
	if code, details := e.checkTokenBudget(sp); code != "" {
		e.finalizeWithNotice(ctx, run, conversationrun.StatusFailed, &models.RunError{
			Code:    code,
			Message: "token budget exhausted",
			Details: details,
		}, events.EventTypeRunFailed)
		return nil
	}

	e.publishTyping(ctx, run, speaker, events.EventTypeTypingStart)

	text, usage, execErr := e.generate(ctx, run, conv.ID, sp, speaker)
	if execErr != nil {
		// Teardown must survive a canceled worker context (pool shutdown or
		// a local CancelRun).
		tctx := context.WithoutCancel(ctx)
		e.publishTyping(tctx, run, speaker, events.EventTypeTypingStop)
		e.publishStreamComplete(tctx, run)

		if errors.Is(execErr, errCancelRequested) || errors.Is(execErr, context.Canceled) {
			e.finalizeWithNotice(tctx, run, conversationrun.StatusCanceled, &models.RunError{
				Code:    e.cancelCause(tctx, run.ID, execErr),
				Message: "cancel requested during generation",
			}, events.EventTypeRunCanceled)
			return nil
		}

		te := llm.ClassifyError(execErr)
		e.finalizeWithNotice(tctx, run, conversationrun.StatusFailed, &models.RunError{
			Code:    te.Code,
			Message: te.Error(),
		}, events.EventTypeRunFailed)
		return nil
	}

	// Group trim: keep only the speaker's turn.
	if !sp.RelaxMessageTrim {
		others, err := e.otherParticipantNames(ctx, sp.ID, speaker.ID)
		if err == nil {
			text = TrimNonSpeakerTurns(text, others)
		}
	}

	commitErr := e.commit(ctx, run, conv, debug, text, usage)
	e.publishTyping(ctx, run, speaker, events.EventTypeTypingStop)
	e.publishStreamComplete(ctx, run)
	if commitErr != nil {
		if errors.Is(commitErr, services.ErrConcurrentModification) {
			// The run was finalized underneath us (reaper or cancel); the
			// commit rolled back, so the timeline is untouched.
			slog.Warn("Commit abandoned, run already finalized", "run_id", run.ID)
			e.handOff(ctx, run.ID)
			return nil
		}
		e.finalizeWithNotice(ctx, run, conversationrun.StatusFailed, &models.RunError{
			Code:    models.ErrCodeInternal,
			Message: commitErr.Error(),
		}, events.EventTypeRunFailed)
		return nil
	}

	e.handOff(ctx, run.ID)
	return nil
}

// errCancelRequested signals a cooperative cancel observed at a chunk
// boundary.
var errCancelRequested = errors.New("cancel requested")

// cancelCause resolves the RunError code for a canceled run from the cause
// recorded by whoever requested the cancel. A bare context cancel with no
// recorded cause is a pod-side stop.
func (e *Executor) cancelCause(ctx context.Context, runID string, execErr error) string {
	if run, err := e.store.GetRun(ctx, runID); err == nil {
		if cause := models.RunDebugFromMap(run.Debug).CancelCause; cause != "" {
			return cause
		}
	}
	if errors.Is(execErr, context.Canceled) {
		return models.ErrCodeSchedulerStop
	}
	return models.ErrCodeUserCancel
}

// generate streams the completion, publishing cumulative previews and
// heartbeating the running row.
func (e *Executor) generate(ctx context.Context, run *ent.ConversationRun, conversationID string, sp *ent.Space, speaker *ent.SpaceMembership) (string, models.TokenUsage, error) {
	history, err := e.messages.HistoryWindow(ctx, conversationID)
	if err != nil {
		return "", models.TokenUsage{}, err
	}

	participants, err := e.spaces.ActiveParticipants(ctx, sp.ID)
	if err != nil {
		return "", models.TokenUsage{}, err
	}
	names := make([]string, 0, len(participants))
	nameByID := make(map[string]string, len(participants))
	for _, m := range participants {
		names = append(names, m.DisplayName)
		nameByID[m.ID] = m.DisplayName
	}

	in := prompt.Input{
		Speaker: prompt.Speaker{
			DisplayName: speaker.DisplayName,
			IsUser:      speaker.Kind == spacemembership.KindHuman,
		},
		ParticipantNames: names,
	}
	for _, m := range history {
		speakerName := ""
		if m.SpeakerMembershipID != nil {
			speakerName = nameByID[*m.SpeakerMembershipID]
		}
		in.History = append(in.History, prompt.HistoryMessage{
			Role:        string(m.Role),
			Content:     m.Content,
			SpeakerName: speakerName,
			Visibility:  string(m.Visibility),
		})
	}
	assembled := prompt.Assemble(in)
	for _, w := range assembled.Warnings {
		slog.Debug("Prompt assembly warning", "run_id", run.ID, "warning", w)
	}

	req := llm.Request{Stop: assembled.StopSequences}
	for _, m := range assembled.Messages {
		req.Messages = append(req.Messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	stream, err := e.llm.Stream(ctx, req)
	if err != nil {
		return "", models.TokenUsage{}, err
	}

	lastHeartbeat := time.Now()
	return llm.Collect(stream, func(cumulative string) error {
		// Cooperative cancel: re-read the sticky flag at every chunk.
		canceled, err := e.store.IsCancelRequested(ctx, run.ID)
		if err == nil && canceled {
			return errCancelRequested
		}

		payload := events.StreamChunkPayload{
			BasePayload: events.NewBasePayload(events.EventTypeStreamChunk, conversationID),
			RunID:       run.ID,
			Content:     cumulative,
		}
		events.LogPublishError("stream_chunk", conversationID,
			e.publisher.PublishEphemeral(ctx, conversationID, payload))

		if time.Since(lastHeartbeat) >= heartbeatInterval {
			lastHeartbeat = time.Now()
			if err := e.store.Heartbeat(ctx, run.ID, lastHeartbeat); err != nil {
				slog.Warn("Heartbeat failed", "run_id", run.ID, "error", err)
			}
		}
		return nil
	})
}

// commit lands the generation on the timeline atomically with run success,
// then fans the committed state out on the timeline channel.
func (e *Executor) commit(ctx context.Context, run *ent.ConversationRun, conv *ent.Conversation, debug *models.RunDebug, text string, usage models.TokenUsage) error {
	if run.Kind == conversationrun.KindRegenerate {
		if debug.TargetMessageID == "" {
			return fmt.Errorf("regenerate run %s has no target message", run.ID)
		}
		swipe, err := e.messages.CommitRegenSwipe(ctx, models.CommitSwipeRequest{
			ConversationID:  conv.ID,
			SpaceID:         conv.SpaceID,
			RunID:           run.ID,
			TargetMessageID: debug.TargetMessageID,
			Content:         text,
			Usage:           usage,
		})
		if err != nil {
			return err
		}
		target, err := e.client.Message.Query().
			Where(message.IDEQ(debug.TargetMessageID)).
			Only(ctx)
		if err != nil {
			return fmt.Errorf("reload regen target: %w", err)
		}
		e.publishSwipeAdded(ctx, conv.ID, target, swipe, run.ID)
		return nil
	}

	msg, err := e.messages.CommitAssistant(ctx, models.CommitAssistantRequest{
		ConversationID:      conv.ID,
		SpaceID:             conv.SpaceID,
		RunID:               run.ID,
		SpeakerMembershipID: run.SpeakerMembershipID,
		Content:             text,
		Usage:               usage,
	})
	if err != nil {
		return err
	}
	e.publishCommitted(ctx, run, msg)
	return nil
}

// checkTokenBudget returns a failure code when the space (or global)
// budget is exhausted.
func (e *Executor) checkTokenBudget(sp *ent.Space) (string, map[string]any) {
	used := sp.PromptTokensTotal + sp.CompletionTokensTotal
	if sp.TokenLimit != nil && used >= *sp.TokenLimit {
		return models.ErrCodeTokenLimitExceeded, map[string]any{"limit": *sp.TokenLimit, "used": used}
	}
	if e.cfg.GlobalTokenLimit > 0 && used >= e.cfg.GlobalTokenLimit {
		return models.ErrCodeTokenLimitExceeded, map[string]any{"limit": e.cfg.GlobalTokenLimit, "used": used, "global": true}
	}
	return "", nil
}

// otherParticipantNames lists display names of active participants other
// than the speaker, for the group trim.
func (e *Executor) otherParticipantNames(ctx context.Context, spaceID, speakerID string) ([]string, error) {
	participants, err := e.spaces.ActiveParticipants(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(participants))
	for _, m := range participants {
		if m.ID != speakerID {
			names = append(names, m.DisplayName)
		}
	}
	return names, nil
}

// finalizeWithNotice finalizes the run, broadcasts the matching ephemeral
// notice, and hands off to the scheduler.
func (e *Executor) finalizeWithNotice(ctx context.Context, run *ent.ConversationRun, status conversationrun.Status, runErr *models.RunError, eventType string) {
	if _, err := e.store.Finalize(ctx, run.ID, status, runErr); err != nil && !errors.Is(err, runstore.ErrAlreadyFinal) {
		slog.Error("Failed to finalize run", "run_id", run.ID, "status", status, "error", err)
	}

	payload := events.RunNoticePayload{
		BasePayload: events.NewBasePayload(eventType, run.ConversationID),
		RunID:       run.ID,
		Code:        runErr.Code,
		Reason:      runErr.Message,
	}
	events.LogPublishError(eventType, run.ConversationID,
		e.publisher.PublishEphemeral(ctx, run.ConversationID, payload))

	slog.Info("Run finalized",
		"run_id", run.ID,
		"status", status,
		"code", runErr.Code)

	e.handOff(ctx, run.ID)
}

func (e *Executor) finalizeInternal(ctx context.Context, run *ent.ConversationRun, err error) {
	e.finalizeWithNotice(ctx, run, conversationrun.StatusFailed, &models.RunError{
		Code:    models.ErrCodeInternal,
		Message: err.Error(),
	}, events.EventTypeRunFailed)
}

// handOff reloads the terminal run and invokes the scheduler callback.
func (e *Executor) handOff(ctx context.Context, runID string) {
	if e.onTurnComplete == nil {
		return
	}
	run, err := e.store.GetRun(ctx, runID)
	if err != nil {
		slog.Error("Failed to reload run for hand-off", "run_id", runID, "error", err)
		return
	}
	e.onTurnComplete(ctx, run)
}

func (e *Executor) publishTyping(ctx context.Context, run *ent.ConversationRun, speaker *ent.SpaceMembership, eventType string) {
	payload := events.TypingPayload{
		BasePayload:  events.NewBasePayload(eventType, run.ConversationID),
		MembershipID: speaker.ID,
		DisplayName:  speaker.DisplayName,
		AvatarURL:    speaker.AvatarURL,
		IsUser:       speaker.Kind == spacemembership.KindHuman,
		RunID:        run.ID,
	}
	events.LogPublishError(eventType, run.ConversationID,
		e.publisher.PublishEphemeral(ctx, run.ConversationID, payload))
}

func (e *Executor) publishStreamComplete(ctx context.Context, run *ent.ConversationRun) {
	payload := events.StreamCompletePayload{
		BasePayload: events.NewBasePayload(events.EventTypeStreamComplete, run.ConversationID),
		RunID:       run.ID,
	}
	events.LogPublishError("stream_complete", run.ConversationID,
		e.publisher.PublishEphemeral(ctx, run.ConversationID, payload))
}

// publishCommitted fans the committed message out on the timeline channel.
func (e *Executor) publishCommitted(ctx context.Context, run *ent.ConversationRun, msg *ent.Message) {
	membershipID := ""
	if msg.SpeakerMembershipID != nil {
		membershipID = *msg.SpeakerMembershipID
	}
	payload := events.MessageCreatedPayload{
		BasePayload:  events.NewBasePayload(events.EventTypeMessageCreated, run.ConversationID),
		MessageID:    msg.ID,
		DOMID:        events.MessageDOMID(msg.ID),
		Seq:          msg.Seq,
		Role:         string(msg.Role),
		Content:      msg.Content,
		MembershipID: membershipID,
		RunID:        run.ID,
	}
	events.LogPublishError("message_created", run.ConversationID,
		e.publisher.PublishTimeline(ctx, run.ConversationID, payload))
}

func (e *Executor) publishSwipeAdded(ctx context.Context, conversationID string, target *ent.Message, swipe *ent.MessageSwipe, runID string) {
	payload := events.SwipeAddedPayload{
		BasePayload: events.NewBasePayload(events.EventTypeSwipeAdded, conversationID),
		MessageID:   target.ID,
		DOMID:       events.MessageDOMID(target.ID),
		SwipeID:     swipe.ID,
		Position:    swipe.Position,
		Content:     swipe.Content,
		RunID:       runID,
	}
	events.LogPublishError("swipe_added", conversationID,
		e.publisher.PublishTimeline(ctx, conversationID, payload))
}
