// Package planner translates external triggers (user messages, force-talk,
// regenerate, auto-mode and copilot follow-ups) into at most one queued
// run per conversation.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/selector"
	"github.com/talkwheel/talkwheel/pkg/services"
)

// ErrNoSpeaker is returned when a trigger requires auto-selection but the
// strategy yields none (manual mode, or an exhausted pool).
var ErrNoSpeaker = errors.New("no speaker selected")

// Kicker pings the worker pool so a queued run is picked up as soon as its
// run_after elapses. Implemented by the queue pool.
type Kicker interface {
	Kick()
}

// Planner owns trigger-to-run translation.
type Planner struct {
	client    *ent.Client
	store     *runstore.Store
	ledger    *rounds.Ledger
	spaces    *services.SpaceService
	messages  *services.MessageService
	publisher events.Publisher
	kicker    Kicker
	cfg       config.SchedulerConfig
	rng       selector.Rand
}

// New creates a planner. rng may be nil, in which case a time-seeded
// source is used.
func New(
	client *ent.Client,
	store *runstore.Store,
	ledger *rounds.Ledger,
	spaces *services.SpaceService,
	messages *services.MessageService,
	publisher events.Publisher,
	kicker Kicker,
	cfg config.SchedulerConfig,
	rng selector.Rand,
) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{
		client:    client,
		store:     store,
		ledger:    ledger,
		spaces:    spaces,
		messages:  messages,
		publisher: publisher,
		kicker:    kicker,
		cfg:       cfg,
		rng:       rng,
	}
}

// OnUserMessageCommitted schedules the AI reply to a committed user
// message. In manual mode nothing happens. The run is debounced by the
// space's user_turn_debounce_ms so rapid follow-up messages collapse into
// one reply via the queued-slot overwrite.
func (p *Planner) OnUserMessageCommitted(ctx context.Context, conv *ent.Conversation, msg *ent.Message) (*ent.ConversationRun, error) {
	sp, err := p.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return nil, err
	}
	if sp.ReplyOrder == space.ReplyOrderManual {
		return nil, nil
	}

	speaker, err := p.pickSpeaker(ctx, sp, conv.ID)
	if err != nil {
		return nil, err
	}
	if speaker == nil {
		return nil, nil
	}

	debounce := time.Duration(sp.UserTurnDebounceMs) * time.Millisecond
	if debounce == 0 {
		debounce = p.cfg.UserTurnDebounceDefault
	}
	runAfter := time.Now().Add(debounce)

	return p.scheduleRun(ctx, sp, conv.ID, models.CreateQueuedRequest{
		ConversationID:      conv.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		Reason:              models.TriggerUserMessage,
		SpeakerMembershipID: speaker.MembershipID,
		RunAfter:            &runAfter,
		Debug: &models.RunDebug{
			Trigger:          models.TriggerUserMessage,
			TriggerMessageID: msg.ID,
		},
	})
}

// ForceTalk makes a specific participant speak now. Any active round is
// canceled first; force-talk works even in manual mode.
func (p *Planner) ForceTalk(ctx context.Context, conv *ent.Conversation, speakerMembershipID string) (*ent.ConversationRun, error) {
	sp, err := p.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return nil, err
	}

	if err := p.cancelActiveRound(ctx, conv.ID); err != nil {
		return nil, err
	}

	return p.scheduleRun(ctx, sp, conv.ID, models.CreateQueuedRequest{
		ConversationID:      conv.ID,
		Kind:                string(conversationrun.KindForceTalk),
		Reason:              models.TriggerForceTalk,
		SpeakerMembershipID: speakerMembershipID,
		Debug: &models.RunDebug{
			Trigger: models.TriggerForceTalk,
		},
	})
}

// Regenerate schedules a new swipe for an existing assistant message. The
// expected-last-message guard is armed with the target itself: if anything
// lands on the prompt-visible tail before the claim, the run is skipped.
func (p *Planner) Regenerate(ctx context.Context, conv *ent.Conversation, target *ent.Message) (*ent.ConversationRun, error) {
	sp, err := p.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return nil, err
	}
	if target.SpeakerMembershipID == nil {
		return nil, fmt.Errorf("regenerate target has no speaker")
	}

	if err := p.cancelActiveRound(ctx, conv.ID); err != nil {
		return nil, err
	}

	return p.scheduleRun(ctx, sp, conv.ID, models.CreateQueuedRequest{
		ConversationID:      conv.ID,
		Kind:                string(conversationrun.KindRegenerate),
		Reason:              models.TriggerRegenerate,
		SpeakerMembershipID: *target.SpeakerMembershipID,
		Debug: &models.RunDebug{
			Trigger:               models.TriggerRegenerate,
			TargetMessageID:       target.ID,
			ExpectedLastMessageID: target.ID,
		},
	})
}

// AutoFollowup schedules the next auto-mode turn, armed against timeline
// movement via the trigger message.
func (p *Planner) AutoFollowup(ctx context.Context, conv *ent.Conversation, speakerMembershipID, triggerMessageID, roundID string) (*ent.ConversationRun, error) {
	sp, err := p.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return nil, err
	}
	if !sp.AutoModeEnabled {
		return nil, fmt.Errorf("auto mode is not enabled for space %s", sp.ID)
	}

	var runAfter *time.Time
	if sp.AutoModeDelayMs > 0 {
		t := time.Now().Add(time.Duration(sp.AutoModeDelayMs) * time.Millisecond)
		runAfter = &t
	}

	return p.scheduleRun(ctx, sp, conv.ID, models.CreateQueuedRequest{
		ConversationID:      conv.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		Reason:              models.TriggerAutoFollowup,
		SpeakerMembershipID: speakerMembershipID,
		RoundID:             roundID,
		RunAfter:            runAfter,
		Debug: &models.RunDebug{
			Trigger:               models.TriggerAutoFollowup,
			ExpectedLastMessageID: triggerMessageID,
			TriggerMessageID:      triggerMessageID,
		},
	})
}

// CopilotStep schedules a copilot turn. The membership must be a human in
// full copilot mode with steps remaining; steps are decremented by the
// scheduler on success, not here.
func (p *Planner) CopilotStep(ctx context.Context, conv *ent.Conversation, membershipID string, kind conversationrun.Kind, triggerMessageID string) (*ent.ConversationRun, error) {
	sp, err := p.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return nil, err
	}

	m, err := p.spaces.GetMembership(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.CopilotMode != spacemembership.CopilotModeFull {
		return nil, fmt.Errorf("membership %s is not in full copilot mode", membershipID)
	}
	if m.CopilotRemainingSteps <= 0 {
		return nil, fmt.Errorf("membership %s has no copilot steps remaining", membershipID)
	}

	trigger := map[conversationrun.Kind]string{
		conversationrun.KindCopilotStart:    models.TriggerCopilotStart,
		conversationrun.KindCopilotFollowup: models.TriggerCopilotFollowup,
		conversationrun.KindCopilotContinue: models.TriggerCopilotContinue,
	}[kind]
	if trigger == "" {
		return nil, fmt.Errorf("kind %s is not a copilot kind", kind)
	}

	return p.scheduleRun(ctx, sp, conv.ID, models.CreateQueuedRequest{
		ConversationID:      conv.ID,
		Kind:                string(kind),
		Reason:              trigger,
		SpeakerMembershipID: membershipID,
		Debug: &models.RunDebug{
			Trigger:               trigger,
			ExpectedLastMessageID: triggerMessageID,
			TriggerMessageID:      triggerMessageID,
		},
	})
}

// ScheduleSlot enqueues a run for a round slot on behalf of the turn
// scheduler, stamped with the expected prompt-visible tail.
func (p *Planner) ScheduleSlot(ctx context.Context, conv *ent.Conversation, speakerMembershipID, roundID string) (*ent.ConversationRun, error) {
	sp, err := p.spaces.GetSpace(ctx, conv.SpaceID)
	if err != nil {
		return nil, err
	}

	tail, err := p.messages.PromptVisibleTail(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	debug := &models.RunDebug{
		Trigger:     models.TriggerTurnScheduler,
		ScheduledBy: models.TriggerTurnScheduler,
	}
	if tail != nil {
		debug.ExpectedLastMessageID = tail.ID
	}

	var runAfter *time.Time
	if sp.AutoModeDelayMs > 0 {
		t := time.Now().Add(time.Duration(sp.AutoModeDelayMs) * time.Millisecond)
		runAfter = &t
	}

	return p.scheduleRun(ctx, sp, conv.ID, models.CreateQueuedRequest{
		ConversationID:      conv.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		Reason:              models.TriggerTurnScheduler,
		SpeakerMembershipID: speakerMembershipID,
		RoundID:             roundID,
		RunAfter:            runAfter,
		Debug:               debug,
	})
}

// PickSpeaker runs the space's selection strategy against the current
// timeline. Returns nil when the strategy yields no speaker.
func (p *Planner) PickSpeaker(ctx context.Context, sp *ent.Space, conversationID string) (*selector.Participant, error) {
	return p.pickSpeaker(ctx, sp, conversationID)
}

// PredictedQueue materializes the speaker sequence the strategy would
// choose, up to limit entries, for UI display.
func (p *Planner) PredictedQueue(ctx context.Context, sp *ent.Space, conversationID string, limit int) ([]selector.Participant, error) {
	snap, err := p.buildSnapshot(ctx, sp, conversationID)
	if err != nil {
		return nil, err
	}
	return selector.PredictedQueue(*snap, limit), nil
}

// RoundQueue materializes one round's speaker sequence. A round traverses
// the eligible candidates at most once, so the limit is the candidate
// count; the list strategy would otherwise cycle the rotation forever.
func (p *Planner) RoundQueue(ctx context.Context, sp *ent.Space, conversationID string) ([]selector.Participant, error) {
	snap, err := p.buildSnapshot(ctx, sp, conversationID)
	if err != nil {
		return nil, err
	}
	return selector.PredictedQueue(*snap, len(snap.Candidates)), nil
}

func (p *Planner) pickSpeaker(ctx context.Context, sp *ent.Space, conversationID string) (*selector.Participant, error) {
	snap, err := p.buildSnapshot(ctx, sp, conversationID)
	if err != nil {
		return nil, err
	}
	return selector.Select(*snap, p.rng), nil
}

// buildSnapshot captures the selection input: active character candidates
// in position order plus the epoch-derived activation state.
func (p *Planner) buildSnapshot(ctx context.Context, sp *ent.Space, conversationID string) (*selector.Snapshot, error) {
	participants, err := p.spaces.ActiveParticipants(ctx, sp.ID)
	if err != nil {
		return nil, err
	}

	candidates := make([]selector.Participant, 0, len(participants))
	for _, m := range participants {
		if m.Kind != spacemembership.KindCharacter {
			continue
		}
		candidates = append(candidates, selector.Participant{
			MembershipID:  m.ID,
			DisplayName:   m.DisplayName,
			Position:      m.Position,
			Talkativeness: m.Talkativeness,
		})
	}

	epoch, err := p.messages.GetEpochSnapshot(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	return &selector.Snapshot{
		Strategy:          string(sp.ReplyOrder),
		AllowSelf:         sp.AllowSelfResponses,
		PreviousSpeakerID: epoch.PreviousSpeakerID,
		Candidates:        candidates,
		ActivationText:    epoch.ActivationText,
		SpokenInEpoch:     epoch.SpokenInEpoch,
	}, nil
}

// scheduleRun applies the input policy against a running run, upserts the
// queued slot, and kicks the worker pool.
func (p *Planner) scheduleRun(ctx context.Context, sp *ent.Space, conversationID string, req models.CreateQueuedRequest) (*ent.ConversationRun, error) {
	running, err := p.store.GetRunningRun(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if running != nil && sp.InputPolicy == space.InputPolicyRestart {
		// Restart policy: the running generation yields to the new input.
		// The executor observes the cancel at its next chunk boundary.
		if err := p.store.RequestCancel(ctx, running.ID, time.Now(), models.ErrCodeRestartPolicy); err != nil {
			return nil, err
		}
	}

	run, err := p.store.UpsertQueued(ctx, req)
	if err != nil {
		return nil, err
	}

	if p.kicker != nil {
		p.kicker.Kick()
	}

	slog.Info("Run scheduled",
		"conversation_id", conversationID,
		"run_id", run.ID,
		"kind", req.Kind,
		"reason", req.Reason,
		"speaker_membership_id", req.SpeakerMembershipID)
	return run, nil
}

// cancelActiveRound stops the round ledger and broadcasts the new group
// queue projection.
func (p *Planner) cancelActiveRound(ctx context.Context, conversationID string) error {
	roundID, err := p.ledger.Cancel(ctx, conversationID)
	if err != nil {
		return err
	}
	if roundID == "" {
		return nil
	}

	conv, err := p.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to reload conversation: %w", err)
	}
	payload := events.GroupQueuePayload{
		BasePayload:     events.NewBasePayload(events.EventTypeGroupQueue, conversationID),
		RenderSeq:       conv.GroupQueueRevision,
		SchedulingState: string(conv.SchedulingState),
	}
	events.LogPublishError("round_cancel", conversationID,
		p.publisher.PublishEphemeral(ctx, conversationID, payload))
	return nil
}
