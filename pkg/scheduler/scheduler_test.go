package scheduler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/planner"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/scheduler"
	"github.com/talkwheel/talkwheel/pkg/services"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

type fakePublisher struct {
	mu        sync.Mutex
	ephemeral []any
}

func (f *fakePublisher) PublishEphemeral(_ context.Context, _ string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ephemeral = append(f.ephemeral, payload)
	return nil
}

func (f *fakePublisher) PublishTimeline(_ context.Context, _ string, _ any) error { return nil }

func (f *fakePublisher) autoModeEvents() []events.AutoModePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []events.AutoModePayload
	for _, p := range f.ephemeral {
		if e, ok := p.(events.AutoModePayload); ok {
			out = append(out, e)
		}
	}
	return out
}

type env struct {
	client *ent.Client
	store  *runstore.Store
	ledger *rounds.Ledger
	sched  *scheduler.Scheduler
	pub    *fakePublisher
	fx     *util.SpaceFixture
}

func setup(t *testing.T, opts util.SpaceOpts) *env {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, opts)

	cfg := *config.DefaultSchedulerConfig()
	store := runstore.NewStore(client.Client, cfg.StuckThreshold)
	ledger := rounds.NewLedger(client.Client)
	spaces := services.NewSpaceService(client.Client)
	msgs := services.NewMessageService(client.Client)
	pub := &fakePublisher{}

	pl := planner.New(client.Client, store, ledger, spaces, msgs, pub, nil, cfg, nil)
	sched := scheduler.New(client.Client, store, ledger, pl, spaces, msgs, pub, cfg)

	return &env{client: client.Client, store: store, ledger: ledger, sched: sched, pub: pub, fx: fx}
}

// terminalRun inserts a run row already in a terminal state, as the
// executor or reaper would leave it.
func terminalRun(t *testing.T, e *env, speakerID string, status conversationrun.Status) *ent.ConversationRun {
	t.Helper()
	run, err := e.client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(e.fx.Conversation.ID).
		SetKind(conversationrun.KindAutoResponse).
		SetStatus(status).
		SetSpeakerMembershipID(speakerID).
		SetFinishedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func (e *env) openRound(t *testing.T, memberIDs []string) *ent.ConversationRound {
	t.Helper()
	ctx := context.Background()
	tx, err := e.client.Tx(ctx)
	require.NoError(t, err)
	round, err := e.ledger.Open(ctx, tx, e.fx.Conversation.ID, memberIDs)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return round
}

func (e *env) activeRound(t *testing.T) *ent.ConversationRound {
	t.Helper()
	round, err := e.ledger.GetActive(context.Background(), e.fx.Conversation.ID)
	require.NoError(t, err)
	return round
}

func TestStandaloneTurnWithoutAutoModeStaysIdle(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	_, err := e.ledger.GetActive(ctx, e.fx.Conversation.ID)
	assert.ErrorIs(t, err, rounds.ErrNoActiveRound)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, queued)
}

func TestStandaloneTurnStartsAutoModeRound(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	require.NoError(t, e.client.Space.UpdateOneID(e.fx.Space.ID).
		SetAutoModeEnabled(true).Exec(ctx))
	require.NoError(t, e.client.Conversation.UpdateOneID(e.fx.Conversation.ID).
		SetAutoRoundsRemaining(2).Exec(ctx))

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	round := e.activeRound(t)
	require.NotEmpty(t, round.Edges.Participants)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, round.Edges.Participants[0].MembershipID, queued.SpeakerMembershipID)
	require.NotNil(t, queued.RoundID)
	assert.Equal(t, round.ID, *queued.RoundID)
}

func TestOpenRoundVisitsEachEligibleSpeakerOnce(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 3})
	ctx := context.Background()

	require.NoError(t, e.client.Space.UpdateOneID(e.fx.Space.ID).
		SetAutoModeEnabled(true).Exec(ctx))
	require.NoError(t, e.client.Conversation.UpdateOneID(e.fx.Conversation.ID).
		SetAutoRoundsRemaining(2).Exec(ctx))

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	// The list rotation cycles forever; the round must hold one pass of it,
	// not an arbitrary multiple, or the per-round budget never decrements.
	round := e.activeRound(t)
	require.Len(t, round.Edges.Participants, 3)
	seen := make(map[string]bool, 3)
	for _, p := range round.Edges.Participants {
		seen[p.MembershipID] = true
	}
	assert.Len(t, seen, 3, "each eligible speaker holds exactly one slot")
}

func TestAdvanceRoundSchedulesNextSlot(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 3})
	ctx := context.Background()

	e.openRound(t, []string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID, e.fx.Memberships[2].ID})

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	round := e.activeRound(t)
	assert.Equal(t, 1, round.CurrentPosition)
	assert.Equal(t, roundparticipant.StatusSucceeded, rounds.SlotAt(round, 0).Status)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, e.fx.Memberships[1].ID, queued.SpeakerMembershipID)
}

func TestFailedTurnPausesRound(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	e.openRound(t, []string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID})

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusFailed)
	e.sched.OnTurnComplete(ctx, run)

	round := e.activeRound(t)
	assert.Equal(t, conversationround.SchedulingStateFailed, round.SchedulingState)
	assert.Equal(t, conversationround.StatusActive, round.Status, "failed rounds stay active for retry")
	assert.Equal(t, roundparticipant.StatusFailed, rounds.SlotAt(round, 0).Status)

	conv, err := e.client.Conversation.Get(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateFailed, conv.SchedulingState)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, queued, "a paused round schedules nothing")
}

func TestAdvanceSkipsIneligibleSlots(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 3})
	ctx := context.Background()

	e.openRound(t, []string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID, e.fx.Memberships[2].ID})

	// The queue was frozen at open; muting afterwards skips the slot when
	// the cursor reaches it.
	require.NoError(t, e.client.SpaceMembership.UpdateOneID(e.fx.Memberships[1].ID).
		SetParticipation(spacemembership.ParticipationMuted).Exec(ctx))

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	round := e.activeRound(t)
	assert.Equal(t, 2, round.CurrentPosition)
	assert.Equal(t, roundparticipant.StatusSkipped, rounds.SlotAt(round, 1).Status)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, e.fx.Memberships[2].ID, queued.SpeakerMembershipID)
}

func TestRoundExhaustionCompletes(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	round := e.openRound(t, []string{e.fx.Memberships[0].ID})

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	_, err := e.ledger.GetActive(ctx, e.fx.Conversation.ID)
	assert.ErrorIs(t, err, rounds.ErrNoActiveRound)

	completed, err := e.client.ConversationRound.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationround.StatusCompleted, completed.Status)

	conv, err := e.client.Conversation.Get(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateIdle, conv.SchedulingState)
}

func TestAutoModeBudgetExhaustion(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	require.NoError(t, e.client.Space.UpdateOneID(e.fx.Space.ID).
		SetAutoModeEnabled(true).Exec(ctx))
	require.NoError(t, e.client.Conversation.UpdateOneID(e.fx.Conversation.ID).
		SetAutoRoundsRemaining(1).Exec(ctx))

	e.openRound(t, []string{e.fx.Memberships[0].ID})

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	// The last budgeted round completed; no reopen.
	_, err := e.ledger.GetActive(ctx, e.fx.Conversation.ID)
	assert.ErrorIs(t, err, rounds.ErrNoActiveRound)

	conv, err := e.client.Conversation.Get(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Zero(t, conv.AutoRoundsRemaining)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, queued)
}

func TestAutoModeReopensWhileBudgetRemains(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	require.NoError(t, e.client.Space.UpdateOneID(e.fx.Space.ID).
		SetAutoModeEnabled(true).Exec(ctx))
	require.NoError(t, e.client.Conversation.UpdateOneID(e.fx.Conversation.ID).
		SetAutoRoundsRemaining(2).Exec(ctx))

	old := e.openRound(t, []string{e.fx.Memberships[0].ID})

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	// A fresh round replaced the completed one and its first slot is queued.
	fresh := e.activeRound(t)
	assert.NotEqual(t, old.ID, fresh.ID)

	conv, err := e.client.Conversation.Get(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, conv.AutoRoundsRemaining)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, queued)
}

func TestCanceledRunSkipsSlotAndAdvances(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	e.openRound(t, []string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID})

	run := terminalRun(t, e, e.fx.Memberships[0].ID, conversationrun.StatusCanceled)
	e.sched.OnTurnComplete(ctx, run)

	round := e.activeRound(t)
	assert.Equal(t, roundparticipant.StatusSkipped, rounds.SlotAt(round, 0).Status)
	assert.Equal(t, 1, round.CurrentPosition)
}

func TestCopilotStepDecrementOnSuccess(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	human := util.CreateHuman(t, e.client, e.fx.Space.ID, 10)
	require.NoError(t, e.client.SpaceMembership.UpdateOneID(human.ID).
		SetCopilotMode(spacemembership.CopilotModeFull).
		SetCopilotRemainingSteps(2).
		Exec(ctx))

	run := terminalRun(t, e, human.ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	m, err := e.client.SpaceMembership.Get(ctx, human.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.CopilotRemainingSteps)
	assert.Equal(t, spacemembership.CopilotModeFull, m.CopilotMode)

	// The last step auto-disables copilot.
	run = terminalRun(t, e, human.ID, conversationrun.StatusSucceeded)
	e.sched.OnTurnComplete(ctx, run)

	m, err = e.client.SpaceMembership.Get(ctx, human.ID)
	require.NoError(t, err)
	assert.Zero(t, m.CopilotRemainingSteps)
	assert.Equal(t, spacemembership.CopilotModeNone, m.CopilotMode)

	// Exhaustion is a membership-level steps update; auto_disabled belongs
	// to the conversation's round budget and must not fire here.
	published := e.pub.autoModeEvents()
	require.Len(t, published, 2)
	for _, ev := range published {
		assert.Equal(t, events.EventTypeAutoStepsUpdated, ev.Type)
		assert.Equal(t, human.ID, ev.MembershipID)
	}
	assert.Equal(t, 1, published[0].RemainingSteps)
	assert.Zero(t, published[1].RemainingSteps)
}

func TestFailedStepDoesNotConsumeCopilotBudget(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	human := util.CreateHuman(t, e.client, e.fx.Space.ID, 10)
	require.NoError(t, e.client.SpaceMembership.UpdateOneID(human.ID).
		SetCopilotMode(spacemembership.CopilotModeFull).
		SetCopilotRemainingSteps(2).
		Exec(ctx))

	run := terminalRun(t, e, human.ID, conversationrun.StatusFailed)
	e.sched.OnTurnComplete(ctx, run)

	m, err := e.client.SpaceMembership.Get(ctx, human.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, m.CopilotRemainingSteps)
}
