package planner_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/planner"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	"github.com/talkwheel/talkwheel/pkg/services"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

// fakePublisher records published payloads instead of hitting NOTIFY.
type fakePublisher struct {
	mu        sync.Mutex
	ephemeral []any
	timeline  []any
}

func (f *fakePublisher) PublishEphemeral(_ context.Context, _ string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ephemeral = append(f.ephemeral, payload)
	return nil
}

func (f *fakePublisher) PublishTimeline(_ context.Context, _ string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeline = append(f.timeline, payload)
	return nil
}

type fakeKicker struct {
	mu    sync.Mutex
	kicks int
}

func (f *fakeKicker) Kick() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kicks++
}

func (f *fakeKicker) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.kicks
}

// zeroRand always draws 0, so every talkativeness check passes and uniform
// picks land on the first activated candidate.
type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }
func (zeroRand) Intn(int) int     { return 0 }

type env struct {
	client *ent.Client
	store  *runstore.Store
	ledger *rounds.Ledger
	msgs   *services.MessageService
	pl     *planner.Planner
	kicker *fakeKicker
	fx     *util.SpaceFixture
}

func setup(t *testing.T, opts util.SpaceOpts) *env {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, opts)

	store := runstore.NewStore(client.Client, 2*time.Minute)
	ledger := rounds.NewLedger(client.Client)
	spaces := services.NewSpaceService(client.Client)
	msgs := services.NewMessageService(client.Client)
	kicker := &fakeKicker{}

	pl := planner.New(client.Client, store, ledger, spaces, msgs, &fakePublisher{},
		kicker, *config.DefaultSchedulerConfig(), zeroRand{})

	return &env{client: client.Client, store: store, ledger: ledger, msgs: msgs, pl: pl, kicker: kicker, fx: fx}
}

func (e *env) commitUser(t *testing.T, content string) *ent.Message {
	t.Helper()
	msg, err := e.msgs.CommitMessage(context.Background(), models.CreateMessageRequest{
		ConversationID: e.fx.Conversation.ID,
		Role:           "user",
		Content:        content,
	})
	require.NoError(t, err)
	return msg
}

func TestOnUserMessageCommittedSchedulesReply(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	msg := e.commitUser(t, "hello")
	run, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, msg)
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.Equal(t, conversationrun.StatusQueued, run.Status)
	assert.Equal(t, conversationrun.KindAutoResponse, run.Kind)
	assert.Equal(t, e.fx.Memberships[0].ID, run.SpeakerMembershipID, "list order starts at position 0")
	assert.Equal(t, models.TriggerUserMessage, run.Reason)

	debug := models.RunDebugFromMap(run.Debug)
	assert.Equal(t, models.TriggerUserMessage, debug.Trigger)
	assert.Equal(t, msg.ID, debug.TriggerMessageID)

	assert.Equal(t, 1, e.kicker.count())
}

func TestOnUserMessageCommittedManualModeIsSilent(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderManual, Characters: 2})
	ctx := context.Background()

	msg := e.commitUser(t, "hello")
	run, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, msg)
	require.NoError(t, err)
	assert.Nil(t, run)

	queued, err := e.store.GetQueuedRun(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, queued)
	assert.Zero(t, e.kicker.count())
}

func TestOnUserMessageCommittedAppliesDebounce(t *testing.T) {
	e := setup(t, util.SpaceOpts{
		ReplyOrder:         space.ReplyOrderList,
		UserTurnDebounceMs: 60000,
		Characters:         2,
	})

	before := time.Now()
	msg := e.commitUser(t, "hello")
	run, err := e.pl.OnUserMessageCommitted(context.Background(), e.fx.Conversation, msg)
	require.NoError(t, err)
	require.NotNil(t, run)

	require.NotNil(t, run.RunAfter)
	assert.WithinDuration(t, before.Add(time.Minute), *run.RunAfter, 5*time.Second)
}

func TestRapidUserMessagesCollapseIntoOneRun(t *testing.T) {
	e := setup(t, util.SpaceOpts{
		ReplyOrder:         space.ReplyOrderList,
		UserTurnDebounceMs: 60000,
		Characters:         2,
	})
	ctx := context.Background()

	first := e.commitUser(t, "first")
	run1, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, first)
	require.NoError(t, err)

	second := e.commitUser(t, "second")
	run2, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, second)
	require.NoError(t, err)

	assert.Equal(t, run1.ID, run2.ID, "the queued slot is overwritten, not duplicated")
	debug := models.RunDebugFromMap(run2.Debug)
	assert.Equal(t, second.ID, debug.TriggerMessageID)
}

func TestRestartPolicyCancelsRunningRun(t *testing.T) {
	e := setup(t, util.SpaceOpts{
		ReplyOrder:  space.ReplyOrderList,
		InputPolicy: space.InputPolicyRestart,
		Characters:  2,
	})
	ctx := context.Background()

	seed := e.commitUser(t, "seed")
	queued, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, seed)
	require.NoError(t, err)
	running, err := e.store.ClaimAtomic(ctx, queued.ID, "pod-a", time.Now())
	require.NoError(t, err)

	msg := e.commitUser(t, "interrupt")
	newRun, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, msg)
	require.NoError(t, err)
	require.NotNil(t, newRun)
	assert.NotEqual(t, running.ID, newRun.ID)

	got, err := e.store.GetRun(ctx, running.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.CancelRequestedAt, "restart policy requests cancel on the running run")
	assert.Equal(t, models.ErrCodeRestartPolicy, models.RunDebugFromMap(got.Debug).CancelCause,
		"the cancel is attributed to the restart policy, not the user")
}

func TestQueuePolicyLeavesRunningRunAlone(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	seed := e.commitUser(t, "seed")
	queued, err := e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, seed)
	require.NoError(t, err)
	running, err := e.store.ClaimAtomic(ctx, queued.ID, "pod-a", time.Now())
	require.NoError(t, err)

	msg := e.commitUser(t, "more input")
	_, err = e.pl.OnUserMessageCommitted(ctx, e.fx.Conversation, msg)
	require.NoError(t, err)

	got, err := e.store.GetRun(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusRunning, got.Status)
	assert.Nil(t, got.CancelRequestedAt)
}

func TestForceTalkWorksInManualModeAndCancelsRound(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderManual, Characters: 2})
	ctx := context.Background()

	// An active round from some earlier trigger.
	tx, err := e.client.Tx(ctx)
	require.NoError(t, err)
	round, err := e.ledger.Open(ctx, tx, e.fx.Conversation.ID,
		[]string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	run, err := e.pl.ForceTalk(ctx, e.fx.Conversation, e.fx.Memberships[1].ID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, conversationrun.KindForceTalk, run.Kind)
	assert.Equal(t, e.fx.Memberships[1].ID, run.SpeakerMembershipID)

	canceled, err := e.client.ConversationRound.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationround.StatusCanceled, canceled.Status)
}

func TestRegenerateArmsGuardWithTarget(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	target, err := e.msgs.CommitMessage(ctx, models.CreateMessageRequest{
		ConversationID:      e.fx.Conversation.ID,
		Role:                "assistant",
		Content:             "first take",
		SpeakerMembershipID: e.fx.Memberships[0].ID,
	})
	require.NoError(t, err)

	run, err := e.pl.Regenerate(ctx, e.fx.Conversation, target)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, conversationrun.KindRegenerate, run.Kind)
	assert.Equal(t, e.fx.Memberships[0].ID, run.SpeakerMembershipID)

	debug := models.RunDebugFromMap(run.Debug)
	assert.Equal(t, target.ID, debug.TargetMessageID)
	assert.Equal(t, target.ID, debug.ExpectedLastMessageID)
}

func TestRegenerateRequiresSpeaker(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	target := e.commitUser(t, "user message has no speaker membership")
	_, err := e.pl.Regenerate(ctx, e.fx.Conversation, target)
	assert.Error(t, err)
}

func TestAutoFollowupRequiresAutoMode(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	_, err := e.pl.AutoFollowup(ctx, e.fx.Conversation, e.fx.Memberships[0].ID, "", "")
	assert.Error(t, err)
}

func TestCopilotStepValidation(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	human := util.CreateHuman(t, e.client, e.fx.Space.ID, 10)

	// Copilot off.
	_, err := e.pl.CopilotStep(ctx, e.fx.Conversation, human.ID, conversationrun.KindCopilotStart, "")
	assert.Error(t, err)

	// Copilot on but out of steps.
	require.NoError(t, e.client.SpaceMembership.UpdateOneID(human.ID).
		SetCopilotMode(spacemembership.CopilotModeFull).
		SetCopilotRemainingSteps(0).
		Exec(ctx))
	_, err = e.pl.CopilotStep(ctx, e.fx.Conversation, human.ID, conversationrun.KindCopilotStart, "")
	assert.Error(t, err)

	// Non-copilot kind.
	require.NoError(t, e.client.SpaceMembership.UpdateOneID(human.ID).
		SetCopilotRemainingSteps(3).
		Exec(ctx))
	_, err = e.pl.CopilotStep(ctx, e.fx.Conversation, human.ID, conversationrun.KindAutoResponse, "")
	assert.Error(t, err)
}

func TestCopilotStepSchedulesRun(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	human := util.CreateHuman(t, e.client, e.fx.Space.ID, 10)
	require.NoError(t, e.client.SpaceMembership.UpdateOneID(human.ID).
		SetCopilotMode(spacemembership.CopilotModeFull).
		SetCopilotRemainingSteps(3).
		Exec(ctx))

	trigger := e.commitUser(t, "please continue")
	run, err := e.pl.CopilotStep(ctx, e.fx.Conversation, human.ID, conversationrun.KindCopilotStart, trigger.ID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, conversationrun.KindCopilotStart, run.Kind)
	assert.Equal(t, models.TriggerCopilotStart, run.Reason)

	debug := models.RunDebugFromMap(run.Debug)
	assert.Equal(t, trigger.ID, debug.ExpectedLastMessageID)
}

func TestScheduleSlotStampsTailAndRound(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	tail := e.commitUser(t, "latest message")

	tx, err := e.client.Tx(ctx)
	require.NoError(t, err)
	round, err := e.ledger.Open(ctx, tx, e.fx.Conversation.ID,
		[]string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	run, err := e.pl.ScheduleSlot(ctx, e.fx.Conversation, e.fx.Memberships[0].ID, round.ID)
	require.NoError(t, err)
	require.NotNil(t, run)

	require.NotNil(t, run.RoundID)
	assert.Equal(t, round.ID, *run.RoundID)
	debug := models.RunDebugFromMap(run.Debug)
	assert.Equal(t, models.TriggerTurnScheduler, debug.ScheduledBy)
	assert.Equal(t, tail.ID, debug.ExpectedLastMessageID)
}

func TestPredictedQueue(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 3})
	ctx := context.Background()

	sp, err := e.client.Space.Get(ctx, e.fx.Space.ID)
	require.NoError(t, err)

	queue, err := e.pl.PredictedQueue(ctx, sp, e.fx.Conversation.ID, 3)
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, e.fx.Memberships[0].ID, queue[0].MembershipID)
	assert.Equal(t, e.fx.Memberships[1].ID, queue[1].MembershipID)
	assert.Equal(t, e.fx.Memberships[2].ID, queue[2].MembershipID)
}
