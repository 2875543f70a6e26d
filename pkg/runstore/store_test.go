package runstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

const staleThreshold = 2 * time.Minute

func setup(t *testing.T) (*runstore.Store, *ent.Client, *util.SpaceFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := runstore.NewStore(client.Client, staleThreshold)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 2})
	return store, client.Client, fx
}

func queuedReq(fx *util.SpaceFixture) models.CreateQueuedRequest {
	return models.CreateQueuedRequest{
		ConversationID:      fx.Conversation.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		Reason:              models.TriggerUserMessage,
		SpeakerMembershipID: fx.Memberships[0].ID,
	}
}

func TestCreateQueuedConflict(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()

	first, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusQueued, first.Status)

	_, err = store.CreateQueued(ctx, queuedReq(fx))
	assert.ErrorIs(t, err, runstore.ErrConflict)
}

func TestCreateQueuedIndependentConversations(t *testing.T) {
	store, client, fx := setup(t)
	ctx := context.Background()

	_, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	other := util.CreateConversation(t, client, fx.Space.ID)
	req := queuedReq(fx)
	req.ConversationID = other.ID
	_, err = store.CreateQueued(ctx, req)
	assert.NoError(t, err, "queued slots are per conversation")
}

func TestUpsertQueuedOverwritesInPlace(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()

	first, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	runAfter := time.Now().Add(time.Minute)
	req := models.CreateQueuedRequest{
		ConversationID:      fx.Conversation.ID,
		Kind:                string(conversationrun.KindForceTalk),
		Reason:              models.TriggerForceTalk,
		SpeakerMembershipID: fx.Memberships[1].ID,
		RunAfter:            &runAfter,
		Debug:               &models.RunDebug{Trigger: models.TriggerForceTalk},
	}
	overwritten, err := store.UpsertQueued(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, overwritten.ID, "the queued row keeps its identity")
	assert.Equal(t, conversationrun.KindForceTalk, overwritten.Kind)
	assert.Equal(t, models.TriggerForceTalk, overwritten.Reason)
	assert.Equal(t, fx.Memberships[1].ID, overwritten.SpeakerMembershipID)
	require.NotNil(t, overwritten.RunAfter)
	assert.WithinDuration(t, runAfter, *overwritten.RunAfter, time.Second)
}

func TestUpsertQueuedCreatesWhenSlotEmpty(t *testing.T) {
	store, _, fx := setup(t)

	run, err := store.UpsertQueued(context.Background(), queuedReq(fx))
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusQueued, run.Status)
}

func TestUpsertQueuedUnknownConversation(t *testing.T) {
	store, _, fx := setup(t)

	req := queuedReq(fx)
	req.ConversationID = "nope"
	_, err := store.UpsertQueued(context.Background(), req)
	assert.ErrorIs(t, err, runstore.ErrNotFound)
}

func TestClaimAtomic(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	claimed, err := store.ClaimAtomic(ctx, run.ID, "pod-a", now)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	require.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.HeartbeatAt)

	// The losing racer observes the row already gone from queued.
	_, err = store.ClaimAtomic(ctx, run.ID, "pod-b", now)
	assert.ErrorIs(t, err, runstore.ErrNotClaimable)
}

func TestClaimAtomicNotYetDue(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	runAfter := now.Add(time.Hour)
	req := queuedReq(fx)
	req.RunAfter = &runAfter
	run, err := store.CreateQueued(ctx, req)
	require.NoError(t, err)

	_, err = store.ClaimAtomic(ctx, run.ID, "pod-a", now)
	assert.ErrorIs(t, err, runstore.ErrNotClaimable)

	// Once the debounce elapses the same run claims fine.
	_, err = store.ClaimAtomic(ctx, run.ID, "pod-a", now.Add(2*time.Hour))
	assert.NoError(t, err)
}

func TestClaimAtomicBlockedByFreshRunningRun(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	first, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)
	_, err = store.ClaimAtomic(ctx, first.ID, "pod-a", now)
	require.NoError(t, err)

	req := queuedReq(fx)
	req.SpeakerMembershipID = fx.Memberships[1].ID
	second, err := store.CreateQueued(ctx, req)
	require.NoError(t, err)

	_, err = store.ClaimAtomic(ctx, second.ID, "pod-b", now.Add(time.Second))
	assert.ErrorIs(t, err, runstore.ErrNotClaimable)
}

func TestClaimAtomicPreemptsStaleRunningRun(t *testing.T) {
	store, client, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	first, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)
	_, err = store.ClaimAtomic(ctx, first.ID, "pod-a", now)
	require.NoError(t, err)

	// Backdate the heartbeat past the stale threshold, as if pod-a died.
	stale := now.Add(-staleThreshold - time.Minute)
	err = client.ConversationRun.UpdateOneID(first.ID).
		SetHeartbeatAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	req := queuedReq(fx)
	req.SpeakerMembershipID = fx.Memberships[1].ID
	second, err := store.CreateQueued(ctx, req)
	require.NoError(t, err)

	claimed, err := store.ClaimAtomic(ctx, second.ID, "pod-b", now)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusRunning, claimed.Status)

	// The stale run was finalized in the same transaction with the sticky
	// cancel flag set, so a zombie worker bails at its next chunk boundary.
	preempted, err := client.ConversationRun.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusFailed, preempted.Status)
	assert.NotNil(t, preempted.CancelRequestedAt)
	runErr := models.RunErrorFromMap(preempted.Error)
	require.NotNil(t, runErr)
	assert.Equal(t, models.ErrCodeStaleRunningRun, runErr.Code)
}

func TestFinalizeIsAbsorbing(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)
	_, err = store.ClaimAtomic(ctx, run.ID, "pod-a", now)
	require.NoError(t, err)

	final, err := store.Finalize(ctx, run.ID, conversationrun.StatusSucceeded, nil)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusSucceeded, final.Status)
	assert.NotNil(t, final.FinishedAt)

	// A late failure report must not overwrite the terminal state.
	_, err = store.Finalize(ctx, run.ID, conversationrun.StatusFailed,
		&models.RunError{Code: models.ErrCodeTimeout, Message: "late"})
	assert.ErrorIs(t, err, runstore.ErrAlreadyFinal)

	final, err = store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusSucceeded, final.Status)
	assert.Empty(t, final.Error)
}

func TestFinalizeQueuedRun(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	// A queued run can only be canceled or skipped, never succeed.
	_, err = store.Finalize(ctx, run.ID, conversationrun.StatusSucceeded, nil)
	assert.ErrorIs(t, err, runstore.ErrAlreadyFinal)

	final, err := store.Finalize(ctx, run.ID, conversationrun.StatusCanceled,
		&models.RunError{Code: models.ErrCodeUserCancel, Message: "canceled before start"})
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusCanceled, final.Status)
}

func TestFinalizeRecordsError(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)
	_, err = store.ClaimAtomic(ctx, run.ID, "pod-a", time.Now())
	require.NoError(t, err)

	final, err := store.Finalize(ctx, run.ID, conversationrun.StatusFailed,
		&models.RunError{Code: models.ErrCodeHTTPError, Message: "upstream 503"})
	require.NoError(t, err)

	runErr := models.RunErrorFromMap(final.Error)
	require.NotNil(t, runErr)
	assert.Equal(t, models.ErrCodeHTTPError, runErr.Code)
	assert.Equal(t, "upstream 503", runErr.Message)
}

func TestRequestCancelIsSticky(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	requested, err := store.IsCancelRequested(ctx, run.ID)
	require.NoError(t, err)
	assert.False(t, requested)

	require.NoError(t, store.RequestCancel(ctx, run.ID, now, models.ErrCodeRestartPolicy))
	requested, err = store.IsCancelRequested(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, requested)

	// The first request wins; a second one refreshes neither the timestamp
	// nor the cause.
	require.NoError(t, store.RequestCancel(ctx, run.ID, now.Add(time.Minute), models.ErrCodeUserCancel))
	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CancelRequestedAt)
	assert.WithinDuration(t, now, *got.CancelRequestedAt, time.Second)
	assert.Equal(t, models.ErrCodeRestartPolicy, models.RunDebugFromMap(got.Debug).CancelCause)
}

func TestRequestCancelOnTerminalRunIsNoop(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)
	_, err = store.Finalize(ctx, run.ID, conversationrun.StatusCanceled, nil)
	require.NoError(t, err)

	require.NoError(t, store.RequestCancel(ctx, run.ID, time.Now(), models.ErrCodeUserCancel))
	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CancelRequestedAt)
	assert.Empty(t, models.RunDebugFromMap(got.Debug).CancelCause)
}

func TestHeartbeatOnlyTouchesRunningRuns(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	require.NoError(t, store.Heartbeat(ctx, run.ID, now))
	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.HeartbeatAt, "queued runs have no heartbeat")

	_, err = store.ClaimAtomic(ctx, run.ID, "pod-a", now)
	require.NoError(t, err)

	later := now.Add(30 * time.Second)
	require.NoError(t, store.Heartbeat(ctx, run.ID, later))
	got, err = store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.HeartbeatAt)
	assert.WithinDuration(t, later, *got.HeartbeatAt, time.Second)
}

func TestListDueQueued(t *testing.T) {
	store, client, fx := setup(t)
	ctx := context.Background()
	now := time.Now()

	// Three conversations: due immediately, debounced into the future, and
	// due a second ago.
	immediate, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	convB := util.CreateConversation(t, client, fx.Space.ID)
	future := now.Add(time.Hour)
	reqB := queuedReq(fx)
	reqB.ConversationID = convB.ID
	reqB.RunAfter = &future
	_, err = store.CreateQueued(ctx, reqB)
	require.NoError(t, err)

	convC := util.CreateConversation(t, client, fx.Space.ID)
	past := now.Add(-time.Second)
	reqC := queuedReq(fx)
	reqC.ConversationID = convC.ID
	reqC.RunAfter = &past
	due, err := store.CreateQueued(ctx, reqC)
	require.NoError(t, err)

	runs, err := store.ListDueQueued(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, immediate.ID, runs[0].ID, "oldest first")
	assert.Equal(t, due.ID, runs[1].ID)
}

func TestGetQueuedAndRunningRun(t *testing.T) {
	store, _, fx := setup(t)
	ctx := context.Background()

	queued, err := store.GetQueuedRun(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, queued)

	run, err := store.CreateQueued(ctx, queuedReq(fx))
	require.NoError(t, err)

	queued, err = store.GetQueuedRun(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.Equal(t, run.ID, queued.ID)

	running, err := store.GetRunningRun(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, running)

	_, err = store.ClaimAtomic(ctx, run.ID, "pod-a", time.Now())
	require.NoError(t, err)

	running, err = store.GetRunningRun(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, running)
	assert.Equal(t, run.ID, running.ID)
}

func TestGetRunNotFound(t *testing.T) {
	store, _, _ := setup(t)
	_, err := store.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, runstore.ErrNotFound)
}
