package queue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/queue"
	"github.com/talkwheel/talkwheel/pkg/runstore"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

const stuckThreshold = 2 * time.Minute

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

func (f *fakePublisher) notices() []events.RunNoticePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []events.RunNoticePayload
	for _, p := range f.ephemeral {
		if n, ok := p.(events.RunNoticePayload); ok {
			out = append(out, n)
		}
	}
	return out
}

type fakeCompleter struct {
	mu   sync.Mutex
	runs []*ent.ConversationRun
}

func (f *fakeCompleter) OnTurnComplete(_ context.Context, run *ent.ConversationRun) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, run)
}

func (f *fakeCompleter) completed() []*ent.ConversationRun {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

type reaperEnv struct {
	client    *ent.Client
	store     *runstore.Store
	reaper    *queue.Reaper
	publisher *fakePublisher
	completer *fakeCompleter
	fx        *util.SpaceFixture
}

func setupReaper(t *testing.T) *reaperEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 2})

	store := runstore.NewStore(client.Client, stuckThreshold)
	pub := &fakePublisher{}
	completer := &fakeCompleter{}
	reaper := queue.NewReaper(client.Client, store, pub, stuckThreshold)
	reaper.SetTurnCompleter(completer)

	return &reaperEnv{
		client: client.Client, store: store, reaper: reaper,
		publisher: pub, completer: completer, fx: fx,
	}
}

// claimRun queues and claims a run so it is running with a live heartbeat.
func (e *reaperEnv) claimRun(t *testing.T, podID string) *ent.ConversationRun {
	t.Helper()
	ctx := context.Background()
	queued, err := e.store.CreateQueued(ctx, models.CreateQueuedRequest{
		ConversationID:      e.fx.Conversation.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		SpeakerMembershipID: e.fx.Memberships[0].ID,
	})
	require.NoError(t, err)
	run, err := e.store.ClaimAtomic(ctx, queued.ID, podID, time.Now())
	require.NoError(t, err)
	return run
}

func (e *reaperEnv) backdateHeartbeat(t *testing.T, runID string, age time.Duration) {
	t.Helper()
	err := e.client.ConversationRun.UpdateOneID(runID).
		SetHeartbeatAt(time.Now().Add(-age)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestSweepReapsStaleRun(t *testing.T) {
	e := setupReaper(t)
	ctx := context.Background()

	run := e.claimRun(t, "pod-dead")
	e.backdateHeartbeat(t, run.ID, stuckThreshold+time.Minute)

	reaped, err := e.reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	final, err := e.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusFailed, final.Status)
	runErr := models.RunErrorFromMap(final.Error)
	require.NotNil(t, runErr)
	assert.Equal(t, models.ErrCodeHeartbeatTimeout, runErr.Code)

	// The reaped run goes through the normal turn-completion path.
	completed := e.completer.completed()
	require.Len(t, completed, 1)
	assert.Equal(t, run.ID, completed[0].ID)
	assert.Equal(t, conversationrun.StatusFailed, completed[0].Status)

	notices := e.publisher.notices()
	require.Len(t, notices, 1)
	assert.Equal(t, run.ID, notices[0].RunID)
	assert.Equal(t, models.ErrCodeHeartbeatTimeout, notices[0].Code)

	lastScan, total := e.reaper.Stats()
	assert.False(t, lastScan.IsZero())
	assert.Equal(t, 1, total)
}

func TestSweepLeavesHealthyRunsAlone(t *testing.T) {
	e := setupReaper(t)
	ctx := context.Background()

	run := e.claimRun(t, "pod-alive")

	reaped, err := e.reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, reaped)

	got, err := e.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusRunning, got.Status)
	assert.Empty(t, e.completer.completed())
}

func TestSweepReapsRunWithNoHeartbeatButOldStart(t *testing.T) {
	e := setupReaper(t)
	ctx := context.Background()

	run := e.claimRun(t, "pod-x")
	// A run whose worker died before the first heartbeat write.
	err := e.client.ConversationRun.UpdateOneID(run.ID).
		ClearHeartbeatAt().
		SetStartedAt(time.Now().Add(-stuckThreshold - time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	reaped, err := e.reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)
}

func TestSweepSkipsConcurrentlyFinalizedRun(t *testing.T) {
	e := setupReaper(t)
	ctx := context.Background()

	run := e.claimRun(t, "pod-y")
	e.backdateHeartbeat(t, run.ID, stuckThreshold+time.Minute)

	// Someone else finalizes between the query and the reap.
	_, err := e.store.Finalize(ctx, run.ID, conversationrun.StatusCanceled, nil)
	require.NoError(t, err)

	reaped, err := e.reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, reaped)

	got, err := e.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusCanceled, got.Status, "the earlier finalization wins")
}

func TestCleanupStartupOrphans(t *testing.T) {
	e := setupReaper(t)
	ctx := context.Background()

	mine := e.claimRun(t, "pod-restarting")

	other := util.CreateConversation(t, e.client, e.fx.Space.ID)
	queued, err := e.store.CreateQueued(ctx, models.CreateQueuedRequest{
		ConversationID:      other.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		SpeakerMembershipID: e.fx.Memberships[1].ID,
	})
	require.NoError(t, err)
	theirs, err := e.store.ClaimAtomic(ctx, queued.ID, "pod-other", time.Now())
	require.NoError(t, err)

	cleaned, err := queue.CleanupStartupOrphans(ctx, e.client, e.store, e.completer, "pod-restarting")
	require.NoError(t, err)
	assert.Equal(t, 1, cleaned)

	got, err := e.store.GetRun(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusFailed, got.Status)
	runErr := models.RunErrorFromMap(got.Error)
	require.NotNil(t, runErr)
	assert.Equal(t, models.ErrCodePodRestart, runErr.Code)

	// Another pod's live run is not ours to touch.
	got, err = e.store.GetRun(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusRunning, got.Status)

	require.Len(t, e.completer.completed(), 1)
}

func TestCleanupStartupOrphansNothingToDo(t *testing.T) {
	e := setupReaper(t)
	cleaned, err := queue.CleanupStartupOrphans(context.Background(), e.client, e.store, e.completer, "pod-fresh")
	require.NoError(t, err)
	assert.Zero(t, cleaned)
}
