package executor_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/events"
	"github.com/talkwheel/talkwheel/pkg/executor"
	"github.com/talkwheel/talkwheel/pkg/llm"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/runstore"
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

// scriptedStream yields a fixed chunk sequence.
type scriptedStream struct {
	chunks []string
	idx    int
}

func (s *scriptedStream) Recv() (llm.Chunk, error) {
	if s.idx >= len(s.chunks) {
		return llm.Chunk{}, io.EOF
	}
	c := llm.Chunk{Content: s.chunks[s.idx]}
	s.idx++
	return c, nil
}

func (s *scriptedStream) Usage() models.TokenUsage {
	return models.TokenUsage{PromptTokens: 10, CompletionTokens: 5}
}

func (s *scriptedStream) Close() error { return nil }

type scriptedClient struct {
	chunks []string
}

func (c *scriptedClient) Stream(_ context.Context, _ llm.Request) (llm.Stream, error) {
	return &scriptedStream{chunks: c.chunks}, nil
}

type execEnv struct {
	client *ent.Client
	store  *runstore.Store
	msgs   *services.MessageService
	exec   *executor.Executor
	pub    *fakePublisher
	fx     *util.SpaceFixture
}

func setupExecutor(t *testing.T, chunks []string) *execEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 2})

	cfg := *config.DefaultSchedulerConfig()
	store := runstore.NewStore(client.Client, cfg.StuckThreshold)
	spaces := services.NewSpaceService(client.Client)
	msgs := services.NewMessageService(client.Client)
	pub := &fakePublisher{}

	exec := executor.New(client.Client, store, spaces, msgs, pub, &scriptedClient{chunks: chunks}, cfg, "test-pod")
	return &execEnv{client: client.Client, store: store, msgs: msgs, exec: exec, pub: pub, fx: fx}
}

func (e *execEnv) queueRun(t *testing.T, debug *models.RunDebug) *ent.ConversationRun {
	t.Helper()
	run, err := e.store.CreateQueued(context.Background(), models.CreateQueuedRequest{
		ConversationID:      e.fx.Conversation.ID,
		Kind:                string(conversationrun.KindAutoResponse),
		SpeakerMembershipID: e.fx.Memberships[0].ID,
		Debug:               debug,
	})
	require.NoError(t, err)
	return run
}

func TestExecuteCommitsStreamedGeneration(t *testing.T) {
	e := setupExecutor(t, []string{"Hello ", "there."})
	ctx := context.Background()

	run := e.queueRun(t, nil)
	require.NoError(t, e.exec.Execute(ctx, run.ID))

	final, err := e.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusSucceeded, final.Status)

	msg, err := e.client.Message.Query().
		Where(message.ConversationIDEQ(e.fx.Conversation.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", msg.Content)
	assert.Equal(t, message.RoleAssistant, msg.Role)
}

func TestExecuteSkipsWhenTailMoved(t *testing.T) {
	e := setupExecutor(t, []string{"never streamed"})
	ctx := context.Background()

	// The message this run was armed against is gone; the guard must fire
	// before any provider call.
	run := e.queueRun(t, &models.RunDebug{ExpectedLastMessageID: "deleted-tail"})
	require.NoError(t, e.exec.Execute(ctx, run.ID))

	final, err := e.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusSkipped, final.Status)
	runErr := models.RunErrorFromMap(final.Error)
	require.NotNil(t, runErr)
	assert.Equal(t, models.ErrCodeExpectedLastMessage, runErr.Code)

	notices := e.pub.notices()
	require.Len(t, notices, 1)
	assert.Equal(t, events.EventTypeRunSkipped, notices[0].Type)
	assert.Equal(t, models.ReasonMessageMismatch, notices[0].Reason)
}

func TestExecuteAttributesCancelCause(t *testing.T) {
	e := setupExecutor(t, []string{"partial output"})
	ctx := context.Background()

	run := e.queueRun(t, nil)
	// A restart-policy preemption lands before the worker claims; the
	// stream's first chunk observes it.
	require.NoError(t, e.store.RequestCancel(ctx, run.ID, time.Now(), models.ErrCodeRestartPolicy))

	require.NoError(t, e.exec.Execute(ctx, run.ID))

	final, err := e.store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusCanceled, final.Status)
	runErr := models.RunErrorFromMap(final.Error)
	require.NotNil(t, runErr)
	assert.Equal(t, models.ErrCodeRestartPolicy, runErr.Code,
		"the run log distinguishes a policy preemption from a user cancel")

	// No message was committed for the canceled run.
	count, err := e.client.Message.Query().
		Where(message.ConversationIDEQ(e.fx.Conversation.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	var canceled bool
	for _, n := range e.pub.notices() {
		if n.Type == events.EventTypeRunCanceled {
			canceled = true
			assert.Equal(t, models.ErrCodeRestartPolicy, n.Code)
		}
	}
	assert.True(t, canceled)
}
