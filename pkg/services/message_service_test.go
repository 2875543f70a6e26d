package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/services"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

func setupMessages(t *testing.T) (*services.MessageService, *ent.Client, *util.SpaceFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 2})
	return services.NewMessageService(client.Client), client.Client, fx
}

// createRunningRun inserts a run already in the running state, as if a
// worker had claimed it.
func createRunningRun(t *testing.T, client *ent.Client, fx *util.SpaceFixture) *ent.ConversationRun {
	t.Helper()
	run, err := client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(fx.Conversation.ID).
		SetKind(conversationrun.KindAutoResponse).
		SetStatus(conversationrun.StatusRunning).
		SetSpeakerMembershipID(fx.Memberships[0].ID).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func commitUser(t *testing.T, svc *services.MessageService, conversationID, content string) *ent.Message {
	t.Helper()
	msg, err := svc.CommitMessage(context.Background(), models.CreateMessageRequest{
		ConversationID: conversationID,
		Role:           "user",
		Content:        content,
	})
	require.NoError(t, err)
	return msg
}

func TestCommitMessageAllocatesSeq(t *testing.T) {
	svc, _, fx := setupMessages(t)

	first := commitUser(t, svc, fx.Conversation.ID, "one")
	second := commitUser(t, svc, fx.Conversation.ID, "two")
	third := commitUser(t, svc, fx.Conversation.ID, "three")

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, 3, third.Seq)
}

func TestCommitMessageValidation(t *testing.T) {
	svc, _, fx := setupMessages(t)
	ctx := context.Background()

	_, err := svc.CommitMessage(ctx, models.CreateMessageRequest{Role: "user", Content: "x"})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CommitMessage(ctx, models.CreateMessageRequest{ConversationID: fx.Conversation.ID, Content: "x"})
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CommitMessage(ctx, models.CreateMessageRequest{ConversationID: fx.Conversation.ID, Role: "user"})
	assert.True(t, services.IsValidationError(err))
}

func TestCommitMessageStoresContentByReference(t *testing.T) {
	svc, client, fx := setupMessages(t)

	msg := commitUser(t, svc, fx.Conversation.ID, "hello")
	require.NotNil(t, msg.TextContentID)

	tc, err := client.TextContent.Get(context.Background(), *msg.TextContentID)
	require.NoError(t, err)
	assert.Equal(t, "hello", tc.Body)
	assert.Equal(t, 1, tc.RefCount)
}

func TestCommitAssistantAtomicity(t *testing.T) {
	svc, client, fx := setupMessages(t)
	ctx := context.Background()

	commitUser(t, svc, fx.Conversation.ID, "prompt")
	run := createRunningRun(t, client, fx)

	msg, err := svc.CommitAssistant(ctx, models.CommitAssistantRequest{
		ConversationID:      fx.Conversation.ID,
		SpaceID:             fx.Space.ID,
		RunID:               run.ID,
		SpeakerMembershipID: fx.Memberships[0].ID,
		Content:             "generated reply",
		Usage:               models.TokenUsage{PromptTokens: 120, CompletionTokens: 40},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, msg.Seq)
	assert.Equal(t, message.RoleAssistant, msg.Role)
	require.NotNil(t, msg.RunID)
	assert.Equal(t, run.ID, *msg.RunID)
	assert.Equal(t, 1, msg.SwipesCount)

	// Swipe #0 mirrors the message content.
	swipes, err := client.MessageSwipe.Query().
		Where(messageswipe.MessageIDEQ(msg.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.Equal(t, 0, swipes[0].Position)
	assert.Equal(t, "generated reply", swipes[0].Content)
	require.NotNil(t, msg.ActiveSwipeID)
	assert.Equal(t, swipes[0].ID, *msg.ActiveSwipeID)

	// The run finalized in the same transaction.
	finalRun, err := client.ConversationRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusSucceeded, finalRun.Status)
	assert.NotNil(t, finalRun.FinishedAt)

	// Token counters landed on both the conversation and the space.
	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), conv.PromptTokensTotal)
	assert.Equal(t, int64(40), conv.CompletionTokensTotal)

	sp, err := client.Space.Get(ctx, fx.Space.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), sp.PromptTokensTotal)
	assert.Equal(t, int64(40), sp.CompletionTokensTotal)
}

func TestCommitAssistantAbandonedWhenRunAlreadyFinal(t *testing.T) {
	svc, client, fx := setupMessages(t)
	ctx := context.Background()

	run := createRunningRun(t, client, fx)

	// Simulate the reaper winning the race before the commit.
	err := client.ConversationRun.UpdateOneID(run.ID).
		SetStatus(conversationrun.StatusFailed).
		Exec(ctx)
	require.NoError(t, err)

	_, err = svc.CommitAssistant(ctx, models.CommitAssistantRequest{
		ConversationID: fx.Conversation.ID,
		SpaceID:        fx.Space.ID,
		RunID:          run.ID,
		Content:        "too late",
	})
	assert.ErrorIs(t, err, services.ErrConcurrentModification)

	// Nothing from the abandoned transaction is visible.
	count, err := client.Message.Query().
		Where(message.ConversationIDEQ(fx.Conversation.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCommitRegenSwipe(t *testing.T) {
	svc, client, fx := setupMessages(t)
	ctx := context.Background()

	firstRun := createRunningRun(t, client, fx)
	target, err := svc.CommitAssistant(ctx, models.CommitAssistantRequest{
		ConversationID:      fx.Conversation.ID,
		SpaceID:             fx.Space.ID,
		RunID:               firstRun.ID,
		SpeakerMembershipID: fx.Memberships[0].ID,
		Content:             "first take",
	})
	require.NoError(t, err)

	regenRun := createRunningRun(t, client, fx)
	swipe, err := svc.CommitRegenSwipe(ctx, models.CommitSwipeRequest{
		ConversationID:  fx.Conversation.ID,
		SpaceID:         fx.Space.ID,
		RunID:           regenRun.ID,
		TargetMessageID: target.ID,
		Content:         "second take",
		Usage:           models.TokenUsage{PromptTokens: 80, CompletionTokens: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, swipe.Position)

	// The message mirrors the newly active swipe; no new timeline row.
	updated, err := client.Message.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "second take", updated.Content)
	assert.Equal(t, 2, updated.SwipesCount)
	require.NotNil(t, updated.ActiveSwipeID)
	assert.Equal(t, swipe.ID, *updated.ActiveSwipeID)
	assert.Equal(t, target.Seq, updated.Seq)

	count, err := client.Message.Query().
		Where(message.ConversationIDEQ(fx.Conversation.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	finalRun, err := client.ConversationRun.Get(ctx, regenRun.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationrun.StatusSucceeded, finalRun.Status)
}

func TestCommitRegenSwipeUnknownTarget(t *testing.T) {
	svc, client, fx := setupMessages(t)

	run := createRunningRun(t, client, fx)
	_, err := svc.CommitRegenSwipe(context.Background(), models.CommitSwipeRequest{
		ConversationID:  fx.Conversation.ID,
		RunID:           run.ID,
		TargetMessageID: "missing",
		Content:         "x",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHistoryWindowExcludesHidden(t *testing.T) {
	svc, _, fx := setupMessages(t)
	ctx := context.Background()

	commitUser(t, svc, fx.Conversation.ID, "visible one")
	_, err := svc.CommitMessage(ctx, models.CreateMessageRequest{
		ConversationID: fx.Conversation.ID,
		Role:           "user",
		Content:        "hidden note",
		Visibility:     "hidden",
	})
	require.NoError(t, err)
	_, err = svc.CommitMessage(ctx, models.CreateMessageRequest{
		ConversationID: fx.Conversation.ID,
		Role:           "user",
		Content:        "excluded from export",
		Visibility:     "excluded",
	})
	require.NoError(t, err)

	window, err := svc.HistoryWindow(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "visible one", window[0].Content)
	assert.Equal(t, "excluded from export", window[1].Content)

	tail, err := svc.PromptVisibleTail(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, tail)
	assert.Equal(t, "excluded from export", tail.Content)
}

func TestPromptVisibleTailEmptyTimeline(t *testing.T) {
	svc, _, fx := setupMessages(t)

	tail, err := svc.PromptVisibleTail(context.Background(), fx.Conversation.ID)
	require.NoError(t, err)
	assert.Nil(t, tail)
}

func TestGetEpochSnapshot(t *testing.T) {
	svc, _, fx := setupMessages(t)
	ctx := context.Background()

	commitAssistant := func(speakerID, content string) {
		_, err := svc.CommitMessage(ctx, models.CreateMessageRequest{
			ConversationID:      fx.Conversation.ID,
			Role:                "assistant",
			Content:             content,
			SpeakerMembershipID: speakerID,
		})
		require.NoError(t, err)
	}

	commitAssistant(fx.Memberships[0].ID, "before the epoch")
	commitUser(t, svc, fx.Conversation.ID, "new user message")
	commitAssistant(fx.Memberships[1].ID, "in the epoch")

	snap, err := svc.GetEpochSnapshot(ctx, fx.Conversation.ID)
	require.NoError(t, err)

	assert.Equal(t, "in the epoch", snap.ActivationText)
	assert.Equal(t, fx.Memberships[1].ID, snap.PreviousSpeakerID)
	assert.True(t, snap.SpokenInEpoch[fx.Memberships[1].ID])
	assert.False(t, snap.SpokenInEpoch[fx.Memberships[0].ID],
		"turns before the latest user message are outside the epoch")
}
