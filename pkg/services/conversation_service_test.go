package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/pkg/services"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

func setupConversations(t *testing.T) (*services.ConversationService, *services.MessageService, *ent.Client, *util.SpaceFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 2})
	return services.NewConversationService(client.Client),
		services.NewMessageService(client.Client),
		client.Client, fx
}

func TestBranchCopiesPrefixAndSharesContent(t *testing.T) {
	convSvc, msgSvc, client, fx := setupConversations(t)
	ctx := context.Background()

	first := commitUser(t, msgSvc, fx.Conversation.ID, "one")
	second := commitUser(t, msgSvc, fx.Conversation.ID, "two")
	commitUser(t, msgSvc, fx.Conversation.ID, "three")

	branch, err := convSvc.Branch(ctx, fx.Conversation.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.KindBranch, branch.Kind)
	require.NotNil(t, branch.ParentConversationID)
	assert.Equal(t, fx.Conversation.ID, *branch.ParentConversationID)
	require.NotNil(t, branch.ForkedFromMessageID)
	assert.Equal(t, second.ID, *branch.ForkedFromMessageID)

	// The branch holds the prefix up to the fork message, seqs preserved.
	copied, err := client.Message.Query().
		Where(message.ConversationIDEQ(branch.ID)).
		Order(ent.Asc(message.FieldSeq)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, copied, 2)
	assert.Equal(t, 1, copied[0].Seq)
	assert.Equal(t, "one", copied[0].Content)
	assert.Equal(t, 2, copied[1].Seq)
	assert.Equal(t, "two", copied[1].Content)

	// Content blobs are shared, not duplicated.
	require.NotNil(t, copied[0].TextContentID)
	assert.Equal(t, *first.TextContentID, *copied[0].TextContentID)
	tc, err := client.TextContent.Get(ctx, *first.TextContentID)
	require.NoError(t, err)
	assert.Equal(t, 2, tc.RefCount)
}

func TestBranchUnknownForkMessage(t *testing.T) {
	convSvc, _, _, fx := setupConversations(t)
	_, err := convSvc.Branch(context.Background(), fx.Conversation.ID, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEditMessageContentCopyOnWrite(t *testing.T) {
	convSvc, msgSvc, client, fx := setupConversations(t)
	ctx := context.Background()

	original := commitUser(t, msgSvc, fx.Conversation.ID, "shared text")
	branch, err := convSvc.Branch(ctx, fx.Conversation.ID, original.ID)
	require.NoError(t, err)

	// Editing the parent's message must not change what the branch reads.
	require.NoError(t, convSvc.EditMessageContent(ctx, original.ID, "edited text"))

	edited, err := client.Message.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited text", edited.Content)
	require.NotNil(t, edited.TextContentID)
	assert.NotEqual(t, *original.TextContentID, *edited.TextContentID,
		"the edit splits off a private blob")

	branchMsg, err := client.Message.Query().
		Where(message.ConversationIDEQ(branch.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "shared text", branchMsg.Content)

	// The original blob is back to a single owner.
	tc, err := client.TextContent.Get(ctx, *original.TextContentID)
	require.NoError(t, err)
	assert.Equal(t, "shared text", tc.Body)
	assert.Equal(t, 1, tc.RefCount)
}

func TestEditMessageContentUnsharedUpdatesInPlace(t *testing.T) {
	convSvc, msgSvc, client, fx := setupConversations(t)
	ctx := context.Background()

	msg := commitUser(t, msgSvc, fx.Conversation.ID, "draft")
	require.NoError(t, convSvc.EditMessageContent(ctx, msg.ID, "final"))

	edited, err := client.Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", edited.Content)
	assert.Equal(t, *msg.TextContentID, *edited.TextContentID, "no split without sharing")

	tc, err := client.TextContent.Get(ctx, *msg.TextContentID)
	require.NoError(t, err)
	assert.Equal(t, "final", tc.Body)
}

func TestDeleteMessageReleasesContent(t *testing.T) {
	convSvc, msgSvc, client, fx := setupConversations(t)
	ctx := context.Background()

	msg := commitUser(t, msgSvc, fx.Conversation.ID, "to delete")
	tcID := *msg.TextContentID

	require.NoError(t, convSvc.DeleteMessage(ctx, msg.ID))

	_, err := client.Message.Get(ctx, msg.ID)
	assert.True(t, ent.IsNotFound(err))

	// Sole owner: the blob goes with the message.
	_, err = client.TextContent.Get(ctx, tcID)
	assert.True(t, ent.IsNotFound(err))
}

func TestDeleteSharedMessageKeepsBlobForBranch(t *testing.T) {
	convSvc, msgSvc, client, fx := setupConversations(t)
	ctx := context.Background()

	msg := commitUser(t, msgSvc, fx.Conversation.ID, "shared")
	_, err := convSvc.Branch(ctx, fx.Conversation.ID, msg.ID)
	require.NoError(t, err)

	require.NoError(t, convSvc.DeleteMessage(ctx, msg.ID))

	tc, err := client.TextContent.Get(ctx, *msg.TextContentID)
	require.NoError(t, err)
	assert.Equal(t, "shared", tc.Body)
	assert.Equal(t, 1, tc.RefCount)
}

func TestSetSchedulingStateBumpsRevision(t *testing.T) {
	convSvc, _, client, fx := setupConversations(t)
	ctx := context.Background()

	rev, err := convSvc.SetSchedulingState(ctx, fx.Conversation.ID, conversation.SchedulingStateAiGenerating)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	rev, err = convSvc.BumpRevision(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateAiGenerating, conv.SchedulingState)
}
