package rounds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
	"github.com/talkwheel/talkwheel/pkg/rounds"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

func setup(t *testing.T) (*rounds.Ledger, *ent.Client, *util.SpaceFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 3})
	return rounds.NewLedger(client.Client), client.Client, fx
}

func queueIDs(fx *util.SpaceFixture) []string {
	ids := make([]string, 0, len(fx.Memberships))
	for _, m := range fx.Memberships {
		ids = append(ids, m.ID)
	}
	return ids
}

// openRound runs Open in its own transaction, the way the planner does.
func openRound(t *testing.T, ledger *rounds.Ledger, client *ent.Client, conversationID string, queue []string) *ent.ConversationRound {
	t.Helper()
	ctx := context.Background()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	round, err := ledger.Open(ctx, tx, conversationID, queue)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return round
}

func inTx(t *testing.T, client *ent.Client, fn func(tx *ent.Tx) error) {
	t.Helper()
	tx, err := client.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, fn(tx))
	require.NoError(t, tx.Commit())
}

func TestOpenMaterializesQueue(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	round := openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))

	active, err := ledger.GetActive(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, round.ID, active.ID)
	assert.Equal(t, conversationround.StatusActive, active.Status)
	assert.Equal(t, 0, active.CurrentPosition)

	require.Len(t, active.Edges.Participants, 3)
	for i, p := range active.Edges.Participants {
		assert.Equal(t, i, p.Position)
		assert.Equal(t, fx.Memberships[i].ID, p.MembershipID)
		assert.Equal(t, roundparticipant.StatusPending, p.Status)
	}

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateAiGenerating, conv.SchedulingState)
	assert.Equal(t, int64(1), conv.GroupQueueRevision)
}

func TestOpenRejectsEmptyQueue(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	_, err = ledger.Open(ctx, tx, fx.Conversation.ID, nil)
	assert.Error(t, err)
}

func TestOpenSecondActiveRoundBlockedByIndex(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	_, err = ledger.Open(ctx, tx, fx.Conversation.ID, queueIDs(fx))
	assert.Error(t, err, "the partial unique index allows one active round")
}

func TestGetActiveNoRound(t *testing.T) {
	ledger, _, fx := setup(t)
	_, err := ledger.GetActive(context.Background(), fx.Conversation.ID)
	assert.ErrorIs(t, err, rounds.ErrNoActiveRound)
}

func TestMarkSlotAndAdvanceCursor(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	round := openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))

	inTx(t, client, func(tx *ent.Tx) error {
		if err := ledger.MarkSlot(ctx, tx, round.ID, 0, roundparticipant.StatusSucceeded); err != nil {
			return err
		}
		return ledger.AdvanceCursor(ctx, tx, round.ID, fx.Conversation.ID, 1)
	})

	active, err := ledger.GetActive(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, active.CurrentPosition)
	assert.Equal(t, roundparticipant.StatusSucceeded, rounds.SlotAt(active, 0).Status)
	assert.Equal(t, []string{fx.Memberships[1].ID, fx.Memberships[2].ID}, rounds.PendingSlots(active))

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), conv.GroupQueueRevision, "open and advance each bump the fence")
}

func TestMarkSlotOnlyOnce(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	round := openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))

	inTx(t, client, func(tx *ent.Tx) error {
		return ledger.MarkSlot(ctx, tx, round.ID, 0, roundparticipant.StatusSucceeded)
	})

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()
	err = ledger.MarkSlot(ctx, tx, round.ID, 0, roundparticipant.StatusFailed)
	assert.Error(t, err, "a marked slot is no longer pending")
}

func TestSetFailedAndResume(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	round := openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))

	inTx(t, client, func(tx *ent.Tx) error {
		return ledger.SetFailed(ctx, tx, round.ID, fx.Conversation.ID)
	})

	active, err := ledger.GetActive(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationround.SchedulingStateFailed, active.SchedulingState)
	assert.Equal(t, conversationround.StatusActive, active.Status, "a failed round stays active for retry")

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateFailed, conv.SchedulingState)

	inTx(t, client, func(tx *ent.Tx) error {
		return ledger.Resume(ctx, tx, round.ID, fx.Conversation.ID)
	})

	active, err = ledger.GetActive(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationround.SchedulingStateAiGenerating, active.SchedulingState)

	conv, err = client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateAiGenerating, conv.SchedulingState)
}

func TestComplete(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	round := openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))

	inTx(t, client, func(tx *ent.Tx) error {
		return ledger.Complete(ctx, tx, round.ID, fx.Conversation.ID)
	})

	_, err := ledger.GetActive(ctx, fx.Conversation.ID)
	assert.ErrorIs(t, err, rounds.ErrNoActiveRound)

	completed, err := client.ConversationRound.Get(ctx, round.ID)
	require.NoError(t, err)
	assert.Equal(t, conversationround.StatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateIdle, conv.SchedulingState)
}

func TestCancel(t *testing.T) {
	ledger, client, fx := setup(t)
	ctx := context.Background()

	round := openRound(t, ledger, client, fx.Conversation.ID, queueIDs(fx))
	inTx(t, client, func(tx *ent.Tx) error {
		if err := ledger.MarkSlot(ctx, tx, round.ID, 0, roundparticipant.StatusSucceeded); err != nil {
			return err
		}
		return ledger.AdvanceCursor(ctx, tx, round.ID, fx.Conversation.ID, 1)
	})

	canceledID, err := ledger.Cancel(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, round.ID, canceledID)

	canceled, err := client.ConversationRound.Query().
		Where(conversationround.IDEQ(round.ID)).
		WithParticipants().
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, conversationround.StatusCanceled, canceled.Status)
	for _, p := range canceled.Edges.Participants {
		if p.Position == 0 {
			assert.Equal(t, roundparticipant.StatusSucceeded, p.Status, "finished slots keep their outcome")
		} else {
			assert.Equal(t, roundparticipant.StatusCanceled, p.Status)
		}
	}

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.SchedulingStateIdle, conv.SchedulingState)
}

func TestCancelWithoutActiveRound(t *testing.T) {
	ledger, _, fx := setup(t)
	canceledID, err := ledger.Cancel(context.Background(), fx.Conversation.ID)
	require.NoError(t, err)
	assert.Empty(t, canceledID)
}
