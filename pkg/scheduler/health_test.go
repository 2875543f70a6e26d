package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/scheduler"
	"github.com/talkwheel/talkwheel/test/util"
)

const stuckThreshold = 2 * time.Minute

func newChecker(e *env) *scheduler.HealthChecker {
	return scheduler.NewHealthChecker(e.client, e.ledger, e.sched, stuckThreshold)
}

func TestHealthIdleConversationIsOK(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})

	report, err := newChecker(e).Check(context.Background(), e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthOK, report.Status)
	assert.Equal(t, models.HealthActionNone, report.Action)
}

func TestHealthStuckRunningRun(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	stale := time.Now().Add(-stuckThreshold - time.Minute)
	run, err := e.client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(e.fx.Conversation.ID).
		SetKind(conversationrun.KindAutoResponse).
		SetStatus(conversationrun.StatusRunning).
		SetSpeakerMembershipID(e.fx.Memberships[0].ID).
		SetStartedAt(stale).
		SetHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthFailed, report.Status)
	assert.Equal(t, models.HealthActionReap, report.Action)
	assert.Equal(t, run.ID, report.Details["run_id"])
}

func TestHealthFreshRunningRunIsOK(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	now := time.Now()
	_, err := e.client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(e.fx.Conversation.ID).
		SetKind(conversationrun.KindAutoResponse).
		SetStatus(conversationrun.StatusRunning).
		SetSpeakerMembershipID(e.fx.Memberships[0].ID).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	require.NoError(t, err)

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthOK, report.Status)
}

func TestHealthRecentFailureSuggestsRetry(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	runErr := &models.RunError{Code: models.ErrCodeHTTPError, Message: "upstream 503"}
	run, err := e.client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(e.fx.Conversation.ID).
		SetKind(conversationrun.KindAutoResponse).
		SetStatus(conversationrun.StatusFailed).
		SetSpeakerMembershipID(e.fx.Memberships[0].ID).
		SetFinishedAt(time.Now().Add(-time.Minute)).
		SetError(runErr.ToMap()).
		Save(ctx)
	require.NoError(t, err)

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthDegraded, report.Status)
	assert.Equal(t, models.HealthActionRetry, report.Action)
	assert.Equal(t, run.ID, report.Details["run_id"])
	assert.Equal(t, models.ErrCodeHTTPError, report.Details["code"])
}

func TestHealthOldFailureIsForgotten(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	_, err := e.client.ConversationRun.Create().
		SetID(uuid.New().String()).
		SetConversationID(e.fx.Conversation.ID).
		SetKind(conversationrun.KindAutoResponse).
		SetStatus(conversationrun.StatusFailed).
		SetSpeakerMembershipID(e.fx.Memberships[0].ID).
		SetFinishedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthOK, report.Status)
}

func TestHealthIdleWithArmedAutoModeSuggestsGenerate(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	require.NoError(t, e.client.Space.UpdateOneID(e.fx.Space.ID).
		SetAutoModeEnabled(true).Exec(ctx))
	require.NoError(t, e.client.Conversation.UpdateOneID(e.fx.Conversation.ID).
		SetAutoRoundsRemaining(2).Exec(ctx))

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthDegraded, report.Status)
	assert.Equal(t, models.HealthActionGenerate, report.Action)
	assert.NotEmpty(t, report.Details["suggested_speaker_id"])
}

func TestHealthGeneratingWithoutRoundIsDrift(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	require.NoError(t, e.client.Conversation.UpdateOneID(e.fx.Conversation.ID).
		SetSchedulingState(conversation.SchedulingStateAiGenerating).Exec(ctx))

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthDegraded, report.Status)
	assert.Equal(t, models.HealthActionAdvance, report.Action)
}

func TestHealthSlotSpeakerAlreadyAnsweredIsDrift(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	ctx := context.Background()

	round := e.openRound(t, []string{e.fx.Memberships[0].ID, e.fx.Memberships[1].ID})

	// The slot speaker's answer landed but no run backs the projection:
	// the turn-complete hand-off was lost.
	_, err := e.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(e.fx.Conversation.ID).
		SetSeq(1).
		SetRole(message.RoleAssistant).
		SetContent("already answered").
		SetSpeakerMembershipID(e.fx.Memberships[0].ID).
		Save(ctx)
	require.NoError(t, err)

	report, err := newChecker(e).Check(ctx, e.fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HealthDegraded, report.Status)
	assert.Equal(t, models.HealthActionAdvance, report.Action)
	assert.Equal(t, round.ID, report.Details["round_id"])
}

func TestHealthUnknownConversation(t *testing.T) {
	e := setup(t, util.SpaceOpts{ReplyOrder: space.ReplyOrderList, Characters: 2})
	_, err := newChecker(e).Check(context.Background(), "missing")
	assert.Error(t, err)
}
