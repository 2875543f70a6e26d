package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/pkg/models"
	"github.com/talkwheel/talkwheel/pkg/services"
	testdb "github.com/talkwheel/talkwheel/test/database"
	"github.com/talkwheel/talkwheel/test/util"
)

func setupSpaces(t *testing.T) (*services.SpaceService, *ent.Client, *util.SpaceFixture) {
	t.Helper()
	client := testdb.NewTestClient(t)
	fx := util.CreateSpaceFixture(t, client.Client, util.SpaceOpts{Characters: 3})
	return services.NewSpaceService(client.Client), client.Client, fx
}

func TestCreateSpaceDefaults(t *testing.T) {
	svc, _, _ := setupSpaces(t)

	sp, err := svc.CreateSpace(context.Background(), models.CreateSpaceRequest{Name: "roundtable"})
	require.NoError(t, err)
	assert.Equal(t, "natural", string(sp.ReplyOrder))
	assert.Equal(t, "queue", string(sp.InputPolicy))
	assert.False(t, sp.AllowSelfResponses)
	assert.Nil(t, sp.TokenLimit)
}

func TestCreateSpaceValidation(t *testing.T) {
	svc, _, _ := setupSpaces(t)
	_, err := svc.CreateSpace(context.Background(), models.CreateSpaceRequest{})
	assert.True(t, services.IsValidationError(err))
}

func TestAddMembershipTalkativenessRange(t *testing.T) {
	svc, _, fx := setupSpaces(t)
	ctx := context.Background()

	bad := 1.5
	_, err := svc.AddMembership(ctx, models.AddMembershipRequest{
		SpaceID:       fx.Space.ID,
		Kind:          "character",
		DisplayName:   "Loud",
		Position:      9,
		Talkativeness: &bad,
	})
	assert.True(t, services.IsValidationError(err))

	ok := 0.8
	m, err := svc.AddMembership(ctx, models.AddMembershipRequest{
		SpaceID:       fx.Space.ID,
		Kind:          "character",
		DisplayName:   "Loud",
		Position:      9,
		Talkativeness: &ok,
	})
	require.NoError(t, err)
	require.NotNil(t, m.Talkativeness)
	assert.InDelta(t, 0.8, *m.Talkativeness, 1e-9)
}

func TestActiveParticipantsFiltersAndOrders(t *testing.T) {
	svc, _, fx := setupSpaces(t)
	ctx := context.Background()

	require.NoError(t, svc.SetParticipation(ctx, fx.Memberships[1].ID, spacemembership.ParticipationMuted))
	require.NoError(t, svc.RemoveMembership(ctx, fx.Memberships[2].ID))

	participants, err := svc.ActiveParticipants(ctx, fx.Space.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, fx.Memberships[0].ID, participants[0].ID)
}

func TestSetParticipationNotFound(t *testing.T) {
	svc, _, _ := setupSpaces(t)
	err := svc.SetParticipation(context.Background(), "missing", spacemembership.ParticipationMuted)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRemoveMembershipKeepsRow(t *testing.T) {
	svc, client, fx := setupSpaces(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveMembership(ctx, fx.Memberships[0].ID))

	m, err := client.SpaceMembership.Get(ctx, fx.Memberships[0].ID)
	require.NoError(t, err)
	assert.Equal(t, spacemembership.StatusRemoved, m.Status,
		"removed members keep their row for message attribution")
}

func TestSetCopilotMode(t *testing.T) {
	svc, client, fx := setupSpaces(t)
	ctx := context.Background()

	human := util.CreateHuman(t, client, fx.Space.ID, 10)

	require.NoError(t, svc.SetCopilotMode(ctx, human.ID, spacemembership.CopilotModeFull, 5))
	m, err := client.SpaceMembership.Get(ctx, human.ID)
	require.NoError(t, err)
	assert.Equal(t, spacemembership.CopilotModeFull, m.CopilotMode)
	assert.Equal(t, 5, m.CopilotRemainingSteps)

	// Turning copilot off always zeroes the step budget.
	require.NoError(t, svc.SetCopilotMode(ctx, human.ID, spacemembership.CopilotModeNone, 7))
	m, err = client.SpaceMembership.Get(ctx, human.ID)
	require.NoError(t, err)
	assert.Equal(t, spacemembership.CopilotModeNone, m.CopilotMode)
	assert.Zero(t, m.CopilotRemainingSteps)
}

func TestSetCopilotModeRejectsCharacters(t *testing.T) {
	svc, _, fx := setupSpaces(t)
	err := svc.SetCopilotMode(context.Background(), fx.Memberships[0].ID, spacemembership.CopilotModeFull, 3)
	assert.True(t, services.IsValidationError(err))
}

func TestEnableAutoModeDisablesCopilots(t *testing.T) {
	svc, client, fx := setupSpaces(t)
	ctx := context.Background()

	human := util.CreateHuman(t, client, fx.Space.ID, 10)
	require.NoError(t, svc.SetCopilotMode(ctx, human.ID, spacemembership.CopilotModeFull, 5))

	disabled, err := svc.EnableAutoMode(ctx, fx.Space.ID, fx.Conversation.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{human.ID}, disabled)

	sp, err := client.Space.Get(ctx, fx.Space.ID)
	require.NoError(t, err)
	assert.True(t, sp.AutoModeEnabled)

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, conv.AutoRoundsRemaining)

	m, err := client.SpaceMembership.Get(ctx, human.ID)
	require.NoError(t, err)
	assert.Equal(t, spacemembership.CopilotModeNone, m.CopilotMode)
	assert.Zero(t, m.CopilotRemainingSteps)
}

func TestEnableAutoModeRoundBudgetBounds(t *testing.T) {
	svc, _, fx := setupSpaces(t)
	ctx := context.Background()

	_, err := svc.EnableAutoMode(ctx, fx.Space.ID, fx.Conversation.ID, 0)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.EnableAutoMode(ctx, fx.Space.ID, fx.Conversation.ID, 11)
	assert.True(t, services.IsValidationError(err))
}

func TestDisableAutoMode(t *testing.T) {
	svc, client, fx := setupSpaces(t)
	ctx := context.Background()

	_, err := svc.EnableAutoMode(ctx, fx.Space.ID, fx.Conversation.ID, 3)
	require.NoError(t, err)

	require.NoError(t, svc.DisableAutoMode(ctx, fx.Space.ID, fx.Conversation.ID))

	sp, err := client.Space.Get(ctx, fx.Space.ID)
	require.NoError(t, err)
	assert.False(t, sp.AutoModeEnabled)

	conv, err := client.Conversation.Get(ctx, fx.Conversation.ID)
	require.NoError(t, err)
	assert.Zero(t, conv.AutoRoundsRemaining)
}
