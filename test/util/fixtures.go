package util

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/ent"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceFixture bundles the rows most tests need: a space, its character
// memberships in position order, and a root conversation.
type SpaceFixture struct {
	Space        *ent.Space
	Memberships  []*ent.SpaceMembership
	Conversation *ent.Conversation
}

// SpaceOpts tunes CreateSpaceFixture. Zero value gives a natural-order,
// queue-policy space with the requested number of characters.
type SpaceOpts struct {
	ReplyOrder         space.ReplyOrder
	InputPolicy        space.InputPolicy
	AllowSelfResponses bool
	Characters         int
	TokenLimit         *int64
	UserTurnDebounceMs int
}

// CreateSpaceFixture inserts a space with character memberships and a root
// conversation. Characters are named Char0, Char1, ... in position order.
func CreateSpaceFixture(t *testing.T, client *ent.Client, opts SpaceOpts) *SpaceFixture {
	t.Helper()
	ctx := context.Background()

	if opts.Characters == 0 {
		opts.Characters = 2
	}
	if opts.ReplyOrder == "" {
		opts.ReplyOrder = space.ReplyOrderNatural
	}
	if opts.InputPolicy == "" {
		opts.InputPolicy = space.InputPolicyQueue
	}

	builder := client.Space.Create().
		SetID(uuid.New().String()).
		SetName("test space").
		SetReplyOrder(opts.ReplyOrder).
		SetInputPolicy(opts.InputPolicy).
		SetAllowSelfResponses(opts.AllowSelfResponses).
		SetUserTurnDebounceMs(opts.UserTurnDebounceMs)
	if opts.TokenLimit != nil {
		builder.SetTokenLimit(*opts.TokenLimit)
	}
	sp, err := builder.Save(ctx)
	require.NoError(t, err)

	memberships := make([]*ent.SpaceMembership, 0, opts.Characters)
	for i := 0; i < opts.Characters; i++ {
		m := CreateCharacter(t, client, sp.ID, i)
		memberships = append(memberships, m)
	}

	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetSpaceID(sp.ID).
		Save(ctx)
	require.NoError(t, err)

	return &SpaceFixture{Space: sp, Memberships: memberships, Conversation: conv}
}

// CreateCharacter inserts an active character membership at the given
// rotation position.
func CreateCharacter(t *testing.T, client *ent.Client, spaceID string, position int) *ent.SpaceMembership {
	t.Helper()
	m, err := client.SpaceMembership.Create().
		SetID(uuid.New().String()).
		SetSpaceID(spaceID).
		SetKind(spacemembership.KindCharacter).
		SetDisplayName(characterName(position)).
		SetPosition(position).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

// CreateHuman inserts an active human membership at the given position.
func CreateHuman(t *testing.T, client *ent.Client, spaceID string, position int) *ent.SpaceMembership {
	t.Helper()
	m, err := client.SpaceMembership.Create().
		SetID(uuid.New().String()).
		SetSpaceID(spaceID).
		SetKind(spacemembership.KindHuman).
		SetDisplayName("User").
		SetPosition(position).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

// CreateConversation inserts an extra conversation in the space.
func CreateConversation(t *testing.T, client *ent.Client, spaceID string) *ent.Conversation {
	t.Helper()
	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetSpaceID(spaceID).
		Save(context.Background())
	require.NoError(t, err)
	return conv
}

func characterName(position int) string {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	if position < len(names) {
		return names[position]
	}
	return names[position%len(names)]
}
