// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/event"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
	"github.com/talkwheel/talkwheel/ent/textcontent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation      = "Conversation"
	TypeConversationRound = "ConversationRound"
	TypeConversationRun   = "ConversationRun"
	TypeEvent             = "Event"
	TypeMessage           = "Message"
	TypeMessageSwipe      = "MessageSwipe"
	TypeRoundParticipant  = "RoundParticipant"
	TypeSpace             = "Space"
	TypeSpaceMembership   = "SpaceMembership"
	TypeTextContent       = "TextContent"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	kind                       *conversation.Kind
	parent_conversation_id     *string
	forked_from_message_id     *string
	scheduling_state           *conversation.SchedulingState
	group_queue_revision       *int64
	addgroup_queue_revision    *int64
	auto_rounds_remaining      *int
	addauto_rounds_remaining   *int
	prompt_tokens_total        *int64
	addprompt_tokens_total     *int64
	completion_tokens_total    *int64
	addcompletion_tokens_total *int64
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	space                      *string
	clearedspace               bool
	messages                   map[string]struct{}
	removedmessages            map[string]struct{}
	clearedmessages            bool
	runs                       map[string]struct{}
	removedruns                map[string]struct{}
	clearedruns                bool
	rounds                     map[string]struct{}
	removedrounds              map[string]struct{}
	clearedrounds              bool
	events                     map[int]struct{}
	removedevents              map[int]struct{}
	clearedevents              bool
	done                       bool
	oldValue                   func(context.Context) (*Conversation, error)
	predicates                 []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSpaceID sets the "space_id" field.
func (m *ConversationMutation) SetSpaceID(s string) {
	m.space = &s
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *ConversationMutation) SpaceID() (r string, exists bool) {
	v := m.space
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSpaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *ConversationMutation) ResetSpaceID() {
	m.space = nil
}

// SetKind sets the "kind" field.
func (m *ConversationMutation) SetKind(c conversation.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ConversationMutation) Kind() (r conversation.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldKind(ctx context.Context) (v conversation.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ConversationMutation) ResetKind() {
	m.kind = nil
}

// SetParentConversationID sets the "parent_conversation_id" field.
func (m *ConversationMutation) SetParentConversationID(s string) {
	m.parent_conversation_id = &s
}

// ParentConversationID returns the value of the "parent_conversation_id" field in the mutation.
func (m *ConversationMutation) ParentConversationID() (r string, exists bool) {
	v := m.parent_conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentConversationID returns the old "parent_conversation_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldParentConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentConversationID: %w", err)
	}
	return oldValue.ParentConversationID, nil
}

// ClearParentConversationID clears the value of the "parent_conversation_id" field.
func (m *ConversationMutation) ClearParentConversationID() {
	m.parent_conversation_id = nil
	m.clearedFields[conversation.FieldParentConversationID] = struct{}{}
}

// ParentConversationIDCleared returns if the "parent_conversation_id" field was cleared in this mutation.
func (m *ConversationMutation) ParentConversationIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldParentConversationID]
	return ok
}

// ResetParentConversationID resets all changes to the "parent_conversation_id" field.
func (m *ConversationMutation) ResetParentConversationID() {
	m.parent_conversation_id = nil
	delete(m.clearedFields, conversation.FieldParentConversationID)
}

// SetForkedFromMessageID sets the "forked_from_message_id" field.
func (m *ConversationMutation) SetForkedFromMessageID(s string) {
	m.forked_from_message_id = &s
}

// ForkedFromMessageID returns the value of the "forked_from_message_id" field in the mutation.
func (m *ConversationMutation) ForkedFromMessageID() (r string, exists bool) {
	v := m.forked_from_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldForkedFromMessageID returns the old "forked_from_message_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldForkedFromMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForkedFromMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForkedFromMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForkedFromMessageID: %w", err)
	}
	return oldValue.ForkedFromMessageID, nil
}

// ClearForkedFromMessageID clears the value of the "forked_from_message_id" field.
func (m *ConversationMutation) ClearForkedFromMessageID() {
	m.forked_from_message_id = nil
	m.clearedFields[conversation.FieldForkedFromMessageID] = struct{}{}
}

// ForkedFromMessageIDCleared returns if the "forked_from_message_id" field was cleared in this mutation.
func (m *ConversationMutation) ForkedFromMessageIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldForkedFromMessageID]
	return ok
}

// ResetForkedFromMessageID resets all changes to the "forked_from_message_id" field.
func (m *ConversationMutation) ResetForkedFromMessageID() {
	m.forked_from_message_id = nil
	delete(m.clearedFields, conversation.FieldForkedFromMessageID)
}

// SetSchedulingState sets the "scheduling_state" field.
func (m *ConversationMutation) SetSchedulingState(cs conversation.SchedulingState) {
	m.scheduling_state = &cs
}

// SchedulingState returns the value of the "scheduling_state" field in the mutation.
func (m *ConversationMutation) SchedulingState() (r conversation.SchedulingState, exists bool) {
	v := m.scheduling_state
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulingState returns the old "scheduling_state" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldSchedulingState(ctx context.Context) (v conversation.SchedulingState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulingState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulingState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulingState: %w", err)
	}
	return oldValue.SchedulingState, nil
}

// ResetSchedulingState resets all changes to the "scheduling_state" field.
func (m *ConversationMutation) ResetSchedulingState() {
	m.scheduling_state = nil
}

// SetGroupQueueRevision sets the "group_queue_revision" field.
func (m *ConversationMutation) SetGroupQueueRevision(i int64) {
	m.group_queue_revision = &i
	m.addgroup_queue_revision = nil
}

// GroupQueueRevision returns the value of the "group_queue_revision" field in the mutation.
func (m *ConversationMutation) GroupQueueRevision() (r int64, exists bool) {
	v := m.group_queue_revision
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupQueueRevision returns the old "group_queue_revision" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldGroupQueueRevision(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupQueueRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupQueueRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupQueueRevision: %w", err)
	}
	return oldValue.GroupQueueRevision, nil
}

// AddGroupQueueRevision adds i to the "group_queue_revision" field.
func (m *ConversationMutation) AddGroupQueueRevision(i int64) {
	if m.addgroup_queue_revision != nil {
		*m.addgroup_queue_revision += i
	} else {
		m.addgroup_queue_revision = &i
	}
}

// AddedGroupQueueRevision returns the value that was added to the "group_queue_revision" field in this mutation.
func (m *ConversationMutation) AddedGroupQueueRevision() (r int64, exists bool) {
	v := m.addgroup_queue_revision
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroupQueueRevision resets all changes to the "group_queue_revision" field.
func (m *ConversationMutation) ResetGroupQueueRevision() {
	m.group_queue_revision = nil
	m.addgroup_queue_revision = nil
}

// SetAutoRoundsRemaining sets the "auto_rounds_remaining" field.
func (m *ConversationMutation) SetAutoRoundsRemaining(i int) {
	m.auto_rounds_remaining = &i
	m.addauto_rounds_remaining = nil
}

// AutoRoundsRemaining returns the value of the "auto_rounds_remaining" field in the mutation.
func (m *ConversationMutation) AutoRoundsRemaining() (r int, exists bool) {
	v := m.auto_rounds_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoRoundsRemaining returns the old "auto_rounds_remaining" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldAutoRoundsRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoRoundsRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoRoundsRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoRoundsRemaining: %w", err)
	}
	return oldValue.AutoRoundsRemaining, nil
}

// AddAutoRoundsRemaining adds i to the "auto_rounds_remaining" field.
func (m *ConversationMutation) AddAutoRoundsRemaining(i int) {
	if m.addauto_rounds_remaining != nil {
		*m.addauto_rounds_remaining += i
	} else {
		m.addauto_rounds_remaining = &i
	}
}

// AddedAutoRoundsRemaining returns the value that was added to the "auto_rounds_remaining" field in this mutation.
func (m *ConversationMutation) AddedAutoRoundsRemaining() (r int, exists bool) {
	v := m.addauto_rounds_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetAutoRoundsRemaining resets all changes to the "auto_rounds_remaining" field.
func (m *ConversationMutation) ResetAutoRoundsRemaining() {
	m.auto_rounds_remaining = nil
	m.addauto_rounds_remaining = nil
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (m *ConversationMutation) SetPromptTokensTotal(i int64) {
	m.prompt_tokens_total = &i
	m.addprompt_tokens_total = nil
}

// PromptTokensTotal returns the value of the "prompt_tokens_total" field in the mutation.
func (m *ConversationMutation) PromptTokensTotal() (r int64, exists bool) {
	v := m.prompt_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokensTotal returns the old "prompt_tokens_total" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldPromptTokensTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokensTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokensTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokensTotal: %w", err)
	}
	return oldValue.PromptTokensTotal, nil
}

// AddPromptTokensTotal adds i to the "prompt_tokens_total" field.
func (m *ConversationMutation) AddPromptTokensTotal(i int64) {
	if m.addprompt_tokens_total != nil {
		*m.addprompt_tokens_total += i
	} else {
		m.addprompt_tokens_total = &i
	}
}

// AddedPromptTokensTotal returns the value that was added to the "prompt_tokens_total" field in this mutation.
func (m *ConversationMutation) AddedPromptTokensTotal() (r int64, exists bool) {
	v := m.addprompt_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokensTotal resets all changes to the "prompt_tokens_total" field.
func (m *ConversationMutation) ResetPromptTokensTotal() {
	m.prompt_tokens_total = nil
	m.addprompt_tokens_total = nil
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (m *ConversationMutation) SetCompletionTokensTotal(i int64) {
	m.completion_tokens_total = &i
	m.addcompletion_tokens_total = nil
}

// CompletionTokensTotal returns the value of the "completion_tokens_total" field in the mutation.
func (m *ConversationMutation) CompletionTokensTotal() (r int64, exists bool) {
	v := m.completion_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokensTotal returns the old "completion_tokens_total" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCompletionTokensTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokensTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokensTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokensTotal: %w", err)
	}
	return oldValue.CompletionTokensTotal, nil
}

// AddCompletionTokensTotal adds i to the "completion_tokens_total" field.
func (m *ConversationMutation) AddCompletionTokensTotal(i int64) {
	if m.addcompletion_tokens_total != nil {
		*m.addcompletion_tokens_total += i
	} else {
		m.addcompletion_tokens_total = &i
	}
}

// AddedCompletionTokensTotal returns the value that was added to the "completion_tokens_total" field in this mutation.
func (m *ConversationMutation) AddedCompletionTokensTotal() (r int64, exists bool) {
	v := m.addcompletion_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokensTotal resets all changes to the "completion_tokens_total" field.
func (m *ConversationMutation) ResetCompletionTokensTotal() {
	m.completion_tokens_total = nil
	m.addcompletion_tokens_total = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSpace clears the "space" edge to the Space entity.
func (m *ConversationMutation) ClearSpace() {
	m.clearedspace = true
	m.clearedFields[conversation.FieldSpaceID] = struct{}{}
}

// SpaceCleared reports if the "space" edge to the Space entity was cleared.
func (m *ConversationMutation) SpaceCleared() bool {
	return m.clearedspace
}

// SpaceIDs returns the "space" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpaceID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) SpaceIDs() (ids []string) {
	if id := m.space; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpace resets all changes to the "space" edge.
func (m *ConversationMutation) ResetSpace() {
	m.space = nil
	m.clearedspace = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by ids.
func (m *ConversationMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ConversationRun entity.
func (m *ConversationMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ConversationRun entity was cleared.
func (m *ConversationMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ConversationRun entity by IDs.
func (m *ConversationMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ConversationRun entity.
func (m *ConversationMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ConversationMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ConversationMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddRoundIDs adds the "rounds" edge to the ConversationRound entity by ids.
func (m *ConversationMutation) AddRoundIDs(ids ...string) {
	if m.rounds == nil {
		m.rounds = make(map[string]struct{})
	}
	for i := range ids {
		m.rounds[ids[i]] = struct{}{}
	}
}

// ClearRounds clears the "rounds" edge to the ConversationRound entity.
func (m *ConversationMutation) ClearRounds() {
	m.clearedrounds = true
}

// RoundsCleared reports if the "rounds" edge to the ConversationRound entity was cleared.
func (m *ConversationMutation) RoundsCleared() bool {
	return m.clearedrounds
}

// RemoveRoundIDs removes the "rounds" edge to the ConversationRound entity by IDs.
func (m *ConversationMutation) RemoveRoundIDs(ids ...string) {
	if m.removedrounds == nil {
		m.removedrounds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rounds, ids[i])
		m.removedrounds[ids[i]] = struct{}{}
	}
}

// RemovedRounds returns the removed IDs of the "rounds" edge to the ConversationRound entity.
func (m *ConversationMutation) RemovedRoundsIDs() (ids []string) {
	for id := range m.removedrounds {
		ids = append(ids, id)
	}
	return
}

// RoundsIDs returns the "rounds" edge IDs in the mutation.
func (m *ConversationMutation) RoundsIDs() (ids []string) {
	for id := range m.rounds {
		ids = append(ids, id)
	}
	return
}

// ResetRounds resets all changes to the "rounds" edge.
func (m *ConversationMutation) ResetRounds() {
	m.rounds = nil
	m.clearedrounds = false
	m.removedrounds = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ConversationMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ConversationMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ConversationMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ConversationMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ConversationMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ConversationMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ConversationMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.space != nil {
		fields = append(fields, conversation.FieldSpaceID)
	}
	if m.kind != nil {
		fields = append(fields, conversation.FieldKind)
	}
	if m.parent_conversation_id != nil {
		fields = append(fields, conversation.FieldParentConversationID)
	}
	if m.forked_from_message_id != nil {
		fields = append(fields, conversation.FieldForkedFromMessageID)
	}
	if m.scheduling_state != nil {
		fields = append(fields, conversation.FieldSchedulingState)
	}
	if m.group_queue_revision != nil {
		fields = append(fields, conversation.FieldGroupQueueRevision)
	}
	if m.auto_rounds_remaining != nil {
		fields = append(fields, conversation.FieldAutoRoundsRemaining)
	}
	if m.prompt_tokens_total != nil {
		fields = append(fields, conversation.FieldPromptTokensTotal)
	}
	if m.completion_tokens_total != nil {
		fields = append(fields, conversation.FieldCompletionTokensTotal)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldSpaceID:
		return m.SpaceID()
	case conversation.FieldKind:
		return m.Kind()
	case conversation.FieldParentConversationID:
		return m.ParentConversationID()
	case conversation.FieldForkedFromMessageID:
		return m.ForkedFromMessageID()
	case conversation.FieldSchedulingState:
		return m.SchedulingState()
	case conversation.FieldGroupQueueRevision:
		return m.GroupQueueRevision()
	case conversation.FieldAutoRoundsRemaining:
		return m.AutoRoundsRemaining()
	case conversation.FieldPromptTokensTotal:
		return m.PromptTokensTotal()
	case conversation.FieldCompletionTokensTotal:
		return m.CompletionTokensTotal()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case conversation.FieldKind:
		return m.OldKind(ctx)
	case conversation.FieldParentConversationID:
		return m.OldParentConversationID(ctx)
	case conversation.FieldForkedFromMessageID:
		return m.OldForkedFromMessageID(ctx)
	case conversation.FieldSchedulingState:
		return m.OldSchedulingState(ctx)
	case conversation.FieldGroupQueueRevision:
		return m.OldGroupQueueRevision(ctx)
	case conversation.FieldAutoRoundsRemaining:
		return m.OldAutoRoundsRemaining(ctx)
	case conversation.FieldPromptTokensTotal:
		return m.OldPromptTokensTotal(ctx)
	case conversation.FieldCompletionTokensTotal:
		return m.OldCompletionTokensTotal(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldSpaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case conversation.FieldKind:
		v, ok := value.(conversation.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case conversation.FieldParentConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentConversationID(v)
		return nil
	case conversation.FieldForkedFromMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForkedFromMessageID(v)
		return nil
	case conversation.FieldSchedulingState:
		v, ok := value.(conversation.SchedulingState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulingState(v)
		return nil
	case conversation.FieldGroupQueueRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupQueueRevision(v)
		return nil
	case conversation.FieldAutoRoundsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoRoundsRemaining(v)
		return nil
	case conversation.FieldPromptTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokensTotal(v)
		return nil
	case conversation.FieldCompletionTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokensTotal(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addgroup_queue_revision != nil {
		fields = append(fields, conversation.FieldGroupQueueRevision)
	}
	if m.addauto_rounds_remaining != nil {
		fields = append(fields, conversation.FieldAutoRoundsRemaining)
	}
	if m.addprompt_tokens_total != nil {
		fields = append(fields, conversation.FieldPromptTokensTotal)
	}
	if m.addcompletion_tokens_total != nil {
		fields = append(fields, conversation.FieldCompletionTokensTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldGroupQueueRevision:
		return m.AddedGroupQueueRevision()
	case conversation.FieldAutoRoundsRemaining:
		return m.AddedAutoRoundsRemaining()
	case conversation.FieldPromptTokensTotal:
		return m.AddedPromptTokensTotal()
	case conversation.FieldCompletionTokensTotal:
		return m.AddedCompletionTokensTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldGroupQueueRevision:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupQueueRevision(v)
		return nil
	case conversation.FieldAutoRoundsRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoRoundsRemaining(v)
		return nil
	case conversation.FieldPromptTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokensTotal(v)
		return nil
	case conversation.FieldCompletionTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokensTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldParentConversationID) {
		fields = append(fields, conversation.FieldParentConversationID)
	}
	if m.FieldCleared(conversation.FieldForkedFromMessageID) {
		fields = append(fields, conversation.FieldForkedFromMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldParentConversationID:
		m.ClearParentConversationID()
		return nil
	case conversation.FieldForkedFromMessageID:
		m.ClearForkedFromMessageID()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case conversation.FieldKind:
		m.ResetKind()
		return nil
	case conversation.FieldParentConversationID:
		m.ResetParentConversationID()
		return nil
	case conversation.FieldForkedFromMessageID:
		m.ResetForkedFromMessageID()
		return nil
	case conversation.FieldSchedulingState:
		m.ResetSchedulingState()
		return nil
	case conversation.FieldGroupQueueRevision:
		m.ResetGroupQueueRevision()
		return nil
	case conversation.FieldAutoRoundsRemaining:
		m.ResetAutoRoundsRemaining()
		return nil
	case conversation.FieldPromptTokensTotal:
		m.ResetPromptTokensTotal()
		return nil
	case conversation.FieldCompletionTokensTotal:
		m.ResetCompletionTokensTotal()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.space != nil {
		edges = append(edges, conversation.EdgeSpace)
	}
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.runs != nil {
		edges = append(edges, conversation.EdgeRuns)
	}
	if m.rounds != nil {
		edges = append(edges, conversation.EdgeRounds)
	}
	if m.events != nil {
		edges = append(edges, conversation.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeSpace:
		if id := m.space; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.rounds))
		for id := range m.rounds {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.removedruns != nil {
		edges = append(edges, conversation.EdgeRuns)
	}
	if m.removedrounds != nil {
		edges = append(edges, conversation.EdgeRounds)
	}
	if m.removedevents != nil {
		edges = append(edges, conversation.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.removedrounds))
		for id := range m.removedrounds {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedspace {
		edges = append(edges, conversation.EdgeSpace)
	}
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedruns {
		edges = append(edges, conversation.EdgeRuns)
	}
	if m.clearedrounds {
		edges = append(edges, conversation.EdgeRounds)
	}
	if m.clearedevents {
		edges = append(edges, conversation.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeSpace:
		return m.clearedspace
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgeRuns:
		return m.clearedruns
	case conversation.EdgeRounds:
		return m.clearedrounds
	case conversation.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeSpace:
		m.ClearSpace()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeSpace:
		m.ResetSpace()
		return nil
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgeRuns:
		m.ResetRuns()
		return nil
	case conversation.EdgeRounds:
		m.ResetRounds()
		return nil
	case conversation.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// ConversationRoundMutation represents an operation that mutates the ConversationRound nodes in the graph.
type ConversationRoundMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *conversationround.Status
	scheduling_state    *conversationround.SchedulingState
	current_position    *int
	addcurrent_position *int
	created_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	participants        map[string]struct{}
	removedparticipants map[string]struct{}
	clearedparticipants bool
	done                bool
	oldValue            func(context.Context) (*ConversationRound, error)
	predicates          []predicate.ConversationRound
}

var _ ent.Mutation = (*ConversationRoundMutation)(nil)

// conversationroundOption allows management of the mutation configuration using functional options.
type conversationroundOption func(*ConversationRoundMutation)

// newConversationRoundMutation creates new mutation for the ConversationRound entity.
func newConversationRoundMutation(c config, op Op, opts ...conversationroundOption) *ConversationRoundMutation {
	m := &ConversationRoundMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationRound,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationRoundID sets the ID field of the mutation.
func withConversationRoundID(id string) conversationroundOption {
	return func(m *ConversationRoundMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationRound
		)
		m.oldValue = func(ctx context.Context) (*ConversationRound, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationRound.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationRound sets the old ConversationRound of the mutation.
func withConversationRound(node *ConversationRound) conversationroundOption {
	return func(m *ConversationRoundMutation) {
		m.oldValue = func(context.Context) (*ConversationRound, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationRoundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationRoundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationRound entities.
func (m *ConversationRoundMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationRoundMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationRoundMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationRound.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ConversationRoundMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ConversationRoundMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ConversationRound entity.
// If the ConversationRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRoundMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ConversationRoundMutation) ResetConversationID() {
	m.conversation = nil
}

// SetStatus sets the "status" field.
func (m *ConversationRoundMutation) SetStatus(c conversationround.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationRoundMutation) Status() (r conversationround.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConversationRound entity.
// If the ConversationRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRoundMutation) OldStatus(ctx context.Context) (v conversationround.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationRoundMutation) ResetStatus() {
	m.status = nil
}

// SetSchedulingState sets the "scheduling_state" field.
func (m *ConversationRoundMutation) SetSchedulingState(cs conversationround.SchedulingState) {
	m.scheduling_state = &cs
}

// SchedulingState returns the value of the "scheduling_state" field in the mutation.
func (m *ConversationRoundMutation) SchedulingState() (r conversationround.SchedulingState, exists bool) {
	v := m.scheduling_state
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulingState returns the old "scheduling_state" field's value of the ConversationRound entity.
// If the ConversationRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRoundMutation) OldSchedulingState(ctx context.Context) (v conversationround.SchedulingState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulingState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulingState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulingState: %w", err)
	}
	return oldValue.SchedulingState, nil
}

// ResetSchedulingState resets all changes to the "scheduling_state" field.
func (m *ConversationRoundMutation) ResetSchedulingState() {
	m.scheduling_state = nil
}

// SetCurrentPosition sets the "current_position" field.
func (m *ConversationRoundMutation) SetCurrentPosition(i int) {
	m.current_position = &i
	m.addcurrent_position = nil
}

// CurrentPosition returns the value of the "current_position" field in the mutation.
func (m *ConversationRoundMutation) CurrentPosition() (r int, exists bool) {
	v := m.current_position
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPosition returns the old "current_position" field's value of the ConversationRound entity.
// If the ConversationRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRoundMutation) OldCurrentPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPosition: %w", err)
	}
	return oldValue.CurrentPosition, nil
}

// AddCurrentPosition adds i to the "current_position" field.
func (m *ConversationRoundMutation) AddCurrentPosition(i int) {
	if m.addcurrent_position != nil {
		*m.addcurrent_position += i
	} else {
		m.addcurrent_position = &i
	}
}

// AddedCurrentPosition returns the value that was added to the "current_position" field in this mutation.
func (m *ConversationRoundMutation) AddedCurrentPosition() (r int, exists bool) {
	v := m.addcurrent_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentPosition resets all changes to the "current_position" field.
func (m *ConversationRoundMutation) ResetCurrentPosition() {
	m.current_position = nil
	m.addcurrent_position = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationRoundMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationRoundMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationRound entity.
// If the ConversationRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRoundMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationRoundMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ConversationRoundMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ConversationRoundMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ConversationRound entity.
// If the ConversationRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRoundMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ConversationRoundMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[conversationround.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ConversationRoundMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[conversationround.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ConversationRoundMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, conversationround.FieldCompletedAt)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *ConversationRoundMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[conversationround.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *ConversationRoundMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ConversationRoundMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ConversationRoundMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// AddParticipantIDs adds the "participants" edge to the RoundParticipant entity by ids.
func (m *ConversationRoundMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the RoundParticipant entity.
func (m *ConversationRoundMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the RoundParticipant entity was cleared.
func (m *ConversationRoundMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the RoundParticipant entity by IDs.
func (m *ConversationRoundMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the RoundParticipant entity.
func (m *ConversationRoundMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *ConversationRoundMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *ConversationRoundMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// Where appends a list predicates to the ConversationRoundMutation builder.
func (m *ConversationRoundMutation) Where(ps ...predicate.ConversationRound) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationRoundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationRoundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationRound, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationRoundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationRoundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationRound).
func (m *ConversationRoundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationRoundMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, conversationround.FieldConversationID)
	}
	if m.status != nil {
		fields = append(fields, conversationround.FieldStatus)
	}
	if m.scheduling_state != nil {
		fields = append(fields, conversationround.FieldSchedulingState)
	}
	if m.current_position != nil {
		fields = append(fields, conversationround.FieldCurrentPosition)
	}
	if m.created_at != nil {
		fields = append(fields, conversationround.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, conversationround.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationRoundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationround.FieldConversationID:
		return m.ConversationID()
	case conversationround.FieldStatus:
		return m.Status()
	case conversationround.FieldSchedulingState:
		return m.SchedulingState()
	case conversationround.FieldCurrentPosition:
		return m.CurrentPosition()
	case conversationround.FieldCreatedAt:
		return m.CreatedAt()
	case conversationround.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationRoundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationround.FieldConversationID:
		return m.OldConversationID(ctx)
	case conversationround.FieldStatus:
		return m.OldStatus(ctx)
	case conversationround.FieldSchedulingState:
		return m.OldSchedulingState(ctx)
	case conversationround.FieldCurrentPosition:
		return m.OldCurrentPosition(ctx)
	case conversationround.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversationround.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationRound field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationRoundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationround.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case conversationround.FieldStatus:
		v, ok := value.(conversationround.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversationround.FieldSchedulingState:
		v, ok := value.(conversationround.SchedulingState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulingState(v)
		return nil
	case conversationround.FieldCurrentPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPosition(v)
		return nil
	case conversationround.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversationround.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationRound field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationRoundMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_position != nil {
		fields = append(fields, conversationround.FieldCurrentPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationRoundMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversationround.FieldCurrentPosition:
		return m.AddedCurrentPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationRoundMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversationround.FieldCurrentPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPosition(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationRound numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationRoundMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationround.FieldCompletedAt) {
		fields = append(fields, conversationround.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationRoundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationRoundMutation) ClearField(name string) error {
	switch name {
	case conversationround.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationRound nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationRoundMutation) ResetField(name string) error {
	switch name {
	case conversationround.FieldConversationID:
		m.ResetConversationID()
		return nil
	case conversationround.FieldStatus:
		m.ResetStatus()
		return nil
	case conversationround.FieldSchedulingState:
		m.ResetSchedulingState()
		return nil
	case conversationround.FieldCurrentPosition:
		m.ResetCurrentPosition()
		return nil
	case conversationround.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversationround.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationRound field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationRoundMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conversation != nil {
		edges = append(edges, conversationround.EdgeConversation)
	}
	if m.participants != nil {
		edges = append(edges, conversationround.EdgeParticipants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationRoundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationround.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case conversationround.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationRoundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparticipants != nil {
		edges = append(edges, conversationround.EdgeParticipants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationRoundMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversationround.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationRoundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconversation {
		edges = append(edges, conversationround.EdgeConversation)
	}
	if m.clearedparticipants {
		edges = append(edges, conversationround.EdgeParticipants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationRoundMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationround.EdgeConversation:
		return m.clearedconversation
	case conversationround.EdgeParticipants:
		return m.clearedparticipants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationRoundMutation) ClearEdge(name string) error {
	switch name {
	case conversationround.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ConversationRound unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationRoundMutation) ResetEdge(name string) error {
	switch name {
	case conversationround.EdgeConversation:
		m.ResetConversation()
		return nil
	case conversationround.EdgeParticipants:
		m.ResetParticipants()
		return nil
	}
	return fmt.Errorf("unknown ConversationRound edge %s", name)
}

// ConversationRunMutation represents an operation that mutates the ConversationRun nodes in the graph.
type ConversationRunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *conversationrun.Kind
	status              *conversationrun.Status
	reason              *string
	round_id            *string
	run_after           *time.Time
	started_at          *time.Time
	finished_at         *time.Time
	heartbeat_at        *time.Time
	cancel_requested_at *time.Time
	error               *map[string]interface{}
	debug               *map[string]interface{}
	pod_id              *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	speaker             *string
	clearedspeaker      bool
	done                bool
	oldValue            func(context.Context) (*ConversationRun, error)
	predicates          []predicate.ConversationRun
}

var _ ent.Mutation = (*ConversationRunMutation)(nil)

// conversationrunOption allows management of the mutation configuration using functional options.
type conversationrunOption func(*ConversationRunMutation)

// newConversationRunMutation creates new mutation for the ConversationRun entity.
func newConversationRunMutation(c config, op Op, opts ...conversationrunOption) *ConversationRunMutation {
	m := &ConversationRunMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationRunID sets the ID field of the mutation.
func withConversationRunID(id string) conversationrunOption {
	return func(m *ConversationRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationRun
		)
		m.oldValue = func(ctx context.Context) (*ConversationRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationRun sets the old ConversationRun of the mutation.
func withConversationRun(node *ConversationRun) conversationrunOption {
	return func(m *ConversationRunMutation) {
		m.oldValue = func(context.Context) (*ConversationRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationRun entities.
func (m *ConversationRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ConversationRunMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ConversationRunMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ConversationRunMutation) ResetConversationID() {
	m.conversation = nil
}

// SetKind sets the "kind" field.
func (m *ConversationRunMutation) SetKind(c conversationrun.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ConversationRunMutation) Kind() (r conversationrun.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldKind(ctx context.Context) (v conversationrun.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ConversationRunMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *ConversationRunMutation) SetStatus(c conversationrun.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationRunMutation) Status() (r conversationrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldStatus(ctx context.Context) (v conversationrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationRunMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *ConversationRunMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ConversationRunMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ConversationRunMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[conversationrun.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ConversationRunMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ConversationRunMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, conversationrun.FieldReason)
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (m *ConversationRunMutation) SetSpeakerMembershipID(s string) {
	m.speaker = &s
}

// SpeakerMembershipID returns the value of the "speaker_membership_id" field in the mutation.
func (m *ConversationRunMutation) SpeakerMembershipID() (r string, exists bool) {
	v := m.speaker
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerMembershipID returns the old "speaker_membership_id" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldSpeakerMembershipID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerMembershipID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerMembershipID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerMembershipID: %w", err)
	}
	return oldValue.SpeakerMembershipID, nil
}

// ResetSpeakerMembershipID resets all changes to the "speaker_membership_id" field.
func (m *ConversationRunMutation) ResetSpeakerMembershipID() {
	m.speaker = nil
}

// SetRoundID sets the "round_id" field.
func (m *ConversationRunMutation) SetRoundID(s string) {
	m.round_id = &s
}

// RoundID returns the value of the "round_id" field in the mutation.
func (m *ConversationRunMutation) RoundID() (r string, exists bool) {
	v := m.round_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundID returns the old "round_id" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldRoundID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundID: %w", err)
	}
	return oldValue.RoundID, nil
}

// ClearRoundID clears the value of the "round_id" field.
func (m *ConversationRunMutation) ClearRoundID() {
	m.round_id = nil
	m.clearedFields[conversationrun.FieldRoundID] = struct{}{}
}

// RoundIDCleared returns if the "round_id" field was cleared in this mutation.
func (m *ConversationRunMutation) RoundIDCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldRoundID]
	return ok
}

// ResetRoundID resets all changes to the "round_id" field.
func (m *ConversationRunMutation) ResetRoundID() {
	m.round_id = nil
	delete(m.clearedFields, conversationrun.FieldRoundID)
}

// SetRunAfter sets the "run_after" field.
func (m *ConversationRunMutation) SetRunAfter(t time.Time) {
	m.run_after = &t
}

// RunAfter returns the value of the "run_after" field in the mutation.
func (m *ConversationRunMutation) RunAfter() (r time.Time, exists bool) {
	v := m.run_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAfter returns the old "run_after" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldRunAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAfter: %w", err)
	}
	return oldValue.RunAfter, nil
}

// ClearRunAfter clears the value of the "run_after" field.
func (m *ConversationRunMutation) ClearRunAfter() {
	m.run_after = nil
	m.clearedFields[conversationrun.FieldRunAfter] = struct{}{}
}

// RunAfterCleared returns if the "run_after" field was cleared in this mutation.
func (m *ConversationRunMutation) RunAfterCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldRunAfter]
	return ok
}

// ResetRunAfter resets all changes to the "run_after" field.
func (m *ConversationRunMutation) ResetRunAfter() {
	m.run_after = nil
	delete(m.clearedFields, conversationrun.FieldRunAfter)
}

// SetStartedAt sets the "started_at" field.
func (m *ConversationRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ConversationRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ConversationRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[conversationrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ConversationRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ConversationRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, conversationrun.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ConversationRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ConversationRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ConversationRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[conversationrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ConversationRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ConversationRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, conversationrun.FieldFinishedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *ConversationRunMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *ConversationRunMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *ConversationRunMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[conversationrun.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *ConversationRunMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *ConversationRunMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, conversationrun.FieldHeartbeatAt)
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (m *ConversationRunMutation) SetCancelRequestedAt(t time.Time) {
	m.cancel_requested_at = &t
}

// CancelRequestedAt returns the value of the "cancel_requested_at" field in the mutation.
func (m *ConversationRunMutation) CancelRequestedAt() (r time.Time, exists bool) {
	v := m.cancel_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequestedAt returns the old "cancel_requested_at" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldCancelRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequestedAt: %w", err)
	}
	return oldValue.CancelRequestedAt, nil
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (m *ConversationRunMutation) ClearCancelRequestedAt() {
	m.cancel_requested_at = nil
	m.clearedFields[conversationrun.FieldCancelRequestedAt] = struct{}{}
}

// CancelRequestedAtCleared returns if the "cancel_requested_at" field was cleared in this mutation.
func (m *ConversationRunMutation) CancelRequestedAtCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldCancelRequestedAt]
	return ok
}

// ResetCancelRequestedAt resets all changes to the "cancel_requested_at" field.
func (m *ConversationRunMutation) ResetCancelRequestedAt() {
	m.cancel_requested_at = nil
	delete(m.clearedFields, conversationrun.FieldCancelRequestedAt)
}

// SetError sets the "error" field.
func (m *ConversationRunMutation) SetError(value map[string]interface{}) {
	m.error = &value
}

// Error returns the value of the "error" field in the mutation.
func (m *ConversationRunMutation) Error() (r map[string]interface{}, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldError(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ConversationRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[conversationrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ConversationRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ConversationRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, conversationrun.FieldError)
}

// SetDebug sets the "debug" field.
func (m *ConversationRunMutation) SetDebug(value map[string]interface{}) {
	m.debug = &value
}

// Debug returns the value of the "debug" field in the mutation.
func (m *ConversationRunMutation) Debug() (r map[string]interface{}, exists bool) {
	v := m.debug
	if v == nil {
		return
	}
	return *v, true
}

// OldDebug returns the old "debug" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldDebug(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebug: %w", err)
	}
	return oldValue.Debug, nil
}

// ClearDebug clears the value of the "debug" field.
func (m *ConversationRunMutation) ClearDebug() {
	m.debug = nil
	m.clearedFields[conversationrun.FieldDebug] = struct{}{}
}

// DebugCleared returns if the "debug" field was cleared in this mutation.
func (m *ConversationRunMutation) DebugCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldDebug]
	return ok
}

// ResetDebug resets all changes to the "debug" field.
func (m *ConversationRunMutation) ResetDebug() {
	m.debug = nil
	delete(m.clearedFields, conversationrun.FieldDebug)
}

// SetPodID sets the "pod_id" field.
func (m *ConversationRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ConversationRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ConversationRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[conversationrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ConversationRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[conversationrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ConversationRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, conversationrun.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConversationRun entity.
// If the ConversationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *ConversationRunMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[conversationrun.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *ConversationRunMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ConversationRunMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ConversationRunMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// SetSpeakerID sets the "speaker" edge to the SpaceMembership entity by id.
func (m *ConversationRunMutation) SetSpeakerID(id string) {
	m.speaker = &id
}

// ClearSpeaker clears the "speaker" edge to the SpaceMembership entity.
func (m *ConversationRunMutation) ClearSpeaker() {
	m.clearedspeaker = true
	m.clearedFields[conversationrun.FieldSpeakerMembershipID] = struct{}{}
}

// SpeakerCleared reports if the "speaker" edge to the SpaceMembership entity was cleared.
func (m *ConversationRunMutation) SpeakerCleared() bool {
	return m.clearedspeaker
}

// SpeakerID returns the "speaker" edge ID in the mutation.
func (m *ConversationRunMutation) SpeakerID() (id string, exists bool) {
	if m.speaker != nil {
		return *m.speaker, true
	}
	return
}

// SpeakerIDs returns the "speaker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpeakerID instead. It exists only for internal usage by the builders.
func (m *ConversationRunMutation) SpeakerIDs() (ids []string) {
	if id := m.speaker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpeaker resets all changes to the "speaker" edge.
func (m *ConversationRunMutation) ResetSpeaker() {
	m.speaker = nil
	m.clearedspeaker = false
}

// Where appends a list predicates to the ConversationRunMutation builder.
func (m *ConversationRunMutation) Where(ps ...predicate.ConversationRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationRun).
func (m *ConversationRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationRunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.conversation != nil {
		fields = append(fields, conversationrun.FieldConversationID)
	}
	if m.kind != nil {
		fields = append(fields, conversationrun.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, conversationrun.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, conversationrun.FieldReason)
	}
	if m.speaker != nil {
		fields = append(fields, conversationrun.FieldSpeakerMembershipID)
	}
	if m.round_id != nil {
		fields = append(fields, conversationrun.FieldRoundID)
	}
	if m.run_after != nil {
		fields = append(fields, conversationrun.FieldRunAfter)
	}
	if m.started_at != nil {
		fields = append(fields, conversationrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, conversationrun.FieldFinishedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, conversationrun.FieldHeartbeatAt)
	}
	if m.cancel_requested_at != nil {
		fields = append(fields, conversationrun.FieldCancelRequestedAt)
	}
	if m.error != nil {
		fields = append(fields, conversationrun.FieldError)
	}
	if m.debug != nil {
		fields = append(fields, conversationrun.FieldDebug)
	}
	if m.pod_id != nil {
		fields = append(fields, conversationrun.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, conversationrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversationrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationrun.FieldConversationID:
		return m.ConversationID()
	case conversationrun.FieldKind:
		return m.Kind()
	case conversationrun.FieldStatus:
		return m.Status()
	case conversationrun.FieldReason:
		return m.Reason()
	case conversationrun.FieldSpeakerMembershipID:
		return m.SpeakerMembershipID()
	case conversationrun.FieldRoundID:
		return m.RoundID()
	case conversationrun.FieldRunAfter:
		return m.RunAfter()
	case conversationrun.FieldStartedAt:
		return m.StartedAt()
	case conversationrun.FieldFinishedAt:
		return m.FinishedAt()
	case conversationrun.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case conversationrun.FieldCancelRequestedAt:
		return m.CancelRequestedAt()
	case conversationrun.FieldError:
		return m.Error()
	case conversationrun.FieldDebug:
		return m.Debug()
	case conversationrun.FieldPodID:
		return m.PodID()
	case conversationrun.FieldCreatedAt:
		return m.CreatedAt()
	case conversationrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationrun.FieldConversationID:
		return m.OldConversationID(ctx)
	case conversationrun.FieldKind:
		return m.OldKind(ctx)
	case conversationrun.FieldStatus:
		return m.OldStatus(ctx)
	case conversationrun.FieldReason:
		return m.OldReason(ctx)
	case conversationrun.FieldSpeakerMembershipID:
		return m.OldSpeakerMembershipID(ctx)
	case conversationrun.FieldRoundID:
		return m.OldRoundID(ctx)
	case conversationrun.FieldRunAfter:
		return m.OldRunAfter(ctx)
	case conversationrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case conversationrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case conversationrun.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case conversationrun.FieldCancelRequestedAt:
		return m.OldCancelRequestedAt(ctx)
	case conversationrun.FieldError:
		return m.OldError(ctx)
	case conversationrun.FieldDebug:
		return m.OldDebug(ctx)
	case conversationrun.FieldPodID:
		return m.OldPodID(ctx)
	case conversationrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversationrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationrun.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case conversationrun.FieldKind:
		v, ok := value.(conversationrun.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case conversationrun.FieldStatus:
		v, ok := value.(conversationrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversationrun.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case conversationrun.FieldSpeakerMembershipID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerMembershipID(v)
		return nil
	case conversationrun.FieldRoundID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundID(v)
		return nil
	case conversationrun.FieldRunAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAfter(v)
		return nil
	case conversationrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case conversationrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case conversationrun.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case conversationrun.FieldCancelRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequestedAt(v)
		return nil
	case conversationrun.FieldError:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case conversationrun.FieldDebug:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebug(v)
		return nil
	case conversationrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case conversationrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversationrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationrun.FieldReason) {
		fields = append(fields, conversationrun.FieldReason)
	}
	if m.FieldCleared(conversationrun.FieldRoundID) {
		fields = append(fields, conversationrun.FieldRoundID)
	}
	if m.FieldCleared(conversationrun.FieldRunAfter) {
		fields = append(fields, conversationrun.FieldRunAfter)
	}
	if m.FieldCleared(conversationrun.FieldStartedAt) {
		fields = append(fields, conversationrun.FieldStartedAt)
	}
	if m.FieldCleared(conversationrun.FieldFinishedAt) {
		fields = append(fields, conversationrun.FieldFinishedAt)
	}
	if m.FieldCleared(conversationrun.FieldHeartbeatAt) {
		fields = append(fields, conversationrun.FieldHeartbeatAt)
	}
	if m.FieldCleared(conversationrun.FieldCancelRequestedAt) {
		fields = append(fields, conversationrun.FieldCancelRequestedAt)
	}
	if m.FieldCleared(conversationrun.FieldError) {
		fields = append(fields, conversationrun.FieldError)
	}
	if m.FieldCleared(conversationrun.FieldDebug) {
		fields = append(fields, conversationrun.FieldDebug)
	}
	if m.FieldCleared(conversationrun.FieldPodID) {
		fields = append(fields, conversationrun.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationRunMutation) ClearField(name string) error {
	switch name {
	case conversationrun.FieldReason:
		m.ClearReason()
		return nil
	case conversationrun.FieldRoundID:
		m.ClearRoundID()
		return nil
	case conversationrun.FieldRunAfter:
		m.ClearRunAfter()
		return nil
	case conversationrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case conversationrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case conversationrun.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case conversationrun.FieldCancelRequestedAt:
		m.ClearCancelRequestedAt()
		return nil
	case conversationrun.FieldError:
		m.ClearError()
		return nil
	case conversationrun.FieldDebug:
		m.ClearDebug()
		return nil
	case conversationrun.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown ConversationRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationRunMutation) ResetField(name string) error {
	switch name {
	case conversationrun.FieldConversationID:
		m.ResetConversationID()
		return nil
	case conversationrun.FieldKind:
		m.ResetKind()
		return nil
	case conversationrun.FieldStatus:
		m.ResetStatus()
		return nil
	case conversationrun.FieldReason:
		m.ResetReason()
		return nil
	case conversationrun.FieldSpeakerMembershipID:
		m.ResetSpeakerMembershipID()
		return nil
	case conversationrun.FieldRoundID:
		m.ResetRoundID()
		return nil
	case conversationrun.FieldRunAfter:
		m.ResetRunAfter()
		return nil
	case conversationrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case conversationrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case conversationrun.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case conversationrun.FieldCancelRequestedAt:
		m.ResetCancelRequestedAt()
		return nil
	case conversationrun.FieldError:
		m.ResetError()
		return nil
	case conversationrun.FieldDebug:
		m.ResetDebug()
		return nil
	case conversationrun.FieldPodID:
		m.ResetPodID()
		return nil
	case conversationrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversationrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conversation != nil {
		edges = append(edges, conversationrun.EdgeConversation)
	}
	if m.speaker != nil {
		edges = append(edges, conversationrun.EdgeSpeaker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationrun.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case conversationrun.EdgeSpeaker:
		if id := m.speaker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconversation {
		edges = append(edges, conversationrun.EdgeConversation)
	}
	if m.clearedspeaker {
		edges = append(edges, conversationrun.EdgeSpeaker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationRunMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationrun.EdgeConversation:
		return m.clearedconversation
	case conversationrun.EdgeSpeaker:
		return m.clearedspeaker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationRunMutation) ClearEdge(name string) error {
	switch name {
	case conversationrun.EdgeConversation:
		m.ClearConversation()
		return nil
	case conversationrun.EdgeSpeaker:
		m.ClearSpeaker()
		return nil
	}
	return fmt.Errorf("unknown ConversationRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationRunMutation) ResetEdge(name string) error {
	switch name {
	case conversationrun.EdgeConversation:
		m.ResetConversation()
		return nil
	case conversationrun.EdgeSpeaker:
		m.ResetSpeaker()
		return nil
	}
	return fmt.Errorf("unknown ConversationRun edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	channel             *string
	payload             *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Event, error)
	predicates          []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *EventMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *EventMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *EventMutation) ResetConversationID() {
	m.conversation = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *EventMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[event.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *EventMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *EventMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.conversation != nil {
		fields = append(fields, event.FieldConversationID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldConversationID:
		return m.ConversationID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldConversationID:
		return m.OldConversationID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldConversationID:
		m.ResetConversationID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, event.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, event.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	seq                   *int
	addseq                *int
	role                  *message.Role
	visibility            *message.Visibility
	content               *string
	text_content_id       *string
	active_swipe_id       *string
	swipes_count          *int
	addswipes_count       *int
	speaker_membership_id *string
	run_id                *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	conversation          *string
	clearedconversation   bool
	swipes                map[string]struct{}
	removedswipes         map[string]struct{}
	clearedswipes         bool
	done                  bool
	oldValue              func(context.Context) (*Message, error)
	predicates            []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetSeq sets the "seq" field.
func (m *MessageMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *MessageMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *MessageMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *MessageMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *MessageMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetVisibility sets the "visibility" field.
func (m *MessageMutation) SetVisibility(value message.Visibility) {
	m.visibility = &value
}

// Visibility returns the value of the "visibility" field in the mutation.
func (m *MessageMutation) Visibility() (r message.Visibility, exists bool) {
	v := m.visibility
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibility returns the old "visibility" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldVisibility(ctx context.Context) (v message.Visibility, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibility: %w", err)
	}
	return oldValue.Visibility, nil
}

// ResetVisibility resets all changes to the "visibility" field.
func (m *MessageMutation) ResetVisibility() {
	m.visibility = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetTextContentID sets the "text_content_id" field.
func (m *MessageMutation) SetTextContentID(s string) {
	m.text_content_id = &s
}

// TextContentID returns the value of the "text_content_id" field in the mutation.
func (m *MessageMutation) TextContentID() (r string, exists bool) {
	v := m.text_content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTextContentID returns the old "text_content_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTextContentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextContentID: %w", err)
	}
	return oldValue.TextContentID, nil
}

// ClearTextContentID clears the value of the "text_content_id" field.
func (m *MessageMutation) ClearTextContentID() {
	m.text_content_id = nil
	m.clearedFields[message.FieldTextContentID] = struct{}{}
}

// TextContentIDCleared returns if the "text_content_id" field was cleared in this mutation.
func (m *MessageMutation) TextContentIDCleared() bool {
	_, ok := m.clearedFields[message.FieldTextContentID]
	return ok
}

// ResetTextContentID resets all changes to the "text_content_id" field.
func (m *MessageMutation) ResetTextContentID() {
	m.text_content_id = nil
	delete(m.clearedFields, message.FieldTextContentID)
}

// SetActiveSwipeID sets the "active_swipe_id" field.
func (m *MessageMutation) SetActiveSwipeID(s string) {
	m.active_swipe_id = &s
}

// ActiveSwipeID returns the value of the "active_swipe_id" field in the mutation.
func (m *MessageMutation) ActiveSwipeID() (r string, exists bool) {
	v := m.active_swipe_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveSwipeID returns the old "active_swipe_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldActiveSwipeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveSwipeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveSwipeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveSwipeID: %w", err)
	}
	return oldValue.ActiveSwipeID, nil
}

// ClearActiveSwipeID clears the value of the "active_swipe_id" field.
func (m *MessageMutation) ClearActiveSwipeID() {
	m.active_swipe_id = nil
	m.clearedFields[message.FieldActiveSwipeID] = struct{}{}
}

// ActiveSwipeIDCleared returns if the "active_swipe_id" field was cleared in this mutation.
func (m *MessageMutation) ActiveSwipeIDCleared() bool {
	_, ok := m.clearedFields[message.FieldActiveSwipeID]
	return ok
}

// ResetActiveSwipeID resets all changes to the "active_swipe_id" field.
func (m *MessageMutation) ResetActiveSwipeID() {
	m.active_swipe_id = nil
	delete(m.clearedFields, message.FieldActiveSwipeID)
}

// SetSwipesCount sets the "swipes_count" field.
func (m *MessageMutation) SetSwipesCount(i int) {
	m.swipes_count = &i
	m.addswipes_count = nil
}

// SwipesCount returns the value of the "swipes_count" field in the mutation.
func (m *MessageMutation) SwipesCount() (r int, exists bool) {
	v := m.swipes_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSwipesCount returns the old "swipes_count" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSwipesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwipesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwipesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwipesCount: %w", err)
	}
	return oldValue.SwipesCount, nil
}

// AddSwipesCount adds i to the "swipes_count" field.
func (m *MessageMutation) AddSwipesCount(i int) {
	if m.addswipes_count != nil {
		*m.addswipes_count += i
	} else {
		m.addswipes_count = &i
	}
}

// AddedSwipesCount returns the value that was added to the "swipes_count" field in this mutation.
func (m *MessageMutation) AddedSwipesCount() (r int, exists bool) {
	v := m.addswipes_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSwipesCount resets all changes to the "swipes_count" field.
func (m *MessageMutation) ResetSwipesCount() {
	m.swipes_count = nil
	m.addswipes_count = nil
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (m *MessageMutation) SetSpeakerMembershipID(s string) {
	m.speaker_membership_id = &s
}

// SpeakerMembershipID returns the value of the "speaker_membership_id" field in the mutation.
func (m *MessageMutation) SpeakerMembershipID() (r string, exists bool) {
	v := m.speaker_membership_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeakerMembershipID returns the old "speaker_membership_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSpeakerMembershipID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeakerMembershipID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeakerMembershipID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeakerMembershipID: %w", err)
	}
	return oldValue.SpeakerMembershipID, nil
}

// ClearSpeakerMembershipID clears the value of the "speaker_membership_id" field.
func (m *MessageMutation) ClearSpeakerMembershipID() {
	m.speaker_membership_id = nil
	m.clearedFields[message.FieldSpeakerMembershipID] = struct{}{}
}

// SpeakerMembershipIDCleared returns if the "speaker_membership_id" field was cleared in this mutation.
func (m *MessageMutation) SpeakerMembershipIDCleared() bool {
	_, ok := m.clearedFields[message.FieldSpeakerMembershipID]
	return ok
}

// ResetSpeakerMembershipID resets all changes to the "speaker_membership_id" field.
func (m *MessageMutation) ResetSpeakerMembershipID() {
	m.speaker_membership_id = nil
	delete(m.clearedFields, message.FieldSpeakerMembershipID)
}

// SetRunID sets the "run_id" field.
func (m *MessageMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *MessageMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *MessageMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[message.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *MessageMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[message.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *MessageMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, message.FieldRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// AddSwipeIDs adds the "swipes" edge to the MessageSwipe entity by ids.
func (m *MessageMutation) AddSwipeIDs(ids ...string) {
	if m.swipes == nil {
		m.swipes = make(map[string]struct{})
	}
	for i := range ids {
		m.swipes[ids[i]] = struct{}{}
	}
}

// ClearSwipes clears the "swipes" edge to the MessageSwipe entity.
func (m *MessageMutation) ClearSwipes() {
	m.clearedswipes = true
}

// SwipesCleared reports if the "swipes" edge to the MessageSwipe entity was cleared.
func (m *MessageMutation) SwipesCleared() bool {
	return m.clearedswipes
}

// RemoveSwipeIDs removes the "swipes" edge to the MessageSwipe entity by IDs.
func (m *MessageMutation) RemoveSwipeIDs(ids ...string) {
	if m.removedswipes == nil {
		m.removedswipes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.swipes, ids[i])
		m.removedswipes[ids[i]] = struct{}{}
	}
}

// RemovedSwipes returns the removed IDs of the "swipes" edge to the MessageSwipe entity.
func (m *MessageMutation) RemovedSwipesIDs() (ids []string) {
	for id := range m.removedswipes {
		ids = append(ids, id)
	}
	return
}

// SwipesIDs returns the "swipes" edge IDs in the mutation.
func (m *MessageMutation) SwipesIDs() (ids []string) {
	for id := range m.swipes {
		ids = append(ids, id)
	}
	return
}

// ResetSwipes resets all changes to the "swipes" edge.
func (m *MessageMutation) ResetSwipes() {
	m.swipes = nil
	m.clearedswipes = false
	m.removedswipes = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.seq != nil {
		fields = append(fields, message.FieldSeq)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.visibility != nil {
		fields = append(fields, message.FieldVisibility)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.text_content_id != nil {
		fields = append(fields, message.FieldTextContentID)
	}
	if m.active_swipe_id != nil {
		fields = append(fields, message.FieldActiveSwipeID)
	}
	if m.swipes_count != nil {
		fields = append(fields, message.FieldSwipesCount)
	}
	if m.speaker_membership_id != nil {
		fields = append(fields, message.FieldSpeakerMembershipID)
	}
	if m.run_id != nil {
		fields = append(fields, message.FieldRunID)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldSeq:
		return m.Seq()
	case message.FieldRole:
		return m.Role()
	case message.FieldVisibility:
		return m.Visibility()
	case message.FieldContent:
		return m.Content()
	case message.FieldTextContentID:
		return m.TextContentID()
	case message.FieldActiveSwipeID:
		return m.ActiveSwipeID()
	case message.FieldSwipesCount:
		return m.SwipesCount()
	case message.FieldSpeakerMembershipID:
		return m.SpeakerMembershipID()
	case message.FieldRunID:
		return m.RunID()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldSeq:
		return m.OldSeq(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldVisibility:
		return m.OldVisibility(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldTextContentID:
		return m.OldTextContentID(ctx)
	case message.FieldActiveSwipeID:
		return m.OldActiveSwipeID(ctx)
	case message.FieldSwipesCount:
		return m.OldSwipesCount(ctx)
	case message.FieldSpeakerMembershipID:
		return m.OldSpeakerMembershipID(ctx)
	case message.FieldRunID:
		return m.OldRunID(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldVisibility:
		v, ok := value.(message.Visibility)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibility(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldTextContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextContentID(v)
		return nil
	case message.FieldActiveSwipeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveSwipeID(v)
		return nil
	case message.FieldSwipesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwipesCount(v)
		return nil
	case message.FieldSpeakerMembershipID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeakerMembershipID(v)
		return nil
	case message.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, message.FieldSeq)
	}
	if m.addswipes_count != nil {
		fields = append(fields, message.FieldSwipesCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSeq:
		return m.AddedSeq()
	case message.FieldSwipesCount:
		return m.AddedSwipesCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case message.FieldSwipesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSwipesCount(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldTextContentID) {
		fields = append(fields, message.FieldTextContentID)
	}
	if m.FieldCleared(message.FieldActiveSwipeID) {
		fields = append(fields, message.FieldActiveSwipeID)
	}
	if m.FieldCleared(message.FieldSpeakerMembershipID) {
		fields = append(fields, message.FieldSpeakerMembershipID)
	}
	if m.FieldCleared(message.FieldRunID) {
		fields = append(fields, message.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldTextContentID:
		m.ClearTextContentID()
		return nil
	case message.FieldActiveSwipeID:
		m.ClearActiveSwipeID()
		return nil
	case message.FieldSpeakerMembershipID:
		m.ClearSpeakerMembershipID()
		return nil
	case message.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldSeq:
		m.ResetSeq()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldVisibility:
		m.ResetVisibility()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldTextContentID:
		m.ResetTextContentID()
		return nil
	case message.FieldActiveSwipeID:
		m.ResetActiveSwipeID()
		return nil
	case message.FieldSwipesCount:
		m.ResetSwipesCount()
		return nil
	case message.FieldSpeakerMembershipID:
		m.ResetSpeakerMembershipID()
		return nil
	case message.FieldRunID:
		m.ResetRunID()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	if m.swipes != nil {
		edges = append(edges, message.EdgeSwipes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	case message.EdgeSwipes:
		ids := make([]ent.Value, 0, len(m.swipes))
		for id := range m.swipes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedswipes != nil {
		edges = append(edges, message.EdgeSwipes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSwipes:
		ids := make([]ent.Value, 0, len(m.removedswipes))
		for id := range m.removedswipes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	if m.clearedswipes {
		edges = append(edges, message.EdgeSwipes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	case message.EdgeSwipes:
		return m.clearedswipes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	case message.EdgeSwipes:
		m.ResetSwipes()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// MessageSwipeMutation represents an operation that mutates the MessageSwipe nodes in the graph.
type MessageSwipeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	position        *int
	addposition     *int
	content         *string
	text_content_id *string
	run_id          *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	message         *string
	clearedmessage  bool
	done            bool
	oldValue        func(context.Context) (*MessageSwipe, error)
	predicates      []predicate.MessageSwipe
}

var _ ent.Mutation = (*MessageSwipeMutation)(nil)

// messageswipeOption allows management of the mutation configuration using functional options.
type messageswipeOption func(*MessageSwipeMutation)

// newMessageSwipeMutation creates new mutation for the MessageSwipe entity.
func newMessageSwipeMutation(c config, op Op, opts ...messageswipeOption) *MessageSwipeMutation {
	m := &MessageSwipeMutation{
		config:        c,
		op:            op,
		typ:           TypeMessageSwipe,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageSwipeID sets the ID field of the mutation.
func withMessageSwipeID(id string) messageswipeOption {
	return func(m *MessageSwipeMutation) {
		var (
			err   error
			once  sync.Once
			value *MessageSwipe
		)
		m.oldValue = func(ctx context.Context) (*MessageSwipe, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MessageSwipe.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessageSwipe sets the old MessageSwipe of the mutation.
func withMessageSwipe(node *MessageSwipe) messageswipeOption {
	return func(m *MessageSwipeMutation) {
		m.oldValue = func(context.Context) (*MessageSwipe, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageSwipeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageSwipeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MessageSwipe entities.
func (m *MessageSwipeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageSwipeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageSwipeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MessageSwipe.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *MessageSwipeMutation) SetMessageID(s string) {
	m.message = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageSwipeMutation) MessageID() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the MessageSwipe entity.
// If the MessageSwipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageSwipeMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageSwipeMutation) ResetMessageID() {
	m.message = nil
}

// SetPosition sets the "position" field.
func (m *MessageSwipeMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *MessageSwipeMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the MessageSwipe entity.
// If the MessageSwipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageSwipeMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *MessageSwipeMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *MessageSwipeMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *MessageSwipeMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetContent sets the "content" field.
func (m *MessageSwipeMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageSwipeMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MessageSwipe entity.
// If the MessageSwipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageSwipeMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageSwipeMutation) ResetContent() {
	m.content = nil
}

// SetTextContentID sets the "text_content_id" field.
func (m *MessageSwipeMutation) SetTextContentID(s string) {
	m.text_content_id = &s
}

// TextContentID returns the value of the "text_content_id" field in the mutation.
func (m *MessageSwipeMutation) TextContentID() (r string, exists bool) {
	v := m.text_content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTextContentID returns the old "text_content_id" field's value of the MessageSwipe entity.
// If the MessageSwipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageSwipeMutation) OldTextContentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextContentID: %w", err)
	}
	return oldValue.TextContentID, nil
}

// ClearTextContentID clears the value of the "text_content_id" field.
func (m *MessageSwipeMutation) ClearTextContentID() {
	m.text_content_id = nil
	m.clearedFields[messageswipe.FieldTextContentID] = struct{}{}
}

// TextContentIDCleared returns if the "text_content_id" field was cleared in this mutation.
func (m *MessageSwipeMutation) TextContentIDCleared() bool {
	_, ok := m.clearedFields[messageswipe.FieldTextContentID]
	return ok
}

// ResetTextContentID resets all changes to the "text_content_id" field.
func (m *MessageSwipeMutation) ResetTextContentID() {
	m.text_content_id = nil
	delete(m.clearedFields, messageswipe.FieldTextContentID)
}

// SetRunID sets the "run_id" field.
func (m *MessageSwipeMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *MessageSwipeMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the MessageSwipe entity.
// If the MessageSwipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageSwipeMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *MessageSwipeMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[messageswipe.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *MessageSwipeMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[messageswipe.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *MessageSwipeMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, messageswipe.FieldRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageSwipeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageSwipeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MessageSwipe entity.
// If the MessageSwipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageSwipeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageSwipeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMessage clears the "message" edge to the Message entity.
func (m *MessageSwipeMutation) ClearMessage() {
	m.clearedmessage = true
	m.clearedFields[messageswipe.FieldMessageID] = struct{}{}
}

// MessageCleared reports if the "message" edge to the Message entity was cleared.
func (m *MessageSwipeMutation) MessageCleared() bool {
	return m.clearedmessage
}

// MessageIDs returns the "message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MessageID instead. It exists only for internal usage by the builders.
func (m *MessageSwipeMutation) MessageIDs() (ids []string) {
	if id := m.message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMessage resets all changes to the "message" edge.
func (m *MessageSwipeMutation) ResetMessage() {
	m.message = nil
	m.clearedmessage = false
}

// Where appends a list predicates to the MessageSwipeMutation builder.
func (m *MessageSwipeMutation) Where(ps ...predicate.MessageSwipe) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageSwipeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageSwipeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MessageSwipe, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageSwipeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageSwipeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MessageSwipe).
func (m *MessageSwipeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageSwipeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.message != nil {
		fields = append(fields, messageswipe.FieldMessageID)
	}
	if m.position != nil {
		fields = append(fields, messageswipe.FieldPosition)
	}
	if m.content != nil {
		fields = append(fields, messageswipe.FieldContent)
	}
	if m.text_content_id != nil {
		fields = append(fields, messageswipe.FieldTextContentID)
	}
	if m.run_id != nil {
		fields = append(fields, messageswipe.FieldRunID)
	}
	if m.created_at != nil {
		fields = append(fields, messageswipe.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageSwipeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case messageswipe.FieldMessageID:
		return m.MessageID()
	case messageswipe.FieldPosition:
		return m.Position()
	case messageswipe.FieldContent:
		return m.Content()
	case messageswipe.FieldTextContentID:
		return m.TextContentID()
	case messageswipe.FieldRunID:
		return m.RunID()
	case messageswipe.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageSwipeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case messageswipe.FieldMessageID:
		return m.OldMessageID(ctx)
	case messageswipe.FieldPosition:
		return m.OldPosition(ctx)
	case messageswipe.FieldContent:
		return m.OldContent(ctx)
	case messageswipe.FieldTextContentID:
		return m.OldTextContentID(ctx)
	case messageswipe.FieldRunID:
		return m.OldRunID(ctx)
	case messageswipe.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MessageSwipe field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageSwipeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case messageswipe.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case messageswipe.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case messageswipe.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case messageswipe.FieldTextContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextContentID(v)
		return nil
	case messageswipe.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case messageswipe.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MessageSwipe field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageSwipeMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, messageswipe.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageSwipeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case messageswipe.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageSwipeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case messageswipe.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown MessageSwipe numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageSwipeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(messageswipe.FieldTextContentID) {
		fields = append(fields, messageswipe.FieldTextContentID)
	}
	if m.FieldCleared(messageswipe.FieldRunID) {
		fields = append(fields, messageswipe.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageSwipeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageSwipeMutation) ClearField(name string) error {
	switch name {
	case messageswipe.FieldTextContentID:
		m.ClearTextContentID()
		return nil
	case messageswipe.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown MessageSwipe nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageSwipeMutation) ResetField(name string) error {
	switch name {
	case messageswipe.FieldMessageID:
		m.ResetMessageID()
		return nil
	case messageswipe.FieldPosition:
		m.ResetPosition()
		return nil
	case messageswipe.FieldContent:
		m.ResetContent()
		return nil
	case messageswipe.FieldTextContentID:
		m.ResetTextContentID()
		return nil
	case messageswipe.FieldRunID:
		m.ResetRunID()
		return nil
	case messageswipe.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MessageSwipe field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageSwipeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message != nil {
		edges = append(edges, messageswipe.EdgeMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageSwipeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case messageswipe.EdgeMessage:
		if id := m.message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageSwipeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageSwipeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageSwipeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage {
		edges = append(edges, messageswipe.EdgeMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageSwipeMutation) EdgeCleared(name string) bool {
	switch name {
	case messageswipe.EdgeMessage:
		return m.clearedmessage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageSwipeMutation) ClearEdge(name string) error {
	switch name {
	case messageswipe.EdgeMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown MessageSwipe unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageSwipeMutation) ResetEdge(name string) error {
	switch name {
	case messageswipe.EdgeMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown MessageSwipe edge %s", name)
}

// RoundParticipantMutation represents an operation that mutates the RoundParticipant nodes in the graph.
type RoundParticipantMutation struct {
	config
	op            Op
	typ           string
	id            *string
	membership_id *string
	position      *int
	addposition   *int
	status        *roundparticipant.Status
	clearedFields map[string]struct{}
	round         *string
	clearedround  bool
	done          bool
	oldValue      func(context.Context) (*RoundParticipant, error)
	predicates    []predicate.RoundParticipant
}

var _ ent.Mutation = (*RoundParticipantMutation)(nil)

// roundparticipantOption allows management of the mutation configuration using functional options.
type roundparticipantOption func(*RoundParticipantMutation)

// newRoundParticipantMutation creates new mutation for the RoundParticipant entity.
func newRoundParticipantMutation(c config, op Op, opts ...roundparticipantOption) *RoundParticipantMutation {
	m := &RoundParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeRoundParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoundParticipantID sets the ID field of the mutation.
func withRoundParticipantID(id string) roundparticipantOption {
	return func(m *RoundParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *RoundParticipant
		)
		m.oldValue = func(ctx context.Context) (*RoundParticipant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoundParticipant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoundParticipant sets the old RoundParticipant of the mutation.
func withRoundParticipant(node *RoundParticipant) roundparticipantOption {
	return func(m *RoundParticipantMutation) {
		m.oldValue = func(context.Context) (*RoundParticipant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoundParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoundParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoundParticipant entities.
func (m *RoundParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoundParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoundParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoundParticipant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoundID sets the "round_id" field.
func (m *RoundParticipantMutation) SetRoundID(s string) {
	m.round = &s
}

// RoundID returns the value of the "round_id" field in the mutation.
func (m *RoundParticipantMutation) RoundID() (r string, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundID returns the old "round_id" field's value of the RoundParticipant entity.
// If the RoundParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundParticipantMutation) OldRoundID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundID: %w", err)
	}
	return oldValue.RoundID, nil
}

// ResetRoundID resets all changes to the "round_id" field.
func (m *RoundParticipantMutation) ResetRoundID() {
	m.round = nil
}

// SetMembershipID sets the "membership_id" field.
func (m *RoundParticipantMutation) SetMembershipID(s string) {
	m.membership_id = &s
}

// MembershipID returns the value of the "membership_id" field in the mutation.
func (m *RoundParticipantMutation) MembershipID() (r string, exists bool) {
	v := m.membership_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMembershipID returns the old "membership_id" field's value of the RoundParticipant entity.
// If the RoundParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundParticipantMutation) OldMembershipID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembershipID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembershipID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembershipID: %w", err)
	}
	return oldValue.MembershipID, nil
}

// ResetMembershipID resets all changes to the "membership_id" field.
func (m *RoundParticipantMutation) ResetMembershipID() {
	m.membership_id = nil
}

// SetPosition sets the "position" field.
func (m *RoundParticipantMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *RoundParticipantMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the RoundParticipant entity.
// If the RoundParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundParticipantMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *RoundParticipantMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *RoundParticipantMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *RoundParticipantMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStatus sets the "status" field.
func (m *RoundParticipantMutation) SetStatus(r roundparticipant.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RoundParticipantMutation) Status() (r roundparticipant.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RoundParticipant entity.
// If the RoundParticipant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundParticipantMutation) OldStatus(ctx context.Context) (v roundparticipant.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RoundParticipantMutation) ResetStatus() {
	m.status = nil
}

// ClearRound clears the "round" edge to the ConversationRound entity.
func (m *RoundParticipantMutation) ClearRound() {
	m.clearedround = true
	m.clearedFields[roundparticipant.FieldRoundID] = struct{}{}
}

// RoundCleared reports if the "round" edge to the ConversationRound entity was cleared.
func (m *RoundParticipantMutation) RoundCleared() bool {
	return m.clearedround
}

// RoundIDs returns the "round" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoundID instead. It exists only for internal usage by the builders.
func (m *RoundParticipantMutation) RoundIDs() (ids []string) {
	if id := m.round; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRound resets all changes to the "round" edge.
func (m *RoundParticipantMutation) ResetRound() {
	m.round = nil
	m.clearedround = false
}

// Where appends a list predicates to the RoundParticipantMutation builder.
func (m *RoundParticipantMutation) Where(ps ...predicate.RoundParticipant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoundParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoundParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoundParticipant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoundParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoundParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoundParticipant).
func (m *RoundParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoundParticipantMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.round != nil {
		fields = append(fields, roundparticipant.FieldRoundID)
	}
	if m.membership_id != nil {
		fields = append(fields, roundparticipant.FieldMembershipID)
	}
	if m.position != nil {
		fields = append(fields, roundparticipant.FieldPosition)
	}
	if m.status != nil {
		fields = append(fields, roundparticipant.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoundParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roundparticipant.FieldRoundID:
		return m.RoundID()
	case roundparticipant.FieldMembershipID:
		return m.MembershipID()
	case roundparticipant.FieldPosition:
		return m.Position()
	case roundparticipant.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoundParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roundparticipant.FieldRoundID:
		return m.OldRoundID(ctx)
	case roundparticipant.FieldMembershipID:
		return m.OldMembershipID(ctx)
	case roundparticipant.FieldPosition:
		return m.OldPosition(ctx)
	case roundparticipant.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown RoundParticipant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoundParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roundparticipant.FieldRoundID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundID(v)
		return nil
	case roundparticipant.FieldMembershipID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembershipID(v)
		return nil
	case roundparticipant.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case roundparticipant.FieldStatus:
		v, ok := value.(roundparticipant.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown RoundParticipant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoundParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, roundparticipant.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoundParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roundparticipant.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoundParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roundparticipant.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown RoundParticipant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoundParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoundParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoundParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RoundParticipant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoundParticipantMutation) ResetField(name string) error {
	switch name {
	case roundparticipant.FieldRoundID:
		m.ResetRoundID()
		return nil
	case roundparticipant.FieldMembershipID:
		m.ResetMembershipID()
		return nil
	case roundparticipant.FieldPosition:
		m.ResetPosition()
		return nil
	case roundparticipant.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown RoundParticipant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoundParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.round != nil {
		edges = append(edges, roundparticipant.EdgeRound)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoundParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case roundparticipant.EdgeRound:
		if id := m.round; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoundParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoundParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoundParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedround {
		edges = append(edges, roundparticipant.EdgeRound)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoundParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case roundparticipant.EdgeRound:
		return m.clearedround
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoundParticipantMutation) ClearEdge(name string) error {
	switch name {
	case roundparticipant.EdgeRound:
		m.ClearRound()
		return nil
	}
	return fmt.Errorf("unknown RoundParticipant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoundParticipantMutation) ResetEdge(name string) error {
	switch name {
	case roundparticipant.EdgeRound:
		m.ResetRound()
		return nil
	}
	return fmt.Errorf("unknown RoundParticipant edge %s", name)
}

// SpaceMutation represents an operation that mutates the Space nodes in the graph.
type SpaceMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	reply_order                *space.ReplyOrder
	allow_self_responses       *bool
	auto_mode_enabled          *bool
	auto_mode_delay_ms         *int
	addauto_mode_delay_ms      *int
	input_policy               *space.InputPolicy
	user_turn_debounce_ms      *int
	adduser_turn_debounce_ms   *int
	card_handling_mode         *string
	relax_message_trim         *bool
	token_limit                *int64
	addtoken_limit             *int64
	prompt_tokens_total        *int64
	addprompt_tokens_total     *int64
	completion_tokens_total    *int64
	addcompletion_tokens_total *int64
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	memberships                map[string]struct{}
	removedmemberships         map[string]struct{}
	clearedmemberships         bool
	conversations              map[string]struct{}
	removedconversations       map[string]struct{}
	clearedconversations       bool
	done                       bool
	oldValue                   func(context.Context) (*Space, error)
	predicates                 []predicate.Space
}

var _ ent.Mutation = (*SpaceMutation)(nil)

// spaceOption allows management of the mutation configuration using functional options.
type spaceOption func(*SpaceMutation)

// newSpaceMutation creates new mutation for the Space entity.
func newSpaceMutation(c config, op Op, opts ...spaceOption) *SpaceMutation {
	m := &SpaceMutation{
		config:        c,
		op:            op,
		typ:           TypeSpace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpaceID sets the ID field of the mutation.
func withSpaceID(id string) spaceOption {
	return func(m *SpaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Space
		)
		m.oldValue = func(ctx context.Context) (*Space, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Space.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpace sets the old Space of the mutation.
func withSpace(node *Space) spaceOption {
	return func(m *SpaceMutation) {
		m.oldValue = func(context.Context) (*Space, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Space entities.
func (m *SpaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Space.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SpaceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SpaceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SpaceMutation) ResetName() {
	m.name = nil
}

// SetReplyOrder sets the "reply_order" field.
func (m *SpaceMutation) SetReplyOrder(so space.ReplyOrder) {
	m.reply_order = &so
}

// ReplyOrder returns the value of the "reply_order" field in the mutation.
func (m *SpaceMutation) ReplyOrder() (r space.ReplyOrder, exists bool) {
	v := m.reply_order
	if v == nil {
		return
	}
	return *v, true
}

// OldReplyOrder returns the old "reply_order" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldReplyOrder(ctx context.Context) (v space.ReplyOrder, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplyOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplyOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplyOrder: %w", err)
	}
	return oldValue.ReplyOrder, nil
}

// ResetReplyOrder resets all changes to the "reply_order" field.
func (m *SpaceMutation) ResetReplyOrder() {
	m.reply_order = nil
}

// SetAllowSelfResponses sets the "allow_self_responses" field.
func (m *SpaceMutation) SetAllowSelfResponses(b bool) {
	m.allow_self_responses = &b
}

// AllowSelfResponses returns the value of the "allow_self_responses" field in the mutation.
func (m *SpaceMutation) AllowSelfResponses() (r bool, exists bool) {
	v := m.allow_self_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowSelfResponses returns the old "allow_self_responses" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldAllowSelfResponses(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowSelfResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowSelfResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowSelfResponses: %w", err)
	}
	return oldValue.AllowSelfResponses, nil
}

// ResetAllowSelfResponses resets all changes to the "allow_self_responses" field.
func (m *SpaceMutation) ResetAllowSelfResponses() {
	m.allow_self_responses = nil
}

// SetAutoModeEnabled sets the "auto_mode_enabled" field.
func (m *SpaceMutation) SetAutoModeEnabled(b bool) {
	m.auto_mode_enabled = &b
}

// AutoModeEnabled returns the value of the "auto_mode_enabled" field in the mutation.
func (m *SpaceMutation) AutoModeEnabled() (r bool, exists bool) {
	v := m.auto_mode_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoModeEnabled returns the old "auto_mode_enabled" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldAutoModeEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoModeEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoModeEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoModeEnabled: %w", err)
	}
	return oldValue.AutoModeEnabled, nil
}

// ResetAutoModeEnabled resets all changes to the "auto_mode_enabled" field.
func (m *SpaceMutation) ResetAutoModeEnabled() {
	m.auto_mode_enabled = nil
}

// SetAutoModeDelayMs sets the "auto_mode_delay_ms" field.
func (m *SpaceMutation) SetAutoModeDelayMs(i int) {
	m.auto_mode_delay_ms = &i
	m.addauto_mode_delay_ms = nil
}

// AutoModeDelayMs returns the value of the "auto_mode_delay_ms" field in the mutation.
func (m *SpaceMutation) AutoModeDelayMs() (r int, exists bool) {
	v := m.auto_mode_delay_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoModeDelayMs returns the old "auto_mode_delay_ms" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldAutoModeDelayMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoModeDelayMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoModeDelayMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoModeDelayMs: %w", err)
	}
	return oldValue.AutoModeDelayMs, nil
}

// AddAutoModeDelayMs adds i to the "auto_mode_delay_ms" field.
func (m *SpaceMutation) AddAutoModeDelayMs(i int) {
	if m.addauto_mode_delay_ms != nil {
		*m.addauto_mode_delay_ms += i
	} else {
		m.addauto_mode_delay_ms = &i
	}
}

// AddedAutoModeDelayMs returns the value that was added to the "auto_mode_delay_ms" field in this mutation.
func (m *SpaceMutation) AddedAutoModeDelayMs() (r int, exists bool) {
	v := m.addauto_mode_delay_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAutoModeDelayMs resets all changes to the "auto_mode_delay_ms" field.
func (m *SpaceMutation) ResetAutoModeDelayMs() {
	m.auto_mode_delay_ms = nil
	m.addauto_mode_delay_ms = nil
}

// SetInputPolicy sets the "input_policy" field.
func (m *SpaceMutation) SetInputPolicy(sp space.InputPolicy) {
	m.input_policy = &sp
}

// InputPolicy returns the value of the "input_policy" field in the mutation.
func (m *SpaceMutation) InputPolicy() (r space.InputPolicy, exists bool) {
	v := m.input_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldInputPolicy returns the old "input_policy" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldInputPolicy(ctx context.Context) (v space.InputPolicy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputPolicy: %w", err)
	}
	return oldValue.InputPolicy, nil
}

// ResetInputPolicy resets all changes to the "input_policy" field.
func (m *SpaceMutation) ResetInputPolicy() {
	m.input_policy = nil
}

// SetUserTurnDebounceMs sets the "user_turn_debounce_ms" field.
func (m *SpaceMutation) SetUserTurnDebounceMs(i int) {
	m.user_turn_debounce_ms = &i
	m.adduser_turn_debounce_ms = nil
}

// UserTurnDebounceMs returns the value of the "user_turn_debounce_ms" field in the mutation.
func (m *SpaceMutation) UserTurnDebounceMs() (r int, exists bool) {
	v := m.user_turn_debounce_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldUserTurnDebounceMs returns the old "user_turn_debounce_ms" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldUserTurnDebounceMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserTurnDebounceMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserTurnDebounceMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserTurnDebounceMs: %w", err)
	}
	return oldValue.UserTurnDebounceMs, nil
}

// AddUserTurnDebounceMs adds i to the "user_turn_debounce_ms" field.
func (m *SpaceMutation) AddUserTurnDebounceMs(i int) {
	if m.adduser_turn_debounce_ms != nil {
		*m.adduser_turn_debounce_ms += i
	} else {
		m.adduser_turn_debounce_ms = &i
	}
}

// AddedUserTurnDebounceMs returns the value that was added to the "user_turn_debounce_ms" field in this mutation.
func (m *SpaceMutation) AddedUserTurnDebounceMs() (r int, exists bool) {
	v := m.adduser_turn_debounce_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserTurnDebounceMs resets all changes to the "user_turn_debounce_ms" field.
func (m *SpaceMutation) ResetUserTurnDebounceMs() {
	m.user_turn_debounce_ms = nil
	m.adduser_turn_debounce_ms = nil
}

// SetCardHandlingMode sets the "card_handling_mode" field.
func (m *SpaceMutation) SetCardHandlingMode(s string) {
	m.card_handling_mode = &s
}

// CardHandlingMode returns the value of the "card_handling_mode" field in the mutation.
func (m *SpaceMutation) CardHandlingMode() (r string, exists bool) {
	v := m.card_handling_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldCardHandlingMode returns the old "card_handling_mode" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldCardHandlingMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCardHandlingMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCardHandlingMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCardHandlingMode: %w", err)
	}
	return oldValue.CardHandlingMode, nil
}

// ClearCardHandlingMode clears the value of the "card_handling_mode" field.
func (m *SpaceMutation) ClearCardHandlingMode() {
	m.card_handling_mode = nil
	m.clearedFields[space.FieldCardHandlingMode] = struct{}{}
}

// CardHandlingModeCleared returns if the "card_handling_mode" field was cleared in this mutation.
func (m *SpaceMutation) CardHandlingModeCleared() bool {
	_, ok := m.clearedFields[space.FieldCardHandlingMode]
	return ok
}

// ResetCardHandlingMode resets all changes to the "card_handling_mode" field.
func (m *SpaceMutation) ResetCardHandlingMode() {
	m.card_handling_mode = nil
	delete(m.clearedFields, space.FieldCardHandlingMode)
}

// SetRelaxMessageTrim sets the "relax_message_trim" field.
func (m *SpaceMutation) SetRelaxMessageTrim(b bool) {
	m.relax_message_trim = &b
}

// RelaxMessageTrim returns the value of the "relax_message_trim" field in the mutation.
func (m *SpaceMutation) RelaxMessageTrim() (r bool, exists bool) {
	v := m.relax_message_trim
	if v == nil {
		return
	}
	return *v, true
}

// OldRelaxMessageTrim returns the old "relax_message_trim" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldRelaxMessageTrim(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelaxMessageTrim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelaxMessageTrim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelaxMessageTrim: %w", err)
	}
	return oldValue.RelaxMessageTrim, nil
}

// ResetRelaxMessageTrim resets all changes to the "relax_message_trim" field.
func (m *SpaceMutation) ResetRelaxMessageTrim() {
	m.relax_message_trim = nil
}

// SetTokenLimit sets the "token_limit" field.
func (m *SpaceMutation) SetTokenLimit(i int64) {
	m.token_limit = &i
	m.addtoken_limit = nil
}

// TokenLimit returns the value of the "token_limit" field in the mutation.
func (m *SpaceMutation) TokenLimit() (r int64, exists bool) {
	v := m.token_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenLimit returns the old "token_limit" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldTokenLimit(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenLimit: %w", err)
	}
	return oldValue.TokenLimit, nil
}

// AddTokenLimit adds i to the "token_limit" field.
func (m *SpaceMutation) AddTokenLimit(i int64) {
	if m.addtoken_limit != nil {
		*m.addtoken_limit += i
	} else {
		m.addtoken_limit = &i
	}
}

// AddedTokenLimit returns the value that was added to the "token_limit" field in this mutation.
func (m *SpaceMutation) AddedTokenLimit() (r int64, exists bool) {
	v := m.addtoken_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenLimit clears the value of the "token_limit" field.
func (m *SpaceMutation) ClearTokenLimit() {
	m.token_limit = nil
	m.addtoken_limit = nil
	m.clearedFields[space.FieldTokenLimit] = struct{}{}
}

// TokenLimitCleared returns if the "token_limit" field was cleared in this mutation.
func (m *SpaceMutation) TokenLimitCleared() bool {
	_, ok := m.clearedFields[space.FieldTokenLimit]
	return ok
}

// ResetTokenLimit resets all changes to the "token_limit" field.
func (m *SpaceMutation) ResetTokenLimit() {
	m.token_limit = nil
	m.addtoken_limit = nil
	delete(m.clearedFields, space.FieldTokenLimit)
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (m *SpaceMutation) SetPromptTokensTotal(i int64) {
	m.prompt_tokens_total = &i
	m.addprompt_tokens_total = nil
}

// PromptTokensTotal returns the value of the "prompt_tokens_total" field in the mutation.
func (m *SpaceMutation) PromptTokensTotal() (r int64, exists bool) {
	v := m.prompt_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokensTotal returns the old "prompt_tokens_total" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldPromptTokensTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokensTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokensTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokensTotal: %w", err)
	}
	return oldValue.PromptTokensTotal, nil
}

// AddPromptTokensTotal adds i to the "prompt_tokens_total" field.
func (m *SpaceMutation) AddPromptTokensTotal(i int64) {
	if m.addprompt_tokens_total != nil {
		*m.addprompt_tokens_total += i
	} else {
		m.addprompt_tokens_total = &i
	}
}

// AddedPromptTokensTotal returns the value that was added to the "prompt_tokens_total" field in this mutation.
func (m *SpaceMutation) AddedPromptTokensTotal() (r int64, exists bool) {
	v := m.addprompt_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokensTotal resets all changes to the "prompt_tokens_total" field.
func (m *SpaceMutation) ResetPromptTokensTotal() {
	m.prompt_tokens_total = nil
	m.addprompt_tokens_total = nil
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (m *SpaceMutation) SetCompletionTokensTotal(i int64) {
	m.completion_tokens_total = &i
	m.addcompletion_tokens_total = nil
}

// CompletionTokensTotal returns the value of the "completion_tokens_total" field in the mutation.
func (m *SpaceMutation) CompletionTokensTotal() (r int64, exists bool) {
	v := m.completion_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokensTotal returns the old "completion_tokens_total" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldCompletionTokensTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokensTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokensTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokensTotal: %w", err)
	}
	return oldValue.CompletionTokensTotal, nil
}

// AddCompletionTokensTotal adds i to the "completion_tokens_total" field.
func (m *SpaceMutation) AddCompletionTokensTotal(i int64) {
	if m.addcompletion_tokens_total != nil {
		*m.addcompletion_tokens_total += i
	} else {
		m.addcompletion_tokens_total = &i
	}
}

// AddedCompletionTokensTotal returns the value that was added to the "completion_tokens_total" field in this mutation.
func (m *SpaceMutation) AddedCompletionTokensTotal() (r int64, exists bool) {
	v := m.addcompletion_tokens_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokensTotal resets all changes to the "completion_tokens_total" field.
func (m *SpaceMutation) ResetCompletionTokensTotal() {
	m.completion_tokens_total = nil
	m.addcompletion_tokens_total = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SpaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SpaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SpaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Space entity.
// If the Space object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SpaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMembershipIDs adds the "memberships" edge to the SpaceMembership entity by ids.
func (m *SpaceMutation) AddMembershipIDs(ids ...string) {
	if m.memberships == nil {
		m.memberships = make(map[string]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the SpaceMembership entity.
func (m *SpaceMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the SpaceMembership entity was cleared.
func (m *SpaceMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the SpaceMembership entity by IDs.
func (m *SpaceMutation) RemoveMembershipIDs(ids ...string) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the SpaceMembership entity.
func (m *SpaceMutation) RemovedMembershipsIDs() (ids []string) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *SpaceMutation) MembershipsIDs() (ids []string) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *SpaceMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *SpaceMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *SpaceMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *SpaceMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *SpaceMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *SpaceMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *SpaceMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *SpaceMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// Where appends a list predicates to the SpaceMutation builder.
func (m *SpaceMutation) Where(ps ...predicate.Space) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Space, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Space).
func (m *SpaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpaceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, space.FieldName)
	}
	if m.reply_order != nil {
		fields = append(fields, space.FieldReplyOrder)
	}
	if m.allow_self_responses != nil {
		fields = append(fields, space.FieldAllowSelfResponses)
	}
	if m.auto_mode_enabled != nil {
		fields = append(fields, space.FieldAutoModeEnabled)
	}
	if m.auto_mode_delay_ms != nil {
		fields = append(fields, space.FieldAutoModeDelayMs)
	}
	if m.input_policy != nil {
		fields = append(fields, space.FieldInputPolicy)
	}
	if m.user_turn_debounce_ms != nil {
		fields = append(fields, space.FieldUserTurnDebounceMs)
	}
	if m.card_handling_mode != nil {
		fields = append(fields, space.FieldCardHandlingMode)
	}
	if m.relax_message_trim != nil {
		fields = append(fields, space.FieldRelaxMessageTrim)
	}
	if m.token_limit != nil {
		fields = append(fields, space.FieldTokenLimit)
	}
	if m.prompt_tokens_total != nil {
		fields = append(fields, space.FieldPromptTokensTotal)
	}
	if m.completion_tokens_total != nil {
		fields = append(fields, space.FieldCompletionTokensTotal)
	}
	if m.created_at != nil {
		fields = append(fields, space.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, space.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case space.FieldName:
		return m.Name()
	case space.FieldReplyOrder:
		return m.ReplyOrder()
	case space.FieldAllowSelfResponses:
		return m.AllowSelfResponses()
	case space.FieldAutoModeEnabled:
		return m.AutoModeEnabled()
	case space.FieldAutoModeDelayMs:
		return m.AutoModeDelayMs()
	case space.FieldInputPolicy:
		return m.InputPolicy()
	case space.FieldUserTurnDebounceMs:
		return m.UserTurnDebounceMs()
	case space.FieldCardHandlingMode:
		return m.CardHandlingMode()
	case space.FieldRelaxMessageTrim:
		return m.RelaxMessageTrim()
	case space.FieldTokenLimit:
		return m.TokenLimit()
	case space.FieldPromptTokensTotal:
		return m.PromptTokensTotal()
	case space.FieldCompletionTokensTotal:
		return m.CompletionTokensTotal()
	case space.FieldCreatedAt:
		return m.CreatedAt()
	case space.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case space.FieldName:
		return m.OldName(ctx)
	case space.FieldReplyOrder:
		return m.OldReplyOrder(ctx)
	case space.FieldAllowSelfResponses:
		return m.OldAllowSelfResponses(ctx)
	case space.FieldAutoModeEnabled:
		return m.OldAutoModeEnabled(ctx)
	case space.FieldAutoModeDelayMs:
		return m.OldAutoModeDelayMs(ctx)
	case space.FieldInputPolicy:
		return m.OldInputPolicy(ctx)
	case space.FieldUserTurnDebounceMs:
		return m.OldUserTurnDebounceMs(ctx)
	case space.FieldCardHandlingMode:
		return m.OldCardHandlingMode(ctx)
	case space.FieldRelaxMessageTrim:
		return m.OldRelaxMessageTrim(ctx)
	case space.FieldTokenLimit:
		return m.OldTokenLimit(ctx)
	case space.FieldPromptTokensTotal:
		return m.OldPromptTokensTotal(ctx)
	case space.FieldCompletionTokensTotal:
		return m.OldCompletionTokensTotal(ctx)
	case space.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case space.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Space field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case space.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case space.FieldReplyOrder:
		v, ok := value.(space.ReplyOrder)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplyOrder(v)
		return nil
	case space.FieldAllowSelfResponses:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowSelfResponses(v)
		return nil
	case space.FieldAutoModeEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoModeEnabled(v)
		return nil
	case space.FieldAutoModeDelayMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoModeDelayMs(v)
		return nil
	case space.FieldInputPolicy:
		v, ok := value.(space.InputPolicy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputPolicy(v)
		return nil
	case space.FieldUserTurnDebounceMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserTurnDebounceMs(v)
		return nil
	case space.FieldCardHandlingMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCardHandlingMode(v)
		return nil
	case space.FieldRelaxMessageTrim:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelaxMessageTrim(v)
		return nil
	case space.FieldTokenLimit:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenLimit(v)
		return nil
	case space.FieldPromptTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokensTotal(v)
		return nil
	case space.FieldCompletionTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokensTotal(v)
		return nil
	case space.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case space.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Space field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpaceMutation) AddedFields() []string {
	var fields []string
	if m.addauto_mode_delay_ms != nil {
		fields = append(fields, space.FieldAutoModeDelayMs)
	}
	if m.adduser_turn_debounce_ms != nil {
		fields = append(fields, space.FieldUserTurnDebounceMs)
	}
	if m.addtoken_limit != nil {
		fields = append(fields, space.FieldTokenLimit)
	}
	if m.addprompt_tokens_total != nil {
		fields = append(fields, space.FieldPromptTokensTotal)
	}
	if m.addcompletion_tokens_total != nil {
		fields = append(fields, space.FieldCompletionTokensTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpaceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case space.FieldAutoModeDelayMs:
		return m.AddedAutoModeDelayMs()
	case space.FieldUserTurnDebounceMs:
		return m.AddedUserTurnDebounceMs()
	case space.FieldTokenLimit:
		return m.AddedTokenLimit()
	case space.FieldPromptTokensTotal:
		return m.AddedPromptTokensTotal()
	case space.FieldCompletionTokensTotal:
		return m.AddedCompletionTokensTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case space.FieldAutoModeDelayMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoModeDelayMs(v)
		return nil
	case space.FieldUserTurnDebounceMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserTurnDebounceMs(v)
		return nil
	case space.FieldTokenLimit:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenLimit(v)
		return nil
	case space.FieldPromptTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokensTotal(v)
		return nil
	case space.FieldCompletionTokensTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokensTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Space numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(space.FieldCardHandlingMode) {
		fields = append(fields, space.FieldCardHandlingMode)
	}
	if m.FieldCleared(space.FieldTokenLimit) {
		fields = append(fields, space.FieldTokenLimit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpaceMutation) ClearField(name string) error {
	switch name {
	case space.FieldCardHandlingMode:
		m.ClearCardHandlingMode()
		return nil
	case space.FieldTokenLimit:
		m.ClearTokenLimit()
		return nil
	}
	return fmt.Errorf("unknown Space nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpaceMutation) ResetField(name string) error {
	switch name {
	case space.FieldName:
		m.ResetName()
		return nil
	case space.FieldReplyOrder:
		m.ResetReplyOrder()
		return nil
	case space.FieldAllowSelfResponses:
		m.ResetAllowSelfResponses()
		return nil
	case space.FieldAutoModeEnabled:
		m.ResetAutoModeEnabled()
		return nil
	case space.FieldAutoModeDelayMs:
		m.ResetAutoModeDelayMs()
		return nil
	case space.FieldInputPolicy:
		m.ResetInputPolicy()
		return nil
	case space.FieldUserTurnDebounceMs:
		m.ResetUserTurnDebounceMs()
		return nil
	case space.FieldCardHandlingMode:
		m.ResetCardHandlingMode()
		return nil
	case space.FieldRelaxMessageTrim:
		m.ResetRelaxMessageTrim()
		return nil
	case space.FieldTokenLimit:
		m.ResetTokenLimit()
		return nil
	case space.FieldPromptTokensTotal:
		m.ResetPromptTokensTotal()
		return nil
	case space.FieldCompletionTokensTotal:
		m.ResetCompletionTokensTotal()
		return nil
	case space.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case space.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Space field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.memberships != nil {
		edges = append(edges, space.EdgeMemberships)
	}
	if m.conversations != nil {
		edges = append(edges, space.EdgeConversations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpaceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case space.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	case space.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmemberships != nil {
		edges = append(edges, space.EdgeMemberships)
	}
	if m.removedconversations != nil {
		edges = append(edges, space.EdgeConversations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpaceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case space.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	case space.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmemberships {
		edges = append(edges, space.EdgeMemberships)
	}
	if m.clearedconversations {
		edges = append(edges, space.EdgeConversations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpaceMutation) EdgeCleared(name string) bool {
	switch name {
	case space.EdgeMemberships:
		return m.clearedmemberships
	case space.EdgeConversations:
		return m.clearedconversations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpaceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Space unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpaceMutation) ResetEdge(name string) error {
	switch name {
	case space.EdgeMemberships:
		m.ResetMemberships()
		return nil
	case space.EdgeConversations:
		m.ResetConversations()
		return nil
	}
	return fmt.Errorf("unknown Space edge %s", name)
}

// SpaceMembershipMutation represents an operation that mutates the SpaceMembership nodes in the graph.
type SpaceMembershipMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	kind                       *spacemembership.Kind
	display_name               *string
	avatar_url                 *string
	position                   *int
	addposition                *int
	participation              *spacemembership.Participation
	status                     *spacemembership.Status
	talkativeness              *float64
	addtalkativeness           *float64
	copilot_mode               *spacemembership.CopilotMode
	copilot_remaining_steps    *int
	addcopilot_remaining_steps *int
	bound_character_id         *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	space                      *string
	clearedspace               bool
	runs                       map[string]struct{}
	removedruns                map[string]struct{}
	clearedruns                bool
	done                       bool
	oldValue                   func(context.Context) (*SpaceMembership, error)
	predicates                 []predicate.SpaceMembership
}

var _ ent.Mutation = (*SpaceMembershipMutation)(nil)

// spacemembershipOption allows management of the mutation configuration using functional options.
type spacemembershipOption func(*SpaceMembershipMutation)

// newSpaceMembershipMutation creates new mutation for the SpaceMembership entity.
func newSpaceMembershipMutation(c config, op Op, opts ...spacemembershipOption) *SpaceMembershipMutation {
	m := &SpaceMembershipMutation{
		config:        c,
		op:            op,
		typ:           TypeSpaceMembership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpaceMembershipID sets the ID field of the mutation.
func withSpaceMembershipID(id string) spacemembershipOption {
	return func(m *SpaceMembershipMutation) {
		var (
			err   error
			once  sync.Once
			value *SpaceMembership
		)
		m.oldValue = func(ctx context.Context) (*SpaceMembership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpaceMembership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpaceMembership sets the old SpaceMembership of the mutation.
func withSpaceMembership(node *SpaceMembership) spacemembershipOption {
	return func(m *SpaceMembershipMutation) {
		m.oldValue = func(context.Context) (*SpaceMembership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpaceMembershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpaceMembershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SpaceMembership entities.
func (m *SpaceMembershipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpaceMembershipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpaceMembershipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpaceMembership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSpaceID sets the "space_id" field.
func (m *SpaceMembershipMutation) SetSpaceID(s string) {
	m.space = &s
}

// SpaceID returns the value of the "space_id" field in the mutation.
func (m *SpaceMembershipMutation) SpaceID() (r string, exists bool) {
	v := m.space
	if v == nil {
		return
	}
	return *v, true
}

// OldSpaceID returns the old "space_id" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldSpaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpaceID: %w", err)
	}
	return oldValue.SpaceID, nil
}

// ResetSpaceID resets all changes to the "space_id" field.
func (m *SpaceMembershipMutation) ResetSpaceID() {
	m.space = nil
}

// SetKind sets the "kind" field.
func (m *SpaceMembershipMutation) SetKind(s spacemembership.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SpaceMembershipMutation) Kind() (r spacemembership.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldKind(ctx context.Context) (v spacemembership.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SpaceMembershipMutation) ResetKind() {
	m.kind = nil
}

// SetDisplayName sets the "display_name" field.
func (m *SpaceMembershipMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *SpaceMembershipMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *SpaceMembershipMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetAvatarURL sets the "avatar_url" field.
func (m *SpaceMembershipMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *SpaceMembershipMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldAvatarURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *SpaceMembershipMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[spacemembership.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *SpaceMembershipMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[spacemembership.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *SpaceMembershipMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, spacemembership.FieldAvatarURL)
}

// SetPosition sets the "position" field.
func (m *SpaceMembershipMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SpaceMembershipMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SpaceMembershipMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SpaceMembershipMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SpaceMembershipMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetParticipation sets the "participation" field.
func (m *SpaceMembershipMutation) SetParticipation(s spacemembership.Participation) {
	m.participation = &s
}

// Participation returns the value of the "participation" field in the mutation.
func (m *SpaceMembershipMutation) Participation() (r spacemembership.Participation, exists bool) {
	v := m.participation
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipation returns the old "participation" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldParticipation(ctx context.Context) (v spacemembership.Participation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipation: %w", err)
	}
	return oldValue.Participation, nil
}

// ResetParticipation resets all changes to the "participation" field.
func (m *SpaceMembershipMutation) ResetParticipation() {
	m.participation = nil
}

// SetStatus sets the "status" field.
func (m *SpaceMembershipMutation) SetStatus(s spacemembership.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SpaceMembershipMutation) Status() (r spacemembership.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldStatus(ctx context.Context) (v spacemembership.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SpaceMembershipMutation) ResetStatus() {
	m.status = nil
}

// SetTalkativeness sets the "talkativeness" field.
func (m *SpaceMembershipMutation) SetTalkativeness(f float64) {
	m.talkativeness = &f
	m.addtalkativeness = nil
}

// Talkativeness returns the value of the "talkativeness" field in the mutation.
func (m *SpaceMembershipMutation) Talkativeness() (r float64, exists bool) {
	v := m.talkativeness
	if v == nil {
		return
	}
	return *v, true
}

// OldTalkativeness returns the old "talkativeness" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldTalkativeness(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTalkativeness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTalkativeness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTalkativeness: %w", err)
	}
	return oldValue.Talkativeness, nil
}

// AddTalkativeness adds f to the "talkativeness" field.
func (m *SpaceMembershipMutation) AddTalkativeness(f float64) {
	if m.addtalkativeness != nil {
		*m.addtalkativeness += f
	} else {
		m.addtalkativeness = &f
	}
}

// AddedTalkativeness returns the value that was added to the "talkativeness" field in this mutation.
func (m *SpaceMembershipMutation) AddedTalkativeness() (r float64, exists bool) {
	v := m.addtalkativeness
	if v == nil {
		return
	}
	return *v, true
}

// ClearTalkativeness clears the value of the "talkativeness" field.
func (m *SpaceMembershipMutation) ClearTalkativeness() {
	m.talkativeness = nil
	m.addtalkativeness = nil
	m.clearedFields[spacemembership.FieldTalkativeness] = struct{}{}
}

// TalkativenessCleared returns if the "talkativeness" field was cleared in this mutation.
func (m *SpaceMembershipMutation) TalkativenessCleared() bool {
	_, ok := m.clearedFields[spacemembership.FieldTalkativeness]
	return ok
}

// ResetTalkativeness resets all changes to the "talkativeness" field.
func (m *SpaceMembershipMutation) ResetTalkativeness() {
	m.talkativeness = nil
	m.addtalkativeness = nil
	delete(m.clearedFields, spacemembership.FieldTalkativeness)
}

// SetCopilotMode sets the "copilot_mode" field.
func (m *SpaceMembershipMutation) SetCopilotMode(sm spacemembership.CopilotMode) {
	m.copilot_mode = &sm
}

// CopilotMode returns the value of the "copilot_mode" field in the mutation.
func (m *SpaceMembershipMutation) CopilotMode() (r spacemembership.CopilotMode, exists bool) {
	v := m.copilot_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldCopilotMode returns the old "copilot_mode" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldCopilotMode(ctx context.Context) (v spacemembership.CopilotMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCopilotMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCopilotMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCopilotMode: %w", err)
	}
	return oldValue.CopilotMode, nil
}

// ResetCopilotMode resets all changes to the "copilot_mode" field.
func (m *SpaceMembershipMutation) ResetCopilotMode() {
	m.copilot_mode = nil
}

// SetCopilotRemainingSteps sets the "copilot_remaining_steps" field.
func (m *SpaceMembershipMutation) SetCopilotRemainingSteps(i int) {
	m.copilot_remaining_steps = &i
	m.addcopilot_remaining_steps = nil
}

// CopilotRemainingSteps returns the value of the "copilot_remaining_steps" field in the mutation.
func (m *SpaceMembershipMutation) CopilotRemainingSteps() (r int, exists bool) {
	v := m.copilot_remaining_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldCopilotRemainingSteps returns the old "copilot_remaining_steps" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldCopilotRemainingSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCopilotRemainingSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCopilotRemainingSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCopilotRemainingSteps: %w", err)
	}
	return oldValue.CopilotRemainingSteps, nil
}

// AddCopilotRemainingSteps adds i to the "copilot_remaining_steps" field.
func (m *SpaceMembershipMutation) AddCopilotRemainingSteps(i int) {
	if m.addcopilot_remaining_steps != nil {
		*m.addcopilot_remaining_steps += i
	} else {
		m.addcopilot_remaining_steps = &i
	}
}

// AddedCopilotRemainingSteps returns the value that was added to the "copilot_remaining_steps" field in this mutation.
func (m *SpaceMembershipMutation) AddedCopilotRemainingSteps() (r int, exists bool) {
	v := m.addcopilot_remaining_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetCopilotRemainingSteps resets all changes to the "copilot_remaining_steps" field.
func (m *SpaceMembershipMutation) ResetCopilotRemainingSteps() {
	m.copilot_remaining_steps = nil
	m.addcopilot_remaining_steps = nil
}

// SetBoundCharacterID sets the "bound_character_id" field.
func (m *SpaceMembershipMutation) SetBoundCharacterID(s string) {
	m.bound_character_id = &s
}

// BoundCharacterID returns the value of the "bound_character_id" field in the mutation.
func (m *SpaceMembershipMutation) BoundCharacterID() (r string, exists bool) {
	v := m.bound_character_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundCharacterID returns the old "bound_character_id" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldBoundCharacterID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundCharacterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundCharacterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundCharacterID: %w", err)
	}
	return oldValue.BoundCharacterID, nil
}

// ClearBoundCharacterID clears the value of the "bound_character_id" field.
func (m *SpaceMembershipMutation) ClearBoundCharacterID() {
	m.bound_character_id = nil
	m.clearedFields[spacemembership.FieldBoundCharacterID] = struct{}{}
}

// BoundCharacterIDCleared returns if the "bound_character_id" field was cleared in this mutation.
func (m *SpaceMembershipMutation) BoundCharacterIDCleared() bool {
	_, ok := m.clearedFields[spacemembership.FieldBoundCharacterID]
	return ok
}

// ResetBoundCharacterID resets all changes to the "bound_character_id" field.
func (m *SpaceMembershipMutation) ResetBoundCharacterID() {
	m.bound_character_id = nil
	delete(m.clearedFields, spacemembership.FieldBoundCharacterID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SpaceMembershipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpaceMembershipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpaceMembershipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SpaceMembershipMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SpaceMembershipMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SpaceMembership entity.
// If the SpaceMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpaceMembershipMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SpaceMembershipMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSpace clears the "space" edge to the Space entity.
func (m *SpaceMembershipMutation) ClearSpace() {
	m.clearedspace = true
	m.clearedFields[spacemembership.FieldSpaceID] = struct{}{}
}

// SpaceCleared reports if the "space" edge to the Space entity was cleared.
func (m *SpaceMembershipMutation) SpaceCleared() bool {
	return m.clearedspace
}

// SpaceIDs returns the "space" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpaceID instead. It exists only for internal usage by the builders.
func (m *SpaceMembershipMutation) SpaceIDs() (ids []string) {
	if id := m.space; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpace resets all changes to the "space" edge.
func (m *SpaceMembershipMutation) ResetSpace() {
	m.space = nil
	m.clearedspace = false
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by ids.
func (m *SpaceMembershipMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the ConversationRun entity.
func (m *SpaceMembershipMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the ConversationRun entity was cleared.
func (m *SpaceMembershipMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the ConversationRun entity by IDs.
func (m *SpaceMembershipMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the ConversationRun entity.
func (m *SpaceMembershipMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *SpaceMembershipMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *SpaceMembershipMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// Where appends a list predicates to the SpaceMembershipMutation builder.
func (m *SpaceMembershipMutation) Where(ps ...predicate.SpaceMembership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpaceMembershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpaceMembershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpaceMembership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpaceMembershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpaceMembershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpaceMembership).
func (m *SpaceMembershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpaceMembershipMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.space != nil {
		fields = append(fields, spacemembership.FieldSpaceID)
	}
	if m.kind != nil {
		fields = append(fields, spacemembership.FieldKind)
	}
	if m.display_name != nil {
		fields = append(fields, spacemembership.FieldDisplayName)
	}
	if m.avatar_url != nil {
		fields = append(fields, spacemembership.FieldAvatarURL)
	}
	if m.position != nil {
		fields = append(fields, spacemembership.FieldPosition)
	}
	if m.participation != nil {
		fields = append(fields, spacemembership.FieldParticipation)
	}
	if m.status != nil {
		fields = append(fields, spacemembership.FieldStatus)
	}
	if m.talkativeness != nil {
		fields = append(fields, spacemembership.FieldTalkativeness)
	}
	if m.copilot_mode != nil {
		fields = append(fields, spacemembership.FieldCopilotMode)
	}
	if m.copilot_remaining_steps != nil {
		fields = append(fields, spacemembership.FieldCopilotRemainingSteps)
	}
	if m.bound_character_id != nil {
		fields = append(fields, spacemembership.FieldBoundCharacterID)
	}
	if m.created_at != nil {
		fields = append(fields, spacemembership.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, spacemembership.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpaceMembershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case spacemembership.FieldSpaceID:
		return m.SpaceID()
	case spacemembership.FieldKind:
		return m.Kind()
	case spacemembership.FieldDisplayName:
		return m.DisplayName()
	case spacemembership.FieldAvatarURL:
		return m.AvatarURL()
	case spacemembership.FieldPosition:
		return m.Position()
	case spacemembership.FieldParticipation:
		return m.Participation()
	case spacemembership.FieldStatus:
		return m.Status()
	case spacemembership.FieldTalkativeness:
		return m.Talkativeness()
	case spacemembership.FieldCopilotMode:
		return m.CopilotMode()
	case spacemembership.FieldCopilotRemainingSteps:
		return m.CopilotRemainingSteps()
	case spacemembership.FieldBoundCharacterID:
		return m.BoundCharacterID()
	case spacemembership.FieldCreatedAt:
		return m.CreatedAt()
	case spacemembership.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpaceMembershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case spacemembership.FieldSpaceID:
		return m.OldSpaceID(ctx)
	case spacemembership.FieldKind:
		return m.OldKind(ctx)
	case spacemembership.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case spacemembership.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case spacemembership.FieldPosition:
		return m.OldPosition(ctx)
	case spacemembership.FieldParticipation:
		return m.OldParticipation(ctx)
	case spacemembership.FieldStatus:
		return m.OldStatus(ctx)
	case spacemembership.FieldTalkativeness:
		return m.OldTalkativeness(ctx)
	case spacemembership.FieldCopilotMode:
		return m.OldCopilotMode(ctx)
	case spacemembership.FieldCopilotRemainingSteps:
		return m.OldCopilotRemainingSteps(ctx)
	case spacemembership.FieldBoundCharacterID:
		return m.OldBoundCharacterID(ctx)
	case spacemembership.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case spacemembership.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SpaceMembership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpaceMembershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case spacemembership.FieldSpaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpaceID(v)
		return nil
	case spacemembership.FieldKind:
		v, ok := value.(spacemembership.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case spacemembership.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case spacemembership.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case spacemembership.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case spacemembership.FieldParticipation:
		v, ok := value.(spacemembership.Participation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipation(v)
		return nil
	case spacemembership.FieldStatus:
		v, ok := value.(spacemembership.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case spacemembership.FieldTalkativeness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTalkativeness(v)
		return nil
	case spacemembership.FieldCopilotMode:
		v, ok := value.(spacemembership.CopilotMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCopilotMode(v)
		return nil
	case spacemembership.FieldCopilotRemainingSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCopilotRemainingSteps(v)
		return nil
	case spacemembership.FieldBoundCharacterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundCharacterID(v)
		return nil
	case spacemembership.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case spacemembership.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SpaceMembership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpaceMembershipMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, spacemembership.FieldPosition)
	}
	if m.addtalkativeness != nil {
		fields = append(fields, spacemembership.FieldTalkativeness)
	}
	if m.addcopilot_remaining_steps != nil {
		fields = append(fields, spacemembership.FieldCopilotRemainingSteps)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpaceMembershipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case spacemembership.FieldPosition:
		return m.AddedPosition()
	case spacemembership.FieldTalkativeness:
		return m.AddedTalkativeness()
	case spacemembership.FieldCopilotRemainingSteps:
		return m.AddedCopilotRemainingSteps()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpaceMembershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case spacemembership.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case spacemembership.FieldTalkativeness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTalkativeness(v)
		return nil
	case spacemembership.FieldCopilotRemainingSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCopilotRemainingSteps(v)
		return nil
	}
	return fmt.Errorf("unknown SpaceMembership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpaceMembershipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(spacemembership.FieldAvatarURL) {
		fields = append(fields, spacemembership.FieldAvatarURL)
	}
	if m.FieldCleared(spacemembership.FieldTalkativeness) {
		fields = append(fields, spacemembership.FieldTalkativeness)
	}
	if m.FieldCleared(spacemembership.FieldBoundCharacterID) {
		fields = append(fields, spacemembership.FieldBoundCharacterID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpaceMembershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpaceMembershipMutation) ClearField(name string) error {
	switch name {
	case spacemembership.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	case spacemembership.FieldTalkativeness:
		m.ClearTalkativeness()
		return nil
	case spacemembership.FieldBoundCharacterID:
		m.ClearBoundCharacterID()
		return nil
	}
	return fmt.Errorf("unknown SpaceMembership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpaceMembershipMutation) ResetField(name string) error {
	switch name {
	case spacemembership.FieldSpaceID:
		m.ResetSpaceID()
		return nil
	case spacemembership.FieldKind:
		m.ResetKind()
		return nil
	case spacemembership.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case spacemembership.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case spacemembership.FieldPosition:
		m.ResetPosition()
		return nil
	case spacemembership.FieldParticipation:
		m.ResetParticipation()
		return nil
	case spacemembership.FieldStatus:
		m.ResetStatus()
		return nil
	case spacemembership.FieldTalkativeness:
		m.ResetTalkativeness()
		return nil
	case spacemembership.FieldCopilotMode:
		m.ResetCopilotMode()
		return nil
	case spacemembership.FieldCopilotRemainingSteps:
		m.ResetCopilotRemainingSteps()
		return nil
	case spacemembership.FieldBoundCharacterID:
		m.ResetBoundCharacterID()
		return nil
	case spacemembership.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case spacemembership.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SpaceMembership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpaceMembershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.space != nil {
		edges = append(edges, spacemembership.EdgeSpace)
	}
	if m.runs != nil {
		edges = append(edges, spacemembership.EdgeRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpaceMembershipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case spacemembership.EdgeSpace:
		if id := m.space; id != nil {
			return []ent.Value{*id}
		}
	case spacemembership.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpaceMembershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, spacemembership.EdgeRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpaceMembershipMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case spacemembership.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpaceMembershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedspace {
		edges = append(edges, spacemembership.EdgeSpace)
	}
	if m.clearedruns {
		edges = append(edges, spacemembership.EdgeRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpaceMembershipMutation) EdgeCleared(name string) bool {
	switch name {
	case spacemembership.EdgeSpace:
		return m.clearedspace
	case spacemembership.EdgeRuns:
		return m.clearedruns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpaceMembershipMutation) ClearEdge(name string) error {
	switch name {
	case spacemembership.EdgeSpace:
		m.ClearSpace()
		return nil
	}
	return fmt.Errorf("unknown SpaceMembership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpaceMembershipMutation) ResetEdge(name string) error {
	switch name {
	case spacemembership.EdgeSpace:
		m.ResetSpace()
		return nil
	case spacemembership.EdgeRuns:
		m.ResetRuns()
		return nil
	}
	return fmt.Errorf("unknown SpaceMembership edge %s", name)
}

// TextContentMutation represents an operation that mutates the TextContent nodes in the graph.
type TextContentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	body          *string
	ref_count     *int
	addref_count  *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TextContent, error)
	predicates    []predicate.TextContent
}

var _ ent.Mutation = (*TextContentMutation)(nil)

// textcontentOption allows management of the mutation configuration using functional options.
type textcontentOption func(*TextContentMutation)

// newTextContentMutation creates new mutation for the TextContent entity.
func newTextContentMutation(c config, op Op, opts ...textcontentOption) *TextContentMutation {
	m := &TextContentMutation{
		config:        c,
		op:            op,
		typ:           TypeTextContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTextContentID sets the ID field of the mutation.
func withTextContentID(id string) textcontentOption {
	return func(m *TextContentMutation) {
		var (
			err   error
			once  sync.Once
			value *TextContent
		)
		m.oldValue = func(ctx context.Context) (*TextContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TextContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTextContent sets the old TextContent of the mutation.
func withTextContent(node *TextContent) textcontentOption {
	return func(m *TextContentMutation) {
		m.oldValue = func(context.Context) (*TextContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TextContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TextContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TextContent entities.
func (m *TextContentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TextContentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TextContentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TextContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBody sets the "body" field.
func (m *TextContentMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TextContentMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the TextContent entity.
// If the TextContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextContentMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *TextContentMutation) ResetBody() {
	m.body = nil
}

// SetRefCount sets the "ref_count" field.
func (m *TextContentMutation) SetRefCount(i int) {
	m.ref_count = &i
	m.addref_count = nil
}

// RefCount returns the value of the "ref_count" field in the mutation.
func (m *TextContentMutation) RefCount() (r int, exists bool) {
	v := m.ref_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRefCount returns the old "ref_count" field's value of the TextContent entity.
// If the TextContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextContentMutation) OldRefCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefCount: %w", err)
	}
	return oldValue.RefCount, nil
}

// AddRefCount adds i to the "ref_count" field.
func (m *TextContentMutation) AddRefCount(i int) {
	if m.addref_count != nil {
		*m.addref_count += i
	} else {
		m.addref_count = &i
	}
}

// AddedRefCount returns the value that was added to the "ref_count" field in this mutation.
func (m *TextContentMutation) AddedRefCount() (r int, exists bool) {
	v := m.addref_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRefCount resets all changes to the "ref_count" field.
func (m *TextContentMutation) ResetRefCount() {
	m.ref_count = nil
	m.addref_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TextContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TextContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TextContent entity.
// If the TextContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TextContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TextContentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TextContentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TextContent entity.
// If the TextContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TextContentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TextContentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TextContentMutation builder.
func (m *TextContentMutation) Where(ps ...predicate.TextContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TextContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TextContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TextContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TextContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TextContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TextContent).
func (m *TextContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TextContentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.body != nil {
		fields = append(fields, textcontent.FieldBody)
	}
	if m.ref_count != nil {
		fields = append(fields, textcontent.FieldRefCount)
	}
	if m.created_at != nil {
		fields = append(fields, textcontent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, textcontent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TextContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case textcontent.FieldBody:
		return m.Body()
	case textcontent.FieldRefCount:
		return m.RefCount()
	case textcontent.FieldCreatedAt:
		return m.CreatedAt()
	case textcontent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TextContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case textcontent.FieldBody:
		return m.OldBody(ctx)
	case textcontent.FieldRefCount:
		return m.OldRefCount(ctx)
	case textcontent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case textcontent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TextContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case textcontent.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case textcontent.FieldRefCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefCount(v)
		return nil
	case textcontent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case textcontent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TextContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TextContentMutation) AddedFields() []string {
	var fields []string
	if m.addref_count != nil {
		fields = append(fields, textcontent.FieldRefCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TextContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case textcontent.FieldRefCount:
		return m.AddedRefCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TextContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case textcontent.FieldRefCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRefCount(v)
		return nil
	}
	return fmt.Errorf("unknown TextContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TextContentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TextContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TextContentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TextContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TextContentMutation) ResetField(name string) error {
	switch name {
	case textcontent.FieldBody:
		m.ResetBody()
		return nil
	case textcontent.FieldRefCount:
		m.ResetRefCount()
		return nil
	case textcontent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case textcontent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TextContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TextContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TextContentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TextContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TextContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TextContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TextContentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TextContentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TextContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TextContentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TextContent edge %s", name)
}
