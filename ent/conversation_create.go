// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/event"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/space"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
}

// SetSpaceID sets the "space_id" field.
func (_c *ConversationCreate) SetSpaceID(v string) *ConversationCreate {
	_c.mutation.SetSpaceID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ConversationCreate) SetKind(v conversation.Kind) *ConversationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableKind(v *conversation.Kind) *ConversationCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetParentConversationID sets the "parent_conversation_id" field.
func (_c *ConversationCreate) SetParentConversationID(v string) *ConversationCreate {
	_c.mutation.SetParentConversationID(v)
	return _c
}

// SetNillableParentConversationID sets the "parent_conversation_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableParentConversationID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetParentConversationID(*v)
	}
	return _c
}

// SetForkedFromMessageID sets the "forked_from_message_id" field.
func (_c *ConversationCreate) SetForkedFromMessageID(v string) *ConversationCreate {
	_c.mutation.SetForkedFromMessageID(v)
	return _c
}

// SetNillableForkedFromMessageID sets the "forked_from_message_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableForkedFromMessageID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetForkedFromMessageID(*v)
	}
	return _c
}

// SetSchedulingState sets the "scheduling_state" field.
func (_c *ConversationCreate) SetSchedulingState(v conversation.SchedulingState) *ConversationCreate {
	_c.mutation.SetSchedulingState(v)
	return _c
}

// SetNillableSchedulingState sets the "scheduling_state" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableSchedulingState(v *conversation.SchedulingState) *ConversationCreate {
	if v != nil {
		_c.SetSchedulingState(*v)
	}
	return _c
}

// SetGroupQueueRevision sets the "group_queue_revision" field.
func (_c *ConversationCreate) SetGroupQueueRevision(v int64) *ConversationCreate {
	_c.mutation.SetGroupQueueRevision(v)
	return _c
}

// SetNillableGroupQueueRevision sets the "group_queue_revision" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableGroupQueueRevision(v *int64) *ConversationCreate {
	if v != nil {
		_c.SetGroupQueueRevision(*v)
	}
	return _c
}

// SetAutoRoundsRemaining sets the "auto_rounds_remaining" field.
func (_c *ConversationCreate) SetAutoRoundsRemaining(v int) *ConversationCreate {
	_c.mutation.SetAutoRoundsRemaining(v)
	return _c
}

// SetNillableAutoRoundsRemaining sets the "auto_rounds_remaining" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableAutoRoundsRemaining(v *int) *ConversationCreate {
	if v != nil {
		_c.SetAutoRoundsRemaining(*v)
	}
	return _c
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (_c *ConversationCreate) SetPromptTokensTotal(v int64) *ConversationCreate {
	_c.mutation.SetPromptTokensTotal(v)
	return _c
}

// SetNillablePromptTokensTotal sets the "prompt_tokens_total" field if the given value is not nil.
func (_c *ConversationCreate) SetNillablePromptTokensTotal(v *int64) *ConversationCreate {
	if v != nil {
		_c.SetPromptTokensTotal(*v)
	}
	return _c
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (_c *ConversationCreate) SetCompletionTokensTotal(v int64) *ConversationCreate {
	_c.mutation.SetCompletionTokensTotal(v)
	return _c
}

// SetNillableCompletionTokensTotal sets the "completion_tokens_total" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCompletionTokensTotal(v *int64) *ConversationCreate {
	if v != nil {
		_c.SetCompletionTokensTotal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpace sets the "space" edge to the Space entity.
func (_c *ConversationCreate) SetSpace(v *Space) *ConversationCreate {
	return _c.SetSpaceID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ConversationCreate) AddMessages(v ...*Message) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by IDs.
func (_c *ConversationCreate) AddRunIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the ConversationRun entity.
func (_c *ConversationCreate) AddRuns(v ...*ConversationRun) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the ConversationRound entity by IDs.
func (_c *ConversationCreate) AddRoundIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddRoundIDs(ids...)
	return _c
}

// AddRounds adds the "rounds" edges to the ConversationRound entity.
func (_c *ConversationCreate) AddRounds(v ...*ConversationRound) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoundIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ConversationCreate) AddEventIDs(ids ...int) *ConversationCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ConversationCreate) AddEvents(v ...*Event) *ConversationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := conversation.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.SchedulingState(); !ok {
		v := conversation.DefaultSchedulingState
		_c.mutation.SetSchedulingState(v)
	}
	if _, ok := _c.mutation.GroupQueueRevision(); !ok {
		v := conversation.DefaultGroupQueueRevision
		_c.mutation.SetGroupQueueRevision(v)
	}
	if _, ok := _c.mutation.AutoRoundsRemaining(); !ok {
		v := conversation.DefaultAutoRoundsRemaining
		_c.mutation.SetAutoRoundsRemaining(v)
	}
	if _, ok := _c.mutation.PromptTokensTotal(); !ok {
		v := conversation.DefaultPromptTokensTotal
		_c.mutation.SetPromptTokensTotal(v)
	}
	if _, ok := _c.mutation.CompletionTokensTotal(); !ok {
		v := conversation.DefaultCompletionTokensTotal
		_c.mutation.SetCompletionTokensTotal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.SpaceID(); !ok {
		return &ValidationError{Name: "space_id", err: errors.New(`ent: missing required field "Conversation.space_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Conversation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := conversation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Conversation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchedulingState(); !ok {
		return &ValidationError{Name: "scheduling_state", err: errors.New(`ent: missing required field "Conversation.scheduling_state"`)}
	}
	if v, ok := _c.mutation.SchedulingState(); ok {
		if err := conversation.SchedulingStateValidator(v); err != nil {
			return &ValidationError{Name: "scheduling_state", err: fmt.Errorf(`ent: validator failed for field "Conversation.scheduling_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GroupQueueRevision(); !ok {
		return &ValidationError{Name: "group_queue_revision", err: errors.New(`ent: missing required field "Conversation.group_queue_revision"`)}
	}
	if _, ok := _c.mutation.AutoRoundsRemaining(); !ok {
		return &ValidationError{Name: "auto_rounds_remaining", err: errors.New(`ent: missing required field "Conversation.auto_rounds_remaining"`)}
	}
	if _, ok := _c.mutation.PromptTokensTotal(); !ok {
		return &ValidationError{Name: "prompt_tokens_total", err: errors.New(`ent: missing required field "Conversation.prompt_tokens_total"`)}
	}
	if _, ok := _c.mutation.CompletionTokensTotal(); !ok {
		return &ValidationError{Name: "completion_tokens_total", err: errors.New(`ent: missing required field "Conversation.completion_tokens_total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	if len(_c.mutation.SpaceIDs()) == 0 {
		return &ValidationError{Name: "space", err: errors.New(`ent: missing required edge "Conversation.space"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(conversation.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ParentConversationID(); ok {
		_spec.SetField(conversation.FieldParentConversationID, field.TypeString, value)
		_node.ParentConversationID = &value
	}
	if value, ok := _c.mutation.ForkedFromMessageID(); ok {
		_spec.SetField(conversation.FieldForkedFromMessageID, field.TypeString, value)
		_node.ForkedFromMessageID = &value
	}
	if value, ok := _c.mutation.SchedulingState(); ok {
		_spec.SetField(conversation.FieldSchedulingState, field.TypeEnum, value)
		_node.SchedulingState = value
	}
	if value, ok := _c.mutation.GroupQueueRevision(); ok {
		_spec.SetField(conversation.FieldGroupQueueRevision, field.TypeInt64, value)
		_node.GroupQueueRevision = value
	}
	if value, ok := _c.mutation.AutoRoundsRemaining(); ok {
		_spec.SetField(conversation.FieldAutoRoundsRemaining, field.TypeInt, value)
		_node.AutoRoundsRemaining = value
	}
	if value, ok := _c.mutation.PromptTokensTotal(); ok {
		_spec.SetField(conversation.FieldPromptTokensTotal, field.TypeInt64, value)
		_node.PromptTokensTotal = value
	}
	if value, ok := _c.mutation.CompletionTokensTotal(); ok {
		_spec.SetField(conversation.FieldCompletionTokensTotal, field.TypeInt64, value)
		_node.CompletionTokensTotal = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SpaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.SpaceTable,
			Columns: []string{conversation.SpaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(space.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SpaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
