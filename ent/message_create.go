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
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *MessageCreate) SetConversationID(v string) *MessageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *MessageCreate) SetSeq(v int) *MessageCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MessageCreate) SetRole(v message.Role) *MessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetVisibility sets the "visibility" field.
func (_c *MessageCreate) SetVisibility(v message.Visibility) *MessageCreate {
	_c.mutation.SetVisibility(v)
	return _c
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_c *MessageCreate) SetNillableVisibility(v *message.Visibility) *MessageCreate {
	if v != nil {
		_c.SetVisibility(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTextContentID sets the "text_content_id" field.
func (_c *MessageCreate) SetTextContentID(v string) *MessageCreate {
	_c.mutation.SetTextContentID(v)
	return _c
}

// SetNillableTextContentID sets the "text_content_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableTextContentID(v *string) *MessageCreate {
	if v != nil {
		_c.SetTextContentID(*v)
	}
	return _c
}

// SetActiveSwipeID sets the "active_swipe_id" field.
func (_c *MessageCreate) SetActiveSwipeID(v string) *MessageCreate {
	_c.mutation.SetActiveSwipeID(v)
	return _c
}

// SetNillableActiveSwipeID sets the "active_swipe_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableActiveSwipeID(v *string) *MessageCreate {
	if v != nil {
		_c.SetActiveSwipeID(*v)
	}
	return _c
}

// SetSwipesCount sets the "swipes_count" field.
func (_c *MessageCreate) SetSwipesCount(v int) *MessageCreate {
	_c.mutation.SetSwipesCount(v)
	return _c
}

// SetNillableSwipesCount sets the "swipes_count" field if the given value is not nil.
func (_c *MessageCreate) SetNillableSwipesCount(v *int) *MessageCreate {
	if v != nil {
		_c.SetSwipesCount(*v)
	}
	return _c
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (_c *MessageCreate) SetSpeakerMembershipID(v string) *MessageCreate {
	_c.mutation.SetSpeakerMembershipID(v)
	return _c
}

// SetNillableSpeakerMembershipID sets the "speaker_membership_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableSpeakerMembershipID(v *string) *MessageCreate {
	if v != nil {
		_c.SetSpeakerMembershipID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *MessageCreate) SetRunID(v string) *MessageCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableRunID(v *string) *MessageCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *MessageCreate) SetConversation(v *Conversation) *MessageCreate {
	return _c.SetConversationID(v.ID)
}

// AddSwipeIDs adds the "swipes" edge to the MessageSwipe entity by IDs.
func (_c *MessageCreate) AddSwipeIDs(ids ...string) *MessageCreate {
	_c.mutation.AddSwipeIDs(ids...)
	return _c
}

// AddSwipes adds the "swipes" edges to the MessageSwipe entity.
func (_c *MessageCreate) AddSwipes(v ...*MessageSwipe) *MessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSwipeIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.Visibility(); !ok {
		v := message.DefaultVisibility
		_c.mutation.SetVisibility(v)
	}
	if _, ok := _c.mutation.SwipesCount(); !ok {
		v := message.DefaultSwipesCount
		_c.mutation.SetSwipesCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Message.conversation_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Message.seq"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Message.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Visibility(); !ok {
		return &ValidationError{Name: "visibility", err: errors.New(`ent: missing required field "Message.visibility"`)}
	}
	if v, ok := _c.mutation.Visibility(); ok {
		if err := message.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "Message.visibility": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.SwipesCount(); !ok {
		return &ValidationError{Name: "swipes_count", err: errors.New(`ent: missing required field "Message.swipes_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "Message.conversation"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(message.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Visibility(); ok {
		_spec.SetField(message.FieldVisibility, field.TypeEnum, value)
		_node.Visibility = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TextContentID(); ok {
		_spec.SetField(message.FieldTextContentID, field.TypeString, value)
		_node.TextContentID = &value
	}
	if value, ok := _c.mutation.ActiveSwipeID(); ok {
		_spec.SetField(message.FieldActiveSwipeID, field.TypeString, value)
		_node.ActiveSwipeID = &value
	}
	if value, ok := _c.mutation.SwipesCount(); ok {
		_spec.SetField(message.FieldSwipesCount, field.TypeInt, value)
		_node.SwipesCount = value
	}
	if value, ok := _c.mutation.SpeakerMembershipID(); ok {
		_spec.SetField(message.FieldSpeakerMembershipID, field.TypeString, value)
		_node.SpeakerMembershipID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(message.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SwipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
