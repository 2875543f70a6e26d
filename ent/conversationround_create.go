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
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
)

// ConversationRoundCreate is the builder for creating a ConversationRound entity.
type ConversationRoundCreate struct {
	config
	mutation *ConversationRoundMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationRoundCreate) SetConversationID(v string) *ConversationRoundCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversationRoundCreate) SetStatus(v conversationround.Status) *ConversationRoundCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversationRoundCreate) SetNillableStatus(v *conversationround.Status) *ConversationRoundCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSchedulingState sets the "scheduling_state" field.
func (_c *ConversationRoundCreate) SetSchedulingState(v conversationround.SchedulingState) *ConversationRoundCreate {
	_c.mutation.SetSchedulingState(v)
	return _c
}

// SetNillableSchedulingState sets the "scheduling_state" field if the given value is not nil.
func (_c *ConversationRoundCreate) SetNillableSchedulingState(v *conversationround.SchedulingState) *ConversationRoundCreate {
	if v != nil {
		_c.SetSchedulingState(*v)
	}
	return _c
}

// SetCurrentPosition sets the "current_position" field.
func (_c *ConversationRoundCreate) SetCurrentPosition(v int) *ConversationRoundCreate {
	_c.mutation.SetCurrentPosition(v)
	return _c
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_c *ConversationRoundCreate) SetNillableCurrentPosition(v *int) *ConversationRoundCreate {
	if v != nil {
		_c.SetCurrentPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationRoundCreate) SetCreatedAt(v time.Time) *ConversationRoundCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationRoundCreate) SetNillableCreatedAt(v *time.Time) *ConversationRoundCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ConversationRoundCreate) SetCompletedAt(v time.Time) *ConversationRoundCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ConversationRoundCreate) SetNillableCompletedAt(v *time.Time) *ConversationRoundCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationRoundCreate) SetID(v string) *ConversationRoundCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ConversationRoundCreate) SetConversation(v *Conversation) *ConversationRoundCreate {
	return _c.SetConversationID(v.ID)
}

// AddParticipantIDs adds the "participants" edge to the RoundParticipant entity by IDs.
func (_c *ConversationRoundCreate) AddParticipantIDs(ids ...string) *ConversationRoundCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the RoundParticipant entity.
func (_c *ConversationRoundCreate) AddParticipants(v ...*RoundParticipant) *ConversationRoundCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// Mutation returns the ConversationRoundMutation object of the builder.
func (_c *ConversationRoundCreate) Mutation() *ConversationRoundMutation {
	return _c.mutation
}

// Save creates the ConversationRound in the database.
func (_c *ConversationRoundCreate) Save(ctx context.Context) (*ConversationRound, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationRoundCreate) SaveX(ctx context.Context) *ConversationRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationRoundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationRoundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationRoundCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := conversationround.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SchedulingState(); !ok {
		v := conversationround.DefaultSchedulingState
		_c.mutation.SetSchedulingState(v)
	}
	if _, ok := _c.mutation.CurrentPosition(); !ok {
		v := conversationround.DefaultCurrentPosition
		_c.mutation.SetCurrentPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationround.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationRoundCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationRound.conversation_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConversationRound.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversationround.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversationRound.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchedulingState(); !ok {
		return &ValidationError{Name: "scheduling_state", err: errors.New(`ent: missing required field "ConversationRound.scheduling_state"`)}
	}
	if v, ok := _c.mutation.SchedulingState(); ok {
		if err := conversationround.SchedulingStateValidator(v); err != nil {
			return &ValidationError{Name: "scheduling_state", err: fmt.Errorf(`ent: validator failed for field "ConversationRound.scheduling_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentPosition(); !ok {
		return &ValidationError{Name: "current_position", err: errors.New(`ent: missing required field "ConversationRound.current_position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationRound.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ConversationRound.conversation"`)}
	}
	return nil
}

func (_c *ConversationRoundCreate) sqlSave(ctx context.Context) (*ConversationRound, error) {
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
			return nil, fmt.Errorf("unexpected ConversationRound.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationRoundCreate) createSpec() (*ConversationRound, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationRound{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationround.Table, sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversationround.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SchedulingState(); ok {
		_spec.SetField(conversationround.FieldSchedulingState, field.TypeEnum, value)
		_node.SchedulingState = value
	}
	if value, ok := _c.mutation.CurrentPosition(); ok {
		_spec.SetField(conversationround.FieldCurrentPosition, field.TypeInt, value)
		_node.CurrentPosition = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationround.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(conversationround.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationround.ConversationTable,
			Columns: []string{conversationround.ConversationColumn},
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
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationRoundCreateBulk is the builder for creating many ConversationRound entities in bulk.
type ConversationRoundCreateBulk struct {
	config
	err      error
	builders []*ConversationRoundCreate
}

// Save creates the ConversationRound entities in the database.
func (_c *ConversationRoundCreateBulk) Save(ctx context.Context) ([]*ConversationRound, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationRound, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationRoundMutation)
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
func (_c *ConversationRoundCreateBulk) SaveX(ctx context.Context) []*ConversationRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationRoundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationRoundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
