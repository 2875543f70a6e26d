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
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// ConversationRunCreate is the builder for creating a ConversationRun entity.
type ConversationRunCreate struct {
	config
	mutation *ConversationRunMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationRunCreate) SetConversationID(v string) *ConversationRunCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ConversationRunCreate) SetKind(v conversationrun.Kind) *ConversationRunCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversationRunCreate) SetStatus(v conversationrun.Status) *ConversationRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableStatus(v *conversationrun.Status) *ConversationRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ConversationRunCreate) SetReason(v string) *ConversationRunCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableReason(v *string) *ConversationRunCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (_c *ConversationRunCreate) SetSpeakerMembershipID(v string) *ConversationRunCreate {
	_c.mutation.SetSpeakerMembershipID(v)
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *ConversationRunCreate) SetRoundID(v string) *ConversationRunCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableRoundID(v *string) *ConversationRunCreate {
	if v != nil {
		_c.SetRoundID(*v)
	}
	return _c
}

// SetRunAfter sets the "run_after" field.
func (_c *ConversationRunCreate) SetRunAfter(v time.Time) *ConversationRunCreate {
	_c.mutation.SetRunAfter(v)
	return _c
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableRunAfter(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetRunAfter(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ConversationRunCreate) SetStartedAt(v time.Time) *ConversationRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableStartedAt(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ConversationRunCreate) SetFinishedAt(v time.Time) *ConversationRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableFinishedAt(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *ConversationRunCreate) SetHeartbeatAt(v time.Time) *ConversationRunCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableHeartbeatAt(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (_c *ConversationRunCreate) SetCancelRequestedAt(v time.Time) *ConversationRunCreate {
	_c.mutation.SetCancelRequestedAt(v)
	return _c
}

// SetNillableCancelRequestedAt sets the "cancel_requested_at" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableCancelRequestedAt(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetCancelRequestedAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ConversationRunCreate) SetError(v map[string]interface{}) *ConversationRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetDebug sets the "debug" field.
func (_c *ConversationRunCreate) SetDebug(v map[string]interface{}) *ConversationRunCreate {
	_c.mutation.SetDebug(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ConversationRunCreate) SetPodID(v string) *ConversationRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillablePodID(v *string) *ConversationRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationRunCreate) SetCreatedAt(v time.Time) *ConversationRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableCreatedAt(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationRunCreate) SetUpdatedAt(v time.Time) *ConversationRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationRunCreate) SetNillableUpdatedAt(v *time.Time) *ConversationRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationRunCreate) SetID(v string) *ConversationRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ConversationRunCreate) SetConversation(v *Conversation) *ConversationRunCreate {
	return _c.SetConversationID(v.ID)
}

// SetSpeakerID sets the "speaker" edge to the SpaceMembership entity by ID.
func (_c *ConversationRunCreate) SetSpeakerID(id string) *ConversationRunCreate {
	_c.mutation.SetSpeakerID(id)
	return _c
}

// SetSpeaker sets the "speaker" edge to the SpaceMembership entity.
func (_c *ConversationRunCreate) SetSpeaker(v *SpaceMembership) *ConversationRunCreate {
	return _c.SetSpeakerID(v.ID)
}

// Mutation returns the ConversationRunMutation object of the builder.
func (_c *ConversationRunCreate) Mutation() *ConversationRunMutation {
	return _c.mutation
}

// Save creates the ConversationRun in the database.
func (_c *ConversationRunCreate) Save(ctx context.Context) (*ConversationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationRunCreate) SaveX(ctx context.Context) *ConversationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := conversationrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversationrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationRunCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationRun.conversation_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ConversationRun.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := conversationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationRun.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConversationRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversationRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpeakerMembershipID(); !ok {
		return &ValidationError{Name: "speaker_membership_id", err: errors.New(`ent: missing required field "ConversationRun.speaker_membership_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConversationRun.updated_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ConversationRun.conversation"`)}
	}
	if len(_c.mutation.SpeakerIDs()) == 0 {
		return &ValidationError{Name: "speaker", err: errors.New(`ent: missing required edge "ConversationRun.speaker"`)}
	}
	return nil
}

func (_c *ConversationRunCreate) sqlSave(ctx context.Context) (*ConversationRun, error) {
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
			return nil, fmt.Errorf("unexpected ConversationRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationRunCreate) createSpec() (*ConversationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationrun.Table, sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(conversationrun.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversationrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(conversationrun.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(conversationrun.FieldRoundID, field.TypeString, value)
		_node.RoundID = &value
	}
	if value, ok := _c.mutation.RunAfter(); ok {
		_spec.SetField(conversationrun.FieldRunAfter, field.TypeTime, value)
		_node.RunAfter = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(conversationrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(conversationrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(conversationrun.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.CancelRequestedAt(); ok {
		_spec.SetField(conversationrun.FieldCancelRequestedAt, field.TypeTime, value)
		_node.CancelRequestedAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(conversationrun.FieldError, field.TypeJSON, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.Debug(); ok {
		_spec.SetField(conversationrun.FieldDebug, field.TypeJSON, value)
		_node.Debug = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(conversationrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationrun.ConversationTable,
			Columns: []string{conversationrun.ConversationColumn},
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
	if nodes := _c.mutation.SpeakerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationrun.SpeakerTable,
			Columns: []string{conversationrun.SpeakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SpeakerMembershipID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationRunCreateBulk is the builder for creating many ConversationRun entities in bulk.
type ConversationRunCreateBulk struct {
	config
	err      error
	builders []*ConversationRunCreate
}

// Save creates the ConversationRun entities in the database.
func (_c *ConversationRunCreateBulk) Save(ctx context.Context) ([]*ConversationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationRunMutation)
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
func (_c *ConversationRunCreateBulk) SaveX(ctx context.Context) []*ConversationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
