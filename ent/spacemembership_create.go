// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceMembershipCreate is the builder for creating a SpaceMembership entity.
type SpaceMembershipCreate struct {
	config
	mutation *SpaceMembershipMutation
	hooks    []Hook
}

// SetSpaceID sets the "space_id" field.
func (_c *SpaceMembershipCreate) SetSpaceID(v string) *SpaceMembershipCreate {
	_c.mutation.SetSpaceID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SpaceMembershipCreate) SetKind(v spacemembership.Kind) *SpaceMembershipCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *SpaceMembershipCreate) SetDisplayName(v string) *SpaceMembershipCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetAvatarURL sets the "avatar_url" field.
func (_c *SpaceMembershipCreate) SetAvatarURL(v string) *SpaceMembershipCreate {
	_c.mutation.SetAvatarURL(v)
	return _c
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableAvatarURL(v *string) *SpaceMembershipCreate {
	if v != nil {
		_c.SetAvatarURL(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *SpaceMembershipCreate) SetPosition(v int) *SpaceMembershipCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetParticipation sets the "participation" field.
func (_c *SpaceMembershipCreate) SetParticipation(v spacemembership.Participation) *SpaceMembershipCreate {
	_c.mutation.SetParticipation(v)
	return _c
}

// SetNillableParticipation sets the "participation" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableParticipation(v *spacemembership.Participation) *SpaceMembershipCreate {
	if v != nil {
		_c.SetParticipation(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SpaceMembershipCreate) SetStatus(v spacemembership.Status) *SpaceMembershipCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableStatus(v *spacemembership.Status) *SpaceMembershipCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTalkativeness sets the "talkativeness" field.
func (_c *SpaceMembershipCreate) SetTalkativeness(v float64) *SpaceMembershipCreate {
	_c.mutation.SetTalkativeness(v)
	return _c
}

// SetNillableTalkativeness sets the "talkativeness" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableTalkativeness(v *float64) *SpaceMembershipCreate {
	if v != nil {
		_c.SetTalkativeness(*v)
	}
	return _c
}

// SetCopilotMode sets the "copilot_mode" field.
func (_c *SpaceMembershipCreate) SetCopilotMode(v spacemembership.CopilotMode) *SpaceMembershipCreate {
	_c.mutation.SetCopilotMode(v)
	return _c
}

// SetNillableCopilotMode sets the "copilot_mode" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableCopilotMode(v *spacemembership.CopilotMode) *SpaceMembershipCreate {
	if v != nil {
		_c.SetCopilotMode(*v)
	}
	return _c
}

// SetCopilotRemainingSteps sets the "copilot_remaining_steps" field.
func (_c *SpaceMembershipCreate) SetCopilotRemainingSteps(v int) *SpaceMembershipCreate {
	_c.mutation.SetCopilotRemainingSteps(v)
	return _c
}

// SetNillableCopilotRemainingSteps sets the "copilot_remaining_steps" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableCopilotRemainingSteps(v *int) *SpaceMembershipCreate {
	if v != nil {
		_c.SetCopilotRemainingSteps(*v)
	}
	return _c
}

// SetBoundCharacterID sets the "bound_character_id" field.
func (_c *SpaceMembershipCreate) SetBoundCharacterID(v string) *SpaceMembershipCreate {
	_c.mutation.SetBoundCharacterID(v)
	return _c
}

// SetNillableBoundCharacterID sets the "bound_character_id" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableBoundCharacterID(v *string) *SpaceMembershipCreate {
	if v != nil {
		_c.SetBoundCharacterID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpaceMembershipCreate) SetCreatedAt(v time.Time) *SpaceMembershipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableCreatedAt(v *time.Time) *SpaceMembershipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpaceMembershipCreate) SetUpdatedAt(v time.Time) *SpaceMembershipCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpaceMembershipCreate) SetNillableUpdatedAt(v *time.Time) *SpaceMembershipCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpaceMembershipCreate) SetID(v string) *SpaceMembershipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSpace sets the "space" edge to the Space entity.
func (_c *SpaceMembershipCreate) SetSpace(v *Space) *SpaceMembershipCreate {
	return _c.SetSpaceID(v.ID)
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by IDs.
func (_c *SpaceMembershipCreate) AddRunIDs(ids ...string) *SpaceMembershipCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the ConversationRun entity.
func (_c *SpaceMembershipCreate) AddRuns(v ...*ConversationRun) *SpaceMembershipCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the SpaceMembershipMutation object of the builder.
func (_c *SpaceMembershipCreate) Mutation() *SpaceMembershipMutation {
	return _c.mutation
}

// Save creates the SpaceMembership in the database.
func (_c *SpaceMembershipCreate) Save(ctx context.Context) (*SpaceMembership, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpaceMembershipCreate) SaveX(ctx context.Context) *SpaceMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpaceMembershipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpaceMembershipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpaceMembershipCreate) defaults() {
	if _, ok := _c.mutation.Participation(); !ok {
		v := spacemembership.DefaultParticipation
		_c.mutation.SetParticipation(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := spacemembership.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CopilotMode(); !ok {
		v := spacemembership.DefaultCopilotMode
		_c.mutation.SetCopilotMode(v)
	}
	if _, ok := _c.mutation.CopilotRemainingSteps(); !ok {
		v := spacemembership.DefaultCopilotRemainingSteps
		_c.mutation.SetCopilotRemainingSteps(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spacemembership.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := spacemembership.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpaceMembershipCreate) check() error {
	if _, ok := _c.mutation.SpaceID(); !ok {
		return &ValidationError{Name: "space_id", err: errors.New(`ent: missing required field "SpaceMembership.space_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SpaceMembership.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := spacemembership.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "SpaceMembership.display_name"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SpaceMembership.position"`)}
	}
	if _, ok := _c.mutation.Participation(); !ok {
		return &ValidationError{Name: "participation", err: errors.New(`ent: missing required field "SpaceMembership.participation"`)}
	}
	if v, ok := _c.mutation.Participation(); ok {
		if err := spacemembership.ParticipationValidator(v); err != nil {
			return &ValidationError{Name: "participation", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.participation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SpaceMembership.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := spacemembership.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CopilotMode(); !ok {
		return &ValidationError{Name: "copilot_mode", err: errors.New(`ent: missing required field "SpaceMembership.copilot_mode"`)}
	}
	if v, ok := _c.mutation.CopilotMode(); ok {
		if err := spacemembership.CopilotModeValidator(v); err != nil {
			return &ValidationError{Name: "copilot_mode", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.copilot_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CopilotRemainingSteps(); !ok {
		return &ValidationError{Name: "copilot_remaining_steps", err: errors.New(`ent: missing required field "SpaceMembership.copilot_remaining_steps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpaceMembership.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SpaceMembership.updated_at"`)}
	}
	if len(_c.mutation.SpaceIDs()) == 0 {
		return &ValidationError{Name: "space", err: errors.New(`ent: missing required edge "SpaceMembership.space"`)}
	}
	return nil
}

func (_c *SpaceMembershipCreate) sqlSave(ctx context.Context) (*SpaceMembership, error) {
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
			return nil, fmt.Errorf("unexpected SpaceMembership.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpaceMembershipCreate) createSpec() (*SpaceMembership, *sqlgraph.CreateSpec) {
	var (
		_node = &SpaceMembership{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spacemembership.Table, sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(spacemembership.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(spacemembership.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.AvatarURL(); ok {
		_spec.SetField(spacemembership.FieldAvatarURL, field.TypeString, value)
		_node.AvatarURL = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(spacemembership.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Participation(); ok {
		_spec.SetField(spacemembership.FieldParticipation, field.TypeEnum, value)
		_node.Participation = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(spacemembership.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Talkativeness(); ok {
		_spec.SetField(spacemembership.FieldTalkativeness, field.TypeFloat64, value)
		_node.Talkativeness = &value
	}
	if value, ok := _c.mutation.CopilotMode(); ok {
		_spec.SetField(spacemembership.FieldCopilotMode, field.TypeEnum, value)
		_node.CopilotMode = value
	}
	if value, ok := _c.mutation.CopilotRemainingSteps(); ok {
		_spec.SetField(spacemembership.FieldCopilotRemainingSteps, field.TypeInt, value)
		_node.CopilotRemainingSteps = value
	}
	if value, ok := _c.mutation.BoundCharacterID(); ok {
		_spec.SetField(spacemembership.FieldBoundCharacterID, field.TypeString, value)
		_node.BoundCharacterID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spacemembership.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(spacemembership.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SpaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   spacemembership.SpaceTable,
			Columns: []string{spacemembership.SpaceColumn},
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
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
	return _node, _spec
}

// SpaceMembershipCreateBulk is the builder for creating many SpaceMembership entities in bulk.
type SpaceMembershipCreateBulk struct {
	config
	err      error
	builders []*SpaceMembershipCreate
}

// Save creates the SpaceMembership entities in the database.
func (_c *SpaceMembershipCreateBulk) Save(ctx context.Context) ([]*SpaceMembership, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpaceMembership, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpaceMembershipMutation)
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
func (_c *SpaceMembershipCreateBulk) SaveX(ctx context.Context) []*SpaceMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpaceMembershipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpaceMembershipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
