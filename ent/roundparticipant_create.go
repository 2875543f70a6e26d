// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
)

// RoundParticipantCreate is the builder for creating a RoundParticipant entity.
type RoundParticipantCreate struct {
	config
	mutation *RoundParticipantMutation
	hooks    []Hook
}

// SetRoundID sets the "round_id" field.
func (_c *RoundParticipantCreate) SetRoundID(v string) *RoundParticipantCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetMembershipID sets the "membership_id" field.
func (_c *RoundParticipantCreate) SetMembershipID(v string) *RoundParticipantCreate {
	_c.mutation.SetMembershipID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *RoundParticipantCreate) SetPosition(v int) *RoundParticipantCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RoundParticipantCreate) SetStatus(v roundparticipant.Status) *RoundParticipantCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RoundParticipantCreate) SetNillableStatus(v *roundparticipant.Status) *RoundParticipantCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoundParticipantCreate) SetID(v string) *RoundParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRound sets the "round" edge to the ConversationRound entity.
func (_c *RoundParticipantCreate) SetRound(v *ConversationRound) *RoundParticipantCreate {
	return _c.SetRoundID(v.ID)
}

// Mutation returns the RoundParticipantMutation object of the builder.
func (_c *RoundParticipantCreate) Mutation() *RoundParticipantMutation {
	return _c.mutation
}

// Save creates the RoundParticipant in the database.
func (_c *RoundParticipantCreate) Save(ctx context.Context) (*RoundParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundParticipantCreate) SaveX(ctx context.Context) *RoundParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundParticipantCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := roundparticipant.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundParticipantCreate) check() error {
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "RoundParticipant.round_id"`)}
	}
	if _, ok := _c.mutation.MembershipID(); !ok {
		return &ValidationError{Name: "membership_id", err: errors.New(`ent: missing required field "RoundParticipant.membership_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "RoundParticipant.position"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RoundParticipant.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := roundparticipant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RoundParticipant.status": %w`, err)}
		}
	}
	if len(_c.mutation.RoundIDs()) == 0 {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required edge "RoundParticipant.round"`)}
	}
	return nil
}

func (_c *RoundParticipantCreate) sqlSave(ctx context.Context) (*RoundParticipant, error) {
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
			return nil, fmt.Errorf("unexpected RoundParticipant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoundParticipantCreate) createSpec() (*RoundParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundparticipant.Table, sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MembershipID(); ok {
		_spec.SetField(roundparticipant.FieldMembershipID, field.TypeString, value)
		_node.MembershipID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(roundparticipant.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(roundparticipant.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.RoundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roundparticipant.RoundTable,
			Columns: []string{roundparticipant.RoundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RoundID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RoundParticipantCreateBulk is the builder for creating many RoundParticipant entities in bulk.
type RoundParticipantCreateBulk struct {
	config
	err      error
	builders []*RoundParticipantCreate
}

// Save creates the RoundParticipant entities in the database.
func (_c *RoundParticipantCreateBulk) Save(ctx context.Context) ([]*RoundParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundParticipantMutation)
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
func (_c *RoundParticipantCreateBulk) SaveX(ctx context.Context) []*RoundParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
