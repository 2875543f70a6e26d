// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
)

// RoundParticipantUpdate is the builder for updating RoundParticipant entities.
type RoundParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *RoundParticipantMutation
}

// Where appends a list predicates to the RoundParticipantUpdate builder.
func (_u *RoundParticipantUpdate) Where(ps ...predicate.RoundParticipant) *RoundParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoundParticipantUpdate) SetStatus(v roundparticipant.Status) *RoundParticipantUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoundParticipantUpdate) SetNillableStatus(v *roundparticipant.Status) *RoundParticipantUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoundParticipantMutation object of the builder.
func (_u *RoundParticipantUpdate) Mutation() *RoundParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundParticipantUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := roundparticipant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RoundParticipant.status": %w`, err)}
		}
	}
	if _u.mutation.RoundCleared() && len(_u.mutation.RoundIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoundParticipant.round"`)
	}
	return nil
}

func (_u *RoundParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundparticipant.Table, roundparticipant.Columns, sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roundparticipant.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundParticipantUpdateOne is the builder for updating a single RoundParticipant entity.
type RoundParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundParticipantMutation
}

// SetStatus sets the "status" field.
func (_u *RoundParticipantUpdateOne) SetStatus(v roundparticipant.Status) *RoundParticipantUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoundParticipantUpdateOne) SetNillableStatus(v *roundparticipant.Status) *RoundParticipantUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoundParticipantMutation object of the builder.
func (_u *RoundParticipantUpdateOne) Mutation() *RoundParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundParticipantUpdate builder.
func (_u *RoundParticipantUpdateOne) Where(ps ...predicate.RoundParticipant) *RoundParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundParticipantUpdateOne) Select(field string, fields ...string) *RoundParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundParticipant entity.
func (_u *RoundParticipantUpdateOne) Save(ctx context.Context) (*RoundParticipant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundParticipantUpdateOne) SaveX(ctx context.Context) *RoundParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := roundparticipant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RoundParticipant.status": %w`, err)}
		}
	}
	if _u.mutation.RoundCleared() && len(_u.mutation.RoundIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoundParticipant.round"`)
	}
	return nil
}

func (_u *RoundParticipantUpdateOne) sqlSave(ctx context.Context) (_node *RoundParticipant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundparticipant.Table, roundparticipant.Columns, sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundparticipant.FieldID)
		for _, f := range fields {
			if !roundparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundparticipant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roundparticipant.FieldStatus, field.TypeEnum, value)
	}
	_node = &RoundParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
