// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// MessageSwipeUpdate is the builder for updating MessageSwipe entities.
type MessageSwipeUpdate struct {
	config
	hooks    []Hook
	mutation *MessageSwipeMutation
}

// Where appends a list predicates to the MessageSwipeUpdate builder.
func (_u *MessageSwipeUpdate) Where(ps ...predicate.MessageSwipe) *MessageSwipeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageSwipeUpdate) SetContent(v string) *MessageSwipeUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageSwipeUpdate) SetNillableContent(v *string) *MessageSwipeUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTextContentID sets the "text_content_id" field.
func (_u *MessageSwipeUpdate) SetTextContentID(v string) *MessageSwipeUpdate {
	_u.mutation.SetTextContentID(v)
	return _u
}

// SetNillableTextContentID sets the "text_content_id" field if the given value is not nil.
func (_u *MessageSwipeUpdate) SetNillableTextContentID(v *string) *MessageSwipeUpdate {
	if v != nil {
		_u.SetTextContentID(*v)
	}
	return _u
}

// ClearTextContentID clears the value of the "text_content_id" field.
func (_u *MessageSwipeUpdate) ClearTextContentID() *MessageSwipeUpdate {
	_u.mutation.ClearTextContentID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *MessageSwipeUpdate) SetRunID(v string) *MessageSwipeUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MessageSwipeUpdate) SetNillableRunID(v *string) *MessageSwipeUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *MessageSwipeUpdate) ClearRunID() *MessageSwipeUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// Mutation returns the MessageSwipeMutation object of the builder.
func (_u *MessageSwipeUpdate) Mutation() *MessageSwipeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageSwipeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageSwipeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageSwipeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageSwipeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageSwipeUpdate) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageSwipe.message"`)
	}
	return nil
}

func (_u *MessageSwipeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageswipe.Table, messageswipe.Columns, sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(messageswipe.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextContentID(); ok {
		_spec.SetField(messageswipe.FieldTextContentID, field.TypeString, value)
	}
	if _u.mutation.TextContentIDCleared() {
		_spec.ClearField(messageswipe.FieldTextContentID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(messageswipe.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(messageswipe.FieldRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageswipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageSwipeUpdateOne is the builder for updating a single MessageSwipe entity.
type MessageSwipeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageSwipeMutation
}

// SetContent sets the "content" field.
func (_u *MessageSwipeUpdateOne) SetContent(v string) *MessageSwipeUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageSwipeUpdateOne) SetNillableContent(v *string) *MessageSwipeUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTextContentID sets the "text_content_id" field.
func (_u *MessageSwipeUpdateOne) SetTextContentID(v string) *MessageSwipeUpdateOne {
	_u.mutation.SetTextContentID(v)
	return _u
}

// SetNillableTextContentID sets the "text_content_id" field if the given value is not nil.
func (_u *MessageSwipeUpdateOne) SetNillableTextContentID(v *string) *MessageSwipeUpdateOne {
	if v != nil {
		_u.SetTextContentID(*v)
	}
	return _u
}

// ClearTextContentID clears the value of the "text_content_id" field.
func (_u *MessageSwipeUpdateOne) ClearTextContentID() *MessageSwipeUpdateOne {
	_u.mutation.ClearTextContentID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *MessageSwipeUpdateOne) SetRunID(v string) *MessageSwipeUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MessageSwipeUpdateOne) SetNillableRunID(v *string) *MessageSwipeUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *MessageSwipeUpdateOne) ClearRunID() *MessageSwipeUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// Mutation returns the MessageSwipeMutation object of the builder.
func (_u *MessageSwipeUpdateOne) Mutation() *MessageSwipeMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageSwipeUpdate builder.
func (_u *MessageSwipeUpdateOne) Where(ps ...predicate.MessageSwipe) *MessageSwipeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageSwipeUpdateOne) Select(field string, fields ...string) *MessageSwipeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageSwipe entity.
func (_u *MessageSwipeUpdateOne) Save(ctx context.Context) (*MessageSwipe, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageSwipeUpdateOne) SaveX(ctx context.Context) *MessageSwipe {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageSwipeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageSwipeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageSwipeUpdateOne) check() error {
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MessageSwipe.message"`)
	}
	return nil
}

func (_u *MessageSwipeUpdateOne) sqlSave(ctx context.Context) (_node *MessageSwipe, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageswipe.Table, messageswipe.Columns, sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageSwipe.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageswipe.FieldID)
		for _, f := range fields {
			if !messageswipe.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messageswipe.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(messageswipe.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextContentID(); ok {
		_spec.SetField(messageswipe.FieldTextContentID, field.TypeString, value)
	}
	if _u.mutation.TextContentIDCleared() {
		_spec.ClearField(messageswipe.FieldTextContentID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(messageswipe.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(messageswipe.FieldRunID, field.TypeString)
	}
	_node = &MessageSwipe{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageswipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
