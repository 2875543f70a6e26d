// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/textcontent"
)

// TextContentUpdate is the builder for updating TextContent entities.
type TextContentUpdate struct {
	config
	hooks    []Hook
	mutation *TextContentMutation
}

// Where appends a list predicates to the TextContentUpdate builder.
func (_u *TextContentUpdate) Where(ps ...predicate.TextContent) *TextContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBody sets the "body" field.
func (_u *TextContentUpdate) SetBody(v string) *TextContentUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TextContentUpdate) SetNillableBody(v *string) *TextContentUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetRefCount sets the "ref_count" field.
func (_u *TextContentUpdate) SetRefCount(v int) *TextContentUpdate {
	_u.mutation.ResetRefCount()
	_u.mutation.SetRefCount(v)
	return _u
}

// SetNillableRefCount sets the "ref_count" field if the given value is not nil.
func (_u *TextContentUpdate) SetNillableRefCount(v *int) *TextContentUpdate {
	if v != nil {
		_u.SetRefCount(*v)
	}
	return _u
}

// AddRefCount adds value to the "ref_count" field.
func (_u *TextContentUpdate) AddRefCount(v int) *TextContentUpdate {
	_u.mutation.AddRefCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TextContentUpdate) SetUpdatedAt(v time.Time) *TextContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TextContentMutation object of the builder.
func (_u *TextContentUpdate) Mutation() *TextContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TextContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TextContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TextContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := textcontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TextContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(textcontent.Table, textcontent.Columns, sqlgraph.NewFieldSpec(textcontent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(textcontent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefCount(); ok {
		_spec.SetField(textcontent.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRefCount(); ok {
		_spec.AddField(textcontent.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(textcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{textcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TextContentUpdateOne is the builder for updating a single TextContent entity.
type TextContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TextContentMutation
}

// SetBody sets the "body" field.
func (_u *TextContentUpdateOne) SetBody(v string) *TextContentUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TextContentUpdateOne) SetNillableBody(v *string) *TextContentUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetRefCount sets the "ref_count" field.
func (_u *TextContentUpdateOne) SetRefCount(v int) *TextContentUpdateOne {
	_u.mutation.ResetRefCount()
	_u.mutation.SetRefCount(v)
	return _u
}

// SetNillableRefCount sets the "ref_count" field if the given value is not nil.
func (_u *TextContentUpdateOne) SetNillableRefCount(v *int) *TextContentUpdateOne {
	if v != nil {
		_u.SetRefCount(*v)
	}
	return _u
}

// AddRefCount adds value to the "ref_count" field.
func (_u *TextContentUpdateOne) AddRefCount(v int) *TextContentUpdateOne {
	_u.mutation.AddRefCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TextContentUpdateOne) SetUpdatedAt(v time.Time) *TextContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TextContentMutation object of the builder.
func (_u *TextContentUpdateOne) Mutation() *TextContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TextContentUpdate builder.
func (_u *TextContentUpdateOne) Where(ps ...predicate.TextContent) *TextContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TextContentUpdateOne) Select(field string, fields ...string) *TextContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TextContent entity.
func (_u *TextContentUpdateOne) Save(ctx context.Context) (*TextContent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TextContentUpdateOne) SaveX(ctx context.Context) *TextContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TextContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TextContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TextContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := textcontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TextContentUpdateOne) sqlSave(ctx context.Context) (_node *TextContent, err error) {
	_spec := sqlgraph.NewUpdateSpec(textcontent.Table, textcontent.Columns, sqlgraph.NewFieldSpec(textcontent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TextContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, textcontent.FieldID)
		for _, f := range fields {
			if !textcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != textcontent.FieldID {
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
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(textcontent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefCount(); ok {
		_spec.SetField(textcontent.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRefCount(); ok {
		_spec.AddField(textcontent.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(textcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TextContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{textcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
