// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// MessageSwipeDelete is the builder for deleting a MessageSwipe entity.
type MessageSwipeDelete struct {
	config
	hooks    []Hook
	mutation *MessageSwipeMutation
}

// Where appends a list predicates to the MessageSwipeDelete builder.
func (_d *MessageSwipeDelete) Where(ps ...predicate.MessageSwipe) *MessageSwipeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MessageSwipeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageSwipeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MessageSwipeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(messageswipe.Table, sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MessageSwipeDeleteOne is the builder for deleting a single MessageSwipe entity.
type MessageSwipeDeleteOne struct {
	_d *MessageSwipeDelete
}

// Where appends a list predicates to the MessageSwipeDelete builder.
func (_d *MessageSwipeDeleteOne) Where(ps ...predicate.MessageSwipe) *MessageSwipeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MessageSwipeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{messageswipe.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MessageSwipeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
