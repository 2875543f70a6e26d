// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
)

// MessageSwipeCreate is the builder for creating a MessageSwipe entity.
type MessageSwipeCreate struct {
	config
	mutation *MessageSwipeMutation
	hooks    []Hook
}

// SetMessageID sets the "message_id" field.
func (_c *MessageSwipeCreate) SetMessageID(v string) *MessageSwipeCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *MessageSwipeCreate) SetPosition(v int) *MessageSwipeCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageSwipeCreate) SetContent(v string) *MessageSwipeCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTextContentID sets the "text_content_id" field.
func (_c *MessageSwipeCreate) SetTextContentID(v string) *MessageSwipeCreate {
	_c.mutation.SetTextContentID(v)
	return _c
}

// SetNillableTextContentID sets the "text_content_id" field if the given value is not nil.
func (_c *MessageSwipeCreate) SetNillableTextContentID(v *string) *MessageSwipeCreate {
	if v != nil {
		_c.SetTextContentID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *MessageSwipeCreate) SetRunID(v string) *MessageSwipeCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *MessageSwipeCreate) SetNillableRunID(v *string) *MessageSwipeCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageSwipeCreate) SetCreatedAt(v time.Time) *MessageSwipeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageSwipeCreate) SetNillableCreatedAt(v *time.Time) *MessageSwipeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageSwipeCreate) SetID(v string) *MessageSwipeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMessage sets the "message" edge to the Message entity.
func (_c *MessageSwipeCreate) SetMessage(v *Message) *MessageSwipeCreate {
	return _c.SetMessageID(v.ID)
}

// Mutation returns the MessageSwipeMutation object of the builder.
func (_c *MessageSwipeCreate) Mutation() *MessageSwipeMutation {
	return _c.mutation
}

// Save creates the MessageSwipe in the database.
func (_c *MessageSwipeCreate) Save(ctx context.Context) (*MessageSwipe, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageSwipeCreate) SaveX(ctx context.Context) *MessageSwipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageSwipeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageSwipeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageSwipeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := messageswipe.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageSwipeCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "MessageSwipe.message_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "MessageSwipe.position"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MessageSwipe.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MessageSwipe.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "MessageSwipe.message"`)}
	}
	return nil
}

func (_c *MessageSwipeCreate) sqlSave(ctx context.Context) (*MessageSwipe, error) {
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
			return nil, fmt.Errorf("unexpected MessageSwipe.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageSwipeCreate) createSpec() (*MessageSwipe, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageSwipe{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageswipe.Table, sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(messageswipe.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(messageswipe.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TextContentID(); ok {
		_spec.SetField(messageswipe.FieldTextContentID, field.TypeString, value)
		_node.TextContentID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(messageswipe.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(messageswipe.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   messageswipe.MessageTable,
			Columns: []string{messageswipe.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageSwipeCreateBulk is the builder for creating many MessageSwipe entities in bulk.
type MessageSwipeCreateBulk struct {
	config
	err      error
	builders []*MessageSwipeCreate
}

// Save creates the MessageSwipe entities in the database.
func (_c *MessageSwipeCreateBulk) Save(ctx context.Context) ([]*MessageSwipe, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageSwipe, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageSwipeMutation)
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
func (_c *MessageSwipeCreateBulk) SaveX(ctx context.Context) []*MessageSwipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageSwipeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageSwipeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
