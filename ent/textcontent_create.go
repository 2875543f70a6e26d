// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/textcontent"
)

// TextContentCreate is the builder for creating a TextContent entity.
type TextContentCreate struct {
	config
	mutation *TextContentMutation
	hooks    []Hook
}

// SetBody sets the "body" field.
func (_c *TextContentCreate) SetBody(v string) *TextContentCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetRefCount sets the "ref_count" field.
func (_c *TextContentCreate) SetRefCount(v int) *TextContentCreate {
	_c.mutation.SetRefCount(v)
	return _c
}

// SetNillableRefCount sets the "ref_count" field if the given value is not nil.
func (_c *TextContentCreate) SetNillableRefCount(v *int) *TextContentCreate {
	if v != nil {
		_c.SetRefCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TextContentCreate) SetCreatedAt(v time.Time) *TextContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TextContentCreate) SetNillableCreatedAt(v *time.Time) *TextContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TextContentCreate) SetUpdatedAt(v time.Time) *TextContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TextContentCreate) SetNillableUpdatedAt(v *time.Time) *TextContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TextContentCreate) SetID(v string) *TextContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TextContentMutation object of the builder.
func (_c *TextContentCreate) Mutation() *TextContentMutation {
	return _c.mutation
}

// Save creates the TextContent in the database.
func (_c *TextContentCreate) Save(ctx context.Context) (*TextContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TextContentCreate) SaveX(ctx context.Context) *TextContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TextContentCreate) defaults() {
	if _, ok := _c.mutation.RefCount(); !ok {
		v := textcontent.DefaultRefCount
		_c.mutation.SetRefCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := textcontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := textcontent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TextContentCreate) check() error {
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "TextContent.body"`)}
	}
	if _, ok := _c.mutation.RefCount(); !ok {
		return &ValidationError{Name: "ref_count", err: errors.New(`ent: missing required field "TextContent.ref_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TextContent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TextContent.updated_at"`)}
	}
	return nil
}

func (_c *TextContentCreate) sqlSave(ctx context.Context) (*TextContent, error) {
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
			return nil, fmt.Errorf("unexpected TextContent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TextContentCreate) createSpec() (*TextContent, *sqlgraph.CreateSpec) {
	var (
		_node = &TextContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(textcontent.Table, sqlgraph.NewFieldSpec(textcontent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(textcontent.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.RefCount(); ok {
		_spec.SetField(textcontent.FieldRefCount, field.TypeInt, value)
		_node.RefCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(textcontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(textcontent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TextContentCreateBulk is the builder for creating many TextContent entities in bulk.
type TextContentCreateBulk struct {
	config
	err      error
	builders []*TextContentCreate
}

// Save creates the TextContent entities in the database.
func (_c *TextContentCreateBulk) Save(ctx context.Context) ([]*TextContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TextContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TextContentMutation)
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
func (_c *TextContentCreateBulk) SaveX(ctx context.Context) []*TextContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TextContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TextContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
