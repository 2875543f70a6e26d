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
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceCreate is the builder for creating a Space entity.
type SpaceCreate struct {
	config
	mutation *SpaceMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SpaceCreate) SetName(v string) *SpaceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetReplyOrder sets the "reply_order" field.
func (_c *SpaceCreate) SetReplyOrder(v space.ReplyOrder) *SpaceCreate {
	_c.mutation.SetReplyOrder(v)
	return _c
}

// SetNillableReplyOrder sets the "reply_order" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableReplyOrder(v *space.ReplyOrder) *SpaceCreate {
	if v != nil {
		_c.SetReplyOrder(*v)
	}
	return _c
}

// SetAllowSelfResponses sets the "allow_self_responses" field.
func (_c *SpaceCreate) SetAllowSelfResponses(v bool) *SpaceCreate {
	_c.mutation.SetAllowSelfResponses(v)
	return _c
}

// SetNillableAllowSelfResponses sets the "allow_self_responses" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableAllowSelfResponses(v *bool) *SpaceCreate {
	if v != nil {
		_c.SetAllowSelfResponses(*v)
	}
	return _c
}

// SetAutoModeEnabled sets the "auto_mode_enabled" field.
func (_c *SpaceCreate) SetAutoModeEnabled(v bool) *SpaceCreate {
	_c.mutation.SetAutoModeEnabled(v)
	return _c
}

// SetNillableAutoModeEnabled sets the "auto_mode_enabled" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableAutoModeEnabled(v *bool) *SpaceCreate {
	if v != nil {
		_c.SetAutoModeEnabled(*v)
	}
	return _c
}

// SetAutoModeDelayMs sets the "auto_mode_delay_ms" field.
func (_c *SpaceCreate) SetAutoModeDelayMs(v int) *SpaceCreate {
	_c.mutation.SetAutoModeDelayMs(v)
	return _c
}

// SetNillableAutoModeDelayMs sets the "auto_mode_delay_ms" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableAutoModeDelayMs(v *int) *SpaceCreate {
	if v != nil {
		_c.SetAutoModeDelayMs(*v)
	}
	return _c
}

// SetInputPolicy sets the "input_policy" field.
func (_c *SpaceCreate) SetInputPolicy(v space.InputPolicy) *SpaceCreate {
	_c.mutation.SetInputPolicy(v)
	return _c
}

// SetNillableInputPolicy sets the "input_policy" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableInputPolicy(v *space.InputPolicy) *SpaceCreate {
	if v != nil {
		_c.SetInputPolicy(*v)
	}
	return _c
}

// SetUserTurnDebounceMs sets the "user_turn_debounce_ms" field.
func (_c *SpaceCreate) SetUserTurnDebounceMs(v int) *SpaceCreate {
	_c.mutation.SetUserTurnDebounceMs(v)
	return _c
}

// SetNillableUserTurnDebounceMs sets the "user_turn_debounce_ms" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableUserTurnDebounceMs(v *int) *SpaceCreate {
	if v != nil {
		_c.SetUserTurnDebounceMs(*v)
	}
	return _c
}

// SetCardHandlingMode sets the "card_handling_mode" field.
func (_c *SpaceCreate) SetCardHandlingMode(v string) *SpaceCreate {
	_c.mutation.SetCardHandlingMode(v)
	return _c
}

// SetNillableCardHandlingMode sets the "card_handling_mode" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableCardHandlingMode(v *string) *SpaceCreate {
	if v != nil {
		_c.SetCardHandlingMode(*v)
	}
	return _c
}

// SetRelaxMessageTrim sets the "relax_message_trim" field.
func (_c *SpaceCreate) SetRelaxMessageTrim(v bool) *SpaceCreate {
	_c.mutation.SetRelaxMessageTrim(v)
	return _c
}

// SetNillableRelaxMessageTrim sets the "relax_message_trim" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableRelaxMessageTrim(v *bool) *SpaceCreate {
	if v != nil {
		_c.SetRelaxMessageTrim(*v)
	}
	return _c
}

// SetTokenLimit sets the "token_limit" field.
func (_c *SpaceCreate) SetTokenLimit(v int64) *SpaceCreate {
	_c.mutation.SetTokenLimit(v)
	return _c
}

// SetNillableTokenLimit sets the "token_limit" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableTokenLimit(v *int64) *SpaceCreate {
	if v != nil {
		_c.SetTokenLimit(*v)
	}
	return _c
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (_c *SpaceCreate) SetPromptTokensTotal(v int64) *SpaceCreate {
	_c.mutation.SetPromptTokensTotal(v)
	return _c
}

// SetNillablePromptTokensTotal sets the "prompt_tokens_total" field if the given value is not nil.
func (_c *SpaceCreate) SetNillablePromptTokensTotal(v *int64) *SpaceCreate {
	if v != nil {
		_c.SetPromptTokensTotal(*v)
	}
	return _c
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (_c *SpaceCreate) SetCompletionTokensTotal(v int64) *SpaceCreate {
	_c.mutation.SetCompletionTokensTotal(v)
	return _c
}

// SetNillableCompletionTokensTotal sets the "completion_tokens_total" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableCompletionTokensTotal(v *int64) *SpaceCreate {
	if v != nil {
		_c.SetCompletionTokensTotal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpaceCreate) SetCreatedAt(v time.Time) *SpaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableCreatedAt(v *time.Time) *SpaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SpaceCreate) SetUpdatedAt(v time.Time) *SpaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SpaceCreate) SetNillableUpdatedAt(v *time.Time) *SpaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpaceCreate) SetID(v string) *SpaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMembershipIDs adds the "memberships" edge to the SpaceMembership entity by IDs.
func (_c *SpaceCreate) AddMembershipIDs(ids ...string) *SpaceCreate {
	_c.mutation.AddMembershipIDs(ids...)
	return _c
}

// AddMemberships adds the "memberships" edges to the SpaceMembership entity.
func (_c *SpaceCreate) AddMemberships(v ...*SpaceMembership) *SpaceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMembershipIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *SpaceCreate) AddConversationIDs(ids ...string) *SpaceCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *SpaceCreate) AddConversations(v ...*Conversation) *SpaceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// Mutation returns the SpaceMutation object of the builder.
func (_c *SpaceCreate) Mutation() *SpaceMutation {
	return _c.mutation
}

// Save creates the Space in the database.
func (_c *SpaceCreate) Save(ctx context.Context) (*Space, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpaceCreate) SaveX(ctx context.Context) *Space {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpaceCreate) defaults() {
	if _, ok := _c.mutation.ReplyOrder(); !ok {
		v := space.DefaultReplyOrder
		_c.mutation.SetReplyOrder(v)
	}
	if _, ok := _c.mutation.AllowSelfResponses(); !ok {
		v := space.DefaultAllowSelfResponses
		_c.mutation.SetAllowSelfResponses(v)
	}
	if _, ok := _c.mutation.AutoModeEnabled(); !ok {
		v := space.DefaultAutoModeEnabled
		_c.mutation.SetAutoModeEnabled(v)
	}
	if _, ok := _c.mutation.AutoModeDelayMs(); !ok {
		v := space.DefaultAutoModeDelayMs
		_c.mutation.SetAutoModeDelayMs(v)
	}
	if _, ok := _c.mutation.InputPolicy(); !ok {
		v := space.DefaultInputPolicy
		_c.mutation.SetInputPolicy(v)
	}
	if _, ok := _c.mutation.UserTurnDebounceMs(); !ok {
		v := space.DefaultUserTurnDebounceMs
		_c.mutation.SetUserTurnDebounceMs(v)
	}
	if _, ok := _c.mutation.RelaxMessageTrim(); !ok {
		v := space.DefaultRelaxMessageTrim
		_c.mutation.SetRelaxMessageTrim(v)
	}
	if _, ok := _c.mutation.PromptTokensTotal(); !ok {
		v := space.DefaultPromptTokensTotal
		_c.mutation.SetPromptTokensTotal(v)
	}
	if _, ok := _c.mutation.CompletionTokensTotal(); !ok {
		v := space.DefaultCompletionTokensTotal
		_c.mutation.SetCompletionTokensTotal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := space.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := space.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpaceCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Space.name"`)}
	}
	if _, ok := _c.mutation.ReplyOrder(); !ok {
		return &ValidationError{Name: "reply_order", err: errors.New(`ent: missing required field "Space.reply_order"`)}
	}
	if v, ok := _c.mutation.ReplyOrder(); ok {
		if err := space.ReplyOrderValidator(v); err != nil {
			return &ValidationError{Name: "reply_order", err: fmt.Errorf(`ent: validator failed for field "Space.reply_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllowSelfResponses(); !ok {
		return &ValidationError{Name: "allow_self_responses", err: errors.New(`ent: missing required field "Space.allow_self_responses"`)}
	}
	if _, ok := _c.mutation.AutoModeEnabled(); !ok {
		return &ValidationError{Name: "auto_mode_enabled", err: errors.New(`ent: missing required field "Space.auto_mode_enabled"`)}
	}
	if _, ok := _c.mutation.AutoModeDelayMs(); !ok {
		return &ValidationError{Name: "auto_mode_delay_ms", err: errors.New(`ent: missing required field "Space.auto_mode_delay_ms"`)}
	}
	if _, ok := _c.mutation.InputPolicy(); !ok {
		return &ValidationError{Name: "input_policy", err: errors.New(`ent: missing required field "Space.input_policy"`)}
	}
	if v, ok := _c.mutation.InputPolicy(); ok {
		if err := space.InputPolicyValidator(v); err != nil {
			return &ValidationError{Name: "input_policy", err: fmt.Errorf(`ent: validator failed for field "Space.input_policy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserTurnDebounceMs(); !ok {
		return &ValidationError{Name: "user_turn_debounce_ms", err: errors.New(`ent: missing required field "Space.user_turn_debounce_ms"`)}
	}
	if _, ok := _c.mutation.RelaxMessageTrim(); !ok {
		return &ValidationError{Name: "relax_message_trim", err: errors.New(`ent: missing required field "Space.relax_message_trim"`)}
	}
	if _, ok := _c.mutation.PromptTokensTotal(); !ok {
		return &ValidationError{Name: "prompt_tokens_total", err: errors.New(`ent: missing required field "Space.prompt_tokens_total"`)}
	}
	if _, ok := _c.mutation.CompletionTokensTotal(); !ok {
		return &ValidationError{Name: "completion_tokens_total", err: errors.New(`ent: missing required field "Space.completion_tokens_total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Space.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Space.updated_at"`)}
	}
	return nil
}

func (_c *SpaceCreate) sqlSave(ctx context.Context) (*Space, error) {
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
			return nil, fmt.Errorf("unexpected Space.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpaceCreate) createSpec() (*Space, *sqlgraph.CreateSpec) {
	var (
		_node = &Space{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(space.Table, sqlgraph.NewFieldSpec(space.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(space.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ReplyOrder(); ok {
		_spec.SetField(space.FieldReplyOrder, field.TypeEnum, value)
		_node.ReplyOrder = value
	}
	if value, ok := _c.mutation.AllowSelfResponses(); ok {
		_spec.SetField(space.FieldAllowSelfResponses, field.TypeBool, value)
		_node.AllowSelfResponses = value
	}
	if value, ok := _c.mutation.AutoModeEnabled(); ok {
		_spec.SetField(space.FieldAutoModeEnabled, field.TypeBool, value)
		_node.AutoModeEnabled = value
	}
	if value, ok := _c.mutation.AutoModeDelayMs(); ok {
		_spec.SetField(space.FieldAutoModeDelayMs, field.TypeInt, value)
		_node.AutoModeDelayMs = value
	}
	if value, ok := _c.mutation.InputPolicy(); ok {
		_spec.SetField(space.FieldInputPolicy, field.TypeEnum, value)
		_node.InputPolicy = value
	}
	if value, ok := _c.mutation.UserTurnDebounceMs(); ok {
		_spec.SetField(space.FieldUserTurnDebounceMs, field.TypeInt, value)
		_node.UserTurnDebounceMs = value
	}
	if value, ok := _c.mutation.CardHandlingMode(); ok {
		_spec.SetField(space.FieldCardHandlingMode, field.TypeString, value)
		_node.CardHandlingMode = value
	}
	if value, ok := _c.mutation.RelaxMessageTrim(); ok {
		_spec.SetField(space.FieldRelaxMessageTrim, field.TypeBool, value)
		_node.RelaxMessageTrim = value
	}
	if value, ok := _c.mutation.TokenLimit(); ok {
		_spec.SetField(space.FieldTokenLimit, field.TypeInt64, value)
		_node.TokenLimit = &value
	}
	if value, ok := _c.mutation.PromptTokensTotal(); ok {
		_spec.SetField(space.FieldPromptTokensTotal, field.TypeInt64, value)
		_node.PromptTokensTotal = value
	}
	if value, ok := _c.mutation.CompletionTokensTotal(); ok {
		_spec.SetField(space.FieldCompletionTokensTotal, field.TypeInt64, value)
		_node.CompletionTokensTotal = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(space.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(space.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.MembershipsTable,
			Columns: []string{space.MembershipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   space.ConversationsTable,
			Columns: []string{space.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SpaceCreateBulk is the builder for creating many Space entities in bulk.
type SpaceCreateBulk struct {
	config
	err      error
	builders []*SpaceCreate
}

// Save creates the Space entities in the database.
func (_c *SpaceCreateBulk) Save(ctx context.Context) ([]*Space, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Space, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpaceMutation)
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
func (_c *SpaceCreateBulk) SaveX(ctx context.Context) []*Space {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
