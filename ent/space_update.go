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
	"github.com/talkwheel/talkwheel/ent/conversation"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/space"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceUpdate is the builder for updating Space entities.
type SpaceUpdate struct {
	config
	hooks    []Hook
	mutation *SpaceMutation
}

// Where appends a list predicates to the SpaceUpdate builder.
func (_u *SpaceUpdate) Where(ps ...predicate.Space) *SpaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SpaceUpdate) SetName(v string) *SpaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableName(v *string) *SpaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetReplyOrder sets the "reply_order" field.
func (_u *SpaceUpdate) SetReplyOrder(v space.ReplyOrder) *SpaceUpdate {
	_u.mutation.SetReplyOrder(v)
	return _u
}

// SetNillableReplyOrder sets the "reply_order" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableReplyOrder(v *space.ReplyOrder) *SpaceUpdate {
	if v != nil {
		_u.SetReplyOrder(*v)
	}
	return _u
}

// SetAllowSelfResponses sets the "allow_self_responses" field.
func (_u *SpaceUpdate) SetAllowSelfResponses(v bool) *SpaceUpdate {
	_u.mutation.SetAllowSelfResponses(v)
	return _u
}

// SetNillableAllowSelfResponses sets the "allow_self_responses" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableAllowSelfResponses(v *bool) *SpaceUpdate {
	if v != nil {
		_u.SetAllowSelfResponses(*v)
	}
	return _u
}

// SetAutoModeEnabled sets the "auto_mode_enabled" field.
func (_u *SpaceUpdate) SetAutoModeEnabled(v bool) *SpaceUpdate {
	_u.mutation.SetAutoModeEnabled(v)
	return _u
}

// SetNillableAutoModeEnabled sets the "auto_mode_enabled" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableAutoModeEnabled(v *bool) *SpaceUpdate {
	if v != nil {
		_u.SetAutoModeEnabled(*v)
	}
	return _u
}

// SetAutoModeDelayMs sets the "auto_mode_delay_ms" field.
func (_u *SpaceUpdate) SetAutoModeDelayMs(v int) *SpaceUpdate {
	_u.mutation.ResetAutoModeDelayMs()
	_u.mutation.SetAutoModeDelayMs(v)
	return _u
}

// SetNillableAutoModeDelayMs sets the "auto_mode_delay_ms" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableAutoModeDelayMs(v *int) *SpaceUpdate {
	if v != nil {
		_u.SetAutoModeDelayMs(*v)
	}
	return _u
}

// AddAutoModeDelayMs adds value to the "auto_mode_delay_ms" field.
func (_u *SpaceUpdate) AddAutoModeDelayMs(v int) *SpaceUpdate {
	_u.mutation.AddAutoModeDelayMs(v)
	return _u
}

// SetInputPolicy sets the "input_policy" field.
func (_u *SpaceUpdate) SetInputPolicy(v space.InputPolicy) *SpaceUpdate {
	_u.mutation.SetInputPolicy(v)
	return _u
}

// SetNillableInputPolicy sets the "input_policy" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableInputPolicy(v *space.InputPolicy) *SpaceUpdate {
	if v != nil {
		_u.SetInputPolicy(*v)
	}
	return _u
}

// SetUserTurnDebounceMs sets the "user_turn_debounce_ms" field.
func (_u *SpaceUpdate) SetUserTurnDebounceMs(v int) *SpaceUpdate {
	_u.mutation.ResetUserTurnDebounceMs()
	_u.mutation.SetUserTurnDebounceMs(v)
	return _u
}

// SetNillableUserTurnDebounceMs sets the "user_turn_debounce_ms" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableUserTurnDebounceMs(v *int) *SpaceUpdate {
	if v != nil {
		_u.SetUserTurnDebounceMs(*v)
	}
	return _u
}

// AddUserTurnDebounceMs adds value to the "user_turn_debounce_ms" field.
func (_u *SpaceUpdate) AddUserTurnDebounceMs(v int) *SpaceUpdate {
	_u.mutation.AddUserTurnDebounceMs(v)
	return _u
}

// SetCardHandlingMode sets the "card_handling_mode" field.
func (_u *SpaceUpdate) SetCardHandlingMode(v string) *SpaceUpdate {
	_u.mutation.SetCardHandlingMode(v)
	return _u
}

// SetNillableCardHandlingMode sets the "card_handling_mode" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableCardHandlingMode(v *string) *SpaceUpdate {
	if v != nil {
		_u.SetCardHandlingMode(*v)
	}
	return _u
}

// ClearCardHandlingMode clears the value of the "card_handling_mode" field.
func (_u *SpaceUpdate) ClearCardHandlingMode() *SpaceUpdate {
	_u.mutation.ClearCardHandlingMode()
	return _u
}

// SetRelaxMessageTrim sets the "relax_message_trim" field.
func (_u *SpaceUpdate) SetRelaxMessageTrim(v bool) *SpaceUpdate {
	_u.mutation.SetRelaxMessageTrim(v)
	return _u
}

// SetNillableRelaxMessageTrim sets the "relax_message_trim" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableRelaxMessageTrim(v *bool) *SpaceUpdate {
	if v != nil {
		_u.SetRelaxMessageTrim(*v)
	}
	return _u
}

// SetTokenLimit sets the "token_limit" field.
func (_u *SpaceUpdate) SetTokenLimit(v int64) *SpaceUpdate {
	_u.mutation.ResetTokenLimit()
	_u.mutation.SetTokenLimit(v)
	return _u
}

// SetNillableTokenLimit sets the "token_limit" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableTokenLimit(v *int64) *SpaceUpdate {
	if v != nil {
		_u.SetTokenLimit(*v)
	}
	return _u
}

// AddTokenLimit adds value to the "token_limit" field.
func (_u *SpaceUpdate) AddTokenLimit(v int64) *SpaceUpdate {
	_u.mutation.AddTokenLimit(v)
	return _u
}

// ClearTokenLimit clears the value of the "token_limit" field.
func (_u *SpaceUpdate) ClearTokenLimit() *SpaceUpdate {
	_u.mutation.ClearTokenLimit()
	return _u
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (_u *SpaceUpdate) SetPromptTokensTotal(v int64) *SpaceUpdate {
	_u.mutation.ResetPromptTokensTotal()
	_u.mutation.SetPromptTokensTotal(v)
	return _u
}

// SetNillablePromptTokensTotal sets the "prompt_tokens_total" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillablePromptTokensTotal(v *int64) *SpaceUpdate {
	if v != nil {
		_u.SetPromptTokensTotal(*v)
	}
	return _u
}

// AddPromptTokensTotal adds value to the "prompt_tokens_total" field.
func (_u *SpaceUpdate) AddPromptTokensTotal(v int64) *SpaceUpdate {
	_u.mutation.AddPromptTokensTotal(v)
	return _u
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (_u *SpaceUpdate) SetCompletionTokensTotal(v int64) *SpaceUpdate {
	_u.mutation.ResetCompletionTokensTotal()
	_u.mutation.SetCompletionTokensTotal(v)
	return _u
}

// SetNillableCompletionTokensTotal sets the "completion_tokens_total" field if the given value is not nil.
func (_u *SpaceUpdate) SetNillableCompletionTokensTotal(v *int64) *SpaceUpdate {
	if v != nil {
		_u.SetCompletionTokensTotal(*v)
	}
	return _u
}

// AddCompletionTokensTotal adds value to the "completion_tokens_total" field.
func (_u *SpaceUpdate) AddCompletionTokensTotal(v int64) *SpaceUpdate {
	_u.mutation.AddCompletionTokensTotal(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpaceUpdate) SetUpdatedAt(v time.Time) *SpaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMembershipIDs adds the "memberships" edge to the SpaceMembership entity by IDs.
func (_u *SpaceUpdate) AddMembershipIDs(ids ...string) *SpaceUpdate {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the SpaceMembership entity.
func (_u *SpaceUpdate) AddMemberships(v ...*SpaceMembership) *SpaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *SpaceUpdate) AddConversationIDs(ids ...string) *SpaceUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *SpaceUpdate) AddConversations(v ...*Conversation) *SpaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the SpaceMutation object of the builder.
func (_u *SpaceUpdate) Mutation() *SpaceMutation {
	return _u.mutation
}

// ClearMemberships clears all "memberships" edges to the SpaceMembership entity.
func (_u *SpaceUpdate) ClearMemberships() *SpaceUpdate {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to SpaceMembership entities by IDs.
func (_u *SpaceUpdate) RemoveMembershipIDs(ids ...string) *SpaceUpdate {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to SpaceMembership entities.
func (_u *SpaceUpdate) RemoveMemberships(v ...*SpaceMembership) *SpaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *SpaceUpdate) ClearConversations() *SpaceUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *SpaceUpdate) RemoveConversationIDs(ids ...string) *SpaceUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *SpaceUpdate) RemoveConversations(v ...*Conversation) *SpaceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := space.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpaceUpdate) check() error {
	if v, ok := _u.mutation.ReplyOrder(); ok {
		if err := space.ReplyOrderValidator(v); err != nil {
			return &ValidationError{Name: "reply_order", err: fmt.Errorf(`ent: validator failed for field "Space.reply_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InputPolicy(); ok {
		if err := space.InputPolicyValidator(v); err != nil {
			return &ValidationError{Name: "input_policy", err: fmt.Errorf(`ent: validator failed for field "Space.input_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *SpaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(space.Table, space.Columns, sqlgraph.NewFieldSpec(space.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(space.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyOrder(); ok {
		_spec.SetField(space.FieldReplyOrder, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllowSelfResponses(); ok {
		_spec.SetField(space.FieldAllowSelfResponses, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoModeEnabled(); ok {
		_spec.SetField(space.FieldAutoModeEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoModeDelayMs(); ok {
		_spec.SetField(space.FieldAutoModeDelayMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoModeDelayMs(); ok {
		_spec.AddField(space.FieldAutoModeDelayMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputPolicy(); ok {
		_spec.SetField(space.FieldInputPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserTurnDebounceMs(); ok {
		_spec.SetField(space.FieldUserTurnDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserTurnDebounceMs(); ok {
		_spec.AddField(space.FieldUserTurnDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CardHandlingMode(); ok {
		_spec.SetField(space.FieldCardHandlingMode, field.TypeString, value)
	}
	if _u.mutation.CardHandlingModeCleared() {
		_spec.ClearField(space.FieldCardHandlingMode, field.TypeString)
	}
	if value, ok := _u.mutation.RelaxMessageTrim(); ok {
		_spec.SetField(space.FieldRelaxMessageTrim, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TokenLimit(); ok {
		_spec.SetField(space.FieldTokenLimit, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenLimit(); ok {
		_spec.AddField(space.FieldTokenLimit, field.TypeInt64, value)
	}
	if _u.mutation.TokenLimitCleared() {
		_spec.ClearField(space.FieldTokenLimit, field.TypeInt64)
	}
	if value, ok := _u.mutation.PromptTokensTotal(); ok {
		_spec.SetField(space.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokensTotal(); ok {
		_spec.AddField(space.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionTokensTotal(); ok {
		_spec.SetField(space.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokensTotal(); ok {
		_spec.AddField(space.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(space.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{space.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpaceUpdateOne is the builder for updating a single Space entity.
type SpaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpaceMutation
}

// SetName sets the "name" field.
func (_u *SpaceUpdateOne) SetName(v string) *SpaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableName(v *string) *SpaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetReplyOrder sets the "reply_order" field.
func (_u *SpaceUpdateOne) SetReplyOrder(v space.ReplyOrder) *SpaceUpdateOne {
	_u.mutation.SetReplyOrder(v)
	return _u
}

// SetNillableReplyOrder sets the "reply_order" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableReplyOrder(v *space.ReplyOrder) *SpaceUpdateOne {
	if v != nil {
		_u.SetReplyOrder(*v)
	}
	return _u
}

// SetAllowSelfResponses sets the "allow_self_responses" field.
func (_u *SpaceUpdateOne) SetAllowSelfResponses(v bool) *SpaceUpdateOne {
	_u.mutation.SetAllowSelfResponses(v)
	return _u
}

// SetNillableAllowSelfResponses sets the "allow_self_responses" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableAllowSelfResponses(v *bool) *SpaceUpdateOne {
	if v != nil {
		_u.SetAllowSelfResponses(*v)
	}
	return _u
}

// SetAutoModeEnabled sets the "auto_mode_enabled" field.
func (_u *SpaceUpdateOne) SetAutoModeEnabled(v bool) *SpaceUpdateOne {
	_u.mutation.SetAutoModeEnabled(v)
	return _u
}

// SetNillableAutoModeEnabled sets the "auto_mode_enabled" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableAutoModeEnabled(v *bool) *SpaceUpdateOne {
	if v != nil {
		_u.SetAutoModeEnabled(*v)
	}
	return _u
}

// SetAutoModeDelayMs sets the "auto_mode_delay_ms" field.
func (_u *SpaceUpdateOne) SetAutoModeDelayMs(v int) *SpaceUpdateOne {
	_u.mutation.ResetAutoModeDelayMs()
	_u.mutation.SetAutoModeDelayMs(v)
	return _u
}

// SetNillableAutoModeDelayMs sets the "auto_mode_delay_ms" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableAutoModeDelayMs(v *int) *SpaceUpdateOne {
	if v != nil {
		_u.SetAutoModeDelayMs(*v)
	}
	return _u
}

// AddAutoModeDelayMs adds value to the "auto_mode_delay_ms" field.
func (_u *SpaceUpdateOne) AddAutoModeDelayMs(v int) *SpaceUpdateOne {
	_u.mutation.AddAutoModeDelayMs(v)
	return _u
}

// SetInputPolicy sets the "input_policy" field.
func (_u *SpaceUpdateOne) SetInputPolicy(v space.InputPolicy) *SpaceUpdateOne {
	_u.mutation.SetInputPolicy(v)
	return _u
}

// SetNillableInputPolicy sets the "input_policy" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableInputPolicy(v *space.InputPolicy) *SpaceUpdateOne {
	if v != nil {
		_u.SetInputPolicy(*v)
	}
	return _u
}

// SetUserTurnDebounceMs sets the "user_turn_debounce_ms" field.
func (_u *SpaceUpdateOne) SetUserTurnDebounceMs(v int) *SpaceUpdateOne {
	_u.mutation.ResetUserTurnDebounceMs()
	_u.mutation.SetUserTurnDebounceMs(v)
	return _u
}

// SetNillableUserTurnDebounceMs sets the "user_turn_debounce_ms" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableUserTurnDebounceMs(v *int) *SpaceUpdateOne {
	if v != nil {
		_u.SetUserTurnDebounceMs(*v)
	}
	return _u
}

// AddUserTurnDebounceMs adds value to the "user_turn_debounce_ms" field.
func (_u *SpaceUpdateOne) AddUserTurnDebounceMs(v int) *SpaceUpdateOne {
	_u.mutation.AddUserTurnDebounceMs(v)
	return _u
}

// SetCardHandlingMode sets the "card_handling_mode" field.
func (_u *SpaceUpdateOne) SetCardHandlingMode(v string) *SpaceUpdateOne {
	_u.mutation.SetCardHandlingMode(v)
	return _u
}

// SetNillableCardHandlingMode sets the "card_handling_mode" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableCardHandlingMode(v *string) *SpaceUpdateOne {
	if v != nil {
		_u.SetCardHandlingMode(*v)
	}
	return _u
}

// ClearCardHandlingMode clears the value of the "card_handling_mode" field.
func (_u *SpaceUpdateOne) ClearCardHandlingMode() *SpaceUpdateOne {
	_u.mutation.ClearCardHandlingMode()
	return _u
}

// SetRelaxMessageTrim sets the "relax_message_trim" field.
func (_u *SpaceUpdateOne) SetRelaxMessageTrim(v bool) *SpaceUpdateOne {
	_u.mutation.SetRelaxMessageTrim(v)
	return _u
}

// SetNillableRelaxMessageTrim sets the "relax_message_trim" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableRelaxMessageTrim(v *bool) *SpaceUpdateOne {
	if v != nil {
		_u.SetRelaxMessageTrim(*v)
	}
	return _u
}

// SetTokenLimit sets the "token_limit" field.
func (_u *SpaceUpdateOne) SetTokenLimit(v int64) *SpaceUpdateOne {
	_u.mutation.ResetTokenLimit()
	_u.mutation.SetTokenLimit(v)
	return _u
}

// SetNillableTokenLimit sets the "token_limit" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableTokenLimit(v *int64) *SpaceUpdateOne {
	if v != nil {
		_u.SetTokenLimit(*v)
	}
	return _u
}

// AddTokenLimit adds value to the "token_limit" field.
func (_u *SpaceUpdateOne) AddTokenLimit(v int64) *SpaceUpdateOne {
	_u.mutation.AddTokenLimit(v)
	return _u
}

// ClearTokenLimit clears the value of the "token_limit" field.
func (_u *SpaceUpdateOne) ClearTokenLimit() *SpaceUpdateOne {
	_u.mutation.ClearTokenLimit()
	return _u
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (_u *SpaceUpdateOne) SetPromptTokensTotal(v int64) *SpaceUpdateOne {
	_u.mutation.ResetPromptTokensTotal()
	_u.mutation.SetPromptTokensTotal(v)
	return _u
}

// SetNillablePromptTokensTotal sets the "prompt_tokens_total" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillablePromptTokensTotal(v *int64) *SpaceUpdateOne {
	if v != nil {
		_u.SetPromptTokensTotal(*v)
	}
	return _u
}

// AddPromptTokensTotal adds value to the "prompt_tokens_total" field.
func (_u *SpaceUpdateOne) AddPromptTokensTotal(v int64) *SpaceUpdateOne {
	_u.mutation.AddPromptTokensTotal(v)
	return _u
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (_u *SpaceUpdateOne) SetCompletionTokensTotal(v int64) *SpaceUpdateOne {
	_u.mutation.ResetCompletionTokensTotal()
	_u.mutation.SetCompletionTokensTotal(v)
	return _u
}

// SetNillableCompletionTokensTotal sets the "completion_tokens_total" field if the given value is not nil.
func (_u *SpaceUpdateOne) SetNillableCompletionTokensTotal(v *int64) *SpaceUpdateOne {
	if v != nil {
		_u.SetCompletionTokensTotal(*v)
	}
	return _u
}

// AddCompletionTokensTotal adds value to the "completion_tokens_total" field.
func (_u *SpaceUpdateOne) AddCompletionTokensTotal(v int64) *SpaceUpdateOne {
	_u.mutation.AddCompletionTokensTotal(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpaceUpdateOne) SetUpdatedAt(v time.Time) *SpaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMembershipIDs adds the "memberships" edge to the SpaceMembership entity by IDs.
func (_u *SpaceUpdateOne) AddMembershipIDs(ids ...string) *SpaceUpdateOne {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the SpaceMembership entity.
func (_u *SpaceUpdateOne) AddMemberships(v ...*SpaceMembership) *SpaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *SpaceUpdateOne) AddConversationIDs(ids ...string) *SpaceUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *SpaceUpdateOne) AddConversations(v ...*Conversation) *SpaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the SpaceMutation object of the builder.
func (_u *SpaceUpdateOne) Mutation() *SpaceMutation {
	return _u.mutation
}

// ClearMemberships clears all "memberships" edges to the SpaceMembership entity.
func (_u *SpaceUpdateOne) ClearMemberships() *SpaceUpdateOne {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to SpaceMembership entities by IDs.
func (_u *SpaceUpdateOne) RemoveMembershipIDs(ids ...string) *SpaceUpdateOne {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to SpaceMembership entities.
func (_u *SpaceUpdateOne) RemoveMemberships(v ...*SpaceMembership) *SpaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *SpaceUpdateOne) ClearConversations() *SpaceUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *SpaceUpdateOne) RemoveConversationIDs(ids ...string) *SpaceUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *SpaceUpdateOne) RemoveConversations(v ...*Conversation) *SpaceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Where appends a list predicates to the SpaceUpdate builder.
func (_u *SpaceUpdateOne) Where(ps ...predicate.Space) *SpaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpaceUpdateOne) Select(field string, fields ...string) *SpaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Space entity.
func (_u *SpaceUpdateOne) Save(ctx context.Context) (*Space, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpaceUpdateOne) SaveX(ctx context.Context) *Space {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := space.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpaceUpdateOne) check() error {
	if v, ok := _u.mutation.ReplyOrder(); ok {
		if err := space.ReplyOrderValidator(v); err != nil {
			return &ValidationError{Name: "reply_order", err: fmt.Errorf(`ent: validator failed for field "Space.reply_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InputPolicy(); ok {
		if err := space.InputPolicyValidator(v); err != nil {
			return &ValidationError{Name: "input_policy", err: fmt.Errorf(`ent: validator failed for field "Space.input_policy": %w`, err)}
		}
	}
	return nil
}

func (_u *SpaceUpdateOne) sqlSave(ctx context.Context) (_node *Space, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(space.Table, space.Columns, sqlgraph.NewFieldSpec(space.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Space.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, space.FieldID)
		for _, f := range fields {
			if !space.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != space.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(space.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReplyOrder(); ok {
		_spec.SetField(space.FieldReplyOrder, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllowSelfResponses(); ok {
		_spec.SetField(space.FieldAllowSelfResponses, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoModeEnabled(); ok {
		_spec.SetField(space.FieldAutoModeEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoModeDelayMs(); ok {
		_spec.SetField(space.FieldAutoModeDelayMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoModeDelayMs(); ok {
		_spec.AddField(space.FieldAutoModeDelayMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputPolicy(); ok {
		_spec.SetField(space.FieldInputPolicy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserTurnDebounceMs(); ok {
		_spec.SetField(space.FieldUserTurnDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserTurnDebounceMs(); ok {
		_spec.AddField(space.FieldUserTurnDebounceMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CardHandlingMode(); ok {
		_spec.SetField(space.FieldCardHandlingMode, field.TypeString, value)
	}
	if _u.mutation.CardHandlingModeCleared() {
		_spec.ClearField(space.FieldCardHandlingMode, field.TypeString)
	}
	if value, ok := _u.mutation.RelaxMessageTrim(); ok {
		_spec.SetField(space.FieldRelaxMessageTrim, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TokenLimit(); ok {
		_spec.SetField(space.FieldTokenLimit, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokenLimit(); ok {
		_spec.AddField(space.FieldTokenLimit, field.TypeInt64, value)
	}
	if _u.mutation.TokenLimitCleared() {
		_spec.ClearField(space.FieldTokenLimit, field.TypeInt64)
	}
	if value, ok := _u.mutation.PromptTokensTotal(); ok {
		_spec.SetField(space.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokensTotal(); ok {
		_spec.AddField(space.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionTokensTotal(); ok {
		_spec.SetField(space.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokensTotal(); ok {
		_spec.AddField(space.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(space.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Space{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{space.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
