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
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/event"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConversationUpdate) SetKind(v conversation.Kind) *ConversationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableKind(v *conversation.Kind) *ConversationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetParentConversationID sets the "parent_conversation_id" field.
func (_u *ConversationUpdate) SetParentConversationID(v string) *ConversationUpdate {
	_u.mutation.SetParentConversationID(v)
	return _u
}

// SetNillableParentConversationID sets the "parent_conversation_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParentConversationID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetParentConversationID(*v)
	}
	return _u
}

// ClearParentConversationID clears the value of the "parent_conversation_id" field.
func (_u *ConversationUpdate) ClearParentConversationID() *ConversationUpdate {
	_u.mutation.ClearParentConversationID()
	return _u
}

// SetForkedFromMessageID sets the "forked_from_message_id" field.
func (_u *ConversationUpdate) SetForkedFromMessageID(v string) *ConversationUpdate {
	_u.mutation.SetForkedFromMessageID(v)
	return _u
}

// SetNillableForkedFromMessageID sets the "forked_from_message_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableForkedFromMessageID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetForkedFromMessageID(*v)
	}
	return _u
}

// ClearForkedFromMessageID clears the value of the "forked_from_message_id" field.
func (_u *ConversationUpdate) ClearForkedFromMessageID() *ConversationUpdate {
	_u.mutation.ClearForkedFromMessageID()
	return _u
}

// SetSchedulingState sets the "scheduling_state" field.
func (_u *ConversationUpdate) SetSchedulingState(v conversation.SchedulingState) *ConversationUpdate {
	_u.mutation.SetSchedulingState(v)
	return _u
}

// SetNillableSchedulingState sets the "scheduling_state" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSchedulingState(v *conversation.SchedulingState) *ConversationUpdate {
	if v != nil {
		_u.SetSchedulingState(*v)
	}
	return _u
}

// SetGroupQueueRevision sets the "group_queue_revision" field.
func (_u *ConversationUpdate) SetGroupQueueRevision(v int64) *ConversationUpdate {
	_u.mutation.ResetGroupQueueRevision()
	_u.mutation.SetGroupQueueRevision(v)
	return _u
}

// SetNillableGroupQueueRevision sets the "group_queue_revision" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableGroupQueueRevision(v *int64) *ConversationUpdate {
	if v != nil {
		_u.SetGroupQueueRevision(*v)
	}
	return _u
}

// AddGroupQueueRevision adds value to the "group_queue_revision" field.
func (_u *ConversationUpdate) AddGroupQueueRevision(v int64) *ConversationUpdate {
	_u.mutation.AddGroupQueueRevision(v)
	return _u
}

// SetAutoRoundsRemaining sets the "auto_rounds_remaining" field.
func (_u *ConversationUpdate) SetAutoRoundsRemaining(v int) *ConversationUpdate {
	_u.mutation.ResetAutoRoundsRemaining()
	_u.mutation.SetAutoRoundsRemaining(v)
	return _u
}

// SetNillableAutoRoundsRemaining sets the "auto_rounds_remaining" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableAutoRoundsRemaining(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetAutoRoundsRemaining(*v)
	}
	return _u
}

// AddAutoRoundsRemaining adds value to the "auto_rounds_remaining" field.
func (_u *ConversationUpdate) AddAutoRoundsRemaining(v int) *ConversationUpdate {
	_u.mutation.AddAutoRoundsRemaining(v)
	return _u
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (_u *ConversationUpdate) SetPromptTokensTotal(v int64) *ConversationUpdate {
	_u.mutation.ResetPromptTokensTotal()
	_u.mutation.SetPromptTokensTotal(v)
	return _u
}

// SetNillablePromptTokensTotal sets the "prompt_tokens_total" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePromptTokensTotal(v *int64) *ConversationUpdate {
	if v != nil {
		_u.SetPromptTokensTotal(*v)
	}
	return _u
}

// AddPromptTokensTotal adds value to the "prompt_tokens_total" field.
func (_u *ConversationUpdate) AddPromptTokensTotal(v int64) *ConversationUpdate {
	_u.mutation.AddPromptTokensTotal(v)
	return _u
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (_u *ConversationUpdate) SetCompletionTokensTotal(v int64) *ConversationUpdate {
	_u.mutation.ResetCompletionTokensTotal()
	_u.mutation.SetCompletionTokensTotal(v)
	return _u
}

// SetNillableCompletionTokensTotal sets the "completion_tokens_total" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCompletionTokensTotal(v *int64) *ConversationUpdate {
	if v != nil {
		_u.SetCompletionTokensTotal(*v)
	}
	return _u
}

// AddCompletionTokensTotal adds value to the "completion_tokens_total" field.
func (_u *ConversationUpdate) AddCompletionTokensTotal(v int64) *ConversationUpdate {
	_u.mutation.AddCompletionTokensTotal(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdate) AddMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by IDs.
func (_u *ConversationUpdate) AddRunIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ConversationRun entity.
func (_u *ConversationUpdate) AddRuns(v ...*ConversationRun) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the ConversationRound entity by IDs.
func (_u *ConversationUpdate) AddRoundIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the ConversationRound entity.
func (_u *ConversationUpdate) AddRounds(v ...*ConversationRound) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ConversationUpdate) AddEventIDs(ids ...int) *ConversationUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ConversationUpdate) AddEvents(v ...*Event) *ConversationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearRuns clears all "runs" edges to the ConversationRun entity.
func (_u *ConversationUpdate) ClearRuns() *ConversationUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ConversationRun entities by IDs.
func (_u *ConversationUpdate) RemoveRunIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ConversationRun entities.
func (_u *ConversationUpdate) RemoveRuns(v ...*ConversationRun) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearRounds clears all "rounds" edges to the ConversationRound entity.
func (_u *ConversationUpdate) ClearRounds() *ConversationUpdate {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to ConversationRound entities by IDs.
func (_u *ConversationUpdate) RemoveRoundIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to ConversationRound entities.
func (_u *ConversationUpdate) RemoveRounds(v ...*ConversationRound) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ConversationUpdate) ClearEvents() *ConversationUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ConversationUpdate) RemoveEventIDs(ids ...int) *ConversationUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ConversationUpdate) RemoveEvents(v ...*Event) *ConversationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Conversation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SchedulingState(); ok {
		if err := conversation.SchedulingStateValidator(v); err != nil {
			return &ValidationError{Name: "scheduling_state", err: fmt.Errorf(`ent: validator failed for field "Conversation.scheduling_state": %w`, err)}
		}
	}
	if _u.mutation.SpaceCleared() && len(_u.mutation.SpaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.space"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentConversationID(); ok {
		_spec.SetField(conversation.FieldParentConversationID, field.TypeString, value)
	}
	if _u.mutation.ParentConversationIDCleared() {
		_spec.ClearField(conversation.FieldParentConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ForkedFromMessageID(); ok {
		_spec.SetField(conversation.FieldForkedFromMessageID, field.TypeString, value)
	}
	if _u.mutation.ForkedFromMessageIDCleared() {
		_spec.ClearField(conversation.FieldForkedFromMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SchedulingState(); ok {
		_spec.SetField(conversation.FieldSchedulingState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GroupQueueRevision(); ok {
		_spec.SetField(conversation.FieldGroupQueueRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGroupQueueRevision(); ok {
		_spec.AddField(conversation.FieldGroupQueueRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AutoRoundsRemaining(); ok {
		_spec.SetField(conversation.FieldAutoRoundsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoRoundsRemaining(); ok {
		_spec.AddField(conversation.FieldAutoRoundsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokensTotal(); ok {
		_spec.SetField(conversation.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokensTotal(); ok {
		_spec.AddField(conversation.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionTokensTotal(); ok {
		_spec.SetField(conversation.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokensTotal(); ok {
		_spec.AddField(conversation.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetKind sets the "kind" field.
func (_u *ConversationUpdateOne) SetKind(v conversation.Kind) *ConversationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableKind(v *conversation.Kind) *ConversationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetParentConversationID sets the "parent_conversation_id" field.
func (_u *ConversationUpdateOne) SetParentConversationID(v string) *ConversationUpdateOne {
	_u.mutation.SetParentConversationID(v)
	return _u
}

// SetNillableParentConversationID sets the "parent_conversation_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParentConversationID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetParentConversationID(*v)
	}
	return _u
}

// ClearParentConversationID clears the value of the "parent_conversation_id" field.
func (_u *ConversationUpdateOne) ClearParentConversationID() *ConversationUpdateOne {
	_u.mutation.ClearParentConversationID()
	return _u
}

// SetForkedFromMessageID sets the "forked_from_message_id" field.
func (_u *ConversationUpdateOne) SetForkedFromMessageID(v string) *ConversationUpdateOne {
	_u.mutation.SetForkedFromMessageID(v)
	return _u
}

// SetNillableForkedFromMessageID sets the "forked_from_message_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableForkedFromMessageID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetForkedFromMessageID(*v)
	}
	return _u
}

// ClearForkedFromMessageID clears the value of the "forked_from_message_id" field.
func (_u *ConversationUpdateOne) ClearForkedFromMessageID() *ConversationUpdateOne {
	_u.mutation.ClearForkedFromMessageID()
	return _u
}

// SetSchedulingState sets the "scheduling_state" field.
func (_u *ConversationUpdateOne) SetSchedulingState(v conversation.SchedulingState) *ConversationUpdateOne {
	_u.mutation.SetSchedulingState(v)
	return _u
}

// SetNillableSchedulingState sets the "scheduling_state" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSchedulingState(v *conversation.SchedulingState) *ConversationUpdateOne {
	if v != nil {
		_u.SetSchedulingState(*v)
	}
	return _u
}

// SetGroupQueueRevision sets the "group_queue_revision" field.
func (_u *ConversationUpdateOne) SetGroupQueueRevision(v int64) *ConversationUpdateOne {
	_u.mutation.ResetGroupQueueRevision()
	_u.mutation.SetGroupQueueRevision(v)
	return _u
}

// SetNillableGroupQueueRevision sets the "group_queue_revision" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableGroupQueueRevision(v *int64) *ConversationUpdateOne {
	if v != nil {
		_u.SetGroupQueueRevision(*v)
	}
	return _u
}

// AddGroupQueueRevision adds value to the "group_queue_revision" field.
func (_u *ConversationUpdateOne) AddGroupQueueRevision(v int64) *ConversationUpdateOne {
	_u.mutation.AddGroupQueueRevision(v)
	return _u
}

// SetAutoRoundsRemaining sets the "auto_rounds_remaining" field.
func (_u *ConversationUpdateOne) SetAutoRoundsRemaining(v int) *ConversationUpdateOne {
	_u.mutation.ResetAutoRoundsRemaining()
	_u.mutation.SetAutoRoundsRemaining(v)
	return _u
}

// SetNillableAutoRoundsRemaining sets the "auto_rounds_remaining" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableAutoRoundsRemaining(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetAutoRoundsRemaining(*v)
	}
	return _u
}

// AddAutoRoundsRemaining adds value to the "auto_rounds_remaining" field.
func (_u *ConversationUpdateOne) AddAutoRoundsRemaining(v int) *ConversationUpdateOne {
	_u.mutation.AddAutoRoundsRemaining(v)
	return _u
}

// SetPromptTokensTotal sets the "prompt_tokens_total" field.
func (_u *ConversationUpdateOne) SetPromptTokensTotal(v int64) *ConversationUpdateOne {
	_u.mutation.ResetPromptTokensTotal()
	_u.mutation.SetPromptTokensTotal(v)
	return _u
}

// SetNillablePromptTokensTotal sets the "prompt_tokens_total" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePromptTokensTotal(v *int64) *ConversationUpdateOne {
	if v != nil {
		_u.SetPromptTokensTotal(*v)
	}
	return _u
}

// AddPromptTokensTotal adds value to the "prompt_tokens_total" field.
func (_u *ConversationUpdateOne) AddPromptTokensTotal(v int64) *ConversationUpdateOne {
	_u.mutation.AddPromptTokensTotal(v)
	return _u
}

// SetCompletionTokensTotal sets the "completion_tokens_total" field.
func (_u *ConversationUpdateOne) SetCompletionTokensTotal(v int64) *ConversationUpdateOne {
	_u.mutation.ResetCompletionTokensTotal()
	_u.mutation.SetCompletionTokensTotal(v)
	return _u
}

// SetNillableCompletionTokensTotal sets the "completion_tokens_total" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCompletionTokensTotal(v *int64) *ConversationUpdateOne {
	if v != nil {
		_u.SetCompletionTokensTotal(*v)
	}
	return _u
}

// AddCompletionTokensTotal adds value to the "completion_tokens_total" field.
func (_u *ConversationUpdateOne) AddCompletionTokensTotal(v int64) *ConversationUpdateOne {
	_u.mutation.AddCompletionTokensTotal(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by IDs.
func (_u *ConversationUpdateOne) AddRunIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ConversationRun entity.
func (_u *ConversationUpdateOne) AddRuns(v ...*ConversationRun) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the ConversationRound entity by IDs.
func (_u *ConversationUpdateOne) AddRoundIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the ConversationRound entity.
func (_u *ConversationUpdateOne) AddRounds(v ...*ConversationRound) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ConversationUpdateOne) AddEventIDs(ids ...int) *ConversationUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ConversationUpdateOne) AddEvents(v ...*Event) *ConversationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearRuns clears all "runs" edges to the ConversationRun entity.
func (_u *ConversationUpdateOne) ClearRuns() *ConversationUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ConversationRun entities by IDs.
func (_u *ConversationUpdateOne) RemoveRunIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ConversationRun entities.
func (_u *ConversationUpdateOne) RemoveRuns(v ...*ConversationRun) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// ClearRounds clears all "rounds" edges to the ConversationRound entity.
func (_u *ConversationUpdateOne) ClearRounds() *ConversationUpdateOne {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to ConversationRound entities by IDs.
func (_u *ConversationUpdateOne) RemoveRoundIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to ConversationRound entities.
func (_u *ConversationUpdateOne) RemoveRounds(v ...*ConversationRound) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ConversationUpdateOne) ClearEvents() *ConversationUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ConversationUpdateOne) RemoveEventIDs(ids ...int) *ConversationUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ConversationUpdateOne) RemoveEvents(v ...*Event) *ConversationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Conversation.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SchedulingState(); ok {
		if err := conversation.SchedulingStateValidator(v); err != nil {
			return &ValidationError{Name: "scheduling_state", err: fmt.Errorf(`ent: validator failed for field "Conversation.scheduling_state": %w`, err)}
		}
	}
	if _u.mutation.SpaceCleared() && len(_u.mutation.SpaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.space"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentConversationID(); ok {
		_spec.SetField(conversation.FieldParentConversationID, field.TypeString, value)
	}
	if _u.mutation.ParentConversationIDCleared() {
		_spec.ClearField(conversation.FieldParentConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ForkedFromMessageID(); ok {
		_spec.SetField(conversation.FieldForkedFromMessageID, field.TypeString, value)
	}
	if _u.mutation.ForkedFromMessageIDCleared() {
		_spec.ClearField(conversation.FieldForkedFromMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.SchedulingState(); ok {
		_spec.SetField(conversation.FieldSchedulingState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GroupQueueRevision(); ok {
		_spec.SetField(conversation.FieldGroupQueueRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGroupQueueRevision(); ok {
		_spec.AddField(conversation.FieldGroupQueueRevision, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AutoRoundsRemaining(); ok {
		_spec.SetField(conversation.FieldAutoRoundsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoRoundsRemaining(); ok {
		_spec.AddField(conversation.FieldAutoRoundsRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptTokensTotal(); ok {
		_spec.SetField(conversation.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptTokensTotal(); ok {
		_spec.AddField(conversation.FieldPromptTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CompletionTokensTotal(); ok {
		_spec.SetField(conversation.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokensTotal(); ok {
		_spec.AddField(conversation.FieldCompletionTokensTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RunsTable,
			Columns: []string{conversation.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.RoundsTable,
			Columns: []string{conversation.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.EventsTable,
			Columns: []string{conversation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
