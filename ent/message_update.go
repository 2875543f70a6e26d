// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/talkwheel/talkwheel/ent/message"
	"github.com/talkwheel/talkwheel/ent/messageswipe"
	"github.com/talkwheel/talkwheel/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *MessageUpdate) SetRole(v message.Role) *MessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRole(v *message.Role) *MessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetVisibility sets the "visibility" field.
func (_u *MessageUpdate) SetVisibility(v message.Visibility) *MessageUpdate {
	_u.mutation.SetVisibility(v)
	return _u
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableVisibility(v *message.Visibility) *MessageUpdate {
	if v != nil {
		_u.SetVisibility(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTextContentID sets the "text_content_id" field.
func (_u *MessageUpdate) SetTextContentID(v string) *MessageUpdate {
	_u.mutation.SetTextContentID(v)
	return _u
}

// SetNillableTextContentID sets the "text_content_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableTextContentID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetTextContentID(*v)
	}
	return _u
}

// ClearTextContentID clears the value of the "text_content_id" field.
func (_u *MessageUpdate) ClearTextContentID() *MessageUpdate {
	_u.mutation.ClearTextContentID()
	return _u
}

// SetActiveSwipeID sets the "active_swipe_id" field.
func (_u *MessageUpdate) SetActiveSwipeID(v string) *MessageUpdate {
	_u.mutation.SetActiveSwipeID(v)
	return _u
}

// SetNillableActiveSwipeID sets the "active_swipe_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableActiveSwipeID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetActiveSwipeID(*v)
	}
	return _u
}

// ClearActiveSwipeID clears the value of the "active_swipe_id" field.
func (_u *MessageUpdate) ClearActiveSwipeID() *MessageUpdate {
	_u.mutation.ClearActiveSwipeID()
	return _u
}

// SetSwipesCount sets the "swipes_count" field.
func (_u *MessageUpdate) SetSwipesCount(v int) *MessageUpdate {
	_u.mutation.ResetSwipesCount()
	_u.mutation.SetSwipesCount(v)
	return _u
}

// SetNillableSwipesCount sets the "swipes_count" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSwipesCount(v *int) *MessageUpdate {
	if v != nil {
		_u.SetSwipesCount(*v)
	}
	return _u
}

// AddSwipesCount adds value to the "swipes_count" field.
func (_u *MessageUpdate) AddSwipesCount(v int) *MessageUpdate {
	_u.mutation.AddSwipesCount(v)
	return _u
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (_u *MessageUpdate) SetSpeakerMembershipID(v string) *MessageUpdate {
	_u.mutation.SetSpeakerMembershipID(v)
	return _u
}

// SetNillableSpeakerMembershipID sets the "speaker_membership_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSpeakerMembershipID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSpeakerMembershipID(*v)
	}
	return _u
}

// ClearSpeakerMembershipID clears the value of the "speaker_membership_id" field.
func (_u *MessageUpdate) ClearSpeakerMembershipID() *MessageUpdate {
	_u.mutation.ClearSpeakerMembershipID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *MessageUpdate) SetRunID(v string) *MessageUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRunID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *MessageUpdate) ClearRunID() *MessageUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// AddSwipeIDs adds the "swipes" edge to the MessageSwipe entity by IDs.
func (_u *MessageUpdate) AddSwipeIDs(ids ...string) *MessageUpdate {
	_u.mutation.AddSwipeIDs(ids...)
	return _u
}

// AddSwipes adds the "swipes" edges to the MessageSwipe entity.
func (_u *MessageUpdate) AddSwipes(v ...*MessageSwipe) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSwipeIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearSwipes clears all "swipes" edges to the MessageSwipe entity.
func (_u *MessageUpdate) ClearSwipes() *MessageUpdate {
	_u.mutation.ClearSwipes()
	return _u
}

// RemoveSwipeIDs removes the "swipes" edge to MessageSwipe entities by IDs.
func (_u *MessageUpdate) RemoveSwipeIDs(ids ...string) *MessageUpdate {
	_u.mutation.RemoveSwipeIDs(ids...)
	return _u
}

// RemoveSwipes removes "swipes" edges to MessageSwipe entities.
func (_u *MessageUpdate) RemoveSwipes(v ...*MessageSwipe) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSwipeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Visibility(); ok {
		if err := message.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "Message.visibility": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Visibility(); ok {
		_spec.SetField(message.FieldVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextContentID(); ok {
		_spec.SetField(message.FieldTextContentID, field.TypeString, value)
	}
	if _u.mutation.TextContentIDCleared() {
		_spec.ClearField(message.FieldTextContentID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveSwipeID(); ok {
		_spec.SetField(message.FieldActiveSwipeID, field.TypeString, value)
	}
	if _u.mutation.ActiveSwipeIDCleared() {
		_spec.ClearField(message.FieldActiveSwipeID, field.TypeString)
	}
	if value, ok := _u.mutation.SwipesCount(); ok {
		_spec.SetField(message.FieldSwipesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSwipesCount(); ok {
		_spec.AddField(message.FieldSwipesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeakerMembershipID(); ok {
		_spec.SetField(message.FieldSpeakerMembershipID, field.TypeString, value)
	}
	if _u.mutation.SpeakerMembershipIDCleared() {
		_spec.ClearField(message.FieldSpeakerMembershipID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(message.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(message.FieldRunID, field.TypeString)
	}
	if _u.mutation.SwipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSwipesIDs(); len(nodes) > 0 && !_u.mutation.SwipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SwipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetRole sets the "role" field.
func (_u *MessageUpdateOne) SetRole(v message.Role) *MessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRole(v *message.Role) *MessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetVisibility sets the "visibility" field.
func (_u *MessageUpdateOne) SetVisibility(v message.Visibility) *MessageUpdateOne {
	_u.mutation.SetVisibility(v)
	return _u
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableVisibility(v *message.Visibility) *MessageUpdateOne {
	if v != nil {
		_u.SetVisibility(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTextContentID sets the "text_content_id" field.
func (_u *MessageUpdateOne) SetTextContentID(v string) *MessageUpdateOne {
	_u.mutation.SetTextContentID(v)
	return _u
}

// SetNillableTextContentID sets the "text_content_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableTextContentID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetTextContentID(*v)
	}
	return _u
}

// ClearTextContentID clears the value of the "text_content_id" field.
func (_u *MessageUpdateOne) ClearTextContentID() *MessageUpdateOne {
	_u.mutation.ClearTextContentID()
	return _u
}

// SetActiveSwipeID sets the "active_swipe_id" field.
func (_u *MessageUpdateOne) SetActiveSwipeID(v string) *MessageUpdateOne {
	_u.mutation.SetActiveSwipeID(v)
	return _u
}

// SetNillableActiveSwipeID sets the "active_swipe_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableActiveSwipeID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetActiveSwipeID(*v)
	}
	return _u
}

// ClearActiveSwipeID clears the value of the "active_swipe_id" field.
func (_u *MessageUpdateOne) ClearActiveSwipeID() *MessageUpdateOne {
	_u.mutation.ClearActiveSwipeID()
	return _u
}

// SetSwipesCount sets the "swipes_count" field.
func (_u *MessageUpdateOne) SetSwipesCount(v int) *MessageUpdateOne {
	_u.mutation.ResetSwipesCount()
	_u.mutation.SetSwipesCount(v)
	return _u
}

// SetNillableSwipesCount sets the "swipes_count" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSwipesCount(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetSwipesCount(*v)
	}
	return _u
}

// AddSwipesCount adds value to the "swipes_count" field.
func (_u *MessageUpdateOne) AddSwipesCount(v int) *MessageUpdateOne {
	_u.mutation.AddSwipesCount(v)
	return _u
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (_u *MessageUpdateOne) SetSpeakerMembershipID(v string) *MessageUpdateOne {
	_u.mutation.SetSpeakerMembershipID(v)
	return _u
}

// SetNillableSpeakerMembershipID sets the "speaker_membership_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSpeakerMembershipID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSpeakerMembershipID(*v)
	}
	return _u
}

// ClearSpeakerMembershipID clears the value of the "speaker_membership_id" field.
func (_u *MessageUpdateOne) ClearSpeakerMembershipID() *MessageUpdateOne {
	_u.mutation.ClearSpeakerMembershipID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *MessageUpdateOne) SetRunID(v string) *MessageUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRunID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *MessageUpdateOne) ClearRunID() *MessageUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// AddSwipeIDs adds the "swipes" edge to the MessageSwipe entity by IDs.
func (_u *MessageUpdateOne) AddSwipeIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.AddSwipeIDs(ids...)
	return _u
}

// AddSwipes adds the "swipes" edges to the MessageSwipe entity.
func (_u *MessageUpdateOne) AddSwipes(v ...*MessageSwipe) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSwipeIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearSwipes clears all "swipes" edges to the MessageSwipe entity.
func (_u *MessageUpdateOne) ClearSwipes() *MessageUpdateOne {
	_u.mutation.ClearSwipes()
	return _u
}

// RemoveSwipeIDs removes the "swipes" edge to MessageSwipe entities by IDs.
func (_u *MessageUpdateOne) RemoveSwipeIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.RemoveSwipeIDs(ids...)
	return _u
}

// RemoveSwipes removes "swipes" edges to MessageSwipe entities.
func (_u *MessageUpdateOne) RemoveSwipes(v ...*MessageSwipe) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSwipeIDs(ids...)
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Visibility(); ok {
		if err := message.VisibilityValidator(v); err != nil {
			return &ValidationError{Name: "visibility", err: fmt.Errorf(`ent: validator failed for field "Message.visibility": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Visibility(); ok {
		_spec.SetField(message.FieldVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextContentID(); ok {
		_spec.SetField(message.FieldTextContentID, field.TypeString, value)
	}
	if _u.mutation.TextContentIDCleared() {
		_spec.ClearField(message.FieldTextContentID, field.TypeString)
	}
	if value, ok := _u.mutation.ActiveSwipeID(); ok {
		_spec.SetField(message.FieldActiveSwipeID, field.TypeString, value)
	}
	if _u.mutation.ActiveSwipeIDCleared() {
		_spec.ClearField(message.FieldActiveSwipeID, field.TypeString)
	}
	if value, ok := _u.mutation.SwipesCount(); ok {
		_spec.SetField(message.FieldSwipesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSwipesCount(); ok {
		_spec.AddField(message.FieldSwipesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeakerMembershipID(); ok {
		_spec.SetField(message.FieldSpeakerMembershipID, field.TypeString, value)
	}
	if _u.mutation.SpeakerMembershipIDCleared() {
		_spec.ClearField(message.FieldSpeakerMembershipID, field.TypeString)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(message.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(message.FieldRunID, field.TypeString)
	}
	if _u.mutation.SwipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSwipesIDs(); len(nodes) > 0 && !_u.mutation.SwipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SwipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.SwipesTable,
			Columns: []string{message.SwipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(messageswipe.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
