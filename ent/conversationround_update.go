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
	"github.com/talkwheel/talkwheel/ent/conversationround"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/roundparticipant"
)

// ConversationRoundUpdate is the builder for updating ConversationRound entities.
type ConversationRoundUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationRoundMutation
}

// Where appends a list predicates to the ConversationRoundUpdate builder.
func (_u *ConversationRoundUpdate) Where(ps ...predicate.ConversationRound) *ConversationRoundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationRoundUpdate) SetStatus(v conversationround.Status) *ConversationRoundUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationRoundUpdate) SetNillableStatus(v *conversationround.Status) *ConversationRoundUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSchedulingState sets the "scheduling_state" field.
func (_u *ConversationRoundUpdate) SetSchedulingState(v conversationround.SchedulingState) *ConversationRoundUpdate {
	_u.mutation.SetSchedulingState(v)
	return _u
}

// SetNillableSchedulingState sets the "scheduling_state" field if the given value is not nil.
func (_u *ConversationRoundUpdate) SetNillableSchedulingState(v *conversationround.SchedulingState) *ConversationRoundUpdate {
	if v != nil {
		_u.SetSchedulingState(*v)
	}
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *ConversationRoundUpdate) SetCurrentPosition(v int) *ConversationRoundUpdate {
	_u.mutation.ResetCurrentPosition()
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *ConversationRoundUpdate) SetNillableCurrentPosition(v *int) *ConversationRoundUpdate {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// AddCurrentPosition adds value to the "current_position" field.
func (_u *ConversationRoundUpdate) AddCurrentPosition(v int) *ConversationRoundUpdate {
	_u.mutation.AddCurrentPosition(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ConversationRoundUpdate) SetCompletedAt(v time.Time) *ConversationRoundUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ConversationRoundUpdate) SetNillableCompletedAt(v *time.Time) *ConversationRoundUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ConversationRoundUpdate) ClearCompletedAt() *ConversationRoundUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddParticipantIDs adds the "participants" edge to the RoundParticipant entity by IDs.
func (_u *ConversationRoundUpdate) AddParticipantIDs(ids ...string) *ConversationRoundUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the RoundParticipant entity.
func (_u *ConversationRoundUpdate) AddParticipants(v ...*RoundParticipant) *ConversationRoundUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// Mutation returns the ConversationRoundMutation object of the builder.
func (_u *ConversationRoundUpdate) Mutation() *ConversationRoundMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the RoundParticipant entity.
func (_u *ConversationRoundUpdate) ClearParticipants() *ConversationRoundUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to RoundParticipant entities by IDs.
func (_u *ConversationRoundUpdate) RemoveParticipantIDs(ids ...string) *ConversationRoundUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to RoundParticipant entities.
func (_u *ConversationRoundUpdate) RemoveParticipants(v ...*RoundParticipant) *ConversationRoundUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationRoundUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationRoundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationRoundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationRoundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationRoundUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversationround.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversationRound.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SchedulingState(); ok {
		if err := conversationround.SchedulingStateValidator(v); err != nil {
			return &ValidationError{Name: "scheduling_state", err: fmt.Errorf(`ent: validator failed for field "ConversationRound.scheduling_state": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationRound.conversation"`)
	}
	return nil
}

func (_u *ConversationRoundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationround.Table, conversationround.Columns, sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversationround.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SchedulingState(); ok {
		_spec.SetField(conversationround.FieldSchedulingState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(conversationround.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPosition(); ok {
		_spec.AddField(conversationround.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(conversationround.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(conversationround.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationRoundUpdateOne is the builder for updating a single ConversationRound entity.
type ConversationRoundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationRoundMutation
}

// SetStatus sets the "status" field.
func (_u *ConversationRoundUpdateOne) SetStatus(v conversationround.Status) *ConversationRoundUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationRoundUpdateOne) SetNillableStatus(v *conversationround.Status) *ConversationRoundUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSchedulingState sets the "scheduling_state" field.
func (_u *ConversationRoundUpdateOne) SetSchedulingState(v conversationround.SchedulingState) *ConversationRoundUpdateOne {
	_u.mutation.SetSchedulingState(v)
	return _u
}

// SetNillableSchedulingState sets the "scheduling_state" field if the given value is not nil.
func (_u *ConversationRoundUpdateOne) SetNillableSchedulingState(v *conversationround.SchedulingState) *ConversationRoundUpdateOne {
	if v != nil {
		_u.SetSchedulingState(*v)
	}
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *ConversationRoundUpdateOne) SetCurrentPosition(v int) *ConversationRoundUpdateOne {
	_u.mutation.ResetCurrentPosition()
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *ConversationRoundUpdateOne) SetNillableCurrentPosition(v *int) *ConversationRoundUpdateOne {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// AddCurrentPosition adds value to the "current_position" field.
func (_u *ConversationRoundUpdateOne) AddCurrentPosition(v int) *ConversationRoundUpdateOne {
	_u.mutation.AddCurrentPosition(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ConversationRoundUpdateOne) SetCompletedAt(v time.Time) *ConversationRoundUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ConversationRoundUpdateOne) SetNillableCompletedAt(v *time.Time) *ConversationRoundUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ConversationRoundUpdateOne) ClearCompletedAt() *ConversationRoundUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddParticipantIDs adds the "participants" edge to the RoundParticipant entity by IDs.
func (_u *ConversationRoundUpdateOne) AddParticipantIDs(ids ...string) *ConversationRoundUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the RoundParticipant entity.
func (_u *ConversationRoundUpdateOne) AddParticipants(v ...*RoundParticipant) *ConversationRoundUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// Mutation returns the ConversationRoundMutation object of the builder.
func (_u *ConversationRoundUpdateOne) Mutation() *ConversationRoundMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the RoundParticipant entity.
func (_u *ConversationRoundUpdateOne) ClearParticipants() *ConversationRoundUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to RoundParticipant entities by IDs.
func (_u *ConversationRoundUpdateOne) RemoveParticipantIDs(ids ...string) *ConversationRoundUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to RoundParticipant entities.
func (_u *ConversationRoundUpdateOne) RemoveParticipants(v ...*RoundParticipant) *ConversationRoundUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// Where appends a list predicates to the ConversationRoundUpdate builder.
func (_u *ConversationRoundUpdateOne) Where(ps ...predicate.ConversationRound) *ConversationRoundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationRoundUpdateOne) Select(field string, fields ...string) *ConversationRoundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationRound entity.
func (_u *ConversationRoundUpdateOne) Save(ctx context.Context) (*ConversationRound, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationRoundUpdateOne) SaveX(ctx context.Context) *ConversationRound {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationRoundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationRoundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationRoundUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversationround.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversationRound.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SchedulingState(); ok {
		if err := conversationround.SchedulingStateValidator(v); err != nil {
			return &ValidationError{Name: "scheduling_state", err: fmt.Errorf(`ent: validator failed for field "ConversationRound.scheduling_state": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationRound.conversation"`)
	}
	return nil
}

func (_u *ConversationRoundUpdateOne) sqlSave(ctx context.Context) (_node *ConversationRound, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationround.Table, conversationround.Columns, sqlgraph.NewFieldSpec(conversationround.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationRound.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationround.FieldID)
		for _, f := range fields {
			if !conversationround.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationround.FieldID {
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
		_spec.SetField(conversationround.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SchedulingState(); ok {
		_spec.SetField(conversationround.FieldSchedulingState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(conversationround.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPosition(); ok {
		_spec.AddField(conversationround.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(conversationround.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(conversationround.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversationround.ParticipantsTable,
			Columns: []string{conversationround.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConversationRound{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
