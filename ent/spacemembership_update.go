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
	"github.com/talkwheel/talkwheel/ent/conversationrun"
	"github.com/talkwheel/talkwheel/ent/predicate"
	"github.com/talkwheel/talkwheel/ent/spacemembership"
)

// SpaceMembershipUpdate is the builder for updating SpaceMembership entities.
type SpaceMembershipUpdate struct {
	config
	hooks    []Hook
	mutation *SpaceMembershipMutation
}

// Where appends a list predicates to the SpaceMembershipUpdate builder.
func (_u *SpaceMembershipUpdate) Where(ps ...predicate.SpaceMembership) *SpaceMembershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *SpaceMembershipUpdate) SetKind(v spacemembership.Kind) *SpaceMembershipUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableKind(v *spacemembership.Kind) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *SpaceMembershipUpdate) SetDisplayName(v string) *SpaceMembershipUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableDisplayName(v *string) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *SpaceMembershipUpdate) SetAvatarURL(v string) *SpaceMembershipUpdate {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableAvatarURL(v *string) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *SpaceMembershipUpdate) ClearAvatarURL() *SpaceMembershipUpdate {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SpaceMembershipUpdate) SetPosition(v int) *SpaceMembershipUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillablePosition(v *int) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SpaceMembershipUpdate) AddPosition(v int) *SpaceMembershipUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetParticipation sets the "participation" field.
func (_u *SpaceMembershipUpdate) SetParticipation(v spacemembership.Participation) *SpaceMembershipUpdate {
	_u.mutation.SetParticipation(v)
	return _u
}

// SetNillableParticipation sets the "participation" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableParticipation(v *spacemembership.Participation) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetParticipation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpaceMembershipUpdate) SetStatus(v spacemembership.Status) *SpaceMembershipUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableStatus(v *spacemembership.Status) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTalkativeness sets the "talkativeness" field.
func (_u *SpaceMembershipUpdate) SetTalkativeness(v float64) *SpaceMembershipUpdate {
	_u.mutation.ResetTalkativeness()
	_u.mutation.SetTalkativeness(v)
	return _u
}

// SetNillableTalkativeness sets the "talkativeness" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableTalkativeness(v *float64) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetTalkativeness(*v)
	}
	return _u
}

// AddTalkativeness adds value to the "talkativeness" field.
func (_u *SpaceMembershipUpdate) AddTalkativeness(v float64) *SpaceMembershipUpdate {
	_u.mutation.AddTalkativeness(v)
	return _u
}

// ClearTalkativeness clears the value of the "talkativeness" field.
func (_u *SpaceMembershipUpdate) ClearTalkativeness() *SpaceMembershipUpdate {
	_u.mutation.ClearTalkativeness()
	return _u
}

// SetCopilotMode sets the "copilot_mode" field.
func (_u *SpaceMembershipUpdate) SetCopilotMode(v spacemembership.CopilotMode) *SpaceMembershipUpdate {
	_u.mutation.SetCopilotMode(v)
	return _u
}

// SetNillableCopilotMode sets the "copilot_mode" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableCopilotMode(v *spacemembership.CopilotMode) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetCopilotMode(*v)
	}
	return _u
}

// SetCopilotRemainingSteps sets the "copilot_remaining_steps" field.
func (_u *SpaceMembershipUpdate) SetCopilotRemainingSteps(v int) *SpaceMembershipUpdate {
	_u.mutation.ResetCopilotRemainingSteps()
	_u.mutation.SetCopilotRemainingSteps(v)
	return _u
}

// SetNillableCopilotRemainingSteps sets the "copilot_remaining_steps" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableCopilotRemainingSteps(v *int) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetCopilotRemainingSteps(*v)
	}
	return _u
}

// AddCopilotRemainingSteps adds value to the "copilot_remaining_steps" field.
func (_u *SpaceMembershipUpdate) AddCopilotRemainingSteps(v int) *SpaceMembershipUpdate {
	_u.mutation.AddCopilotRemainingSteps(v)
	return _u
}

// SetBoundCharacterID sets the "bound_character_id" field.
func (_u *SpaceMembershipUpdate) SetBoundCharacterID(v string) *SpaceMembershipUpdate {
	_u.mutation.SetBoundCharacterID(v)
	return _u
}

// SetNillableBoundCharacterID sets the "bound_character_id" field if the given value is not nil.
func (_u *SpaceMembershipUpdate) SetNillableBoundCharacterID(v *string) *SpaceMembershipUpdate {
	if v != nil {
		_u.SetBoundCharacterID(*v)
	}
	return _u
}

// ClearBoundCharacterID clears the value of the "bound_character_id" field.
func (_u *SpaceMembershipUpdate) ClearBoundCharacterID() *SpaceMembershipUpdate {
	_u.mutation.ClearBoundCharacterID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpaceMembershipUpdate) SetUpdatedAt(v time.Time) *SpaceMembershipUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by IDs.
func (_u *SpaceMembershipUpdate) AddRunIDs(ids ...string) *SpaceMembershipUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ConversationRun entity.
func (_u *SpaceMembershipUpdate) AddRuns(v ...*ConversationRun) *SpaceMembershipUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SpaceMembershipMutation object of the builder.
func (_u *SpaceMembershipUpdate) Mutation() *SpaceMembershipMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the ConversationRun entity.
func (_u *SpaceMembershipUpdate) ClearRuns() *SpaceMembershipUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ConversationRun entities by IDs.
func (_u *SpaceMembershipUpdate) RemoveRunIDs(ids ...string) *SpaceMembershipUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ConversationRun entities.
func (_u *SpaceMembershipUpdate) RemoveRuns(v ...*ConversationRun) *SpaceMembershipUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpaceMembershipUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpaceMembershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpaceMembershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpaceMembershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpaceMembershipUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := spacemembership.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpaceMembershipUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := spacemembership.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Participation(); ok {
		if err := spacemembership.ParticipationValidator(v); err != nil {
			return &ValidationError{Name: "participation", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.participation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := spacemembership.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CopilotMode(); ok {
		if err := spacemembership.CopilotModeValidator(v); err != nil {
			return &ValidationError{Name: "copilot_mode", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.copilot_mode": %w`, err)}
		}
	}
	if _u.mutation.SpaceCleared() && len(_u.mutation.SpaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpaceMembership.space"`)
	}
	return nil
}

func (_u *SpaceMembershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spacemembership.Table, spacemembership.Columns, sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(spacemembership.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(spacemembership.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(spacemembership.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(spacemembership.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(spacemembership.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(spacemembership.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Participation(); ok {
		_spec.SetField(spacemembership.FieldParticipation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(spacemembership.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Talkativeness(); ok {
		_spec.SetField(spacemembership.FieldTalkativeness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTalkativeness(); ok {
		_spec.AddField(spacemembership.FieldTalkativeness, field.TypeFloat64, value)
	}
	if _u.mutation.TalkativenessCleared() {
		_spec.ClearField(spacemembership.FieldTalkativeness, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CopilotMode(); ok {
		_spec.SetField(spacemembership.FieldCopilotMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CopilotRemainingSteps(); ok {
		_spec.SetField(spacemembership.FieldCopilotRemainingSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCopilotRemainingSteps(); ok {
		_spec.AddField(spacemembership.FieldCopilotRemainingSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoundCharacterID(); ok {
		_spec.SetField(spacemembership.FieldBoundCharacterID, field.TypeString, value)
	}
	if _u.mutation.BoundCharacterIDCleared() {
		_spec.ClearField(spacemembership.FieldBoundCharacterID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(spacemembership.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spacemembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpaceMembershipUpdateOne is the builder for updating a single SpaceMembership entity.
type SpaceMembershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpaceMembershipMutation
}

// SetKind sets the "kind" field.
func (_u *SpaceMembershipUpdateOne) SetKind(v spacemembership.Kind) *SpaceMembershipUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableKind(v *spacemembership.Kind) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *SpaceMembershipUpdateOne) SetDisplayName(v string) *SpaceMembershipUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableDisplayName(v *string) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetAvatarURL sets the "avatar_url" field.
func (_u *SpaceMembershipUpdateOne) SetAvatarURL(v string) *SpaceMembershipUpdateOne {
	_u.mutation.SetAvatarURL(v)
	return _u
}

// SetNillableAvatarURL sets the "avatar_url" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableAvatarURL(v *string) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetAvatarURL(*v)
	}
	return _u
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (_u *SpaceMembershipUpdateOne) ClearAvatarURL() *SpaceMembershipUpdateOne {
	_u.mutation.ClearAvatarURL()
	return _u
}

// SetPosition sets the "position" field.
func (_u *SpaceMembershipUpdateOne) SetPosition(v int) *SpaceMembershipUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillablePosition(v *int) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SpaceMembershipUpdateOne) AddPosition(v int) *SpaceMembershipUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetParticipation sets the "participation" field.
func (_u *SpaceMembershipUpdateOne) SetParticipation(v spacemembership.Participation) *SpaceMembershipUpdateOne {
	_u.mutation.SetParticipation(v)
	return _u
}

// SetNillableParticipation sets the "participation" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableParticipation(v *spacemembership.Participation) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetParticipation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SpaceMembershipUpdateOne) SetStatus(v spacemembership.Status) *SpaceMembershipUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableStatus(v *spacemembership.Status) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTalkativeness sets the "talkativeness" field.
func (_u *SpaceMembershipUpdateOne) SetTalkativeness(v float64) *SpaceMembershipUpdateOne {
	_u.mutation.ResetTalkativeness()
	_u.mutation.SetTalkativeness(v)
	return _u
}

// SetNillableTalkativeness sets the "talkativeness" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableTalkativeness(v *float64) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetTalkativeness(*v)
	}
	return _u
}

// AddTalkativeness adds value to the "talkativeness" field.
func (_u *SpaceMembershipUpdateOne) AddTalkativeness(v float64) *SpaceMembershipUpdateOne {
	_u.mutation.AddTalkativeness(v)
	return _u
}

// ClearTalkativeness clears the value of the "talkativeness" field.
func (_u *SpaceMembershipUpdateOne) ClearTalkativeness() *SpaceMembershipUpdateOne {
	_u.mutation.ClearTalkativeness()
	return _u
}

// SetCopilotMode sets the "copilot_mode" field.
func (_u *SpaceMembershipUpdateOne) SetCopilotMode(v spacemembership.CopilotMode) *SpaceMembershipUpdateOne {
	_u.mutation.SetCopilotMode(v)
	return _u
}

// SetNillableCopilotMode sets the "copilot_mode" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableCopilotMode(v *spacemembership.CopilotMode) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetCopilotMode(*v)
	}
	return _u
}

// SetCopilotRemainingSteps sets the "copilot_remaining_steps" field.
func (_u *SpaceMembershipUpdateOne) SetCopilotRemainingSteps(v int) *SpaceMembershipUpdateOne {
	_u.mutation.ResetCopilotRemainingSteps()
	_u.mutation.SetCopilotRemainingSteps(v)
	return _u
}

// SetNillableCopilotRemainingSteps sets the "copilot_remaining_steps" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableCopilotRemainingSteps(v *int) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetCopilotRemainingSteps(*v)
	}
	return _u
}

// AddCopilotRemainingSteps adds value to the "copilot_remaining_steps" field.
func (_u *SpaceMembershipUpdateOne) AddCopilotRemainingSteps(v int) *SpaceMembershipUpdateOne {
	_u.mutation.AddCopilotRemainingSteps(v)
	return _u
}

// SetBoundCharacterID sets the "bound_character_id" field.
func (_u *SpaceMembershipUpdateOne) SetBoundCharacterID(v string) *SpaceMembershipUpdateOne {
	_u.mutation.SetBoundCharacterID(v)
	return _u
}

// SetNillableBoundCharacterID sets the "bound_character_id" field if the given value is not nil.
func (_u *SpaceMembershipUpdateOne) SetNillableBoundCharacterID(v *string) *SpaceMembershipUpdateOne {
	if v != nil {
		_u.SetBoundCharacterID(*v)
	}
	return _u
}

// ClearBoundCharacterID clears the value of the "bound_character_id" field.
func (_u *SpaceMembershipUpdateOne) ClearBoundCharacterID() *SpaceMembershipUpdateOne {
	_u.mutation.ClearBoundCharacterID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SpaceMembershipUpdateOne) SetUpdatedAt(v time.Time) *SpaceMembershipUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the ConversationRun entity by IDs.
func (_u *SpaceMembershipUpdateOne) AddRunIDs(ids ...string) *SpaceMembershipUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the ConversationRun entity.
func (_u *SpaceMembershipUpdateOne) AddRuns(v ...*ConversationRun) *SpaceMembershipUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the SpaceMembershipMutation object of the builder.
func (_u *SpaceMembershipUpdateOne) Mutation() *SpaceMembershipMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the ConversationRun entity.
func (_u *SpaceMembershipUpdateOne) ClearRuns() *SpaceMembershipUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to ConversationRun entities by IDs.
func (_u *SpaceMembershipUpdateOne) RemoveRunIDs(ids ...string) *SpaceMembershipUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to ConversationRun entities.
func (_u *SpaceMembershipUpdateOne) RemoveRuns(v ...*ConversationRun) *SpaceMembershipUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the SpaceMembershipUpdate builder.
func (_u *SpaceMembershipUpdateOne) Where(ps ...predicate.SpaceMembership) *SpaceMembershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpaceMembershipUpdateOne) Select(field string, fields ...string) *SpaceMembershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpaceMembership entity.
func (_u *SpaceMembershipUpdateOne) Save(ctx context.Context) (*SpaceMembership, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpaceMembershipUpdateOne) SaveX(ctx context.Context) *SpaceMembership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpaceMembershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpaceMembershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SpaceMembershipUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := spacemembership.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpaceMembershipUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := spacemembership.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Participation(); ok {
		if err := spacemembership.ParticipationValidator(v); err != nil {
			return &ValidationError{Name: "participation", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.participation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := spacemembership.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CopilotMode(); ok {
		if err := spacemembership.CopilotModeValidator(v); err != nil {
			return &ValidationError{Name: "copilot_mode", err: fmt.Errorf(`ent: validator failed for field "SpaceMembership.copilot_mode": %w`, err)}
		}
	}
	if _u.mutation.SpaceCleared() && len(_u.mutation.SpaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpaceMembership.space"`)
	}
	return nil
}

func (_u *SpaceMembershipUpdateOne) sqlSave(ctx context.Context) (_node *SpaceMembership, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spacemembership.Table, spacemembership.Columns, sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpaceMembership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spacemembership.FieldID)
		for _, f := range fields {
			if !spacemembership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spacemembership.FieldID {
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
		_spec.SetField(spacemembership.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(spacemembership.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvatarURL(); ok {
		_spec.SetField(spacemembership.FieldAvatarURL, field.TypeString, value)
	}
	if _u.mutation.AvatarURLCleared() {
		_spec.ClearField(spacemembership.FieldAvatarURL, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(spacemembership.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(spacemembership.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Participation(); ok {
		_spec.SetField(spacemembership.FieldParticipation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(spacemembership.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Talkativeness(); ok {
		_spec.SetField(spacemembership.FieldTalkativeness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTalkativeness(); ok {
		_spec.AddField(spacemembership.FieldTalkativeness, field.TypeFloat64, value)
	}
	if _u.mutation.TalkativenessCleared() {
		_spec.ClearField(spacemembership.FieldTalkativeness, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CopilotMode(); ok {
		_spec.SetField(spacemembership.FieldCopilotMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CopilotRemainingSteps(); ok {
		_spec.SetField(spacemembership.FieldCopilotRemainingSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCopilotRemainingSteps(); ok {
		_spec.AddField(spacemembership.FieldCopilotRemainingSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoundCharacterID(); ok {
		_spec.SetField(spacemembership.FieldBoundCharacterID, field.TypeString, value)
	}
	if _u.mutation.BoundCharacterIDCleared() {
		_spec.ClearField(spacemembership.FieldBoundCharacterID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(spacemembership.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
			Table:   spacemembership.RunsTable,
			Columns: []string{spacemembership.RunsColumn},
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
	_node = &SpaceMembership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spacemembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
