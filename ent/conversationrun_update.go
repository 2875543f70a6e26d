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

// ConversationRunUpdate is the builder for updating ConversationRun entities.
type ConversationRunUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationRunMutation
}

// Where appends a list predicates to the ConversationRunUpdate builder.
func (_u *ConversationRunUpdate) Where(ps ...predicate.ConversationRun) *ConversationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ConversationRunUpdate) SetKind(v conversationrun.Kind) *ConversationRunUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableKind(v *conversationrun.Kind) *ConversationRunUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationRunUpdate) SetStatus(v conversationrun.Status) *ConversationRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableStatus(v *conversationrun.Status) *ConversationRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ConversationRunUpdate) SetReason(v string) *ConversationRunUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableReason(v *string) *ConversationRunUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ConversationRunUpdate) ClearReason() *ConversationRunUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (_u *ConversationRunUpdate) SetSpeakerMembershipID(v string) *ConversationRunUpdate {
	_u.mutation.SetSpeakerMembershipID(v)
	return _u
}

// SetNillableSpeakerMembershipID sets the "speaker_membership_id" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableSpeakerMembershipID(v *string) *ConversationRunUpdate {
	if v != nil {
		_u.SetSpeakerMembershipID(*v)
	}
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *ConversationRunUpdate) SetRoundID(v string) *ConversationRunUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableRoundID(v *string) *ConversationRunUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// ClearRoundID clears the value of the "round_id" field.
func (_u *ConversationRunUpdate) ClearRoundID() *ConversationRunUpdate {
	_u.mutation.ClearRoundID()
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *ConversationRunUpdate) SetRunAfter(v time.Time) *ConversationRunUpdate {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableRunAfter(v *time.Time) *ConversationRunUpdate {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// ClearRunAfter clears the value of the "run_after" field.
func (_u *ConversationRunUpdate) ClearRunAfter() *ConversationRunUpdate {
	_u.mutation.ClearRunAfter()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ConversationRunUpdate) SetStartedAt(v time.Time) *ConversationRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableStartedAt(v *time.Time) *ConversationRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ConversationRunUpdate) ClearStartedAt() *ConversationRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ConversationRunUpdate) SetFinishedAt(v time.Time) *ConversationRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableFinishedAt(v *time.Time) *ConversationRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ConversationRunUpdate) ClearFinishedAt() *ConversationRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *ConversationRunUpdate) SetHeartbeatAt(v time.Time) *ConversationRunUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableHeartbeatAt(v *time.Time) *ConversationRunUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *ConversationRunUpdate) ClearHeartbeatAt() *ConversationRunUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (_u *ConversationRunUpdate) SetCancelRequestedAt(v time.Time) *ConversationRunUpdate {
	_u.mutation.SetCancelRequestedAt(v)
	return _u
}

// SetNillableCancelRequestedAt sets the "cancel_requested_at" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillableCancelRequestedAt(v *time.Time) *ConversationRunUpdate {
	if v != nil {
		_u.SetCancelRequestedAt(*v)
	}
	return _u
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (_u *ConversationRunUpdate) ClearCancelRequestedAt() *ConversationRunUpdate {
	_u.mutation.ClearCancelRequestedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ConversationRunUpdate) SetError(v map[string]interface{}) *ConversationRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ConversationRunUpdate) ClearError() *ConversationRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetDebug sets the "debug" field.
func (_u *ConversationRunUpdate) SetDebug(v map[string]interface{}) *ConversationRunUpdate {
	_u.mutation.SetDebug(v)
	return _u
}

// ClearDebug clears the value of the "debug" field.
func (_u *ConversationRunUpdate) ClearDebug() *ConversationRunUpdate {
	_u.mutation.ClearDebug()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ConversationRunUpdate) SetPodID(v string) *ConversationRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ConversationRunUpdate) SetNillablePodID(v *string) *ConversationRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ConversationRunUpdate) ClearPodID() *ConversationRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationRunUpdate) SetUpdatedAt(v time.Time) *ConversationRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSpeakerID sets the "speaker" edge to the SpaceMembership entity by ID.
func (_u *ConversationRunUpdate) SetSpeakerID(id string) *ConversationRunUpdate {
	_u.mutation.SetSpeakerID(id)
	return _u
}

// SetSpeaker sets the "speaker" edge to the SpaceMembership entity.
func (_u *ConversationRunUpdate) SetSpeaker(v *SpaceMembership) *ConversationRunUpdate {
	return _u.SetSpeakerID(v.ID)
}

// Mutation returns the ConversationRunMutation object of the builder.
func (_u *ConversationRunUpdate) Mutation() *ConversationRunMutation {
	return _u.mutation
}

// ClearSpeaker clears the "speaker" edge to the SpaceMembership entity.
func (_u *ConversationRunUpdate) ClearSpeaker() *ConversationRunUpdate {
	_u.mutation.ClearSpeaker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationRunUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversationRun.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationRun.conversation"`)
	}
	if _u.mutation.SpeakerCleared() && len(_u.mutation.SpeakerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationRun.speaker"`)
	}
	return nil
}

func (_u *ConversationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationrun.Table, conversationrun.Columns, sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(conversationrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(conversationrun.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(conversationrun.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(conversationrun.FieldRoundID, field.TypeString, value)
	}
	if _u.mutation.RoundIDCleared() {
		_spec.ClearField(conversationrun.FieldRoundID, field.TypeString)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(conversationrun.FieldRunAfter, field.TypeTime, value)
	}
	if _u.mutation.RunAfterCleared() {
		_spec.ClearField(conversationrun.FieldRunAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(conversationrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(conversationrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(conversationrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(conversationrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(conversationrun.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(conversationrun.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequestedAt(); ok {
		_spec.SetField(conversationrun.FieldCancelRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.CancelRequestedAtCleared() {
		_spec.ClearField(conversationrun.FieldCancelRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(conversationrun.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(conversationrun.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Debug(); ok {
		_spec.SetField(conversationrun.FieldDebug, field.TypeJSON, value)
	}
	if _u.mutation.DebugCleared() {
		_spec.ClearField(conversationrun.FieldDebug, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(conversationrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(conversationrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpeakerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationrun.SpeakerTable,
			Columns: []string{conversationrun.SpeakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpeakerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationrun.SpeakerTable,
			Columns: []string{conversationrun.SpeakerColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationRunUpdateOne is the builder for updating a single ConversationRun entity.
type ConversationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationRunMutation
}

// SetKind sets the "kind" field.
func (_u *ConversationRunUpdateOne) SetKind(v conversationrun.Kind) *ConversationRunUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableKind(v *conversationrun.Kind) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationRunUpdateOne) SetStatus(v conversationrun.Status) *ConversationRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableStatus(v *conversationrun.Status) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ConversationRunUpdateOne) SetReason(v string) *ConversationRunUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableReason(v *string) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ConversationRunUpdateOne) ClearReason() *ConversationRunUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetSpeakerMembershipID sets the "speaker_membership_id" field.
func (_u *ConversationRunUpdateOne) SetSpeakerMembershipID(v string) *ConversationRunUpdateOne {
	_u.mutation.SetSpeakerMembershipID(v)
	return _u
}

// SetNillableSpeakerMembershipID sets the "speaker_membership_id" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableSpeakerMembershipID(v *string) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetSpeakerMembershipID(*v)
	}
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *ConversationRunUpdateOne) SetRoundID(v string) *ConversationRunUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableRoundID(v *string) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// ClearRoundID clears the value of the "round_id" field.
func (_u *ConversationRunUpdateOne) ClearRoundID() *ConversationRunUpdateOne {
	_u.mutation.ClearRoundID()
	return _u
}

// SetRunAfter sets the "run_after" field.
func (_u *ConversationRunUpdateOne) SetRunAfter(v time.Time) *ConversationRunUpdateOne {
	_u.mutation.SetRunAfter(v)
	return _u
}

// SetNillableRunAfter sets the "run_after" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableRunAfter(v *time.Time) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetRunAfter(*v)
	}
	return _u
}

// ClearRunAfter clears the value of the "run_after" field.
func (_u *ConversationRunUpdateOne) ClearRunAfter() *ConversationRunUpdateOne {
	_u.mutation.ClearRunAfter()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ConversationRunUpdateOne) SetStartedAt(v time.Time) *ConversationRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableStartedAt(v *time.Time) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ConversationRunUpdateOne) ClearStartedAt() *ConversationRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ConversationRunUpdateOne) SetFinishedAt(v time.Time) *ConversationRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ConversationRunUpdateOne) ClearFinishedAt() *ConversationRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *ConversationRunUpdateOne) SetHeartbeatAt(v time.Time) *ConversationRunUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableHeartbeatAt(v *time.Time) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *ConversationRunUpdateOne) ClearHeartbeatAt() *ConversationRunUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (_u *ConversationRunUpdateOne) SetCancelRequestedAt(v time.Time) *ConversationRunUpdateOne {
	_u.mutation.SetCancelRequestedAt(v)
	return _u
}

// SetNillableCancelRequestedAt sets the "cancel_requested_at" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillableCancelRequestedAt(v *time.Time) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetCancelRequestedAt(*v)
	}
	return _u
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (_u *ConversationRunUpdateOne) ClearCancelRequestedAt() *ConversationRunUpdateOne {
	_u.mutation.ClearCancelRequestedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ConversationRunUpdateOne) SetError(v map[string]interface{}) *ConversationRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ConversationRunUpdateOne) ClearError() *ConversationRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetDebug sets the "debug" field.
func (_u *ConversationRunUpdateOne) SetDebug(v map[string]interface{}) *ConversationRunUpdateOne {
	_u.mutation.SetDebug(v)
	return _u
}

// ClearDebug clears the value of the "debug" field.
func (_u *ConversationRunUpdateOne) ClearDebug() *ConversationRunUpdateOne {
	_u.mutation.ClearDebug()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ConversationRunUpdateOne) SetPodID(v string) *ConversationRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ConversationRunUpdateOne) SetNillablePodID(v *string) *ConversationRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ConversationRunUpdateOne) ClearPodID() *ConversationRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationRunUpdateOne) SetUpdatedAt(v time.Time) *ConversationRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSpeakerID sets the "speaker" edge to the SpaceMembership entity by ID.
func (_u *ConversationRunUpdateOne) SetSpeakerID(id string) *ConversationRunUpdateOne {
	_u.mutation.SetSpeakerID(id)
	return _u
}

// SetSpeaker sets the "speaker" edge to the SpaceMembership entity.
func (_u *ConversationRunUpdateOne) SetSpeaker(v *SpaceMembership) *ConversationRunUpdateOne {
	return _u.SetSpeakerID(v.ID)
}

// Mutation returns the ConversationRunMutation object of the builder.
func (_u *ConversationRunUpdateOne) Mutation() *ConversationRunMutation {
	return _u.mutation
}

// ClearSpeaker clears the "speaker" edge to the SpaceMembership entity.
func (_u *ConversationRunUpdateOne) ClearSpeaker() *ConversationRunUpdateOne {
	_u.mutation.ClearSpeaker()
	return _u
}

// Where appends a list predicates to the ConversationRunUpdate builder.
func (_u *ConversationRunUpdateOne) Where(ps ...predicate.ConversationRun) *ConversationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationRunUpdateOne) Select(field string, fields ...string) *ConversationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversationRun entity.
func (_u *ConversationRunUpdateOne) Save(ctx context.Context) (*ConversationRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationRunUpdateOne) SaveX(ctx context.Context) *ConversationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversationrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationRunUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := conversationrun.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationRun.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversationrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConversationRun.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationRun.conversation"`)
	}
	if _u.mutation.SpeakerCleared() && len(_u.mutation.SpeakerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConversationRun.speaker"`)
	}
	return nil
}

func (_u *ConversationRunUpdateOne) sqlSave(ctx context.Context) (_node *ConversationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversationrun.Table, conversationrun.Columns, sqlgraph.NewFieldSpec(conversationrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversationrun.FieldID)
		for _, f := range fields {
			if !conversationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversationrun.FieldID {
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
		_spec.SetField(conversationrun.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversationrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(conversationrun.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(conversationrun.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(conversationrun.FieldRoundID, field.TypeString, value)
	}
	if _u.mutation.RoundIDCleared() {
		_spec.ClearField(conversationrun.FieldRoundID, field.TypeString)
	}
	if value, ok := _u.mutation.RunAfter(); ok {
		_spec.SetField(conversationrun.FieldRunAfter, field.TypeTime, value)
	}
	if _u.mutation.RunAfterCleared() {
		_spec.ClearField(conversationrun.FieldRunAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(conversationrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(conversationrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(conversationrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(conversationrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(conversationrun.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(conversationrun.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequestedAt(); ok {
		_spec.SetField(conversationrun.FieldCancelRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.CancelRequestedAtCleared() {
		_spec.ClearField(conversationrun.FieldCancelRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(conversationrun.FieldError, field.TypeJSON, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(conversationrun.FieldError, field.TypeJSON)
	}
	if value, ok := _u.mutation.Debug(); ok {
		_spec.SetField(conversationrun.FieldDebug, field.TypeJSON, value)
	}
	if _u.mutation.DebugCleared() {
		_spec.ClearField(conversationrun.FieldDebug, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(conversationrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(conversationrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversationrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SpeakerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationrun.SpeakerTable,
			Columns: []string{conversationrun.SpeakerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spacemembership.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpeakerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationrun.SpeakerTable,
			Columns: []string{conversationrun.SpeakerColumn},
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
	_node = &ConversationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
