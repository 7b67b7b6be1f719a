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
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *PipelineRunUpdate) SetTrigger(v pipelinerun.Trigger) *PipelineRunUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTrigger(v *pipelinerun.Trigger) *PipelineRunUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineRunUpdate) SetPodID(v string) *PipelineRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillablePodID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineRunUpdate) ClearPodID() *PipelineRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *PipelineRunUpdate) SetErrorCategory(v pipelinerun.ErrorCategory) *PipelineRunUpdate {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorCategory(v *pipelinerun.ErrorCategory) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *PipelineRunUpdate) ClearErrorCategory() *PipelineRunUpdate {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdate) SetErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdate) ClearErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTitlesSelected sets the "titles_selected" field.
func (_u *PipelineRunUpdate) SetTitlesSelected(v int) *PipelineRunUpdate {
	_u.mutation.ResetTitlesSelected()
	_u.mutation.SetTitlesSelected(v)
	return _u
}

// SetNillableTitlesSelected sets the "titles_selected" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTitlesSelected(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetTitlesSelected(*v)
	}
	return _u
}

// AddTitlesSelected adds value to the "titles_selected" field.
func (_u *PipelineRunUpdate) AddTitlesSelected(v int) *PipelineRunUpdate {
	_u.mutation.AddTitlesSelected(v)
	return _u
}

// SetShardsTotal sets the "shards_total" field.
func (_u *PipelineRunUpdate) SetShardsTotal(v int) *PipelineRunUpdate {
	_u.mutation.ResetShardsTotal()
	_u.mutation.SetShardsTotal(v)
	return _u
}

// SetNillableShardsTotal sets the "shards_total" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableShardsTotal(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetShardsTotal(*v)
	}
	return _u
}

// AddShardsTotal adds value to the "shards_total" field.
func (_u *PipelineRunUpdate) AddShardsTotal(v int) *PipelineRunUpdate {
	_u.mutation.AddShardsTotal(v)
	return _u
}

// SetShardsFailed sets the "shards_failed" field.
func (_u *PipelineRunUpdate) SetShardsFailed(v int) *PipelineRunUpdate {
	_u.mutation.ResetShardsFailed()
	_u.mutation.SetShardsFailed(v)
	return _u
}

// SetNillableShardsFailed sets the "shards_failed" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableShardsFailed(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetShardsFailed(*v)
	}
	return _u
}

// AddShardsFailed adds value to the "shards_failed" field.
func (_u *PipelineRunUpdate) AddShardsFailed(v int) *PipelineRunUpdate {
	_u.mutation.AddShardsFailed(v)
	return _u
}

// SetIncidentsMapped sets the "incidents_mapped" field.
func (_u *PipelineRunUpdate) SetIncidentsMapped(v int) *PipelineRunUpdate {
	_u.mutation.ResetIncidentsMapped()
	_u.mutation.SetIncidentsMapped(v)
	return _u
}

// SetNillableIncidentsMapped sets the "incidents_mapped" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableIncidentsMapped(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetIncidentsMapped(*v)
	}
	return _u
}

// AddIncidentsMapped adds value to the "incidents_mapped" field.
func (_u *PipelineRunUpdate) AddIncidentsMapped(v int) *PipelineRunUpdate {
	_u.mutation.AddIncidentsMapped(v)
	return _u
}

// SetOrphansMapped sets the "orphans_mapped" field.
func (_u *PipelineRunUpdate) SetOrphansMapped(v int) *PipelineRunUpdate {
	_u.mutation.ResetOrphansMapped()
	_u.mutation.SetOrphansMapped(v)
	return _u
}

// SetNillableOrphansMapped sets the "orphans_mapped" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableOrphansMapped(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetOrphansMapped(*v)
	}
	return _u
}

// AddOrphansMapped adds value to the "orphans_mapped" field.
func (_u *PipelineRunUpdate) AddOrphansMapped(v int) *PipelineRunUpdate {
	_u.mutation.AddOrphansMapped(v)
	return _u
}

// SetCandidatesReduced sets the "candidates_reduced" field.
func (_u *PipelineRunUpdate) SetCandidatesReduced(v int) *PipelineRunUpdate {
	_u.mutation.ResetCandidatesReduced()
	_u.mutation.SetCandidatesReduced(v)
	return _u
}

// SetNillableCandidatesReduced sets the "candidates_reduced" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCandidatesReduced(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetCandidatesReduced(*v)
	}
	return _u
}

// AddCandidatesReduced adds value to the "candidates_reduced" field.
func (_u *PipelineRunUpdate) AddCandidatesReduced(v int) *PipelineRunUpdate {
	_u.mutation.AddCandidatesReduced(v)
	return _u
}

// SetReduceDrops sets the "reduce_drops" field.
func (_u *PipelineRunUpdate) SetReduceDrops(v int) *PipelineRunUpdate {
	_u.mutation.ResetReduceDrops()
	_u.mutation.SetReduceDrops(v)
	return _u
}

// SetNillableReduceDrops sets the "reduce_drops" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableReduceDrops(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetReduceDrops(*v)
	}
	return _u
}

// AddReduceDrops adds value to the "reduce_drops" field.
func (_u *PipelineRunUpdate) AddReduceDrops(v int) *PipelineRunUpdate {
	_u.mutation.AddReduceDrops(v)
	return _u
}

// SetEfsCreated sets the "efs_created" field.
func (_u *PipelineRunUpdate) SetEfsCreated(v int) *PipelineRunUpdate {
	_u.mutation.ResetEfsCreated()
	_u.mutation.SetEfsCreated(v)
	return _u
}

// SetNillableEfsCreated sets the "efs_created" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableEfsCreated(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetEfsCreated(*v)
	}
	return _u
}

// AddEfsCreated adds value to the "efs_created" field.
func (_u *PipelineRunUpdate) AddEfsCreated(v int) *PipelineRunUpdate {
	_u.mutation.AddEfsCreated(v)
	return _u
}

// SetEfsUpdated sets the "efs_updated" field.
func (_u *PipelineRunUpdate) SetEfsUpdated(v int) *PipelineRunUpdate {
	_u.mutation.ResetEfsUpdated()
	_u.mutation.SetEfsUpdated(v)
	return _u
}

// SetNillableEfsUpdated sets the "efs_updated" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableEfsUpdated(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetEfsUpdated(*v)
	}
	return _u
}

// AddEfsUpdated adds value to the "efs_updated" field.
func (_u *PipelineRunUpdate) AddEfsUpdated(v int) *PipelineRunUpdate {
	_u.mutation.AddEfsUpdated(v)
	return _u
}

// SetTitlesAssigned sets the "titles_assigned" field.
func (_u *PipelineRunUpdate) SetTitlesAssigned(v int) *PipelineRunUpdate {
	_u.mutation.ResetTitlesAssigned()
	_u.mutation.SetTitlesAssigned(v)
	return _u
}

// SetNillableTitlesAssigned sets the "titles_assigned" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableTitlesAssigned(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetTitlesAssigned(*v)
	}
	return _u
}

// AddTitlesAssigned adds value to the "titles_assigned" field.
func (_u *PipelineRunUpdate) AddTitlesAssigned(v int) *PipelineRunUpdate {
	_u.mutation.AddTitlesAssigned(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *PipelineRunUpdate) SetLastHeartbeatAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *PipelineRunUpdate) ClearLastHeartbeatAt() *PipelineRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by IDs.
func (_u *PipelineRunUpdate) AddMergeEventIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddMergeEventIDs(ids...)
	return _u
}

// AddMergeEvents adds the "merge_events" edges to the MergeEvent entity.
func (_u *PipelineRunUpdate) AddMergeEvents(v ...*MergeEvent) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMergeEventIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearMergeEvents clears all "merge_events" edges to the MergeEvent entity.
func (_u *PipelineRunUpdate) ClearMergeEvents() *PipelineRunUpdate {
	_u.mutation.ClearMergeEvents()
	return _u
}

// RemoveMergeEventIDs removes the "merge_events" edge to MergeEvent entities by IDs.
func (_u *PipelineRunUpdate) RemoveMergeEventIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveMergeEventIDs(ids...)
	return _u
}

// RemoveMergeEvents removes "merge_events" edges to MergeEvent entities.
func (_u *PipelineRunUpdate) RemoveMergeEvents(v ...*MergeEvent) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMergeEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := pipelinerun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCategory(); ok {
		if err := pipelinerun.ErrorCategoryValidator(v); err != nil {
			return &ValidationError{Name: "error_category", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.error_category": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(pipelinerun.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinerun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(pipelinerun.FieldErrorCategory, field.TypeEnum, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(pipelinerun.FieldErrorCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TitlesSelected(); ok {
		_spec.SetField(pipelinerun.FieldTitlesSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTitlesSelected(); ok {
		_spec.AddField(pipelinerun.FieldTitlesSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShardsTotal(); ok {
		_spec.SetField(pipelinerun.FieldShardsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShardsTotal(); ok {
		_spec.AddField(pipelinerun.FieldShardsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShardsFailed(); ok {
		_spec.SetField(pipelinerun.FieldShardsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShardsFailed(); ok {
		_spec.AddField(pipelinerun.FieldShardsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncidentsMapped(); ok {
		_spec.SetField(pipelinerun.FieldIncidentsMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncidentsMapped(); ok {
		_spec.AddField(pipelinerun.FieldIncidentsMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrphansMapped(); ok {
		_spec.SetField(pipelinerun.FieldOrphansMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrphansMapped(); ok {
		_spec.AddField(pipelinerun.FieldOrphansMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CandidatesReduced(); ok {
		_spec.SetField(pipelinerun.FieldCandidatesReduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCandidatesReduced(); ok {
		_spec.AddField(pipelinerun.FieldCandidatesReduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReduceDrops(); ok {
		_spec.SetField(pipelinerun.FieldReduceDrops, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReduceDrops(); ok {
		_spec.AddField(pipelinerun.FieldReduceDrops, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EfsCreated(); ok {
		_spec.SetField(pipelinerun.FieldEfsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEfsCreated(); ok {
		_spec.AddField(pipelinerun.FieldEfsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EfsUpdated(); ok {
		_spec.SetField(pipelinerun.FieldEfsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEfsUpdated(); ok {
		_spec.AddField(pipelinerun.FieldEfsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TitlesAssigned(); ok {
		_spec.SetField(pipelinerun.FieldTitlesAssigned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTitlesAssigned(); ok {
		_spec.AddField(pipelinerun.FieldTitlesAssigned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(pipelinerun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.MergeEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.MergeEventsTable,
			Columns: []string{pipelinerun.MergeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMergeEventsIDs(); len(nodes) > 0 && !_u.mutation.MergeEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.MergeEventsTable,
			Columns: []string{pipelinerun.MergeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergeEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.MergeEventsTable,
			Columns: []string{pipelinerun.MergeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *PipelineRunUpdateOne) SetTrigger(v pipelinerun.Trigger) *PipelineRunUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTrigger(v *pipelinerun.Trigger) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PipelineRunUpdateOne) SetPodID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillablePodID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PipelineRunUpdateOne) ClearPodID() *PipelineRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *PipelineRunUpdateOne) SetErrorCategory(v pipelinerun.ErrorCategory) *PipelineRunUpdateOne {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorCategory(v *pipelinerun.ErrorCategory) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *PipelineRunUpdateOne) ClearErrorCategory() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdateOne) SetErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdateOne) ClearErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTitlesSelected sets the "titles_selected" field.
func (_u *PipelineRunUpdateOne) SetTitlesSelected(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetTitlesSelected()
	_u.mutation.SetTitlesSelected(v)
	return _u
}

// SetNillableTitlesSelected sets the "titles_selected" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTitlesSelected(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTitlesSelected(*v)
	}
	return _u
}

// AddTitlesSelected adds value to the "titles_selected" field.
func (_u *PipelineRunUpdateOne) AddTitlesSelected(v int) *PipelineRunUpdateOne {
	_u.mutation.AddTitlesSelected(v)
	return _u
}

// SetShardsTotal sets the "shards_total" field.
func (_u *PipelineRunUpdateOne) SetShardsTotal(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetShardsTotal()
	_u.mutation.SetShardsTotal(v)
	return _u
}

// SetNillableShardsTotal sets the "shards_total" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableShardsTotal(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetShardsTotal(*v)
	}
	return _u
}

// AddShardsTotal adds value to the "shards_total" field.
func (_u *PipelineRunUpdateOne) AddShardsTotal(v int) *PipelineRunUpdateOne {
	_u.mutation.AddShardsTotal(v)
	return _u
}

// SetShardsFailed sets the "shards_failed" field.
func (_u *PipelineRunUpdateOne) SetShardsFailed(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetShardsFailed()
	_u.mutation.SetShardsFailed(v)
	return _u
}

// SetNillableShardsFailed sets the "shards_failed" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableShardsFailed(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetShardsFailed(*v)
	}
	return _u
}

// AddShardsFailed adds value to the "shards_failed" field.
func (_u *PipelineRunUpdateOne) AddShardsFailed(v int) *PipelineRunUpdateOne {
	_u.mutation.AddShardsFailed(v)
	return _u
}

// SetIncidentsMapped sets the "incidents_mapped" field.
func (_u *PipelineRunUpdateOne) SetIncidentsMapped(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetIncidentsMapped()
	_u.mutation.SetIncidentsMapped(v)
	return _u
}

// SetNillableIncidentsMapped sets the "incidents_mapped" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableIncidentsMapped(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetIncidentsMapped(*v)
	}
	return _u
}

// AddIncidentsMapped adds value to the "incidents_mapped" field.
func (_u *PipelineRunUpdateOne) AddIncidentsMapped(v int) *PipelineRunUpdateOne {
	_u.mutation.AddIncidentsMapped(v)
	return _u
}

// SetOrphansMapped sets the "orphans_mapped" field.
func (_u *PipelineRunUpdateOne) SetOrphansMapped(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetOrphansMapped()
	_u.mutation.SetOrphansMapped(v)
	return _u
}

// SetNillableOrphansMapped sets the "orphans_mapped" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableOrphansMapped(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetOrphansMapped(*v)
	}
	return _u
}

// AddOrphansMapped adds value to the "orphans_mapped" field.
func (_u *PipelineRunUpdateOne) AddOrphansMapped(v int) *PipelineRunUpdateOne {
	_u.mutation.AddOrphansMapped(v)
	return _u
}

// SetCandidatesReduced sets the "candidates_reduced" field.
func (_u *PipelineRunUpdateOne) SetCandidatesReduced(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetCandidatesReduced()
	_u.mutation.SetCandidatesReduced(v)
	return _u
}

// SetNillableCandidatesReduced sets the "candidates_reduced" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCandidatesReduced(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCandidatesReduced(*v)
	}
	return _u
}

// AddCandidatesReduced adds value to the "candidates_reduced" field.
func (_u *PipelineRunUpdateOne) AddCandidatesReduced(v int) *PipelineRunUpdateOne {
	_u.mutation.AddCandidatesReduced(v)
	return _u
}

// SetReduceDrops sets the "reduce_drops" field.
func (_u *PipelineRunUpdateOne) SetReduceDrops(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetReduceDrops()
	_u.mutation.SetReduceDrops(v)
	return _u
}

// SetNillableReduceDrops sets the "reduce_drops" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableReduceDrops(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetReduceDrops(*v)
	}
	return _u
}

// AddReduceDrops adds value to the "reduce_drops" field.
func (_u *PipelineRunUpdateOne) AddReduceDrops(v int) *PipelineRunUpdateOne {
	_u.mutation.AddReduceDrops(v)
	return _u
}

// SetEfsCreated sets the "efs_created" field.
func (_u *PipelineRunUpdateOne) SetEfsCreated(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetEfsCreated()
	_u.mutation.SetEfsCreated(v)
	return _u
}

// SetNillableEfsCreated sets the "efs_created" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableEfsCreated(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetEfsCreated(*v)
	}
	return _u
}

// AddEfsCreated adds value to the "efs_created" field.
func (_u *PipelineRunUpdateOne) AddEfsCreated(v int) *PipelineRunUpdateOne {
	_u.mutation.AddEfsCreated(v)
	return _u
}

// SetEfsUpdated sets the "efs_updated" field.
func (_u *PipelineRunUpdateOne) SetEfsUpdated(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetEfsUpdated()
	_u.mutation.SetEfsUpdated(v)
	return _u
}

// SetNillableEfsUpdated sets the "efs_updated" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableEfsUpdated(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetEfsUpdated(*v)
	}
	return _u
}

// AddEfsUpdated adds value to the "efs_updated" field.
func (_u *PipelineRunUpdateOne) AddEfsUpdated(v int) *PipelineRunUpdateOne {
	_u.mutation.AddEfsUpdated(v)
	return _u
}

// SetTitlesAssigned sets the "titles_assigned" field.
func (_u *PipelineRunUpdateOne) SetTitlesAssigned(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetTitlesAssigned()
	_u.mutation.SetTitlesAssigned(v)
	return _u
}

// SetNillableTitlesAssigned sets the "titles_assigned" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableTitlesAssigned(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetTitlesAssigned(*v)
	}
	return _u
}

// AddTitlesAssigned adds value to the "titles_assigned" field.
func (_u *PipelineRunUpdateOne) AddTitlesAssigned(v int) *PipelineRunUpdateOne {
	_u.mutation.AddTitlesAssigned(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *PipelineRunUpdateOne) SetLastHeartbeatAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *PipelineRunUpdateOne) ClearLastHeartbeatAt() *PipelineRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by IDs.
func (_u *PipelineRunUpdateOne) AddMergeEventIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddMergeEventIDs(ids...)
	return _u
}

// AddMergeEvents adds the "merge_events" edges to the MergeEvent entity.
func (_u *PipelineRunUpdateOne) AddMergeEvents(v ...*MergeEvent) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMergeEventIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearMergeEvents clears all "merge_events" edges to the MergeEvent entity.
func (_u *PipelineRunUpdateOne) ClearMergeEvents() *PipelineRunUpdateOne {
	_u.mutation.ClearMergeEvents()
	return _u
}

// RemoveMergeEventIDs removes the "merge_events" edge to MergeEvent entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveMergeEventIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveMergeEventIDs(ids...)
	return _u
}

// RemoveMergeEvents removes "merge_events" edges to MergeEvent entities.
func (_u *PipelineRunUpdateOne) RemoveMergeEvents(v ...*MergeEvent) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMergeEventIDs(ids...)
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := pipelinerun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorCategory(); ok {
		if err := pipelinerun.ErrorCategoryValidator(v); err != nil {
			return &ValidationError{Name: "error_category", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.error_category": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(pipelinerun.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(pipelinerun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(pipelinerun.FieldErrorCategory, field.TypeEnum, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(pipelinerun.FieldErrorCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TitlesSelected(); ok {
		_spec.SetField(pipelinerun.FieldTitlesSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTitlesSelected(); ok {
		_spec.AddField(pipelinerun.FieldTitlesSelected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShardsTotal(); ok {
		_spec.SetField(pipelinerun.FieldShardsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShardsTotal(); ok {
		_spec.AddField(pipelinerun.FieldShardsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShardsFailed(); ok {
		_spec.SetField(pipelinerun.FieldShardsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedShardsFailed(); ok {
		_spec.AddField(pipelinerun.FieldShardsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncidentsMapped(); ok {
		_spec.SetField(pipelinerun.FieldIncidentsMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncidentsMapped(); ok {
		_spec.AddField(pipelinerun.FieldIncidentsMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrphansMapped(); ok {
		_spec.SetField(pipelinerun.FieldOrphansMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrphansMapped(); ok {
		_spec.AddField(pipelinerun.FieldOrphansMapped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CandidatesReduced(); ok {
		_spec.SetField(pipelinerun.FieldCandidatesReduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCandidatesReduced(); ok {
		_spec.AddField(pipelinerun.FieldCandidatesReduced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReduceDrops(); ok {
		_spec.SetField(pipelinerun.FieldReduceDrops, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReduceDrops(); ok {
		_spec.AddField(pipelinerun.FieldReduceDrops, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EfsCreated(); ok {
		_spec.SetField(pipelinerun.FieldEfsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEfsCreated(); ok {
		_spec.AddField(pipelinerun.FieldEfsCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EfsUpdated(); ok {
		_spec.SetField(pipelinerun.FieldEfsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEfsUpdated(); ok {
		_spec.AddField(pipelinerun.FieldEfsUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TitlesAssigned(); ok {
		_spec.SetField(pipelinerun.FieldTitlesAssigned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTitlesAssigned(); ok {
		_spec.AddField(pipelinerun.FieldTitlesAssigned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(pipelinerun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.MergeEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.MergeEventsTable,
			Columns: []string{pipelinerun.MergeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMergeEventsIDs(); len(nodes) > 0 && !_u.mutation.MergeEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.MergeEventsTable,
			Columns: []string{pipelinerun.MergeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergeEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.MergeEventsTable,
			Columns: []string{pipelinerun.MergeEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
