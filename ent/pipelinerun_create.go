// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *PipelineRunCreate) SetTrigger(v pipelinerun.Trigger) *PipelineRunCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTrigger(v *pipelinerun.Trigger) *PipelineRunCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PipelineRunCreate) SetPodID(v string) *PipelineRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillablePodID(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetErrorCategory sets the "error_category" field.
func (_c *PipelineRunCreate) SetErrorCategory(v pipelinerun.ErrorCategory) *PipelineRunCreate {
	_c.mutation.SetErrorCategory(v)
	return _c
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorCategory(v *pipelinerun.ErrorCategory) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorCategory(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineRunCreate) SetErrorMessage(v string) *PipelineRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorMessage(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTitlesSelected sets the "titles_selected" field.
func (_c *PipelineRunCreate) SetTitlesSelected(v int) *PipelineRunCreate {
	_c.mutation.SetTitlesSelected(v)
	return _c
}

// SetNillableTitlesSelected sets the "titles_selected" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTitlesSelected(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetTitlesSelected(*v)
	}
	return _c
}

// SetShardsTotal sets the "shards_total" field.
func (_c *PipelineRunCreate) SetShardsTotal(v int) *PipelineRunCreate {
	_c.mutation.SetShardsTotal(v)
	return _c
}

// SetNillableShardsTotal sets the "shards_total" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableShardsTotal(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetShardsTotal(*v)
	}
	return _c
}

// SetShardsFailed sets the "shards_failed" field.
func (_c *PipelineRunCreate) SetShardsFailed(v int) *PipelineRunCreate {
	_c.mutation.SetShardsFailed(v)
	return _c
}

// SetNillableShardsFailed sets the "shards_failed" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableShardsFailed(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetShardsFailed(*v)
	}
	return _c
}

// SetIncidentsMapped sets the "incidents_mapped" field.
func (_c *PipelineRunCreate) SetIncidentsMapped(v int) *PipelineRunCreate {
	_c.mutation.SetIncidentsMapped(v)
	return _c
}

// SetNillableIncidentsMapped sets the "incidents_mapped" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableIncidentsMapped(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetIncidentsMapped(*v)
	}
	return _c
}

// SetOrphansMapped sets the "orphans_mapped" field.
func (_c *PipelineRunCreate) SetOrphansMapped(v int) *PipelineRunCreate {
	_c.mutation.SetOrphansMapped(v)
	return _c
}

// SetNillableOrphansMapped sets the "orphans_mapped" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableOrphansMapped(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetOrphansMapped(*v)
	}
	return _c
}

// SetCandidatesReduced sets the "candidates_reduced" field.
func (_c *PipelineRunCreate) SetCandidatesReduced(v int) *PipelineRunCreate {
	_c.mutation.SetCandidatesReduced(v)
	return _c
}

// SetNillableCandidatesReduced sets the "candidates_reduced" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCandidatesReduced(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetCandidatesReduced(*v)
	}
	return _c
}

// SetReduceDrops sets the "reduce_drops" field.
func (_c *PipelineRunCreate) SetReduceDrops(v int) *PipelineRunCreate {
	_c.mutation.SetReduceDrops(v)
	return _c
}

// SetNillableReduceDrops sets the "reduce_drops" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableReduceDrops(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetReduceDrops(*v)
	}
	return _c
}

// SetEfsCreated sets the "efs_created" field.
func (_c *PipelineRunCreate) SetEfsCreated(v int) *PipelineRunCreate {
	_c.mutation.SetEfsCreated(v)
	return _c
}

// SetNillableEfsCreated sets the "efs_created" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableEfsCreated(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetEfsCreated(*v)
	}
	return _c
}

// SetEfsUpdated sets the "efs_updated" field.
func (_c *PipelineRunCreate) SetEfsUpdated(v int) *PipelineRunCreate {
	_c.mutation.SetEfsUpdated(v)
	return _c
}

// SetNillableEfsUpdated sets the "efs_updated" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableEfsUpdated(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetEfsUpdated(*v)
	}
	return _c
}

// SetTitlesAssigned sets the "titles_assigned" field.
func (_c *PipelineRunCreate) SetTitlesAssigned(v int) *PipelineRunCreate {
	_c.mutation.SetTitlesAssigned(v)
	return _c
}

// SetNillableTitlesAssigned sets the "titles_assigned" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableTitlesAssigned(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetTitlesAssigned(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineRunCreate) SetCreatedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCreatedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *PipelineRunCreate) SetLastHeartbeatAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableLastHeartbeatAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by IDs.
func (_c *PipelineRunCreate) AddMergeEventIDs(ids ...string) *PipelineRunCreate {
	_c.mutation.AddMergeEventIDs(ids...)
	return _c
}

// AddMergeEvents adds the "merge_events" edges to the MergeEvent entity.
func (_c *PipelineRunCreate) AddMergeEvents(v ...*MergeEvent) *PipelineRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMergeEventIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		v := pipelinerun.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.TitlesSelected(); !ok {
		v := pipelinerun.DefaultTitlesSelected
		_c.mutation.SetTitlesSelected(v)
	}
	if _, ok := _c.mutation.ShardsTotal(); !ok {
		v := pipelinerun.DefaultShardsTotal
		_c.mutation.SetShardsTotal(v)
	}
	if _, ok := _c.mutation.ShardsFailed(); !ok {
		v := pipelinerun.DefaultShardsFailed
		_c.mutation.SetShardsFailed(v)
	}
	if _, ok := _c.mutation.IncidentsMapped(); !ok {
		v := pipelinerun.DefaultIncidentsMapped
		_c.mutation.SetIncidentsMapped(v)
	}
	if _, ok := _c.mutation.OrphansMapped(); !ok {
		v := pipelinerun.DefaultOrphansMapped
		_c.mutation.SetOrphansMapped(v)
	}
	if _, ok := _c.mutation.CandidatesReduced(); !ok {
		v := pipelinerun.DefaultCandidatesReduced
		_c.mutation.SetCandidatesReduced(v)
	}
	if _, ok := _c.mutation.ReduceDrops(); !ok {
		v := pipelinerun.DefaultReduceDrops
		_c.mutation.SetReduceDrops(v)
	}
	if _, ok := _c.mutation.EfsCreated(); !ok {
		v := pipelinerun.DefaultEfsCreated
		_c.mutation.SetEfsCreated(v)
	}
	if _, ok := _c.mutation.EfsUpdated(); !ok {
		v := pipelinerun.DefaultEfsUpdated
		_c.mutation.SetEfsUpdated(v)
	}
	if _, ok := _c.mutation.TitlesAssigned(); !ok {
		v := pipelinerun.DefaultTitlesAssigned
		_c.mutation.SetTitlesAssigned(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinerun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "PipelineRun.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := pipelinerun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.trigger": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ErrorCategory(); ok {
		if err := pipelinerun.ErrorCategoryValidator(v); err != nil {
			return &ValidationError{Name: "error_category", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.error_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TitlesSelected(); !ok {
		return &ValidationError{Name: "titles_selected", err: errors.New(`ent: missing required field "PipelineRun.titles_selected"`)}
	}
	if _, ok := _c.mutation.ShardsTotal(); !ok {
		return &ValidationError{Name: "shards_total", err: errors.New(`ent: missing required field "PipelineRun.shards_total"`)}
	}
	if _, ok := _c.mutation.ShardsFailed(); !ok {
		return &ValidationError{Name: "shards_failed", err: errors.New(`ent: missing required field "PipelineRun.shards_failed"`)}
	}
	if _, ok := _c.mutation.IncidentsMapped(); !ok {
		return &ValidationError{Name: "incidents_mapped", err: errors.New(`ent: missing required field "PipelineRun.incidents_mapped"`)}
	}
	if _, ok := _c.mutation.OrphansMapped(); !ok {
		return &ValidationError{Name: "orphans_mapped", err: errors.New(`ent: missing required field "PipelineRun.orphans_mapped"`)}
	}
	if _, ok := _c.mutation.CandidatesReduced(); !ok {
		return &ValidationError{Name: "candidates_reduced", err: errors.New(`ent: missing required field "PipelineRun.candidates_reduced"`)}
	}
	if _, ok := _c.mutation.ReduceDrops(); !ok {
		return &ValidationError{Name: "reduce_drops", err: errors.New(`ent: missing required field "PipelineRun.reduce_drops"`)}
	}
	if _, ok := _c.mutation.EfsCreated(); !ok {
		return &ValidationError{Name: "efs_created", err: errors.New(`ent: missing required field "PipelineRun.efs_created"`)}
	}
	if _, ok := _c.mutation.EfsUpdated(); !ok {
		return &ValidationError{Name: "efs_updated", err: errors.New(`ent: missing required field "PipelineRun.efs_updated"`)}
	}
	if _, ok := _c.mutation.TitlesAssigned(); !ok {
		return &ValidationError{Name: "titles_assigned", err: errors.New(`ent: missing required field "PipelineRun.titles_assigned"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineRun.created_at"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(pipelinerun.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(pipelinerun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.ErrorCategory(); ok {
		_spec.SetField(pipelinerun.FieldErrorCategory, field.TypeEnum, value)
		_node.ErrorCategory = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TitlesSelected(); ok {
		_spec.SetField(pipelinerun.FieldTitlesSelected, field.TypeInt, value)
		_node.TitlesSelected = value
	}
	if value, ok := _c.mutation.ShardsTotal(); ok {
		_spec.SetField(pipelinerun.FieldShardsTotal, field.TypeInt, value)
		_node.ShardsTotal = value
	}
	if value, ok := _c.mutation.ShardsFailed(); ok {
		_spec.SetField(pipelinerun.FieldShardsFailed, field.TypeInt, value)
		_node.ShardsFailed = value
	}
	if value, ok := _c.mutation.IncidentsMapped(); ok {
		_spec.SetField(pipelinerun.FieldIncidentsMapped, field.TypeInt, value)
		_node.IncidentsMapped = value
	}
	if value, ok := _c.mutation.OrphansMapped(); ok {
		_spec.SetField(pipelinerun.FieldOrphansMapped, field.TypeInt, value)
		_node.OrphansMapped = value
	}
	if value, ok := _c.mutation.CandidatesReduced(); ok {
		_spec.SetField(pipelinerun.FieldCandidatesReduced, field.TypeInt, value)
		_node.CandidatesReduced = value
	}
	if value, ok := _c.mutation.ReduceDrops(); ok {
		_spec.SetField(pipelinerun.FieldReduceDrops, field.TypeInt, value)
		_node.ReduceDrops = value
	}
	if value, ok := _c.mutation.EfsCreated(); ok {
		_spec.SetField(pipelinerun.FieldEfsCreated, field.TypeInt, value)
		_node.EfsCreated = value
	}
	if value, ok := _c.mutation.EfsUpdated(); ok {
		_spec.SetField(pipelinerun.FieldEfsUpdated, field.TypeInt, value)
		_node.EfsUpdated = value
	}
	if value, ok := _c.mutation.TitlesAssigned(); ok {
		_spec.SetField(pipelinerun.FieldTitlesAssigned, field.TypeInt, value)
		_node.TitlesAssigned = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinerun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.MergeEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
