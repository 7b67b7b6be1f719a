// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/title"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// EventFamilyCreate is the builder for creating a EventFamily entity.
type EventFamilyCreate struct {
	config
	mutation *EventFamilyMutation
	hooks    []Hook
}

// SetEfKey sets the "ef_key" field.
func (_c *EventFamilyCreate) SetEfKey(v string) *EventFamilyCreate {
	_c.mutation.SetEfKey(v)
	return _c
}

// SetTheater sets the "theater" field.
func (_c *EventFamilyCreate) SetTheater(v string) *EventFamilyCreate {
	_c.mutation.SetTheater(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventFamilyCreate) SetEventType(v string) *EventFamilyCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetHeadline sets the "headline" field.
func (_c *EventFamilyCreate) SetHeadline(v string) *EventFamilyCreate {
	_c.mutation.SetHeadline(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EventFamilyCreate) SetSummary(v string) *EventFamilyCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetActors sets the "actors" field.
func (_c *EventFamilyCreate) SetActors(v []string) *EventFamilyCreate {
	_c.mutation.SetActors(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *EventFamilyCreate) SetTags(v []string) *EventFamilyCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetTimeline sets the "timeline" field.
func (_c *EventFamilyCreate) SetTimeline(v []models.TimelineEntry) *EventFamilyCreate {
	_c.mutation.SetTimeline(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EventFamilyCreate) SetConfidence(v float64) *EventFamilyCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetTitleCount sets the "title_count" field.
func (_c *EventFamilyCreate) SetTitleCount(v int) *EventFamilyCreate {
	_c.mutation.SetTitleCount(v)
	return _c
}

// SetSingletonOrigin sets the "singleton_origin" field.
func (_c *EventFamilyCreate) SetSingletonOrigin(v bool) *EventFamilyCreate {
	_c.mutation.SetSingletonOrigin(v)
	return _c
}

// SetNillableSingletonOrigin sets the "singleton_origin" field if the given value is not nil.
func (_c *EventFamilyCreate) SetNillableSingletonOrigin(v *bool) *EventFamilyCreate {
	if v != nil {
		_c.SetSingletonOrigin(*v)
	}
	return _c
}

// SetLineage sets the "lineage" field.
func (_c *EventFamilyCreate) SetLineage(v []models.LineageEntry) *EventFamilyCreate {
	_c.mutation.SetLineage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventFamilyCreate) SetStatus(v eventfamily.Status) *EventFamilyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventFamilyCreate) SetNillableStatus(v *eventfamily.Status) *EventFamilyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_c *EventFamilyCreate) SetMergedIntoID(v string) *EventFamilyCreate {
	_c.mutation.SetMergedIntoID(v)
	return _c
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_c *EventFamilyCreate) SetNillableMergedIntoID(v *string) *EventFamilyCreate {
	if v != nil {
		_c.SetMergedIntoID(*v)
	}
	return _c
}

// SetParentEfID sets the "parent_ef_id" field.
func (_c *EventFamilyCreate) SetParentEfID(v string) *EventFamilyCreate {
	_c.mutation.SetParentEfID(v)
	return _c
}

// SetNillableParentEfID sets the "parent_ef_id" field if the given value is not nil.
func (_c *EventFamilyCreate) SetNillableParentEfID(v *string) *EventFamilyCreate {
	if v != nil {
		_c.SetParentEfID(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *EventFamilyCreate) SetFirstSeenAt(v time.Time) *EventFamilyCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *EventFamilyCreate) SetLastUpdatedAt(v time.Time) *EventFamilyCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_c *EventFamilyCreate) SetNillableLastUpdatedAt(v *time.Time) *EventFamilyCreate {
	if v != nil {
		_c.SetLastUpdatedAt(*v)
	}
	return _c
}

// SetCreatedByRunID sets the "created_by_run_id" field.
func (_c *EventFamilyCreate) SetCreatedByRunID(v string) *EventFamilyCreate {
	_c.mutation.SetCreatedByRunID(v)
	return _c
}

// SetUpdatedByRunID sets the "updated_by_run_id" field.
func (_c *EventFamilyCreate) SetUpdatedByRunID(v string) *EventFamilyCreate {
	_c.mutation.SetUpdatedByRunID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventFamilyCreate) SetCreatedAt(v time.Time) *EventFamilyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventFamilyCreate) SetNillableCreatedAt(v *time.Time) *EventFamilyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventFamilyCreate) SetID(v string) *EventFamilyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTitleIDs adds the "titles" edge to the Title entity by IDs.
func (_c *EventFamilyCreate) AddTitleIDs(ids ...string) *EventFamilyCreate {
	_c.mutation.AddTitleIDs(ids...)
	return _c
}

// AddTitles adds the "titles" edges to the Title entity.
func (_c *EventFamilyCreate) AddTitles(v ...*Title) *EventFamilyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTitleIDs(ids...)
}

// SetMergedInto sets the "merged_into" edge to the EventFamily entity.
func (_c *EventFamilyCreate) SetMergedInto(v *EventFamily) *EventFamilyCreate {
	return _c.SetMergedIntoID(v.ID)
}

// AddAbsorbedIDs adds the "absorbed" edge to the EventFamily entity by IDs.
func (_c *EventFamilyCreate) AddAbsorbedIDs(ids ...string) *EventFamilyCreate {
	_c.mutation.AddAbsorbedIDs(ids...)
	return _c
}

// AddAbsorbed adds the "absorbed" edges to the EventFamily entity.
func (_c *EventFamilyCreate) AddAbsorbed(v ...*EventFamily) *EventFamilyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAbsorbedIDs(ids...)
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by IDs.
func (_c *EventFamilyCreate) AddMergeEventIDs(ids ...string) *EventFamilyCreate {
	_c.mutation.AddMergeEventIDs(ids...)
	return _c
}

// AddMergeEvents adds the "merge_events" edges to the MergeEvent entity.
func (_c *EventFamilyCreate) AddMergeEvents(v ...*MergeEvent) *EventFamilyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMergeEventIDs(ids...)
}

// Mutation returns the EventFamilyMutation object of the builder.
func (_c *EventFamilyCreate) Mutation() *EventFamilyMutation {
	return _c.mutation
}

// Save creates the EventFamily in the database.
func (_c *EventFamilyCreate) Save(ctx context.Context) (*EventFamily, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventFamilyCreate) SaveX(ctx context.Context) *EventFamily {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventFamilyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventFamilyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventFamilyCreate) defaults() {
	if _, ok := _c.mutation.SingletonOrigin(); !ok {
		v := eventfamily.DefaultSingletonOrigin
		_c.mutation.SetSingletonOrigin(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := eventfamily.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		v := eventfamily.DefaultLastUpdatedAt()
		_c.mutation.SetLastUpdatedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eventfamily.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventFamilyCreate) check() error {
	if _, ok := _c.mutation.EfKey(); !ok {
		return &ValidationError{Name: "ef_key", err: errors.New(`ent: missing required field "EventFamily.ef_key"`)}
	}
	if _, ok := _c.mutation.Theater(); !ok {
		return &ValidationError{Name: "theater", err: errors.New(`ent: missing required field "EventFamily.theater"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "EventFamily.event_type"`)}
	}
	if _, ok := _c.mutation.Headline(); !ok {
		return &ValidationError{Name: "headline", err: errors.New(`ent: missing required field "EventFamily.headline"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "EventFamily.summary"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EventFamily.confidence"`)}
	}
	if _, ok := _c.mutation.TitleCount(); !ok {
		return &ValidationError{Name: "title_count", err: errors.New(`ent: missing required field "EventFamily.title_count"`)}
	}
	if v, ok := _c.mutation.TitleCount(); ok {
		if err := eventfamily.TitleCountValidator(v); err != nil {
			return &ValidationError{Name: "title_count", err: fmt.Errorf(`ent: validator failed for field "EventFamily.title_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SingletonOrigin(); !ok {
		return &ValidationError{Name: "singleton_origin", err: errors.New(`ent: missing required field "EventFamily.singleton_origin"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EventFamily.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := eventfamily.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventFamily.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "EventFamily.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "EventFamily.last_updated_at"`)}
	}
	if _, ok := _c.mutation.CreatedByRunID(); !ok {
		return &ValidationError{Name: "created_by_run_id", err: errors.New(`ent: missing required field "EventFamily.created_by_run_id"`)}
	}
	if _, ok := _c.mutation.UpdatedByRunID(); !ok {
		return &ValidationError{Name: "updated_by_run_id", err: errors.New(`ent: missing required field "EventFamily.updated_by_run_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EventFamily.created_at"`)}
	}
	return nil
}

func (_c *EventFamilyCreate) sqlSave(ctx context.Context) (*EventFamily, error) {
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
			return nil, fmt.Errorf("unexpected EventFamily.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventFamilyCreate) createSpec() (*EventFamily, *sqlgraph.CreateSpec) {
	var (
		_node = &EventFamily{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventfamily.Table, sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EfKey(); ok {
		_spec.SetField(eventfamily.FieldEfKey, field.TypeString, value)
		_node.EfKey = value
	}
	if value, ok := _c.mutation.Theater(); ok {
		_spec.SetField(eventfamily.FieldTheater, field.TypeString, value)
		_node.Theater = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(eventfamily.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Headline(); ok {
		_spec.SetField(eventfamily.FieldHeadline, field.TypeString, value)
		_node.Headline = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(eventfamily.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Actors(); ok {
		_spec.SetField(eventfamily.FieldActors, field.TypeJSON, value)
		_node.Actors = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(eventfamily.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Timeline(); ok {
		_spec.SetField(eventfamily.FieldTimeline, field.TypeJSON, value)
		_node.Timeline = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(eventfamily.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TitleCount(); ok {
		_spec.SetField(eventfamily.FieldTitleCount, field.TypeInt, value)
		_node.TitleCount = value
	}
	if value, ok := _c.mutation.SingletonOrigin(); ok {
		_spec.SetField(eventfamily.FieldSingletonOrigin, field.TypeBool, value)
		_node.SingletonOrigin = value
	}
	if value, ok := _c.mutation.Lineage(); ok {
		_spec.SetField(eventfamily.FieldLineage, field.TypeJSON, value)
		_node.Lineage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(eventfamily.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParentEfID(); ok {
		_spec.SetField(eventfamily.FieldParentEfID, field.TypeString, value)
		_node.ParentEfID = &value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(eventfamily.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(eventfamily.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	if value, ok := _c.mutation.CreatedByRunID(); ok {
		_spec.SetField(eventfamily.FieldCreatedByRunID, field.TypeString, value)
		_node.CreatedByRunID = value
	}
	if value, ok := _c.mutation.UpdatedByRunID(); ok {
		_spec.SetField(eventfamily.FieldUpdatedByRunID, field.TypeString, value)
		_node.UpdatedByRunID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eventfamily.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TitlesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   eventfamily.TitlesTable,
			Columns: []string{eventfamily.TitlesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(title.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MergedIntoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventfamily.MergedIntoTable,
			Columns: []string{eventfamily.MergedIntoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MergedIntoID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AbsorbedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   eventfamily.AbsorbedTable,
			Columns: []string{eventfamily.AbsorbedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MergeEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   eventfamily.MergeEventsTable,
			Columns: []string{eventfamily.MergeEventsColumn},
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

// EventFamilyCreateBulk is the builder for creating many EventFamily entities in bulk.
type EventFamilyCreateBulk struct {
	config
	err      error
	builders []*EventFamilyCreate
}

// Save creates the EventFamily entities in the database.
func (_c *EventFamilyCreateBulk) Save(ctx context.Context) ([]*EventFamily, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventFamily, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventFamilyMutation)
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
func (_c *EventFamilyCreateBulk) SaveX(ctx context.Context) []*EventFamily {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventFamilyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventFamilyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
