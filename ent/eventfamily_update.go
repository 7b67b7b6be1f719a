// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
	"github.com/design4music/sni-platform-sub000/ent/title"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// EventFamilyUpdate is the builder for updating EventFamily entities.
type EventFamilyUpdate struct {
	config
	hooks    []Hook
	mutation *EventFamilyMutation
}

// Where appends a list predicates to the EventFamilyUpdate builder.
func (_u *EventFamilyUpdate) Where(ps ...predicate.EventFamily) *EventFamilyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEfKey sets the "ef_key" field.
func (_u *EventFamilyUpdate) SetEfKey(v string) *EventFamilyUpdate {
	_u.mutation.SetEfKey(v)
	return _u
}

// SetNillableEfKey sets the "ef_key" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableEfKey(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetEfKey(*v)
	}
	return _u
}

// SetTheater sets the "theater" field.
func (_u *EventFamilyUpdate) SetTheater(v string) *EventFamilyUpdate {
	_u.mutation.SetTheater(v)
	return _u
}

// SetNillableTheater sets the "theater" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableTheater(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetTheater(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventFamilyUpdate) SetEventType(v string) *EventFamilyUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableEventType(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *EventFamilyUpdate) SetHeadline(v string) *EventFamilyUpdate {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableHeadline(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventFamilyUpdate) SetSummary(v string) *EventFamilyUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableSummary(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetActors sets the "actors" field.
func (_u *EventFamilyUpdate) SetActors(v []string) *EventFamilyUpdate {
	_u.mutation.SetActors(v)
	return _u
}

// AppendActors appends value to the "actors" field.
func (_u *EventFamilyUpdate) AppendActors(v []string) *EventFamilyUpdate {
	_u.mutation.AppendActors(v)
	return _u
}

// ClearActors clears the value of the "actors" field.
func (_u *EventFamilyUpdate) ClearActors() *EventFamilyUpdate {
	_u.mutation.ClearActors()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EventFamilyUpdate) SetTags(v []string) *EventFamilyUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EventFamilyUpdate) AppendTags(v []string) *EventFamilyUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EventFamilyUpdate) ClearTags() *EventFamilyUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *EventFamilyUpdate) SetTimeline(v []models.TimelineEntry) *EventFamilyUpdate {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *EventFamilyUpdate) AppendTimeline(v []models.TimelineEntry) *EventFamilyUpdate {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *EventFamilyUpdate) ClearTimeline() *EventFamilyUpdate {
	_u.mutation.ClearTimeline()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventFamilyUpdate) SetConfidence(v float64) *EventFamilyUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableConfidence(v *float64) *EventFamilyUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventFamilyUpdate) AddConfidence(v float64) *EventFamilyUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTitleCount sets the "title_count" field.
func (_u *EventFamilyUpdate) SetTitleCount(v int) *EventFamilyUpdate {
	_u.mutation.ResetTitleCount()
	_u.mutation.SetTitleCount(v)
	return _u
}

// SetNillableTitleCount sets the "title_count" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableTitleCount(v *int) *EventFamilyUpdate {
	if v != nil {
		_u.SetTitleCount(*v)
	}
	return _u
}

// AddTitleCount adds value to the "title_count" field.
func (_u *EventFamilyUpdate) AddTitleCount(v int) *EventFamilyUpdate {
	_u.mutation.AddTitleCount(v)
	return _u
}

// SetSingletonOrigin sets the "singleton_origin" field.
func (_u *EventFamilyUpdate) SetSingletonOrigin(v bool) *EventFamilyUpdate {
	_u.mutation.SetSingletonOrigin(v)
	return _u
}

// SetNillableSingletonOrigin sets the "singleton_origin" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableSingletonOrigin(v *bool) *EventFamilyUpdate {
	if v != nil {
		_u.SetSingletonOrigin(*v)
	}
	return _u
}

// SetLineage sets the "lineage" field.
func (_u *EventFamilyUpdate) SetLineage(v []models.LineageEntry) *EventFamilyUpdate {
	_u.mutation.SetLineage(v)
	return _u
}

// AppendLineage appends value to the "lineage" field.
func (_u *EventFamilyUpdate) AppendLineage(v []models.LineageEntry) *EventFamilyUpdate {
	_u.mutation.AppendLineage(v)
	return _u
}

// ClearLineage clears the value of the "lineage" field.
func (_u *EventFamilyUpdate) ClearLineage() *EventFamilyUpdate {
	_u.mutation.ClearLineage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventFamilyUpdate) SetStatus(v eventfamily.Status) *EventFamilyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableStatus(v *eventfamily.Status) *EventFamilyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_u *EventFamilyUpdate) SetMergedIntoID(v string) *EventFamilyUpdate {
	_u.mutation.SetMergedIntoID(v)
	return _u
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableMergedIntoID(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetMergedIntoID(*v)
	}
	return _u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (_u *EventFamilyUpdate) ClearMergedIntoID() *EventFamilyUpdate {
	_u.mutation.ClearMergedIntoID()
	return _u
}

// SetParentEfID sets the "parent_ef_id" field.
func (_u *EventFamilyUpdate) SetParentEfID(v string) *EventFamilyUpdate {
	_u.mutation.SetParentEfID(v)
	return _u
}

// SetNillableParentEfID sets the "parent_ef_id" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableParentEfID(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetParentEfID(*v)
	}
	return _u
}

// ClearParentEfID clears the value of the "parent_ef_id" field.
func (_u *EventFamilyUpdate) ClearParentEfID() *EventFamilyUpdate {
	_u.mutation.ClearParentEfID()
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *EventFamilyUpdate) SetFirstSeenAt(v time.Time) *EventFamilyUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableFirstSeenAt(v *time.Time) *EventFamilyUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *EventFamilyUpdate) SetLastUpdatedAt(v time.Time) *EventFamilyUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetUpdatedByRunID sets the "updated_by_run_id" field.
func (_u *EventFamilyUpdate) SetUpdatedByRunID(v string) *EventFamilyUpdate {
	_u.mutation.SetUpdatedByRunID(v)
	return _u
}

// SetNillableUpdatedByRunID sets the "updated_by_run_id" field if the given value is not nil.
func (_u *EventFamilyUpdate) SetNillableUpdatedByRunID(v *string) *EventFamilyUpdate {
	if v != nil {
		_u.SetUpdatedByRunID(*v)
	}
	return _u
}

// AddTitleIDs adds the "titles" edge to the Title entity by IDs.
func (_u *EventFamilyUpdate) AddTitleIDs(ids ...string) *EventFamilyUpdate {
	_u.mutation.AddTitleIDs(ids...)
	return _u
}

// AddTitles adds the "titles" edges to the Title entity.
func (_u *EventFamilyUpdate) AddTitles(v ...*Title) *EventFamilyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTitleIDs(ids...)
}

// SetMergedInto sets the "merged_into" edge to the EventFamily entity.
func (_u *EventFamilyUpdate) SetMergedInto(v *EventFamily) *EventFamilyUpdate {
	return _u.SetMergedIntoID(v.ID)
}

// AddAbsorbedIDs adds the "absorbed" edge to the EventFamily entity by IDs.
func (_u *EventFamilyUpdate) AddAbsorbedIDs(ids ...string) *EventFamilyUpdate {
	_u.mutation.AddAbsorbedIDs(ids...)
	return _u
}

// AddAbsorbed adds the "absorbed" edges to the EventFamily entity.
func (_u *EventFamilyUpdate) AddAbsorbed(v ...*EventFamily) *EventFamilyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAbsorbedIDs(ids...)
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by IDs.
func (_u *EventFamilyUpdate) AddMergeEventIDs(ids ...string) *EventFamilyUpdate {
	_u.mutation.AddMergeEventIDs(ids...)
	return _u
}

// AddMergeEvents adds the "merge_events" edges to the MergeEvent entity.
func (_u *EventFamilyUpdate) AddMergeEvents(v ...*MergeEvent) *EventFamilyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMergeEventIDs(ids...)
}

// Mutation returns the EventFamilyMutation object of the builder.
func (_u *EventFamilyUpdate) Mutation() *EventFamilyMutation {
	return _u.mutation
}

// ClearTitles clears all "titles" edges to the Title entity.
func (_u *EventFamilyUpdate) ClearTitles() *EventFamilyUpdate {
	_u.mutation.ClearTitles()
	return _u
}

// RemoveTitleIDs removes the "titles" edge to Title entities by IDs.
func (_u *EventFamilyUpdate) RemoveTitleIDs(ids ...string) *EventFamilyUpdate {
	_u.mutation.RemoveTitleIDs(ids...)
	return _u
}

// RemoveTitles removes "titles" edges to Title entities.
func (_u *EventFamilyUpdate) RemoveTitles(v ...*Title) *EventFamilyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTitleIDs(ids...)
}

// ClearMergedInto clears the "merged_into" edge to the EventFamily entity.
func (_u *EventFamilyUpdate) ClearMergedInto() *EventFamilyUpdate {
	_u.mutation.ClearMergedInto()
	return _u
}

// ClearAbsorbed clears all "absorbed" edges to the EventFamily entity.
func (_u *EventFamilyUpdate) ClearAbsorbed() *EventFamilyUpdate {
	_u.mutation.ClearAbsorbed()
	return _u
}

// RemoveAbsorbedIDs removes the "absorbed" edge to EventFamily entities by IDs.
func (_u *EventFamilyUpdate) RemoveAbsorbedIDs(ids ...string) *EventFamilyUpdate {
	_u.mutation.RemoveAbsorbedIDs(ids...)
	return _u
}

// RemoveAbsorbed removes "absorbed" edges to EventFamily entities.
func (_u *EventFamilyUpdate) RemoveAbsorbed(v ...*EventFamily) *EventFamilyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAbsorbedIDs(ids...)
}

// ClearMergeEvents clears all "merge_events" edges to the MergeEvent entity.
func (_u *EventFamilyUpdate) ClearMergeEvents() *EventFamilyUpdate {
	_u.mutation.ClearMergeEvents()
	return _u
}

// RemoveMergeEventIDs removes the "merge_events" edge to MergeEvent entities by IDs.
func (_u *EventFamilyUpdate) RemoveMergeEventIDs(ids ...string) *EventFamilyUpdate {
	_u.mutation.RemoveMergeEventIDs(ids...)
	return _u
}

// RemoveMergeEvents removes "merge_events" edges to MergeEvent entities.
func (_u *EventFamilyUpdate) RemoveMergeEvents(v ...*MergeEvent) *EventFamilyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMergeEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventFamilyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventFamilyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventFamilyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventFamilyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventFamilyUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := eventfamily.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventFamilyUpdate) check() error {
	if v, ok := _u.mutation.TitleCount(); ok {
		if err := eventfamily.TitleCountValidator(v); err != nil {
			return &ValidationError{Name: "title_count", err: fmt.Errorf(`ent: validator failed for field "EventFamily.title_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := eventfamily.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventFamily.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventFamilyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventfamily.Table, eventfamily.Columns, sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EfKey(); ok {
		_spec.SetField(eventfamily.FieldEfKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theater(); ok {
		_spec.SetField(eventfamily.FieldTheater, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventfamily.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(eventfamily.FieldHeadline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(eventfamily.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Actors(); ok {
		_spec.SetField(eventfamily.FieldActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldActors, value)
		})
	}
	if _u.mutation.ActorsCleared() {
		_spec.ClearField(eventfamily.FieldActors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(eventfamily.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(eventfamily.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(eventfamily.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(eventfamily.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(eventfamily.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(eventfamily.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TitleCount(); ok {
		_spec.SetField(eventfamily.FieldTitleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTitleCount(); ok {
		_spec.AddField(eventfamily.FieldTitleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SingletonOrigin(); ok {
		_spec.SetField(eventfamily.FieldSingletonOrigin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Lineage(); ok {
		_spec.SetField(eventfamily.FieldLineage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldLineage, value)
		})
	}
	if _u.mutation.LineageCleared() {
		_spec.ClearField(eventfamily.FieldLineage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventfamily.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentEfID(); ok {
		_spec.SetField(eventfamily.FieldParentEfID, field.TypeString, value)
	}
	if _u.mutation.ParentEfIDCleared() {
		_spec.ClearField(eventfamily.FieldParentEfID, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(eventfamily.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(eventfamily.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedByRunID(); ok {
		_spec.SetField(eventfamily.FieldUpdatedByRunID, field.TypeString, value)
	}
	if _u.mutation.TitlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTitlesIDs(); len(nodes) > 0 && !_u.mutation.TitlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TitlesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MergedIntoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergedIntoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AbsorbedCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAbsorbedIDs(); len(nodes) > 0 && !_u.mutation.AbsorbedCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AbsorbedIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MergeEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMergeEventsIDs(); len(nodes) > 0 && !_u.mutation.MergeEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergeEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventfamily.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventFamilyUpdateOne is the builder for updating a single EventFamily entity.
type EventFamilyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventFamilyMutation
}

// SetEfKey sets the "ef_key" field.
func (_u *EventFamilyUpdateOne) SetEfKey(v string) *EventFamilyUpdateOne {
	_u.mutation.SetEfKey(v)
	return _u
}

// SetNillableEfKey sets the "ef_key" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableEfKey(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetEfKey(*v)
	}
	return _u
}

// SetTheater sets the "theater" field.
func (_u *EventFamilyUpdateOne) SetTheater(v string) *EventFamilyUpdateOne {
	_u.mutation.SetTheater(v)
	return _u
}

// SetNillableTheater sets the "theater" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableTheater(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetTheater(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventFamilyUpdateOne) SetEventType(v string) *EventFamilyUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableEventType(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *EventFamilyUpdateOne) SetHeadline(v string) *EventFamilyUpdateOne {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableHeadline(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventFamilyUpdateOne) SetSummary(v string) *EventFamilyUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableSummary(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetActors sets the "actors" field.
func (_u *EventFamilyUpdateOne) SetActors(v []string) *EventFamilyUpdateOne {
	_u.mutation.SetActors(v)
	return _u
}

// AppendActors appends value to the "actors" field.
func (_u *EventFamilyUpdateOne) AppendActors(v []string) *EventFamilyUpdateOne {
	_u.mutation.AppendActors(v)
	return _u
}

// ClearActors clears the value of the "actors" field.
func (_u *EventFamilyUpdateOne) ClearActors() *EventFamilyUpdateOne {
	_u.mutation.ClearActors()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EventFamilyUpdateOne) SetTags(v []string) *EventFamilyUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EventFamilyUpdateOne) AppendTags(v []string) *EventFamilyUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EventFamilyUpdateOne) ClearTags() *EventFamilyUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *EventFamilyUpdateOne) SetTimeline(v []models.TimelineEntry) *EventFamilyUpdateOne {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *EventFamilyUpdateOne) AppendTimeline(v []models.TimelineEntry) *EventFamilyUpdateOne {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *EventFamilyUpdateOne) ClearTimeline() *EventFamilyUpdateOne {
	_u.mutation.ClearTimeline()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EventFamilyUpdateOne) SetConfidence(v float64) *EventFamilyUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableConfidence(v *float64) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EventFamilyUpdateOne) AddConfidence(v float64) *EventFamilyUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTitleCount sets the "title_count" field.
func (_u *EventFamilyUpdateOne) SetTitleCount(v int) *EventFamilyUpdateOne {
	_u.mutation.ResetTitleCount()
	_u.mutation.SetTitleCount(v)
	return _u
}

// SetNillableTitleCount sets the "title_count" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableTitleCount(v *int) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetTitleCount(*v)
	}
	return _u
}

// AddTitleCount adds value to the "title_count" field.
func (_u *EventFamilyUpdateOne) AddTitleCount(v int) *EventFamilyUpdateOne {
	_u.mutation.AddTitleCount(v)
	return _u
}

// SetSingletonOrigin sets the "singleton_origin" field.
func (_u *EventFamilyUpdateOne) SetSingletonOrigin(v bool) *EventFamilyUpdateOne {
	_u.mutation.SetSingletonOrigin(v)
	return _u
}

// SetNillableSingletonOrigin sets the "singleton_origin" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableSingletonOrigin(v *bool) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetSingletonOrigin(*v)
	}
	return _u
}

// SetLineage sets the "lineage" field.
func (_u *EventFamilyUpdateOne) SetLineage(v []models.LineageEntry) *EventFamilyUpdateOne {
	_u.mutation.SetLineage(v)
	return _u
}

// AppendLineage appends value to the "lineage" field.
func (_u *EventFamilyUpdateOne) AppendLineage(v []models.LineageEntry) *EventFamilyUpdateOne {
	_u.mutation.AppendLineage(v)
	return _u
}

// ClearLineage clears the value of the "lineage" field.
func (_u *EventFamilyUpdateOne) ClearLineage() *EventFamilyUpdateOne {
	_u.mutation.ClearLineage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventFamilyUpdateOne) SetStatus(v eventfamily.Status) *EventFamilyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableStatus(v *eventfamily.Status) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMergedIntoID sets the "merged_into_id" field.
func (_u *EventFamilyUpdateOne) SetMergedIntoID(v string) *EventFamilyUpdateOne {
	_u.mutation.SetMergedIntoID(v)
	return _u
}

// SetNillableMergedIntoID sets the "merged_into_id" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableMergedIntoID(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetMergedIntoID(*v)
	}
	return _u
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (_u *EventFamilyUpdateOne) ClearMergedIntoID() *EventFamilyUpdateOne {
	_u.mutation.ClearMergedIntoID()
	return _u
}

// SetParentEfID sets the "parent_ef_id" field.
func (_u *EventFamilyUpdateOne) SetParentEfID(v string) *EventFamilyUpdateOne {
	_u.mutation.SetParentEfID(v)
	return _u
}

// SetNillableParentEfID sets the "parent_ef_id" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableParentEfID(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetParentEfID(*v)
	}
	return _u
}

// ClearParentEfID clears the value of the "parent_ef_id" field.
func (_u *EventFamilyUpdateOne) ClearParentEfID() *EventFamilyUpdateOne {
	_u.mutation.ClearParentEfID()
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *EventFamilyUpdateOne) SetFirstSeenAt(v time.Time) *EventFamilyUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableFirstSeenAt(v *time.Time) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *EventFamilyUpdateOne) SetLastUpdatedAt(v time.Time) *EventFamilyUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetUpdatedByRunID sets the "updated_by_run_id" field.
func (_u *EventFamilyUpdateOne) SetUpdatedByRunID(v string) *EventFamilyUpdateOne {
	_u.mutation.SetUpdatedByRunID(v)
	return _u
}

// SetNillableUpdatedByRunID sets the "updated_by_run_id" field if the given value is not nil.
func (_u *EventFamilyUpdateOne) SetNillableUpdatedByRunID(v *string) *EventFamilyUpdateOne {
	if v != nil {
		_u.SetUpdatedByRunID(*v)
	}
	return _u
}

// AddTitleIDs adds the "titles" edge to the Title entity by IDs.
func (_u *EventFamilyUpdateOne) AddTitleIDs(ids ...string) *EventFamilyUpdateOne {
	_u.mutation.AddTitleIDs(ids...)
	return _u
}

// AddTitles adds the "titles" edges to the Title entity.
func (_u *EventFamilyUpdateOne) AddTitles(v ...*Title) *EventFamilyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTitleIDs(ids...)
}

// SetMergedInto sets the "merged_into" edge to the EventFamily entity.
func (_u *EventFamilyUpdateOne) SetMergedInto(v *EventFamily) *EventFamilyUpdateOne {
	return _u.SetMergedIntoID(v.ID)
}

// AddAbsorbedIDs adds the "absorbed" edge to the EventFamily entity by IDs.
func (_u *EventFamilyUpdateOne) AddAbsorbedIDs(ids ...string) *EventFamilyUpdateOne {
	_u.mutation.AddAbsorbedIDs(ids...)
	return _u
}

// AddAbsorbed adds the "absorbed" edges to the EventFamily entity.
func (_u *EventFamilyUpdateOne) AddAbsorbed(v ...*EventFamily) *EventFamilyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAbsorbedIDs(ids...)
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by IDs.
func (_u *EventFamilyUpdateOne) AddMergeEventIDs(ids ...string) *EventFamilyUpdateOne {
	_u.mutation.AddMergeEventIDs(ids...)
	return _u
}

// AddMergeEvents adds the "merge_events" edges to the MergeEvent entity.
func (_u *EventFamilyUpdateOne) AddMergeEvents(v ...*MergeEvent) *EventFamilyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMergeEventIDs(ids...)
}

// Mutation returns the EventFamilyMutation object of the builder.
func (_u *EventFamilyUpdateOne) Mutation() *EventFamilyMutation {
	return _u.mutation
}

// ClearTitles clears all "titles" edges to the Title entity.
func (_u *EventFamilyUpdateOne) ClearTitles() *EventFamilyUpdateOne {
	_u.mutation.ClearTitles()
	return _u
}

// RemoveTitleIDs removes the "titles" edge to Title entities by IDs.
func (_u *EventFamilyUpdateOne) RemoveTitleIDs(ids ...string) *EventFamilyUpdateOne {
	_u.mutation.RemoveTitleIDs(ids...)
	return _u
}

// RemoveTitles removes "titles" edges to Title entities.
func (_u *EventFamilyUpdateOne) RemoveTitles(v ...*Title) *EventFamilyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTitleIDs(ids...)
}

// ClearMergedInto clears the "merged_into" edge to the EventFamily entity.
func (_u *EventFamilyUpdateOne) ClearMergedInto() *EventFamilyUpdateOne {
	_u.mutation.ClearMergedInto()
	return _u
}

// ClearAbsorbed clears all "absorbed" edges to the EventFamily entity.
func (_u *EventFamilyUpdateOne) ClearAbsorbed() *EventFamilyUpdateOne {
	_u.mutation.ClearAbsorbed()
	return _u
}

// RemoveAbsorbedIDs removes the "absorbed" edge to EventFamily entities by IDs.
func (_u *EventFamilyUpdateOne) RemoveAbsorbedIDs(ids ...string) *EventFamilyUpdateOne {
	_u.mutation.RemoveAbsorbedIDs(ids...)
	return _u
}

// RemoveAbsorbed removes "absorbed" edges to EventFamily entities.
func (_u *EventFamilyUpdateOne) RemoveAbsorbed(v ...*EventFamily) *EventFamilyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAbsorbedIDs(ids...)
}

// ClearMergeEvents clears all "merge_events" edges to the MergeEvent entity.
func (_u *EventFamilyUpdateOne) ClearMergeEvents() *EventFamilyUpdateOne {
	_u.mutation.ClearMergeEvents()
	return _u
}

// RemoveMergeEventIDs removes the "merge_events" edge to MergeEvent entities by IDs.
func (_u *EventFamilyUpdateOne) RemoveMergeEventIDs(ids ...string) *EventFamilyUpdateOne {
	_u.mutation.RemoveMergeEventIDs(ids...)
	return _u
}

// RemoveMergeEvents removes "merge_events" edges to MergeEvent entities.
func (_u *EventFamilyUpdateOne) RemoveMergeEvents(v ...*MergeEvent) *EventFamilyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMergeEventIDs(ids...)
}

// Where appends a list predicates to the EventFamilyUpdate builder.
func (_u *EventFamilyUpdateOne) Where(ps ...predicate.EventFamily) *EventFamilyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventFamilyUpdateOne) Select(field string, fields ...string) *EventFamilyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventFamily entity.
func (_u *EventFamilyUpdateOne) Save(ctx context.Context) (*EventFamily, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventFamilyUpdateOne) SaveX(ctx context.Context) *EventFamily {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventFamilyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventFamilyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventFamilyUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := eventfamily.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventFamilyUpdateOne) check() error {
	if v, ok := _u.mutation.TitleCount(); ok {
		if err := eventfamily.TitleCountValidator(v); err != nil {
			return &ValidationError{Name: "title_count", err: fmt.Errorf(`ent: validator failed for field "EventFamily.title_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := eventfamily.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventFamily.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventFamilyUpdateOne) sqlSave(ctx context.Context) (_node *EventFamily, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventfamily.Table, eventfamily.Columns, sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventFamily.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventfamily.FieldID)
		for _, f := range fields {
			if !eventfamily.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventfamily.FieldID {
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
	if value, ok := _u.mutation.EfKey(); ok {
		_spec.SetField(eventfamily.FieldEfKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theater(); ok {
		_spec.SetField(eventfamily.FieldTheater, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventfamily.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(eventfamily.FieldHeadline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(eventfamily.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Actors(); ok {
		_spec.SetField(eventfamily.FieldActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldActors, value)
		})
	}
	if _u.mutation.ActorsCleared() {
		_spec.ClearField(eventfamily.FieldActors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(eventfamily.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(eventfamily.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(eventfamily.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(eventfamily.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(eventfamily.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(eventfamily.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TitleCount(); ok {
		_spec.SetField(eventfamily.FieldTitleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTitleCount(); ok {
		_spec.AddField(eventfamily.FieldTitleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SingletonOrigin(); ok {
		_spec.SetField(eventfamily.FieldSingletonOrigin, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Lineage(); ok {
		_spec.SetField(eventfamily.FieldLineage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineage(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventfamily.FieldLineage, value)
		})
	}
	if _u.mutation.LineageCleared() {
		_spec.ClearField(eventfamily.FieldLineage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventfamily.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentEfID(); ok {
		_spec.SetField(eventfamily.FieldParentEfID, field.TypeString, value)
	}
	if _u.mutation.ParentEfIDCleared() {
		_spec.ClearField(eventfamily.FieldParentEfID, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(eventfamily.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(eventfamily.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedByRunID(); ok {
		_spec.SetField(eventfamily.FieldUpdatedByRunID, field.TypeString, value)
	}
	if _u.mutation.TitlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTitlesIDs(); len(nodes) > 0 && !_u.mutation.TitlesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TitlesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MergedIntoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergedIntoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AbsorbedCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAbsorbedIDs(); len(nodes) > 0 && !_u.mutation.AbsorbedCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AbsorbedIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MergeEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMergeEventsIDs(); len(nodes) > 0 && !_u.mutation.MergeEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MergeEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EventFamily{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventfamily.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
