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
	"github.com/design4music/sni-platform-sub000/ent/predicate"
	"github.com/design4music/sni-platform-sub000/ent/title"
)

// TitleUpdate is the builder for updating Title entities.
type TitleUpdate struct {
	config
	hooks    []Hook
	mutation *TitleMutation
}

// Where appends a list predicates to the TitleUpdate builder.
func (_u *TitleUpdate) Where(ps ...predicate.Title) *TitleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitleText sets the "title_text" field.
func (_u *TitleUpdate) SetTitleText(v string) *TitleUpdate {
	_u.mutation.SetTitleText(v)
	return _u
}

// SetNillableTitleText sets the "title_text" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableTitleText(v *string) *TitleUpdate {
	if v != nil {
		_u.SetTitleText(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *TitleUpdate) SetLang(v string) *TitleUpdate {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableLang(v *string) *TitleUpdate {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *TitleUpdate) SetSourceName(v string) *TitleUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableSourceName(v *string) *TitleUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *TitleUpdate) SetPublishedAt(v time.Time) *TitleUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *TitleUpdate) SetNillablePublishedAt(v *time.Time) *TitleUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *TitleUpdate) SetDetectedAt(v time.Time) *TitleUpdate {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableDetectedAt(v *time.Time) *TitleUpdate {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// SetGateKeep sets the "gate_keep" field.
func (_u *TitleUpdate) SetGateKeep(v bool) *TitleUpdate {
	_u.mutation.SetGateKeep(v)
	return _u
}

// SetNillableGateKeep sets the "gate_keep" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableGateKeep(v *bool) *TitleUpdate {
	if v != nil {
		_u.SetGateKeep(*v)
	}
	return _u
}

// SetGateScore sets the "gate_score" field.
func (_u *TitleUpdate) SetGateScore(v float64) *TitleUpdate {
	_u.mutation.ResetGateScore()
	_u.mutation.SetGateScore(v)
	return _u
}

// SetNillableGateScore sets the "gate_score" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableGateScore(v *float64) *TitleUpdate {
	if v != nil {
		_u.SetGateScore(*v)
	}
	return _u
}

// AddGateScore adds value to the "gate_score" field.
func (_u *TitleUpdate) AddGateScore(v float64) *TitleUpdate {
	_u.mutation.AddGateScore(v)
	return _u
}

// ClearGateScore clears the value of the "gate_score" field.
func (_u *TitleUpdate) ClearGateScore() *TitleUpdate {
	_u.mutation.ClearGateScore()
	return _u
}

// SetGateActors sets the "gate_actors" field.
func (_u *TitleUpdate) SetGateActors(v []string) *TitleUpdate {
	_u.mutation.SetGateActors(v)
	return _u
}

// AppendGateActors appends value to the "gate_actors" field.
func (_u *TitleUpdate) AppendGateActors(v []string) *TitleUpdate {
	_u.mutation.AppendGateActors(v)
	return _u
}

// ClearGateActors clears the value of the "gate_actors" field.
func (_u *TitleUpdate) ClearGateActors() *TitleUpdate {
	_u.mutation.ClearGateActors()
	return _u
}

// SetEventFamilyID sets the "event_family_id" field.
func (_u *TitleUpdate) SetEventFamilyID(v string) *TitleUpdate {
	_u.mutation.SetEventFamilyID(v)
	return _u
}

// SetNillableEventFamilyID sets the "event_family_id" field if the given value is not nil.
func (_u *TitleUpdate) SetNillableEventFamilyID(v *string) *TitleUpdate {
	if v != nil {
		_u.SetEventFamilyID(*v)
	}
	return _u
}

// ClearEventFamilyID clears the value of the "event_family_id" field.
func (_u *TitleUpdate) ClearEventFamilyID() *TitleUpdate {
	_u.mutation.ClearEventFamilyID()
	return _u
}

// SetEventFamily sets the "event_family" edge to the EventFamily entity.
func (_u *TitleUpdate) SetEventFamily(v *EventFamily) *TitleUpdate {
	return _u.SetEventFamilyID(v.ID)
}

// Mutation returns the TitleMutation object of the builder.
func (_u *TitleUpdate) Mutation() *TitleMutation {
	return _u.mutation
}

// ClearEventFamily clears the "event_family" edge to the EventFamily entity.
func (_u *TitleUpdate) ClearEventFamily() *TitleUpdate {
	_u.mutation.ClearEventFamily()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TitleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TitleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TitleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TitleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TitleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(title.Table, title.Columns, sqlgraph.NewFieldSpec(title.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TitleText(); ok {
		_spec.SetField(title.FieldTitleText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(title.FieldLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(title.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(title.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(title.FieldDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GateKeep(); ok {
		_spec.SetField(title.FieldGateKeep, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GateScore(); ok {
		_spec.SetField(title.FieldGateScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGateScore(); ok {
		_spec.AddField(title.FieldGateScore, field.TypeFloat64, value)
	}
	if _u.mutation.GateScoreCleared() {
		_spec.ClearField(title.FieldGateScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GateActors(); ok {
		_spec.SetField(title.FieldGateActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGateActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, title.FieldGateActors, value)
		})
	}
	if _u.mutation.GateActorsCleared() {
		_spec.ClearField(title.FieldGateActors, field.TypeJSON)
	}
	if _u.mutation.EventFamilyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   title.EventFamilyTable,
			Columns: []string{title.EventFamilyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventFamilyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   title.EventFamilyTable,
			Columns: []string{title.EventFamilyColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{title.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TitleUpdateOne is the builder for updating a single Title entity.
type TitleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TitleMutation
}

// SetTitleText sets the "title_text" field.
func (_u *TitleUpdateOne) SetTitleText(v string) *TitleUpdateOne {
	_u.mutation.SetTitleText(v)
	return _u
}

// SetNillableTitleText sets the "title_text" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableTitleText(v *string) *TitleUpdateOne {
	if v != nil {
		_u.SetTitleText(*v)
	}
	return _u
}

// SetLang sets the "lang" field.
func (_u *TitleUpdateOne) SetLang(v string) *TitleUpdateOne {
	_u.mutation.SetLang(v)
	return _u
}

// SetNillableLang sets the "lang" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableLang(v *string) *TitleUpdateOne {
	if v != nil {
		_u.SetLang(*v)
	}
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *TitleUpdateOne) SetSourceName(v string) *TitleUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableSourceName(v *string) *TitleUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *TitleUpdateOne) SetPublishedAt(v time.Time) *TitleUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillablePublishedAt(v *time.Time) *TitleUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *TitleUpdateOne) SetDetectedAt(v time.Time) *TitleUpdateOne {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableDetectedAt(v *time.Time) *TitleUpdateOne {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// SetGateKeep sets the "gate_keep" field.
func (_u *TitleUpdateOne) SetGateKeep(v bool) *TitleUpdateOne {
	_u.mutation.SetGateKeep(v)
	return _u
}

// SetNillableGateKeep sets the "gate_keep" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableGateKeep(v *bool) *TitleUpdateOne {
	if v != nil {
		_u.SetGateKeep(*v)
	}
	return _u
}

// SetGateScore sets the "gate_score" field.
func (_u *TitleUpdateOne) SetGateScore(v float64) *TitleUpdateOne {
	_u.mutation.ResetGateScore()
	_u.mutation.SetGateScore(v)
	return _u
}

// SetNillableGateScore sets the "gate_score" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableGateScore(v *float64) *TitleUpdateOne {
	if v != nil {
		_u.SetGateScore(*v)
	}
	return _u
}

// AddGateScore adds value to the "gate_score" field.
func (_u *TitleUpdateOne) AddGateScore(v float64) *TitleUpdateOne {
	_u.mutation.AddGateScore(v)
	return _u
}

// ClearGateScore clears the value of the "gate_score" field.
func (_u *TitleUpdateOne) ClearGateScore() *TitleUpdateOne {
	_u.mutation.ClearGateScore()
	return _u
}

// SetGateActors sets the "gate_actors" field.
func (_u *TitleUpdateOne) SetGateActors(v []string) *TitleUpdateOne {
	_u.mutation.SetGateActors(v)
	return _u
}

// AppendGateActors appends value to the "gate_actors" field.
func (_u *TitleUpdateOne) AppendGateActors(v []string) *TitleUpdateOne {
	_u.mutation.AppendGateActors(v)
	return _u
}

// ClearGateActors clears the value of the "gate_actors" field.
func (_u *TitleUpdateOne) ClearGateActors() *TitleUpdateOne {
	_u.mutation.ClearGateActors()
	return _u
}

// SetEventFamilyID sets the "event_family_id" field.
func (_u *TitleUpdateOne) SetEventFamilyID(v string) *TitleUpdateOne {
	_u.mutation.SetEventFamilyID(v)
	return _u
}

// SetNillableEventFamilyID sets the "event_family_id" field if the given value is not nil.
func (_u *TitleUpdateOne) SetNillableEventFamilyID(v *string) *TitleUpdateOne {
	if v != nil {
		_u.SetEventFamilyID(*v)
	}
	return _u
}

// ClearEventFamilyID clears the value of the "event_family_id" field.
func (_u *TitleUpdateOne) ClearEventFamilyID() *TitleUpdateOne {
	_u.mutation.ClearEventFamilyID()
	return _u
}

// SetEventFamily sets the "event_family" edge to the EventFamily entity.
func (_u *TitleUpdateOne) SetEventFamily(v *EventFamily) *TitleUpdateOne {
	return _u.SetEventFamilyID(v.ID)
}

// Mutation returns the TitleMutation object of the builder.
func (_u *TitleUpdateOne) Mutation() *TitleMutation {
	return _u.mutation
}

// ClearEventFamily clears the "event_family" edge to the EventFamily entity.
func (_u *TitleUpdateOne) ClearEventFamily() *TitleUpdateOne {
	_u.mutation.ClearEventFamily()
	return _u
}

// Where appends a list predicates to the TitleUpdate builder.
func (_u *TitleUpdateOne) Where(ps ...predicate.Title) *TitleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TitleUpdateOne) Select(field string, fields ...string) *TitleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Title entity.
func (_u *TitleUpdateOne) Save(ctx context.Context) (*Title, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TitleUpdateOne) SaveX(ctx context.Context) *Title {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TitleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TitleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TitleUpdateOne) sqlSave(ctx context.Context) (_node *Title, err error) {
	_spec := sqlgraph.NewUpdateSpec(title.Table, title.Columns, sqlgraph.NewFieldSpec(title.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Title.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, title.FieldID)
		for _, f := range fields {
			if !title.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != title.FieldID {
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
	if value, ok := _u.mutation.TitleText(); ok {
		_spec.SetField(title.FieldTitleText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lang(); ok {
		_spec.SetField(title.FieldLang, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(title.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(title.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(title.FieldDetectedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GateKeep(); ok {
		_spec.SetField(title.FieldGateKeep, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GateScore(); ok {
		_spec.SetField(title.FieldGateScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGateScore(); ok {
		_spec.AddField(title.FieldGateScore, field.TypeFloat64, value)
	}
	if _u.mutation.GateScoreCleared() {
		_spec.ClearField(title.FieldGateScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.GateActors(); ok {
		_spec.SetField(title.FieldGateActors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGateActors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, title.FieldGateActors, value)
		})
	}
	if _u.mutation.GateActorsCleared() {
		_spec.ClearField(title.FieldGateActors, field.TypeJSON)
	}
	if _u.mutation.EventFamilyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   title.EventFamilyTable,
			Columns: []string{title.EventFamilyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventFamilyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   title.EventFamilyTable,
			Columns: []string{title.EventFamilyColumn},
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
	_node = &Title{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{title.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
