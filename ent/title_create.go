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
	"github.com/design4music/sni-platform-sub000/ent/title"
)

// TitleCreate is the builder for creating a Title entity.
type TitleCreate struct {
	config
	mutation *TitleMutation
	hooks    []Hook
}

// SetURLHash sets the "url_hash" field.
func (_c *TitleCreate) SetURLHash(v string) *TitleCreate {
	_c.mutation.SetURLHash(v)
	return _c
}

// SetTitleText sets the "title_text" field.
func (_c *TitleCreate) SetTitleText(v string) *TitleCreate {
	_c.mutation.SetTitleText(v)
	return _c
}

// SetLang sets the "lang" field.
func (_c *TitleCreate) SetLang(v string) *TitleCreate {
	_c.mutation.SetLang(v)
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *TitleCreate) SetSourceName(v string) *TitleCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *TitleCreate) SetPublishedAt(v time.Time) *TitleCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *TitleCreate) SetDetectedAt(v time.Time) *TitleCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *TitleCreate) SetNillableDetectedAt(v *time.Time) *TitleCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetGateKeep sets the "gate_keep" field.
func (_c *TitleCreate) SetGateKeep(v bool) *TitleCreate {
	_c.mutation.SetGateKeep(v)
	return _c
}

// SetNillableGateKeep sets the "gate_keep" field if the given value is not nil.
func (_c *TitleCreate) SetNillableGateKeep(v *bool) *TitleCreate {
	if v != nil {
		_c.SetGateKeep(*v)
	}
	return _c
}

// SetGateScore sets the "gate_score" field.
func (_c *TitleCreate) SetGateScore(v float64) *TitleCreate {
	_c.mutation.SetGateScore(v)
	return _c
}

// SetNillableGateScore sets the "gate_score" field if the given value is not nil.
func (_c *TitleCreate) SetNillableGateScore(v *float64) *TitleCreate {
	if v != nil {
		_c.SetGateScore(*v)
	}
	return _c
}

// SetGateActors sets the "gate_actors" field.
func (_c *TitleCreate) SetGateActors(v []string) *TitleCreate {
	_c.mutation.SetGateActors(v)
	return _c
}

// SetEventFamilyID sets the "event_family_id" field.
func (_c *TitleCreate) SetEventFamilyID(v string) *TitleCreate {
	_c.mutation.SetEventFamilyID(v)
	return _c
}

// SetNillableEventFamilyID sets the "event_family_id" field if the given value is not nil.
func (_c *TitleCreate) SetNillableEventFamilyID(v *string) *TitleCreate {
	if v != nil {
		_c.SetEventFamilyID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TitleCreate) SetCreatedAt(v time.Time) *TitleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TitleCreate) SetNillableCreatedAt(v *time.Time) *TitleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TitleCreate) SetID(v string) *TitleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEventFamily sets the "event_family" edge to the EventFamily entity.
func (_c *TitleCreate) SetEventFamily(v *EventFamily) *TitleCreate {
	return _c.SetEventFamilyID(v.ID)
}

// Mutation returns the TitleMutation object of the builder.
func (_c *TitleCreate) Mutation() *TitleMutation {
	return _c.mutation
}

// Save creates the Title in the database.
func (_c *TitleCreate) Save(ctx context.Context) (*Title, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TitleCreate) SaveX(ctx context.Context) *Title {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TitleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TitleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TitleCreate) defaults() {
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := title.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
	if _, ok := _c.mutation.GateKeep(); !ok {
		v := title.DefaultGateKeep
		_c.mutation.SetGateKeep(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := title.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TitleCreate) check() error {
	if _, ok := _c.mutation.URLHash(); !ok {
		return &ValidationError{Name: "url_hash", err: errors.New(`ent: missing required field "Title.url_hash"`)}
	}
	if _, ok := _c.mutation.TitleText(); !ok {
		return &ValidationError{Name: "title_text", err: errors.New(`ent: missing required field "Title.title_text"`)}
	}
	if _, ok := _c.mutation.Lang(); !ok {
		return &ValidationError{Name: "lang", err: errors.New(`ent: missing required field "Title.lang"`)}
	}
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "Title.source_name"`)}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`ent: missing required field "Title.published_at"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "Title.detected_at"`)}
	}
	if _, ok := _c.mutation.GateKeep(); !ok {
		return &ValidationError{Name: "gate_keep", err: errors.New(`ent: missing required field "Title.gate_keep"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Title.created_at"`)}
	}
	return nil
}

func (_c *TitleCreate) sqlSave(ctx context.Context) (*Title, error) {
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
			return nil, fmt.Errorf("unexpected Title.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TitleCreate) createSpec() (*Title, *sqlgraph.CreateSpec) {
	var (
		_node = &Title{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(title.Table, sqlgraph.NewFieldSpec(title.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URLHash(); ok {
		_spec.SetField(title.FieldURLHash, field.TypeString, value)
		_node.URLHash = value
	}
	if value, ok := _c.mutation.TitleText(); ok {
		_spec.SetField(title.FieldTitleText, field.TypeString, value)
		_node.TitleText = value
	}
	if value, ok := _c.mutation.Lang(); ok {
		_spec.SetField(title.FieldLang, field.TypeString, value)
		_node.Lang = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(title.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(title.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(title.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	if value, ok := _c.mutation.GateKeep(); ok {
		_spec.SetField(title.FieldGateKeep, field.TypeBool, value)
		_node.GateKeep = value
	}
	if value, ok := _c.mutation.GateScore(); ok {
		_spec.SetField(title.FieldGateScore, field.TypeFloat64, value)
		_node.GateScore = &value
	}
	if value, ok := _c.mutation.GateActors(); ok {
		_spec.SetField(title.FieldGateActors, field.TypeJSON, value)
		_node.GateActors = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(title.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventFamilyIDs(); len(nodes) > 0 {
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
		_node.EventFamilyID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TitleCreateBulk is the builder for creating many Title entities in bulk.
type TitleCreateBulk struct {
	config
	err      error
	builders []*TitleCreate
}

// Save creates the Title entities in the database.
func (_c *TitleCreateBulk) Save(ctx context.Context) ([]*Title, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Title, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TitleMutation)
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
func (_c *TitleCreateBulk) SaveX(ctx context.Context) []*Title {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TitleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TitleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
