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
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
)

// MergeEventCreate is the builder for creating a MergeEvent entity.
type MergeEventCreate struct {
	config
	mutation *MergeEventMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *MergeEventCreate) SetRunID(v string) *MergeEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSurvivorEfID sets the "survivor_ef_id" field.
func (_c *MergeEventCreate) SetSurvivorEfID(v string) *MergeEventCreate {
	_c.mutation.SetSurvivorEfID(v)
	return _c
}

// SetSourceKind sets the "source_kind" field.
func (_c *MergeEventCreate) SetSourceKind(v mergeevent.SourceKind) *MergeEventCreate {
	_c.mutation.SetSourceKind(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *MergeEventCreate) SetSourceID(v string) *MergeEventCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSourceTitleCount sets the "source_title_count" field.
func (_c *MergeEventCreate) SetSourceTitleCount(v int) *MergeEventCreate {
	_c.mutation.SetSourceTitleCount(v)
	return _c
}

// SetTitlesAdded sets the "titles_added" field.
func (_c *MergeEventCreate) SetTitlesAdded(v int) *MergeEventCreate {
	_c.mutation.SetTitlesAdded(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MergeEventCreate) SetCreatedAt(v time.Time) *MergeEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MergeEventCreate) SetNillableCreatedAt(v *time.Time) *MergeEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MergeEventCreate) SetID(v string) *MergeEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PipelineRun entity.
func (_c *MergeEventCreate) SetRun(v *PipelineRun) *MergeEventCreate {
	return _c.SetRunID(v.ID)
}

// SetSurvivorID sets the "survivor" edge to the EventFamily entity by ID.
func (_c *MergeEventCreate) SetSurvivorID(id string) *MergeEventCreate {
	_c.mutation.SetSurvivorID(id)
	return _c
}

// SetSurvivor sets the "survivor" edge to the EventFamily entity.
func (_c *MergeEventCreate) SetSurvivor(v *EventFamily) *MergeEventCreate {
	return _c.SetSurvivorID(v.ID)
}

// Mutation returns the MergeEventMutation object of the builder.
func (_c *MergeEventCreate) Mutation() *MergeEventMutation {
	return _c.mutation
}

// Save creates the MergeEvent in the database.
func (_c *MergeEventCreate) Save(ctx context.Context) (*MergeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MergeEventCreate) SaveX(ctx context.Context) *MergeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MergeEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mergeevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MergeEventCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "MergeEvent.run_id"`)}
	}
	if _, ok := _c.mutation.SurvivorEfID(); !ok {
		return &ValidationError{Name: "survivor_ef_id", err: errors.New(`ent: missing required field "MergeEvent.survivor_ef_id"`)}
	}
	if _, ok := _c.mutation.SourceKind(); !ok {
		return &ValidationError{Name: "source_kind", err: errors.New(`ent: missing required field "MergeEvent.source_kind"`)}
	}
	if v, ok := _c.mutation.SourceKind(); ok {
		if err := mergeevent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "MergeEvent.source_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "MergeEvent.source_id"`)}
	}
	if _, ok := _c.mutation.SourceTitleCount(); !ok {
		return &ValidationError{Name: "source_title_count", err: errors.New(`ent: missing required field "MergeEvent.source_title_count"`)}
	}
	if _, ok := _c.mutation.TitlesAdded(); !ok {
		return &ValidationError{Name: "titles_added", err: errors.New(`ent: missing required field "MergeEvent.titles_added"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MergeEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "MergeEvent.run"`)}
	}
	if len(_c.mutation.SurvivorIDs()) == 0 {
		return &ValidationError{Name: "survivor", err: errors.New(`ent: missing required edge "MergeEvent.survivor"`)}
	}
	return nil
}

func (_c *MergeEventCreate) sqlSave(ctx context.Context) (*MergeEvent, error) {
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
			return nil, fmt.Errorf("unexpected MergeEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MergeEventCreate) createSpec() (*MergeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MergeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mergeevent.Table, sqlgraph.NewFieldSpec(mergeevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceKind(); ok {
		_spec.SetField(mergeevent.FieldSourceKind, field.TypeEnum, value)
		_node.SourceKind = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(mergeevent.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.SourceTitleCount(); ok {
		_spec.SetField(mergeevent.FieldSourceTitleCount, field.TypeInt, value)
		_node.SourceTitleCount = value
	}
	if value, ok := _c.mutation.TitlesAdded(); ok {
		_spec.SetField(mergeevent.FieldTitlesAdded, field.TypeInt, value)
		_node.TitlesAdded = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mergeevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mergeevent.RunTable,
			Columns: []string{mergeevent.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SurvivorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mergeevent.SurvivorTable,
			Columns: []string{mergeevent.SurvivorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SurvivorEfID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MergeEventCreateBulk is the builder for creating many MergeEvent entities in bulk.
type MergeEventCreateBulk struct {
	config
	err      error
	builders []*MergeEventCreate
}

// Save creates the MergeEvent entities in the database.
func (_c *MergeEventCreateBulk) Save(ctx context.Context) ([]*MergeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MergeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MergeEventMutation)
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
func (_c *MergeEventCreateBulk) SaveX(ctx context.Context) []*MergeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MergeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MergeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
