// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
)

// EventFamilyDelete is the builder for deleting a EventFamily entity.
type EventFamilyDelete struct {
	config
	hooks    []Hook
	mutation *EventFamilyMutation
}

// Where appends a list predicates to the EventFamilyDelete builder.
func (_d *EventFamilyDelete) Where(ps ...predicate.EventFamily) *EventFamilyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EventFamilyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EventFamilyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EventFamilyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(eventfamily.Table, sqlgraph.NewFieldSpec(eventfamily.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EventFamilyDeleteOne is the builder for deleting a single EventFamily entity.
type EventFamilyDeleteOne struct {
	_d *EventFamilyDelete
}

// Where appends a list predicates to the EventFamilyDelete builder.
func (_d *EventFamilyDeleteOne) Where(ps ...predicate.EventFamily) *EventFamilyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EventFamilyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{eventfamily.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EventFamilyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
