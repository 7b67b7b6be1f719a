// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EventFamily is the predicate function for eventfamily builders.
type EventFamily func(*sql.Selector)

// MergeEvent is the predicate function for mergeevent builders.
type MergeEvent func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Title is the predicate function for title builders.
type Title func(*sql.Selector)
