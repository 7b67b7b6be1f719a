// Code generated by ent, DO NOT EDIT.

package mergeevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mergeevent type in the database.
	Label = "merge_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "merge_event_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldSurvivorEfID holds the string denoting the survivor_ef_id field in the database.
	FieldSurvivorEfID = "survivor_ef_id"
	// FieldSourceKind holds the string denoting the source_kind field in the database.
	FieldSourceKind = "source_kind"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldSourceTitleCount holds the string denoting the source_title_count field in the database.
	FieldSourceTitleCount = "source_title_count"
	// FieldTitlesAdded holds the string denoting the titles_added field in the database.
	FieldTitlesAdded = "titles_added"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// EdgeSurvivor holds the string denoting the survivor edge name in mutations.
	EdgeSurvivor = "survivor"
	// PipelineRunFieldID holds the string denoting the ID field of the PipelineRun.
	PipelineRunFieldID = "run_id"
	// EventFamilyFieldID holds the string denoting the ID field of the EventFamily.
	EventFamilyFieldID = "ef_id"
	// Table holds the table name of the mergeevent in the database.
	Table = "merge_events"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "merge_events"
	// RunInverseTable is the table name for the PipelineRun entity.
	// It exists in this package in order to avoid circular dependency with the "pipelinerun" package.
	RunInverseTable = "pipeline_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
	// SurvivorTable is the table that holds the survivor relation/edge.
	SurvivorTable = "merge_events"
	// SurvivorInverseTable is the table name for the EventFamily entity.
	// It exists in this package in order to avoid circular dependency with the "eventfamily" package.
	SurvivorInverseTable = "event_families"
	// SurvivorColumn is the table column denoting the survivor relation/edge.
	SurvivorColumn = "survivor_ef_id"
)

// Columns holds all SQL columns for mergeevent fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldSurvivorEfID,
	FieldSourceKind,
	FieldSourceID,
	FieldSourceTitleCount,
	FieldTitlesAdded,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SourceKind defines the type for the "source_kind" enum field.
type SourceKind string

// SourceKind values.
const (
	SourceKindCandidate SourceKind = "candidate"
	SourceKindStored    SourceKind = "stored"
)

func (sk SourceKind) String() string {
	return string(sk)
}

// SourceKindValidator is a validator for the "source_kind" field enum values. It is called by the builders before save.
func SourceKindValidator(sk SourceKind) error {
	switch sk {
	case SourceKindCandidate, SourceKindStored:
		return nil
	default:
		return fmt.Errorf("mergeevent: invalid enum value for source_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the MergeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// BySurvivorEfID orders the results by the survivor_ef_id field.
func BySurvivorEfID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurvivorEfID, opts...).ToFunc()
}

// BySourceKind orders the results by the source_kind field.
func BySourceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceKind, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// BySourceTitleCount orders the results by the source_title_count field.
func BySourceTitleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTitleCount, opts...).ToFunc()
}

// ByTitlesAdded orders the results by the titles_added field.
func ByTitlesAdded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitlesAdded, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}

// BySurvivorField orders the results by survivor field.
func BySurvivorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSurvivorStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, PipelineRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
func newSurvivorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SurvivorInverseTable, EventFamilyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SurvivorTable, SurvivorColumn),
	)
}
