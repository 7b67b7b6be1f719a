// Code generated by ent, DO NOT EDIT.

package eventfamily

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the eventfamily type in the database.
	Label = "event_family"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ef_id"
	// FieldEfKey holds the string denoting the ef_key field in the database.
	FieldEfKey = "ef_key"
	// FieldTheater holds the string denoting the theater field in the database.
	FieldTheater = "theater"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldHeadline holds the string denoting the headline field in the database.
	FieldHeadline = "headline"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldActors holds the string denoting the actors field in the database.
	FieldActors = "actors"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldTimeline holds the string denoting the timeline field in the database.
	FieldTimeline = "timeline"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTitleCount holds the string denoting the title_count field in the database.
	FieldTitleCount = "title_count"
	// FieldSingletonOrigin holds the string denoting the singleton_origin field in the database.
	FieldSingletonOrigin = "singleton_origin"
	// FieldLineage holds the string denoting the lineage field in the database.
	FieldLineage = "lineage"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMergedIntoID holds the string denoting the merged_into_id field in the database.
	FieldMergedIntoID = "merged_into_id"
	// FieldParentEfID holds the string denoting the parent_ef_id field in the database.
	FieldParentEfID = "parent_ef_id"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastUpdatedAt holds the string denoting the last_updated_at field in the database.
	FieldLastUpdatedAt = "last_updated_at"
	// FieldCreatedByRunID holds the string denoting the created_by_run_id field in the database.
	FieldCreatedByRunID = "created_by_run_id"
	// FieldUpdatedByRunID holds the string denoting the updated_by_run_id field in the database.
	FieldUpdatedByRunID = "updated_by_run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTitles holds the string denoting the titles edge name in mutations.
	EdgeTitles = "titles"
	// EdgeMergedInto holds the string denoting the merged_into edge name in mutations.
	EdgeMergedInto = "merged_into"
	// EdgeAbsorbed holds the string denoting the absorbed edge name in mutations.
	EdgeAbsorbed = "absorbed"
	// EdgeMergeEvents holds the string denoting the merge_events edge name in mutations.
	EdgeMergeEvents = "merge_events"
	// TitleFieldID holds the string denoting the ID field of the Title.
	TitleFieldID = "title_id"
	// MergeEventFieldID holds the string denoting the ID field of the MergeEvent.
	MergeEventFieldID = "merge_event_id"
	// Table holds the table name of the eventfamily in the database.
	Table = "event_families"
	// TitlesTable is the table that holds the titles relation/edge.
	TitlesTable = "titles"
	// TitlesInverseTable is the table name for the Title entity.
	// It exists in this package in order to avoid circular dependency with the "title" package.
	TitlesInverseTable = "titles"
	// TitlesColumn is the table column denoting the titles relation/edge.
	TitlesColumn = "event_family_id"
	// MergedIntoTable is the table that holds the merged_into relation/edge.
	MergedIntoTable = "event_families"
	// MergedIntoColumn is the table column denoting the merged_into relation/edge.
	MergedIntoColumn = "merged_into_id"
	// AbsorbedTable is the table that holds the absorbed relation/edge.
	AbsorbedTable = "event_families"
	// AbsorbedColumn is the table column denoting the absorbed relation/edge.
	AbsorbedColumn = "merged_into_id"
	// MergeEventsTable is the table that holds the merge_events relation/edge.
	MergeEventsTable = "merge_events"
	// MergeEventsInverseTable is the table name for the MergeEvent entity.
	// It exists in this package in order to avoid circular dependency with the "mergeevent" package.
	MergeEventsInverseTable = "merge_events"
	// MergeEventsColumn is the table column denoting the merge_events relation/edge.
	MergeEventsColumn = "survivor_ef_id"
)

// Columns holds all SQL columns for eventfamily fields.
var Columns = []string{
	FieldID,
	FieldEfKey,
	FieldTheater,
	FieldEventType,
	FieldHeadline,
	FieldSummary,
	FieldActors,
	FieldTags,
	FieldTimeline,
	FieldConfidence,
	FieldTitleCount,
	FieldSingletonOrigin,
	FieldLineage,
	FieldStatus,
	FieldMergedIntoID,
	FieldParentEfID,
	FieldFirstSeenAt,
	FieldLastUpdatedAt,
	FieldCreatedByRunID,
	FieldUpdatedByRunID,
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
	// TitleCountValidator is a validator for the "title_count" field. It is called by the builders before save.
	TitleCountValidator func(int) error
	// DefaultSingletonOrigin holds the default value on creation for the "singleton_origin" field.
	DefaultSingletonOrigin bool
	// DefaultLastUpdatedAt holds the default value on creation for the "last_updated_at" field.
	DefaultLastUpdatedAt func() time.Time
	// UpdateDefaultLastUpdatedAt holds the default value on update for the "last_updated_at" field.
	UpdateDefaultLastUpdatedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive Status = "active"
	StatusMerged Status = "merged"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusMerged:
		return nil
	default:
		return fmt.Errorf("eventfamily: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the EventFamily queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEfKey orders the results by the ef_key field.
func ByEfKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfKey, opts...).ToFunc()
}

// ByTheater orders the results by the theater field.
func ByTheater(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheater, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByHeadline orders the results by the headline field.
func ByHeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadline, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTitleCount orders the results by the title_count field.
func ByTitleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleCount, opts...).ToFunc()
}

// BySingletonOrigin orders the results by the singleton_origin field.
func BySingletonOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSingletonOrigin, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMergedIntoID orders the results by the merged_into_id field.
func ByMergedIntoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergedIntoID, opts...).ToFunc()
}

// ByParentEfID orders the results by the parent_ef_id field.
func ByParentEfID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentEfID, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastUpdatedAt orders the results by the last_updated_at field.
func ByLastUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdatedAt, opts...).ToFunc()
}

// ByCreatedByRunID orders the results by the created_by_run_id field.
func ByCreatedByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByRunID, opts...).ToFunc()
}

// ByUpdatedByRunID orders the results by the updated_by_run_id field.
func ByUpdatedByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedByRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTitlesCount orders the results by titles count.
func ByTitlesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTitlesStep(), opts...)
	}
}

// ByTitles orders the results by titles terms.
func ByTitles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTitlesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMergedIntoField orders the results by merged_into field.
func ByMergedIntoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMergedIntoStep(), sql.OrderByField(field, opts...))
	}
}

// ByAbsorbedCount orders the results by absorbed count.
func ByAbsorbedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAbsorbedStep(), opts...)
	}
}

// ByAbsorbed orders the results by absorbed terms.
func ByAbsorbed(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAbsorbedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMergeEventsCount orders the results by merge_events count.
func ByMergeEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMergeEventsStep(), opts...)
	}
}

// ByMergeEvents orders the results by merge_events terms.
func ByMergeEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMergeEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTitlesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TitlesInverseTable, TitleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TitlesTable, TitlesColumn),
	)
}
func newMergedIntoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MergedIntoTable, MergedIntoColumn),
	)
}
func newAbsorbedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AbsorbedTable, AbsorbedColumn),
	)
}
func newMergeEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MergeEventsInverseTable, MergeEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MergeEventsTable, MergeEventsColumn),
	)
}
