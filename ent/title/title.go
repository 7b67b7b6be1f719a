// Code generated by ent, DO NOT EDIT.

package title

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the title type in the database.
	Label = "title"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "title_id"
	// FieldURLHash holds the string denoting the url_hash field in the database.
	FieldURLHash = "url_hash"
	// FieldTitleText holds the string denoting the title_text field in the database.
	FieldTitleText = "title_text"
	// FieldLang holds the string denoting the lang field in the database.
	FieldLang = "lang"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// FieldGateKeep holds the string denoting the gate_keep field in the database.
	FieldGateKeep = "gate_keep"
	// FieldGateScore holds the string denoting the gate_score field in the database.
	FieldGateScore = "gate_score"
	// FieldGateActors holds the string denoting the gate_actors field in the database.
	FieldGateActors = "gate_actors"
	// FieldEventFamilyID holds the string denoting the event_family_id field in the database.
	FieldEventFamilyID = "event_family_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEventFamily holds the string denoting the event_family edge name in mutations.
	EdgeEventFamily = "event_family"
	// EventFamilyFieldID holds the string denoting the ID field of the EventFamily.
	EventFamilyFieldID = "ef_id"
	// Table holds the table name of the title in the database.
	Table = "titles"
	// EventFamilyTable is the table that holds the event_family relation/edge.
	EventFamilyTable = "titles"
	// EventFamilyInverseTable is the table name for the EventFamily entity.
	// It exists in this package in order to avoid circular dependency with the "eventfamily" package.
	EventFamilyInverseTable = "event_families"
	// EventFamilyColumn is the table column denoting the event_family relation/edge.
	EventFamilyColumn = "event_family_id"
)

// Columns holds all SQL columns for title fields.
var Columns = []string{
	FieldID,
	FieldURLHash,
	FieldTitleText,
	FieldLang,
	FieldSourceName,
	FieldPublishedAt,
	FieldDetectedAt,
	FieldGateKeep,
	FieldGateScore,
	FieldGateActors,
	FieldEventFamilyID,
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
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
	// DefaultGateKeep holds the default value on creation for the "gate_keep" field.
	DefaultGateKeep bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Title queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURLHash orders the results by the url_hash field.
func ByURLHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURLHash, opts...).ToFunc()
}

// ByTitleText orders the results by the title_text field.
func ByTitleText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleText, opts...).ToFunc()
}

// ByLang orders the results by the lang field.
func ByLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLang, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}

// ByGateKeep orders the results by the gate_keep field.
func ByGateKeep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateKeep, opts...).ToFunc()
}

// ByGateScore orders the results by the gate_score field.
func ByGateScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateScore, opts...).ToFunc()
}

// ByEventFamilyID orders the results by the event_family_id field.
func ByEventFamilyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventFamilyID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEventFamilyField orders the results by event_family field.
func ByEventFamilyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventFamilyStep(), sql.OrderByField(field, opts...))
	}
}
func newEventFamilyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventFamilyInverseTable, EventFamilyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventFamilyTable, EventFamilyColumn),
	)
}
