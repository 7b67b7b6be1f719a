// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinerun type in the database.
	Label = "pipeline_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldErrorCategory holds the string denoting the error_category field in the database.
	FieldErrorCategory = "error_category"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTitlesSelected holds the string denoting the titles_selected field in the database.
	FieldTitlesSelected = "titles_selected"
	// FieldShardsTotal holds the string denoting the shards_total field in the database.
	FieldShardsTotal = "shards_total"
	// FieldShardsFailed holds the string denoting the shards_failed field in the database.
	FieldShardsFailed = "shards_failed"
	// FieldIncidentsMapped holds the string denoting the incidents_mapped field in the database.
	FieldIncidentsMapped = "incidents_mapped"
	// FieldOrphansMapped holds the string denoting the orphans_mapped field in the database.
	FieldOrphansMapped = "orphans_mapped"
	// FieldCandidatesReduced holds the string denoting the candidates_reduced field in the database.
	FieldCandidatesReduced = "candidates_reduced"
	// FieldReduceDrops holds the string denoting the reduce_drops field in the database.
	FieldReduceDrops = "reduce_drops"
	// FieldEfsCreated holds the string denoting the efs_created field in the database.
	FieldEfsCreated = "efs_created"
	// FieldEfsUpdated holds the string denoting the efs_updated field in the database.
	FieldEfsUpdated = "efs_updated"
	// FieldTitlesAssigned holds the string denoting the titles_assigned field in the database.
	FieldTitlesAssigned = "titles_assigned"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// EdgeMergeEvents holds the string denoting the merge_events edge name in mutations.
	EdgeMergeEvents = "merge_events"
	// MergeEventFieldID holds the string denoting the ID field of the MergeEvent.
	MergeEventFieldID = "merge_event_id"
	// Table holds the table name of the pipelinerun in the database.
	Table = "pipeline_runs"
	// MergeEventsTable is the table that holds the merge_events relation/edge.
	MergeEventsTable = "merge_events"
	// MergeEventsInverseTable is the table name for the MergeEvent entity.
	// It exists in this package in order to avoid circular dependency with the "mergeevent" package.
	MergeEventsInverseTable = "merge_events"
	// MergeEventsColumn is the table column denoting the merge_events relation/edge.
	MergeEventsColumn = "run_id"
)

// Columns holds all SQL columns for pipelinerun fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldTrigger,
	FieldPodID,
	FieldErrorCategory,
	FieldErrorMessage,
	FieldTitlesSelected,
	FieldShardsTotal,
	FieldShardsFailed,
	FieldIncidentsMapped,
	FieldOrphansMapped,
	FieldCandidatesReduced,
	FieldReduceDrops,
	FieldEfsCreated,
	FieldEfsUpdated,
	FieldTitlesAssigned,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastHeartbeatAt,
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
	// DefaultTitlesSelected holds the default value on creation for the "titles_selected" field.
	DefaultTitlesSelected int
	// DefaultShardsTotal holds the default value on creation for the "shards_total" field.
	DefaultShardsTotal int
	// DefaultShardsFailed holds the default value on creation for the "shards_failed" field.
	DefaultShardsFailed int
	// DefaultIncidentsMapped holds the default value on creation for the "incidents_mapped" field.
	DefaultIncidentsMapped int
	// DefaultOrphansMapped holds the default value on creation for the "orphans_mapped" field.
	DefaultOrphansMapped int
	// DefaultCandidatesReduced holds the default value on creation for the "candidates_reduced" field.
	DefaultCandidatesReduced int
	// DefaultReduceDrops holds the default value on creation for the "reduce_drops" field.
	DefaultReduceDrops int
	// DefaultEfsCreated holds the default value on creation for the "efs_created" field.
	DefaultEfsCreated int
	// DefaultEfsUpdated holds the default value on creation for the "efs_updated" field.
	DefaultEfsUpdated int
	// DefaultTitlesAssigned holds the default value on creation for the "titles_assigned" field.
	DefaultTitlesAssigned int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusSelecting  Status = "selecting"
	StatusMapping    Status = "mapping"
	StatusReducing   Status = "reducing"
	StatusMerging    Status = "merging"
	StatusPersisting Status = "persisting"
	StatusDone       Status = "done"
	StatusAborted    Status = "aborted"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSelecting, StatusMapping, StatusReducing, StatusMerging, StatusPersisting, StatusDone, StatusAborted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for status field: %q", s)
	}
}

// Trigger defines the type for the "trigger" enum field.
type Trigger string

// TriggerCli is the default value of the Trigger enum.
const DefaultTrigger = TriggerCli

// Trigger values.
const (
	TriggerCli       Trigger = "cli"
	TriggerAPI       Trigger = "api"
	TriggerScheduled Trigger = "scheduled"
)

func (t Trigger) String() string {
	return string(t)
}

// TriggerValidator is a validator for the "trigger" field enum values. It is called by the builders before save.
func TriggerValidator(t Trigger) error {
	switch t {
	case TriggerCli, TriggerAPI, TriggerScheduled:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for trigger field: %q", t)
	}
}

// ErrorCategory defines the type for the "error_category" enum field.
type ErrorCategory string

// ErrorCategory values.
const (
	ErrorCategoryStore     ErrorCategory = "store"
	ErrorCategoryLlm       ErrorCategory = "llm"
	ErrorCategoryConfig    ErrorCategory = "config"
	ErrorCategoryInvariant ErrorCategory = "invariant"
	ErrorCategoryCanceled  ErrorCategory = "canceled"
)

func (ec ErrorCategory) String() string {
	return string(ec)
}

// ErrorCategoryValidator is a validator for the "error_category" field enum values. It is called by the builders before save.
func ErrorCategoryValidator(ec ErrorCategory) error {
	switch ec {
	case ErrorCategoryStore, ErrorCategoryLlm, ErrorCategoryConfig, ErrorCategoryInvariant, ErrorCategoryCanceled:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for error_category field: %q", ec)
	}
}

// OrderOption defines the ordering options for the PipelineRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByErrorCategory orders the results by the error_category field.
func ByErrorCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCategory, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTitlesSelected orders the results by the titles_selected field.
func ByTitlesSelected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitlesSelected, opts...).ToFunc()
}

// ByShardsTotal orders the results by the shards_total field.
func ByShardsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShardsTotal, opts...).ToFunc()
}

// ByShardsFailed orders the results by the shards_failed field.
func ByShardsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShardsFailed, opts...).ToFunc()
}

// ByIncidentsMapped orders the results by the incidents_mapped field.
func ByIncidentsMapped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentsMapped, opts...).ToFunc()
}

// ByOrphansMapped orders the results by the orphans_mapped field.
func ByOrphansMapped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrphansMapped, opts...).ToFunc()
}

// ByCandidatesReduced orders the results by the candidates_reduced field.
func ByCandidatesReduced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidatesReduced, opts...).ToFunc()
}

// ByReduceDrops orders the results by the reduce_drops field.
func ByReduceDrops(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReduceDrops, opts...).ToFunc()
}

// ByEfsCreated orders the results by the efs_created field.
func ByEfsCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfsCreated, opts...).ToFunc()
}

// ByEfsUpdated orders the results by the efs_updated field.
func ByEfsUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfsUpdated, opts...).ToFunc()
}

// ByTitlesAssigned orders the results by the titles_assigned field.
func ByTitlesAssigned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitlesAssigned, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
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
func newMergeEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MergeEventsInverseTable, MergeEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MergeEventsTable, MergeEventsColumn),
	)
}
