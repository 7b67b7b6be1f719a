// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger pipelinerun.Trigger `json:"trigger,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// ErrorCategory holds the value of the "error_category" field.
	ErrorCategory *pipelinerun.ErrorCategory `json:"error_category,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TitlesSelected holds the value of the "titles_selected" field.
	TitlesSelected int `json:"titles_selected,omitempty"`
	// ShardsTotal holds the value of the "shards_total" field.
	ShardsTotal int `json:"shards_total,omitempty"`
	// ShardsFailed holds the value of the "shards_failed" field.
	ShardsFailed int `json:"shards_failed,omitempty"`
	// IncidentsMapped holds the value of the "incidents_mapped" field.
	IncidentsMapped int `json:"incidents_mapped,omitempty"`
	// OrphansMapped holds the value of the "orphans_mapped" field.
	OrphansMapped int `json:"orphans_mapped,omitempty"`
	// CandidatesReduced holds the value of the "candidates_reduced" field.
	CandidatesReduced int `json:"candidates_reduced,omitempty"`
	// ReduceDrops holds the value of the "reduce_drops" field.
	ReduceDrops int `json:"reduce_drops,omitempty"`
	// EfsCreated holds the value of the "efs_created" field.
	EfsCreated int `json:"efs_created,omitempty"`
	// EfsUpdated holds the value of the "efs_updated" field.
	EfsUpdated int `json:"efs_updated,omitempty"`
	// TitlesAssigned holds the value of the "titles_assigned" field.
	TitlesAssigned int `json:"titles_assigned,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the run (transitioned from pending)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineRunQuery when eager-loading is set.
	Edges        PipelineRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineRunEdges holds the relations/edges for other nodes in the graph.
type PipelineRunEdges struct {
	// MergeEvents holds the value of the merge_events edge.
	MergeEvents []*MergeEvent `json:"merge_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MergeEventsOrErr returns the MergeEvents value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineRunEdges) MergeEventsOrErr() ([]*MergeEvent, error) {
	if e.loadedTypes[0] {
		return e.MergeEvents, nil
	}
	return nil, &NotLoadedError{edge: "merge_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldTitlesSelected, pipelinerun.FieldShardsTotal, pipelinerun.FieldShardsFailed, pipelinerun.FieldIncidentsMapped, pipelinerun.FieldOrphansMapped, pipelinerun.FieldCandidatesReduced, pipelinerun.FieldReduceDrops, pipelinerun.FieldEfsCreated, pipelinerun.FieldEfsUpdated, pipelinerun.FieldTitlesAssigned:
			values[i] = new(sql.NullInt64)
		case pipelinerun.FieldID, pipelinerun.FieldStatus, pipelinerun.FieldTrigger, pipelinerun.FieldPodID, pipelinerun.FieldErrorCategory, pipelinerun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinerun.FieldCreatedAt, pipelinerun.FieldStartedAt, pipelinerun.FieldCompletedAt, pipelinerun.FieldLastHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = pipelinerun.Trigger(value.String)
			}
		case pipelinerun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case pipelinerun.FieldErrorCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_category", values[i])
			} else if value.Valid {
				_m.ErrorCategory = new(pipelinerun.ErrorCategory)
				*_m.ErrorCategory = pipelinerun.ErrorCategory(value.String)
			}
		case pipelinerun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case pipelinerun.FieldTitlesSelected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field titles_selected", values[i])
			} else if value.Valid {
				_m.TitlesSelected = int(value.Int64)
			}
		case pipelinerun.FieldShardsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shards_total", values[i])
			} else if value.Valid {
				_m.ShardsTotal = int(value.Int64)
			}
		case pipelinerun.FieldShardsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shards_failed", values[i])
			} else if value.Valid {
				_m.ShardsFailed = int(value.Int64)
			}
		case pipelinerun.FieldIncidentsMapped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incidents_mapped", values[i])
			} else if value.Valid {
				_m.IncidentsMapped = int(value.Int64)
			}
		case pipelinerun.FieldOrphansMapped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field orphans_mapped", values[i])
			} else if value.Valid {
				_m.OrphansMapped = int(value.Int64)
			}
		case pipelinerun.FieldCandidatesReduced:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field candidates_reduced", values[i])
			} else if value.Valid {
				_m.CandidatesReduced = int(value.Int64)
			}
		case pipelinerun.FieldReduceDrops:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reduce_drops", values[i])
			} else if value.Valid {
				_m.ReduceDrops = int(value.Int64)
			}
		case pipelinerun.FieldEfsCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field efs_created", values[i])
			} else if value.Valid {
				_m.EfsCreated = int(value.Int64)
			}
		case pipelinerun.FieldEfsUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field efs_updated", values[i])
			} else if value.Valid {
				_m.EfsUpdated = int(value.Int64)
			}
		case pipelinerun.FieldTitlesAssigned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field titles_assigned", values[i])
			} else if value.Valid {
				_m.TitlesAssigned = int(value.Int64)
			}
		case pipelinerun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinerun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case pipelinerun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case pipelinerun.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMergeEvents queries the "merge_events" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryMergeEvents() *MergeEventQuery {
	return NewPipelineRunClient(_m.config).QueryMergeEvents(_m)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorCategory; v != nil {
		builder.WriteString("error_category=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("titles_selected=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitlesSelected))
	builder.WriteString(", ")
	builder.WriteString("shards_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShardsTotal))
	builder.WriteString(", ")
	builder.WriteString("shards_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShardsFailed))
	builder.WriteString(", ")
	builder.WriteString("incidents_mapped=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncidentsMapped))
	builder.WriteString(", ")
	builder.WriteString("orphans_mapped=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrphansMapped))
	builder.WriteString(", ")
	builder.WriteString("candidates_reduced=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidatesReduced))
	builder.WriteString(", ")
	builder.WriteString("reduce_drops=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReduceDrops))
	builder.WriteString(", ")
	builder.WriteString("efs_created=")
	builder.WriteString(fmt.Sprintf("%v", _m.EfsCreated))
	builder.WriteString(", ")
	builder.WriteString("efs_updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.EfsUpdated))
	builder.WriteString(", ")
	builder.WriteString("titles_assigned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitlesAssigned))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
