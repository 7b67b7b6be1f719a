// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
)

// MergeEvent is the model entity for the MergeEvent schema.
type MergeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// SurvivorEfID holds the value of the "survivor_ef_id" field.
	SurvivorEfID string `json:"survivor_ef_id,omitempty"`
	// SourceKind holds the value of the "source_kind" field.
	SourceKind mergeevent.SourceKind `json:"source_kind,omitempty"`
	// Provisional candidate id or stored ef_id
	SourceID string `json:"source_id,omitempty"`
	// SourceTitleCount holds the value of the "source_title_count" field.
	SourceTitleCount int `json:"source_title_count,omitempty"`
	// New titles the survivor gained; 0 means the source contributed timeline entries only
	TitlesAdded int `json:"titles_added,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MergeEventQuery when eager-loading is set.
	Edges        MergeEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MergeEventEdges holds the relations/edges for other nodes in the graph.
type MergeEventEdges struct {
	// Run holds the value of the run edge.
	Run *PipelineRun `json:"run,omitempty"`
	// Survivor holds the value of the survivor edge.
	Survivor *EventFamily `json:"survivor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MergeEventEdges) RunOrErr() (*PipelineRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipelinerun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// SurvivorOrErr returns the Survivor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MergeEventEdges) SurvivorOrErr() (*EventFamily, error) {
	if e.Survivor != nil {
		return e.Survivor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: eventfamily.Label}
	}
	return nil, &NotLoadedError{edge: "survivor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergeevent.FieldSourceTitleCount, mergeevent.FieldTitlesAdded:
			values[i] = new(sql.NullInt64)
		case mergeevent.FieldID, mergeevent.FieldRunID, mergeevent.FieldSurvivorEfID, mergeevent.FieldSourceKind, mergeevent.FieldSourceID:
			values[i] = new(sql.NullString)
		case mergeevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergeEvent fields.
func (_m *MergeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergeevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mergeevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case mergeevent.FieldSurvivorEfID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field survivor_ef_id", values[i])
			} else if value.Valid {
				_m.SurvivorEfID = value.String
			}
		case mergeevent.FieldSourceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_kind", values[i])
			} else if value.Valid {
				_m.SourceKind = mergeevent.SourceKind(value.String)
			}
		case mergeevent.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case mergeevent.FieldSourceTitleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_title_count", values[i])
			} else if value.Valid {
				_m.SourceTitleCount = int(value.Int64)
			}
		case mergeevent.FieldTitlesAdded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field titles_added", values[i])
			} else if value.Valid {
				_m.TitlesAdded = int(value.Int64)
			}
		case mergeevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MergeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MergeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the MergeEvent entity.
func (_m *MergeEvent) QueryRun() *PipelineRunQuery {
	return NewMergeEventClient(_m.config).QueryRun(_m)
}

// QuerySurvivor queries the "survivor" edge of the MergeEvent entity.
func (_m *MergeEvent) QuerySurvivor() *EventFamilyQuery {
	return NewMergeEventClient(_m.config).QuerySurvivor(_m)
}

// Update returns a builder for updating this MergeEvent.
// Note that you need to call MergeEvent.Unwrap() before calling this method if this MergeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergeEvent) Update() *MergeEventUpdateOne {
	return NewMergeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergeEvent) Unwrap() *MergeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MergeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("survivor_ef_id=")
	builder.WriteString(_m.SurvivorEfID)
	builder.WriteString(", ")
	builder.WriteString("source_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceKind))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("source_title_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceTitleCount))
	builder.WriteString(", ")
	builder.WriteString("titles_added=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitlesAdded))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MergeEvents is a parsable slice of MergeEvent.
type MergeEvents []*MergeEvent
