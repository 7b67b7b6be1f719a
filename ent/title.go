// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/title"
)

// Title is the model entity for the Title schema.
type Title struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Dedup key computed by ingestion
	URLHash string `json:"url_hash,omitempty"`
	// Original headline text in the source language
	TitleText string `json:"title_text,omitempty"`
	// Language tag as detected upstream
	Lang string `json:"lang,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt time.Time `json:"published_at,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt time.Time `json:"detected_at,omitempty"`
	// Strategic gate verdict; only kept titles are selectable
	GateKeep bool `json:"gate_keep,omitempty"`
	// GateScore holds the value of the "gate_score" field.
	GateScore *float64 `json:"gate_score,omitempty"`
	// Normalized actor tokens extracted by the gate
	GateActors []string `json:"gate_actors,omitempty"`
	// NULL until a pipeline run assigns the title to an EF
	EventFamilyID *string `json:"event_family_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TitleQuery when eager-loading is set.
	Edges        TitleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TitleEdges holds the relations/edges for other nodes in the graph.
type TitleEdges struct {
	// EventFamily holds the value of the event_family edge.
	EventFamily *EventFamily `json:"event_family,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventFamilyOrErr returns the EventFamily value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TitleEdges) EventFamilyOrErr() (*EventFamily, error) {
	if e.EventFamily != nil {
		return e.EventFamily, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: eventfamily.Label}
	}
	return nil, &NotLoadedError{edge: "event_family"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Title) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case title.FieldGateActors:
			values[i] = new([]byte)
		case title.FieldGateKeep:
			values[i] = new(sql.NullBool)
		case title.FieldGateScore:
			values[i] = new(sql.NullFloat64)
		case title.FieldID, title.FieldURLHash, title.FieldTitleText, title.FieldLang, title.FieldSourceName, title.FieldEventFamilyID:
			values[i] = new(sql.NullString)
		case title.FieldPublishedAt, title.FieldDetectedAt, title.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Title fields.
func (_m *Title) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case title.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case title.FieldURLHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_hash", values[i])
			} else if value.Valid {
				_m.URLHash = value.String
			}
		case title.FieldTitleText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_text", values[i])
			} else if value.Valid {
				_m.TitleText = value.String
			}
		case title.FieldLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lang", values[i])
			} else if value.Valid {
				_m.Lang = value.String
			}
		case title.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case title.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = value.Time
			}
		case title.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		case title.FieldGateKeep:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field gate_keep", values[i])
			} else if value.Valid {
				_m.GateKeep = value.Bool
			}
		case title.FieldGateScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gate_score", values[i])
			} else if value.Valid {
				_m.GateScore = new(float64)
				*_m.GateScore = value.Float64
			}
		case title.FieldGateActors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gate_actors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GateActors); err != nil {
					return fmt.Errorf("unmarshal field gate_actors: %w", err)
				}
			}
		case title.FieldEventFamilyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_family_id", values[i])
			} else if value.Valid {
				_m.EventFamilyID = new(string)
				*_m.EventFamilyID = value.String
			}
		case title.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Title.
// This includes values selected through modifiers, order, etc.
func (_m *Title) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEventFamily queries the "event_family" edge of the Title entity.
func (_m *Title) QueryEventFamily() *EventFamilyQuery {
	return NewTitleClient(_m.config).QueryEventFamily(_m)
}

// Update returns a builder for updating this Title.
// Note that you need to call Title.Unwrap() before calling this method if this Title
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Title) Update() *TitleUpdateOne {
	return NewTitleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Title entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Title) Unwrap() *Title {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Title is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Title) String() string {
	var builder strings.Builder
	builder.WriteString("Title(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url_hash=")
	builder.WriteString(_m.URLHash)
	builder.WriteString(", ")
	builder.WriteString("title_text=")
	builder.WriteString(_m.TitleText)
	builder.WriteString(", ")
	builder.WriteString("lang=")
	builder.WriteString(_m.Lang)
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("published_at=")
	builder.WriteString(_m.PublishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("gate_keep=")
	builder.WriteString(fmt.Sprintf("%v", _m.GateKeep))
	builder.WriteString(", ")
	if v := _m.GateScore; v != nil {
		builder.WriteString("gate_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("gate_actors=")
	builder.WriteString(fmt.Sprintf("%v", _m.GateActors))
	builder.WriteString(", ")
	if v := _m.EventFamilyID; v != nil {
		builder.WriteString("event_family_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Titles is a parsable slice of Title.
type Titles []*Title
