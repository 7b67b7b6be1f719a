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
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// EventFamily is the model entity for the EventFamily schema.
type EventFamily struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Hex SHA-256 of theater|event_type; uniqueness among active non-split rows is enforced by a partial index in pkg/database
	EfKey string `json:"ef_key,omitempty"`
	// Member of the configured theater vocabulary
	Theater string `json:"theater,omitempty"`
	// Member of the configured event type vocabulary
	EventType string `json:"event_type,omitempty"`
	// Headline holds the value of the "headline" field.
	Headline string `json:"headline,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Actors holds the value of the "actors" field.
	Actors []string `json:"actors,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Ordered by (timestamp, description); deduplicated on the same pair
	Timeline []models.TimelineEntry `json:"timeline,omitempty"`
	// 0..1, title-count-weighted across merges
	Confidence float64 `json:"confidence,omitempty"`
	// TitleCount holds the value of the "title_count" field.
	TitleCount int `json:"title_count,omitempty"`
	// True while every absorbed source was a single-title incident
	SingletonOrigin bool `json:"singleton_origin,omitempty"`
	// One entry per run that merged sources into this EF, newest last
	Lineage []models.LineageEntry `json:"lineage,omitempty"`
	// Status holds the value of the "status" field.
	Status eventfamily.Status `json:"status,omitempty"`
	// Survivor EF when status=merged; chains are single-hop at write time
	MergedIntoID *string `json:"merged_into_id,omitempty"`
	// Set when this EF was split out of a parent; siblings sharing a parent never re-merge
	ParentEfID *string `json:"parent_ef_id,omitempty"`
	// Earliest published_at among member titles at creation
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastUpdatedAt holds the value of the "last_updated_at" field.
	LastUpdatedAt time.Time `json:"last_updated_at,omitempty"`
	// CreatedByRunID holds the value of the "created_by_run_id" field.
	CreatedByRunID string `json:"created_by_run_id,omitempty"`
	// UpdatedByRunID holds the value of the "updated_by_run_id" field.
	UpdatedByRunID string `json:"updated_by_run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventFamilyQuery when eager-loading is set.
	Edges        EventFamilyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventFamilyEdges holds the relations/edges for other nodes in the graph.
type EventFamilyEdges struct {
	// Titles holds the value of the titles edge.
	Titles []*Title `json:"titles,omitempty"`
	// MergedInto holds the value of the merged_into edge.
	MergedInto *EventFamily `json:"merged_into,omitempty"`
	// Absorbed holds the value of the absorbed edge.
	Absorbed []*EventFamily `json:"absorbed,omitempty"`
	// MergeEvents holds the value of the merge_events edge.
	MergeEvents []*MergeEvent `json:"merge_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// TitlesOrErr returns the Titles value or an error if the edge
// was not loaded in eager-loading.
func (e EventFamilyEdges) TitlesOrErr() ([]*Title, error) {
	if e.loadedTypes[0] {
		return e.Titles, nil
	}
	return nil, &NotLoadedError{edge: "titles"}
}

// MergedIntoOrErr returns the MergedInto value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventFamilyEdges) MergedIntoOrErr() (*EventFamily, error) {
	if e.MergedInto != nil {
		return e.MergedInto, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: eventfamily.Label}
	}
	return nil, &NotLoadedError{edge: "merged_into"}
}

// AbsorbedOrErr returns the Absorbed value or an error if the edge
// was not loaded in eager-loading.
func (e EventFamilyEdges) AbsorbedOrErr() ([]*EventFamily, error) {
	if e.loadedTypes[2] {
		return e.Absorbed, nil
	}
	return nil, &NotLoadedError{edge: "absorbed"}
}

// MergeEventsOrErr returns the MergeEvents value or an error if the edge
// was not loaded in eager-loading.
func (e EventFamilyEdges) MergeEventsOrErr() ([]*MergeEvent, error) {
	if e.loadedTypes[3] {
		return e.MergeEvents, nil
	}
	return nil, &NotLoadedError{edge: "merge_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventFamily) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventfamily.FieldActors, eventfamily.FieldTags, eventfamily.FieldTimeline, eventfamily.FieldLineage:
			values[i] = new([]byte)
		case eventfamily.FieldSingletonOrigin:
			values[i] = new(sql.NullBool)
		case eventfamily.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case eventfamily.FieldTitleCount:
			values[i] = new(sql.NullInt64)
		case eventfamily.FieldID, eventfamily.FieldEfKey, eventfamily.FieldTheater, eventfamily.FieldEventType, eventfamily.FieldHeadline, eventfamily.FieldSummary, eventfamily.FieldStatus, eventfamily.FieldMergedIntoID, eventfamily.FieldParentEfID, eventfamily.FieldCreatedByRunID, eventfamily.FieldUpdatedByRunID:
			values[i] = new(sql.NullString)
		case eventfamily.FieldFirstSeenAt, eventfamily.FieldLastUpdatedAt, eventfamily.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventFamily fields.
func (_m *EventFamily) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventfamily.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eventfamily.FieldEfKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ef_key", values[i])
			} else if value.Valid {
				_m.EfKey = value.String
			}
		case eventfamily.FieldTheater:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theater", values[i])
			} else if value.Valid {
				_m.Theater = value.String
			}
		case eventfamily.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case eventfamily.FieldHeadline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field headline", values[i])
			} else if value.Valid {
				_m.Headline = value.String
			}
		case eventfamily.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case eventfamily.FieldActors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Actors); err != nil {
					return fmt.Errorf("unmarshal field actors: %w", err)
				}
			}
		case eventfamily.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case eventfamily.FieldTimeline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field timeline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Timeline); err != nil {
					return fmt.Errorf("unmarshal field timeline: %w", err)
				}
			}
		case eventfamily.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case eventfamily.FieldTitleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field title_count", values[i])
			} else if value.Valid {
				_m.TitleCount = int(value.Int64)
			}
		case eventfamily.FieldSingletonOrigin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field singleton_origin", values[i])
			} else if value.Valid {
				_m.SingletonOrigin = value.Bool
			}
		case eventfamily.FieldLineage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lineage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Lineage); err != nil {
					return fmt.Errorf("unmarshal field lineage: %w", err)
				}
			}
		case eventfamily.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = eventfamily.Status(value.String)
			}
		case eventfamily.FieldMergedIntoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merged_into_id", values[i])
			} else if value.Valid {
				_m.MergedIntoID = new(string)
				*_m.MergedIntoID = value.String
			}
		case eventfamily.FieldParentEfID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_ef_id", values[i])
			} else if value.Valid {
				_m.ParentEfID = new(string)
				*_m.ParentEfID = value.String
			}
		case eventfamily.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case eventfamily.FieldLastUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated_at", values[i])
			} else if value.Valid {
				_m.LastUpdatedAt = value.Time
			}
		case eventfamily.FieldCreatedByRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_run_id", values[i])
			} else if value.Valid {
				_m.CreatedByRunID = value.String
			}
		case eventfamily.FieldUpdatedByRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by_run_id", values[i])
			} else if value.Valid {
				_m.UpdatedByRunID = value.String
			}
		case eventfamily.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EventFamily.
// This includes values selected through modifiers, order, etc.
func (_m *EventFamily) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTitles queries the "titles" edge of the EventFamily entity.
func (_m *EventFamily) QueryTitles() *TitleQuery {
	return NewEventFamilyClient(_m.config).QueryTitles(_m)
}

// QueryMergedInto queries the "merged_into" edge of the EventFamily entity.
func (_m *EventFamily) QueryMergedInto() *EventFamilyQuery {
	return NewEventFamilyClient(_m.config).QueryMergedInto(_m)
}

// QueryAbsorbed queries the "absorbed" edge of the EventFamily entity.
func (_m *EventFamily) QueryAbsorbed() *EventFamilyQuery {
	return NewEventFamilyClient(_m.config).QueryAbsorbed(_m)
}

// QueryMergeEvents queries the "merge_events" edge of the EventFamily entity.
func (_m *EventFamily) QueryMergeEvents() *MergeEventQuery {
	return NewEventFamilyClient(_m.config).QueryMergeEvents(_m)
}

// Update returns a builder for updating this EventFamily.
// Note that you need to call EventFamily.Unwrap() before calling this method if this EventFamily
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventFamily) Update() *EventFamilyUpdateOne {
	return NewEventFamilyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventFamily entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventFamily) Unwrap() *EventFamily {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventFamily is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventFamily) String() string {
	var builder strings.Builder
	builder.WriteString("EventFamily(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ef_key=")
	builder.WriteString(_m.EfKey)
	builder.WriteString(", ")
	builder.WriteString("theater=")
	builder.WriteString(_m.Theater)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("headline=")
	builder.WriteString(_m.Headline)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("actors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actors))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("timeline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timeline))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("title_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TitleCount))
	builder.WriteString(", ")
	builder.WriteString("singleton_origin=")
	builder.WriteString(fmt.Sprintf("%v", _m.SingletonOrigin))
	builder.WriteString(", ")
	builder.WriteString("lineage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lineage))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.MergedIntoID; v != nil {
		builder.WriteString("merged_into_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentEfID; v != nil {
		builder.WriteString("parent_ef_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_updated_at=")
	builder.WriteString(_m.LastUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by_run_id=")
	builder.WriteString(_m.CreatedByRunID)
	builder.WriteString(", ")
	builder.WriteString("updated_by_run_id=")
	builder.WriteString(_m.UpdatedByRunID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventFamilies is a parsable slice of EventFamily.
type EventFamilies []*EventFamily
