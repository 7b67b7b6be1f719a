// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
	"github.com/design4music/sni-platform-sub000/ent/title"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEventFamily = "EventFamily"
	TypeMergeEvent  = "MergeEvent"
	TypePipelineRun = "PipelineRun"
	TypeTitle       = "Title"
)

// EventFamilyMutation represents an operation that mutates the EventFamily nodes in the graph.
type EventFamilyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	ef_key              *string
	theater             *string
	event_type          *string
	headline            *string
	summary             *string
	actors              *[]string
	appendactors        []string
	tags                *[]string
	appendtags          []string
	timeline            *[]models.TimelineEntry
	appendtimeline      []models.TimelineEntry
	confidence          *float64
	addconfidence       *float64
	title_count         *int
	addtitle_count      *int
	singleton_origin    *bool
	lineage             *[]models.LineageEntry
	appendlineage       []models.LineageEntry
	status              *eventfamily.Status
	parent_ef_id        *string
	first_seen_at       *time.Time
	last_updated_at     *time.Time
	created_by_run_id   *string
	updated_by_run_id   *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	titles              map[string]struct{}
	removedtitles       map[string]struct{}
	clearedtitles       bool
	merged_into         *string
	clearedmerged_into  bool
	absorbed            map[string]struct{}
	removedabsorbed     map[string]struct{}
	clearedabsorbed     bool
	merge_events        map[string]struct{}
	removedmerge_events map[string]struct{}
	clearedmerge_events bool
	done                bool
	oldValue            func(context.Context) (*EventFamily, error)
	predicates          []predicate.EventFamily
}

var _ ent.Mutation = (*EventFamilyMutation)(nil)

// eventfamilyOption allows management of the mutation configuration using functional options.
type eventfamilyOption func(*EventFamilyMutation)

// newEventFamilyMutation creates new mutation for the EventFamily entity.
func newEventFamilyMutation(c config, op Op, opts ...eventfamilyOption) *EventFamilyMutation {
	m := &EventFamilyMutation{
		config:        c,
		op:            op,
		typ:           TypeEventFamily,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventFamilyID sets the ID field of the mutation.
func withEventFamilyID(id string) eventfamilyOption {
	return func(m *EventFamilyMutation) {
		var (
			err   error
			once  sync.Once
			value *EventFamily
		)
		m.oldValue = func(ctx context.Context) (*EventFamily, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventFamily.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventFamily sets the old EventFamily of the mutation.
func withEventFamily(node *EventFamily) eventfamilyOption {
	return func(m *EventFamilyMutation) {
		m.oldValue = func(context.Context) (*EventFamily, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventFamilyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventFamilyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventFamily entities.
func (m *EventFamilyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventFamilyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventFamilyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventFamily.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEfKey sets the "ef_key" field.
func (m *EventFamilyMutation) SetEfKey(s string) {
	m.ef_key = &s
}

// EfKey returns the value of the "ef_key" field in the mutation.
func (m *EventFamilyMutation) EfKey() (r string, exists bool) {
	v := m.ef_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEfKey returns the old "ef_key" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldEfKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfKey: %w", err)
	}
	return oldValue.EfKey, nil
}

// ResetEfKey resets all changes to the "ef_key" field.
func (m *EventFamilyMutation) ResetEfKey() {
	m.ef_key = nil
}

// SetTheater sets the "theater" field.
func (m *EventFamilyMutation) SetTheater(s string) {
	m.theater = &s
}

// Theater returns the value of the "theater" field in the mutation.
func (m *EventFamilyMutation) Theater() (r string, exists bool) {
	v := m.theater
	if v == nil {
		return
	}
	return *v, true
}

// OldTheater returns the old "theater" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldTheater(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheater is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheater requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheater: %w", err)
	}
	return oldValue.Theater, nil
}

// ResetTheater resets all changes to the "theater" field.
func (m *EventFamilyMutation) ResetTheater() {
	m.theater = nil
}

// SetEventType sets the "event_type" field.
func (m *EventFamilyMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventFamilyMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventFamilyMutation) ResetEventType() {
	m.event_type = nil
}

// SetHeadline sets the "headline" field.
func (m *EventFamilyMutation) SetHeadline(s string) {
	m.headline = &s
}

// Headline returns the value of the "headline" field in the mutation.
func (m *EventFamilyMutation) Headline() (r string, exists bool) {
	v := m.headline
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadline returns the old "headline" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldHeadline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadline: %w", err)
	}
	return oldValue.Headline, nil
}

// ResetHeadline resets all changes to the "headline" field.
func (m *EventFamilyMutation) ResetHeadline() {
	m.headline = nil
}

// SetSummary sets the "summary" field.
func (m *EventFamilyMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EventFamilyMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *EventFamilyMutation) ResetSummary() {
	m.summary = nil
}

// SetActors sets the "actors" field.
func (m *EventFamilyMutation) SetActors(s []string) {
	m.actors = &s
	m.appendactors = nil
}

// Actors returns the value of the "actors" field in the mutation.
func (m *EventFamilyMutation) Actors() (r []string, exists bool) {
	v := m.actors
	if v == nil {
		return
	}
	return *v, true
}

// OldActors returns the old "actors" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldActors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActors: %w", err)
	}
	return oldValue.Actors, nil
}

// AppendActors adds s to the "actors" field.
func (m *EventFamilyMutation) AppendActors(s []string) {
	m.appendactors = append(m.appendactors, s...)
}

// AppendedActors returns the list of values that were appended to the "actors" field in this mutation.
func (m *EventFamilyMutation) AppendedActors() ([]string, bool) {
	if len(m.appendactors) == 0 {
		return nil, false
	}
	return m.appendactors, true
}

// ClearActors clears the value of the "actors" field.
func (m *EventFamilyMutation) ClearActors() {
	m.actors = nil
	m.appendactors = nil
	m.clearedFields[eventfamily.FieldActors] = struct{}{}
}

// ActorsCleared returns if the "actors" field was cleared in this mutation.
func (m *EventFamilyMutation) ActorsCleared() bool {
	_, ok := m.clearedFields[eventfamily.FieldActors]
	return ok
}

// ResetActors resets all changes to the "actors" field.
func (m *EventFamilyMutation) ResetActors() {
	m.actors = nil
	m.appendactors = nil
	delete(m.clearedFields, eventfamily.FieldActors)
}

// SetTags sets the "tags" field.
func (m *EventFamilyMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *EventFamilyMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *EventFamilyMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *EventFamilyMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *EventFamilyMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[eventfamily.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *EventFamilyMutation) TagsCleared() bool {
	_, ok := m.clearedFields[eventfamily.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *EventFamilyMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, eventfamily.FieldTags)
}

// SetTimeline sets the "timeline" field.
func (m *EventFamilyMutation) SetTimeline(me []models.TimelineEntry) {
	m.timeline = &me
	m.appendtimeline = nil
}

// Timeline returns the value of the "timeline" field in the mutation.
func (m *EventFamilyMutation) Timeline() (r []models.TimelineEntry, exists bool) {
	v := m.timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeline returns the old "timeline" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldTimeline(ctx context.Context) (v []models.TimelineEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeline: %w", err)
	}
	return oldValue.Timeline, nil
}

// AppendTimeline adds me to the "timeline" field.
func (m *EventFamilyMutation) AppendTimeline(me []models.TimelineEntry) {
	m.appendtimeline = append(m.appendtimeline, me...)
}

// AppendedTimeline returns the list of values that were appended to the "timeline" field in this mutation.
func (m *EventFamilyMutation) AppendedTimeline() ([]models.TimelineEntry, bool) {
	if len(m.appendtimeline) == 0 {
		return nil, false
	}
	return m.appendtimeline, true
}

// ClearTimeline clears the value of the "timeline" field.
func (m *EventFamilyMutation) ClearTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	m.clearedFields[eventfamily.FieldTimeline] = struct{}{}
}

// TimelineCleared returns if the "timeline" field was cleared in this mutation.
func (m *EventFamilyMutation) TimelineCleared() bool {
	_, ok := m.clearedFields[eventfamily.FieldTimeline]
	return ok
}

// ResetTimeline resets all changes to the "timeline" field.
func (m *EventFamilyMutation) ResetTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	delete(m.clearedFields, eventfamily.FieldTimeline)
}

// SetConfidence sets the "confidence" field.
func (m *EventFamilyMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EventFamilyMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EventFamilyMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EventFamilyMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EventFamilyMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTitleCount sets the "title_count" field.
func (m *EventFamilyMutation) SetTitleCount(i int) {
	m.title_count = &i
	m.addtitle_count = nil
}

// TitleCount returns the value of the "title_count" field in the mutation.
func (m *EventFamilyMutation) TitleCount() (r int, exists bool) {
	v := m.title_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleCount returns the old "title_count" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldTitleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleCount: %w", err)
	}
	return oldValue.TitleCount, nil
}

// AddTitleCount adds i to the "title_count" field.
func (m *EventFamilyMutation) AddTitleCount(i int) {
	if m.addtitle_count != nil {
		*m.addtitle_count += i
	} else {
		m.addtitle_count = &i
	}
}

// AddedTitleCount returns the value that was added to the "title_count" field in this mutation.
func (m *EventFamilyMutation) AddedTitleCount() (r int, exists bool) {
	v := m.addtitle_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTitleCount resets all changes to the "title_count" field.
func (m *EventFamilyMutation) ResetTitleCount() {
	m.title_count = nil
	m.addtitle_count = nil
}

// SetSingletonOrigin sets the "singleton_origin" field.
func (m *EventFamilyMutation) SetSingletonOrigin(b bool) {
	m.singleton_origin = &b
}

// SingletonOrigin returns the value of the "singleton_origin" field in the mutation.
func (m *EventFamilyMutation) SingletonOrigin() (r bool, exists bool) {
	v := m.singleton_origin
	if v == nil {
		return
	}
	return *v, true
}

// OldSingletonOrigin returns the old "singleton_origin" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldSingletonOrigin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSingletonOrigin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSingletonOrigin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSingletonOrigin: %w", err)
	}
	return oldValue.SingletonOrigin, nil
}

// ResetSingletonOrigin resets all changes to the "singleton_origin" field.
func (m *EventFamilyMutation) ResetSingletonOrigin() {
	m.singleton_origin = nil
}

// SetLineage sets the "lineage" field.
func (m *EventFamilyMutation) SetLineage(me []models.LineageEntry) {
	m.lineage = &me
	m.appendlineage = nil
}

// Lineage returns the value of the "lineage" field in the mutation.
func (m *EventFamilyMutation) Lineage() (r []models.LineageEntry, exists bool) {
	v := m.lineage
	if v == nil {
		return
	}
	return *v, true
}

// OldLineage returns the old "lineage" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldLineage(ctx context.Context) (v []models.LineageEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineage: %w", err)
	}
	return oldValue.Lineage, nil
}

// AppendLineage adds me to the "lineage" field.
func (m *EventFamilyMutation) AppendLineage(me []models.LineageEntry) {
	m.appendlineage = append(m.appendlineage, me...)
}

// AppendedLineage returns the list of values that were appended to the "lineage" field in this mutation.
func (m *EventFamilyMutation) AppendedLineage() ([]models.LineageEntry, bool) {
	if len(m.appendlineage) == 0 {
		return nil, false
	}
	return m.appendlineage, true
}

// ClearLineage clears the value of the "lineage" field.
func (m *EventFamilyMutation) ClearLineage() {
	m.lineage = nil
	m.appendlineage = nil
	m.clearedFields[eventfamily.FieldLineage] = struct{}{}
}

// LineageCleared returns if the "lineage" field was cleared in this mutation.
func (m *EventFamilyMutation) LineageCleared() bool {
	_, ok := m.clearedFields[eventfamily.FieldLineage]
	return ok
}

// ResetLineage resets all changes to the "lineage" field.
func (m *EventFamilyMutation) ResetLineage() {
	m.lineage = nil
	m.appendlineage = nil
	delete(m.clearedFields, eventfamily.FieldLineage)
}

// SetStatus sets the "status" field.
func (m *EventFamilyMutation) SetStatus(e eventfamily.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventFamilyMutation) Status() (r eventfamily.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldStatus(ctx context.Context) (v eventfamily.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EventFamilyMutation) ResetStatus() {
	m.status = nil
}

// SetMergedIntoID sets the "merged_into_id" field.
func (m *EventFamilyMutation) SetMergedIntoID(s string) {
	m.merged_into = &s
}

// MergedIntoID returns the value of the "merged_into_id" field in the mutation.
func (m *EventFamilyMutation) MergedIntoID() (r string, exists bool) {
	v := m.merged_into
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedIntoID returns the old "merged_into_id" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldMergedIntoID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedIntoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedIntoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedIntoID: %w", err)
	}
	return oldValue.MergedIntoID, nil
}

// ClearMergedIntoID clears the value of the "merged_into_id" field.
func (m *EventFamilyMutation) ClearMergedIntoID() {
	m.merged_into = nil
	m.clearedFields[eventfamily.FieldMergedIntoID] = struct{}{}
}

// MergedIntoIDCleared returns if the "merged_into_id" field was cleared in this mutation.
func (m *EventFamilyMutation) MergedIntoIDCleared() bool {
	_, ok := m.clearedFields[eventfamily.FieldMergedIntoID]
	return ok
}

// ResetMergedIntoID resets all changes to the "merged_into_id" field.
func (m *EventFamilyMutation) ResetMergedIntoID() {
	m.merged_into = nil
	delete(m.clearedFields, eventfamily.FieldMergedIntoID)
}

// SetParentEfID sets the "parent_ef_id" field.
func (m *EventFamilyMutation) SetParentEfID(s string) {
	m.parent_ef_id = &s
}

// ParentEfID returns the value of the "parent_ef_id" field in the mutation.
func (m *EventFamilyMutation) ParentEfID() (r string, exists bool) {
	v := m.parent_ef_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentEfID returns the old "parent_ef_id" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldParentEfID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentEfID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentEfID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentEfID: %w", err)
	}
	return oldValue.ParentEfID, nil
}

// ClearParentEfID clears the value of the "parent_ef_id" field.
func (m *EventFamilyMutation) ClearParentEfID() {
	m.parent_ef_id = nil
	m.clearedFields[eventfamily.FieldParentEfID] = struct{}{}
}

// ParentEfIDCleared returns if the "parent_ef_id" field was cleared in this mutation.
func (m *EventFamilyMutation) ParentEfIDCleared() bool {
	_, ok := m.clearedFields[eventfamily.FieldParentEfID]
	return ok
}

// ResetParentEfID resets all changes to the "parent_ef_id" field.
func (m *EventFamilyMutation) ResetParentEfID() {
	m.parent_ef_id = nil
	delete(m.clearedFields, eventfamily.FieldParentEfID)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *EventFamilyMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *EventFamilyMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *EventFamilyMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *EventFamilyMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *EventFamilyMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *EventFamilyMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// SetCreatedByRunID sets the "created_by_run_id" field.
func (m *EventFamilyMutation) SetCreatedByRunID(s string) {
	m.created_by_run_id = &s
}

// CreatedByRunID returns the value of the "created_by_run_id" field in the mutation.
func (m *EventFamilyMutation) CreatedByRunID() (r string, exists bool) {
	v := m.created_by_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByRunID returns the old "created_by_run_id" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldCreatedByRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByRunID: %w", err)
	}
	return oldValue.CreatedByRunID, nil
}

// ResetCreatedByRunID resets all changes to the "created_by_run_id" field.
func (m *EventFamilyMutation) ResetCreatedByRunID() {
	m.created_by_run_id = nil
}

// SetUpdatedByRunID sets the "updated_by_run_id" field.
func (m *EventFamilyMutation) SetUpdatedByRunID(s string) {
	m.updated_by_run_id = &s
}

// UpdatedByRunID returns the value of the "updated_by_run_id" field in the mutation.
func (m *EventFamilyMutation) UpdatedByRunID() (r string, exists bool) {
	v := m.updated_by_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedByRunID returns the old "updated_by_run_id" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldUpdatedByRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedByRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedByRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedByRunID: %w", err)
	}
	return oldValue.UpdatedByRunID, nil
}

// ResetUpdatedByRunID resets all changes to the "updated_by_run_id" field.
func (m *EventFamilyMutation) ResetUpdatedByRunID() {
	m.updated_by_run_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventFamilyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventFamilyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventFamily entity.
// If the EventFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventFamilyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventFamilyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTitleIDs adds the "titles" edge to the Title entity by ids.
func (m *EventFamilyMutation) AddTitleIDs(ids ...string) {
	if m.titles == nil {
		m.titles = make(map[string]struct{})
	}
	for i := range ids {
		m.titles[ids[i]] = struct{}{}
	}
}

// ClearTitles clears the "titles" edge to the Title entity.
func (m *EventFamilyMutation) ClearTitles() {
	m.clearedtitles = true
}

// TitlesCleared reports if the "titles" edge to the Title entity was cleared.
func (m *EventFamilyMutation) TitlesCleared() bool {
	return m.clearedtitles
}

// RemoveTitleIDs removes the "titles" edge to the Title entity by IDs.
func (m *EventFamilyMutation) RemoveTitleIDs(ids ...string) {
	if m.removedtitles == nil {
		m.removedtitles = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.titles, ids[i])
		m.removedtitles[ids[i]] = struct{}{}
	}
}

// RemovedTitles returns the removed IDs of the "titles" edge to the Title entity.
func (m *EventFamilyMutation) RemovedTitlesIDs() (ids []string) {
	for id := range m.removedtitles {
		ids = append(ids, id)
	}
	return
}

// TitlesIDs returns the "titles" edge IDs in the mutation.
func (m *EventFamilyMutation) TitlesIDs() (ids []string) {
	for id := range m.titles {
		ids = append(ids, id)
	}
	return
}

// ResetTitles resets all changes to the "titles" edge.
func (m *EventFamilyMutation) ResetTitles() {
	m.titles = nil
	m.clearedtitles = false
	m.removedtitles = nil
}

// ClearMergedInto clears the "merged_into" edge to the EventFamily entity.
func (m *EventFamilyMutation) ClearMergedInto() {
	m.clearedmerged_into = true
	m.clearedFields[eventfamily.FieldMergedIntoID] = struct{}{}
}

// MergedIntoCleared reports if the "merged_into" edge to the EventFamily entity was cleared.
func (m *EventFamilyMutation) MergedIntoCleared() bool {
	return m.MergedIntoIDCleared() || m.clearedmerged_into
}

// MergedIntoIDs returns the "merged_into" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MergedIntoID instead. It exists only for internal usage by the builders.
func (m *EventFamilyMutation) MergedIntoIDs() (ids []string) {
	if id := m.merged_into; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMergedInto resets all changes to the "merged_into" edge.
func (m *EventFamilyMutation) ResetMergedInto() {
	m.merged_into = nil
	m.clearedmerged_into = false
}

// AddAbsorbedIDs adds the "absorbed" edge to the EventFamily entity by ids.
func (m *EventFamilyMutation) AddAbsorbedIDs(ids ...string) {
	if m.absorbed == nil {
		m.absorbed = make(map[string]struct{})
	}
	for i := range ids {
		m.absorbed[ids[i]] = struct{}{}
	}
}

// ClearAbsorbed clears the "absorbed" edge to the EventFamily entity.
func (m *EventFamilyMutation) ClearAbsorbed() {
	m.clearedabsorbed = true
}

// AbsorbedCleared reports if the "absorbed" edge to the EventFamily entity was cleared.
func (m *EventFamilyMutation) AbsorbedCleared() bool {
	return m.clearedabsorbed
}

// RemoveAbsorbedIDs removes the "absorbed" edge to the EventFamily entity by IDs.
func (m *EventFamilyMutation) RemoveAbsorbedIDs(ids ...string) {
	if m.removedabsorbed == nil {
		m.removedabsorbed = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.absorbed, ids[i])
		m.removedabsorbed[ids[i]] = struct{}{}
	}
}

// RemovedAbsorbed returns the removed IDs of the "absorbed" edge to the EventFamily entity.
func (m *EventFamilyMutation) RemovedAbsorbedIDs() (ids []string) {
	for id := range m.removedabsorbed {
		ids = append(ids, id)
	}
	return
}

// AbsorbedIDs returns the "absorbed" edge IDs in the mutation.
func (m *EventFamilyMutation) AbsorbedIDs() (ids []string) {
	for id := range m.absorbed {
		ids = append(ids, id)
	}
	return
}

// ResetAbsorbed resets all changes to the "absorbed" edge.
func (m *EventFamilyMutation) ResetAbsorbed() {
	m.absorbed = nil
	m.clearedabsorbed = false
	m.removedabsorbed = nil
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by ids.
func (m *EventFamilyMutation) AddMergeEventIDs(ids ...string) {
	if m.merge_events == nil {
		m.merge_events = make(map[string]struct{})
	}
	for i := range ids {
		m.merge_events[ids[i]] = struct{}{}
	}
}

// ClearMergeEvents clears the "merge_events" edge to the MergeEvent entity.
func (m *EventFamilyMutation) ClearMergeEvents() {
	m.clearedmerge_events = true
}

// MergeEventsCleared reports if the "merge_events" edge to the MergeEvent entity was cleared.
func (m *EventFamilyMutation) MergeEventsCleared() bool {
	return m.clearedmerge_events
}

// RemoveMergeEventIDs removes the "merge_events" edge to the MergeEvent entity by IDs.
func (m *EventFamilyMutation) RemoveMergeEventIDs(ids ...string) {
	if m.removedmerge_events == nil {
		m.removedmerge_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.merge_events, ids[i])
		m.removedmerge_events[ids[i]] = struct{}{}
	}
}

// RemovedMergeEvents returns the removed IDs of the "merge_events" edge to the MergeEvent entity.
func (m *EventFamilyMutation) RemovedMergeEventsIDs() (ids []string) {
	for id := range m.removedmerge_events {
		ids = append(ids, id)
	}
	return
}

// MergeEventsIDs returns the "merge_events" edge IDs in the mutation.
func (m *EventFamilyMutation) MergeEventsIDs() (ids []string) {
	for id := range m.merge_events {
		ids = append(ids, id)
	}
	return
}

// ResetMergeEvents resets all changes to the "merge_events" edge.
func (m *EventFamilyMutation) ResetMergeEvents() {
	m.merge_events = nil
	m.clearedmerge_events = false
	m.removedmerge_events = nil
}

// Where appends a list predicates to the EventFamilyMutation builder.
func (m *EventFamilyMutation) Where(ps ...predicate.EventFamily) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventFamilyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventFamilyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventFamily, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventFamilyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventFamilyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventFamily).
func (m *EventFamilyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventFamilyMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.ef_key != nil {
		fields = append(fields, eventfamily.FieldEfKey)
	}
	if m.theater != nil {
		fields = append(fields, eventfamily.FieldTheater)
	}
	if m.event_type != nil {
		fields = append(fields, eventfamily.FieldEventType)
	}
	if m.headline != nil {
		fields = append(fields, eventfamily.FieldHeadline)
	}
	if m.summary != nil {
		fields = append(fields, eventfamily.FieldSummary)
	}
	if m.actors != nil {
		fields = append(fields, eventfamily.FieldActors)
	}
	if m.tags != nil {
		fields = append(fields, eventfamily.FieldTags)
	}
	if m.timeline != nil {
		fields = append(fields, eventfamily.FieldTimeline)
	}
	if m.confidence != nil {
		fields = append(fields, eventfamily.FieldConfidence)
	}
	if m.title_count != nil {
		fields = append(fields, eventfamily.FieldTitleCount)
	}
	if m.singleton_origin != nil {
		fields = append(fields, eventfamily.FieldSingletonOrigin)
	}
	if m.lineage != nil {
		fields = append(fields, eventfamily.FieldLineage)
	}
	if m.status != nil {
		fields = append(fields, eventfamily.FieldStatus)
	}
	if m.merged_into != nil {
		fields = append(fields, eventfamily.FieldMergedIntoID)
	}
	if m.parent_ef_id != nil {
		fields = append(fields, eventfamily.FieldParentEfID)
	}
	if m.first_seen_at != nil {
		fields = append(fields, eventfamily.FieldFirstSeenAt)
	}
	if m.last_updated_at != nil {
		fields = append(fields, eventfamily.FieldLastUpdatedAt)
	}
	if m.created_by_run_id != nil {
		fields = append(fields, eventfamily.FieldCreatedByRunID)
	}
	if m.updated_by_run_id != nil {
		fields = append(fields, eventfamily.FieldUpdatedByRunID)
	}
	if m.created_at != nil {
		fields = append(fields, eventfamily.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventFamilyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventfamily.FieldEfKey:
		return m.EfKey()
	case eventfamily.FieldTheater:
		return m.Theater()
	case eventfamily.FieldEventType:
		return m.EventType()
	case eventfamily.FieldHeadline:
		return m.Headline()
	case eventfamily.FieldSummary:
		return m.Summary()
	case eventfamily.FieldActors:
		return m.Actors()
	case eventfamily.FieldTags:
		return m.Tags()
	case eventfamily.FieldTimeline:
		return m.Timeline()
	case eventfamily.FieldConfidence:
		return m.Confidence()
	case eventfamily.FieldTitleCount:
		return m.TitleCount()
	case eventfamily.FieldSingletonOrigin:
		return m.SingletonOrigin()
	case eventfamily.FieldLineage:
		return m.Lineage()
	case eventfamily.FieldStatus:
		return m.Status()
	case eventfamily.FieldMergedIntoID:
		return m.MergedIntoID()
	case eventfamily.FieldParentEfID:
		return m.ParentEfID()
	case eventfamily.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case eventfamily.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	case eventfamily.FieldCreatedByRunID:
		return m.CreatedByRunID()
	case eventfamily.FieldUpdatedByRunID:
		return m.UpdatedByRunID()
	case eventfamily.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventFamilyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventfamily.FieldEfKey:
		return m.OldEfKey(ctx)
	case eventfamily.FieldTheater:
		return m.OldTheater(ctx)
	case eventfamily.FieldEventType:
		return m.OldEventType(ctx)
	case eventfamily.FieldHeadline:
		return m.OldHeadline(ctx)
	case eventfamily.FieldSummary:
		return m.OldSummary(ctx)
	case eventfamily.FieldActors:
		return m.OldActors(ctx)
	case eventfamily.FieldTags:
		return m.OldTags(ctx)
	case eventfamily.FieldTimeline:
		return m.OldTimeline(ctx)
	case eventfamily.FieldConfidence:
		return m.OldConfidence(ctx)
	case eventfamily.FieldTitleCount:
		return m.OldTitleCount(ctx)
	case eventfamily.FieldSingletonOrigin:
		return m.OldSingletonOrigin(ctx)
	case eventfamily.FieldLineage:
		return m.OldLineage(ctx)
	case eventfamily.FieldStatus:
		return m.OldStatus(ctx)
	case eventfamily.FieldMergedIntoID:
		return m.OldMergedIntoID(ctx)
	case eventfamily.FieldParentEfID:
		return m.OldParentEfID(ctx)
	case eventfamily.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case eventfamily.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	case eventfamily.FieldCreatedByRunID:
		return m.OldCreatedByRunID(ctx)
	case eventfamily.FieldUpdatedByRunID:
		return m.OldUpdatedByRunID(ctx)
	case eventfamily.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventFamily field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventFamilyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventfamily.FieldEfKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfKey(v)
		return nil
	case eventfamily.FieldTheater:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheater(v)
		return nil
	case eventfamily.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case eventfamily.FieldHeadline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadline(v)
		return nil
	case eventfamily.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case eventfamily.FieldActors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActors(v)
		return nil
	case eventfamily.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case eventfamily.FieldTimeline:
		v, ok := value.([]models.TimelineEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeline(v)
		return nil
	case eventfamily.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case eventfamily.FieldTitleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleCount(v)
		return nil
	case eventfamily.FieldSingletonOrigin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSingletonOrigin(v)
		return nil
	case eventfamily.FieldLineage:
		v, ok := value.([]models.LineageEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineage(v)
		return nil
	case eventfamily.FieldStatus:
		v, ok := value.(eventfamily.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case eventfamily.FieldMergedIntoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedIntoID(v)
		return nil
	case eventfamily.FieldParentEfID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentEfID(v)
		return nil
	case eventfamily.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case eventfamily.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	case eventfamily.FieldCreatedByRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByRunID(v)
		return nil
	case eventfamily.FieldUpdatedByRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedByRunID(v)
		return nil
	case eventfamily.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventFamily field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventFamilyMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, eventfamily.FieldConfidence)
	}
	if m.addtitle_count != nil {
		fields = append(fields, eventfamily.FieldTitleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventFamilyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventfamily.FieldConfidence:
		return m.AddedConfidence()
	case eventfamily.FieldTitleCount:
		return m.AddedTitleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventFamilyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventfamily.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case eventfamily.FieldTitleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTitleCount(v)
		return nil
	}
	return fmt.Errorf("unknown EventFamily numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventFamilyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventfamily.FieldActors) {
		fields = append(fields, eventfamily.FieldActors)
	}
	if m.FieldCleared(eventfamily.FieldTags) {
		fields = append(fields, eventfamily.FieldTags)
	}
	if m.FieldCleared(eventfamily.FieldTimeline) {
		fields = append(fields, eventfamily.FieldTimeline)
	}
	if m.FieldCleared(eventfamily.FieldLineage) {
		fields = append(fields, eventfamily.FieldLineage)
	}
	if m.FieldCleared(eventfamily.FieldMergedIntoID) {
		fields = append(fields, eventfamily.FieldMergedIntoID)
	}
	if m.FieldCleared(eventfamily.FieldParentEfID) {
		fields = append(fields, eventfamily.FieldParentEfID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventFamilyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventFamilyMutation) ClearField(name string) error {
	switch name {
	case eventfamily.FieldActors:
		m.ClearActors()
		return nil
	case eventfamily.FieldTags:
		m.ClearTags()
		return nil
	case eventfamily.FieldTimeline:
		m.ClearTimeline()
		return nil
	case eventfamily.FieldLineage:
		m.ClearLineage()
		return nil
	case eventfamily.FieldMergedIntoID:
		m.ClearMergedIntoID()
		return nil
	case eventfamily.FieldParentEfID:
		m.ClearParentEfID()
		return nil
	}
	return fmt.Errorf("unknown EventFamily nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventFamilyMutation) ResetField(name string) error {
	switch name {
	case eventfamily.FieldEfKey:
		m.ResetEfKey()
		return nil
	case eventfamily.FieldTheater:
		m.ResetTheater()
		return nil
	case eventfamily.FieldEventType:
		m.ResetEventType()
		return nil
	case eventfamily.FieldHeadline:
		m.ResetHeadline()
		return nil
	case eventfamily.FieldSummary:
		m.ResetSummary()
		return nil
	case eventfamily.FieldActors:
		m.ResetActors()
		return nil
	case eventfamily.FieldTags:
		m.ResetTags()
		return nil
	case eventfamily.FieldTimeline:
		m.ResetTimeline()
		return nil
	case eventfamily.FieldConfidence:
		m.ResetConfidence()
		return nil
	case eventfamily.FieldTitleCount:
		m.ResetTitleCount()
		return nil
	case eventfamily.FieldSingletonOrigin:
		m.ResetSingletonOrigin()
		return nil
	case eventfamily.FieldLineage:
		m.ResetLineage()
		return nil
	case eventfamily.FieldStatus:
		m.ResetStatus()
		return nil
	case eventfamily.FieldMergedIntoID:
		m.ResetMergedIntoID()
		return nil
	case eventfamily.FieldParentEfID:
		m.ResetParentEfID()
		return nil
	case eventfamily.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case eventfamily.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	case eventfamily.FieldCreatedByRunID:
		m.ResetCreatedByRunID()
		return nil
	case eventfamily.FieldUpdatedByRunID:
		m.ResetUpdatedByRunID()
		return nil
	case eventfamily.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventFamily field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventFamilyMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.titles != nil {
		edges = append(edges, eventfamily.EdgeTitles)
	}
	if m.merged_into != nil {
		edges = append(edges, eventfamily.EdgeMergedInto)
	}
	if m.absorbed != nil {
		edges = append(edges, eventfamily.EdgeAbsorbed)
	}
	if m.merge_events != nil {
		edges = append(edges, eventfamily.EdgeMergeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventFamilyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventfamily.EdgeTitles:
		ids := make([]ent.Value, 0, len(m.titles))
		for id := range m.titles {
			ids = append(ids, id)
		}
		return ids
	case eventfamily.EdgeMergedInto:
		if id := m.merged_into; id != nil {
			return []ent.Value{*id}
		}
	case eventfamily.EdgeAbsorbed:
		ids := make([]ent.Value, 0, len(m.absorbed))
		for id := range m.absorbed {
			ids = append(ids, id)
		}
		return ids
	case eventfamily.EdgeMergeEvents:
		ids := make([]ent.Value, 0, len(m.merge_events))
		for id := range m.merge_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventFamilyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtitles != nil {
		edges = append(edges, eventfamily.EdgeTitles)
	}
	if m.removedabsorbed != nil {
		edges = append(edges, eventfamily.EdgeAbsorbed)
	}
	if m.removedmerge_events != nil {
		edges = append(edges, eventfamily.EdgeMergeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventFamilyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case eventfamily.EdgeTitles:
		ids := make([]ent.Value, 0, len(m.removedtitles))
		for id := range m.removedtitles {
			ids = append(ids, id)
		}
		return ids
	case eventfamily.EdgeAbsorbed:
		ids := make([]ent.Value, 0, len(m.removedabsorbed))
		for id := range m.removedabsorbed {
			ids = append(ids, id)
		}
		return ids
	case eventfamily.EdgeMergeEvents:
		ids := make([]ent.Value, 0, len(m.removedmerge_events))
		for id := range m.removedmerge_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventFamilyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtitles {
		edges = append(edges, eventfamily.EdgeTitles)
	}
	if m.clearedmerged_into {
		edges = append(edges, eventfamily.EdgeMergedInto)
	}
	if m.clearedabsorbed {
		edges = append(edges, eventfamily.EdgeAbsorbed)
	}
	if m.clearedmerge_events {
		edges = append(edges, eventfamily.EdgeMergeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventFamilyMutation) EdgeCleared(name string) bool {
	switch name {
	case eventfamily.EdgeTitles:
		return m.clearedtitles
	case eventfamily.EdgeMergedInto:
		return m.clearedmerged_into
	case eventfamily.EdgeAbsorbed:
		return m.clearedabsorbed
	case eventfamily.EdgeMergeEvents:
		return m.clearedmerge_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventFamilyMutation) ClearEdge(name string) error {
	switch name {
	case eventfamily.EdgeMergedInto:
		m.ClearMergedInto()
		return nil
	}
	return fmt.Errorf("unknown EventFamily unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventFamilyMutation) ResetEdge(name string) error {
	switch name {
	case eventfamily.EdgeTitles:
		m.ResetTitles()
		return nil
	case eventfamily.EdgeMergedInto:
		m.ResetMergedInto()
		return nil
	case eventfamily.EdgeAbsorbed:
		m.ResetAbsorbed()
		return nil
	case eventfamily.EdgeMergeEvents:
		m.ResetMergeEvents()
		return nil
	}
	return fmt.Errorf("unknown EventFamily edge %s", name)
}

// MergeEventMutation represents an operation that mutates the MergeEvent nodes in the graph.
type MergeEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	source_kind           *mergeevent.SourceKind
	source_id             *string
	source_title_count    *int
	addsource_title_count *int
	titles_added          *int
	addtitles_added       *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	run                   *string
	clearedrun            bool
	survivor              *string
	clearedsurvivor       bool
	done                  bool
	oldValue              func(context.Context) (*MergeEvent, error)
	predicates            []predicate.MergeEvent
}

var _ ent.Mutation = (*MergeEventMutation)(nil)

// mergeeventOption allows management of the mutation configuration using functional options.
type mergeeventOption func(*MergeEventMutation)

// newMergeEventMutation creates new mutation for the MergeEvent entity.
func newMergeEventMutation(c config, op Op, opts ...mergeeventOption) *MergeEventMutation {
	m := &MergeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMergeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMergeEventID sets the ID field of the mutation.
func withMergeEventID(id string) mergeeventOption {
	return func(m *MergeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MergeEvent
		)
		m.oldValue = func(ctx context.Context) (*MergeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MergeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMergeEvent sets the old MergeEvent of the mutation.
func withMergeEvent(node *MergeEvent) mergeeventOption {
	return func(m *MergeEventMutation) {
		m.oldValue = func(context.Context) (*MergeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MergeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MergeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MergeEvent entities.
func (m *MergeEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MergeEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MergeEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MergeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *MergeEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *MergeEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *MergeEventMutation) ResetRunID() {
	m.run = nil
}

// SetSurvivorEfID sets the "survivor_ef_id" field.
func (m *MergeEventMutation) SetSurvivorEfID(s string) {
	m.survivor = &s
}

// SurvivorEfID returns the value of the "survivor_ef_id" field in the mutation.
func (m *MergeEventMutation) SurvivorEfID() (r string, exists bool) {
	v := m.survivor
	if v == nil {
		return
	}
	return *v, true
}

// OldSurvivorEfID returns the old "survivor_ef_id" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldSurvivorEfID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurvivorEfID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurvivorEfID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurvivorEfID: %w", err)
	}
	return oldValue.SurvivorEfID, nil
}

// ResetSurvivorEfID resets all changes to the "survivor_ef_id" field.
func (m *MergeEventMutation) ResetSurvivorEfID() {
	m.survivor = nil
}

// SetSourceKind sets the "source_kind" field.
func (m *MergeEventMutation) SetSourceKind(mk mergeevent.SourceKind) {
	m.source_kind = &mk
}

// SourceKind returns the value of the "source_kind" field in the mutation.
func (m *MergeEventMutation) SourceKind() (r mergeevent.SourceKind, exists bool) {
	v := m.source_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKind returns the old "source_kind" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldSourceKind(ctx context.Context) (v mergeevent.SourceKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKind: %w", err)
	}
	return oldValue.SourceKind, nil
}

// ResetSourceKind resets all changes to the "source_kind" field.
func (m *MergeEventMutation) ResetSourceKind() {
	m.source_kind = nil
}

// SetSourceID sets the "source_id" field.
func (m *MergeEventMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *MergeEventMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *MergeEventMutation) ResetSourceID() {
	m.source_id = nil
}

// SetSourceTitleCount sets the "source_title_count" field.
func (m *MergeEventMutation) SetSourceTitleCount(i int) {
	m.source_title_count = &i
	m.addsource_title_count = nil
}

// SourceTitleCount returns the value of the "source_title_count" field in the mutation.
func (m *MergeEventMutation) SourceTitleCount() (r int, exists bool) {
	v := m.source_title_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTitleCount returns the old "source_title_count" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldSourceTitleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTitleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTitleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTitleCount: %w", err)
	}
	return oldValue.SourceTitleCount, nil
}

// AddSourceTitleCount adds i to the "source_title_count" field.
func (m *MergeEventMutation) AddSourceTitleCount(i int) {
	if m.addsource_title_count != nil {
		*m.addsource_title_count += i
	} else {
		m.addsource_title_count = &i
	}
}

// AddedSourceTitleCount returns the value that was added to the "source_title_count" field in this mutation.
func (m *MergeEventMutation) AddedSourceTitleCount() (r int, exists bool) {
	v := m.addsource_title_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceTitleCount resets all changes to the "source_title_count" field.
func (m *MergeEventMutation) ResetSourceTitleCount() {
	m.source_title_count = nil
	m.addsource_title_count = nil
}

// SetTitlesAdded sets the "titles_added" field.
func (m *MergeEventMutation) SetTitlesAdded(i int) {
	m.titles_added = &i
	m.addtitles_added = nil
}

// TitlesAdded returns the value of the "titles_added" field in the mutation.
func (m *MergeEventMutation) TitlesAdded() (r int, exists bool) {
	v := m.titles_added
	if v == nil {
		return
	}
	return *v, true
}

// OldTitlesAdded returns the old "titles_added" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldTitlesAdded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitlesAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitlesAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitlesAdded: %w", err)
	}
	return oldValue.TitlesAdded, nil
}

// AddTitlesAdded adds i to the "titles_added" field.
func (m *MergeEventMutation) AddTitlesAdded(i int) {
	if m.addtitles_added != nil {
		*m.addtitles_added += i
	} else {
		m.addtitles_added = &i
	}
}

// AddedTitlesAdded returns the value that was added to the "titles_added" field in this mutation.
func (m *MergeEventMutation) AddedTitlesAdded() (r int, exists bool) {
	v := m.addtitles_added
	if v == nil {
		return
	}
	return *v, true
}

// ResetTitlesAdded resets all changes to the "titles_added" field.
func (m *MergeEventMutation) ResetTitlesAdded() {
	m.titles_added = nil
	m.addtitles_added = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MergeEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MergeEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MergeEvent entity.
// If the MergeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MergeEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *MergeEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[mergeevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *MergeEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *MergeEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *MergeEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetSurvivorID sets the "survivor" edge to the EventFamily entity by id.
func (m *MergeEventMutation) SetSurvivorID(id string) {
	m.survivor = &id
}

// ClearSurvivor clears the "survivor" edge to the EventFamily entity.
func (m *MergeEventMutation) ClearSurvivor() {
	m.clearedsurvivor = true
	m.clearedFields[mergeevent.FieldSurvivorEfID] = struct{}{}
}

// SurvivorCleared reports if the "survivor" edge to the EventFamily entity was cleared.
func (m *MergeEventMutation) SurvivorCleared() bool {
	return m.clearedsurvivor
}

// SurvivorID returns the "survivor" edge ID in the mutation.
func (m *MergeEventMutation) SurvivorID() (id string, exists bool) {
	if m.survivor != nil {
		return *m.survivor, true
	}
	return
}

// SurvivorIDs returns the "survivor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurvivorID instead. It exists only for internal usage by the builders.
func (m *MergeEventMutation) SurvivorIDs() (ids []string) {
	if id := m.survivor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvivor resets all changes to the "survivor" edge.
func (m *MergeEventMutation) ResetSurvivor() {
	m.survivor = nil
	m.clearedsurvivor = false
}

// Where appends a list predicates to the MergeEventMutation builder.
func (m *MergeEventMutation) Where(ps ...predicate.MergeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MergeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MergeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MergeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MergeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MergeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MergeEvent).
func (m *MergeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MergeEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, mergeevent.FieldRunID)
	}
	if m.survivor != nil {
		fields = append(fields, mergeevent.FieldSurvivorEfID)
	}
	if m.source_kind != nil {
		fields = append(fields, mergeevent.FieldSourceKind)
	}
	if m.source_id != nil {
		fields = append(fields, mergeevent.FieldSourceID)
	}
	if m.source_title_count != nil {
		fields = append(fields, mergeevent.FieldSourceTitleCount)
	}
	if m.titles_added != nil {
		fields = append(fields, mergeevent.FieldTitlesAdded)
	}
	if m.created_at != nil {
		fields = append(fields, mergeevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MergeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mergeevent.FieldRunID:
		return m.RunID()
	case mergeevent.FieldSurvivorEfID:
		return m.SurvivorEfID()
	case mergeevent.FieldSourceKind:
		return m.SourceKind()
	case mergeevent.FieldSourceID:
		return m.SourceID()
	case mergeevent.FieldSourceTitleCount:
		return m.SourceTitleCount()
	case mergeevent.FieldTitlesAdded:
		return m.TitlesAdded()
	case mergeevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MergeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mergeevent.FieldRunID:
		return m.OldRunID(ctx)
	case mergeevent.FieldSurvivorEfID:
		return m.OldSurvivorEfID(ctx)
	case mergeevent.FieldSourceKind:
		return m.OldSourceKind(ctx)
	case mergeevent.FieldSourceID:
		return m.OldSourceID(ctx)
	case mergeevent.FieldSourceTitleCount:
		return m.OldSourceTitleCount(ctx)
	case mergeevent.FieldTitlesAdded:
		return m.OldTitlesAdded(ctx)
	case mergeevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MergeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mergeevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case mergeevent.FieldSurvivorEfID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurvivorEfID(v)
		return nil
	case mergeevent.FieldSourceKind:
		v, ok := value.(mergeevent.SourceKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKind(v)
		return nil
	case mergeevent.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case mergeevent.FieldSourceTitleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTitleCount(v)
		return nil
	case mergeevent.FieldTitlesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitlesAdded(v)
		return nil
	case mergeevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MergeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MergeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsource_title_count != nil {
		fields = append(fields, mergeevent.FieldSourceTitleCount)
	}
	if m.addtitles_added != nil {
		fields = append(fields, mergeevent.FieldTitlesAdded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MergeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mergeevent.FieldSourceTitleCount:
		return m.AddedSourceTitleCount()
	case mergeevent.FieldTitlesAdded:
		return m.AddedTitlesAdded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mergeevent.FieldSourceTitleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceTitleCount(v)
		return nil
	case mergeevent.FieldTitlesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTitlesAdded(v)
		return nil
	}
	return fmt.Errorf("unknown MergeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MergeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MergeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MergeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MergeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MergeEventMutation) ResetField(name string) error {
	switch name {
	case mergeevent.FieldRunID:
		m.ResetRunID()
		return nil
	case mergeevent.FieldSurvivorEfID:
		m.ResetSurvivorEfID()
		return nil
	case mergeevent.FieldSourceKind:
		m.ResetSourceKind()
		return nil
	case mergeevent.FieldSourceID:
		m.ResetSourceID()
		return nil
	case mergeevent.FieldSourceTitleCount:
		m.ResetSourceTitleCount()
		return nil
	case mergeevent.FieldTitlesAdded:
		m.ResetTitlesAdded()
		return nil
	case mergeevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MergeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MergeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, mergeevent.EdgeRun)
	}
	if m.survivor != nil {
		edges = append(edges, mergeevent.EdgeSurvivor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MergeEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mergeevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case mergeevent.EdgeSurvivor:
		if id := m.survivor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MergeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MergeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MergeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, mergeevent.EdgeRun)
	}
	if m.clearedsurvivor {
		edges = append(edges, mergeevent.EdgeSurvivor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MergeEventMutation) EdgeCleared(name string) bool {
	switch name {
	case mergeevent.EdgeRun:
		return m.clearedrun
	case mergeevent.EdgeSurvivor:
		return m.clearedsurvivor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MergeEventMutation) ClearEdge(name string) error {
	switch name {
	case mergeevent.EdgeRun:
		m.ClearRun()
		return nil
	case mergeevent.EdgeSurvivor:
		m.ClearSurvivor()
		return nil
	}
	return fmt.Errorf("unknown MergeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MergeEventMutation) ResetEdge(name string) error {
	switch name {
	case mergeevent.EdgeRun:
		m.ResetRun()
		return nil
	case mergeevent.EdgeSurvivor:
		m.ResetSurvivor()
		return nil
	}
	return fmt.Errorf("unknown MergeEvent edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	status                *pipelinerun.Status
	trigger               *pipelinerun.Trigger
	pod_id                *string
	error_category        *pipelinerun.ErrorCategory
	error_message         *string
	titles_selected       *int
	addtitles_selected    *int
	shards_total          *int
	addshards_total       *int
	shards_failed         *int
	addshards_failed      *int
	incidents_mapped      *int
	addincidents_mapped   *int
	orphans_mapped        *int
	addorphans_mapped     *int
	candidates_reduced    *int
	addcandidates_reduced *int
	reduce_drops          *int
	addreduce_drops       *int
	efs_created           *int
	addefs_created        *int
	efs_updated           *int
	addefs_updated        *int
	titles_assigned       *int
	addtitles_assigned    *int
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	last_heartbeat_at     *time.Time
	clearedFields         map[string]struct{}
	merge_events          map[string]struct{}
	removedmerge_events   map[string]struct{}
	clearedmerge_events   bool
	done                  bool
	oldValue              func(context.Context) (*PipelineRun, error)
	predicates            []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetTrigger sets the "trigger" field.
func (m *PipelineRunMutation) SetTrigger(pi pipelinerun.Trigger) {
	m.trigger = &pi
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *PipelineRunMutation) Trigger() (r pipelinerun.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTrigger(ctx context.Context) (v pipelinerun.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *PipelineRunMutation) ResetTrigger() {
	m.trigger = nil
}

// SetPodID sets the "pod_id" field.
func (m *PipelineRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PipelineRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PipelineRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[pipelinerun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PipelineRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PipelineRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, pipelinerun.FieldPodID)
}

// SetErrorCategory sets the "error_category" field.
func (m *PipelineRunMutation) SetErrorCategory(pc pipelinerun.ErrorCategory) {
	m.error_category = &pc
}

// ErrorCategory returns the value of the "error_category" field in the mutation.
func (m *PipelineRunMutation) ErrorCategory() (r pipelinerun.ErrorCategory, exists bool) {
	v := m.error_category
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCategory returns the old "error_category" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorCategory(ctx context.Context) (v *pipelinerun.ErrorCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCategory: %w", err)
	}
	return oldValue.ErrorCategory, nil
}

// ClearErrorCategory clears the value of the "error_category" field.
func (m *PipelineRunMutation) ClearErrorCategory() {
	m.error_category = nil
	m.clearedFields[pipelinerun.FieldErrorCategory] = struct{}{}
}

// ErrorCategoryCleared returns if the "error_category" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorCategoryCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorCategory]
	return ok
}

// ResetErrorCategory resets all changes to the "error_category" field.
func (m *PipelineRunMutation) ResetErrorCategory() {
	m.error_category = nil
	delete(m.clearedFields, pipelinerun.FieldErrorCategory)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinerun.FieldErrorMessage)
}

// SetTitlesSelected sets the "titles_selected" field.
func (m *PipelineRunMutation) SetTitlesSelected(i int) {
	m.titles_selected = &i
	m.addtitles_selected = nil
}

// TitlesSelected returns the value of the "titles_selected" field in the mutation.
func (m *PipelineRunMutation) TitlesSelected() (r int, exists bool) {
	v := m.titles_selected
	if v == nil {
		return
	}
	return *v, true
}

// OldTitlesSelected returns the old "titles_selected" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTitlesSelected(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitlesSelected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitlesSelected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitlesSelected: %w", err)
	}
	return oldValue.TitlesSelected, nil
}

// AddTitlesSelected adds i to the "titles_selected" field.
func (m *PipelineRunMutation) AddTitlesSelected(i int) {
	if m.addtitles_selected != nil {
		*m.addtitles_selected += i
	} else {
		m.addtitles_selected = &i
	}
}

// AddedTitlesSelected returns the value that was added to the "titles_selected" field in this mutation.
func (m *PipelineRunMutation) AddedTitlesSelected() (r int, exists bool) {
	v := m.addtitles_selected
	if v == nil {
		return
	}
	return *v, true
}

// ResetTitlesSelected resets all changes to the "titles_selected" field.
func (m *PipelineRunMutation) ResetTitlesSelected() {
	m.titles_selected = nil
	m.addtitles_selected = nil
}

// SetShardsTotal sets the "shards_total" field.
func (m *PipelineRunMutation) SetShardsTotal(i int) {
	m.shards_total = &i
	m.addshards_total = nil
}

// ShardsTotal returns the value of the "shards_total" field in the mutation.
func (m *PipelineRunMutation) ShardsTotal() (r int, exists bool) {
	v := m.shards_total
	if v == nil {
		return
	}
	return *v, true
}

// OldShardsTotal returns the old "shards_total" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldShardsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShardsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShardsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShardsTotal: %w", err)
	}
	return oldValue.ShardsTotal, nil
}

// AddShardsTotal adds i to the "shards_total" field.
func (m *PipelineRunMutation) AddShardsTotal(i int) {
	if m.addshards_total != nil {
		*m.addshards_total += i
	} else {
		m.addshards_total = &i
	}
}

// AddedShardsTotal returns the value that was added to the "shards_total" field in this mutation.
func (m *PipelineRunMutation) AddedShardsTotal() (r int, exists bool) {
	v := m.addshards_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetShardsTotal resets all changes to the "shards_total" field.
func (m *PipelineRunMutation) ResetShardsTotal() {
	m.shards_total = nil
	m.addshards_total = nil
}

// SetShardsFailed sets the "shards_failed" field.
func (m *PipelineRunMutation) SetShardsFailed(i int) {
	m.shards_failed = &i
	m.addshards_failed = nil
}

// ShardsFailed returns the value of the "shards_failed" field in the mutation.
func (m *PipelineRunMutation) ShardsFailed() (r int, exists bool) {
	v := m.shards_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldShardsFailed returns the old "shards_failed" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldShardsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShardsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShardsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShardsFailed: %w", err)
	}
	return oldValue.ShardsFailed, nil
}

// AddShardsFailed adds i to the "shards_failed" field.
func (m *PipelineRunMutation) AddShardsFailed(i int) {
	if m.addshards_failed != nil {
		*m.addshards_failed += i
	} else {
		m.addshards_failed = &i
	}
}

// AddedShardsFailed returns the value that was added to the "shards_failed" field in this mutation.
func (m *PipelineRunMutation) AddedShardsFailed() (r int, exists bool) {
	v := m.addshards_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetShardsFailed resets all changes to the "shards_failed" field.
func (m *PipelineRunMutation) ResetShardsFailed() {
	m.shards_failed = nil
	m.addshards_failed = nil
}

// SetIncidentsMapped sets the "incidents_mapped" field.
func (m *PipelineRunMutation) SetIncidentsMapped(i int) {
	m.incidents_mapped = &i
	m.addincidents_mapped = nil
}

// IncidentsMapped returns the value of the "incidents_mapped" field in the mutation.
func (m *PipelineRunMutation) IncidentsMapped() (r int, exists bool) {
	v := m.incidents_mapped
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentsMapped returns the old "incidents_mapped" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldIncidentsMapped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentsMapped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentsMapped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentsMapped: %w", err)
	}
	return oldValue.IncidentsMapped, nil
}

// AddIncidentsMapped adds i to the "incidents_mapped" field.
func (m *PipelineRunMutation) AddIncidentsMapped(i int) {
	if m.addincidents_mapped != nil {
		*m.addincidents_mapped += i
	} else {
		m.addincidents_mapped = &i
	}
}

// AddedIncidentsMapped returns the value that was added to the "incidents_mapped" field in this mutation.
func (m *PipelineRunMutation) AddedIncidentsMapped() (r int, exists bool) {
	v := m.addincidents_mapped
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncidentsMapped resets all changes to the "incidents_mapped" field.
func (m *PipelineRunMutation) ResetIncidentsMapped() {
	m.incidents_mapped = nil
	m.addincidents_mapped = nil
}

// SetOrphansMapped sets the "orphans_mapped" field.
func (m *PipelineRunMutation) SetOrphansMapped(i int) {
	m.orphans_mapped = &i
	m.addorphans_mapped = nil
}

// OrphansMapped returns the value of the "orphans_mapped" field in the mutation.
func (m *PipelineRunMutation) OrphansMapped() (r int, exists bool) {
	v := m.orphans_mapped
	if v == nil {
		return
	}
	return *v, true
}

// OldOrphansMapped returns the old "orphans_mapped" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldOrphansMapped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrphansMapped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrphansMapped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrphansMapped: %w", err)
	}
	return oldValue.OrphansMapped, nil
}

// AddOrphansMapped adds i to the "orphans_mapped" field.
func (m *PipelineRunMutation) AddOrphansMapped(i int) {
	if m.addorphans_mapped != nil {
		*m.addorphans_mapped += i
	} else {
		m.addorphans_mapped = &i
	}
}

// AddedOrphansMapped returns the value that was added to the "orphans_mapped" field in this mutation.
func (m *PipelineRunMutation) AddedOrphansMapped() (r int, exists bool) {
	v := m.addorphans_mapped
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrphansMapped resets all changes to the "orphans_mapped" field.
func (m *PipelineRunMutation) ResetOrphansMapped() {
	m.orphans_mapped = nil
	m.addorphans_mapped = nil
}

// SetCandidatesReduced sets the "candidates_reduced" field.
func (m *PipelineRunMutation) SetCandidatesReduced(i int) {
	m.candidates_reduced = &i
	m.addcandidates_reduced = nil
}

// CandidatesReduced returns the value of the "candidates_reduced" field in the mutation.
func (m *PipelineRunMutation) CandidatesReduced() (r int, exists bool) {
	v := m.candidates_reduced
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidatesReduced returns the old "candidates_reduced" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCandidatesReduced(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidatesReduced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidatesReduced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidatesReduced: %w", err)
	}
	return oldValue.CandidatesReduced, nil
}

// AddCandidatesReduced adds i to the "candidates_reduced" field.
func (m *PipelineRunMutation) AddCandidatesReduced(i int) {
	if m.addcandidates_reduced != nil {
		*m.addcandidates_reduced += i
	} else {
		m.addcandidates_reduced = &i
	}
}

// AddedCandidatesReduced returns the value that was added to the "candidates_reduced" field in this mutation.
func (m *PipelineRunMutation) AddedCandidatesReduced() (r int, exists bool) {
	v := m.addcandidates_reduced
	if v == nil {
		return
	}
	return *v, true
}

// ResetCandidatesReduced resets all changes to the "candidates_reduced" field.
func (m *PipelineRunMutation) ResetCandidatesReduced() {
	m.candidates_reduced = nil
	m.addcandidates_reduced = nil
}

// SetReduceDrops sets the "reduce_drops" field.
func (m *PipelineRunMutation) SetReduceDrops(i int) {
	m.reduce_drops = &i
	m.addreduce_drops = nil
}

// ReduceDrops returns the value of the "reduce_drops" field in the mutation.
func (m *PipelineRunMutation) ReduceDrops() (r int, exists bool) {
	v := m.reduce_drops
	if v == nil {
		return
	}
	return *v, true
}

// OldReduceDrops returns the old "reduce_drops" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldReduceDrops(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReduceDrops is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReduceDrops requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReduceDrops: %w", err)
	}
	return oldValue.ReduceDrops, nil
}

// AddReduceDrops adds i to the "reduce_drops" field.
func (m *PipelineRunMutation) AddReduceDrops(i int) {
	if m.addreduce_drops != nil {
		*m.addreduce_drops += i
	} else {
		m.addreduce_drops = &i
	}
}

// AddedReduceDrops returns the value that was added to the "reduce_drops" field in this mutation.
func (m *PipelineRunMutation) AddedReduceDrops() (r int, exists bool) {
	v := m.addreduce_drops
	if v == nil {
		return
	}
	return *v, true
}

// ResetReduceDrops resets all changes to the "reduce_drops" field.
func (m *PipelineRunMutation) ResetReduceDrops() {
	m.reduce_drops = nil
	m.addreduce_drops = nil
}

// SetEfsCreated sets the "efs_created" field.
func (m *PipelineRunMutation) SetEfsCreated(i int) {
	m.efs_created = &i
	m.addefs_created = nil
}

// EfsCreated returns the value of the "efs_created" field in the mutation.
func (m *PipelineRunMutation) EfsCreated() (r int, exists bool) {
	v := m.efs_created
	if v == nil {
		return
	}
	return *v, true
}

// OldEfsCreated returns the old "efs_created" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEfsCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfsCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfsCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfsCreated: %w", err)
	}
	return oldValue.EfsCreated, nil
}

// AddEfsCreated adds i to the "efs_created" field.
func (m *PipelineRunMutation) AddEfsCreated(i int) {
	if m.addefs_created != nil {
		*m.addefs_created += i
	} else {
		m.addefs_created = &i
	}
}

// AddedEfsCreated returns the value that was added to the "efs_created" field in this mutation.
func (m *PipelineRunMutation) AddedEfsCreated() (r int, exists bool) {
	v := m.addefs_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetEfsCreated resets all changes to the "efs_created" field.
func (m *PipelineRunMutation) ResetEfsCreated() {
	m.efs_created = nil
	m.addefs_created = nil
}

// SetEfsUpdated sets the "efs_updated" field.
func (m *PipelineRunMutation) SetEfsUpdated(i int) {
	m.efs_updated = &i
	m.addefs_updated = nil
}

// EfsUpdated returns the value of the "efs_updated" field in the mutation.
func (m *PipelineRunMutation) EfsUpdated() (r int, exists bool) {
	v := m.efs_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldEfsUpdated returns the old "efs_updated" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEfsUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfsUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfsUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfsUpdated: %w", err)
	}
	return oldValue.EfsUpdated, nil
}

// AddEfsUpdated adds i to the "efs_updated" field.
func (m *PipelineRunMutation) AddEfsUpdated(i int) {
	if m.addefs_updated != nil {
		*m.addefs_updated += i
	} else {
		m.addefs_updated = &i
	}
}

// AddedEfsUpdated returns the value that was added to the "efs_updated" field in this mutation.
func (m *PipelineRunMutation) AddedEfsUpdated() (r int, exists bool) {
	v := m.addefs_updated
	if v == nil {
		return
	}
	return *v, true
}

// ResetEfsUpdated resets all changes to the "efs_updated" field.
func (m *PipelineRunMutation) ResetEfsUpdated() {
	m.efs_updated = nil
	m.addefs_updated = nil
}

// SetTitlesAssigned sets the "titles_assigned" field.
func (m *PipelineRunMutation) SetTitlesAssigned(i int) {
	m.titles_assigned = &i
	m.addtitles_assigned = nil
}

// TitlesAssigned returns the value of the "titles_assigned" field in the mutation.
func (m *PipelineRunMutation) TitlesAssigned() (r int, exists bool) {
	v := m.titles_assigned
	if v == nil {
		return
	}
	return *v, true
}

// OldTitlesAssigned returns the old "titles_assigned" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldTitlesAssigned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitlesAssigned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitlesAssigned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitlesAssigned: %w", err)
	}
	return oldValue.TitlesAssigned, nil
}

// AddTitlesAssigned adds i to the "titles_assigned" field.
func (m *PipelineRunMutation) AddTitlesAssigned(i int) {
	if m.addtitles_assigned != nil {
		*m.addtitles_assigned += i
	} else {
		m.addtitles_assigned = &i
	}
}

// AddedTitlesAssigned returns the value that was added to the "titles_assigned" field in this mutation.
func (m *PipelineRunMutation) AddedTitlesAssigned() (r int, exists bool) {
	v := m.addtitles_assigned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTitlesAssigned resets all changes to the "titles_assigned" field.
func (m *PipelineRunMutation) ResetTitlesAssigned() {
	m.titles_assigned = nil
	m.addtitles_assigned = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *PipelineRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *PipelineRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *PipelineRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[pipelinerun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *PipelineRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *PipelineRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, pipelinerun.FieldLastHeartbeatAt)
}

// AddMergeEventIDs adds the "merge_events" edge to the MergeEvent entity by ids.
func (m *PipelineRunMutation) AddMergeEventIDs(ids ...string) {
	if m.merge_events == nil {
		m.merge_events = make(map[string]struct{})
	}
	for i := range ids {
		m.merge_events[ids[i]] = struct{}{}
	}
}

// ClearMergeEvents clears the "merge_events" edge to the MergeEvent entity.
func (m *PipelineRunMutation) ClearMergeEvents() {
	m.clearedmerge_events = true
}

// MergeEventsCleared reports if the "merge_events" edge to the MergeEvent entity was cleared.
func (m *PipelineRunMutation) MergeEventsCleared() bool {
	return m.clearedmerge_events
}

// RemoveMergeEventIDs removes the "merge_events" edge to the MergeEvent entity by IDs.
func (m *PipelineRunMutation) RemoveMergeEventIDs(ids ...string) {
	if m.removedmerge_events == nil {
		m.removedmerge_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.merge_events, ids[i])
		m.removedmerge_events[ids[i]] = struct{}{}
	}
}

// RemovedMergeEvents returns the removed IDs of the "merge_events" edge to the MergeEvent entity.
func (m *PipelineRunMutation) RemovedMergeEventsIDs() (ids []string) {
	for id := range m.removedmerge_events {
		ids = append(ids, id)
	}
	return
}

// MergeEventsIDs returns the "merge_events" edge IDs in the mutation.
func (m *PipelineRunMutation) MergeEventsIDs() (ids []string) {
	for id := range m.merge_events {
		ids = append(ids, id)
	}
	return
}

// ResetMergeEvents resets all changes to the "merge_events" edge.
func (m *PipelineRunMutation) ResetMergeEvents() {
	m.merge_events = nil
	m.clearedmerge_events = false
	m.removedmerge_events = nil
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.trigger != nil {
		fields = append(fields, pipelinerun.FieldTrigger)
	}
	if m.pod_id != nil {
		fields = append(fields, pipelinerun.FieldPodID)
	}
	if m.error_category != nil {
		fields = append(fields, pipelinerun.FieldErrorCategory)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.titles_selected != nil {
		fields = append(fields, pipelinerun.FieldTitlesSelected)
	}
	if m.shards_total != nil {
		fields = append(fields, pipelinerun.FieldShardsTotal)
	}
	if m.shards_failed != nil {
		fields = append(fields, pipelinerun.FieldShardsFailed)
	}
	if m.incidents_mapped != nil {
		fields = append(fields, pipelinerun.FieldIncidentsMapped)
	}
	if m.orphans_mapped != nil {
		fields = append(fields, pipelinerun.FieldOrphansMapped)
	}
	if m.candidates_reduced != nil {
		fields = append(fields, pipelinerun.FieldCandidatesReduced)
	}
	if m.reduce_drops != nil {
		fields = append(fields, pipelinerun.FieldReduceDrops)
	}
	if m.efs_created != nil {
		fields = append(fields, pipelinerun.FieldEfsCreated)
	}
	if m.efs_updated != nil {
		fields = append(fields, pipelinerun.FieldEfsUpdated)
	}
	if m.titles_assigned != nil {
		fields = append(fields, pipelinerun.FieldTitlesAssigned)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, pipelinerun.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldTrigger:
		return m.Trigger()
	case pipelinerun.FieldPodID:
		return m.PodID()
	case pipelinerun.FieldErrorCategory:
		return m.ErrorCategory()
	case pipelinerun.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinerun.FieldTitlesSelected:
		return m.TitlesSelected()
	case pipelinerun.FieldShardsTotal:
		return m.ShardsTotal()
	case pipelinerun.FieldShardsFailed:
		return m.ShardsFailed()
	case pipelinerun.FieldIncidentsMapped:
		return m.IncidentsMapped()
	case pipelinerun.FieldOrphansMapped:
		return m.OrphansMapped()
	case pipelinerun.FieldCandidatesReduced:
		return m.CandidatesReduced()
	case pipelinerun.FieldReduceDrops:
		return m.ReduceDrops()
	case pipelinerun.FieldEfsCreated:
		return m.EfsCreated()
	case pipelinerun.FieldEfsUpdated:
		return m.EfsUpdated()
	case pipelinerun.FieldTitlesAssigned:
		return m.TitlesAssigned()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	case pipelinerun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldTrigger:
		return m.OldTrigger(ctx)
	case pipelinerun.FieldPodID:
		return m.OldPodID(ctx)
	case pipelinerun.FieldErrorCategory:
		return m.OldErrorCategory(ctx)
	case pipelinerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinerun.FieldTitlesSelected:
		return m.OldTitlesSelected(ctx)
	case pipelinerun.FieldShardsTotal:
		return m.OldShardsTotal(ctx)
	case pipelinerun.FieldShardsFailed:
		return m.OldShardsFailed(ctx)
	case pipelinerun.FieldIncidentsMapped:
		return m.OldIncidentsMapped(ctx)
	case pipelinerun.FieldOrphansMapped:
		return m.OldOrphansMapped(ctx)
	case pipelinerun.FieldCandidatesReduced:
		return m.OldCandidatesReduced(ctx)
	case pipelinerun.FieldReduceDrops:
		return m.OldReduceDrops(ctx)
	case pipelinerun.FieldEfsCreated:
		return m.OldEfsCreated(ctx)
	case pipelinerun.FieldEfsUpdated:
		return m.OldEfsUpdated(ctx)
	case pipelinerun.FieldTitlesAssigned:
		return m.OldTitlesAssigned(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case pipelinerun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldTrigger:
		v, ok := value.(pipelinerun.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case pipelinerun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case pipelinerun.FieldErrorCategory:
		v, ok := value.(pipelinerun.ErrorCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCategory(v)
		return nil
	case pipelinerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinerun.FieldTitlesSelected:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitlesSelected(v)
		return nil
	case pipelinerun.FieldShardsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShardsTotal(v)
		return nil
	case pipelinerun.FieldShardsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShardsFailed(v)
		return nil
	case pipelinerun.FieldIncidentsMapped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentsMapped(v)
		return nil
	case pipelinerun.FieldOrphansMapped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrphansMapped(v)
		return nil
	case pipelinerun.FieldCandidatesReduced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidatesReduced(v)
		return nil
	case pipelinerun.FieldReduceDrops:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReduceDrops(v)
		return nil
	case pipelinerun.FieldEfsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfsCreated(v)
		return nil
	case pipelinerun.FieldEfsUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfsUpdated(v)
		return nil
	case pipelinerun.FieldTitlesAssigned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitlesAssigned(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case pipelinerun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addtitles_selected != nil {
		fields = append(fields, pipelinerun.FieldTitlesSelected)
	}
	if m.addshards_total != nil {
		fields = append(fields, pipelinerun.FieldShardsTotal)
	}
	if m.addshards_failed != nil {
		fields = append(fields, pipelinerun.FieldShardsFailed)
	}
	if m.addincidents_mapped != nil {
		fields = append(fields, pipelinerun.FieldIncidentsMapped)
	}
	if m.addorphans_mapped != nil {
		fields = append(fields, pipelinerun.FieldOrphansMapped)
	}
	if m.addcandidates_reduced != nil {
		fields = append(fields, pipelinerun.FieldCandidatesReduced)
	}
	if m.addreduce_drops != nil {
		fields = append(fields, pipelinerun.FieldReduceDrops)
	}
	if m.addefs_created != nil {
		fields = append(fields, pipelinerun.FieldEfsCreated)
	}
	if m.addefs_updated != nil {
		fields = append(fields, pipelinerun.FieldEfsUpdated)
	}
	if m.addtitles_assigned != nil {
		fields = append(fields, pipelinerun.FieldTitlesAssigned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldTitlesSelected:
		return m.AddedTitlesSelected()
	case pipelinerun.FieldShardsTotal:
		return m.AddedShardsTotal()
	case pipelinerun.FieldShardsFailed:
		return m.AddedShardsFailed()
	case pipelinerun.FieldIncidentsMapped:
		return m.AddedIncidentsMapped()
	case pipelinerun.FieldOrphansMapped:
		return m.AddedOrphansMapped()
	case pipelinerun.FieldCandidatesReduced:
		return m.AddedCandidatesReduced()
	case pipelinerun.FieldReduceDrops:
		return m.AddedReduceDrops()
	case pipelinerun.FieldEfsCreated:
		return m.AddedEfsCreated()
	case pipelinerun.FieldEfsUpdated:
		return m.AddedEfsUpdated()
	case pipelinerun.FieldTitlesAssigned:
		return m.AddedTitlesAssigned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldTitlesSelected:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTitlesSelected(v)
		return nil
	case pipelinerun.FieldShardsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShardsTotal(v)
		return nil
	case pipelinerun.FieldShardsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShardsFailed(v)
		return nil
	case pipelinerun.FieldIncidentsMapped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncidentsMapped(v)
		return nil
	case pipelinerun.FieldOrphansMapped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrphansMapped(v)
		return nil
	case pipelinerun.FieldCandidatesReduced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCandidatesReduced(v)
		return nil
	case pipelinerun.FieldReduceDrops:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReduceDrops(v)
		return nil
	case pipelinerun.FieldEfsCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEfsCreated(v)
		return nil
	case pipelinerun.FieldEfsUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEfsUpdated(v)
		return nil
	case pipelinerun.FieldTitlesAssigned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTitlesAssigned(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldPodID) {
		fields = append(fields, pipelinerun.FieldPodID)
	}
	if m.FieldCleared(pipelinerun.FieldErrorCategory) {
		fields = append(fields, pipelinerun.FieldErrorCategory)
	}
	if m.FieldCleared(pipelinerun.FieldErrorMessage) {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	if m.FieldCleared(pipelinerun.FieldLastHeartbeatAt) {
		fields = append(fields, pipelinerun.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldPodID:
		m.ClearPodID()
		return nil
	case pipelinerun.FieldErrorCategory:
		m.ClearErrorCategory()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case pipelinerun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldTrigger:
		m.ResetTrigger()
		return nil
	case pipelinerun.FieldPodID:
		m.ResetPodID()
		return nil
	case pipelinerun.FieldErrorCategory:
		m.ResetErrorCategory()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinerun.FieldTitlesSelected:
		m.ResetTitlesSelected()
		return nil
	case pipelinerun.FieldShardsTotal:
		m.ResetShardsTotal()
		return nil
	case pipelinerun.FieldShardsFailed:
		m.ResetShardsFailed()
		return nil
	case pipelinerun.FieldIncidentsMapped:
		m.ResetIncidentsMapped()
		return nil
	case pipelinerun.FieldOrphansMapped:
		m.ResetOrphansMapped()
		return nil
	case pipelinerun.FieldCandidatesReduced:
		m.ResetCandidatesReduced()
		return nil
	case pipelinerun.FieldReduceDrops:
		m.ResetReduceDrops()
		return nil
	case pipelinerun.FieldEfsCreated:
		m.ResetEfsCreated()
		return nil
	case pipelinerun.FieldEfsUpdated:
		m.ResetEfsUpdated()
		return nil
	case pipelinerun.FieldTitlesAssigned:
		m.ResetTitlesAssigned()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case pipelinerun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.merge_events != nil {
		edges = append(edges, pipelinerun.EdgeMergeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeMergeEvents:
		ids := make([]ent.Value, 0, len(m.merge_events))
		for id := range m.merge_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmerge_events != nil {
		edges = append(edges, pipelinerun.EdgeMergeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeMergeEvents:
		ids := make([]ent.Value, 0, len(m.removedmerge_events))
		for id := range m.removedmerge_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmerge_events {
		edges = append(edges, pipelinerun.EdgeMergeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeMergeEvents:
		return m.clearedmerge_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeMergeEvents:
		m.ResetMergeEvents()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// TitleMutation represents an operation that mutates the Title nodes in the graph.
type TitleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	url_hash            *string
	title_text          *string
	lang                *string
	source_name         *string
	published_at        *time.Time
	detected_at         *time.Time
	gate_keep           *bool
	gate_score          *float64
	addgate_score       *float64
	gate_actors         *[]string
	appendgate_actors   []string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	event_family        *string
	clearedevent_family bool
	done                bool
	oldValue            func(context.Context) (*Title, error)
	predicates          []predicate.Title
}

var _ ent.Mutation = (*TitleMutation)(nil)

// titleOption allows management of the mutation configuration using functional options.
type titleOption func(*TitleMutation)

// newTitleMutation creates new mutation for the Title entity.
func newTitleMutation(c config, op Op, opts ...titleOption) *TitleMutation {
	m := &TitleMutation{
		config:        c,
		op:            op,
		typ:           TypeTitle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTitleID sets the ID field of the mutation.
func withTitleID(id string) titleOption {
	return func(m *TitleMutation) {
		var (
			err   error
			once  sync.Once
			value *Title
		)
		m.oldValue = func(ctx context.Context) (*Title, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Title.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTitle sets the old Title of the mutation.
func withTitle(node *Title) titleOption {
	return func(m *TitleMutation) {
		m.oldValue = func(context.Context) (*Title, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TitleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TitleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Title entities.
func (m *TitleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TitleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TitleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Title.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURLHash sets the "url_hash" field.
func (m *TitleMutation) SetURLHash(s string) {
	m.url_hash = &s
}

// URLHash returns the value of the "url_hash" field in the mutation.
func (m *TitleMutation) URLHash() (r string, exists bool) {
	v := m.url_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldURLHash returns the old "url_hash" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldURLHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLHash: %w", err)
	}
	return oldValue.URLHash, nil
}

// ResetURLHash resets all changes to the "url_hash" field.
func (m *TitleMutation) ResetURLHash() {
	m.url_hash = nil
}

// SetTitleText sets the "title_text" field.
func (m *TitleMutation) SetTitleText(s string) {
	m.title_text = &s
}

// TitleText returns the value of the "title_text" field in the mutation.
func (m *TitleMutation) TitleText() (r string, exists bool) {
	v := m.title_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleText returns the old "title_text" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldTitleText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleText: %w", err)
	}
	return oldValue.TitleText, nil
}

// ResetTitleText resets all changes to the "title_text" field.
func (m *TitleMutation) ResetTitleText() {
	m.title_text = nil
}

// SetLang sets the "lang" field.
func (m *TitleMutation) SetLang(s string) {
	m.lang = &s
}

// Lang returns the value of the "lang" field in the mutation.
func (m *TitleMutation) Lang() (r string, exists bool) {
	v := m.lang
	if v == nil {
		return
	}
	return *v, true
}

// OldLang returns the old "lang" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLang: %w", err)
	}
	return oldValue.Lang, nil
}

// ResetLang resets all changes to the "lang" field.
func (m *TitleMutation) ResetLang() {
	m.lang = nil
}

// SetSourceName sets the "source_name" field.
func (m *TitleMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *TitleMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *TitleMutation) ResetSourceName() {
	m.source_name = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *TitleMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *TitleMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *TitleMutation) ResetPublishedAt() {
	m.published_at = nil
}

// SetDetectedAt sets the "detected_at" field.
func (m *TitleMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *TitleMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *TitleMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// SetGateKeep sets the "gate_keep" field.
func (m *TitleMutation) SetGateKeep(b bool) {
	m.gate_keep = &b
}

// GateKeep returns the value of the "gate_keep" field in the mutation.
func (m *TitleMutation) GateKeep() (r bool, exists bool) {
	v := m.gate_keep
	if v == nil {
		return
	}
	return *v, true
}

// OldGateKeep returns the old "gate_keep" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldGateKeep(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateKeep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateKeep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateKeep: %w", err)
	}
	return oldValue.GateKeep, nil
}

// ResetGateKeep resets all changes to the "gate_keep" field.
func (m *TitleMutation) ResetGateKeep() {
	m.gate_keep = nil
}

// SetGateScore sets the "gate_score" field.
func (m *TitleMutation) SetGateScore(f float64) {
	m.gate_score = &f
	m.addgate_score = nil
}

// GateScore returns the value of the "gate_score" field in the mutation.
func (m *TitleMutation) GateScore() (r float64, exists bool) {
	v := m.gate_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGateScore returns the old "gate_score" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldGateScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateScore: %w", err)
	}
	return oldValue.GateScore, nil
}

// AddGateScore adds f to the "gate_score" field.
func (m *TitleMutation) AddGateScore(f float64) {
	if m.addgate_score != nil {
		*m.addgate_score += f
	} else {
		m.addgate_score = &f
	}
}

// AddedGateScore returns the value that was added to the "gate_score" field in this mutation.
func (m *TitleMutation) AddedGateScore() (r float64, exists bool) {
	v := m.addgate_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearGateScore clears the value of the "gate_score" field.
func (m *TitleMutation) ClearGateScore() {
	m.gate_score = nil
	m.addgate_score = nil
	m.clearedFields[title.FieldGateScore] = struct{}{}
}

// GateScoreCleared returns if the "gate_score" field was cleared in this mutation.
func (m *TitleMutation) GateScoreCleared() bool {
	_, ok := m.clearedFields[title.FieldGateScore]
	return ok
}

// ResetGateScore resets all changes to the "gate_score" field.
func (m *TitleMutation) ResetGateScore() {
	m.gate_score = nil
	m.addgate_score = nil
	delete(m.clearedFields, title.FieldGateScore)
}

// SetGateActors sets the "gate_actors" field.
func (m *TitleMutation) SetGateActors(s []string) {
	m.gate_actors = &s
	m.appendgate_actors = nil
}

// GateActors returns the value of the "gate_actors" field in the mutation.
func (m *TitleMutation) GateActors() (r []string, exists bool) {
	v := m.gate_actors
	if v == nil {
		return
	}
	return *v, true
}

// OldGateActors returns the old "gate_actors" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldGateActors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateActors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateActors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateActors: %w", err)
	}
	return oldValue.GateActors, nil
}

// AppendGateActors adds s to the "gate_actors" field.
func (m *TitleMutation) AppendGateActors(s []string) {
	m.appendgate_actors = append(m.appendgate_actors, s...)
}

// AppendedGateActors returns the list of values that were appended to the "gate_actors" field in this mutation.
func (m *TitleMutation) AppendedGateActors() ([]string, bool) {
	if len(m.appendgate_actors) == 0 {
		return nil, false
	}
	return m.appendgate_actors, true
}

// ClearGateActors clears the value of the "gate_actors" field.
func (m *TitleMutation) ClearGateActors() {
	m.gate_actors = nil
	m.appendgate_actors = nil
	m.clearedFields[title.FieldGateActors] = struct{}{}
}

// GateActorsCleared returns if the "gate_actors" field was cleared in this mutation.
func (m *TitleMutation) GateActorsCleared() bool {
	_, ok := m.clearedFields[title.FieldGateActors]
	return ok
}

// ResetGateActors resets all changes to the "gate_actors" field.
func (m *TitleMutation) ResetGateActors() {
	m.gate_actors = nil
	m.appendgate_actors = nil
	delete(m.clearedFields, title.FieldGateActors)
}

// SetEventFamilyID sets the "event_family_id" field.
func (m *TitleMutation) SetEventFamilyID(s string) {
	m.event_family = &s
}

// EventFamilyID returns the value of the "event_family_id" field in the mutation.
func (m *TitleMutation) EventFamilyID() (r string, exists bool) {
	v := m.event_family
	if v == nil {
		return
	}
	return *v, true
}

// OldEventFamilyID returns the old "event_family_id" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldEventFamilyID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventFamilyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventFamilyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventFamilyID: %w", err)
	}
	return oldValue.EventFamilyID, nil
}

// ClearEventFamilyID clears the value of the "event_family_id" field.
func (m *TitleMutation) ClearEventFamilyID() {
	m.event_family = nil
	m.clearedFields[title.FieldEventFamilyID] = struct{}{}
}

// EventFamilyIDCleared returns if the "event_family_id" field was cleared in this mutation.
func (m *TitleMutation) EventFamilyIDCleared() bool {
	_, ok := m.clearedFields[title.FieldEventFamilyID]
	return ok
}

// ResetEventFamilyID resets all changes to the "event_family_id" field.
func (m *TitleMutation) ResetEventFamilyID() {
	m.event_family = nil
	delete(m.clearedFields, title.FieldEventFamilyID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TitleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TitleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Title entity.
// If the Title object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TitleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TitleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEventFamily clears the "event_family" edge to the EventFamily entity.
func (m *TitleMutation) ClearEventFamily() {
	m.clearedevent_family = true
	m.clearedFields[title.FieldEventFamilyID] = struct{}{}
}

// EventFamilyCleared reports if the "event_family" edge to the EventFamily entity was cleared.
func (m *TitleMutation) EventFamilyCleared() bool {
	return m.EventFamilyIDCleared() || m.clearedevent_family
}

// EventFamilyIDs returns the "event_family" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventFamilyID instead. It exists only for internal usage by the builders.
func (m *TitleMutation) EventFamilyIDs() (ids []string) {
	if id := m.event_family; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEventFamily resets all changes to the "event_family" edge.
func (m *TitleMutation) ResetEventFamily() {
	m.event_family = nil
	m.clearedevent_family = false
}

// Where appends a list predicates to the TitleMutation builder.
func (m *TitleMutation) Where(ps ...predicate.Title) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TitleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TitleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Title, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TitleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TitleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Title).
func (m *TitleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TitleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.url_hash != nil {
		fields = append(fields, title.FieldURLHash)
	}
	if m.title_text != nil {
		fields = append(fields, title.FieldTitleText)
	}
	if m.lang != nil {
		fields = append(fields, title.FieldLang)
	}
	if m.source_name != nil {
		fields = append(fields, title.FieldSourceName)
	}
	if m.published_at != nil {
		fields = append(fields, title.FieldPublishedAt)
	}
	if m.detected_at != nil {
		fields = append(fields, title.FieldDetectedAt)
	}
	if m.gate_keep != nil {
		fields = append(fields, title.FieldGateKeep)
	}
	if m.gate_score != nil {
		fields = append(fields, title.FieldGateScore)
	}
	if m.gate_actors != nil {
		fields = append(fields, title.FieldGateActors)
	}
	if m.event_family != nil {
		fields = append(fields, title.FieldEventFamilyID)
	}
	if m.created_at != nil {
		fields = append(fields, title.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TitleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case title.FieldURLHash:
		return m.URLHash()
	case title.FieldTitleText:
		return m.TitleText()
	case title.FieldLang:
		return m.Lang()
	case title.FieldSourceName:
		return m.SourceName()
	case title.FieldPublishedAt:
		return m.PublishedAt()
	case title.FieldDetectedAt:
		return m.DetectedAt()
	case title.FieldGateKeep:
		return m.GateKeep()
	case title.FieldGateScore:
		return m.GateScore()
	case title.FieldGateActors:
		return m.GateActors()
	case title.FieldEventFamilyID:
		return m.EventFamilyID()
	case title.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TitleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case title.FieldURLHash:
		return m.OldURLHash(ctx)
	case title.FieldTitleText:
		return m.OldTitleText(ctx)
	case title.FieldLang:
		return m.OldLang(ctx)
	case title.FieldSourceName:
		return m.OldSourceName(ctx)
	case title.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case title.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	case title.FieldGateKeep:
		return m.OldGateKeep(ctx)
	case title.FieldGateScore:
		return m.OldGateScore(ctx)
	case title.FieldGateActors:
		return m.OldGateActors(ctx)
	case title.FieldEventFamilyID:
		return m.OldEventFamilyID(ctx)
	case title.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Title field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TitleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case title.FieldURLHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLHash(v)
		return nil
	case title.FieldTitleText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleText(v)
		return nil
	case title.FieldLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLang(v)
		return nil
	case title.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case title.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case title.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	case title.FieldGateKeep:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateKeep(v)
		return nil
	case title.FieldGateScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateScore(v)
		return nil
	case title.FieldGateActors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateActors(v)
		return nil
	case title.FieldEventFamilyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventFamilyID(v)
		return nil
	case title.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Title field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TitleMutation) AddedFields() []string {
	var fields []string
	if m.addgate_score != nil {
		fields = append(fields, title.FieldGateScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TitleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case title.FieldGateScore:
		return m.AddedGateScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TitleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case title.FieldGateScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGateScore(v)
		return nil
	}
	return fmt.Errorf("unknown Title numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TitleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(title.FieldGateScore) {
		fields = append(fields, title.FieldGateScore)
	}
	if m.FieldCleared(title.FieldGateActors) {
		fields = append(fields, title.FieldGateActors)
	}
	if m.FieldCleared(title.FieldEventFamilyID) {
		fields = append(fields, title.FieldEventFamilyID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TitleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TitleMutation) ClearField(name string) error {
	switch name {
	case title.FieldGateScore:
		m.ClearGateScore()
		return nil
	case title.FieldGateActors:
		m.ClearGateActors()
		return nil
	case title.FieldEventFamilyID:
		m.ClearEventFamilyID()
		return nil
	}
	return fmt.Errorf("unknown Title nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TitleMutation) ResetField(name string) error {
	switch name {
	case title.FieldURLHash:
		m.ResetURLHash()
		return nil
	case title.FieldTitleText:
		m.ResetTitleText()
		return nil
	case title.FieldLang:
		m.ResetLang()
		return nil
	case title.FieldSourceName:
		m.ResetSourceName()
		return nil
	case title.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case title.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	case title.FieldGateKeep:
		m.ResetGateKeep()
		return nil
	case title.FieldGateScore:
		m.ResetGateScore()
		return nil
	case title.FieldGateActors:
		m.ResetGateActors()
		return nil
	case title.FieldEventFamilyID:
		m.ResetEventFamilyID()
		return nil
	case title.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Title field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TitleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.event_family != nil {
		edges = append(edges, title.EdgeEventFamily)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TitleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case title.EdgeEventFamily:
		if id := m.event_family; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TitleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TitleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TitleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevent_family {
		edges = append(edges, title.EdgeEventFamily)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TitleMutation) EdgeCleared(name string) bool {
	switch name {
	case title.EdgeEventFamily:
		return m.clearedevent_family
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TitleMutation) ClearEdge(name string) error {
	switch name {
	case title.EdgeEventFamily:
		m.ClearEventFamily()
		return nil
	}
	return fmt.Errorf("unknown Title unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TitleMutation) ResetEdge(name string) error {
	switch name {
	case title.EdgeEventFamily:
		m.ResetEventFamily()
		return nil
	}
	return fmt.Errorf("unknown Title edge %s", name)
}
