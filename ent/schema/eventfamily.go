package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// EventFamily holds the schema definition for the EventFamily entity.
// An EF is the durable unit of grouping: an incident-centered cluster of
// titles identified by ef_key = SHA-256(theater|event_type). Active rows
// accept cross-batch merges; merged rows point at their survivor.
type EventFamily struct {
	ent.Schema
}

// Fields of the EventFamily.
func (EventFamily) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ef_id").
			Unique().
			Immutable(),
		field.String("ef_key").
			Comment("Hex SHA-256 of theater|event_type; uniqueness among active non-split rows is enforced by a partial index in pkg/database"),
		field.String("theater").
			Comment("Member of the configured theater vocabulary"),
		field.String("event_type").
			Comment("Member of the configured event type vocabulary"),
		field.Text("headline"),
		field.Text("summary"),
		field.JSON("actors", []string{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("timeline", []models.TimelineEntry{}).
			Optional().
			Comment("Ordered by (timestamp, description); deduplicated on the same pair"),
		field.Float("confidence").
			Comment("0..1, title-count-weighted across merges"),
		field.Int("title_count").
			Min(1),
		field.Bool("singleton_origin").
			Default(false).
			Comment("True while every absorbed source was a single-title incident"),
		field.JSON("lineage", []models.LineageEntry{}).
			Optional().
			Comment("One entry per run that merged sources into this EF, newest last"),
		field.Enum("status").
			Values("active", "merged").
			Default("active"),
		field.String("merged_into_id").
			Optional().
			Nillable().
			Comment("Survivor EF when status=merged; chains are single-hop at write time"),
		field.String("parent_ef_id").
			Optional().
			Nillable().
			Comment("Set when this EF was split out of a parent; siblings sharing a parent never re-merge"),
		field.Time("first_seen_at").
			Comment("Earliest published_at among member titles at creation"),
		field.Time("last_updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("created_by_run_id").
			Immutable(),
		field.String("updated_by_run_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventFamily.
func (EventFamily) Edges() []ent.Edge {
	return []ent.Edge{
		// Titles outlive their EF assignment, so no cascade here.
		edge.To("titles", Title.Type),
		edge.To("absorbed", EventFamily.Type).
			From("merged_into").
			Field("merged_into_id").
			Unique(),
		edge.To("merge_events", MergeEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the EventFamily.
func (EventFamily) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ef_key"),
		index.Fields("status", "ef_key"),
		index.Fields("status", "last_updated_at"),
		index.Fields("merged_into_id"),

		// Split lookups only ever filter on non-null parents
		index.Fields("parent_ef_id").
			Annotations(entsql.IndexWhere("parent_ef_id IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the partial unique index on ef_key (active, non-split rows) is
// created in pkg/database/migrations.go; ent cannot express it.
func (EventFamily) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
