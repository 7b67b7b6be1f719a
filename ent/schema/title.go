package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Title holds the schema definition for the Title entity.
// Rows are written upstream by feed ingestion and the strategic gate;
// this service only reads gate-approved titles and sets event_family_id
// when an Event Family absorbs them.
type Title struct {
	ent.Schema
}

// Fields of the Title.
func (Title) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("title_id").
			Unique().
			Immutable(),
		field.String("url_hash").
			Unique().
			Immutable().
			Comment("Dedup key computed by ingestion"),
		field.Text("title_text").
			Comment("Original headline text in the source language"),
		field.String("lang").
			Comment("Language tag as detected upstream"),
		field.String("source_name"),
		field.Time("published_at"),
		field.Time("detected_at").
			Default(time.Now),
		field.Bool("gate_keep").
			Default(false).
			Comment("Strategic gate verdict; only kept titles are selectable"),
		field.Float("gate_score").
			Optional().
			Nillable(),
		field.JSON("gate_actors", []string{}).
			Optional().
			Comment("Normalized actor tokens extracted by the gate"),
		field.String("event_family_id").
			Optional().
			Nillable().
			Comment("NULL until a pipeline run assigns the title to an EF"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Title.
func (Title) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event_family", EventFamily.Type).
			Ref("titles").
			Field("event_family_id").
			Unique(),
	}
}

// Indexes of the Title.
func (Title) Indexes() []ent.Index {
	return []ent.Index{
		// Selector scan: unassigned kept titles, newest first
		index.Fields("gate_keep", "event_family_id", "published_at"),
		index.Fields("event_family_id"),
		index.Fields("published_at"),
	}
}
