package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MergeEvent holds the schema definition for the MergeEvent entity.
// Audit trail of the merge engine: one row per source folded into a
// survivor, written in the same transaction as the EF upsert.
type MergeEvent struct {
	ent.Schema
}

// Fields of the MergeEvent.
func (MergeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("merge_event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("survivor_ef_id").
			Immutable(),
		field.Enum("source_kind").
			Values("candidate", "stored").
			Immutable(),
		field.String("source_id").
			Immutable().
			Comment("Provisional candidate id or stored ef_id"),
		field.Int("source_title_count").
			Immutable(),
		field.Int("titles_added").
			Immutable().
			Comment("New titles the survivor gained; 0 means the source contributed timeline entries only"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MergeEvent.
func (MergeEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("merge_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("survivor", EventFamily.Type).
			Ref("merge_events").
			Field("survivor_ef_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MergeEvent.
func (MergeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("survivor_ef_id", "created_at"),
		index.Fields("run_id"),
	}
}
