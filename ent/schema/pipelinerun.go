package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity.
// One row per EF generation run; status tracks the phase state machine
// and the counters record what the run actually did.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values(
				"pending",
				"selecting",
				"mapping",
				"reducing",
				"merging",
				"persisting",
				"done",
				"aborted",
				"cancelled",
			).
			Default("pending"),
		field.Enum("trigger").
			Values("cli", "api", "scheduled").
			Default("cli"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Enum("error_category").
			Values("store", "llm", "config", "invariant", "canceled").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),

		// Counters
		field.Int("titles_selected").Default(0),
		field.Int("shards_total").Default(0),
		field.Int("shards_failed").Default(0),
		field.Int("incidents_mapped").Default(0),
		field.Int("orphans_mapped").Default(0),
		field.Int("candidates_reduced").Default(0),
		field.Int("reduce_drops").Default(0),
		field.Int("efs_created").Default(0),
		field.Int("efs_updated").Default(0),
		field.Int("titles_assigned").Default(0),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the run (transitioned from pending)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("merge_events", MergeEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}
