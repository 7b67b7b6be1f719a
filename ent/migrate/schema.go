// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventFamiliesColumns holds the columns for the "event_families" table.
	EventFamiliesColumns = []*schema.Column{
		{Name: "ef_id", Type: field.TypeString, Unique: true},
		{Name: "ef_key", Type: field.TypeString},
		{Name: "theater", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "headline", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "actors", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "timeline", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "title_count", Type: field.TypeInt},
		{Name: "singleton_origin", Type: field.TypeBool, Default: false},
		{Name: "lineage", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "merged"}, Default: "active"},
		{Name: "parent_ef_id", Type: field.TypeString, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_updated_at", Type: field.TypeTime},
		{Name: "created_by_run_id", Type: field.TypeString},
		{Name: "updated_by_run_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "merged_into_id", Type: field.TypeString, Nullable: true},
	}
	// EventFamiliesTable holds the schema information for the "event_families" table.
	EventFamiliesTable = &schema.Table{
		Name:       "event_families",
		Columns:    EventFamiliesColumns,
		PrimaryKey: []*schema.Column{EventFamiliesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_families_event_families_absorbed",
				Columns:    []*schema.Column{EventFamiliesColumns[20]},
				RefColumns: []*schema.Column{EventFamiliesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventfamily_ef_key",
				Unique:  false,
				Columns: []*schema.Column{EventFamiliesColumns[1]},
			},
			{
				Name:    "eventfamily_status_ef_key",
				Unique:  false,
				Columns: []*schema.Column{EventFamiliesColumns[13], EventFamiliesColumns[1]},
			},
			{
				Name:    "eventfamily_status_last_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EventFamiliesColumns[13], EventFamiliesColumns[16]},
			},
			{
				Name:    "eventfamily_merged_into_id",
				Unique:  false,
				Columns: []*schema.Column{EventFamiliesColumns[20]},
			},
			{
				Name:    "eventfamily_parent_ef_id",
				Unique:  false,
				Columns: []*schema.Column{EventFamiliesColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "parent_ef_id IS NOT NULL",
				},
			},
		},
	}
	// MergeEventsColumns holds the columns for the "merge_events" table.
	MergeEventsColumns = []*schema.Column{
		{Name: "merge_event_id", Type: field.TypeString, Unique: true},
		{Name: "source_kind", Type: field.TypeEnum, Enums: []string{"candidate", "stored"}},
		{Name: "source_id", Type: field.TypeString},
		{Name: "source_title_count", Type: field.TypeInt},
		{Name: "titles_added", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "survivor_ef_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString},
	}
	// MergeEventsTable holds the schema information for the "merge_events" table.
	MergeEventsTable = &schema.Table{
		Name:       "merge_events",
		Columns:    MergeEventsColumns,
		PrimaryKey: []*schema.Column{MergeEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "merge_events_event_families_merge_events",
				Columns:    []*schema.Column{MergeEventsColumns[6]},
				RefColumns: []*schema.Column{EventFamiliesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "merge_events_pipeline_runs_merge_events",
				Columns:    []*schema.Column{MergeEventsColumns[7]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mergeevent_survivor_ef_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MergeEventsColumns[6], MergeEventsColumns[5]},
			},
			{
				Name:    "mergeevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{MergeEventsColumns[7]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "selecting", "mapping", "reducing", "merging", "persisting", "done", "aborted", "cancelled"}, Default: "pending"},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"cli", "api", "scheduled"}, Default: "cli"},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "error_category", Type: field.TypeEnum, Nullable: true, Enums: []string{"store", "llm", "config", "invariant", "canceled"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "titles_selected", Type: field.TypeInt, Default: 0},
		{Name: "shards_total", Type: field.TypeInt, Default: 0},
		{Name: "shards_failed", Type: field.TypeInt, Default: 0},
		{Name: "incidents_mapped", Type: field.TypeInt, Default: 0},
		{Name: "orphans_mapped", Type: field.TypeInt, Default: 0},
		{Name: "candidates_reduced", Type: field.TypeInt, Default: 0},
		{Name: "reduce_drops", Type: field.TypeInt, Default: 0},
		{Name: "efs_created", Type: field.TypeInt, Default: 0},
		{Name: "efs_updated", Type: field.TypeInt, Default: 0},
		{Name: "titles_assigned", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1]},
			},
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1], PipelineRunsColumns[16]},
			},
			{
				Name:    "pipelinerun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[1], PipelineRunsColumns[19]},
			},
		},
	}
	// TitlesColumns holds the columns for the "titles" table.
	TitlesColumns = []*schema.Column{
		{Name: "title_id", Type: field.TypeString, Unique: true},
		{Name: "url_hash", Type: field.TypeString, Unique: true},
		{Name: "title_text", Type: field.TypeString, Size: 2147483647},
		{Name: "lang", Type: field.TypeString},
		{Name: "source_name", Type: field.TypeString},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "detected_at", Type: field.TypeTime},
		{Name: "gate_keep", Type: field.TypeBool, Default: false},
		{Name: "gate_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "gate_actors", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_family_id", Type: field.TypeString, Nullable: true},
	}
	// TitlesTable holds the schema information for the "titles" table.
	TitlesTable = &schema.Table{
		Name:       "titles",
		Columns:    TitlesColumns,
		PrimaryKey: []*schema.Column{TitlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "titles_event_families_titles",
				Columns:    []*schema.Column{TitlesColumns[11]},
				RefColumns: []*schema.Column{EventFamiliesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "title_gate_keep_event_family_id_published_at",
				Unique:  false,
				Columns: []*schema.Column{TitlesColumns[7], TitlesColumns[11], TitlesColumns[5]},
			},
			{
				Name:    "title_event_family_id",
				Unique:  false,
				Columns: []*schema.Column{TitlesColumns[11]},
			},
			{
				Name:    "title_published_at",
				Unique:  false,
				Columns: []*schema.Column{TitlesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventFamiliesTable,
		MergeEventsTable,
		PipelineRunsTable,
		TitlesTable,
	}
)

func init() {
	EventFamiliesTable.ForeignKeys[0].RefTable = EventFamiliesTable
	MergeEventsTable.ForeignKeys[0].RefTable = EventFamiliesTable
	MergeEventsTable.ForeignKeys[1].RefTable = PipelineRunsTable
	TitlesTable.ForeignKeys[0].RefTable = EventFamiliesTable
}
