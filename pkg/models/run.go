package models

// Run triggers.
const (
	TriggerCLI       = "cli"
	TriggerAPI       = "api"
	TriggerScheduled = "scheduled"
)

// Error categories recorded on aborted runs and mapped to exit codes.
const (
	ErrorCategoryStore     = "store"
	ErrorCategoryLLM       = "llm"
	ErrorCategoryConfig    = "config"
	ErrorCategoryInvariant = "invariant"
	ErrorCategoryCanceled  = "canceled"
)

// CreateRunRequest contains fields for enqueueing a pipeline run.
type CreateRunRequest struct {
	Trigger string `json:"trigger"`
}

// RunCounters accumulates per-run bookkeeping across phases. The
// orchestrator flushes it to the run row after every phase transition.
type RunCounters struct {
	TitlesSelected    int `json:"titles_selected"`
	ShardsTotal       int `json:"shards_total"`
	ShardsFailed      int `json:"shards_failed"`
	IncidentsMapped   int `json:"incidents_mapped"`
	OrphansMapped     int `json:"orphans_mapped"`
	CandidatesReduced int `json:"candidates_reduced"`
	ReduceDrops       int `json:"reduce_drops"`
	EFsCreated        int `json:"efs_created"`
	EFsUpdated        int `json:"efs_updated"`
	TitlesAssigned    int `json:"titles_assigned"`
}
