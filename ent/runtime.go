// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/design4music/sni-platform-sub000/ent/eventfamily"
	"github.com/design4music/sni-platform-sub000/ent/mergeevent"
	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/ent/schema"
	"github.com/design4music/sni-platform-sub000/ent/title"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventfamilyFields := schema.EventFamily{}.Fields()
	_ = eventfamilyFields
	// eventfamilyDescTitleCount is the schema descriptor for title_count field.
	eventfamilyDescTitleCount := eventfamilyFields[10].Descriptor()
	// eventfamily.TitleCountValidator is a validator for the "title_count" field. It is called by the builders before save.
	eventfamily.TitleCountValidator = eventfamilyDescTitleCount.Validators[0].(func(int) error)
	// eventfamilyDescSingletonOrigin is the schema descriptor for singleton_origin field.
	eventfamilyDescSingletonOrigin := eventfamilyFields[11].Descriptor()
	// eventfamily.DefaultSingletonOrigin holds the default value on creation for the singleton_origin field.
	eventfamily.DefaultSingletonOrigin = eventfamilyDescSingletonOrigin.Default.(bool)
	// eventfamilyDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	eventfamilyDescLastUpdatedAt := eventfamilyFields[17].Descriptor()
	// eventfamily.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	eventfamily.DefaultLastUpdatedAt = eventfamilyDescLastUpdatedAt.Default.(func() time.Time)
	// eventfamily.UpdateDefaultLastUpdatedAt holds the default value on update for the last_updated_at field.
	eventfamily.UpdateDefaultLastUpdatedAt = eventfamilyDescLastUpdatedAt.UpdateDefault.(func() time.Time)
	// eventfamilyDescCreatedAt is the schema descriptor for created_at field.
	eventfamilyDescCreatedAt := eventfamilyFields[20].Descriptor()
	// eventfamily.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventfamily.DefaultCreatedAt = eventfamilyDescCreatedAt.Default.(func() time.Time)
	mergeeventFields := schema.MergeEvent{}.Fields()
	_ = mergeeventFields
	// mergeeventDescCreatedAt is the schema descriptor for created_at field.
	mergeeventDescCreatedAt := mergeeventFields[7].Descriptor()
	// mergeevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergeevent.DefaultCreatedAt = mergeeventDescCreatedAt.Default.(func() time.Time)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescTitlesSelected is the schema descriptor for titles_selected field.
	pipelinerunDescTitlesSelected := pipelinerunFields[6].Descriptor()
	// pipelinerun.DefaultTitlesSelected holds the default value on creation for the titles_selected field.
	pipelinerun.DefaultTitlesSelected = pipelinerunDescTitlesSelected.Default.(int)
	// pipelinerunDescShardsTotal is the schema descriptor for shards_total field.
	pipelinerunDescShardsTotal := pipelinerunFields[7].Descriptor()
	// pipelinerun.DefaultShardsTotal holds the default value on creation for the shards_total field.
	pipelinerun.DefaultShardsTotal = pipelinerunDescShardsTotal.Default.(int)
	// pipelinerunDescShardsFailed is the schema descriptor for shards_failed field.
	pipelinerunDescShardsFailed := pipelinerunFields[8].Descriptor()
	// pipelinerun.DefaultShardsFailed holds the default value on creation for the shards_failed field.
	pipelinerun.DefaultShardsFailed = pipelinerunDescShardsFailed.Default.(int)
	// pipelinerunDescIncidentsMapped is the schema descriptor for incidents_mapped field.
	pipelinerunDescIncidentsMapped := pipelinerunFields[9].Descriptor()
	// pipelinerun.DefaultIncidentsMapped holds the default value on creation for the incidents_mapped field.
	pipelinerun.DefaultIncidentsMapped = pipelinerunDescIncidentsMapped.Default.(int)
	// pipelinerunDescOrphansMapped is the schema descriptor for orphans_mapped field.
	pipelinerunDescOrphansMapped := pipelinerunFields[10].Descriptor()
	// pipelinerun.DefaultOrphansMapped holds the default value on creation for the orphans_mapped field.
	pipelinerun.DefaultOrphansMapped = pipelinerunDescOrphansMapped.Default.(int)
	// pipelinerunDescCandidatesReduced is the schema descriptor for candidates_reduced field.
	pipelinerunDescCandidatesReduced := pipelinerunFields[11].Descriptor()
	// pipelinerun.DefaultCandidatesReduced holds the default value on creation for the candidates_reduced field.
	pipelinerun.DefaultCandidatesReduced = pipelinerunDescCandidatesReduced.Default.(int)
	// pipelinerunDescReduceDrops is the schema descriptor for reduce_drops field.
	pipelinerunDescReduceDrops := pipelinerunFields[12].Descriptor()
	// pipelinerun.DefaultReduceDrops holds the default value on creation for the reduce_drops field.
	pipelinerun.DefaultReduceDrops = pipelinerunDescReduceDrops.Default.(int)
	// pipelinerunDescEfsCreated is the schema descriptor for efs_created field.
	pipelinerunDescEfsCreated := pipelinerunFields[13].Descriptor()
	// pipelinerun.DefaultEfsCreated holds the default value on creation for the efs_created field.
	pipelinerun.DefaultEfsCreated = pipelinerunDescEfsCreated.Default.(int)
	// pipelinerunDescEfsUpdated is the schema descriptor for efs_updated field.
	pipelinerunDescEfsUpdated := pipelinerunFields[14].Descriptor()
	// pipelinerun.DefaultEfsUpdated holds the default value on creation for the efs_updated field.
	pipelinerun.DefaultEfsUpdated = pipelinerunDescEfsUpdated.Default.(int)
	// pipelinerunDescTitlesAssigned is the schema descriptor for titles_assigned field.
	pipelinerunDescTitlesAssigned := pipelinerunFields[15].Descriptor()
	// pipelinerun.DefaultTitlesAssigned holds the default value on creation for the titles_assigned field.
	pipelinerun.DefaultTitlesAssigned = pipelinerunDescTitlesAssigned.Default.(int)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[16].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	titleFields := schema.Title{}.Fields()
	_ = titleFields
	// titleDescDetectedAt is the schema descriptor for detected_at field.
	titleDescDetectedAt := titleFields[6].Descriptor()
	// title.DefaultDetectedAt holds the default value on creation for the detected_at field.
	title.DefaultDetectedAt = titleDescDetectedAt.Default.(func() time.Time)
	// titleDescGateKeep is the schema descriptor for gate_keep field.
	titleDescGateKeep := titleFields[7].Descriptor()
	// title.DefaultGateKeep holds the default value on creation for the gate_keep field.
	title.DefaultGateKeep = titleDescGateKeep.Default.(bool)
	// titleDescCreatedAt is the schema descriptor for created_at field.
	titleDescCreatedAt := titleFields[11].Descriptor()
	// title.DefaultCreatedAt holds the default value on creation for the created_at field.
	title.DefaultCreatedAt = titleDescCreatedAt.Default.(func() time.Time)
}
