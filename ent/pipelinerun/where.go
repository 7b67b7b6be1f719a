// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPodID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// TitlesSelected applies equality check predicate on the "titles_selected" field. It's identical to TitlesSelectedEQ.
func TitlesSelected(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTitlesSelected, v))
}

// ShardsTotal applies equality check predicate on the "shards_total" field. It's identical to ShardsTotalEQ.
func ShardsTotal(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldShardsTotal, v))
}

// ShardsFailed applies equality check predicate on the "shards_failed" field. It's identical to ShardsFailedEQ.
func ShardsFailed(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldShardsFailed, v))
}

// IncidentsMapped applies equality check predicate on the "incidents_mapped" field. It's identical to IncidentsMappedEQ.
func IncidentsMapped(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldIncidentsMapped, v))
}

// OrphansMapped applies equality check predicate on the "orphans_mapped" field. It's identical to OrphansMappedEQ.
func OrphansMapped(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldOrphansMapped, v))
}

// CandidatesReduced applies equality check predicate on the "candidates_reduced" field. It's identical to CandidatesReducedEQ.
func CandidatesReduced(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCandidatesReduced, v))
}

// ReduceDrops applies equality check predicate on the "reduce_drops" field. It's identical to ReduceDropsEQ.
func ReduceDrops(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldReduceDrops, v))
}

// EfsCreated applies equality check predicate on the "efs_created" field. It's identical to EfsCreatedEQ.
func EfsCreated(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEfsCreated, v))
}

// EfsUpdated applies equality check predicate on the "efs_updated" field. It's identical to EfsUpdatedEQ.
func EfsUpdated(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEfsUpdated, v))
}

// TitlesAssigned applies equality check predicate on the "titles_assigned" field. It's identical to TitlesAssignedEQ.
func TitlesAssigned(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTitlesAssigned, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v Trigger) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v Trigger) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...Trigger) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...Trigger) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldTrigger, vs...))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldPodID, v))
}

// ErrorCategoryEQ applies the EQ predicate on the "error_category" field.
func ErrorCategoryEQ(v ErrorCategory) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorCategory, v))
}

// ErrorCategoryNEQ applies the NEQ predicate on the "error_category" field.
func ErrorCategoryNEQ(v ErrorCategory) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldErrorCategory, v))
}

// ErrorCategoryIn applies the In predicate on the "error_category" field.
func ErrorCategoryIn(vs ...ErrorCategory) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldErrorCategory, vs...))
}

// ErrorCategoryNotIn applies the NotIn predicate on the "error_category" field.
func ErrorCategoryNotIn(vs ...ErrorCategory) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldErrorCategory, vs...))
}

// ErrorCategoryIsNil applies the IsNil predicate on the "error_category" field.
func ErrorCategoryIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldErrorCategory))
}

// ErrorCategoryNotNil applies the NotNil predicate on the "error_category" field.
func ErrorCategoryNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldErrorCategory))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TitlesSelectedEQ applies the EQ predicate on the "titles_selected" field.
func TitlesSelectedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTitlesSelected, v))
}

// TitlesSelectedNEQ applies the NEQ predicate on the "titles_selected" field.
func TitlesSelectedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldTitlesSelected, v))
}

// TitlesSelectedIn applies the In predicate on the "titles_selected" field.
func TitlesSelectedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldTitlesSelected, vs...))
}

// TitlesSelectedNotIn applies the NotIn predicate on the "titles_selected" field.
func TitlesSelectedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldTitlesSelected, vs...))
}

// TitlesSelectedGT applies the GT predicate on the "titles_selected" field.
func TitlesSelectedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldTitlesSelected, v))
}

// TitlesSelectedGTE applies the GTE predicate on the "titles_selected" field.
func TitlesSelectedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldTitlesSelected, v))
}

// TitlesSelectedLT applies the LT predicate on the "titles_selected" field.
func TitlesSelectedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldTitlesSelected, v))
}

// TitlesSelectedLTE applies the LTE predicate on the "titles_selected" field.
func TitlesSelectedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldTitlesSelected, v))
}

// ShardsTotalEQ applies the EQ predicate on the "shards_total" field.
func ShardsTotalEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldShardsTotal, v))
}

// ShardsTotalNEQ applies the NEQ predicate on the "shards_total" field.
func ShardsTotalNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldShardsTotal, v))
}

// ShardsTotalIn applies the In predicate on the "shards_total" field.
func ShardsTotalIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldShardsTotal, vs...))
}

// ShardsTotalNotIn applies the NotIn predicate on the "shards_total" field.
func ShardsTotalNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldShardsTotal, vs...))
}

// ShardsTotalGT applies the GT predicate on the "shards_total" field.
func ShardsTotalGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldShardsTotal, v))
}

// ShardsTotalGTE applies the GTE predicate on the "shards_total" field.
func ShardsTotalGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldShardsTotal, v))
}

// ShardsTotalLT applies the LT predicate on the "shards_total" field.
func ShardsTotalLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldShardsTotal, v))
}

// ShardsTotalLTE applies the LTE predicate on the "shards_total" field.
func ShardsTotalLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldShardsTotal, v))
}

// ShardsFailedEQ applies the EQ predicate on the "shards_failed" field.
func ShardsFailedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldShardsFailed, v))
}

// ShardsFailedNEQ applies the NEQ predicate on the "shards_failed" field.
func ShardsFailedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldShardsFailed, v))
}

// ShardsFailedIn applies the In predicate on the "shards_failed" field.
func ShardsFailedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldShardsFailed, vs...))
}

// ShardsFailedNotIn applies the NotIn predicate on the "shards_failed" field.
func ShardsFailedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldShardsFailed, vs...))
}

// ShardsFailedGT applies the GT predicate on the "shards_failed" field.
func ShardsFailedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldShardsFailed, v))
}

// ShardsFailedGTE applies the GTE predicate on the "shards_failed" field.
func ShardsFailedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldShardsFailed, v))
}

// ShardsFailedLT applies the LT predicate on the "shards_failed" field.
func ShardsFailedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldShardsFailed, v))
}

// ShardsFailedLTE applies the LTE predicate on the "shards_failed" field.
func ShardsFailedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldShardsFailed, v))
}

// IncidentsMappedEQ applies the EQ predicate on the "incidents_mapped" field.
func IncidentsMappedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldIncidentsMapped, v))
}

// IncidentsMappedNEQ applies the NEQ predicate on the "incidents_mapped" field.
func IncidentsMappedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldIncidentsMapped, v))
}

// IncidentsMappedIn applies the In predicate on the "incidents_mapped" field.
func IncidentsMappedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldIncidentsMapped, vs...))
}

// IncidentsMappedNotIn applies the NotIn predicate on the "incidents_mapped" field.
func IncidentsMappedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldIncidentsMapped, vs...))
}

// IncidentsMappedGT applies the GT predicate on the "incidents_mapped" field.
func IncidentsMappedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldIncidentsMapped, v))
}

// IncidentsMappedGTE applies the GTE predicate on the "incidents_mapped" field.
func IncidentsMappedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldIncidentsMapped, v))
}

// IncidentsMappedLT applies the LT predicate on the "incidents_mapped" field.
func IncidentsMappedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldIncidentsMapped, v))
}

// IncidentsMappedLTE applies the LTE predicate on the "incidents_mapped" field.
func IncidentsMappedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldIncidentsMapped, v))
}

// OrphansMappedEQ applies the EQ predicate on the "orphans_mapped" field.
func OrphansMappedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldOrphansMapped, v))
}

// OrphansMappedNEQ applies the NEQ predicate on the "orphans_mapped" field.
func OrphansMappedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldOrphansMapped, v))
}

// OrphansMappedIn applies the In predicate on the "orphans_mapped" field.
func OrphansMappedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldOrphansMapped, vs...))
}

// OrphansMappedNotIn applies the NotIn predicate on the "orphans_mapped" field.
func OrphansMappedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldOrphansMapped, vs...))
}

// OrphansMappedGT applies the GT predicate on the "orphans_mapped" field.
func OrphansMappedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldOrphansMapped, v))
}

// OrphansMappedGTE applies the GTE predicate on the "orphans_mapped" field.
func OrphansMappedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldOrphansMapped, v))
}

// OrphansMappedLT applies the LT predicate on the "orphans_mapped" field.
func OrphansMappedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldOrphansMapped, v))
}

// OrphansMappedLTE applies the LTE predicate on the "orphans_mapped" field.
func OrphansMappedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldOrphansMapped, v))
}

// CandidatesReducedEQ applies the EQ predicate on the "candidates_reduced" field.
func CandidatesReducedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCandidatesReduced, v))
}

// CandidatesReducedNEQ applies the NEQ predicate on the "candidates_reduced" field.
func CandidatesReducedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCandidatesReduced, v))
}

// CandidatesReducedIn applies the In predicate on the "candidates_reduced" field.
func CandidatesReducedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCandidatesReduced, vs...))
}

// CandidatesReducedNotIn applies the NotIn predicate on the "candidates_reduced" field.
func CandidatesReducedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCandidatesReduced, vs...))
}

// CandidatesReducedGT applies the GT predicate on the "candidates_reduced" field.
func CandidatesReducedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCandidatesReduced, v))
}

// CandidatesReducedGTE applies the GTE predicate on the "candidates_reduced" field.
func CandidatesReducedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCandidatesReduced, v))
}

// CandidatesReducedLT applies the LT predicate on the "candidates_reduced" field.
func CandidatesReducedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCandidatesReduced, v))
}

// CandidatesReducedLTE applies the LTE predicate on the "candidates_reduced" field.
func CandidatesReducedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCandidatesReduced, v))
}

// ReduceDropsEQ applies the EQ predicate on the "reduce_drops" field.
func ReduceDropsEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldReduceDrops, v))
}

// ReduceDropsNEQ applies the NEQ predicate on the "reduce_drops" field.
func ReduceDropsNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldReduceDrops, v))
}

// ReduceDropsIn applies the In predicate on the "reduce_drops" field.
func ReduceDropsIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldReduceDrops, vs...))
}

// ReduceDropsNotIn applies the NotIn predicate on the "reduce_drops" field.
func ReduceDropsNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldReduceDrops, vs...))
}

// ReduceDropsGT applies the GT predicate on the "reduce_drops" field.
func ReduceDropsGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldReduceDrops, v))
}

// ReduceDropsGTE applies the GTE predicate on the "reduce_drops" field.
func ReduceDropsGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldReduceDrops, v))
}

// ReduceDropsLT applies the LT predicate on the "reduce_drops" field.
func ReduceDropsLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldReduceDrops, v))
}

// ReduceDropsLTE applies the LTE predicate on the "reduce_drops" field.
func ReduceDropsLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldReduceDrops, v))
}

// EfsCreatedEQ applies the EQ predicate on the "efs_created" field.
func EfsCreatedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEfsCreated, v))
}

// EfsCreatedNEQ applies the NEQ predicate on the "efs_created" field.
func EfsCreatedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldEfsCreated, v))
}

// EfsCreatedIn applies the In predicate on the "efs_created" field.
func EfsCreatedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldEfsCreated, vs...))
}

// EfsCreatedNotIn applies the NotIn predicate on the "efs_created" field.
func EfsCreatedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldEfsCreated, vs...))
}

// EfsCreatedGT applies the GT predicate on the "efs_created" field.
func EfsCreatedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldEfsCreated, v))
}

// EfsCreatedGTE applies the GTE predicate on the "efs_created" field.
func EfsCreatedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldEfsCreated, v))
}

// EfsCreatedLT applies the LT predicate on the "efs_created" field.
func EfsCreatedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldEfsCreated, v))
}

// EfsCreatedLTE applies the LTE predicate on the "efs_created" field.
func EfsCreatedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldEfsCreated, v))
}

// EfsUpdatedEQ applies the EQ predicate on the "efs_updated" field.
func EfsUpdatedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldEfsUpdated, v))
}

// EfsUpdatedNEQ applies the NEQ predicate on the "efs_updated" field.
func EfsUpdatedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldEfsUpdated, v))
}

// EfsUpdatedIn applies the In predicate on the "efs_updated" field.
func EfsUpdatedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldEfsUpdated, vs...))
}

// EfsUpdatedNotIn applies the NotIn predicate on the "efs_updated" field.
func EfsUpdatedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldEfsUpdated, vs...))
}

// EfsUpdatedGT applies the GT predicate on the "efs_updated" field.
func EfsUpdatedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldEfsUpdated, v))
}

// EfsUpdatedGTE applies the GTE predicate on the "efs_updated" field.
func EfsUpdatedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldEfsUpdated, v))
}

// EfsUpdatedLT applies the LT predicate on the "efs_updated" field.
func EfsUpdatedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldEfsUpdated, v))
}

// EfsUpdatedLTE applies the LTE predicate on the "efs_updated" field.
func EfsUpdatedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldEfsUpdated, v))
}

// TitlesAssignedEQ applies the EQ predicate on the "titles_assigned" field.
func TitlesAssignedEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldTitlesAssigned, v))
}

// TitlesAssignedNEQ applies the NEQ predicate on the "titles_assigned" field.
func TitlesAssignedNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldTitlesAssigned, v))
}

// TitlesAssignedIn applies the In predicate on the "titles_assigned" field.
func TitlesAssignedIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldTitlesAssigned, vs...))
}

// TitlesAssignedNotIn applies the NotIn predicate on the "titles_assigned" field.
func TitlesAssignedNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldTitlesAssigned, vs...))
}

// TitlesAssignedGT applies the GT predicate on the "titles_assigned" field.
func TitlesAssignedGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldTitlesAssigned, v))
}

// TitlesAssignedGTE applies the GTE predicate on the "titles_assigned" field.
func TitlesAssignedGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldTitlesAssigned, v))
}

// TitlesAssignedLT applies the LT predicate on the "titles_assigned" field.
func TitlesAssignedLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldTitlesAssigned, v))
}

// TitlesAssignedLTE applies the LTE predicate on the "titles_assigned" field.
func TitlesAssignedLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldTitlesAssigned, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasMergeEvents applies the HasEdge predicate on the "merge_events" edge.
func HasMergeEvents() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MergeEventsTable, MergeEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMergeEventsWith applies the HasEdge predicate on the "merge_events" edge with a given conditions (other predicates).
func HasMergeEventsWith(preds ...predicate.MergeEvent) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newMergeEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
