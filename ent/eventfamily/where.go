// Code generated by ent, DO NOT EDIT.

package eventfamily

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldID, id))
}

// EfKey applies equality check predicate on the "ef_key" field. It's identical to EfKeyEQ.
func EfKey(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldEfKey, v))
}

// Theater applies equality check predicate on the "theater" field. It's identical to TheaterEQ.
func Theater(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldTheater, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldEventType, v))
}

// Headline applies equality check predicate on the "headline" field. It's identical to HeadlineEQ.
func Headline(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldHeadline, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldSummary, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldConfidence, v))
}

// TitleCount applies equality check predicate on the "title_count" field. It's identical to TitleCountEQ.
func TitleCount(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldTitleCount, v))
}

// SingletonOrigin applies equality check predicate on the "singleton_origin" field. It's identical to SingletonOriginEQ.
func SingletonOrigin(v bool) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldSingletonOrigin, v))
}

// MergedIntoID applies equality check predicate on the "merged_into_id" field. It's identical to MergedIntoIDEQ.
func MergedIntoID(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldMergedIntoID, v))
}

// ParentEfID applies equality check predicate on the "parent_ef_id" field. It's identical to ParentEfIDEQ.
func ParentEfID(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldParentEfID, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// CreatedByRunID applies equality check predicate on the "created_by_run_id" field. It's identical to CreatedByRunIDEQ.
func CreatedByRunID(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldCreatedByRunID, v))
}

// UpdatedByRunID applies equality check predicate on the "updated_by_run_id" field. It's identical to UpdatedByRunIDEQ.
func UpdatedByRunID(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldUpdatedByRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldCreatedAt, v))
}

// EfKeyEQ applies the EQ predicate on the "ef_key" field.
func EfKeyEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldEfKey, v))
}

// EfKeyNEQ applies the NEQ predicate on the "ef_key" field.
func EfKeyNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldEfKey, v))
}

// EfKeyIn applies the In predicate on the "ef_key" field.
func EfKeyIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldEfKey, vs...))
}

// EfKeyNotIn applies the NotIn predicate on the "ef_key" field.
func EfKeyNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldEfKey, vs...))
}

// EfKeyGT applies the GT predicate on the "ef_key" field.
func EfKeyGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldEfKey, v))
}

// EfKeyGTE applies the GTE predicate on the "ef_key" field.
func EfKeyGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldEfKey, v))
}

// EfKeyLT applies the LT predicate on the "ef_key" field.
func EfKeyLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldEfKey, v))
}

// EfKeyLTE applies the LTE predicate on the "ef_key" field.
func EfKeyLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldEfKey, v))
}

// EfKeyContains applies the Contains predicate on the "ef_key" field.
func EfKeyContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldEfKey, v))
}

// EfKeyHasPrefix applies the HasPrefix predicate on the "ef_key" field.
func EfKeyHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldEfKey, v))
}

// EfKeyHasSuffix applies the HasSuffix predicate on the "ef_key" field.
func EfKeyHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldEfKey, v))
}

// EfKeyEqualFold applies the EqualFold predicate on the "ef_key" field.
func EfKeyEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldEfKey, v))
}

// EfKeyContainsFold applies the ContainsFold predicate on the "ef_key" field.
func EfKeyContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldEfKey, v))
}

// TheaterEQ applies the EQ predicate on the "theater" field.
func TheaterEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldTheater, v))
}

// TheaterNEQ applies the NEQ predicate on the "theater" field.
func TheaterNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldTheater, v))
}

// TheaterIn applies the In predicate on the "theater" field.
func TheaterIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldTheater, vs...))
}

// TheaterNotIn applies the NotIn predicate on the "theater" field.
func TheaterNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldTheater, vs...))
}

// TheaterGT applies the GT predicate on the "theater" field.
func TheaterGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldTheater, v))
}

// TheaterGTE applies the GTE predicate on the "theater" field.
func TheaterGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldTheater, v))
}

// TheaterLT applies the LT predicate on the "theater" field.
func TheaterLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldTheater, v))
}

// TheaterLTE applies the LTE predicate on the "theater" field.
func TheaterLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldTheater, v))
}

// TheaterContains applies the Contains predicate on the "theater" field.
func TheaterContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldTheater, v))
}

// TheaterHasPrefix applies the HasPrefix predicate on the "theater" field.
func TheaterHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldTheater, v))
}

// TheaterHasSuffix applies the HasSuffix predicate on the "theater" field.
func TheaterHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldTheater, v))
}

// TheaterEqualFold applies the EqualFold predicate on the "theater" field.
func TheaterEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldTheater, v))
}

// TheaterContainsFold applies the ContainsFold predicate on the "theater" field.
func TheaterContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldTheater, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldEventType, v))
}

// HeadlineEQ applies the EQ predicate on the "headline" field.
func HeadlineEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldHeadline, v))
}

// HeadlineNEQ applies the NEQ predicate on the "headline" field.
func HeadlineNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldHeadline, v))
}

// HeadlineIn applies the In predicate on the "headline" field.
func HeadlineIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldHeadline, vs...))
}

// HeadlineNotIn applies the NotIn predicate on the "headline" field.
func HeadlineNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldHeadline, vs...))
}

// HeadlineGT applies the GT predicate on the "headline" field.
func HeadlineGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldHeadline, v))
}

// HeadlineGTE applies the GTE predicate on the "headline" field.
func HeadlineGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldHeadline, v))
}

// HeadlineLT applies the LT predicate on the "headline" field.
func HeadlineLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldHeadline, v))
}

// HeadlineLTE applies the LTE predicate on the "headline" field.
func HeadlineLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldHeadline, v))
}

// HeadlineContains applies the Contains predicate on the "headline" field.
func HeadlineContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldHeadline, v))
}

// HeadlineHasPrefix applies the HasPrefix predicate on the "headline" field.
func HeadlineHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldHeadline, v))
}

// HeadlineHasSuffix applies the HasSuffix predicate on the "headline" field.
func HeadlineHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldHeadline, v))
}

// HeadlineEqualFold applies the EqualFold predicate on the "headline" field.
func HeadlineEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldHeadline, v))
}

// HeadlineContainsFold applies the ContainsFold predicate on the "headline" field.
func HeadlineContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldHeadline, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldSummary, v))
}

// ActorsIsNil applies the IsNil predicate on the "actors" field.
func ActorsIsNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIsNull(FieldActors))
}

// ActorsNotNil applies the NotNil predicate on the "actors" field.
func ActorsNotNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotNull(FieldActors))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotNull(FieldTags))
}

// TimelineIsNil applies the IsNil predicate on the "timeline" field.
func TimelineIsNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIsNull(FieldTimeline))
}

// TimelineNotNil applies the NotNil predicate on the "timeline" field.
func TimelineNotNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotNull(FieldTimeline))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldConfidence, v))
}

// TitleCountEQ applies the EQ predicate on the "title_count" field.
func TitleCountEQ(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldTitleCount, v))
}

// TitleCountNEQ applies the NEQ predicate on the "title_count" field.
func TitleCountNEQ(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldTitleCount, v))
}

// TitleCountIn applies the In predicate on the "title_count" field.
func TitleCountIn(vs ...int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldTitleCount, vs...))
}

// TitleCountNotIn applies the NotIn predicate on the "title_count" field.
func TitleCountNotIn(vs ...int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldTitleCount, vs...))
}

// TitleCountGT applies the GT predicate on the "title_count" field.
func TitleCountGT(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldTitleCount, v))
}

// TitleCountGTE applies the GTE predicate on the "title_count" field.
func TitleCountGTE(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldTitleCount, v))
}

// TitleCountLT applies the LT predicate on the "title_count" field.
func TitleCountLT(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldTitleCount, v))
}

// TitleCountLTE applies the LTE predicate on the "title_count" field.
func TitleCountLTE(v int) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldTitleCount, v))
}

// SingletonOriginEQ applies the EQ predicate on the "singleton_origin" field.
func SingletonOriginEQ(v bool) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldSingletonOrigin, v))
}

// SingletonOriginNEQ applies the NEQ predicate on the "singleton_origin" field.
func SingletonOriginNEQ(v bool) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldSingletonOrigin, v))
}

// LineageIsNil applies the IsNil predicate on the "lineage" field.
func LineageIsNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIsNull(FieldLineage))
}

// LineageNotNil applies the NotNil predicate on the "lineage" field.
func LineageNotNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotNull(FieldLineage))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldStatus, vs...))
}

// MergedIntoIDEQ applies the EQ predicate on the "merged_into_id" field.
func MergedIntoIDEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldMergedIntoID, v))
}

// MergedIntoIDNEQ applies the NEQ predicate on the "merged_into_id" field.
func MergedIntoIDNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldMergedIntoID, v))
}

// MergedIntoIDIn applies the In predicate on the "merged_into_id" field.
func MergedIntoIDIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldMergedIntoID, vs...))
}

// MergedIntoIDNotIn applies the NotIn predicate on the "merged_into_id" field.
func MergedIntoIDNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldMergedIntoID, vs...))
}

// MergedIntoIDGT applies the GT predicate on the "merged_into_id" field.
func MergedIntoIDGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldMergedIntoID, v))
}

// MergedIntoIDGTE applies the GTE predicate on the "merged_into_id" field.
func MergedIntoIDGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldMergedIntoID, v))
}

// MergedIntoIDLT applies the LT predicate on the "merged_into_id" field.
func MergedIntoIDLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldMergedIntoID, v))
}

// MergedIntoIDLTE applies the LTE predicate on the "merged_into_id" field.
func MergedIntoIDLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldMergedIntoID, v))
}

// MergedIntoIDContains applies the Contains predicate on the "merged_into_id" field.
func MergedIntoIDContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldMergedIntoID, v))
}

// MergedIntoIDHasPrefix applies the HasPrefix predicate on the "merged_into_id" field.
func MergedIntoIDHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldMergedIntoID, v))
}

// MergedIntoIDHasSuffix applies the HasSuffix predicate on the "merged_into_id" field.
func MergedIntoIDHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldMergedIntoID, v))
}

// MergedIntoIDIsNil applies the IsNil predicate on the "merged_into_id" field.
func MergedIntoIDIsNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIsNull(FieldMergedIntoID))
}

// MergedIntoIDNotNil applies the NotNil predicate on the "merged_into_id" field.
func MergedIntoIDNotNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotNull(FieldMergedIntoID))
}

// MergedIntoIDEqualFold applies the EqualFold predicate on the "merged_into_id" field.
func MergedIntoIDEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldMergedIntoID, v))
}

// MergedIntoIDContainsFold applies the ContainsFold predicate on the "merged_into_id" field.
func MergedIntoIDContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldMergedIntoID, v))
}

// ParentEfIDEQ applies the EQ predicate on the "parent_ef_id" field.
func ParentEfIDEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldParentEfID, v))
}

// ParentEfIDNEQ applies the NEQ predicate on the "parent_ef_id" field.
func ParentEfIDNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldParentEfID, v))
}

// ParentEfIDIn applies the In predicate on the "parent_ef_id" field.
func ParentEfIDIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldParentEfID, vs...))
}

// ParentEfIDNotIn applies the NotIn predicate on the "parent_ef_id" field.
func ParentEfIDNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldParentEfID, vs...))
}

// ParentEfIDGT applies the GT predicate on the "parent_ef_id" field.
func ParentEfIDGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldParentEfID, v))
}

// ParentEfIDGTE applies the GTE predicate on the "parent_ef_id" field.
func ParentEfIDGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldParentEfID, v))
}

// ParentEfIDLT applies the LT predicate on the "parent_ef_id" field.
func ParentEfIDLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldParentEfID, v))
}

// ParentEfIDLTE applies the LTE predicate on the "parent_ef_id" field.
func ParentEfIDLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldParentEfID, v))
}

// ParentEfIDContains applies the Contains predicate on the "parent_ef_id" field.
func ParentEfIDContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldParentEfID, v))
}

// ParentEfIDHasPrefix applies the HasPrefix predicate on the "parent_ef_id" field.
func ParentEfIDHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldParentEfID, v))
}

// ParentEfIDHasSuffix applies the HasSuffix predicate on the "parent_ef_id" field.
func ParentEfIDHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldParentEfID, v))
}

// ParentEfIDIsNil applies the IsNil predicate on the "parent_ef_id" field.
func ParentEfIDIsNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIsNull(FieldParentEfID))
}

// ParentEfIDNotNil applies the NotNil predicate on the "parent_ef_id" field.
func ParentEfIDNotNil() predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotNull(FieldParentEfID))
}

// ParentEfIDEqualFold applies the EqualFold predicate on the "parent_ef_id" field.
func ParentEfIDEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldParentEfID, v))
}

// ParentEfIDContainsFold applies the ContainsFold predicate on the "parent_ef_id" field.
func ParentEfIDContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldParentEfID, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// CreatedByRunIDEQ applies the EQ predicate on the "created_by_run_id" field.
func CreatedByRunIDEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldCreatedByRunID, v))
}

// CreatedByRunIDNEQ applies the NEQ predicate on the "created_by_run_id" field.
func CreatedByRunIDNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldCreatedByRunID, v))
}

// CreatedByRunIDIn applies the In predicate on the "created_by_run_id" field.
func CreatedByRunIDIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldCreatedByRunID, vs...))
}

// CreatedByRunIDNotIn applies the NotIn predicate on the "created_by_run_id" field.
func CreatedByRunIDNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldCreatedByRunID, vs...))
}

// CreatedByRunIDGT applies the GT predicate on the "created_by_run_id" field.
func CreatedByRunIDGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldCreatedByRunID, v))
}

// CreatedByRunIDGTE applies the GTE predicate on the "created_by_run_id" field.
func CreatedByRunIDGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldCreatedByRunID, v))
}

// CreatedByRunIDLT applies the LT predicate on the "created_by_run_id" field.
func CreatedByRunIDLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldCreatedByRunID, v))
}

// CreatedByRunIDLTE applies the LTE predicate on the "created_by_run_id" field.
func CreatedByRunIDLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldCreatedByRunID, v))
}

// CreatedByRunIDContains applies the Contains predicate on the "created_by_run_id" field.
func CreatedByRunIDContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldCreatedByRunID, v))
}

// CreatedByRunIDHasPrefix applies the HasPrefix predicate on the "created_by_run_id" field.
func CreatedByRunIDHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldCreatedByRunID, v))
}

// CreatedByRunIDHasSuffix applies the HasSuffix predicate on the "created_by_run_id" field.
func CreatedByRunIDHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldCreatedByRunID, v))
}

// CreatedByRunIDEqualFold applies the EqualFold predicate on the "created_by_run_id" field.
func CreatedByRunIDEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldCreatedByRunID, v))
}

// CreatedByRunIDContainsFold applies the ContainsFold predicate on the "created_by_run_id" field.
func CreatedByRunIDContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldCreatedByRunID, v))
}

// UpdatedByRunIDEQ applies the EQ predicate on the "updated_by_run_id" field.
func UpdatedByRunIDEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDNEQ applies the NEQ predicate on the "updated_by_run_id" field.
func UpdatedByRunIDNEQ(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDIn applies the In predicate on the "updated_by_run_id" field.
func UpdatedByRunIDIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldUpdatedByRunID, vs...))
}

// UpdatedByRunIDNotIn applies the NotIn predicate on the "updated_by_run_id" field.
func UpdatedByRunIDNotIn(vs ...string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldUpdatedByRunID, vs...))
}

// UpdatedByRunIDGT applies the GT predicate on the "updated_by_run_id" field.
func UpdatedByRunIDGT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDGTE applies the GTE predicate on the "updated_by_run_id" field.
func UpdatedByRunIDGTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDLT applies the LT predicate on the "updated_by_run_id" field.
func UpdatedByRunIDLT(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDLTE applies the LTE predicate on the "updated_by_run_id" field.
func UpdatedByRunIDLTE(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDContains applies the Contains predicate on the "updated_by_run_id" field.
func UpdatedByRunIDContains(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContains(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDHasPrefix applies the HasPrefix predicate on the "updated_by_run_id" field.
func UpdatedByRunIDHasPrefix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasPrefix(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDHasSuffix applies the HasSuffix predicate on the "updated_by_run_id" field.
func UpdatedByRunIDHasSuffix(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldHasSuffix(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDEqualFold applies the EqualFold predicate on the "updated_by_run_id" field.
func UpdatedByRunIDEqualFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEqualFold(FieldUpdatedByRunID, v))
}

// UpdatedByRunIDContainsFold applies the ContainsFold predicate on the "updated_by_run_id" field.
func UpdatedByRunIDContainsFold(v string) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldContainsFold(FieldUpdatedByRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EventFamily {
	return predicate.EventFamily(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTitles applies the HasEdge predicate on the "titles" edge.
func HasTitles() predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TitlesTable, TitlesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTitlesWith applies the HasEdge predicate on the "titles" edge with a given conditions (other predicates).
func HasTitlesWith(preds ...predicate.Title) predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := newTitlesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMergedInto applies the HasEdge predicate on the "merged_into" edge.
func HasMergedInto() predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MergedIntoTable, MergedIntoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMergedIntoWith applies the HasEdge predicate on the "merged_into" edge with a given conditions (other predicates).
func HasMergedIntoWith(preds ...predicate.EventFamily) predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := newMergedIntoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAbsorbed applies the HasEdge predicate on the "absorbed" edge.
func HasAbsorbed() predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AbsorbedTable, AbsorbedColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAbsorbedWith applies the HasEdge predicate on the "absorbed" edge with a given conditions (other predicates).
func HasAbsorbedWith(preds ...predicate.EventFamily) predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := newAbsorbedStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMergeEvents applies the HasEdge predicate on the "merge_events" edge.
func HasMergeEvents() predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MergeEventsTable, MergeEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMergeEventsWith applies the HasEdge predicate on the "merge_events" edge with a given conditions (other predicates).
func HasMergeEventsWith(preds ...predicate.MergeEvent) predicate.EventFamily {
	return predicate.EventFamily(func(s *sql.Selector) {
		step := newMergeEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventFamily) predicate.EventFamily {
	return predicate.EventFamily(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventFamily) predicate.EventFamily {
	return predicate.EventFamily(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventFamily) predicate.EventFamily {
	return predicate.EventFamily(sql.NotPredicates(p))
}
