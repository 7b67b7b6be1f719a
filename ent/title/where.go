// Code generated by ent, DO NOT EDIT.

package title

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Title {
	return predicate.Title(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Title {
	return predicate.Title(sql.FieldContainsFold(FieldID, id))
}

// URLHash applies equality check predicate on the "url_hash" field. It's identical to URLHashEQ.
func URLHash(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldURLHash, v))
}

// TitleText applies equality check predicate on the "title_text" field. It's identical to TitleTextEQ.
func TitleText(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldTitleText, v))
}

// Lang applies equality check predicate on the "lang" field. It's identical to LangEQ.
func Lang(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldLang, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldSourceName, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldPublishedAt, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldDetectedAt, v))
}

// GateKeep applies equality check predicate on the "gate_keep" field. It's identical to GateKeepEQ.
func GateKeep(v bool) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldGateKeep, v))
}

// GateScore applies equality check predicate on the "gate_score" field. It's identical to GateScoreEQ.
func GateScore(v float64) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldGateScore, v))
}

// EventFamilyID applies equality check predicate on the "event_family_id" field. It's identical to EventFamilyIDEQ.
func EventFamilyID(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldEventFamilyID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldCreatedAt, v))
}

// URLHashEQ applies the EQ predicate on the "url_hash" field.
func URLHashEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldURLHash, v))
}

// URLHashNEQ applies the NEQ predicate on the "url_hash" field.
func URLHashNEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldURLHash, v))
}

// URLHashIn applies the In predicate on the "url_hash" field.
func URLHashIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldURLHash, vs...))
}

// URLHashNotIn applies the NotIn predicate on the "url_hash" field.
func URLHashNotIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldURLHash, vs...))
}

// URLHashGT applies the GT predicate on the "url_hash" field.
func URLHashGT(v string) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldURLHash, v))
}

// URLHashGTE applies the GTE predicate on the "url_hash" field.
func URLHashGTE(v string) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldURLHash, v))
}

// URLHashLT applies the LT predicate on the "url_hash" field.
func URLHashLT(v string) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldURLHash, v))
}

// URLHashLTE applies the LTE predicate on the "url_hash" field.
func URLHashLTE(v string) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldURLHash, v))
}

// URLHashContains applies the Contains predicate on the "url_hash" field.
func URLHashContains(v string) predicate.Title {
	return predicate.Title(sql.FieldContains(FieldURLHash, v))
}

// URLHashHasPrefix applies the HasPrefix predicate on the "url_hash" field.
func URLHashHasPrefix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasPrefix(FieldURLHash, v))
}

// URLHashHasSuffix applies the HasSuffix predicate on the "url_hash" field.
func URLHashHasSuffix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasSuffix(FieldURLHash, v))
}

// URLHashEqualFold applies the EqualFold predicate on the "url_hash" field.
func URLHashEqualFold(v string) predicate.Title {
	return predicate.Title(sql.FieldEqualFold(FieldURLHash, v))
}

// URLHashContainsFold applies the ContainsFold predicate on the "url_hash" field.
func URLHashContainsFold(v string) predicate.Title {
	return predicate.Title(sql.FieldContainsFold(FieldURLHash, v))
}

// TitleTextEQ applies the EQ predicate on the "title_text" field.
func TitleTextEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldTitleText, v))
}

// TitleTextNEQ applies the NEQ predicate on the "title_text" field.
func TitleTextNEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldTitleText, v))
}

// TitleTextIn applies the In predicate on the "title_text" field.
func TitleTextIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldTitleText, vs...))
}

// TitleTextNotIn applies the NotIn predicate on the "title_text" field.
func TitleTextNotIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldTitleText, vs...))
}

// TitleTextGT applies the GT predicate on the "title_text" field.
func TitleTextGT(v string) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldTitleText, v))
}

// TitleTextGTE applies the GTE predicate on the "title_text" field.
func TitleTextGTE(v string) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldTitleText, v))
}

// TitleTextLT applies the LT predicate on the "title_text" field.
func TitleTextLT(v string) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldTitleText, v))
}

// TitleTextLTE applies the LTE predicate on the "title_text" field.
func TitleTextLTE(v string) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldTitleText, v))
}

// TitleTextContains applies the Contains predicate on the "title_text" field.
func TitleTextContains(v string) predicate.Title {
	return predicate.Title(sql.FieldContains(FieldTitleText, v))
}

// TitleTextHasPrefix applies the HasPrefix predicate on the "title_text" field.
func TitleTextHasPrefix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasPrefix(FieldTitleText, v))
}

// TitleTextHasSuffix applies the HasSuffix predicate on the "title_text" field.
func TitleTextHasSuffix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasSuffix(FieldTitleText, v))
}

// TitleTextEqualFold applies the EqualFold predicate on the "title_text" field.
func TitleTextEqualFold(v string) predicate.Title {
	return predicate.Title(sql.FieldEqualFold(FieldTitleText, v))
}

// TitleTextContainsFold applies the ContainsFold predicate on the "title_text" field.
func TitleTextContainsFold(v string) predicate.Title {
	return predicate.Title(sql.FieldContainsFold(FieldTitleText, v))
}

// LangEQ applies the EQ predicate on the "lang" field.
func LangEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldLang, v))
}

// LangNEQ applies the NEQ predicate on the "lang" field.
func LangNEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldLang, v))
}

// LangIn applies the In predicate on the "lang" field.
func LangIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldLang, vs...))
}

// LangNotIn applies the NotIn predicate on the "lang" field.
func LangNotIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldLang, vs...))
}

// LangGT applies the GT predicate on the "lang" field.
func LangGT(v string) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldLang, v))
}

// LangGTE applies the GTE predicate on the "lang" field.
func LangGTE(v string) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldLang, v))
}

// LangLT applies the LT predicate on the "lang" field.
func LangLT(v string) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldLang, v))
}

// LangLTE applies the LTE predicate on the "lang" field.
func LangLTE(v string) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldLang, v))
}

// LangContains applies the Contains predicate on the "lang" field.
func LangContains(v string) predicate.Title {
	return predicate.Title(sql.FieldContains(FieldLang, v))
}

// LangHasPrefix applies the HasPrefix predicate on the "lang" field.
func LangHasPrefix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasPrefix(FieldLang, v))
}

// LangHasSuffix applies the HasSuffix predicate on the "lang" field.
func LangHasSuffix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasSuffix(FieldLang, v))
}

// LangEqualFold applies the EqualFold predicate on the "lang" field.
func LangEqualFold(v string) predicate.Title {
	return predicate.Title(sql.FieldEqualFold(FieldLang, v))
}

// LangContainsFold applies the ContainsFold predicate on the "lang" field.
func LangContainsFold(v string) predicate.Title {
	return predicate.Title(sql.FieldContainsFold(FieldLang, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.Title {
	return predicate.Title(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.Title {
	return predicate.Title(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.Title {
	return predicate.Title(sql.FieldContainsFold(FieldSourceName, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldPublishedAt, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldDetectedAt, v))
}

// GateKeepEQ applies the EQ predicate on the "gate_keep" field.
func GateKeepEQ(v bool) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldGateKeep, v))
}

// GateKeepNEQ applies the NEQ predicate on the "gate_keep" field.
func GateKeepNEQ(v bool) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldGateKeep, v))
}

// GateScoreEQ applies the EQ predicate on the "gate_score" field.
func GateScoreEQ(v float64) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldGateScore, v))
}

// GateScoreNEQ applies the NEQ predicate on the "gate_score" field.
func GateScoreNEQ(v float64) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldGateScore, v))
}

// GateScoreIn applies the In predicate on the "gate_score" field.
func GateScoreIn(vs ...float64) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldGateScore, vs...))
}

// GateScoreNotIn applies the NotIn predicate on the "gate_score" field.
func GateScoreNotIn(vs ...float64) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldGateScore, vs...))
}

// GateScoreGT applies the GT predicate on the "gate_score" field.
func GateScoreGT(v float64) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldGateScore, v))
}

// GateScoreGTE applies the GTE predicate on the "gate_score" field.
func GateScoreGTE(v float64) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldGateScore, v))
}

// GateScoreLT applies the LT predicate on the "gate_score" field.
func GateScoreLT(v float64) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldGateScore, v))
}

// GateScoreLTE applies the LTE predicate on the "gate_score" field.
func GateScoreLTE(v float64) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldGateScore, v))
}

// GateScoreIsNil applies the IsNil predicate on the "gate_score" field.
func GateScoreIsNil() predicate.Title {
	return predicate.Title(sql.FieldIsNull(FieldGateScore))
}

// GateScoreNotNil applies the NotNil predicate on the "gate_score" field.
func GateScoreNotNil() predicate.Title {
	return predicate.Title(sql.FieldNotNull(FieldGateScore))
}

// GateActorsIsNil applies the IsNil predicate on the "gate_actors" field.
func GateActorsIsNil() predicate.Title {
	return predicate.Title(sql.FieldIsNull(FieldGateActors))
}

// GateActorsNotNil applies the NotNil predicate on the "gate_actors" field.
func GateActorsNotNil() predicate.Title {
	return predicate.Title(sql.FieldNotNull(FieldGateActors))
}

// EventFamilyIDEQ applies the EQ predicate on the "event_family_id" field.
func EventFamilyIDEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldEventFamilyID, v))
}

// EventFamilyIDNEQ applies the NEQ predicate on the "event_family_id" field.
func EventFamilyIDNEQ(v string) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldEventFamilyID, v))
}

// EventFamilyIDIn applies the In predicate on the "event_family_id" field.
func EventFamilyIDIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldEventFamilyID, vs...))
}

// EventFamilyIDNotIn applies the NotIn predicate on the "event_family_id" field.
func EventFamilyIDNotIn(vs ...string) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldEventFamilyID, vs...))
}

// EventFamilyIDGT applies the GT predicate on the "event_family_id" field.
func EventFamilyIDGT(v string) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldEventFamilyID, v))
}

// EventFamilyIDGTE applies the GTE predicate on the "event_family_id" field.
func EventFamilyIDGTE(v string) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldEventFamilyID, v))
}

// EventFamilyIDLT applies the LT predicate on the "event_family_id" field.
func EventFamilyIDLT(v string) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldEventFamilyID, v))
}

// EventFamilyIDLTE applies the LTE predicate on the "event_family_id" field.
func EventFamilyIDLTE(v string) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldEventFamilyID, v))
}

// EventFamilyIDContains applies the Contains predicate on the "event_family_id" field.
func EventFamilyIDContains(v string) predicate.Title {
	return predicate.Title(sql.FieldContains(FieldEventFamilyID, v))
}

// EventFamilyIDHasPrefix applies the HasPrefix predicate on the "event_family_id" field.
func EventFamilyIDHasPrefix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasPrefix(FieldEventFamilyID, v))
}

// EventFamilyIDHasSuffix applies the HasSuffix predicate on the "event_family_id" field.
func EventFamilyIDHasSuffix(v string) predicate.Title {
	return predicate.Title(sql.FieldHasSuffix(FieldEventFamilyID, v))
}

// EventFamilyIDIsNil applies the IsNil predicate on the "event_family_id" field.
func EventFamilyIDIsNil() predicate.Title {
	return predicate.Title(sql.FieldIsNull(FieldEventFamilyID))
}

// EventFamilyIDNotNil applies the NotNil predicate on the "event_family_id" field.
func EventFamilyIDNotNil() predicate.Title {
	return predicate.Title(sql.FieldNotNull(FieldEventFamilyID))
}

// EventFamilyIDEqualFold applies the EqualFold predicate on the "event_family_id" field.
func EventFamilyIDEqualFold(v string) predicate.Title {
	return predicate.Title(sql.FieldEqualFold(FieldEventFamilyID, v))
}

// EventFamilyIDContainsFold applies the ContainsFold predicate on the "event_family_id" field.
func EventFamilyIDContainsFold(v string) predicate.Title {
	return predicate.Title(sql.FieldContainsFold(FieldEventFamilyID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Title {
	return predicate.Title(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Title {
	return predicate.Title(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Title {
	return predicate.Title(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEventFamily applies the HasEdge predicate on the "event_family" edge.
func HasEventFamily() predicate.Title {
	return predicate.Title(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventFamilyTable, EventFamilyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventFamilyWith applies the HasEdge predicate on the "event_family" edge with a given conditions (other predicates).
func HasEventFamilyWith(preds ...predicate.EventFamily) predicate.Title {
	return predicate.Title(func(s *sql.Selector) {
		step := newEventFamilyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Title) predicate.Title {
	return predicate.Title(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Title) predicate.Title {
	return predicate.Title(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Title) predicate.Title {
	return predicate.Title(sql.NotPredicates(p))
}
