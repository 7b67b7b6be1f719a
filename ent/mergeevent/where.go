// Code generated by ent, DO NOT EDIT.

package mergeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/design4music/sni-platform-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldRunID, v))
}

// SurvivorEfID applies equality check predicate on the "survivor_ef_id" field. It's identical to SurvivorEfIDEQ.
func SurvivorEfID(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSurvivorEfID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSourceID, v))
}

// SourceTitleCount applies equality check predicate on the "source_title_count" field. It's identical to SourceTitleCountEQ.
func SourceTitleCount(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSourceTitleCount, v))
}

// TitlesAdded applies equality check predicate on the "titles_added" field. It's identical to TitlesAddedEQ.
func TitlesAdded(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldTitlesAdded, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SurvivorEfIDEQ applies the EQ predicate on the "survivor_ef_id" field.
func SurvivorEfIDEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSurvivorEfID, v))
}

// SurvivorEfIDNEQ applies the NEQ predicate on the "survivor_ef_id" field.
func SurvivorEfIDNEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldSurvivorEfID, v))
}

// SurvivorEfIDIn applies the In predicate on the "survivor_ef_id" field.
func SurvivorEfIDIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldSurvivorEfID, vs...))
}

// SurvivorEfIDNotIn applies the NotIn predicate on the "survivor_ef_id" field.
func SurvivorEfIDNotIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldSurvivorEfID, vs...))
}

// SurvivorEfIDGT applies the GT predicate on the "survivor_ef_id" field.
func SurvivorEfIDGT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldSurvivorEfID, v))
}

// SurvivorEfIDGTE applies the GTE predicate on the "survivor_ef_id" field.
func SurvivorEfIDGTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldSurvivorEfID, v))
}

// SurvivorEfIDLT applies the LT predicate on the "survivor_ef_id" field.
func SurvivorEfIDLT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldSurvivorEfID, v))
}

// SurvivorEfIDLTE applies the LTE predicate on the "survivor_ef_id" field.
func SurvivorEfIDLTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldSurvivorEfID, v))
}

// SurvivorEfIDContains applies the Contains predicate on the "survivor_ef_id" field.
func SurvivorEfIDContains(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContains(FieldSurvivorEfID, v))
}

// SurvivorEfIDHasPrefix applies the HasPrefix predicate on the "survivor_ef_id" field.
func SurvivorEfIDHasPrefix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasPrefix(FieldSurvivorEfID, v))
}

// SurvivorEfIDHasSuffix applies the HasSuffix predicate on the "survivor_ef_id" field.
func SurvivorEfIDHasSuffix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasSuffix(FieldSurvivorEfID, v))
}

// SurvivorEfIDEqualFold applies the EqualFold predicate on the "survivor_ef_id" field.
func SurvivorEfIDEqualFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldSurvivorEfID, v))
}

// SurvivorEfIDContainsFold applies the ContainsFold predicate on the "survivor_ef_id" field.
func SurvivorEfIDContainsFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldSurvivorEfID, v))
}

// SourceKindEQ applies the EQ predicate on the "source_kind" field.
func SourceKindEQ(v SourceKind) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSourceKind, v))
}

// SourceKindNEQ applies the NEQ predicate on the "source_kind" field.
func SourceKindNEQ(v SourceKind) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldSourceKind, v))
}

// SourceKindIn applies the In predicate on the "source_kind" field.
func SourceKindIn(vs ...SourceKind) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldSourceKind, vs...))
}

// SourceKindNotIn applies the NotIn predicate on the "source_kind" field.
func SourceKindNotIn(vs ...SourceKind) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldSourceKind, vs...))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldSourceID, v))
}

// SourceTitleCountEQ applies the EQ predicate on the "source_title_count" field.
func SourceTitleCountEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSourceTitleCount, v))
}

// SourceTitleCountNEQ applies the NEQ predicate on the "source_title_count" field.
func SourceTitleCountNEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldSourceTitleCount, v))
}

// SourceTitleCountIn applies the In predicate on the "source_title_count" field.
func SourceTitleCountIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldSourceTitleCount, vs...))
}

// SourceTitleCountNotIn applies the NotIn predicate on the "source_title_count" field.
func SourceTitleCountNotIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldSourceTitleCount, vs...))
}

// SourceTitleCountGT applies the GT predicate on the "source_title_count" field.
func SourceTitleCountGT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldSourceTitleCount, v))
}

// SourceTitleCountGTE applies the GTE predicate on the "source_title_count" field.
func SourceTitleCountGTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldSourceTitleCount, v))
}

// SourceTitleCountLT applies the LT predicate on the "source_title_count" field.
func SourceTitleCountLT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldSourceTitleCount, v))
}

// SourceTitleCountLTE applies the LTE predicate on the "source_title_count" field.
func SourceTitleCountLTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldSourceTitleCount, v))
}

// TitlesAddedEQ applies the EQ predicate on the "titles_added" field.
func TitlesAddedEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldTitlesAdded, v))
}

// TitlesAddedNEQ applies the NEQ predicate on the "titles_added" field.
func TitlesAddedNEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldTitlesAdded, v))
}

// TitlesAddedIn applies the In predicate on the "titles_added" field.
func TitlesAddedIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldTitlesAdded, vs...))
}

// TitlesAddedNotIn applies the NotIn predicate on the "titles_added" field.
func TitlesAddedNotIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldTitlesAdded, vs...))
}

// TitlesAddedGT applies the GT predicate on the "titles_added" field.
func TitlesAddedGT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldTitlesAdded, v))
}

// TitlesAddedGTE applies the GTE predicate on the "titles_added" field.
func TitlesAddedGTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldTitlesAdded, v))
}

// TitlesAddedLT applies the LT predicate on the "titles_added" field.
func TitlesAddedLT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldTitlesAdded, v))
}

// TitlesAddedLTE applies the LTE predicate on the "titles_added" field.
func TitlesAddedLTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldTitlesAdded, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.MergeEvent {
	return predicate.MergeEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PipelineRun) predicate.MergeEvent {
	return predicate.MergeEvent(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSurvivor applies the HasEdge predicate on the "survivor" edge.
func HasSurvivor() predicate.MergeEvent {
	return predicate.MergeEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SurvivorTable, SurvivorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSurvivorWith applies the HasEdge predicate on the "survivor" edge with a given conditions (other predicates).
func HasSurvivorWith(preds ...predicate.EventFamily) predicate.MergeEvent {
	return predicate.MergeEvent(func(s *sql.Selector) {
		step := newSurvivorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergeEvent) predicate.MergeEvent {
	return predicate.MergeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergeEvent) predicate.MergeEvent {
	return predicate.MergeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergeEvent) predicate.MergeEvent {
	return predicate.MergeEvent(sql.NotPredicates(p))
}
