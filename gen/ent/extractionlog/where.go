// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldDocumentID, v))
}

// SegmentIndex applies equality check predicate on the "segment_index" field. It's identical to SegmentIndexEQ.
func SegmentIndex(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSegmentIndex, v))
}

// SegmentStart applies equality check predicate on the "segment_start" field. It's identical to SegmentStartEQ.
func SegmentStart(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSegmentStart, v))
}

// SegmentEnd applies equality check predicate on the "segment_end" field. It's identical to SegmentEndEQ.
func SegmentEnd(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSegmentEnd, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldModelName, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldDurationMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSuccess, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldDocumentID, vs...))
}

// SegmentIndexEQ applies the EQ predicate on the "segment_index" field.
func SegmentIndexEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSegmentIndex, v))
}

// SegmentIndexNEQ applies the NEQ predicate on the "segment_index" field.
func SegmentIndexNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldSegmentIndex, v))
}

// SegmentIndexIn applies the In predicate on the "segment_index" field.
func SegmentIndexIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldSegmentIndex, vs...))
}

// SegmentIndexNotIn applies the NotIn predicate on the "segment_index" field.
func SegmentIndexNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldSegmentIndex, vs...))
}

// SegmentIndexGT applies the GT predicate on the "segment_index" field.
func SegmentIndexGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldSegmentIndex, v))
}

// SegmentIndexGTE applies the GTE predicate on the "segment_index" field.
func SegmentIndexGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldSegmentIndex, v))
}

// SegmentIndexLT applies the LT predicate on the "segment_index" field.
func SegmentIndexLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldSegmentIndex, v))
}

// SegmentIndexLTE applies the LTE predicate on the "segment_index" field.
func SegmentIndexLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldSegmentIndex, v))
}

// SegmentStartEQ applies the EQ predicate on the "segment_start" field.
func SegmentStartEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSegmentStart, v))
}

// SegmentStartNEQ applies the NEQ predicate on the "segment_start" field.
func SegmentStartNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldSegmentStart, v))
}

// SegmentStartIn applies the In predicate on the "segment_start" field.
func SegmentStartIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldSegmentStart, vs...))
}

// SegmentStartNotIn applies the NotIn predicate on the "segment_start" field.
func SegmentStartNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldSegmentStart, vs...))
}

// SegmentStartGT applies the GT predicate on the "segment_start" field.
func SegmentStartGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldSegmentStart, v))
}

// SegmentStartGTE applies the GTE predicate on the "segment_start" field.
func SegmentStartGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldSegmentStart, v))
}

// SegmentStartLT applies the LT predicate on the "segment_start" field.
func SegmentStartLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldSegmentStart, v))
}

// SegmentStartLTE applies the LTE predicate on the "segment_start" field.
func SegmentStartLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldSegmentStart, v))
}

// SegmentEndEQ applies the EQ predicate on the "segment_end" field.
func SegmentEndEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSegmentEnd, v))
}

// SegmentEndNEQ applies the NEQ predicate on the "segment_end" field.
func SegmentEndNEQ(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldSegmentEnd, v))
}

// SegmentEndIn applies the In predicate on the "segment_end" field.
func SegmentEndIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldSegmentEnd, vs...))
}

// SegmentEndNotIn applies the NotIn predicate on the "segment_end" field.
func SegmentEndNotIn(vs ...int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldSegmentEnd, vs...))
}

// SegmentEndGT applies the GT predicate on the "segment_end" field.
func SegmentEndGT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldSegmentEnd, v))
}

// SegmentEndGTE applies the GTE predicate on the "segment_end" field.
func SegmentEndGTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldSegmentEnd, v))
}

// SegmentEndLT applies the LT predicate on the "segment_end" field.
func SegmentEndLT(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldSegmentEnd, v))
}

// SegmentEndLTE applies the LTE predicate on the "segment_end" field.
func SegmentEndLTE(v int) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldSegmentEnd, v))
}

// FieldsIsNil applies the IsNil predicate on the "fields" field.
func FieldsIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldFields))
}

// FieldsNotNil applies the NotNil predicate on the "fields" field.
func FieldsNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldFields))
}

// RawJSONIsNil applies the IsNil predicate on the "raw_json" field.
func RawJSONIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldRawJSON))
}

// RawJSONNotNil applies the NotNil predicate on the "raw_json" field.
func RawJSONNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldRawJSON))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldModelName, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldDurationMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldSuccess, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionLog {
	return predicate.ExtractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionLog {
	return predicate.ExtractionLog(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.NotPredicates(p))
}
