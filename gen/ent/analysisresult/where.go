// Code generated by ent, DO NOT EDIT.

package analysisresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldApplicationID, v))
}

// DocsComplete applies equality check predicate on the "docs_complete" field. It's identical to DocsCompleteEQ.
func DocsComplete(v bool) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldDocsComplete, v))
}

// ValidationStatus applies equality check predicate on the "validation_status" field. It's identical to ValidationStatusEQ.
func ValidationStatus(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldValidationStatus, v))
}

// AnalyzedAt applies equality check predicate on the "analyzed_at" field. It's identical to AnalyzedAtEQ.
func AnalyzedAt(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldAnalyzedAt, v))
}

// ElapsedSec applies equality check predicate on the "elapsed_sec" field. It's identical to ElapsedSecEQ.
func ElapsedSec(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldElapsedSec, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ProvenanceIsNil applies the IsNil predicate on the "provenance" field.
func ProvenanceIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldProvenance))
}

// ProvenanceNotNil applies the NotNil predicate on the "provenance" field.
func ProvenanceNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldProvenance))
}

// ConflictsIsNil applies the IsNil predicate on the "conflicts" field.
func ConflictsIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldConflicts))
}

// ConflictsNotNil applies the NotNil predicate on the "conflicts" field.
func ConflictsNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldConflicts))
}

// FindingsIsNil applies the IsNil predicate on the "findings" field.
func FindingsIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldFindings))
}

// FindingsNotNil applies the NotNil predicate on the "findings" field.
func FindingsNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldFindings))
}

// DocsCompleteEQ applies the EQ predicate on the "docs_complete" field.
func DocsCompleteEQ(v bool) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldDocsComplete, v))
}

// DocsCompleteNEQ applies the NEQ predicate on the "docs_complete" field.
func DocsCompleteNEQ(v bool) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldDocsComplete, v))
}

// MissingDocsIsNil applies the IsNil predicate on the "missing_docs" field.
func MissingDocsIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldMissingDocs))
}

// MissingDocsNotNil applies the NotNil predicate on the "missing_docs" field.
func MissingDocsNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldMissingDocs))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationStatusGT applies the GT predicate on the "validation_status" field.
func ValidationStatusGT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldValidationStatus, v))
}

// ValidationStatusGTE applies the GTE predicate on the "validation_status" field.
func ValidationStatusGTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldValidationStatus, v))
}

// ValidationStatusLT applies the LT predicate on the "validation_status" field.
func ValidationStatusLT(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldValidationStatus, v))
}

// ValidationStatusLTE applies the LTE predicate on the "validation_status" field.
func ValidationStatusLTE(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldValidationStatus, v))
}

// ValidationStatusContains applies the Contains predicate on the "validation_status" field.
func ValidationStatusContains(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContains(FieldValidationStatus, v))
}

// ValidationStatusHasPrefix applies the HasPrefix predicate on the "validation_status" field.
func ValidationStatusHasPrefix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasPrefix(FieldValidationStatus, v))
}

// ValidationStatusHasSuffix applies the HasSuffix predicate on the "validation_status" field.
func ValidationStatusHasSuffix(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldHasSuffix(FieldValidationStatus, v))
}

// ValidationStatusIsNil applies the IsNil predicate on the "validation_status" field.
func ValidationStatusIsNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIsNull(FieldValidationStatus))
}

// ValidationStatusNotNil applies the NotNil predicate on the "validation_status" field.
func ValidationStatusNotNil() predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotNull(FieldValidationStatus))
}

// ValidationStatusEqualFold applies the EqualFold predicate on the "validation_status" field.
func ValidationStatusEqualFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEqualFold(FieldValidationStatus, v))
}

// ValidationStatusContainsFold applies the ContainsFold predicate on the "validation_status" field.
func ValidationStatusContainsFold(v string) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldContainsFold(FieldValidationStatus, v))
}

// AnalyzedAtEQ applies the EQ predicate on the "analyzed_at" field.
func AnalyzedAtEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtNEQ applies the NEQ predicate on the "analyzed_at" field.
func AnalyzedAtNEQ(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldAnalyzedAt, v))
}

// AnalyzedAtIn applies the In predicate on the "analyzed_at" field.
func AnalyzedAtIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtNotIn applies the NotIn predicate on the "analyzed_at" field.
func AnalyzedAtNotIn(vs ...time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldAnalyzedAt, vs...))
}

// AnalyzedAtGT applies the GT predicate on the "analyzed_at" field.
func AnalyzedAtGT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldAnalyzedAt, v))
}

// AnalyzedAtGTE applies the GTE predicate on the "analyzed_at" field.
func AnalyzedAtGTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldAnalyzedAt, v))
}

// AnalyzedAtLT applies the LT predicate on the "analyzed_at" field.
func AnalyzedAtLT(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldAnalyzedAt, v))
}

// AnalyzedAtLTE applies the LTE predicate on the "analyzed_at" field.
func AnalyzedAtLTE(v time.Time) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldAnalyzedAt, v))
}

// ElapsedSecEQ applies the EQ predicate on the "elapsed_sec" field.
func ElapsedSecEQ(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldEQ(FieldElapsedSec, v))
}

// ElapsedSecNEQ applies the NEQ predicate on the "elapsed_sec" field.
func ElapsedSecNEQ(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNEQ(FieldElapsedSec, v))
}

// ElapsedSecIn applies the In predicate on the "elapsed_sec" field.
func ElapsedSecIn(vs ...float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldIn(FieldElapsedSec, vs...))
}

// ElapsedSecNotIn applies the NotIn predicate on the "elapsed_sec" field.
func ElapsedSecNotIn(vs ...float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldNotIn(FieldElapsedSec, vs...))
}

// ElapsedSecGT applies the GT predicate on the "elapsed_sec" field.
func ElapsedSecGT(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGT(FieldElapsedSec, v))
}

// ElapsedSecGTE applies the GTE predicate on the "elapsed_sec" field.
func ElapsedSecGTE(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldGTE(FieldElapsedSec, v))
}

// ElapsedSecLT applies the LT predicate on the "elapsed_sec" field.
func ElapsedSecLT(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLT(FieldElapsedSec, v))
}

// ElapsedSecLTE applies the LTE predicate on the "elapsed_sec" field.
func ElapsedSecLTE(v float64) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.FieldLTE(FieldElapsedSec, v))
}

// HasApplication applies the HasEdge predicate on the "application" edge.
func HasApplication() predicate.AnalysisResult {
	return predicate.AnalysisResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationWith applies the HasEdge predicate on the "application" edge with a given conditions (other predicates).
func HasApplicationWith(preds ...predicate.Application) predicate.AnalysisResult {
	return predicate.AnalysisResult(func(s *sql.Selector) {
		step := newApplicationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisResult) predicate.AnalysisResult {
	return predicate.AnalysisResult(sql.NotPredicates(p))
}
