// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v int64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSourceID, v))
}

// TrackingNo applies equality check predicate on the "tracking_no" field. It's identical to TrackingNoEQ.
func TrackingNo(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTrackingNo, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldServiceID, v))
}

// ServiceName applies equality check predicate on the "service_name" field. It's identical to ServiceNameEQ.
func ServiceName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldServiceName, v))
}

// ApplicantName applies equality check predicate on the "applicant_name" field. It's identical to ApplicantNameEQ.
func ApplicantName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicantName, v))
}

// NationalID applies equality check predicate on the "national_id" field. It's identical to NationalIDEQ.
func NationalID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNationalID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldErrorMessage, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSubmittedAt, v))
}

// ProcessingFrom applies equality check predicate on the "processing_from" field. It's identical to ProcessingFromEQ.
func ProcessingFrom(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProcessingFrom, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v int64) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v int64) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...int64) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...int64) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v int64) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v int64) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v int64) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v int64) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSourceID, v))
}

// TrackingNoEQ applies the EQ predicate on the "tracking_no" field.
func TrackingNoEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldTrackingNo, v))
}

// TrackingNoNEQ applies the NEQ predicate on the "tracking_no" field.
func TrackingNoNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldTrackingNo, v))
}

// TrackingNoIn applies the In predicate on the "tracking_no" field.
func TrackingNoIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldTrackingNo, vs...))
}

// TrackingNoNotIn applies the NotIn predicate on the "tracking_no" field.
func TrackingNoNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldTrackingNo, vs...))
}

// TrackingNoGT applies the GT predicate on the "tracking_no" field.
func TrackingNoGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldTrackingNo, v))
}

// TrackingNoGTE applies the GTE predicate on the "tracking_no" field.
func TrackingNoGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldTrackingNo, v))
}

// TrackingNoLT applies the LT predicate on the "tracking_no" field.
func TrackingNoLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldTrackingNo, v))
}

// TrackingNoLTE applies the LTE predicate on the "tracking_no" field.
func TrackingNoLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldTrackingNo, v))
}

// TrackingNoContains applies the Contains predicate on the "tracking_no" field.
func TrackingNoContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldTrackingNo, v))
}

// TrackingNoHasPrefix applies the HasPrefix predicate on the "tracking_no" field.
func TrackingNoHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldTrackingNo, v))
}

// TrackingNoHasSuffix applies the HasSuffix predicate on the "tracking_no" field.
func TrackingNoHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldTrackingNo, v))
}

// TrackingNoEqualFold applies the EqualFold predicate on the "tracking_no" field.
func TrackingNoEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldTrackingNo, v))
}

// TrackingNoContainsFold applies the ContainsFold predicate on the "tracking_no" field.
func TrackingNoContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldTrackingNo, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDContains applies the Contains predicate on the "service_id" field.
func ServiceIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldServiceID, v))
}

// ServiceIDHasPrefix applies the HasPrefix predicate on the "service_id" field.
func ServiceIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldServiceID, v))
}

// ServiceIDHasSuffix applies the HasSuffix predicate on the "service_id" field.
func ServiceIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldServiceID, v))
}

// ServiceIDEqualFold applies the EqualFold predicate on the "service_id" field.
func ServiceIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldServiceID, v))
}

// ServiceIDContainsFold applies the ContainsFold predicate on the "service_id" field.
func ServiceIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldServiceID, v))
}

// ServiceNameEQ applies the EQ predicate on the "service_name" field.
func ServiceNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldServiceName, v))
}

// ServiceNameNEQ applies the NEQ predicate on the "service_name" field.
func ServiceNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldServiceName, v))
}

// ServiceNameIn applies the In predicate on the "service_name" field.
func ServiceNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldServiceName, vs...))
}

// ServiceNameNotIn applies the NotIn predicate on the "service_name" field.
func ServiceNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldServiceName, vs...))
}

// ServiceNameGT applies the GT predicate on the "service_name" field.
func ServiceNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldServiceName, v))
}

// ServiceNameGTE applies the GTE predicate on the "service_name" field.
func ServiceNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldServiceName, v))
}

// ServiceNameLT applies the LT predicate on the "service_name" field.
func ServiceNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldServiceName, v))
}

// ServiceNameLTE applies the LTE predicate on the "service_name" field.
func ServiceNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldServiceName, v))
}

// ServiceNameContains applies the Contains predicate on the "service_name" field.
func ServiceNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldServiceName, v))
}

// ServiceNameHasPrefix applies the HasPrefix predicate on the "service_name" field.
func ServiceNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldServiceName, v))
}

// ServiceNameHasSuffix applies the HasSuffix predicate on the "service_name" field.
func ServiceNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldServiceName, v))
}

// ServiceNameIsNil applies the IsNil predicate on the "service_name" field.
func ServiceNameIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldServiceName))
}

// ServiceNameNotNil applies the NotNil predicate on the "service_name" field.
func ServiceNameNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldServiceName))
}

// ServiceNameEqualFold applies the EqualFold predicate on the "service_name" field.
func ServiceNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldServiceName, v))
}

// ServiceNameContainsFold applies the ContainsFold predicate on the "service_name" field.
func ServiceNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldServiceName, v))
}

// ApplicantNameEQ applies the EQ predicate on the "applicant_name" field.
func ApplicantNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicantName, v))
}

// ApplicantNameNEQ applies the NEQ predicate on the "applicant_name" field.
func ApplicantNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldApplicantName, v))
}

// ApplicantNameIn applies the In predicate on the "applicant_name" field.
func ApplicantNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldApplicantName, vs...))
}

// ApplicantNameNotIn applies the NotIn predicate on the "applicant_name" field.
func ApplicantNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldApplicantName, vs...))
}

// ApplicantNameGT applies the GT predicate on the "applicant_name" field.
func ApplicantNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldApplicantName, v))
}

// ApplicantNameGTE applies the GTE predicate on the "applicant_name" field.
func ApplicantNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldApplicantName, v))
}

// ApplicantNameLT applies the LT predicate on the "applicant_name" field.
func ApplicantNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldApplicantName, v))
}

// ApplicantNameLTE applies the LTE predicate on the "applicant_name" field.
func ApplicantNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldApplicantName, v))
}

// ApplicantNameContains applies the Contains predicate on the "applicant_name" field.
func ApplicantNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldApplicantName, v))
}

// ApplicantNameHasPrefix applies the HasPrefix predicate on the "applicant_name" field.
func ApplicantNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldApplicantName, v))
}

// ApplicantNameHasSuffix applies the HasSuffix predicate on the "applicant_name" field.
func ApplicantNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldApplicantName, v))
}

// ApplicantNameIsNil applies the IsNil predicate on the "applicant_name" field.
func ApplicantNameIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldApplicantName))
}

// ApplicantNameNotNil applies the NotNil predicate on the "applicant_name" field.
func ApplicantNameNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldApplicantName))
}

// ApplicantNameEqualFold applies the EqualFold predicate on the "applicant_name" field.
func ApplicantNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldApplicantName, v))
}

// ApplicantNameContainsFold applies the ContainsFold predicate on the "applicant_name" field.
func ApplicantNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldApplicantName, v))
}

// NationalIDEQ applies the EQ predicate on the "national_id" field.
func NationalIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNationalID, v))
}

// NationalIDNEQ applies the NEQ predicate on the "national_id" field.
func NationalIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldNationalID, v))
}

// NationalIDIn applies the In predicate on the "national_id" field.
func NationalIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldNationalID, vs...))
}

// NationalIDNotIn applies the NotIn predicate on the "national_id" field.
func NationalIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldNationalID, vs...))
}

// NationalIDGT applies the GT predicate on the "national_id" field.
func NationalIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldNationalID, v))
}

// NationalIDGTE applies the GTE predicate on the "national_id" field.
func NationalIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldNationalID, v))
}

// NationalIDLT applies the LT predicate on the "national_id" field.
func NationalIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldNationalID, v))
}

// NationalIDLTE applies the LTE predicate on the "national_id" field.
func NationalIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldNationalID, v))
}

// NationalIDContains applies the Contains predicate on the "national_id" field.
func NationalIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldNationalID, v))
}

// NationalIDHasPrefix applies the HasPrefix predicate on the "national_id" field.
func NationalIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldNationalID, v))
}

// NationalIDHasSuffix applies the HasSuffix predicate on the "national_id" field.
func NationalIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldNationalID, v))
}

// NationalIDEqualFold applies the EqualFold predicate on the "national_id" field.
func NationalIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldNationalID, v))
}

// NationalIDContainsFold applies the ContainsFold predicate on the "national_id" field.
func NationalIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldNationalID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldSubmittedAt))
}

// ProcessingFromEQ applies the EQ predicate on the "processing_from" field.
func ProcessingFromEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProcessingFrom, v))
}

// ProcessingFromNEQ applies the NEQ predicate on the "processing_from" field.
func ProcessingFromNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldProcessingFrom, v))
}

// ProcessingFromIn applies the In predicate on the "processing_from" field.
func ProcessingFromIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldProcessingFrom, vs...))
}

// ProcessingFromNotIn applies the NotIn predicate on the "processing_from" field.
func ProcessingFromNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldProcessingFrom, vs...))
}

// ProcessingFromGT applies the GT predicate on the "processing_from" field.
func ProcessingFromGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldProcessingFrom, v))
}

// ProcessingFromGTE applies the GTE predicate on the "processing_from" field.
func ProcessingFromGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldProcessingFrom, v))
}

// ProcessingFromLT applies the LT predicate on the "processing_from" field.
func ProcessingFromLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldProcessingFrom, v))
}

// ProcessingFromLTE applies the LTE predicate on the "processing_from" field.
func ProcessingFromLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldProcessingFrom, v))
}

// ProcessingFromIsNil applies the IsNil predicate on the "processing_from" field.
func ProcessingFromIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldProcessingFrom))
}

// ProcessingFromNotNil applies the NotNil predicate on the "processing_from" field.
func ProcessingFromNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldProcessingFrom))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldProcessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.AnalysisResult) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
