// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *ApplicationUpdate) SetSourceID(v int64) *ApplicationUpdate {
	_u.mutation.ResetSourceID()
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSourceID(v *int64) *ApplicationUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// AddSourceID adds value to the "source_id" field.
func (_u *ApplicationUpdate) AddSourceID(v int64) *ApplicationUpdate {
	_u.mutation.AddSourceID(v)
	return _u
}

// SetTrackingNo sets the "tracking_no" field.
func (_u *ApplicationUpdate) SetTrackingNo(v string) *ApplicationUpdate {
	_u.mutation.SetTrackingNo(v)
	return _u
}

// SetNillableTrackingNo sets the "tracking_no" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableTrackingNo(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetTrackingNo(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *ApplicationUpdate) SetServiceID(v string) *ApplicationUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableServiceID(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetServiceName sets the "service_name" field.
func (_u *ApplicationUpdate) SetServiceName(v string) *ApplicationUpdate {
	_u.mutation.SetServiceName(v)
	return _u
}

// SetNillableServiceName sets the "service_name" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableServiceName(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetServiceName(*v)
	}
	return _u
}

// ClearServiceName clears the value of the "service_name" field.
func (_u *ApplicationUpdate) ClearServiceName() *ApplicationUpdate {
	_u.mutation.ClearServiceName()
	return _u
}

// SetApplicantName sets the "applicant_name" field.
func (_u *ApplicationUpdate) SetApplicantName(v string) *ApplicationUpdate {
	_u.mutation.SetApplicantName(v)
	return _u
}

// SetNillableApplicantName sets the "applicant_name" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableApplicantName(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetApplicantName(*v)
	}
	return _u
}

// ClearApplicantName clears the value of the "applicant_name" field.
func (_u *ApplicationUpdate) ClearApplicantName() *ApplicationUpdate {
	_u.mutation.ClearApplicantName()
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *ApplicationUpdate) SetNationalID(v string) *ApplicationUpdate {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableNationalID(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v string) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ApplicationUpdate) SetErrorMessage(v string) *ApplicationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableErrorMessage(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ApplicationUpdate) ClearErrorMessage() *ApplicationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ApplicationUpdate) SetSubmittedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSubmittedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ApplicationUpdate) ClearSubmittedAt() *ApplicationUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetProcessingFrom sets the "processing_from" field.
func (_u *ApplicationUpdate) SetProcessingFrom(v time.Time) *ApplicationUpdate {
	_u.mutation.SetProcessingFrom(v)
	return _u
}

// SetNillableProcessingFrom sets the "processing_from" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableProcessingFrom(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetProcessingFrom(*v)
	}
	return _u
}

// ClearProcessingFrom clears the value of the "processing_from" field.
func (_u *ApplicationUpdate) ClearProcessingFrom() *ApplicationUpdate {
	_u.mutation.ClearProcessingFrom()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ApplicationUpdate) SetProcessedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableProcessedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ApplicationUpdate) ClearProcessedAt() *ApplicationUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicationUpdate) SetCreatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCreatedAt(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ApplicationUpdate) AddDocumentIDs(ids ...uuid.UUID) *ApplicationUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ApplicationUpdate) AddDocuments(v ...*Document) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddResultIDs adds the "results" edge to the AnalysisResult entity by IDs.
func (_u *ApplicationUpdate) AddResultIDs(ids ...uuid.UUID) *ApplicationUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the AnalysisResult entity.
func (_u *ApplicationUpdate) AddResults(v ...*AnalysisResult) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ApplicationUpdate) ClearDocuments() *ApplicationUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ApplicationUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ApplicationUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ApplicationUpdate) RemoveDocuments(v ...*Document) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearResults clears all "results" edges to the AnalysisResult entity.
func (_u *ApplicationUpdate) ClearResults() *ApplicationUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to AnalysisResult entities by IDs.
func (_u *ApplicationUpdate) RemoveResultIDs(ids ...uuid.UUID) *ApplicationUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to AnalysisResult entities.
func (_u *ApplicationUpdate) RemoveResults(v ...*AnalysisResult) *ApplicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.TrackingNo(); ok {
		if err := application.TrackingNoValidator(v); err != nil {
			return &ValidationError{Name: "tracking_no", err: fmt.Errorf(`ent: validator failed for field "Application.tracking_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceID(); ok {
		if err := application.ServiceIDValidator(v); err != nil {
			return &ValidationError{Name: "service_id", err: fmt.Errorf(`ent: validator failed for field "Application.service_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalID(); ok {
		if err := application.NationalIDValidator(v); err != nil {
			return &ValidationError{Name: "national_id", err: fmt.Errorf(`ent: validator failed for field "Application.national_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(application.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceID(); ok {
		_spec.AddField(application.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TrackingNo(); ok {
		_spec.SetField(application.FieldTrackingNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(application.FieldServiceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceName(); ok {
		_spec.SetField(application.FieldServiceName, field.TypeString, value)
	}
	if _u.mutation.ServiceNameCleared() {
		_spec.ClearField(application.FieldServiceName, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicantName(); ok {
		_spec.SetField(application.FieldApplicantName, field.TypeString, value)
	}
	if _u.mutation.ApplicantNameCleared() {
		_spec.ClearField(application.FieldApplicantName, field.TypeString)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(application.FieldNationalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(application.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(application.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(application.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(application.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingFrom(); ok {
		_spec.SetField(application.FieldProcessingFrom, field.TypeTime, value)
	}
	if _u.mutation.ProcessingFromCleared() {
		_spec.ClearField(application.FieldProcessingFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(application.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(application.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.DocumentsTable,
			Columns: []string{application.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.DocumentsTable,
			Columns: []string{application.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.DocumentsTable,
			Columns: []string{application.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ResultsTable,
			Columns: []string{application.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ResultsTable,
			Columns: []string{application.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ResultsTable,
			Columns: []string{application.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetSourceID sets the "source_id" field.
func (_u *ApplicationUpdateOne) SetSourceID(v int64) *ApplicationUpdateOne {
	_u.mutation.ResetSourceID()
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSourceID(v *int64) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// AddSourceID adds value to the "source_id" field.
func (_u *ApplicationUpdateOne) AddSourceID(v int64) *ApplicationUpdateOne {
	_u.mutation.AddSourceID(v)
	return _u
}

// SetTrackingNo sets the "tracking_no" field.
func (_u *ApplicationUpdateOne) SetTrackingNo(v string) *ApplicationUpdateOne {
	_u.mutation.SetTrackingNo(v)
	return _u
}

// SetNillableTrackingNo sets the "tracking_no" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableTrackingNo(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetTrackingNo(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *ApplicationUpdateOne) SetServiceID(v string) *ApplicationUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableServiceID(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetServiceName sets the "service_name" field.
func (_u *ApplicationUpdateOne) SetServiceName(v string) *ApplicationUpdateOne {
	_u.mutation.SetServiceName(v)
	return _u
}

// SetNillableServiceName sets the "service_name" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableServiceName(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetServiceName(*v)
	}
	return _u
}

// ClearServiceName clears the value of the "service_name" field.
func (_u *ApplicationUpdateOne) ClearServiceName() *ApplicationUpdateOne {
	_u.mutation.ClearServiceName()
	return _u
}

// SetApplicantName sets the "applicant_name" field.
func (_u *ApplicationUpdateOne) SetApplicantName(v string) *ApplicationUpdateOne {
	_u.mutation.SetApplicantName(v)
	return _u
}

// SetNillableApplicantName sets the "applicant_name" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableApplicantName(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetApplicantName(*v)
	}
	return _u
}

// ClearApplicantName clears the value of the "applicant_name" field.
func (_u *ApplicationUpdateOne) ClearApplicantName() *ApplicationUpdateOne {
	_u.mutation.ClearApplicantName()
	return _u
}

// SetNationalID sets the "national_id" field.
func (_u *ApplicationUpdateOne) SetNationalID(v string) *ApplicationUpdateOne {
	_u.mutation.SetNationalID(v)
	return _u
}

// SetNillableNationalID sets the "national_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableNationalID(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetNationalID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v string) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ApplicationUpdateOne) SetErrorMessage(v string) *ApplicationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableErrorMessage(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ApplicationUpdateOne) ClearErrorMessage() *ApplicationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ApplicationUpdateOne) SetSubmittedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSubmittedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ApplicationUpdateOne) ClearSubmittedAt() *ApplicationUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetProcessingFrom sets the "processing_from" field.
func (_u *ApplicationUpdateOne) SetProcessingFrom(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetProcessingFrom(v)
	return _u
}

// SetNillableProcessingFrom sets the "processing_from" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableProcessingFrom(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetProcessingFrom(*v)
	}
	return _u
}

// ClearProcessingFrom clears the value of the "processing_from" field.
func (_u *ApplicationUpdateOne) ClearProcessingFrom() *ApplicationUpdateOne {
	_u.mutation.ClearProcessingFrom()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ApplicationUpdateOne) SetProcessedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableProcessedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ApplicationUpdateOne) ClearProcessedAt() *ApplicationUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicationUpdateOne) SetCreatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCreatedAt(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ApplicationUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ApplicationUpdateOne) AddDocuments(v ...*Document) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddResultIDs adds the "results" edge to the AnalysisResult entity by IDs.
func (_u *ApplicationUpdateOne) AddResultIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the AnalysisResult entity.
func (_u *ApplicationUpdateOne) AddResults(v ...*AnalysisResult) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ApplicationUpdateOne) ClearDocuments() *ApplicationUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ApplicationUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ApplicationUpdateOne) RemoveDocuments(v ...*Document) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearResults clears all "results" edges to the AnalysisResult entity.
func (_u *ApplicationUpdateOne) ClearResults() *ApplicationUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to AnalysisResult entities by IDs.
func (_u *ApplicationUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *ApplicationUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to AnalysisResult entities.
func (_u *ApplicationUpdateOne) RemoveResults(v ...*AnalysisResult) *ApplicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.TrackingNo(); ok {
		if err := application.TrackingNoValidator(v); err != nil {
			return &ValidationError{Name: "tracking_no", err: fmt.Errorf(`ent: validator failed for field "Application.tracking_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceID(); ok {
		if err := application.ServiceIDValidator(v); err != nil {
			return &ValidationError{Name: "service_id", err: fmt.Errorf(`ent: validator failed for field "Application.service_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NationalID(); ok {
		if err := application.NationalIDValidator(v); err != nil {
			return &ValidationError{Name: "national_id", err: fmt.Errorf(`ent: validator failed for field "Application.national_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(application.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceID(); ok {
		_spec.AddField(application.FieldSourceID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TrackingNo(); ok {
		_spec.SetField(application.FieldTrackingNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(application.FieldServiceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ServiceName(); ok {
		_spec.SetField(application.FieldServiceName, field.TypeString, value)
	}
	if _u.mutation.ServiceNameCleared() {
		_spec.ClearField(application.FieldServiceName, field.TypeString)
	}
	if value, ok := _u.mutation.ApplicantName(); ok {
		_spec.SetField(application.FieldApplicantName, field.TypeString, value)
	}
	if _u.mutation.ApplicantNameCleared() {
		_spec.ClearField(application.FieldApplicantName, field.TypeString)
	}
	if value, ok := _u.mutation.NationalID(); ok {
		_spec.SetField(application.FieldNationalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(application.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(application.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(application.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(application.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessingFrom(); ok {
		_spec.SetField(application.FieldProcessingFrom, field.TypeTime, value)
	}
	if _u.mutation.ProcessingFromCleared() {
		_spec.ClearField(application.FieldProcessingFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(application.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(application.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.DocumentsTable,
			Columns: []string{application.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.DocumentsTable,
			Columns: []string{application.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.DocumentsTable,
			Columns: []string{application.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ResultsTable,
			Columns: []string{application.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ResultsTable,
			Columns: []string{application.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   application.ResultsTable,
			Columns: []string{application.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
