// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

// AnalysisResultUpdate is the builder for updating AnalysisResult entities.
type AnalysisResultUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisResultMutation
}

// Where appends a list predicates to the AnalysisResultUpdate builder.
func (_u *AnalysisResultUpdate) Where(ps ...predicate.AnalysisResult) *AnalysisResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *AnalysisResultUpdate) SetApplicationID(v uuid.UUID) *AnalysisResultUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableApplicationID(v *uuid.UUID) *AnalysisResultUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *AnalysisResultUpdate) SetFields(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *AnalysisResultUpdate) AppendFields(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *AnalysisResultUpdate) SetProvenance(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.SetProvenance(v)
	return _u
}

// AppendProvenance appends value to the "provenance" field.
func (_u *AnalysisResultUpdate) AppendProvenance(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.AppendProvenance(v)
	return _u
}

// ClearProvenance clears the value of the "provenance" field.
func (_u *AnalysisResultUpdate) ClearProvenance() *AnalysisResultUpdate {
	_u.mutation.ClearProvenance()
	return _u
}

// SetConflicts sets the "conflicts" field.
func (_u *AnalysisResultUpdate) SetConflicts(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.SetConflicts(v)
	return _u
}

// AppendConflicts appends value to the "conflicts" field.
func (_u *AnalysisResultUpdate) AppendConflicts(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.AppendConflicts(v)
	return _u
}

// ClearConflicts clears the value of the "conflicts" field.
func (_u *AnalysisResultUpdate) ClearConflicts() *AnalysisResultUpdate {
	_u.mutation.ClearConflicts()
	return _u
}

// SetFindings sets the "findings" field.
func (_u *AnalysisResultUpdate) SetFindings(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *AnalysisResultUpdate) AppendFindings(v json.RawMessage) *AnalysisResultUpdate {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *AnalysisResultUpdate) ClearFindings() *AnalysisResultUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// SetDocsComplete sets the "docs_complete" field.
func (_u *AnalysisResultUpdate) SetDocsComplete(v bool) *AnalysisResultUpdate {
	_u.mutation.SetDocsComplete(v)
	return _u
}

// SetNillableDocsComplete sets the "docs_complete" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableDocsComplete(v *bool) *AnalysisResultUpdate {
	if v != nil {
		_u.SetDocsComplete(*v)
	}
	return _u
}

// SetMissingDocs sets the "missing_docs" field.
func (_u *AnalysisResultUpdate) SetMissingDocs(v []string) *AnalysisResultUpdate {
	_u.mutation.SetMissingDocs(v)
	return _u
}

// AppendMissingDocs appends value to the "missing_docs" field.
func (_u *AnalysisResultUpdate) AppendMissingDocs(v []string) *AnalysisResultUpdate {
	_u.mutation.AppendMissingDocs(v)
	return _u
}

// ClearMissingDocs clears the value of the "missing_docs" field.
func (_u *AnalysisResultUpdate) ClearMissingDocs() *AnalysisResultUpdate {
	_u.mutation.ClearMissingDocs()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *AnalysisResultUpdate) SetValidationStatus(v string) *AnalysisResultUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableValidationStatus(v *string) *AnalysisResultUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// ClearValidationStatus clears the value of the "validation_status" field.
func (_u *AnalysisResultUpdate) ClearValidationStatus() *AnalysisResultUpdate {
	_u.mutation.ClearValidationStatus()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *AnalysisResultUpdate) SetAnalyzedAt(v time.Time) *AnalysisResultUpdate {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableAnalyzedAt(v *time.Time) *AnalysisResultUpdate {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// SetElapsedSec sets the "elapsed_sec" field.
func (_u *AnalysisResultUpdate) SetElapsedSec(v float64) *AnalysisResultUpdate {
	_u.mutation.ResetElapsedSec()
	_u.mutation.SetElapsedSec(v)
	return _u
}

// SetNillableElapsedSec sets the "elapsed_sec" field if the given value is not nil.
func (_u *AnalysisResultUpdate) SetNillableElapsedSec(v *float64) *AnalysisResultUpdate {
	if v != nil {
		_u.SetElapsedSec(*v)
	}
	return _u
}

// AddElapsedSec adds value to the "elapsed_sec" field.
func (_u *AnalysisResultUpdate) AddElapsedSec(v float64) *AnalysisResultUpdate {
	_u.mutation.AddElapsedSec(v)
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *AnalysisResultUpdate) SetApplication(v *Application) *AnalysisResultUpdate {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_u *AnalysisResultUpdate) Mutation() *AnalysisResultMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *AnalysisResultUpdate) ClearApplication() *AnalysisResultUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisResultUpdate) check() error {
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisResult.application"`)
	}
	return nil
}

func (_u *AnalysisResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisresult.Table, analysisresult.Columns, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(analysisresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldFields, value)
		})
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(analysisresult.FieldProvenance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldProvenance, value)
		})
	}
	if _u.mutation.ProvenanceCleared() {
		_spec.ClearField(analysisresult.FieldProvenance, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conflicts(); ok {
		_spec.SetField(analysisresult.FieldConflicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldConflicts, value)
		})
	}
	if _u.mutation.ConflictsCleared() {
		_spec.ClearField(analysisresult.FieldConflicts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(analysisresult.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(analysisresult.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocsComplete(); ok {
		_spec.SetField(analysisresult.FieldDocsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MissingDocs(); ok {
		_spec.SetField(analysisresult.FieldMissingDocs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingDocs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldMissingDocs, value)
		})
	}
	if _u.mutation.MissingDocsCleared() {
		_spec.ClearField(analysisresult.FieldMissingDocs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(analysisresult.FieldValidationStatus, field.TypeString, value)
	}
	if _u.mutation.ValidationStatusCleared() {
		_spec.ClearField(analysisresult.FieldValidationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(analysisresult.FieldAnalyzedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ElapsedSec(); ok {
		_spec.SetField(analysisresult.FieldElapsedSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElapsedSec(); ok {
		_spec.AddField(analysisresult.FieldElapsedSec, field.TypeFloat64, value)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisresult.ApplicationTable,
			Columns: []string{analysisresult.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisresult.ApplicationTable,
			Columns: []string{analysisresult.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisResultUpdateOne is the builder for updating a single AnalysisResult entity.
type AnalysisResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisResultMutation
}

// SetApplicationID sets the "application_id" field.
func (_u *AnalysisResultUpdateOne) SetApplicationID(v uuid.UUID) *AnalysisResultUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableApplicationID(v *uuid.UUID) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetFields sets the "fields" field.
func (_u *AnalysisResultUpdateOne) SetFields(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *AnalysisResultUpdateOne) AppendFields(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// SetProvenance sets the "provenance" field.
func (_u *AnalysisResultUpdateOne) SetProvenance(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.SetProvenance(v)
	return _u
}

// AppendProvenance appends value to the "provenance" field.
func (_u *AnalysisResultUpdateOne) AppendProvenance(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.AppendProvenance(v)
	return _u
}

// ClearProvenance clears the value of the "provenance" field.
func (_u *AnalysisResultUpdateOne) ClearProvenance() *AnalysisResultUpdateOne {
	_u.mutation.ClearProvenance()
	return _u
}

// SetConflicts sets the "conflicts" field.
func (_u *AnalysisResultUpdateOne) SetConflicts(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.SetConflicts(v)
	return _u
}

// AppendConflicts appends value to the "conflicts" field.
func (_u *AnalysisResultUpdateOne) AppendConflicts(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.AppendConflicts(v)
	return _u
}

// ClearConflicts clears the value of the "conflicts" field.
func (_u *AnalysisResultUpdateOne) ClearConflicts() *AnalysisResultUpdateOne {
	_u.mutation.ClearConflicts()
	return _u
}

// SetFindings sets the "findings" field.
func (_u *AnalysisResultUpdateOne) SetFindings(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *AnalysisResultUpdateOne) AppendFindings(v json.RawMessage) *AnalysisResultUpdateOne {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *AnalysisResultUpdateOne) ClearFindings() *AnalysisResultUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// SetDocsComplete sets the "docs_complete" field.
func (_u *AnalysisResultUpdateOne) SetDocsComplete(v bool) *AnalysisResultUpdateOne {
	_u.mutation.SetDocsComplete(v)
	return _u
}

// SetNillableDocsComplete sets the "docs_complete" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableDocsComplete(v *bool) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetDocsComplete(*v)
	}
	return _u
}

// SetMissingDocs sets the "missing_docs" field.
func (_u *AnalysisResultUpdateOne) SetMissingDocs(v []string) *AnalysisResultUpdateOne {
	_u.mutation.SetMissingDocs(v)
	return _u
}

// AppendMissingDocs appends value to the "missing_docs" field.
func (_u *AnalysisResultUpdateOne) AppendMissingDocs(v []string) *AnalysisResultUpdateOne {
	_u.mutation.AppendMissingDocs(v)
	return _u
}

// ClearMissingDocs clears the value of the "missing_docs" field.
func (_u *AnalysisResultUpdateOne) ClearMissingDocs() *AnalysisResultUpdateOne {
	_u.mutation.ClearMissingDocs()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *AnalysisResultUpdateOne) SetValidationStatus(v string) *AnalysisResultUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableValidationStatus(v *string) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// ClearValidationStatus clears the value of the "validation_status" field.
func (_u *AnalysisResultUpdateOne) ClearValidationStatus() *AnalysisResultUpdateOne {
	_u.mutation.ClearValidationStatus()
	return _u
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_u *AnalysisResultUpdateOne) SetAnalyzedAt(v time.Time) *AnalysisResultUpdateOne {
	_u.mutation.SetAnalyzedAt(v)
	return _u
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableAnalyzedAt(v *time.Time) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetAnalyzedAt(*v)
	}
	return _u
}

// SetElapsedSec sets the "elapsed_sec" field.
func (_u *AnalysisResultUpdateOne) SetElapsedSec(v float64) *AnalysisResultUpdateOne {
	_u.mutation.ResetElapsedSec()
	_u.mutation.SetElapsedSec(v)
	return _u
}

// SetNillableElapsedSec sets the "elapsed_sec" field if the given value is not nil.
func (_u *AnalysisResultUpdateOne) SetNillableElapsedSec(v *float64) *AnalysisResultUpdateOne {
	if v != nil {
		_u.SetElapsedSec(*v)
	}
	return _u
}

// AddElapsedSec adds value to the "elapsed_sec" field.
func (_u *AnalysisResultUpdateOne) AddElapsedSec(v float64) *AnalysisResultUpdateOne {
	_u.mutation.AddElapsedSec(v)
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *AnalysisResultUpdateOne) SetApplication(v *Application) *AnalysisResultUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_u *AnalysisResultUpdateOne) Mutation() *AnalysisResultMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *AnalysisResultUpdateOne) ClearApplication() *AnalysisResultUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// Where appends a list predicates to the AnalysisResultUpdate builder.
func (_u *AnalysisResultUpdateOne) Where(ps ...predicate.AnalysisResult) *AnalysisResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisResultUpdateOne) Select(field string, fields ...string) *AnalysisResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisResult entity.
func (_u *AnalysisResultUpdateOne) Save(ctx context.Context) (*AnalysisResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisResultUpdateOne) SaveX(ctx context.Context) *AnalysisResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisResultUpdateOne) check() error {
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisResult.application"`)
	}
	return nil
}

func (_u *AnalysisResultUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisresult.Table, analysisresult.Columns, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisresult.FieldID)
		for _, f := range fields {
			if !analysisresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisresult.FieldID {
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
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(analysisresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldFields, value)
		})
	}
	if value, ok := _u.mutation.Provenance(); ok {
		_spec.SetField(analysisresult.FieldProvenance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProvenance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldProvenance, value)
		})
	}
	if _u.mutation.ProvenanceCleared() {
		_spec.ClearField(analysisresult.FieldProvenance, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conflicts(); ok {
		_spec.SetField(analysisresult.FieldConflicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConflicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldConflicts, value)
		})
	}
	if _u.mutation.ConflictsCleared() {
		_spec.ClearField(analysisresult.FieldConflicts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(analysisresult.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(analysisresult.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocsComplete(); ok {
		_spec.SetField(analysisresult.FieldDocsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MissingDocs(); ok {
		_spec.SetField(analysisresult.FieldMissingDocs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingDocs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisresult.FieldMissingDocs, value)
		})
	}
	if _u.mutation.MissingDocsCleared() {
		_spec.ClearField(analysisresult.FieldMissingDocs, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(analysisresult.FieldValidationStatus, field.TypeString, value)
	}
	if _u.mutation.ValidationStatusCleared() {
		_spec.ClearField(analysisresult.FieldValidationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.AnalyzedAt(); ok {
		_spec.SetField(analysisresult.FieldAnalyzedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ElapsedSec(); ok {
		_spec.SetField(analysisresult.FieldElapsedSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElapsedSec(); ok {
		_spec.AddField(analysisresult.FieldElapsedSec, field.TypeFloat64, value)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisresult.ApplicationTable,
			Columns: []string{analysisresult.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisresult.ApplicationTable,
			Columns: []string{analysisresult.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
