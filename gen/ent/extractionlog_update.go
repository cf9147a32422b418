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
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/gen/ent/extractionlog"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

// ExtractionLogUpdate is the builder for updating ExtractionLog entities.
type ExtractionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdate) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionLogUpdate) SetDocumentID(v uuid.UUID) *ExtractionLogUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionLogUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSegmentIndex sets the "segment_index" field.
func (_u *ExtractionLogUpdate) SetSegmentIndex(v int) *ExtractionLogUpdate {
	_u.mutation.ResetSegmentIndex()
	_u.mutation.SetSegmentIndex(v)
	return _u
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableSegmentIndex(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetSegmentIndex(*v)
	}
	return _u
}

// AddSegmentIndex adds value to the "segment_index" field.
func (_u *ExtractionLogUpdate) AddSegmentIndex(v int) *ExtractionLogUpdate {
	_u.mutation.AddSegmentIndex(v)
	return _u
}

// SetSegmentStart sets the "segment_start" field.
func (_u *ExtractionLogUpdate) SetSegmentStart(v int) *ExtractionLogUpdate {
	_u.mutation.ResetSegmentStart()
	_u.mutation.SetSegmentStart(v)
	return _u
}

// SetNillableSegmentStart sets the "segment_start" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableSegmentStart(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetSegmentStart(*v)
	}
	return _u
}

// AddSegmentStart adds value to the "segment_start" field.
func (_u *ExtractionLogUpdate) AddSegmentStart(v int) *ExtractionLogUpdate {
	_u.mutation.AddSegmentStart(v)
	return _u
}

// SetSegmentEnd sets the "segment_end" field.
func (_u *ExtractionLogUpdate) SetSegmentEnd(v int) *ExtractionLogUpdate {
	_u.mutation.ResetSegmentEnd()
	_u.mutation.SetSegmentEnd(v)
	return _u
}

// SetNillableSegmentEnd sets the "segment_end" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableSegmentEnd(v *int) *ExtractionLogUpdate {
	if v != nil {
		_u.SetSegmentEnd(*v)
	}
	return _u
}

// AddSegmentEnd adds value to the "segment_end" field.
func (_u *ExtractionLogUpdate) AddSegmentEnd(v int) *ExtractionLogUpdate {
	_u.mutation.AddSegmentEnd(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionLogUpdate) SetFields(v json.RawMessage) *ExtractionLogUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionLogUpdate) AppendFields(v json.RawMessage) *ExtractionLogUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionLogUpdate) ClearFields() *ExtractionLogUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *ExtractionLogUpdate) SetRawJSON(v json.RawMessage) *ExtractionLogUpdate {
	_u.mutation.SetRawJSON(v)
	return _u
}

// AppendRawJSON appends value to the "raw_json" field.
func (_u *ExtractionLogUpdate) AppendRawJSON(v json.RawMessage) *ExtractionLogUpdate {
	_u.mutation.AppendRawJSON(v)
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *ExtractionLogUpdate) ClearRawJSON() *ExtractionLogUpdate {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionLogUpdate) SetModelName(v string) *ExtractionLogUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableModelName(v *string) *ExtractionLogUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionLogUpdate) ClearModelName() *ExtractionLogUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExtractionLogUpdate) SetDurationMs(v int64) *ExtractionLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableDurationMs(v *int64) *ExtractionLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExtractionLogUpdate) AddDurationMs(v int64) *ExtractionLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExtractionLogUpdate) SetSuccess(v bool) *ExtractionLogUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableSuccess(v *bool) *ExtractionLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionLogUpdate) SetCreatedAt(v time.Time) *ExtractionLogUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionLogUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionLogUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionLogUpdate) SetDocument(v *Document) *ExtractionLogUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdate) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionLogUpdate) ClearDocument() *ExtractionLogUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionLog.document"`)
	}
	return nil
}

func (_u *ExtractionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SegmentIndex(); ok {
		_spec.SetField(extractionlog.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentIndex(); ok {
		_spec.AddField(extractionlog.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SegmentStart(); ok {
		_spec.SetField(extractionlog.FieldSegmentStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentStart(); ok {
		_spec.AddField(extractionlog.FieldSegmentStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SegmentEnd(); ok {
		_spec.SetField(extractionlog.FieldSegmentEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentEnd(); ok {
		_spec.AddField(extractionlog.FieldSegmentEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionlog.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionlog.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionlog.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(extractionlog.FieldRawJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionlog.FieldRawJSON, value)
		})
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(extractionlog.FieldRawJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionlog.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionlog.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(extractionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(extractionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(extractionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionlog.DocumentTable,
			Columns: []string{extractionlog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionlog.DocumentTable,
			Columns: []string{extractionlog.DocumentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionLogUpdateOne is the builder for updating a single ExtractionLog entity.
type ExtractionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionLogMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionLogUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionLogUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSegmentIndex sets the "segment_index" field.
func (_u *ExtractionLogUpdateOne) SetSegmentIndex(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetSegmentIndex()
	_u.mutation.SetSegmentIndex(v)
	return _u
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableSegmentIndex(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetSegmentIndex(*v)
	}
	return _u
}

// AddSegmentIndex adds value to the "segment_index" field.
func (_u *ExtractionLogUpdateOne) AddSegmentIndex(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddSegmentIndex(v)
	return _u
}

// SetSegmentStart sets the "segment_start" field.
func (_u *ExtractionLogUpdateOne) SetSegmentStart(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetSegmentStart()
	_u.mutation.SetSegmentStart(v)
	return _u
}

// SetNillableSegmentStart sets the "segment_start" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableSegmentStart(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetSegmentStart(*v)
	}
	return _u
}

// AddSegmentStart adds value to the "segment_start" field.
func (_u *ExtractionLogUpdateOne) AddSegmentStart(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddSegmentStart(v)
	return _u
}

// SetSegmentEnd sets the "segment_end" field.
func (_u *ExtractionLogUpdateOne) SetSegmentEnd(v int) *ExtractionLogUpdateOne {
	_u.mutation.ResetSegmentEnd()
	_u.mutation.SetSegmentEnd(v)
	return _u
}

// SetNillableSegmentEnd sets the "segment_end" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableSegmentEnd(v *int) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetSegmentEnd(*v)
	}
	return _u
}

// AddSegmentEnd adds value to the "segment_end" field.
func (_u *ExtractionLogUpdateOne) AddSegmentEnd(v int) *ExtractionLogUpdateOne {
	_u.mutation.AddSegmentEnd(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionLogUpdateOne) SetFields(v json.RawMessage) *ExtractionLogUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionLogUpdateOne) AppendFields(v json.RawMessage) *ExtractionLogUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionLogUpdateOne) ClearFields() *ExtractionLogUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *ExtractionLogUpdateOne) SetRawJSON(v json.RawMessage) *ExtractionLogUpdateOne {
	_u.mutation.SetRawJSON(v)
	return _u
}

// AppendRawJSON appends value to the "raw_json" field.
func (_u *ExtractionLogUpdateOne) AppendRawJSON(v json.RawMessage) *ExtractionLogUpdateOne {
	_u.mutation.AppendRawJSON(v)
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *ExtractionLogUpdateOne) ClearRawJSON() *ExtractionLogUpdateOne {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionLogUpdateOne) SetModelName(v string) *ExtractionLogUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableModelName(v *string) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionLogUpdateOne) ClearModelName() *ExtractionLogUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExtractionLogUpdateOne) SetDurationMs(v int64) *ExtractionLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableDurationMs(v *int64) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExtractionLogUpdateOne) AddDurationMs(v int64) *ExtractionLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ExtractionLogUpdateOne) SetSuccess(v bool) *ExtractionLogUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableSuccess(v *bool) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionLogUpdateOne) SetCreatedAt(v time.Time) *ExtractionLogUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionLogUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionLogUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionLogUpdateOne) SetDocument(v *Document) *ExtractionLogUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_u *ExtractionLogUpdateOne) Mutation() *ExtractionLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionLogUpdateOne) ClearDocument() *ExtractionLogUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractionLogUpdate builder.
func (_u *ExtractionLogUpdateOne) Where(ps ...predicate.ExtractionLog) *ExtractionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionLogUpdateOne) Select(field string, fields ...string) *ExtractionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionLog entity.
func (_u *ExtractionLogUpdateOne) Save(ctx context.Context) (*ExtractionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) SaveX(ctx context.Context) *ExtractionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionLogUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionLog.document"`)
	}
	return nil
}

func (_u *ExtractionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionlog.Table, extractionlog.Columns, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionlog.FieldID)
		for _, f := range fields {
			if !extractionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionlog.FieldID {
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
	if value, ok := _u.mutation.SegmentIndex(); ok {
		_spec.SetField(extractionlog.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentIndex(); ok {
		_spec.AddField(extractionlog.FieldSegmentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SegmentStart(); ok {
		_spec.SetField(extractionlog.FieldSegmentStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentStart(); ok {
		_spec.AddField(extractionlog.FieldSegmentStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SegmentEnd(); ok {
		_spec.SetField(extractionlog.FieldSegmentEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentEnd(); ok {
		_spec.AddField(extractionlog.FieldSegmentEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionlog.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionlog.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionlog.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(extractionlog.FieldRawJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionlog.FieldRawJSON, value)
		})
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(extractionlog.FieldRawJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionlog.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionlog.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(extractionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(extractionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(extractionlog.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionlog.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionlog.DocumentTable,
			Columns: []string{extractionlog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionlog.DocumentTable,
			Columns: []string{extractionlog.DocumentColumn},
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
	_node = &ExtractionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
