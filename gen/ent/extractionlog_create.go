// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/gen/ent/extractionlog"
)

// ExtractionLogCreate is the builder for creating a ExtractionLog entity.
type ExtractionLogCreate struct {
	config
	mutation *ExtractionLogMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionLogCreate) SetDocumentID(v uuid.UUID) *ExtractionLogCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSegmentIndex sets the "segment_index" field.
func (_c *ExtractionLogCreate) SetSegmentIndex(v int) *ExtractionLogCreate {
	_c.mutation.SetSegmentIndex(v)
	return _c
}

// SetNillableSegmentIndex sets the "segment_index" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableSegmentIndex(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetSegmentIndex(*v)
	}
	return _c
}

// SetSegmentStart sets the "segment_start" field.
func (_c *ExtractionLogCreate) SetSegmentStart(v int) *ExtractionLogCreate {
	_c.mutation.SetSegmentStart(v)
	return _c
}

// SetNillableSegmentStart sets the "segment_start" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableSegmentStart(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetSegmentStart(*v)
	}
	return _c
}

// SetSegmentEnd sets the "segment_end" field.
func (_c *ExtractionLogCreate) SetSegmentEnd(v int) *ExtractionLogCreate {
	_c.mutation.SetSegmentEnd(v)
	return _c
}

// SetNillableSegmentEnd sets the "segment_end" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableSegmentEnd(v *int) *ExtractionLogCreate {
	if v != nil {
		_c.SetSegmentEnd(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *ExtractionLogCreate) SetFields(v json.RawMessage) *ExtractionLogCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetRawJSON sets the "raw_json" field.
func (_c *ExtractionLogCreate) SetRawJSON(v json.RawMessage) *ExtractionLogCreate {
	_c.mutation.SetRawJSON(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionLogCreate) SetModelName(v string) *ExtractionLogCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableModelName(v *string) *ExtractionLogCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExtractionLogCreate) SetDurationMs(v int64) *ExtractionLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableDurationMs(v *int64) *ExtractionLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ExtractionLogCreate) SetSuccess(v bool) *ExtractionLogCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableSuccess(v *bool) *ExtractionLogCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionLogCreate) SetCreatedAt(v time.Time) *ExtractionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableCreatedAt(v *time.Time) *ExtractionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionLogCreate) SetID(v uuid.UUID) *ExtractionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionLogCreate) SetNillableID(v *uuid.UUID) *ExtractionLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionLogCreate) SetDocument(v *Document) *ExtractionLogCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionLogMutation object of the builder.
func (_c *ExtractionLogCreate) Mutation() *ExtractionLogMutation {
	return _c.mutation
}

// Save creates the ExtractionLog in the database.
func (_c *ExtractionLogCreate) Save(ctx context.Context) (*ExtractionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionLogCreate) SaveX(ctx context.Context) *ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionLogCreate) defaults() {
	if _, ok := _c.mutation.SegmentIndex(); !ok {
		v := extractionlog.DefaultSegmentIndex
		_c.mutation.SetSegmentIndex(v)
	}
	if _, ok := _c.mutation.SegmentStart(); !ok {
		v := extractionlog.DefaultSegmentStart
		_c.mutation.SetSegmentStart(v)
	}
	if _, ok := _c.mutation.SegmentEnd(); !ok {
		v := extractionlog.DefaultSegmentEnd
		_c.mutation.SetSegmentEnd(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := extractionlog.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := extractionlog.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionLogCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionLog.document_id"`)}
	}
	if _, ok := _c.mutation.SegmentIndex(); !ok {
		return &ValidationError{Name: "segment_index", err: errors.New(`ent: missing required field "ExtractionLog.segment_index"`)}
	}
	if _, ok := _c.mutation.SegmentStart(); !ok {
		return &ValidationError{Name: "segment_start", err: errors.New(`ent: missing required field "ExtractionLog.segment_start"`)}
	}
	if _, ok := _c.mutation.SegmentEnd(); !ok {
		return &ValidationError{Name: "segment_end", err: errors.New(`ent: missing required field "ExtractionLog.segment_end"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ExtractionLog.duration_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ExtractionLog.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionLog.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionLog.document"`)}
	}
	return nil
}

func (_c *ExtractionLogCreate) sqlSave(ctx context.Context) (*ExtractionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionLogCreate) createSpec() (*ExtractionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionlog.Table, sqlgraph.NewFieldSpec(extractionlog.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SegmentIndex(); ok {
		_spec.SetField(extractionlog.FieldSegmentIndex, field.TypeInt, value)
		_node.SegmentIndex = value
	}
	if value, ok := _c.mutation.SegmentStart(); ok {
		_spec.SetField(extractionlog.FieldSegmentStart, field.TypeInt, value)
		_node.SegmentStart = value
	}
	if value, ok := _c.mutation.SegmentEnd(); ok {
		_spec.SetField(extractionlog.FieldSegmentEnd, field.TypeInt, value)
		_node.SegmentEnd = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(extractionlog.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.RawJSON(); ok {
		_spec.SetField(extractionlog.FieldRawJSON, field.TypeJSON, value)
		_node.RawJSON = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionlog.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(extractionlog.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(extractionlog.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionLogCreateBulk is the builder for creating many ExtractionLog entities in bulk.
type ExtractionLogCreateBulk struct {
	config
	err      error
	builders []*ExtractionLogCreate
}

// Save creates the ExtractionLog entities in the database.
func (_c *ExtractionLogCreateBulk) Save(ctx context.Context) ([]*ExtractionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionLogCreateBulk) SaveX(ctx context.Context) []*ExtractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
