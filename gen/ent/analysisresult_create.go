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
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
)

// AnalysisResultCreate is the builder for creating a AnalysisResult entity.
type AnalysisResultCreate struct {
	config
	mutation *AnalysisResultMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (_c *AnalysisResultCreate) SetApplicationID(v uuid.UUID) *AnalysisResultCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetFields sets the "fields" field.
func (_c *AnalysisResultCreate) SetFields(v json.RawMessage) *AnalysisResultCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetProvenance sets the "provenance" field.
func (_c *AnalysisResultCreate) SetProvenance(v json.RawMessage) *AnalysisResultCreate {
	_c.mutation.SetProvenance(v)
	return _c
}

// SetConflicts sets the "conflicts" field.
func (_c *AnalysisResultCreate) SetConflicts(v json.RawMessage) *AnalysisResultCreate {
	_c.mutation.SetConflicts(v)
	return _c
}

// SetFindings sets the "findings" field.
func (_c *AnalysisResultCreate) SetFindings(v json.RawMessage) *AnalysisResultCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetDocsComplete sets the "docs_complete" field.
func (_c *AnalysisResultCreate) SetDocsComplete(v bool) *AnalysisResultCreate {
	_c.mutation.SetDocsComplete(v)
	return _c
}

// SetNillableDocsComplete sets the "docs_complete" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableDocsComplete(v *bool) *AnalysisResultCreate {
	if v != nil {
		_c.SetDocsComplete(*v)
	}
	return _c
}

// SetMissingDocs sets the "missing_docs" field.
func (_c *AnalysisResultCreate) SetMissingDocs(v []string) *AnalysisResultCreate {
	_c.mutation.SetMissingDocs(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *AnalysisResultCreate) SetValidationStatus(v string) *AnalysisResultCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableValidationStatus(v *string) *AnalysisResultCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (_c *AnalysisResultCreate) SetAnalyzedAt(v time.Time) *AnalysisResultCreate {
	_c.mutation.SetAnalyzedAt(v)
	return _c
}

// SetNillableAnalyzedAt sets the "analyzed_at" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableAnalyzedAt(v *time.Time) *AnalysisResultCreate {
	if v != nil {
		_c.SetAnalyzedAt(*v)
	}
	return _c
}

// SetElapsedSec sets the "elapsed_sec" field.
func (_c *AnalysisResultCreate) SetElapsedSec(v float64) *AnalysisResultCreate {
	_c.mutation.SetElapsedSec(v)
	return _c
}

// SetNillableElapsedSec sets the "elapsed_sec" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableElapsedSec(v *float64) *AnalysisResultCreate {
	if v != nil {
		_c.SetElapsedSec(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisResultCreate) SetID(v uuid.UUID) *AnalysisResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisResultCreate) SetNillableID(v *uuid.UUID) *AnalysisResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplication sets the "application" edge to the Application entity.
func (_c *AnalysisResultCreate) SetApplication(v *Application) *AnalysisResultCreate {
	return _c.SetApplicationID(v.ID)
}

// Mutation returns the AnalysisResultMutation object of the builder.
func (_c *AnalysisResultCreate) Mutation() *AnalysisResultMutation {
	return _c.mutation
}

// Save creates the AnalysisResult in the database.
func (_c *AnalysisResultCreate) Save(ctx context.Context) (*AnalysisResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisResultCreate) SaveX(ctx context.Context) *AnalysisResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisResultCreate) defaults() {
	if _, ok := _c.mutation.DocsComplete(); !ok {
		v := analysisresult.DefaultDocsComplete
		_c.mutation.SetDocsComplete(v)
	}
	if _, ok := _c.mutation.AnalyzedAt(); !ok {
		v := analysisresult.DefaultAnalyzedAt()
		_c.mutation.SetAnalyzedAt(v)
	}
	if _, ok := _c.mutation.ElapsedSec(); !ok {
		v := analysisresult.DefaultElapsedSec
		_c.mutation.SetElapsedSec(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisResultCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "AnalysisResult.application_id"`)}
	}
	if _, ok := _c.mutation.GetFields(); !ok {
		return &ValidationError{Name: "fields", err: errors.New(`ent: missing required field "AnalysisResult.fields"`)}
	}
	if _, ok := _c.mutation.DocsComplete(); !ok {
		return &ValidationError{Name: "docs_complete", err: errors.New(`ent: missing required field "AnalysisResult.docs_complete"`)}
	}
	if _, ok := _c.mutation.AnalyzedAt(); !ok {
		return &ValidationError{Name: "analyzed_at", err: errors.New(`ent: missing required field "AnalysisResult.analyzed_at"`)}
	}
	if _, ok := _c.mutation.ElapsedSec(); !ok {
		return &ValidationError{Name: "elapsed_sec", err: errors.New(`ent: missing required field "AnalysisResult.elapsed_sec"`)}
	}
	if len(_c.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "AnalysisResult.application"`)}
	}
	return nil
}

func (_c *AnalysisResultCreate) sqlSave(ctx context.Context) (*AnalysisResult, error) {
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

func (_c *AnalysisResultCreate) createSpec() (*AnalysisResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisresult.Table, sqlgraph.NewFieldSpec(analysisresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(analysisresult.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Provenance(); ok {
		_spec.SetField(analysisresult.FieldProvenance, field.TypeJSON, value)
		_node.Provenance = value
	}
	if value, ok := _c.mutation.Conflicts(); ok {
		_spec.SetField(analysisresult.FieldConflicts, field.TypeJSON, value)
		_node.Conflicts = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(analysisresult.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.DocsComplete(); ok {
		_spec.SetField(analysisresult.FieldDocsComplete, field.TypeBool, value)
		_node.DocsComplete = value
	}
	if value, ok := _c.mutation.MissingDocs(); ok {
		_spec.SetField(analysisresult.FieldMissingDocs, field.TypeJSON, value)
		_node.MissingDocs = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(analysisresult.FieldValidationStatus, field.TypeString, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.AnalyzedAt(); ok {
		_spec.SetField(analysisresult.FieldAnalyzedAt, field.TypeTime, value)
		_node.AnalyzedAt = value
	}
	if value, ok := _c.mutation.ElapsedSec(); ok {
		_spec.SetField(analysisresult.FieldElapsedSec, field.TypeFloat64, value)
		_node.ElapsedSec = value
	}
	if nodes := _c.mutation.ApplicationIDs(); len(nodes) > 0 {
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
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisResultCreateBulk is the builder for creating many AnalysisResult entities in bulk.
type AnalysisResultCreateBulk struct {
	config
	err      error
	builders []*AnalysisResultCreate
}

// Save creates the AnalysisResult entities in the database.
func (_c *AnalysisResultCreateBulk) Save(ctx context.Context) ([]*AnalysisResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisResultMutation)
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
func (_c *AnalysisResultCreateBulk) SaveX(ctx context.Context) []*AnalysisResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
