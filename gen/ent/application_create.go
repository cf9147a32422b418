// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetSourceID sets the "source_id" field.
func (_c *ApplicationCreate) SetSourceID(v int64) *ApplicationCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetTrackingNo sets the "tracking_no" field.
func (_c *ApplicationCreate) SetTrackingNo(v string) *ApplicationCreate {
	_c.mutation.SetTrackingNo(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *ApplicationCreate) SetServiceID(v string) *ApplicationCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetServiceName sets the "service_name" field.
func (_c *ApplicationCreate) SetServiceName(v string) *ApplicationCreate {
	_c.mutation.SetServiceName(v)
	return _c
}

// SetNillableServiceName sets the "service_name" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableServiceName(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetServiceName(*v)
	}
	return _c
}

// SetApplicantName sets the "applicant_name" field.
func (_c *ApplicationCreate) SetApplicantName(v string) *ApplicationCreate {
	_c.mutation.SetApplicantName(v)
	return _c
}

// SetNillableApplicantName sets the "applicant_name" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableApplicantName(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetApplicantName(*v)
	}
	return _c
}

// SetNationalID sets the "national_id" field.
func (_c *ApplicationCreate) SetNationalID(v string) *ApplicationCreate {
	_c.mutation.SetNationalID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v string) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ApplicationCreate) SetErrorMessage(v string) *ApplicationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableErrorMessage(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ApplicationCreate) SetSubmittedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableSubmittedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetProcessingFrom sets the "processing_from" field.
func (_c *ApplicationCreate) SetProcessingFrom(v time.Time) *ApplicationCreate {
	_c.mutation.SetProcessingFrom(v)
	return _c
}

// SetNillableProcessingFrom sets the "processing_from" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableProcessingFrom(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetProcessingFrom(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ApplicationCreate) SetProcessedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableProcessedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationCreate) SetCreatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableCreatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableID(v *uuid.UUID) *ApplicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *ApplicationCreate) AddDocumentIDs(ids ...uuid.UUID) *ApplicationCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *ApplicationCreate) AddDocuments(v ...*Document) *ApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddResultIDs adds the "results" edge to the AnalysisResult entity by IDs.
func (_c *ApplicationCreate) AddResultIDs(ids ...uuid.UUID) *ApplicationCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the AnalysisResult entity.
func (_c *ApplicationCreate) AddResults(v ...*AnalysisResult) *ApplicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := application.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Application.source_id"`)}
	}
	if _, ok := _c.mutation.TrackingNo(); !ok {
		return &ValidationError{Name: "tracking_no", err: errors.New(`ent: missing required field "Application.tracking_no"`)}
	}
	if v, ok := _c.mutation.TrackingNo(); ok {
		if err := application.TrackingNoValidator(v); err != nil {
			return &ValidationError{Name: "tracking_no", err: fmt.Errorf(`ent: validator failed for field "Application.tracking_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`ent: missing required field "Application.service_id"`)}
	}
	if v, ok := _c.mutation.ServiceID(); ok {
		if err := application.ServiceIDValidator(v); err != nil {
			return &ValidationError{Name: "service_id", err: fmt.Errorf(`ent: validator failed for field "Application.service_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NationalID(); !ok {
		return &ValidationError{Name: "national_id", err: errors.New(`ent: missing required field "Application.national_id"`)}
	}
	if v, ok := _c.mutation.NationalID(); ok {
		if err := application.NationalIDValidator(v); err != nil {
			return &ValidationError{Name: "national_id", err: fmt.Errorf(`ent: validator failed for field "Application.national_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
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

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(application.FieldSourceID, field.TypeInt64, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.TrackingNo(); ok {
		_spec.SetField(application.FieldTrackingNo, field.TypeString, value)
		_node.TrackingNo = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(application.FieldServiceID, field.TypeString, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.ServiceName(); ok {
		_spec.SetField(application.FieldServiceName, field.TypeString, value)
		_node.ServiceName = value
	}
	if value, ok := _c.mutation.ApplicantName(); ok {
		_spec.SetField(application.FieldApplicantName, field.TypeString, value)
		_node.ApplicantName = value
	}
	if value, ok := _c.mutation.NationalID(); ok {
		_spec.SetField(application.FieldNationalID, field.TypeString, value)
		_node.NationalID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(application.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(application.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.ProcessingFrom(); ok {
		_spec.SetField(application.FieldProcessingFrom, field.TypeTime, value)
		_node.ProcessingFrom = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(application.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
