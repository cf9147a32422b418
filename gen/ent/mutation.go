// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/gen/ent/extractionlog"
	"github.com/oguzakin/eligibility-tracker/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisResult = "AnalysisResult"
	TypeApplication    = "Application"
	TypeDocument       = "Document"
	TypeExtractionLog  = "ExtractionLog"
)

// AnalysisResultMutation represents an operation that mutates the AnalysisResult nodes in the graph.
type AnalysisResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	fields             *json.RawMessage
	appendfields       json.RawMessage
	provenance         *json.RawMessage
	appendprovenance   json.RawMessage
	conflicts          *json.RawMessage
	appendconflicts    json.RawMessage
	findings           *json.RawMessage
	appendfindings     json.RawMessage
	docs_complete      *bool
	missing_docs       *[]string
	appendmissing_docs []string
	validation_status  *string
	analyzed_at        *time.Time
	elapsed_sec        *float64
	addelapsed_sec     *float64
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*AnalysisResult, error)
	predicates         []predicate.AnalysisResult
}

var _ ent.Mutation = (*AnalysisResultMutation)(nil)

// analysisresultOption allows management of the mutation configuration using functional options.
type analysisresultOption func(*AnalysisResultMutation)

// newAnalysisResultMutation creates new mutation for the AnalysisResult entity.
func newAnalysisResultMutation(c config, op Op, opts ...analysisresultOption) *AnalysisResultMutation {
	m := &AnalysisResultMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisResultID sets the ID field of the mutation.
func withAnalysisResultID(id uuid.UUID) analysisresultOption {
	return func(m *AnalysisResultMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisResult
		)
		m.oldValue = func(ctx context.Context) (*AnalysisResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisResult sets the old AnalysisResult of the mutation.
func withAnalysisResult(node *AnalysisResult) analysisresultOption {
	return func(m *AnalysisResultMutation) {
		m.oldValue = func(context.Context) (*AnalysisResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisResult entities.
func (m *AnalysisResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *AnalysisResultMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *AnalysisResultMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *AnalysisResultMutation) ResetApplicationID() {
	m.application = nil
}

// SetFields sets the "fields" field.
func (m *AnalysisResultMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *AnalysisResultMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *AnalysisResultMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *AnalysisResultMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ResetFields resets all changes to the "fields" field.
func (m *AnalysisResultMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
}

// SetProvenance sets the "provenance" field.
func (m *AnalysisResultMutation) SetProvenance(jm json.RawMessage) {
	m.provenance = &jm
	m.appendprovenance = nil
}

// Provenance returns the value of the "provenance" field in the mutation.
func (m *AnalysisResultMutation) Provenance() (r json.RawMessage, exists bool) {
	v := m.provenance
	if v == nil {
		return
	}
	return *v, true
}

// OldProvenance returns the old "provenance" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldProvenance(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvenance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvenance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvenance: %w", err)
	}
	return oldValue.Provenance, nil
}

// AppendProvenance adds jm to the "provenance" field.
func (m *AnalysisResultMutation) AppendProvenance(jm json.RawMessage) {
	m.appendprovenance = append(m.appendprovenance, jm...)
}

// AppendedProvenance returns the list of values that were appended to the "provenance" field in this mutation.
func (m *AnalysisResultMutation) AppendedProvenance() (json.RawMessage, bool) {
	if len(m.appendprovenance) == 0 {
		return nil, false
	}
	return m.appendprovenance, true
}

// ClearProvenance clears the value of the "provenance" field.
func (m *AnalysisResultMutation) ClearProvenance() {
	m.provenance = nil
	m.appendprovenance = nil
	m.clearedFields[analysisresult.FieldProvenance] = struct{}{}
}

// ProvenanceCleared returns if the "provenance" field was cleared in this mutation.
func (m *AnalysisResultMutation) ProvenanceCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldProvenance]
	return ok
}

// ResetProvenance resets all changes to the "provenance" field.
func (m *AnalysisResultMutation) ResetProvenance() {
	m.provenance = nil
	m.appendprovenance = nil
	delete(m.clearedFields, analysisresult.FieldProvenance)
}

// SetConflicts sets the "conflicts" field.
func (m *AnalysisResultMutation) SetConflicts(jm json.RawMessage) {
	m.conflicts = &jm
	m.appendconflicts = nil
}

// Conflicts returns the value of the "conflicts" field in the mutation.
func (m *AnalysisResultMutation) Conflicts() (r json.RawMessage, exists bool) {
	v := m.conflicts
	if v == nil {
		return
	}
	return *v, true
}

// OldConflicts returns the old "conflicts" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldConflicts(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflicts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflicts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflicts: %w", err)
	}
	return oldValue.Conflicts, nil
}

// AppendConflicts adds jm to the "conflicts" field.
func (m *AnalysisResultMutation) AppendConflicts(jm json.RawMessage) {
	m.appendconflicts = append(m.appendconflicts, jm...)
}

// AppendedConflicts returns the list of values that were appended to the "conflicts" field in this mutation.
func (m *AnalysisResultMutation) AppendedConflicts() (json.RawMessage, bool) {
	if len(m.appendconflicts) == 0 {
		return nil, false
	}
	return m.appendconflicts, true
}

// ClearConflicts clears the value of the "conflicts" field.
func (m *AnalysisResultMutation) ClearConflicts() {
	m.conflicts = nil
	m.appendconflicts = nil
	m.clearedFields[analysisresult.FieldConflicts] = struct{}{}
}

// ConflictsCleared returns if the "conflicts" field was cleared in this mutation.
func (m *AnalysisResultMutation) ConflictsCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldConflicts]
	return ok
}

// ResetConflicts resets all changes to the "conflicts" field.
func (m *AnalysisResultMutation) ResetConflicts() {
	m.conflicts = nil
	m.appendconflicts = nil
	delete(m.clearedFields, analysisresult.FieldConflicts)
}

// SetFindings sets the "findings" field.
func (m *AnalysisResultMutation) SetFindings(jm json.RawMessage) {
	m.findings = &jm
	m.appendfindings = nil
}

// Findings returns the value of the "findings" field in the mutation.
func (m *AnalysisResultMutation) Findings() (r json.RawMessage, exists bool) {
	v := m.findings
	if v == nil {
		return
	}
	return *v, true
}

// OldFindings returns the old "findings" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldFindings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindings: %w", err)
	}
	return oldValue.Findings, nil
}

// AppendFindings adds jm to the "findings" field.
func (m *AnalysisResultMutation) AppendFindings(jm json.RawMessage) {
	m.appendfindings = append(m.appendfindings, jm...)
}

// AppendedFindings returns the list of values that were appended to the "findings" field in this mutation.
func (m *AnalysisResultMutation) AppendedFindings() (json.RawMessage, bool) {
	if len(m.appendfindings) == 0 {
		return nil, false
	}
	return m.appendfindings, true
}

// ClearFindings clears the value of the "findings" field.
func (m *AnalysisResultMutation) ClearFindings() {
	m.findings = nil
	m.appendfindings = nil
	m.clearedFields[analysisresult.FieldFindings] = struct{}{}
}

// FindingsCleared returns if the "findings" field was cleared in this mutation.
func (m *AnalysisResultMutation) FindingsCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldFindings]
	return ok
}

// ResetFindings resets all changes to the "findings" field.
func (m *AnalysisResultMutation) ResetFindings() {
	m.findings = nil
	m.appendfindings = nil
	delete(m.clearedFields, analysisresult.FieldFindings)
}

// SetDocsComplete sets the "docs_complete" field.
func (m *AnalysisResultMutation) SetDocsComplete(b bool) {
	m.docs_complete = &b
}

// DocsComplete returns the value of the "docs_complete" field in the mutation.
func (m *AnalysisResultMutation) DocsComplete() (r bool, exists bool) {
	v := m.docs_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldDocsComplete returns the old "docs_complete" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldDocsComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocsComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocsComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocsComplete: %w", err)
	}
	return oldValue.DocsComplete, nil
}

// ResetDocsComplete resets all changes to the "docs_complete" field.
func (m *AnalysisResultMutation) ResetDocsComplete() {
	m.docs_complete = nil
}

// SetMissingDocs sets the "missing_docs" field.
func (m *AnalysisResultMutation) SetMissingDocs(s []string) {
	m.missing_docs = &s
	m.appendmissing_docs = nil
}

// MissingDocs returns the value of the "missing_docs" field in the mutation.
func (m *AnalysisResultMutation) MissingDocs() (r []string, exists bool) {
	v := m.missing_docs
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingDocs returns the old "missing_docs" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldMissingDocs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingDocs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingDocs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingDocs: %w", err)
	}
	return oldValue.MissingDocs, nil
}

// AppendMissingDocs adds s to the "missing_docs" field.
func (m *AnalysisResultMutation) AppendMissingDocs(s []string) {
	m.appendmissing_docs = append(m.appendmissing_docs, s...)
}

// AppendedMissingDocs returns the list of values that were appended to the "missing_docs" field in this mutation.
func (m *AnalysisResultMutation) AppendedMissingDocs() ([]string, bool) {
	if len(m.appendmissing_docs) == 0 {
		return nil, false
	}
	return m.appendmissing_docs, true
}

// ClearMissingDocs clears the value of the "missing_docs" field.
func (m *AnalysisResultMutation) ClearMissingDocs() {
	m.missing_docs = nil
	m.appendmissing_docs = nil
	m.clearedFields[analysisresult.FieldMissingDocs] = struct{}{}
}

// MissingDocsCleared returns if the "missing_docs" field was cleared in this mutation.
func (m *AnalysisResultMutation) MissingDocsCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldMissingDocs]
	return ok
}

// ResetMissingDocs resets all changes to the "missing_docs" field.
func (m *AnalysisResultMutation) ResetMissingDocs() {
	m.missing_docs = nil
	m.appendmissing_docs = nil
	delete(m.clearedFields, analysisresult.FieldMissingDocs)
}

// SetValidationStatus sets the "validation_status" field.
func (m *AnalysisResultMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *AnalysisResultMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ClearValidationStatus clears the value of the "validation_status" field.
func (m *AnalysisResultMutation) ClearValidationStatus() {
	m.validation_status = nil
	m.clearedFields[analysisresult.FieldValidationStatus] = struct{}{}
}

// ValidationStatusCleared returns if the "validation_status" field was cleared in this mutation.
func (m *AnalysisResultMutation) ValidationStatusCleared() bool {
	_, ok := m.clearedFields[analysisresult.FieldValidationStatus]
	return ok
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *AnalysisResultMutation) ResetValidationStatus() {
	m.validation_status = nil
	delete(m.clearedFields, analysisresult.FieldValidationStatus)
}

// SetAnalyzedAt sets the "analyzed_at" field.
func (m *AnalysisResultMutation) SetAnalyzedAt(t time.Time) {
	m.analyzed_at = &t
}

// AnalyzedAt returns the value of the "analyzed_at" field in the mutation.
func (m *AnalysisResultMutation) AnalyzedAt() (r time.Time, exists bool) {
	v := m.analyzed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedAt returns the old "analyzed_at" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldAnalyzedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedAt: %w", err)
	}
	return oldValue.AnalyzedAt, nil
}

// ResetAnalyzedAt resets all changes to the "analyzed_at" field.
func (m *AnalysisResultMutation) ResetAnalyzedAt() {
	m.analyzed_at = nil
}

// SetElapsedSec sets the "elapsed_sec" field.
func (m *AnalysisResultMutation) SetElapsedSec(f float64) {
	m.elapsed_sec = &f
	m.addelapsed_sec = nil
}

// ElapsedSec returns the value of the "elapsed_sec" field in the mutation.
func (m *AnalysisResultMutation) ElapsedSec() (r float64, exists bool) {
	v := m.elapsed_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedSec returns the old "elapsed_sec" field's value of the AnalysisResult entity.
// If the AnalysisResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisResultMutation) OldElapsedSec(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedSec: %w", err)
	}
	return oldValue.ElapsedSec, nil
}

// AddElapsedSec adds f to the "elapsed_sec" field.
func (m *AnalysisResultMutation) AddElapsedSec(f float64) {
	if m.addelapsed_sec != nil {
		*m.addelapsed_sec += f
	} else {
		m.addelapsed_sec = &f
	}
}

// AddedElapsedSec returns the value that was added to the "elapsed_sec" field in this mutation.
func (m *AnalysisResultMutation) AddedElapsedSec() (r float64, exists bool) {
	v := m.addelapsed_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedSec resets all changes to the "elapsed_sec" field.
func (m *AnalysisResultMutation) ResetElapsedSec() {
	m.elapsed_sec = nil
	m.addelapsed_sec = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *AnalysisResultMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[analysisresult.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *AnalysisResultMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *AnalysisResultMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *AnalysisResultMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the AnalysisResultMutation builder.
func (m *AnalysisResultMutation) Where(ps ...predicate.AnalysisResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisResult).
func (m *AnalysisResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisResultMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.application != nil {
		fields = append(fields, analysisresult.FieldApplicationID)
	}
	if m.fields != nil {
		fields = append(fields, analysisresult.FieldFields)
	}
	if m.provenance != nil {
		fields = append(fields, analysisresult.FieldProvenance)
	}
	if m.conflicts != nil {
		fields = append(fields, analysisresult.FieldConflicts)
	}
	if m.findings != nil {
		fields = append(fields, analysisresult.FieldFindings)
	}
	if m.docs_complete != nil {
		fields = append(fields, analysisresult.FieldDocsComplete)
	}
	if m.missing_docs != nil {
		fields = append(fields, analysisresult.FieldMissingDocs)
	}
	if m.validation_status != nil {
		fields = append(fields, analysisresult.FieldValidationStatus)
	}
	if m.analyzed_at != nil {
		fields = append(fields, analysisresult.FieldAnalyzedAt)
	}
	if m.elapsed_sec != nil {
		fields = append(fields, analysisresult.FieldElapsedSec)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisresult.FieldApplicationID:
		return m.ApplicationID()
	case analysisresult.FieldFields:
		return m.GetFields()
	case analysisresult.FieldProvenance:
		return m.Provenance()
	case analysisresult.FieldConflicts:
		return m.Conflicts()
	case analysisresult.FieldFindings:
		return m.Findings()
	case analysisresult.FieldDocsComplete:
		return m.DocsComplete()
	case analysisresult.FieldMissingDocs:
		return m.MissingDocs()
	case analysisresult.FieldValidationStatus:
		return m.ValidationStatus()
	case analysisresult.FieldAnalyzedAt:
		return m.AnalyzedAt()
	case analysisresult.FieldElapsedSec:
		return m.ElapsedSec()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisresult.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case analysisresult.FieldFields:
		return m.OldFields(ctx)
	case analysisresult.FieldProvenance:
		return m.OldProvenance(ctx)
	case analysisresult.FieldConflicts:
		return m.OldConflicts(ctx)
	case analysisresult.FieldFindings:
		return m.OldFindings(ctx)
	case analysisresult.FieldDocsComplete:
		return m.OldDocsComplete(ctx)
	case analysisresult.FieldMissingDocs:
		return m.OldMissingDocs(ctx)
	case analysisresult.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case analysisresult.FieldAnalyzedAt:
		return m.OldAnalyzedAt(ctx)
	case analysisresult.FieldElapsedSec:
		return m.OldElapsedSec(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisresult.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case analysisresult.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case analysisresult.FieldProvenance:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvenance(v)
		return nil
	case analysisresult.FieldConflicts:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflicts(v)
		return nil
	case analysisresult.FieldFindings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindings(v)
		return nil
	case analysisresult.FieldDocsComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocsComplete(v)
		return nil
	case analysisresult.FieldMissingDocs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingDocs(v)
		return nil
	case analysisresult.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case analysisresult.FieldAnalyzedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedAt(v)
		return nil
	case analysisresult.FieldElapsedSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedSec(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisResultMutation) AddedFields() []string {
	var fields []string
	if m.addelapsed_sec != nil {
		fields = append(fields, analysisresult.FieldElapsedSec)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisresult.FieldElapsedSec:
		return m.AddedElapsedSec()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisresult.FieldElapsedSec:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedSec(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisresult.FieldProvenance) {
		fields = append(fields, analysisresult.FieldProvenance)
	}
	if m.FieldCleared(analysisresult.FieldConflicts) {
		fields = append(fields, analysisresult.FieldConflicts)
	}
	if m.FieldCleared(analysisresult.FieldFindings) {
		fields = append(fields, analysisresult.FieldFindings)
	}
	if m.FieldCleared(analysisresult.FieldMissingDocs) {
		fields = append(fields, analysisresult.FieldMissingDocs)
	}
	if m.FieldCleared(analysisresult.FieldValidationStatus) {
		fields = append(fields, analysisresult.FieldValidationStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisResultMutation) ClearField(name string) error {
	switch name {
	case analysisresult.FieldProvenance:
		m.ClearProvenance()
		return nil
	case analysisresult.FieldConflicts:
		m.ClearConflicts()
		return nil
	case analysisresult.FieldFindings:
		m.ClearFindings()
		return nil
	case analysisresult.FieldMissingDocs:
		m.ClearMissingDocs()
		return nil
	case analysisresult.FieldValidationStatus:
		m.ClearValidationStatus()
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisResultMutation) ResetField(name string) error {
	switch name {
	case analysisresult.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case analysisresult.FieldFields:
		m.ResetFields()
		return nil
	case analysisresult.FieldProvenance:
		m.ResetProvenance()
		return nil
	case analysisresult.FieldConflicts:
		m.ResetConflicts()
		return nil
	case analysisresult.FieldFindings:
		m.ResetFindings()
		return nil
	case analysisresult.FieldDocsComplete:
		m.ResetDocsComplete()
		return nil
	case analysisresult.FieldMissingDocs:
		m.ResetMissingDocs()
		return nil
	case analysisresult.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case analysisresult.FieldAnalyzedAt:
		m.ResetAnalyzedAt()
		return nil
	case analysisresult.FieldElapsedSec:
		m.ResetElapsedSec()
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, analysisresult.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisresult.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, analysisresult.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisResultMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisresult.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisResultMutation) ClearEdge(name string) error {
	switch name {
	case analysisresult.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisResultMutation) ResetEdge(name string) error {
	switch name {
	case analysisresult.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown AnalysisResult edge %s", name)
}

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	source_id        *int64
	addsource_id     *int64
	tracking_no      *string
	service_id       *string
	service_name     *string
	applicant_name   *string
	national_id      *string
	status           *string
	error_message    *string
	submitted_at     *time.Time
	processing_from  *time.Time
	processed_at     *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	results          map[uuid.UUID]struct{}
	removedresults   map[uuid.UUID]struct{}
	clearedresults   bool
	done             bool
	oldValue         func(context.Context) (*Application, error)
	predicates       []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *ApplicationMutation) SetSourceID(i int64) {
	m.source_id = &i
	m.addsource_id = nil
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ApplicationMutation) SourceID() (r int64, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSourceID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// AddSourceID adds i to the "source_id" field.
func (m *ApplicationMutation) AddSourceID(i int64) {
	if m.addsource_id != nil {
		*m.addsource_id += i
	} else {
		m.addsource_id = &i
	}
}

// AddedSourceID returns the value that was added to the "source_id" field in this mutation.
func (m *ApplicationMutation) AddedSourceID() (r int64, exists bool) {
	v := m.addsource_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ApplicationMutation) ResetSourceID() {
	m.source_id = nil
	m.addsource_id = nil
}

// SetTrackingNo sets the "tracking_no" field.
func (m *ApplicationMutation) SetTrackingNo(s string) {
	m.tracking_no = &s
}

// TrackingNo returns the value of the "tracking_no" field in the mutation.
func (m *ApplicationMutation) TrackingNo() (r string, exists bool) {
	v := m.tracking_no
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackingNo returns the old "tracking_no" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldTrackingNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackingNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackingNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackingNo: %w", err)
	}
	return oldValue.TrackingNo, nil
}

// ResetTrackingNo resets all changes to the "tracking_no" field.
func (m *ApplicationMutation) ResetTrackingNo() {
	m.tracking_no = nil
}

// SetServiceID sets the "service_id" field.
func (m *ApplicationMutation) SetServiceID(s string) {
	m.service_id = &s
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *ApplicationMutation) ServiceID() (r string, exists bool) {
	v := m.service_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldServiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *ApplicationMutation) ResetServiceID() {
	m.service_id = nil
}

// SetServiceName sets the "service_name" field.
func (m *ApplicationMutation) SetServiceName(s string) {
	m.service_name = &s
}

// ServiceName returns the value of the "service_name" field in the mutation.
func (m *ApplicationMutation) ServiceName() (r string, exists bool) {
	v := m.service_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceName returns the old "service_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldServiceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceName: %w", err)
	}
	return oldValue.ServiceName, nil
}

// ClearServiceName clears the value of the "service_name" field.
func (m *ApplicationMutation) ClearServiceName() {
	m.service_name = nil
	m.clearedFields[application.FieldServiceName] = struct{}{}
}

// ServiceNameCleared returns if the "service_name" field was cleared in this mutation.
func (m *ApplicationMutation) ServiceNameCleared() bool {
	_, ok := m.clearedFields[application.FieldServiceName]
	return ok
}

// ResetServiceName resets all changes to the "service_name" field.
func (m *ApplicationMutation) ResetServiceName() {
	m.service_name = nil
	delete(m.clearedFields, application.FieldServiceName)
}

// SetApplicantName sets the "applicant_name" field.
func (m *ApplicationMutation) SetApplicantName(s string) {
	m.applicant_name = &s
}

// ApplicantName returns the value of the "applicant_name" field in the mutation.
func (m *ApplicationMutation) ApplicantName() (r string, exists bool) {
	v := m.applicant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantName returns the old "applicant_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldApplicantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantName: %w", err)
	}
	return oldValue.ApplicantName, nil
}

// ClearApplicantName clears the value of the "applicant_name" field.
func (m *ApplicationMutation) ClearApplicantName() {
	m.applicant_name = nil
	m.clearedFields[application.FieldApplicantName] = struct{}{}
}

// ApplicantNameCleared returns if the "applicant_name" field was cleared in this mutation.
func (m *ApplicationMutation) ApplicantNameCleared() bool {
	_, ok := m.clearedFields[application.FieldApplicantName]
	return ok
}

// ResetApplicantName resets all changes to the "applicant_name" field.
func (m *ApplicationMutation) ResetApplicantName() {
	m.applicant_name = nil
	delete(m.clearedFields, application.FieldApplicantName)
}

// SetNationalID sets the "national_id" field.
func (m *ApplicationMutation) SetNationalID(s string) {
	m.national_id = &s
}

// NationalID returns the value of the "national_id" field in the mutation.
func (m *ApplicationMutation) NationalID() (r string, exists bool) {
	v := m.national_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalID returns the old "national_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldNationalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalID: %w", err)
	}
	return oldValue.NationalID, nil
}

// ResetNationalID resets all changes to the "national_id" field.
func (m *ApplicationMutation) ResetNationalID() {
	m.national_id = nil
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ApplicationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ApplicationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ApplicationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[application.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ApplicationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[application.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ApplicationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, application.FieldErrorMessage)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *ApplicationMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *ApplicationMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (m *ApplicationMutation) ClearSubmittedAt() {
	m.submitted_at = nil
	m.clearedFields[application.FieldSubmittedAt] = struct{}{}
}

// SubmittedAtCleared returns if the "submitted_at" field was cleared in this mutation.
func (m *ApplicationMutation) SubmittedAtCleared() bool {
	_, ok := m.clearedFields[application.FieldSubmittedAt]
	return ok
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *ApplicationMutation) ResetSubmittedAt() {
	m.submitted_at = nil
	delete(m.clearedFields, application.FieldSubmittedAt)
}

// SetProcessingFrom sets the "processing_from" field.
func (m *ApplicationMutation) SetProcessingFrom(t time.Time) {
	m.processing_from = &t
}

// ProcessingFrom returns the value of the "processing_from" field in the mutation.
func (m *ApplicationMutation) ProcessingFrom() (r time.Time, exists bool) {
	v := m.processing_from
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingFrom returns the old "processing_from" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldProcessingFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingFrom: %w", err)
	}
	return oldValue.ProcessingFrom, nil
}

// ClearProcessingFrom clears the value of the "processing_from" field.
func (m *ApplicationMutation) ClearProcessingFrom() {
	m.processing_from = nil
	m.clearedFields[application.FieldProcessingFrom] = struct{}{}
}

// ProcessingFromCleared returns if the "processing_from" field was cleared in this mutation.
func (m *ApplicationMutation) ProcessingFromCleared() bool {
	_, ok := m.clearedFields[application.FieldProcessingFrom]
	return ok
}

// ResetProcessingFrom resets all changes to the "processing_from" field.
func (m *ApplicationMutation) ResetProcessingFrom() {
	m.processing_from = nil
	delete(m.clearedFields, application.FieldProcessingFrom)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ApplicationMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ApplicationMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ApplicationMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[application.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ApplicationMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[application.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ApplicationMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, application.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ApplicationMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ApplicationMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ApplicationMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ApplicationMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ApplicationMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ApplicationMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ApplicationMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddResultIDs adds the "results" edge to the AnalysisResult entity by ids.
func (m *ApplicationMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the AnalysisResult entity.
func (m *ApplicationMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the AnalysisResult entity was cleared.
func (m *ApplicationMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the AnalysisResult entity by IDs.
func (m *ApplicationMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the AnalysisResult entity.
func (m *ApplicationMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *ApplicationMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *ApplicationMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.source_id != nil {
		fields = append(fields, application.FieldSourceID)
	}
	if m.tracking_no != nil {
		fields = append(fields, application.FieldTrackingNo)
	}
	if m.service_id != nil {
		fields = append(fields, application.FieldServiceID)
	}
	if m.service_name != nil {
		fields = append(fields, application.FieldServiceName)
	}
	if m.applicant_name != nil {
		fields = append(fields, application.FieldApplicantName)
	}
	if m.national_id != nil {
		fields = append(fields, application.FieldNationalID)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, application.FieldErrorMessage)
	}
	if m.submitted_at != nil {
		fields = append(fields, application.FieldSubmittedAt)
	}
	if m.processing_from != nil {
		fields = append(fields, application.FieldProcessingFrom)
	}
	if m.processed_at != nil {
		fields = append(fields, application.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldSourceID:
		return m.SourceID()
	case application.FieldTrackingNo:
		return m.TrackingNo()
	case application.FieldServiceID:
		return m.ServiceID()
	case application.FieldServiceName:
		return m.ServiceName()
	case application.FieldApplicantName:
		return m.ApplicantName()
	case application.FieldNationalID:
		return m.NationalID()
	case application.FieldStatus:
		return m.Status()
	case application.FieldErrorMessage:
		return m.ErrorMessage()
	case application.FieldSubmittedAt:
		return m.SubmittedAt()
	case application.FieldProcessingFrom:
		return m.ProcessingFrom()
	case application.FieldProcessedAt:
		return m.ProcessedAt()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldSourceID:
		return m.OldSourceID(ctx)
	case application.FieldTrackingNo:
		return m.OldTrackingNo(ctx)
	case application.FieldServiceID:
		return m.OldServiceID(ctx)
	case application.FieldServiceName:
		return m.OldServiceName(ctx)
	case application.FieldApplicantName:
		return m.OldApplicantName(ctx)
	case application.FieldNationalID:
		return m.OldNationalID(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case application.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case application.FieldProcessingFrom:
		return m.OldProcessingFrom(ctx)
	case application.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldSourceID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case application.FieldTrackingNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackingNo(v)
		return nil
	case application.FieldServiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case application.FieldServiceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceName(v)
		return nil
	case application.FieldApplicantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantName(v)
		return nil
	case application.FieldNationalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalID(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case application.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case application.FieldProcessingFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingFrom(v)
		return nil
	case application.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addsource_id != nil {
		fields = append(fields, application.FieldSourceID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldSourceID:
		return m.AddedSourceID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldSourceID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceID(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldServiceName) {
		fields = append(fields, application.FieldServiceName)
	}
	if m.FieldCleared(application.FieldApplicantName) {
		fields = append(fields, application.FieldApplicantName)
	}
	if m.FieldCleared(application.FieldErrorMessage) {
		fields = append(fields, application.FieldErrorMessage)
	}
	if m.FieldCleared(application.FieldSubmittedAt) {
		fields = append(fields, application.FieldSubmittedAt)
	}
	if m.FieldCleared(application.FieldProcessingFrom) {
		fields = append(fields, application.FieldProcessingFrom)
	}
	if m.FieldCleared(application.FieldProcessedAt) {
		fields = append(fields, application.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldServiceName:
		m.ClearServiceName()
		return nil
	case application.FieldApplicantName:
		m.ClearApplicantName()
		return nil
	case application.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case application.FieldSubmittedAt:
		m.ClearSubmittedAt()
		return nil
	case application.FieldProcessingFrom:
		m.ClearProcessingFrom()
		return nil
	case application.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldSourceID:
		m.ResetSourceID()
		return nil
	case application.FieldTrackingNo:
		m.ResetTrackingNo()
		return nil
	case application.FieldServiceID:
		m.ResetServiceID()
		return nil
	case application.FieldServiceName:
		m.ResetServiceName()
		return nil
	case application.FieldApplicantName:
		m.ResetApplicantName()
		return nil
	case application.FieldNationalID:
		m.ResetNationalID()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case application.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case application.FieldProcessingFrom:
		m.ResetProcessingFrom()
		return nil
	case application.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, application.EdgeDocuments)
	}
	if m.results != nil {
		edges = append(edges, application.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, application.EdgeDocuments)
	}
	if m.removedresults != nil {
		edges = append(edges, application.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case application.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case application.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, application.EdgeDocuments)
	}
	if m.clearedresults {
		edges = append(edges, application.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgeDocuments:
		return m.cleareddocuments
	case application.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case application.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	declared_type      *string
	doc_type           *string
	extension          *string
	size_bytes         *int64
	addsize_bytes      *int64
	content            *[]byte
	status             *string
	note               *string
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *DocumentMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *DocumentMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *DocumentMutation) ResetApplicationID() {
	m.application = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetDeclaredType sets the "declared_type" field.
func (m *DocumentMutation) SetDeclaredType(s string) {
	m.declared_type = &s
}

// DeclaredType returns the value of the "declared_type" field in the mutation.
func (m *DocumentMutation) DeclaredType() (r string, exists bool) {
	v := m.declared_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclaredType returns the old "declared_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeclaredType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclaredType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclaredType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclaredType: %w", err)
	}
	return oldValue.DeclaredType, nil
}

// ClearDeclaredType clears the value of the "declared_type" field.
func (m *DocumentMutation) ClearDeclaredType() {
	m.declared_type = nil
	m.clearedFields[document.FieldDeclaredType] = struct{}{}
}

// DeclaredTypeCleared returns if the "declared_type" field was cleared in this mutation.
func (m *DocumentMutation) DeclaredTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDeclaredType]
	return ok
}

// ResetDeclaredType resets all changes to the "declared_type" field.
func (m *DocumentMutation) ResetDeclaredType() {
	m.declared_type = nil
	delete(m.clearedFields, document.FieldDeclaredType)
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ClearDocType clears the value of the "doc_type" field.
func (m *DocumentMutation) ClearDocType() {
	m.doc_type = nil
	m.clearedFields[document.FieldDocType] = struct{}{}
}

// DocTypeCleared returns if the "doc_type" field was cleared in this mutation.
func (m *DocumentMutation) DocTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDocType]
	return ok
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
	delete(m.clearedFields, document.FieldDocType)
}

// SetExtension sets the "extension" field.
func (m *DocumentMutation) SetExtension(s string) {
	m.extension = &s
}

// Extension returns the value of the "extension" field in the mutation.
func (m *DocumentMutation) Extension() (r string, exists bool) {
	v := m.extension
	if v == nil {
		return
	}
	return *v, true
}

// OldExtension returns the old "extension" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtension(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtension is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtension requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtension: %w", err)
	}
	return oldValue.Extension, nil
}

// ClearExtension clears the value of the "extension" field.
func (m *DocumentMutation) ClearExtension() {
	m.extension = nil
	m.clearedFields[document.FieldExtension] = struct{}{}
}

// ExtensionCleared returns if the "extension" field was cleared in this mutation.
func (m *DocumentMutation) ExtensionCleared() bool {
	_, ok := m.clearedFields[document.FieldExtension]
	return ok
}

// ResetExtension resets all changes to the "extension" field.
func (m *DocumentMutation) ResetExtension() {
	m.extension = nil
	delete(m.clearedFields, document.FieldExtension)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *DocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *DocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *DocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *DocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *DocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetContent sets the "content" field.
func (m *DocumentMutation) SetContent(b []byte) {
	m.content = &b
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentMutation) Content() (r []byte, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContent(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *DocumentMutation) ClearContent() {
	m.content = nil
	m.clearedFields[document.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *DocumentMutation) ContentCleared() bool {
	_, ok := m.clearedFields[document.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, document.FieldContent)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetNote sets the "note" field.
func (m *DocumentMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *DocumentMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *DocumentMutation) ClearNote() {
	m.note = nil
	m.clearedFields[document.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *DocumentMutation) NoteCleared() bool {
	_, ok := m.clearedFields[document.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *DocumentMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, document.FieldNote)
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *DocumentMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[document.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *DocumentMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *DocumentMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// AddExtractionIDs adds the "extractions" edge to the ExtractionLog entity by ids.
func (m *DocumentMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the ExtractionLog entity.
func (m *DocumentMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the ExtractionLog entity was cleared.
func (m *DocumentMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the ExtractionLog entity by IDs.
func (m *DocumentMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the ExtractionLog entity.
func (m *DocumentMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *DocumentMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *DocumentMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.application != nil {
		fields = append(fields, document.FieldApplicationID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.declared_type != nil {
		fields = append(fields, document.FieldDeclaredType)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.extension != nil {
		fields = append(fields, document.FieldExtension)
	}
	if m.size_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.content != nil {
		fields = append(fields, document.FieldContent)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.note != nil {
		fields = append(fields, document.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldApplicationID:
		return m.ApplicationID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldDeclaredType:
		return m.DeclaredType()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldExtension:
		return m.Extension()
	case document.FieldSizeBytes:
		return m.SizeBytes()
	case document.FieldContent:
		return m.Content()
	case document.FieldStatus:
		return m.Status()
	case document.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldDeclaredType:
		return m.OldDeclaredType(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldExtension:
		return m.OldExtension(ctx)
	case document.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case document.FieldContent:
		return m.OldContent(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldDeclaredType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclaredType(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldExtension:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtension(v)
		return nil
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case document.FieldContent:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDeclaredType) {
		fields = append(fields, document.FieldDeclaredType)
	}
	if m.FieldCleared(document.FieldDocType) {
		fields = append(fields, document.FieldDocType)
	}
	if m.FieldCleared(document.FieldExtension) {
		fields = append(fields, document.FieldExtension)
	}
	if m.FieldCleared(document.FieldContent) {
		fields = append(fields, document.FieldContent)
	}
	if m.FieldCleared(document.FieldNote) {
		fields = append(fields, document.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDeclaredType:
		m.ClearDeclaredType()
		return nil
	case document.FieldDocType:
		m.ClearDocType()
		return nil
	case document.FieldExtension:
		m.ClearExtension()
		return nil
	case document.FieldContent:
		m.ClearContent()
		return nil
	case document.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldDeclaredType:
		m.ResetDeclaredType()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldExtension:
		m.ResetExtension()
		return nil
	case document.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case document.FieldContent:
		m.ResetContent()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.application != nil {
		edges = append(edges, document.EdgeApplication)
	}
	if m.extractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedextractions != nil {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplication {
		edges = append(edges, document.EdgeApplication)
	}
	if m.clearedextractions {
		edges = append(edges, document.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeApplication:
		return m.clearedapplication
	case document.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeApplication:
		m.ResetApplication()
		return nil
	case document.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionLogMutation represents an operation that mutates the ExtractionLog nodes in the graph.
type ExtractionLogMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	segment_index    *int
	addsegment_index *int
	segment_start    *int
	addsegment_start *int
	segment_end      *int
	addsegment_end   *int
	fields           *json.RawMessage
	appendfields     json.RawMessage
	raw_json         *json.RawMessage
	appendraw_json   json.RawMessage
	model_name       *string
	duration_ms      *int64
	addduration_ms   *int64
	success          *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	document         *uuid.UUID
	cleareddocument  bool
	done             bool
	oldValue         func(context.Context) (*ExtractionLog, error)
	predicates       []predicate.ExtractionLog
}

var _ ent.Mutation = (*ExtractionLogMutation)(nil)

// extractionlogOption allows management of the mutation configuration using functional options.
type extractionlogOption func(*ExtractionLogMutation)

// newExtractionLogMutation creates new mutation for the ExtractionLog entity.
func newExtractionLogMutation(c config, op Op, opts ...extractionlogOption) *ExtractionLogMutation {
	m := &ExtractionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionLogID sets the ID field of the mutation.
func withExtractionLogID(id uuid.UUID) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionLog
		)
		m.oldValue = func(ctx context.Context) (*ExtractionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionLog sets the old ExtractionLog of the mutation.
func withExtractionLog(node *ExtractionLog) extractionlogOption {
	return func(m *ExtractionLogMutation) {
		m.oldValue = func(context.Context) (*ExtractionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionLog entities.
func (m *ExtractionLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionLogMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionLogMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionLogMutation) ResetDocumentID() {
	m.document = nil
}

// SetSegmentIndex sets the "segment_index" field.
func (m *ExtractionLogMutation) SetSegmentIndex(i int) {
	m.segment_index = &i
	m.addsegment_index = nil
}

// SegmentIndex returns the value of the "segment_index" field in the mutation.
func (m *ExtractionLogMutation) SegmentIndex() (r int, exists bool) {
	v := m.segment_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentIndex returns the old "segment_index" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldSegmentIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentIndex: %w", err)
	}
	return oldValue.SegmentIndex, nil
}

// AddSegmentIndex adds i to the "segment_index" field.
func (m *ExtractionLogMutation) AddSegmentIndex(i int) {
	if m.addsegment_index != nil {
		*m.addsegment_index += i
	} else {
		m.addsegment_index = &i
	}
}

// AddedSegmentIndex returns the value that was added to the "segment_index" field in this mutation.
func (m *ExtractionLogMutation) AddedSegmentIndex() (r int, exists bool) {
	v := m.addsegment_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSegmentIndex resets all changes to the "segment_index" field.
func (m *ExtractionLogMutation) ResetSegmentIndex() {
	m.segment_index = nil
	m.addsegment_index = nil
}

// SetSegmentStart sets the "segment_start" field.
func (m *ExtractionLogMutation) SetSegmentStart(i int) {
	m.segment_start = &i
	m.addsegment_start = nil
}

// SegmentStart returns the value of the "segment_start" field in the mutation.
func (m *ExtractionLogMutation) SegmentStart() (r int, exists bool) {
	v := m.segment_start
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentStart returns the old "segment_start" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldSegmentStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentStart: %w", err)
	}
	return oldValue.SegmentStart, nil
}

// AddSegmentStart adds i to the "segment_start" field.
func (m *ExtractionLogMutation) AddSegmentStart(i int) {
	if m.addsegment_start != nil {
		*m.addsegment_start += i
	} else {
		m.addsegment_start = &i
	}
}

// AddedSegmentStart returns the value that was added to the "segment_start" field in this mutation.
func (m *ExtractionLogMutation) AddedSegmentStart() (r int, exists bool) {
	v := m.addsegment_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetSegmentStart resets all changes to the "segment_start" field.
func (m *ExtractionLogMutation) ResetSegmentStart() {
	m.segment_start = nil
	m.addsegment_start = nil
}

// SetSegmentEnd sets the "segment_end" field.
func (m *ExtractionLogMutation) SetSegmentEnd(i int) {
	m.segment_end = &i
	m.addsegment_end = nil
}

// SegmentEnd returns the value of the "segment_end" field in the mutation.
func (m *ExtractionLogMutation) SegmentEnd() (r int, exists bool) {
	v := m.segment_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentEnd returns the old "segment_end" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldSegmentEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentEnd: %w", err)
	}
	return oldValue.SegmentEnd, nil
}

// AddSegmentEnd adds i to the "segment_end" field.
func (m *ExtractionLogMutation) AddSegmentEnd(i int) {
	if m.addsegment_end != nil {
		*m.addsegment_end += i
	} else {
		m.addsegment_end = &i
	}
}

// AddedSegmentEnd returns the value that was added to the "segment_end" field in this mutation.
func (m *ExtractionLogMutation) AddedSegmentEnd() (r int, exists bool) {
	v := m.addsegment_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetSegmentEnd resets all changes to the "segment_end" field.
func (m *ExtractionLogMutation) ResetSegmentEnd() {
	m.segment_end = nil
	m.addsegment_end = nil
}

// SetFields sets the "fields" field.
func (m *ExtractionLogMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ExtractionLogMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *ExtractionLogMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *ExtractionLogMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *ExtractionLogMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[extractionlog.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *ExtractionLogMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *ExtractionLogMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, extractionlog.FieldFields)
}

// SetRawJSON sets the "raw_json" field.
func (m *ExtractionLogMutation) SetRawJSON(jm json.RawMessage) {
	m.raw_json = &jm
	m.appendraw_json = nil
}

// RawJSON returns the value of the "raw_json" field in the mutation.
func (m *ExtractionLogMutation) RawJSON() (r json.RawMessage, exists bool) {
	v := m.raw_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRawJSON returns the old "raw_json" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldRawJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawJSON: %w", err)
	}
	return oldValue.RawJSON, nil
}

// AppendRawJSON adds jm to the "raw_json" field.
func (m *ExtractionLogMutation) AppendRawJSON(jm json.RawMessage) {
	m.appendraw_json = append(m.appendraw_json, jm...)
}

// AppendedRawJSON returns the list of values that were appended to the "raw_json" field in this mutation.
func (m *ExtractionLogMutation) AppendedRawJSON() (json.RawMessage, bool) {
	if len(m.appendraw_json) == 0 {
		return nil, false
	}
	return m.appendraw_json, true
}

// ClearRawJSON clears the value of the "raw_json" field.
func (m *ExtractionLogMutation) ClearRawJSON() {
	m.raw_json = nil
	m.appendraw_json = nil
	m.clearedFields[extractionlog.FieldRawJSON] = struct{}{}
}

// RawJSONCleared returns if the "raw_json" field was cleared in this mutation.
func (m *ExtractionLogMutation) RawJSONCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldRawJSON]
	return ok
}

// ResetRawJSON resets all changes to the "raw_json" field.
func (m *ExtractionLogMutation) ResetRawJSON() {
	m.raw_json = nil
	m.appendraw_json = nil
	delete(m.clearedFields, extractionlog.FieldRawJSON)
}

// SetModelName sets the "model_name" field.
func (m *ExtractionLogMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionLogMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionLogMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionlog.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionLogMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionlog.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionLogMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionlog.FieldModelName)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExtractionLogMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExtractionLogMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExtractionLogMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExtractionLogMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExtractionLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetSuccess sets the "success" field.
func (m *ExtractionLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ExtractionLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ExtractionLogMutation) ResetSuccess() {
	m.success = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionLog entity.
// If the ExtractionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionLogMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionlog.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionLogMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionLogMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionLogMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionLogMutation builder.
func (m *ExtractionLogMutation) Where(ps ...predicate.ExtractionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionLog).
func (m *ExtractionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, extractionlog.FieldDocumentID)
	}
	if m.segment_index != nil {
		fields = append(fields, extractionlog.FieldSegmentIndex)
	}
	if m.segment_start != nil {
		fields = append(fields, extractionlog.FieldSegmentStart)
	}
	if m.segment_end != nil {
		fields = append(fields, extractionlog.FieldSegmentEnd)
	}
	if m.fields != nil {
		fields = append(fields, extractionlog.FieldFields)
	}
	if m.raw_json != nil {
		fields = append(fields, extractionlog.FieldRawJSON)
	}
	if m.model_name != nil {
		fields = append(fields, extractionlog.FieldModelName)
	}
	if m.duration_ms != nil {
		fields = append(fields, extractionlog.FieldDurationMs)
	}
	if m.success != nil {
		fields = append(fields, extractionlog.FieldSuccess)
	}
	if m.created_at != nil {
		fields = append(fields, extractionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldDocumentID:
		return m.DocumentID()
	case extractionlog.FieldSegmentIndex:
		return m.SegmentIndex()
	case extractionlog.FieldSegmentStart:
		return m.SegmentStart()
	case extractionlog.FieldSegmentEnd:
		return m.SegmentEnd()
	case extractionlog.FieldFields:
		return m.GetFields()
	case extractionlog.FieldRawJSON:
		return m.RawJSON()
	case extractionlog.FieldModelName:
		return m.ModelName()
	case extractionlog.FieldDurationMs:
		return m.DurationMs()
	case extractionlog.FieldSuccess:
		return m.Success()
	case extractionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionlog.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionlog.FieldSegmentIndex:
		return m.OldSegmentIndex(ctx)
	case extractionlog.FieldSegmentStart:
		return m.OldSegmentStart(ctx)
	case extractionlog.FieldSegmentEnd:
		return m.OldSegmentEnd(ctx)
	case extractionlog.FieldFields:
		return m.OldFields(ctx)
	case extractionlog.FieldRawJSON:
		return m.OldRawJSON(ctx)
	case extractionlog.FieldModelName:
		return m.OldModelName(ctx)
	case extractionlog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case extractionlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case extractionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionlog.FieldSegmentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentIndex(v)
		return nil
	case extractionlog.FieldSegmentStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentStart(v)
		return nil
	case extractionlog.FieldSegmentEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentEnd(v)
		return nil
	case extractionlog.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case extractionlog.FieldRawJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawJSON(v)
		return nil
	case extractionlog.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionlog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case extractionlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case extractionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionLogMutation) AddedFields() []string {
	var fields []string
	if m.addsegment_index != nil {
		fields = append(fields, extractionlog.FieldSegmentIndex)
	}
	if m.addsegment_start != nil {
		fields = append(fields, extractionlog.FieldSegmentStart)
	}
	if m.addsegment_end != nil {
		fields = append(fields, extractionlog.FieldSegmentEnd)
	}
	if m.addduration_ms != nil {
		fields = append(fields, extractionlog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionlog.FieldSegmentIndex:
		return m.AddedSegmentIndex()
	case extractionlog.FieldSegmentStart:
		return m.AddedSegmentStart()
	case extractionlog.FieldSegmentEnd:
		return m.AddedSegmentEnd()
	case extractionlog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionlog.FieldSegmentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSegmentIndex(v)
		return nil
	case extractionlog.FieldSegmentStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSegmentStart(v)
		return nil
	case extractionlog.FieldSegmentEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSegmentEnd(v)
		return nil
	case extractionlog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionlog.FieldFields) {
		fields = append(fields, extractionlog.FieldFields)
	}
	if m.FieldCleared(extractionlog.FieldRawJSON) {
		fields = append(fields, extractionlog.FieldRawJSON)
	}
	if m.FieldCleared(extractionlog.FieldModelName) {
		fields = append(fields, extractionlog.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ClearField(name string) error {
	switch name {
	case extractionlog.FieldFields:
		m.ClearFields()
		return nil
	case extractionlog.FieldRawJSON:
		m.ClearRawJSON()
		return nil
	case extractionlog.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionLogMutation) ResetField(name string) error {
	switch name {
	case extractionlog.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionlog.FieldSegmentIndex:
		m.ResetSegmentIndex()
		return nil
	case extractionlog.FieldSegmentStart:
		m.ResetSegmentStart()
		return nil
	case extractionlog.FieldSegmentEnd:
		m.ResetSegmentEnd()
		return nil
	case extractionlog.FieldFields:
		m.ResetFields()
		return nil
	case extractionlog.FieldRawJSON:
		m.ResetRawJSON()
		return nil
	case extractionlog.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionlog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case extractionlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case extractionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extractionlog.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionlog.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extractionlog.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionlog.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionLogMutation) ClearEdge(name string) error {
	switch name {
	case extractionlog.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionLogMutation) ResetEdge(name string) error {
	switch name {
	case extractionlog.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionLog edge %s", name)
}
