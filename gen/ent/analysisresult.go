// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
)

// AnalysisResult is the model entity for the AnalysisResult schema.
type AnalysisResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields json.RawMessage `json:"fields,omitempty"`
	// Provenance holds the value of the "provenance" field.
	Provenance json.RawMessage `json:"provenance,omitempty"`
	// Conflicts holds the value of the "conflicts" field.
	Conflicts json.RawMessage `json:"conflicts,omitempty"`
	// Findings holds the value of the "findings" field.
	Findings json.RawMessage `json:"findings,omitempty"`
	// DocsComplete holds the value of the "docs_complete" field.
	DocsComplete bool `json:"docs_complete,omitempty"`
	// MissingDocs holds the value of the "missing_docs" field.
	MissingDocs []string `json:"missing_docs,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus string `json:"validation_status,omitempty"`
	// AnalyzedAt holds the value of the "analyzed_at" field.
	AnalyzedAt time.Time `json:"analyzed_at,omitempty"`
	// ElapsedSec holds the value of the "elapsed_sec" field.
	ElapsedSec float64 `json:"elapsed_sec,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisResultQuery when eager-loading is set.
	Edges        AnalysisResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisResultEdges holds the relations/edges for other nodes in the graph.
type AnalysisResultEdges struct {
	// Application holds the value of the application edge.
	Application *Application `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisResultEdges) ApplicationOrErr() (*Application, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: application.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisresult.FieldFields, analysisresult.FieldProvenance, analysisresult.FieldConflicts, analysisresult.FieldFindings, analysisresult.FieldMissingDocs:
			values[i] = new([]byte)
		case analysisresult.FieldDocsComplete:
			values[i] = new(sql.NullBool)
		case analysisresult.FieldElapsedSec:
			values[i] = new(sql.NullFloat64)
		case analysisresult.FieldValidationStatus:
			values[i] = new(sql.NullString)
		case analysisresult.FieldAnalyzedAt:
			values[i] = new(sql.NullTime)
		case analysisresult.FieldID, analysisresult.FieldApplicationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisResult fields.
func (_m *AnalysisResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisresult.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				_m.ApplicationID = *value
			}
		case analysisresult.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case analysisresult.FieldProvenance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provenance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Provenance); err != nil {
					return fmt.Errorf("unmarshal field provenance: %w", err)
				}
			}
		case analysisresult.FieldConflicts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conflicts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conflicts); err != nil {
					return fmt.Errorf("unmarshal field conflicts: %w", err)
				}
			}
		case analysisresult.FieldFindings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field findings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Findings); err != nil {
					return fmt.Errorf("unmarshal field findings: %w", err)
				}
			}
		case analysisresult.FieldDocsComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field docs_complete", values[i])
			} else if value.Valid {
				_m.DocsComplete = value.Bool
			}
		case analysisresult.FieldMissingDocs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_docs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingDocs); err != nil {
					return fmt.Errorf("unmarshal field missing_docs: %w", err)
				}
			}
		case analysisresult.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = value.String
			}
		case analysisresult.FieldAnalyzedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_at", values[i])
			} else if value.Valid {
				_m.AnalyzedAt = value.Time
			}
		case analysisresult.FieldElapsedSec:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_sec", values[i])
			} else if value.Valid {
				_m.ElapsedSec = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisResult.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the AnalysisResult entity.
func (_m *AnalysisResult) QueryApplication() *ApplicationQuery {
	return NewAnalysisResultClient(_m.config).QueryApplication(_m)
}

// Update returns a builder for updating this AnalysisResult.
// Note that you need to call AnalysisResult.Unwrap() before calling this method if this AnalysisResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisResult) Update() *AnalysisResultUpdateOne {
	return NewAnalysisResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisResult) Unwrap() *AnalysisResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisResult) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("provenance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provenance))
	builder.WriteString(", ")
	builder.WriteString("conflicts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conflicts))
	builder.WriteString(", ")
	builder.WriteString("findings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Findings))
	builder.WriteString(", ")
	builder.WriteString("docs_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocsComplete))
	builder.WriteString(", ")
	builder.WriteString("missing_docs=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingDocs))
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(_m.ValidationStatus)
	builder.WriteString(", ")
	builder.WriteString("analyzed_at=")
	builder.WriteString(_m.AnalyzedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("elapsed_sec=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedSec))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisResults is a parsable slice of AnalysisResult.
type AnalysisResults []*AnalysisResult
