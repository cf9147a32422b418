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
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/gen/ent/extractionlog"
)

// ExtractionLog is the model entity for the ExtractionLog schema.
type ExtractionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// SegmentIndex holds the value of the "segment_index" field.
	SegmentIndex int `json:"segment_index,omitempty"`
	// SegmentStart holds the value of the "segment_start" field.
	SegmentStart int `json:"segment_start,omitempty"`
	// SegmentEnd holds the value of the "segment_end" field.
	SegmentEnd int `json:"segment_end,omitempty"`
	// Fields holds the value of the "fields" field.
	Fields json.RawMessage `json:"fields,omitempty"`
	// RawJSON holds the value of the "raw_json" field.
	RawJSON json.RawMessage `json:"raw_json,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionLogQuery when eager-loading is set.
	Edges        ExtractionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionLogEdges holds the relations/edges for other nodes in the graph.
type ExtractionLogEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionLogEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldFields, extractionlog.FieldRawJSON:
			values[i] = new([]byte)
		case extractionlog.FieldSuccess:
			values[i] = new(sql.NullBool)
		case extractionlog.FieldSegmentIndex, extractionlog.FieldSegmentStart, extractionlog.FieldSegmentEnd, extractionlog.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case extractionlog.FieldModelName:
			values[i] = new(sql.NullString)
		case extractionlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractionlog.FieldID, extractionlog.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionLog fields.
func (_m *ExtractionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionlog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionlog.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractionlog.FieldSegmentIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field segment_index", values[i])
			} else if value.Valid {
				_m.SegmentIndex = int(value.Int64)
			}
		case extractionlog.FieldSegmentStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field segment_start", values[i])
			} else if value.Valid {
				_m.SegmentStart = int(value.Int64)
			}
		case extractionlog.FieldSegmentEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field segment_end", values[i])
			} else if value.Valid {
				_m.SegmentEnd = int(value.Int64)
			}
		case extractionlog.FieldFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Fields); err != nil {
					return fmt.Errorf("unmarshal field fields: %w", err)
				}
			}
		case extractionlog.FieldRawJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawJSON); err != nil {
					return fmt.Errorf("unmarshal field raw_json: %w", err)
				}
			}
		case extractionlog.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case extractionlog.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case extractionlog.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case extractionlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractionLog entity.
func (_m *ExtractionLog) QueryDocument() *DocumentQuery {
	return NewExtractionLogClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ExtractionLog.
// Note that you need to call ExtractionLog.Unwrap() before calling this method if this ExtractionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionLog) Update() *ExtractionLogUpdateOne {
	return NewExtractionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionLog) Unwrap() *ExtractionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("segment_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SegmentIndex))
	builder.WriteString(", ")
	builder.WriteString("segment_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.SegmentStart))
	builder.WriteString(", ")
	builder.WriteString("segment_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.SegmentEnd))
	builder.WriteString(", ")
	builder.WriteString("fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fields))
	builder.WriteString(", ")
	builder.WriteString("raw_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawJSON))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionLogs is a parsable slice of ExtractionLog.
type ExtractionLogs []*ExtractionLog
