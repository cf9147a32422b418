// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionlog type in the database.
	Label = "extraction_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldSegmentIndex holds the string denoting the segment_index field in the database.
	FieldSegmentIndex = "segment_index"
	// FieldSegmentStart holds the string denoting the segment_start field in the database.
	FieldSegmentStart = "segment_start"
	// FieldSegmentEnd holds the string denoting the segment_end field in the database.
	FieldSegmentEnd = "segment_end"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldRawJSON holds the string denoting the raw_json field in the database.
	FieldRawJSON = "raw_json"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the extractionlog in the database.
	Table = "extraction_log"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extraction_log"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for extractionlog fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldSegmentIndex,
	FieldSegmentStart,
	FieldSegmentEnd,
	FieldFields,
	FieldRawJSON,
	FieldModelName,
	FieldDurationMs,
	FieldSuccess,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSegmentIndex holds the default value on creation for the "segment_index" field.
	DefaultSegmentIndex int
	// DefaultSegmentStart holds the default value on creation for the "segment_start" field.
	DefaultSegmentStart int
	// DefaultSegmentEnd holds the default value on creation for the "segment_end" field.
	DefaultSegmentEnd int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// BySegmentIndex orders the results by the segment_index field.
func BySegmentIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentIndex, opts...).ToFunc()
}

// BySegmentStart orders the results by the segment_start field.
func BySegmentStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentStart, opts...).ToFunc()
}

// BySegmentEnd orders the results by the segment_end field.
func BySegmentEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentEnd, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
