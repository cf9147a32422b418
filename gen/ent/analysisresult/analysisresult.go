// Code generated by ent, DO NOT EDIT.

package analysisresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the analysisresult type in the database.
	Label = "analysis_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldFields holds the string denoting the fields field in the database.
	FieldFields = "fields"
	// FieldProvenance holds the string denoting the provenance field in the database.
	FieldProvenance = "provenance"
	// FieldConflicts holds the string denoting the conflicts field in the database.
	FieldConflicts = "conflicts"
	// FieldFindings holds the string denoting the findings field in the database.
	FieldFindings = "findings"
	// FieldDocsComplete holds the string denoting the docs_complete field in the database.
	FieldDocsComplete = "docs_complete"
	// FieldMissingDocs holds the string denoting the missing_docs field in the database.
	FieldMissingDocs = "missing_docs"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldAnalyzedAt holds the string denoting the analyzed_at field in the database.
	FieldAnalyzedAt = "analyzed_at"
	// FieldElapsedSec holds the string denoting the elapsed_sec field in the database.
	FieldElapsedSec = "elapsed_sec"
	// EdgeApplication holds the string denoting the application edge name in mutations.
	EdgeApplication = "application"
	// Table holds the table name of the analysisresult in the database.
	Table = "analysis_results"
	// ApplicationTable is the table that holds the application relation/edge.
	ApplicationTable = "analysis_results"
	// ApplicationInverseTable is the table name for the Application entity.
	// It exists in this package in order to avoid circular dependency with the "application" package.
	ApplicationInverseTable = "applications"
	// ApplicationColumn is the table column denoting the application relation/edge.
	ApplicationColumn = "application_id"
)

// Columns holds all SQL columns for analysisresult fields.
var Columns = []string{
	FieldID,
	FieldApplicationID,
	FieldFields,
	FieldProvenance,
	FieldConflicts,
	FieldFindings,
	FieldDocsComplete,
	FieldMissingDocs,
	FieldValidationStatus,
	FieldAnalyzedAt,
	FieldElapsedSec,
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
	// DefaultDocsComplete holds the default value on creation for the "docs_complete" field.
	DefaultDocsComplete bool
	// DefaultAnalyzedAt holds the default value on creation for the "analyzed_at" field.
	DefaultAnalyzedAt func() time.Time
	// DefaultElapsedSec holds the default value on creation for the "elapsed_sec" field.
	DefaultElapsedSec float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AnalysisResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByDocsComplete orders the results by the docs_complete field.
func ByDocsComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocsComplete, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByAnalyzedAt orders the results by the analyzed_at field.
func ByAnalyzedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalyzedAt, opts...).ToFunc()
}

// ByElapsedSec orders the results by the elapsed_sec field.
func ByElapsedSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedSec, opts...).ToFunc()
}

// ByApplicationField orders the results by application field.
func ByApplicationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicationTable, ApplicationColumn),
	)
}
