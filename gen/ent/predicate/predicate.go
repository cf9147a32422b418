// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisResult is the predicate function for analysisresult builders.
type AnalysisResult func(*sql.Selector)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionLog is the predicate function for extractionlog builders.
type ExtractionLog func(*sql.Selector)
