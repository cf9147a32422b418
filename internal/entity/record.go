package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
)

// MergedRecord is the Application's canonical extracted facts, rebuilt from
// scratch on every reconciliation run.
type MergedRecord struct {
	ApplicationID uuid.UUID             `json:"application_id"`
	Fields        map[string]any        `json:"fields"`
	Provenance    map[string]Provenance `json:"provenance"`
	Conflicts     map[string]Conflict   `json:"conflicts"`
	MissingDocs   []string              `json:"missing_docs,omitempty"`
	DocsComplete  bool                  `json:"docs_complete"`
	AnalyzedAt    time.Time             `json:"analyzed_at"`
	ElapsedSec    float64               `json:"elapsed_sec"`
}

// Provenance records which document/type produced the winning value for a
// merged field, and the strategy that picked it.
type Provenance struct {
	SourceType constants.DocType `json:"source_type"`
	DocumentID *uuid.UUID        `json:"document_id,omitempty"`
	Strategy   string            `json:"strategy"`
}

// Conflict holds every contributing value for a field the sources disagreed
// on, keyed by source document type.
type Conflict struct {
	Values   map[constants.DocType]any `json:"values"`
	Strategy string                    `json:"strategy"`
}

// ValidationFinding is one cross-validation mismatch, attached to the output
// for a human reviewer. Findings never block processing.
type ValidationFinding struct {
	Field    string             `json:"field"`
	Source   string             `json:"source"`
	Value    any                `json:"value"`
	Expected any                `json:"expected"`
	Severity constants.Severity `json:"severity"`
}

// AnalysisResult is the persisted form of one reconciliation run.
type AnalysisResult struct {
	ID            uuid.UUID           `json:"id"`
	ApplicationID uuid.UUID           `json:"application_id"`
	Fields        json.RawMessage     `json:"fields"`
	Provenance    json.RawMessage     `json:"provenance"`
	Conflicts     json.RawMessage     `json:"conflicts"`
	Findings      []ValidationFinding `json:"findings,omitempty"`
	DocsComplete  bool                `json:"docs_complete"`
	MissingDocs   []string            `json:"missing_docs,omitempty"`
	AnalyzedAt    time.Time           `json:"analyzed_at"`
	ElapsedSec    float64             `json:"elapsed_sec"`
}
