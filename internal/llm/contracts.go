// Package llm defines the field-extraction contract and the prompt/schema
// pairs for each analyzable document type. Providers live in subpackages.
package llm

import (
	"context"
	"time"

	"github.com/oguzakin/eligibility-tracker/constants"
)

// ExtractRequest carries one text segment to the extraction model.
type ExtractRequest struct {
	DocType      constants.DocType
	DocTypeLabel string           // human-readable label used in the prompt
	Sector       constants.Sector // set only for sector certificates
	Text         string
	SegmentIndex int
}

// Result is one schema-valid extraction.
type Result struct {
	Fields   map[string]any
	Raw      []byte // the accepted JSON, post-sanitization
	Model    string
	Duration time.Duration
}

// FieldExtractor turns document text into structured fields.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (Result, error)
}
