// Package extract turns uploaded document files into plain text for the
// analyzers. PDF and plain-text files are supported; image-only documents
// (photos) are never analyzed and are rejected here.
package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "TEXT"
	Method     string // "pdf-content" | "plain"
	Duration   time.Duration
	Warnings   []string
}
