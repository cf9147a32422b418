// Package analyzer runs per-document field extraction. Each document type
// has an Analyzer that knows how to turn the extracted text into a field
// map: most types chunk the text and ask the extraction model per segment,
// the social-security record is parsed directly, and a couple of verbose
// types only look at the first segment to keep the model from wandering.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/chunker"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/llm"
)

// Result is one analyzed document: the merged field map plus the
// per-segment extractions kept for audit.
type Result struct {
	Fields      map[string]any
	Extractions []entity.ExtractionResult
}

// Analyzer extracts structured fields from one document's text.
type Analyzer interface {
	DocType() constants.DocType
	Analyze(ctx context.Context, doc entity.Document, text string) (Result, error)
}

// typeLabels are the Turkish display names injected into prompts for types
// without a dedicated instruction block.
var typeLabels = map[constants.DocType]string{
	constants.CV:                    "Özgeçmiş",
	constants.Diploma:               "Diploma",
	constants.ServiceRecord:         "SGK Hizmet Dökümü",
	constants.MinistryServiceRecord: "Hitap Hizmet Dökümü",
	constants.CriminalRecord:        "Adli Sicil Kaydı",
	constants.ProjectFile:           "Proje Dosyası",
	constants.SectorCertificate:     "Sektör Belgesi",
	constants.OtherDocument:         "Diğer Belge",
}

// postFn reshapes a merged field map after segment merging. doc is the
// analyzed document, for posts that depend on its declared type.
type postFn func(doc entity.Document, fields map[string]any) map[string]any

// chunked is the default analyzer: split, extract per segment, merge.
type chunked struct {
	docType   constants.DocType
	extractor llm.FieldExtractor
	cfg       chunker.Config
	log       *slog.Logger
	firstOnly bool
	post      postFn
}

func newChunked(t constants.DocType, ex llm.FieldExtractor, logger *slog.Logger) *chunked {
	if logger == nil {
		logger = slog.Default()
	}
	return &chunked{docType: t, extractor: ex, cfg: chunker.DefaultConfig(), log: logger}
}

func (c *chunked) DocType() constants.DocType { return c.docType }

func (c *chunked) Analyze(ctx context.Context, doc entity.Document, text string) (Result, error) {
	start := time.Now()
	segments := chunker.Split(text, c.cfg)
	if c.firstOnly && len(segments) > 1 {
		// Long certificates and project files make the model hallucinate;
		// the facts we need are on the first page.
		c.log.Info("analyzer.first_segment_only",
			"doc_type", c.docType, "document_id", doc.ID, "segments_skipped", len(segments)-1)
		segments = segments[:1]
	}

	sector, _ := constants.SectorForLabel(doc.DeclaredType)

	var (
		res       Result
		fieldMaps []map[string]any
	)
	for _, seg := range segments {
		out, err := c.extractor.ExtractFields(ctx, llm.ExtractRequest{
			DocType:      c.docType,
			DocTypeLabel: typeLabels[c.docType],
			Sector:       sector,
			Text:         seg.Text,
			SegmentIndex: seg.Index,
		})
		ex := entity.ExtractionResult{
			DocumentID:   doc.ID,
			SegmentIndex: seg.Index,
			SegmentStart: seg.Start,
			SegmentEnd:   seg.End,
			ModelName:    out.Model,
			Duration:     out.Duration,
		}
		if err != nil {
			c.log.Warn("analyzer.segment_failed",
				"doc_type", c.docType, "document_id", doc.ID, "segment", seg.Index, "error", err)
			res.Extractions = append(res.Extractions, ex)
			continue
		}
		ex.Fields = out.Fields
		ex.RawJSON = out.Raw
		ex.Success = true
		res.Extractions = append(res.Extractions, ex)
		fieldMaps = append(fieldMaps, out.Fields)
	}

	if len(fieldMaps) == 0 {
		return res, fmt.Errorf("%s: no segment produced usable fields", c.docType)
	}

	res.Fields = chunker.Merge(fieldMaps)
	if c.post != nil {
		res.Fields = c.post(doc, res.Fields)
	}

	c.log.Info("analyzer.doc_ok",
		"doc_type", c.docType,
		"document_id", doc.ID,
		"segments", len(segments),
		"segments_ok", len(fieldMaps),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// NewCV analyzes a résumé across all segments.
func NewCV(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	return newChunked(constants.CV, ex, logger)
}

// NewDiploma analyzes diploma documents and flattens the per-diploma list
// into the summary education fields.
func NewDiploma(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	a := newChunked(constants.Diploma, ex, logger)
	a.post = flattenDiplomas
	return a
}

// NewCriminalRecord analyzes the criminal-record statement.
func NewCriminalRecord(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	return newChunked(constants.CriminalRecord, ex, logger)
}

// NewProjectFile reads only the first segment: project files run to dozens
// of pages and only the title sheet matters.
func NewProjectFile(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	a := newChunked(constants.ProjectFile, ex, logger)
	a.firstOnly = true
	return a
}

// NewSectorCertificate reads only the first segment and maps the certified
// duration onto the sector's experience field.
func NewSectorCertificate(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	a := newChunked(constants.SectorCertificate, ex, logger)
	a.firstOnly = true
	a.post = mapSectorExperience
	return a
}

// NewOther analyzes unclassified documents with the permissive schema.
func NewOther(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	return newChunked(constants.OtherDocument, ex, logger)
}

// Registry holds one analyzer per document type.
type Registry struct {
	byType map[constants.DocType]Analyzer
}

// NewRegistry wires the full analyzer set over one extraction backend.
func NewRegistry(ex llm.FieldExtractor, logger *slog.Logger) *Registry {
	r := &Registry{byType: map[constants.DocType]Analyzer{}}
	for _, a := range []Analyzer{
		NewCV(ex, logger),
		NewDiploma(ex, logger),
		NewServiceRecord(ex, logger),
		NewMinistryServiceRecord(ex, logger),
		NewCriminalRecord(ex, logger),
		NewProjectFile(ex, logger),
		NewSectorCertificate(ex, logger),
		NewOther(ex, logger),
	} {
		r.byType[a.DocType()] = a
	}
	return r
}

// ForType returns the analyzer for a document type.
func (r *Registry) ForType(t constants.DocType) (Analyzer, bool) {
	a, ok := r.byType[t]
	return a, ok
}
