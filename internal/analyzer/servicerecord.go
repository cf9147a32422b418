package analyzer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/llm"
	"github.com/oguzakin/eligibility-tracker/internal/sgk"
)

// serviceRecordAnalyzer parses the social-security table directly and only
// falls back to the extraction model when the regex parser cannot read the
// document (degraded scans, layout drift).
type serviceRecordAnalyzer struct {
	docType  constants.DocType
	fallback Analyzer
	log      *slog.Logger
}

// NewServiceRecord analyzes SGK employment records.
func NewServiceRecord(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceRecordAnalyzer{
		docType:  constants.ServiceRecord,
		fallback: newChunked(constants.ServiceRecord, ex, logger),
		log:      logger,
	}
}

// NewMinistryServiceRecord analyzes public-sector (Hitap) records. The
// table layout matches the SGK printout closely enough for the same parser.
func NewMinistryServiceRecord(ex llm.FieldExtractor, logger *slog.Logger) Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceRecordAnalyzer{
		docType:  constants.MinistryServiceRecord,
		fallback: newChunked(constants.MinistryServiceRecord, ex, logger),
		log:      logger,
	}
}

func (a *serviceRecordAnalyzer) DocType() constants.DocType { return a.docType }

// clearSectorExperience drops per-sector experience fields the model may
// have guessed. A service record carries no sector information; sector
// breakdowns come only from sector certificates.
func clearSectorExperience(fields map[string]any) {
	for _, s := range constants.AllSectors() {
		delete(fields, constants.ExperienceField(s))
	}
}

func (a *serviceRecordAnalyzer) Analyze(ctx context.Context, doc entity.Document, text string) (Result, error) {
	start := time.Now()

	rec, ok := sgk.Parse(text)
	if !ok {
		a.log.Warn("analyzer.sgk.parse_failed",
			"doc_type", a.docType, "document_id", doc.ID, "text_len", len(text))
		res, err := a.fallback.Analyze(ctx, doc, text)
		if err != nil {
			return res, err
		}
		clearSectorExperience(res.Fields)
		return res, nil
	}

	fields := sgk.FieldMap(rec)
	raw, _ := json.Marshal(rec)

	a.log.Info("analyzer.sgk.parse_ok",
		"doc_type", a.docType,
		"document_id", doc.ID,
		"rows", len(rec.Rows),
		"total_days", rec.Totals.TotalDays,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Fields: fields,
		Extractions: []entity.ExtractionResult{{
			DocumentID:   doc.ID,
			SegmentIndex: 0,
			SegmentStart: 0,
			SegmentEnd:   len(text),
			Fields:       fields,
			RawJSON:      raw,
			ModelName:    "sgk-regex",
			Duration:     time.Since(start),
			Success:      true,
		}},
	}, nil
}
