package recon

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/analyzer"
	"github.com/oguzakin/eligibility-tracker/internal/classify"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/groundtruth"
)

// minCoverLetterText is the shortest cover-letter text worth parsing;
// anything below it is a failed extraction, not a letter.
const minCoverLetterText = 100

// TextProvider resolves a document to its extracted plain text. The
// pipeline backs this with the file extractors; tests use a map.
type TextProvider interface {
	TextFor(ctx context.Context, doc entity.Document) (string, error)
}

// Outcome is one completed reconciliation run: the merged record, the
// cross-validation report, the per-segment extraction audit trail and the
// documents with their final statuses.
type Outcome struct {
	Record      entity.MergedRecord
	Report      groundtruth.Report
	GroundTruth *entity.GroundTruth
	Extractions []entity.ExtractionResult
	Documents   []entity.Document
}

// Engine drives one application through the full pipeline: type
// resolution, cover-letter ground truth, per-document analysis in trust
// order, same-type then cross-type merging, normalization and validation.
type Engine struct {
	registry   *analyzer.Registry
	classifier *classify.Classifier
	texts      TextProvider
	log        *slog.Logger
}

func NewEngine(registry *analyzer.Registry, classifier *classify.Classifier, texts TextProvider, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{registry: registry, classifier: classifier, texts: texts, log: logger}
}

// Run reconciles one application. Individual document failures are recorded
// on the document and do not abort the run; Run errors only when not a
// single document produced usable fields.
func (e *Engine) Run(ctx context.Context, app entity.Application, docs []entity.Document) (*Outcome, error) {
	start := time.Now()
	e.log.Info("recon.run.start",
		"application_id", app.ID, "tracking_no", app.TrackingNo, "documents", len(docs))

	working := make([]entity.Document, len(docs))
	copy(working, docs)
	e.resolveTypes(working)

	missing, complete := e.checkCompleteness(app.ServiceID, working)

	gt, validator := e.parseCoverLetter(ctx, working)
	if validator != nil {
		var filenames []string
		for _, d := range working {
			if d.Filename != "" {
				filenames = append(filenames, d.Filename)
			}
		}
		validator.CheckDocumentList(filenames)
	}

	byType, extractions := e.analyzeDocuments(ctx, working, validator)
	if len(byType) == 0 {
		return nil, fmt.Errorf("application %s: no document produced usable fields", app.TrackingNo)
	}

	// Same-type merge first, then one source per type enters the
	// cross-type reconciliation.
	perType := make(map[constants.DocType]map[string]any, len(byType))
	var crossSources []Source
	for _, t := range constants.AnalyzableTypes {
		srcs := byType[t]
		if len(srcs) == 0 {
			continue
		}
		merged := srcs[0].Fields
		if len(srcs) > 1 {
			e.log.Info("recon.merge.same_type", "doc_type", t, "documents", len(srcs))
			merged, _, _ = MergeSources(srcs)
		}
		perType[t] = merged
		crossSources = append(crossSources, Source{
			Type:       t,
			DocumentID: srcs[0].DocumentID,
			Fields:     merged,
		})
	}

	fields, provenance, conflicts := MergeSources(crossSources)
	Normalize(fields, perType, gt, e.log)

	report := groundtruth.Report{Status: "SKIPPED"}
	if validator != nil {
		report = validator.Report()
	}

	outcome := &Outcome{
		Record: entity.MergedRecord{
			ApplicationID: app.ID,
			Fields:        fields,
			Provenance:    provenance,
			Conflicts:     conflicts,
			MissingDocs:   missing,
			DocsComplete:  complete,
			AnalyzedAt:    time.Now(),
			ElapsedSec:    time.Since(start).Seconds(),
		},
		Report:      report,
		GroundTruth: gt,
		Extractions: extractions,
		Documents:   working,
	}

	e.log.Info("recon.run.ok",
		"application_id", app.ID,
		"fields", len(fields),
		"conflicts", len(conflicts),
		"validation", report.Status,
		"docs_complete", complete,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return outcome, nil
}

// resolveTypes fills Document.Type from the declared label, falling back to
// filename classification for documents the source system left untyped.
func (e *Engine) resolveTypes(docs []entity.Document) {
	for i := range docs {
		if docs[i].Type != "" {
			continue
		}
		t, ok := constants.CanonicalDocType(docs[i].DeclaredType)
		if !ok && e.classifier != nil {
			if guess, hit := e.classifier.Predict(docs[i].Filename); hit {
				e.log.Info("recon.classify.filename",
					"document_id", docs[i].ID, "filename", docs[i].Filename, "type", guess)
				t = guess
			}
		}
		docs[i].Type = t
	}
}

func (e *Engine) checkCompleteness(serviceID string, docs []entity.Document) (missing []string, complete bool) {
	present := map[constants.DocType]bool{}
	for _, d := range docs {
		present[d.Type] = true
	}
	for _, req := range constants.RequiredDocuments(serviceID) {
		if !present[req] {
			missing = append(missing, string(req))
		}
	}
	if len(missing) > 0 {
		e.log.Warn("recon.documents.missing", "service_id", serviceID, "missing", missing)
		return missing, false
	}
	return nil, true
}

// parseCoverLetter extracts and parses the cover letter, seeding the
// validator. A missing or unreadable cover letter only disables
// cross-validation.
func (e *Engine) parseCoverLetter(ctx context.Context, docs []entity.Document) (*entity.GroundTruth, *groundtruth.Validator) {
	for i := range docs {
		if docs[i].Type != constants.CoverLetter {
			continue
		}
		text, err := e.texts.TextFor(ctx, docs[i])
		if err != nil || len(strings.TrimSpace(text)) < minCoverLetterText {
			e.log.Warn("recon.coverletter.unreadable",
				"document_id", docs[i].ID, "text_len", len(text), "error", err)
			docs[i].Status = constants.DocStatusSkipped
			docs[i].Note = note("cover letter unreadable, cross-validation disabled")
			return nil, nil
		}
		gt := groundtruth.Parse(text)
		if !gt.Usable() {
			e.log.Warn("recon.coverletter.no_identity", "document_id", docs[i].ID)
			docs[i].Status = constants.DocStatusSkipped
			docs[i].Note = note("cover letter parsed but no identity found")
			return nil, nil
		}
		docs[i].Status = constants.DocStatusAnalyzed
		e.log.Info("recon.coverletter.ok",
			"document_id", docs[i].ID,
			"full_name", gt.FullName,
			"expected_documents", len(gt.DocumentList))
		return gt, groundtruth.NewValidator(gt, e.log)
	}
	e.log.Warn("recon.coverletter.absent")
	return nil, nil
}

// analyzeDocuments walks the documents in trust order and collects each
// successful analysis as a merge source grouped by type.
func (e *Engine) analyzeDocuments(
	ctx context.Context,
	docs []entity.Document,
	validator *groundtruth.Validator,
) (map[constants.DocType][]Source, []entity.ExtractionResult) {
	order := make([]*entity.Document, 0, len(docs))
	for i := range docs {
		order = append(order, &docs[i])
	}
	sort.SliceStable(order, func(i, j int) bool {
		return constants.TrustRank(order[i].Type) < constants.TrustRank(order[j].Type)
	})

	byType := map[constants.DocType][]Source{}
	var extractions []entity.ExtractionResult

	for _, doc := range order {
		switch doc.Type {
		case constants.CoverLetter:
			continue // handled up front
		case constants.Photo:
			// Presence is all that is checked; there is nothing to extract.
			doc.Status = constants.DocStatusSkipped
			doc.Note = note("photo: presence check only")
			continue
		}

		a, ok := e.registry.ForType(doc.Type)
		if !ok {
			doc.Status = constants.DocStatusSkipped
			doc.Note = note("no analyzer for type " + string(doc.Type))
			continue
		}

		text, err := e.texts.TextFor(ctx, *doc)
		if err != nil || strings.TrimSpace(text) == "" {
			e.log.Warn("recon.doc.no_text", "document_id", doc.ID, "type", doc.Type, "error", err)
			doc.Status = constants.DocStatusFailed
			doc.Note = note("no extractable text")
			continue
		}

		res, err := a.Analyze(ctx, *doc, text)
		extractions = append(extractions, res.Extractions...)
		if err != nil {
			e.log.Error("recon.doc.failed", "document_id", doc.ID, "type", doc.Type, "error", err)
			doc.Status = constants.DocStatusFailed
			doc.Note = note(err.Error())
			continue
		}

		e.validateDocFields(validator, doc.Type, res.Fields)

		doc.Status = constants.DocStatusAnalyzed
		byType[doc.Type] = append(byType[doc.Type], Source{
			Type:       doc.Type,
			DocumentID: doc.ID,
			Fields:     res.Fields,
		})
	}
	return byType, extractions
}

// validateDocFields runs the per-document identity checks. The national id
// is critical; names change with marriage and contact details drift, so
// those only warn.
func (e *Engine) validateDocFields(v *groundtruth.Validator, t constants.DocType, fields map[string]any) {
	if v == nil {
		return
	}
	src := string(t)
	v.CheckField("national_id", fields["national_id"], src, constants.SeverityCritical)
	v.CheckField("full_name", fields["full_name"], src, constants.SeverityWarning)
	v.CheckField("email", fields["email"], src, constants.SeverityWarning)
	v.CheckField("phone", fields["phone"], src, constants.SeverityWarning)
}

func note(s string) *string { return &s }
