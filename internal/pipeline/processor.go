package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/recon"
	"github.com/oguzakin/eligibility-tracker/internal/repository"
)

// Processor drives one application through the reconciliation engine and
// persists everything the run produced: document statuses, resolved types,
// the merged record and the extraction audit trail.
type Processor struct {
	apps    repository.ApplicationRepository
	docs    repository.DocumentRepository
	results repository.ResultRepository
	engine  *recon.Engine
	log     *slog.Logger
}

func NewProcessor(
	apps repository.ApplicationRepository,
	docs repository.DocumentRepository,
	results repository.ResultRepository,
	engine *recon.Engine,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{apps: apps, docs: docs, results: results, engine: engine, log: logger}
}

// ProcessApplication analyzes a single application end to end. A failed run
// marks the application FAILED with the error message; the documents keep
// whatever status the engine assigned before the failure.
func (p *Processor) ProcessApplication(ctx context.Context, app *entity.Application) error {
	start := time.Now()
	if err := p.apps.MarkProcessing(ctx, app.ID); err != nil {
		return err
	}

	rows, err := p.docs.ListByApplication(ctx, app.ID)
	if err != nil {
		return p.fail(ctx, app, err)
	}
	docs := make([]entity.Document, len(rows))
	for i, d := range rows {
		docs[i] = *d
	}

	outcome, err := p.engine.Run(ctx, *app, docs)
	if err != nil {
		return p.fail(ctx, app, err)
	}

	p.persistDocuments(ctx, docs, outcome.Documents)

	findings := append(outcome.Report.Errors, outcome.Report.Warnings...)
	if _, err := p.results.SaveRun(ctx, &repository.SaveRunRequest{
		Record:           outcome.Record,
		Findings:         findings,
		ValidationStatus: outcome.Report.Status,
		Extractions:      outcome.Extractions,
	}); err != nil {
		return p.fail(ctx, app, err)
	}

	if err := p.apps.MarkProcessed(ctx, app.ID, true, nil); err != nil {
		return err
	}
	p.log.Info("pipeline.application.ok",
		"application_id", app.ID,
		"tracking_no", app.TrackingNo,
		"validation", outcome.Report.Status,
		"elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

// persistDocuments writes back the type and status changes the engine made
// to its working copy. Write failures here are logged and swallowed; they
// must not undo a completed analysis.
func (p *Processor) persistDocuments(ctx context.Context, before, after []entity.Document) {
	prev := make(map[string]entity.Document, len(before))
	for _, d := range before {
		prev[d.ID.String()] = d
	}
	for _, d := range after {
		orig, ok := prev[d.ID.String()]
		if !ok {
			continue
		}
		if d.Type != "" && d.Type != orig.Type {
			if err := p.docs.UpdateType(ctx, d.ID, d.Type); err != nil {
				p.log.Warn("pipeline.document.type_not_saved", "document_id", d.ID, "error", err)
			}
		}
		if d.Status != orig.Status {
			if err := p.docs.UpdateStatus(ctx, d.ID, d.Status, d.Note); err != nil {
				p.log.Warn("pipeline.document.status_not_saved", "document_id", d.ID, "error", err)
			}
		}
	}
}

func (p *Processor) fail(ctx context.Context, app *entity.Application, cause error) error {
	p.log.Error("pipeline.application.failed",
		"application_id", app.ID, "tracking_no", app.TrackingNo, "error", cause)
	msg := cause.Error()
	if err := p.apps.MarkProcessed(ctx, app.ID, false, &msg); err != nil {
		p.log.Error("pipeline.application.mark_failed", "application_id", app.ID, "error", err)
	}
	return cause
}
