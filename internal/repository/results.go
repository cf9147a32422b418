package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/gen/ent"
	"github.com/oguzakin/eligibility-tracker/gen/ent/analysisresult"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// SaveRunRequest carries everything one reconciliation run persists.
type SaveRunRequest struct {
	Record           entity.MergedRecord
	Findings         []entity.ValidationFinding
	ValidationStatus string
	Extractions      []entity.ExtractionResult
}

type ResultRepository interface {
	SaveRun(ctx context.Context, req *SaveRunRequest) (*entity.AnalysisResult, error)
	LatestByApplication(ctx context.Context, appID uuid.UUID) (*entity.AnalysisResult, error)
	ListAll(ctx context.Context) ([]*entity.AnalysisResult, error)
}

type resultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewResultRepository(client *ent.Client, logger *slog.Logger) ResultRepository {
	return &resultRepository{client: client, logger: logger}
}

func (r *resultRepository) SaveRun(ctx context.Context, req *SaveRunRequest) (*entity.AnalysisResult, error) {
	rec := req.Record

	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, err
	}
	provenance, err := json.Marshal(rec.Provenance)
	if err != nil {
		return nil, err
	}
	conflicts, err := json.Marshal(rec.Conflicts)
	if err != nil {
		return nil, err
	}
	findings, err := json.Marshal(req.Findings)
	if err != nil {
		return nil, err
	}

	row, err := r.client.AnalysisResult.Create().
		SetApplicationID(rec.ApplicationID).
		SetFields(fields).
		SetProvenance(provenance).
		SetConflicts(conflicts).
		SetFindings(findings).
		SetDocsComplete(rec.DocsComplete).
		SetMissingDocs(rec.MissingDocs).
		SetValidationStatus(req.ValidationStatus).
		SetAnalyzedAt(rec.AnalyzedAt).
		SetElapsedSec(rec.ElapsedSec).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save analysis result", "application_id", rec.ApplicationID, "error", err)
		return nil, err
	}

	if err := r.appendExtractions(ctx, req.Extractions); err != nil {
		return nil, err
	}

	r.logger.Info("analysis result saved",
		"application_id", rec.ApplicationID,
		"fields", len(rec.Fields),
		"conflicts", len(rec.Conflicts),
		"findings", len(req.Findings))
	return toAnalysisResult(row), nil
}

func (r *resultRepository) appendExtractions(ctx context.Context, extractions []entity.ExtractionResult) error {
	if len(extractions) == 0 {
		return nil
	}
	builders := make([]*ent.ExtractionLogCreate, len(extractions))
	for i, ex := range extractions {
		fields, err := json.Marshal(ex.Fields)
		if err != nil {
			return err
		}
		b := r.client.ExtractionLog.Create().
			SetDocumentID(ex.DocumentID).
			SetSegmentIndex(ex.SegmentIndex).
			SetSegmentStart(ex.SegmentStart).
			SetSegmentEnd(ex.SegmentEnd).
			SetFields(fields).
			SetDurationMs(ex.Duration.Milliseconds()).
			SetSuccess(ex.Success)
		if len(ex.RawJSON) > 0 {
			b = b.SetRawJSON(ex.RawJSON)
		}
		if ex.ModelName != "" {
			b = b.SetModelName(ex.ModelName)
		}
		builders[i] = b
	}
	if err := r.client.ExtractionLog.CreateBulk(builders...).Exec(ctx); err != nil {
		r.logger.Error("failed to save extraction log", "count", len(extractions), "error", err)
		return err
	}
	return nil
}

func (r *resultRepository) LatestByApplication(ctx context.Context, appID uuid.UUID) (*entity.AnalysisResult, error) {
	row, err := r.client.AnalysisResult.Query().
		Where(analysisresult.ApplicationIDEQ(appID)).
		Order(ent.Desc(analysisresult.FieldAnalyzedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return toAnalysisResult(row), nil
}

func (r *resultRepository) ListAll(ctx context.Context) ([]*entity.AnalysisResult, error) {
	rows, err := r.client.AnalysisResult.Query().
		Order(ent.Desc(analysisresult.FieldAnalyzedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list analysis results", "error", err)
		return nil, err
	}
	out := make([]*entity.AnalysisResult, len(rows))
	for i, row := range rows {
		out[i] = toAnalysisResult(row)
	}
	return out, nil
}
