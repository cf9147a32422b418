package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/gen/ent"
	"github.com/oguzakin/eligibility-tracker/gen/ent/application"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app entity.Application) (*entity.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	GetByTrackingNo(ctx context.Context, trackingNo string) (*entity.Application, error)
	// NextPending claims up to limit unprocessed applications, oldest first.
	NextPending(ctx context.Context, limit int) ([]*entity.Application, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkProcessed(ctx context.Context, id uuid.UUID, success bool, errMsg *string) error
}

type applicationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(client *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepository{client: client, logger: logger}
}

func (r *applicationRepository) Create(ctx context.Context, app entity.Application) (*entity.Application, error) {
	builder := r.client.Application.Create().
		SetID(app.ID).
		SetSourceID(app.SourceID).
		SetTrackingNo(app.TrackingNo).
		SetServiceID(app.ServiceID).
		SetServiceName(app.ServiceName).
		SetApplicantName(app.ApplicantName).
		SetNationalID(app.NationalID).
		SetStatus(string(app.Status))
	if app.SubmittedAt != nil {
		builder = builder.SetSubmittedAt(*app.SubmittedAt)
	}

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		// Re-delivered intake payload; keep the existing row.
		r.logger.Warn("application already ingested", "tracking_no", app.TrackingNo)
		return r.GetByTrackingNo(ctx, app.TrackingNo)
	}
	if err != nil {
		r.logger.Error("failed to create application", "tracking_no", app.TrackingNo, "error", err)
		return nil, err
	}
	return toApplication(row), nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	row, err := r.client.Application.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toApplication(row), nil
}

func (r *applicationRepository) GetByTrackingNo(ctx context.Context, trackingNo string) (*entity.Application, error) {
	row, err := r.client.Application.Query().
		Where(application.TrackingNoEQ(trackingNo)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toApplication(row), nil
}

func (r *applicationRepository) NextPending(ctx context.Context, limit int) ([]*entity.Application, error) {
	rows, err := r.client.Application.Query().
		Where(application.StatusEQ(string(constants.AppStatusPending))).
		Order(application.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pending applications", "error", err)
		return nil, err
	}
	out := make([]*entity.Application, len(rows))
	for i, row := range rows {
		out[i] = toApplication(row)
	}
	return out, nil
}

func (r *applicationRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	err := r.client.Application.UpdateOneID(id).
		SetStatus(string(constants.AppStatusProcessing)).
		SetProcessingFrom(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark application processing", "application_id", id, "error", err)
	}
	return err
}

func (r *applicationRepository) MarkProcessed(ctx context.Context, id uuid.UUID, success bool, errMsg *string) error {
	status := constants.AppStatusDone
	if !success {
		status = constants.AppStatusFailed
	}
	builder := r.client.Application.UpdateOneID(id).
		SetStatus(string(status)).
		SetProcessedAt(time.Now())
	if errMsg != nil {
		builder = builder.SetErrorMessage(*errMsg)
	}
	err := builder.Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark application processed", "application_id", id, "error", err)
	}
	return err
}
