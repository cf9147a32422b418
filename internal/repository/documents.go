package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/gen/ent"
	"github.com/oguzakin/eligibility-tracker/gen/ent/document"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

type DocumentRepository interface {
	CreateBatch(ctx context.Context, docs []entity.Document) error
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*entity.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus, note *string) error
	// UpdateType persists a resolved type for a document the source system
	// left untyped.
	UpdateType(ctx context.Context, id uuid.UUID, t constants.DocType) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) CreateBatch(ctx context.Context, docs []entity.Document) error {
	builders := make([]*ent.DocumentCreate, len(docs))
	for i, d := range docs {
		builders[i] = r.client.Document.Create().
			SetID(d.ID).
			SetApplicationID(d.ApplicationID).
			SetFilename(d.Filename).
			SetDeclaredType(d.DeclaredType).
			SetDocType(string(d.Type)).
			SetExtension(d.Extension).
			SetSizeBytes(d.SizeBytes).
			SetContent(d.Content).
			SetStatus(string(d.Status))
	}
	if err := r.client.Document.CreateBulk(builders...).Exec(ctx); err != nil {
		r.logger.Error("failed to create documents", "count", len(docs), "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Where(document.ApplicationIDEQ(appID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "application_id", appID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, nil
}

func (r *documentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus, note *string) error {
	builder := r.client.Document.UpdateOneID(id).
		SetStatus(string(status))
	if note != nil {
		builder = builder.SetNote(*note)
	}
	err := builder.Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update document status", "document_id", id, "error", err)
	}
	return err
}

func (r *documentRepository) UpdateType(ctx context.Context, id uuid.UUID, t constants.DocType) error {
	err := r.client.Document.UpdateOneID(id).
		SetDocType(string(t)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update document type", "document_id", id, "error", err)
	}
	return err
}
