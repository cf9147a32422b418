package ingest

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/classify"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// DocumentIssue is one rejected upload with the reason, reported back to
// the operator rather than failing the whole application.
type DocumentIssue struct {
	Filename string
	Reason   string
}

// Importer converts raw intake payloads into entities, validating each
// document and resolving its type.
type Importer struct {
	classifier *classify.Classifier
	log        *slog.Logger
}

func NewImporter(logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{classifier: classify.New(), log: logger}
}

// Convert builds the application and its accepted documents. Documents
// failing validation are dropped and reported as issues; an application
// error means nothing was converted.
func (im *Importer) Convert(raw RawApplication) (entity.Application, []entity.Document, []DocumentIssue, error) {
	if err := raw.Validate(); err != nil {
		return entity.Application{}, nil, nil, err
	}

	app := entity.Application{
		ID:            uuid.New(),
		SourceID:      raw.BasvuruID,
		TrackingNo:    raw.TakipNo,
		ServiceID:     raw.HizmetID,
		ServiceName:   raw.HizmetAdi,
		ApplicantName: raw.ApplicantName(),
		NationalID:    raw.VatandasTC,
		Status:        constants.AppStatusPending,
		SubmittedAt:   raw.SubmittedAt(),
		CreatedAt:     time.Now(),
	}

	var (
		docs   []entity.Document
		issues []DocumentIssue
	)
	for _, rawDoc := range raw.Belgeler {
		doc, err := im.convertDocument(app.ID, rawDoc)
		if err != nil {
			im.log.Warn("ingest.document.rejected",
				"tracking_no", raw.TakipNo, "filename", rawDoc.BelgeAdi, "reason", err)
			issues = append(issues, DocumentIssue{Filename: rawDoc.BelgeAdi, Reason: err.Error()})
			continue
		}
		docs = append(docs, doc)
	}

	im.log.Info("ingest.application.ok",
		"tracking_no", app.TrackingNo,
		"service_id", app.ServiceID,
		"documents", len(docs),
		"rejected", len(issues))
	return app, docs, issues, nil
}

func (im *Importer) convertDocument(appID uuid.UUID, raw RawDocument) (entity.Document, error) {
	if raw.BelgeAdi == "" {
		return entity.Document{}, fmt.Errorf("document without a filename")
	}
	ext := raw.Extension()
	if !constants.IsAllowedExt(ext) {
		return entity.Document{}, fmt.Errorf("extension %q not accepted", ext)
	}

	content, err := raw.DecodeContent()
	if err != nil {
		return entity.Document{}, err
	}
	if len(content) < constants.MinFileSizeBytes {
		return entity.Document{}, fmt.Errorf("file too small (%d bytes), likely truncated", len(content))
	}
	if len(content) > constants.MaxFileSizeBytes {
		return entity.Document{}, fmt.Errorf("file too large (%d bytes)", len(content))
	}

	declared := raw.DeclaredType()
	docType, ok := constants.CanonicalDocType(declared)
	if !ok {
		if guess, hit := im.classifier.Predict(raw.BelgeAdi); hit {
			im.log.Info("ingest.document.classified_by_filename",
				"filename", raw.BelgeAdi, "declared", declared, "type", guess)
			docType = guess
		}
	}

	return entity.Document{
		ID:            uuid.New(),
		ApplicationID: appID,
		Filename:      raw.BelgeAdi,
		DeclaredType:  declared,
		Type:          docType,
		Extension:     ext,
		SizeBytes:     int64(len(content)),
		Content:       content,
		Status:        constants.DocStatusPending,
	}, nil
}
