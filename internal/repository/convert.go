package repository

import (
	"encoding/json"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/gen/ent"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

func toApplication(a *ent.Application) *entity.Application {
	return &entity.Application{
		ID:             a.ID,
		SourceID:       a.SourceID,
		TrackingNo:     a.TrackingNo,
		ServiceID:      a.ServiceID,
		ServiceName:    a.ServiceName,
		ApplicantName:  a.ApplicantName,
		NationalID:     a.NationalID,
		Status:         constants.AppStatus(a.Status),
		ErrorMessage:   a.ErrorMessage,
		SubmittedAt:    a.SubmittedAt,
		ProcessingFrom: a.ProcessingFrom,
		ProcessedAt:    a.ProcessedAt,
		CreatedAt:      a.CreatedAt,
	}
}

func toDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:            d.ID,
		ApplicationID: d.ApplicationID,
		Filename:      d.Filename,
		DeclaredType:  d.DeclaredType,
		Type:          constants.DocType(d.DocType),
		Extension:     d.Extension,
		SizeBytes:     d.SizeBytes,
		Content:       d.Content,
		Status:        constants.DocStatus(d.Status),
		Note:          d.Note,
	}
}

func toAnalysisResult(r *ent.AnalysisResult) *entity.AnalysisResult {
	out := &entity.AnalysisResult{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		Fields:        r.Fields,
		Provenance:    r.Provenance,
		Conflicts:     r.Conflicts,
		DocsComplete:  r.DocsComplete,
		MissingDocs:   r.MissingDocs,
		AnalyzedAt:    r.AnalyzedAt,
		ElapsedSec:    r.ElapsedSec,
	}
	if len(r.Findings) > 0 {
		// Findings were marshaled by us; a decode failure means a corrupt row.
		_ = json.Unmarshal(r.Findings, &out.Findings)
	}
	return out
}
