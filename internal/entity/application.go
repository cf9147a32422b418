package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
)

// Application represents one applicant's submission for data transfer
// between layers.
type Application struct {
	ID             uuid.UUID           `json:"id"`
	SourceID       int64               `json:"source_id"`
	TrackingNo     string              `json:"tracking_no"`
	ServiceID      string              `json:"service_id"`
	ServiceName    string              `json:"service_name"`
	ApplicantName  string              `json:"applicant_name"`
	NationalID     string              `json:"national_id"`
	Status         constants.AppStatus `json:"status"`
	ErrorMessage   *string             `json:"error_message,omitempty"`
	SubmittedAt    *time.Time          `json:"submitted_at,omitempty"`
	ProcessingFrom *time.Time          `json:"processing_from,omitempty"`
	ProcessedAt    *time.Time          `json:"processed_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// Document is one uploaded file belonging to an Application. Content is the
// decoded binary; DeclaredType may be empty, which downstream always treats
// as the cover letter.
type Document struct {
	ID            uuid.UUID           `json:"id"`
	ApplicationID uuid.UUID           `json:"application_id"`
	Filename      string              `json:"filename"`
	DeclaredType  string              `json:"declared_type,omitempty"`
	Type          constants.DocType   `json:"type"`
	Extension     string              `json:"extension"`
	SizeBytes     int64               `json:"size_bytes"`
	Content       []byte              `json:"-"`
	Status        constants.DocStatus `json:"status"`
	Note          *string             `json:"note,omitempty"`
}
