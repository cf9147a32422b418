package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionResult is one accepted per-segment extraction, kept for audit.
type ExtractionResult struct {
	DocumentID   uuid.UUID       `json:"document_id"`
	SegmentIndex int             `json:"segment_index"`
	SegmentStart int             `json:"segment_start"`
	SegmentEnd   int             `json:"segment_end"`
	Fields       map[string]any  `json:"fields"`
	RawJSON      json.RawMessage `json:"raw_json,omitempty"`
	ModelName    string          `json:"model_name"`
	Duration     time.Duration   `json:"duration"`
	Success      bool            `json:"success"`
}

// ServiceRecordRow is one parsed row of the social-security table.
type ServiceRecordRow struct {
	Branch     string `json:"branch"` // "4a" employed, "4b" self-employed
	Period     string `json:"period"` // YYYY/MM
	RegistryNo string `json:"registry_no"`
	EmployerNo string `json:"employer_no"`
	StartDate  string `json:"start_date,omitempty"`
	Days       int    `json:"days"`
	EndDate    string `json:"end_date,omitempty"`
	Role       string `json:"role,omitempty"`
	Internship bool   `json:"internship"`
}

// Employer is one entry of the trailing employer listing on a service record.
type Employer struct {
	EmployerNo string `json:"employer_no"`
	Name       string `json:"name"`
}

// ServiceRecord is the fully parsed social-security document: header fields,
// table rows, employer listing and the derived duration totals.
type ServiceRecord struct {
	FullName         string             `json:"full_name,omitempty"`
	NationalID       string             `json:"national_id,omitempty"`
	FirstServiceDate string             `json:"first_service_date,omitempty"`
	LastExitDate     string             `json:"last_exit_date,omitempty"`
	DeclaredPrimDays int                `json:"declared_prim_days,omitempty"`
	Rows             []ServiceRecordRow `json:"rows"`
	Employers        []Employer         `json:"employers"`
	Totals           ServiceTotals      `json:"totals"`
}

// ServiceTotals carries the per-branch day counts and their year/month
// conversion under the 360-day year convention.
type ServiceTotals struct {
	TotalYears     int `json:"total_years"`
	TotalMonths    int `json:"total_months"`
	EmployedYears  int `json:"employed_years"`
	EmployedMonths int `json:"employed_months"`
	SelfYears      int `json:"self_years"`
	SelfMonths     int `json:"self_months"`
	EmployedDays   int `json:"employed_days"`
	SelfDays       int `json:"self_days"`
	TotalDays      int `json:"total_days"`
	InternshipDays int `json:"internship_days"`
}
