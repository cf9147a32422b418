package constants

// AppStatus is the canonical processing status for rows in applications.
type AppStatus string

// Stable values (store these exact strings in DB).
const (
	AppStatusPending    AppStatus = "PENDING"    // intake done, waiting for analysis
	AppStatusProcessing AppStatus = "PROCESSING" // reconciliation run in progress
	AppStatusDone       AppStatus = "DONE"       // merged record persisted
	AppStatusFailed     AppStatus = "FAILED"     // terminal failure
)

// DocStatus is the per-document analysis status.
type DocStatus string

const (
	DocStatusPending  DocStatus = "PENDING"
	DocStatusAnalyzed DocStatus = "ANALYZED"
	DocStatusSkipped  DocStatus = "SKIPPED"
	DocStatusFailed   DocStatus = "FAILED"
)

// Severity classifies cross-validation findings.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL" // blocks trust in the field
	SeverityWarning  Severity = "WARNING"  // flagged for human review only
)
