package groundtruth

import (
	"log/slog"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// nameSimilarityThreshold accepts OCR-grade noise in names while still
// catching a different person.
const nameSimilarityThreshold = 0.8

// foldDiacritics maps the Turkish-specific letters onto their ASCII bases so
// that a diacritic dropped by text extraction does not fail the comparison.
var foldDiacritics = strings.NewReplacer(
	"İ", "I", "Ş", "S", "Ğ", "G", "Ü", "U", "Ö", "O", "Ç", "C",
)

// FieldCheck is one comparison outcome, matched or not.
type FieldCheck struct {
	Field    string             `json:"field"`
	Source   string             `json:"source"`
	Match    bool               `json:"match"`
	Severity constants.Severity `json:"severity"`
}

// ListResult reports the attachment-listing comparison.
type ListResult struct {
	ExpectedCount int      `json:"expected_count"`
	ActualCount   int      `json:"actual_count"`
	Missing       []string `json:"missing"`
	Extra         []string `json:"extra"`
	Match         bool     `json:"match"`
}

// Report summarizes a validation run. Status is FAIL only on critical
// findings; warnings alone still pass.
type Report struct {
	Status   string                     `json:"status"`
	Errors   []entity.ValidationFinding `json:"errors"`
	Warnings []entity.ValidationFinding `json:"warnings"`
	Checks   []FieldCheck               `json:"checks"`
}

// Validator compares extracted values against the cover-letter ground truth.
// Mismatches are recorded, never fatal; the record always completes with its
// findings attached.
type Validator struct {
	gt       *entity.GroundTruth
	logger   *slog.Logger
	errors   []entity.ValidationFinding
	warnings []entity.ValidationFinding
	checks   []FieldCheck
}

func NewValidator(gt *entity.GroundTruth, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{gt: gt, logger: logger}
}

// CheckField compares one extracted value with the ground truth. Returns
// true when the values match or when either side is absent; a comparison
// needs both. String comparison is case- and diacritic-insensitive, and the
// full-name field additionally tolerates small edit distances.
func (v *Validator) CheckField(field string, value any, source string, severity constants.Severity) bool {
	expected := v.expected(field)
	if expected == "" || !v.gt.Usable() {
		return true
	}
	str, isStr := value.(string)
	if value == nil || (isStr && str == "") {
		return true
	}

	matched := false
	if isStr {
		a := NormalizeText(str)
		b := NormalizeText(expected)
		matched = a == b
		if !matched && field == "full_name" {
			matched = levenshtein.Match(a, b, nil) >= nameSimilarityThreshold
		}
	}

	v.checks = append(v.checks, FieldCheck{Field: field, Source: source, Match: matched, Severity: severity})
	if matched {
		return true
	}

	finding := entity.ValidationFinding{
		Field:    field,
		Source:   source,
		Value:    value,
		Expected: expected,
		Severity: severity,
	}
	if severity == constants.SeverityCritical {
		v.errors = append(v.errors, finding)
		v.logger.Error("groundtruth.check.mismatch",
			"field", field, "source", source, "value", value, "expected", expected)
	} else {
		v.warnings = append(v.warnings, finding)
		v.logger.Warn("groundtruth.check.mismatch",
			"field", field, "source", source, "value", value, "expected", expected)
	}
	return false
}

// CheckDocumentList compares the uploaded filenames with the cover letter's
// attachment listing. Missing documents are critical, extras only warned.
func (v *Validator) CheckDocumentList(actual []string) ListResult {
	expected := v.gt.DocumentList

	expectedByNorm := make(map[string]string, len(expected))
	for _, f := range expected {
		expectedByNorm[NormalizeFilename(f)] = f
	}
	actualByNorm := make(map[string]string, len(actual))
	for _, f := range actual {
		actualByNorm[NormalizeFilename(f)] = f
	}

	var missing, extra []string
	for norm, orig := range expectedByNorm {
		if _, ok := actualByNorm[norm]; !ok {
			missing = append(missing, orig)
		}
	}
	for norm, orig := range actualByNorm {
		if _, ok := expectedByNorm[norm]; !ok {
			extra = append(extra, orig)
		}
	}

	for _, f := range missing {
		v.errors = append(v.errors, entity.ValidationFinding{
			Field:    "document_list",
			Source:   "upload",
			Value:    nil,
			Expected: f,
			Severity: constants.SeverityCritical,
		})
	}
	for _, f := range extra {
		v.warnings = append(v.warnings, entity.ValidationFinding{
			Field:    "document_list",
			Source:   "upload",
			Value:    f,
			Severity: constants.SeverityWarning,
		})
	}

	res := ListResult{
		ExpectedCount: len(expected),
		ActualCount:   len(actual),
		Missing:       missing,
		Extra:         extra,
		Match:         len(missing) == 0 && len(extra) == 0,
	}
	if !res.Match {
		v.logger.Warn("groundtruth.documents.incomplete",
			"expected", res.ExpectedCount, "actual", res.ActualCount,
			"missing", len(missing), "extra", len(extra))
	}
	return res
}

// Report returns the accumulated outcome of this validation run.
func (v *Validator) Report() Report {
	status := "PASS"
	if len(v.errors) > 0 {
		status = "FAIL"
	}
	return Report{
		Status:   status,
		Errors:   v.errors,
		Warnings: v.warnings,
		Checks:   v.checks,
	}
}

// Findings returns errors then warnings, for attachment to the record.
func (v *Validator) Findings() []entity.ValidationFinding {
	out := make([]entity.ValidationFinding, 0, len(v.errors)+len(v.warnings))
	out = append(out, v.errors...)
	return append(out, v.warnings...)
}

// NormalizeText uppercases, folds Turkish diacritics and collapses
// whitespace, so "Ali Veli", "ALİ VELİ" and "ALI  VELI" all compare equal.
func NormalizeText(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	up = foldDiacritics.Replace(up)
	return strings.Join(strings.Fields(up), " ")
}

// NormalizeFilename lowercases and replaces spaces with underscores, the
// same shape uploads tend to arrive in.
func NormalizeFilename(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// expected maps a field name to the ground-truth value, empty when the cover
// letter did not state it.
func (v *Validator) expected(field string) string {
	if v.gt == nil {
		return ""
	}
	switch field {
	case "full_name":
		return v.gt.FullName
	case "national_id":
		return v.gt.NationalID
	case "address":
		return v.gt.Address
	case "email":
		return v.gt.Email
	case "phone":
		return v.gt.Phone
	case "submitted_date":
		return v.gt.SubmittedDate
	}
	return ""
}
