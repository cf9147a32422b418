package constants

import "strings"

// AllowedExtensions holds the file extensions accepted at intake.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"txt":  {},
	"doc":  {},
	"docx": {},
}

// Intake size bounds for decoded document bytes. Files under the minimum are
// rejected as almost certainly truncated or corrupt.
const (
	MaxFileSizeBytes = 50 * 1024 * 1024
	MinFileSizeBytes = 100
)

// Service IDs the program accepts applications for.
var ServiceIDs = []string{
	ServiceAcademicResponsible,
	ServiceMinistryResponsible,
	ServiceIndustryResponsible,
	ServiceAcademicLeadResponsible,
	ServiceMinistryLeadResponsible,
	ServiceIndustryLeadResponsible,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether an extension is accepted at intake.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// IsKnownServiceID reports whether the requested service id is one the
// program covers.
func IsKnownServiceID(id string) bool {
	for _, s := range ServiceIDs {
		if s == id {
			return true
		}
	}
	return false
}
