package constants

import "strings"

// DocType is the declared (or estimated) type of an uploaded document.
type DocType string

const (
	CoverLetter           DocType = "COVER_LETTER"
	Diploma               DocType = "DIPLOMA"
	CV                    DocType = "CV"
	ServiceRecord         DocType = "SERVICE_RECORD"          // social-security employment record
	MinistryServiceRecord DocType = "MINISTRY_SERVICE_RECORD" // public-sector (Hitap) record
	CriminalRecord        DocType = "CRIMINAL_RECORD"
	ProjectFile           DocType = "PROJECT_FILE"
	SectorCertificate     DocType = "SECTOR_CERTIFICATE"
	Photo                 DocType = "PHOTO"
	OtherDocument         DocType = "OTHER"
)

// TrustOrder ranks document types for merge tie-breaking. Lower is more
// trusted. The cover letter is absent on purpose: it seeds ground truth and
// is excluded from normal analysis.
var TrustOrder = map[DocType]int{
	Diploma:               1,
	CV:                    2,
	ServiceRecord:         3,
	MinistryServiceRecord: 4,
	CriminalRecord:        5,
	ProjectFile:           6,
	SectorCertificate:     7,
	OtherDocument:         8,
}

// TrustRank returns the merge priority for a document type. Unknown types
// sort after everything ranked.
func TrustRank(t DocType) int {
	if p, ok := TrustOrder[t]; ok {
		return p
	}
	return 99
}

// AnalyzableTypes in trust order, used by the reconciliation engine to walk
// sources deterministically.
var AnalyzableTypes = []DocType{
	Diploma,
	CV,
	ServiceRecord,
	MinistryServiceRecord,
	CriminalRecord,
	ProjectFile,
	SectorCertificate,
	OtherDocument,
}

// CanonicalDocType maps a declared type string from the source system onto
// our enum. The source system uses Turkish labels; matching is substring
// based because labels vary ("Yök Lisans Diploması", "Diploma" ...).
func CanonicalDocType(declared string) (DocType, bool) {
	if strings.TrimSpace(declared) == "" {
		// A document with no declared type is always the cover letter.
		return CoverLetter, true
	}
	s := strings.ToLower(declared)
	switch {
	case strings.Contains(s, "diploma"):
		return Diploma, true
	case strings.Contains(s, "özgeçmiş"), strings.Contains(s, "ozgecmis"), strings.Contains(s, "cv"):
		return CV, true
	case strings.Contains(s, "sgk"):
		return ServiceRecord, true
	case strings.Contains(s, "hitap"):
		return MinistryServiceRecord, true
	case strings.Contains(s, "adli sicil"), strings.Contains(s, "adli_sicil"):
		return CriminalRecord, true
	case strings.Contains(s, "proje"):
		return ProjectFile, true
	case strings.Contains(s, "fotoğraf"), strings.Contains(s, "fotograf"), strings.Contains(s, "vesikalık"), strings.Contains(s, "vesikalik"):
		return Photo, true
	case strings.Contains(s, "üst yazı"), strings.Contains(s, "ust yazi"), strings.Contains(s, "ustyazi"):
		return CoverLetter, true
	}
	if _, ok := SectorForLabel(declared); ok {
		return SectorCertificate, true
	}
	return OtherDocument, false
}
