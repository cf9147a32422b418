package constants

// Responsible-person services per applicant category. The lead-responsible
// variants (10310-10312) require the same documents as their base service.
const (
	ServiceAcademicResponsible     = "10307"
	ServiceMinistryResponsible     = "10308"
	ServiceIndustryResponsible     = "10309"
	ServiceAcademicLeadResponsible = "10310"
	ServiceMinistryLeadResponsible = "10311"
	ServiceIndustryLeadResponsible = "10312"
)

// requiredBase is demanded of every application regardless of category.
var requiredBase = []DocType{
	CoverLetter,
	Diploma,
	CV,
	ServiceRecord,
	CriminalRecord,
	Photo,
}

// RequiredDocuments returns the document types an application under the
// given service id must include. Former ministry staff additionally submit
// the public-sector record, industry employees their sector certificate.
func RequiredDocuments(serviceID string) []DocType {
	out := make([]DocType, len(requiredBase))
	copy(out, requiredBase)
	switch serviceID {
	case ServiceMinistryResponsible, ServiceMinistryLeadResponsible:
		out = append(out, MinistryServiceRecord)
	case ServiceIndustryResponsible, ServiceIndustryLeadResponsible:
		out = append(out, SectorCertificate)
	}
	return out
}
