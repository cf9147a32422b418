package entity

// GroundTruth holds the reference identity derived once per application from
// the cover letter. Read-only once built; absent if the cover letter is
// missing or unparsable, in which case cross-validation is skipped.
type GroundTruth struct {
	FullName      string   `json:"full_name"`
	NationalID    string   `json:"national_id,omitempty"`
	Address       string   `json:"address,omitempty"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	SubmittedDate string   `json:"submitted_date,omitempty"`
	Subject       string   `json:"subject,omitempty"`
	DocumentList  []string `json:"document_list,omitempty"`
}

// Usable reports whether the parse produced enough identity to validate
// against. A ground truth without a name is treated as absent.
func (g *GroundTruth) Usable() bool {
	return g != nil && g.FullName != ""
}
