package analyzer

import (
	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// mapSectorExperience folds a sector certificate's certified duration onto
// the per-sector experience field. The sector named in the certificate text
// wins; the declared document type is the fallback when the model left it
// blank.
func mapSectorExperience(doc entity.Document, fields map[string]any) map[string]any {
	sector, ok := constants.SectorForLabel(str(fields["sector"]))
	if !ok {
		sector, _ = constants.SectorForLabel(doc.DeclaredType)
	}
	fields["sector"] = string(sector)

	years := numberOf(fields["duration_years"])
	if years == 0 {
		if months := numberOf(fields["duration_months"]); months >= 12 {
			years = float64(int(months) / 12)
		}
	}
	if years > 0 {
		fields[constants.ExperienceField(sector)] = years
	}
	return fields
}

func numberOf(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	}
	return 0
}
