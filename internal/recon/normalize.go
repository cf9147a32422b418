package recon

import (
	"log/slog"
	"math"
	"strings"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// rangeRule bounds a numeric field. When a merged value falls outside the
// range, the fallback source's own value is tried before giving up and
// nulling the field.
type rangeRule struct {
	min, max float64
	fallback constants.DocType // empty: no fallback, just null
}

var rangeRules = map[string]rangeRule{
	"graduation_year":        {1950, 2030, constants.Diploma},
	"birth_year":             {1930, 2015, ""},
	"total_experience_years": {0, 50, constants.ServiceRecord},
}

// placeholders are model outputs that mean "unknown" and must become null
// rather than survive as strings.
var placeholders = map[string]struct{}{
	"belirsiz":   {},
	"bilinmiyor": {},
	"yok":        {},
	"n/a":        {},
}

// Normalize applies post-merge cleanup in place: month overflow folding,
// plausibility ranges with per-source fallback, placeholder removal and
// national-id repair against the ground truth. perType carries each
// document type's own merged fields for the fallback lookups.
func Normalize(
	fields map[string]any,
	perType map[constants.DocType]map[string]any,
	gt *entity.GroundTruth,
	logger *slog.Logger,
) {
	if logger == nil {
		logger = slog.Default()
	}

	foldMonths(fields, logger)
	applyRangeRules(fields, perType, logger)
	clearPlaceholders(fields, logger)
	repairNationalID(fields, gt, logger)
}

// foldMonths converts a month total of 12 or more into years. Merging takes
// the max of months independently from years, so 1y14m is possible.
func foldMonths(fields map[string]any, logger *slog.Logger) {
	months, ok := asNumber(fields["total_experience_months"])
	if !ok || months < 12 {
		return
	}
	years, _ := asNumber(fields["total_experience_years"])
	extra := math.Floor(months / 12)
	fields["total_experience_years"] = years + extra
	fields["total_experience_months"] = months - extra*12
	logger.Info("recon.normalize.months_folded",
		"extra_years", extra,
		"years", fields["total_experience_years"],
		"months", fields["total_experience_months"])
}

func applyRangeRules(fields map[string]any, perType map[constants.DocType]map[string]any, logger *slog.Logger) {
	for field, rule := range rangeRules {
		v, ok := asNumber(fields[field])
		if !ok {
			continue
		}
		if v >= rule.min && v <= rule.max {
			continue
		}
		logger.Warn("recon.normalize.out_of_range",
			"field", field, "value", v, "min", rule.min, "max", rule.max)

		if rule.fallback != "" {
			if src, ok := perType[rule.fallback]; ok {
				if fb, ok := asNumber(src[field]); ok && fb >= rule.min && fb <= rule.max {
					fields[field] = fb
					logger.Info("recon.normalize.fallback_applied",
						"field", field, "source", rule.fallback, "value", fb)
					continue
				}
			}
		}
		fields[field] = nil
	}
}

func clearPlaceholders(fields map[string]any, logger *slog.Logger) {
	for k, v := range fields {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if _, hit := placeholders[strings.ToLower(strings.TrimSpace(s))]; hit {
			logger.Debug("recon.normalize.placeholder_cleared", "field", k, "value", s)
			fields[k] = nil
		}
	}
}

// repairNationalID fixes the common extraction defect of a dropped leading
// digit: a 10-digit id is restored from the ground truth only when the
// ground truth's 11-digit id ends with those same 10 digits. Any other
// wrong length is nulled.
func repairNationalID(fields map[string]any, gt *entity.GroundTruth, logger *slog.Logger) {
	raw, ok := fields["national_id"].(string)
	if !ok || raw == "" {
		return
	}
	id := strings.TrimSpace(raw)
	switch len(id) {
	case 11:
		fields["national_id"] = id
	case 10:
		if gt.Usable() && len(gt.NationalID) == 11 && strings.HasSuffix(gt.NationalID, id) {
			logger.Info("recon.normalize.national_id_repaired", "from", id, "to", gt.NationalID)
			fields["national_id"] = gt.NationalID
		} else {
			logger.Warn("recon.normalize.national_id_unrepairable", "value", id)
		}
	default:
		logger.Warn("recon.normalize.national_id_invalid", "len", len(id))
		fields["national_id"] = nil
	}
}
