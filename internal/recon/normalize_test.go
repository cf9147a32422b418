package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

func TestNormalizeFoldsMonthOverflow(t *testing.T) {
	fields := map[string]any{
		"total_experience_years":  float64(1),
		"total_experience_months": float64(14),
	}

	Normalize(fields, nil, nil, nil)

	assert.Equal(t, float64(2), fields["total_experience_years"])
	assert.Equal(t, float64(2), fields["total_experience_months"])
}

func TestNormalizeRangeFallbackToPreferredSource(t *testing.T) {
	fields := map[string]any{"graduation_year": float64(3010)}
	perType := map[constants.DocType]map[string]any{
		constants.Diploma: {"graduation_year": float64(2010)},
	}

	Normalize(fields, perType, nil, nil)

	assert.Equal(t, float64(2010), fields["graduation_year"])
}

func TestNormalizeRangeWithoutFallbackNulls(t *testing.T) {
	fields := map[string]any{"birth_year": float64(1800)}

	Normalize(fields, nil, nil, nil)

	assert.Nil(t, fields["birth_year"])
}

func TestNormalizeExperienceFallbackToServiceRecord(t *testing.T) {
	fields := map[string]any{"total_experience_years": float64(120)}
	perType := map[constants.DocType]map[string]any{
		constants.ServiceRecord: {"total_experience_years": float64(12)},
	}

	Normalize(fields, perType, nil, nil)

	assert.Equal(t, float64(12), fields["total_experience_years"])
}

func TestNormalizeClearsPlaceholderStrings(t *testing.T) {
	fields := map[string]any{
		"university": "Belirsiz",
		"department": "bilinmiyor",
		"email":      "x@example.com",
	}

	Normalize(fields, nil, nil, nil)

	assert.Nil(t, fields["university"])
	assert.Nil(t, fields["department"])
	assert.Equal(t, "x@example.com", fields["email"])
}

func TestNormalizeRepairsTruncatedNationalID(t *testing.T) {
	gt := &entity.GroundTruth{FullName: "ALİ VELİ", NationalID: "12345678901"}

	fields := map[string]any{"national_id": "2345678901"}
	Normalize(fields, nil, gt, nil)
	assert.Equal(t, "12345678901", fields["national_id"])
}

func TestNormalizeLeavesMismatchedTruncatedIDAlone(t *testing.T) {
	gt := &entity.GroundTruth{FullName: "ALİ VELİ", NationalID: "99999999999"}

	fields := map[string]any{"national_id": "2345678901"}
	Normalize(fields, nil, gt, nil)
	assert.Equal(t, "2345678901", fields["national_id"], "no silent overwrite on mismatch")
}

func TestNormalizeNullsInvalidLengthNationalID(t *testing.T) {
	fields := map[string]any{"national_id": "12345"}
	Normalize(fields, nil, nil, nil)
	assert.Nil(t, fields["national_id"])
}
