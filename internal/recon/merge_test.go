package recon

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

func src(t constants.DocType, fields map[string]any) Source {
	return Source{Type: t, DocumentID: uuid.New(), Fields: fields}
}

func TestMergePriorityPrefersDiplomaAndRecordsConflict(t *testing.T) {
	// Deliberately out of trust order: the merge must sort.
	sources := []Source{
		src(constants.CV, map[string]any{"graduation_year": float64(2012)}),
		src(constants.Diploma, map[string]any{"graduation_year": float64(2010)}),
	}

	fields, prov, conflicts := MergeSources(sources)

	assert.Equal(t, float64(2010), fields["graduation_year"])
	assert.Equal(t, constants.Diploma, prov["graduation_year"].SourceType)
	assert.Equal(t, StrategyPriority, prov["graduation_year"].Strategy)

	c, ok := conflicts["graduation_year"]
	require.True(t, ok, "disagreement must be recorded even though diploma wins")
	assert.Equal(t, float64(2012), c.Values[constants.CV])
	assert.Equal(t, float64(2010), c.Values[constants.Diploma])
}

func TestMergeMaxTakesHighestExperience(t *testing.T) {
	sources := []Source{
		src(constants.CV, map[string]any{"total_experience_years": float64(8)}),
		src(constants.ServiceRecord, map[string]any{"total_experience_years": float64(10)}),
	}

	fields, prov, _ := MergeSources(sources)

	assert.Equal(t, float64(10), fields["total_experience_years"])
	assert.Equal(t, constants.ServiceRecord, prov["total_experience_years"].SourceType)
	assert.Equal(t, StrategyMax, prov["total_experience_years"].Strategy)
}

func TestMergeOrIsStickyTrue(t *testing.T) {
	sources := []Source{
		src(constants.CV, map[string]any{"has_criminal_record": false}),
		src(constants.CriminalRecord, map[string]any{"has_criminal_record": true}),
	}

	fields, prov, conflicts := MergeSources(sources)

	assert.Equal(t, true, fields["has_criminal_record"])
	assert.Equal(t, constants.CriminalRecord, prov["has_criminal_record"].SourceType)
	assert.Contains(t, conflicts, "has_criminal_record")
}

func TestMergeFirstUsesTrustOrder(t *testing.T) {
	sources := []Source{
		src(constants.ServiceRecord, map[string]any{"full_name": "MEHMET KAYA"}),
		src(constants.Diploma, map[string]any{"full_name": "MEHMET KAYAOĞLU"}),
	}

	fields, prov, _ := MergeSources(sources)

	assert.Equal(t, "MEHMET KAYAOĞLU", fields["full_name"])
	assert.Equal(t, constants.Diploma, prov["full_name"].SourceType)
	assert.Equal(t, StrategyFirst, prov["full_name"].Strategy)
}

func TestMergeSkipsNilAndEmptyContributions(t *testing.T) {
	sources := []Source{
		src(constants.Diploma, map[string]any{"university": nil}),
		src(constants.CV, map[string]any{"university": ""}),
		src(constants.ServiceRecord, map[string]any{"university": "İTÜ"}),
	}

	fields, prov, conflicts := MergeSources(sources)

	assert.Equal(t, "İTÜ", fields["university"])
	assert.Equal(t, constants.ServiceRecord, prov["university"].SourceType)
	assert.NotContains(t, conflicts, "university", "empty values are not disagreements")
}

func TestMergeNoConflictWhenValuesAgree(t *testing.T) {
	sources := []Source{
		src(constants.Diploma, map[string]any{"graduation_year": float64(2010)}),
		src(constants.CV, map[string]any{"graduation_year": float64(2010)}),
	}

	_, _, conflicts := MergeSources(sources)
	assert.Empty(t, conflicts)
}

func TestStrategyForDefaultsToFirst(t *testing.T) {
	assert.Equal(t, StrategyPriority, StrategyFor("university"))
	assert.Equal(t, StrategyMax, StrategyFor("experience_waste"))
	assert.Equal(t, StrategyOr, StrategyFor("green_transition_experience"))
	assert.Equal(t, StrategyFirst, StrategyFor("email"))
}

func TestMergedRecordShapeRoundTrips(t *testing.T) {
	sources := []Source{
		src(constants.Diploma, map[string]any{"graduation_year": float64(2010), "university": "İTÜ"}),
		src(constants.CV, map[string]any{"graduation_year": float64(2012), "total_experience_years": float64(8)}),
	}
	fields, prov, conflicts := MergeSources(sources)

	rec := entity.MergedRecord{Fields: fields, Provenance: prov, Conflicts: conflicts}
	assert.Len(t, rec.Fields, 3)
	assert.Len(t, rec.Conflicts, 1)
}
