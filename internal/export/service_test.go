package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

func TestBoolText(t *testing.T) {
	assert.Equal(t, "VAR", boolText(true))
	assert.Equal(t, "YOK", boolText(false))
	assert.Equal(t, "", boolText(nil))
	assert.Equal(t, "3", boolText(3))
}

func TestValidationText(t *testing.T) {
	assert.Equal(t, "GEÇTİ", validationText(nil))

	warn := []entity.ValidationFinding{
		{Field: "full_name", Severity: constants.SeverityWarning},
	}
	assert.Equal(t, "GEÇTİ (1 uyarı)", validationText(warn))

	mixed := append(warn, entity.ValidationFinding{
		Field: "national_id", Severity: constants.SeverityCritical,
	})
	assert.Equal(t, "BAŞARISIZ (1 kritik)", validationText(mixed))
}

func TestConflictValuesIsStable(t *testing.T) {
	c := entity.Conflict{
		Strategy: "priority",
		Values: map[constants.DocType]any{
			constants.CV:      2011,
			constants.Diploma: 2010,
		},
	}
	assert.Equal(t, "CV=2011; DIPLOMA=2010", conflictValues(c))
}
