package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		"{\"a\":1}":               `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, string(StripCodeFence([]byte(in))))
	}
}

func TestDecodeObjectUnwrapsSingleElementList(t *testing.T) {
	obj, err := DecodeObject([]byte(`[{"full_name":"ALİ VELİ"}]`), nil)
	require.NoError(t, err)
	assert.Equal(t, "ALİ VELİ", obj["full_name"])
}

func TestDecodeObjectRejectsEmptyListAndScalars(t *testing.T) {
	_, err := DecodeObject([]byte(`[]`), nil)
	assert.Error(t, err)

	_, err = DecodeObject([]byte(`"sadece metin"`), nil)
	assert.Error(t, err)

	_, err = DecodeObject([]byte(`açıklama: {"a":1}`), nil)
	assert.Error(t, err)
}

func TestCVSchemaAcceptsNullSectorExperience(t *testing.T) {
	schema := BuildFieldSchema(constants.CV)
	doc := []byte(`{
		"full_name": "ALİ VELİ",
		"university": "İTÜ",
		"graduation_year": 2010,
		"total_experience_years": 8,
		"experience_energy": 8,
		"experience_metal": null,
		"projects": [{"type": "TÜBİTAK Projesi", "title": "Yeşil Enerji", "year": 2022}]
	}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, doc))
}

func TestCVSchemaRejectsStringYear(t *testing.T) {
	schema := BuildFieldSchema(constants.CV)
	doc := []byte(`{"graduation_year": "iki bin on"}`)
	assert.Error(t, ValidateJSONAgainstSchema(schema, doc))
}

func TestDiplomaSchemaRequiresArray(t *testing.T) {
	schema := BuildFieldSchema(constants.Diploma)

	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"university": "İTÜ"}`)),
		"diplomas array is required")
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(
		`{"diplomas": [{"university": "İTÜ", "gpa": 2.89, "department": "ÇEVRE MÜHENDİSLİĞİ (YL) (TEZLİ)"}]}`)))
}

func TestCriminalSchemaRequiresBoolean(t *testing.T) {
	schema := BuildFieldSchema(constants.CriminalRecord)

	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"has_criminal_record": false}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"has_criminal_record": "hayır"}`)))
}

func TestSanitizeToSchemaDropsNullsAndUnknownKeys(t *testing.T) {
	schema := BuildFieldSchema(constants.ProjectFile)
	fields := map[string]any{
		"title":        "Yeşil Enerji Dönüşümü",
		"year":         nil,
		"kommentar":    "model eklentisi",
		"project_type": "TÜBİTAK Projesi",
	}

	cleaned, dropped := SanitizeToSchema(fields, schema)

	assert.Equal(t, map[string]any{
		"title":        "Yeşil Enerji Dönüşümü",
		"project_type": "TÜBİTAK Projesi",
	}, cleaned)
	assert.ElementsMatch(t, []string{"year(null)", "kommentar(unknown)"}, dropped)
}

func TestBuildPromptNamesEnglishKeysPerType(t *testing.T) {
	for _, dt := range []constants.DocType{constants.CV, constants.Diploma, constants.CriminalRecord} {
		p := BuildPrompt(ExtractRequest{DocType: dt, Text: "örnek belge"})
		assert.Contains(t, p, "örnek belge")
		assert.Contains(t, p, "SADECE JSON DÖNDÜR")
	}

	cv := BuildPrompt(ExtractRequest{DocType: constants.CV, Text: "x"})
	assert.Contains(t, cv, `"experience_energy"`)
	assert.Contains(t, cv, `"total_experience_years"`)

	sector := BuildPrompt(ExtractRequest{
		DocType: constants.SectorCertificate,
		Sector:  constants.SectorChemistry,
		Text:    "x",
	})
	assert.Contains(t, sector, "Kimya")
}
