package classify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oguzakin/eligibility-tracker/constants"
)

func TestPredictCommonFilenames(t *testing.T) {
	c := New()
	cases := map[string]constants.DocType{
		"Diploma LisansOnlisans.pdf": constants.Diploma,
		"SGK Hizmet Dokumu.pdf":      constants.ServiceRecord,
		"sgk_hizmet_dökümü.pdf":      constants.ServiceRecord,
		"Adli Sicil.pdf":             constants.CriminalRecord,
		"ozgecmis_2024.pdf":          constants.CV,
		"Üst Yazı.pdf":               constants.CoverLetter,
		"dilekce.txt":                constants.CoverLetter,
		"hitap_hizmet.pdf":           constants.MinistryServiceRecord,
		"Proje Dosyasi.pdf":          constants.ProjectFile,
		"vesikalik.jpg":              constants.Photo,
		"Enerji Sektor Belgesi.pdf":  constants.SectorCertificate,
	}
	for name, want := range cases {
		got, ok := c.Predict(name)
		assert.True(t, ok, "no rule matched %q", name)
		assert.Equal(t, want, got, "filename %q", name)
	}
}

func TestPredictUnknownFilename(t *testing.T) {
	c := New()
	_, ok := c.Predict("tarama_001.pdf")
	assert.False(t, ok)
	_, ok = c.Predict("")
	assert.False(t, ok)
}

func TestPriorityOrderWins(t *testing.T) {
	c := New()

	// "sgk" outranks the sector keywords even when both appear.
	got, ok := c.Predict("enerji_sgk_dokumu.pdf")
	assert.True(t, ok)
	assert.Equal(t, constants.ServiceRecord, got)
}

func TestAddRuleIsConsulted(t *testing.T) {
	c := New()
	c.AddRule(Rule{
		Pattern:  regexp.MustCompile(`(?i)tarama`),
		Type:     constants.OtherDocument,
		Priority: 11,
	})

	got, ok := c.Predict("tarama_001.pdf")
	assert.True(t, ok)
	assert.Equal(t, constants.OtherDocument, got)
}
