package groundtruth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

const sampleCoverLetter = `T.C. SANAYİ VE TEKNOLOJİ BAKANLIĞI

Başvuru Yapan: Ali Veli
T.C. Kimlik No: 12345678901
Adres: Örnek Mah. Çevre Sok. No:5
Kat 3 Daire 7 Çankaya Ankara
E-Mail: ali.veli@example.com
GSM: 05551234567
Tarih: 15.01.2024
Konu: Sanayide Yeşil Dönüşüm Sorumlusu Belgesi Başvurusu

Ekler:
1-Yök Lisans Diploması-Diploma LisansOnlisans.pdf (*)
2-SGK Hizmet Dökümü-SGK Hizmet Dokumu.pdf (*)
3-Adli Sicil Kaydı-Adli Sicil.pdf (*)
4-Dilekçe Metni
`

func TestParseReadsIdentityFields(t *testing.T) {
	gt := Parse(sampleCoverLetter)
	require.True(t, gt.Usable())

	assert.Equal(t, "ALİ VELİ", gt.FullName)
	assert.Equal(t, "12345678901", gt.NationalID)
	assert.Equal(t, "Örnek Mah. Çevre Sok. No:5 Kat 3 Daire 7 Çankaya Ankara", gt.Address)
	assert.Equal(t, "ali.veli@example.com", gt.Email)
	assert.Equal(t, "05551234567", gt.Phone)
	assert.Equal(t, "15.01.2024", gt.SubmittedDate)
	assert.Equal(t, "Sanayide Yeşil Dönüşüm Sorumlusu Belgesi Başvurusu", gt.Subject)
}

func TestParseDocumentListReadsTypedEntries(t *testing.T) {
	refs := ParseDocumentList(sampleCoverLetter)
	require.Len(t, refs, 4)

	assert.Equal(t, 1, refs[0].Seq)
	assert.Equal(t, "Yök Lisans Diploması", refs[0].TypeLabel)
	assert.Equal(t, "Diploma LisansOnlisans.pdf", refs[0].Filename)

	// The petition line carries no file and gets a synthetic name.
	assert.Equal(t, "Dilekçe Metni", refs[3].TypeLabel)
	assert.Equal(t, "dilekce.txt", refs[3].Filename)
}

func TestParseDocumentListPlainFormatFallback(t *testing.T) {
	text := "Ekler:\n1. Diploma LisansOnlisans.pdf\n2. Adli Sicil.pdf\n"
	refs := ParseDocumentList(text)
	require.Len(t, refs, 2)

	assert.Empty(t, refs[0].TypeLabel)
	assert.Equal(t, "Diploma LisansOnlisans.pdf", refs[0].Filename)
	assert.Equal(t, "Adli Sicil.pdf", refs[1].Filename)
}

func TestParseUnusableWithoutName(t *testing.T) {
	gt := Parse("Bu metinde kimlik bilgisi yok.")
	assert.False(t, gt.Usable())
}

func TestCheckFieldIgnoresDiacriticsAndCase(t *testing.T) {
	gt := &entity.GroundTruth{FullName: "ALİ VELİ"}
	v := NewValidator(gt, nil)

	ok := v.CheckField("full_name", "Ali Veli", "Diploma", constants.SeverityCritical)
	assert.True(t, ok)
	ok = v.CheckField("full_name", "ALI VELI", "CV", constants.SeverityCritical)
	assert.True(t, ok)

	report := v.Report()
	assert.Equal(t, "PASS", report.Status)
	assert.Empty(t, report.Errors)
}

func TestCheckFieldRecordsCriticalMismatch(t *testing.T) {
	gt := &entity.GroundTruth{FullName: "ALİ VELİ", NationalID: "12345678901"}
	v := NewValidator(gt, nil)

	ok := v.CheckField("full_name", "AYŞE FATMA", "Diploma", constants.SeverityCritical)
	assert.False(t, ok)

	report := v.Report()
	assert.Equal(t, "FAIL", report.Status)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "full_name", report.Errors[0].Field)
	assert.Equal(t, "Diploma", report.Errors[0].Source)
	assert.Equal(t, constants.SeverityCritical, report.Errors[0].Severity)
}

func TestCheckFieldToleratesSmallNameEdits(t *testing.T) {
	gt := &entity.GroundTruth{FullName: "MEHMET KAYAOĞLU"}
	v := NewValidator(gt, nil)

	// One OCR-mangled letter should still match.
	assert.True(t, v.CheckField("full_name", "MEHMET KAYA0ĞLU", "SGK", constants.SeverityCritical))
}

func TestCheckFieldSkipsAbsentSides(t *testing.T) {
	v := NewValidator(&entity.GroundTruth{FullName: "ALİ VELİ"}, nil)

	assert.True(t, v.CheckField("full_name", "", "CV", constants.SeverityCritical))
	assert.True(t, v.CheckField("full_name", nil, "CV", constants.SeverityCritical))
	assert.True(t, v.CheckField("email", "x@example.com", "CV", constants.SeverityWarning))
	assert.Empty(t, v.Report().Errors)
}

func TestCheckDocumentListSeparatesMissingAndExtra(t *testing.T) {
	gt := &entity.GroundTruth{
		FullName:     "ALİ VELİ",
		DocumentList: []string{"Diploma LisansOnlisans.pdf", "SGK Hizmet Dokumu.pdf"},
	}
	v := NewValidator(gt, nil)

	res := v.CheckDocumentList([]string{"diploma_lisansonlisans.pdf", "fazla_belge.pdf"})

	assert.False(t, res.Match)
	assert.Equal(t, []string{"SGK Hizmet Dokumu.pdf"}, res.Missing)
	assert.Equal(t, []string{"fazla_belge.pdf"}, res.Extra)

	report := v.Report()
	assert.Equal(t, "FAIL", report.Status, "missing documents are critical")
	require.Len(t, report.Errors, 1)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, constants.SeverityWarning, report.Warnings[0].Severity)
}

func TestCheckDocumentListMatchesAfterNormalization(t *testing.T) {
	gt := &entity.GroundTruth{
		FullName:     "ALİ VELİ",
		DocumentList: []string{"Diploma LisansOnlisans.pdf"},
	}
	v := NewValidator(gt, nil)

	res := v.CheckDocumentList([]string{"diploma_lisansonlisans.pdf"})
	assert.True(t, res.Match)
	assert.Equal(t, "PASS", v.Report().Status)
}
