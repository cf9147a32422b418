package recon

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/analyzer"
	"github.com/oguzakin/eligibility-tracker/internal/classify"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/llm"
)

// extractorByType serves canned fields per document type.
type extractorByType struct {
	byType map[constants.DocType]map[string]any
}

func (f *extractorByType) ExtractFields(_ context.Context, req llm.ExtractRequest) (llm.Result, error) {
	fields, ok := f.byType[req.DocType]
	if !ok {
		return llm.Result{}, errors.New("no fixture for type")
	}
	clone := make(map[string]any, len(fields))
	for k, v := range fields {
		clone[k] = v
	}
	return llm.Result{Fields: clone, Model: "fake"}, nil
}

type textMap map[uuid.UUID]string

func (m textMap) TextFor(_ context.Context, d entity.Document) (string, error) {
	t, ok := m[d.ID]
	if !ok {
		return "", errors.New("no text for document")
	}
	return t, nil
}

const engineCoverLetter = `T.C. SANAYİ VE TEKNOLOJİ BAKANLIĞI

Başvuru Yapan: Ali Veli
T.C. Kimlik No: 12345678901
Adres: Örnek Mah. Çevre Sok. No:5 Çankaya Ankara
E-Mail: ali.veli@example.com
Tarih: 15.01.2024
Konu: Sanayide Yeşil Dönüşüm Sorumlusu Belgesi Başvurusu

Ekler:
1-Yök Lisans Diploması-Diploma LisansOnlisans.pdf (*)
2-SGK Hizmet Dökümü-SGK Hizmet Dokumu.pdf (*)
3-Adli Sicil Kaydı-Adli Sicil.pdf (*)
`

const engineServiceRecord = `T.C. SOSYAL GÜVENLİK KURUMU
SGK TESCİL VE HİZMET DÖKÜMÜ

Ad Soyad: ALİ VELİ
T.C. Kimlik No: 12345678901
İlk İşe Giriş Tarihi: 01.03.2016
Toplam Prim Gün Sayısı: 720

4a 2016/03 1111111 2222222 01.03.2016 360 28.02.2017 Çevre Mühendisi
4a 2017/03 1111111 2222222 01.03.2017 360 28.02.2018 Çevre Mühendisi
`

type fixture struct {
	app   entity.Application
	docs  []entity.Document
	texts textMap
	ex    *extractorByType
}

func newFixture(serviceID string) *fixture {
	f := &fixture{
		app: entity.Application{
			ID:         uuid.New(),
			TrackingNo: "SYD-2024-0001",
			ServiceID:  serviceID,
		},
		texts: textMap{},
		ex: &extractorByType{byType: map[constants.DocType]map[string]any{
			constants.Diploma: {"diplomas": []any{map[string]any{
				"first_name":      "Ali",
				"last_name":       "Veli",
				"national_id":     "12345678901",
				"university":      "ORTA DOĞU TEKNİK ÜNİVERSİTESİ",
				"department":      "ÇEVRE MÜHENDİSLİĞİ",
				"graduation_date": "15/06/2010",
			}}},
			constants.CV: {
				"full_name":                   "Ali Veli",
				"national_id":                 "12345678901",
				"university":                  "ANKARA ÜNİVERSİTESİ",
				"graduation_year":             float64(2012),
				"total_experience_years":      float64(1),
				"experience_energy":           float64(3),
				"green_transition_experience": true,
			},
			constants.CriminalRecord: {"has_criminal_record": false},
		}},
	}
	return f
}

func (f *fixture) addDoc(declared, filename, text string) entity.Document {
	d := entity.Document{ID: uuid.New(), DeclaredType: declared, Filename: filename}
	f.docs = append(f.docs, d)
	if text != "" {
		f.texts[d.ID] = text
	}
	return d
}

func (f *fixture) addStandardDocs() {
	f.addDoc("", "ust_yazi.pdf", engineCoverLetter)
	f.addDoc("Yök Lisans Diploması", "Diploma LisansOnlisans.pdf", "diploma metni: çevre mühendisliği lisans diploması")
	f.addDoc("Özgeçmiş/CV", "cv.pdf", "özgeçmiş metni: çevre mühendisi, enerji sektörü tecrübesi")
	f.addDoc("SGK Hizmet Dökümü", "SGK Hizmet Dokumu.pdf", engineServiceRecord)
	f.addDoc("Adli Sicil Kaydı", "Adli Sicil.pdf", "adli sicil kaydı bulunmamaktadır")
	f.addDoc("Fotoğraf (vesikalık)", "foto.jpg", "")
}

func (f *fixture) engine() *Engine {
	return NewEngine(analyzer.NewRegistry(f.ex, nil), classify.New(), f.texts, nil)
}

func TestEngineRunHappyPath(t *testing.T) {
	f := newFixture(constants.ServiceAcademicResponsible)
	f.addStandardDocs()

	out, err := f.engine().Run(context.Background(), f.app, f.docs)
	require.NoError(t, err)

	rec := out.Record
	assert.True(t, rec.DocsComplete)
	assert.Empty(t, rec.MissingDocs)

	// Education: diploma beats the CV's self-reported values.
	assert.EqualValues(t, 2010, rec.Fields["graduation_year"])
	assert.Equal(t, "ORTA DOĞU TEKNİK ÜNİVERSİTESİ", rec.Fields["university"])
	assert.Equal(t, "Lisans", rec.Fields["education_level"])
	assert.Equal(t, constants.Diploma, rec.Provenance["graduation_year"].SourceType)
	assert.Contains(t, rec.Conflicts, "graduation_year")

	// Experience: the parsed service record outweighs the CV's one year.
	assert.Equal(t, float64(2), rec.Fields["total_experience_years"])
	assert.Equal(t, float64(3), rec.Fields["experience_energy"])

	assert.Equal(t, false, rec.Fields["has_criminal_record"])
	assert.Equal(t, true, rec.Fields["green_transition_experience"])
	assert.Equal(t, "12345678901", rec.Fields["national_id"])

	// Identity matches the cover letter everywhere.
	assert.Equal(t, "PASS", out.Report.Status)
	assert.Empty(t, out.Report.Errors)
	require.True(t, out.GroundTruth.Usable())
	assert.Equal(t, "ALİ VELİ", out.GroundTruth.FullName)

	assert.NotEmpty(t, out.Extractions)

	statusByName := map[string]constants.DocStatus{}
	for _, d := range out.Documents {
		statusByName[d.Filename] = d.Status
	}
	assert.Equal(t, constants.DocStatusAnalyzed, statusByName["ust_yazi.pdf"])
	assert.Equal(t, constants.DocStatusAnalyzed, statusByName["cv.pdf"])
	assert.Equal(t, constants.DocStatusSkipped, statusByName["foto.jpg"])
}

func TestEngineFailsValidationOnWrongNationalID(t *testing.T) {
	f := newFixture(constants.ServiceAcademicResponsible)
	f.ex.byType[constants.CV]["national_id"] = "99999999999"
	f.addStandardDocs()

	out, err := f.engine().Run(context.Background(), f.app, f.docs)
	require.NoError(t, err, "validation findings never abort the run")

	assert.Equal(t, "FAIL", out.Report.Status)
	found := false
	for _, e := range out.Report.Errors {
		if e.Field == "national_id" && e.Source == string(constants.CV) {
			found = true
		}
	}
	assert.True(t, found, "expected a critical national_id finding from the CV")
}

func TestEngineReportsMissingRequiredDocuments(t *testing.T) {
	f := newFixture(constants.ServiceIndustryResponsible)
	f.addStandardDocs() // no sector certificate

	out, err := f.engine().Run(context.Background(), f.app, f.docs)
	require.NoError(t, err)

	assert.False(t, out.Record.DocsComplete)
	assert.Contains(t, out.Record.MissingDocs, string(constants.SectorCertificate))
}

func TestEngineWithoutCoverLetterSkipsValidation(t *testing.T) {
	f := newFixture(constants.ServiceAcademicResponsible)
	f.addDoc("Özgeçmiş/CV", "cv.pdf", "özgeçmiş metni")

	out, err := f.engine().Run(context.Background(), f.app, f.docs)
	require.NoError(t, err)

	assert.Equal(t, "SKIPPED", out.Report.Status)
	assert.Nil(t, out.GroundTruth)
	assert.Equal(t, "Ali Veli", out.Record.Fields["full_name"], "merge still runs")
}

func TestEngineMarksUnreadableDocumentFailed(t *testing.T) {
	f := newFixture(constants.ServiceAcademicResponsible)
	f.addDoc("Özgeçmiş/CV", "cv.pdf", "özgeçmiş metni")
	f.addDoc("Yök Lisans Diploması", "taranmis_diploma.pdf", "") // no text

	out, err := f.engine().Run(context.Background(), f.app, f.docs)
	require.NoError(t, err)

	var diploma entity.Document
	for _, d := range out.Documents {
		if d.Filename == "taranmis_diploma.pdf" {
			diploma = d
		}
	}
	assert.Equal(t, constants.DocStatusFailed, diploma.Status)
	require.NotNil(t, diploma.Note)
	assert.Contains(t, *diploma.Note, "no extractable text")

	// Education facts fall back to the CV.
	assert.Equal(t, "ANKARA ÜNİVERSİTESİ", out.Record.Fields["university"])
}

func TestEngineClassifiesUntypedByFilename(t *testing.T) {
	f := newFixture(constants.ServiceAcademicResponsible)
	f.addDoc("Ek Belge", "adli_sicil_kaydi.pdf", "adli sicil kaydı bulunmamaktadır")

	out, err := f.engine().Run(context.Background(), f.app, f.docs)
	require.NoError(t, err)

	require.Len(t, out.Documents, 1)
	assert.Equal(t, constants.CriminalRecord, out.Documents[0].Type)
	assert.Equal(t, false, out.Record.Fields["has_criminal_record"])
}

func TestEngineErrorsWhenNothingAnalyzable(t *testing.T) {
	f := newFixture(constants.ServiceAcademicResponsible)
	f.addDoc("Fotoğraf (vesikalık)", "foto.jpg", "")

	_, err := f.engine().Run(context.Background(), f.app, f.docs)
	assert.Error(t, err)
}
