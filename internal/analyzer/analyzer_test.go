package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
	"github.com/oguzakin/eligibility-tracker/internal/llm"
)

// fakeExtractor returns canned field maps in order; the last one repeats.
type fakeExtractor struct {
	responses []map[string]any
	err       error
	reqs      []llm.ExtractRequest
}

func (f *fakeExtractor) ExtractFields(_ context.Context, req llm.ExtractRequest) (llm.Result, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return llm.Result{}, f.err
	}
	i := len(f.reqs) - 1
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	fields := f.responses[i]
	raw, _ := json.Marshal(fields)
	return llm.Result{Fields: fields, Raw: raw, Model: "fake", Duration: time.Millisecond}, nil
}

func testDoc(t constants.DocType) entity.Document {
	return entity.Document{ID: uuid.New(), Type: t, Filename: "belge.pdf"}
}

func longText() string {
	return strings.Repeat("Çevre mühendisliği alanında saha denetimi yürüttüm. ", 120)
}

func TestCVMergesAcrossSegments(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"full_name": "AHMET DEMİR", "experience_energy": float64(3), "graduation_year": float64(2012)},
		{"full_name": "", "experience_energy": float64(2), "graduation_year": float64(2012)},
	}}

	res, err := NewCV(fake, nil).Analyze(context.Background(), testDoc(constants.CV), longText())
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(fake.reqs), 2, "long text should produce multiple segments")
	assert.Equal(t, "AHMET DEMİR", res.Fields["full_name"])
	assert.Equal(t, float64(5), res.Fields["experience_energy"], "sector experience sums across segments")
	assert.Equal(t, float64(2012), res.Fields["graduation_year"], "years are not summed")
	assert.Len(t, res.Extractions, len(fake.reqs))
	for _, ex := range res.Extractions {
		assert.True(t, ex.Success)
		assert.Equal(t, "fake", ex.ModelName)
	}
}

func TestCVToleratesFailedSegment(t *testing.T) {
	calls := 0
	fake := &flakyExtractor{fail: func() bool { calls++; return calls == 1 }}

	res, err := NewCV(fake, nil).Analyze(context.Background(), testDoc(constants.CV), longText())
	require.NoError(t, err)

	assert.Equal(t, "AHMET DEMİR", res.Fields["full_name"])
	assert.False(t, res.Extractions[0].Success)
	assert.True(t, res.Extractions[1].Success)
}

type flakyExtractor struct{ fail func() bool }

func (f *flakyExtractor) ExtractFields(context.Context, llm.ExtractRequest) (llm.Result, error) {
	if f.fail() {
		return llm.Result{}, errors.New("timeout")
	}
	return llm.Result{Fields: map[string]any{"full_name": "AHMET DEMİR"}, Model: "fake"}, nil
}

func TestCVFailsWhenEverySegmentFails(t *testing.T) {
	fake := &fakeExtractor{err: errors.New("model down")}

	res, err := NewCV(fake, nil).Analyze(context.Background(), testDoc(constants.CV), "kısa özgeçmiş metni")
	assert.Error(t, err)
	assert.Len(t, res.Extractions, 1)
	assert.False(t, res.Extractions[0].Success)
}

func TestDiplomaFlattensToMostRecent(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"diplomas": []any{
			map[string]any{
				"first_name": "Ahmet", "last_name": "Demir",
				"national_id":     "12345678901",
				"university":      "ORTA DOĞU TEKNİK ÜNİVERSİTESİ",
				"department":      "ÇEVRE MÜHENDİSLİĞİ",
				"graduation_date": "15/06/2010",
			},
			map[string]any{
				"university":      "HACETTEPE ÜNİVERSİTESİ",
				"department":      "ÇEVRE MÜHENDİSLİĞİ (YL) (TEZLİ)",
				"graduation_date": "20/08/2014",
			},
		}},
	}}

	res, err := NewDiploma(fake, nil).Analyze(context.Background(), testDoc(constants.Diploma), "diploma metni uzunca bir metin")
	require.NoError(t, err)

	assert.Equal(t, "HACETTEPE ÜNİVERSİTESİ", res.Fields["university"])
	assert.Equal(t, 2014, res.Fields["graduation_year"])
	assert.Equal(t, "Yüksek Lisans", res.Fields["education_level"])
	assert.Equal(t, "AHMET DEMİR", res.Fields["full_name"], "identity comes from the dated bachelor diploma")
	assert.Equal(t, "12345678901", res.Fields["national_id"])
	assert.Len(t, res.Fields["diplomas"], 2, "full list survives the flatten")
}

func TestEducationLevel(t *testing.T) {
	cases := map[string]string{
		"ÇEVRE MÜHENDİSLİĞİ":                "Lisans",
		"ÇEVRE MÜHENDİSLİĞİ (YL) (TEZLİ)":   "Yüksek Lisans",
		"Çevre Bilimleri Yüksek Lisans":     "Yüksek Lisans",
		"KİMYA MÜHENDİSLİĞİ (DR)":           "Doktora",
		"Çevre Mühendisliği Doktora Prog.":  "Doktora",
	}
	for dep, want := range cases {
		assert.Equal(t, want, educationLevel(dep), dep)
	}
}

func TestSectorCertificateFirstSegmentAndMapping(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"sector": "Enerji Üretimi", "duration_years": float64(4), "company": "ABC ENERJİ A.Ş."},
	}}
	doc := testDoc(constants.SectorCertificate)
	doc.DeclaredType = "Enerji Üretimi Sektör Belgesi"

	res, err := NewSectorCertificate(fake, nil).Analyze(context.Background(), doc, longText())
	require.NoError(t, err)

	assert.Len(t, fake.reqs, 1, "only the first segment is analyzed")
	assert.Equal(t, constants.SectorEnergy, fake.reqs[0].Sector)
	assert.Equal(t, string(constants.SectorEnergy), res.Fields["sector"])
	assert.Equal(t, float64(4), res.Fields["experience_energy"])
}

func TestSectorCertificateFallsBackToDeclaredType(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"sector": nil, "duration_months": float64(30)},
	}}
	doc := testDoc(constants.SectorCertificate)
	doc.DeclaredType = "Atık Yönetimi"

	res, err := NewSectorCertificate(fake, nil).Analyze(context.Background(), doc, "kısa sektör belgesi metni")
	require.NoError(t, err)

	assert.Equal(t, string(constants.SectorWaste), res.Fields["sector"])
	assert.Equal(t, float64(2), res.Fields["experience_waste"], "30 months rounds down to 2 years")
}

func TestProjectFileReadsFirstSegmentOnly(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"project_type": "Yeşil Dönüşüm", "title": "Atık Isı Geri Kazanımı", "year": float64(2022)},
	}}

	res, err := NewProjectFile(fake, nil).Analyze(context.Background(), testDoc(constants.ProjectFile), longText())
	require.NoError(t, err)

	assert.Len(t, fake.reqs, 1)
	assert.Equal(t, "Atık Isı Geri Kazanımı", res.Fields["title"])
}

const parsableServiceRecord = `T.C. SOSYAL GÜVENLİK KURUMU
SGK TESCİL VE HİZMET DÖKÜMÜ

Ad Soyad: MEHMET KAYA
T.C. Kimlik No: 12345678901
İlk İşe Giriş Tarihi: 01.03.2016
Toplam Prim Gün Sayısı: 720

4a 2016/03 1111111 2222222 01.03.2016 360 28.02.2017 Çevre Mühendisi
4a 2017/03 1111111 2222222 01.03.2017 360 28.02.2018 Çevre Mühendisi
`

func TestServiceRecordParsesWithoutModel(t *testing.T) {
	fake := &fakeExtractor{err: errors.New("must not be called")}

	res, err := NewServiceRecord(fake, nil).Analyze(context.Background(), testDoc(constants.ServiceRecord), parsableServiceRecord)
	require.NoError(t, err)

	assert.Empty(t, fake.reqs, "regex path must not reach the model")
	assert.Equal(t, "MEHMET KAYA", res.Fields["full_name"])
	assert.Equal(t, float64(2), res.Fields["total_experience_years"])
	require.Len(t, res.Extractions, 1)
	assert.Equal(t, "sgk-regex", res.Extractions[0].ModelName)
	assert.True(t, res.Extractions[0].Success)
}

func TestServiceRecordFallsBackToModel(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"total_experience_years": float64(3)},
	}}
	text := strings.Repeat("okunamayan taranmış hizmet dökümü metni ", 10)

	res, err := NewServiceRecord(fake, nil).Analyze(context.Background(), testDoc(constants.ServiceRecord), text)
	require.NoError(t, err)

	assert.NotEmpty(t, fake.reqs)
	assert.Equal(t, float64(3), res.Fields["total_experience_years"])
}

func TestServiceRecordFallbackDropsSectorGuesses(t *testing.T) {
	fake := &fakeExtractor{responses: []map[string]any{
		{"total_experience_years": float64(3), "experience_energy": float64(3)},
	}}
	text := strings.Repeat("okunamayan taranmış hizmet dökümü metni ", 10)

	res, err := NewServiceRecord(fake, nil).Analyze(context.Background(), testDoc(constants.ServiceRecord), text)
	require.NoError(t, err)

	assert.Equal(t, float64(3), res.Fields["total_experience_years"])
	assert.NotContains(t, res.Fields, "experience_energy",
		"service records carry no sector information")
}

func TestRegistryCoversAnalyzableTypes(t *testing.T) {
	r := NewRegistry(&fakeExtractor{responses: []map[string]any{{}}}, nil)

	for _, dt := range constants.AnalyzableTypes {
		a, ok := r.ForType(dt)
		require.True(t, ok, string(dt))
		assert.Equal(t, dt, a.DocType())
	}
	_, ok := r.ForType(constants.Photo)
	assert.False(t, ok, "photos are never analyzed")
}
