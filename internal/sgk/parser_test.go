package sgk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = `SOSYAL GÜVENLİK KURUMU
SGK TESCİL VE HİZMET DÖKÜMÜ

Ad Soyad: MEHMET KAYA
T.C. Kimlik No: 12345678901
İlk İşe Giriş Tarihi: 01.06.2015
Son İşten Çıkış Tarihi: 31.12.2023
Toplam Prim Gün Sayısı: 1140

*4a 2015/06 1111111 222222 01.06.2015 60 31.07.2015 Stajyer
4a 2016/03 1234567 333333 15.03.2016 360 31.12.2016 Çevre Mühendisi
4a 2017/01 1234567 333333 01.01.2017 300 31.10.2017 Çevre Mühendisi
4b 2018/01 7654321 444444 01.01.2018 480 30.04.2019 Serbest Danışman

İşyeri Listesi
222222 ÖRNEK GIDA SANAYİ A.Ş.
333333 YEŞİL ÇEVRE MÜHENDİSLİK LTD.
444444 KAYA DANIŞMANLIK

Belge sonu.
`

func TestParseReadsHeaderFields(t *testing.T) {
	rec, ok := Parse(sampleRecord)
	require.True(t, ok)

	assert.Equal(t, "MEHMET KAYA", rec.FullName)
	assert.Equal(t, "12345678901", rec.NationalID)
	assert.Equal(t, "01.06.2015", rec.FirstServiceDate)
	assert.Equal(t, "31.12.2023", rec.LastExitDate)
	assert.Equal(t, 1140, rec.DeclaredPrimDays)
}

func TestParseSeparatesBranchesAndFlagsInternships(t *testing.T) {
	rec, ok := Parse(sampleRecord)
	require.True(t, ok)
	require.Len(t, rec.Rows, 4)

	assert.True(t, rec.Rows[0].Internship, "starred branch is an internship")
	assert.Equal(t, "4a", rec.Rows[0].Branch, "star is stripped from the branch")
	assert.False(t, rec.Rows[1].Internship)
	assert.Equal(t, "4b", rec.Rows[3].Branch)
	assert.Equal(t, "Serbest Danışman", rec.Rows[3].Role)
	assert.Equal(t, "15.03.2016", rec.Rows[1].StartDate)
	assert.Equal(t, 360, rec.Rows[1].Days)
}

func TestParseExcludesInternshipsFromTotals(t *testing.T) {
	rec, ok := Parse(sampleRecord)
	require.True(t, ok)

	// 360 + 300 employed, 480 self-employed; the 60-day internship counts
	// toward neither branch.
	assert.Equal(t, 660, rec.Totals.EmployedDays)
	assert.Equal(t, 480, rec.Totals.SelfDays)
	assert.Equal(t, 1140, rec.Totals.TotalDays)
	assert.Equal(t, 60, rec.Totals.InternshipDays)

	// 660 = 1y10m, 480 = 1y4m; month remainders 10+4 fold into a year.
	assert.Equal(t, 1, rec.Totals.EmployedYears)
	assert.Equal(t, 10, rec.Totals.EmployedMonths)
	assert.Equal(t, 1, rec.Totals.SelfYears)
	assert.Equal(t, 4, rec.Totals.SelfMonths)
	assert.Equal(t, 3, rec.Totals.TotalYears)
	assert.Equal(t, 2, rec.Totals.TotalMonths)
}

func TestParseReadsEmployerListing(t *testing.T) {
	rec, ok := Parse(sampleRecord)
	require.True(t, ok)
	require.Len(t, rec.Employers, 3)

	assert.Equal(t, "222222", rec.Employers[0].EmployerNo)
	assert.Equal(t, "ÖRNEK GIDA SANAYİ A.Ş.", rec.Employers[0].Name)
	assert.Equal(t, "KAYA DANIŞMANLIK", rec.Employers[2].Name)
}

func TestParseRejectsShortOrRowlessText(t *testing.T) {
	_, ok := Parse("çok kısa")
	assert.False(t, ok)

	noRows := strings.Repeat("Bu belgede hizmet tablosu yok. ", 10)
	_, ok = Parse(noRows)
	assert.False(t, ok)
}

func TestDaysToYearsMonths(t *testing.T) {
	cases := []struct {
		days   int
		years  int
		months int
	}{
		{0, 0, 0},
		{29, 0, 0},
		{30, 0, 1},
		{360, 1, 0},
		{370, 1, 0},
		{390, 1, 1},
		{720, 2, 0},
		{1145, 3, 2},
	}
	for _, c := range cases {
		y, m := DaysToYearsMonths(c.days)
		assert.Equal(t, c.years, y, "days=%d", c.days)
		assert.Equal(t, c.months, m, "days=%d", c.days)
	}
}

func TestFieldMapCarriesTotalsAndIdentity(t *testing.T) {
	rec, ok := Parse(sampleRecord)
	require.True(t, ok)

	m := FieldMap(rec)
	assert.Equal(t, "MEHMET KAYA", m["full_name"])
	assert.Equal(t, "12345678901", m["national_id"])
	assert.Equal(t, float64(3), m["total_experience_years"])
	assert.Equal(t, float64(2), m["total_experience_months"])
	assert.Equal(t, float64(1140), m["total_contribution_days"])
	assert.Equal(t, float64(4), m["record_count"])
	assert.Equal(t, float64(3), m["employer_count"])
}
