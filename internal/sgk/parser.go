// Package sgk parses the fixed-layout social-security service record. The
// table is regular enough for direct regex parsing, which is both faster and
// far more reliable than LLM extraction for this document type.
package sgk

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// Legal conversion rule for contribution days. This is the domain's own
// convention, not a calendar approximation.
const (
	DaysPerYear  = 360
	DaysPerMonth = 30
)

var (
	reName      = regexp.MustCompile(`(?i)Ad\s+Soyad\s*[:\-]?\s*([A-ZÇĞİÖŞÜa-zçğıöşü\s]+?)(?:\s*\n|\s*Sicil|\s*T\.?C\.?|\s*Kimlik|$)`)
	reNameOnly  = regexp.MustCompile(`^[A-ZÇĞİÖŞÜa-zçğıöşü\s]+$`)
	reNationalID = regexp.MustCompile(`(?i)T\.?C\.?\s*Kimlik\s*No\s*[:\-]?\s*(\d{11})`)
	reFirstDate = regexp.MustCompile(`(?i)İlk\s+İşe\s+Giriş\s+Tarihi\s*[:\-]?\s*(\d{2}\.\d{2}\.\d{4})`)
	reLastExit  = regexp.MustCompile(`(?i)Son\s+İşten\s+Çıkış\s+Tarihi\s*[:\-]?\s*(\d{2}\.\d{2}\.\d{4})`)
	rePrimDays  = regexp.MustCompile(`(?i)Toplam\s+(?:Prim\s+)?(?:Gün\s+)?(?:Sayısı)?\s*[:\-]?\s*(\d+)`)

	// One table row: branch, period, registry no, employer no, optional start
	// date, day count, optional end date, role text to end of line. A starred
	// branch marks an internship.
	reRow = regexp.MustCompile(`(\*?\(?\*?\)?4[ab])\s+(\d{4}/\d{2})\s+(\d+)\s+(\d+)\s+(\d{2}\.\d{2}\.\d{4})?\s+(\d+)\s+(\d{2}\.\d{2}\.\d{4})?[ \t]*([^\n]*)`)

	reEmployerHeading = regexp.MustCompile(`(?i)İşyeri\s+Listesi`)
	reEmployerRow     = regexp.MustCompile(`(\d{6,7})\s+([A-ZÇĞİÖŞÜ\s\.\-]+)`)
)

// minTextLen guards against parsing an empty or truncated extraction.
const minTextLen = 100

// Parse reads the full service-record text and returns the structured
// record. The second return is false when the text does not contain a
// usable table; callers treat that as "no result" and fall back, not as an
// error.
func Parse(text string) (*entity.ServiceRecord, bool) {
	if len(text) < minTextLen {
		return nil, false
	}

	rec := &entity.ServiceRecord{}
	parseHeader(rec, text)
	rec.Rows = parseRows(text)
	if len(rec.Rows) == 0 {
		return nil, false
	}
	rec.Employers = parseEmployers(text)
	rec.Totals = computeTotals(rec.Rows)
	return rec, true
}

func parseHeader(rec *entity.ServiceRecord, text string) {
	if m := reName.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) >= 3 && reNameOnly.MatchString(name) {
			rec.FullName = strings.ToUpperSpecial(unicode.TurkishCase, name)
		}
	}
	if m := reNationalID.FindStringSubmatch(text); m != nil {
		rec.NationalID = m[1]
	}
	if m := reFirstDate.FindStringSubmatch(text); m != nil {
		rec.FirstServiceDate = m[1]
	}
	if m := reLastExit.FindStringSubmatch(text); m != nil {
		rec.LastExitDate = m[1]
	}
	if m := rePrimDays.FindStringSubmatch(text); m != nil {
		rec.DeclaredPrimDays, _ = strconv.Atoi(m[1])
	}
}

func parseRows(text string) []entity.ServiceRecordRow {
	var rows []entity.ServiceRecordRow
	for _, m := range reRow.FindAllStringSubmatch(text, -1) {
		rawBranch := m[1]
		branch := strings.NewReplacer("(", "", ")", "", "*", "").Replace(rawBranch)
		role := strings.TrimSpace(m[8])
		days, _ := strconv.Atoi(m[6])

		rows = append(rows, entity.ServiceRecordRow{
			Branch:     strings.TrimSpace(branch),
			Period:     m[2],
			RegistryNo: m[3],
			EmployerNo: m[4],
			StartDate:  m[5],
			Days:       days,
			EndDate:    m[7],
			Role:       role,
			Internship: strings.Contains(rawBranch, "*") || strings.Contains(strings.ToLower(role), "staj"),
		})
	}
	return rows
}

// parseEmployers reads the trailing employer listing. The section runs from
// the "İşyeri Listesi" heading to the first blank line, or to the end.
func parseEmployers(text string) []entity.Employer {
	loc := reEmployerHeading.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	section := text[loc[0]:]
	if end := strings.Index(section, "\n\n"); end != -1 {
		section = section[:end]
	}

	var employers []entity.Employer
	for _, m := range reEmployerRow.FindAllStringSubmatch(section, -1) {
		employers = append(employers, entity.Employer{
			EmployerNo: m[1],
			Name:       strings.TrimSpace(m[2]),
		})
	}
	return employers
}

// computeTotals sums contribution days per insurance branch, excluding
// internship rows, and converts each branch with the 360/30 rule. Branch
// month remainders are summed and any total >= 12 folds into years.
func computeTotals(rows []entity.ServiceRecordRow) entity.ServiceTotals {
	var t entity.ServiceTotals
	for _, row := range rows {
		if row.Internship {
			t.InternshipDays += row.Days
			continue
		}
		switch row.Branch {
		case "4a":
			t.EmployedDays += row.Days
		case "4b":
			t.SelfDays += row.Days
		}
	}

	t.EmployedYears, t.EmployedMonths = DaysToYearsMonths(t.EmployedDays)
	t.SelfYears, t.SelfMonths = DaysToYearsMonths(t.SelfDays)
	t.TotalDays = t.EmployedDays + t.SelfDays

	t.TotalYears = t.EmployedYears + t.SelfYears
	t.TotalMonths = t.EmployedMonths + t.SelfMonths
	if t.TotalMonths >= 12 {
		t.TotalYears += t.TotalMonths / 12
		t.TotalMonths = t.TotalMonths % 12
	}
	return t
}

// DaysToYearsMonths converts contribution days using the exact-integer
// 1 year = 360 days, 1 month = 30 days rule.
func DaysToYearsMonths(days int) (years, months int) {
	years = days / DaysPerYear
	months = (days % DaysPerYear) / DaysPerMonth
	return years, months
}

// FieldMap renders the parsed record in the shared extraction vocabulary so
// it can flow through the same merge path as LLM results.
func FieldMap(rec *entity.ServiceRecord) map[string]any {
	m := map[string]any{
		"total_experience_years":  float64(rec.Totals.TotalYears),
		"total_experience_months": float64(rec.Totals.TotalMonths),
		"employed_years":          float64(rec.Totals.EmployedYears),
		"employed_months":         float64(rec.Totals.EmployedMonths),
		"self_employed_years":     float64(rec.Totals.SelfYears),
		"self_employed_months":    float64(rec.Totals.SelfMonths),
		"total_contribution_days": float64(rec.Totals.TotalDays),
		"internship_days":         float64(rec.Totals.InternshipDays),
		"record_count":            float64(len(rec.Rows)),
		"employer_count":          float64(len(rec.Employers)),
	}
	if rec.FullName != "" {
		m["full_name"] = rec.FullName
	}
	if rec.NationalID != "" {
		m["national_id"] = rec.NationalID
	}
	if rec.FirstServiceDate != "" {
		m["first_service_date"] = rec.FirstServiceDate
	}
	if rec.LastExitDate != "" {
		m["last_exit_date"] = rec.LastExitDate
	}
	if rec.DeclaredPrimDays > 0 {
		m["declared_prim_days"] = float64(rec.DeclaredPrimDays)
	}
	return m
}
