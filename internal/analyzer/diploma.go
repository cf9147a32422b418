package analyzer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

var yearInDateRe = regexp.MustCompile(`(\d{4})\s*$`)

// flattenDiplomas turns the per-diploma list returned by the extraction
// model into the summary education fields the merge works with. The most
// recently dated diploma wins; the full list is kept alongside.
func flattenDiplomas(_ entity.Document, fields map[string]any) map[string]any {
	list, _ := fields["diplomas"].([]any)
	if len(list) == 0 {
		return fields
	}

	diplomas := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			diplomas = append(diplomas, m)
		}
	}
	if len(diplomas) == 0 {
		return fields
	}

	sort.SliceStable(diplomas, func(i, j int) bool {
		yi, di := graduationYear(diplomas[i]), str(diplomas[i]["graduation_date"])
		yj, dj := graduationYear(diplomas[j]), str(diplomas[j]["graduation_date"])
		if yi != yj {
			return yi > yj
		}
		return di > dj
	})
	latest := diplomas[0]

	out := map[string]any{"diplomas": list}
	if u := str(latest["university"]); u != "" {
		out["university"] = u
	}
	if d := str(latest["department"]); d != "" {
		out["department"] = d
	}
	if y := graduationYear(latest); y > 0 {
		out["graduation_year"] = y
	}
	out["education_level"] = educationLevel(str(latest["department"]))

	// Identity may only be printed on one of the diplomas.
	for _, d := range diplomas {
		if _, ok := out["full_name"]; !ok {
			if name := joinName(str(d["first_name"]), str(d["last_name"])); name != "" {
				out["full_name"] = name
			}
		}
		if _, ok := out["national_id"]; !ok {
			if id := str(d["national_id"]); id != "" {
				out["national_id"] = id
			}
		}
	}
	return out
}

// educationLevel reads the degree out of the program line. Registrar
// printouts tag master's programs "(YL)" and doctorates "(DR)" inside the
// department text.
func educationLevel(department string) string {
	up := strings.ToUpperSpecial(unicode.TurkishCase, department)
	switch {
	case strings.Contains(department, "(YL)") || strings.Contains(up, "YÜKSEK LİSANS"):
		return "Yüksek Lisans"
	case strings.Contains(department, "(DR)") || strings.Contains(up, "DOKTORA"):
		return "Doktora"
	default:
		return "Lisans"
	}
}

// graduationYear reads the year from a DD/MM/YYYY (or bare-year) date, with
// a graduation_year field as fallback.
func graduationYear(d map[string]any) int {
	if m := yearInDateRe.FindStringSubmatch(str(d["graduation_date"])); m != nil {
		y, _ := strconv.Atoi(m[1])
		return y
	}
	switch v := d["graduation_year"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func joinName(first, last string) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return ""
	}
	return strings.ToUpperSpecial(unicode.TurkishCase, name)
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
