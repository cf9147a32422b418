// Package groundtruth derives the reference identity from the application's
// cover letter and cross-checks every other document against it. The cover
// letter is the only document whose content the applicant attests directly,
// so it anchors validation instead of participating in the merge.
package groundtruth

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

var (
	nameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Başvuru\s+Yapan\s*[:\-]?\s*([A-ZÇĞİÖŞÜa-zçğıöşü\s]+?)(?:\s*\n|\s*T\.?C\.?|\s*Kimlik|\s*Adres|\s*GSM|$)`),
		regexp.MustCompile(`(?i)Ad\s*Soyad\s*[:\-]?\s*([A-ZÇĞİÖŞÜa-zçğıöşü\s]+?)(?:\s*\n|\s*T\.?C\.?|\s*Kimlik|\s*Adres|\s*GSM|$)`),
		regexp.MustCompile(`(?i)Adı\s*Soyadı\s*[:\-]?\s*([A-ZÇĞİÖŞÜa-zçğıöşü\s]+?)(?:\s*\n|\s*T\.?C\.?|\s*Kimlik|\s*Adres|\s*GSM|$)`),
		regexp.MustCompile(`(?i)Ad\s*:\s*([A-ZÇĞİÖŞÜa-zçğıöşü\s]+?)(?:\s*\n|\s*Soyad|\s*T\.?C\.?)`),
	}
	nameOnlyRe = regexp.MustCompile(`^[A-ZÇĞİÖŞÜa-zçğıöşü\s]+$`)

	nationalIDRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)T\.?C\.?\s*Kimlik\s*(?:No|Numarası)\s*[:\-]?\s*(\d{11})`),
		regexp.MustCompile(`(?i)TC\s*[:\-]?\s*(\d{11})`),
		regexp.MustCompile(`(?i)Kimlik\s*No\s*[:\-]?\s*(\d{11})`),
	}

	addressStartRe = regexp.MustCompile(`(?i)(?:İkamet\s+)?Adres(?:i)?\s*[:\-]?\s*([^\n]*)`)
	addressStopRe  = regexp.MustCompile(`(?i)^\s*(?:E-?Mail|E-?Posta|GSM|Telefon|Tarih|\d|$)`)

	emailRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)E-?Mail\s*[:\-]?\s*([^\s\n]+@[^\s\n]+)`),
		regexp.MustCompile(`(?i)E-?Posta\s*[:\-]?\s*([^\s\n]+@[^\s\n]+)`),
		regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
	}

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)GSM\s*(?:No)?\s*[:\-]?\s*(\d{10,11})`),
		regexp.MustCompile(`(?i)Cep\s*(?:Tel|Telefon)?\s*[:\-]?\s*(\d{10,11})`),
		regexp.MustCompile(`(?i)Telefon\s*[:\-]?\s*(\d{10,11})`),
	}

	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Tarih\s*[:\-]?\s*(\d{2}\.\d{2}\.\d{4})`),
		regexp.MustCompile(`(?i)Tarih\s*[:\-]?\s*(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(?i)Başvuru\s+Tarihi\s*[:\-]?\s*(\d{2}\.\d{2}\.\d{4})`),
	}

	subjectRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Konu\s*[:\-]?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Başvuru\s+Konusu\s*[:\-]?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Hizmet\s*[:\-]?\s*([^\n]+)`),
	}

	// "1-Yök Lisans Diploması-Diploma LisansOnlisans.pdf (*)"
	docWithTypeRe = regexp.MustCompile(`(?i)(\d+)\s*[\-\.]\s*([^\-\n]+?)\s*\-\s*([^\n]+?\.(?:pdf|jpg|jpeg|png|doc|docx))\s*\(\*\)`)
	// "1. Diploma LisansOnlisans.pdf"
	docPlainRe = regexp.MustCompile(`(?i)(\d+)\s*[\.\)]\s*([^\n]+?\.(?:pdf|jpg|jpeg|png|doc|docx))`)
	// The petition text itself appears in the listing without a file.
	docPetitionRe = regexp.MustCompile(`(?i)(\d+)\s*[\-\.]\s*(Dilekçe(?:\s+Metni)?)`)
)

// DocumentRef is one entry of the cover letter's attachment listing.
type DocumentRef struct {
	Seq       int
	TypeLabel string // empty when the listing gives only a filename
	Filename  string
}

// Parse extracts the applicant's identity and the declared attachment list
// from cover-letter text. Fields the letter does not state stay empty; the
// caller decides usability via GroundTruth.Usable.
func Parse(text string) *entity.GroundTruth {
	gt := &entity.GroundTruth{}

	for _, re := range nameRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) >= 3 && nameOnlyRe.MatchString(name) {
			gt.FullName = strings.ToUpperSpecial(unicode.TurkishCase, name)
			break
		}
	}
	gt.NationalID = firstMatch(nationalIDRes, text)
	gt.Address = parseAddress(text)
	gt.Email = firstMatch(emailRes, text)
	gt.Phone = firstMatch(phoneRes, text)
	gt.SubmittedDate = firstMatch(dateRes, text)

	if subject := firstMatch(subjectRes, text); len(subject) < 200 {
		gt.Subject = subject
	}

	for _, ref := range ParseDocumentList(text) {
		gt.DocumentList = append(gt.DocumentList, ref.Filename)
	}
	return gt
}

// ParseDocumentList reads the numbered attachment listing. The typed format
// ("n-Type-file.ext (*)") wins; the plain numbered format is the fallback. A
// "Dilekçe Metni" line has no file of its own and gets a synthetic name.
func ParseDocumentList(text string) []DocumentRef {
	var refs []DocumentRef

	for _, m := range docWithTypeRe.FindAllStringSubmatch(text, -1) {
		seq, _ := strconv.Atoi(m[1])
		refs = append(refs, DocumentRef{
			Seq:       seq,
			TypeLabel: strings.TrimSpace(m[2]),
			Filename:  strings.TrimSpace(m[3]),
		})
	}
	if len(refs) == 0 {
		for _, m := range docPlainRe.FindAllStringSubmatch(text, -1) {
			seq, _ := strconv.Atoi(m[1])
			refs = append(refs, DocumentRef{
				Seq:      seq,
				Filename: strings.TrimSpace(m[2]),
			})
		}
	}
	if m := docPetitionRe.FindStringSubmatch(text); m != nil {
		seq, _ := strconv.Atoi(m[1])
		refs = append(refs, DocumentRef{Seq: seq, TypeLabel: "Dilekçe Metni", Filename: "dilekce.txt"})
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Seq < refs[j].Seq })
	return refs
}

func firstMatch(res []*regexp.Regexp, text string) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// parseAddress joins the address line with its continuation lines, stopping
// at the next labeled field or a blank line.
func parseAddress(text string) string {
	loc := addressStartRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return ""
	}
	parts := []string{strings.TrimSpace(text[loc[2]:loc[3]])}

	rest := strings.TrimPrefix(text[loc[1]:], "\n")
	for _, line := range strings.Split(rest, "\n") {
		if addressStopRe.MatchString(line) {
			break
		}
		parts = append(parts, strings.TrimSpace(line))
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
