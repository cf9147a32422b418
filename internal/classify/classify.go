// Package classify predicts a document's type from its filename. Intake
// uses it when the source system sends belgeTipi as null, which happens for
// roughly a third of uploads.
package classify

import (
	"regexp"
	"sort"

	"github.com/oguzakin/eligibility-tracker/constants"
)

// Rule maps a filename pattern to a document type. Higher priority rules
// are checked first.
type Rule struct {
	Pattern  *regexp.Regexp
	Type     constants.DocType
	Priority int
}

// defaultRules reflects the filename conventions of the source system's
// uploads. Ordering matters: "sgk hizmet dökümü.pdf" must not fall through
// to a weaker match.
var defaultRules = []Rule{
	{regexp.MustCompile(`(?i)üst[ _-]?yaz[ıi]|ust[ _-]?yazi|dilekçe|dilekce`), constants.CoverLetter, 10},
	{regexp.MustCompile(`(?i)sgk|hizmet[ _-]?d[öo]k[üu]m`), constants.ServiceRecord, 9},
	{regexp.MustCompile(`(?i)hitap`), constants.MinistryServiceRecord, 9},
	{regexp.MustCompile(`(?i)adli[ _-]?sicil|sab[ıi]ka`), constants.CriminalRecord, 9},
	{regexp.MustCompile(`(?i)diploma|mezuniyet|lisans[ _-]?onlisans`), constants.Diploma, 8},
	{regexp.MustCompile(`(?i)özgeçmiş|ozgecmis|\bcv\b|_cv[ ._-]|^cv[ ._-]`), constants.CV, 8},
	{regexp.MustCompile(`(?i)proje`), constants.ProjectFile, 6},
	{regexp.MustCompile(`(?i)vesikal[ıi]k|fotoğraf|fotograf|foto\b`), constants.Photo, 6},
	{regexp.MustCompile(`(?i)enerji|metal|mineral|kimya|at[ıi]k[ _-]?y[öo]netim|sekt[öo]r`), constants.SectorCertificate, 5},
}

// Classifier predicts document types from an ordered rule set.
type Classifier struct {
	rules []Rule
}

// New returns a classifier with the default rules.
func New() *Classifier {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	c := &Classifier{rules: rules}
	c.sortRules()
	return c
}

// AddRule registers an extra pattern. Equal priorities keep insertion order.
func (c *Classifier) AddRule(r Rule) {
	c.rules = append(c.rules, r)
	c.sortRules()
}

func (c *Classifier) sortRules() {
	sort.SliceStable(c.rules, func(i, j int) bool {
		return c.rules[i].Priority > c.rules[j].Priority
	})
}

// Predict returns the document type guessed from a filename, or false when
// no rule matches.
func (c *Classifier) Predict(filename string) (constants.DocType, bool) {
	if filename == "" {
		return constants.OtherDocument, false
	}
	for _, r := range c.rules {
		if r.Pattern.MatchString(filename) {
			return r.Type, true
		}
	}
	return constants.OtherDocument, false
}
