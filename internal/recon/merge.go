// Package recon reconciles per-document extraction results into one merged
// applicant record: strategy-based field merging with provenance and
// conflict capture, followed by plausibility normalization.
package recon

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/entity"
)

// Merge strategies. Priority walks sources in trust order; max and or fold
// across all sources; first takes the most trusted non-empty value.
const (
	StrategyPriority = "priority"
	StrategyMax      = "max"
	StrategyOr       = "or"
	StrategyFirst    = "first"
)

// fieldStrategies assigns each known field its cross-document resolution.
// Education facts trust the diploma over self-reported sources; experience
// numbers take the highest claim; boolean flags are sticky-true.
var fieldStrategies = map[string]string{
	"graduation_year": StrategyPriority,
	"university":      StrategyPriority,
	"department":      StrategyPriority,
	"education_level": StrategyPriority,

	"total_experience_years":  StrategyMax,
	"total_experience_months": StrategyMax,
	"experience_energy":       StrategyMax,
	"experience_metal":        StrategyMax,
	"experience_mineral":      StrategyMax,
	"experience_chemistry":    StrategyMax,
	"experience_waste":        StrategyMax,
	"experience_other":        StrategyMax,

	"has_criminal_record":                StrategyOr,
	"green_transition_experience":        StrategyOr,
	"environmental_regulation_knowledge": StrategyOr,
}

// StrategyFor returns the merge strategy used for a field.
func StrategyFor(field string) string {
	if s, ok := fieldStrategies[field]; ok {
		return s
	}
	return StrategyFirst
}

// Source is one document's merged field map entering cross-document
// reconciliation.
type Source struct {
	Type       constants.DocType
	DocumentID uuid.UUID
	Fields     map[string]any
}

// MergeSources folds all document-level results into the final field map.
// Sources disagreeing on a field are recorded as a conflict regardless of
// which value wins; the provenance names the winning source and strategy.
func MergeSources(sources []Source) (map[string]any, map[string]entity.Provenance, map[string]entity.Conflict) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return constants.TrustRank(ordered[i].Type) < constants.TrustRank(ordered[j].Type)
	})

	keys := map[string]struct{}{}
	for _, s := range ordered {
		for k := range s.Fields {
			keys[k] = struct{}{}
		}
	}

	fields := make(map[string]any, len(keys))
	provenance := make(map[string]entity.Provenance)
	conflicts := make(map[string]entity.Conflict)

	for key := range keys {
		strategy := StrategyFor(key)

		contributing := contributors(ordered, key)
		if len(contributing) == 0 {
			continue
		}

		if c, conflicted := detectConflict(key, contributing, strategy); conflicted {
			conflicts[key] = c
		}

		switch strategy {
		case StrategyMax:
			mergeMax(key, contributing, fields, provenance)
		case StrategyOr:
			mergeOr(key, contributing, fields, provenance)
		default:
			// priority and first both resolve to the most trusted value;
			// contributors are already in trust order.
			mergeFirst(key, strategy, contributing, fields, provenance)
		}
	}
	return fields, provenance, conflicts
}

func contributors(ordered []Source, key string) []Source {
	var out []Source
	for _, s := range ordered {
		v, ok := s.Fields[key]
		if !ok || v == nil {
			continue
		}
		if str, isStr := v.(string); isStr && str == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func detectConflict(key string, contributing []Source, strategy string) (entity.Conflict, bool) {
	distinct := map[string]struct{}{}
	values := make(map[constants.DocType]any, len(contributing))
	for _, s := range contributing {
		v := s.Fields[key]
		distinct[stringify(v)] = struct{}{}
		// Same-type sources were merged earlier, so keying by type is safe.
		values[s.Type] = v
	}
	return entity.Conflict{Values: values, Strategy: strategy}, len(distinct) > 1
}

func mergeMax(key string, contributing []Source, fields map[string]any, prov map[string]entity.Provenance) {
	best := 0.0
	var bestSrc *Source
	for i := range contributing {
		if n, ok := asNumber(contributing[i].Fields[key]); ok {
			if bestSrc == nil || n > best {
				best = n
				bestSrc = &contributing[i]
			}
		}
	}
	if bestSrc != nil {
		fields[key] = best
		id := bestSrc.DocumentID
		prov[key] = entity.Provenance{SourceType: bestSrc.Type, DocumentID: &id, Strategy: StrategyMax}
	}
}

func mergeOr(key string, contributing []Source, fields map[string]any, prov map[string]entity.Provenance) {
	result := false
	var winner *Source
	for i := range contributing {
		if b, ok := contributing[i].Fields[key].(bool); ok {
			if winner == nil {
				winner = &contributing[i]
			}
			if b {
				result = true
				winner = &contributing[i]
				break
			}
		}
	}
	if winner != nil {
		fields[key] = result
		id := winner.DocumentID
		prov[key] = entity.Provenance{SourceType: winner.Type, DocumentID: &id, Strategy: StrategyOr}
	}
}

func mergeFirst(key, strategy string, contributing []Source, fields map[string]any, prov map[string]entity.Provenance) {
	s := contributing[0]
	fields[key] = s.Fields[key]
	id := s.DocumentID
	prov[key] = entity.Provenance{SourceType: s.Type, DocumentID: &id, Strategy: strategy}
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
