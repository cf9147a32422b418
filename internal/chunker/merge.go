package chunker

// yearRanges lists fields that semantically hold a calendar year. Summing
// them across segments would be nonsense, so the merge keeps the more
// plausible value instead, preferring the smaller when both fit the range.
var yearRanges = map[string][2]float64{
	"graduation_year": {1950, 2030},
	"birth_year":      {1930, 2015},
}

// Merge folds per-segment field maps left-to-right into one record.
// Numbers are summed (except year fields), strings keep the first non-empty
// value, booleans OR, lists concatenate with duplicates preserved (order may
// carry meaning), nested maps merge recursively.
func Merge(results []map[string]any) map[string]any {
	if len(results) == 0 {
		return map[string]any{}
	}
	merged := make(map[string]any, len(results[0]))
	for k, v := range results[0] {
		merged[k] = v
	}
	for _, r := range results[1:] {
		merged = mergeTwo(merged, r)
	}
	return merged
}

func mergeTwo(dst, src map[string]any) map[string]any {
	for key, v2 := range src {
		v1, seen := dst[key]
		if !seen {
			dst[key] = v2
			continue
		}

		n1, ok1 := asNumber(v1)
		n2, ok2 := asNumber(v2)
		// Booleans first: they satisfy neither number nor string below.
		if b1, ok := v1.(bool); ok {
			if b2, ok := v2.(bool); ok {
				dst[key] = b1 || b2
				continue
			}
		}
		switch {
		case ok1 && ok2:
			dst[key] = mergeNumbers(key, n1, n2)
		case isString(v1) && isString(v2):
			if v1.(string) == "" {
				dst[key] = v2
			}
		case isList(v1) && isList(v2):
			dst[key] = append(append([]any{}, v1.([]any)...), v2.([]any)...)
		case isMap(v1) && isMap(v2):
			dst[key] = mergeTwo(v1.(map[string]any), v2.(map[string]any))
		}
	}
	return dst
}

func mergeNumbers(key string, a, b float64) any {
	r, isYear := yearRanges[key]
	if !isYear {
		return a + b
	}
	aValid := a >= r[0] && a <= r[1]
	bValid := b >= r[0] && b <= r[1]
	switch {
	case aValid && bValid:
		if a <= b {
			return a
		}
		return b
	case aValid:
		return a
	case bValid:
		return b
	default:
		return nil
	}
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
	case bool:
		return 0, false
	}
	return 0, false
}

func isString(v any) bool { _, ok := v.(string); return ok }
func isList(v any) bool   { _, ok := v.([]any); return ok }
func isMap(v any) bool    { _, ok := v.(map[string]any); return ok }
