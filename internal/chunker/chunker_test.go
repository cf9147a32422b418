package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortTextReturnsSingleSegment(t *testing.T) {
	cfg := DefaultConfig()
	text := "Kisa bir dilekce metni."

	segments := Split(text, cfg)

	require.Len(t, segments, 1)
	assert.Equal(t, 0, segments[0].Start)
	assert.Equal(t, len(text), segments[0].End)
	assert.Equal(t, text, segments[0].Text)
}

func TestSplitCoversInputWithBoundedOverlap(t *testing.T) {
	cfg := Config{Size: 400, Overlap: 50, MinSize: 100}
	var b strings.Builder
	for i := 0; i < 120; i++ {
		b.WriteString("Aday uzun yillar boyunca cevre muhendisligi alaninda calisti. ")
	}
	text := b.String()

	segments := Split(text, cfg)

	require.Greater(t, len(segments), 1)
	assert.Equal(t, 0, segments[0].Start)
	assert.Equal(t, len(text), segments[len(segments)-1].End)
	for i := 1; i < len(segments); i++ {
		prev, cur := segments[i-1], segments[i]
		assert.LessOrEqual(t, cur.Start, prev.End, "segment %d must not leave a gap", i)
		assert.LessOrEqual(t, prev.End-cur.Start, cfg.Overlap, "segment %d overlaps too much", i)
	}
}

func TestSplitPrefersSentenceBoundary(t *testing.T) {
	cfg := Config{Size: 200, Overlap: 20, MinSize: 50}
	sentence := "Bu cumle tam burada bitiyor. "
	text := strings.Repeat(sentence, 40)

	segments := Split(text, cfg)

	require.Greater(t, len(segments), 1)
	for _, seg := range segments[:len(segments)-1] {
		assert.True(t, strings.HasSuffix(seg.Text, "bitiyor."),
			"segment %d should end at a sentence boundary, got %q", seg.Index, seg.Text[max(0, len(seg.Text)-20):])
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	text := strings.Repeat("Deneyim kaydi ve egitim bilgisi. ", 300)

	first := Split(text, cfg)
	second := Split(text, cfg)

	assert.Equal(t, first, second)
}

func TestMergeSumsNumericFields(t *testing.T) {
	merged := Merge([]map[string]any{
		{"total_experience_years": float64(3)},
		{"total_experience_years": float64(2)},
	})
	assert.Equal(t, float64(5), merged["total_experience_years"])
}

func TestMergeYearFieldsKeepPlausibleValue(t *testing.T) {
	t.Run("both plausible keeps smaller", func(t *testing.T) {
		merged := Merge([]map[string]any{
			{"graduation_year": float64(2010)},
			{"graduation_year": float64(2012)},
		})
		assert.Equal(t, float64(2010), merged["graduation_year"])
	})

	t.Run("only one plausible wins", func(t *testing.T) {
		merged := Merge([]map[string]any{
			{"graduation_year": float64(3010)},
			{"graduation_year": float64(2012)},
		})
		assert.Equal(t, float64(2012), merged["graduation_year"])
	})

	t.Run("neither plausible yields nil", func(t *testing.T) {
		merged := Merge([]map[string]any{
			{"birth_year": float64(1800)},
			{"birth_year": float64(2500)},
		})
		assert.Nil(t, merged["birth_year"])
	})
}

func TestMergeStringKeepsFirstNonEmpty(t *testing.T) {
	merged := Merge([]map[string]any{
		{"university": ""},
		{"university": "Istanbul Teknik Universitesi"},
		{"university": "Baska Universite"},
	})
	assert.Equal(t, "Istanbul Teknik Universitesi", merged["university"])
}

func TestMergeIsOrderStableForFirstAndOr(t *testing.T) {
	a := map[string]any{"full_name": "ALI VELI", "has_criminal_record": false}
	b := map[string]any{"full_name": "", "has_criminal_record": true}
	c := map[string]any{"full_name": "ALI VELI", "has_criminal_record": false}

	fine := Merge([]map[string]any{a, b, c})
	coarse := Merge([]map[string]any{Merge([]map[string]any{a, b}), c})

	assert.Equal(t, "ALI VELI", fine["full_name"])
	assert.Equal(t, true, fine["has_criminal_record"])
	assert.Equal(t, fine["full_name"], coarse["full_name"])
	assert.Equal(t, fine["has_criminal_record"], coarse["has_criminal_record"])
}

func TestMergeListsConcatenateWithDuplicates(t *testing.T) {
	merged := Merge([]map[string]any{
		{"projects": []any{"a"}},
		{"projects": []any{"a", "b"}},
	})
	assert.Equal(t, []any{"a", "a", "b"}, merged["projects"])
}

func TestMergeNestedMapsRecursively(t *testing.T) {
	merged := Merge([]map[string]any{
		{"contact": map[string]any{"email": "x@example.com", "calls": float64(1)}},
		{"contact": map[string]any{"email": "", "calls": float64(2)}},
	})
	contact := merged["contact"].(map[string]any)
	assert.Equal(t, "x@example.com", contact["email"])
	assert.Equal(t, float64(3), contact["calls"])
}
