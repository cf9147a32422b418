package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeContentTextReadsTjOperators(t *testing.T) {
	stream := `BT
/F1 12 Tf
(Ad Soyad: MEHMET KAYA) Tj
(T.C. Kimlik No: 12345678901) Tj
ET`

	text := ScrapeContentText(stream)

	assert.Contains(t, text, "Ad Soyad: MEHMET KAYA")
	assert.Contains(t, text, "T.C. Kimlik No: 12345678901")
}

func TestScrapeContentTextReadsTJArrays(t *testing.T) {
	stream := `BT [(Dip) -20 (loma) -10 ( LisansOnlisans)] TJ ET`

	text := ScrapeContentText(stream)

	assert.Contains(t, text, "Diploma LisansOnlisans")
}

func TestScrapeContentTextUnescapes(t *testing.T) {
	stream := `(Parantez \(YL\) ve ters bölü \\) Tj`

	text := ScrapeContentText(stream)

	assert.Contains(t, text, `Parantez (YL) ve ters bölü \`)
}

func TestScrapeContentTextEmptyForImageOnlyStream(t *testing.T) {
	stream := `q 1 0 0 1 0 0 cm /Im0 Do Q`
	assert.Empty(t, ScrapeContentText(stream))
}

func TestPlainTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dilekce.txt")
	require.NoError(t, os.WriteFile(path, []byte("Sayın yetkili, başvurumun değerlendirilmesini arz ederim."), 0o644))

	res, err := PlainTextExtractor{}.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "TEXT", res.SourceType)
	assert.Equal(t, "plain", res.Method)
	assert.Contains(t, res.Text, "başvurumun")
}

func TestRouterRejectsUnsupportedExtension(t *testing.T) {
	r := NewRouter(nil)
	_, err := r.Extract(context.Background(), "foto.jpg")
	assert.Error(t, err)
}
