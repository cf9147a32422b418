package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzakin/eligibility-tracker/constants"
	"github.com/oguzakin/eligibility-tracker/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, MaxRetries: 1, Timeout: 5 * time.Second}, nil)
}

func TestExtractFieldsParsesFencedResponse(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "gemma3:4b",
			"response": "```json\n{\"has_criminal_record\": false, \"record_code\": null}\n```",
			"done":     true,
		})
	})

	res, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.CriminalRecord,
		Text:    "Sabıka kaydı bulunmamaktadır.",
	})
	require.NoError(t, err)

	assert.Equal(t, "gemma3:4b", res.Model)
	assert.Equal(t, false, res.Fields["has_criminal_record"])
	_, hasCode := res.Fields["record_code"]
	assert.False(t, hasCode, "null fields are stripped")

	// The request carries the tuned sampling options and no streaming.
	assert.Equal(t, false, gotBody["stream"])
	opts := gotBody["options"].(map[string]any)
	assert.Equal(t, 0.1, opts["temperature"])
	assert.Equal(t, float64(8192), opts["num_ctx"])
}

func TestExtractFieldsUnwrapsListResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "gemma3:4b",
			"response": `[{"project_type": "TÜBİTAK Projesi", "title": "Yeşil Enerji", "year": 2022}]`,
		})
	})

	res, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.ProjectFile,
		Text:    "proje dosyası",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yeşil Enerji", res.Fields["title"])
}

func TestExtractFieldsSanitizesUnknownKeys(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "gemma3:4b",
			"response": `{"has_criminal_record": false, "confidence": 0.93}`,
		})
	})

	res, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.CriminalRecord,
		Text:    "belge",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"has_criminal_record": false}, res.Fields)
}

func TestExtractFieldsFailsOnNonJSONResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "gemma3:4b",
			"response": "Üzgünüm, bu belgeyi analiz edemedim.",
		})
	})

	_, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.CriminalRecord,
		Text:    "belge",
	})
	assert.Error(t, err)
}

func TestExtractFieldsFailsFastOnClientError(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		DocType: constants.CV,
		Text:    "belge",
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "4xx is not retried")
}

func TestCheckHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, c.CheckHealth(context.Background()))

	down := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, nil)
	assert.Error(t, down.CheckHealth(context.Background()))
}

func TestBackoffIsCapped(t *testing.T) {
	assert.Equal(t, 4*time.Second, backoff(2))
	assert.Equal(t, 8*time.Second, backoff(3))
	assert.Equal(t, 10*time.Second, backoff(4))
	assert.Equal(t, 10*time.Second, backoff(7))
}
