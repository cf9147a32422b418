package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oguzakin/eligibility-tracker/internal/llm"
)

// generateResponse is the subset of the generate API reply we read.
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// ExtractFields implements llm.FieldExtractor. The raw model output is
// validated strictly against the document type's schema first; on failure a
// lenient sanitize (drop nulls and unknown keys) gets one re-validation.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"doc_type", req.DocType,
		"segment", req.SegmentIndex,
		"text_len", len(req.Text),
	)

	prompt := llm.BuildPrompt(req)
	schema := llm.BuildFieldSchema(req.DocType)

	body := map[string]any{
		"model":  c.cfg.Model,
		"prompt": prompt,
		"system": llm.SystemPrompt,
		"stream": false,
		"options": map[string]any{
			"temperature": c.cfg.Temperature,
			"top_p":       c.cfg.TopP,
			"top_k":       c.cfg.TopK,
			"num_predict": c.cfg.NumPredict,
			"num_ctx":     c.cfg.NumCtx,
		},
	}

	raw, err := c.generate(ctx, rid, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return llm.Result{}, err
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds())
		return llm.Result{}, fmt.Errorf("decode generate response: %w", err)
	}

	fields, err := llm.DecodeObject([]byte(gr.Response), c.log)
	if err != nil {
		c.log.Error("llm.extract.bad_json",
			"req_id", rid, "error", err,
			"response_prefix", prefix(gr.Response, 200),
			"elapsed_ms", time.Since(start).Milliseconds())
		return llm.Result{}, err
	}

	content, err := json.Marshal(fields)
	if err != nil {
		return llm.Result{}, fmt.Errorf("re-encode fields: %w", err)
	}

	if vErr := llm.ValidateJSONAgainstSchema(schema, content); vErr != nil {
		cleaned, dropped := llm.SanitizeToSchema(fields, schema)
		content, err = json.Marshal(cleaned)
		if err != nil {
			return llm.Result{}, fmt.Errorf("re-encode sanitized fields: %w", err)
		}
		if vErr2 := llm.ValidateJSONAgainstSchema(schema, content); vErr2 != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr2, "content", string(content),
				"elapsed_ms", time.Since(start).Milliseconds())
			return llm.Result{}, fmt.Errorf("schema validation failed: %w", vErr2)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds())
		fields = cleaned
	} else {
		// Valid as-is; still strip nulls so the merge never sees them.
		fields, _ = llm.SanitizeToSchema(fields, schema)
		content, _ = json.Marshal(fields)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"doc_type", req.DocType,
		"fields", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.Result{
		Fields:   fields,
		Raw:      content,
		Model:    gr.Model,
		Duration: time.Since(start),
	}, nil
}

// generate posts to /api/generate with bounded retries. Only transient
// failures are retried: timeouts, 429 and 503. A malformed response or any
// other status fails immediately.
func (c *Client) generate(ctx context.Context, rid string, body map[string]any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(ctx, backoff(attempt)); err != nil {
				return nil, err
			}
			c.log.Warn("llm.generate.retry", "req_id", rid, "attempt", attempt, "error", lastErr)
		}

		raw, status, err := c.post(ctx, url, bs)
		switch {
		case err == nil && status/100 == 2:
			return raw, nil
		case err != nil && isTimeout(err):
			lastErr = err
		case status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable:
			lastErr = fmt.Errorf("ollama status %d", status)
		case err != nil:
			return nil, err
		default:
			return nil, fmt.Errorf("ollama status %d: %s", status, prefix(string(raw), 200))
		}
	}
	return nil, fmt.Errorf("ollama generate failed after %d attempts: %w", c.cfg.MaxRetries, lastErr)
}

func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			c.log.Warn("llm.generate.body_close_error", "error", cErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}

// CheckHealth reports whether the Ollama server answers at all.
func (c *Client) CheckHealth(ctx context.Context) error {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("ollama status %d", resp.StatusCode)
	}
	return nil
}

// backoff: 4s, 8s, capped at 10s.
func backoff(attempt int) time.Duration {
	d := 4 * time.Second << (attempt - 2)
	if d > 10*time.Second {
		d = 10 * time.Second
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isTimeout(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
