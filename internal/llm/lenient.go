package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// StripCodeFence removes a markdown code fence around a JSON payload. Small
// local models wrap output in ```json blocks no matter how firmly the prompt
// forbids it.
func StripCodeFence(raw []byte) []byte {
	s := bytes.TrimSpace(raw)
	if bytes.HasPrefix(s, []byte("```json")) {
		s = s[len("```json"):]
	} else if bytes.HasPrefix(s, []byte("```")) {
		s = s[3:]
	}
	s = bytes.TrimSpace(s)
	s = bytes.TrimSuffix(s, []byte("```"))
	return bytes.TrimSpace(s)
}

// DecodeObject parses a model response into a field map. A top-level array
// is unwrapped to its first element: some models return [{...}] for a
// single-object request.
func DecodeObject(raw []byte, logger *slog.Logger) (map[string]any, error) {
	if logger == nil {
		logger = slog.Default()
	}
	clean := StripCodeFence(raw)

	var v any
	if err := json.Unmarshal(clean, &v); err != nil {
		return nil, fmt.Errorf("decode response json: %w", err)
	}

	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("response is an empty list")
		}
		logger.Warn("llm.decode.list_unwrapped", "items", len(list))
		v = list[0]
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a json object")
	}
	return obj, nil
}

// SanitizeToSchema drops null values and keys the schema does not declare,
// so a response with harmless extras can still validate strictly. Returns
// the cleaned map and the list of removed keys.
func SanitizeToSchema(fields map[string]any, schema map[string]any) (map[string]any, []string) {
	props, _ := schema["properties"].(map[string]any)

	var dropped []string
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			dropped = append(dropped, k+"(null)")
			continue
		}
		if props != nil {
			if _, known := props[k]; !known {
				dropped = append(dropped, k+"(unknown)")
				continue
			}
		}
		out[k] = v
	}
	return out, dropped
}
