package anticaptcha

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// normalizeBody returns the JSON document carried by a response body.
// Some deployments deliver the document encoded inside a JSON string;
// that string is unwrapped once. Any other body is returned unchanged.
func normalizeBody(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed, nil
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, fmt.Errorf("decode string body: %w", err)
	}
	return bytes.TrimSpace([]byte(inner)), nil
}

// parseResponse normalizes body and decodes it into v.
func parseResponse(body []byte, v any) error {
	doc, err := normalizeBody(body)
	if err != nil {
		return err
	}
	if len(doc) == 0 {
		return fmt.Errorf("empty response body")
	}
	if err := json.Unmarshal(doc, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
