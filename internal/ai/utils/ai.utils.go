package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when a model reply contains no parsable JSON value.
var ErrNoJSON = errors.New("no valid JSON found in model output")

// wrapperKeys are envelope keys some models put around the object they were asked for.
var wrapperKeys = []string{"output", "result", "data", "response"}

// ExtractJSON returns the first complete JSON object or array in a model reply,
// tolerating markdown fences and leading or trailing prose.
func ExtractJSON(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if json.Valid([]byte(content)) {
		return []byte(content), nil
	}

	inString, escaped := false, false
	depth, start := 0, -1
	for i := 0; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			if depth == 0 {
				start = i
			}
			depth++
		case '}', ']':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				raw := strings.TrimSpace(content[start : i+1])
				if json.Valid([]byte(raw)) {
					return []byte(raw), nil
				}
				start = -1
			}
		}
	}
	return nil, ErrNoJSON
}

// Unwrap strips a single-key envelope such as {"output": {...}} when the inner
// value is an object. Anything else is returned unchanged.
func Unwrap(payload []byte) []byte {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(payload, &wrapper); err != nil || len(wrapper) != 1 {
		return payload
	}
	for _, key := range wrapperKeys {
		inner, ok := wrapper[key]
		if !ok {
			continue
		}
		trimmed := bytes.TrimSpace(inner)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			return trimmed
		}
	}
	return payload
}

// DecodeStrict decodes data into out, rejecting unknown fields and trailing data.
func DecodeStrict(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
