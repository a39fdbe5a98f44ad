package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonBlockPattern = regexp.MustCompile(`(?s)(\{.*\})`)

// ParseAttributes extracts a flat attribute mapping from model output. It
// first tries the whole text as JSON, then the first {...} block, stripping
// markdown fences either way. Returns ok=false when nothing salvageable
// remains; callers treat that as a confidence degradation, not an error.
func ParseAttributes(text string) (map[string]string, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if m, ok := unmarshalAttributes(text); ok {
		return m, true
	}

	if match := jsonBlockPattern.FindString(text); match != "" {
		if m, ok := unmarshalAttributes(match); ok {
			return m, true
		}
	}

	return nil, false
}

func unmarshalAttributes(text string) (map[string]string, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = stringify(v)
	}
	return out, true
}

// stringify flattens a JSON value into the cell-sized string the output
// table stores. Nested structures are re-encoded as compact JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
