package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// reNumericString mirrors the value pattern in BuildMarkersJSONSchema.
var reNumericString = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// StripCodeFences removes a surrounding ```json ... ``` block if the model
// ignored the JSON-only instruction.
func StripCodeFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}

// SanitizeExtraction normalizes an untrusted extraction response before
// schema validation:
//   - renames known key synonyms (reference_range -> refRange, result -> value)
//   - drops null/empty optionals and entries with no usable name or value
//   - removes unknown keys (additionalProperties = false friendliness)
//
// Returns the cleaned document and the list of adjustments made.
func SanitizeExtraction(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	body := StripCodeFences(raw)

	var items []any
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err == nil {
		var ok bool
		if items, ok = doc["markers"].([]any); !ok {
			return nil, nil, fmt.Errorf("sanitize: response has no markers array")
		}
	} else if arr, isArr := tryBareArray(body); isArr {
		// some models answer with a bare array
		items = arr
	} else {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string
	cleaned := make([]any, 0, len(items))
	for i, it := range items {
		m, isMap := it.(map[string]any)
		if !isMap {
			dropped = append(dropped, fmt.Sprintf("markers[%d](not object)", i))
			continue
		}

		renameKey(m, "marker", "name")
		renameKey(m, "parameter", "name")
		renameKey(m, "result", "value")
		renameKey(m, "reference_range", "refRange")
		renameKey(m, "ref_range", "refRange")
		renameKey(m, "referenceRange", "refRange")
		renameKey(m, "range", "refRange")

		for _, k := range []string{"name", "unit", "refRange"} {
			if v, has := m[k]; has {
				s, isStr := v.(string)
				if !isStr || strings.TrimSpace(s) == "" {
					delete(m, k)
					continue
				}
				m[k] = strings.TrimSpace(s)
			}
		}

		switch v := m["value"].(type) {
		case float64:
			// keep as-is
		case string:
			// non-numeric strings would fail the whole document at
			// schema validation; drop just this marker instead
			s := strings.TrimSpace(v)
			if !reNumericString.MatchString(s) {
				delete(m, "value")
			} else {
				m["value"] = s
			}
		case nil:
			delete(m, "value")
		default:
			_ = v
			delete(m, "value")
		}

		allowed := map[string]struct{}{"name": {}, "value": {}, "unit": {}, "refRange": {}}
		for k := range m {
			if _, keep := allowed[k]; !keep {
				delete(m, k)
				dropped = append(dropped, fmt.Sprintf("markers[%d].%s(unknown)", i, k))
			}
		}

		if _, hasName := m["name"]; !hasName {
			dropped = append(dropped, fmt.Sprintf("markers[%d](no name)", i))
			continue
		}
		if _, hasValue := m["value"]; !hasValue {
			dropped = append(dropped, fmt.Sprintf("markers[%d](no value)", i))
			continue
		}
		cleaned = append(cleaned, m)
	}

	out, err := json.Marshal(map[string]any{"markers": cleaned})
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

func renameKey(m map[string]any, from, to string) {
	if v, ok := m[from]; ok {
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
	}
}

func tryBareArray(raw []byte) ([]any, bool) {
	var arr []any
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}
