package llm

// BuildMarkersJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the completion API as a structured-output
// constraint and also use it locally to validate the untrusted response.
func BuildMarkersJSONSchema() map[string]any {
	marker := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"value": map[string]any{
				// models return numbers or numeric strings interchangeably
				"anyOf": []any{
					map[string]any{"type": "number"},
					map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`},
				},
			},
			"unit":     map[string]any{"type": "string"},
			"refRange": map[string]any{"type": "string"},
		},
		"required": []string{"name", "value"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"markers": map[string]any{
				"type":  "array",
				"items": marker,
			},
		},
		"required": []string{"markers"},
	}
}
