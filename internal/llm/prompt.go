package llm

import (
	"strings"
)

// BuildExtractionSystemPrompt composes the system message for marker
// extraction: JSON-only output, verbatim values, no interpretation.
func BuildExtractionSystemPrompt() string {
	parts := []string{
		"You are a lab-report parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract every lab test result you can find: test name, numeric value, unit, and the printed reference range if one is shown.",
		"Copy values exactly as printed. Never invent, estimate, or convert a value.",
		"Put the reference range text verbatim into 'refRange' (for example \"4.0-6.0\" or \"< 200\").",
		"Do not diagnose, flag, or interpret any result.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildExtractionUserPrompt wraps the report text. Long reports are
// truncated; markers past the cap are beyond what one report plausibly holds.
func BuildExtractionUserPrompt(text string) string {
	const maxChars = 12000
	var b strings.Builder
	b.WriteString("Report text:\n")
	if len(text) > maxChars {
		b.WriteString(text[:maxChars])
	} else {
		b.WriteString(text)
	}
	return b.String()
}

// BuildSummarySystemPrompt composes the system message for the
// patient-friendly summary of already-validated markers.
func BuildSummarySystemPrompt(language string) string {
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = "en"
	}
	parts := []string{
		"You are a medical communication assistant. Return ONLY a JSON object.",
		"You receive lab markers that were already validated and assessed deterministically; do not re-assess them.",
		"Write a short, calm, patient-friendly explanation of what each marker measures and what the assessed status means.",
		"Shape: {\"summary\": string, \"markerNotes\": [{\"code\": string, \"note\": string}]}.",
		"Never prescribe, never diagnose, never advise starting or stopping any medication.",
		"Always encourage discussing the results with a clinician.",
		"Write in language: " + lang + ".",
	}
	return strings.Join(parts, " ")
}

// BuildSummaryUserPrompt serializes the enriched markers for the model.
func BuildSummaryUserPrompt(enrichedJSON []byte) string {
	var b strings.Builder
	b.WriteString("Assessed lab markers (JSON):\n")
	b.Write(enrichedJSON)
	return b.String()
}
