package pipeline

import (
	"regexp"
	"strings"

	"github.com/vitalis-health/labparse/internal/markers"
)

// Line-oriented fallback extraction for when the completion API is
// unavailable or returns nothing usable. It only recognizes the common
// "Name: value unit (ref: range)" layouts; anything it misreads is still
// subject to the same normalization and plausibility checks as AI output.
var (
	reFallbackLine = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 ().%/-]{1,48}?)\s*[:=]?\s+(\d+(?:\.\d+)?)\s*([A-Za-z%][A-Za-z0-9/^%.]*)?`)
	reFallbackRef  = regexp.MustCompile(`(?i)(?:ref(?:erence)?\.?\s*:?\s*|normal\s*:?\s*|\()\s*((?:\d+(?:\.\d+)?\s*(?:-|–|to)\s*\d+(?:\.\d+)?)|[<>]\s*\d+(?:\.\d+)?)`)
)

// FallbackParse scans the text line by line for marker-shaped rows.
func FallbackParse(text string) []markers.RawMarker {
	var out []markers.RawMarker
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := reFallbackLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		raw := markers.RawMarker{
			Name:  strings.TrimSpace(strings.TrimRight(m[1], ":=")),
			Value: m[2],
			Unit:  strings.TrimSpace(m[3]),
		}
		if ref := reFallbackRef.FindStringSubmatch(line); ref != nil {
			raw.RefRange = strings.TrimSpace(ref[1])
		}
		out = append(out, raw)
	}
	return out
}
