package ocr

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

// Patterns that suggest the decoded text really is a lab report: a line
// with a name, a number, and optionally a unit or parenthesized range.
var (
	reResultLine = regexp.MustCompile(`(?mi)^[a-z][a-z0-9 ()%/.-]{2,40}[: ]\s*\d+(\.\d+)?`)
	reRangeHint  = regexp.MustCompile(`(?i)(ref(erence)?|range|normal)[: ]`)
)

// Normalize collapses noisy whitespace from the OCR output. Conservative:
// line breaks are preserved because the fallback parser is line-oriented,
// and no character-level "artifact fixes" are applied: a misread digit
// must reach the plausibility validator unaltered, not be papered over.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func looksLikeLabReport(txt string) bool {
	return reResultLine.MatchString(txt) || reRangeHint.MatchString(txt)
}
