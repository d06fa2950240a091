// Package safety screens AI-generated summary text before release.
// Only generated text is scanned; the deterministic enriched-marker data
// never passes through this filter.
package safety

import (
	"strings"

	"github.com/vitalis-health/labparse/internal/common"
)

// bannedPhrases covers directive prescribing and diagnostic language the
// generated summary must never contain. Matching is case-insensitive
// substring over the serialized candidate output.
var bannedPhrases = []string{
	"you must take",
	"you should take",
	"start taking",
	"stop taking",
	"increase your dose",
	"decrease your dose",
	"double your dose",
	"you have diabetes",
	"you have cancer",
	"you are diagnosed",
	"this confirms a diagnosis",
	"no need to see a doctor",
	"do not see a doctor",
	"instead of seeing a doctor",
	"replace your medication",
	"discontinue your medication",
}

// Scan checks serialized AI output for banned phrasing. A match rejects
// the entire summary with an UNSAFE_RESPONSE error naming the phrase.
func Scan(generated []byte) error {
	lower := strings.ToLower(string(generated))
	for _, phrase := range bannedPhrases {
		if strings.Contains(lower, phrase) {
			return common.NewAppError(common.CodeUnsafeResponse,
				"generated summary contains disallowed clinical advice: "+phrase, nil)
		}
	}
	return nil
}
