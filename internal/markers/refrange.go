package markers

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reRangePair = regexp.MustCompile(`^(\d+(?:\.\d+)?)[-\x{2013}](\d+(?:\.\d+)?)$`)
	reRangeLess = regexp.MustCompile(`^<(\d+(?:\.\d+)?)$`)
	reRangeMore = regexp.MustCompile(`^>(\d+(?:\.\d+)?)$`)
	reRangeTo   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)to(\d+(?:\.\d+)?)$`)
	reSpace     = regexp.MustCompile(`\s+`)
)

// ParseRange derives numeric bounds from free-text reference-range text.
// It is total: unrecognized input yields {nil, nil}, never an error.
// Formats are tried in priority order; a malformed numeric substring makes
// the whole pattern fall through to the next rule.
func ParseRange(refRange string) RangeBounds {
	s := reSpace.ReplaceAllString(refRange, "")
	if s == "" {
		return RangeBounds{}
	}

	if m := reRangePair.FindStringSubmatch(s); m != nil {
		if lo, hi, ok := parsePair(m[1], m[2]); ok {
			return RangeBounds{Low: &lo, High: &hi}
		}
	}
	if m := reRangeLess.FindStringSubmatch(s); m != nil {
		if hi, err := strconv.ParseFloat(m[1], 64); err == nil {
			return RangeBounds{High: &hi}
		}
	}
	if m := reRangeMore.FindStringSubmatch(s); m != nil {
		if lo, err := strconv.ParseFloat(m[1], 64); err == nil {
			return RangeBounds{Low: &lo}
		}
	}
	if m := reRangeTo.FindStringSubmatch(s); m != nil {
		if lo, hi, ok := parsePair(m[1], m[2]); ok {
			return RangeBounds{Low: &lo, High: &hi}
		}
	}
	return RangeBounds{}
}

func parsePair(a, b string) (float64, float64, bool) {
	lo, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func rangeTextPresent(refRange string) bool {
	return strings.TrimSpace(refRange) != ""
}
