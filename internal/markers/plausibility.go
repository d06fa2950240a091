package markers

import (
	"math"

	"github.com/vitalis-health/labparse/constants"
)

// Values in the open interval (1900, 2100) are overwhelmingly calendar
// years (report dates, printed timestamps) misread as results by the
// extractor, so they are rejected for every code.
const (
	yearArtifactLow  = 1900
	yearArtifactHigh = 2100
)

// Plausible reports whether value is an acceptable result for code.
// Rules apply in order, short-circuiting on the first rejection. This
// function only rejects; it never corrects or clamps a value.
func Plausible(code constants.Code, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	if value > yearArtifactLow && value < yearArtifactHigh {
		return false
	}
	if r, ok := constants.RangeFor(code); ok {
		if value < r.Min || value > r.Max {
			return false
		}
	}
	return true
}
