package markers

import (
	"math"

	"github.com/vitalis-health/labparse/constants"
)

// ComputeStatus evaluates a value against its reference-range text.
// Confidence distinguishes "we could not evaluate" (low) from "range text
// was present but unparseable" (medium) from a full evaluation (high).
func ComputeStatus(value *float64, refRange string) (constants.Status, constants.Confidence) {
	if value == nil || !rangeTextPresent(refRange) {
		return constants.StatusUnknown, constants.ConfidenceLow
	}

	bounds := ParseRange(refRange)
	if bounds.Low == nil && bounds.High == nil {
		return constants.StatusUnknown, constants.ConfidenceMedium
	}

	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return constants.StatusUnknown, constants.ConfidenceLow
	}

	if bounds.High != nil && *value > *bounds.High {
		return constants.StatusHigh, constants.ConfidenceHigh
	}
	if bounds.Low != nil && *value < *bounds.Low {
		return constants.StatusLow, constants.ConfidenceHigh
	}
	return constants.StatusNormal, constants.ConfidenceHigh
}
