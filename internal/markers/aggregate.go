package markers

import (
	"fmt"

	"github.com/vitalis-health/labparse/constants"
)

// Aggregate is the system-wide recommendation across all markers.
type Aggregate struct {
	Recommendation     string               `json:"overallRecommendation"`
	RecheckDays        int                  `json:"overallRecheckDays"`
	ImmediateAttention bool                 `json:"immediateAttention"`
	Confidence         constants.Confidence `json:"overallConfidence"`
}

var confidenceScores = map[constants.Confidence]float64{
	constants.ConfidenceHigh:   1.0,
	constants.ConfidenceMedium: 0.7,
	constants.ConfidenceLow:    0.4,
}

// AggregateMarkers folds the enriched markers into a single recommendation.
// The worst marker is the one with the highest severity rank; ties keep the
// first-encountered marker (stable fold, no secondary key).
func AggregateMarkers(ms []EnrichedMarker) Aggregate {
	if len(ms) == 0 {
		return Aggregate{
			Recommendation: "routine follow-up",
			RecheckDays:    180,
			Confidence:     constants.ConfidenceLow,
		}
	}

	worst := ms[0]
	for _, m := range ms[1:] {
		if constants.SeverityRank(m.Severity) > constants.SeverityRank(worst.Severity) {
			worst = m
		}
	}

	agg := Aggregate{
		RecheckDays:        worst.RecommendedRecheckDays,
		ImmediateAttention: worst.ImmediateAttention,
		Confidence:         aggregateConfidence(ms),
	}
	if worst.ImmediateAttention {
		agg.Recommendation = "seek evaluation promptly"
	} else {
		agg.Recommendation = fmt.Sprintf("recheck in approximately %d days", worst.RecommendedRecheckDays)
	}
	return agg
}

func aggregateConfidence(ms []EnrichedMarker) constants.Confidence {
	var sum float64
	for _, m := range ms {
		sum += confidenceScores[m.Confidence]
	}
	mean := sum / float64(len(ms))
	switch {
	case mean >= 0.9:
		return constants.ConfidenceHigh
	case mean >= 0.7:
		return constants.ConfidenceMedium
	default:
		return constants.ConfidenceLow
	}
}
