package markers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitalis-health/labparse/constants"
	"github.com/vitalis-health/labparse/internal/markers"
)

func enriched(code constants.Code, sev constants.Severity, recheck int, imm bool, conf constants.Confidence) markers.EnrichedMarker {
	return markers.EnrichedMarker{
		ValidatedMarker:        markers.ValidatedMarker{Code: code},
		Confidence:             conf,
		Severity:               sev,
		RecommendedRecheckDays: recheck,
		ImmediateAttention:     imm,
	}
}

func TestAggregateMarkers_Empty(t *testing.T) {
	agg := markers.AggregateMarkers(nil)
	assert.Equal(t, "routine follow-up", agg.Recommendation)
	assert.Equal(t, 180, agg.RecheckDays)
	assert.False(t, agg.ImmediateAttention)
	assert.Equal(t, constants.ConfidenceLow, agg.Confidence)
}

func TestAggregateMarkers_WorstMarkerWins(t *testing.T) {
	agg := markers.AggregateMarkers([]markers.EnrichedMarker{
		enriched(constants.GLU, constants.SeverityMild, 180, false, constants.ConfidenceHigh),
		enriched(constants.HBA1C, constants.SeveritySignificant, 30, true, constants.ConfidenceHigh),
		enriched(constants.HDL, constants.SeverityNone, 180, false, constants.ConfidenceHigh),
	})
	assert.Equal(t, "seek evaluation promptly", agg.Recommendation)
	assert.Equal(t, 30, agg.RecheckDays)
	assert.True(t, agg.ImmediateAttention)
	assert.Equal(t, constants.ConfidenceHigh, agg.Confidence)
}

// On a severity tie the first marker keeps the slot.
func TestAggregateMarkers_TieKeepsFirst(t *testing.T) {
	agg := markers.AggregateMarkers([]markers.EnrichedMarker{
		enriched(constants.HB, constants.SeverityModerate, 30, false, constants.ConfidenceHigh),
		enriched(constants.LDL, constants.SeverityModerate, 90, false, constants.ConfidenceHigh),
	})
	assert.Equal(t, 30, agg.RecheckDays)
	assert.Equal(t, "recheck in approximately 30 days", agg.Recommendation)
}

func TestAggregateMarkers_Confidence(t *testing.T) {
	// All high -> high.
	agg := markers.AggregateMarkers([]markers.EnrichedMarker{
		enriched(constants.GLU, constants.SeverityNone, 180, false, constants.ConfidenceHigh),
		enriched(constants.HB, constants.SeverityNone, 180, false, constants.ConfidenceHigh),
	})
	assert.Equal(t, constants.ConfidenceHigh, agg.Confidence)

	// Mean of high and medium is 0.85 -> medium.
	agg = markers.AggregateMarkers([]markers.EnrichedMarker{
		enriched(constants.GLU, constants.SeverityNone, 180, false, constants.ConfidenceHigh),
		enriched(constants.HB, constants.SeverityNone, 180, false, constants.ConfidenceMedium),
	})
	assert.Equal(t, constants.ConfidenceMedium, agg.Confidence)

	// Mean of high and low is 0.7 -> medium, boundary inclusive.
	agg = markers.AggregateMarkers([]markers.EnrichedMarker{
		enriched(constants.GLU, constants.SeverityNone, 180, false, constants.ConfidenceHigh),
		enriched(constants.HB, constants.SeverityNone, 180, false, constants.ConfidenceLow),
	})
	assert.Equal(t, constants.ConfidenceMedium, agg.Confidence)

	// All low -> low.
	agg = markers.AggregateMarkers([]markers.EnrichedMarker{
		enriched(constants.GLU, constants.SeverityNone, 180, false, constants.ConfidenceLow),
	})
	assert.Equal(t, constants.ConfidenceLow, agg.Confidence)
}
