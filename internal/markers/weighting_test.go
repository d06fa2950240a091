package markers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitalis-health/labparse/constants"
	"github.com/vitalis-health/labparse/internal/markers"
)

func TestWeigh_Baseline(t *testing.T) {
	a := markers.Weigh(constants.GLU, 90, constants.StatusNormal)
	assert.Equal(t, constants.SeverityNone, a.Severity)
	assert.Equal(t, constants.UrgencyRoutine, a.Urgency)
	assert.Equal(t, 180, a.RecommendedRecheckDays)
	assert.False(t, a.ImmediateAttention)
	assert.Equal(t, "neutral", a.UIHints.Color)
}

func TestWeigh_MildForOutOfRange(t *testing.T) {
	for _, st := range []constants.Status{constants.StatusHigh, constants.StatusLow} {
		a := markers.Weigh(constants.GLU, 130, st)
		assert.Equal(t, constants.SeverityMild, a.Severity, "status %s", st)
		assert.Equal(t, constants.UrgencyRoutine, a.Urgency)
	}
	a := markers.Weigh(constants.GLU, 130, constants.StatusUnknown)
	assert.Equal(t, constants.SeverityNone, a.Severity)
}

func TestWeigh_HbA1cThresholds(t *testing.T) {
	a := markers.Weigh(constants.HBA1C, 6.4, constants.StatusHigh)
	assert.Equal(t, constants.SeverityMild, a.Severity)

	a = markers.Weigh(constants.HBA1C, 6.5, constants.StatusHigh)
	assert.Equal(t, constants.SeverityModerate, a.Severity)
	assert.Equal(t, constants.UrgencySoon, a.Urgency)
	assert.Equal(t, 90, a.RecommendedRecheckDays)
	assert.False(t, a.ImmediateAttention)

	// The stricter threshold overwrites the milder one wholesale.
	a = markers.Weigh(constants.HBA1C, 8.1, constants.StatusHigh)
	assert.Equal(t, constants.SeveritySignificant, a.Severity)
	assert.Equal(t, constants.UrgencyPrompt, a.Urgency)
	assert.Equal(t, 30, a.RecommendedRecheckDays)
	assert.True(t, a.ImmediateAttention)
	assert.Equal(t, "red", a.UIHints.Color)
}

// The value thresholds fire regardless of status, even when the
// reference range was missing.
func TestWeigh_ValueRulesIgnoreStatus(t *testing.T) {
	a := markers.Weigh(constants.HBA1C, 8.1, constants.StatusUnknown)
	assert.Equal(t, constants.SeveritySignificant, a.Severity)
	assert.True(t, a.ImmediateAttention)
}

func TestWeigh_LDLThresholds(t *testing.T) {
	a := markers.Weigh(constants.LDL, 150, constants.StatusHigh)
	assert.Equal(t, constants.SeverityMild, a.Severity)

	a = markers.Weigh(constants.LDL, 160, constants.StatusHigh)
	assert.Equal(t, constants.SeverityModerate, a.Severity)
	assert.Equal(t, 90, a.RecommendedRecheckDays)

	a = markers.Weigh(constants.LDL, 190, constants.StatusHigh)
	assert.Equal(t, constants.SeveritySignificant, a.Severity)
	assert.Equal(t, 30, a.RecommendedRecheckDays)
	assert.True(t, a.ImmediateAttention)
}

func TestWeigh_StatusRules(t *testing.T) {
	a := markers.Weigh(constants.CREAT, 2.4, constants.StatusHigh)
	assert.Equal(t, constants.SeveritySignificant, a.Severity)
	assert.Equal(t, constants.UrgencyPrompt, a.Urgency)
	assert.Equal(t, 7, a.RecommendedRecheckDays)
	assert.True(t, a.ImmediateAttention)

	// Low creatinine carries no escalation.
	a = markers.Weigh(constants.CREAT, 0.4, constants.StatusLow)
	assert.Equal(t, constants.SeverityMild, a.Severity)

	a = markers.Weigh(constants.HB, 9.0, constants.StatusLow)
	assert.Equal(t, constants.SeverityModerate, a.Severity)
	assert.Equal(t, 30, a.RecommendedRecheckDays)
	assert.False(t, a.ImmediateAttention)

	// WBC escalates on any abnormal status, including unknown.
	for _, st := range []constants.Status{constants.StatusHigh, constants.StatusLow, constants.StatusUnknown} {
		a = markers.Weigh(constants.WBC, 14.2, st)
		assert.Equal(t, constants.SeverityModerate, a.Severity, "status %s", st)
	}
	a = markers.Weigh(constants.WBC, 7.0, constants.StatusNormal)
	assert.Equal(t, constants.SeverityNone, a.Severity)
}

func TestWeigh_Deterministic(t *testing.T) {
	first := markers.Weigh(constants.HBA1C, 8.1, constants.StatusHigh)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, markers.Weigh(constants.HBA1C, 8.1, constants.StatusHigh))
	}
}
