package markers

import (
	"github.com/vitalis-health/labparse/constants"
)

// RawMarker is a marker as produced by extraction, before any validation.
// Every field is untrusted: Value may arrive as a JSON number or a string.
type RawMarker struct {
	Name     string `json:"name"`
	Value    any    `json:"value"`
	Unit     string `json:"unit,omitempty"`
	RefRange string `json:"refRange,omitempty"`
}

// ValidatedMarker is a marker that passed normalization and plausibility
// checks. Flag and ObservedAt are reserved and always null at this stage.
type ValidatedMarker struct {
	Name       string         `json:"name"`
	Code       constants.Code `json:"code"`
	Value      float64        `json:"value"`
	Unit       string         `json:"unit,omitempty"`
	RefRange   string         `json:"refRange,omitempty"`
	Flag       *string        `json:"flag"`
	ObservedAt *string        `json:"observedAt"`
}

// EnrichedMarker is a validated marker plus status and clinical weighting.
type EnrichedMarker struct {
	ValidatedMarker

	Status                 constants.Status     `json:"status"`
	Confidence             constants.Confidence `json:"confidence"`
	Severity               constants.Severity   `json:"severity"`
	Urgency                constants.Urgency    `json:"urgency"`
	RecommendedRecheckDays int                  `json:"recommendedRecheckDays"`
	ImmediateAttention     bool                 `json:"immediateAttention"`
	UIHints                constants.UIHints    `json:"uiHints"`
}

// RangeBounds are numeric bounds derived from free-text reference ranges.
// Both nil means the range text was unparseable; exactly one nil is a
// valid one-sided bound.
type RangeBounds struct {
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
}
