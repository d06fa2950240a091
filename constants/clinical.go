package constants

// Status is the evaluation of a value against its reference range.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusHigh    Status = "high"
	StatusLow     Status = "low"
	StatusUnknown Status = "unknown"
)

// Confidence is a quality signal, not a probability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Severity is the clinical-risk tier assigned by fixed rules.
type Severity string

const (
	SeverityNone        Severity = "none"
	SeverityMild        Severity = "mild"
	SeverityModerate    Severity = "moderate"
	SeveritySignificant Severity = "significant"
)

// Urgency is the recommended response speed.
type Urgency string

const (
	UrgencyRoutine Urgency = "routine"
	UrgencySoon    Urgency = "soon"
	UrgencyPrompt  Urgency = "prompt"
)

var severityRank = map[Severity]int{
	SeverityNone:        0,
	SeverityMild:        1,
	SeverityModerate:    2,
	SeveritySignificant: 3,
}

// SeverityRank orders severities for worst-marker aggregation.
func SeverityRank(s Severity) int {
	return severityRank[s]
}

// UIHints carries presentation metadata derived from final severity.
type UIHints struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// HintsForSeverity is a pure function of the final severity.
func HintsForSeverity(s Severity) UIHints {
	switch s {
	case SeverityMild:
		return UIHints{Color: "amber", Icon: "info-circle"}
	case SeverityModerate:
		return UIHints{Color: "orange", Icon: "alert-triangle"}
	case SeveritySignificant:
		return UIHints{Color: "red", Icon: "alert-octagon"}
	default:
		return UIHints{Color: "neutral", Icon: "check-circle"}
	}
}
