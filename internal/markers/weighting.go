package markers

import (
	"github.com/vitalis-health/labparse/constants"
)

// Assessment is the deterministic clinical weighting of a single marker.
type Assessment struct {
	Severity               constants.Severity
	Urgency                constants.Urgency
	RecommendedRecheckDays int
	ImmediateAttention     bool
	UIHints                constants.UIHints
}

// escalation is one (condition, effect) step. Steps run in declaration
// order and later matches overwrite earlier ones wholesale, so for a code
// with stacked thresholds the stricter threshold must be declared after
// the milder one.
type escalation struct {
	code     constants.Code
	applies  func(value float64, status constants.Status) bool
	severity constants.Severity
	urgency  constants.Urgency
	recheck  int
	imm      bool
}

var escalations = []escalation{
	{
		code:     constants.HBA1C,
		applies:  func(v float64, _ constants.Status) bool { return v >= 6.5 },
		severity: constants.SeverityModerate, urgency: constants.UrgencySoon, recheck: 90,
	},
	{
		code:     constants.HBA1C,
		applies:  func(v float64, _ constants.Status) bool { return v >= 8.0 },
		severity: constants.SeveritySignificant, urgency: constants.UrgencyPrompt, recheck: 30, imm: true,
	},
	{
		code:     constants.LDL,
		applies:  func(v float64, _ constants.Status) bool { return v >= 160 },
		severity: constants.SeverityModerate, urgency: constants.UrgencySoon, recheck: 90,
	},
	{
		code:     constants.LDL,
		applies:  func(v float64, _ constants.Status) bool { return v >= 190 },
		severity: constants.SeveritySignificant, urgency: constants.UrgencyPrompt, recheck: 30, imm: true,
	},
	{
		code:     constants.CREAT,
		applies:  func(_ float64, st constants.Status) bool { return st == constants.StatusHigh },
		severity: constants.SeveritySignificant, urgency: constants.UrgencyPrompt, recheck: 7, imm: true,
	},
	{
		code:     constants.HB,
		applies:  func(_ float64, st constants.Status) bool { return st == constants.StatusLow },
		severity: constants.SeverityModerate, urgency: constants.UrgencySoon, recheck: 30,
	},
	{
		code:     constants.WBC,
		applies:  func(_ float64, st constants.Status) bool { return st != constants.StatusNormal },
		severity: constants.SeverityModerate, urgency: constants.UrgencySoon, recheck: 30,
	},
}

// Weigh computes severity, urgency, recheck interval, the immediate
// attention flag and UI hints for one marker. It depends only on
// (code, value, status), never on AI output.
func Weigh(code constants.Code, value float64, status constants.Status) Assessment {
	a := Assessment{
		Severity:               constants.SeverityNone,
		Urgency:                constants.UrgencyRoutine,
		RecommendedRecheckDays: 180,
	}
	if status == constants.StatusHigh || status == constants.StatusLow {
		a.Severity = constants.SeverityMild
	}

	for _, e := range escalations {
		if e.code != code || !e.applies(value, status) {
			continue
		}
		a.Severity = e.severity
		a.Urgency = e.urgency
		a.RecommendedRecheckDays = e.recheck
		a.ImmediateAttention = e.imm
	}

	a.UIHints = constants.HintsForSeverity(a.Severity)
	return a
}
