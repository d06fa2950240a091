package markers

import (
	"strings"

	"github.com/vitalis-health/labparse/constants"
)

// nameRule maps a lowercase substring to a marker code. Rules are applied
// in order and the first match wins; precedence resolves overlapping
// substrings ("glycated hemoglobin" must hit HBA1C before the HB rule,
// "LDL cholesterol" must hit LDL before CHOL).
type nameRule struct {
	substr string
	code   constants.Code
}

var nameRules = []nameRule{
	{"hba1c", constants.HBA1C},
	{"hb a1c", constants.HBA1C},
	{"a1c", constants.HBA1C},
	{"glycated", constants.HBA1C},
	{"glycosylated", constants.HBA1C},
	{"ldl", constants.LDL},
	{"hdl", constants.HDL},
	{"triglycer", constants.TG},
	{"chol", constants.CHOL},
	{"creat", constants.CREAT},
	{"tsh", constants.TSH},
	{"thyroid", constants.TSH},
	{"glucose", constants.GLU},
	{"fasting", constants.GLU},
	{"blood sugar", constants.GLU},
	{"fbs", constants.GLU},
	{"wbc", constants.WBC},
	{"white blood", constants.WBC},
	{"leukocyte", constants.WBC},
	{"leucocyte", constants.WBC},
	{"platelet", constants.PLT},
	{"plt", constants.PLT},
	{"thrombocyte", constants.PLT},
	{"hemoglobin", constants.HB},
	{"haemoglobin", constants.HB},
	{"hgb", constants.HB},
	{"hb", constants.HB},
}

// Normalize maps a free-text marker name to a canonical code.
// Returns false when no rule matches; callers drop such markers.
func Normalize(rawName string) (constants.Code, bool) {
	name := strings.ToLower(strings.TrimSpace(rawName))
	if name == "" {
		return "", false
	}
	for _, r := range nameRules {
		if strings.Contains(name, r.substr) {
			return r.code, true
		}
	}
	return "", false
}
