package constants

// Code is the canonical identifier for a supported lab marker.
type Code string

// Stable values (serialized in API responses).
const (
	HBA1C Code = "HBA1C" // glycated hemoglobin, %
	GLU   Code = "GLU"   // glucose, mg/dL
	CHOL  Code = "CHOL"  // total cholesterol, mg/dL
	LDL   Code = "LDL"   // LDL cholesterol, mg/dL
	HDL   Code = "HDL"   // HDL cholesterol, mg/dL
	TG    Code = "TG"    // triglycerides, mg/dL
	CREAT Code = "CREAT" // creatinine, mg/dL
	TSH   Code = "TSH"   // thyroid stimulating hormone, mIU/L
	HB    Code = "HB"    // hemoglobin, g/dL
	WBC   Code = "WBC"   // white blood cells, 10^3/uL
	PLT   Code = "PLT"   // platelets, 10^3/uL
)

var allCodes = []Code{
	HBA1C, GLU, CHOL, LDL, HDL, TG, CREAT, TSH, HB, WBC, PLT,
}

// PlausibleRange is the medically valid interval for a marker code.
// Values outside [Min, Max] are artifacts of extraction, not results.
type PlausibleRange struct {
	Min float64
	Max float64
}

// plausibleRanges is read-only after init; safe for concurrent reads.
var plausibleRanges = map[Code]PlausibleRange{
	HBA1C: {Min: 2, Max: 20},
	GLU:   {Min: 20, Max: 1000},
	CHOL:  {Min: 50, Max: 600},
	LDL:   {Min: 10, Max: 500},
	HDL:   {Min: 5, Max: 150},
	TG:    {Min: 20, Max: 3000},
	CREAT: {Min: 0.1, Max: 20},
	TSH:   {Min: 0.01, Max: 150},
	HB:    {Min: 3, Max: 25},
	WBC:   {Min: 0.5, Max: 200},
	PLT:   {Min: 5, Max: 2000},
}

// RangeFor returns the plausibility interval registered for code.
func RangeFor(code Code) (PlausibleRange, bool) {
	r, ok := plausibleRanges[code]
	return r, ok
}

// CodesAsStringSlice returns the vocabulary in declaration order.
func CodesAsStringSlice() []string {
	result := make([]string, len(allCodes))
	for i, c := range allCodes {
		result[i] = string(c)
	}
	return result
}
