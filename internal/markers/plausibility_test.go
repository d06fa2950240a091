package markers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitalis-health/labparse/constants"
	"github.com/vitalis-health/labparse/internal/markers"
)

func TestPlausible_RejectsNonFinite(t *testing.T) {
	assert.False(t, markers.Plausible(constants.GLU, math.NaN()))
	assert.False(t, markers.Plausible(constants.GLU, math.Inf(1)))
	assert.False(t, markers.Plausible(constants.GLU, math.Inf(-1)))
}

func TestPlausible_RejectsYearArtifacts(t *testing.T) {
	for _, v := range []float64{1901, 1999, 2024, 2025, 2099} {
		assert.False(t, markers.Plausible(constants.GLU, v), "value %v", v)
	}
}

// The year interval is open: its endpoints are judged by the per-code
// range alone.
func TestPlausible_YearIntervalEndpoints(t *testing.T) {
	// 1900 and 2100 pass the year check but exceed GLU's range.
	assert.False(t, markers.Plausible(constants.GLU, 1900))
	assert.False(t, markers.Plausible(constants.GLU, 2100))
	// PLT admits 1900; 2100 exceeds its range too.
	assert.True(t, markers.Plausible(constants.PLT, 1900))
	assert.False(t, markers.Plausible(constants.PLT, 2100))
}

func TestPlausible_RangeIsInclusive(t *testing.T) {
	assert.True(t, markers.Plausible(constants.HBA1C, 2))
	assert.True(t, markers.Plausible(constants.HBA1C, 20))
	assert.False(t, markers.Plausible(constants.HBA1C, 1.99))
	assert.False(t, markers.Plausible(constants.HBA1C, 20.01))

	assert.True(t, markers.Plausible(constants.CREAT, 0.1))
	assert.False(t, markers.Plausible(constants.CREAT, 0.05))
}

func TestPlausible_TypicalResults(t *testing.T) {
	assert.True(t, markers.Plausible(constants.HBA1C, 7.2))
	assert.True(t, markers.Plausible(constants.GLU, 125))
	assert.True(t, markers.Plausible(constants.LDL, 150))
	assert.True(t, markers.Plausible(constants.TSH, 2.5))
	assert.True(t, markers.Plausible(constants.HB, 13.5))
	// TG above the year band but inside its own range.
	assert.True(t, markers.Plausible(constants.TG, 2500))
}

func TestPlausible_RejectsOutOfRange(t *testing.T) {
	assert.False(t, markers.Plausible(constants.GLU, 5))     // below
	assert.False(t, markers.Plausible(constants.HBA1C, 72))  // decimal shift
	assert.False(t, markers.Plausible(constants.HB, 135))    // unit confusion
	assert.False(t, markers.Plausible(constants.CHOL, 9000)) // garbage
}
