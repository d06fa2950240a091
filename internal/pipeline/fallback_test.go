package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalis-health/labparse/internal/pipeline"
)

func TestFallbackParse_TypicalReport(t *testing.T) {
	text := "HbA1c: 7.2 (ref: 4.0-6.0)\nGlucose Fasting: 125 mg/dL\nLDL: 150\n"
	raws := pipeline.FallbackParse(text)
	require.Len(t, raws, 3)

	assert.Equal(t, "HbA1c", raws[0].Name)
	assert.Equal(t, "7.2", raws[0].Value)
	assert.Equal(t, "4.0-6.0", raws[0].RefRange)

	assert.Equal(t, "Glucose Fasting", raws[1].Name)
	assert.Equal(t, "125", raws[1].Value)
	assert.Equal(t, "mg/dL", raws[1].Unit)

	assert.Equal(t, "LDL", raws[2].Name)
	assert.Equal(t, "150", raws[2].Value)
}

func TestFallbackParse_RefVariants(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Cholesterol: 240 mg/dL ref: <200", "<200"},
		{"TSH 5.6 mIU/L normal: 0.4-4.0", "0.4-4.0"},
		{"Creatinine 1.4 mg/dL (0.6 to 1.2)", "0.6 to 1.2"},
	}
	for _, tc := range cases {
		raws := pipeline.FallbackParse(tc.line)
		require.Len(t, raws, 1, "line %q", tc.line)
		assert.Equal(t, tc.want, raws[0].RefRange, "line %q", tc.line)
	}
}

func TestFallbackParse_SkipsProse(t *testing.T) {
	text := "Patient Laboratory Report\n\nResults reviewed by the laboratory.\n"
	raws := pipeline.FallbackParse(text)
	assert.Empty(t, raws)
}
