package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/llm"
	"github.com/vitalis-health/labparse/internal/markers"
	"github.com/vitalis-health/labparse/internal/pipeline"
)

func summaryInput() []markers.RawMarker {
	return []markers.RawMarker{
		{Name: "HbA1c", Value: 8.1, Unit: "%", RefRange: "4.0-6.0"},
		{Name: "Glucose", Value: 125.0, Unit: "mg/dL", RefRange: "70-99"},
	}
}

func TestSummaryStage_AssemblesDocument(t *testing.T) {
	fake := &fakeCompleter{response: []byte(`{"summary":"Two values are above their reference ranges.","markerNotes":[{"code":"HBA1C","note":"above range"}]}`)}
	stage := pipeline.NewSummaryStage(testLogger, fake)

	doc, err := stage.Run(context.Background(), summaryInput(), "en")
	require.NoError(t, err)

	assert.Equal(t, "Two values are above their reference ranges.", doc["summary"])

	enriched, ok := doc["enrichedMarkers"].([]markers.EnrichedMarker)
	require.True(t, ok)
	require.Len(t, enriched, 2)
	assert.True(t, enriched[0].ImmediateAttention)

	assert.Equal(t, "seek evaluation promptly", doc["overallRecommendation"])
	assert.Equal(t, 30, doc["overallRecheckDays"])
	assert.Equal(t, true, doc["immediateAttention"])
	assert.NotEmpty(t, doc["disclaimer"])
	assert.NotEmpty(t, doc["legalNotice"])
	assert.Equal(t, 1, fake.calls)
}

// Deterministic fields always overwrite model output under the same keys.
func TestSummaryStage_ModelCannotOverrideDeterministicFields(t *testing.T) {
	fake := &fakeCompleter{response: []byte(`{"summary":"ok","overallRecommendation":"all clear","immediateAttention":false,"disclaimer":"none needed"}`)}
	stage := pipeline.NewSummaryStage(testLogger, fake)

	doc, err := stage.Run(context.Background(), summaryInput(), "en")
	require.NoError(t, err)
	assert.Equal(t, "seek evaluation promptly", doc["overallRecommendation"])
	assert.Equal(t, true, doc["immediateAttention"])
	assert.NotEqual(t, "none needed", doc["disclaimer"])
}

func TestSummaryStage_EmptyInput(t *testing.T) {
	stage := pipeline.NewSummaryStage(testLogger, &fakeCompleter{})
	_, err := stage.Run(context.Background(), nil, "en")
	requireAppCode(t, err, common.CodeAIFailed)
}

func TestSummaryStage_NoValidMarkers(t *testing.T) {
	stage := pipeline.NewSummaryStage(testLogger, &fakeCompleter{})
	_, err := stage.Run(context.Background(), []markers.RawMarker{
		{Name: "Vitamin D", Value: 30.0},
	}, "en")
	requireAppCode(t, err, common.CodeParseFailed)
}

func TestSummaryStage_ErrorTaxonomy(t *testing.T) {
	cases := []struct {
		cause error
		code  string
	}{
		{llm.ErrInvalidKey, common.CodeInvalidKey},
		{llm.ErrQuotaExceeded, common.CodeAIQuotaExceeded},
		{llm.ErrProviderError, common.CodeAIProviderError},
		{llm.ErrEmptyResponse, common.CodeAIFailed},
		{errors.New("dial tcp: timeout"), common.CodeAIFailed},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			fake := &fakeCompleter{err: fmt.Errorf("complete: %w", tc.cause)}
			stage := pipeline.NewSummaryStage(testLogger, fake)
			_, err := stage.Run(context.Background(), summaryInput(), "en")
			requireAppCode(t, err, tc.code)
		})
	}
}

func TestSummaryStage_UnsafeResponseRejected(t *testing.T) {
	fake := &fakeCompleter{response: []byte(`{"summary":"You have diabetes and you must take insulin."}`)}
	stage := pipeline.NewSummaryStage(testLogger, fake)
	_, err := stage.Run(context.Background(), summaryInput(), "en")
	requireAppCode(t, err, common.CodeUnsafeResponse)
}

func TestSummaryStage_NonObjectResponse(t *testing.T) {
	fake := &fakeCompleter{response: []byte(`Here is your summary.`)}
	stage := pipeline.NewSummaryStage(testLogger, fake)
	_, err := stage.Run(context.Background(), summaryInput(), "en")
	requireAppCode(t, err, common.CodeAIFailed)
}

func TestSummaryStage_FencedResponseAccepted(t *testing.T) {
	fake := &fakeCompleter{response: []byte("```json\n{\"summary\":\"ok\"}\n```")}
	stage := pipeline.NewSummaryStage(testLogger, fake)
	doc, err := stage.Run(context.Background(), summaryInput(), "en")
	require.NoError(t, err)
	assert.Equal(t, "ok", doc["summary"])
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr), "error %v", err)
	assert.Equal(t, code, appErr.Code)
}
