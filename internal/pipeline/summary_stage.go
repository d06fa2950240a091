package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/llm"
	"github.com/vitalis-health/labparse/internal/markers"
	"github.com/vitalis-health/labparse/internal/safety"
)

const (
	disclaimer = "This summary is generated automatically and is not a diagnosis. " +
		"Always discuss your results with a qualified clinician."
	legalNotice = "This service does not provide medical advice. Reference ranges " +
		"and assessments are informational only."
)

// SummaryStage enriches validated markers deterministically, asks the
// completion API for a patient-friendly summary, screens the generated
// text, and assembles the response document.
type SummaryStage struct {
	Logger    *slog.Logger
	Completer llm.Completer
}

func NewSummaryStage(logger *slog.Logger, completer llm.Completer) *SummaryStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryStage{Logger: logger, Completer: completer}
}

// Run accepts raw or already-validated markers; both go through the same
// normalize/validate gauntlet, which is idempotent for validated input.
func (s *SummaryStage) Run(ctx context.Context, raws []markers.RawMarker, language string) (map[string]any, error) {
	start := time.Now()
	if len(raws) == 0 {
		return nil, common.NewAppError(common.CodeAIFailed, "no markers supplied", nil)
	}

	debug := ExtractionDebug{Source: "client", RawCount: len(raws)}
	valid := validateRaw(s.Logger, raws, &debug)
	debug.Dropped = len(raws) - len(valid)
	if len(valid) == 0 {
		return nil, common.NewAppError(common.CodeParseFailed,
			"no valid lab markers in request", nil)
	}

	enriched := markers.EnrichAll(valid)
	agg := markers.AggregateMarkers(enriched)

	enrichedJSON, err := json.Marshal(enriched)
	if err != nil {
		return nil, common.NewAppError(common.CodeInternal, "encode markers", err)
	}

	generated, err := s.Completer.Complete(ctx, llm.CompletionRequest{
		System: llm.BuildSummarySystemPrompt(language),
		User:   llm.BuildSummaryUserPrompt(enrichedJSON),
	})
	if err != nil {
		return nil, classifyCompletionError(err)
	}

	if err := safety.Scan(generated); err != nil {
		s.Logger.Error("summary.unsafe_response", "error", err)
		return nil, err
	}

	// The generated document is untrusted: it must decode to a JSON
	// object or the request fails as a malformed AI response.
	var doc map[string]any
	if err := json.Unmarshal(llm.StripCodeFences(generated), &doc); err != nil {
		return nil, common.NewAppError(common.CodeAIFailed,
			"summary response is not a JSON object", err)
	}

	debug.ElapsedMS = time.Since(start).Milliseconds()

	// Deterministic fields overwrite any model output under the same keys.
	doc["enrichedMarkers"] = enriched
	doc["overallRecommendation"] = agg.Recommendation
	doc["overallRecheckDays"] = agg.RecheckDays
	doc["immediateAttention"] = agg.ImmediateAttention
	doc["overallConfidence"] = agg.Confidence
	doc["disclaimer"] = disclaimer
	doc["legalNotice"] = legalNotice
	doc["extractionDebug"] = debug

	s.Logger.Info("summary.done",
		"markers", len(enriched),
		"recheck_days", agg.RecheckDays,
		"immediate", agg.ImmediateAttention,
		"elapsed_ms", debug.ElapsedMS,
	)
	return doc, nil
}

// classifyCompletionError maps llm error kinds onto the API taxonomy.
func classifyCompletionError(err error) error {
	switch {
	case errors.Is(err, llm.ErrInvalidKey):
		return common.NewAppError(common.CodeInvalidKey, "completion api rejected credentials", err)
	case errors.Is(err, llm.ErrQuotaExceeded):
		return common.NewAppError(common.CodeAIQuotaExceeded, "completion api quota exceeded", err)
	case errors.Is(err, llm.ErrProviderError):
		return common.NewAppError(common.CodeAIProviderError, "completion api provider error", err)
	case errors.Is(err, llm.ErrEmptyResponse), errors.Is(err, llm.ErrMalformedResponse):
		return common.NewAppError(common.CodeAIFailed, "completion api returned unusable response", err)
	default:
		return common.NewAppError(common.CodeAIFailed, "completion api call failed", err)
	}
}
