package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/llm"
	"github.com/vitalis-health/labparse/internal/markers"
)

// ExtractionDebug records how the validated markers were obtained. It is
// echoed to the client and never influences the clinical pipeline.
type ExtractionDebug struct {
	Source    string   `json:"source"` // "ai" | "fallback"
	RawCount  int      `json:"rawCount"`
	Dropped   int      `json:"dropped"`
	Notes     []string `json:"notes,omitempty"`
	ElapsedMS int64    `json:"elapsedMs"`
}

// ParseStage turns raw report text into validated markers: AI extraction,
// then the deterministic normalize/plausibility gauntlet. On AI failure or
// an empty AI result the regex fallback parser runs through the exact same
// gauntlet, so the two paths can never diverge in validation behavior.
type ParseStage struct {
	Logger    *slog.Logger
	Completer llm.Completer
}

func NewParseStage(logger *slog.Logger, completer llm.Completer) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{Logger: logger, Completer: completer}
}

var reDecimalComma = regexp.MustCompile(`(\d),(\d)`)

// NormalizeLocale rewrites decimal commas to dots for locales that use
// them ("de"), before any extraction sees the text.
func NormalizeLocale(text, locale string) string {
	if locale == "de" {
		return reDecimalComma.ReplaceAllString(text, "$1.$2")
	}
	return text
}

// Run parses text into validated markers. A total absence of valid
// markers is the only user-visible failure; individual rejects are
// logged and dropped silently.
func (p *ParseStage) Run(ctx context.Context, text, locale string) ([]markers.ValidatedMarker, ExtractionDebug, error) {
	start := time.Now()
	text = NormalizeLocale(text, locale)

	debug := ExtractionDebug{Source: "ai"}

	raws, notes, err := p.extractWithAI(ctx, text)
	debug.Notes = append(debug.Notes, notes...)
	if err != nil || len(raws) == 0 {
		if err != nil {
			p.Logger.Warn("parse.ai_extraction_failed", "error", err)
			debug.Notes = append(debug.Notes, "ai extraction failed: "+err.Error())
		} else {
			debug.Notes = append(debug.Notes, "ai extraction returned no markers")
		}
		raws = FallbackParse(text)
		debug.Source = "fallback"
	}
	debug.RawCount = len(raws)

	valid := validateRaw(p.Logger, raws, &debug)
	debug.Dropped = len(raws) - len(valid)
	debug.ElapsedMS = time.Since(start).Milliseconds()

	p.Logger.Info("parse.done",
		"source", debug.Source,
		"raw", debug.RawCount,
		"valid", len(valid),
		"dropped", debug.Dropped,
		"elapsed_ms", debug.ElapsedMS,
	)

	if len(valid) == 0 {
		return nil, debug, common.NewAppError(common.CodeParseFailed,
			"no valid lab markers could be extracted from the text", nil)
	}
	return valid, debug, nil
}

func (p *ParseStage) extractWithAI(ctx context.Context, text string) ([]markers.RawMarker, []string, error) {
	schema := llm.BuildMarkersJSONSchema()
	schemaJSON, _ := json.MarshalIndent(schema, "", "  ")

	raw, err := p.Completer.Complete(ctx, llm.CompletionRequest{
		System: llm.BuildExtractionSystemPrompt() + "\n\nJSON Schema:\n" + string(schemaJSON),
		User:   llm.BuildExtractionUserPrompt(text),
	})
	if err != nil {
		return nil, nil, err
	}

	cleaned, dropped, err := llm.SanitizeExtraction(raw, p.Logger)
	if err != nil {
		return nil, dropped, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		return nil, dropped, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	var out struct {
		Markers []markers.RawMarker `json:"markers"`
	}
	if err := json.Unmarshal(cleaned, &out); err != nil {
		return nil, dropped, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	return out.Markers, dropped, nil
}

// validateRaw runs the deterministic gauntlet: coerce value, normalize
// name to a code, check plausibility. Markers failing any step are
// dropped, never retained in corrected or clamped form.
func validateRaw(logger *slog.Logger, raws []markers.RawMarker, debug *ExtractionDebug) []markers.ValidatedMarker {
	if logger == nil {
		logger = slog.Default()
	}
	valid := make([]markers.ValidatedMarker, 0, len(raws))
	for _, rm := range raws {
		code, ok := markers.Normalize(rm.Name)
		if !ok {
			logger.Debug("parse.marker.unknown_name", "name", rm.Name)
			continue
		}
		value, ok := CoerceValue(rm.Value)
		if !ok {
			logger.Debug("parse.marker.non_numeric", "name", rm.Name, "value", rm.Value)
			continue
		}
		if !markers.Plausible(code, value) {
			logger.Debug("parse.marker.implausible", "code", code, "value", value)
			debug.Notes = append(debug.Notes, fmt.Sprintf("dropped implausible %s", code))
			continue
		}
		valid = append(valid, markers.ValidatedMarker{
			Name:     strings.TrimSpace(rm.Name),
			Code:     code,
			Value:    value,
			Unit:     strings.TrimSpace(rm.Unit),
			RefRange: strings.TrimSpace(rm.RefRange),
		})
	}
	return valid
}

// CoerceValue converts an untrusted extraction value (JSON number or
// numeric string) to a float64. It never guesses: anything that does not
// parse cleanly is rejected.
func CoerceValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
