package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/extract"
	"github.com/vitalis-health/labparse/internal/markers"
	"github.com/vitalis-health/labparse/internal/ocr"
)

// Processor coordinates OCR (text extract) then marker parsing for
// uploaded files.
type Processor struct {
	Logger *slog.Logger
	OCR    extract.TextExtractor
	Parse  *ParseStage

	// OCRTimeout bounds a single extraction run; zero disables the bound.
	OCRTimeout time.Duration
}

func NewProcessor(logger *slog.Logger, ocr extract.TextExtractor, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// FileResult is the outcome of processing one uploaded report.
type FileResult struct {
	Markers    []markers.ValidatedMarker
	Extraction extract.TextExtractionResult
	Debug      ExtractionDebug
}

// ProcessFile extracts text from the file at path and runs the parse
// stage over it. OCR failures are terminal; "no extractable text" and
// hard toolchain failures both map to OCR_FAILED, with the distinction
// preserved in the error message and logs.
func (p *Processor) ProcessFile(ctx context.Context, path, locale string) (FileResult, error) {
	ocrCtx, cancel := common.WithTimeout(ctx, p.OCRTimeout)
	defer cancel()

	res, err := p.OCR.Extract(ocrCtx, path)
	if err != nil {
		if errors.Is(err, ocr.ErrNoText) {
			p.Logger.Warn("processor.ocr.no_text", "path", path, "pages", res.Pages)
			return FileResult{Extraction: res}, common.NewAppError(common.CodeOCRFailed,
				"document contains no extractable text", err)
		}
		p.Logger.Error("processor.ocr.failed", "path", path, "error", err)
		return FileResult{Extraction: res}, common.NewAppError(common.CodeOCRFailed,
			"text extraction failed", err)
	}
	p.Logger.Info("processor.ocr.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
	)

	valid, debug, err := p.Parse.Run(ctx, res.Text, locale)
	if err != nil {
		return FileResult{Extraction: res, Debug: debug}, err
	}
	return FileResult{Markers: valid, Extraction: res, Debug: debug}, nil
}
