package extract

import (
	"context"
	"time"

	"github.com/vitalis-health/labparse/constants"
)

// TextExtractor is the OCR collaborator: file -> text. Implementations
// must report "no extractable text" as an error distinct from hard
// toolchain failures.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType constants.Format
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}
