package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/extract"
	"github.com/vitalis-health/labparse/internal/ocr"
	"github.com/vitalis-health/labparse/internal/pipeline"
)

type fakeExtractor struct {
	result extract.TextExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	return f.result, f.err
}

func TestProcessor_FileToMarkers(t *testing.T) {
	ex := &fakeExtractor{result: extract.TextExtractionResult{
		Text:   "HbA1c: 7.2 (ref: 4.0-6.0)\nLDL: 150",
		Pages:  1,
		Method: "pdf-text",
	}}
	fake := &fakeCompleter{err: errors.New("down")} // force fallback path
	proc := pipeline.NewProcessor(testLogger, ex, pipeline.NewParseStage(testLogger, fake))

	res, err := proc.ProcessFile(context.Background(), "/tmp/report.pdf", "")
	require.NoError(t, err)
	require.Len(t, res.Markers, 2)
	assert.Equal(t, "pdf-text", res.Extraction.Method)
	assert.Equal(t, "fallback", res.Debug.Source)
}

func TestProcessor_NoExtractableText(t *testing.T) {
	ex := &fakeExtractor{err: ocr.ErrNoText}
	proc := pipeline.NewProcessor(testLogger, ex, pipeline.NewParseStage(testLogger, &fakeCompleter{}))

	_, err := proc.ProcessFile(context.Background(), "/tmp/blank.pdf", "")
	requireAppCode(t, err, common.CodeOCRFailed)
	assert.Contains(t, err.Error(), "no extractable text")
}

func TestProcessor_HardOCRFailure(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("pdftotext: exit status 1")}
	proc := pipeline.NewProcessor(testLogger, ex, pipeline.NewParseStage(testLogger, &fakeCompleter{}))

	_, err := proc.ProcessFile(context.Background(), "/tmp/corrupt.pdf", "")
	requireAppCode(t, err, common.CodeOCRFailed)
	assert.Contains(t, err.Error(), "text extraction failed")
}
