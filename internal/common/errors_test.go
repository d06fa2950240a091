package common_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitalis-health/labparse/internal/common"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := common.NewAppError(common.CodeOCRFailed, "extraction failed", cause)

	assert.Equal(t, "OCR_FAILED: extraction failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := common.NewAppError(common.CodeBadRequest, "text is required", nil)
	assert.Equal(t, "BAD_REQUEST: text is required", bare.Error())
}

func TestAsAppError(t *testing.T) {
	appErr := common.NewAppError(common.CodeParseFailed, "nope", nil)
	assert.Same(t, appErr, common.AsAppError(appErr))

	wrapped := fmt.Errorf("handler: %w", appErr)
	assert.Same(t, appErr, common.AsAppError(wrapped))

	plain := common.AsAppError(errors.New("boom"))
	assert.Equal(t, common.CodeInternal, plain.Code)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[string]int{
		common.CodeParseFailed:     http.StatusUnprocessableEntity,
		common.CodeAIFailed:        http.StatusBadRequest,
		common.CodeBadRequest:      http.StatusBadRequest,
		common.CodeInvalidKey:      http.StatusUnauthorized,
		common.CodeAIQuotaExceeded: http.StatusTooManyRequests,
		common.CodeAIProviderError: http.StatusBadGateway,
		common.CodeOCRFailed:       http.StatusBadGateway,
		common.CodeUnsafeResponse:  http.StatusBadGateway,
		common.CodeUnsupportedFile: http.StatusUnsupportedMediaType,
		common.CodeInternal:        http.StatusInternalServerError,
		"SOMETHING_ELSE":           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, common.HTTPStatus(code), "code %s", code)
	}
}
