package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced in API responses.
const (
	CodeInvalidKey      = "INVALID_KEY"
	CodeParseFailed     = "PARSE_FAILED"
	CodeAIFailed        = "AI_FAILED"
	CodeAIProviderError = "AI_PROVIDER_ERROR"
	CodeAIQuotaExceeded = "AI_QUOTA_EXCEEDED"
	CodeUnsafeResponse  = "UNSAFE_RESPONSE"
	CodeOCRFailed       = "OCR_FAILED"
	CodeUnsupportedFile = "UNSUPPORTED_FILE"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternal        = "INTERNAL"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// AsAppError unwraps err to an *AppError, or wraps it as INTERNAL.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return &AppError{Code: CodeInternal, Message: "internal error", Cause: err}
}

// HTTPStatus maps an error code to the response status.
func HTTPStatus(code string) int {
	switch code {
	case CodeParseFailed:
		return http.StatusUnprocessableEntity
	case CodeAIFailed, CodeBadRequest:
		return http.StatusBadRequest
	case CodeInvalidKey:
		return http.StatusUnauthorized
	case CodeAIQuotaExceeded:
		return http.StatusTooManyRequests
	case CodeAIProviderError, CodeOCRFailed:
		return http.StatusBadGateway
	case CodeUnsafeResponse:
		return http.StatusBadGateway
	case CodeUnsupportedFile:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
