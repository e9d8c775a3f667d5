package utils

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidVideoID       ErrorCode = "INVALID_VIDEO_ID"
	ErrorCodeBrandingLookupFailed ErrorCode = "BRANDING_LOOKUP_FAILED"
	ErrorCodeUnauthorized         ErrorCode = "UNAUTHORIZED"
	ErrorCodeInternalError        ErrorCode = "INTERNAL_ERROR"
	ErrorCodeValidationError      ErrorCode = "VALIDATION_ERROR"
)

type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, statusCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidationError, message, http.StatusBadRequest, details)
}

func NewInvalidVideoIDError(input string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidVideoID,
		"The provided text is not a valid youtube url or video ID",
		http.StatusBadRequest,
		map[string]interface{}{
			"expected_format": "https://www.youtube.com/watch?v=<id>, https://youtu.be/<id> or an 11 character video ID",
			"provided":        input,
		},
	)
}

// NewBrandingLookupError hides the upstream cause from API clients; callers log it.
func NewBrandingLookupError(videoID string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeBrandingLookupFailed,
		"Failed to fetch branding data from DeArrow",
		http.StatusBadGateway,
		map[string]interface{}{
			"video_id": videoID,
		},
	)
}

func NewUnauthorizedError() *AppError {
	return NewError(
		ErrorCodeUnauthorized,
		"Invalid or missing authentication",
		http.StatusUnauthorized,
	)
}

func NewInternalError() *AppError {
	return NewError(
		ErrorCodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
}
