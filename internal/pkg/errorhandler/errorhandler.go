package errorhandler

import (
	"context"
	"net/http"

	"github.com/zenora/zenora-api/internal/pkg/logger"
	"github.com/zenora/zenora-api/internal/pkg/response"
)

// HandleError logs the error with request context and sends the error envelope.
// 5xx responses never echo err to the client.
func HandleError(ctx context.Context, w http.ResponseWriter, status int, code, message string, err error) {
	event := logger.FromContext(ctx).Error()
	if status < http.StatusInternalServerError {
		event = logger.FromContext(ctx).Warn()
	}

	event.
		Str("error_code", code).
		Str("error_message", message).
		Int("status_code", status).
		Err(err).
		Msg("Request error")

	response.Error(w, status, code, message)
}

// Internal logs err and sends a generic 500
func Internal(ctx context.Context, w http.ResponseWriter, err error) {
	logger.FromContext(ctx).Error().Err(err).Msg("Unhandled error")
	response.InternalError(w)
}

// LogValidationError logs validation errors with details
func LogValidationError(ctx context.Context, fieldErrors map[string]string) {
	logger.FromContext(ctx).Debug().
		Interface("validation_errors", fieldErrors).
		Msg("Validation error")
}

// LogExternalServiceError logs errors from external service calls
func LogExternalServiceError(ctx context.Context, service string, endpoint string, statusCode int, err error, body string) {
	logger.FromContext(ctx).Error().
		Str("external_service", service).
		Str("endpoint", endpoint).
		Int("status_code", statusCode).
		Err(err).
		Str("response_body", truncateString(body, 1000)).
		Msg("External service error")
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "...<truncated>"
	}
	return s
}
