package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application error types to HTTP responses
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		s.logger.Error("Unhandled error", ports.F("path", c.FullPath()), ports.F("error", err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errors.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errors.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errors.PermissionDeniedError:
		statusCode = http.StatusForbidden
		message = appErr.Message
	case errors.LocationUnavailableError:
		statusCode = http.StatusServiceUnavailable
		message = appErr.Message
	case errors.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errors.NotificationError:
		statusCode = http.StatusServiceUnavailable
		message = "Unable to send notification"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		s.logger.Error("Request failed", ports.F("path", c.FullPath()), ports.F("error", err))
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
