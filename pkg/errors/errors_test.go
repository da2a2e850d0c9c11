package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "latitude out of range")
			},
			expected: "VALIDATION_ERROR: latitude out of range",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(DatabaseError, "failed to store snapshot", cause)
			},
			expected: "DATABASE_ERROR: failed to store snapshot (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := Wrap(ExternalAPIError, "failed to call OpenWeatherMap", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, New(NotFoundError, "no cached weather").Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		expectedMsg  string
		hasCause     bool
	}{
		{
			name:         "NewValidationError",
			constructor:  func() *AppError { return NewValidationError("longitude out of range") },
			expectedType: ValidationError,
			expectedMsg:  "longitude out of range",
		},
		{
			name:         "NewNotFoundError",
			constructor:  func() *AppError { return NewNotFoundError("no cached weather") },
			expectedType: NotFoundError,
			expectedMsg:  "no cached weather",
		},
		{
			name: "NewLocationUnavailableError",
			constructor: func() *AppError {
				return NewLocationUnavailableError("location unavailable", fmt.Errorf("no fix"))
			},
			expectedType: LocationUnavailableError,
			expectedMsg:  "location unavailable",
			hasCause:     true,
		},
		{
			name:         "NewPermissionDeniedError",
			constructor:  func() *AppError { return NewPermissionDeniedError("location permission denied") },
			expectedType: PermissionDeniedError,
			expectedMsg:  "location permission denied",
		},
		{
			name: "NewExternalAPIError",
			constructor: func() *AppError {
				return NewExternalAPIError("OpenWeatherMap returned status 500", fmt.Errorf("bad gateway"))
			},
			expectedType: ExternalAPIError,
			expectedMsg:  "OpenWeatherMap returned status 500",
			hasCause:     true,
		},
		{
			name: "NewNotificationError",
			constructor: func() *AppError {
				return NewNotificationError("failed to send notification", fmt.Errorf("smtp down"))
			},
			expectedType: NotificationError,
			expectedMsg:  "failed to send notification",
			hasCause:     true,
		},
		{
			name: "NewConfigurationError",
			constructor: func() *AppError {
				return NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
			},
			expectedType: ConfigurationError,
			expectedMsg:  "OPENWEATHERMAP_API_KEY cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()

			assert.Equal(t, tt.expectedType, err.Type)
			assert.Equal(t, tt.expectedMsg, err.Message)
			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ValidationError, "VALIDATION_ERROR"},
		{NotFoundError, "NOT_FOUND_ERROR"},
		{LocationUnavailableError, "LOCATION_UNAVAILABLE"},
		{PermissionDeniedError, "PERMISSION_DENIED"},
		{DatabaseError, "DATABASE_ERROR"},
		{ExternalAPIError, "EXTERNAL_API_ERROR"},
		{NotificationError, "NOTIFICATION_ERROR"},
		{ConfigurationError, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeAndMessageOf_WrappedChain(t *testing.T) {
	appErr := NewExternalAPIError("failed to decode OpenWeatherMap response", nil)
	wrapped := fmt.Errorf("fetch weather: %w", appErr)

	assert.Equal(t, ExternalAPIError, TypeOf(wrapped))
	assert.Equal(t, "failed to decode OpenWeatherMap response", MessageOf(wrapped))
	assert.True(t, IsExternalAPIError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))

	plain := fmt.Errorf("plain failure")
	assert.Equal(t, ErrorTypeUnknown, TypeOf(plain))
	assert.Empty(t, MessageOf(plain))
	assert.Empty(t, MessageOf(nil))
}
