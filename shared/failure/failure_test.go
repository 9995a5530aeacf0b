package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dost/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "ResourceRestrictedError", failure: failure.ResourceRestrictedError, code: http.StatusForbidden},
		{name: "DemoModeError", failure: failure.DemoModeError, code: http.StatusServiceUnavailable},
		{name: "InvalidCredentialsError", failure: failure.InvalidCredentialsError, code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    int
		message string
	}{
		{name: "BadRequest", result: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest, message: "validation failed"},
		{name: "BadRequestFromString", result: failure.BadRequestFromString("custom bad request"), code: http.StatusBadRequest, message: "custom bad request"},
		{name: "Unauthorized", result: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, message: "token expired"},
		{name: "InternalError", result: failure.InternalError(errors.New("database connection failed")), code: http.StatusInternalServerError, message: "database connection failed"},
		{name: "Unimplemented", result: failure.Unimplemented("GetUserByID"), code: http.StatusNotImplemented, message: "GetUserByID"},
		{name: "NotFound", result: failure.NotFound("User not found"), code: http.StatusNotFound, message: "User not found"},
		{name: "Conflict", result: failure.Conflict("Email already exists"), code: http.StatusConflict, message: "Email already exists"},
		{name: "Forbidden", result: failure.Forbidden("Access denied"), code: http.StatusForbidden, message: "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
	if failure.WriteFailed(nil) != nil {
		t.Error("expected WriteFailed(nil) to be nil")
	}
}

func TestWriteFailed(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "plain error becomes bad gateway",
			input:    errors.New("connection reset"),
			expected: http.StatusBadGateway,
		},
		{
			name:     "existing failure keeps its code",
			input:    failure.NotFound("Room not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure keeps its code",
			input:    fmt.Errorf("updating status: %w", failure.Conflict("already approved")),
			expected: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.WriteFailed(tt.input)
			if failure.GetCode(result) != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, failure.GetCode(result))
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("context: %w", failure.BadRequestFromString("test")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
