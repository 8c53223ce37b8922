package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   NotFound("submission"),
			expected: "NOT_FOUND: submission not found",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("internal error", errors.New("mongo unreachable")),
			expected: "INTERNAL_ERROR: internal error (caused by: mongo unreachable)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConstructors_Status(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", Validation("invalid", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad json"), CodeInvalidInput, http.StatusBadRequest},
		{"too large", PayloadTooLarge(1024), CodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"timeout", Timeout("slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("archive"), CodeUnavailable, http.StatusServiceUnavailable},
		{"bad gateway", BadGateway("backend", errors.New("500")), CodeBadGateway, http.StatusBadGateway},
		{"unauthorized", Unauthorized("bad signature"), CodeUnauthorized, http.StatusUnauthorized},
		{"rate limited", RateLimited(), CodeRateLimited, http.StatusTooManyRequests},
		{"media type", UnsupportedMediaType("application/json"), CodeUnsupportedType, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code || tt.err.StatusCode() != tt.status {
				t.Errorf("got %s/%d, want %s/%d", tt.err.Code, tt.err.StatusCode(), tt.code, tt.status)
			}
		})
	}
}

func TestBadGateway_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := BadGateway("backend", cause)

	if !errors.Is(err, cause) {
		t.Error("expected BadGateway to unwrap to its cause")
	}
}

func TestAsAppError(t *testing.T) {
	original := InvalidInput("bad kind")
	wrapped := fmt.Errorf("handler: %w", original)

	if got := AsAppError(wrapped); got != original {
		t.Errorf("AsAppError did not find the wrapped AppError")
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError(wrapped) = false")
	}

	plain := AsAppError(errors.New("boom"))
	if plain.Code != CodeInternal || plain.StatusCode() != http.StatusInternalServerError {
		t.Errorf("plain error mapped to %s/%d", plain.Code, plain.StatusCode())
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Validation("validation failed", map[string]any{"errors": []string{"Campo obrigatorio: name"}})

	if writeErr := WriteError(rec, err); writeErr != nil {
		t.Fatalf("WriteError() error = %v", writeErr)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rec.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Code != CodeValidation || body.Details == nil {
		t.Errorf("unexpected body: %+v", body)
	}
}
