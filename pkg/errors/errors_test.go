package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "calculator not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "calculator not found" {
		t.Errorf("expected message 'calculator not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("sink offline")
	ctx := map[string]any{
		"name":     "mediapipe.PassThroughCalculator",
		"registry": "calculators",
	}

	err := WrapWithContext(ErrCodeUnavailable, "publish failed", cause, ctx)

	if err.Code != ErrCodeUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeUnavailable, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["registry"] != "calculators" {
		t.Errorf("expected registry to be calculators")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "already registered",
			err:      New(ErrCodeAlreadyRegistered, "name a.B already registered"),
			expected: "[ALREADY_REGISTERED] name a.B already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	notFound := New(ErrCodeNotFound, "missing")
	nested := Wrap(ErrCodeInternal, "outer", notFound)
	fmtWrapped := fmt.Errorf("context: %w", notFound)

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"nil error", nil, ErrCodeNotFound, false},
		{"plain error", errors.New("boom"), ErrCodeNotFound, false},
		{"direct match", notFound, ErrCodeNotFound, true},
		{"direct mismatch", notFound, ErrCodeInternal, false},
		{"nested match", nested, ErrCodeNotFound, true},
		{"outer match", nested, ErrCodeInternal, true},
		{"fmt wrapped", fmtWrapped, ErrCodeNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code, got %s", got)
	}
	if got := CodeOf(New(ErrCodeAlreadyRegistered, "dup")); got != ErrCodeAlreadyRegistered {
		t.Errorf("expected %s, got %s", ErrCodeAlreadyRegistered, got)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeAlreadyRegistered,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
