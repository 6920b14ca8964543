package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "error without wrapped error",
			appErr:   ErrInvalidImage,
			expected: "Invalid image data",
		},
		{
			name: "error with wrapped error",
			appErr: &AppError{
				Code:       "TEST_ERROR",
				Message:    "Test message",
				StatusCode: 500,
				Err:        errors.New("underlying error"),
			},
			expected: "Test message: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	appErr := &AppError{
		Code:       "TEST",
		Message:    "test",
		StatusCode: 500,
		Err:        underlying,
	}

	if got := appErr.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}

	if got := ErrInvalidImage.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestAppError_WithError(t *testing.T) {
	underlying := errors.New("decode failed")
	wrapped := ErrInvalidImage.WithError(underlying)

	if wrapped == ErrInvalidImage {
		t.Fatal("WithError must return a copy, not mutate the catalog entry")
	}
	if wrapped.Code != ErrInvalidImage.Code || wrapped.StatusCode != ErrInvalidImage.StatusCode {
		t.Errorf("WithError changed code or status: %+v", wrapped)
	}
	if !errors.Is(wrapped, underlying) {
		t.Error("wrapped error should match the underlying error via errors.Is")
	}
}

func TestDetectionSentinels(t *testing.T) {
	err := fmt.Errorf("predict: %w", ErrNoFaceDetected)
	if !errors.Is(err, ErrNoFaceDetected) {
		t.Error("wrapped sentinel should match via errors.Is")
	}
	if errors.Is(err, ErrNoEmotionScores) {
		t.Error("sentinels must be distinct")
	}
}
