package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownMode, "unknown mode %q", "spiral")

	if err.Code != ErrCodeUnknownMode {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownMode)
	}
	if err.Message != `unknown mode "spiral"` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `UNKNOWN_MODE: unknown mode "spiral"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("toml: line 3: expected '='")
	err := Wrap(ErrCodeConfiguration, cause, "parse config")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() should return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidSeed, "bad"), ErrCodeInvalidSeed, true},
		{"non-matching code", New(ErrCodeInvalidSeed, "bad"), ErrCodeUnknownMode, false},
		{"wrapped by fmt", fmt.Errorf("cmd: %w", New(ErrCodeUnknownMode, "x")), ErrCodeUnknownMode, true},
		{"outer code wins", Wrap(ErrCodeConfiguration, New(ErrCodeInvalidSeed, "inner"), "outer"), ErrCodeConfiguration, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeConfiguration, "x"), true},
		{New(ErrCodeInvalidSeed, "x"), true},
		{New(ErrCodeInvalidTheme, "x"), true},
		{New(ErrCodeUnknownMode, "x"), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := IsConfiguration(tt.err); got != tt.want {
			t.Errorf("IsConfiguration(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsUnknownMode(t *testing.T) {
	if !IsUnknownMode(New(ErrCodeUnknownMode, "spiral")) {
		t.Error("IsUnknownMode should match ErrCodeUnknownMode")
	}
	if IsUnknownMode(New(ErrCodeInvalidInput, "x")) {
		t.Error("IsUnknownMode should not match other codes")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidSeed, "seed is bad")); got != "seed is bad" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
