package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := InvalidArgument("service type must not be nil")
	if !strings.Contains(err.Error(), "INVALID_ARGUMENT") {
		t.Errorf("expected code in message, got %q", err.Error())
	}

	wrapped := Metadata("unexpected status 500").WithCause(stderrors.New("boom"))
	if !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("expected cause in message, got %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("io failure")
	err := AuthenticationInit("unable to retrieve OAuth 2.0 server metadata").WithCause(cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestIsCode(t *testing.T) {
	err := Configuration("connectTimeout", "malformed value")

	if !IsCode(err, ErrCodeConfiguration) {
		t.Error("expected ErrCodeConfiguration")
	}
	if IsCode(err, ErrCodeInvalidArgument) {
		t.Error("did not expect ErrCodeInvalidArgument")
	}
	if IsCode(stderrors.New("plain"), ErrCodeConfiguration) {
		t.Error("plain errors carry no code")
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := Timeout("metadata fetch")
	outer := fmt.Errorf("start provider: %w", inner)

	if !IsCode(outer, ErrCodeTimeout) {
		t.Error("expected code to survive fmt.Errorf wrapping")
	}
}

func TestRetryable(t *testing.T) {
	if !IsRetryable(Connection("broker.example.com:6650")) {
		t.Error("connection errors are retryable")
	}
	if IsRetryable(AuthenticationInit("metadata fetch failed")) {
		t.Error("initialization failures are not retried internally")
	}
	if IsRetryable(InvalidArgument("nil instance")) {
		t.Error("argument errors are not retryable")
	}
}
