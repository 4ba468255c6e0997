package errors

import (
	stderrors "errors"
	"fmt"
)

// ClientError is the unified client error type.
type ClientError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried by a higher layer.
	Retryable bool `json:"retryable"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *ClientError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *ClientError) WithCause(cause error) *ClientError {
	e.Cause = cause
	return e
}

// New creates a new ClientError with automatic retryable detection.
func New(code ErrorCode, message string) *ClientError {
	return &ClientError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidArgument creates an error for an absent or invalid argument.
func InvalidArgument(reason string) *ClientError {
	return New(ErrCodeInvalidArgument, reason)
}

// Configuration creates an error for a missing or malformed configuration
// parameter.
func Configuration(param, reason string) *ClientError {
	return New(ErrCodeConfiguration, fmt.Sprintf("configuration parameter %q: %s", param, reason))
}

// AuthenticationInit creates an error for a failed provider initialization.
func AuthenticationInit(reason string) *ClientError {
	return New(ErrCodeAuthenticationInit, reason)
}

// Metadata creates an error for a protocol-level metadata retrieval failure.
func Metadata(reason string) *ClientError {
	return New(ErrCodeMetadata, reason)
}

// Connection creates an error for a failed connection.
func Connection(endpoint string) *ClientError {
	return New(ErrCodeConnection, fmt.Sprintf("unable to connect to %s", endpoint))
}

// Timeout creates an error for a timed-out operation.
func Timeout(operation string) *ClientError {
	return New(ErrCodeTimeout, fmt.Sprintf("operation %s timed out", operation))
}

// --- Inspection helpers ---

// AsClientError extracts a *ClientError from an error chain.
func AsClientError(err error) (*ClientError, bool) {
	var ce *ClientError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCode reports whether the error chain contains a ClientError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	if ce, ok := AsClientError(err); ok {
		return ce.Code == code
	}
	return false
}

// IsRetryable reports whether the error chain contains a retryable
// ClientError. Unknown errors are treated as not retryable.
func IsRetryable(err error) bool {
	if ce, ok := AsClientError(err); ok {
		return ce.Retryable
	}
	return false
}
