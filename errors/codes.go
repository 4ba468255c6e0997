package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument and configuration errors (caller mistakes, not retryable)
const (
	// ErrCodeInvalidArgument indicates an absent or invalid argument, such as
	// registering a nil service or an empty name.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeConfiguration indicates a missing required configuration
	// parameter or one with a malformed value (duration, URL).
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
)

// Authentication errors
const (
	// ErrCodeAuthenticationInit indicates that an authentication provider
	// failed to initialize, typically because remote metadata could not be
	// retrieved. Fatal to the provider's readiness; not retried internally.
	ErrCodeAuthenticationInit ErrorCode = "AUTHENTICATION_INIT_FAILED"
	// ErrCodeAuthentication indicates an authentication failure after
	// initialization (rejected token exchange, expired credentials).
	ErrCodeAuthentication ErrorCode = "AUTHENTICATION_FAILED"
)

// Transport errors (retryable by a higher layer)
const (
	// ErrCodeTimeout indicates a network operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeConnection indicates a failed connection to a remote endpoint.
	ErrCodeConnection ErrorCode = "CONNECTION_FAILED"
	// ErrCodeMetadata indicates a protocol-level failure retrieving remote
	// metadata (unexpected status, undecodable body).
	ErrCodeMetadata ErrorCode = "METADATA_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:    true,
	ErrCodeConnection: true,
}

// IsRetryableCode reports whether errors with this code may be retried by a
// higher layer. Initialization failures are deliberately not retryable here.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
