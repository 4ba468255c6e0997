// Package errors provides structured error handling for the Pulsar client.
//
// It implements typed errors with machine-readable codes so callers can
// distinguish invalid arguments, configuration problems, and authentication
// initialization failures without string matching:
//
//	if errors.IsCode(err, errors.ErrCodeConfiguration) {
//	    // malformed or missing configuration parameter
//	}
package errors
