// Package logger provides structured logging for the Pulsar client,
// built on zerolog.
//
// Components obtain a tagged logger and log with optional field maps:
//
//	log := logger.WithComponent("oauth2")
//	log.Info("metadata resolved", logger.Fields("issuer", issuerURL))
//
// Package-level Debug/Info/Warn/Error delegate to a global logger that
// can be replaced with SetGlobalLogger.
package logger
