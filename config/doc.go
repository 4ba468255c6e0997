// Package config loads client configuration from YAML files with
// environment-variable overrides.
//
// Values in the file can be overridden by environment variables prefixed
// with PULSAR_, with dots replaced by underscores: service_url becomes
// PULSAR_SERVICE_URL, authentication.plugin becomes
// PULSAR_AUTHENTICATION_PLUGIN. An optional .env file can be loaded first.
package config
