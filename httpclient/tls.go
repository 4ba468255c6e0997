package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// buildTLSConfig creates a *tls.Config trusting the certificates in the
// given PEM file. Returns nil for an empty path (system roots).
func buildTLSConfig(trustCertsFilePath string) (*tls.Config, error) {
	if trustCertsFilePath == "" {
		return nil, nil
	}

	pem, err := os.ReadFile(trustCertsFilePath)
	if err != nil {
		return nil, fmt.Errorf("httpclient: failed to read trust certs file: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("httpclient: failed to parse trust certs file %q", trustCertsFilePath)
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}
