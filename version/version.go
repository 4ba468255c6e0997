// Package version provides build version information for the Pulsar client.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/AradhyaSharma31/pulsar/version.Version=1.0.0"
package version

import "fmt"

var (
	// These variables are set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
)

// UserAgent returns the user-agent string sent by outbound HTTP clients.
func UserAgent() string {
	return fmt.Sprintf("Pulsar-Go-v%s", Version)
}

// String returns a human-readable version string.
func String() string {
	if GitCommit != "" {
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	}
	return Version
}
