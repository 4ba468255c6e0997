package oauth2

import (
	"testing"
	"time"

	"github.com/AradhyaSharma31/pulsar/errors"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"PT10S", 10 * time.Second},
		{"pt10s", 10 * time.Second},
		{"PT30S", 30 * time.Second},
		{"PT1M30S", 90 * time.Second},
		{"PT2H", 2 * time.Hour},
		{"P1D", 24 * time.Hour},
		{"P1DT2H3M4S", 24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second},
		{"PT0.5S", 500 * time.Millisecond},
		{"PT0,5S", 500 * time.Millisecond},
		{"-PT10S", -10 * time.Second},
		{"+PT10S", 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseISODuration(tt.in)
			if err != nil {
				t.Fatalf("parseISODuration(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseISODuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseISODurationMalformed(t *testing.T) {
	for _, in := range []string{
		"", "P", "PT", "10S", "PTXS", "PT1M2H", "P1H", "PT1.5M", "PT1SS", "PT1S2",
	} {
		t.Run(in, func(t *testing.T) {
			if _, err := parseISODuration(in); err == nil {
				t.Errorf("expected error for %q", in)
			}
		})
	}
}

func TestParseDurationAcceptsGoStyle(t *testing.T) {
	got, err := parseDuration("45s")
	if err != nil {
		t.Fatalf("parseDuration failed: %v", err)
	}
	if got != 45*time.Second {
		t.Errorf("expected 45s, got %v", got)
	}
}

func TestParseParameterDuration(t *testing.T) {
	params := map[string]string{
		ParamConnectTimeout: "PT5S",
		ParamReadTimeout:    "not-a-duration",
	}

	d, err := parseParameterDuration(params, ParamConnectTimeout)
	if err != nil || d != 5*time.Second {
		t.Errorf("expected 5s, got %v err=%v", d, err)
	}

	// Absent parameter yields zero with no error (caller defaults).
	d, err = parseParameterDuration(params, "somethingElse")
	if err != nil || d != 0 {
		t.Errorf("expected zero for absent parameter, got %v err=%v", d, err)
	}

	if _, err := parseParameterDuration(params, ParamReadTimeout); !errors.IsCode(err, errors.ErrCodeConfiguration) {
		t.Errorf("malformed duration: expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestParseParameterURL(t *testing.T) {
	u, err := parseParameterURL(map[string]string{ParamIssuerURL: "https://issuer.example.com"}, ParamIssuerURL)
	if err != nil {
		t.Fatalf("parseParameterURL failed: %v", err)
	}
	if u.Host != "issuer.example.com" {
		t.Errorf("unexpected host %q", u.Host)
	}

	for name, params := range map[string]map[string]string{
		"missing":   {},
		"malformed": {ParamIssuerURL: "::not a url::"},
		"relative":  {ParamIssuerURL: "/just/a/path"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := parseParameterURL(params, ParamIssuerURL); !errors.IsCode(err, errors.ErrCodeConfiguration) {
				t.Errorf("expected CONFIGURATION_ERROR, got %v", err)
			}
		})
	}
}
