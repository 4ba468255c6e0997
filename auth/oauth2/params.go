package oauth2

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AradhyaSharma31/pulsar/errors"
)

// Configuration parameter names accepted by the flow.
const (
	ParamIssuerURL          = "issuerUrl"
	ParamClientID           = "clientId"
	ParamClientSecret       = "clientSecret"
	ParamAudience           = "audience"
	ParamScope              = "scope"
	ParamConnectTimeout     = "connectTimeout"
	ParamReadTimeout        = "readTimeout"
	ParamTrustCertsFilePath = "trustCertsFilePath"
)

// parseParameterString returns a required string parameter.
func parseParameterString(params map[string]string, name string) (string, error) {
	s := strings.TrimSpace(params[name])
	if s == "" {
		return "", errors.Configuration(name, "missing required parameter")
	}
	return s, nil
}

// parseParameterURL returns a required URL parameter.
func parseParameterURL(params map[string]string, name string) (*url.URL, error) {
	s, err := parseParameterString(params, name)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Configuration(name, "malformed URL "+strconv.Quote(s))
	}
	return u, nil
}

// parseParameterDuration returns an optional duration parameter. An absent
// or blank value yields zero (caller applies its default); a malformed value
// is a configuration error.
func parseParameterDuration(params map[string]string, name string) (time.Duration, error) {
	s := strings.TrimSpace(params[name])
	if s == "" {
		return 0, nil
	}
	d, err := parseDuration(s)
	if err != nil {
		return 0, errors.Configuration(name, "malformed duration "+strconv.Quote(s)).WithCause(err)
	}
	return d, nil
}

// parseDuration accepts ISO-8601 durations ("PT10S", "P1DT2H") as produced
// by JVM-side tooling, and Go-style durations ("10s") as a convenience.
func parseDuration(s string) (time.Duration, error) {
	if len(s) > 0 && (s[0] == 'P' || s[0] == 'p' ||
		((s[0] == '+' || s[0] == '-') && len(s) > 1 && (s[1] == 'P' || s[1] == 'p'))) {
		return parseISODuration(s)
	}
	return time.ParseDuration(s)
}

// parseISODuration parses the ISO-8601 duration format PnDTnHnMn.nS.
// Weeks, months, and years are not supported; fractional values are allowed
// only on the seconds component.
func parseISODuration(s string) (time.Duration, error) {
	orig := s
	malformed := func() (time.Duration, error) {
		return 0, errors.InvalidArgument("invalid ISO-8601 duration " + strconv.Quote(orig))
	}

	neg := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) < 2 || (s[0] != 'P' && s[0] != 'p') {
		return malformed()
	}
	s = s[1:]

	var total time.Duration
	inTime := false
	sawComponent := false
	lastRank := 0

	for len(s) > 0 {
		if s[0] == 'T' || s[0] == 't' {
			if inTime {
				return malformed()
			}
			inTime = true
			s = s[1:]
			if len(s) == 0 {
				return malformed()
			}
			continue
		}

		// Scan the numeric part, allowing one decimal point.
		i := 0
		dot := false
		for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == ',') {
			if s[i] == '.' || s[i] == ',' {
				if dot {
					return malformed()
				}
				dot = true
			}
			i++
		}
		if i == 0 || i >= len(s) {
			return malformed()
		}
		num := strings.ReplaceAll(s[:i], ",", ".")
		unit := s[i]
		s = s[i+1:]

		value, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return malformed()
		}

		var scale time.Duration
		var rank int
		switch {
		case !inTime && (unit == 'D' || unit == 'd'):
			scale, rank = 24*time.Hour, 1
		case inTime && (unit == 'H' || unit == 'h'):
			scale, rank = time.Hour, 2
		case inTime && (unit == 'M' || unit == 'm'):
			scale, rank = time.Minute, 3
		case inTime && (unit == 'S' || unit == 's'):
			scale, rank = time.Second, 4
		default:
			return malformed()
		}
		// Components must appear in D, H, M, S order, each at most once.
		if rank <= lastRank {
			return malformed()
		}
		lastRank = rank
		if dot && scale != time.Second {
			return malformed()
		}

		total += time.Duration(value * float64(scale))
		sawComponent = true
	}

	if !sawComponent {
		return malformed()
	}
	if neg {
		total = -total
	}
	return total, nil
}
