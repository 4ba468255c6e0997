package auth

import (
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AradhyaSharma31/pulsar/errors"
	"github.com/AradhyaSharma31/pulsar/logger"
)

func init() {
	RegisterFactory("token", NewTokenProvider)
}

// tokenProvider authenticates with a static JWT supplied directly or via a
// file. It needs no shared resources, so it deliberately does not implement
// ResourceAware: the Start dispatch helper must route it through the legacy
// path regardless of what a registry contains.
type tokenProvider struct {
	token string
	log   *logger.Logger
}

// NewTokenProvider creates a static token provider from parameters.
// Accepted parameters: "token" (the JWT itself) or "tokenFilePath".
func NewTokenProvider(params map[string]string) (Provider, error) {
	token := strings.TrimSpace(params["token"])
	if path := params["tokenFilePath"]; token == "" && path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Configuration("tokenFilePath", "unreadable file").WithCause(err)
		}
		token = strings.TrimSpace(string(data))
	}
	if token == "" {
		return nil, errors.Configuration("token", "missing required parameter")
	}

	return &tokenProvider{
		token: token,
		log:   logger.WithComponent("auth-token"),
	}, nil
}

func (p *tokenProvider) Name() string { return "token" }

func (p *tokenProvider) Start() error {
	// Peek at the expiry without verifying: the broker verifies signatures,
	// the client only warns about credentials that are already dead.
	parsed, _, err := jwt.NewParser().ParseUnverified(p.token, jwt.MapClaims{})
	if err != nil {
		p.log.Debug("token is not a parseable JWT, passing through as-is")
		return nil
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if remaining := time.Until(exp.Time); remaining <= 0 {
		p.log.Warn("configured token is already expired",
			logger.Fields("expired_at", exp.Time.Format(time.RFC3339)))
	} else {
		p.log.Debug("token expiry noted",
			logger.Fields("expires_in", remaining.String()))
	}
	return nil
}

// Token returns the configured credential.
func (p *tokenProvider) Token() string { return p.token }

func (p *tokenProvider) Close() error { return nil }
