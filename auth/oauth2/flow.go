package oauth2

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	xoauth2 "golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/AradhyaSharma31/pulsar/auth"
	"github.com/AradhyaSharma31/pulsar/errors"
	"github.com/AradhyaSharma31/pulsar/httpclient"
	"github.com/AradhyaSharma31/pulsar/logger"
	"github.com/AradhyaSharma31/pulsar/registry"
	"github.com/AradhyaSharma31/pulsar/transport"
	"github.com/AradhyaSharma31/pulsar/version"
)

func init() {
	auth.RegisterFactory("oauth2", func(params map[string]string) (auth.Provider, error) {
		return NewClientCredentialsFlow(params)
	})
}

// ClientCredentialsFlow is an OAuth 2.0 client-credentials authorization
// flow. It implements auth.Provider and auth.ResourceAware.
type ClientCredentialsFlow struct {
	issuerURL          *url.URL
	clientID           string
	clientSecret       string
	audience           string
	scope              string
	connectTimeout     time.Duration
	readTimeout        time.Duration
	trustCertsFilePath string

	mu       sync.Mutex
	client   *httpclient.Client // owned; rebuilt when the dispatch loop changes
	metadata *Metadata
	loop     transport.DispatchLoop
	timer    transport.Timer
	resolver transport.DNSResolver

	log *logger.Logger
}

// NewClientCredentialsFlow builds a flow from string-keyed configuration
// parameters. Required: issuerUrl, clientId. Optional: clientSecret,
// audience, scope, connectTimeout, readTimeout (ISO-8601 or Go durations,
// defaulting to 10s and 30s), trustCertsFilePath. Malformed values surface
// as configuration errors before any network activity occurs.
func NewClientCredentialsFlow(params map[string]string) (*ClientCredentialsFlow, error) {
	issuerURL, err := parseParameterURL(params, ParamIssuerURL)
	if err != nil {
		return nil, err
	}
	clientID, err := parseParameterString(params, ParamClientID)
	if err != nil {
		return nil, err
	}
	connectTimeout, err := parseParameterDuration(params, ParamConnectTimeout)
	if err != nil {
		return nil, err
	}
	readTimeout, err := parseParameterDuration(params, ParamReadTimeout)
	if err != nil {
		return nil, err
	}

	return &ClientCredentialsFlow{
		issuerURL:          issuerURL,
		clientID:           clientID,
		clientSecret:       strings.TrimSpace(params[ParamClientSecret]),
		audience:           strings.TrimSpace(params[ParamAudience]),
		scope:              strings.TrimSpace(params[ParamScope]),
		connectTimeout:     connectTimeout,
		readTimeout:        readTimeout,
		trustCertsFilePath: strings.TrimSpace(params[ParamTrustCertsFilePath]),
		log:                logger.WithComponent("oauth2-flow"),
	}, nil
}

// Name implements auth.Provider.
func (f *ClientCredentialsFlow) Name() string { return "oauth2" }

// Start performs resource-agnostic initialization: the HTTP client is built
// lazily if none exists, then issuer metadata is resolved through it. A
// metadata retrieval failure aborts the provider's readiness and is not
// retried here.
func (f *ClientCredentialsFlow) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.startLocked()
}

func (f *ClientCredentialsFlow) startLocked() error {
	if f.client == nil {
		client, err := httpclient.New(httpclient.Config{
			ConnectTimeout:     f.connectTimeout,
			ReadTimeout:        f.readTimeout,
			TrustCertsFilePath: f.trustCertsFilePath,
			UserAgent:          version.UserAgent(),
			DispatchLoop:       f.loop,
			Timer:              f.timer,
			Resolver:           f.resolver,
		})
		if err != nil {
			return err
		}
		f.client = client
	}

	md, err := resolveMetadata(context.Background(), f.client, f.issuerURL)
	if err != nil {
		f.log.Error("unable to retrieve OAuth 2.0 server metadata",
			logger.ErrorFields("resolve_metadata", err))
		return errors.AuthenticationInit("unable to retrieve OAuth 2.0 server metadata").WithCause(err)
	}
	f.metadata = md
	f.log.Debug("issuer metadata resolved",
		logger.Fields("issuer", md.Issuer, "token_endpoint", md.TokenEndpoint))
	return nil
}

// StartWithResources implements auth.ResourceAware. Each shared resource is
// looked up independently; absence of one never blocks using another. A
// changed dispatch loop invalidates the current HTTP client so the legacy
// path rebuilds it with the new loop.
func (f *ClientCredentialsFlow) StartWithResources(res registry.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rebuild := false

	if loop, ok := registry.Lookup[transport.DispatchLoop](res); ok {
		if loop != f.loop {
			f.loop = loop
			rebuild = true
		}
		f.log.Debug("using shared dispatch loop")
	}

	if timer, ok := registry.Lookup[transport.Timer](res); ok {
		f.timer = timer
		f.log.Debug("shared timer available")
	}

	if resolver, ok := registry.Lookup[transport.DNSResolver](res); ok {
		// Stored for transport-level resolution wiring; not consumed by the
		// HTTP client yet.
		f.resolver = resolver
		f.log.Debug("shared DNS resolver available")
	}

	if rebuild && f.client != nil {
		if err := f.client.Close(); err != nil {
			f.log.Warn("error closing existing HTTP client",
				logger.ErrorFields("close_client", err))
		}
		f.client = nil
	}

	return f.startLocked()
}

// Token performs the client-credentials grant against the token endpoint
// discovered during initialization, over the flow's own HTTP client.
func (f *ClientCredentialsFlow) Token(ctx context.Context) (*xoauth2.Token, error) {
	f.mu.Lock()
	md := f.metadata
	client := f.client
	f.mu.Unlock()

	if md == nil || client == nil {
		return nil, errors.AuthenticationInit("flow has not been started")
	}

	cfg := clientcredentials.Config{
		ClientID:     f.clientID,
		ClientSecret: f.clientSecret,
		TokenURL:     md.TokenEndpoint,
	}
	if f.scope != "" {
		cfg.Scopes = strings.Fields(f.scope)
	}
	if f.audience != "" {
		cfg.EndpointParams = url.Values{"audience": {f.audience}}
	}

	ctx = context.WithValue(ctx, xoauth2.HTTPClient, client.Unwrap())
	tok, err := cfg.Token(ctx)
	if err != nil {
		return nil, errors.New(errors.ErrCodeAuthentication, "token request failed").WithCause(err)
	}
	return tok, nil
}

// Metadata returns the resolved issuer metadata, or nil before Start.
func (f *ClientCredentialsFlow) Metadata() *Metadata {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metadata
}

// DispatchLoop returns the shared dispatch loop the flow is configured with,
// or nil.
func (f *ClientCredentialsFlow) DispatchLoop() transport.DispatchLoop {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loop
}

// Timer returns the stored shared timer, or nil.
func (f *ClientCredentialsFlow) Timer() transport.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timer
}

// DNSResolver returns the stored shared resolver, or nil.
func (f *ClientCredentialsFlow) DNSResolver() transport.DNSResolver {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolver
}

// Close releases the HTTP client the flow built. Shared resources obtained
// from a registry are borrowed and left untouched.
func (f *ClientCredentialsFlow) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		err := f.client.Close()
		f.client = nil
		return err
	}
	return nil
}
