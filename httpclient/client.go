package httpclient

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/AradhyaSharma31/pulsar/logger"
	"github.com/AradhyaSharma31/pulsar/transport"
)

// Client is the outbound HTTP client built for an authentication flow.
// The client owns its transport's idle connections; the shared resources it
// was configured with remain borrowed.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// New creates a new HTTP client with the given configuration.
//
// Configuration is applied in order: connect/read timeouts (defaulted when
// unset), the trust store file (logged and skipped when unloadable), the
// shared dispatch loop's dialer when present, and the shared timer when
// present.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.WithComponent("httpclient")

	tr := http.DefaultTransport.(*http.Transport).Clone()

	tlsCfg, err := buildTLSConfig(cfg.TrustCertsFilePath)
	if err != nil {
		// A bad trust store downgrades to system roots rather than failing
		// the whole flow.
		log.Warn("could not load trust certs file, using system roots",
			logger.ErrorFields("load_trust_certs", err))
	} else if tlsCfg != nil {
		tr.TLSClientConfig = tlsCfg
	}

	if cfg.DispatchLoop != nil {
		tr.DialContext = cfg.DispatchLoop.DialContext
		log.Debug("using shared dispatch loop for outbound connections")
	} else {
		dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
		tr.DialContext = dialer.DialContext
	}

	if cfg.Timer != nil {
		log.Debug("shared timer available for outbound client")
	}

	return &Client{
		httpClient: &http.Client{
			Transport: tr,
			Timeout:   cfg.ReadTimeout,
		},
		config: cfg,
		log:    log,
	}, nil
}

// Do executes an HTTP request and returns the complete response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*Response, error) {
	req = req.WithContext(ctx)

	if c.config.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	for k, v := range c.config.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}
	return result, nil
}

// Get issues a GET request to the given URL.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Unwrap returns the underlying *http.Client for advanced use cases, such as
// binding an OAuth2 token source to this client's transport.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// DispatchLoop returns the shared dispatch loop the client was built with,
// or nil.
func (c *Client) DispatchLoop() transport.DispatchLoop {
	return c.config.DispatchLoop
}

// Timer returns the shared timer the client was built with, or nil.
func (c *Client) Timer() transport.Timer {
	return c.config.Timer
}

// Close releases the connections the client owns. It never closes the
// dispatch loop, timer, or resolver it borrowed.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
