package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// apiBasePath is prepended to every endpoint passed to execute. Archon
// serves its whole REST surface under this prefix.
const apiBasePath = "/api"

// Client talks to the Archon API. Construct it with [New], then call
// [Client.Connect] before issuing requests. A Client is safe for
// concurrent use once connected; each request owns its own state.
type Client struct {
	baseURL   string
	options   *Options
	rest      *resty.Client
	connected bool
}

// New creates a Client for the Archon server at baseURL. The returned
// client is not yet usable; call [Client.Connect] to validate the
// configuration and verify the server is reachable.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		baseURL: baseURL,
		options: options,
	}
}

// Connect validates the client options, builds the underlying transport,
// and pings the Archon health endpoint. Calling Connect on an already
// connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("archon client is nil")
	}

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c.rest = c.buildTransport()

	if _, err := c.Health(ctx); err != nil {
		c.rest = nil
		return fmt.Errorf("failed to ping archon API: %w", err)
	}

	c.connected = true

	return nil
}

// Close releases idle connections held by the transport. The client can
// be reconnected afterwards with [Client.Connect].
func (c *Client) Close() {
	if c == nil || c.rest == nil {
		return
	}

	c.rest.GetClient().CloseIdleConnections()
	c.rest = nil
	c.connected = false
}

func (c *Client) buildTransport() *resty.Client {
	o := c.options

	rest := resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(o.requestTimeout).
		SetRetryCount(o.retryCount).
		SetRetryWaitTime(o.retryWaitTime).
		SetRetryMaxWaitTime(o.retryMaxWaitTime).
		SetHeaders(o.requestHeaders).
		AddRetryCondition(o.retryPolicy)

	if o.basicAuthUsername != "" {
		rest.SetBasicAuth(o.basicAuthUsername, o.basicAuthPassword)
	}

	if o.authToken != "" {
		if o.authScheme != "" {
			rest.SetAuthScheme(o.authScheme)
		}
		rest.SetAuthToken(o.authToken)
	}

	rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-ID", uuid.NewString())
		o.requestLogger.Debugf("archon: %s %s", r.Method, r.URL)
		return nil
	})

	rest.AddRetryHook(func(r *resty.Response, err error) {
		// resty fires retry hooks with a nil response when a request
		// middleware fails before the request is sent
		if r == nil || r.Request == nil {
			o.requestLogger.Warnf("archon: retrying: %v", err)
			return
		}
		if err != nil {
			o.requestLogger.Warnf("archon: retrying %s %s: %v", r.Request.Method, r.Request.URL, err)
			return
		}
		o.requestLogger.Warnf("archon: retrying %s %s: HTTP %d", r.Request.Method, r.Request.URL, r.StatusCode())
	})

	return rest
}

// execute issues a single API call. configure, when non-nil, is applied
// to the request before it is sent (body, query parameters, result
// target). Non-2xx responses are normalized into an *APIError carrying
// the message extracted from the response body; transport failures are
// wrapped with the method and endpoint so the caller can tell which
// request died.
func (c *Client) execute(ctx context.Context, method, endpoint string, configure func(*resty.Request)) (*resty.Response, error) {
	if c == nil {
		return nil, errors.New("archon client is nil")
	}

	if !c.connected || c.rest == nil {
		return nil, errors.New("client not connected - call Connect() first")
	}

	if endpoint == "" {
		return nil, errors.New("endpoint must not be empty")
	}

	req := c.rest.R().SetContext(ctx)
	if configure != nil {
		configure(req)
	}

	resp, err := req.Execute(method, apiBasePath+endpoint)
	if err != nil {
		err = normalizeTransportError(err)
		c.options.requestLogger.Errorf("archon: %s %s failed: %v", method, endpoint, err)
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{
			Method:   method,
			Endpoint: endpoint,
			Status:   resp.StatusCode(),
			Message:  errorMessage(resp.StatusCode(), resp.Body()),
		}
		c.options.requestLogger.Errorf("archon: %v", apiErr)
		return nil, apiErr
	}

	return resp, nil
}

// Health fetches the server health endpoint. It is also used internally
// by [Client.Connect] as the reachability probe, which is why it works
// before the client is marked connected.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	if c == nil {
		return nil, errors.New("archon client is nil")
	}

	if c.rest == nil {
		return nil, errors.New("client not connected - call Connect() first")
	}

	var status HealthStatus

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&status).
		Get(apiBasePath + "/health")
	if err != nil {
		return nil, normalizeTransportError(err)
	}

	if !resp.IsSuccess() {
		return nil, &APIError{
			Method:   "GET",
			Endpoint: "/health",
			Status:   resp.StatusCode(),
			Message:  errorMessage(resp.StatusCode(), resp.Body()),
		}
	}

	return &status, nil
}
