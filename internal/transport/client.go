// Package transport provides the HTTP plumbing shared by provider clients:
// a timeout-bound http.Client, request rate limiting and body handling.
package transport

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/errors"
)

// Client provides rate-limited HTTP GET functionality.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests to rps per second with the given burst.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		limiter: rate.NewLimiter(rate.Limit(constants.DefaultRateLimit), constants.BurstSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Get performs a GET request against rawURL with the given query parameters.
// It blocks on the rate limiter first, so a cancelled ctx aborts queued requests.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.WrapTransport("rate limit wait", rawURL, err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.WrapTransport("parse url", rawURL, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WrapTransport("create request", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// the query carries the API key; keep it out of the error text
		var ue *url.Error
		if stderrors.As(err, &ue) {
			ue.URL = rawURL
		}
		return nil, errors.WrapTransport("request", rawURL, err)
	}
	return resp, nil
}
