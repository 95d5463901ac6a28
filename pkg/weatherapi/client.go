// Package weatherapi is a client for the WeatherAPI.com REST API.
//
// It builds request parameters, performs single and concurrent batched GETs
// and maps non-success responses onto *errors.ProviderError using the
// documented provider error table.
package weatherapi

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/weather/internal/transport"
	"github.com/agentstation/weather/pkg/constants"
	"github.com/agentstation/weather/pkg/errors"
	"github.com/agentstation/weather/pkg/logging"
)

// Provider endpoints, relative to the base URL.
const (
	EndpointSearch   = "/search.json"
	EndpointCurrent  = "/current.json"
	EndpointForecast = "/forecast.json"
)

// Client talks to the weather provider on behalf of one API key.
type Client struct {
	transport *transport.Client
	baseURL   string
	apiKey    string
	now       func() time.Time
	logger    *zerolog.Logger

	transportOpts []transport.Option
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithTimeout(d))
	}
}

// WithRateLimit caps requests per second. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithRateLimit(rps, burst))
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.transportOpts = append(c.transportOpts, transport.WithHTTPClient(hc))
	}
}

// WithClock sets the time source used for date parameters.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client that authenticates with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: constants.DefaultBaseURL,
		apiKey:  apiKey,
		now:     time.Now,
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transport = transport.New(c.transportOpts...)
	return c
}

// Search lists locations matching the query.
func (c *Client) Search(ctx context.Context, location string) ([]Location, error) {
	params, err := SearchParams(c.apiKey, location)
	if err != nil {
		return nil, err
	}

	var result []Location
	if err := c.fetchOne(ctx, EndpointSearch, params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Current returns real-time conditions for a location.
func (c *Client) Current(ctx context.Context, location string) (*CurrentResponse, error) {
	params, err := CurrentParams(c.apiKey, location)
	if err != nil {
		return nil, err
	}

	var result CurrentResponse
	if err := c.fetchOne(ctx, EndpointCurrent, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ForecastOn returns the forecast of a single date (YYYY-MM-DD).
func (c *Client) ForecastOn(ctx context.Context, location, date string) (*ForecastResponse, error) {
	params, err := ForecastDateParams(c.apiKey, location, date, c.now())
	if err != nil {
		return nil, err
	}
	return c.Forecast(ctx, params)
}

// ForecastDays returns one forecast response per day, starting today.
func (c *Client) ForecastDays(ctx context.Context, location string, days int) ([]*ForecastResponse, error) {
	list, err := ForecastDaysParams(c.apiKey, location, days, c.now())
	if err != nil {
		return nil, err
	}
	return c.FetchForecasts(ctx, list)
}

// Forecast performs a single /forecast.json request.
func (c *Client) Forecast(ctx context.Context, params Params) (*ForecastResponse, error) {
	var result ForecastResponse
	if err := c.fetchOne(ctx, EndpointForecast, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchForecasts issues one /forecast.json request per parameter set
// concurrently and returns the responses in input order.
//
// The first failure cancels the requests still in flight. The error returned
// is the one of the lowest input index that did not fail merely because it was
// cancelled, and no partial results are returned.
func (c *Client) FetchForecasts(ctx context.Context, list []Params) ([]*ForecastResponse, error) {
	results := make([]*ForecastResponse, len(list))
	errs := make([]error, len(list))

	g, gctx := errgroup.WithContext(ctx)
	for i, params := range list {
		g.Go(func() error {
			resp, err := c.Forecast(gctx, params)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for i, e := range errs {
			if e == nil || (stderrors.Is(e, context.Canceled) && ctx.Err() == nil) {
				continue
			}
			c.logger.Debug().Int("index", i).Str("dt", list[i].Date()).Err(e).Msg("Batch request failed")
			return nil, e
		}
		return nil, err
	}

	return results, nil
}

// fetchOne performs one GET and decodes a success body into target.
// The body is read regardless of status; non-2xx responses become
// *errors.ProviderError built from the embedded error object.
func (c *Client) fetchOne(ctx context.Context, endpoint string, params Params, target any) error {
	log := c.logger.With().Str("endpoint", endpoint).Str("q", params.Query()).Logger()
	if dt := params.Date(); dt != "" {
		log = log.With().Str("dt", dt).Logger()
	}
	log.Debug().Msg("Sending request")

	resp, err := c.transport.Get(ctx, c.baseURL+endpoint, params.Values())
	if err != nil {
		return err
	}

	body, err := transport.ReadBody(resp, endpoint)
	if err != nil {
		return err
	}

	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("Received response")

	if !transport.IsSuccess(resp.StatusCode) {
		return newProviderError(endpoint, resp.StatusCode, body)
	}

	return transport.DecodeJSON(body, endpoint, target)
}

// newProviderError builds a ProviderError from a non-success body. The
// provider's own message wins; the error table fills in when it is missing.
func newProviderError(endpoint string, status int, body []byte) *errors.ProviderError {
	var envelope errorResponse
	_ = transport.DecodeJSON(body, endpoint, &envelope)

	pe := &errors.ProviderError{
		Code:       envelope.Error.Code,
		StatusCode: status,
		Message:    envelope.Error.Message,
		Endpoint:   endpoint,
	}

	if pe.Message == "" {
		if entry, ok := Lookup(pe.Code); ok {
			pe.Message = entry.Message
		} else {
			pe.Message = http.StatusText(status)
		}
	}

	return pe
}
