// Package maps is the HTTP client for the Google Maps Places, Autocomplete
// and Directions web services.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pitstop.roadtripper.org/internal/geo"
	"pitstop.roadtripper.org/internal/metrics"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// DefaultTimeout bounds a single upstream call. A timeout surfaces as the
// operation's standard error path, not a special case.
const DefaultTimeout = 10 * time.Second

// Client calls the mapping provider. All methods take a context and return
// typed results; ZERO_RESULTS is a valid empty result, never an error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithBaseURL overrides the provider endpoint, primarily for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LocationBias biases a search toward a point without restricting it.
type LocationBias struct {
	Location geo.Point
	RadiusM  int
}

// TextSearch runs a free-text place search, optionally biased to a location.
func (c *Client) TextSearch(ctx context.Context, query string, bias *LocationBias) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	if bias != nil {
		params.Set("location", formatLatLng(bias.Location))
		params.Set("radius", strconv.Itoa(bias.RadiusM))
	}

	var decoded placesResponse
	if err := c.get(ctx, "textsearch", "/place/textsearch/json", params, &decoded); err != nil {
		return nil, err
	}
	if err := checkStatus("textsearch", decoded.Status, decoded.ErrorMessage); err != nil {
		return nil, err
	}
	return decoded.Results, nil
}

// NearbySearch finds places around a location within radiusM meters,
// optionally constrained by place type and keyword.
func (c *Client) NearbySearch(ctx context.Context, location geo.Point, radiusM int, placeType, keyword string) ([]Place, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(location))
	params.Set("radius", strconv.Itoa(radiusM))
	if placeType != "" {
		params.Set("type", placeType)
	}
	if keyword != "" {
		params.Set("keyword", keyword)
	}

	var decoded placesResponse
	if err := c.get(ctx, "nearbysearch", "/place/nearbysearch/json", params, &decoded); err != nil {
		return nil, err
	}
	if err := checkStatus("nearbysearch", decoded.Status, decoded.ErrorMessage); err != nil {
		return nil, err
	}
	return decoded.Results, nil
}

// PlaceDetails fetches the enriched record for a place. fields limits the
// response to what the caller needs.
func (c *Client) PlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}

	var decoded placeDetailsResponse
	if err := c.get(ctx, "details", "/place/details/json", params, &decoded); err != nil {
		return nil, err
	}
	if err := checkStatus("details", decoded.Status, decoded.ErrorMessage); err != nil {
		return nil, err
	}
	if decoded.Result == nil {
		return nil, &UpstreamError{Operation: "details", Status: decoded.Status, Message: "missing result"}
	}
	return decoded.Result, nil
}

// Autocomplete returns establishment predictions for a partial input.
func (c *Client) Autocomplete(ctx context.Context, input string, bias *LocationBias) ([]Prediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "establishment")
	if bias != nil {
		params.Set("location", formatLatLng(bias.Location))
		params.Set("radius", strconv.Itoa(bias.RadiusM))
	}

	var decoded autocompleteResponse
	if err := c.get(ctx, "autocomplete", "/place/autocomplete/json", params, &decoded); err != nil {
		return nil, err
	}
	if err := checkStatus("autocomplete", decoded.Status, decoded.ErrorMessage); err != nil {
		return nil, err
	}
	if decoded.Predictions == nil {
		return []Prediction{}, nil
	}
	return decoded.Predictions, nil
}

// Directions computes a route from origin to destination through the given
// waypoints, in order. Origin and destination accept either an address or a
// "lat,lng" pair; callers use FormatWaypoint for coordinates.
func (c *Client) Directions(ctx context.Context, origin, destination string, waypoints []string) (*Route, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	if len(waypoints) > 0 {
		params.Set("waypoints", strings.Join(waypoints, "|"))
	}

	var decoded directionsResponse
	if err := c.get(ctx, "directions", "/directions/json", params, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != StatusOK {
		return nil, &UpstreamError{Operation: "directions", Status: decoded.Status, Message: decoded.ErrorMessage}
	}
	if len(decoded.Routes) == 0 {
		return nil, &UpstreamError{Operation: "directions", Status: decoded.Status, Message: "no routes returned"}
	}
	return &decoded.Routes[0], nil
}

// FormatWaypoint renders a point as the "lat,lng" string the provider expects.
func FormatWaypoint(p geo.Point) string {
	return formatLatLng(p)
}

func formatLatLng(p geo.Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

func checkStatus(operation, status, message string) error {
	switch status {
	case StatusOK, StatusZeroResults:
		return nil
	default:
		return &UpstreamError{Operation: operation, Status: status, Message: message}
	}
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	resp, err := c.doWithRetry(ctx, operation, endpoint)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues("maps", operation, "error").Inc()
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequests.WithLabelValues("maps", operation, "error").Inc()
		return fmt.Errorf("maps %s: decode response: %w", operation, err)
	}

	metrics.UpstreamRequests.WithLabelValues("maps", operation, "ok").Inc()
	return nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx
// responses) with doubling backoff while respecting context cancellation.
// 4xx client errors are never retried.
func (c *Client) doWithRetry(ctx context.Context, operation, endpoint string) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := c.do(ctx, endpoint)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTransient(err) || attempt == maxAttempts {
			return nil, fmt.Errorf("maps %s: %w", operation, lastErr)
		}

		c.logger.Warn("retrying upstream call", "operation", operation, "attempt", attempt, "error", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("maps %s: %w", operation, lastErr)
}

func (c *Client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

func isTransient(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
