package mediaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client represents a media catalog API client
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ API = (*Client)(nil)

// NewClient creates a new media API client. baseURL includes the API
// prefix, e.g. http://localhost:8080/api.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL must use http or https, got %q", ErrInvalidConfig, baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: base URL has no host: %q", ErrInvalidConfig, baseURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	switch {
	case httpClient == nil:
		httpClient = &http.Client{Timeout: o.timeout}
	case o.timeout > 0:
		// the caller's client is shared, so the timeout goes on a copy
		custom := *httpClient
		custom.Timeout = o.timeout
		httpClient = &custom
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListMedia retrieves the media collection, optionally filtered and sorted
func (c *Client) ListMedia(ctx context.Context, query *QueryOptions) (any, error) {
	return c.do(ctx, OpListMedia, http.MethodGet, "/media"+query.Encode(), nil)
}

// GetMediaByID retrieves a single media item
func (c *Client) GetMediaByID(ctx context.Context, id string) (any, error) {
	return c.do(ctx, OpGetMediaByID, http.MethodGet, mediaPath(id), nil)
}

// CreateMedia adds a new media item
func (c *Client) CreateMedia(ctx context.Context, payload any) (any, error) {
	body, err := encodeBody(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, OpCreateMedia, http.MethodPost, "/media", body)
}

// UpdateMedia applies a partial update to a media item
func (c *Client) UpdateMedia(ctx context.Context, id string, payload any) (any, error) {
	body, err := encodeBody(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, OpUpdateMedia, http.MethodPatch, mediaPath(id), body)
}

// DeleteMedia removes a media item
func (c *Client) DeleteMedia(ctx context.Context, id string) (any, error) {
	return c.do(ctx, OpDeleteMedia, http.MethodDelete, mediaPath(id), nil)
}

// GenerateRandomMedia asks the backend to generate n random media items
func (c *Client) GenerateRandomMedia(ctx context.Context, n int) (any, error) {
	return c.do(ctx, OpGenerateRandomMedia, http.MethodGet, "/generate-media/"+strconv.Itoa(n), nil)
}

// Health queries the backend health endpoint
func (c *Client) Health(ctx context.Context) (any, error) {
	return c.do(ctx, OpHealth, http.MethodGet, "/health", nil)
}

func mediaPath(id string) string {
	return "/media/" + url.PathEscape(id)
}

func encodeBody(payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return body, nil
}

// do performs a single HTTP request. A nil body means no request body and
// no Content-Type header. A 204 response yields a nil document; any other
// success body must be exactly one JSON value.
func (c *Client) do(ctx context.Context, op, method, endpoint string, body []byte) (any, error) {
	requestURL := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", requestURL).
		Str("request_id", requestID).
		Msg("Making media API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Str("op", op).
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Msg("Media API returned non-success status")
		return nil, &FetchFailedError{Operation: op, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", op, err)
	}

	c.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Msg("Media API request succeeded")

	return result, nil
}
