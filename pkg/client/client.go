// Package client calls the item service over HTTP. It targets the service
// root and selects the operation with the action query parameter, so the
// same client works against a function URL, an API Gateway stage or the
// local server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hockeystats-api/internal/models"
)

// DefaultTimeout bounds a single call when no http.Client is supplied
const DefaultTimeout = 10 * time.Second

// ErrFetchFailed is wrapped by FetchItem when the service answers non-2xx
var ErrFetchFailed = errors.New("fetch failed")

// FetchError reports a non-2xx answer to FetchItem
type FetchError struct {
	ID         string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch item with ID %s", e.ID)
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}

// Client is an HTTP client for the item service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a client for the service at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "?"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem posts item as JSON to ?action=add and returns the raw response.
// The caller must close the response body.
func (c *Client) AddItem(ctx context.Context, item *models.Item) (*http.Response, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(url.Values{"action": {"add"}}), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// FetchItem gets the item with the given ID. Any non-2xx answer, including
// not found, is a *FetchError.
func (c *Client) FetchItem(ctx context.Context, id string) (*models.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(url.Values{"action": {"fetch"}, "id": {id}}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{ID: id, StatusCode: resp.StatusCode}
	}

	var item models.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &item, nil
}

func (c *Client) url(query url.Values) string {
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + query.Encode()
}
