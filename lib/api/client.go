// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Routes holds the backend controller path prefixes.
type Routes struct {
	Auth        string
	TenantAdmin string
	Customer    string
	User        string
}

// DefaultRoutes returns the standard controller layout of the Tessera
// backend.
func DefaultRoutes() Routes {
	return Routes{
		Auth:        "/api/auth",
		TenantAdmin: "/api/admin/tenant",
		Customer:    "/api/customer",
		User:        "/api/user",
	}
}

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the backend's base URL (e.g., "http://localhost:8080").
	BaseURL string
	// Routes are the controller path prefixes. Zero value means
	// DefaultRoutes.
	Routes Routes
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used. To authenticate requests, wrap the client's transport
	// in an Authorizer.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client issues typed requests to the Tessera backend.
type Client struct {
	baseURL    string
	routes     Routes
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	routes := config.Routes
	if routes == (Routes{}) {
		routes = DefaultRoutes()
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		routes:     routes,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// maxResponseBytes caps how much of a response body is read. List
// pages are small; anything larger than this is a misbehaving server.
const maxResponseBytes = 8 << 20

// doRequest performs one JSON request against the backend. Non-2xx
// responses decode into *Error when the body carries the structured
// error shape; otherwise the raw body is folded into a plain error.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query ...url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 && query[0] != nil {
		requestURL += "?" + query[0].Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// Error responses are expected to carry the structured shape. A
	// body that doesn't parse degrades to a plain error with the raw
	// text, so the user still sees something actionable.
	var apiErr Error
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil {
		return nil, fmt.Errorf("api: unexpected %d response from %s %s: %s",
			response.StatusCode, method, path, string(responseBody))
	}
	if apiErr.Status == 0 {
		apiErr.Status = response.StatusCode
	}
	return responseBody, &apiErr
}

// get performs a GET and decodes the 2xx response into out.
func (c *Client) get(ctx context.Context, path string, out any, query ...url.Values) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, query...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: failed to parse response from %s: %w", path, err)
	}
	return nil
}
