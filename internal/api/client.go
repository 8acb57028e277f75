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
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is a client for the donation platform REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// ClientOptions configures the API client.
type ClientOptions struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewClient creates a new platform API client. The token may be empty for
// unauthenticated calls such as Login.
func NewClient(baseURL, token string, opts ClientOptions) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger.Debug("creating platform API client", slog.String("url", baseURL))

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  logger,
	}, nil
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// doRequest performs an HTTP request without a body against the platform API.
func (c *Client) doRequest(ctx context.Context, method, path string, result any) error {
	reqURL := c.baseURL + path

	c.logger.Debug("making platform API request",
		slog.String("method", method),
		slog.String("path", path),
	)

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	return c.send(req, result)
}

// doRequestWithBody performs an HTTP request with a JSON body.
func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body any, result any) error {
	reqURL := c.baseURL + path

	c.logger.Debug("making platform API request with body",
		slog.String("method", method),
		slog.String("path", path),
	)

	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	return c.send(req, result)
}

// doForm performs a form-encoded POST, used only by the OAuth2 password login.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, result any) error {
	reqURL := c.baseURL + path

	c.logger.Debug("making platform API form request", slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, result)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) send(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
