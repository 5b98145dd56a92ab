// Package apiclient is the gateway to the backend API: a generic JSON
// request helper that owns the error taxonomy and the error-to-notification
// mapping.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Aya-Jafar/storefront-api/pkg/logger"
)

// Notifier receives user-facing outcomes of mutating requests. The snackbar
// store implements it.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Options describes one request. Method defaults to GET.
type Options struct {
	Endpoint   string
	Method     string
	Body       interface{}
	PathParams string
}

// Client talks JSON to the backend at BaseURL.
//
// Mutating requests (anything but GET) report their outcome through the
// Notifier; GET failures propagate silently so callers can render their own
// empty state. That asymmetry is deliberate.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier
}

// DefaultTimeout bounds a backend exchange when no timeout is configured.
const DefaultTimeout = 10 * time.Second

func New(baseURL string, timeout time.Duration, notifier Notifier) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		notifier:   notifier,
	}
}

// WithHTTPClient overrides the underlying http.Client (timeouts, transports).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Request performs the request and decodes the JSON response into T.
// Failures are *NetworkError, *HTTPError or *DecodeError.
func Request[T any](ctx context.Context, c *Client, opts Options) (T, error) {
	var out T
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body, err := c.do(ctx, method, opts)
	if err != nil {
		return out, c.fail(method, err)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, c.fail(method, &DecodeError{Err: err})
	}

	if method != http.MethodGet && c.notifier != nil {
		c.notifier.Success("Request successful!")
	}
	return out, nil
}

// do performs the HTTP exchange and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, method string, opts Options) ([]byte, error) {
	var reqBody io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			// Request construction failure; DecodeError is reserved for
			// malformed response bodies.
			return nil, &NetworkError{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	url := c.baseURL + "/" + strings.TrimLeft(opts.Endpoint, "/") + opts.PathParams
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().Str("method", method).Str("url", url).Int("status", resp.StatusCode).Msg("backend request failed")
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func (c *Client) fail(method string, err error) error {
	if method != http.MethodGet && c.notifier != nil {
		c.notifier.Error(fmt.Sprintf("API Error: %v", err))
	}
	return err
}
