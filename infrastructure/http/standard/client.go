// ABOUTME: Standard HTTP client implementation for JSON POST requests to the CMS
// ABOUTME: Single attempt per call; cancellation and deadlines come from the request context

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"gameportal-api/core/interfaces"
)

const userAgent = "GamePortalAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// Option configures a StandardHTTPClient
type Option func(*http.Client)

// WithTransport replaces the underlying round tripper, e.g. with a logging one
func WithTransport(rt http.RoundTripper) Option {
	return func(c *http.Client) {
		c.Transport = rt
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// The timeout is an upper bound; per-request deadlines are set through the context.
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &http.Client{
		Timeout: timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return &StandardHTTPClient{client: c}
}

// Post performs an HTTP POST request with a JSON body
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	status     string
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Status returns the status line text
func (r *httpResponse) Status() string {
	return r.status
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
