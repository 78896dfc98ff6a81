// ABOUTME: GraphQL client for the headless CMS with a bounded per-query timeout
// ABOUTME: Maps transport and application failures onto NETWORK_ERROR and GRAPHQL_ERROR

package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"gameportal-api/core/domain"
	apperrors "gameportal-api/core/errors"
	"gameportal-api/core/interfaces"
)

const (
	// DefaultTimeout bounds a query when neither the client nor the request sets one
	DefaultTimeout = 10 * time.Second

	healthQuery   = "query HealthCheck { __typename }"
	healthTimeout = 5 * time.Second
)

// QueryObserver receives one call per executed query
type QueryObserver interface {
	ObserveQuery(query, outcome string, duration time.Duration)
}

// Client executes GraphQL queries against a single endpoint. Each call makes exactly one
// attempt; there is no retry.
type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	observer   QueryObserver
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the default per-query timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithObserver reports query outcomes, typically to Prometheus
func WithObserver(o QueryObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient creates a CMS client
func NewClient(endpoint string, httpClient interfaces.HTTPClient, logger interfaces.Logger, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		timeout:    DefaultTimeout,
		httpClient: httpClient,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLBody struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLResponse struct {
	Data   json.RawMessage       `json:"data"`
	Errors []domain.GraphQLError `json:"errors"`
}

// Execute runs req and returns the raw "data" member. The request is cancelled when the
// timeout elapses.
func (c *Client) Execute(ctx context.Context, req interfaces.GraphQLRequest) (json.RawMessage, error) {
	timeout := c.timeout
	if req.Options.Timeout > 0 {
		timeout = req.Options.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	data, err := c.do(ctx, req, timeout)
	duration := time.Since(start)

	if err != nil {
		c.observe(req.Name, "error", duration)
		c.logger.Error("CMS query failed", map[string]interface{}{
			"query":       req.Name,
			"variables":   req.Variables,
			"error":       err.Error(),
			"duration_ms": duration.Milliseconds(),
		})
		return nil, err
	}

	c.observe(req.Name, "success", duration)
	c.logger.Debug("CMS query completed", map[string]interface{}{
		"query":       req.Name,
		"variables":   req.Variables,
		"duration_ms": duration.Milliseconds(),
	})

	return data, nil
}

func (c *Client) do(ctx context.Context, req interfaces.GraphQLRequest, timeout time.Duration) (json.RawMessage, error) {
	variables := req.Variables
	if variables == nil {
		variables = map[string]interface{}{}
	}

	payload, err := json.Marshal(graphQLBody{
		Query:     strings.TrimSpace(req.Query),
		Variables: variables,
	})
	if err != nil {
		return nil, apperrors.Network(err.Error(), map[string]interface{}{"originalError": errorName(err)})
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, transportError(err, timeout)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, apperrors.Network(
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode())),
			map[string]interface{}{"status": resp.StatusCode()},
		)
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, transportError(err, timeout)
	}

	var result graphQLResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, apperrors.Network(err.Error(), map[string]interface{}{"originalError": errorName(err)})
	}

	if len(result.Errors) > 0 {
		message := result.Errors[0].Message
		if message == "" {
			message = "Unknown GraphQL error"
		}
		return nil, apperrors.GraphQL(message, result.Errors)
	}

	if len(result.Data) == 0 {
		return json.RawMessage("null"), nil
	}
	return result.Data, nil
}

// Probe sends a trivial query and reports how long the CMS took to answer
func (c *Client) Probe(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	_, err := c.Execute(ctx, interfaces.GraphQLRequest{
		Name:    "health",
		Query:   healthQuery,
		Options: domain.QueryOptions{Timeout: healthTimeout, NoCache: true},
	})
	return time.Since(start), err
}

func (c *Client) observe(query, outcome string, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveQuery(query, outcome, d)
	}
}

func transportError(err error, timeout time.Duration) *apperrors.APIError {
	if isTimeout(err) {
		return apperrors.Network("Request timeout", map[string]interface{}{
			"timeout": timeout.Milliseconds(),
		})
	}
	return apperrors.Network(err.Error(), map[string]interface{}{"originalError": errorName(err)})
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// errorName returns the dynamic type of the innermost error, e.g. "*net.OpError"
func errorName(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return fmt.Sprintf("%T", err)
		}
		err = next
	}
}
