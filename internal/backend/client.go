package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Querier defines the backend operations the UI and poller depend on.
// This interface is implemented by *Client and can be used for testing.
type Querier interface {
	CheckStatus(ctx context.Context) (StatusResponse, error)
	FetchMovies(ctx context.Context) ([]Movie, error)
	SubmitQuery(ctx context.Context, req QueryRequest) (QueryResponse, error)
}

// Ensure Client implements Querier at compile time.
var _ Querier = (*Client)(nil)

// Client talks to the movie question-answering HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	// QueryTimeout bounds SubmitQuery. Answers come from a generative model
	// and can take minutes; everything else uses statusTimeout.
	QueryTimeout time.Duration
}

const (
	defaultBaseURL      = "http://127.0.0.1:8000"
	defaultUserAgent    = "reel/0.1"
	statusTimeout       = 5 * time.Second
	defaultQueryTimeout = 600 * time.Second
)

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned status %d", e.Endpoint, e.Code)
}

// IsGatewayTimeout reports whether err is a 504-class backend failure. The
// backend maps upstream model timeouts to 504, and the UI words that failure
// differently from everything else.
func IsGatewayTimeout(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusGatewayTimeout
}

// NewClient builds a Client for the provided base URL.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:      base,
		http:         &http.Client{},
		userAgent:    defaultUserAgent,
		QueryTimeout: defaultQueryTimeout,
	}, nil
}

// BaseURL returns the normalized backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// CheckStatus retrieves the backend's readiness report.
func (c *Client) CheckStatus(ctx context.Context) (StatusResponse, error) {
	if c == nil {
		return StatusResponse{}, fmt.Errorf("client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, "/status", nil, &payload); err != nil {
		return StatusResponse{}, err
	}
	return payload, nil
}

// Ready reports whether the backend is up. It swallows the error: callers in
// the polling path only care about the boolean.
func (c *Client) Ready(ctx context.Context) bool {
	status, err := c.CheckStatus(ctx)
	return err == nil && status.Ready()
}

// FetchMovies retrieves the movie catalog.
func (c *Client) FetchMovies(ctx context.Context) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	var payload []Movie
	if err := c.do(ctx, http.MethodGet, "/movies", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SubmitQuery posts a question and waits for the generated answer.
func (c *Client) SubmitQuery(ctx context.Context, req QueryRequest) (QueryResponse, error) {
	if c == nil {
		return QueryResponse{}, fmt.Errorf("client is nil")
	}
	if err := req.Validate(); err != nil {
		return QueryResponse{}, err
	}

	timeout := c.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var payload QueryResponse
	if err := c.do(ctx, http.MethodPost, "/query", req, &payload); err != nil {
		return QueryResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Endpoint: path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
