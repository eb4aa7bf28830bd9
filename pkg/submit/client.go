package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-clubadmin/pkg/form"
)

// genericFailure is shown when the server gives no usable message.
const genericFailure = "The request could not be completed"

// envelope is the admin API's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Response is a successful submission result.
type Response struct {
	Message   string
	Data      json.RawMessage
	RequestID string
}

// APIError reports a submission the server rejected: a non-2xx status or a
// decoded envelope with success=false. Message carries the server-provided
// text or a generic fallback.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("submit: api error (status %d): %s", e.Status, e.Message)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRegistry swaps the entity registry.
func WithRegistry(registry *Registry) ClientOption {
	return func(c *Client) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithAuthToken sets a bearer token attached to every request.
func WithAuthToken(token string) ClientOption {
	return func(c *Client) {
		c.authToken = strings.TrimSpace(token)
	}
}

// Client submits entity payloads to the admin API. There is no retry, no
// in-flight deduplication and no idempotency key: a double submit issues two
// independent requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	registry   *Registry
	authToken  string
}

// NewClient constructs a client for the admin API at baseURL. The default
// registry routes every builtin entity.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("submit: base URL is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("submit: invalid base URL %q: %w", baseURL, err)
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		registry:   DefaultRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Registry exposes the client's entity registry so callers can add custom
// entities.
func (c *Client) Registry() *Registry { return c.registry }

// Submit resolves the entity, builds the wire request for the mode, issues it
// and decodes the response envelope. A success=false envelope or a non-2xx
// status yields an *APIError carrying the server message.
func (c *Client) Submit(ctx context.Context, entityName string, mode form.Mode, values form.Values) (*Response, error) {
	entity, err := c.registry.Get(entityName)
	if err != nil {
		return nil, err
	}

	wire, err := entity.BuildRequest(mode, values)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, wire)
}

func (c *Client) send(ctx context.Context, wire Request) (*Response, error) {
	endpoint := c.baseURL + wire.Path
	if len(wire.Query) > 0 {
		endpoint += "?" + wire.Query.Encode()
	}

	var body io.Reader
	if len(wire.Body) > 0 {
		body = bytes.NewReader(wire.Body)
	}

	req, err := http.NewRequestWithContext(ctx, wire.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("submit: build request: %w", err)
	}
	if wire.ContentType != "" {
		req.Header.Set("Content-Type", wire.ContentType)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit: %s %s: %w", wire.Method, wire.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("submit: read response: %w", err)
	}

	var decoded envelope
	if len(payload) > 0 {
		// A malformed envelope degrades to the status-code check below.
		_ = json.Unmarshal(payload, &decoded)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !decoded.Success {
		return nil, &APIError{
			Status:    resp.StatusCode,
			Message:   serverMessage(decoded),
			RequestID: requestID,
		}
	}

	return &Response{
		Message:   decoded.Message,
		Data:      decoded.Data,
		RequestID: requestID,
	}, nil
}

func serverMessage(decoded envelope) string {
	if msg := strings.TrimSpace(decoded.Error); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(decoded.Message); msg != "" {
		return msg
	}
	return genericFailure
}
