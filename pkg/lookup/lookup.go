// Package lookup fetches the dynamic option lists backing dropdown fields.
// Option catalogs come from the admin API's per-screen dropdown endpoints and
// are applied to a schema before the form is rendered.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-clubadmin/pkg/schema"
)

// Endpoint identifies one dropdown endpoint of the admin API.
type Endpoint string

const (
	EndpointMatches        Endpoint = "/api/admin/matches/dropdowns"
	EndpointMatchReports   Endpoint = "/api/admin/match-reports/dropdowns"
	EndpointMatchGalleries Endpoint = "/api/admin/match-galleries/dropdowns"
)

// Catalog holds the dynamic option lists for one console screen. Lists not
// served by the endpoint stay nil.
type Catalog struct {
	Teams         []schema.Option `json:"teams"`
	Competitions  []schema.Option `json:"competitions"`
	Seasons       []schema.Option `json:"seasons"`
	RecentMatches []schema.Option `json:"recentMatches"`
}

// For returns the option list backing a dynamic source. An unknown source or
// a nil catalog yields nil.
func (c *Catalog) For(source schema.DynamicSource) []schema.Option {
	if c == nil {
		return nil
	}
	switch source {
	case schema.SourceTeams:
		return c.Teams
	case schema.SourceCompetitions:
		return c.Competitions
	case schema.SourceSeasons:
		return c.Seasons
	case schema.SourceRecentMatches:
		return c.RecentMatches
	default:
		return nil
	}
}

// Populate fills every dynamic-source field in the schema with options from
// the catalog. Fields whose source the catalog does not carry are reset to an
// empty slice so a stale list never survives a refresh.
func Populate(doc *schema.Schema, catalog *Catalog) {
	if doc == nil {
		return
	}
	for i := range doc.Fields {
		field := &doc.Fields[i]
		if field.DynamicSource == "" {
			continue
		}
		options := catalog.For(field.DynamicSource)
		if options == nil {
			field.Options = []schema.Option{}
			continue
		}
		field.Options = append([]schema.Option(nil), options...)
	}
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

// WithAuthToken sets a bearer token attached to every request.
func WithAuthToken(token string) ClientOption {
	return func(c *Client) {
		c.authToken = strings.TrimSpace(token)
	}
}

// Client fetches option catalogs from the admin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// NewClient constructs a lookup client for the admin API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("lookup: base URL is required")
	}
	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type catalogEnvelope struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Data    *Catalog `json:"data,omitempty"`
}

// Fetch retrieves the option catalog from one dropdown endpoint. On any
// failure it returns an empty catalog alongside the error so a caller can
// still render the form with empty dropdowns.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+string(endpoint), nil)
	if err != nil {
		return &Catalog{}, fmt.Errorf("lookup: build request: %w", err)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Catalog{}, fmt.Errorf("lookup: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &Catalog{}, fmt.Errorf("lookup: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Catalog{}, fmt.Errorf("lookup: GET %s: status %d", endpoint, resp.StatusCode)
	}

	var decoded catalogEnvelope
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return &Catalog{}, fmt.Errorf("lookup: decode catalog: %w", err)
	}
	if !decoded.Success || decoded.Data == nil {
		msg := strings.TrimSpace(decoded.Error)
		if msg == "" {
			msg = "catalog unavailable"
		}
		return &Catalog{}, fmt.Errorf("lookup: GET %s: %s", endpoint, msg)
	}
	return decoded.Data, nil
}
