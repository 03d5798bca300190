package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alfredjeanlab/questgraph/internal/idgen"
	"github.com/alfredjeanlab/questgraph/internal/model"
)

// HTTPClient implements QuestsClient using the quests HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// GetQuests fetches open quests with labors expanded. The query is fixed:
// closed quests are filtered server-side and pagination is disabled.
func (c *HTTPClient) GetQuests(ctx context.Context) ([]*model.Quest, error) {
	q := url.Values{}
	q.Set("filterClosed", "true")
	q.Set("limit", "all")
	q.Set("expand", "labors")

	var resp struct {
		Quests []*model.Quest `json:"quests"`
	}
	if err := c.getJSON(ctx, "/api/v1/quests?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Quests, nil
}

// GetFates fetches all fates with event types expanded, unfiltered.
func (c *HTTPClient) GetFates(ctx context.Context) ([]*model.Fate, error) {
	q := url.Values{}
	q.Set("expand", "eventtypes")
	q.Set("limit", "all")

	var resp struct {
		Fates []*model.Fate `json:"fates"`
	}
	if err := c.getJSON(ctx, "/api/v1/fates?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Fates, nil
}

// Health probes the server health endpoint.
func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/api/v1/health", &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// getJSON performs a GET request and decodes the JSON response into result.
// Every request carries a generated X-Request-ID for server-side correlation.
func (c *HTTPClient) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if rid, err := idgen.Generate(); err == nil {
		req.Header.Set("X-Request-ID", rid)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
