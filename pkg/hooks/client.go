package hooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// APIClient is the thin HTTP client the adapter and CLI use to reach the
// server.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client against the given base URL.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// PostEvent delivers one event to POST /api/v1/events.
func (c *APIClient) PostEvent(ctx context.Context, req models.IngestEventRequest) (*models.IngestEventResponse, error) {
	var resp models.IngestEventResponse
	if err := c.postJSON(ctx, "/api/v1/events", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EndSession reports session end with captured commits.
func (c *APIClient) EndSession(ctx context.Context, req models.SessionEndRequest) error {
	return c.postJSON(ctx, "/api/v1/sessions/end", req, nil)
}

// GetStatus fetches the project status view.
func (c *APIClient) GetStatus(ctx context.Context, projectPath string) (*models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := c.getJSON(ctx, "/api/v1/status?project="+url.QueryEscape(projectPath), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *APIClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
