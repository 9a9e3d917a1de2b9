package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

// client is a small JSON-over-HTTP helper bound to the configured API
// base URL.
type client struct {
	opts *options
	http *http.Client
}

func newClient(opts *options) *client {
	return &client{
		opts: opts,
		http: &http.Client{Timeout: opts.cfg.RequestTimeout},
	}
}

// projectQuery builds the ?project= suffix every project-scoped route
// takes.
func (c *client) projectQuery() (string, error) {
	if c.opts.project == "" {
		return "", fmt.Errorf("%w: no project path (use --project or run inside a git repository)", errUsage)
	}
	return "project=" + url.QueryEscape(c.opts.project), nil
}

func (c *client) get(ctx context.Context, path string, out interface{}) error {
	return c.request(ctx, http.MethodGet, path, nil, out)
}

func (c *client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.request(ctx, http.MethodPost, path, body, out)
}

func (c *client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.request(ctx, http.MethodPatch, path, body, out)
}

func (c *client) delete(ctx context.Context, path string, out interface{}) error {
	return c.request(ctx, http.MethodDelete, path, nil, out)
}

func (c *client) request(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.cfg.APIBaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach ijoka server at %s: %w", c.opts.cfg.APIBaseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// render prints the result: raw JSON under --json, the human line
// otherwise.
func (c *client) render(v interface{}, human string) error {
	if c.opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if human != "" {
		fmt.Println(human)
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
