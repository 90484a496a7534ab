package jellyfin

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

const (
	authHeader     = "X-Emby-Token"
	requestTimeout = 30 * time.Second
)

// HTTPDoer describes the HTTP client used for server calls.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one Jellyfin server.
type Client struct {
	baseURL string
	token   string
	http    HTTPDoer
	dryRun  bool
	logger  *slog.Logger
}

// Option customises Client construction.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (used in tests).
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.http = doer }
}

// WithDryRun makes every mutating call log its intent and return success
// without network I/O. Reads still hit the server.
func WithDryRun(dryRun bool) Option {
	return func(c *Client) { c.dryRun = dryRun }
}

// WithLogger attaches the logger used for request and dry-run logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a client for the given server. The base URL is stored without a
// trailing slash.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		http:    &http.Client{Timeout: requestTimeout},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string { return c.baseURL }

// DryRun reports whether mutating calls are suppressed.
func (c *Client) DryRun() bool { return c.dryRun }

// SystemInfo fetches server identity and version.
func (c *Client) SystemInfo(ctx context.Context) (SystemInfo, error) {
	var info SystemInfo
	err := c.call(ctx, http.MethodGet, "/System/Info", nil, nil, &info)
	return info, err
}

// SystemConfiguration fetches the global server configuration as a generic
// document so unspecified keys survive a read-modify-write round trip.
func (c *Client) SystemConfiguration(ctx context.Context) (map[string]any, error) {
	var cfg map[string]any
	if err := c.call(ctx, http.MethodGet, "/System/Configuration", nil, nil, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateSystemConfiguration replaces the global server configuration.
func (c *Client) UpdateSystemConfiguration(ctx context.Context, cfg map[string]any) error {
	return c.call(ctx, http.MethodPost, "/System/Configuration", nil, cfg, nil)
}

// VirtualFolders lists the existing libraries.
func (c *Client) VirtualFolders(ctx context.Context) ([]VirtualFolder, error) {
	var folders []VirtualFolder
	if err := c.call(ctx, http.MethodGet, "/Library/VirtualFolders", nil, nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateVirtualFolder creates a library with a single path. The server takes
// creation parameters in the query string; refreshLibrary stays false so the
// initial scan does not race the options write that follows.
func (c *Client) CreateVirtualFolder(ctx context.Context, name, collectionType, path string) error {
	query := url.Values{}
	query.Set("name", name)
	query.Set("collectionType", collectionType)
	query.Set("refreshLibrary", "false")
	if path != "" {
		query.Set("paths", path)
	}
	return c.call(ctx, http.MethodPost, "/Library/VirtualFolders", query, nil, nil)
}

// UpdateLibraryOptions pushes the full options object for one library.
func (c *Client) UpdateLibraryOptions(ctx context.Context, itemID string, opts LibraryOptions) error {
	query := url.Values{}
	query.Set("id", itemID)
	return c.call(ctx, http.MethodPost, "/Library/VirtualFolders/LibraryOptions", query, opts, nil)
}

// ScheduledTasks lists the server's scheduled tasks.
func (c *Client) ScheduledTasks(ctx context.Context) ([]TaskInfo, error) {
	var tasks []TaskInfo
	if err := c.call(ctx, http.MethodGet, "/ScheduledTasks", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskTriggers replaces the trigger list of one task. An empty list
// clears the task's schedule.
func (c *Client) UpdateTaskTriggers(ctx context.Context, taskID string, triggers []TaskTrigger) error {
	if triggers == nil {
		triggers = []TaskTrigger{}
	}
	path := fmt.Sprintf("/ScheduledTasks/%s/Triggers", url.PathEscape(taskID))
	return c.call(ctx, http.MethodPost, path, nil, triggers, nil)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.dryRun && method != http.MethodGet {
		c.logDryRun(method, path, query, body)
		return nil
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return wrapCall(ErrConnectivity, method, path, err)
	}
	req.Header.Set(authHeader, c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("jellyfin request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapCall(ErrConnectivity, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return wrapCall(ErrConnectivity, method, path, err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(method, path, resp.StatusCode, payload)
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return wrapCall(ErrRequest, method, path, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) logDryRun(method, path string, query url.Values, body any) {
	attrs := []any{"method", method, "path", path}
	if len(query) > 0 {
		attrs = append(attrs, "query", query.Encode())
	}
	if body != nil {
		if encoded, err := json.MarshalIndent(body, "", "  "); err == nil {
			attrs = append(attrs, "body", string(encoded))
		}
	}
	c.logger.Info("dry-run: would send", attrs...)
}
