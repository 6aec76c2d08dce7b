// Package github implements the versioned object store client against the
// GitHub Contents API. Each collection blob lives at a stable path on one
// branch; blob SHAs serve as the opaque version tokens for optimistic
// concurrency. The client satisfies types.Store so tests and offline callers
// can substitute an in-memory store.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/logbook/pkg/types"
)

const defaultBaseURL = "https://api.github.com"

// Compile-time interface check: Client must implement Store.
var _ types.Store = (*Client)(nil)

// Client talks to the GitHub Contents API for one configured repository.
// It caches the last-seen version token (blob SHA) per path; reads and
// writes both refresh the cache.
type Client struct {
	cfg        types.Config
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger

	mu       sync.Mutex
	versions map[string]string
}

// NewClient creates a store client for the configured repository. The
// credential may be empty, leaving the client read-only.
func NewClient(cfg types.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		logger:     zerolog.Nop(),
		versions:   make(map[string]string),
	}
}

// SetLogger sets the structured logger for the client.
func (c *Client) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetBaseURL overrides the API endpoint. Used by tests to point the client
// at a stub server.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(base, "/")
}

// contentResponse is the subset of the Contents API GET/PUT payloads the
// client consumes.
type contentResponse struct {
	SHA     string `json:"sha"`
	Content string `json:"content"`
}

// putRequest is the Contents API upsert body. SHA is omitted when creating
// a path known not to exist.
type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// putResponse wraps the content object returned by a successful PUT.
type putResponse struct {
	Content *contentResponse `json:"content"`
}

// Read fetches the blob at path on the configured branch. A 404 reports
// Exists=false; any other non-success response is a TransportError. On
// success the version cache is refreshed.
func (c *Client) Read(ctx context.Context, path string) (types.ReadResult, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.baseURL, c.cfg.Owner, c.cfg.Repo, path, url.QueryEscape(c.cfg.EffectiveBranch()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.ReadResult{}, fmt.Errorf("building read request for %s: %w", path, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.ReadResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Debug().Str("path", path).Msg("blob absent")
		return types.ReadResult{Exists: false}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.ReadResult{}, transportError(resp)
	}

	var payload contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.ReadResult{}, fmt.Errorf("decoding read response for %s: %w", path, err)
	}

	content, err := decodeContent(payload.Content)
	if err != nil {
		return types.ReadResult{}, fmt.Errorf("decoding blob content for %s: %w", path, err)
	}

	c.rememberVersion(path, payload.SHA)
	c.logger.Debug().Str("path", path).Str("version", payload.SHA).Msg("blob read")
	return types.ReadResult{Exists: true, Content: content, Version: payload.SHA}, nil
}

// Write upserts the blob at path. The write gate is checked before any
// network call: without owner, repo, branch, and token the write fails fast
// with ErrWriteDisabled. A 409 or 422 response means the expected version is
// stale and surfaces as ErrVersionConflict; any other non-success response
// is a TransportError. On success the version cache is refreshed.
func (c *Client) Write(ctx context.Context, path, content, expectedVersion, message string) (string, error) {
	if !c.cfg.WriteEnabled() {
		return "", types.ErrWriteDisabled
	}

	body, err := json.Marshal(putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		Branch:  c.cfg.EffectiveBranch(),
		SHA:     expectedVersion,
	})
	if err != nil {
		return "", fmt.Errorf("encoding write request for %s: %w", path, err)
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.cfg.Owner, c.cfg.Repo, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building write request for %s: %w", path, err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity {
		c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("write rejected: stale version")
		return "", types.ErrVersionConflict
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", transportError(resp)
	}

	var payload putResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding write response for %s: %w", path, err)
	}

	version := ""
	if payload.Content != nil {
		version = payload.Content.SHA
	}
	c.rememberVersion(path, version)
	c.logger.Debug().Str("path", path).Str("version", version).Msg("blob written")
	return version, nil
}

// Version returns the last-seen version token for path, or empty if the
// path has not been read or written this session.
func (c *Client) Version(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[path]
}

func (c *Client) rememberVersion(path, version string) {
	if version == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[path] = version
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}

// decodeContent unpacks the base64 blob content. The API wraps the payload
// across lines, so line breaks are stripped before decoding.
func decodeContent(encoded string) (string, error) {
	compact := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// transportError drains the response body into a TransportError.
func transportError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return &types.TransportError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
