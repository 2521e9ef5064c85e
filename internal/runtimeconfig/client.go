// Package runtimeconfig fetches the server's runtime settings for clients.
package runtimeconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/rs/zerolog/log"
)

// Path is the endpoint serving the runtime configuration
const Path = "/api/runtime-config"

// Client loads the runtime configuration once and caches it
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	cached *domain.RuntimeConfig
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Get returns the runtime configuration. Failures are logged and yield the
// defaults without being cached, so the next call retries.
func (c *Client) Get(ctx context.Context) domain.RuntimeConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return *c.cached
	}

	cfg, err := c.fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Str("url", c.baseURL+Path).Msg("failed to load runtime config, using defaults")
		return domain.DefaultRuntimeConfig()
	}

	c.cached = &cfg
	return cfg
}

func (c *Client) fetch(ctx context.Context) (domain.RuntimeConfig, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+Path, nil)
	if err != nil {
		return domain.RuntimeConfig{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RuntimeConfig{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RuntimeConfig{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var raw struct {
		FolderDeleteMode string `json:"FOLDER_DELETE_MODE"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return domain.RuntimeConfig{}, fmt.Errorf("failed to decode runtime config: %w", err)
	}

	mode, err := domain.ParseFolderDeleteMode(raw.FolderDeleteMode)
	if err != nil {
		return domain.RuntimeConfig{}, err
	}

	return domain.RuntimeConfig{FolderDeleteMode: mode}, nil
}
