package headlines

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultVersion     = "2018-03-05"
	defaultHTTPTimeout = 15 * time.Second
)

// Source returns recent news headlines for a topic, each formatted as
// "title - url".
type Source interface {
	Headlines(ctx context.Context, topic string, count int) ([]string, error)
}

// Config controls how the client reaches the news-discovery service.
type Config struct {
	BaseURL       string
	APIKey        string
	EnvironmentID string
	CollectionID  string
	Version       string
	HTTPClient    *http.Client
}

// Client queries a hosted document-discovery service for news results.
type Client struct {
	baseURL       string
	apiKey        string
	environmentID string
	collectionID  string
	version       string
	httpClient    httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a discovery client with the provided configuration.
func NewClient(cfg Config) *Client {
	version := cfg.Version
	if version == "" {
		version = defaultVersion
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		environmentID: cfg.EnvironmentID,
		collectionID:  cfg.CollectionID,
		version:       version,
		httpClient:    doer,
	}
}

type queryResponse struct {
	Results []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"results"`
}

// Headlines runs a natural-language query and formats each result as
// "title - url".
func (c *Client) Headlines(ctx context.Context, topic string, count int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/v1/environments/%s/collections/%s/query",
		c.baseURL, c.environmentID, c.collectionID)

	params := url.Values{}
	params.Set("version", c.version)
	params.Set("natural_language_query", topic)
	params.Set("count", fmt.Sprintf("%d", count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.SetBasicAuth("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("headlines: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		lines = append(lines, r.Title+" - "+r.URL)
	}
	return lines, nil
}
