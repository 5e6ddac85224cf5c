package dialog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultVersion     = "2018-02-16"
	defaultHTTPTimeout = 15 * time.Second
)

// Reply is the engine's answer to one round trip: the replacement context
// and the utterance to speak (may be empty).
type Reply struct {
	Context Context
	Output  string
}

// Engine is one round trip through the external dialog engine.
type Engine interface {
	Send(ctx context.Context, utterance string, conv Context) (Reply, error)
}

// Config controls how the client reaches the dialog engine.
type Config struct {
	BaseURL     string
	WorkspaceID string
	APIKey      string
	Version     string
	HTTPClient  *http.Client
}

// Client talks to a hosted dialog engine over its message endpoint.
type Client struct {
	baseURL     string
	workspaceID string
	apiKey      string
	version     string
	httpClient  httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a dialog client with the provided configuration.
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
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		workspaceID: cfg.WorkspaceID,
		apiKey:      cfg.APIKey,
		version:     version,
		httpClient:  doer,
	}
}

type messageRequest struct {
	Input   messageInput `json:"input"`
	Context Context      `json:"context,omitempty"`
}

type messageInput struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Context Context `json:"context"`
	Output  struct {
		Text []string `json:"text"`
	} `json:"output"`
}

// Send posts one utterance and the current context, returning the engine's
// replacement context and first output line.
func (c *Client) Send(ctx context.Context, utterance string, conv Context) (Reply, error) {
	body, err := json.Marshal(messageRequest{
		Input:   messageInput{Text: utterance},
		Context: conv,
	})
	if err != nil {
		return Reply{}, err
	}

	url := fmt.Sprintf("%s/v1/workspaces/%s/message?version=%s", c.baseURL, c.workspaceID, c.version)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Reply{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.SetBasicAuth("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reply{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Reply{}, fmt.Errorf("dialog: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reply{}, err
	}

	reply := Reply{Context: payload.Context}
	if reply.Context == nil {
		reply.Context = Context{}
	}
	if len(payload.Output.Text) > 0 {
		reply.Output = payload.Output.Text[0]
	}
	return reply, nil
}
