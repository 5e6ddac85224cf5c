package sentiment

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
	defaultVersion     = "2017-09-21"
	defaultHTTPTimeout = 15 * time.Second
)

// minScore is the floor below which no tone counts as dominant.
const minScore = 0.01

// DefaultTone is used when nothing scores above the floor.
const DefaultTone = "default"

// Tone is one scored emotional category.
type Tone struct {
	ID    string
	Score float64
}

// Analyzer scores the emotional tone of a piece of text.
type Analyzer interface {
	Tone(ctx context.Context, text string) ([]Tone, error)
}

// Dominant picks the tone with the highest score. Ties keep the earlier
// tone. Anything at or below the floor falls back to DefaultTone.
func Dominant(tones []Tone) string {
	best := DefaultTone
	max := minScore
	for _, t := range tones {
		if t.Score > max {
			max = t.Score
			best = t.ID
		}
	}
	return best
}

// Config controls how the client reaches the tone service.
type Config struct {
	BaseURL    string
	APIKey     string
	Version    string
	HTTPClient *http.Client
}

// Client calls a hosted tone-analysis service.
type Client struct {
	baseURL    string
	apiKey     string
	version    string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a tone client with the provided configuration.
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
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		version:    version,
		httpClient: doer,
	}
}

type toneResponse struct {
	DocumentTone struct {
		ToneCategories []struct {
			Tones []struct {
				Score  float64 `json:"score"`
				ToneID string  `json:"tone_id"`
			} `json:"tones"`
		} `json:"tone_categories"`
	} `json:"document_tone"`
}

// Tone scores the given text, returning the first category's tones.
func (c *Client) Tone(ctx context.Context, text string) ([]Tone, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v3/tone?version=%s", c.baseURL, c.version)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
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
		return nil, fmt.Errorf("sentiment: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload toneResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if len(payload.DocumentTone.ToneCategories) == 0 {
		return nil, nil
	}
	raw := payload.DocumentTone.ToneCategories[0].Tones
	tones := make([]Tone, 0, len(raw))
	for _, t := range raw {
		tones = append(tones, Tone{ID: t.ToneID, Score: t.Score})
	}
	return tones, nil
}
