package speech

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
	"time"
)

const (
	synthesizePath     = "/v1/synthesize"
	defaultHTTPTimeout = 30 * time.Second
)

// SynthesizerConfig controls the connection to the speech-synthesis service.
type SynthesizerConfig struct {
	BaseURL    string
	APIKey     string
	Voice      string
	HTTPClient *http.Client
}

// Synthesizer renders text to WAV audio through an HTTP synthesis service.
type Synthesizer struct {
	baseURL    string
	apiKey     string
	voice      string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewSynthesizer constructs a synthesizer with the provided configuration.
func NewSynthesizer(cfg SynthesizerConfig) *Synthesizer {
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Synthesizer{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		voice:      cfg.Voice,
		httpClient: doer,
	}
}

// Synthesize renders the text as a WAV byte stream.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if s.voice != "" {
		params.Set("voice", s.voice)
	}
	endpoint := s.baseURL + synthesizePath
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/wav")
	if s.apiKey != "" {
		req.SetBasicAuth("apikey", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("speech: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return io.ReadAll(resp.Body)
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}
