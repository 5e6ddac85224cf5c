package notify

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
	defaultTwilioBaseURL = "https://api.twilio.com"
	defaultHTTPTimeout   = 15 * time.Second
)

// Messenger sends a text message and returns the provider's message id.
type Messenger interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// TwilioConfig controls how the client reaches the Twilio REST API.
type TwilioConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	HTTPClient *http.Client
}

// TwilioClient sends SMS messages through the Twilio REST API.
type TwilioClient struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewTwilioClient constructs a Twilio SMS client.
func NewTwilioClient(cfg TwilioConfig) *TwilioClient {
	base := cfg.BaseURL
	if base == "" {
		base = defaultTwilioBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &TwilioClient{
		baseURL:    strings.TrimSuffix(base, "/"),
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
		httpClient: doer,
	}
}

type messageResponse struct {
	SID string `json:"sid"`
}

// Send posts one SMS message and returns the created message sid.
func (c *TwilioClient) Send(ctx context.Context, to, body string) (string, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("notify: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.SID, nil
}
