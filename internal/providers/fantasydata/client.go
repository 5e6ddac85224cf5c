package fantasydata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mlb-fanbot/internal/domain"
	"mlb-fanbot/internal/timeutil"
)

// Config controls how the fantasydata client reaches the upstream API.
type Config struct {
	BaseURL         string
	SubscriptionKey string
	// Season is the season year used in standings paths, e.g. "2017".
	// Empty means the current year.
	Season     string
	HTTPClient *http.Client
}

// Client fetches MLB data from the fantasydata API and maps it to domain models.
type Client struct {
	baseURL         string
	subscriptionKey string
	season          string
	httpClient      httpDoer
	now             func() time.Time
}

// NewClient constructs a fantasydata client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL),
		subscriptionKey: cfg.SubscriptionKey,
		season:          cfg.Season,
		httpClient:      resolveHTTPClient(cfg.HTTPClient),
		now:             time.Now,
	}
}

// FetchTeams retrieves the current team snapshot.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var payload []teamResponse
	if err := c.get(ctx, "/teams", &payload); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(payload))
	for _, t := range payload {
		teams = append(teams, mapTeam(t))
	}
	return teams, nil
}

// FetchStandings retrieves the season standings in provider order.
func (c *Client) FetchStandings(ctx context.Context) ([]domain.StandingEntry, error) {
	var payload []standingResponse
	if err := c.get(ctx, "/Standings/"+c.resolveSeason(), &payload); err != nil {
		return nil, err
	}

	entries := make([]domain.StandingEntry, 0, len(payload))
	for _, s := range payload {
		entries = append(entries, mapStanding(s))
	}
	return entries, nil
}

// FetchGamesByDate retrieves one calendar day's games. The date is a
// YYYY-MM-DD string.
func (c *Client) FetchGamesByDate(ctx context.Context, date string) ([]domain.Game, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("fantasydata: bad date %q: %w", date, err)
	}

	var payload []gameResponse
	path := "/GamesByDate/" + strings.ToUpper(day.Format(gamesDateLayout))
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload))
	for _, g := range payload {
		games = append(games, mapGame(g))
	}
	return games, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set(headerSubscriptionKey, c.subscriptionKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) resolveSeason() string {
	if c.season != "" {
		return c.season
	}
	return strconv.Itoa(c.now().Year())
}
