package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"mlb-fanbot/internal/domain"
	"mlb-fanbot/internal/logging"
)

const (
	defaultDayRetries     = 2
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider, retrying single-day schedule
// fetches with exponential backoff. Teams and standings pass through
// untouched: their failure is fatal and retrying would only delay startup.
type retryingProvider struct {
	inner      DataProvider
	logger     *slog.Logger
	maxRetries uint64
	initial    time.Duration
}

// NewRetryingProvider wraps the given provider with schedule-day retries.
// If maxRetries/initial are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxRetries int, initial time.Duration) DataProvider {
	if maxRetries <= 0 {
		maxRetries = defaultDayRetries
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		maxRetries: uint64(maxRetries),
		initial:    initial,
	}
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return r.inner.FetchTeams(ctx)
}

func (r *retryingProvider) FetchStandings(ctx context.Context) ([]domain.StandingEntry, error) {
	return r.inner.FetchStandings(ctx)
}

func (r *retryingProvider) FetchGamesByDate(ctx context.Context, date string) ([]domain.Game, error) {
	var games []domain.Game
	attempt := 0

	op := func() error {
		attempt++
		fetched, err := r.inner.FetchGamesByDate(ctx, date)
		if err != nil {
			logging.Warn(r.logger, "schedule day fetch retry",
				logging.FieldDate, date,
				"attempt", attempt,
				"error", err,
			)
			return err
		}
		games = fetched
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.initial
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, r.maxRetries), ctx)

	if err := backoff.Retry(op, bo); err != nil {
		logging.Warn(r.logger, "schedule day fetch failed",
			logging.FieldDate, date,
			"attempts", attempt,
			"error", err,
		)
		return nil, err
	}
	return games, nil
}
