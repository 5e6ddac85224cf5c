package session

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"mlb-fanbot/internal/domain"
	"mlb-fanbot/internal/logging"
	"mlb-fanbot/internal/metrics"
	"mlb-fanbot/internal/providers"
	"mlb-fanbot/internal/schedule"
	"mlb-fanbot/internal/timeutil"
)

// Aggregator fetches the three startup feeds concurrently and fills the
// session state. Teams and standings are mandatory; schedule days degrade
// gracefully when individual fetches fail.
type Aggregator struct {
	provider providers.DataProvider
	state    *State
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewAggregator constructs an aggregator. Logger and metrics may be nil;
// now defaults to time.Now.
func NewAggregator(provider providers.DataProvider, state *State, logger *slog.Logger, rec *metrics.Recorder, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		provider: provider,
		state:    state,
		logger:   logger,
		metrics:  rec,
		now:      now,
	}
}

// LoadAll fetches teams, standings and the schedule window in parallel and
// blocks until all three have completed. A teams or standings failure is
// returned as a *providers.FeedError and leaves the state not ready.
func (a *Aggregator) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := a.now()
		teams, err := a.provider.FetchTeams(ctx)
		a.metrics.RecordFeedFetch(providers.FeedTeams, time.Since(start), err)
		if err != nil {
			return &providers.FeedError{Feed: providers.FeedTeams, Err: err}
		}
		a.state.SetTeams(teams)
		logging.Info(a.logger, "teams feed loaded", logging.FieldFeed, providers.FeedTeams, logging.FieldCount, len(teams))
		return nil
	})

	g.Go(func() error {
		start := a.now()
		entries, err := a.provider.FetchStandings(ctx)
		a.metrics.RecordFeedFetch(providers.FeedStandings, time.Since(start), err)
		if err != nil {
			return &providers.FeedError{Feed: providers.FeedStandings, Err: err}
		}
		a.state.SetStandings(entries)
		logging.Info(a.logger, "standings feed loaded", logging.FieldFeed, providers.FeedStandings, logging.FieldCount, len(entries))
		return nil
	})

	ref := a.now()
	g.Go(func() error {
		merged := a.loadScheduleWindow(ctx, ref)
		a.state.SetSchedule(merged)
		return nil
	})

	return g.Wait()
}

// loadScheduleWindow fetches the seven days after ref concurrently. Days
// that fail are logged and skipped; the merge runs over whatever arrived,
// in calendar order regardless of response order.
func (a *Aggregator) loadScheduleWindow(ctx context.Context, ref time.Time) domain.MergedSchedule {
	fragments := make([]*domain.ScheduleFragment, schedule.WindowDays)

	var g errgroup.Group
	for i := 0; i < schedule.WindowDays; i++ {
		i := i
		day := ref.AddDate(0, 0, i+1)
		g.Go(func() error {
			date := timeutil.FormatDate(day)
			start := a.now()
			games, err := a.provider.FetchGamesByDate(ctx, date)
			a.metrics.RecordFeedFetch(providers.FeedSchedule, time.Since(start), err)
			if err != nil {
				logging.Warn(a.logger, "schedule day fetch failed",
					logging.FieldFeed, providers.FeedSchedule,
					logging.FieldDate, date,
					"error", err)
				return nil
			}
			fragments[i] = &domain.ScheduleFragment{
				Day:   timeutil.FormatMonthDay(day),
				Games: games,
			}
			return nil
		})
	}
	g.Wait()

	received := make([]domain.ScheduleFragment, 0, schedule.WindowDays)
	for _, f := range fragments {
		if f != nil {
			received = append(received, *f)
		}
	}
	logging.Info(a.logger, "schedule window loaded",
		logging.FieldFeed, providers.FeedSchedule,
		logging.FieldCount, len(received))
	return schedule.Merge(ref, received)
}
