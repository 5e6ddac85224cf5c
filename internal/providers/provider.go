package providers

import (
	"context"

	"mlb-fanbot/internal/domain"
)

// TeamProvider fetches the team snapshot.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// StandingsProvider fetches the current season standings in provider order.
// Division rank is positional, so implementations must preserve ordering.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) ([]domain.StandingEntry, error)
}

// ScheduleProvider fetches one calendar day's games.
// The date parameter is a YYYY-MM-DD string.
type ScheduleProvider interface {
	FetchGamesByDate(ctx context.Context, date string) ([]domain.Game, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	StandingsProvider
	ScheduleProvider
}
