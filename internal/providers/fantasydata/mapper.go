package fantasydata

import "mlb-fanbot/internal/domain"

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		Key:  t.Key,
		Name: t.Name,
	}
}

func mapStanding(s standingResponse) domain.StandingEntry {
	return domain.StandingEntry{
		League:   s.League,
		Division: s.Division,
		Name:     s.Name,
	}
}

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		Day:      monthDay(g.Day),
		Time:     clockTime(g.DateTime),
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
	}
}

// monthDay extracts MM-DD from an ISO timestamp (positions 5..9).
func monthDay(iso string) string {
	if len(iso) < 10 {
		return ""
	}
	return iso[5:10]
}

// clockTime extracts HH:MM from an ISO timestamp (positions 11..15).
func clockTime(iso string) string {
	if len(iso) < 16 {
		return ""
	}
	return iso[11:16]
}
