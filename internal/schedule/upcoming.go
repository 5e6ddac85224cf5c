package schedule

import (
	"strings"
	"time"

	"mlb-fanbot/internal/domain"
	"mlb-fanbot/internal/timeutil"
)

// MaxUpcomingGames caps how many games the upcoming-schedule text lists.
const MaxUpcomingGames = 5

// Upcoming renders the next games for the named team, at most
// MaxUpcomingGames within the WindowDays after ref. Fewer games near the
// end of the season is normal, not an error. The team string is whatever
// the user said; it matches a team when it contains the roster name.
func Upcoming(ref time.Time, team string, teams []domain.Team, merged domain.MergedSchedule) string {
	key := resolveKey(team, teams)
	if key == "" || len(merged.Games) == 0 {
		return "No schedule data found for " + team
	}

	var b strings.Builder
	b.WriteString("Upcoming schedule for the " + team + ":\n")

	gameCount := 0
	day := ref
	for i := 0; i < WindowDays && gameCount < MaxUpcomingGames; i++ {
		day = day.AddDate(0, 0, 1)
		want := timeutil.FormatMonthDay(day)
		for _, g := range merged.Games {
			if g.Day != want {
				continue
			}
			if g.AwayTeam == key {
				b.WriteString(g.Day + " " + g.Time + " @ " + g.HomeTeam + "\n")
			} else if g.HomeTeam == key {
				b.WriteString(g.Day + " " + g.Time + " vs. " + g.AwayTeam + "\n")
			} else {
				continue
			}
			gameCount++
			// One game per team per day.
			break
		}
	}

	return b.String()
}

func resolveKey(team string, teams []domain.Team) string {
	for _, t := range teams {
		if strings.Contains(team, t.Name) {
			return t.Key
		}
	}
	return ""
}
