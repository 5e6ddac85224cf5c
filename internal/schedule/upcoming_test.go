package schedule

import (
	"strings"
	"testing"
	"time"

	"mlb-fanbot/internal/domain"
)

var upcomingRef = time.Date(2017, time.September, 28, 0, 0, 0, 0, time.UTC)

var rosterTeams = []domain.Team{
	{Key: "BOS", Name: "Red Sox"},
	{Key: "NYY", Name: "Yankees"},
	{Key: "HOU", Name: "Astros"},
}

func weekSchedule(days int) domain.MergedSchedule {
	var merged domain.MergedSchedule
	day := upcomingRef
	for i := 0; i < days; i++ {
		day = day.AddDate(0, 0, 1)
		md := day.Format("01-02")
		merged.Games = append(merged.Games,
			domain.Game{Day: md, Time: "19:10", HomeTeam: "BOS", AwayTeam: "HOU"},
			domain.Game{Day: md, Time: "19:05", HomeTeam: "NYY", AwayTeam: "TOR"},
		)
	}
	return merged
}

func TestUpcomingStopsAtFiveGames(t *testing.T) {
	got := Upcoming(upcomingRef, "boston Red Sox", rosterTeams, weekSchedule(7))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Header plus five games, even though seven days have games.
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 games, got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "Upcoming schedule for the boston Red Sox:" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "09-29 19:10 vs. HOU" {
		t.Fatalf("unexpected first game line: %s", lines[1])
	}
}

func TestUpcomingReturnsShortListAtSeasonEnd(t *testing.T) {
	got := Upcoming(upcomingRef, "Red Sox", rosterTeams, weekSchedule(3))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 games, got %d lines:\n%s", len(lines), got)
	}
}

func TestUpcomingFormatsAwayGames(t *testing.T) {
	merged := domain.MergedSchedule{Games: []domain.Game{
		{Day: "09-29", Time: "20:10", HomeTeam: "SEA", AwayTeam: "HOU"},
	}}
	got := Upcoming(upcomingRef, "Astros", rosterTeams, merged)
	if !strings.Contains(got, "09-29 20:10 @ SEA") {
		t.Fatalf("expected away-game format, got:\n%s", got)
	}
}

func TestUpcomingUnknownTeam(t *testing.T) {
	got := Upcoming(upcomingRef, "Springfield Isotopes", rosterTeams, weekSchedule(3))
	if got != "No schedule data found for Springfield Isotopes" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestUpcomingEmptySchedule(t *testing.T) {
	got := Upcoming(upcomingRef, "Red Sox", rosterTeams, domain.MergedSchedule{})
	if !strings.HasPrefix(got, "No schedule data found") {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestUpcomingOneGamePerDay(t *testing.T) {
	// A doubleheader day still contributes one line.
	merged := domain.MergedSchedule{Games: []domain.Game{
		{Day: "09-29", Time: "13:05", HomeTeam: "BOS", AwayTeam: "HOU"},
		{Day: "09-29", Time: "19:10", HomeTeam: "BOS", AwayTeam: "HOU"},
	}}
	got := Upcoming(upcomingRef, "Red Sox", rosterTeams, merged)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 game, got:\n%s", got)
	}
}
