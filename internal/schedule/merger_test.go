package schedule

import (
	"reflect"
	"testing"
	"time"

	"mlb-fanbot/internal/domain"
)

var mergeRef = time.Date(2017, time.September, 28, 0, 0, 0, 0, time.UTC)

func fragment(day string, games ...domain.Game) domain.ScheduleFragment {
	return domain.ScheduleFragment{Day: day, Games: games}
}

func game(day, clock, home, away string) domain.Game {
	return domain.Game{Day: day, Time: clock, HomeTeam: home, AwayTeam: away}
}

func TestMergeOrdersFragmentsByCalendarDay(t *testing.T) {
	fragments := []domain.ScheduleFragment{
		fragment("10-01", game("10-01", "15:05", "BOS", "HOU")),
		fragment("09-29", game("09-29", "19:10", "BOS", "HOU")),
		fragment("09-30", game("09-30", "13:05", "BOS", "HOU")),
	}

	merged := Merge(mergeRef, fragments)

	if len(merged.Games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(merged.Games))
	}
	want := []string{"09-29", "09-30", "10-01"}
	for i, day := range want {
		if merged.Games[i].Day != day {
			t.Fatalf("expected day %s at index %d, got %s", day, i, merged.Games[i].Day)
		}
	}
}

func TestMergeIsOrderIndependent(t *testing.T) {
	a := fragment("09-29", game("09-29", "19:10", "BOS", "HOU"), game("09-29", "19:05", "NYY", "TOR"))
	b := fragment("09-30", game("09-30", "13:05", "BOS", "HOU"))
	c := fragment("10-02", game("10-02", "18:00", "WSH", "NYM"))

	first := Merge(mergeRef, []domain.ScheduleFragment{a, b, c})
	second := Merge(mergeRef, []domain.ScheduleFragment{c, a, b})
	third := Merge(mergeRef, []domain.ScheduleFragment{b, c, a})

	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, third) {
		t.Fatalf("merge is sensitive to fragment order:\n%+v\n%+v\n%+v", first, second, third)
	}
}

func TestMergePreservesGameOrderWithinDay(t *testing.T) {
	frag := fragment("09-29",
		game("09-29", "19:10", "BOS", "HOU"),
		game("09-29", "19:05", "NYY", "TOR"),
		game("09-29", "20:10", "TB", "BAL"),
	)

	merged := Merge(mergeRef, []domain.ScheduleFragment{frag})

	if len(merged.Games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(merged.Games))
	}
	if merged.Games[0].HomeTeam != "BOS" || merged.Games[1].HomeTeam != "NYY" || merged.Games[2].HomeTeam != "TB" {
		t.Fatalf("game order within day changed: %+v", merged.Games)
	}
}

func TestMergeSkipsMissingDays(t *testing.T) {
	fragments := []domain.ScheduleFragment{
		fragment("09-29", game("09-29", "19:10", "BOS", "HOU")),
		fragment("10-01", game("10-01", "15:05", "BOS", "HOU")),
	}

	merged := Merge(mergeRef, fragments)

	if len(merged.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(merged.Games))
	}
	if merged.Games[0].Day != "09-29" || merged.Games[1].Day != "10-01" {
		t.Fatalf("unexpected days: %+v", merged.Games)
	}
}

func TestMergeIgnoresFragmentsOutsideWindow(t *testing.T) {
	fragments := []domain.ScheduleFragment{
		fragment("09-29", game("09-29", "19:10", "BOS", "HOU")),
		// ref+8, outside the 7-day window
		fragment("10-06", game("10-06", "19:10", "BOS", "HOU")),
	}

	merged := Merge(mergeRef, fragments)
	if len(merged.Games) != 1 {
		t.Fatalf("expected out-of-window fragment to be dropped, got %+v", merged.Games)
	}
}

func TestMergeTakesFirstFragmentForDuplicateDay(t *testing.T) {
	fragments := []domain.ScheduleFragment{
		fragment("09-29", game("09-29", "19:10", "BOS", "HOU")),
		fragment("09-29", game("09-29", "19:05", "NYY", "TOR")),
	}

	merged := Merge(mergeRef, fragments)
	if len(merged.Games) != 1 || merged.Games[0].HomeTeam != "BOS" {
		t.Fatalf("expected first duplicate to win, got %+v", merged.Games)
	}
}

func TestMergeEmptyFragmentsYieldsEmptySchedule(t *testing.T) {
	merged := Merge(mergeRef, nil)
	if len(merged.Games) != 0 {
		t.Fatalf("expected empty schedule, got %+v", merged.Games)
	}
}
