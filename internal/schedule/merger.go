package schedule

import (
	"time"

	"mlb-fanbot/internal/domain"
	"mlb-fanbot/internal/timeutil"
)

// WindowDays is the length of the schedule window fetched at startup.
const WindowDays = 7

// Merge combines independently fetched day fragments into calendar order.
// The day fetches race to completion, so fragments arrive in arbitrary
// order; walking the known window from ref+1 and matching each day on
// month-day restores order without a sort, and naturally skips days whose
// fragment is missing. Games keep their fragment's internal order.
func Merge(ref time.Time, fragments []domain.ScheduleFragment) domain.MergedSchedule {
	var merged domain.MergedSchedule

	day := ref
	for i := 0; i < WindowDays; i++ {
		day = day.AddDate(0, 0, 1)
		want := timeutil.FormatMonthDay(day)
		for _, frag := range fragments {
			if frag.Day == want {
				merged.Games = append(merged.Games, frag.Games...)
				break
			}
		}
	}

	return merged
}
