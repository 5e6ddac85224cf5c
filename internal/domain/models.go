package domain

// Team is one club from the provider's team snapshot. The snapshot is
// taken once per process lifetime and never mutated afterwards.
type Team struct {
	Key  string `json:"Key"`
	Name string `json:"Name"`
}

// StandingEntry is one row of the season standings. Entries for a division
// are contiguous in provider order and ranked top to bottom, so a row's
// rank is its position within its division rather than an explicit field.
type StandingEntry struct {
	League   string `json:"League"`
	Division string `json:"Division"`
	Name     string `json:"Name"`
}

// Game is a single scheduled game, reduced to month-day granularity.
// Team references use the provider's short key (e.g. "BOS").
type Game struct {
	Day      string `json:"Day"`  // MM-DD
	Time     string `json:"Time"` // HH:MM
	HomeTeam string `json:"HomeTeam"`
	AwayTeam string `json:"AwayTeam"`
}

// ScheduleFragment is one calendar day's games, fetched independently of
// the other days in the window.
type ScheduleFragment struct {
	Day   string `json:"Day"` // MM-DD
	Games []Game `json:"Games"`
}

// MergedSchedule is the week's fragments combined into calendar order.
type MergedSchedule struct {
	Games []Game `json:"Games"`
}
