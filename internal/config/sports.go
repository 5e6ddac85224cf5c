package config

// SportsConfig controls how we talk to the sports-data API.
type SportsConfig struct {
	BaseURL            string
	SubscriptionKey    string
	Season             string
	ScheduleMaxRetries int
}

func loadSports() SportsConfig {
	return SportsConfig{
		BaseURL:            envOrDefault(envSportsBaseURL, ""),
		SubscriptionKey:    envOrDefault(envSportsKey, ""),
		Season:             envOrDefault(envSportsSeason, ""),
		ScheduleMaxRetries: intEnvOrDefault(envScheduleMaxRetries, defaultScheduleMaxRetries),
	}
}
