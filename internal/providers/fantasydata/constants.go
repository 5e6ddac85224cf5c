package fantasydata

import "time"

const (
	defaultBaseURL     = "https://api.fantasydata.net/mlb/v2/JSON"
	defaultHTTPTimeout = 10 * time.Second

	providerName          = "fantasydata"
	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"

	// The games-by-date endpoint takes dates as {season}-{MON}-{DD},
	// e.g. 2017-SEP-28.
	gamesDateLayout = "2006-Jan-02"
)
