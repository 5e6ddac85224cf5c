package providers

import (
	"errors"
	"fmt"
)

// Feed names used in errors, logs and metrics.
const (
	FeedTeams     = "teams"
	FeedStandings = "standings"
	FeedSchedule  = "schedule"
)

// FeedError marks the failure of one of the startup data feeds. A teams or
// standings FeedError is fatal: the conversation never starts without them.
type FeedError struct {
	Feed string
	Err  error
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("loading %s feed: %v", e.Feed, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// AsFeedError attempts to unwrap an error into a FeedError.
func AsFeedError(err error) (*FeedError, bool) {
	var feedErr *FeedError
	if errors.As(err, &feedErr) {
		return feedErr, true
	}
	return nil, false
}
