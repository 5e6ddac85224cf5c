package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about external calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu            sync.Mutex
	feeds         map[string]*feedStats
	dialogTrips   int
	dialogErrors  int
	toneCalls     int
	messagesSent  int
	messageErrors int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds: make(map[string]*feedStats),
		otel:  otel,
	}
}

// RecordFeedFetch increments counters for one data-feed call and stores the
// last observed latency.
func (r *Recorder) RecordFeedFetch(feed string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureFeed(feed)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedFetch(feed, duration, err)
	}
}

// RecordDialogRoundTrip tracks one round trip through the dialog engine.
func (r *Recorder) RecordDialogRoundTrip(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.dialogTrips++
	if err != nil {
		r.dialogErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDialogRoundTrip(duration, err)
	}
}

// RecordToneCall tracks one sentiment-analysis call.
func (r *Recorder) RecordToneCall(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.toneCalls++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordToneCall(duration, err)
	}
}

// RecordMessageSent tracks one outbound text message.
func (r *Recorder) RecordMessageSent(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.messagesSent++
	if err != nil {
		r.messageErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMessageSent(err)
	}
}

// FeedCalls returns the total attempts recorded for a feed.
func (r *Recorder) FeedCalls(feed string) int {
	return r.FeedSnapshot(feed).Calls
}

// FeedErrors returns the total failed attempts recorded for a feed.
func (r *Recorder) FeedErrors(feed string) int {
	return r.FeedSnapshot(feed).Errors
}

// LastFeedLatency returns the last recorded latency for a feed call.
func (r *Recorder) LastFeedLatency(feed string) time.Duration {
	return r.FeedSnapshot(feed).LastCallLatency
}

// DialogRoundTrips returns the total dialog round trips recorded.
func (r *Recorder) DialogRoundTrips() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dialogTrips
}

// MessagesSent returns the total outbound messages recorded.
func (r *Recorder) MessagesSent() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.messagesSent
}

// FeedSnapshot is a copy of the current stats for one feed.
type FeedSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) FeedSnapshot(feed string) FeedSnapshot {
	if r == nil {
		return FeedSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.feeds[feed]; ok && stats != nil {
		return FeedSnapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return FeedSnapshot{}
}

func (r *Recorder) ensureFeed(feed string) *feedStats {
	stats, ok := r.feeds[feed]
	if !ok {
		stats = &feedStats{}
		r.feeds[feed] = stats
	}
	return stats
}
