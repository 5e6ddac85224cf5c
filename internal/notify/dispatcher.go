package notify

import (
	"context"
	"errors"
	"log/slog"

	"mlb-fanbot/internal/dialog"
	"mlb-fanbot/internal/headlines"
	"mlb-fanbot/internal/logging"
	"mlb-fanbot/internal/metrics"
	"mlb-fanbot/internal/phone"
)

// ErrBadNumber reports that the dictated phone number did not parse to a
// complete E.164 number.
var ErrBadNumber = errors.New("notify: incomplete phone number")

const (
	headlineQueryCount = 5
	maxHeadlines       = 2
)

// Source is re-exported here so callers wiring the dispatcher do not need
// to import the headlines package directly.
type Source = headlines.Source

// Dispatcher texts the fan their upcoming schedule plus a couple of fresh
// headlines about their team.
type Dispatcher struct {
	messenger Messenger
	headlines Source
	logger    *slog.Logger
	metrics   *metrics.Recorder

	// number is a configured destination that bypasses number dictation.
	number string
	// lastNumber is the destination of the most recent successful send,
	// reused so the fan is not asked to dictate their number twice.
	lastNumber string
}

// NewDispatcher constructs a dispatcher. Logger and metrics may be nil.
func NewDispatcher(messenger Messenger, source Source, logger *slog.Logger, rec *metrics.Recorder) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		headlines: source,
		logger:    logger,
		metrics:   rec,
	}
}

// SetNumber fixes the destination number, skipping dictated-number parsing.
func (d *Dispatcher) SetNumber(number string) {
	d.number = number
}

// Dispatch resolves the destination number, then sends the schedule text
// followed by up to two deduplicated headlines. The number comes from the
// configured override, the previous successful send, or the dictated
// digits in the conversation context, in that order. The conversation's
// text_sent key records the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, conv dialog.Context, scheduleText string) error {
	to := d.number
	if to == "" && conv.String(dialog.KeyTextSent) == dialog.TextSentSuccess {
		to = d.lastNumber
	}
	if to == "" {
		num := phone.Parse(conv.String(dialog.KeyPhoneNo))
		if !phone.Valid(num) {
			conv.Set(dialog.KeyTextSent, dialog.TextSentFailure)
			return ErrBadNumber
		}
		to = num
	}
	conv.Set(dialog.KeyTextSent, dialog.TextSentSuccess)
	d.lastNumber = to

	bodies := []string{scheduleText}
	topic := conv.String(dialog.KeyMyTeam) + " baseball"
	lines, err := d.headlines.Headlines(ctx, topic, headlineQueryCount)
	if err != nil {
		logging.Warn(d.logger, "headline lookup failed", logging.FieldTeam, conv.String(dialog.KeyMyTeam), "error", err)
	} else {
		bodies = append(bodies, dedupe(lines, maxHeadlines)...)
	}

	for _, body := range bodies {
		id, err := d.messenger.Send(ctx, to, body)
		d.metrics.RecordMessageSent(err)
		if err != nil {
			logging.Warn(d.logger, "message send failed", "error", err)
			continue
		}
		logging.Info(d.logger, "message sent", logging.FieldMessageID, id)
	}
	return nil
}

// dedupe keeps the first occurrence of each line, up to max entries.
func dedupe(lines []string, max int) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, max)
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}
