package conversation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mlb-fanbot/internal/dialog"
	"mlb-fanbot/internal/logging"
	"mlb-fanbot/internal/metrics"
	"mlb-fanbot/internal/notify"
	"mlb-fanbot/internal/schedule"
	"mlb-fanbot/internal/sentiment"
	"mlb-fanbot/internal/session"
	"mlb-fanbot/internal/standings"
)

// Greeting is spoken once when the conversation loop starts.
const Greeting = "Hi there, I am awake."

// Speaker voices one utterance to the user.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Orchestrator drives the conversation: it forwards each heard utterance
// to the dialog engine, enriches the context the engine asks for, and
// speaks the replies. Utterances are handled strictly one at a time.
type Orchestrator struct {
	engine     dialog.Engine
	analyzer   sentiment.Analyzer
	dispatcher *notify.Dispatcher
	speaker    Speaker
	state      *session.State
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time

	conv dialog.Context
}

// NewOrchestrator constructs an orchestrator. Logger and metrics may be
// nil; now defaults to time.Now.
func NewOrchestrator(engine dialog.Engine, analyzer sentiment.Analyzer, dispatcher *notify.Dispatcher, speaker Speaker, state *session.State, logger *slog.Logger, rec *metrics.Recorder, now func() time.Time) *Orchestrator {
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		engine:     engine,
		analyzer:   analyzer,
		dispatcher: dispatcher,
		speaker:    speaker,
		state:      state,
		logger:     logger,
		metrics:    rec,
		now:        now,
		conv:       dialog.Context{},
	}
}

// UseFixedNumber seeds the conversation with a configured destination
// number and marks delivery as already set up, so the dialog script
// skips digit collection.
func (o *Orchestrator) UseFixedNumber(number string) {
	o.conv.Set(dialog.KeyPhoneNo, number)
	o.conv.Set(dialog.KeyTextSent, dialog.TextSentSuccess)
}

// Run speaks the greeting and then consumes utterances until the channel
// closes or the context is cancelled. Each utterance is fully handled
// before the next is read, so utterances heard mid-reply queue up rather
// than interleave.
func (o *Orchestrator) Run(ctx context.Context, utterances <-chan string) error {
	if err := o.speaker.Speak(ctx, Greeting); err != nil {
		logging.Warn(o.logger, "greeting failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case utterance, ok := <-utterances:
			if !ok {
				return nil
			}
			o.handle(ctx, utterance)
		}
	}
}

func (o *Orchestrator) handle(ctx context.Context, heard string) {
	heard = strings.ToLower(strings.TrimSpace(heard))
	if heard == "" {
		return
	}
	logging.Info(o.logger, "heard", logging.FieldCount, len(heard))

	reply, err := o.roundTrip(ctx, heard)
	if err != nil {
		return
	}
	o.speak(ctx, reply.Output)

	switch stage := dialog.Classify(o.conv); stage {
	case dialog.StageValidateEmotion:
		o.validateEmotion(ctx, heard)
	case dialog.StageValidateTeam:
		o.validateTeam(ctx, heard)
	case dialog.StageSendNotification:
		o.sendNotification(ctx)
	case dialog.StageNone:
		// Nothing to enrich; the spoken reply was the whole turn.
	}
}

// roundTrip sends one utterance through the engine and adopts the reply's
// context as the new conversation state.
func (o *Orchestrator) roundTrip(ctx context.Context, utterance string) (dialog.Reply, error) {
	start := time.Now()
	reply, err := o.engine.Send(ctx, utterance, o.conv)
	o.metrics.RecordDialogRoundTrip(time.Since(start), err)
	if err != nil {
		logging.Error(o.logger, "dialog round trip failed", err)
		return dialog.Reply{}, err
	}
	o.conv = reply.Context
	logging.Info(o.logger, "dialog reply",
		logging.FieldStage, dialog.Classify(o.conv).String(),
		logging.FieldTeam, o.conv.String(dialog.KeyMyTeam))
	return reply, nil
}

func (o *Orchestrator) speak(ctx context.Context, text string) {
	if text == "" {
		return
	}
	if err := o.speaker.Speak(ctx, text); err != nil {
		logging.Warn(o.logger, "speech failed", "error", err)
	}
}

// validateEmotion scores the raw feeling the engine captured, replaces it
// with the dominant tone and replays the utterance so the script can
// branch on it.
func (o *Orchestrator) validateEmotion(ctx context.Context, heard string) {
	raw := o.conv.String(dialog.KeyEmotion)
	start := time.Now()
	tones, err := o.analyzer.Tone(ctx, raw)
	o.metrics.RecordToneCall(time.Since(start), err)
	if err != nil {
		logging.Warn(o.logger, "tone analysis failed", "error", err)
		tones = nil
	}
	o.conv.Set(dialog.KeyEmotion, sentiment.Dominant(tones))

	reply, err := o.roundTrip(ctx, heard)
	if err != nil {
		return
	}
	o.speak(ctx, reply.Output)
}

// validateTeam resolves the captured team's division standing and replays
// the utterance so the script can speak it.
func (o *Orchestrator) validateTeam(ctx context.Context, heard string) {
	team := o.conv.String(dialog.KeyMyTeam)
	rank := standings.Rank(team, o.state.Standings())
	o.conv.Set(dialog.KeyStandings, rank)
	logging.Info(o.logger, "team validated", logging.FieldTeam, team, "standing", rank)

	reply, err := o.roundTrip(ctx, heard)
	if err != nil {
		return
	}
	o.speak(ctx, reply.Output)
}

// sendNotification texts the upcoming schedule and headlines, then gives
// the engine a turn to report the outcome.
func (o *Orchestrator) sendNotification(ctx context.Context) {
	team := o.conv.String(dialog.KeyMyTeam)
	text := schedule.Upcoming(o.now(), team, o.state.Teams(), o.state.Schedule())

	if err := o.dispatcher.Dispatch(ctx, o.conv, text); err != nil {
		logging.Warn(o.logger, "notification dispatch failed", logging.FieldTeam, team, "error", err)
	}

	reply, err := o.roundTrip(ctx, "")
	if err != nil {
		return
	}
	o.speak(ctx, reply.Output)
}
