package speech

import (
	"context"
	"log/slog"

	"mlb-fanbot/internal/logging"
)

// Voice turns text into audible speech. The microphone gate is paused for
// the whole playback window so the assistant never hears itself.
type Voice struct {
	synth  *Synthesizer
	player *Player
	mic    MicGate
	logger *slog.Logger
}

// NewVoice constructs a voice. mic may be nil when no capture is running;
// logger may be nil.
func NewVoice(synth *Synthesizer, player *Player, mic MicGate, logger *slog.Logger) *Voice {
	return &Voice{
		synth:  synth,
		player: player,
		mic:    mic,
		logger: logger,
	}
}

// Speak synthesizes and plays the text, holding the microphone closed
// until playback has fully drained.
func (v *Voice) Speak(ctx context.Context, text string) error {
	audio, err := v.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	if v.mic != nil {
		v.mic.Pause()
		defer v.mic.Resume()
	}

	duration, err := v.player.Play(audio)
	if err != nil {
		return err
	}
	logging.Info(v.logger, "spoke",
		logging.FieldCount, len(text),
		logging.FieldDurationMS, duration.Milliseconds())
	return nil
}
