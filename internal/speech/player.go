package speech

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// pauseGuard pads playback so the tail of the utterance is never clipped
// before the microphone reopens.
const pauseGuard = 200 * time.Millisecond

// Player decodes WAV audio and plays it on the default output device.
type Player struct {
	mu   sync.Mutex
	init bool
}

// NewPlayer returns an uninitialized player. The speaker device is opened
// lazily on first play, using the first clip's sample rate.
func NewPlayer() *Player {
	return &Player{}
}

// Play decodes and plays one WAV clip, blocking until playback finishes
// plus a short guard interval. It returns the clip's duration.
func (p *Player) Play(audio []byte) (time.Duration, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(audio)))
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	duration := format.SampleRate.D(streamer.Len())

	p.mu.Lock()
	if !p.init {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			p.mu.Unlock()
			return 0, err
		}
		p.init = true
	}
	p.mu.Unlock()

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done

	time.Sleep(pauseGuard)
	return duration, nil
}
