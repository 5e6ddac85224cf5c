package speech

import (
	"context"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	// SampleRate is the capture rate expected by the transcription service.
	SampleRate = 16000
	// frameSize is 64ms of audio per buffer at SampleRate.
	frameSize = 1024
)

// MicGate pauses and resumes microphone capture. The speaker pauses the
// gate while audio plays so the assistant does not transcribe itself.
type MicGate interface {
	Pause()
	Resume()
}

// Recorder captures mono 16-bit PCM from the default input device.
type Recorder struct {
	mu     sync.Mutex
	paused bool
}

// NewRecorder initializes the audio subsystem. Callers must Close when done.
func NewRecorder() (*Recorder, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &Recorder{}, nil
}

// Close releases the audio subsystem.
func (r *Recorder) Close() {
	portaudio.Terminate()
}

// Pause discards captured frames until Resume is called. Capture itself
// keeps running so the device buffer never backs up.
func (r *Recorder) Pause() {
	r.mu.Lock()
	r.paused = true
	r.mu.Unlock()
}

// Resume re-enables frame delivery.
func (r *Recorder) Resume() {
	r.mu.Lock()
	r.paused = false
	r.mu.Unlock()
}

func (r *Recorder) isPaused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// Stream reads microphone frames onto out until the context is cancelled.
// The out channel is closed on return.
func (r *Recorder) Stream(ctx context.Context, out chan<- []int16) error {
	defer close(out)

	buf := make([]int16, frameSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(SampleRate), len(buf), buf)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return err
		}
		if r.isPaused() {
			continue
		}

		frame := make([]int16, len(buf))
		copy(frame, buf)

		select {
		case out <- frame:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
