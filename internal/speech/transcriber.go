package speech

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	ws "github.com/gorilla/websocket"

	"mlb-fanbot/internal/logging"
)

const (
	recognizePath = "/v1/recognize"
	contentType   = "audio/l16;rate=16000"
)

// TranscriberConfig controls the connection to the transcription service.
type TranscriberConfig struct {
	// BaseURL is the https endpoint; it is rewritten to wss for the stream.
	BaseURL string
	APIKey  string
	Model   string
}

// Transcriber streams microphone PCM to a websocket transcription service
// and emits finalized utterances.
type Transcriber struct {
	cfg        TranscriberConfig
	logger     *slog.Logger
	utterances chan string
}

// NewTranscriber constructs a transcriber. Logger may be nil.
func NewTranscriber(cfg TranscriberConfig, logger *slog.Logger) *Transcriber {
	return &Transcriber{
		cfg:        cfg,
		logger:     logger,
		utterances: make(chan string),
	}
}

// Utterances returns the channel finalized transcriptions arrive on. The
// channel closes when Run returns.
func (t *Transcriber) Utterances() <-chan string {
	return t.utterances
}

type startMessage struct {
	Action         string `json:"action"`
	ContentType    string `json:"content-type"`
	InterimResults bool   `json:"interim_results"`
}

type recognizeResponse struct {
	Results []struct {
		Final        bool `json:"final"`
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"results"`
	Error string `json:"error"`
}

// Run connects to the service, forwards PCM frames from in, and pushes
// final transcripts onto the utterance channel until in closes or the
// context is cancelled.
func (t *Transcriber) Run(ctx context.Context, in <-chan []int16) error {
	defer close(t.utterances)

	conn, err := t.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	start := startMessage{Action: "start", ContentType: contentType, InterimResults: false}
	payload, err := json.Marshal(start)
	if err != nil {
		return err
	}
	if err := conn.WriteMessage(ws.TextMessage, payload); err != nil {
		return err
	}

	readErr := make(chan error, 1)
	go func() { readErr <- t.readLoop(ctx, conn) }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case frame, ok := <-in:
			if !ok {
				stop, _ := json.Marshal(map[string]string{"action": "stop"})
				conn.WriteMessage(ws.TextMessage, stop)
				return <-readErr
			}
			if err := conn.WriteMessage(ws.BinaryMessage, encodePCM(frame)); err != nil {
				return err
			}
		}
	}
}

func (t *Transcriber) dial(ctx context.Context) (*ws.Conn, error) {
	endpoint := strings.Replace(t.cfg.BaseURL, "https://", "wss://", 1)
	endpoint = strings.Replace(endpoint, "http://", "ws://", 1)
	endpoint = strings.TrimSuffix(endpoint, "/") + recognizePath

	params := url.Values{}
	if t.cfg.Model != "" {
		params.Set("model", t.cfg.Model)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	header := make(map[string][]string)
	if t.cfg.APIKey != "" {
		header["Authorization"] = []string{basicAuth("apikey", t.cfg.APIKey)}
	}

	conn, _, err := ws.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("speech: dialing transcription service: %w", err)
	}
	return conn, nil
}

func (t *Transcriber) readLoop(ctx context.Context, conn *ws.Conn) error {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ws.IsCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway) {
				return nil
			}
			return err
		}

		var resp recognizeResponse
		if err := json.Unmarshal(msg, &resp); err != nil {
			logging.Warn(t.logger, "unparseable transcription message", "error", err)
			continue
		}
		if resp.Error != "" {
			logging.Warn(t.logger, "transcription service error", "error", resp.Error)
			continue
		}

		for _, result := range resp.Results {
			if !result.Final || len(result.Alternatives) == 0 {
				continue
			}
			text := strings.TrimSpace(result.Alternatives[0].Transcript)
			if text == "" {
				continue
			}
			select {
			case t.utterances <- text:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// encodePCM converts int16 samples to the little-endian byte stream the
// service expects.
func encodePCM(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}
