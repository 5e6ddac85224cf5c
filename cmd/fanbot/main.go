package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"mlb-fanbot/internal/config"
	"mlb-fanbot/internal/conversation"
	"mlb-fanbot/internal/dialog"
	"mlb-fanbot/internal/headlines"
	"mlb-fanbot/internal/logging"
	"mlb-fanbot/internal/metrics"
	"mlb-fanbot/internal/notify"
	"mlb-fanbot/internal/providers"
	"mlb-fanbot/internal/providers/fantasydata"
	"mlb-fanbot/internal/providers/fixture"
	"mlb-fanbot/internal/sentiment"
	"mlb-fanbot/internal/session"
	"mlb-fanbot/internal/speech"
)

const appVersion = "dev"

func main() {
	envFile := pflag.String("env-file", ".env", "path to an env file with service credentials")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	// A missing env file is fine; credentials may come from the shell.
	godotenv.Load(*envFile)

	cfg := config.Load()
	level := os.Getenv("LOG_LEVEL")
	if *debug {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "mlb-fanbot",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, metricsHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logger.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownMetrics(shutdownCtx)
	}()

	if metricsHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler)
		go func() {
			addr := ":" + cfg.Metrics.Port
			logger.Info("metrics listening", "addr", addr)
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics server stopped", "error", err)
			}
		}()
	}

	provider, now := buildProvider(cfg, logger)

	state := session.NewState()
	aggregator := session.NewAggregator(provider, state, logger, recorder, now)

	logger.Info("loading startup feeds")
	if err := aggregator.LoadAll(ctx); err != nil {
		logger.Error("startup feed load failed", "error", err)
		os.Exit(1)
	}
	logger.Info("startup feeds ready")

	engine := dialog.NewClient(dialog.Config{
		BaseURL:     cfg.Assistant.BaseURL,
		WorkspaceID: cfg.Assistant.WorkspaceID,
		APIKey:      cfg.Assistant.APIKey,
	})
	analyzer := sentiment.NewClient(sentiment.Config{
		BaseURL: cfg.Tone.BaseURL,
		APIKey:  cfg.Tone.APIKey,
	})
	source := headlines.NewClient(headlines.Config{
		BaseURL:       cfg.Discovery.BaseURL,
		APIKey:        cfg.Discovery.APIKey,
		EnvironmentID: cfg.Discovery.EnvironmentID,
		CollectionID:  cfg.Discovery.CollectionID,
	})
	messenger := notify.NewTwilioClient(notify.TwilioConfig{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		From:       cfg.Twilio.From,
	})

	dispatcher := notify.NewDispatcher(messenger, source, logger, recorder)
	if cfg.Twilio.TextTo != "" {
		dispatcher.SetNumber(cfg.Twilio.TextTo)
	}

	recorderDevice, err := speech.NewRecorder()
	if err != nil {
		logger.Error("audio device init failed", "error", err)
		os.Exit(1)
	}
	defer recorderDevice.Close()

	transcriber := speech.NewTranscriber(speech.TranscriberConfig{
		BaseURL: cfg.Speech.TranscribeURL,
		APIKey:  cfg.Speech.TranscribeKey,
	}, logger)
	synth := speech.NewSynthesizer(speech.SynthesizerConfig{
		BaseURL: cfg.Speech.SynthesizeURL,
		APIKey:  cfg.Speech.SynthesizeKey,
		Voice:   cfg.Speech.Voice,
	})
	voice := speech.NewVoice(synth, speech.NewPlayer(), recorderDevice, logger)

	orch := conversation.NewOrchestrator(engine, analyzer, dispatcher, voice, state, logger, recorder, now)
	if cfg.Twilio.TextTo != "" {
		orch.UseFixedNumber(cfg.Twilio.TextTo)
	}

	pcm := make(chan []int16, 8)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return recorderDevice.Stream(ctx, pcm) })
	g.Go(func() error { return transcriber.Run(ctx, pcm) })
	g.Go(func() error { return orch.Run(ctx, transcriber.Utterances()) })

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("assistant stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("assistant shut down")
}

// buildProvider picks the live sports API or the off-season fixture data,
// returning the provider together with the clock the schedule window
// should be anchored to.
func buildProvider(cfg config.Config, logger *slog.Logger) (providers.DataProvider, func() time.Time) {
	if cfg.OffSeason {
		return fixture.New(cfg.FixtureDir), fixture.ReferenceNow
	}
	client := fantasydata.NewClient(fantasydata.Config{
		BaseURL:         cfg.Sports.BaseURL,
		SubscriptionKey: cfg.Sports.SubscriptionKey,
		Season:          cfg.Sports.Season,
	})
	retrying := providers.NewRetryingProvider(client, logger, cfg.Sports.ScheduleMaxRetries, 0)
	return retrying, time.Now
}
