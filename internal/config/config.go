package config

// Config holds runtime configuration for the assistant.
type Config struct {
	Assistant  AssistantConfig
	Tone       ToneConfig
	Discovery  DiscoveryConfig
	Speech     SpeechConfig
	Sports     SportsConfig
	Twilio     TwilioConfig
	Metrics    MetricsConfig
	OffSeason  bool
	FixtureDir string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Assistant:  loadAssistant(),
		Tone:       loadTone(),
		Discovery:  loadDiscovery(),
		Speech:     loadSpeech(),
		Sports:     loadSports(),
		Twilio:     loadTwilio(),
		Metrics:    loadMetrics(),
		OffSeason:  boolEnvOrDefault(envOffSeason, false),
		FixtureDir: envOrDefault(envFixtureDir, defaultFixtureDir),
	}
}
