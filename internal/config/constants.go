package config

const (
	envAssistantURL       = "ASSISTANT_URL"
	envAssistantKey       = "ASSISTANT_APIKEY"
	envWorkspaceID        = "ASSISTANT_WORKSPACE_ID"
	envToneURL            = "TONE_ANALYZER_URL"
	envToneKey            = "TONE_ANALYZER_APIKEY"
	envDiscoveryURL       = "DISCOVERY_URL"
	envDiscoveryKey       = "DISCOVERY_APIKEY"
	envDiscoveryEnvID     = "DISCOVERY_ENVIRONMENT_ID"
	envDiscoveryColl      = "DISCOVERY_COLLECTION_ID"
	envSpeechToTextURL    = "SPEECH_TO_TEXT_URL"
	envSpeechToTextKey    = "SPEECH_TO_TEXT_APIKEY"
	envTextToSpeechURL    = "TEXT_TO_SPEECH_URL"
	envTextToSpeechKey    = "TEXT_TO_SPEECH_APIKEY"
	envVoice              = "TEXT_TO_SPEECH_VOICE"
	envSportsBaseURL      = "SPORTSDATA_BASE_URL"
	envSportsKey          = "SPORTSDATA_SUBSCRIPTION_KEY"
	envSportsSeason       = "SPORTSDATA_SEASON"
	envTwilioSID          = "TWILIO_SID"
	envTwilioToken        = "TWILIO_AUTH_TOKEN"
	envTwilioFrom         = "TWILIO_PHONE_NUMBER"
	envTwilioTextTo       = "TWILIO_TEXT_PHONE_NUMBER"
	envOffSeason          = "IN_OFF_SEASON"
	envFixtureDir         = "FIXTURE_DIR"
	envMetricsPort        = "METRICS_PORT"
	envMetricsOn          = "METRICS_ENABLED"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"
	envScheduleMaxRetries = "SCHEDULE_FETCH_MAX_RETRIES"

	defaultVoice              = "en-US_MichaelVoice"
	defaultFixtureDir         = "data"
	defaultMetricsPort        = "9090"
	defaultScheduleMaxRetries = 2
)
