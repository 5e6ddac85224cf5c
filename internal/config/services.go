package config

// AssistantConfig controls how we reach the dialog engine.
type AssistantConfig struct {
	BaseURL     string
	APIKey      string
	WorkspaceID string
}

func loadAssistant() AssistantConfig {
	return AssistantConfig{
		BaseURL:     envOrDefault(envAssistantURL, ""),
		APIKey:      envOrDefault(envAssistantKey, ""),
		WorkspaceID: envOrDefault(envWorkspaceID, ""),
	}
}

// ToneConfig controls how we reach the sentiment service.
type ToneConfig struct {
	BaseURL string
	APIKey  string
}

func loadTone() ToneConfig {
	return ToneConfig{
		BaseURL: envOrDefault(envToneURL, ""),
		APIKey:  envOrDefault(envToneKey, ""),
	}
}

// DiscoveryConfig controls how we reach the headline source.
type DiscoveryConfig struct {
	BaseURL       string
	APIKey        string
	EnvironmentID string
	CollectionID  string
}

func loadDiscovery() DiscoveryConfig {
	return DiscoveryConfig{
		BaseURL:       envOrDefault(envDiscoveryURL, ""),
		APIKey:        envOrDefault(envDiscoveryKey, ""),
		EnvironmentID: envOrDefault(envDiscoveryEnvID, ""),
		CollectionID:  envOrDefault(envDiscoveryColl, ""),
	}
}

// SpeechConfig controls transcription and synthesis endpoints.
type SpeechConfig struct {
	TranscribeURL string
	TranscribeKey string
	SynthesizeURL string
	SynthesizeKey string
	Voice         string
}

func loadSpeech() SpeechConfig {
	return SpeechConfig{
		TranscribeURL: envOrDefault(envSpeechToTextURL, ""),
		TranscribeKey: envOrDefault(envSpeechToTextKey, ""),
		SynthesizeURL: envOrDefault(envTextToSpeechURL, ""),
		SynthesizeKey: envOrDefault(envTextToSpeechKey, ""),
		Voice:         envOrDefault(envVoice, defaultVoice),
	}
}
