package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.OffSeason {
		t.Fatalf("expected off-season mode to default off")
	}
	if cfg.FixtureDir != defaultFixtureDir {
		t.Fatalf("expected default fixture dir, got %s", cfg.FixtureDir)
	}
	if cfg.Speech.Voice != defaultVoice {
		t.Fatalf("expected default voice, got %s", cfg.Speech.Voice)
	}
	if cfg.Sports.ScheduleMaxRetries != defaultScheduleMaxRetries {
		t.Fatalf("expected default schedule retries, got %d", cfg.Sports.ScheduleMaxRetries)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults: %+v", cfg.Metrics)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(envWorkspaceID, "ws-123")
	t.Setenv(envSportsKey, "secret")
	t.Setenv(envOffSeason, "true")
	t.Setenv(envTwilioTextTo, "+15551230000")
	t.Setenv(envVoice, "en-US_AllisonVoice")

	cfg := Load()

	if cfg.Assistant.WorkspaceID != "ws-123" {
		t.Fatalf("expected workspace id, got %s", cfg.Assistant.WorkspaceID)
	}
	if cfg.Sports.SubscriptionKey != "secret" {
		t.Fatalf("expected subscription key, got %s", cfg.Sports.SubscriptionKey)
	}
	if !cfg.OffSeason {
		t.Fatalf("expected off-season mode on")
	}
	if cfg.Twilio.TextTo != "+15551230000" {
		t.Fatalf("expected destination override, got %s", cfg.Twilio.TextTo)
	}
	if cfg.Speech.Voice != "en-US_AllisonVoice" {
		t.Fatalf("expected voice override, got %s", cfg.Speech.Voice)
	}
}
