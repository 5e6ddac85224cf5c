package config

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("FANBOT_TEST_STR", "set")
	if got := envOrDefault("FANBOT_TEST_STR", "fallback"); got != "set" {
		t.Fatalf("expected env value, got %s", got)
	}
	if got := envOrDefault("FANBOT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("FANBOT_TEST_INT", "4")
	if got := intEnvOrDefault("FANBOT_TEST_INT", 2); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	t.Setenv("FANBOT_TEST_INT", "zero")
	if got := intEnvOrDefault("FANBOT_TEST_INT", 2); got != 2 {
		t.Fatalf("expected fallback for junk, got %d", got)
	}
	t.Setenv("FANBOT_TEST_INT", "-1")
	if got := intEnvOrDefault("FANBOT_TEST_INT", 2); got != 2 {
		t.Fatalf("expected fallback for non-positive, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "no": false,
		"maybe": true, // falls back to default
	}
	for raw, want := range cases {
		t.Setenv("FANBOT_TEST_BOOL", raw)
		if got := boolEnvOrDefault("FANBOT_TEST_BOOL", true); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}
}
