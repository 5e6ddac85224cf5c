package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDominantPicksHighestScore(t *testing.T) {
	tones := []Tone{
		{ID: "sadness", Score: 0.12},
		{ID: "joy", Score: 0.81},
		{ID: "anger", Score: 0.33},
	}

	if got := Dominant(tones); got != "joy" {
		t.Fatalf("expected joy, got %q", got)
	}
}

func TestDominantFallsBackBelowFloor(t *testing.T) {
	tones := []Tone{
		{ID: "sadness", Score: 0.004},
		{ID: "joy", Score: 0.01},
	}

	if got := Dominant(tones); got != DefaultTone {
		t.Fatalf("expected %q, got %q", DefaultTone, got)
	}
}

func TestDominantEmpty(t *testing.T) {
	if got := Dominant(nil); got != DefaultTone {
		t.Fatalf("expected %q, got %q", DefaultTone, got)
	}
}

func TestClientToneParsesFirstCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/tone" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("version"); got != defaultVersion {
			t.Fatalf("unexpected version %q", got)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "apikey" || pass != "secret" {
			t.Fatalf("unexpected auth %q/%q", user, pass)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["text"] != "thrilled about the win" {
			t.Fatalf("unexpected text %q", body["text"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"document_tone":{"tone_categories":[{"tones":[{"score":0.7,"tone_id":"joy"},{"score":0.1,"tone_id":"fear"}]},{"tones":[{"score":0.9,"tone_id":"other"}]}]}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"})

	tones, err := client.Tone(context.Background(), "thrilled about the win")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tones) != 2 {
		t.Fatalf("expected 2 tones, got %d", len(tones))
	}
	if tones[0].ID != "joy" || tones[0].Score != 0.7 {
		t.Fatalf("unexpected first tone %+v", tones[0])
	}
}

func TestClientToneErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	if _, err := client.Tone(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestClientToneNoCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"document_tone":{"tone_categories":[]}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	tones, err := client.Tone(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tones != nil {
		t.Fatalf("expected nil tones, got %+v", tones)
	}
}
