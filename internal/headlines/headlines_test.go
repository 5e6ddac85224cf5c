package headlines

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientHeadlinesFormatsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/v1/environments/env-1/collections/col-1/query"
		if r.URL.Path != wantPath {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("natural_language_query"); got != "Red Sox baseball" {
			t.Fatalf("unexpected query %q", got)
		}
		if got := q.Get("count"); got != "5" {
			t.Fatalf("unexpected count %q", got)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "apikey" || pass != "secret" {
			t.Fatalf("unexpected auth %q/%q", user, pass)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"title":"Sox clinch","url":"http://example.com/a"},{"title":"Playoff preview","url":"http://example.com/b"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:       srv.URL,
		APIKey:        "secret",
		EnvironmentID: "env-1",
		CollectionID:  "col-1",
	})

	lines, err := client.Headlines(context.Background(), "Red Sox baseball", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(lines))
	}
	if lines[0] != "Sox clinch - http://example.com/a" {
		t.Fatalf("unexpected first headline %q", lines[0])
	}
}

func TestClientHeadlinesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, EnvironmentID: "e", CollectionID: "c"})

	if _, err := client.Headlines(context.Background(), "topic", 5); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestClientHeadlinesEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, EnvironmentID: "e", CollectionID: "c"})

	lines, err := client.Headlines(context.Background(), "topic", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no headlines, got %d", len(lines))
	}
}
