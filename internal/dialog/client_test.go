package dialog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSendRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/workspaces/ws-1/message" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("version"); got != defaultVersion {
			t.Fatalf("unexpected version %q", got)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "apikey" || pass != "secret" {
			t.Fatalf("unexpected auth %q/%q", user, pass)
		}

		var req messageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Input.Text != "i follow the red sox" {
			t.Fatalf("unexpected utterance %q", req.Input.Text)
		}
		if req.Context.String(KeyMyTeam) != "Red Sox" {
			t.Fatalf("context not forwarded: %v", req.Context)
		}

		resp := map[string]any{
			"context": map[string]any{
				"my_team": "Red Sox",
				"system":  map[string]any{"dialog_stack": []any{"Validate Team"}},
			},
			"output": map[string]any{"text": []string{"Got it, checking the standings."}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, WorkspaceID: "ws-1", APIKey: "secret"})
	reply, err := c.Send(context.Background(), "i follow the red sox", Context{KeyMyTeam: "Red Sox"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Output != "Got it, checking the standings." {
		t.Fatalf("unexpected output %q", reply.Output)
	}
	if Classify(reply.Context) != StageValidateTeam {
		t.Fatalf("expected Validate Team stage, got %v", reply.Context)
	}
}

func TestClientSendEmptyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"context":{},"output":{"text":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, WorkspaceID: "ws-1"})
	reply, err := c.Send(context.Background(), "hello", Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Output != "" {
		t.Fatalf("expected empty output, got %q", reply.Output)
	}
	if reply.Context == nil {
		t.Fatalf("expected non-nil context")
	}
}

func TestClientSendSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workspace not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, WorkspaceID: "missing"})
	if _, err := c.Send(context.Background(), "hello", Context{}); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}
