package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTwilioClientSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2010-04-01/Accounts/AC123/Messages.json" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC123" || pass != "token" {
			t.Fatalf("unexpected auth %q/%q", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("To"); got != "+15551234567" {
			t.Fatalf("unexpected To %q", got)
		}
		if got := r.PostForm.Get("From"); got != "+15559999999" {
			t.Fatalf("unexpected From %q", got)
		}
		if got := r.PostForm.Get("Body"); got != "hello" {
			t.Fatalf("unexpected Body %q", got)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM-abc"}`))
	}))
	defer srv.Close()

	client := NewTwilioClient(TwilioConfig{
		BaseURL:    srv.URL,
		AccountSID: "AC123",
		AuthToken:  "token",
		From:       "+15559999999",
	})

	sid, err := client.Send(context.Background(), "+15551234567", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sid != "SM-abc" {
		t.Fatalf("unexpected sid %q", sid)
	}
}

func TestTwilioClientSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid number"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewTwilioClient(TwilioConfig{BaseURL: srv.URL, AccountSID: "AC123", AuthToken: "token"})

	if _, err := client.Send(context.Background(), "+1555", "hello"); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}
